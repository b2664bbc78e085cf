// Package main provides a command-line utility to dump the tag tree of an
// NBT (optionally gzip-wrapped) file for debugging.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/scigolib/nbt"
)

func main() {
	maxDepth := flag.Int("max-depth", 0, "stop descending after this many levels (0 = unlimited)")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: nbtdump [flags] <file.nbt>")
		fmt.Println("Flags:")
		flag.PrintDefaults()
		return
	}

	root, err := nbt.ReadFile(args[0])
	if err != nil {
		log.Fatalf("failed to read %s: %v", args[0], err)
	}

	fmt.Printf("%s: %s\n", args[0], root.TypeName())
	dump(root, "", 0, *maxDepth)
}

func dump(t nbt.Tag, indent string, depth, maxDepth int) {
	if maxDepth > 0 && depth >= maxDepth {
		fmt.Printf("%s...\n", indent)
		return
	}

	switch v := t.(type) {
	case *nbt.Compound:
		for _, name := range v.Names() {
			child, _ := v.Get(name)
			fmt.Printf("%s%s(%q)\n", indent, child.TypeName(), name)
			dump(child, indent+"  ", depth+1, maxDepth)
		}
	case *nbt.List:
		fmt.Printf("%s[%d %s elements]\n", indent, v.Len(), v.ElementType())
		for i, item := range v.Items() {
			fmt.Printf("%s[%d]:\n", indent, i)
			dump(item, indent+"  ", depth+1, maxDepth)
		}
	default:
		fmt.Printf("%s%s\n", indent, describeScalar(t))
	}
}

func describeScalar(t nbt.Tag) string {
	switch v := t.(type) {
	case *nbt.Byte:
		return fmt.Sprintf("%d", v.Value)
	case *nbt.Short:
		return fmt.Sprintf("%d", v.Value)
	case *nbt.Int:
		return fmt.Sprintf("%d", v.Value)
	case *nbt.Long:
		return fmt.Sprintf("%d", v.Value)
	case *nbt.Float:
		return fmt.Sprintf("%g", v.Value)
	case *nbt.Double:
		return fmt.Sprintf("%g", v.Value)
	case *nbt.String:
		return strings.ReplaceAll(v.Value, "\n", "\\n")
	case *nbt.ByteArray:
		return fmt.Sprintf("[%d bytes]", len(v.Value))
	case *nbt.IntArray:
		return fmt.Sprintf("[%d ints]", len(v.Value))
	case *nbt.LongArray:
		return fmt.Sprintf("[%d longs]", len(v.Value))
	default:
		return t.TypeName()
	}
}
