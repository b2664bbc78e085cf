// Package nbt implements a reader/writer for NBT (Named Binary Tag), the
// hierarchical tagged binary format used across the Minecraft ecosystem.
//
// The format is a tree of typed values — primitive integers and floats,
// variable-length arrays, UTF-8 strings, ordered homogeneous lists, and
// named heterogeneous compounds — encoded fixed-width big-endian, optionally
// wrapped in a gzip container. This package owns the tagged tree data
// model and its wire contract over in-memory byte buffers; its only file
// I/O is the whole-file ReadFile/WriteFile convenience pair. It knows
// nothing about any game-specific interpretation of the decoded data.
package nbt

import (
	"github.com/scigolib/nbt/internal/budget"
	"github.com/scigolib/nbt/internal/stream"
)

// ID identifies the wire type of a tag. The numeric values are fixed by
// the NBT wire format and must not be renumbered.
type ID byte

// The 13 NBT tag ids. Long reports id 4 (not the reference implementation's
// colliding id 2, which is a known bug in the C++ original this package
// corrects — see SPEC_FULL.md §0).
const (
	IDEnd       ID = 0
	IDByte      ID = 1
	IDShort     ID = 2
	IDInt       ID = 3
	IDLong      ID = 4
	IDFloat     ID = 5
	IDDouble    ID = 6
	IDByteArray ID = 7
	IDString    ID = 8
	IDList      ID = 9
	IDCompound  ID = 10
	IDIntArray  ID = 11
	IDLongArray ID = 12
)

var idNames = map[ID]string{
	IDEnd:       "TAG_End",
	IDByte:      "TAG_Byte",
	IDShort:     "TAG_Short",
	IDInt:       "TAG_Int",
	IDLong:      "TAG_Long",
	IDFloat:     "TAG_Float",
	IDDouble:    "TAG_Double",
	IDByteArray: "TAG_Byte_Array",
	IDString:    "TAG_String",
	IDList:      "TAG_List",
	IDCompound:  "TAG_Compound",
	IDIntArray:  "TAG_Int_Array",
	IDLongArray: "TAG_Long_Array",
}

// String returns the human-readable type name for id, or "TAG_Unknown" if
// id is outside {0..12}.
func (id ID) String() string {
	if name, ok := idNames[id]; ok {
		return name
	}
	return "TAG_Unknown"
}

// Valid reports whether id is one of the 13 defined tag ids.
func (id ID) Valid() bool {
	_, ok := idNames[id]
	return ok
}

// maxDepth is the nesting ceiling for compound+list recursion. Exceeding it
// fails decode with KindDepthExceeded.
const maxDepth = 512

// Tag is the sealed set of 13 NBT tag variants, forming a recursive tree.
// Every concrete type in this package implements Tag; callers do not
// implement new variants.
type Tag interface {
	// ID returns the variant's wire type id.
	ID() ID
	// TypeName returns the human-readable type name, e.g. "TAG_Compound".
	TypeName() string

	// writeValue emits only the tag's payload (not its id or name) to w.
	writeValue(w *stream.Writer) error
	// readValue consumes the tag's payload from r, charging tr for every
	// byte read and failing if depth exceeds maxDepth for container tags.
	readValue(r *stream.Reader, depth int, tr *budget.Tracker) error
}

// Create constructs a zero-valued tag of the given id, or an error if id
// is not one of the 13 defined ids.
func Create(id ID) (Tag, error) {
	switch id {
	case IDEnd:
		return &End{}, nil
	case IDByte:
		return new(Byte), nil
	case IDShort:
		return new(Short), nil
	case IDInt:
		return new(Int), nil
	case IDLong:
		return new(Long), nil
	case IDFloat:
		return new(Float), nil
	case IDDouble:
		return new(Double), nil
	case IDByteArray:
		return &ByteArray{}, nil
	case IDString:
		return new(String), nil
	case IDList:
		return &List{}, nil
	case IDCompound:
		return NewCompound(), nil
	case IDIntArray:
		return &IntArray{}, nil
	case IDLongArray:
		return &LongArray{}, nil
	default:
		return nil, newErr(KindInvalidTagID, "create: id %d not in {0..12}", byte(id))
	}
}
