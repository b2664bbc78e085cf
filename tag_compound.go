package nbt

import (
	"sort"

	"github.com/scigolib/nbt/internal/budget"
	"github.com/scigolib/nbt/internal/stream"
)

// Compound is a name-keyed mapping of child tags. Entries are unique by
// name; re-encoded order is deterministic (sorted by name) even though the
// reference implementation's unordered map makes its own re-encode order
// non-deterministic (SPEC_FULL.md §0).
type Compound struct {
	order   []string
	entries map[string]Tag
}

// NewCompound constructs an empty compound.
func NewCompound() *Compound {
	return &Compound{entries: make(map[string]Tag)}
}

func (t *Compound) ID() ID           { return IDCompound }
func (t *Compound) TypeName() string { return IDCompound.String() }

// Len returns the number of entries.
func (t *Compound) Len() int { return len(t.entries) }

// Names returns entry names in decode/insertion order.
func (t *Compound) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Get returns the child named name, or (nil, false) if absent.
func (t *Compound) Get(name string) (Tag, bool) {
	v, ok := t.entries[name]
	return v, ok
}

// Insert adds or replaces the entry named name, transferring ownership of
// child. A duplicate name overwrites the prior entry (last-write-wins, the
// same semantics as decode).
func (t *Compound) Insert(name string, child Tag) error {
	if child == nil {
		return newErr(KindNullArgument, "compound insert %q: child is nil", name)
	}
	if _, exists := t.entries[name]; !exists {
		t.order = append(t.order, name)
	}
	t.entries[name] = child
	return nil
}

// Remove deletes the entry named name, reporting whether it existed.
func (t *Compound) Remove(name string) bool {
	if _, ok := t.entries[name]; !ok {
		return false
	}
	delete(t.entries, name)
	for i, n := range t.order {
		if n == name {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// Clear removes every entry.
func (t *Compound) Clear() {
	t.order = nil
	t.entries = make(map[string]Tag)
}

func (t *Compound) writeValue(w *stream.Writer) error {
	names := make([]string, len(t.order))
	copy(names, t.order)
	sort.Strings(names)

	for _, name := range names {
		child := t.entries[name]
		if err := w.WriteInt(8, uint64(uint8(child.ID()))); err != nil {
			return err
		}
		if err := writeWireString(w, name); err != nil {
			return err
		}
		if err := child.writeValue(w); err != nil {
			return err
		}
	}
	return w.WriteInt(8, uint64(uint8(IDEnd)))
}

func (t *Compound) readValue(r *stream.Reader, depth int, tr *budget.Tracker) error {
	if depth > maxDepth {
		return newErr(KindDepthExceeded, "compound nesting exceeds %d", maxDepth)
	}
	if err := tr.Charge(384); err != nil {
		return wrapf(KindTagTooBig, err, "read TAG_Compound header")
	}

	t.order = nil
	t.entries = make(map[string]Tag)

	for {
		if err := tr.Charge(288); err != nil {
			return wrapf(KindTagTooBig, err, "read TAG_Compound entry")
		}

		rawID, err := r.ReadInt(8)
		if err != nil {
			return wrapf(KindShortRead, err, "read TAG_Compound entry id")
		}
		id := ID(uint8(rawID))
		if id == IDEnd {
			return nil
		}
		if !id.Valid() {
			return newErr(KindInvalidTagID, "compound entry id %d not in {0..12}", byte(id))
		}

		name, _, err := readWireString(r)
		if err != nil {
			return err
		}

		child, err := Create(id)
		if err != nil {
			return err
		}
		if err := child.readValue(r, depth+1, tr); err != nil {
			return err
		}

		if _, exists := t.entries[name]; !exists {
			t.order = append(t.order, name)
		}
		t.entries[name] = child
	}
}
