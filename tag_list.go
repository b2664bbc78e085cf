package nbt

import (
	"github.com/scigolib/nbt/internal/budget"
	"github.com/scigolib/nbt/internal/stream"
)

// List is a homogeneous ordered sequence of child tags with no per-element
// names. A list built by NewList, or emptied by Pop, RemoveByIdentity or
// Clear, has element type TAG_End; a decoded empty list keeps the element
// type declared on the wire.
type List struct {
	elemType ID
	items    []Tag
}

// NewList constructs an empty list with no fixed element type yet.
func NewList() *List {
	return &List{elemType: IDEnd}
}

func (t *List) ID() ID           { return IDList }
func (t *List) TypeName() string { return IDList.String() }

// ElementType returns the wire id every element of this list must share.
// It is TAG_End for a list that has never held elements or has been
// emptied; a decoded empty list reports its declared wire type.
func (t *List) ElementType() ID { return t.elemType }

// Len returns the number of elements.
func (t *List) Len() int { return len(t.items) }

// Items returns the list's elements in order. The caller must not mutate
// the returned slice.
func (t *List) Items() []Tag { return t.items }

// Append adds child to the end of the list, transferring ownership.
// Appending to an empty list fixes its element type to child's id; a
// subsequent append of a different id fails.
func (t *List) Append(child Tag) error {
	if child == nil {
		return newErr(KindNullArgument, "list append: child is nil")
	}
	if len(t.items) == 0 {
		t.elemType = child.ID()
	} else if child.ID() != t.elemType {
		return newErr(KindInvalidTagID, "list append: element id %s does not match list type %s", child.ID(), t.elemType)
	}
	t.items = append(t.items, child)
	return nil
}

// Pop removes and returns the last element, or (nil, false) if empty.
func (t *List) Pop() (Tag, bool) {
	if len(t.items) == 0 {
		return nil, false
	}
	last := t.items[len(t.items)-1]
	t.items = t.items[:len(t.items)-1]
	if len(t.items) == 0 {
		t.elemType = IDEnd
	}
	return last, true
}

// RemoveByIdentity removes the first element identical (by pointer) to
// child, reporting whether anything was removed.
func (t *List) RemoveByIdentity(child Tag) bool {
	for i, item := range t.items {
		if item == child {
			t.items = append(t.items[:i], t.items[i+1:]...)
			if len(t.items) == 0 {
				t.elemType = IDEnd
			}
			return true
		}
	}
	return false
}

// Clear removes all elements and resets the element type.
func (t *List) Clear() {
	t.items = nil
	t.elemType = IDEnd
}

func (t *List) writeValue(w *stream.Writer) error {
	if err := w.WriteInt(8, uint64(uint8(t.elemType))); err != nil {
		return err
	}
	if err := w.WriteInt(32, uint64(uint32(int32(len(t.items))))); err != nil {
		return err
	}
	for _, item := range t.items {
		if err := item.writeValue(w); err != nil {
			return err
		}
	}
	return nil
}

func (t *List) readValue(r *stream.Reader, depth int, tr *budget.Tracker) error {
	if depth > maxDepth {
		return newErr(KindDepthExceeded, "list nesting exceeds %d", maxDepth)
	}
	if err := tr.Charge(296); err != nil {
		return wrapf(KindTagTooBig, err, "read TAG_List header")
	}

	rawID, err := r.ReadInt(8)
	if err != nil {
		return wrapf(KindShortRead, err, "read TAG_List element type")
	}
	elemType := ID(uint8(rawID))

	rawCount, err := r.ReadInt(32)
	if err != nil {
		return wrapf(KindShortRead, err, "read TAG_List count")
	}
	count := int32(rawCount)
	if count < 0 {
		return newErr(KindShortRead, "list count %d is negative", count)
	}

	if !elemType.Valid() && elemType != IDEnd {
		return newErr(KindInvalidTagID, "list element type %d not in {0..12}", byte(elemType))
	}
	if elemType == IDEnd && count > 0 {
		return newErr(KindMissingListType, "list declares element type End but count %d > 0", count)
	}

	if err := tr.Charge(32 * int64(count)); err != nil {
		return wrapf(KindTagTooBig, err, "read TAG_List elements")
	}

	items := make([]Tag, 0, count)
	for i := int32(0); i < count; i++ {
		child, err := Create(elemType)
		if err != nil {
			return err
		}
		if err := child.readValue(r, depth+1, tr); err != nil {
			return err
		}
		items = append(items, child)
	}

	t.elemType = elemType
	t.items = items
	return nil
}
