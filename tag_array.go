package nbt

import (
	"github.com/scigolib/nbt/internal/budget"
	"github.com/scigolib/nbt/internal/stream"
)

// ByteArray is a length-prefixed (int32) signed 8-bit array tag.
type ByteArray struct{ Value []int8 }

func (t *ByteArray) ID() ID           { return IDByteArray }
func (t *ByteArray) TypeName() string { return IDByteArray.String() }

func (t *ByteArray) writeValue(w *stream.Writer) error {
	if err := w.WriteInt(32, uint64(uint32(int32(len(t.Value))))); err != nil {
		return err
	}
	for _, v := range t.Value {
		if err := w.WriteInt(8, uint64(uint8(v))); err != nil {
			return err
		}
	}
	return nil
}

func (t *ByteArray) readValue(r *stream.Reader, depth int, tr *budget.Tracker) error {
	if err := tr.Charge(192); err != nil {
		return wrapf(KindTagTooBig, err, "read TAG_Byte_Array header")
	}
	n, err := readArrayLen(r)
	if err != nil {
		return err
	}
	if err := tr.Charge(8 * int64(n)); err != nil {
		return wrapf(KindTagTooBig, err, "read TAG_Byte_Array payload")
	}
	out := make([]int8, n)
	for i := range out {
		v, err := r.ReadInt(8)
		if err != nil {
			return wrapf(KindShortRead, err, "read TAG_Byte_Array element %d", i)
		}
		out[i] = int8(v)
	}
	t.Value = out
	return nil
}

// IntArray is a length-prefixed (int32) signed 32-bit array tag.
type IntArray struct{ Value []int32 }

func (t *IntArray) ID() ID           { return IDIntArray }
func (t *IntArray) TypeName() string { return IDIntArray.String() }

func (t *IntArray) writeValue(w *stream.Writer) error {
	if err := w.WriteInt(32, uint64(uint32(int32(len(t.Value))))); err != nil {
		return err
	}
	for _, v := range t.Value {
		if err := w.WriteInt(32, uint64(uint32(v))); err != nil {
			return err
		}
	}
	return nil
}

func (t *IntArray) readValue(r *stream.Reader, depth int, tr *budget.Tracker) error {
	if err := tr.Charge(192); err != nil {
		return wrapf(KindTagTooBig, err, "read TAG_Int_Array header")
	}
	n, err := readArrayLen(r)
	if err != nil {
		return err
	}
	if err := tr.Charge(32 * int64(n)); err != nil {
		return wrapf(KindTagTooBig, err, "read TAG_Int_Array payload")
	}
	out := make([]int32, n)
	for i := range out {
		v, err := r.ReadInt(32)
		if err != nil {
			return wrapf(KindShortRead, err, "read TAG_Int_Array element %d", i)
		}
		out[i] = int32(v)
	}
	t.Value = out
	return nil
}

// LongArray is a length-prefixed (int32) signed 64-bit array tag.
type LongArray struct{ Value []int64 }

func (t *LongArray) ID() ID           { return IDLongArray }
func (t *LongArray) TypeName() string { return IDLongArray.String() }

func (t *LongArray) writeValue(w *stream.Writer) error {
	if err := w.WriteInt(32, uint64(uint32(int32(len(t.Value))))); err != nil {
		return err
	}
	for _, v := range t.Value {
		if err := w.WriteInt(64, uint64(v)); err != nil {
			return err
		}
	}
	return nil
}

func (t *LongArray) readValue(r *stream.Reader, depth int, tr *budget.Tracker) error {
	if err := tr.Charge(192); err != nil {
		return wrapf(KindTagTooBig, err, "read TAG_Long_Array header")
	}
	n, err := readArrayLen(r)
	if err != nil {
		return err
	}
	if err := tr.Charge(64 * int64(n)); err != nil {
		return wrapf(KindTagTooBig, err, "read TAG_Long_Array payload")
	}
	out := make([]int64, n)
	for i := range out {
		v, err := r.ReadInt(64)
		if err != nil {
			return wrapf(KindShortRead, err, "read TAG_Long_Array element %d", i)
		}
		out[i] = int64(v)
	}
	t.Value = out
	return nil
}

// readArrayLen reads the int32 element count shared by all three array
// variants, rejecting a negative count.
func readArrayLen(r *stream.Reader) (int32, error) {
	v, err := r.ReadInt(32)
	if err != nil {
		return 0, wrapf(KindShortRead, err, "read array length")
	}
	n := int32(v)
	if n < 0 {
		return 0, newErr(KindShortRead, "array length %d is negative", n)
	}
	return n, nil
}
