package nbt

import (
	"math"

	"github.com/scigolib/nbt/internal/budget"
	"github.com/scigolib/nbt/internal/stream"
)

// Byte is a signed 8-bit integer tag.
type Byte struct{ Value int8 }

func (t *Byte) ID() ID           { return IDByte }
func (t *Byte) TypeName() string { return IDByte.String() }

func (t *Byte) writeValue(w *stream.Writer) error {
	return w.WriteInt(8, uint64(uint8(t.Value)))
}

func (t *Byte) readValue(r *stream.Reader, depth int, tr *budget.Tracker) error {
	if err := tr.Charge(72); err != nil {
		return wrapf(KindTagTooBig, err, "read TAG_Byte")
	}
	v, err := r.ReadInt(8)
	if err != nil {
		return wrapf(KindShortRead, err, "read TAG_Byte payload")
	}
	t.Value = int8(v)
	return nil
}

// Short is a signed 16-bit integer tag.
type Short struct{ Value int16 }

func (t *Short) ID() ID           { return IDShort }
func (t *Short) TypeName() string { return IDShort.String() }

func (t *Short) writeValue(w *stream.Writer) error {
	return w.WriteInt(16, uint64(uint16(t.Value)))
}

func (t *Short) readValue(r *stream.Reader, depth int, tr *budget.Tracker) error {
	if err := tr.Charge(80); err != nil {
		return wrapf(KindTagTooBig, err, "read TAG_Short")
	}
	v, err := r.ReadInt(16)
	if err != nil {
		return wrapf(KindShortRead, err, "read TAG_Short payload")
	}
	// The reference implementation truncates this 16-bit read to int8_t
	// before widening back to int16_t, a sign-extension bug (SPEC_FULL.md
	// §0). This port stores the full 16-bit value directly.
	t.Value = int16(v)
	return nil
}

// Int is a signed 32-bit integer tag.
type Int struct{ Value int32 }

func (t *Int) ID() ID           { return IDInt }
func (t *Int) TypeName() string { return IDInt.String() }

func (t *Int) writeValue(w *stream.Writer) error {
	return w.WriteInt(32, uint64(uint32(t.Value)))
}

func (t *Int) readValue(r *stream.Reader, depth int, tr *budget.Tracker) error {
	if err := tr.Charge(96); err != nil {
		return wrapf(KindTagTooBig, err, "read TAG_Int")
	}
	v, err := r.ReadInt(32)
	if err != nil {
		return wrapf(KindShortRead, err, "read TAG_Int payload")
	}
	t.Value = int32(v)
	return nil
}

// Long is a signed 64-bit integer tag. Its wire id is 4 — see SPEC_FULL.md
// §0 for why this matters relative to the reference implementation.
type Long struct{ Value int64 }

func (t *Long) ID() ID           { return IDLong }
func (t *Long) TypeName() string { return IDLong.String() }

func (t *Long) writeValue(w *stream.Writer) error {
	return w.WriteInt(64, uint64(t.Value))
}

func (t *Long) readValue(r *stream.Reader, depth int, tr *budget.Tracker) error {
	if err := tr.Charge(128); err != nil {
		return wrapf(KindTagTooBig, err, "read TAG_Long")
	}
	v, err := r.ReadInt(64)
	if err != nil {
		return wrapf(KindShortRead, err, "read TAG_Long payload")
	}
	t.Value = int64(v)
	return nil
}

// Float is an IEEE-754 32-bit floating point tag, bit-cast from a uint32
// read in the stream's current byte order.
type Float struct{ Value float32 }

func (t *Float) ID() ID           { return IDFloat }
func (t *Float) TypeName() string { return IDFloat.String() }

func (t *Float) writeValue(w *stream.Writer) error {
	return w.WriteInt(32, uint64(math.Float32bits(t.Value)))
}

func (t *Float) readValue(r *stream.Reader, depth int, tr *budget.Tracker) error {
	if err := tr.Charge(96); err != nil {
		return wrapf(KindTagTooBig, err, "read TAG_Float")
	}
	v, err := r.ReadInt(32)
	if err != nil {
		return wrapf(KindShortRead, err, "read TAG_Float payload")
	}
	t.Value = math.Float32frombits(uint32(v))
	return nil
}

// Double is an IEEE-754 64-bit floating point tag, bit-cast from a uint64
// read in the stream's current byte order.
type Double struct{ Value float64 }

func (t *Double) ID() ID           { return IDDouble }
func (t *Double) TypeName() string { return IDDouble.String() }

func (t *Double) writeValue(w *stream.Writer) error {
	return w.WriteInt(64, math.Float64bits(t.Value))
}

func (t *Double) readValue(r *stream.Reader, depth int, tr *budget.Tracker) error {
	if err := tr.Charge(128); err != nil {
		return wrapf(KindTagTooBig, err, "read TAG_Double")
	}
	v, err := r.ReadInt(64)
	if err != nil {
		return wrapf(KindShortRead, err, "read TAG_Double payload")
	}
	t.Value = math.Float64frombits(v)
	return nil
}

// End is the terminator tag. It never appears as a named entry or a list
// element; it exists only to close a compound's entry list on the wire.
type End struct{}

func (t *End) ID() ID           { return IDEnd }
func (t *End) TypeName() string { return IDEnd.String() }

func (t *End) writeValue(w *stream.Writer) error { return nil }

func (t *End) readValue(r *stream.Reader, depth int, tr *budget.Tracker) error {
	return tr.Charge(64)
}

// AsByte returns v reinterpreted as a signed byte. Valid for every
// primitive numeric variant; returns an error for string, array, list, and
// compound tags.
func AsByte(t Tag) (int8, error) {
	switch v := t.(type) {
	case *Byte:
		return v.Value, nil
	case *Short:
		return int8(v.Value), nil
	case *Int:
		return int8(v.Value), nil
	case *Long:
		return int8(v.Value), nil
	case *Float:
		return int8(v.Value), nil
	case *Double:
		return int8(v.Value), nil
	default:
		return 0, newErr(KindInvalidTagID, "AsByte: %s has no numeric conversion", t.TypeName())
	}
}

// AsShort returns v reinterpreted as a signed 16-bit integer.
func AsShort(t Tag) (int16, error) {
	switch v := t.(type) {
	case *Byte:
		return int16(v.Value), nil
	case *Short:
		return v.Value, nil
	case *Int:
		return int16(v.Value), nil
	case *Long:
		return int16(v.Value), nil
	case *Float:
		return int16(v.Value), nil
	case *Double:
		return int16(v.Value), nil
	default:
		return 0, newErr(KindInvalidTagID, "AsShort: %s has no numeric conversion", t.TypeName())
	}
}

// AsInt returns v reinterpreted as a signed 32-bit integer.
func AsInt(t Tag) (int32, error) {
	switch v := t.(type) {
	case *Byte:
		return int32(v.Value), nil
	case *Short:
		return int32(v.Value), nil
	case *Int:
		return v.Value, nil
	case *Long:
		return int32(v.Value), nil
	case *Float:
		return int32(v.Value), nil
	case *Double:
		return int32(v.Value), nil
	default:
		return 0, newErr(KindInvalidTagID, "AsInt: %s has no numeric conversion", t.TypeName())
	}
}

// AsLong returns v reinterpreted as a signed 64-bit integer.
func AsLong(t Tag) (int64, error) {
	switch v := t.(type) {
	case *Byte:
		return int64(v.Value), nil
	case *Short:
		return int64(v.Value), nil
	case *Int:
		return int64(v.Value), nil
	case *Long:
		return v.Value, nil
	case *Float:
		return int64(v.Value), nil
	case *Double:
		return int64(v.Value), nil
	default:
		return 0, newErr(KindInvalidTagID, "AsLong: %s has no numeric conversion", t.TypeName())
	}
}

// AsFloat returns v reinterpreted as a 32-bit float.
func AsFloat(t Tag) (float32, error) {
	switch v := t.(type) {
	case *Byte:
		return float32(v.Value), nil
	case *Short:
		return float32(v.Value), nil
	case *Int:
		return float32(v.Value), nil
	case *Long:
		return float32(v.Value), nil
	case *Float:
		return v.Value, nil
	case *Double:
		return float32(v.Value), nil
	default:
		return 0, newErr(KindInvalidTagID, "AsFloat: %s has no numeric conversion", t.TypeName())
	}
}

// AsDouble returns v reinterpreted as a 64-bit float.
func AsDouble(t Tag) (float64, error) {
	switch v := t.(type) {
	case *Byte:
		return float64(v.Value), nil
	case *Short:
		return float64(v.Value), nil
	case *Int:
		return float64(v.Value), nil
	case *Long:
		return float64(v.Value), nil
	case *Float:
		return float64(v.Value), nil
	case *Double:
		return v.Value, nil
	default:
		return 0, newErr(KindInvalidTagID, "AsDouble: %s has no numeric conversion", t.TypeName())
	}
}
