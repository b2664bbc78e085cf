package nbt

import (
	"github.com/scigolib/nbt/internal/budget"
	"github.com/scigolib/nbt/internal/stream"
)

// maxStringLen is the largest string length the wire format's uint16
// length prefix can represent.
const maxStringLen = 65535

// String is a length-prefixed (uint16) UTF-8 string tag, no NUL
// terminator.
type String struct{ Value string }

func (t *String) ID() ID           { return IDString }
func (t *String) TypeName() string { return IDString.String() }

func (t *String) writeValue(w *stream.Writer) error {
	return writeWireString(w, t.Value)
}

func (t *String) readValue(r *stream.Reader, depth int, tr *budget.Tracker) error {
	if err := tr.Charge(288); err != nil {
		return wrapf(KindTagTooBig, err, "read TAG_String header")
	}
	s, n, err := readWireString(r)
	if err != nil {
		return err
	}
	if err := tr.Charge(16 * int64(n)); err != nil {
		return wrapf(KindTagTooBig, err, "read TAG_String payload")
	}
	t.Value = s
	return nil
}

// writeWireString emits a uint16-length-prefixed UTF-8 string, failing if
// it exceeds maxStringLen bytes.
func writeWireString(w *stream.Writer, s string) error {
	if len(s) > maxStringLen {
		return newErr(KindStringTooLong, "string of %d bytes exceeds %d-byte maximum", len(s), maxStringLen)
	}
	if err := w.WriteInt(16, uint64(uint16(len(s)))); err != nil {
		return err
	}
	_, err := w.Write([]byte(s))
	return err
}

// readWireString reads a uint16-length-prefixed UTF-8 string, returning
// its value and byte length.
func readWireString(r *stream.Reader) (string, int, error) {
	lv, err := r.ReadInt(16)
	if err != nil {
		return "", 0, wrapf(KindShortRead, err, "read string length")
	}
	n := int(uint16(lv))
	if n == 0 {
		return "", 0, nil
	}
	b, err := r.Read(n)
	if err != nil {
		return "", 0, wrapf(KindShortRead, err, "read string bytes")
	}
	return string(b), n, nil
}
