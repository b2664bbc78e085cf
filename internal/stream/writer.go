package stream

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Writer is a growable byte sink. It owns its buffer.
//
// Thread-safety: not safe for concurrent use.
type Writer struct {
	buf   []byte
	pos   int
	mark  int
	order ByteOrder
	sum   *xxhash.Digest
}

// NewWriter constructs an empty Writer.
func NewWriter() *Writer {
	return &Writer{order: BigEndian}
}

// NewWriterSize constructs a Writer with buf pre-allocated to at least
// size bytes of capacity.
func NewWriterSize(size int) *Writer {
	return &Writer{buf: make([]byte, 0, size), order: BigEndian}
}

// Valid always reports true for a non-nil Writer: unlike Reader, a Writer
// is never constructed over caller-supplied, possibly-nil data.
func (w *Writer) Valid() bool { return w != nil }

// Order returns the current byte order.
func (w *Writer) Order() ByteOrder { return w.order }

// SetOrder sets the byte order used by subsequent integer writes.
func (w *Writer) SetOrder(o ByteOrder) { w.order = o }

// Position returns the current write offset.
func (w *Writer) Position() int { return w.pos }

// Size returns the current logical size of the buffer.
func (w *Writer) Size() int { return len(w.buf) }

// Mark returns the current bookmark.
func (w *Writer) Mark() int { return w.mark }

// SetMark sets the bookmark unconditionally, so long as p is within bounds.
func (w *Writer) SetMark(p int) error {
	if p < 0 || p > len(w.buf) {
		return fmt.Errorf("stream: mark %d out of bounds [0,%d]", p, len(w.buf))
	}
	w.mark = p
	return nil
}

// Rewind moves the position back to the bookmark.
func (w *Writer) Rewind() { w.pos = w.mark }

// SeekBeg seeks to an absolute position. Growing past the end of the
// buffer on a subsequent write is allowed; seeking past it here is not.
func (w *Writer) SeekBeg(p int) error {
	if p < 0 || p > len(w.buf) {
		return fmt.Errorf("stream: seek %d out of bounds [0,%d]", p, len(w.buf))
	}
	w.pos = p
	return nil
}

// SeekCur seeks relative to the current position.
func (w *Writer) SeekCur(d int) error {
	return w.SeekBeg(w.pos + d)
}

// SeekEnd seeks relative to the end of the buffer.
func (w *Writer) SeekEnd(d int) error {
	return w.SeekBeg(len(w.buf) + d)
}

// grow ensures the buffer has room for n more bytes at pos, expanding to
// at least pos+n and zero-filling any gap.
func (w *Writer) grow(n int) {
	need := w.pos + n
	if need <= len(w.buf) {
		return
	}
	if need <= cap(w.buf) {
		w.buf = w.buf[:need]
		return
	}
	// Geometric growth to amortize repeated small writes.
	newCap := cap(w.buf)*2 + n
	if newCap < need {
		newCap = need
	}
	grown := make([]byte, need, newCap)
	copy(grown, w.buf)
	w.buf = grown
}

// Write appends p at the current position, growing the buffer as needed,
// and advances pos by len(p).
func (w *Writer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	w.grow(len(p))
	copy(w.buf[w.pos:], p)
	w.pos += len(p)
	if w.sum != nil {
		_, _ = w.sum.Write(p)
	}
	return len(p), nil
}

// WriteZeros writes n zero bytes.
func (w *Writer) WriteZeros(n int) error {
	if n < 0 {
		return fmt.Errorf("stream: negative zero-fill length %d", n)
	}
	_, err := w.Write(make([]byte, n))
	return err
}

// WriteInt emits the low widthBits bits of value in widthBits/8 bytes,
// per the current byte order.
func (w *Writer) WriteInt(widthBits int, value uint64) error {
	if widthBits <= 0 || widthBits > 64 || widthBits%8 != 0 {
		return fmt.Errorf("stream: invalid integer width %d bits", widthBits)
	}
	n := widthBits / 8
	b := getScratch(n)
	defer putScratch(b)

	switch w.order {
	case LittleEndian:
		for i := 0; i < n; i++ {
			b[i] = byte(value >> uint(8*i))
		}
	default: // BigEndian
		for i := 0; i < n; i++ {
			b[n-1-i] = byte(value >> uint(8*i))
		}
	}
	_, err := w.Write(b)
	return err
}

// Bytes returns the writer's current contents. The Writer keeps the
// returned slice as its own backing buffer; a caller that wants to detach
// it should use TakeBytes.
func (w *Writer) Bytes() []byte { return w.buf[:len(w.buf)] }

// TakeBytes hands the writer's buffer to the caller and resets the writer
// to empty. This is the idiomatic-Go equivalent of the reference
// implementation's keep_buffer(true) + get_buffer(): ownership transfers,
// and the Writer no longer aliases the returned slice.
func (w *Writer) TakeBytes() []byte {
	out := w.buf
	w.buf = nil
	w.pos = 0
	w.mark = 0
	return out
}

// EnableChecksum starts accumulating an xxhash64 of every byte written
// from this point forward. It has no effect on the wire format; it is a
// convenience for callers that want to verify a round-trip without a
// byte-for-byte compare (compound re-encoding order is not guaranteed to
// match the source).
func (w *Writer) EnableChecksum() {
	w.sum = xxhash.New()
}

// Checksum returns the running xxhash64 of bytes written since
// EnableChecksum was called. It returns (0, false) if checksumming was
// never enabled.
func (w *Writer) Checksum() (uint64, bool) {
	if w.sum == nil {
		return 0, false
	}
	return w.sum.Sum64(), true
}
