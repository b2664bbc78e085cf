package nbt

import "github.com/scigolib/nbt/internal/stream"

// Order is the external name for the byte-order tag carried on every
// Source and Sink.
type Order = stream.ByteOrder

// The two byte orders a Source or Sink can carry.
const (
	BigEndian    = stream.BigEndian
	LittleEndian = stream.LittleEndian
)

// Source is a read-side cursor over an immutable byte buffer — the "byte
// source" abstraction every tag variant reads against. It borrows the
// buffer it is constructed from.
type Source struct{ r *stream.Reader }

// NewSource constructs a Source over buf. buf is borrowed; the caller must
// not mutate it while the Source is in use.
func NewSource(buf []byte) *Source {
	return &Source{r: stream.NewReader(buf)}
}

// Valid reports whether the source was constructed over a usable buffer.
func (s *Source) Valid() bool { return s.r.Valid() }

// Order returns the current byte order.
func (s *Source) Order() Order { return s.r.Order() }

// SetOrder sets the byte order used by subsequent integer reads.
func (s *Source) SetOrder(o Order) { s.r.SetOrder(o) }

// Position returns the current read offset.
func (s *Source) Position() int { return s.r.Position() }

// Size returns the total length of the underlying buffer.
func (s *Source) Size() int { return s.r.Size() }

// Mark returns the current bookmark.
func (s *Source) Mark() int { return s.r.Mark() }

// SetMark sets the bookmark, failing if p is out of bounds.
func (s *Source) SetMark(p int) error { return s.r.SetMark(p) }

// Rewind moves the read position back to the bookmark.
func (s *Source) Rewind() { s.r.Rewind() }

// Bytes returns the source's underlying buffer. The caller must not mutate
// the returned slice.
func (s *Source) Bytes() []byte { return s.r.Bytes() }

// SeekBeg seeks to an absolute position.
func (s *Source) SeekBeg(p int) error { return s.r.SeekBeg(p) }

// SeekCur seeks relative to the current position.
func (s *Source) SeekCur(d int) error { return s.r.SeekCur(d) }

// SeekEnd seeks relative to the end of the buffer.
func (s *Source) SeekEnd(d int) error { return s.r.SeekEnd(d) }

// Sink is a growable byte buffer — the "byte sink" abstraction every tag
// variant writes against. It owns its buffer.
type Sink struct{ w *stream.Writer }

// NewSink constructs an empty Sink.
func NewSink() *Sink { return &Sink{w: stream.NewWriter()} }

// NewSinkSize constructs a Sink pre-allocated to at least size bytes.
func NewSinkSize(size int) *Sink { return &Sink{w: stream.NewWriterSize(size)} }

// Valid always reports true for a non-nil Sink.
func (s *Sink) Valid() bool { return s.w.Valid() }

// Order returns the current byte order.
func (s *Sink) Order() Order { return s.w.Order() }

// SetOrder sets the byte order used by subsequent integer writes.
func (s *Sink) SetOrder(o Order) { s.w.SetOrder(o) }

// Position returns the current write offset.
func (s *Sink) Position() int { return s.w.Position() }

// Size returns the current logical size of the buffer.
func (s *Sink) Size() int { return s.w.Size() }

// Mark returns the current bookmark.
func (s *Sink) Mark() int { return s.w.Mark() }

// SetMark sets the bookmark, failing if p is out of bounds.
func (s *Sink) SetMark(p int) error { return s.w.SetMark(p) }

// Rewind moves the write position back to the bookmark.
func (s *Sink) Rewind() { s.w.Rewind() }

// Bytes returns the sink's current contents.
func (s *Sink) Bytes() []byte { return s.w.Bytes() }

// TakeBytes hands the sink's buffer to the caller and resets the sink to
// empty — the idiomatic-Go equivalent of the reference implementation's
// keep_buffer(true) + get_buffer().
func (s *Sink) TakeBytes() []byte { return s.w.TakeBytes() }

// EnableChecksum starts accumulating an xxhash64 of every byte written
// from this point forward. See internal/stream.Writer.EnableChecksum.
func (s *Sink) EnableChecksum() { s.w.EnableChecksum() }

// Checksum returns the running xxhash64, or (0, false) if EnableChecksum
// was never called.
func (s *Sink) Checksum() (uint64, bool) { return s.w.Checksum() }
