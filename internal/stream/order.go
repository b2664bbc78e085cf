// Package stream provides the byte-order-aware read cursor and write sink
// that every NBT tag variant serializes against.
package stream

// ByteOrder selects how multi-byte integers are assembled and emitted.
// It is carried on the stream instance, not passed per-call, mirroring the
// single per-stream byte-order tag the NBT wire format requires.
type ByteOrder int

const (
	// BigEndian assembles byte i into bits [8*(width-1-i), 8*(width-i)).
	// This is the only order the NBT wire format itself uses.
	BigEndian ByteOrder = iota
	// LittleEndian assembles byte i into bits [8*i, 8*i+8).
	LittleEndian
)
