// Package nbttesting provides test doubles for exercising the NBT codec's
// error paths without constructing real malformed files by hand.
package nbttesting

// ShortBuffer returns data truncated to n bytes, for exercising short-read
// failures in codec tests. If n > len(data), data is returned unchanged.
func ShortBuffer(data []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n > len(data) {
		return data
	}
	return data[:n]
}

// Truncator wraps a byte slice and serves progressively longer prefixes of
// it, for tests that want to confirm a decoder fails cleanly (no partial
// tree) at every truncation point rather than just at one chosen length.
type Truncator struct {
	data []byte
}

// NewTruncator wraps data for incremental truncation.
func NewTruncator(data []byte) *Truncator {
	return &Truncator{data: data}
}

// Len returns the full untruncated length.
func (t *Truncator) Len() int { return len(t.data) }

// Prefix returns the first n bytes of the wrapped data.
func (t *Truncator) Prefix(n int) []byte {
	return ShortBuffer(t.data, n)
}
