// Package gzipcodec implements the transparent compression envelope used
// by the top-level NBT codec: detect the gzip magic byte, then inflate
// using a reader that accepts either zlib or gzip framing (mirroring the
// reference implementation's "window bits 47" inflate configuration).
package gzipcodec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// Magic is the first byte of a gzip stream; its presence at the start of
// an NBT blob signals that the remainder must be inflated before parsing.
const Magic = 0x1f

// ErrTooLarge is returned by Inflate when the decompressed stream would
// exceed the caller's limit. Callers distinguish this from a corrupt
// stream via errors.Is.
var ErrTooLarge = errors.New("gzipcodec: inflated data exceeds limit")

// Looks reports whether buf begins with the gzip magic byte.
func Looks(buf []byte) bool {
	return len(buf) > 0 && buf[0] == Magic
}

// Inflate decompresses data, accepting either gzip or zlib framing, and
// returns the decompressed bytes. It fails if neither framing can be
// established, if inflation itself errors partway through, or if the
// decompressed stream exceeds limit bytes — the read stops at limit+1
// bytes rather than inflating the whole stream first, so a caller with a
// small limit never pays for decompressing a gzip bomb.
func Inflate(data []byte, limit int64) ([]byte, error) {
	if gr, err := gzip.NewReader(bytes.NewReader(data)); err == nil {
		defer func() { _ = gr.Close() }()
		return readBounded(gr, limit)
	}

	if zr, err := zlib.NewReader(bytes.NewReader(data)); err == nil {
		defer func() { _ = zr.Close() }()
		return readBounded(zr, limit)
	}

	return nil, fmt.Errorf("gzipcodec: bad gzip compressed data: neither gzip nor zlib framing recognized")
}

// readBounded drains r, refusing to read past limit+1 bytes.
func readBounded(r io.Reader, limit int64) ([]byte, error) {
	out, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("gzipcodec: bad gzip compressed data: %w", err)
	}
	if int64(len(out)) > limit {
		return nil, fmt.Errorf("%w: exceeds %d bytes", ErrTooLarge, limit)
	}
	return out, nil
}

// Deflate compresses data as a gzip stream at the given compression
// level (klauspost/compress/gzip's DefaultCompression if level is 0).
func Deflate(data []byte, level int) ([]byte, error) {
	if level == 0 {
		level = gzip.DefaultCompression
	}
	var buf bytes.Buffer
	w, err := gzip.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, fmt.Errorf("gzipcodec: writer creation failed: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("gzipcodec: compression failed: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("gzipcodec: close failed: %w", err)
	}
	return buf.Bytes(), nil
}
