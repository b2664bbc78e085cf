package gzipcodec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLooks(t *testing.T) {
	require.True(t, Looks([]byte{0x1f, 0x8b, 0x08}))
	require.False(t, Looks([]byte{0x0a, 0x00}))
	require.False(t, Looks(nil))
}

func TestDeflateInflateRoundTrip(t *testing.T) {
	original := []byte("the quick brown fox jumps over the lazy dog, thirty-two times over")
	compressed, err := Deflate(original, 0)
	require.NoError(t, err)
	require.True(t, Looks(compressed))

	inflated, err := Inflate(compressed, int64(len(original)))
	require.NoError(t, err)
	require.Equal(t, original, inflated)
}

func TestInflateRejectsGarbage(t *testing.T) {
	_, err := Inflate([]byte{0x00, 0x01, 0x02, 0x03}, 1024)
	require.Error(t, err)
}

func TestInflateStopsAtLimit(t *testing.T) {
	original := []byte("the quick brown fox jumps over the lazy dog, thirty-two times over")
	compressed, err := Deflate(original, 0)
	require.NoError(t, err)

	_, err = Inflate(compressed, int64(len(original)-1))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrTooLarge))
}
