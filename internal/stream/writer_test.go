package stream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterWriteInt_BigEndian(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		value    uint64
		expected []byte
	}{
		{"8 bit", 8, 0x2A, []byte{0x2A}},
		{"16 bit", 16, 0x0102, []byte{0x01, 0x02}},
		{"32 bit float bits of 1.0", 32, 0x3F800000, []byte{0x3F, 0x80, 0x00, 0x00}},
		{"64 bit max", 64, 0xFFFFFFFFFFFFFFFF, []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter()
			require.NoError(t, w.WriteInt(tt.width, tt.value))
			require.Equal(t, tt.expected, w.Bytes())
		})
	}
}

func TestWriterWriteInt_LittleEndian(t *testing.T) {
	w := NewWriter()
	w.SetOrder(LittleEndian)
	require.NoError(t, w.WriteInt(32, 0x0201))
	require.Equal(t, []byte{0x01, 0x02, 0x00, 0x00}, w.Bytes())
}

func TestWriterGrows(t *testing.T) {
	w := NewWriter()
	big := make([]byte, 10000)
	for i := range big {
		big[i] = byte(i)
	}
	n, err := w.Write(big)
	require.NoError(t, err)
	require.Equal(t, len(big), n)
	require.Equal(t, big, w.Bytes())
}

func TestWriterWriteZeros(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteZeros(4))
	require.Equal(t, []byte{0, 0, 0, 0}, w.Bytes())
}

func TestWriterTakeBytes(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteInt(8, 1))
	out := w.TakeBytes()
	require.Equal(t, []byte{1}, out)
	require.Equal(t, 0, w.Size())
}

func TestWriterSeekMarkRewind(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteInt(32, 0))
	require.NoError(t, w.SetMark(0))
	require.NoError(t, w.SeekBeg(0))
	require.NoError(t, w.WriteInt(16, 0xBEEF))
	w.Rewind()
	require.Equal(t, 0, w.Position())
}

func TestWriterChecksum(t *testing.T) {
	w := NewWriter()
	_, ok := w.Checksum()
	require.False(t, ok)

	w.EnableChecksum()
	require.NoError(t, w.WriteInt(8, 0x42))
	sum, ok := w.Checksum()
	require.True(t, ok)
	require.NotZero(t, sum)
}
