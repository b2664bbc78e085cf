package nbt

import (
	"testing"

	"github.com/scigolib/nbt/internal/budget"
	"github.com/scigolib/nbt/internal/stream"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, tag Tag) Tag {
	t.Helper()
	w := stream.NewWriter()
	require.NoError(t, tag.writeValue(w))

	out, err := Create(tag.ID())
	require.NoError(t, err)

	r := stream.NewReader(w.Bytes())
	tr := budget.New(budget.Unbounded)
	require.NoError(t, out.readValue(r, 0, tr))
	return out
}

func TestByteRoundTrip(t *testing.T) {
	got := roundTrip(t, &Byte{Value: -42}).(*Byte)
	require.Equal(t, int8(-42), got.Value)
}

func TestShortRoundTrip(t *testing.T) {
	got := roundTrip(t, &Short{Value: -1}).(*Short)
	require.Equal(t, int16(-1), got.Value)
}

func TestShortDoesNotTruncateThroughInt8(t *testing.T) {
	// The reference implementation's sign-extension bug would corrupt a
	// value like 0x0142 by truncating through int8_t first.
	got := roundTrip(t, &Short{Value: 0x0142}).(*Short)
	require.Equal(t, int16(0x0142), got.Value)
}

func TestIntRoundTrip(t *testing.T) {
	got := roundTrip(t, &Int{Value: -123456}).(*Int)
	require.Equal(t, int32(-123456), got.Value)
}

func TestLongRoundTrip(t *testing.T) {
	got := roundTrip(t, &Long{Value: -9223372036854775808}).(*Long)
	require.Equal(t, int64(-9223372036854775808), got.Value)
}

func TestLongReportsID4(t *testing.T) {
	require.Equal(t, ID(4), (&Long{}).ID())
}

func TestFloatRoundTrip(t *testing.T) {
	got := roundTrip(t, &Float{Value: 1.0}).(*Float)
	require.Equal(t, float32(1.0), got.Value)
}

func TestDoubleRoundTrip(t *testing.T) {
	got := roundTrip(t, &Double{Value: 3.14159}).(*Double)
	require.Equal(t, float64(3.14159), got.Value)
}

func TestEndWritesNoPayload(t *testing.T) {
	w := stream.NewWriter()
	require.NoError(t, (&End{}).writeValue(w))
	require.Equal(t, 0, w.Size())
}

func TestAsByteConversions(t *testing.T) {
	v, err := AsByte(&Short{Value: 300})
	require.NoError(t, err)
	require.Equal(t, int8(44), v) // 300 keeps only its low 8 bits

	_, err = AsByte(&String{Value: "x"})
	require.Error(t, err)
}

func TestAsLongWidensByte(t *testing.T) {
	v, err := AsLong(&Byte{Value: 7})
	require.NoError(t, err)
	require.Equal(t, int64(7), v)
}

func TestAsDoubleFromFloat(t *testing.T) {
	v, err := AsDouble(&Float{Value: 2.5})
	require.NoError(t, err)
	require.Equal(t, float64(2.5), v)
}
