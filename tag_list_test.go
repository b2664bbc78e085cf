package nbt

import (
	"testing"

	"github.com/scigolib/nbt/internal/budget"
	"github.com/scigolib/nbt/internal/stream"
	"github.com/stretchr/testify/require"
)

func TestListAppendFixesElementType(t *testing.T) {
	l := NewList()
	require.NoError(t, l.Append(&Int{Value: 1}))
	require.Equal(t, IDInt, l.ElementType())
	require.Error(t, l.Append(&String{Value: "nope"}))
}

func TestListAppendNilFails(t *testing.T) {
	l := NewList()
	require.Error(t, l.Append(nil))
}

func TestListPopResetsTypeWhenEmptied(t *testing.T) {
	l := NewList()
	require.NoError(t, l.Append(&Int{Value: 1}))
	popped, ok := l.Pop()
	require.True(t, ok)
	require.Equal(t, &Int{Value: 1}, popped)
	require.Equal(t, IDEnd, l.ElementType())

	_, ok = l.Pop()
	require.False(t, ok)
}

func TestListRoundTrip(t *testing.T) {
	l := NewList()
	require.NoError(t, l.Append(&Short{Value: 1}))
	require.NoError(t, l.Append(&Short{Value: 2}))
	require.NoError(t, l.Append(&Short{Value: 3}))

	w := stream.NewWriter()
	require.NoError(t, l.writeValue(w))

	got := &List{}
	r := stream.NewReader(w.Bytes())
	require.NoError(t, got.readValue(r, 0, budget.New(budget.Unbounded)))

	require.Equal(t, IDShort, got.ElementType())
	require.Equal(t, 3, got.Len())
	for i, item := range got.Items() {
		require.Equal(t, int16(i+1), item.(*Short).Value)
	}
}

func TestEmptyListRoundTrip(t *testing.T) {
	l := NewList()
	w := stream.NewWriter()
	require.NoError(t, l.writeValue(w))

	got := &List{}
	r := stream.NewReader(w.Bytes())
	require.NoError(t, got.readValue(r, 0, budget.New(budget.Unbounded)))
	require.Equal(t, IDEnd, got.ElementType())
	require.Equal(t, 0, got.Len())
}

func TestListRejectsMissingListType(t *testing.T) {
	w := stream.NewWriter()
	require.NoError(t, w.WriteInt(8, uint64(IDEnd)))
	require.NoError(t, w.WriteInt(32, 1)) // count 1 but element type End

	got := &List{}
	r := stream.NewReader(w.Bytes())
	err := got.readValue(r, 0, budget.New(budget.Unbounded))
	require.Error(t, err)
	var nbtErr *Error
	require.ErrorAs(t, err, &nbtErr)
	require.Equal(t, KindMissingListType, nbtErr.Kind)
}

func TestListRejectsDepthExceeded(t *testing.T) {
	got := &List{}
	r := stream.NewReader([]byte{byte(IDList), 0, 0, 0, 0})
	err := got.readValue(r, maxDepth+1, budget.New(budget.Unbounded))
	require.Error(t, err)
	var nbtErr *Error
	require.ErrorAs(t, err, &nbtErr)
	require.Equal(t, KindDepthExceeded, nbtErr.Kind)
}

func TestListRemoveByIdentity(t *testing.T) {
	l := NewList()
	a := &Int{Value: 1}
	b := &Int{Value: 2}
	require.NoError(t, l.Append(a))
	require.NoError(t, l.Append(b))

	require.True(t, l.RemoveByIdentity(a))
	require.Equal(t, 1, l.Len())
	require.False(t, l.RemoveByIdentity(a))
}
