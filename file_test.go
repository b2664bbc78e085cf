package nbt

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteFileReadFileRoundTrip(t *testing.T) {
	c := NewCompound()
	require.NoError(t, c.Insert("name", &String{Value: "Steve"}))
	require.NoError(t, c.Insert("health", &Short{Value: 20}))

	path := filepath.Join(t.TempDir(), "player.nbt")
	require.NoError(t, WriteFile(path, c))

	decoded, err := ReadFile(path)
	require.NoError(t, err)
	got := decoded.(*Compound)
	v, ok := got.Get("name")
	require.True(t, ok)
	require.Equal(t, "Steve", v.(*String).Value)
}

func TestReadFileMissingPathFails(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "does-not-exist.nbt"))
	require.Error(t, err)
}
