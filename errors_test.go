package nbt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorIsMatchesKind(t *testing.T) {
	err := newErr(KindShortRead, "truncated buffer")
	require.True(t, errors.Is(err, &Error{Kind: KindShortRead}))
	require.False(t, errors.Is(err, &Error{Kind: KindTagTooBig}))
}

func TestErrorUnwrapReachesCause(t *testing.T) {
	cause := errors.New("underlying failure")
	err := wrapf(KindBadCompression, cause, "inflate blob")
	require.ErrorIs(t, err, cause)
}

func TestErrorMessageIncludesContext(t *testing.T) {
	err := newErr(KindInvalidTagID, "id %d not in {0..12}", 99)
	require.Contains(t, err.Error(), "invalid-tag-id")
	require.Contains(t, err.Error(), "99")
}

func TestKindStringCoversAllValues(t *testing.T) {
	kinds := []Kind{
		KindTagTooBig, KindDepthExceeded, KindInvalidTagID, KindMissingListType,
		KindStringTooLong, KindShortRead, KindBadCompression, KindOutOfMemory,
		KindNotACompound, KindNullArgument,
	}
	for _, k := range kinds {
		require.NotEqual(t, "unknown", k.String())
	}
	require.Equal(t, "unknown", Kind(999).String())
}
