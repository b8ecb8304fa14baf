package cache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStorePutGetInvalidate(t *testing.T) {
	s := NewStore()

	_, ok := s.Get("user-1", "course-1")
	require.False(t, ok)

	s.Put("user-1", "course-1", "view-a")
	s.Put("user-1", "course-2", "view-b")

	v, ok := s.Get("user-1", "course-1")
	require.True(t, ok)
	require.Equal(t, "view-a", v)

	require.NoError(t, s.Invalidate("user-1", "course-1"))

	_, ok = s.Get("user-1", "course-1")
	require.False(t, ok)

	// Other course entries are untouched
	_, ok = s.Get("user-1", "course-2")
	require.True(t, ok)
}

func TestInvalidateMissingEntryIsHarmless(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Invalidate("nobody", "nothing"))
}
