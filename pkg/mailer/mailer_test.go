package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComposeBuildsRFC822Message(t *testing.T) {
	m := New("Re-engagement", "noreply@example.com", "id", "secret", "refresh")

	raw, err := m.compose([]string{"learner@example.com"}, "Come back", "We miss you.")
	require.NoError(t, err)

	msg := string(raw)
	require.Contains(t, msg, "noreply@example.com")
	require.Contains(t, msg, "learner@example.com")
	require.Contains(t, msg, "Subject: Come back")
	require.Contains(t, msg, "We miss you.")
}

func TestComposeMultipleRecipients(t *testing.T) {
	m := New("Re-engagement", "noreply@example.com", "id", "secret", "refresh")

	raw, err := m.compose([]string{"a@example.com", "b@example.com"}, "Hello", "body")
	require.NoError(t, err)
	require.Contains(t, string(raw), "a@example.com")
	require.Contains(t, string(raw), "b@example.com")
}
