package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDeadlineElapsed(t *testing.T) {
	deadline := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	rec := &Tracking{CompletionDeadline: deadline}

	require.False(t, rec.DeadlineElapsed(deadline), "strictly-before comparison")
	require.False(t, rec.DeadlineElapsed(deadline.Add(-time.Second)))
	require.True(t, rec.DeadlineElapsed(deadline.Add(time.Second)))

	rec.Completed = true
	require.False(t, rec.DeadlineElapsed(deadline.Add(time.Second)), "completed records are never elapsed")
}

func TestReminderDue(t *testing.T) {
	deadline := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	rec := &Tracking{EmailDeadline: deadline, EmailsSent: 0}

	require.False(t, rec.ReminderDue(deadline, 2))
	require.True(t, rec.ReminderDue(deadline.Add(time.Second), 2))

	rec.EmailsSent = 2
	require.False(t, rec.ReminderDue(deadline.Add(time.Second), 2), "budget exhausted")
}
