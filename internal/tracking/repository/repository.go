package repository

import (
	"time"

	"reengage-backend/internal/tracking/domain"
)

// TrackingRepository defines the interface for tracking record access
type TrackingRepository interface {
	// Create creates a new tracking record
	Create(tracking *domain.Tracking) error

	// FindByActivityAndUser finds the active record for one (activity, user)
	// pair; returns (nil, nil) when absent
	FindByActivityAndUser(activityID, userID string) (*domain.Tracking, error)

	// FindByActivity returns every tracking record for an activity
	FindByActivity(activityID string) ([]*domain.Tracking, error)

	// FindDeadlineElapsed finds records whose tracked period has elapsed.
	// Returns records where completed = false AND completion_deadline < now.
	FindDeadlineElapsed(activityID string, now time.Time) ([]*domain.Tracking, error)

	// FindReminderDue finds records with a timer reminder due.
	// Returns records where email_deadline < now AND emails_sent < reminderLimit.
	FindReminderDue(activityID string, now time.Time, reminderLimit int) ([]*domain.Tracking, error)

	// Update updates an existing tracking record
	Update(tracking *domain.Tracking) error

	// Delete deletes the record for one (activity, user) pair
	Delete(activityID, userID string) error
}
