package domain

import "time"

// Tracking is the per-user state of an in-progress re-engagement period.
// Exactly one active record exists per (activity, user) pair; terminal
// transitions delete the record rather than flagging it.
type Tracking struct {
	ID         string `json:"id" gorm:"primaryKey"`
	ActivityID string `json:"activity_id" gorm:"index:idx_tracking_activity_user,unique;not null"`
	UserID     string `json:"user_id" gorm:"index:idx_tracking_activity_user,unique;not null"`

	// CompletionDeadline is when the tracked period is considered elapsed
	CompletionDeadline time.Time `json:"completion_deadline" gorm:"index;not null"`
	// EmailDeadline is when the next timer reminder becomes due
	EmailDeadline time.Time `json:"email_deadline" gorm:"index;not null"`

	Completed  bool `json:"completed" gorm:"default:false"`
	EmailsSent int  `json:"emails_sent" gorm:"default:0"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DeadlineElapsed reports whether the tracked period has passed at now
func (t *Tracking) DeadlineElapsed(now time.Time) bool {
	return !t.Completed && t.CompletionDeadline.Before(now)
}

// ReminderDue reports whether a timer reminder is due at now, given the
// activity's reminder limit
func (t *Tracking) ReminderDue(now time.Time, reminderLimit int) bool {
	return t.EmailDeadline.Before(now) && t.EmailsSent < reminderLimit
}
