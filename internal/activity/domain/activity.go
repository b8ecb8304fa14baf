package domain

import "time"

// EmailPolicy controls when re-engagement emails are sent for an activity
type EmailPolicy string

const (
	EmailNever        EmailPolicy = "never"
	EmailOnCompletion EmailPolicy = "on_completion"
	EmailOnTimer      EmailPolicy = "on_timer"
)

// Recipient selects who receives re-engagement emails
type Recipient string

const (
	RecipientUser       Recipient = "user"
	RecipientManager    Recipient = "manager"
	RecipientThirdParty Recipient = "third_party"
)

// Activity is the configuration of one re-engagement activity instance.
// The reconciler treats it as read-only.
type Activity struct {
	ID             string `json:"id" gorm:"primaryKey"`
	CourseID       string `json:"course_id" gorm:"index;not null"`
	CourseModuleID string `json:"course_module_id" gorm:"index;not null"`
	Name           string `json:"name" gorm:"not null"`

	// DurationSeconds is how long a user is tracked before the period elapses
	DurationSeconds int64 `json:"duration_seconds" gorm:"not null"`
	// EmailDelaySeconds is how long after onboarding (or a previous reminder)
	// the next reminder becomes due
	EmailDelaySeconds int64 `json:"email_delay_seconds" gorm:"not null"`

	EmailPolicy   EmailPolicy `json:"email_policy" gorm:"default:never"`
	ReminderLimit int         `json:"reminder_limit" gorm:"default:1"`

	EmailSubject     string    `json:"email_subject,omitempty"`
	EmailBody        string    `json:"email_body,omitempty"`
	EmailRecipient   Recipient `json:"email_recipient" gorm:"default:user"`
	ThirdPartyEmails string    `json:"third_party_emails,omitempty"` // comma-separated addresses

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Duration returns the tracked period as a time.Duration
func (a *Activity) Duration() time.Duration {
	return time.Duration(a.DurationSeconds) * time.Second
}

// EmailDelay returns the reminder delay as a time.Duration
func (a *Activity) EmailDelay() time.Duration {
	return time.Duration(a.EmailDelaySeconds) * time.Second
}

// ParseEmailPolicy validates a raw policy string, defaulting to EmailNever
func ParseEmailPolicy(s string) EmailPolicy {
	switch EmailPolicy(s) {
	case EmailOnCompletion, EmailOnTimer:
		return EmailPolicy(s)
	default:
		return EmailNever
	}
}

// ParseRecipient validates a raw recipient string, defaulting to RecipientUser
func ParseRecipient(s string) Recipient {
	switch Recipient(s) {
	case RecipientManager, RecipientThirdParty:
		return Recipient(s)
	default:
		return RecipientUser
	}
}
