package domain

import "time"

// Enrolment is a membership row granting a user access to an activity.
// The reconciler only reads these; enrolment management is owned elsewhere.
type Enrolment struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	ActivityID string    `json:"activity_id" gorm:"index:idx_enrolment_activity_user,unique;not null"`
	UserID     string    `json:"user_id" gorm:"index:idx_enrolment_activity_user,unique;not null"`
	Active     bool      `json:"active" gorm:"default:true"`
	EnrolledAt time.Time `json:"enrolled_at"`
}
