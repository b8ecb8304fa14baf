package domain

import "time"

// State is the completion state of a course-module for a user
type State string

const (
	StateIncomplete State = "incomplete"
	StateComplete   State = "complete"
)

// Mark is the external completion-tracking record asserting whether a user
// has satisfied an activity's completion criteria. The reconciler creates
// marks and moves them to StateComplete; it never deletes them.
type Mark struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	UserID         string    `json:"user_id" gorm:"index:idx_mark_user_module,unique;not null"`
	CourseModuleID string    `json:"course_module_id" gorm:"index:idx_mark_user_module,unique;not null"`
	CourseID       string    `json:"course_id" gorm:"index;not null"`
	State          State     `json:"state" gorm:"default:incomplete"`
	Viewed         bool      `json:"viewed" gorm:"default:false"`
	TimeModified   time.Time `json:"time_modified"`
}
