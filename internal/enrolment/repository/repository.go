package repository

// EnrolmentRepository defines the interface for enrolment membership lookups
type EnrolmentRepository interface {
	// IsEnrolled reports whether the user retains an active enrolment for
	// the activity
	IsEnrolled(activityID, userID string) (bool, error)

	// FindEligibleUsers returns users who should begin tracking now: actively
	// enrolled users with no existing tracking record for the activity
	FindEligibleUsers(activityID string) ([]string, error)
}
