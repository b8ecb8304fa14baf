package usecase

import (
	"context"
	"time"

	activitydomain "reengage-backend/internal/activity/domain"
	completiondomain "reengage-backend/internal/completion/domain"
	trackingdomain "reengage-backend/internal/tracking/domain"
)

// Reconciler advances the re-engagement lifecycle for one activity instance.
// It is invoked once per scheduled run; repeated invocations with the same
// clock are idempotent. The caller guarantees at most one in-flight run per
// activity id.
type Reconciler interface {
	// Run executes one reconciliation pass for the activity at the given time:
	// onboards newly eligible users, processes elapsed completion deadlines,
	// then processes due timer reminders. A missing activity configuration
	// makes the whole run a no-op.
	Run(ctx context.Context, activityID string, now time.Time) error
}

// EligibilityQuery returns users who should begin tracking for an activity
// now. Implementations must exclude users with an existing tracking record.
type EligibilityQuery interface {
	FindEligibleUsers(activityID string) ([]string, error)
}

// EnrolmentChecker reports whether a user retains the membership required to
// continue tracking for an activity.
type EnrolmentChecker interface {
	IsEnrolled(activityID, userID string) (bool, error)
}

// NotificationSink dispatches a re-engagement email (and any configured push
// channels) for a tracking record snapshot. Dispatch is fire-and-forget:
// failures are logged by the reconciler but never affect the state machine.
type NotificationSink interface {
	Send(ctx context.Context, activity *activitydomain.Activity, tracking *trackingdomain.Tracking) error
}

// EventPublisher publishes completion-changed notifications for downstream
// consumers such as dependent-activity unlocking.
type EventPublisher interface {
	CompletionChanged(ctx context.Context, markID, courseModuleID, userID string, state completiondomain.State) error
}
