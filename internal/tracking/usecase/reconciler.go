package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	activitydomain "reengage-backend/internal/activity/domain"
	activityrepo "reengage-backend/internal/activity/repository"
	"reengage-backend/internal/completion/cache"
	completiondomain "reengage-backend/internal/completion/domain"
	completionrepo "reengage-backend/internal/completion/repository"
	"reengage-backend/internal/observability"
	"reengage-backend/internal/tracking/domain"
	"reengage-backend/internal/tracking/repository"
)

// reconciler implements the Reconciler interface. All infrastructure is
// injected behind narrow interfaces; the state machine below is the single
// owner of tracking record transitions.
type reconciler struct {
	activityRepo   activityrepo.ActivityRepository
	trackingRepo   repository.TrackingRepository
	completionRepo completionrepo.CompletionRepository
	eligibility    EligibilityQuery
	enrolment      EnrolmentChecker
	notifier       NotificationSink
	events         EventPublisher
	cache          cache.Invalidator
}

// NewReconciler creates a new Reconciler
func NewReconciler(
	activityRepo activityrepo.ActivityRepository,
	trackingRepo repository.TrackingRepository,
	completionRepo completionrepo.CompletionRepository,
	eligibility EligibilityQuery,
	enrolment EnrolmentChecker,
	notifier NotificationSink,
	events EventPublisher,
	invalidator cache.Invalidator,
) Reconciler {
	return &reconciler{
		activityRepo:   activityRepo,
		trackingRepo:   trackingRepo,
		completionRepo: completionRepo,
		eligibility:    eligibility,
		enrolment:      enrolment,
		notifier:       notifier,
		events:         events,
		cache:          invalidator,
	}
}

func (r *reconciler) Run(ctx context.Context, activityID string, now time.Time) error {
	activity, err := r.activityRepo.FindByID(activityID)
	if err != nil {
		observability.RecordRun("error", time.Now())
		return fmt.Errorf("load activity %s: %w", activityID, err)
	}
	if activity == nil {
		log.Printf("[Reconciler] No configuration for activity %s, skipping run", activityID)
		observability.RecordRun("noop", time.Now())
		return nil
	}

	r.onboardEligibleUsers(activity, now)
	// Elapsed deadlines must be processed before reminders so that records
	// completed in this pass are visible to the reminder pass.
	r.processElapsedDeadlines(ctx, activity, now)
	r.processDueReminders(ctx, activity, now)

	observability.RecordRun("ok", time.Now())
	return nil
}

// onboardEligibleUsers starts tracking for users returned by the eligibility
// query: one tracking record plus an incomplete completion mark each.
func (r *reconciler) onboardEligibleUsers(activity *activitydomain.Activity, now time.Time) {
	userIDs, err := r.eligibility.FindEligibleUsers(activity.ID)
	if err != nil {
		log.Printf("[Reconciler] Error querying eligible users for activity %s: %v", activity.ID, err)
		return
	}

	for _, userID := range userIDs {
		tracking := &domain.Tracking{
			ActivityID:         activity.ID,
			UserID:             userID,
			CompletionDeadline: now.Add(activity.Duration()),
			EmailDeadline:      now.Add(activity.EmailDelay()),
		}
		if err := r.trackingRepo.Create(tracking); err != nil {
			log.Printf("[Reconciler] Error creating tracking for user %s: %v", userID, err)
			continue
		}

		mark, err := r.completionRepo.FindByUserAndModule(userID, activity.CourseModuleID)
		if err != nil {
			log.Printf("[Reconciler] Error looking up completion mark for user %s: %v", userID, err)
		} else if mark == nil {
			mark = &completiondomain.Mark{
				UserID:         userID,
				CourseModuleID: activity.CourseModuleID,
				CourseID:       activity.CourseID,
				State:          completiondomain.StateIncomplete,
			}
			if err := r.completionRepo.Create(mark); err != nil {
				log.Printf("[Reconciler] Error creating completion mark for user %s: %v", userID, err)
			}
		}

		observability.RecordTransition("onboarded")
	}
}

// processElapsedDeadlines handles records whose tracked period has elapsed:
// prune unenrolled users, mark completion, then either delete the record or
// keep it for a future reminder pass depending on the email policy.
func (r *reconciler) processElapsedDeadlines(ctx context.Context, activity *activitydomain.Activity, now time.Time) {
	records, err := r.trackingRepo.FindDeadlineElapsed(activity.ID, now)
	if err != nil {
		log.Printf("[Reconciler] Error querying elapsed records for activity %s: %v", activity.ID, err)
		return
	}

	for _, rec := range records {
		if r.pruneIfUnenrolled(activity, rec) {
			continue
		}

		if err := r.markComplete(ctx, activity, rec.UserID); err != nil {
			log.Printf("[Reconciler] Error marking completion for user %s: %v", rec.UserID, err)
			continue
		}

		// A timer-policy record with no reminder sent yet stays behind,
		// flagged completed, so the reminder pass can still fire for it and
		// eventually delete it. Every other policy is done with the record.
		if activity.EmailPolicy == activitydomain.EmailOnTimer && rec.EmailsSent == 0 {
			updated := *rec
			updated.Completed = true
			if err := r.trackingRepo.Update(&updated); err != nil {
				log.Printf("[Reconciler] Error updating tracking for user %s, skipping email: %v", rec.UserID, err)
				continue
			}
			observability.RecordTransition("completed")
		} else {
			if err := r.trackingRepo.Delete(activity.ID, rec.UserID); err != nil {
				log.Printf("[Reconciler] Error deleting tracking for user %s, skipping email: %v", rec.UserID, err)
				continue
			}
			observability.RecordTransition("completed")
		}

		if activity.EmailPolicy == activitydomain.EmailOnCompletion {
			snapshot := *rec
			if err := r.notifier.Send(ctx, activity, &snapshot); err != nil {
				log.Printf("[Reconciler] Error sending completion email to user %s: %v", rec.UserID, err)
			} else {
				observability.RecordEmail("completion")
			}
		}
	}
}

// processDueReminders handles timer-policy records whose email deadline has
// passed: prune unenrolled users, drop already-completed records, otherwise
// count the reminder and dispatch it.
func (r *reconciler) processDueReminders(ctx context.Context, activity *activitydomain.Activity, now time.Time) {
	if activity.EmailPolicy != activitydomain.EmailOnTimer {
		return
	}

	records, err := r.trackingRepo.FindReminderDue(activity.ID, now, activity.ReminderLimit)
	if err != nil {
		log.Printf("[Reconciler] Error querying due reminders for activity %s: %v", activity.ID, err)
		return
	}

	for _, rec := range records {
		if r.pruneIfUnenrolled(activity, rec) {
			continue
		}

		if rec.Completed {
			if err := r.trackingRepo.Delete(activity.ID, rec.UserID); err != nil {
				log.Printf("[Reconciler] Error deleting completed tracking for user %s: %v", rec.UserID, err)
			} else {
				observability.RecordTransition("deleted")
			}
			continue
		}

		updated := *rec
		updated.EmailsSent = rec.EmailsSent + 1
		if updated.EmailsSent < activity.ReminderLimit {
			// Advance the deadline only while budget remains; the final
			// reminder leaves it in place so the record is never re-selected.
			updated.EmailDeadline = now.Add(activity.EmailDelay())
		}
		if err := r.trackingRepo.Update(&updated); err != nil {
			log.Printf("[Reconciler] Error updating reminder count for user %s, skipping email: %v", rec.UserID, err)
			continue
		}
		observability.RecordTransition("reminded")

		if err := r.notifier.Send(ctx, activity, &updated); err != nil {
			log.Printf("[Reconciler] Error sending reminder email to user %s: %v", rec.UserID, err)
		} else {
			observability.RecordEmail("reminder")
		}
	}
}

// pruneIfUnenrolled deletes the tracking record when the user no longer holds
// an active enrolment. Returns true when the record needs no further
// processing this pass (pruned, or the enrolment check failed).
func (r *reconciler) pruneIfUnenrolled(activity *activitydomain.Activity, rec *domain.Tracking) bool {
	enrolled, err := r.enrolment.IsEnrolled(activity.ID, rec.UserID)
	if err != nil {
		log.Printf("[Reconciler] Error checking enrolment for user %s: %v", rec.UserID, err)
		return true
	}
	if enrolled {
		return false
	}

	if err := r.trackingRepo.Delete(activity.ID, rec.UserID); err != nil {
		log.Printf("[Reconciler] Error pruning tracking for unenrolled user %s: %v", rec.UserID, err)
	} else {
		observability.RecordTransition("pruned")
	}
	return true
}

// markComplete ensures a completion mark exists for the user and moves it to
// the complete state, invalidating the cached completion view and publishing
// a completion-changed event. A missing mark is recreated directly in the
// complete, viewed state rather than treated as an error.
func (r *reconciler) markComplete(ctx context.Context, activity *activitydomain.Activity, userID string) error {
	mark, err := r.completionRepo.FindByUserAndModule(userID, activity.CourseModuleID)
	if err != nil {
		return fmt.Errorf("find completion mark: %w", err)
	}

	if mark == nil {
		mark = &completiondomain.Mark{
			UserID:         userID,
			CourseModuleID: activity.CourseModuleID,
			CourseID:       activity.CourseID,
			State:          completiondomain.StateComplete,
			Viewed:         true,
		}
		if err := r.completionRepo.Create(mark); err != nil {
			return fmt.Errorf("recreate completion mark: %w", err)
		}
	} else {
		updated := *mark
		updated.State = completiondomain.StateComplete
		if err := r.completionRepo.Update(&updated); err != nil {
			return fmt.Errorf("update completion mark: %w", err)
		}
		mark = &updated
	}

	if err := r.cache.Invalidate(userID, activity.CourseID); err != nil {
		log.Printf("[Reconciler] Error invalidating completion cache for user %s: %v", userID, err)
	}
	if err := r.events.CompletionChanged(ctx, mark.ID, activity.CourseModuleID, userID, mark.State); err != nil {
		log.Printf("[Reconciler] Error publishing completion event for user %s: %v", userID, err)
	}
	return nil
}
