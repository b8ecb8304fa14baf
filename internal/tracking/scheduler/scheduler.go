package scheduler

import (
	"context"
	"log"
	"time"

	activityrepo "reengage-backend/internal/activity/repository"
	"reengage-backend/internal/tracking/usecase"
)

// ReconcileScheduler periodically runs the reconciler for every configured
// activity. Each activity gets its own sequential Run invocation, so at most
// one pass is in flight per activity id.
type ReconcileScheduler struct {
	activityRepo activityrepo.ActivityRepository
	reconciler   usecase.Reconciler
	interval     time.Duration
	stopChan     chan struct{}
}

// NewReconcileScheduler creates a new scheduler
func NewReconcileScheduler(
	activityRepo activityrepo.ActivityRepository,
	reconciler usecase.Reconciler,
	interval time.Duration,
) *ReconcileScheduler {
	if interval <= 0 {
		interval = 1 * time.Minute
	}
	return &ReconcileScheduler{
		activityRepo: activityRepo,
		reconciler:   reconciler,
		interval:     interval,
		stopChan:     make(chan struct{}),
	}
}

// Start begins the scheduler loop
func (s *ReconcileScheduler) Start() {
	log.Printf("[Scheduler] Starting re-engagement scheduler (interval: %s)", s.interval)

	go func() {
		// Run immediately on start
		s.reconcileAll()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.reconcileAll()
			case <-s.stopChan:
				log.Println("[Scheduler] Scheduler stopped")
				return
			}
		}
	}()
}

// Stop gracefully stops the scheduler
func (s *ReconcileScheduler) Stop() {
	close(s.stopChan)
}

// reconcileAll runs one reconciliation pass for every configured activity
func (s *ReconcileScheduler) reconcileAll() {
	activities, err := s.activityRepo.FindAll()
	if err != nil {
		log.Printf("[Scheduler] Error listing activities: %v", err)
		return
	}

	if len(activities) == 0 {
		return
	}

	now := time.Now()
	for _, activity := range activities {
		if err := s.reconciler.Run(context.Background(), activity.ID, now); err != nil {
			log.Printf("[Scheduler] Error reconciling activity %s: %v", activity.ID, err)
		}
	}
}
