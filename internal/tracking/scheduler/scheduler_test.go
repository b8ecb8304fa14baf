package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	activitydomain "reengage-backend/internal/activity/domain"

	"github.com/stretchr/testify/require"
)

type stubActivityRepo struct {
	activities []*activitydomain.Activity
	err        error
}

func (s *stubActivityRepo) Create(*activitydomain.Activity) error { return nil }
func (s *stubActivityRepo) FindByID(string) (*activitydomain.Activity, error) {
	return nil, nil
}
func (s *stubActivityRepo) FindAll() ([]*activitydomain.Activity, error) {
	return s.activities, s.err
}
func (s *stubActivityRepo) Update(*activitydomain.Activity) error { return nil }
func (s *stubActivityRepo) Delete(string) error                   { return nil }

type stubReconciler struct {
	runs []string
	err  error
}

func (s *stubReconciler) Run(_ context.Context, activityID string, _ time.Time) error {
	s.runs = append(s.runs, activityID)
	return s.err
}

func TestReconcileAllRunsEveryActivity(t *testing.T) {
	repo := &stubActivityRepo{activities: []*activitydomain.Activity{
		{ID: "act-1"}, {ID: "act-2"}, {ID: "act-3"},
	}}
	rec := &stubReconciler{}

	s := NewReconcileScheduler(repo, rec, time.Minute)
	s.reconcileAll()

	require.Equal(t, []string{"act-1", "act-2", "act-3"}, rec.runs)
}

func TestReconcileAllContinuesPastFailures(t *testing.T) {
	repo := &stubActivityRepo{activities: []*activitydomain.Activity{
		{ID: "act-1"}, {ID: "act-2"},
	}}
	rec := &stubReconciler{err: errors.New("boom")}

	s := NewReconcileScheduler(repo, rec, time.Minute)
	s.reconcileAll()

	require.Len(t, rec.runs, 2, "one failing activity must not block the rest")
}

func TestReconcileAllSkipsWhenListingFails(t *testing.T) {
	repo := &stubActivityRepo{err: errors.New("db down")}
	rec := &stubReconciler{}

	s := NewReconcileScheduler(repo, rec, time.Minute)
	s.reconcileAll()

	require.Empty(t, rec.runs)
}

func TestDefaultIntervalApplied(t *testing.T) {
	s := NewReconcileScheduler(&stubActivityRepo{}, &stubReconciler{}, 0)
	require.Equal(t, time.Minute, s.interval)
}
