package repository

import (
	"time"

	"reengage-backend/internal/tracking/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormTrackingRepository implements TrackingRepository using GORM
type gormTrackingRepository struct {
	db *gorm.DB
}

// NewGormTrackingRepository creates a new GORM-based TrackingRepository
func NewGormTrackingRepository(db *gorm.DB) TrackingRepository {
	return &gormTrackingRepository{db: db}
}

func (r *gormTrackingRepository) Create(tracking *domain.Tracking) error {
	if tracking.ID == "" {
		tracking.ID = uuid.New().String()
	}
	tracking.CreatedAt = time.Now()
	tracking.UpdatedAt = time.Now()
	return r.db.Create(tracking).Error
}

func (r *gormTrackingRepository) FindByActivityAndUser(activityID, userID string) (*domain.Tracking, error) {
	var tracking domain.Tracking
	err := r.db.Where("activity_id = ? AND user_id = ?", activityID, userID).First(&tracking).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &tracking, nil
}

func (r *gormTrackingRepository) FindByActivity(activityID string) ([]*domain.Tracking, error) {
	var trackings []*domain.Tracking
	err := r.db.Where("activity_id = ?", activityID).
		Order("created_at ASC").Find(&trackings).Error
	return trackings, err
}

func (r *gormTrackingRepository) FindDeadlineElapsed(activityID string, now time.Time) ([]*domain.Tracking, error) {
	var trackings []*domain.Tracking
	err := r.db.Where("activity_id = ? AND completed = ? AND completion_deadline < ?",
		activityID, false, now).Find(&trackings).Error
	return trackings, err
}

func (r *gormTrackingRepository) FindReminderDue(activityID string, now time.Time, reminderLimit int) ([]*domain.Tracking, error) {
	var trackings []*domain.Tracking
	err := r.db.Where("activity_id = ? AND email_deadline < ? AND emails_sent < ?",
		activityID, now, reminderLimit).Find(&trackings).Error
	return trackings, err
}

func (r *gormTrackingRepository) Update(tracking *domain.Tracking) error {
	tracking.UpdatedAt = time.Now()
	return r.db.Save(tracking).Error
}

func (r *gormTrackingRepository) Delete(activityID, userID string) error {
	return r.db.Delete(&domain.Tracking{}, "activity_id = ? AND user_id = ?", activityID, userID).Error
}
