package repository

import (
	"reengage-backend/internal/enrolment/domain"

	"gorm.io/gorm"
)

// gormEnrolmentRepository implements EnrolmentRepository using GORM
type gormEnrolmentRepository struct {
	db *gorm.DB
}

// NewGormEnrolmentRepository creates a new GORM-based EnrolmentRepository
func NewGormEnrolmentRepository(db *gorm.DB) EnrolmentRepository {
	return &gormEnrolmentRepository{db: db}
}

func (r *gormEnrolmentRepository) IsEnrolled(activityID, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&domain.Enrolment{}).
		Where("activity_id = ? AND user_id = ? AND active = ?", activityID, userID, true).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gormEnrolmentRepository) FindEligibleUsers(activityID string) ([]string, error) {
	// Active enrolments that do not yet have a tracking record for this
	// activity. The subquery keeps onboarding idempotent across runs.
	var userIDs []string
	err := r.db.Model(&domain.Enrolment{}).
		Where("activity_id = ? AND active = ?", activityID, true).
		Where("user_id NOT IN (?)",
			r.db.Table("trackings").Select("user_id").Where("activity_id = ?", activityID)).
		Pluck("user_id", &userIDs).Error
	return userIDs, err
}
