package repository

import (
	"time"

	"reengage-backend/internal/activity/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormActivityRepository implements ActivityRepository using GORM
type gormActivityRepository struct {
	db *gorm.DB
}

// NewGormActivityRepository creates a new GORM-based ActivityRepository
func NewGormActivityRepository(db *gorm.DB) ActivityRepository {
	return &gormActivityRepository{db: db}
}

func (r *gormActivityRepository) Create(activity *domain.Activity) error {
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}
	activity.CreatedAt = time.Now()
	activity.UpdatedAt = time.Now()
	return r.db.Create(activity).Error
}

func (r *gormActivityRepository) FindByID(id string) (*domain.Activity, error) {
	var activity domain.Activity
	err := r.db.Where("id = ?", id).First(&activity).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

func (r *gormActivityRepository) FindAll() ([]*domain.Activity, error) {
	var activities []*domain.Activity
	err := r.db.Order("created_at ASC").Find(&activities).Error
	return activities, err
}

func (r *gormActivityRepository) Update(activity *domain.Activity) error {
	activity.UpdatedAt = time.Now()
	return r.db.Save(activity).Error
}

func (r *gormActivityRepository) Delete(id string) error {
	return r.db.Delete(&domain.Activity{}, "id = ?", id).Error
}
