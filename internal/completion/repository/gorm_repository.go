package repository

import (
	"time"

	"reengage-backend/internal/completion/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormCompletionRepository implements CompletionRepository using GORM
type gormCompletionRepository struct {
	db *gorm.DB
}

// NewGormCompletionRepository creates a new GORM-based CompletionRepository
func NewGormCompletionRepository(db *gorm.DB) CompletionRepository {
	return &gormCompletionRepository{db: db}
}

func (r *gormCompletionRepository) Create(mark *domain.Mark) error {
	if mark.ID == "" {
		mark.ID = uuid.New().String()
	}
	mark.TimeModified = time.Now()
	return r.db.Create(mark).Error
}

func (r *gormCompletionRepository) FindByUserAndModule(userID, courseModuleID string) (*domain.Mark, error) {
	var mark domain.Mark
	err := r.db.Where("user_id = ? AND course_module_id = ?", userID, courseModuleID).First(&mark).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &mark, nil
}

func (r *gormCompletionRepository) Update(mark *domain.Mark) error {
	mark.TimeModified = time.Now()
	return r.db.Save(mark).Error
}
