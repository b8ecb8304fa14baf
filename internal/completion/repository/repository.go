package repository

import (
	"reengage-backend/internal/completion/domain"
)

// CompletionRepository defines the interface for completion mark access.
// Marks are shared with the broader completion subsystem: this service
// creates and updates them but never deletes them.
type CompletionRepository interface {
	// Create creates a new completion mark
	Create(mark *domain.Mark) error

	// FindByUserAndModule finds the mark for one (user, course module) pair;
	// returns (nil, nil) when absent
	FindByUserAndModule(userID, courseModuleID string) (*domain.Mark, error)

	// Update updates an existing completion mark
	Update(mark *domain.Mark) error
}
