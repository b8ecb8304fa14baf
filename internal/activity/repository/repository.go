package repository

import (
	"reengage-backend/internal/activity/domain"
)

// ActivityRepository defines the interface for activity configuration access
type ActivityRepository interface {
	// Create creates a new activity configuration
	Create(activity *domain.Activity) error

	// FindByID finds an activity by its ID; returns (nil, nil) when absent
	FindByID(id string) (*domain.Activity, error)

	// FindAll returns every configured activity
	FindAll() ([]*domain.Activity, error)

	// Update updates an existing activity configuration
	Update(activity *domain.Activity) error

	// Delete deletes an activity configuration by ID
	Delete(id string) error
}
