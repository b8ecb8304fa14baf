package repository

import (
	"reengage-backend/internal/user/domain"
)

// UserRepository defines the interface for user account lookups
type UserRepository interface {
	// FindByID finds a user by ID; returns (nil, nil) when absent
	FindByID(id string) (*domain.User, error)

	// FindByEmail finds a user by email address; returns (nil, nil) when absent
	FindByEmail(email string) (*domain.User, error)
}
