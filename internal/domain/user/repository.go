package user

import (
	"context"

	"github.com/clinica/appointments-api/internal/models"
)

type Repository interface {
	// CreateUser fails with a user_exists business error when the username
	// is already taken.
	CreateUser(ctx context.Context, u *models.User) error

	// GetByUsername fails with a user_not_found business error when absent.
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
