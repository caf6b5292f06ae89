package handlers

import (
	"context"

	"github.com/tinhat/dirtysecrets/internal/models"
)

// UserServiceInterface abstracts the user service for testability
type UserServiceInterface interface {
	CreateUser(ctx context.Context, firstName, lastName string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) (int64, error)
	DeleteUser(ctx context.Context, id int64) (int64, error)
}

// SecretServiceInterface abstracts the secret service for testability
type SecretServiceInterface interface {
	CreateSecret(ctx context.Context, userID int64, title, contents string) (*models.Secret, error)
	GetAllSecrets(ctx context.Context) ([]*models.Secret, error)
	GetSecretsByUser(ctx context.Context, userID int64) ([]*models.Secret, error)
	GetSecretByID(ctx context.Context, secretID int64) (*models.Secret, error)
	UpdateSecret(ctx context.Context, secret *models.Secret) (int64, error)
	DeleteSecret(ctx context.Context, secretID int64) (int64, error)
}

// HealthChecker abstracts the database probe used by the health endpoint
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}
