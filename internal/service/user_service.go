// Package service binds the HTTP handlers to the data layer. Services pass
// repository results through unchanged except for failure classification:
// a store that cannot serve a listing is reported as unavailable rather than
// as a generic internal error.
package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/tinhat/dirtysecrets/internal/models"
	"github.com/tinhat/dirtysecrets/internal/repository"
	"github.com/tinhat/dirtysecrets/internal/utils"
)

// UserService handles user operations
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// CreateUser stores a new user and returns the stored row
func (s *UserService) CreateUser(ctx context.Context, firstName, lastName string) (*models.User, error) {
	return s.userRepo.Create(ctx, firstName, lastName)
}

// GetAllUsers returns every stored user. An unreachable store is reported as
// unavailable; an empty table is a valid, empty result.
func (s *UserService) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list users")
		return nil, utils.NewUnavailableError(err)
	}
	return users, nil
}

// GetUserByID returns a single user or a not-found error
func (s *UserService) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// UpdateUser rewrites a user's names and reports how many rows changed
func (s *UserService) UpdateUser(ctx context.Context, user *models.User) (int64, error) {
	return s.userRepo.Update(ctx, user)
}

// DeleteUser removes a user and reports how many rows changed
func (s *UserService) DeleteUser(ctx context.Context, id int64) (int64, error) {
	return s.userRepo.Delete(ctx, id)
}
