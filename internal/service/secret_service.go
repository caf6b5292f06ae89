package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/tinhat/dirtysecrets/internal/models"
	"github.com/tinhat/dirtysecrets/internal/repository"
	"github.com/tinhat/dirtysecrets/internal/utils"
)

// SecretService handles secret operations
type SecretService struct {
	secretRepo repository.SecretRepository
}

// NewSecretService creates a new SecretService
func NewSecretService(secretRepo repository.SecretRepository) *SecretService {
	return &SecretService{
		secretRepo: secretRepo,
	}
}

// CreateSecret stores a new secret for the given owner and returns the stored
// row. A nonexistent owner surfaces as a foreign key violation from the store.
func (s *SecretService) CreateSecret(ctx context.Context, userID int64, title, contents string) (*models.Secret, error) {
	return s.secretRepo.Create(ctx, userID, title, contents)
}

// GetAllSecrets returns every stored secret. An unreachable store is reported
// as unavailable; an empty table is a valid, empty result.
func (s *SecretService) GetAllSecrets(ctx context.Context) ([]*models.Secret, error) {
	secrets, err := s.secretRepo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list secrets")
		return nil, utils.NewUnavailableError(err)
	}
	return secrets, nil
}

// GetSecretsByUser returns every secret owned by the given user
func (s *SecretService) GetSecretsByUser(ctx context.Context, userID int64) ([]*models.Secret, error) {
	return s.secretRepo.FindByUser(ctx, userID)
}

// GetSecretByID returns a single secret or a not-found error
func (s *SecretService) GetSecretByID(ctx context.Context, secretID int64) (*models.Secret, error) {
	return s.secretRepo.FindByID(ctx, secretID)
}

// UpdateSecret rewrites a secret's title and contents, constrained to the
// owning user, and reports how many rows changed
func (s *SecretService) UpdateSecret(ctx context.Context, secret *models.Secret) (int64, error) {
	return s.secretRepo.Update(ctx, secret)
}

// DeleteSecret removes a secret and reports how many rows changed
func (s *SecretService) DeleteSecret(ctx context.Context, secretID int64) (int64, error) {
	return s.secretRepo.Delete(ctx, secretID)
}
