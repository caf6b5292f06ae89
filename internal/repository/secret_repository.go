package repository

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/tinhat/dirtysecrets/internal/constants"
	"github.com/tinhat/dirtysecrets/internal/database"
	"github.com/tinhat/dirtysecrets/internal/models"
	"github.com/tinhat/dirtysecrets/internal/utils"
)

// SecretRepository defines methods for interacting with secret data
type SecretRepository interface {
	Create(ctx context.Context, userID int64, title, contents string) (*models.Secret, error)
	FindAll(ctx context.Context) ([]*models.Secret, error)
	FindByUser(ctx context.Context, userID int64) ([]*models.Secret, error)
	FindByID(ctx context.Context, secretID int64) (*models.Secret, error)
	Update(ctx context.Context, secret *models.Secret) (int64, error)
	Delete(ctx context.Context, secretID int64) (int64, error)
}

// PostgresSecretRepository is a PostgreSQL implementation of SecretRepository
type PostgresSecretRepository struct {
	db *database.Pool
}

// NewSecretRepository creates a new SecretRepository
func NewSecretRepository(db *database.Pool) SecretRepository {
	return &PostgresSecretRepository{
		db: db,
	}
}

// Create adds a new secret owned by the given user and returns the stored row.
// A missing owner surfaces as a foreign key violation from the store.
func (r *PostgresSecretRepository) Create(ctx context.Context, userID int64, title, contents string) (*models.Secret, error) {
	query := fmt.Sprintf(
		"INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3) RETURNING *",
		constants.TableSecrets, constants.ColumnUserID, constants.ColumnTitle, constants.ColumnContents,
	)

	result, err := r.db.RunQuery(ctx, query, userID, title, contents)
	if err != nil {
		return nil, fmt.Errorf("failed to create secret: %w", err)
	}

	if len(result.Rows) == 0 {
		return nil, utils.NewNotCreatedError("Secret")
	}

	secret, err := models.SecretFromRow(result.Rows[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read created secret: %w", err)
	}

	log.Info().
		Int64(constants.ColumnSecretID, secret.SecretID).
		Int64(constants.ColumnUserID, secret.UserID).
		Msg("Secret created")

	return secret, nil
}

// FindAll retrieves every secret. An empty table yields an empty slice, not an error.
func (r *PostgresSecretRepository) FindAll(ctx context.Context) ([]*models.Secret, error) {
	query := fmt.Sprintf("SELECT * FROM %s", constants.TableSecrets)

	result, err := r.db.RunQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list secrets: %w", err)
	}

	return models.SecretsFromRows(result.Rows)
}

// FindByUser retrieves every secret owned by the given user
func (r *PostgresSecretRepository) FindByUser(ctx context.Context, userID int64) ([]*models.Secret, error) {
	query := fmt.Sprintf(
		"SELECT * FROM %s WHERE %s = $1",
		constants.TableSecrets, constants.ColumnUserID,
	)

	result, err := r.db.RunQuery(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list secrets by user: %w", err)
	}

	return models.SecretsFromRows(result.Rows)
}

// FindByID retrieves a secret by its ID
func (r *PostgresSecretRepository) FindByID(ctx context.Context, secretID int64) (*models.Secret, error) {
	query := fmt.Sprintf(
		"SELECT * FROM %s WHERE %s = $1",
		constants.TableSecrets, constants.ColumnSecretID,
	)

	result, err := r.db.RunQuery(ctx, query, secretID)
	if err != nil {
		return nil, fmt.Errorf("failed to get secret by ID: %w", err)
	}

	if len(result.Rows) == 0 {
		return nil, utils.NewNotFoundError("Secret", secretID)
	}

	return models.SecretFromRow(result.Rows[0])
}

// Update rewrites a secret's title and contents. Both the secret ID and the
// owning user ID must match for a row to change.
func (r *PostgresSecretRepository) Update(ctx context.Context, secret *models.Secret) (int64, error) {
	query := fmt.Sprintf(
		"UPDATE %s SET %s = $3, %s = $4 WHERE %s = $1 AND %s = $2",
		constants.TableSecrets, constants.ColumnTitle, constants.ColumnContents,
		constants.ColumnSecretID, constants.ColumnUserID,
	)

	result, err := r.db.RunExec(ctx, query, secret.SecretID, secret.UserID, secret.Title, secret.Contents)
	if err != nil {
		return 0, fmt.Errorf("failed to update secret: %w", err)
	}

	return result.RowsAffected, nil
}

// Delete removes a secret by its ID and reports the affected row count
func (r *PostgresSecretRepository) Delete(ctx context.Context, secretID int64) (int64, error) {
	query := fmt.Sprintf(
		"DELETE FROM %s WHERE %s = $1",
		constants.TableSecrets, constants.ColumnSecretID,
	)

	result, err := r.db.RunExec(ctx, query, secretID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete secret: %w", err)
	}

	if result.RowsAffected > 0 {
		log.Info().
			Int64(constants.ColumnSecretID, secretID).
			Msg("Secret deleted")
	}

	return result.RowsAffected, nil
}
