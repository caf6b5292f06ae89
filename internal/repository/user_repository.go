// Package repository provides data access for the dirty_secrets schema.
// Repositories translate between result rows and models; classifying failures
// into HTTP status codes is left to the service layer.
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

// UserRepository defines methods for interacting with user data
type UserRepository interface {
	Create(ctx context.Context, firstName, lastName string) (*models.User, error)
	FindAll(ctx context.Context) ([]*models.User, error)
	FindByID(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, user *models.User) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// PostgresUserRepository is a PostgreSQL implementation of UserRepository
type PostgresUserRepository struct {
	db *database.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *database.Pool) UserRepository {
	return &PostgresUserRepository{
		db: db,
	}
}

// Create adds a new user and returns the stored row
func (r *PostgresUserRepository) Create(ctx context.Context, firstName, lastName string) (*models.User, error) {
	query := fmt.Sprintf(
		"INSERT INTO %s (%s, %s) VALUES ($1, $2) RETURNING *",
		constants.TableUsers, constants.ColumnFirstName, constants.ColumnLastName,
	)

	result, err := r.db.RunQuery(ctx, query, firstName, lastName)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if len(result.Rows) == 0 {
		return nil, utils.NewNotCreatedError("User")
	}

	user, err := models.UserFromRow(result.Rows[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read created user: %w", err)
	}

	log.Info().
		Int64(constants.ColumnUserID, user.UserID).
		Msg("User created")

	return user, nil
}

// FindAll retrieves every user. An empty table yields an empty slice, not an error.
func (r *PostgresUserRepository) FindAll(ctx context.Context) ([]*models.User, error) {
	query := fmt.Sprintf("SELECT * FROM %s", constants.TableUsers)

	result, err := r.db.RunQuery(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return models.UsersFromRows(result.Rows)
}

// FindByID retrieves a user by ID
func (r *PostgresUserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	query := fmt.Sprintf(
		"SELECT * FROM %s WHERE %s = $1",
		constants.TableUsers, constants.ColumnUserID,
	)

	result, err := r.db.RunQuery(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	if len(result.Rows) == 0 {
		return nil, utils.NewNotFoundError("User", id)
	}

	return models.UserFromRow(result.Rows[0])
}

// Update rewrites a user's names and reports the affected row count
func (r *PostgresUserRepository) Update(ctx context.Context, user *models.User) (int64, error) {
	query := fmt.Sprintf(
		"UPDATE %s SET %s = $2, %s = $3 WHERE %s = $1",
		constants.TableUsers, constants.ColumnFirstName, constants.ColumnLastName, constants.ColumnUserID,
	)

	result, err := r.db.RunExec(ctx, query, user.UserID, user.FirstName, user.LastName)
	if err != nil {
		return 0, fmt.Errorf("failed to update user: %w", err)
	}

	return result.RowsAffected, nil
}

// Delete removes a user by ID and reports the affected row count
func (r *PostgresUserRepository) Delete(ctx context.Context, id int64) (int64, error) {
	query := fmt.Sprintf(
		"DELETE FROM %s WHERE %s = $1",
		constants.TableUsers, constants.ColumnUserID,
	)

	result, err := r.db.RunExec(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete user: %w", err)
	}

	if result.RowsAffected > 0 {
		log.Info().
			Int64(constants.ColumnUserID, id).
			Msg("User deleted")
	}

	return result.RowsAffected, nil
}
