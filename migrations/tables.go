package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tinhat/dirtysecrets/internal/constants"
)

// createUsersTable creates the users table
func createUsersTable() Migration {
	return Migration{
		Name:        "create_users_table",
		Description: "Creates the users table",
		TableName:   "users",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := fmt.Sprintf(`
				CREATE TABLE IF NOT EXISTS %s (
					user_id BIGSERIAL PRIMARY KEY,
					fname VARCHAR(255) NOT NULL,
					lname VARCHAR(255) NOT NULL
				)
			`, constants.TableUsers)
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}

// createSecretsTable creates the secrets table. Every secret belongs to a
// user, enforced by the foreign key.
func createSecretsTable() Migration {
	return Migration{
		Name:        "create_secrets_table",
		Description: "Creates the secrets table",
		TableName:   "secrets",
		RunSQL: func(ctx context.Context, tx *sql.Tx) error {
			query := fmt.Sprintf(`
				CREATE TABLE IF NOT EXISTS %s (
					secret_id BIGSERIAL PRIMARY KEY,
					user_id BIGINT NOT NULL,
					title VARCHAR(255) NOT NULL,
					contents TEXT NOT NULL,
					CONSTRAINT fk_user FOREIGN KEY (user_id) REFERENCES %s(user_id) ON DELETE CASCADE
				);
				CREATE INDEX IF NOT EXISTS idx_secrets_user_id ON %s(user_id);
			`, constants.TableSecrets, constants.TableUsers, constants.TableSecrets)
			_, err := tx.ExecContext(ctx, query)
			return err
		},
	}
}
