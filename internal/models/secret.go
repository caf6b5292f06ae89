package models

import (
	"github.com/tinhat/dirtysecrets/internal/constants"
	"github.com/tinhat/dirtysecrets/internal/database"
)

// Secret represents a confession owned by exactly one user.
type Secret struct {
	SecretID int64  `json:"secret_id" db:"secret_id"`
	UserID   int64  `json:"user_id" db:"user_id"`
	Title    string `json:"title" db:"title"`
	Contents string `json:"contents" db:"contents"`
}

// TableName returns the fully qualified table name for secrets.
func (s *Secret) TableName() string {
	return constants.TableSecrets
}

// SecretFromRow builds a Secret from a generic result row.
func SecretFromRow(row database.Row) (*Secret, error) {
	secretID, err := row.ScanInt64(constants.ColumnSecretID)
	if err != nil {
		return nil, err
	}
	userID, err := row.ScanInt64(constants.ColumnUserID)
	if err != nil {
		return nil, err
	}
	title, err := row.ScanString(constants.ColumnTitle)
	if err != nil {
		return nil, err
	}
	contents, err := row.ScanString(constants.ColumnContents)
	if err != nil {
		return nil, err
	}

	return &Secret{
		SecretID: secretID,
		UserID:   userID,
		Title:    title,
		Contents: contents,
	}, nil
}

// SecretsFromRows builds a slice of secrets from a result set, preserving order.
func SecretsFromRows(rows []database.Row) ([]*Secret, error) {
	secrets := make([]*Secret, 0, len(rows))
	for _, row := range rows {
		secret, err := SecretFromRow(row)
		if err != nil {
			return nil, err
		}
		secrets = append(secrets, secret)
	}
	return secrets, nil
}
