// Package models defines the data structures stored in the dirty_secrets schema.
package models

import (
	"github.com/tinhat/dirtysecrets/internal/constants"
	"github.com/tinhat/dirtysecrets/internal/database"
)

// User represents a registered person who may own secrets.
type User struct {
	UserID    int64  `json:"user_id" db:"user_id"`
	FirstName string `json:"fname" db:"fname"`
	LastName  string `json:"lname" db:"lname"`
}

// TableName returns the fully qualified table name for users.
func (u *User) TableName() string {
	return constants.TableUsers
}

// UserFromRow builds a User from a generic result row.
func UserFromRow(row database.Row) (*User, error) {
	userID, err := row.ScanInt64(constants.ColumnUserID)
	if err != nil {
		return nil, err
	}
	firstName, err := row.ScanString(constants.ColumnFirstName)
	if err != nil {
		return nil, err
	}
	lastName, err := row.ScanString(constants.ColumnLastName)
	if err != nil {
		return nil, err
	}

	return &User{
		UserID:    userID,
		FirstName: firstName,
		LastName:  lastName,
	}, nil
}

// UsersFromRows builds a slice of users from a result set, preserving order.
func UsersFromRows(rows []database.Row) ([]*User, error) {
	users := make([]*User, 0, len(rows))
	for _, row := range rows {
		user, err := UserFromRow(row)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}
