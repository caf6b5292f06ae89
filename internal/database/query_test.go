package database_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinhat/dirtysecrets/internal/database"
)

func setupPoolTest(t *testing.T) (*database.Pool, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create mock database: %v", err)
	}

	pool := &database.Pool{DB: db}
	cleanup := func() {
		db.Close()
	}

	return pool, mock, cleanup
}

func TestRunQuery_ScansRows(t *testing.T) {
	pool, mock, cleanup := setupPoolTest(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"user_id", "fname", "lname"}).
		AddRow(int64(1), "Jane", "Doe").
		AddRow(int64(2), "John", "Smith")

	mock.ExpectQuery("SELECT \\* FROM dirty_secrets.users").WillReturnRows(rows)

	result, err := pool.RunQuery(context.Background(), "SELECT * FROM dirty_secrets.users")

	require.NoError(t, err)
	assert.Equal(t, int64(2), result.RowsAffected)
	require.Len(t, result.Rows, 2)

	id, err := result.Rows[0].ScanInt64("user_id")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	name, err := result.Rows[1].ScanString("fname")
	require.NoError(t, err)
	assert.Equal(t, "John", name)
}

func TestRunQuery_ConvertsByteSlices(t *testing.T) {
	pool, mock, cleanup := setupPoolTest(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"title"}).AddRow([]byte("my diary"))
	mock.ExpectQuery("SELECT title").WillReturnRows(rows)

	result, err := pool.RunQuery(context.Background(), "SELECT title FROM dirty_secrets.secrets")

	require.NoError(t, err)
	assert.Equal(t, "my diary", result.Rows[0]["title"])
}

func TestRunQuery_EmptyResult(t *testing.T) {
	pool, mock, cleanup := setupPoolTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM dirty_secrets.users").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "fname", "lname"}))

	result, err := pool.RunQuery(context.Background(), "SELECT * FROM dirty_secrets.users")

	require.NoError(t, err)
	assert.Empty(t, result.Rows)
	assert.Equal(t, int64(0), result.RowsAffected)
}

func TestRunQuery_QueryError(t *testing.T) {
	pool, mock, cleanup := setupPoolTest(t)
	defer cleanup()

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection refused"))

	result, err := pool.RunQuery(context.Background(), "SELECT 1")

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestRunExec_ReportsAffectedRows(t *testing.T) {
	pool, mock, cleanup := setupPoolTest(t)
	defer cleanup()

	mock.ExpectExec("UPDATE dirty_secrets.users").
		WithArgs(int64(1), "Jane", "Doe").
		WillReturnResult(sqlmock.NewResult(0, 1))

	result, err := pool.RunExec(context.Background(),
		"UPDATE dirty_secrets.users SET fname = $2, lname = $3 WHERE user_id = $1",
		int64(1), "Jane", "Doe")

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.RowsAffected)
}

func TestRunExec_ZeroAffected(t *testing.T) {
	pool, mock, cleanup := setupPoolTest(t)
	defer cleanup()

	mock.ExpectExec("DELETE FROM dirty_secrets.users").
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	result, err := pool.RunExec(context.Background(),
		"DELETE FROM dirty_secrets.users WHERE user_id = $1", int64(99))

	require.NoError(t, err)
	assert.Equal(t, int64(0), result.RowsAffected)
}

func TestTransaction_CommitsOnSuccess(t *testing.T) {
	pool, mock, cleanup := setupPoolTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := pool.Transaction(context.Background(), func(tx *sql.Tx) error {
		_, err := tx.ExecContext(context.Background(), "INSERT INTO dirty_secrets.users (fname, lname) VALUES ($1, $2)", "Jane", "Doe")
		return err
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransaction_RollsBackOnError(t *testing.T) {
	pool, mock, cleanup := setupPoolTest(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectRollback()

	wantErr := errors.New("insert failed")
	err := pool.Transaction(context.Background(), func(tx *sql.Tx) error {
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRowScanHelpers_MissingColumn(t *testing.T) {
	row := database.Row{"user_id": int64(1)}

	_, err := row.ScanInt64("secret_id")
	assert.Error(t, err)

	_, err = row.ScanString("title")
	assert.Error(t, err)
}
