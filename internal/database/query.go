package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tinhat/dirtysecrets/internal/utils"
)

// Row holds a single result row keyed by column name.
type Row map[string]any

// Result carries the outcome of a statement: the rows it returned and the
// number of rows it touched. For row-returning statements RowsAffected equals
// len(Rows); for plain writes Rows is nil and RowsAffected comes from the driver.
type Result struct {
	Rows         []Row
	RowsAffected int64
}

// RunQuery executes a row-returning statement (SELECT, or INSERT/UPDATE/DELETE
// with RETURNING) and scans every row into a generic map. A statement that
// matches nothing yields an empty Rows slice and a nil error.
func (p *Pool) RunQuery(ctx context.Context, query string, args ...interface{}) (*Result, error) {
	start := time.Now()

	rows, err := p.QueryContext(ctx, query, args...)
	utils.LogDBQuery(query, args, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	result := &Result{Rows: []Row{}}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		row := make(Row, len(columns))
		for i, column := range columns {
			// lib/pq hands text columns back as []byte
			if b, ok := values[i].([]byte); ok {
				row[column] = string(b)
			} else {
				row[column] = values[i]
			}
		}
		result.Rows = append(result.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed while iterating rows: %w", err)
	}

	result.RowsAffected = int64(len(result.Rows))
	return result, nil
}

// RunExec executes a non-returning statement (UPDATE, DELETE) and reports the
// affected row count.
func (p *Pool) RunExec(ctx context.Context, query string, args ...interface{}) (*Result, error) {
	start := time.Now()

	res, err := p.ExecContext(ctx, query, args...)
	utils.LogDBQuery(query, args, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to execute statement: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected row count: %w", err)
	}

	return &Result{RowsAffected: affected}, nil
}

// ScanInt64 reads a column from a row as int64, covering the numeric types
// the driver may hand back.
func (r Row) ScanInt64(column string) (int64, error) {
	value, ok := r[column]
	if !ok {
		return 0, fmt.Errorf("column %q not present in row", column)
	}

	switch v := value.(type) {
	case int64:
		return v, nil
	case int32:
		return int64(v), nil
	case int:
		return int64(v), nil
	case sql.NullInt64:
		return v.Int64, nil
	default:
		return 0, fmt.Errorf("column %q has unexpected type %T", column, value)
	}
}

// ScanString reads a column from a row as a string.
func (r Row) ScanString(column string) (string, error) {
	value, ok := r[column]
	if !ok {
		return "", fmt.Errorf("column %q not present in row", column)
	}

	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("column %q has unexpected type %T", column, value)
	}
}
