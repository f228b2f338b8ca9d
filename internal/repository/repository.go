package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers used for classification.
const (
	mysqlErrDupEntry         = 1062
	mysqlErrNoReferencedRow  = 1216
	mysqlErrNoReferencedRow2 = 1452
)

var (
	// ErrUniqueViolation is returned when an insert collides with a unique key.
	ErrUniqueViolation = errors.New("unique constraint violation")
	// ErrForeignKeyViolation is returned when an insert references a missing parent row.
	ErrForeignKeyViolation = errors.New("foreign key constraint violation")
)

// DBTX is the subset of *sql.DB and *sql.Tx the repositories need.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// now returns the insert timestamp at the precision of a DATETIME(6) column,
// rounded up so it never precedes the clock reading.
func now(clock func() time.Time) time.Time {
	return clock().UTC().Add(time.Microsecond - 1).Truncate(time.Microsecond)
}

// classify maps driver errors onto the repository sentinels. Unknown errors pass through.
func classify(err error) error {
	var myErr *mysql.MySQLError
	if !errors.As(err, &myErr) {
		return err
	}
	switch myErr.Number {
	case mysqlErrDupEntry:
		return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
	case mysqlErrNoReferencedRow, mysqlErrNoReferencedRow2:
		return fmt.Errorf("%w: %w", ErrForeignKeyViolation, err)
	}
	return err
}
