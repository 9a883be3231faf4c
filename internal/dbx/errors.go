package dbx

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const pgUniqueViolation = "23505"

var sqliteUniqueRe = regexp.MustCompile(`UNIQUE constraint failed: (\w+)\.(\w+)`)

// UniqueViolationError reports which unique column rejected an insert.
type UniqueViolationError struct {
	Table  string
	Column string
	Err    error
}

func (e *UniqueViolationError) Error() string {
	return fmt.Sprintf("unique violation on %s.%s", e.Table, e.Column)
}

func (e *UniqueViolationError) Unwrap() error { return e.Err }

// Is reports whether e collides on the same table and column as target.
func (e *UniqueViolationError) Is(target error) bool {
	t, ok := target.(*UniqueViolationError)
	if !ok {
		return false
	}
	return t.Table == e.Table && t.Column == e.Column
}

// AsUniqueViolation inspects a driver error and, when it is a unique-key
// violation from SQLite or PostgreSQL, returns the violated column.
func AsUniqueViolation(err error) (*UniqueViolationError, bool) {
	if err == nil {
		return nil, false
	}

	var uv *UniqueViolationError
	if errors.As(err, &uv) {
		return uv, true
	}

	var se *sqlite.Error
	if errors.As(err, &se) && se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		m := sqliteUniqueRe.FindStringSubmatch(se.Error())
		switch {
		case m != nil:
			return &UniqueViolationError{Table: m[1], Column: m[2], Err: err}, true
		case se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE:
			return &UniqueViolationError{Err: err}, true
		}
	}

	var pe *pgconn.PgError
	if errors.As(err, &pe) && pe.Code == pgUniqueViolation {
		return &UniqueViolationError{
			Table:  pe.TableName,
			Column: columnFromConstraint(pe.TableName, pe.ConstraintName),
			Err:    err,
		}, true
	}

	return nil, false
}

// columnFromConstraint recovers the column from PostgreSQL's default unique
// constraint naming, <table>_<column>_key.
func columnFromConstraint(table, constraint string) string {
	c := strings.TrimSuffix(constraint, "_key")
	if table != "" {
		c = strings.TrimPrefix(c, table+"_")
	}
	return c
}
