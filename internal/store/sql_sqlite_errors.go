package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify treats SQLITE_BUSY and SQLITE_LOCKED as retryable.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrBusy, sqlite3.ErrLocked:
			return Retryable
		}
	}

	return NonRetryable
}

// Translate maps UNIQUE and PRIMARY KEY constraint failures to the field
// they protect. SQLite names the column in the message, e.g.
// "UNIQUE constraint failed: users.username".
func (c *SQLiteErrorClassifier) Translate(err error) error {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}
	if sqliteErr.ExtendedCode != sqlite3.ErrConstraintUnique &&
		sqliteErr.ExtendedCode != sqlite3.ErrConstraintPrimaryKey {
		return err
	}

	msg := sqliteErr.Error()
	switch {
	case strings.Contains(msg, "users.username"):
		return ErrUsernameAlreadyExists
	case strings.Contains(msg, "users.email"):
		return ErrEmailAlreadyExists
	case strings.Contains(msg, "groups.group_id"):
		return ErrGroupAlreadyExists
	default:
		return fmt.Errorf("%w: %s", ErrUniquenessViolation, msg)
	}
}
