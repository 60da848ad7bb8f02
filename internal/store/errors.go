package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUniquenessViolation is returned when a write would give two users
	// the same username or the same email. The concrete error names the
	// field: see [ErrUsernameAlreadyExists] and [ErrEmailAlreadyExists].
	ErrUniquenessViolation = errors.New("uniqueness violation")

	// ErrUsernameAlreadyExists is returned when another user already holds
	// the username. It wraps [ErrUniquenessViolation].
	ErrUsernameAlreadyExists = fmt.Errorf("username: %w", ErrUniquenessViolation)

	// ErrEmailAlreadyExists is returned when another user already holds the
	// email. It wraps [ErrUniquenessViolation].
	ErrEmailAlreadyExists = fmt.Errorf("email: %w", ErrUniquenessViolation)

	// ErrUserNotFound is returned when a lookup, update or delete targets a
	// user that does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrGroupNotFound is returned when a lookup targets a group that does
	// not exist.
	ErrGroupNotFound = errors.New("group not found")

	// ErrGroupAlreadyExists is returned when a group ID is reused.
	ErrGroupAlreadyExists = errors.New("group already exists")

	// ErrUnsupportedDialect is returned when a DSN does not map to a known
	// SQL dialect.
	ErrUnsupportedDialect = errors.New("unsupported database dialect")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
