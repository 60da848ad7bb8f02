package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/migrations"
)

// DB wraps a *sql.DB with the dialect-specific pieces every repository
// needs: a squirrel statement builder with the right placeholder format and
// an error classifier for the driver.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// maxTxAttempts bounds how often a transaction is retried when the driver
// reports a retryable error.
const maxTxAttempts = 3

// NewConnect opens a connection for the dialect encoded in cfg.DSN.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, dsn, err := ParseDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	switch dialect {
	case migrations.DialectPostgres:
		return NewConnectPostgres(ctx, dsn, cfg.MaxOpenConns, log)
	default:
		return NewConnectSQLite(ctx, dsn, log)
	}
}

// ParseDSN picks the SQL dialect for dsn and returns the driver-level DSN.
//
//	sqlite://path, file:..., :memory:   -> sqlite
//	postgres://..., postgresql://...     -> postgres
//	key=value ... (libpq style)          -> postgres
func ParseDSN(dsn string) (dialect, driverDSN string, err error) {
	switch {
	case dsn == "":
		return "", "", fmt.Errorf("%w: empty DSN", ErrUnsupportedDialect)
	case strings.HasPrefix(dsn, "sqlite://"):
		return migrations.DialectSQLite, strings.TrimPrefix(dsn, "sqlite://"), nil
	case strings.HasPrefix(dsn, "file:"), strings.HasPrefix(dsn, ":memory:"):
		return migrations.DialectSQLite, dsn, nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return migrations.DialectPostgres, dsn, nil
	case strings.Contains(dsn, "://"):
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedDialect, dsn[:strings.Index(dsn, "://")])
	default:
		return migrations.DialectPostgres, dsn, nil
	}
}

func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case migrations.DialectPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// Dialect returns the SQL dialect of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Ping checks that the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

// inTx runs fn inside a transaction and commits it. Errors the classifier
// marks as retryable restart the whole transaction.
func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = db.runTx(ctx, fn)
		if err == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "DB.inTx").
			Int("attempt", attempt).
			Msg("retrying transaction")

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(time.Duration(attempt) * 10 * time.Millisecond):
		}
	}

	return err
}

func (db *DB) runTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
