package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
)

// Storages bundles the repositories and the connection they share.
type Storages struct {
	UserRepository  UserRepository
	GroupRepository GroupRepository
	HealthChecker   HealthChecker

	db *DB
}

// NewStorages connects to the database named by cfg.DSN, applies migrations
// and builds every repository on top of the connection.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return newStoragesFromDB(db, log), nil
}

func newStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		GroupRepository: NewGroupRepository(db, log),
		HealthChecker:   db,
		db:              db,
	}
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
