package store

import (
	"context"

	"github.com/MKhiriev/go-accounts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists [models.User] records. Every write validates the
// record first and relies on database unique constraints for username and
// email.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	DeleteUser(ctx context.Context, id string) error
	CountUsers(ctx context.Context) (int64, error)
}

// GroupRepository persists [models.Group] records.
type GroupRepository interface {
	CreateGroup(ctx context.Context, group models.Group) (models.Group, error)
	FindGroupByID(ctx context.Context, id string) (models.Group, error)
	// FindExistingGroupIDs returns the subset of ids that exist, in no
	// particular order.
	FindExistingGroupIDs(ctx context.Context, ids []string) ([]string, error)
}

// HealthChecker reports whether the underlying database is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// ErrorClassificator inspects driver errors for a single SQL dialect.
type ErrorClassificator interface {
	// Classify reports whether a failed operation may be retried.
	Classify(err error) ErrorClassification

	// Translate maps unique constraint violations to
	// [ErrUsernameAlreadyExists] or [ErrEmailAlreadyExists] and returns any
	// other error unchanged.
	Translate(err error) error
}

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() string
}
