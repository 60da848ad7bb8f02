package service

import (
	"context"

	"github.com/MKhiriev/go-accounts/models"
)

// UserService is the application-level entry point for user records.
type UserService interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// UpdateUser replaces the mutable fields of the user identified by user.ID.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	// FindUser looks a user up by username or email. When both are given the
	// stored record must match both.
	FindUser(ctx context.Context, username, email string) (models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type GroupService interface {
	CreateGroup(ctx context.Context, group models.Group) (models.Group, error)
	GetGroup(ctx context.Context, id string) (models.Group, error)
}

// HealthService reports whether the storage backing the services is reachable.
type HealthService interface {
	Ping(ctx context.Context) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// logging or validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService // returns a decorated UserService applying additional behavior
}
