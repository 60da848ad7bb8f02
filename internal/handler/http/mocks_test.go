package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/service"
	"github.com/MKhiriev/go-accounts/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

type mockUserService struct {
	createFn func(ctx context.Context, user models.User) (models.User, error)
	updateFn func(ctx context.Context, user models.User) (models.User, error)
	getFn    func(ctx context.Context, id string) (models.User, error)
	findFn   func(ctx context.Context, username, email string) (models.User, error)
	deleteFn func(ctx context.Context, id string) error
}

func (m *mockUserService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	user.ID = "u-1"
	return user, nil
}
func (m *mockUserService) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, user)
	}
	return user, nil
}
func (m *mockUserService) GetUser(ctx context.Context, id string) (models.User, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.User{ID: id}, nil
}
func (m *mockUserService) FindUser(ctx context.Context, username, email string) (models.User, error) {
	if m.findFn != nil {
		return m.findFn(ctx, username, email)
	}
	return models.User{Username: username, Email: email}, nil
}
func (m *mockUserService) DeleteUser(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockGroupService struct {
	createFn func(ctx context.Context, group models.Group) (models.Group, error)
	getFn    func(ctx context.Context, id string) (models.Group, error)
}

func (m *mockGroupService) CreateGroup(ctx context.Context, group models.Group) (models.Group, error) {
	if m.createFn != nil {
		return m.createFn(ctx, group)
	}
	group.ID = "g-1"
	return group, nil
}
func (m *mockGroupService) GetGroup(ctx context.Context, id string) (models.Group, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Group{ID: id}, nil
}

// mockAppInfoService implements service.AppInfoService for testing.
type mockAppInfoService struct {
	version   string
	buildInfo models.AppBuildInfo
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}
func (m *mockAppInfoService) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return m.buildInfo
}

type mockHealthService struct {
	err error
}

func (m *mockHealthService) Ping(_ context.Context) error {
	return m.err
}

// newTestHandler builds a Handler whose services default to permissive
// mocks. The user service is wrapped with the real validation layer.
func newTestHandler(t *testing.T, users *mockUserService, groups *mockGroupService) *Handler {
	t.Helper()

	if users == nil {
		users = &mockUserService{}
	}
	if groups == nil {
		groups = &mockGroupService{}
	}

	return NewHandler(&service.Services{
		UserService:    service.NewUserValidationService().Wrap(users),
		GroupService:   groups,
		AppInfoService: &mockAppInfoService{version: "test-version"},
		HealthService:  &mockHealthService{},
	}, logger.Nop())
}
