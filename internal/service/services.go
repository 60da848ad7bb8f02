package service

import (
	"fmt"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/store"
	"github.com/MKhiriev/go-accounts/models"
)

type Services struct {
	UserService    UserService
	GroupService   GroupService
	AppInfoService AppInfoService
	HealthService  HealthService
}

// NewServices builds every service on top of storages. The user service is
// wrapped with validation so malformed records never reach the database.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	userService := NewUserService(storages.UserRepository, storages.GroupRepository, cfg.App, logger)
	userService = NewUserValidationService().Wrap(userService)

	return &Services{
		UserService:    userService,
		GroupService:   NewGroupService(storages.GroupRepository, logger),
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(storages.HealthChecker, logger),
	}, nil
}
