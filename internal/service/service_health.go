package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/store"
)

type healthService struct {
	healthChecker store.HealthChecker

	logger *logger.Logger
}

func NewHealthService(healthChecker store.HealthChecker, logger *logger.Logger) HealthService {
	return &healthService{
		healthChecker: healthChecker,
		logger:        logger,
	}
}

func (s *healthService) Ping(ctx context.Context) error {
	if err := s.healthChecker.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return nil
}
