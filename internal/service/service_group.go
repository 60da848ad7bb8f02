package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/store"
	"github.com/MKhiriev/go-accounts/models"
)

type groupService struct {
	groupRepository store.GroupRepository

	logger *logger.Logger
}

func NewGroupService(groupRepository store.GroupRepository, logger *logger.Logger) GroupService {
	return &groupService{
		groupRepository: groupRepository,
		logger:          logger,
	}
}

func (s *groupService) CreateGroup(ctx context.Context, group models.Group) (models.Group, error) {
	created, err := s.groupRepository.CreateGroup(ctx, group)
	if err != nil {
		return models.Group{}, fmt.Errorf("error creating group: %w", err)
	}

	return created, nil
}

func (s *groupService) GetGroup(ctx context.Context, id string) (models.Group, error) {
	group, err := s.groupRepository.FindGroupByID(ctx, id)
	if err != nil {
		return models.Group{}, fmt.Errorf("error getting group: %w", err)
	}

	return group, nil
}
