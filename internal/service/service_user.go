package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/store"
	"github.com/MKhiriev/go-accounts/models"
)

type userService struct {
	userRepository  store.UserRepository
	groupRepository store.GroupRepository

	checkGroupReferences bool

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, groupRepository store.GroupRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository:       userRepository,
		groupRepository:      groupRepository,
		checkGroupReferences: cfg.CheckGroupReferences,
		logger:               logger,
	}
}

func (s *userService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := s.checkGroups(ctx, user.Groups); err != nil {
		return models.User{}, err
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("error creating user: %w", err)
	}

	return created, nil
}

func (s *userService) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := s.checkGroups(ctx, user.Groups); err != nil {
		return models.User{}, err
	}

	updated, err := s.userRepository.UpdateUser(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("error updating user: %w", err)
	}

	return updated, nil
}

func (s *userService) GetUser(ctx context.Context, id string) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("error getting user: %w", err)
	}

	return user, nil
}

func (s *userService) FindUser(ctx context.Context, username, email string) (models.User, error) {
	var (
		user models.User
		err  error
	)

	switch {
	case username != "":
		user, err = s.userRepository.FindUserByUsername(ctx, username)
	case email != "":
		user, err = s.userRepository.FindUserByEmail(ctx, email)
	default:
		return models.User{}, ErrNoLookupFilter
	}
	if err != nil {
		return models.User{}, fmt.Errorf("error finding user: %w", err)
	}

	if username != "" && email != "" && user.Email != email {
		return models.User{}, fmt.Errorf("error finding user: %w", store.ErrUserNotFound)
	}

	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	if err := s.userRepository.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}

	return nil
}

// checkGroups fails with ErrUnknownGroup when reference checking is enabled
// and any of ids has no matching group.
func (s *userService) checkGroups(ctx context.Context, ids []string) error {
	if !s.checkGroupReferences || len(ids) == 0 {
		return nil
	}

	existing, err := s.groupRepository.FindExistingGroupIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("error checking group references: %w", err)
	}

	found := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		found[id] = struct{}{}
	}

	var missing []string
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := found[id]; ok {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		missing = append(missing, id)
	}

	if len(missing) > 0 {
		s.logger.Debug().Strs("missing", missing).Msg("user references unknown groups")
		return fmt.Errorf("%w: %s", ErrUnknownGroup, strings.Join(missing, ", "))
	}

	return nil
}
