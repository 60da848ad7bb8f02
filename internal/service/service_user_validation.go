package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-accounts/internal/store"
	"github.com/MKhiriev/go-accounts/internal/validators"
	"github.com/MKhiriev/go-accounts/models"
)

type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("error during user validation before saving: %w", err)
	}

	return v.inner.CreateUser(ctx, user)
}

func (v *UserValidationService) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	if user.ID == "" {
		return models.User{}, store.ErrUserNotFound
	}
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("error during user validation before updating: %w", err)
	}

	return v.inner.UpdateUser(ctx, user)
}

func (v *UserValidationService) GetUser(ctx context.Context, id string) (models.User, error) {
	if id == "" {
		return models.User{}, store.ErrUserNotFound
	}

	return v.inner.GetUser(ctx, id)
}

func (v *UserValidationService) FindUser(ctx context.Context, username, email string) (models.User, error) {
	if username == "" && email == "" {
		return models.User{}, ErrNoLookupFilter
	}
	// stored emails always match the pattern, so a malformed one cannot hit
	if email != "" && !validators.IsValidEmail(email) {
		return models.User{}, store.ErrUserNotFound
	}

	return v.inner.FindUser(ctx, username, email)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, id string) error {
	if id == "" {
		return store.ErrUserNotFound
	}

	return v.inner.DeleteUser(ctx, id)
}

func (v *UserValidationService) Wrap(wrapper UserService) UserService {
	v.inner = wrapper
	return v
}
