// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the accounts REST API.
//
// [UserClient] hides the HTTP details behind the same sentinel errors the
// server side uses, so callers can match a remote failure with [errors.Is]
// exactly as they would a local one (e.g. [store.ErrUserNotFound] for 404,
// [store.ErrUsernameAlreadyExists] for a username conflict).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-accounts/models"
)

// UserClient defines remote operations on user records.
type UserClient interface {
	// CreateUser registers user and returns the stored record with its
	// assigned ID and timestamps. The password is never echoed back.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// GetUser fetches the user with the given id.
	GetUser(ctx context.Context, id string) (models.User, error)

	// UpdateUser replaces every mutable field of the user identified by
	// user.ID and returns the stored record.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)

	// DeleteUser removes the user with the given id.
	DeleteUser(ctx context.Context, id string) error

	// FindUserByUsername looks a user up by exact username.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByEmail looks a user up by exact email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}
