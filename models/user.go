// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents one registered account.
//
// Username and Email are unique across all users. Password is persisted
// exactly as provided; deriving or hashing it is the caller's concern.
// Groups holds references to [Group] identities in insertion order. The
// user does not own those groups and the referenced IDs may not exist.
type User struct {
	// ID is the store-assigned identifier (UUIDv7).
	ID string `json:"id"`

	// Username is the unique account name.
	Username string `json:"username" validate:"required"`

	// Password is stored as given. It is never written to API responses.
	Password string `json:"password,omitempty" validate:"required"`

	// Email is the unique contact address. It must match [EmailPattern].
	Email string `json:"email" validate:"required,email_pattern"`

	// Groups lists referenced group IDs, order preserved.
	Groups []string `json:"groups"`

	// IsEmailConfirmed is false until an external confirmation flow flips it.
	IsEmailConfirmed bool `json:"isEmailConfirmed"`

	// ConfirmationCode is present only while email confirmation is pending.
	ConfirmationCode *string `json:"confirmationCode,omitempty"`

	// ConfirmationCodeExpires marks when ConfirmationCode becomes invalid.
	ConfirmationCodeExpires *time.Time `json:"confirmationCodeExpires,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EmailPattern is the pattern every stored email must match:
// local-part@domain.tld with no whitespace or '@' in either part and at
// least one '.' in the domain.
const EmailPattern = `^[^\s@]+@[^\s@]+\.[^\s@]+$`

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of u that is safe to hand to API clients.
func (u User) Public() User {
	u.Password = ""
	if u.Groups == nil {
		u.Groups = []string{}
	}
	return u
}

// HasPendingConfirmation reports whether a confirmation code is set and not
// yet expired at the given moment.
func (u User) HasPendingConfirmation(now time.Time) bool {
	if u.IsEmailConfirmed || u.ConfirmationCode == nil {
		return false
	}
	if u.ConfirmationCodeExpires == nil {
		return true
	}
	return now.Before(*u.ConfirmationCodeExpires)
}
