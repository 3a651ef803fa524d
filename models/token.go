// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded payload segment of the bearer token issued by the
// backend.
//
// It embeds [jwt.RegisteredClaims] for the standard claim set (exp, iat, sub,
// ...) and adds the identity fields the backend puts next to them. The
// client never verifies the signature: claims are only used to decide whether
// the cached session is still usable and to show who is logged in.
type Claims struct {
	jwt.RegisteredClaims

	// UserID mirrors User.ID.
	UserID string `json:"id,omitempty"`

	// Email mirrors User.Email.
	Email string `json:"email,omitempty"`

	// Name mirrors User.Name.
	Name string `json:"name,omitempty"`

	// Role mirrors User.Role.
	Role Role `json:"role,omitempty"`
}

// ExpiresAfter reports whether the "exp" claim is strictly later than now.
// A token without "exp" is treated as already expired.
func (c Claims) ExpiresAfter(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return c.ExpiresAt.Time.After(now)
}

// User converts the identity claims into a [User] value.
func (c Claims) User() User {
	id := c.UserID
	if id == "" {
		id = c.Subject
	}
	return User{ID: id, Name: c.Name, Email: c.Email, Role: c.Role}
}
