// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Role is the account kind assigned by the backend at registration.
type Role string

const (
	// RoleResident reports issues and tracks their own submissions.
	RoleResident Role = "resident"
	// RoleAdmin triages every issue and may change its status.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the roles accepted by the register
// endpoint.
func (r Role) Valid() bool {
	return r == RoleResident || r == RoleAdmin
}

// User is the account record returned by the auth endpoints.
type User struct {
	// ID is the server-side identifier of the account.
	ID string `json:"id"`

	// Name is the display name shown in the UI and in chat.
	Name string `json:"name"`

	// Email is the unique login of the account.
	Email string `json:"email"`

	// Role decides which issue operations the UI offers.
	Role Role `json:"role"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// AuthResponse is the payload returned by both login and register. Token is
// the bearer credential that the client persists for later requests.
type AuthResponse struct {
	Message string `json:"message,omitempty"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}
