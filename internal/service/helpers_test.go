// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-issue-desk/models"
)

// tokenExpiringAt signs a token the way the backend does; the client never
// checks the signature.
func tokenExpiringAt(t *testing.T, exp time.Time) string {
	t.Helper()

	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)},
		UserID:           "u-1",
		Email:            "ann@example.com",
		Name:             "Ann",
		Role:             models.RoleResident,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return token
}
