// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/MKhiriev/go-issue-desk/models"
	"github.com/golang-jwt/jwt/v5"
)

// DecodeClaims extracts the claims from the payload segment of a bearer
// token without verifying its signature.
//
// The token is split on "." and must have at least two segments; the second
// one is decoded as base64url JSON into [models.Claims].
//
// Returns ok == false when the token is empty, has fewer than two segments,
// or its payload cannot be decoded. It never panics.
//
// Example usage:
//
//	claims, ok := utils.DecodeClaims(token)
//	if !ok {
//	    // treat as logged out
//	}
func DecodeClaims(token string) (models.Claims, bool) {
	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return models.Claims{}, false
	}

	payload, err := jwt.NewParser(jwt.WithPaddingAllowed()).DecodeSegment(parts[1])
	if err != nil {
		return models.Claims{}, false
	}

	var claims models.Claims
	if err = json.Unmarshal(payload, &claims); err != nil {
		return models.Claims{}, false
	}

	return claims, true
}

// TokenValidAt reports whether token decodes and its "exp" claim lies
// strictly after now.
func TokenValidAt(token string, now time.Time) bool {
	claims, ok := DecodeClaims(token)
	if !ok {
		return false
	}
	return claims.ExpiresAfter(now)
}

// BearerHeader formats the Authorization header value for token.
func BearerHeader(token string) string {
	return "Bearer " + token
}
