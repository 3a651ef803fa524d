// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

// Error texts are shown to the user as they are.
var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName        = errors.New("name is required")
	ErrEmptyEmail       = errors.New("email is required")
	ErrInvalidEmail     = errors.New("email is not a valid address")
	ErrEmptyPassword    = errors.New("password is required")
	ErrInvalidRole      = errors.New("role must be resident or admin")
	ErrEmptyTitle       = errors.New("title is required")
	ErrEmptyDescription = errors.New("description is required")
	ErrEmptyCategory    = errors.New("category is required")
	ErrInvalidPriority  = errors.New("priority must be low, medium or high")
	ErrInvalidStatus    = errors.New("unknown issue status")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
	ErrEmptyReceiver    = errors.New("receiver id is required")
	ErrEmptyContent     = errors.New("message is empty")
)
