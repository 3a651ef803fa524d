// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid backend settings (for
	// example, an unparsable address, a negative timeout or an unknown
	// realtime transport).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates invalid background job settings
	// (for example, a non-positive session check interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
