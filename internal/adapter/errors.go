// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// DefaultErrorMessage is reported when a failed response carries no
// "message" field.
const DefaultErrorMessage = "Something went wrong"

// ErrRequestFailed is matched by every error the adapter returns.
var ErrRequestFailed = errors.New("request failed")

// RequestError is the single error kind of the request client.
type RequestError struct {
	// Status is the HTTP status code, or 0 when no response was received.
	Status int

	// Message is what Error returns: the server-supplied message, the
	// default message, or a description of the transport failure.
	Message string

	// Err is the underlying transport or decoding error, if any.
	Err error
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrRequestFailed}
	}
	return []error{ErrRequestFailed, e.Err}
}
