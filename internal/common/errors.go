// Package common defines shared constants and sentinel errors used across
// the storefront client. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Transport-level errors.
	ErrUnavailable = errors.New("server unavailable")

	// Auth errors.
	ErrUnauthorized     = errors.New("unauthorized")
	ErrNotAuthenticated = errors.New("not authenticated")

	// Repository-level errors.
	ErrNotFound = errors.New("not found")
)
