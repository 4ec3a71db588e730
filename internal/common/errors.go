// Package common defines shared constants and sentinel errors used across
// assignment-nudge layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")

	// Auth flow errors.
	ErrUserNotFound     = errors.New("user not found")
	ErrUserExists       = errors.New("user already exists")
	ErrUserNotConfirmed = errors.New("user is not confirmed")
	ErrInvalidCode      = errors.New("invalid or expired confirmation code")

	// Session token lifecycle errors.
	ErrInvalidToken   = errors.New("invalid token")
	ErrSessionExpired = errors.New("session expired")

	ErrNotLoggedIn = errors.New("not logged in")
)
