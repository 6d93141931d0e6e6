// Package common defines shared constants and sentinel errors used across
// notekeeper layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors. ErrInvalidToken deliberately covers malformed, forged and
	// expired tokens alike so that callers cannot tell the cases apart.
	ErrInvalidToken         = errors.New("invalid token")
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// Account errors.
	ErrorWrongPassword = errors.New("current password is incorrect")
	ErrorSamePassword  = errors.New("new password matches the current one")

	// Category errors.
	ErrorDefaultCategory    = errors.New("default category is protected")
	ErrorAlreadyCategorized = errors.New("note already in category")
)
