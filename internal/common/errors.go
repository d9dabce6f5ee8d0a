// Package common defines shared sentinel errors and small helpers used
// across the café registry, services, and CLI layers. Callers should use
// errors.Is to match the sentinel values.
package common

import "errors"

var (
	// Registry-level errors.
	ErrorUserNotFound    = errors.New("user not found")
	ErrorDuplicateUserID = errors.New("duplicate user id")

	// Session lifecycle errors.
	ErrorSessionAlreadyActive = errors.New("session already active")
	ErrorInvalidPageCount     = errors.New("invalid page count")

	// Registration errors.
	ErrorWeakPassword = errors.New("password is not strong enough")
	ErrorValidation   = errors.New("validation error")

	// Admin gate errors.
	ErrorAdminAuthFailed = errors.New("admin authentication failed")
)
