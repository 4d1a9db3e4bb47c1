// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced to callers by every mutating operation. Handlers
// map these to HTTP statuses; none are retried by the core. ErrVersionConflict
// is retryable by the caller after a refetch.
var (
	ErrForbidden             = errors.New("forbidden")
	ErrNotFound              = errors.New("not found")
	ErrInviteExpired         = errors.New("invite expired")
	ErrInviteAlreadyConsumed = errors.New("invite already consumed")
	ErrAlreadyMember         = errors.New("user already belongs to a company")
	ErrLastAdministrator     = errors.New("company must retain at least one administrator")
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrVersionConflict       = errors.New("document version conflict")
	ErrValidation            = errors.New("validation failed")
)

// ErrNotAMember marks a target user that does not belong to the company.
// It unwraps to ErrNotFound.
var ErrNotAMember = fmt.Errorf("%w: user is not a member of the company", ErrNotFound)

// NewValidationError wraps ErrValidation with the offending detail.
func NewValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
