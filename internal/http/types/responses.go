// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/helpdocs/collab-service/internal/types"
)

// ErrorResponse is the standard json envelope for failures.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// HTTPStatusFromError maps core error kinds to HTTP statuses. Anything the
// core did not type deliberately becomes a 500.
func HTTPStatusFromError(err error) int {
	switch {
	case errors.Is(err, types.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, types.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrAlreadyMember),
		errors.Is(err, types.ErrLastAdministrator),
		errors.Is(err, types.ErrInvalidTransition),
		errors.Is(err, types.ErrVersionConflict),
		errors.Is(err, types.ErrInviteAlreadyConsumed):
		return http.StatusConflict
	case errors.Is(err, types.ErrInviteExpired):
		return http.StatusGone
	default:
		return http.StatusInternalServerError
	}
}

// WriteErrorResponse writes the json error envelope for err.
func WriteErrorResponse(w http.ResponseWriter, err error) {
	status := HTTPStatusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}

	WriteResponse(w, status, ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// WriteResponse writes v as json with the given status code.
func WriteResponse(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
