// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/helpdocs/collab-service/internal/types"
)

func TestHTTPStatusFromError(t *testing.T) {
	testCases := []struct {
		err      error
		expected int
	}{
		{types.NewValidationError("bad input"), http.StatusBadRequest},
		{types.ErrForbidden, http.StatusForbidden},
		{types.ErrNotFound, http.StatusNotFound},
		{types.ErrNotAMember, http.StatusNotFound},
		{types.ErrAlreadyMember, http.StatusConflict},
		{types.ErrLastAdministrator, http.StatusConflict},
		{types.ErrInvalidTransition, http.StatusConflict},
		{types.ErrVersionConflict, http.StatusConflict},
		{types.ErrInviteAlreadyConsumed, http.StatusConflict},
		{types.ErrInviteExpired, http.StatusGone},
		{errors.New("disk on fire"), http.StatusInternalServerError},
		{fmt.Errorf("wrapped: %w", types.ErrVersionConflict), http.StatusConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			if got := HTTPStatusFromError(tc.err); got != tc.expected {
				t.Errorf("expected %d, got %d", tc.expected, got)
			}
		})
	}
}

func TestWriteErrorResponse_MasksInternalErrors(t *testing.T) {
	w := httptest.NewRecorder()
	WriteErrorResponse(w, errors.New("dsn=postgres://secret@db"))

	res := w.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", res.StatusCode)
	}

	var body ErrorResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Message != "internal server error" {
		t.Errorf("internal detail leaked: %q", body.Message)
	}
}

func TestWriteErrorResponse_KeepsTypedDetail(t *testing.T) {
	w := httptest.NewRecorder()
	WriteErrorResponse(w, types.ErrLastAdministrator)

	res := w.Result()
	defer res.Body.Close()

	var body ErrorResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Status != http.StatusConflict || body.Message == "internal server error" {
		t.Errorf("expected typed conflict detail, got %+v", body)
	}
}
