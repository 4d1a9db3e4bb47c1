// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/helpdocs/collab-service/internal/logging"
	"github.com/helpdocs/collab-service/internal/monitoring"
	"github.com/helpdocs/collab-service/internal/storage"
	"github.com/helpdocs/collab-service/internal/tracing"
	"github.com/helpdocs/collab-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_authorization.go -source=./interfaces.go

func newAuthorizer(memberships MembershipReaderInterface) *Authorizer {
	return NewAuthorizer(memberships, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestAuthorizer_HasRole(t *testing.T) {
	companyID := "company-1"
	userID := "user-1"
	dbErr := errors.New("db error")

	testCases := []struct {
		name        string
		role        types.Role
		membership  *types.Membership
		storageErr  error
		expected    bool
		expectedErr error
	}{
		{
			name:       "holds the role",
			role:       types.RoleAdministrator,
			membership: &types.Membership{CompanyID: companyID, UserID: userID, Role: types.RoleAdministrator},
			expected:   true,
		},
		{
			name:       "holds a different role",
			role:       types.RoleAdministrator,
			membership: &types.Membership{CompanyID: companyID, UserID: userID, Role: types.RoleDeveloper},
			expected:   false,
		},
		{
			name:       "not a member",
			role:       types.RoleAdministrator,
			storageErr: storage.ErrNotFound,
			expected:   false,
		},
		{
			name:        "storage error",
			role:        types.RoleAdministrator,
			storageErr:  dbErr,
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockMemberships := NewMockMembershipReaderInterface(ctrl)
			mockMemberships.EXPECT().GetMembership(gomock.Any(), companyID, userID).Return(tc.membership, tc.storageErr)

			a := newAuthorizer(mockMemberships)

			ok, err := a.HasRole(context.Background(), companyID, userID, tc.role)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, ok)
			}
		})
	}
}

func TestAuthorizer_RequireRole(t *testing.T) {
	companyID := "company-1"
	userID := "user-1"

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMemberships := NewMockMembershipReaderInterface(ctrl)
	mockMemberships.EXPECT().GetMembership(gomock.Any(), companyID, userID).
		Return(&types.Membership{CompanyID: companyID, UserID: userID, Role: types.RoleDeveloper}, nil)

	a := newAuthorizer(mockMemberships)

	err := a.RequireRole(context.Background(), companyID, userID, types.RoleAdministrator)
	if !errors.Is(err, types.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestAuthorizer_RequireMember(t *testing.T) {
	companyID := "company-1"

	testCases := []struct {
		name        string
		membership  *types.Membership
		storageErr  error
		expectedErr error
	}{
		{
			name:       "member with any role passes",
			membership: &types.Membership{CompanyID: companyID, UserID: "user-1", Role: types.RoleUnassigned},
		},
		{
			name:        "non-member is refused",
			storageErr:  storage.ErrNotFound,
			expectedErr: types.ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockMemberships := NewMockMembershipReaderInterface(ctrl)
			mockMemberships.EXPECT().GetMembership(gomock.Any(), companyID, "user-1").Return(tc.membership, tc.storageErr)

			a := newAuthorizer(mockMemberships)

			err := a.RequireMember(context.Background(), companyID, "user-1")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
