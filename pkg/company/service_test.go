// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package company

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/helpdocs/collab-service/internal/logging"
	"github.com/helpdocs/collab-service/internal/monitoring"
	"github.com/helpdocs/collab-service/internal/storage"
	"github.com/helpdocs/collab-service/internal/tracing"
	"github.com/helpdocs/collab-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package company -destination ./mock_company.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package company -destination ./mock_db.go -source=../../internal/db/interfaces.go

func newTestService(t *testing.T, ctrl *gomock.Controller) (*Service, *MockStorageInterface, *MockAuthzInterface) {
	t.Helper()

	mockStorage := NewMockStorageInterface(ctrl)
	mockAuthz := NewMockAuthzInterface(ctrl)
	mockDB := NewMockDBClientInterface(ctrl)

	mockDB.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()

	s := NewService(
		mockStorage,
		mockAuthz,
		mockDB,
		5*time.Minute,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	return s, mockStorage, mockAuthz
}

func TestService_CreateCompany(t *testing.T) {
	creatorID := "user-1"
	company := &types.Company{Name: "Acme", Email: "office@acme.test"}
	created := &types.Company{ID: "company-1", Name: "Acme", Email: "office@acme.test"}

	testCases := []struct {
		name        string
		company     *types.Company
		setupMocks  func(*MockStorageInterface, *MockAuthzInterface)
		expectedErr error
	}{
		{
			name:    "success",
			company: company,
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockAuthzInterface) {
				mockStorage.EXPECT().GetMembershipByUserID(gomock.Any(), creatorID).Return(nil, storage.ErrNotFound)
				mockStorage.EXPECT().CreateCompany(gomock.Any(), company).Return(created, nil)
				mockStorage.EXPECT().AddMember(gomock.Any(), created.ID, creatorID, types.RoleAdministrator).
					Return(&types.Membership{CompanyID: created.ID, UserID: creatorID, Role: types.RoleAdministrator}, nil)
			},
			expectedErr: nil,
		},
		{
			name:        "missing name",
			company:     &types.Company{},
			setupMocks:  func(*MockStorageInterface, *MockAuthzInterface) {},
			expectedErr: types.ErrValidation,
		},
		{
			name:    "creator already belongs to a company",
			company: company,
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockAuthzInterface) {
				mockStorage.EXPECT().GetMembershipByUserID(gomock.Any(), creatorID).
					Return(&types.Membership{CompanyID: "company-9", UserID: creatorID}, nil)
			},
			expectedErr: types.ErrAlreadyMember,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, mockAuthz := newTestService(t, ctrl)
			tc.setupMocks(mockStorage, mockAuthz)

			got, err := s.CreateCompany(context.Background(), creatorID, tc.company)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ID != created.ID {
				t.Errorf("expected company %s, got %s", created.ID, got.ID)
			}
		})
	}
}

func TestService_IssueInvite(t *testing.T) {
	companyID := "company-1"
	callerID := "admin-1"
	issuedAt := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockAuthzInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface) {
				mockStorage.EXPECT().LockCompany(gomock.Any(), companyID).Return(nil)
				mockAuthz.EXPECT().RequireRole(gomock.Any(), companyID, callerID, types.RoleAdministrator).Return(nil)
				mockStorage.EXPECT().ReplaceInvite(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, invite *types.Invite) (*types.Invite, error) {
						if len(invite.Code) != inviteCodeLength {
							t.Errorf("expected %d char code, got %q", inviteCodeLength, invite.Code)
						}
						if !invite.ExpiresAt.Equal(issuedAt.Add(5 * time.Minute)) {
							t.Errorf("expected expiry 5m after issue, got %v", invite.ExpiresAt)
						}
						return invite, nil
					},
				)
			},
			expectedErr: nil,
		},
		{
			name: "code collision retried",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface) {
				mockStorage.EXPECT().LockCompany(gomock.Any(), companyID).Return(nil)
				mockAuthz.EXPECT().RequireRole(gomock.Any(), companyID, callerID, types.RoleAdministrator).Return(nil)
				gomock.InOrder(
					mockStorage.EXPECT().ReplaceInvite(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey),
					mockStorage.EXPECT().ReplaceInvite(gomock.Any(), gomock.Any()).DoAndReturn(
						func(_ context.Context, invite *types.Invite) (*types.Invite, error) {
							return invite, nil
						},
					),
				)
			},
			expectedErr: nil,
		},
		{
			name: "caller is not an administrator",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface) {
				mockStorage.EXPECT().LockCompany(gomock.Any(), companyID).Return(nil)
				mockAuthz.EXPECT().RequireRole(gomock.Any(), companyID, callerID, types.RoleAdministrator).Return(types.ErrForbidden)
			},
			expectedErr: types.ErrForbidden,
		},
		{
			name: "company does not exist",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockAuthzInterface) {
				mockStorage.EXPECT().LockCompany(gomock.Any(), companyID).Return(storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, mockAuthz := newTestService(t, ctrl)
			s.now = func() time.Time { return issuedAt }
			tc.setupMocks(mockStorage, mockAuthz)

			invite, err := s.IssueInvite(context.Background(), companyID, callerID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if invite == nil || invite.CompanyID != companyID {
				t.Errorf("expected invite for %s, got %+v", companyID, invite)
			}
		})
	}
}

func TestService_RedeemInvite(t *testing.T) {
	code := "ABCD2345"
	userID := "user-2"
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	freshInvite := func() *types.Invite {
		return &types.Invite{
			CompanyID: "company-1",
			Code:      code,
			IssuedAt:  now.Add(-time.Minute),
			ExpiresAt: now.Add(4 * time.Minute),
		}
	}

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "success joins with unassigned role",
			setupMocks: func(mockStorage *MockStorageInterface) {
				invite := freshInvite()
				mockStorage.EXPECT().GetInviteByCodeForUpdate(gomock.Any(), code).Return(invite, nil)
				mockStorage.EXPECT().GetMembershipByUserID(gomock.Any(), userID).Return(nil, storage.ErrNotFound)
				mockStorage.EXPECT().AddMember(gomock.Any(), invite.CompanyID, userID, types.RoleUnassigned).
					Return(&types.Membership{CompanyID: invite.CompanyID, UserID: userID, Role: types.RoleUnassigned}, nil)
				mockStorage.EXPECT().ConsumeInvite(gomock.Any(), invite.CompanyID, userID).Return(nil)
			},
			expectedErr: nil,
		},
		{
			name: "unknown code",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetInviteByCodeForUpdate(gomock.Any(), code).Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
		{
			name: "expired invite",
			setupMocks: func(mockStorage *MockStorageInterface) {
				invite := freshInvite()
				invite.ExpiresAt = now.Add(-time.Second)
				mockStorage.EXPECT().GetInviteByCodeForUpdate(gomock.Any(), code).Return(invite, nil)
			},
			expectedErr: types.ErrInviteExpired,
		},
		{
			name: "already consumed",
			setupMocks: func(mockStorage *MockStorageInterface) {
				invite := freshInvite()
				invite.Consumed = true
				invite.ConsumedBy = "user-9"
				mockStorage.EXPECT().GetInviteByCodeForUpdate(gomock.Any(), code).Return(invite, nil)
				mockStorage.EXPECT().GetMembershipByUserID(gomock.Any(), userID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrInviteAlreadyConsumed,
		},
		{
			name: "redeemer already belongs to a company",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetInviteByCodeForUpdate(gomock.Any(), code).Return(freshInvite(), nil)
				mockStorage.EXPECT().GetMembershipByUserID(gomock.Any(), userID).
					Return(&types.Membership{CompanyID: "company-9", UserID: userID}, nil)
			},
			expectedErr: types.ErrAlreadyMember,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _ := newTestService(t, ctrl)
			s.now = func() time.Time { return now }
			tc.setupMocks(mockStorage)

			membership, err := s.RedeemInvite(context.Background(), code, userID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if membership.Role != types.RoleUnassigned {
				t.Errorf("expected unassigned role, got %s", membership.Role)
			}
		})
	}
}

func TestService_AssignRole(t *testing.T) {
	companyID := "company-1"
	callerID := "admin-1"
	targetID := "user-2"

	testCases := []struct {
		name         string
		role         types.Role
		setupMocks   func(*MockStorageInterface, *MockAuthzInterface)
		expectedRole types.Role
		expectedErr  error
	}{
		{
			name: "success",
			role: types.RoleDeveloper,
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface) {
				mockStorage.EXPECT().LockCompany(gomock.Any(), companyID).Return(nil)
				mockAuthz.EXPECT().RequireRole(gomock.Any(), companyID, callerID, types.RoleAdministrator).Return(nil)
				mockStorage.EXPECT().GetMembership(gomock.Any(), companyID, targetID).
					Return(&types.Membership{CompanyID: companyID, UserID: targetID, Role: types.RoleUnassigned}, nil)
				mockStorage.EXPECT().UpdateMemberRole(gomock.Any(), companyID, targetID, types.RoleDeveloper).Return(nil)
			},
			expectedRole: types.RoleDeveloper,
		},
		{
			name: "assigning the held role is a no-op",
			role: types.RoleDeveloper,
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface) {
				mockStorage.EXPECT().LockCompany(gomock.Any(), companyID).Return(nil)
				mockAuthz.EXPECT().RequireRole(gomock.Any(), companyID, callerID, types.RoleAdministrator).Return(nil)
				mockStorage.EXPECT().GetMembership(gomock.Any(), companyID, targetID).
					Return(&types.Membership{CompanyID: companyID, UserID: targetID, Role: types.RoleDeveloper}, nil)
			},
			expectedRole: types.RoleDeveloper,
		},
		{
			name: "demoting the last administrator is refused",
			role: types.RoleDeveloper,
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface) {
				mockStorage.EXPECT().LockCompany(gomock.Any(), companyID).Return(nil)
				mockAuthz.EXPECT().RequireRole(gomock.Any(), companyID, callerID, types.RoleAdministrator).Return(nil)
				mockStorage.EXPECT().GetMembership(gomock.Any(), companyID, callerID).
					Return(&types.Membership{CompanyID: companyID, UserID: callerID, Role: types.RoleAdministrator}, nil)
				mockStorage.EXPECT().CountAdministrators(gomock.Any(), companyID).Return(int64(1), nil)
			},
			expectedErr: types.ErrLastAdministrator,
		},
		{
			name: "demoting one of several administrators succeeds",
			role: types.RoleProjectManager,
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface) {
				mockStorage.EXPECT().LockCompany(gomock.Any(), companyID).Return(nil)
				mockAuthz.EXPECT().RequireRole(gomock.Any(), companyID, callerID, types.RoleAdministrator).Return(nil)
				mockStorage.EXPECT().GetMembership(gomock.Any(), companyID, targetID).
					Return(&types.Membership{CompanyID: companyID, UserID: targetID, Role: types.RoleAdministrator}, nil)
				mockStorage.EXPECT().CountAdministrators(gomock.Any(), companyID).Return(int64(2), nil)
				mockStorage.EXPECT().UpdateMemberRole(gomock.Any(), companyID, targetID, types.RoleProjectManager).Return(nil)
			},
			expectedRole: types.RoleProjectManager,
		},
		{
			name:        "unknown role",
			role:        types.Role("owner"),
			setupMocks:  func(*MockStorageInterface, *MockAuthzInterface) {},
			expectedErr: types.ErrValidation,
		},
		{
			name: "target is not a member",
			role: types.RoleDeveloper,
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface) {
				mockStorage.EXPECT().LockCompany(gomock.Any(), companyID).Return(nil)
				mockAuthz.EXPECT().RequireRole(gomock.Any(), companyID, callerID, types.RoleAdministrator).Return(nil)
				mockStorage.EXPECT().GetMembership(gomock.Any(), companyID, targetID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, mockAuthz := newTestService(t, ctrl)
			tc.setupMocks(mockStorage, mockAuthz)

			target := targetID
			if tc.name == "demoting the last administrator is refused" {
				target = callerID
			}

			membership, err := s.AssignRole(context.Background(), companyID, callerID, target, tc.role)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if membership.Role != tc.expectedRole {
				t.Errorf("expected role %s, got %s", tc.expectedRole, membership.Role)
			}
		})
	}
}

func TestService_RemoveMember(t *testing.T) {
	companyID := "company-1"

	testCases := []struct {
		name        string
		callerID    string
		targetID    string
		setupMocks  func(*MockStorageInterface, *MockAuthzInterface)
		expectedErr error
	}{
		{
			name:     "administrator removes another member",
			callerID: "admin-1",
			targetID: "user-2",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface) {
				mockStorage.EXPECT().LockCompany(gomock.Any(), companyID).Return(nil)
				mockAuthz.EXPECT().RequireRole(gomock.Any(), companyID, "admin-1", types.RoleAdministrator).Return(nil)
				mockStorage.EXPECT().GetMembership(gomock.Any(), companyID, "user-2").
					Return(&types.Membership{CompanyID: companyID, UserID: "user-2", Role: types.RoleDeveloper}, nil)
				mockStorage.EXPECT().RemoveMember(gomock.Any(), companyID, "user-2").Return(nil)
			},
		},
		{
			name:     "member leaves without administrator role",
			callerID: "user-2",
			targetID: "user-2",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockAuthzInterface) {
				mockStorage.EXPECT().LockCompany(gomock.Any(), companyID).Return(nil)
				mockStorage.EXPECT().GetMembership(gomock.Any(), companyID, "user-2").
					Return(&types.Membership{CompanyID: companyID, UserID: "user-2", Role: types.RoleDeveloper}, nil)
				mockStorage.EXPECT().RemoveMember(gomock.Any(), companyID, "user-2").Return(nil)
			},
		},
		{
			name:     "last administrator cannot leave",
			callerID: "admin-1",
			targetID: "admin-1",
			setupMocks: func(mockStorage *MockStorageInterface, _ *MockAuthzInterface) {
				mockStorage.EXPECT().LockCompany(gomock.Any(), companyID).Return(nil)
				mockStorage.EXPECT().GetMembership(gomock.Any(), companyID, "admin-1").
					Return(&types.Membership{CompanyID: companyID, UserID: "admin-1", Role: types.RoleAdministrator}, nil)
				mockStorage.EXPECT().CountAdministrators(gomock.Any(), companyID).Return(int64(1), nil)
			},
			expectedErr: types.ErrLastAdministrator,
		},
		{
			name:     "non-administrator cannot remove others",
			callerID: "user-2",
			targetID: "user-3",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface) {
				mockStorage.EXPECT().LockCompany(gomock.Any(), companyID).Return(nil)
				mockAuthz.EXPECT().RequireRole(gomock.Any(), companyID, "user-2", types.RoleAdministrator).Return(types.ErrForbidden)
			},
			expectedErr: types.ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, mockAuthz := newTestService(t, ctrl)
			tc.setupMocks(mockStorage, mockAuthz)

			err := s.RemoveMember(context.Background(), companyID, tc.callerID, tc.targetID)

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

func TestService_DeleteCompany(t *testing.T) {
	companyID := "company-1"
	callerID := "admin-1"

	testCases := []struct {
		name        string
		setupMocks  func(*MockStorageInterface, *MockAuthzInterface)
		expectedErr error
	}{
		{
			name: "success removes the company channel too",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface) {
				mockStorage.EXPECT().LockCompany(gomock.Any(), companyID).Return(nil)
				mockAuthz.EXPECT().RequireRole(gomock.Any(), companyID, callerID, types.RoleAdministrator).Return(nil)
				mockStorage.EXPECT().DeleteMessagesByChannel(gomock.Any(), types.Channel{Kind: types.ChatKindCompany, ChatID: companyID}).Return(nil)
				mockStorage.EXPECT().DeleteCompany(gomock.Any(), companyID).Return(nil)
			},
		},
		{
			name: "caller is not an administrator",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface) {
				mockStorage.EXPECT().LockCompany(gomock.Any(), companyID).Return(nil)
				mockAuthz.EXPECT().RequireRole(gomock.Any(), companyID, callerID, types.RoleAdministrator).Return(types.ErrForbidden)
			},
			expectedErr: types.ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, mockAuthz := newTestService(t, ctrl)
			tc.setupMocks(mockStorage, mockAuthz)

			err := s.DeleteCompany(context.Background(), companyID, callerID)

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

func TestGenerateInviteCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := generateInviteCode()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(code) != inviteCodeLength {
			t.Fatalf("expected %d chars, got %q", inviteCodeLength, code)
		}
		for _, c := range code {
			switch c {
			case '0', 'O', '1', 'I':
				t.Fatalf("ambiguous character %q in code %q", c, code)
			}
		}
		seen[code] = true
	}
	if len(seen) < 2 {
		t.Error("expected distinct codes across invocations")
	}
}
