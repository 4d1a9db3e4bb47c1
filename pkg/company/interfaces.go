// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package company

import (
	"context"

	"github.com/helpdocs/collab-service/internal/types"
)

type ServiceInterface interface {
	CreateCompany(ctx context.Context, creatorID string, c *types.Company) (*types.Company, error)
	GetCompany(ctx context.Context, companyID, callerID string) (*types.Company, error)
	ListCompaniesByUser(ctx context.Context, userID string) ([]*types.Company, error)
	ListMembers(ctx context.Context, companyID, callerID string) ([]*types.Membership, error)
	IssueInvite(ctx context.Context, companyID, callerID string) (*types.Invite, error)
	RedeemInvite(ctx context.Context, code, userID string) (*types.Membership, error)
	AssignRole(ctx context.Context, companyID, callerID, targetUserID string, role types.Role) (*types.Membership, error)
	RemoveMember(ctx context.Context, companyID, callerID, targetUserID string) error
	DeleteCompany(ctx context.Context, companyID, callerID string) error
}

// StorageInterface is the slice of internal/storage this package consumes.
type StorageInterface interface {
	CreateCompany(ctx context.Context, c *types.Company) (*types.Company, error)
	GetCompanyByID(ctx context.Context, id string) (*types.Company, error)
	LockCompany(ctx context.Context, id string) error
	DeleteCompany(ctx context.Context, id string) error
	ListCompaniesByUserID(ctx context.Context, userID string) ([]*types.Company, error)
	AddMember(ctx context.Context, companyID, userID string, role types.Role) (*types.Membership, error)
	GetMembership(ctx context.Context, companyID, userID string) (*types.Membership, error)
	GetMembershipByUserID(ctx context.Context, userID string) (*types.Membership, error)
	ListMembersByCompanyID(ctx context.Context, companyID string) ([]*types.Membership, error)
	UpdateMemberRole(ctx context.Context, companyID, userID string, role types.Role) error
	RemoveMember(ctx context.Context, companyID, userID string) error
	CountAdministrators(ctx context.Context, companyID string) (int64, error)
	ReplaceInvite(ctx context.Context, invite *types.Invite) (*types.Invite, error)
	GetInviteByCodeForUpdate(ctx context.Context, code string) (*types.Invite, error)
	ConsumeInvite(ctx context.Context, companyID, userID string) error
	DeleteMessagesByChannel(ctx context.Context, channel types.Channel) error
}

type AuthzInterface interface {
	RequireRole(ctx context.Context, companyID, userID string, role types.Role) error
	RequireMember(ctx context.Context, companyID, userID string) error
}
