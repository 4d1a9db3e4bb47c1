// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/helpdocs/collab-service/internal/types"
)

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

	CreateDocument(ctx context.Context, d *types.Document) (*types.Document, error)
	GetDocumentByID(ctx context.Context, id string) (*types.Document, error)
	ListDocumentsByCompanyID(ctx context.Context, companyID string) ([]*types.Document, error)
	UpdateDocumentContent(ctx context.Context, id string, baseVersion int64, patch *types.DocumentPatch) (*types.Document, error)
	UpdateDocumentStatus(ctx context.Context, id string, status types.DocumentStatus) (*types.Document, error)
	UpdateDocumentTeam(ctx context.Context, id string, teamID *string) (*types.Document, error)
	DeleteDocument(ctx context.Context, id string) error
	ReplaceChecklist(ctx context.Context, documentID string, items []types.ChecklistItem) ([]types.ChecklistItem, error)
	ListChecklistItems(ctx context.Context, documentID string) ([]types.ChecklistItem, error)

	InsertMessage(ctx context.Context, m *types.Message) (*types.Message, error)
	GetMessageByID(ctx context.Context, id string) (*types.Message, error)
	UpdateMessageContent(ctx context.Context, id, content string, editedAt time.Time) (*types.Message, error)
	ListMessagesByChannel(ctx context.Context, channel types.Channel, offset, limit uint64) ([]*types.Message, error)
	DeleteMessagesByChannel(ctx context.Context, channel types.Channel) error
}
