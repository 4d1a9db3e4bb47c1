// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package document

import (
	"context"

	"github.com/helpdocs/collab-service/internal/types"
)

type ServiceInterface interface {
	Create(ctx context.Context, companyID, creatorID string, d *types.Document) (*types.Document, error)
	Get(ctx context.Context, documentID, callerID string) (*types.Document, error)
	ListByCompany(ctx context.Context, companyID, callerID string) ([]*types.Document, error)
	Edit(ctx context.Context, documentID, callerID string, baseVersion int64, patch *types.DocumentPatch) (*types.Document, error)
	Transition(ctx context.Context, documentID, callerID string, target types.DocumentStatus) (*types.Document, error)
	SetChecklist(ctx context.Context, documentID, callerID string, items []types.ChecklistItem) (*types.Document, error)
	AssignToTeam(ctx context.Context, documentID, callerID string, teamID *string) (*types.Document, error)
	Delete(ctx context.Context, documentID, callerID string) error
}

// StorageInterface is the slice of internal/storage this package consumes.
type StorageInterface interface {
	CreateDocument(ctx context.Context, d *types.Document) (*types.Document, error)
	GetDocumentByID(ctx context.Context, id string) (*types.Document, error)
	ListDocumentsByCompanyID(ctx context.Context, companyID string) ([]*types.Document, error)
	UpdateDocumentContent(ctx context.Context, id string, baseVersion int64, patch *types.DocumentPatch) (*types.Document, error)
	UpdateDocumentStatus(ctx context.Context, id string, status types.DocumentStatus) (*types.Document, error)
	UpdateDocumentTeam(ctx context.Context, id string, teamID *string) (*types.Document, error)
	DeleteDocument(ctx context.Context, id string) error
	ReplaceChecklist(ctx context.Context, documentID string, items []types.ChecklistItem) ([]types.ChecklistItem, error)
}

type AuthzInterface interface {
	HasRole(ctx context.Context, companyID, userID string, role types.Role) (bool, error)
	RequireMember(ctx context.Context, companyID, userID string) error
}
