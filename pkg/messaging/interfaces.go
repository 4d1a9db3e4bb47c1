// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package messaging

import (
	"context"
	"time"

	"github.com/helpdocs/collab-service/internal/types"
)

type ServiceInterface interface {
	PostMessage(ctx context.Context, channel types.Channel, authorID, content string) (*types.Message, error)
	EditMessage(ctx context.Context, messageID, callerID, newContent string) (*types.Message, error)
	ListMessages(ctx context.Context, channel types.Channel, callerID string, page, size int64) ([]*types.Message, error)
}

// StorageInterface is the slice of internal/storage this package consumes.
type StorageInterface interface {
	InsertMessage(ctx context.Context, m *types.Message) (*types.Message, error)
	GetMessageByID(ctx context.Context, id string) (*types.Message, error)
	UpdateMessageContent(ctx context.Context, id, content string, editedAt time.Time) (*types.Message, error)
	ListMessagesByChannel(ctx context.Context, channel types.Channel, offset, limit uint64) ([]*types.Message, error)
}

type AuthzInterface interface {
	RequireMember(ctx context.Context, companyID, userID string) error
}

// TeamDirectoryInterface is the external team directory consulted for team
// channels. It is an authorization hint only; team membership is not owned
// here.
type TeamDirectoryInterface interface {
	// CompanyForTeam resolves the company owning the team.
	CompanyForTeam(ctx context.Context, teamID string) (string, error)
	// IsTeamMember reports whether the user belongs to the team.
	IsTeamMember(ctx context.Context, teamID, userID string) (bool, error)
}
