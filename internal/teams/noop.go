// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package teams

import (
	"context"

	"github.com/helpdocs/collab-service/internal/types"
)

// NoopClient is used when no team directory is configured. Team scoped
// channels are unresolvable without one, so lookups report not found.
type NoopClient struct{}

func NewNoopClient() *NoopClient {
	return &NoopClient{}
}

func (c *NoopClient) CompanyForTeam(ctx context.Context, teamID string) (string, error) {
	return "", types.ErrNotFound
}

func (c *NoopClient) IsTeamMember(ctx context.Context, teamID, userID string) (bool, error) {
	return false, types.ErrNotFound
}
