// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/helpdocs/collab-service/internal/types"
)

type AuthorizerInterface interface {
	// HasRole reports whether the user holds exactly the given role in the company.
	HasRole(ctx context.Context, companyID, userID string, role types.Role) (bool, error)
	// IsMember reports whether the user holds any role in the company.
	IsMember(ctx context.Context, companyID, userID string) (bool, error)
	// RequireRole fails with types.ErrForbidden unless the user holds the role.
	RequireRole(ctx context.Context, companyID, userID string, role types.Role) error
	// RequireMember fails with types.ErrForbidden unless the user is a member.
	RequireMember(ctx context.Context, companyID, userID string) error
}

// MembershipReaderInterface is the slice of storage the authorizer consults.
type MembershipReaderInterface interface {
	GetMembership(ctx context.Context, companyID, userID string) (*types.Membership, error)
}
