// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"fmt"

	"github.com/helpdocs/collab-service/internal/logging"
	"github.com/helpdocs/collab-service/internal/monitoring"
	"github.com/helpdocs/collab-service/internal/storage"
	"github.com/helpdocs/collab-service/internal/tracing"
	"github.com/helpdocs/collab-service/internal/types"
)

var _ AuthorizerInterface = (*Authorizer)(nil)

// Authorizer is the capability check every mutating operation consults.
// Roles live in the memberships relation, so checks made inside a transaction
// observe the same state the mutation will commit against.
type Authorizer struct {
	memberships MembershipReaderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAuthorizer(memberships MembershipReaderInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	return &Authorizer{
		memberships: memberships,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}

func (a *Authorizer) HasRole(ctx context.Context, companyID, userID string, role types.Role) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.HasRole")
	defer span.End()

	m, err := a.memberships.GetMembership(ctx, companyID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to resolve membership: %w", err)
	}

	return m.Role == role, nil
}

func (a *Authorizer) IsMember(ctx context.Context, companyID, userID string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.IsMember")
	defer span.End()

	_, err := a.memberships.GetMembership(ctx, companyID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to resolve membership: %w", err)
	}

	return true, nil
}

func (a *Authorizer) RequireRole(ctx context.Context, companyID, userID string, role types.Role) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RequireRole")
	defer span.End()

	ok, err := a.HasRole(ctx, companyID, userID, role)
	if err != nil {
		return err
	}
	if !ok {
		a.logger.Security().AuthorizationDenied(userID, companyID, string(role))
		return types.ErrForbidden
	}

	return nil
}

func (a *Authorizer) RequireMember(ctx context.Context, companyID, userID string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RequireMember")
	defer span.End()

	ok, err := a.IsMember(ctx, companyID, userID)
	if err != nil {
		return err
	}
	if !ok {
		a.logger.Security().AuthorizationDenied(userID, companyID, "member")
		return types.ErrForbidden
	}

	return nil
}
