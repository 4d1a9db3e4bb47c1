// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package company

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/helpdocs/collab-service/internal/db"
	"github.com/helpdocs/collab-service/internal/logging"
	"github.com/helpdocs/collab-service/internal/monitoring"
	"github.com/helpdocs/collab-service/internal/storage"
	"github.com/helpdocs/collab-service/internal/tracing"
	"github.com/helpdocs/collab-service/internal/types"
)

const (
	inviteCodeLength = 8
	// alphabet without 0/O/1/I, codes are typed by hand
	inviteCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

	inviteCodeMaxRetries = 5
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	authz   AuthzInterface
	db      db.DBClientInterface

	inviteLifetime time.Duration
	now            func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	dbClient db.DBClientInterface,
	inviteLifetime time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:        storage,
		authz:          authz,
		db:             dbClient,
		inviteLifetime: inviteLifetime,
		now:            time.Now,
		tracer:         tracer,
		monitor:        monitor,
		logger:         logger,
	}
}

// CreateCompany creates the company with the creator as its first
// Administrator. A company can never exist without one.
func (s *Service) CreateCompany(ctx context.Context, creatorID string, c *types.Company) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "company.Service.CreateCompany")
	defer span.End()

	if c.Name == "" {
		return nil, types.NewValidationError("company name is required")
	}

	if _, err := s.storage.GetMembershipByUserID(ctx, creatorID); err == nil {
		return nil, types.ErrAlreadyMember
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing membership: %w", err)
	}

	var created *types.Company
	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.storage.CreateCompany(ctx, c)
		if err != nil {
			return fmt.Errorf("failed to create company: %w", err)
		}

		if _, err := s.storage.AddMember(ctx, created.ID, creatorID, types.RoleAdministrator); err != nil {
			if errors.Is(err, storage.ErrDuplicateKey) {
				return types.ErrAlreadyMember
			}
			return fmt.Errorf("failed to add creator membership: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infof("company %s created by user %s", created.ID, creatorID)
	return created, nil
}

func (s *Service) GetCompany(ctx context.Context, companyID, callerID string) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "company.Service.GetCompany")
	defer span.End()

	if err := s.authz.RequireMember(ctx, companyID, callerID); err != nil {
		return nil, err
	}

	c, err := s.storage.GetCompanyByID(ctx, companyID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, err
	}

	return c, nil
}

func (s *Service) ListCompaniesByUser(ctx context.Context, userID string) ([]*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "company.Service.ListCompaniesByUser")
	defer span.End()

	return s.storage.ListCompaniesByUserID(ctx, userID)
}

func (s *Service) ListMembers(ctx context.Context, companyID, callerID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "company.Service.ListMembers")
	defer span.End()

	if err := s.authz.RequireMember(ctx, companyID, callerID); err != nil {
		return nil, err
	}

	return s.storage.ListMembersByCompanyID(ctx, companyID)
}

// IssueInvite mints a fresh single-use invite code, superseding any prior
// outstanding invite for the company. Only Administrators may issue.
func (s *Service) IssueInvite(ctx context.Context, companyID, callerID string) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "company.Service.IssueInvite")
	defer span.End()

	var invite *types.Invite
	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		if err := s.storage.LockCompany(ctx, companyID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return types.ErrNotFound
			}
			return err
		}

		if err := s.authz.RequireRole(ctx, companyID, callerID, types.RoleAdministrator); err != nil {
			return err
		}

		issuedAt := s.now()
		for attempt := 0; ; attempt++ {
			code, err := generateInviteCode()
			if err != nil {
				return fmt.Errorf("failed to generate invite code: %w", err)
			}

			invite, err = s.storage.ReplaceInvite(ctx, &types.Invite{
				CompanyID: companyID,
				Code:      code,
				IssuedAt:  issuedAt,
				ExpiresAt: issuedAt.Add(s.inviteLifetime),
			})
			if err == nil {
				return nil
			}
			if !errors.Is(err, storage.ErrDuplicateKey) {
				return err
			}
			if attempt+1 >= inviteCodeMaxRetries {
				return fmt.Errorf("failed to generate a unique invite code after %d attempts", inviteCodeMaxRetries)
			}
		}
	})
	if err != nil {
		return nil, err
	}

	s.logger.Security().InviteIssued(companyID, callerID)
	return invite, nil
}

// RedeemInvite joins the user to the inviting company with an unassigned
// role. Expiry is evaluated against wall-clock time at this moment; expired
// invites are left in place until superseded.
func (s *Service) RedeemInvite(ctx context.Context, code, userID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "company.Service.RedeemInvite")
	defer span.End()

	var membership *types.Membership
	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		invite, err := s.storage.GetInviteByCodeForUpdate(ctx, code)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("%w: invite code does not exist", types.ErrNotFound)
			}
			return err
		}

		if invite.Expired(s.now()) {
			return types.ErrInviteExpired
		}

		if _, err := s.storage.GetMembershipByUserID(ctx, userID); err == nil {
			return types.ErrAlreadyMember
		} else if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("failed to check existing membership: %w", err)
		}

		if invite.Consumed {
			return types.ErrInviteAlreadyConsumed
		}

		membership, err = s.storage.AddMember(ctx, invite.CompanyID, userID, types.RoleUnassigned)
		if err != nil {
			if errors.Is(err, storage.ErrDuplicateKey) {
				return types.ErrAlreadyMember
			}
			return fmt.Errorf("failed to create membership: %w", err)
		}

		if err := s.storage.ConsumeInvite(ctx, invite.CompanyID, userID); err != nil {
			return fmt.Errorf("failed to consume invite: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Security().InviteRedeemed(membership.CompanyID, userID)
	return membership, nil
}

// AssignRole sets the target's role. Assigning the role the target already
// holds is a no-op returning current state. Demoting the last Administrator
// is refused.
func (s *Service) AssignRole(ctx context.Context, companyID, callerID, targetUserID string, role types.Role) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "company.Service.AssignRole")
	defer span.End()

	if !role.Valid() {
		return nil, types.NewValidationError("unknown role %q", role)
	}

	var membership *types.Membership
	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		if err := s.storage.LockCompany(ctx, companyID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return types.ErrNotFound
			}
			return err
		}

		if err := s.authz.RequireRole(ctx, companyID, callerID, types.RoleAdministrator); err != nil {
			return err
		}

		target, err := s.storage.GetMembership(ctx, companyID, targetUserID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return types.ErrNotAMember
			}
			return err
		}

		if target.Role == role {
			membership = target
			return nil
		}

		if target.Role == types.RoleAdministrator {
			admins, err := s.storage.CountAdministrators(ctx, companyID)
			if err != nil {
				return err
			}
			if admins <= 1 {
				return types.ErrLastAdministrator
			}
		}

		if err := s.storage.UpdateMemberRole(ctx, companyID, targetUserID, role); err != nil {
			return err
		}

		target.Role = role
		membership = target
		return nil
	})
	if err != nil {
		return nil, err
	}

	return membership, nil
}

// RemoveMember expels the target from the company. A caller may remove
// themself without holding the Administrator role, but the last
// Administrator can only leave by deleting the company.
func (s *Service) RemoveMember(ctx context.Context, companyID, callerID, targetUserID string) error {
	ctx, span := s.tracer.Start(ctx, "company.Service.RemoveMember")
	defer span.End()

	return s.db.WithTx(ctx, func(ctx context.Context) error {
		if err := s.storage.LockCompany(ctx, companyID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return types.ErrNotFound
			}
			return err
		}

		if callerID != targetUserID {
			if err := s.authz.RequireRole(ctx, companyID, callerID, types.RoleAdministrator); err != nil {
				return err
			}
		}

		target, err := s.storage.GetMembership(ctx, companyID, targetUserID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return types.ErrNotAMember
			}
			return err
		}

		if target.Role == types.RoleAdministrator {
			admins, err := s.storage.CountAdministrators(ctx, companyID)
			if err != nil {
				return err
			}
			if admins <= 1 {
				return types.ErrLastAdministrator
			}
		}

		return s.storage.RemoveMember(ctx, companyID, targetUserID)
	})
}

// DeleteCompany removes the company and cascades to memberships, the
// outstanding invite, documents and the company chat channel.
func (s *Service) DeleteCompany(ctx context.Context, companyID, callerID string) error {
	ctx, span := s.tracer.Start(ctx, "company.Service.DeleteCompany")
	defer span.End()

	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		if err := s.storage.LockCompany(ctx, companyID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return types.ErrNotFound
			}
			return err
		}

		if err := s.authz.RequireRole(ctx, companyID, callerID, types.RoleAdministrator); err != nil {
			return err
		}

		if err := s.storage.DeleteMessagesByChannel(ctx, types.Channel{
			Kind:   types.ChatKindCompany,
			ChatID: companyID,
		}); err != nil {
			return err
		}

		return s.storage.DeleteCompany(ctx, companyID)
	})
	if err != nil {
		return err
	}

	s.logger.Infof("company %s deleted by user %s", companyID, callerID)
	return nil
}

func generateInviteCode() (string, error) {
	code := make([]byte, inviteCodeLength)
	max := big.NewInt(int64(len(inviteCodeAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = inviteCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}
