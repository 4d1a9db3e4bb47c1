// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/helpdocs/collab-service/internal/db"
	"github.com/helpdocs/collab-service/internal/logging"
	"github.com/helpdocs/collab-service/internal/monitoring"
	"github.com/helpdocs/collab-service/internal/tracing"
	"github.com/helpdocs/collab-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) CreateCompany(ctx context.Context, c *types.Company) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCompany")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate company ID: %w", err)
	}

	var created types.Company
	err = s.db.Statement(ctx).
		Insert("companies").
		Columns("id", "name", "email", "phone", "address").
		Values(id.String(), c.Name, c.Email, c.Phone, c.Address).
		Suffix("RETURNING id, name, email, phone, address, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Name, &created.Email, &created.Phone, &created.Address, &created.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert company: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetCompanyByID(ctx context.Context, id string) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCompanyByID")
	defer span.End()

	var c types.Company
	err := s.db.Statement(ctx).
		Select("id", "name", "email", "phone", "address", "created_at").
		From("companies").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	return &c, nil
}

// LockCompany takes a row lock on the company for the duration of the
// surrounding transaction. Membership and invite mutations on the same
// company serialize behind it.
func (s *Storage) LockCompany(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.LockCompany")
	defer span.End()

	var locked string
	err := s.db.Statement(ctx).
		Select("id").
		From("companies").
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		QueryRowContext(ctx).
		Scan(&locked)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to lock company: %w", err)
	}

	return nil
}

func (s *Storage) DeleteCompany(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteCompany")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("companies").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) ListCompaniesByUserID(ctx context.Context, userID string) ([]*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCompaniesByUserID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("c.id", "c.name", "c.email", "c.phone", "c.address", "c.created_at").
		From("companies c").
		Join("memberships m ON c.id = m.company_id").
		Where(sq.Eq{"m.user_id": userID}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var companies []*types.Company
	for rows.Next() {
		var c types.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return companies, nil
}

func (s *Storage) AddMember(ctx context.Context, companyID, userID string, role types.Role) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AddMember")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate membership ID: %w", err)
	}

	var m types.Membership
	err = s.db.Statement(ctx).
		Insert("memberships").
		Columns("id", "company_id", "user_id", "role").
		Values(id.String(), companyID, userID, role).
		Suffix("RETURNING id, company_id, user_id, role, created_at").
		QueryRowContext(ctx).
		Scan(&m.ID, &m.CompanyID, &m.UserID, &m.Role, &m.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	return &m, nil
}

func (s *Storage) GetMembership(ctx context.Context, companyID, userID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembership")
	defer span.End()

	var m types.Membership
	err := s.db.Statement(ctx).
		Select("id", "company_id", "user_id", "role", "created_at").
		From("memberships").
		Where(sq.Eq{"company_id": companyID, "user_id": userID}).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.CompanyID, &m.UserID, &m.Role, &m.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &m, nil
}

// GetMembershipByUserID resolves a user's membership regardless of company.
// Membership is exclusive so there is at most one row.
func (s *Storage) GetMembershipByUserID(ctx context.Context, userID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembershipByUserID")
	defer span.End()

	var m types.Membership
	err := s.db.Statement(ctx).
		Select("id", "company_id", "user_id", "role", "created_at").
		From("memberships").
		Where(sq.Eq{"user_id": userID}).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.CompanyID, &m.UserID, &m.Role, &m.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &m, nil
}

func (s *Storage) ListMembersByCompanyID(ctx context.Context, companyID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembersByCompanyID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "company_id", "user_id", "role", "created_at").
		From("memberships").
		Where(sq.Eq{"company_id": companyID}).
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*types.Membership
	for rows.Next() {
		var m types.Membership
		if err := rows.Scan(&m.ID, &m.CompanyID, &m.UserID, &m.Role, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

func (s *Storage) UpdateMemberRole(ctx context.Context, companyID, userID string, role types.Role) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateMemberRole")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("memberships").
		Set("role", role).
		Where(sq.Eq{"company_id": companyID, "user_id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update member role: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) RemoveMember(ctx context.Context, companyID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveMember")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("memberships").
		Where(sq.Eq{"company_id": companyID, "user_id": userID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) CountAdministrators(ctx context.Context, companyID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountAdministrators")
	defer span.End()

	var count int64
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("memberships").
		Where(sq.Eq{"company_id": companyID, "role": types.RoleAdministrator}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count administrators: %w", err)
	}

	return count, nil
}

// ReplaceInvite installs the invite as the company's single outstanding one,
// superseding whatever row existed. A code collision with another live invite
// surfaces as ErrDuplicateKey for the caller to retry with a fresh code.
func (s *Storage) ReplaceInvite(ctx context.Context, invite *types.Invite) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ReplaceInvite")
	defer span.End()

	if _, err := s.db.Statement(ctx).
		Delete("invites").
		Where(sq.Eq{"company_id": invite.CompanyID}).
		ExecContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to supersede invite: %w", err)
	}

	var created types.Invite
	err := s.db.Statement(ctx).
		Insert("invites").
		Columns("company_id", "code", "issued_at", "expires_at", "consumed", "consumed_by").
		Values(invite.CompanyID, invite.Code, invite.IssuedAt, invite.ExpiresAt, false, "").
		Suffix("RETURNING company_id, code, issued_at, expires_at, consumed, consumed_by").
		QueryRowContext(ctx).
		Scan(&created.CompanyID, &created.Code, &created.IssuedAt, &created.ExpiresAt, &created.Consumed, &created.ConsumedBy)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert invite: %w", err)
	}

	return &created, nil
}

// GetInviteByCodeForUpdate fetches the invite and locks its row so that
// concurrent redemptions of the same code serialize.
func (s *Storage) GetInviteByCodeForUpdate(ctx context.Context, code string) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInviteByCodeForUpdate")
	defer span.End()

	var i types.Invite
	err := s.db.Statement(ctx).
		Select("company_id", "code", "issued_at", "expires_at", "consumed", "consumed_by").
		From("invites").
		Where(sq.Eq{"code": code}).
		Suffix("FOR UPDATE").
		QueryRowContext(ctx).
		Scan(&i.CompanyID, &i.Code, &i.IssuedAt, &i.ExpiresAt, &i.Consumed, &i.ConsumedBy)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}

	return &i, nil
}

func (s *Storage) ConsumeInvite(ctx context.Context, companyID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.ConsumeInvite")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("invites").
		Set("consumed", true).
		Set("consumed_by", userID).
		Where(sq.Eq{"company_id": companyID, "consumed": false}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to consume invite: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
