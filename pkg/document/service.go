// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package document

import (
	"context"
	"errors"
	"fmt"

	"github.com/helpdocs/collab-service/internal/db"
	"github.com/helpdocs/collab-service/internal/logging"
	"github.com/helpdocs/collab-service/internal/monitoring"
	"github.com/helpdocs/collab-service/internal/storage"
	"github.com/helpdocs/collab-service/internal/tracing"
	"github.com/helpdocs/collab-service/internal/types"
)

// transitions is the document status machine. Archived is terminal except
// for the restore path back to draft.
var transitions = map[types.DocumentStatus][]types.DocumentStatus{
	types.StatusDraft:     {types.StatusPublished},
	types.StatusPublished: {types.StatusArchived, types.StatusDraft},
	types.StatusArchived:  {types.StatusDraft},
}

func validTransition(from, to types.DocumentStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	authz   AuthzInterface
	db      db.DBClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		authz:   authz,
		db:      dbClient,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Create opens a new draft at version 1, scoped to the company for good.
func (s *Service) Create(ctx context.Context, companyID, creatorID string, d *types.Document) (*types.Document, error) {
	ctx, span := s.tracer.Start(ctx, "document.Service.Create")
	defer span.End()

	if d.Title == "" {
		return nil, types.NewValidationError("document title is required")
	}

	if err := s.authz.RequireMember(ctx, companyID, creatorID); err != nil {
		return nil, err
	}

	d.CompanyID = companyID
	d.CreatorID = creatorID

	created, err := s.storage.CreateDocument(ctx, d)
	if err != nil {
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("failed to create document: %w", err)
	}

	return created, nil
}

func (s *Service) Get(ctx context.Context, documentID, callerID string) (*types.Document, error) {
	ctx, span := s.tracer.Start(ctx, "document.Service.Get")
	defer span.End()

	d, err := s.getAuthorized(ctx, documentID, callerID)
	if err != nil {
		return nil, err
	}

	return d, nil
}

func (s *Service) ListByCompany(ctx context.Context, companyID, callerID string) ([]*types.Document, error) {
	ctx, span := s.tracer.Start(ctx, "document.Service.ListByCompany")
	defer span.End()

	if err := s.authz.RequireMember(ctx, companyID, callerID); err != nil {
		return nil, err
	}

	return s.storage.ListDocumentsByCompanyID(ctx, companyID)
}

// Edit applies a content patch under optimistic concurrency: the caller
// supplies the version it last observed and loses with ErrVersionConflict if
// a concurrent writer got there first. Status is never touched by an edit.
func (s *Service) Edit(ctx context.Context, documentID, callerID string, baseVersion int64, patch *types.DocumentPatch) (*types.Document, error) {
	ctx, span := s.tracer.Start(ctx, "document.Service.Edit")
	defer span.End()

	if patch == nil || patch.Empty() {
		return nil, types.NewValidationError("edit patch is empty")
	}

	var updated *types.Document
	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.getAuthorized(ctx, documentID, callerID); err != nil {
			return err
		}

		var err error
		updated, err = s.storage.UpdateDocumentContent(ctx, documentID, baseVersion, patch)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				// The document exists, so the version moved underneath the caller.
				return types.ErrVersionConflict
			}
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Transition moves the document along the status machine. Version is status
// metadata's independent axis and is left untouched.
func (s *Service) Transition(ctx context.Context, documentID, callerID string, target types.DocumentStatus) (*types.Document, error) {
	ctx, span := s.tracer.Start(ctx, "document.Service.Transition")
	defer span.End()

	if !target.Valid() {
		return nil, types.NewValidationError("unknown status %q", target)
	}

	var updated *types.Document
	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		d, err := s.getAuthorized(ctx, documentID, callerID)
		if err != nil {
			return err
		}

		if !validTransition(d.Status, target) {
			return fmt.Errorf("%w: %s to %s", types.ErrInvalidTransition, d.Status, target)
		}

		updated, err = s.storage.UpdateDocumentStatus(ctx, documentID, target)
		if err != nil {
			return err
		}
		updated.Checklist = d.Checklist

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// SetChecklist replaces the checklist wholesale. Progress is derived from the
// stored items on read, never persisted.
func (s *Service) SetChecklist(ctx context.Context, documentID, callerID string, items []types.ChecklistItem) (*types.Document, error) {
	ctx, span := s.tracer.Start(ctx, "document.Service.SetChecklist")
	defer span.End()

	for i, item := range items {
		if item.Description == "" {
			return nil, types.NewValidationError("checklist item %d has an empty description", i)
		}
	}

	var updated *types.Document
	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		d, err := s.getAuthorized(ctx, documentID, callerID)
		if err != nil {
			return err
		}

		replaced, err := s.storage.ReplaceChecklist(ctx, documentID, items)
		if err != nil {
			return err
		}

		d.Checklist = replaced
		updated = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// AssignToTeam sets the weak team reference. A nil teamID unassigns.
func (s *Service) AssignToTeam(ctx context.Context, documentID, callerID string, teamID *string) (*types.Document, error) {
	ctx, span := s.tracer.Start(ctx, "document.Service.AssignToTeam")
	defer span.End()

	d, err := s.getAuthorized(ctx, documentID, callerID)
	if err != nil {
		return nil, err
	}

	updated, err := s.storage.UpdateDocumentTeam(ctx, documentID, teamID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, err
	}
	updated.Checklist = d.Checklist

	return updated, nil
}

// Delete removes the document. Only its creator or a company Administrator
// may delete.
func (s *Service) Delete(ctx context.Context, documentID, callerID string) error {
	ctx, span := s.tracer.Start(ctx, "document.Service.Delete")
	defer span.End()

	d, err := s.getAuthorized(ctx, documentID, callerID)
	if err != nil {
		return err
	}

	if d.CreatorID != callerID {
		isAdmin, err := s.authz.HasRole(ctx, d.CompanyID, callerID, types.RoleAdministrator)
		if err != nil {
			return err
		}
		if !isAdmin {
			return types.ErrForbidden
		}
	}

	return s.storage.DeleteDocument(ctx, documentID)
}

// getAuthorized fetches the document and checks the caller is a member of
// its owning company.
func (s *Service) getAuthorized(ctx context.Context, documentID, callerID string) (*types.Document, error) {
	d, err := s.storage.GetDocumentByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, err
	}

	if err := s.authz.RequireMember(ctx, d.CompanyID, callerID); err != nil {
		return nil, err
	}

	return d, nil
}
