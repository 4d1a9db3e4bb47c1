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

	"github.com/helpdocs/collab-service/internal/types"
)

const documentColumns = "id, company_id, team_id, creator_id, title, description, content, file_name, file_size, status, version, created_at, updated_at"

func scanDocument(row sq.RowScanner) (*types.Document, error) {
	var d types.Document
	err := row.Scan(
		&d.ID, &d.CompanyID, &d.TeamID, &d.CreatorID,
		&d.Title, &d.Description, &d.Content,
		&d.FileName, &d.FileSize,
		&d.Status, &d.Version, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *Storage) CreateDocument(ctx context.Context, d *types.Document) (*types.Document, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateDocument")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate document ID: %w", err)
	}

	created, err := scanDocument(s.db.Statement(ctx).
		Insert("documents").
		Columns("id", "company_id", "team_id", "creator_id", "title", "description", "content", "file_name", "file_size", "status", "version").
		Values(id.String(), d.CompanyID, d.TeamID, d.CreatorID, d.Title, d.Description, d.Content, d.FileName, d.FileSize, types.StatusDraft, 1).
		Suffix("RETURNING " + documentColumns).
		QueryRowContext(ctx))

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert document: %w", err)
	}

	return created, nil
}

func (s *Storage) GetDocumentByID(ctx context.Context, id string) (*types.Document, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetDocumentByID")
	defer span.End()

	d, err := scanDocument(s.db.Statement(ctx).
		Select(documentColumns).
		From("documents").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx))

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	checklist, err := s.ListChecklistItems(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	d.Checklist = checklist

	return d, nil
}

func (s *Storage) ListDocumentsByCompanyID(ctx context.Context, companyID string) ([]*types.Document, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListDocumentsByCompanyID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(documentColumns).
		From("documents").
		Where(sq.Eq{"company_id": companyID}).
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var documents []*types.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		documents = append(documents, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return documents, nil
}

// UpdateDocumentContent applies the patch only if the stored version still
// matches baseVersion, incrementing the version by one. ErrNotFound means
// either the document is gone or a concurrent writer got there first; the
// caller disambiguates.
func (s *Storage) UpdateDocumentContent(ctx context.Context, id string, baseVersion int64, patch *types.DocumentPatch) (*types.Document, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateDocumentContent")
	defer span.End()

	query := s.db.Statement(ctx).
		Update("documents").
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "version": baseVersion})

	if patch.Title != nil {
		query = query.Set("title", *patch.Title)
	}
	if patch.Description != nil {
		query = query.Set("description", *patch.Description)
	}
	if patch.Content != nil {
		query = query.Set("content", *patch.Content)
	}
	if patch.FileName != nil {
		query = query.Set("file_name", *patch.FileName)
	}
	if patch.FileSize != nil {
		query = query.Set("file_size", *patch.FileSize)
	}

	d, err := scanDocument(query.
		Suffix("RETURNING " + documentColumns).
		QueryRowContext(ctx))

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update document: %w", err)
	}

	return d, nil
}

func (s *Storage) UpdateDocumentStatus(ctx context.Context, id string, status types.DocumentStatus) (*types.Document, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateDocumentStatus")
	defer span.End()

	d, err := scanDocument(s.db.Statement(ctx).
		Update("documents").
		Set("status", status).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + documentColumns).
		QueryRowContext(ctx))

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update document status: %w", err)
	}

	return d, nil
}

func (s *Storage) UpdateDocumentTeam(ctx context.Context, id string, teamID *string) (*types.Document, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateDocumentTeam")
	defer span.End()

	d, err := scanDocument(s.db.Statement(ctx).
		Update("documents").
		Set("team_id", teamID).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + documentColumns).
		QueryRowContext(ctx))

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to assign document team: %w", err)
	}

	return d, nil
}

func (s *Storage) DeleteDocument(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteDocument")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("documents").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
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

// ReplaceChecklist swaps the document's checklist wholesale, preserving the
// order the items were supplied in.
func (s *Storage) ReplaceChecklist(ctx context.Context, documentID string, items []types.ChecklistItem) ([]types.ChecklistItem, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ReplaceChecklist")
	defer span.End()

	if _, err := s.db.Statement(ctx).
		Delete("checklist_items").
		Where(sq.Eq{"document_id": documentID}).
		ExecContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear checklist: %w", err)
	}

	if len(items) == 0 {
		return nil, nil
	}

	insert := s.db.Statement(ctx).
		Insert("checklist_items").
		Columns("id", "document_id", "position", "description", "completed")

	replaced := make([]types.ChecklistItem, 0, len(items))
	for pos, item := range items {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("failed to generate checklist item ID: %w", err)
		}
		insert = insert.Values(id.String(), documentID, pos, item.Description, item.Completed)
		replaced = append(replaced, types.ChecklistItem{
			ID:          id.String(),
			Description: item.Description,
			Completed:   item.Completed,
		})
	}

	if _, err := insert.ExecContext(ctx); err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert checklist items: %w", err)
	}

	return replaced, nil
}

func (s *Storage) ListChecklistItems(ctx context.Context, documentID string) ([]types.ChecklistItem, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListChecklistItems")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "description", "completed").
		From("checklist_items").
		Where(sq.Eq{"document_id": documentID}).
		OrderBy("position").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list checklist items: %w", err)
	}
	defer rows.Close()

	var items []types.ChecklistItem
	for rows.Next() {
		var item types.ChecklistItem
		if err := rows.Scan(&item.ID, &item.Description, &item.Completed); err != nil {
			return nil, fmt.Errorf("failed to scan checklist item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return items, nil
}
