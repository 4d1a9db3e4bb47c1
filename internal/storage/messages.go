// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/helpdocs/collab-service/internal/types"
)

const messageColumns = "id, chat_kind, chat_id, seq, author_id, content, sent_at, edited, edited_at"

func scanMessage(row sq.RowScanner) (*types.Message, error) {
	var m types.Message
	err := row.Scan(
		&m.ID, &m.Channel.Kind, &m.Channel.ChatID, &m.Seq,
		&m.AuthorID, &m.Content, &m.SentAt, &m.Edited, &m.EditedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// InsertMessage appends a message to its channel, allocating the next
// per-channel sequence number in the same statement. A concurrent append to
// the same channel can race on the (chat_kind, chat_id, seq) unique key, in
// which case ErrDuplicateKey is returned and the caller retries.
func (s *Storage) InsertMessage(ctx context.Context, m *types.Message) (*types.Message, error) {
	ctx, span := s.tracer.Start(ctx, "storage.InsertMessage")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate message ID: %w", err)
	}

	created, err := scanMessage(s.db.Statement(ctx).
		Insert("messages").
		Columns("id", "chat_kind", "chat_id", "seq", "author_id", "content").
		Values(
			id.String(),
			m.Channel.Kind,
			m.Channel.ChatID,
			sq.Expr("(SELECT COALESCE(MAX(seq), 0) + 1 FROM messages WHERE chat_kind = ? AND chat_id = ?)", m.Channel.Kind, m.Channel.ChatID),
			m.AuthorID,
			m.Content,
		).
		Suffix("RETURNING " + messageColumns).
		QueryRowContext(ctx))

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert message: %w", err)
	}

	return created, nil
}

func (s *Storage) GetMessageByID(ctx context.Context, id string) (*types.Message, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMessageByID")
	defer span.End()

	m, err := scanMessage(s.db.Statement(ctx).
		Select(messageColumns).
		From("messages").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx))

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get message: %w", err)
	}

	return m, nil
}

// UpdateMessageContent replaces the content and marks the message edited.
// Author and channel are immutable; prior content is not retained.
func (s *Storage) UpdateMessageContent(ctx context.Context, id, content string, editedAt time.Time) (*types.Message, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateMessageContent")
	defer span.End()

	m, err := scanMessage(s.db.Statement(ctx).
		Update("messages").
		Set("content", content).
		Set("edited", true).
		Set("edited_at", editedAt).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + messageColumns).
		QueryRowContext(ctx))

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update message: %w", err)
	}

	return m, nil
}

// ListMessagesByChannel returns a page of the channel's messages totally
// ordered by sent_at with the per-channel sequence breaking timestamp ties.
func (s *Storage) ListMessagesByChannel(ctx context.Context, channel types.Channel, offset, limit uint64) ([]*types.Message, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMessagesByChannel")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(messageColumns).
		From("messages").
		Where(sq.Eq{"chat_kind": channel.Kind, "chat_id": channel.ChatID}).
		OrderBy("sent_at", "seq").
		Offset(offset).
		Limit(limit).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var messages []*types.Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return messages, nil
}

func (s *Storage) DeleteMessagesByChannel(ctx context.Context, channel types.Channel) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteMessagesByChannel")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("messages").
		Where(sq.Eq{"chat_kind": channel.Kind, "chat_id": channel.ChatID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete channel messages: %w", err)
	}

	return nil
}
