// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package messaging

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/helpdocs/collab-service/internal/db"
	"github.com/helpdocs/collab-service/internal/logging"
	"github.com/helpdocs/collab-service/internal/monitoring"
	"github.com/helpdocs/collab-service/internal/storage"
	"github.com/helpdocs/collab-service/internal/tracing"
	"github.com/helpdocs/collab-service/internal/types"
)

// appends to the same channel can race on sequence allocation
const insertMaxRetries = 3

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	authz   AuthzInterface
	teams   TeamDirectoryInterface
	db      db.DBClientInterface

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	teams TeamDirectoryInterface,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		authz:   authz,
		teams:   teams,
		db:      dbClient,
		now:     time.Now,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// PostMessage appends to the channel. The author must be a member of the
// company owning the channel; for team channels the external team directory
// additionally vouches for team membership.
func (s *Service) PostMessage(ctx context.Context, channel types.Channel, authorID, content string) (*types.Message, error) {
	ctx, span := s.tracer.Start(ctx, "messaging.Service.PostMessage")
	defer span.End()

	if content == "" {
		return nil, types.NewValidationError("message content is required")
	}

	if err := s.authorizeChannel(ctx, channel, authorID); err != nil {
		return nil, err
	}

	var created *types.Message
	for attempt := 0; ; attempt++ {
		err := s.db.WithTx(ctx, func(ctx context.Context) error {
			var err error
			created, err = s.storage.InsertMessage(ctx, &types.Message{
				Channel:  channel,
				AuthorID: authorID,
				Content:  content,
			})
			return err
		})
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, storage.ErrDuplicateKey) || attempt+1 >= insertMaxRetries {
			return nil, fmt.Errorf("failed to post message: %w", err)
		}
	}
}

// EditMessage replaces the content. Only the original author may edit;
// author and channel are immutable and prior content is not retained.
func (s *Service) EditMessage(ctx context.Context, messageID, callerID, newContent string) (*types.Message, error) {
	ctx, span := s.tracer.Start(ctx, "messaging.Service.EditMessage")
	defer span.End()

	if newContent == "" {
		return nil, types.NewValidationError("message content is required")
	}

	m, err := s.storage.GetMessageByID(ctx, messageID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, err
	}

	if m.AuthorID != callerID {
		return nil, types.ErrForbidden
	}

	updated, err := s.storage.UpdateMessageContent(ctx, messageID, newContent, s.now())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, err
	}

	return updated, nil
}

func (s *Service) ListMessages(ctx context.Context, channel types.Channel, callerID string, page, size int64) ([]*types.Message, error) {
	ctx, span := s.tracer.Start(ctx, "messaging.Service.ListMessages")
	defer span.End()

	if err := s.authorizeChannel(ctx, channel, callerID); err != nil {
		return nil, err
	}

	pageSize := db.PageSize(size)
	return s.storage.ListMessagesByChannel(ctx, channel, db.Offset(page, pageSize), pageSize)
}

func (s *Service) authorizeChannel(ctx context.Context, channel types.Channel, userID string) error {
	if !channel.Kind.Valid() || channel.ChatID == "" {
		return types.NewValidationError("invalid channel")
	}

	switch channel.Kind {
	case types.ChatKindCompany:
		return s.authz.RequireMember(ctx, channel.ChatID, userID)
	case types.ChatKindTeam:
		companyID, err := s.teams.CompanyForTeam(ctx, channel.ChatID)
		if err != nil {
			return fmt.Errorf("failed to resolve team %s: %w", channel.ChatID, err)
		}
		if err := s.authz.RequireMember(ctx, companyID, userID); err != nil {
			return err
		}
		ok, err := s.teams.IsTeamMember(ctx, channel.ChatID, userID)
		if err != nil {
			return fmt.Errorf("failed to check team membership: %w", err)
		}
		if !ok {
			s.logger.Security().AuthorizationDenied(userID, companyID, "team-channel")
			return types.ErrForbidden
		}
	}

	return nil
}
