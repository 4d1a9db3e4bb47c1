// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package messaging

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/helpdocs/collab-service/internal/logging"
	"github.com/helpdocs/collab-service/internal/monitoring"
	"github.com/helpdocs/collab-service/internal/storage"
	"github.com/helpdocs/collab-service/internal/tracing"
	"github.com/helpdocs/collab-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package messaging -destination ./mock_messaging.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package messaging -destination ./mock_db.go -source=../../internal/db/interfaces.go

func newTestService(t *testing.T, ctrl *gomock.Controller) (*Service, *MockStorageInterface, *MockAuthzInterface, *MockTeamDirectoryInterface) {
	t.Helper()

	mockStorage := NewMockStorageInterface(ctrl)
	mockAuthz := NewMockAuthzInterface(ctrl)
	mockTeams := NewMockTeamDirectoryInterface(ctrl)
	mockDB := NewMockDBClientInterface(ctrl)

	mockDB.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()

	s := NewService(
		mockStorage,
		mockAuthz,
		mockTeams,
		mockDB,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)

	return s, mockStorage, mockAuthz, mockTeams
}

func TestService_PostMessage(t *testing.T) {
	companyChannel := types.Channel{Kind: types.ChatKindCompany, ChatID: "company-1"}
	teamChannel := types.Channel{Kind: types.ChatKindTeam, ChatID: "team-1"}
	authorID := "user-1"

	testCases := []struct {
		name        string
		channel     types.Channel
		content     string
		setupMocks  func(*MockStorageInterface, *MockAuthzInterface, *MockTeamDirectoryInterface)
		expectedErr error
	}{
		{
			name:    "company channel success",
			channel: companyChannel,
			content: "hello",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface, _ *MockTeamDirectoryInterface) {
				mockAuthz.EXPECT().RequireMember(gomock.Any(), "company-1", authorID).Return(nil)
				mockStorage.EXPECT().InsertMessage(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, m *types.Message) (*types.Message, error) {
						m.ID = "msg-1"
						m.Seq = 1
						m.SentAt = time.Now()
						return m, nil
					},
				)
			},
		},
		{
			name:    "seq collision with a concurrent writer is retried",
			channel: companyChannel,
			content: "hello",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface, _ *MockTeamDirectoryInterface) {
				mockAuthz.EXPECT().RequireMember(gomock.Any(), "company-1", authorID).Return(nil)
				gomock.InOrder(
					mockStorage.EXPECT().InsertMessage(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey),
					mockStorage.EXPECT().InsertMessage(gomock.Any(), gomock.Any()).DoAndReturn(
						func(_ context.Context, m *types.Message) (*types.Message, error) {
							m.ID = "msg-1"
							m.Seq = 2
							return m, nil
						},
					),
				)
			},
		},
		{
			name:    "team channel requires team membership",
			channel: teamChannel,
			content: "hello",
			setupMocks: func(_ *MockStorageInterface, mockAuthz *MockAuthzInterface, mockTeams *MockTeamDirectoryInterface) {
				mockTeams.EXPECT().CompanyForTeam(gomock.Any(), "team-1").Return("company-1", nil)
				mockAuthz.EXPECT().RequireMember(gomock.Any(), "company-1", authorID).Return(nil)
				mockTeams.EXPECT().IsTeamMember(gomock.Any(), "team-1", authorID).Return(false, nil)
			},
			expectedErr: types.ErrForbidden,
		},
		{
			name:    "team channel success",
			channel: teamChannel,
			content: "hello",
			setupMocks: func(mockStorage *MockStorageInterface, mockAuthz *MockAuthzInterface, mockTeams *MockTeamDirectoryInterface) {
				mockTeams.EXPECT().CompanyForTeam(gomock.Any(), "team-1").Return("company-1", nil)
				mockAuthz.EXPECT().RequireMember(gomock.Any(), "company-1", authorID).Return(nil)
				mockTeams.EXPECT().IsTeamMember(gomock.Any(), "team-1", authorID).Return(true, nil)
				mockStorage.EXPECT().InsertMessage(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, m *types.Message) (*types.Message, error) {
						m.ID = "msg-1"
						m.Seq = 1
						return m, nil
					},
				)
			},
		},
		{
			name:        "empty content",
			channel:     companyChannel,
			content:     "",
			setupMocks:  func(*MockStorageInterface, *MockAuthzInterface, *MockTeamDirectoryInterface) {},
			expectedErr: types.ErrValidation,
		},
		{
			name:        "unknown channel kind",
			channel:     types.Channel{Kind: types.ChatKind("dm"), ChatID: "x"},
			content:     "hello",
			setupMocks:  func(*MockStorageInterface, *MockAuthzInterface, *MockTeamDirectoryInterface) {},
			expectedErr: types.ErrValidation,
		},
		{
			name:    "author outside the company",
			channel: companyChannel,
			content: "hello",
			setupMocks: func(_ *MockStorageInterface, mockAuthz *MockAuthzInterface, _ *MockTeamDirectoryInterface) {
				mockAuthz.EXPECT().RequireMember(gomock.Any(), "company-1", authorID).Return(types.ErrForbidden)
			},
			expectedErr: types.ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, mockAuthz, mockTeams := newTestService(t, ctrl)
			tc.setupMocks(mockStorage, mockAuthz, mockTeams)

			m, err := s.PostMessage(context.Background(), tc.channel, authorID, tc.content)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if m.AuthorID != authorID {
				t.Errorf("expected author %s, got %s", authorID, m.AuthorID)
			}
		})
	}
}

func TestService_EditMessage(t *testing.T) {
	messageID := "msg-1"
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	existing := func() *types.Message {
		return &types.Message{
			ID:       messageID,
			Channel:  types.Channel{Kind: types.ChatKindCompany, ChatID: "company-1"},
			Seq:      4,
			AuthorID: "author-1",
			Content:  "original",
			SentAt:   now.Add(-time.Hour),
		}
	}

	testCases := []struct {
		name        string
		callerID    string
		content     string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name:     "author edits own message",
			callerID: "author-1",
			content:  "corrected",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetMessageByID(gomock.Any(), messageID).Return(existing(), nil)
				edited := existing()
				edited.Content = "corrected"
				edited.Edited = true
				edited.EditedAt = &now
				mockStorage.EXPECT().UpdateMessageContent(gomock.Any(), messageID, "corrected", now).Return(edited, nil)
			},
		},
		{
			name:     "non-author cannot edit",
			callerID: "user-2",
			content:  "corrected",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetMessageByID(gomock.Any(), messageID).Return(existing(), nil)
			},
			expectedErr: types.ErrForbidden,
		},
		{
			name:     "message does not exist",
			callerID: "author-1",
			content:  "corrected",
			setupMocks: func(mockStorage *MockStorageInterface) {
				mockStorage.EXPECT().GetMessageByID(gomock.Any(), messageID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
		{
			name:        "empty content",
			callerID:    "author-1",
			content:     "",
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: types.ErrValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, mockStorage, _, _ := newTestService(t, ctrl)
			s.now = func() time.Time { return now }
			tc.setupMocks(mockStorage)

			m, err := s.EditMessage(context.Background(), messageID, tc.callerID, tc.content)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !m.Edited || m.Content != tc.content {
				t.Errorf("expected edited message with content %q, got %+v", tc.content, m)
			}
			if m.Seq != 4 {
				t.Errorf("expected seq to stay at 4, got %d", m.Seq)
			}
		})
	}
}

func TestService_ListMessages(t *testing.T) {
	channel := types.Channel{Kind: types.ChatKindCompany, ChatID: "company-1"}
	callerID := "user-1"

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, mockStorage, mockAuthz, _ := newTestService(t, ctrl)

	expected := []*types.Message{
		{ID: "msg-1", Seq: 1, Content: "first"},
		{ID: "msg-2", Seq: 2, Content: "second"},
	}
	// page/size of zero fall back to the first page with the default size
	mockAuthz.EXPECT().RequireMember(gomock.Any(), "company-1", callerID).Return(nil)
	mockStorage.EXPECT().ListMessagesByChannel(gomock.Any(), channel, uint64(0), uint64(100)).Return(expected, nil)

	got, err := s.ListMessages(context.Background(), channel, callerID, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Seq > got[1].Seq {
		t.Errorf("expected 2 messages in channel order, got %+v", got)
	}
}
