// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package messaging

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/helpdocs/collab-service/internal/identity"
	"github.com/helpdocs/collab-service/internal/logging"
	"github.com/helpdocs/collab-service/internal/types"
)

func newAPIRequest(method, target string, body []byte, userID string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBuffer(body))
	if userID != "" {
		req = req.WithContext(identity.ContextWithUserID(req.Context(), userID))
	}
	return req
}

func serveAPI(api *API, req *http.Request) *http.Response {
	w := httptest.NewRecorder()
	mux := chi.NewMux()
	api.RegisterEndpoints(mux)
	mux.ServeHTTP(w, req)
	return w.Result()
}

func TestAPI_PostMessage(t *testing.T) {
	companyChannel := types.Channel{Kind: types.ChatKindCompany, ChatID: "company-1"}

	testCases := []struct {
		name           string
		userID         string
		target         string
		body           any
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:   "success",
			userID: "user-1",
			target: "/api/v0/chats/company/company-1/messages",
			body:   PostMessageRequest{Content: "hello"},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().PostMessage(gomock.Any(), companyChannel, "user-1", "hello").
					Return(&types.Message{ID: "msg-1", Channel: companyChannel, Seq: 1, AuthorID: "user-1", Content: "hello"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "unauthenticated",
			target:         "/api/v0/chats/company/company-1/messages",
			body:           PostMessageRequest{Content: "hello"},
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty content",
			userID:         "user-1",
			target:         "/api/v0/chats/company/company-1/messages",
			body:           PostMessageRequest{},
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "author outside the channel",
			userID: "user-1",
			target: "/api/v0/chats/company/company-1/messages",
			body:   PostMessageRequest{Content: "hello"},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().PostMessage(gomock.Any(), companyChannel, "user-1", "hello").
					Return(nil, types.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "unknown chat kind",
			userID: "user-1",
			target: "/api/v0/chats/dm/x/messages",
			body:   PostMessageRequest{Content: "hello"},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().PostMessage(gomock.Any(), types.Channel{Kind: types.ChatKind("dm"), ChatID: "x"}, "user-1", "hello").
					Return(nil, types.NewValidationError("invalid channel"))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tc.setupMocks(mockService)
			api := NewAPI(mockService, logging.NewNoopLogger())

			body, _ := json.Marshal(tc.body)
			res := serveAPI(api, newAPIRequest(http.MethodPost, tc.target, body, tc.userID))
			defer res.Body.Close()

			if res.StatusCode != tc.expectedStatus {
				b, _ := io.ReadAll(res.Body)
				t.Errorf("expected status %d, got %d. Body: %s", tc.expectedStatus, res.StatusCode, string(b))
			}
		})
	}
}

func TestAPI_ListMessages(t *testing.T) {
	teamChannel := types.Channel{Kind: types.ChatKindTeam, ChatID: "team-1"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().ListMessages(gomock.Any(), teamChannel, "user-1", int64(2), int64(50)).Return([]*types.Message{
		{ID: "msg-1", Channel: teamChannel, Seq: 1, Content: "first"},
		{ID: "msg-2", Channel: teamChannel, Seq: 2, Content: "second"},
	}, nil)
	api := NewAPI(mockService, logging.NewNoopLogger())

	res := serveAPI(api, newAPIRequest(http.MethodGet, "/api/v0/chats/team/team-1/messages?page=2&size=50", nil, "user-1"))
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}

	var messages []*types.Message
	if err := json.NewDecoder(res.Body).Decode(&messages); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(messages) != 2 || messages[0].Seq != 1 {
		t.Errorf("expected ordered messages, got %+v", messages)
	}
}

func TestAPI_EditMessage(t *testing.T) {
	testCases := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{name: "success", expectedStatus: http.StatusOK},
		{name: "non-author", serviceErr: types.ErrForbidden, expectedStatus: http.StatusForbidden},
		{name: "unknown message", serviceErr: types.ErrNotFound, expectedStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			call := mockService.EXPECT().EditMessage(gomock.Any(), "msg-1", "user-1", "corrected")
			if tc.serviceErr == nil {
				call.Return(&types.Message{ID: "msg-1", AuthorID: "user-1", Content: "corrected", Edited: true}, nil)
			} else {
				call.Return(nil, tc.serviceErr)
			}
			api := NewAPI(mockService, logging.NewNoopLogger())

			body, _ := json.Marshal(EditMessageRequest{Content: "corrected"})
			res := serveAPI(api, newAPIRequest(http.MethodPatch, "/api/v0/messages/msg-1", body, "user-1"))
			defer res.Body.Close()

			if res.StatusCode != tc.expectedStatus {
				b, _ := io.ReadAll(res.Body)
				t.Errorf("expected status %d, got %d. Body: %s", tc.expectedStatus, res.StatusCode, string(b))
			}
		})
	}
}
