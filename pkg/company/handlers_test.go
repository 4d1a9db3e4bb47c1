// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package company

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

func TestAPI_CreateCompany(t *testing.T) {
	testCases := []struct {
		name           string
		userID         string
		body           any
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:   "success",
			userID: "user-1",
			body:   CreateCompanyRequest{Name: "Acme"},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().CreateCompany(gomock.Any(), "user-1", gomock.Any()).
					Return(&types.Company{ID: "company-1", Name: "Acme"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "unauthenticated",
			body:           CreateCompanyRequest{Name: "Acme"},
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing name",
			userID:         "user-1",
			body:           CreateCompanyRequest{},
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid body",
			userID:         "user-1",
			body:           "not-json",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "creator already belongs to a company",
			userID: "user-1",
			body:   CreateCompanyRequest{Name: "Acme"},
			setupMocks: func(mockSvc *MockServiceInterface) {
				mockSvc.EXPECT().CreateCompany(gomock.Any(), "user-1", gomock.Any()).
					Return(nil, types.ErrAlreadyMember)
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tc.setupMocks(mockService)
			api := NewAPI(mockService, logging.NewNoopLogger())

			var body []byte
			if s, ok := tc.body.(string); ok {
				body = []byte(s)
			} else {
				body, _ = json.Marshal(tc.body)
			}

			res := serveAPI(api, newAPIRequest(http.MethodPost, "/api/v0/companies", body, tc.userID))
			defer res.Body.Close()

			if res.StatusCode != tc.expectedStatus {
				b, _ := io.ReadAll(res.Body)
				t.Errorf("expected status %d, got %d. Body: %s", tc.expectedStatus, res.StatusCode, string(b))
			}
		})
	}
}

func TestAPI_RedeemInvite(t *testing.T) {
	testCases := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{name: "success", expectedStatus: http.StatusCreated},
		{name: "unknown code", serviceErr: types.ErrNotFound, expectedStatus: http.StatusNotFound},
		{name: "expired invite", serviceErr: types.ErrInviteExpired, expectedStatus: http.StatusGone},
		{name: "already consumed", serviceErr: types.ErrInviteAlreadyConsumed, expectedStatus: http.StatusConflict},
		{name: "already a member", serviceErr: types.ErrAlreadyMember, expectedStatus: http.StatusConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			if tc.serviceErr == nil {
				mockService.EXPECT().RedeemInvite(gomock.Any(), "ABCD2345", "user-2").
					Return(&types.Membership{CompanyID: "company-1", UserID: "user-2", Role: types.RoleUnassigned}, nil)
			} else {
				mockService.EXPECT().RedeemInvite(gomock.Any(), "ABCD2345", "user-2").Return(nil, tc.serviceErr)
			}
			api := NewAPI(mockService, logging.NewNoopLogger())

			body, _ := json.Marshal(RedeemInviteRequest{Code: "ABCD2345"})
			res := serveAPI(api, newAPIRequest(http.MethodPost, "/api/v0/invites/redeem", body, "user-2"))
			defer res.Body.Close()

			if res.StatusCode != tc.expectedStatus {
				b, _ := io.ReadAll(res.Body)
				t.Errorf("expected status %d, got %d. Body: %s", tc.expectedStatus, res.StatusCode, string(b))
			}
		})
	}
}

func TestAPI_AssignRole(t *testing.T) {
	testCases := []struct {
		name           string
		role           string
		serviceErr     error
		expectedStatus int
	}{
		{name: "success", role: "developer", expectedStatus: http.StatusOK},
		{name: "last administrator", role: "developer", serviceErr: types.ErrLastAdministrator, expectedStatus: http.StatusConflict},
		{name: "not an administrator", role: "developer", serviceErr: types.ErrForbidden, expectedStatus: http.StatusForbidden},
		{name: "target not a member", role: "developer", serviceErr: types.ErrNotAMember, expectedStatus: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			call := mockService.EXPECT().AssignRole(gomock.Any(), "company-1", "admin-1", "user-2", types.Role(tc.role))
			if tc.serviceErr == nil {
				call.Return(&types.Membership{CompanyID: "company-1", UserID: "user-2", Role: types.Role(tc.role)}, nil)
			} else {
				call.Return(nil, tc.serviceErr)
			}
			api := NewAPI(mockService, logging.NewNoopLogger())

			body, _ := json.Marshal(AssignRoleRequest{Role: tc.role})
			res := serveAPI(api, newAPIRequest(http.MethodPut, "/api/v0/companies/company-1/members/user-2/role", body, "admin-1"))
			defer res.Body.Close()

			if res.StatusCode != tc.expectedStatus {
				b, _ := io.ReadAll(res.Body)
				t.Errorf("expected status %d, got %d. Body: %s", tc.expectedStatus, res.StatusCode, string(b))
			}
		})
	}
}

func TestAPI_IssueInvite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().IssueInvite(gomock.Any(), "company-1", "admin-1").
		Return(&types.Invite{CompanyID: "company-1", Code: "ABCD2345"}, nil)
	api := NewAPI(mockService, logging.NewNoopLogger())

	res := serveAPI(api, newAPIRequest(http.MethodPost, "/api/v0/companies/company-1/invites", nil, "admin-1"))
	defer res.Body.Close()

	if res.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", res.StatusCode)
	}

	var invite types.Invite
	if err := json.NewDecoder(res.Body).Decode(&invite); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if invite.Code != "ABCD2345" {
		t.Errorf("expected invite code in response, got %+v", invite)
	}
}

func TestAPI_RemoveMember(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockService.EXPECT().RemoveMember(gomock.Any(), "company-1", "admin-1", "user-2").Return(nil)
	api := NewAPI(mockService, logging.NewNoopLogger())

	res := serveAPI(api, newAPIRequest(http.MethodDelete, "/api/v0/companies/company-1/members/user-2", nil, "admin-1"))
	defer res.Body.Close()

	if res.StatusCode != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", res.StatusCode)
	}
}
