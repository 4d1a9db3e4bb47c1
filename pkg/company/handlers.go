// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package company

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/helpdocs/collab-service/internal/http/types"
	"github.com/helpdocs/collab-service/internal/identity"
	"github.com/helpdocs/collab-service/internal/logging"
	"github.com/helpdocs/collab-service/internal/types"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate
	logger   logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/companies", a.createCompany)
	mux.Get("/api/v0/companies", a.listCompanies)
	mux.Get("/api/v0/companies/{id}", a.getCompany)
	mux.Delete("/api/v0/companies/{id}", a.deleteCompany)
	mux.Get("/api/v0/companies/{id}/members", a.listMembers)
	mux.Put("/api/v0/companies/{id}/members/{userID}/role", a.assignRole)
	mux.Delete("/api/v0/companies/{id}/members/{userID}", a.removeMember)
	mux.Post("/api/v0/companies/{id}/invites", a.issueInvite)
	mux.Post("/api/v0/invites/redeem", a.redeemInvite)
}

func (a *API) createCompany(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteErrorResponse(w, types.NewValidationError("%v", err))
		return
	}

	created, err := a.service.CreateCompany(r.Context(), callerID, &types.Company{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		a.logger.Errorf("failed to create company: %v", err)
		httptypes.WriteErrorResponse(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusCreated, created)
}

func (a *API) listCompanies(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	companies, err := a.service.ListCompaniesByUser(r.Context(), callerID)
	if err != nil {
		a.logger.Errorf("failed to list companies: %v", err)
		httptypes.WriteErrorResponse(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, companies)
}

func (a *API) getCompany(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	c, err := a.service.GetCompany(r.Context(), chi.URLParam(r, "id"), callerID)
	if err != nil {
		httptypes.WriteErrorResponse(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, c)
}

func (a *API) deleteCompany(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	if err := a.service.DeleteCompany(r.Context(), chi.URLParam(r, "id"), callerID); err != nil {
		httptypes.WriteErrorResponse(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) listMembers(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	members, err := a.service.ListMembers(r.Context(), chi.URLParam(r, "id"), callerID)
	if err != nil {
		httptypes.WriteErrorResponse(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, members)
}

func (a *API) assignRole(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req AssignRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteErrorResponse(w, types.NewValidationError("%v", err))
		return
	}

	membership, err := a.service.AssignRole(
		r.Context(),
		chi.URLParam(r, "id"),
		callerID,
		chi.URLParam(r, "userID"),
		types.Role(req.Role),
	)
	if err != nil {
		httptypes.WriteErrorResponse(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, membership)
}

func (a *API) removeMember(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	if err := a.service.RemoveMember(r.Context(), chi.URLParam(r, "id"), callerID, chi.URLParam(r, "userID")); err != nil {
		httptypes.WriteErrorResponse(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) issueInvite(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	invite, err := a.service.IssueInvite(r.Context(), chi.URLParam(r, "id"), callerID)
	if err != nil {
		httptypes.WriteErrorResponse(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusCreated, invite)
}

func (a *API) redeemInvite(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req RedeemInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteErrorResponse(w, types.NewValidationError("%v", err))
		return
	}

	membership, err := a.service.RedeemInvite(r.Context(), req.Code, callerID)
	if err != nil {
		httptypes.WriteErrorResponse(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusCreated, membership)
}
