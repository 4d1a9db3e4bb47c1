// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package document

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
	mux.Post("/api/v0/documents", a.create)
	mux.Get("/api/v0/documents", a.list)
	mux.Get("/api/v0/documents/{id}", a.get)
	mux.Patch("/api/v0/documents/{id}", a.edit)
	mux.Delete("/api/v0/documents/{id}", a.delete)
	mux.Post("/api/v0/documents/{id}/transition", a.transition)
	mux.Put("/api/v0/documents/{id}/checklist", a.setChecklist)
	mux.Put("/api/v0/documents/{id}/team", a.assignTeam)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteErrorResponse(w, types.NewValidationError("%v", err))
		return
	}

	created, err := a.service.Create(r.Context(), req.CompanyID, callerID, &types.Document{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		FileName:    req.FileName,
		FileSize:    req.FileSize,
	})
	if err != nil {
		a.logger.Errorf("failed to create document: %v", err)
		httptypes.WriteErrorResponse(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusCreated, NewDocumentResponse(created))
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	companyID := r.URL.Query().Get("company_id")
	if companyID == "" {
		httptypes.WriteErrorResponse(w, types.NewValidationError("company_id query parameter is required"))
		return
	}

	documents, err := a.service.ListByCompany(r.Context(), companyID, callerID)
	if err != nil {
		httptypes.WriteErrorResponse(w, err)
		return
	}

	out := make([]*DocumentResponse, len(documents))
	for i, d := range documents {
		out[i] = NewDocumentResponse(d)
	}

	httptypes.WriteResponse(w, http.StatusOK, out)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	d, err := a.service.Get(r.Context(), chi.URLParam(r, "id"), callerID)
	if err != nil {
		httptypes.WriteErrorResponse(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, NewDocumentResponse(d))
}

func (a *API) edit(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req EditDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteErrorResponse(w, types.NewValidationError("%v", err))
		return
	}

	updated, err := a.service.Edit(r.Context(), chi.URLParam(r, "id"), callerID, req.BaseVersion, &req.Patch)
	if err != nil {
		httptypes.WriteErrorResponse(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, NewDocumentResponse(updated))
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	if err := a.service.Delete(r.Context(), chi.URLParam(r, "id"), callerID); err != nil {
		httptypes.WriteErrorResponse(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) transition(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req TransitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteErrorResponse(w, types.NewValidationError("%v", err))
		return
	}

	updated, err := a.service.Transition(r.Context(), chi.URLParam(r, "id"), callerID, types.DocumentStatus(req.Status))
	if err != nil {
		httptypes.WriteErrorResponse(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, NewDocumentResponse(updated))
}

func (a *API) setChecklist(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req SetChecklistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteErrorResponse(w, types.NewValidationError("%v", err))
		return
	}

	items := make([]types.ChecklistItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = types.ChecklistItem{
			Description: item.Description,
			Completed:   item.Completed,
		}
	}

	updated, err := a.service.SetChecklist(r.Context(), chi.URLParam(r, "id"), callerID, items)
	if err != nil {
		httptypes.WriteErrorResponse(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, NewDocumentResponse(updated))
}

func (a *API) assignTeam(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req AssignTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := a.service.AssignToTeam(r.Context(), chi.URLParam(r, "id"), callerID, req.TeamID)
	if err != nil {
		httptypes.WriteErrorResponse(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, NewDocumentResponse(updated))
}
