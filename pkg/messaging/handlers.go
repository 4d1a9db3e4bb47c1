// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package messaging

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/helpdocs/collab-service/internal/http/types"
	"github.com/helpdocs/collab-service/internal/identity"
	"github.com/helpdocs/collab-service/internal/logging"
	"github.com/helpdocs/collab-service/internal/types"
)

type PostMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

type EditMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

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
	mux.Post("/api/v0/chats/{kind}/{chatID}/messages", a.postMessage)
	mux.Get("/api/v0/chats/{kind}/{chatID}/messages", a.listMessages)
	mux.Patch("/api/v0/messages/{id}", a.editMessage)
}

func channelFromRequest(r *http.Request) types.Channel {
	return types.Channel{
		Kind:   types.ChatKind(chi.URLParam(r, "kind")),
		ChatID: chi.URLParam(r, "chatID"),
	}
}

func (a *API) postMessage(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req PostMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteErrorResponse(w, types.NewValidationError("%v", err))
		return
	}

	created, err := a.service.PostMessage(r.Context(), channelFromRequest(r), callerID, req.Content)
	if err != nil {
		a.logger.Errorf("failed to post message: %v", err)
		httptypes.WriteErrorResponse(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusCreated, created)
}

func (a *API) listMessages(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	// out-of-range values fall back to the defaults inside the service
	page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	size, _ := strconv.ParseInt(r.URL.Query().Get("size"), 10, 64)

	messages, err := a.service.ListMessages(r.Context(), channelFromRequest(r), callerID, page, size)
	if err != nil {
		httptypes.WriteErrorResponse(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, messages)
}

func (a *API) editMessage(w http.ResponseWriter, r *http.Request) {
	callerID, ok := identity.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthenticated", http.StatusUnauthorized)
		return
	}

	var req EditMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteErrorResponse(w, types.NewValidationError("%v", err))
		return
	}

	updated, err := a.service.EditMessage(r.Context(), chi.URLParam(r, "id"), callerID, req.Content)
	if err != nil {
		httptypes.WriteErrorResponse(w, err)
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, updated)
}
