// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package document

import (
	"github.com/helpdocs/collab-service/internal/types"
)

type CreateDocumentRequest struct {
	CompanyID   string `json:"company_id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Content     string `json:"content"`
	FileName    string `json:"file_name"`
	FileSize    int64  `json:"file_size" validate:"gte=0"`
}

type EditDocumentRequest struct {
	BaseVersion int64               `json:"base_version" validate:"required,gte=1"`
	Patch       types.DocumentPatch `json:"patch"`
}

type TransitionRequest struct {
	Status string `json:"status" validate:"required"`
}

type SetChecklistRequest struct {
	Items []ChecklistItemRequest `json:"items"`
}

type ChecklistItemRequest struct {
	Description string `json:"description" validate:"required"`
	Completed   bool   `json:"completed"`
}

type AssignTeamRequest struct {
	TeamID *string `json:"team_id"`
}

// DocumentResponse decorates the entity with its derived progress.
type DocumentResponse struct {
	*types.Document
	Progress int `json:"progress"`
}

func NewDocumentResponse(d *types.Document) *DocumentResponse {
	return &DocumentResponse{
		Document: d,
		Progress: d.ProgressPercent(),
	}
}
