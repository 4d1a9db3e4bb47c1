// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"math"
	"time"
)

// Role is the role a membership binds a user to within a company.
type Role string

const (
	RoleAdministrator  Role = "administrator"
	RoleProjectManager Role = "project_manager"
	RoleDeveloper      Role = "developer"
	RoleUnassigned     Role = "unassigned"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdministrator, RoleProjectManager, RoleDeveloper, RoleUnassigned:
		return true
	}
	return false
}

// DocumentStatus is the lifecycle state of a document.
type DocumentStatus string

const (
	StatusDraft     DocumentStatus = "draft"
	StatusPublished DocumentStatus = "published"
	StatusArchived  DocumentStatus = "archived"
)

func (s DocumentStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// ChatKind scopes a message channel to either a team or a whole company.
type ChatKind string

const (
	ChatKindTeam    ChatKind = "team"
	ChatKindCompany ChatKind = "company"
)

func (k ChatKind) Valid() bool {
	return k == ChatKindTeam || k == ChatKindCompany
}

// Channel identifies a messaging scope.
type Channel struct {
	Kind   ChatKind `json:"kind"`
	ChatID string   `json:"chat_id"`
}

type Company struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	Address   string    `json:"address" db:"address"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type Membership struct {
	ID        string    `json:"id" db:"id"`
	CompanyID string    `json:"company_id" db:"company_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Role      Role      `json:"role" db:"role"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Invite is a short-lived, single-use join code. A company holds at most one.
type Invite struct {
	CompanyID  string    `json:"company_id" db:"company_id"`
	Code       string    `json:"code" db:"code"`
	IssuedAt   time.Time `json:"issued_at" db:"issued_at"`
	ExpiresAt  time.Time `json:"expires_at" db:"expires_at"`
	Consumed   bool      `json:"consumed" db:"consumed"`
	ConsumedBy string    `json:"consumed_by,omitempty" db:"consumed_by"`
}

// Expired reports whether the invite is past its expiry at the given instant.
func (i *Invite) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

type ChecklistItem struct {
	ID          string `json:"id" db:"id"`
	Description string `json:"description" db:"description"`
	Completed   bool   `json:"completed" db:"completed"`
}

type Document struct {
	ID          string          `json:"id" db:"id"`
	CompanyID   string          `json:"company_id" db:"company_id"`
	TeamID      *string         `json:"team_id,omitempty" db:"team_id"`
	CreatorID   string          `json:"creator_id" db:"creator_id"`
	Title       string          `json:"title" db:"title"`
	Description string          `json:"description" db:"description"`
	Content     string          `json:"content" db:"content"`
	FileName    string          `json:"file_name,omitempty" db:"file_name"`
	FileSize    int64           `json:"file_size,omitempty" db:"file_size"`
	Status      DocumentStatus  `json:"status" db:"status"`
	Version     int64           `json:"version" db:"version"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
	Checklist   []ChecklistItem `json:"checklist,omitempty"`
}

// DocumentPatch carries the content fields an edit replaces. Nil fields are
// left untouched. Status, version and company scope are never patchable.
type DocumentPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Content     *string `json:"content,omitempty"`
	FileName    *string `json:"file_name,omitempty"`
	FileSize    *int64  `json:"file_size,omitempty"`
}

// Empty reports whether the patch changes nothing.
func (p *DocumentPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Content == nil &&
		p.FileName == nil && p.FileSize == nil
}

// Progress returns checklist completion in [0, 100] at full precision.
// A document without checklist items reports 0.
func (d *Document) Progress() float64 {
	if len(d.Checklist) == 0 {
		return 0
	}
	completed := 0
	for _, item := range d.Checklist {
		if item.Completed {
			completed++
		}
	}
	return float64(completed) / float64(len(d.Checklist)) * 100
}

// ProgressPercent is Progress rounded to the nearest integer for display.
func (d *Document) ProgressPercent() int {
	return int(math.Round(d.Progress()))
}

type Message struct {
	ID       string     `json:"id" db:"id"`
	Channel  Channel    `json:"channel"`
	Seq      int64      `json:"seq" db:"seq"`
	AuthorID string     `json:"author_id" db:"author_id"`
	Content  string     `json:"content" db:"content"`
	SentAt   time.Time  `json:"sent_at" db:"sent_at"`
	Edited   bool       `json:"edited" db:"edited"`
	EditedAt *time.Time `json:"edited_at,omitempty" db:"edited_at"`
}
