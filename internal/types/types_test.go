// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"testing"
	"time"
)

func TestDocument_Progress(t *testing.T) {
	testCases := []struct {
		name      string
		checklist []ChecklistItem
		expected  int
	}{
		{name: "no checklist", checklist: nil, expected: 0},
		{name: "empty checklist", checklist: []ChecklistItem{}, expected: 0},
		{
			name: "quarter done",
			checklist: []ChecklistItem{
				{Completed: true}, {}, {}, {},
			},
			expected: 25,
		},
		{
			name: "all done",
			checklist: []ChecklistItem{
				{Completed: true}, {Completed: true},
			},
			expected: 100,
		},
		{
			name: "one third rounds down",
			checklist: []ChecklistItem{
				{Completed: true}, {}, {},
			},
			expected: 33,
		},
		{
			name: "two thirds rounds up",
			checklist: []ChecklistItem{
				{Completed: true}, {Completed: true}, {},
			},
			expected: 67,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := &Document{Checklist: tc.checklist}
			if got := d.ProgressPercent(); got != tc.expected {
				t.Errorf("expected %d, got %d", tc.expected, got)
			}
		})
	}
}

func TestInvite_Expired(t *testing.T) {
	expiry := time.Date(2026, 3, 10, 12, 5, 0, 0, time.UTC)
	invite := &Invite{ExpiresAt: expiry}

	if invite.Expired(expiry.Add(-time.Second)) {
		t.Error("invite should be live before expiry")
	}
	if invite.Expired(expiry) {
		t.Error("invite should be live at the expiry instant")
	}
	if !invite.Expired(expiry.Add(time.Second)) {
		t.Error("invite should be expired past expiry")
	}
}

func TestRole_Valid(t *testing.T) {
	for _, r := range []Role{RoleAdministrator, RoleProjectManager, RoleDeveloper, RoleUnassigned} {
		if !r.Valid() {
			t.Errorf("expected %s to be valid", r)
		}
	}
	if Role("owner").Valid() {
		t.Error("expected unknown role to be invalid")
	}
}

func TestDocumentPatch_Empty(t *testing.T) {
	if !(&DocumentPatch{}).Empty() {
		t.Error("zero patch should be empty")
	}

	title := "t"
	if (&DocumentPatch{Title: &title}).Empty() {
		t.Error("patch with a field should not be empty")
	}
}
