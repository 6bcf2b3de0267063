// Hawkins - Stranger Things Dataset API
// Copyright 2026 Hawkins Lab contributors
// SPDX-License-Identifier: MIT
// https://github.com/hawkinslab/hawkins

package query

import (
	"testing"

	"github.com/hawkinslab/hawkins/internal/models"
)

func testCharacters() []models.Character {
	return []models.Character{
		{ID: 1, Name: "Eleven", RealName: "Jane Hopper", Status: "Alive", Powers: []string{"Telekinesis", "Remote viewing"}},
		{ID: 2, Name: "Mike Wheeler", Status: "Alive"},
		{ID: 3, Name: "Vecna", RealName: "Henry Creel", Status: "Deceased", Powers: []string{"Telepathy", "Telekinesis"}},
	}
}

func TestFilter_EmptyConstraints(t *testing.T) {
	records := testCharacters()

	got := Filter(records, nil)

	if len(got) != len(records) {
		t.Fatalf("Expected %d records, got %d", len(records), len(got))
	}
}

func TestFilter_SingleConstraint(t *testing.T) {
	got := Filter(testCharacters(), map[string]string{"status": "Deceased"})

	if len(got) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(got))
	}
	if got[0].ID != 3 {
		t.Errorf("Expected id 3, got %d", got[0].ID)
	}
}

func TestFilter_CaseInsensitiveSubstring(t *testing.T) {
	tests := []struct {
		name        string
		constraints map[string]string
		wantIDs     []int
	}{
		{"lowercase value", map[string]string{"status": "alive"}, []int{1, 2}},
		{"substring", map[string]string{"name": "whe"}, []int{2}},
		{"uppercase query", map[string]string{"name": "ELEVEN"}, []int{1}},
		{"no match", map[string]string{"name": "Dustin"}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(testCharacters(), tt.constraints)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Expected %d records, got %d", len(tt.wantIDs), len(got))
			}
			for i, rec := range got {
				if rec.ID != tt.wantIDs[i] {
					t.Errorf("Result %d: expected id %d, got %d", i, tt.wantIDs[i], rec.ID)
				}
			}
		})
	}
}

func TestFilter_SliceFieldAnyElementMatches(t *testing.T) {
	got := Filter(testCharacters(), map[string]string{"powers": "telekinesis"})

	if len(got) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("Expected ids [1 3], got [%d %d]", got[0].ID, got[1].ID)
	}
}

func TestFilter_MissingFieldIsPermissive(t *testing.T) {
	// Characters do not expose a "dimension" field; the constraint must
	// not exclude them.
	got := Filter(testCharacters(), map[string]string{"dimension": "Upside Down"})

	if len(got) != 3 {
		t.Fatalf("Expected all 3 records to pass, got %d", len(got))
	}
}

func TestFilter_MultipleConstraintsAreANDed(t *testing.T) {
	got := Filter(testCharacters(), map[string]string{
		"status": "Alive",
		"powers": "telekinesis",
	})

	if len(got) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(got))
	}
	if got[0].Name != "Eleven" {
		t.Errorf("Expected Eleven, got %s", got[0].Name)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	constraints := map[string]string{"status": "Alive"}

	once := Filter(testCharacters(), constraints)
	twice := Filter(once, constraints)

	if len(once) != len(twice) {
		t.Fatalf("Filter not idempotent: %d vs %d records", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Errorf("Result %d: id %d vs %d", i, once[i].ID, twice[i].ID)
		}
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	got := Filter(testCharacters(), map[string]string{"status": "Alive"})

	lastID := 0
	for _, rec := range got {
		if rec.ID <= lastID {
			t.Errorf("Order not preserved: id %d after id %d", rec.ID, lastID)
		}
		lastID = rec.ID
	}
}

func TestFilter_IntFieldStringCoercion(t *testing.T) {
	episodes := []models.Episode{
		{ID: 1, Title: "Chapter One", Season: 1},
		{ID: 2, Title: "Chapter Two", Season: 2},
	}

	got := Filter(episodes, map[string]string{"season": "2"})

	if len(got) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(got))
	}
	if got[0].ID != 2 {
		t.Errorf("Expected id 2, got %d", got[0].ID)
	}
}

func TestFilter_NeverReturnsNil(t *testing.T) {
	got := Filter(testCharacters(), map[string]string{"name": "nobody"})

	if got == nil {
		t.Fatal("Expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("Expected 0 records, got %d", len(got))
	}
}
