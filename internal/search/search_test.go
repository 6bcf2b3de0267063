// Hawkins - Stranger Things Dataset API
// Copyright 2026 Hawkins Lab contributors
// SPDX-License-Identifier: MIT
// https://github.com/hawkinslab/hawkins

package search

import (
	"errors"
	"testing"

	"github.com/hawkinslab/hawkins/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	s, err := store.Load("")
	if err != nil {
		t.Fatalf("store.Load: %v", err)
	}
	return NewService(s)
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw    string
		want   Category
		wantOK bool
	}{
		{"", CategoryAll, true},
		{"all", CategoryAll, true},
		{"ALL", CategoryAll, true},
		{" characters ", CategoryCharacters, true},
		{"creatures", CategoryCreatures, true},
		{"episodes", CategoryEpisodes, true},
		{"locations", CategoryLocations, true},
		{"quotes", CategoryQuotes, true},
		{"monsters", "", false},
		{"character", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseCategory(tt.raw)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseCategory(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestSearchMinimumLength(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	if _, err := svc.Search("a", CategoryAll, DefaultLimit); !errors.Is(err, ErrQueryTooShort) {
		t.Errorf("expected ErrQueryTooShort for 1-char query, got %v", err)
	}
	// Whitespace padding does not count toward the minimum.
	if _, err := svc.Search("  a  ", CategoryAll, DefaultLimit); !errors.Is(err, ErrQueryTooShort) {
		t.Errorf("expected ErrQueryTooShort for padded 1-char query, got %v", err)
	}
	if _, err := svc.Search("el", CategoryAll, DefaultLimit); err != nil {
		t.Errorf("expected 2-char query to succeed, got %v", err)
	}
}

func TestSearchSingleCategory(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	resp, err := svc.Search("wheeler", CategoryCharacters, DefaultLimit)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if resp.Characters == nil {
		t.Fatal("expected characters group to be present")
	}
	if resp.Creatures != nil || resp.Episodes != nil || resp.Locations != nil || resp.Quotes != nil {
		t.Error("expected disabled categories to be omitted")
	}

	got := *resp.Characters
	if len(got) != 2 {
		t.Fatalf("expected 2 character matches, got %d", len(got))
	}
	// Collection order, not relevance order.
	if got[0].Name != "Mike Wheeler" || got[1].Name != "Nancy Wheeler" {
		t.Errorf("unexpected match order: %q, %q", got[0].Name, got[1].Name)
	}
	for _, m := range got {
		if m.Kind != "character" {
			t.Errorf("expected kind 'character', got %q", m.Kind)
		}
	}
	if resp.Count != 2 {
		t.Errorf("expected count 2, got %d", resp.Count)
	}
}

func TestSearchCapsPerCategory(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	resp, err := svc.Search("demo", CategoryCreatures, 2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	got := *resp.Creatures
	if len(got) != 2 {
		t.Fatalf("expected matches truncated to 2, got %d", len(got))
	}
	if got[0].Name != "Demogorgon" || got[1].Name != "Demodog" {
		t.Errorf("expected first two collection-order matches, got %q, %q", got[0].Name, got[1].Name)
	}
	if resp.Count != 2 {
		t.Errorf("expected post-truncation count 2, got %d", resp.Count)
	}
}

func TestSearchAllGroupsPresent(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	resp, err := svc.Search("starcourt", CategoryAll, DefaultLimit)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	// All five groups present, empty ones as [] rather than omitted.
	if resp.Characters == nil || resp.Creatures == nil || resp.Episodes == nil ||
		resp.Locations == nil || resp.Quotes == nil {
		t.Fatal("expected every category group present for category=all")
	}

	if len(*resp.Characters) != 0 || len(*resp.Episodes) != 0 || len(*resp.Quotes) != 0 {
		t.Error("expected empty matches for characters, episodes, quotes")
	}
	if len(*resp.Creatures) != 1 || (*resp.Creatures)[0].Name != "The Spider Monster" {
		t.Errorf("unexpected creature matches: %+v", *resp.Creatures)
	}
	if len(*resp.Locations) != 1 || (*resp.Locations)[0].Name != "Starcourt Mall" {
		t.Errorf("unexpected location matches: %+v", *resp.Locations)
	}
	if resp.Count != 2 {
		t.Errorf("expected count 2 across categories, got %d", resp.Count)
	}
}

func TestSearchQuoteProjection(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	resp, err := svc.Search("curiosity", CategoryQuotes, DefaultLimit)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	got := *resp.Quotes
	if len(got) != 2 {
		t.Fatalf("expected 2 quote matches, got %d", len(got))
	}
	for _, m := range got {
		if m.Kind != "quote" {
			t.Errorf("expected kind 'quote', got %q", m.Kind)
		}
		if m.CharacterID == 0 {
			t.Errorf("expected character_id in projection, got %+v", m)
		}
	}
}

func TestSearchLimitNormalization(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)

	// Zero falls back to the default cap.
	resp, err := svc.Search("demo", CategoryCreatures, 0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(*resp.Creatures) != 3 {
		t.Errorf("expected all 3 matches under default cap, got %d", len(*resp.Creatures))
	}

	// Oversized caps clamp to MaxLimit rather than erroring.
	if _, err := svc.Search("demo", CategoryCreatures, 500); err != nil {
		t.Errorf("expected oversized limit to be clamped, got error %v", err)
	}
}
