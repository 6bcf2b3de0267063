// Hawkins - Stranger Things Dataset API
// Copyright 2026 Hawkins Lab contributors
// SPDX-License-Identifier: MIT
// https://github.com/hawkinslab/hawkins

package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedCollections(t *testing.T) {
	t.Parallel()

	s, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	counts := []struct {
		name string
		got  int
		want int
	}{
		{"characters", len(s.Characters()), 14},
		{"creatures", len(s.Creatures()), 5},
		{"episodes", len(s.Episodes()), 8},
		{"locations", len(s.Locations()), 8},
		{"quotes", len(s.Quotes()), 18},
	}
	for _, c := range counts {
		if c.got != c.want {
			t.Errorf("%s: expected %d records, got %d", c.name, c.want, c.got)
		}
	}

	if s.Characters()[0].Name != "Eleven" {
		t.Errorf("expected dataset order preserved, first character = %q", s.Characters()[0].Name)
	}
}

func TestLoadMissingQuotesFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for unreadable quotes file at startup")
	}
}

func TestQuotesFileReload(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "quotes.json")
	write := func(body string) {
		t.Helper()
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatalf("write quotes file: %v", err)
		}
	}

	write(`[{"id": 1, "quote": "Friends don't lie.", "character_id": 1, "season": 1, "episode": 6}]`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if quotes := s.Quotes(); len(quotes) != 1 || quotes[0].Quote != "Friends don't lie." {
		t.Fatalf("unexpected initial quotes: %+v", quotes)
	}

	// A changed file is visible on the next read.
	write(`[
		{"id": 1, "quote": "Friends don't lie.", "character_id": 1, "season": 1, "episode": 6},
		{"id": 2, "quote": "Mouth-breather.", "character_id": 1, "season": 1, "episode": 6}
	]`)
	if quotes := s.Quotes(); len(quotes) != 2 {
		t.Errorf("expected reload to pick up 2 quotes, got %d", len(quotes))
	}

	// A malformed file keeps the last good snapshot.
	write(`{"not": "a quote list"`)
	if quotes := s.Quotes(); len(quotes) != 2 {
		t.Errorf("expected last snapshot to survive malformed file, got %d quotes", len(quotes))
	}

	// So does a deleted file.
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove quotes file: %v", err)
	}
	if quotes := s.Quotes(); len(quotes) != 2 {
		t.Errorf("expected last snapshot to survive missing file, got %d quotes", len(quotes))
	}
}
