// Hawkins - Stranger Things Dataset API
// Copyright 2026 Hawkins Lab contributors
// SPDX-License-Identifier: MIT
// https://github.com/hawkinslab/hawkins

// Package search implements the cross-entity substring search. Each
// enabled collection is scanned independently over a fixed list of
// text fields per entity kind; matches keep collection order and are
// truncated to a per-category cap. No fuzzy matching or scoring.
package search

import (
	"errors"
	"strings"

	"github.com/hawkinslab/hawkins/internal/metrics"
	"github.com/hawkinslab/hawkins/internal/models"
	"github.com/hawkinslab/hawkins/internal/store"
)

// ErrQueryTooShort signals a trimmed query below the minimum length.
var ErrQueryTooShort = errors.New("search query must be at least 2 characters")

const (
	// MinQueryLength is the minimum trimmed query length.
	MinQueryLength = 2

	// DefaultLimit is the per-category result cap when none is given.
	DefaultLimit = 5

	// MaxLimit is the largest accepted per-category result cap.
	MaxLimit = 20
)

// Category selects which collections a search scans.
type Category string

const (
	CategoryAll        Category = "all"
	CategoryCharacters Category = "characters"
	CategoryCreatures  Category = "creatures"
	CategoryEpisodes   Category = "episodes"
	CategoryLocations  Category = "locations"
	CategoryQuotes     Category = "quotes"
)

// ParseCategory maps a raw category parameter to a Category. An empty
// string means all. Unknown values are rejected.
func ParseCategory(raw string) (Category, bool) {
	switch Category(strings.ToLower(strings.TrimSpace(raw))) {
	case "", CategoryAll:
		return CategoryAll, true
	case CategoryCharacters:
		return CategoryCharacters, true
	case CategoryCreatures:
		return CategoryCreatures, true
	case CategoryEpisodes:
		return CategoryEpisodes, true
	case CategoryLocations:
		return CategoryLocations, true
	case CategoryQuotes:
		return CategoryQuotes, true
	default:
		return "", false
	}
}

// Per-kind text fields consulted by the search scan. Fixed at build
// time, not runtime-configurable.
var (
	characterFields = []string{"name", "real_name", "nickname", "description", "occupation", "portrayed_by"}
	creatureFields  = []string{"name", "origin", "description"}
	episodeFields   = []string{"title", "description", "director", "writer"}
	locationFields  = []string{"name", "type", "dimension", "description"}
	quoteFields     = []string{"quote"}
)

// Service runs searches against the loaded record store.
type Service struct {
	store *store.Store
}

// NewService creates a search service over the given store.
func NewService(s *store.Store) *Service {
	return &Service{store: s}
}

// Search scans every collection enabled by category for records whose
// text fields contain the trimmed query, case-insensitively. Matches
// per kind keep collection order and are truncated to limit. Count is
// the sum of the matches actually returned.
//
// A limit outside 1..MaxLimit falls back to DefaultLimit or MaxLimit;
// a trimmed query shorter than MinQueryLength returns ErrQueryTooShort.
func (s *Service) Search(query string, category Category, limit int) (models.SearchResponse, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	if len(needle) < MinQueryLength {
		return models.SearchResponse{}, ErrQueryTooShort
	}

	if limit < 1 {
		limit = DefaultLimit
	} else if limit > MaxLimit {
		limit = MaxLimit
	}

	metrics.RecordSearchQuery(string(category))

	var resp models.SearchResponse

	if category == CategoryAll || category == CategoryCharacters {
		matches := searchCollection(s.store.Characters(), characterFields, needle, limit, characterMatch)
		resp.Characters = &matches
		resp.Count += len(matches)
	}
	if category == CategoryAll || category == CategoryCreatures {
		matches := searchCollection(s.store.Creatures(), creatureFields, needle, limit, creatureMatch)
		resp.Creatures = &matches
		resp.Count += len(matches)
	}
	if category == CategoryAll || category == CategoryEpisodes {
		matches := searchCollection(s.store.Episodes(), episodeFields, needle, limit, episodeMatch)
		resp.Episodes = &matches
		resp.Count += len(matches)
	}
	if category == CategoryAll || category == CategoryLocations {
		matches := searchCollection(s.store.Locations(), locationFields, needle, limit, locationMatch)
		resp.Locations = &matches
		resp.Count += len(matches)
	}
	if category == CategoryAll || category == CategoryQuotes {
		matches := searchCollection(s.store.Quotes(), quoteFields, needle, limit, quoteMatch)
		resp.Quotes = &matches
		resp.Count += len(matches)
	}

	return resp, nil
}

// searchCollection scans one collection in order, projecting each
// matching record until the cap is reached. Always returns a non-nil
// slice so enabled-but-empty categories serialize as [].
func searchCollection[T models.Record, M any](records []T, fields []string, needle string, limit int, project func(T) M) []M {
	matches := make([]M, 0, limit)
	for _, rec := range records {
		if len(matches) >= limit {
			break
		}
		if matchesAny(rec, fields, needle) {
			matches = append(matches, project(rec))
		}
	}
	return matches
}

// matchesAny reports whether any of the named fields contains needle.
func matchesAny(rec models.Record, fields []string, needle string) bool {
	for _, name := range fields {
		value, ok := rec.Field(name)
		if !ok {
			continue
		}
		if text, ok := value.(string); ok {
			if strings.Contains(strings.ToLower(text), needle) {
				return true
			}
		}
	}
	return false
}

func characterMatch(c models.Character) models.CharacterMatch {
	return models.CharacterMatch{
		Kind:        "character",
		ID:          c.ID,
		Name:        c.Name,
		Status:      c.Status,
		PortrayedBy: c.PortrayedBy,
	}
}

func creatureMatch(c models.Creature) models.CreatureMatch {
	return models.CreatureMatch{
		Kind:   "creature",
		ID:     c.ID,
		Name:   c.Name,
		Status: c.Status,
	}
}

func episodeMatch(e models.Episode) models.EpisodeMatch {
	return models.EpisodeMatch{
		Kind:    "episode",
		ID:      e.ID,
		Title:   e.Title,
		Season:  e.Season,
		Episode: e.Episode,
	}
}

func locationMatch(l models.Location) models.LocationMatch {
	return models.LocationMatch{
		Kind: "location",
		ID:   l.ID,
		Name: l.Name,
		Type: l.Type,
	}
}

func quoteMatch(q models.Quote) models.QuoteMatch {
	return models.QuoteMatch{
		Kind:        "quote",
		ID:          q.ID,
		Quote:       q.Quote,
		CharacterID: q.CharacterID,
	}
}
