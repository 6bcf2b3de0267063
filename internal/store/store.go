// Hawkins - Stranger Things Dataset API
// Copyright 2026 Hawkins Lab contributors
// SPDX-License-Identifier: MIT
// https://github.com/hawkinslab/hawkins

// Package store holds the immutable record collections served by the
// API. Collections are decoded once at startup from the embedded
// dataset; after that they are never mutated. The one exception is the
// quotes collection, which can be backed by an on-disk file that is
// re-read in full before each read: the replacement is an atomic
// pointer swap, so a request that has already captured a snapshot
// keeps it for the request's duration and never observes a partial
// update.
package store

import (
	"embed"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/goccy/go-json"

	"github.com/hawkinslab/hawkins/internal/logging"
	"github.com/hawkinslab/hawkins/internal/metrics"
	"github.com/hawkinslab/hawkins/internal/models"
)

//go:embed data/*.json
var dataFS embed.FS

// Store is the process-wide set of record collections. Accessors
// return the collection snapshot; callers must capture it once per
// request and must not mutate it.
type Store struct {
	characters []models.Character
	creatures  []models.Creature
	episodes   []models.Episode
	locations  []models.Location

	quotes     atomic.Pointer[[]models.Quote]
	quotesPath string
}

// Load decodes the embedded datasets into a new Store.
//
// If quotesPath is non-empty, the quotes collection is read from that
// file instead of the embedded copy, and every subsequent Quotes()
// call re-reads it before returning. An unreadable file at startup is
// an error; an unreadable file later falls back to the last good
// snapshot.
func Load(quotesPath string) (*Store, error) {
	s := &Store{quotesPath: quotesPath}

	if err := loadCollection(&s.characters, "data/characters.json"); err != nil {
		return nil, err
	}
	if err := loadCollection(&s.creatures, "data/creatures.json"); err != nil {
		return nil, err
	}
	if err := loadCollection(&s.episodes, "data/episodes.json"); err != nil {
		return nil, err
	}
	if err := loadCollection(&s.locations, "data/locations.json"); err != nil {
		return nil, err
	}

	var quotes []models.Quote
	if quotesPath != "" {
		data, err := os.ReadFile(quotesPath)
		if err != nil {
			return nil, fmt.Errorf("read quotes file %s: %w", quotesPath, err)
		}
		if err := json.Unmarshal(data, &quotes); err != nil {
			return nil, fmt.Errorf("decode quotes file %s: %w", quotesPath, err)
		}
	} else if err := loadCollection(&quotes, "data/quotes.json"); err != nil {
		return nil, err
	}
	s.quotes.Store(&quotes)

	metrics.SetStoreRecords("characters", len(s.characters))
	metrics.SetStoreRecords("creatures", len(s.creatures))
	metrics.SetStoreRecords("episodes", len(s.episodes))
	metrics.SetStoreRecords("locations", len(s.locations))
	metrics.SetStoreRecords("quotes", len(quotes))

	logging.Info().
		Int("characters", len(s.characters)).
		Int("creatures", len(s.creatures)).
		Int("episodes", len(s.episodes)).
		Int("locations", len(s.locations)).
		Int("quotes", len(quotes)).
		Msg("Dataset loaded")

	return s, nil
}

// loadCollection decodes one embedded JSON file into dst.
func loadCollection[T any](dst *[]T, name string) error {
	data, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read embedded dataset %s: %w", name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode embedded dataset %s: %w", name, err)
	}
	return nil
}

// Characters returns the character collection.
func (s *Store) Characters() []models.Character { return s.characters }

// Creatures returns the creature collection.
func (s *Store) Creatures() []models.Creature { return s.creatures }

// Episodes returns the episode collection.
func (s *Store) Episodes() []models.Episode { return s.episodes }

// Locations returns the location collection.
func (s *Store) Locations() []models.Location { return s.locations }

// Quotes returns the current quotes snapshot. When a quotes file is
// configured it is re-read in full first; the swap is atomic and a
// failed read keeps the previous snapshot in place, so readers always
// see one consistent collection.
func (s *Store) Quotes() []models.Quote {
	if s.quotesPath != "" {
		s.reloadQuotes()
	}
	return *s.quotes.Load()
}

// reloadQuotes rebuilds the quotes snapshot from the configured file.
func (s *Store) reloadQuotes() {
	data, err := os.ReadFile(s.quotesPath)
	if err != nil {
		metrics.RecordStoreReload("quotes", false)
		logging.Warn().Err(err).Str("path", s.quotesPath).Msg("Quotes reload failed, serving last snapshot")
		return
	}

	var quotes []models.Quote
	if err := json.Unmarshal(data, &quotes); err != nil {
		metrics.RecordStoreReload("quotes", false)
		logging.Warn().Err(err).Str("path", s.quotesPath).Msg("Quotes file malformed, serving last snapshot")
		return
	}

	s.quotes.Store(&quotes)
	metrics.RecordStoreReload("quotes", true)
	metrics.SetStoreRecords("quotes", len(quotes))
}
