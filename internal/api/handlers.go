// Hawkins - Stranger Things Dataset API
// Copyright 2026 Hawkins Lab contributors
// SPDX-License-Identifier: MIT
// https://github.com/hawkinslab/hawkins

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/hawkinslab/hawkins/internal/config"
	"github.com/hawkinslab/hawkins/internal/logging"
	"github.com/hawkinslab/hawkins/internal/models"
	"github.com/hawkinslab/hawkins/internal/query"
	"github.com/hawkinslab/hawkins/internal/search"
	"github.com/hawkinslab/hawkins/internal/store"
	"github.com/hawkinslab/hawkins/internal/validation"
)

// Handler owns the request handlers for every API endpoint. All
// handlers are stateless reads over the store snapshot captured at the
// start of the request.
type Handler struct {
	store   *store.Store
	search  *search.Service
	cfg     *config.Config
	started time.Time
}

// NewHandler creates the API handler set.
func NewHandler(st *store.Store, cfg *config.Config) *Handler {
	return &Handler{
		store:   st,
		search:  search.NewService(st),
		cfg:     cfg,
		started: time.Now(),
	}
}

// listRequest carries validated pagination parameters.
type listRequest struct {
	Page  int `validate:"min=1"`
	Limit int `validate:"min=1,max=50"`
}

// handleList builds a list endpoint over one collection: filter by the
// remaining query params, then paginate. Unknown filter fields pass
// permissively, so a bad field name yields the full collection rather
// than an error.
func handleList[T models.Record](h *Handler, collection func() []T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := intParam(r, "page", 1)
		if !ok {
			respondError(w, http.StatusBadRequest, "page must be an integer")
			return
		}
		limit, ok := intParam(r, "limit", h.cfg.API.DefaultPageSize)
		if !ok {
			respondError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		if limit > h.cfg.API.MaxPageSize {
			limit = h.cfg.API.MaxPageSize
		}

		req := listRequest{Page: page, Limit: limit}
		if err := validation.ValidateStruct(&req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		records := query.Filter(collection(), filterConstraints(r))
		respondJSON(w, http.StatusOK, query.Paginate(records, page, limit))
	}
}

// handleGet builds a single-record endpoint: linear scan by id.
func handleGet[T models.Record](kind string, collection func() []T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r)
		if !ok {
			respondError(w, http.StatusBadRequest, "id must be a positive integer")
			return
		}

		record, found := query.FindByID(collection(), id)
		if !found {
			respondError(w, http.StatusNotFound, "no "+kind+" found with that id")
			return
		}

		respondJSON(w, http.StatusOK, record)
	}
}

// handleRandom builds a random-record endpoint over the full
// (unfiltered) collection.
func handleRandom[T models.Record](kind string, collection func() []T) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		record, err := query.PickRandom(collection())
		if err != nil {
			// The shipped datasets are never empty; reaching this is a
			// data fault, not a client error.
			logging.Error().Err(err).Str("collection", kind).Msg("Random selection failed")
			respondError(w, http.StatusInternalServerError, "the "+kind+" collection is empty")
			return
		}

		respondJSON(w, http.StatusOK, record)
	}
}

// CharacterQuotes resolves the quotes owned by one character. The
// character lookup must succeed before any quote scan happens; an
// unknown character id is a 404 even though the relation scan itself
// cannot fail.
func (h *Handler) CharacterQuotes(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "id must be a positive integer")
		return
	}

	character, found := query.FindByID(h.store.Characters(), id)
	if !found {
		respondError(w, http.StatusNotFound, "no character found with that id")
		return
	}

	quotes := query.FindRelated(h.store.Quotes(), "character_id", id)
	respondJSON(w, http.StatusOK, models.CharacterQuotesResponse{
		Character:   character.Name,
		CharacterID: id,
		QuoteCount:  len(quotes),
		Quotes:      quotes,
	})
}

// searchRequest carries validated search parameters.
type searchRequest struct {
	Limit int `validate:"min=1,max=20"`
}

// Search runs the cross-entity substring search.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	category, ok := search.ParseCategory(r.URL.Query().Get("category"))
	if !ok {
		respondError(w, http.StatusBadRequest, "category must be one of: all, characters, creatures, episodes, locations, quotes")
		return
	}

	limit, ok := intParam(r, "limit", search.DefaultLimit)
	if !ok {
		respondError(w, http.StatusBadRequest, "limit must be an integer")
		return
	}
	req := searchRequest{Limit: limit}
	if err := validation.ValidateStruct(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.search.Search(r.URL.Query().Get("q"), category, limit)
	if err != nil {
		if errors.Is(err, search.ErrQueryTooShort) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		logging.Error().Err(err).Msg("Search failed")
		respondError(w, http.StatusInternalServerError, "search failed")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// healthResponse is the health endpoint body.
type healthResponse struct {
	Status  string `json:"status"`
	Uptime  string `json:"uptime"`
	Records int    `json:"records"`
}

// Health reports service status plus total record count across
// collections.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	total := len(h.store.Characters()) + len(h.store.Creatures()) +
		len(h.store.Episodes()) + len(h.store.Locations()) + len(h.store.Quotes())

	respondJSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Uptime:  time.Since(h.started).Round(time.Second).String(),
		Records: total,
	})
}

// HealthLive is the liveness probe.
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "alive"})
}

// HealthReady is the readiness probe; ready once the store is loaded.
func (h *Handler) HealthReady(w http.ResponseWriter, _ *http.Request) {
	if len(h.store.Characters()) == 0 {
		respondError(w, http.StatusServiceUnavailable, "dataset not loaded")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
