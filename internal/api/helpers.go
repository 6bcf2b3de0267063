// Hawkins - Stranger Things Dataset API
// Copyright 2026 Hawkins Lab contributors
// SPDX-License-Identifier: MIT
// https://github.com/hawkinslab/hawkins

package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/hawkinslab/hawkins/internal/logging"
	"github.com/hawkinslab/hawkins/internal/models"
)

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=60")
	w.Header().Set("Vary", "Accept-Encoding")

	data, err := json.Marshal(payload)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	etag := generateETag(data)
	w.Header().Set("ETag", etag)

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag creates a simple ETag from data using FNV-1a hash
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return strconv.FormatUint(uint64(hash), 16)
}

// respondError sends the fixed error envelope. The envelope shape is
// part of the public contract: {error, message, code}.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, &models.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Code:    status,
	})
}

// intParam extracts an integer query parameter. An absent value yields
// the default; a present value that is not an integer returns ok=false,
// which the caller must map to a client error rather than a silent
// fallback.
func intParam(r *http.Request, key string, defaultValue int) (int, bool) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue, true
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}

	return intValue, true
}

// idParam extracts the {id} Chi URL parameter as a positive integer.
func idParam(r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// reservedParams are query keys consumed by pagination, never treated
// as filter constraints.
var reservedParams = map[string]bool{
	"page":  true,
	"limit": true,
}

// filterConstraints builds the field-constraint mapping from the query
// string, skipping reserved pagination keys. Repeated keys keep the
// first value.
func filterConstraints(r *http.Request) map[string]string {
	values := r.URL.Query()
	constraints := make(map[string]string, len(values))
	for key, vals := range values {
		if reservedParams[key] || len(vals) == 0 {
			continue
		}
		constraints[key] = vals[0]
	}
	return constraints
}
