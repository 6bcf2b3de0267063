// Hawkins - Stranger Things Dataset API
// Copyright 2026 Hawkins Lab contributors
// SPDX-License-Identifier: MIT
// https://github.com/hawkinslab/hawkins

package query

import (
	"errors"
	"math/rand"

	"github.com/hawkinslab/hawkins/internal/models"
)

// ErrEmptyCollection is returned by PickRandom when the collection has
// no records. The shipped datasets are never empty, so the HTTP layer
// maps this to a server-side fault rather than a client error.
var ErrEmptyCollection = errors.New("collection is empty")

// FindByID linearly scans for the record whose identifier equals id.
// Identifiers are unique but not indexed, contiguous, or sorted, so
// this is O(n) by design. The second return is false when no record
// matches; the caller maps that to a not-found outcome.
func FindByID[T models.Record](records []T, id int) (T, bool) {
	for _, rec := range records {
		if rec.Key() == id {
			return rec, true
		}
	}
	var zero T
	return zero, false
}

// FindRelated returns every record whose named foreign-key field equals
// id, preserving collection order. No matches yields an empty slice,
// not an error.
func FindRelated[T models.Record](records []T, foreignKey string, id int) []T {
	out := make([]T, 0)
	for _, rec := range records {
		value, ok := rec.Field(foreignKey)
		if !ok {
			continue
		}
		if v, ok := value.(int); ok && v == id {
			out = append(out, rec)
		}
	}
	return out
}

// PickRandom returns one uniformly chosen record from the full
// collection. Filtering and pagination never apply here.
func PickRandom[T any](records []T) (T, error) {
	if len(records) == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	return records[rand.Intn(len(records))], nil
}
