// Hawkins - Stranger Things Dataset API
// Copyright 2026 Hawkins Lab contributors
// SPDX-License-Identifier: MIT
// https://github.com/hawkinslab/hawkins

// Package query implements the generic query engine: field filtering,
// pagination, random selection, and identifier lookups over immutable
// record collections. Every function here is a pure, stateless
// computation over its inputs; no function logs, retries, or mutates
// the collection it is given.
package query

import (
	"strconv"
	"strings"

	"github.com/hawkinslab/hawkins/internal/models"
)

// Filter returns the subsequence of records satisfying every constraint
// (logical AND), preserving the input order. A record passes a single
// constraint when the constraint value is a case-insensitive substring
// of the string form of the named field; slice-valued fields pass when
// ANY element matches.
//
// A constraint naming a field the record's kind does not expose is
// treated as satisfied rather than excluding the record. This
// permissive policy is deliberate and load-bearing: clients share
// filter URLs across entity kinds with different shapes.
//
// An empty constraint set returns the input unchanged. The result is
// never nil.
func Filter[T models.Record](records []T, constraints map[string]string) []T {
	if len(constraints) == 0 {
		return records
	}

	out := make([]T, 0, len(records))
	for _, rec := range records {
		if matchesAll(rec, constraints) {
			out = append(out, rec)
		}
	}
	return out
}

// matchesAll reports whether every constraint is satisfied by rec.
func matchesAll(rec models.Record, constraints map[string]string) bool {
	for field, want := range constraints {
		value, ok := rec.Field(field)
		if !ok {
			// Missing field: the record is not excluded.
			continue
		}
		if !matchesValue(value, want) {
			return false
		}
	}
	return true
}

// matchesValue reports whether want is a case-insensitive substring of
// the string form of value. Non-string scalars are coerced to their
// string form before matching so `?season=2` and `?status=Alive`
// behave identically from the client's point of view.
func matchesValue(value any, want string) bool {
	want = strings.ToLower(want)

	switch v := value.(type) {
	case string:
		return strings.Contains(strings.ToLower(v), want)
	case []string:
		for _, elem := range v {
			if strings.Contains(strings.ToLower(elem), want) {
				return true
			}
		}
		return false
	case []int:
		for _, elem := range v {
			if strings.Contains(strconv.Itoa(elem), want) {
				return true
			}
		}
		return false
	case int:
		return strings.Contains(strconv.Itoa(v), want)
	case bool:
		return strings.Contains(strconv.FormatBool(v), want)
	default:
		return false
	}
}
