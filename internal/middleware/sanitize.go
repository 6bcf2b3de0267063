// Hawkins - Stranger Things Dataset API
// Copyright 2026 Hawkins Lab contributors
// SPDX-License-Identifier: MIT
// https://github.com/hawkinslab/hawkins

package middleware

import (
	"net/http"
	"regexp"
	"unicode/utf8"
)

// maxQueryValueLength caps each query-string value before it reaches a
// handler. Dataset fields are short; anything longer is noise.
const maxQueryValueLength = 200

// htmlTagPattern matches HTML/XML tags for stripping.
var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// SanitizeQuery strips HTML tags from every query-string value and caps
// each value's length, rewriting the request URL in place. Handlers
// downstream only ever see sanitized values.
func SanitizeQuery(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values := r.URL.Query()
		changed := false

		for key, vals := range values {
			for i, v := range vals {
				clean := htmlTagPattern.ReplaceAllString(v, "")
				if len(clean) > maxQueryValueLength {
					// Back off to a rune boundary so the cap never
					// splits a multi-byte character.
					cut := maxQueryValueLength
					for cut > 0 && !utf8.RuneStart(clean[cut]) {
						cut--
					}
					clean = clean[:cut]
				}
				if clean != v {
					vals[i] = clean
					changed = true
				}
			}
			values[key] = vals
		}

		if changed {
			r.URL.RawQuery = values.Encode()
		}

		next(w, r)
	}
}
