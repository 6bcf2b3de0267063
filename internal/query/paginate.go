// Hawkins - Stranger Things Dataset API
// Copyright 2026 Hawkins Lab contributors
// SPDX-License-Identifier: MIT
// https://github.com/hawkinslab/hawkins

package query

// DefaultLimit and MaxLimit are the pagination bounds enforced by the
// HTTP layer before Paginate is invoked. Paginate itself performs no
// clamping; passing a sane limit is the caller's contract.
const (
	DefaultLimit = 20
	MaxLimit     = 50
)

// Page is one offset-selected slice of a collection plus navigation
// metadata. It is serialized directly as a list endpoint's response
// body.
type Page[T any] struct {
	Count       int  `json:"count"`
	Pages       int  `json:"pages"`
	CurrentPage int  `json:"current_page"`
	PerPage     int  `json:"per_page"`
	Next        *int `json:"next"`
	Prev        *int `json:"prev"`
	Results     []T  `json:"results"`
}

// Paginate slices records into the 1-indexed page of the given size.
//
// Slice bounds are clamped to the input length, so a page beyond the
// last returns an empty Results with valid Count/Pages rather than
// failing. Next is set iff records remain past this page; Prev is set
// iff page > 1 and the page's start offset is within bounds.
func Paginate[T any](records []T, page, limit int) Page[T] {
	count := len(records)
	pages := (count + limit - 1) / limit

	start := (page - 1) * limit
	end := start + limit
	if start > count {
		start = count
	}
	if end > count {
		end = count
	}

	result := Page[T]{
		Count:       count,
		Pages:       pages,
		CurrentPage: page,
		PerPage:     limit,
		Results:     records[start:end],
	}
	if result.Results == nil {
		result.Results = []T{}
	}

	if page*limit < count {
		next := page + 1
		result.Next = &next
	}
	if page > 1 {
		prev := page - 1
		result.Prev = &prev
	}
	return result
}
