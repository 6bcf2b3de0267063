// Hawkins - Stranger Things Dataset API
// Copyright 2026 Hawkins Lab contributors
// SPDX-License-Identifier: MIT
// https://github.com/hawkinslab/hawkins

package models

// ErrorResponse is the fixed error envelope returned on 4xx/5xx.
//
// Example:
//
//	{
//	  "error": "Not Found",
//	  "message": "no character with id 99",
//	  "code": 404
//	}
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// CharacterQuotesResponse is the body of the quotes-by-character
// relation endpoint.
type CharacterQuotesResponse struct {
	Character   string  `json:"character"`
	CharacterID int     `json:"character_id"`
	QuoteCount  int     `json:"quote_count"`
	Quotes      []Quote `json:"quotes"`
}

// Search result projections. Each is a fixed subset of the full record,
// tagged with its entity kind so mixed client-side lists stay
// distinguishable.

// CharacterMatch is the search projection for characters.
type CharacterMatch struct {
	Kind        string `json:"kind"`
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	PortrayedBy string `json:"portrayed_by"`
}

// CreatureMatch is the search projection for creatures.
type CreatureMatch struct {
	Kind   string `json:"kind"`
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// EpisodeMatch is the search projection for episodes.
type EpisodeMatch struct {
	Kind    string `json:"kind"`
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Season  int    `json:"season"`
	Episode int    `json:"episode"`
}

// LocationMatch is the search projection for locations.
type LocationMatch struct {
	Kind string `json:"kind"`
	ID   int    `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// QuoteMatch is the search projection for quotes.
type QuoteMatch struct {
	Kind        string `json:"kind"`
	ID          int    `json:"id"`
	Quote       string `json:"quote"`
	CharacterID int    `json:"character_id"`
}

// SearchResponse groups capped matches under one key per enabled
// category. Disabled categories are omitted entirely; enabled
// categories are always present, even when empty. Count is the sum of
// the returned (post-truncation) matches, not of all possible matches.
type SearchResponse struct {
	Count      int               `json:"count"`
	Characters *[]CharacterMatch `json:"characters,omitempty"`
	Creatures  *[]CreatureMatch  `json:"creatures,omitempty"`
	Episodes   *[]EpisodeMatch   `json:"episodes,omitempty"`
	Locations  *[]LocationMatch  `json:"locations,omitempty"`
	Quotes     *[]QuoteMatch     `json:"quotes,omitempty"`
}
