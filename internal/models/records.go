// Hawkins - Stranger Things Dataset API
// Copyright 2026 Hawkins Lab contributors
// SPDX-License-Identifier: MIT
// https://github.com/hawkinslab/hawkins

// Package models defines the entity types served by the API.
//
// Each entity kind is its own struct, but all of them satisfy the small
// Record capability (a stable integer ID plus a string-keyed field
// accessor) so the generic filter, pagination, and search engine in
// internal/query serves every kind without per-kind duplication.
package models

// Record is the capability shared by all entity kinds.
//
// Key returns the record's unique, stable identifier within its own
// collection. Field returns the named field's value and whether the
// field exists on this kind; values are strings, ints, bools, or
// string slices. The accessor is consulted by the filter and search
// engines, which match on the string form of whatever comes back.
type Record interface {
	Key() int
	Field(name string) (any, bool)
}

// Character is a human (or mostly human) cast member.
type Character struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	RealName     string   `json:"real_name,omitempty"`
	Nickname     string   `json:"nickname,omitempty"`
	Status       string   `json:"status"`
	Species      string   `json:"species"`
	Gender       string   `json:"gender"`
	Description  string   `json:"description"`
	Occupation   string   `json:"occupation,omitempty"`
	Affiliations []string `json:"affiliations,omitempty"`
	Powers       []string `json:"powers,omitempty"`
	PortrayedBy  string   `json:"portrayed_by"`
	Seasons      []int    `json:"seasons"`
}

// Key implements Record.
func (c Character) Key() int { return c.ID }

// Field implements Record.
func (c Character) Field(name string) (any, bool) {
	switch name {
	case "id":
		return c.ID, true
	case "name":
		return c.Name, true
	case "real_name":
		return c.RealName, true
	case "nickname":
		return c.Nickname, true
	case "status":
		return c.Status, true
	case "species":
		return c.Species, true
	case "gender":
		return c.Gender, true
	case "description":
		return c.Description, true
	case "occupation":
		return c.Occupation, true
	case "affiliations":
		return c.Affiliations, true
	case "powers":
		return c.Powers, true
	case "portrayed_by":
		return c.PortrayedBy, true
	case "seasons":
		return c.Seasons, true
	default:
		return nil, false
	}
}

// Creature is a denizen of the Upside Down.
type Creature struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Origin          string   `json:"origin"`
	Status          string   `json:"status"`
	Description     string   `json:"description"`
	Abilities       []string `json:"abilities,omitempty"`
	FirstAppearance string   `json:"first_appearance"`
}

// Key implements Record.
func (c Creature) Key() int { return c.ID }

// Field implements Record.
func (c Creature) Field(name string) (any, bool) {
	switch name {
	case "id":
		return c.ID, true
	case "name":
		return c.Name, true
	case "origin":
		return c.Origin, true
	case "status":
		return c.Status, true
	case "description":
		return c.Description, true
	case "abilities":
		return c.Abilities, true
	case "first_appearance":
		return c.FirstAppearance, true
	default:
		return nil, false
	}
}

// Episode is a single aired episode.
type Episode struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Season      int    `json:"season"`
	Episode     int    `json:"episode"`
	AirDate     string `json:"air_date"`
	Description string `json:"description"`
	Director    string `json:"director"`
	Writer      string `json:"writer"`
}

// Key implements Record.
func (e Episode) Key() int { return e.ID }

// Field implements Record.
func (e Episode) Field(name string) (any, bool) {
	switch name {
	case "id":
		return e.ID, true
	case "title":
		return e.Title, true
	case "season":
		return e.Season, true
	case "episode":
		return e.Episode, true
	case "air_date":
		return e.AirDate, true
	case "description":
		return e.Description, true
	case "director":
		return e.Director, true
	case "writer":
		return e.Writer, true
	default:
		return nil, false
	}
}

// Location is a place in Hawkins or beyond.
type Location struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Dimension   string `json:"dimension"`
	Description string `json:"description"`
}

// Key implements Record.
func (l Location) Key() int { return l.ID }

// Field implements Record.
func (l Location) Field(name string) (any, bool) {
	switch name {
	case "id":
		return l.ID, true
	case "name":
		return l.Name, true
	case "type":
		return l.Type, true
	case "dimension":
		return l.Dimension, true
	case "description":
		return l.Description, true
	default:
		return nil, false
	}
}

// Quote is a memorable line, owned by the character who said it via
// the character_id foreign key.
type Quote struct {
	ID          int    `json:"id"`
	Quote       string `json:"quote"`
	CharacterID int    `json:"character_id"`
	Season      int    `json:"season"`
	Episode     int    `json:"episode"`
}

// Key implements Record.
func (q Quote) Key() int { return q.ID }

// Field implements Record.
func (q Quote) Field(name string) (any, bool) {
	switch name {
	case "id":
		return q.ID, true
	case "quote":
		return q.Quote, true
	case "character_id":
		return q.CharacterID, true
	case "season":
		return q.Season, true
	case "episode":
		return q.Episode, true
	default:
		return nil, false
	}
}
