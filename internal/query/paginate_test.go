// Hawkins - Stranger Things Dataset API
// Copyright 2026 Hawkins Lab contributors
// SPDX-License-Identifier: MIT
// https://github.com/hawkinslab/hawkins

package query

import "testing"

func intRange(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginate_Metadata(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		page      int
		limit     int
		wantCount int
		wantPages int
		wantLen   int
		wantNext  *int
		wantPrev  *int
	}{
		{"single partial page", 5, 1, 20, 5, 1, 5, nil, nil},
		{"first of three", 50, 1, 20, 50, 3, 20, intPtr(2), nil},
		{"middle page", 50, 2, 20, 50, 3, 20, intPtr(3), intPtr(1)},
		{"last partial page", 50, 3, 20, 50, 3, 10, nil, intPtr(2)},
		{"exact boundary", 40, 2, 20, 40, 2, 20, nil, intPtr(1)},
		{"beyond last page", 5, 4, 20, 5, 1, 0, nil, intPtr(3)},
		{"empty input", 0, 1, 20, 0, 0, 0, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Paginate(intRange(tt.total), tt.page, tt.limit)

			if got.Count != tt.wantCount {
				t.Errorf("Count: expected %d, got %d", tt.wantCount, got.Count)
			}
			if got.Pages != tt.wantPages {
				t.Errorf("Pages: expected %d, got %d", tt.wantPages, got.Pages)
			}
			if got.CurrentPage != tt.page {
				t.Errorf("CurrentPage: expected %d, got %d", tt.page, got.CurrentPage)
			}
			if got.PerPage != tt.limit {
				t.Errorf("PerPage: expected %d, got %d", tt.limit, got.PerPage)
			}
			if len(got.Results) != tt.wantLen {
				t.Errorf("Results: expected %d records, got %d", tt.wantLen, len(got.Results))
			}
			if !intPtrEqual(got.Next, tt.wantNext) {
				t.Errorf("Next: expected %v, got %v", intPtrString(tt.wantNext), intPtrString(got.Next))
			}
			if !intPtrEqual(got.Prev, tt.wantPrev) {
				t.Errorf("Prev: expected %v, got %v", intPtrString(tt.wantPrev), intPtrString(got.Prev))
			}
		})
	}
}

func TestPaginate_Completeness(t *testing.T) {
	// Concatenating all pages must reconstruct the input exactly.
	for _, limit := range []int{1, 3, 7, 20, 50} {
		records := intRange(23)
		first := Paginate(records, 1, limit)

		var rebuilt []int
		for p := 1; p <= first.Pages; p++ {
			rebuilt = append(rebuilt, Paginate(records, p, limit).Results...)
		}

		if len(rebuilt) != len(records) {
			t.Fatalf("limit %d: expected %d records, got %d", limit, len(records), len(rebuilt))
		}
		for i := range records {
			if rebuilt[i] != records[i] {
				t.Errorf("limit %d: position %d: expected %d, got %d", limit, i, records[i], rebuilt[i])
			}
		}
	}
}

func TestPaginate_OutOfRangePageDoesNotPanic(t *testing.T) {
	got := Paginate(intRange(3), 100, 20)

	if len(got.Results) != 0 {
		t.Errorf("Expected empty results, got %d", len(got.Results))
	}
	if got.Results == nil {
		t.Error("Expected empty slice, got nil")
	}
	if got.Count != 3 || got.Pages != 1 {
		t.Errorf("Expected count=3 pages=1, got count=%d pages=%d", got.Count, got.Pages)
	}
}

func intPtr(v int) *int { return &v }

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func intPtrString(p *int) any {
	if p == nil {
		return "nil"
	}
	return *p
}
