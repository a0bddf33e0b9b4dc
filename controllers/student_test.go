package controllers

import (
	"testing"
	"time"
)

func TestApplicationIDFor(t *testing.T) {
	day := time.Date(2025, time.May, 10, 23, 59, 0, 0, time.UTC)

	if got := applicationIDFor(day, 1); got != "ADM-20250510-0001" {
		t.Errorf("applicationIDFor seq 1 = %q", got)
	}
	if got := applicationIDFor(day, 42); got != "ADM-20250510-0042" {
		t.Errorf("applicationIDFor seq 42 = %q", got)
	}
	// The daily counter is padded, not truncated.
	if got := applicationIDFor(day, 10000); got != "ADM-20250510-10000" {
		t.Errorf("applicationIDFor seq 10000 = %q", got)
	}
}

func TestClampPageParams(t *testing.T) {
	cases := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{1, 20, 1, 20},
		{0, 20, 1, 20},
		{-3, 50, 1, 50},
		{2, 0, 2, 20},
		{2, -1, 2, 20},
		{2, 100, 2, 100},
		// Oversized limits clamp to the cap instead of resetting.
		{2, 101, 2, 100},
		{1, 100000, 1, 100},
	}
	for _, tc := range cases {
		page, limit := clampPageParams(tc.page, tc.limit)
		if page != tc.wantPage || limit != tc.wantLimit {
			t.Errorf("clampPageParams(%d, %d) = (%d, %d), want (%d, %d)",
				tc.page, tc.limit, page, limit, tc.wantPage, tc.wantLimit)
		}
	}
}
