package utils

import (
	"testing"
	"time"
)

func TestCurrentSession(t *testing.T) {
	cases := []struct {
		date time.Time
		want string
	}{
		{time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC), "2024-25"},
		{time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), "2025-26"},
		{time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC), "2024-25"},
		{time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), "2024-25"},
		{time.Date(2099, time.June, 1, 0, 0, 0, 0, time.UTC), "2099-00"},
	}
	for _, tc := range cases {
		if got := CurrentSession(tc.date); got != tc.want {
			t.Errorf("CurrentSession(%v) = %q, want %q", tc.date, got, tc.want)
		}
	}
}

func TestValidSession(t *testing.T) {
	valid := []string{"2024-25", "1999-00", "2030-31"}
	for _, s := range valid {
		if !ValidSession(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	invalid := []string{"", "2024", "2024-2025", "24-25", "2024_25", "abcd-ef"}
	for _, s := range invalid {
		if ValidSession(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestSessionOptions(t *testing.T) {
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	options := SessionOptions(now, 2, 1)

	want := []string{"2026-27", "2025-26", "2024-25", "2023-24"}
	if len(options) != len(want) {
		t.Fatalf("got %d options, want %d: %v", len(options), len(want), options)
	}
	for i := range want {
		if options[i] != want[i] {
			t.Errorf("options[%d] = %q, want %q", i, options[i], want[i])
		}
	}
}
