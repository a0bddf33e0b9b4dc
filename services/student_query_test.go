package services

import "testing"

func TestResolveSortUIKeys(t *testing.T) {
	cases := []struct {
		sortBy    string
		sortOrder string
		want      string
	}{
		{"name_asc", "", "full_name ASC"},
		{"name_desc", "", "full_name DESC"},
		{"created_desc", "", "create_at DESC"},
		{"status_asc", "", "status ASC"},
		{"app_id_desc", "", "application_id DESC"},
		{"full_name", "asc", "full_name ASC"},
		{"created_at", "desc", "create_at DESC"},
		{"submitted_at", "ASC", "submitted_at ASC"},
		// Unknown keys fall back to the default ordering.
		{"", "", "create_at DESC"},
		{"drop table", "asc", "create_at DESC"},
		{"created_at", "sideways", "create_at DESC"},
	}
	for _, tc := range cases {
		if got := ResolveSort(tc.sortBy, tc.sortOrder); got != tc.want {
			t.Errorf("ResolveSort(%q, %q) = %q, want %q", tc.sortBy, tc.sortOrder, got, tc.want)
		}
	}
}
