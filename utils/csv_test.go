package utils

import (
	"encoding/csv"
	"strings"
	"testing"
)

func TestCSVFieldEscaping(t *testing.T) {
	cases := []struct {
		value string
		want  string
	}{
		{"plain", "plain"},
		{"", "N/A"},
		{"   ", "N/A"},
		{"a,b", "\"a,b\""},
		{`say "hi"`, `"say ""hi"""`},
		{"line1\nline2", "\"line1\nline2\""},
	}
	for _, tc := range cases {
		if got := CSVField(tc.value); got != tc.want {
			t.Errorf("CSVField(%q) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

// Values containing the delimiter, a quote and a newline must survive a
// parse back through a standard CSV reader unchanged.
func TestCSVFieldRoundTrip(t *testing.T) {
	values := []string{
		"comma, separated",
		`quoted "value"`,
		"multi\nline",
		`all, of "them"` + "\ntogether",
	}
	fields := make([]string, 0, len(values))
	for _, v := range values {
		fields = append(fields, CSVField(v))
	}
	line := strings.Join(fields, ",")

	records, err := csv.NewReader(strings.NewReader(line)).ReadAll()
	if err != nil {
		t.Fatalf("failed to parse generated line: %v", err)
	}
	if len(records) != 1 || len(records[0]) != len(values) {
		t.Fatalf("unexpected shape: %v", records)
	}
	for i, v := range values {
		if records[0][i] != v {
			t.Errorf("field %d round-tripped to %q, want %q", i, records[0][i], v)
		}
	}
}

func TestCSVTextFieldKeepsDigitsTextual(t *testing.T) {
	got := CSVTextField("9876543210")
	if !strings.HasPrefix(got, "\t") {
		t.Errorf("CSVTextField should prepend a tab, got %q", got)
	}
	if CSVTextField("") != "N/A" {
		t.Error("empty identifier should render the placeholder")
	}
}

func TestCSVURLField(t *testing.T) {
	url := "https://cdn.example.org/docs/abc123.pdf"
	if got := CSVURLField(url); got != url {
		t.Errorf("well-formed URL should pass through raw, got %q", got)
	}
	odd := "https://cdn.example.org/a,b.pdf"
	if got := CSVURLField(odd); got != "\"https://cdn.example.org/a,b.pdf\"" {
		t.Errorf("URL with a comma should be escaped, got %q", got)
	}
	if got := CSVURLField("notaurl"); got != "notaurl" {
		t.Errorf("plain value should fall back to standard escaping, got %q", got)
	}
	if CSVURLField("") != "N/A" {
		t.Error("empty URL should render the placeholder")
	}
}

func TestCSVMultiField(t *testing.T) {
	got := CSVMultiField([]string{"first.pdf", "second.pdf"})
	want := "\"first.pdf\nsecond.pdf\""
	if got != want {
		t.Errorf("CSVMultiField = %q, want %q", got, want)
	}
	if CSVMultiField(nil) != "N/A" {
		t.Error("no values should render the placeholder")
	}
	if CSVMultiField([]string{"", "  "}) != "N/A" {
		t.Error("blank values should render the placeholder")
	}
}
