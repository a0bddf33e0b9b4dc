// utils/csv.go - CSV field formatting for student exports
package utils

import (
	"strings"
)

// EmptyCellPlaceholder renders instead of an empty cell so spreadsheet
// columns never collapse or misalign.
const EmptyCellPlaceholder = "N/A"

// CSVField quotes a value when it contains a comma, quote or line break,
// doubling internal quotes. Empty values become the placeholder token.
func CSVField(value string) string {
	if strings.TrimSpace(value) == "" {
		return EmptyCellPlaceholder
	}
	if strings.ContainsAny(value, ",\"\n\r") {
		return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
	}
	return value
}

// CSVTextField formats numeric-looking identifiers (phones, national ids,
// pincodes). A leading tab keeps spreadsheet applications from
// re-interpreting the digits as a number, which would drop leading zeros
// or switch to scientific notation.
func CSVTextField(value string) string {
	if strings.TrimSpace(value) == "" {
		return EmptyCellPlaceholder
	}
	return CSVField("\t" + value)
}

// CSVURLField passes well-formed http(s) links through unescaped so
// spreadsheet tools auto-link them; anything else falls back to CSVField.
func CSVURLField(value string) string {
	if strings.TrimSpace(value) == "" {
		return EmptyCellPlaceholder
	}
	if IsPlainURL(value) {
		return value
	}
	return CSVField(value)
}

// CSVMultiField joins several values into one cell with internal line
// breaks, then escapes the cell as a whole.
func CSVMultiField(values []string) string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			continue
		}
		kept = append(kept, v)
	}
	if len(kept) == 0 {
		return EmptyCellPlaceholder
	}
	return CSVField(strings.Join(kept, "\n"))
}

// IsPlainURL reports whether value is an http(s) URL free of characters
// that would need CSV escaping.
func IsPlainURL(value string) bool {
	if !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
		return false
	}
	return !strings.ContainsAny(value, ",\"\n\r ")
}
