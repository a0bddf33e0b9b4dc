package services

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"admissions-api/models"
)

func exportFixture() []models.StudentApplication {
	submitted := time.Date(2025, time.May, 10, 9, 30, 0, 0, time.UTC)
	return []models.StudentApplication{
		{
			ApplicationID: "ADM-20250510-0002",
			Session:       "2025-26",
			Status:        models.StatusSubmitted,
			PersonalDetails: models.PersonalDetails{
				FullName:   "zoya khan",
				Gender:     "Female",
				NationalID: "0012345678",
			},
			ContactDetails: models.ContactDetails{
				Email: "zoya@example.org",
				Phone: "9876543210",
			},
			SubmitterRole: models.RoleAgent,
			SubmittedAt:   &submitted,
			Documents: []models.StudentDocument{
				{DocumentType: "Photo", FilePath: "https://cdn.example.org/photo1.jpg"},
				{DocumentType: "Marksheet", FilePath: "https://cdn.example.org/marks1.pdf"},
				{DocumentType: "Marksheet", FilePath: "https://cdn.example.org/marks2.pdf"},
			},
		},
		{
			ApplicationID: "ADM-20250510-0001",
			Session:       "2025-26",
			Status:        models.StatusApproved,
			PersonalDetails: models.PersonalDetails{
				FullName: "Arjun Mehta",
				Gender:   "Male",
			},
			ContactDetails: models.ContactDetails{
				Email: "arjun@example.org",
				Phone: "8123456789",
			},
			SubmitterRole: models.RoleStudent,
			Documents: []models.StudentDocument{
				{DocumentType: "Photo", FilePath: "https://cdn.example.org/photo2.jpg"},
			},
		},
	}
}

func parseExport(t *testing.T, data []byte) [][]string {
	t.Helper()
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("export is not parseable CSV: %v", err)
	}
	return records
}

func TestBuildStudentCSVShape(t *testing.T) {
	records := parseExport(t, BuildStudentCSV(exportFixture()))

	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d records", len(records))
	}

	header := records[0]
	wantCols := len(exportScalarColumns) + 2 // Marksheet + Photo
	if len(header) != wantCols {
		t.Fatalf("expected %d columns, got %d", wantCols, len(header))
	}

	// Dynamic document-type columns are appended sorted.
	if header[len(header)-2] != "Marksheet" || header[len(header)-1] != "Photo" {
		t.Errorf("dynamic columns = %q, %q; want Marksheet, Photo", header[len(header)-2], header[len(header)-1])
	}
}

func TestBuildStudentCSVSortsByNameCaseInsensitive(t *testing.T) {
	records := parseExport(t, BuildStudentCSV(exportFixture()))

	if records[1][3] != "Arjun Mehta" {
		t.Errorf("first row should be Arjun Mehta, got %q", records[1][3])
	}
	if records[2][3] != "zoya khan" {
		t.Errorf("second row should be zoya khan, got %q", records[2][3])
	}
}

func TestBuildStudentCSVCells(t *testing.T) {
	records := parseExport(t, BuildStudentCSV(exportFixture()))
	header := records[0]

	col := func(name string) int {
		for i, h := range header {
			if h == name {
				return i
			}
		}
		t.Fatalf("column %q not found", name)
		return -1
	}

	zoya := records[2]

	// Phone numbers carry the text-coercion marker.
	if !strings.HasPrefix(zoya[col("Phone")], "\t") {
		t.Errorf("phone should carry a leading tab, got %q", zoya[col("Phone")])
	}
	// National id keeps its leading zeros behind the marker.
	if zoya[col("National ID")] != "\t0012345678" {
		t.Errorf("national id = %q", zoya[col("National ID")])
	}
	// Empty scalars render the placeholder, never an empty cell.
	if zoya[col("College")] != "N/A" {
		t.Errorf("empty college should render N/A, got %q", zoya[col("College")])
	}
	// Two marksheets join with an internal line break.
	if zoya[col("Marksheet")] != "https://cdn.example.org/marks1.pdf\nhttps://cdn.example.org/marks2.pdf" {
		t.Errorf("marksheet cell = %q", zoya[col("Marksheet")])
	}
	// A single well-formed link stays raw.
	if zoya[col("Photo")] != "https://cdn.example.org/photo1.jpg" {
		t.Errorf("photo cell = %q", zoya[col("Photo")])
	}

	arjun := records[1]
	// Arjun has no marksheet: placeholder, not an empty cell.
	if arjun[col("Marksheet")] != "N/A" {
		t.Errorf("missing marksheet should render N/A, got %q", arjun[col("Marksheet")])
	}
	if arjun[col("Submitted By")] != "student" {
		t.Errorf("submitter = %q, want student", arjun[col("Submitted By")])
	}
}

func TestBuildStudentCSVEmptySet(t *testing.T) {
	records := parseExport(t, BuildStudentCSV(nil))
	if len(records) != 1 {
		t.Fatalf("empty export should still emit a header, got %d records", len(records))
	}
	if len(records[0]) != len(exportScalarColumns) {
		t.Errorf("empty export header has %d columns, want %d", len(records[0]), len(exportScalarColumns))
	}
}
