package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"admissions-api/config"
	"admissions-api/models"
	"admissions-api/utils"
)

// exportPageSize is the internal page size used to materialize the full
// filtered result set. The loop stops on a short page so a failed count
// can never truncate the export silently.
const exportPageSize = 1000

// FetchStudentsForExport loads the records to export: the explicit id set
// when one is given, otherwise every record matching the filters, fetched
// page by page. Any page failure aborts the whole export.
func FetchStudentsForExport(filters StudentFilters, studentIDs []int) ([]models.StudentApplication, error) {
	if len(studentIDs) > 0 {
		var students []models.StudentApplication
		if err := config.DB.Preload("Documents", "delete_at IS NULL").
			Where("student_id IN ? AND delete_at IS NULL", studentIDs).
			Find(&students).Error; err != nil {
			return nil, fmt.Errorf("failed to fetch selected students: %w", err)
		}
		return students, nil
	}

	var all []models.StudentApplication
	for page := 0; ; page++ {
		var batch []models.StudentApplication
		query := ApplyStudentFilters(config.DB.Preload("Documents", "delete_at IS NULL"), filters)
		if err := query.Order("student_id ASC").
			Offset(page * exportPageSize).Limit(exportPageSize).
			Find(&batch).Error; err != nil {
			return nil, fmt.Errorf("failed to fetch export page %d: %w", page+1, err)
		}
		all = append(all, batch...)
		if len(batch) < exportPageSize {
			break
		}
	}
	return all, nil
}

// exportScalarColumns is the fixed column set emitted before the dynamic
// per-document-type columns.
var exportScalarColumns = []string{
	"Application ID",
	"Session",
	"Status",
	"Full Name",
	"Father's Name",
	"Mother's Name",
	"Date of Birth",
	"Gender",
	"National ID",
	"Category",
	"Email",
	"Phone",
	"Alternate Phone",
	"Street",
	"City",
	"District",
	"State",
	"Pincode",
	"Country",
	"College",
	"Course",
	"Stream",
	"Campus",
	"Guardian Name",
	"Guardian Relationship",
	"Guardian Phone",
	"Guardian Email",
	"Submitted By",
	"Referred By",
	"Submitted At",
	"Rejection Reason",
}

// BuildStudentCSV renders the export document. Rows are sorted ascending
// by full name, case-insensitive, independent of the on-screen sort so
// repeated exports of the same data diff cleanly. One extra column is
// emitted per distinct document type observed across the rows.
func BuildStudentCSV(students []models.StudentApplication) []byte {
	sorted := make([]models.StudentApplication, len(students))
	copy(sorted, students)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].PersonalDetails.FullName) <
			strings.ToLower(sorted[j].PersonalDetails.FullName)
	})

	docTypes := collectDocumentTypes(sorted)

	var b strings.Builder
	header := make([]string, 0, len(exportScalarColumns)+len(docTypes))
	for _, col := range exportScalarColumns {
		header = append(header, utils.CSVField(col))
	}
	for _, dt := range docTypes {
		header = append(header, utils.CSVField(dt))
	}
	b.WriteString(strings.Join(header, ","))
	b.WriteString("\r\n")

	for _, s := range sorted {
		b.WriteString(strings.Join(exportRow(s, docTypes), ","))
		b.WriteString("\r\n")
	}
	return []byte(b.String())
}

// collectDocumentTypes gathers the distinct document types across all
// exported rows, sorted for a stable header.
func collectDocumentTypes(students []models.StudentApplication) []string {
	seen := make(map[string]bool)
	types := make([]string, 0)
	for _, s := range students {
		for _, doc := range s.Documents {
			dt := strings.TrimSpace(doc.DocumentType)
			if dt == "" || seen[dt] {
				continue
			}
			seen[dt] = true
			types = append(types, dt)
		}
	}
	sort.Strings(types)
	return types
}

func exportRow(s models.StudentApplication, docTypes []string) []string {
	dob := ""
	if s.PersonalDetails.DateOfBirth != nil {
		dob = s.PersonalDetails.DateOfBirth.Format("2006-01-02")
	}
	submittedAt := ""
	if s.SubmittedAt != nil {
		submittedAt = s.SubmittedAt.Format(time.RFC3339)
	}

	row := []string{
		utils.CSVField(s.ApplicationID),
		utils.CSVField(s.Session),
		utils.CSVField(s.Status),
		utils.CSVField(s.PersonalDetails.FullName),
		utils.CSVField(s.PersonalDetails.FatherName),
		utils.CSVField(s.PersonalDetails.MotherName),
		utils.CSVField(dob),
		utils.CSVField(s.PersonalDetails.Gender),
		utils.CSVTextField(s.PersonalDetails.NationalID),
		utils.CSVField(s.PersonalDetails.Category),
		utils.CSVField(s.ContactDetails.Email),
		utils.CSVTextField(s.ContactDetails.Phone),
		utils.CSVTextField(s.ContactDetails.AlternatePhone),
		utils.CSVField(s.ContactDetails.Street),
		utils.CSVField(s.ContactDetails.City),
		utils.CSVField(s.ContactDetails.District),
		utils.CSVField(s.ContactDetails.State),
		utils.CSVTextField(s.ContactDetails.Pincode),
		utils.CSVField(s.ContactDetails.Country),
		utils.CSVField(s.CourseDetails.College),
		utils.CSVField(s.CourseDetails.Course),
		utils.CSVField(s.CourseDetails.Stream),
		utils.CSVField(s.CourseDetails.Campus),
		utils.CSVField(s.GuardianDetails.Name),
		utils.CSVField(s.GuardianDetails.Relationship),
		utils.CSVTextField(s.GuardianDetails.Phone),
		utils.CSVField(s.GuardianDetails.Email),
		utils.CSVField(models.RoleName(s.SubmitterRole)),
		utils.CSVField(s.ReferredBy),
		utils.CSVField(submittedAt),
		utils.CSVField(s.RejectionReason),
	}

	for _, dt := range docTypes {
		row = append(row, documentCell(s.Documents, dt))
	}
	return row
}

// documentCell renders the cell for one document-type column. A single
// well-formed link stays unescaped so spreadsheet tools auto-link it;
// multiple files of the same type join with an internal line break.
func documentCell(docs []models.StudentDocument, docType string) string {
	var links []string
	for _, doc := range docs {
		if strings.TrimSpace(doc.DocumentType) != docType {
			continue
		}
		if doc.FilePath != "" {
			links = append(links, doc.FilePath)
		}
	}
	if len(links) == 1 {
		return utils.CSVURLField(links[0])
	}
	return utils.CSVMultiField(links)
}
