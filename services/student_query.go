package services

import (
	"strings"

	"gorm.io/gorm"
)

// StudentFilters carries every optional filter dimension of the student
// listing. Session is mandatory and checked by the caller before any
// query is built.
type StudentFilters struct {
	Session       string
	Search        string
	Status        string
	Course        string
	Category      string
	College       string
	Gender        string
	District      string
	City          string
	State         string
	Stream        string
	Campus        string
	SubmitterRole int
}

// ApplyStudentFilters narrows a students query by every non-empty filter.
func ApplyStudentFilters(query *gorm.DB, f StudentFilters) *gorm.DB {
	query = query.Where("session = ? AND delete_at IS NULL", f.Session)

	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.Course != "" {
		query = query.Where("course = ?", f.Course)
	}
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.College != "" {
		query = query.Where("college = ?", f.College)
	}
	if f.Gender != "" {
		query = query.Where("gender = ?", f.Gender)
	}
	if f.District != "" {
		query = query.Where("district = ?", f.District)
	}
	if f.City != "" {
		query = query.Where("city = ?", f.City)
	}
	if f.State != "" {
		query = query.Where("state = ?", f.State)
	}
	if f.Stream != "" {
		query = query.Where("stream = ?", f.Stream)
	}
	if f.Campus != "" {
		query = query.Where("campus = ?", f.Campus)
	}
	if f.SubmitterRole != 0 {
		query = query.Where("submitter_role = ?", f.SubmitterRole)
	}

	if f.Search != "" {
		term := "%" + f.Search + "%"
		query = query.Where(
			"application_id LIKE ? OR full_name LIKE ? OR email LIKE ? OR phone LIKE ?",
			term, term, term, term,
		)
	}

	return query
}

// sortColumns is the fixed vocabulary of sortable listing columns.
var sortColumns = map[string]string{
	"created_at":     "create_at",
	"updated_at":     "update_at",
	"submitted_at":   "submitted_at",
	"full_name":      "full_name",
	"application_id": "application_id",
	"status":         "status",
}

// uiSortKeys maps the composite sort options the dashboard sends
// ("name_asc") onto column and direction. The mapping is exhaustive over
// the documented options; anything else falls back to created_at desc.
var uiSortKeys = map[string][2]string{
	"name_asc":     {"full_name", "ASC"},
	"name_desc":    {"full_name", "DESC"},
	"created_asc":  {"create_at", "ASC"},
	"created_desc": {"create_at", "DESC"},
	"status_asc":   {"status", "ASC"},
	"status_desc":  {"status", "DESC"},
	"app_id_asc":   {"application_id", "ASC"},
	"app_id_desc":  {"application_id", "DESC"},
}

// ResolveSort turns sort_by/sort_order request values into a safe ORDER BY
// clause. sort_by may be a composite dashboard key or a bare column name.
func ResolveSort(sortBy, sortOrder string) string {
	if mapped, ok := uiSortKeys[strings.ToLower(sortBy)]; ok {
		return mapped[0] + " " + mapped[1]
	}

	column, ok := sortColumns[strings.ToLower(sortBy)]
	if !ok {
		return "create_at DESC"
	}
	order := strings.ToUpper(sortOrder)
	if order != "ASC" && order != "DESC" {
		order = "DESC"
	}
	return column + " " + order
}
