// controllers/student_listing.go - Student listing with filters and facets
package controllers

import (
	"net/http"
	"strconv"

	"admissions-api/config"
	"admissions-api/models"
	"admissions-api/services"

	"github.com/gin-gonic/gin"
)

// GetStudents returns the paginated, filtered, sorted student listing.
// A missing session short-circuits to an empty result set without touching
// the database: the dashboard always scopes by session, so an unscoped
// request is a UI race, not an error.
func GetStudents(c *gin.Context) {
	session := c.Query("session")
	if session == "" {
		c.JSON(http.StatusOK, gin.H{
			"students": []models.StudentApplication{},
			"pagination": gin.H{
				"current_page":   1,
				"items_per_page": 0,
				"total_items":    0,
				"total_pages":    0,
			},
			"filters": gin.H{
				"statuses":   []string{},
				"courses":    []string{},
				"submitters": []string{},
			},
		})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	page, limit = clampPageParams(page, limit)
	offset := (page - 1) * limit

	filters := services.StudentFilters{
		Session:       session,
		Search:        c.Query("search"),
		Status:        c.Query("status"),
		Course:        c.Query("course"),
		Category:      c.Query("category"),
		College:       c.Query("college"),
		Gender:        c.Query("gender"),
		District:      c.Query("district"),
		City:          c.Query("city"),
		State:         c.Query("state"),
		Stream:        c.Query("stream"),
		Campus:        c.Query("campus"),
		SubmitterRole: models.RoleIDByName(c.Query("submitter_role")),
	}

	query := services.ApplyStudentFilters(config.DB.Model(&models.StudentApplication{}), filters)

	var totalItems int64
	if err := query.Count(&totalItems).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count students"})
		return
	}

	orderClause := services.ResolveSort(c.Query("sort_by"), c.Query("sort_order"))

	var students []models.StudentApplication
	if err := query.Preload("Documents", "delete_at IS NULL").
		Order(orderClause).Offset(offset).Limit(limit).
		Find(&students).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch students"})
		return
	}

	totalPages := (totalItems + int64(limit) - 1) / int64(limit)

	statuses, courses, submitters, err := listingFacets(session)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch filter facets"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"students": students,
		"pagination": gin.H{
			"current_page":   page,
			"items_per_page": limit,
			"total_items":    totalItems,
			"total_pages":    totalPages,
		},
		"filters": gin.H{
			"statuses":   statuses,
			"courses":    courses,
			"submitters": submitters,
		},
	})
}

// clampPageParams normalizes pagination input: page at least 1, limit
// defaulting to 20 when unusable and clamped to at most 100.
func clampPageParams(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// listingFacets returns the distinct filter values present in the session.
func listingFacets(session string) (statuses, courses, submitters []string, err error) {
	if err = config.DB.Model(&models.StudentApplication{}).
		Where("session = ? AND delete_at IS NULL", session).
		Distinct().Order("status").Pluck("status", &statuses).Error; err != nil {
		return nil, nil, nil, err
	}

	if err = config.DB.Model(&models.StudentApplication{}).
		Where("session = ? AND delete_at IS NULL AND course <> ''", session).
		Distinct().Order("course").Pluck("course", &courses).Error; err != nil {
		return nil, nil, nil, err
	}

	var roles []int
	if err = config.DB.Model(&models.StudentApplication{}).
		Where("session = ? AND delete_at IS NULL", session).
		Distinct().Order("submitter_role").Pluck("submitter_role", &roles).Error; err != nil {
		return nil, nil, nil, err
	}
	submitters = make([]string, 0, len(roles))
	for _, role := range roles {
		if name := models.RoleName(role); name != "" {
			submitters = append(submitters, name)
		}
	}

	return statuses, courses, submitters, nil
}
