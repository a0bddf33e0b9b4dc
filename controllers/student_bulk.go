// controllers/student_bulk.go - Bulk operations (super admin)
package controllers

import (
	"net/http"
	"time"

	"admissions-api/config"
	"admissions-api/models"

	"github.com/gin-gonic/gin"
)

// BulkDeleteStudents soft deletes a set of applications. Unknown or
// already-deleted ids are reported back as invalid, not treated as
// errors.
func BulkDeleteStudents(c *gin.Context) {
	var req struct {
		StudentIDs []int `json:"student_ids" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing []int
	if err := config.DB.Model(&models.StudentApplication{}).
		Where("student_id IN ? AND delete_at IS NULL", req.StudentIDs).
		Pluck("student_id", &existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve students"})
		return
	}

	found := make(map[int]bool, len(existing))
	for _, id := range existing {
		found[id] = true
	}
	invalidIDs := make([]int, 0)
	for _, id := range req.StudentIDs {
		if !found[id] {
			invalidIDs = append(invalidIDs, id)
		}
	}

	deletedCount := int64(0)
	if len(existing) > 0 {
		now := time.Now()
		result := config.DB.Model(&models.StudentApplication{}).
			Where("student_id IN ?", existing).
			Updates(map[string]interface{}{"delete_at": &now, "update_at": &now})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete students"})
			return
		}
		deletedCount = result.RowsAffected
	}

	c.JSON(http.StatusOK, gin.H{
		"deleted_count": deletedCount,
		"invalid_ids":   invalidIDs,
	})
}
