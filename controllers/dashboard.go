// controllers/dashboard.go - Admin dashboard statistics
package controllers

import (
	"net/http"
	"time"

	"admissions-api/config"
	"admissions-api/models"
	"admissions-api/utils"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats summarizes a session: application counts per status,
// pending document reviews and the most recent submissions.
func GetDashboardStats(c *gin.Context) {
	session := c.Query("session")
	if session == "" {
		session = utils.CurrentSession(time.Now())
	}

	var total int64
	if err := config.DB.Model(&models.StudentApplication{}).
		Where("session = ? AND delete_at IS NULL", session).
		Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}

	type statusCount struct {
		Status string `json:"status"`
		Total  int64  `json:"total"`
	}
	var byStatus []statusCount
	if err := config.DB.Model(&models.StudentApplication{}).
		Select("status, COUNT(*) as total").
		Where("session = ? AND delete_at IS NULL", session).
		Group("status").Scan(&byStatus).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}

	statusTotals := make(map[string]int64, len(byStatus))
	for _, row := range byStatus {
		statusTotals[row.Status] = row.Total
	}

	var pendingDocuments int64
	if err := config.DB.Model(&models.StudentDocument{}).
		Joins("JOIN students ON students.student_id = student_documents.student_id").
		Where("students.session = ? AND students.delete_at IS NULL", session).
		Where("student_documents.status = ? AND student_documents.delete_at IS NULL", models.DocPending).
		Count(&pendingDocuments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}

	var recent []models.StudentApplication
	if err := config.DB.Where("session = ? AND delete_at IS NULL AND submitted_at IS NOT NULL", session).
		Order("submitted_at DESC").Limit(5).Find(&recent).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recent submissions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session":            session,
		"total_applications": total,
		"by_status":          statusTotals,
		"pending_documents":  pendingDocuments,
		"recent_submissions": recent,
	})
}
