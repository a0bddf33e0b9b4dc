// controllers/student_status.go - Application status workflow
package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"admissions-api/config"
	"admissions-api/models"
	"admissions-api/services"

	"github.com/gin-gonic/gin"
)

type RejectionDetailRequest struct {
	Issue            string `json:"issue" binding:"required"`
	DocumentType     string `json:"document_type"`
	ActionRequired   string `json:"action_required"`
	Priority         string `json:"priority"`
	SpecificFeedback string `json:"specific_feedback"`
}

type StatusUpdateRequest struct {
	Status           string                   `json:"status" binding:"required"`
	Notes            string                   `json:"notes"`
	RejectionReason  string                   `json:"rejection_reason"`
	RejectionMessage string                   `json:"rejection_message"`
	RejectionDetails []RejectionDetailRequest `json:"rejection_details"`
}

// UpdateStudentStatus moves an application through the admissions
// workflow. The update is an idempotent PUT keyed by student id; the last
// write wins, there is no client-side reconciliation.
func UpdateStudentStatus(c *gin.Context) {
	id := c.Param("id")

	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req.Status = strings.ToUpper(strings.TrimSpace(req.Status))

	// Rejections must carry a reason and a free-text message. Checked
	// before anything is written.
	if services.RequiresRejectionInfo(req.Status) {
		if strings.TrimSpace(req.RejectionReason) == "" || strings.TrimSpace(req.RejectionMessage) == "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "rejection_reason and rejection_message are required when rejecting",
			})
			return
		}
		for i, detail := range req.RejectionDetails {
			if detail.Priority != "" && !models.ValidPriority(detail.Priority) {
				c.JSON(http.StatusBadRequest, gin.H{
					"error": fmt.Sprintf("invalid priority at rejection_details[%d]: must be High, Medium or Low", i),
				})
				return
			}
		}
	}

	var student models.StudentApplication
	if err := config.DB.Where("student_id = ? AND delete_at IS NULL", id).
		First(&student).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	if err := services.ValidateStatusTransition(student.Status, req.Status); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := c.Get("userID")
	fromStatus := student.Status
	now := time.Now()

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	student.Status = req.Status
	student.UpdateAt = &now

	if req.Status == models.StatusSubmitted {
		student.SubmittedAt = &now
	}

	switch {
	case services.RequiresRejectionInfo(req.Status):
		student.RejectionReason = strings.TrimSpace(req.RejectionReason)
		student.RejectionMessage = strings.TrimSpace(req.RejectionMessage)

		// Replace any detail rows from a previous rejection round.
		if err := tx.Where("student_id = ?", student.StudentID).
			Delete(&models.RejectionDetail{}).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rejection details"})
			return
		}
		for _, detail := range req.RejectionDetails {
			row := models.RejectionDetail{
				StudentID:        student.StudentID,
				Issue:            detail.Issue,
				DocumentType:     detail.DocumentType,
				ActionRequired:   detail.ActionRequired,
				Priority:         detail.Priority,
				SpecificFeedback: detail.SpecificFeedback,
				CreateAt:         &now,
			}
			if err := tx.Create(&row).Error; err != nil {
				tx.Rollback()
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save rejection details"})
				return
			}
		}

	case services.ClearsRejectionInfo(req.Status):
		student.RejectionReason = ""
		student.RejectionMessage = ""
		if err := tx.Where("student_id = ?", student.StudentID).
			Delete(&models.RejectionDetail{}).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear rejection details"})
			return
		}
	}

	if err := tx.Save(&student).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}

	history := models.StudentStatusHistory{
		StudentID:  student.StudentID,
		FromStatus: fromStatus,
		ToStatus:   req.Status,
		Notes:      req.Notes,
		ChangedBy:  userID.(int),
		CreateAt:   &now,
	}
	if err := tx.Create(&history).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record status history"})
		return
	}

	tx.Commit()

	// Best-effort applicant notification.
	go notifyStatusChange(student, fromStatus)

	if err := config.DB.Preload("Documents", "delete_at IS NULL").
		Preload("RejectionDetails").
		First(&student, student.StudentID).Error; err != nil {
		log.Printf("Warning: failed to reload student %d after status update: %v", student.StudentID, err)
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Status updated to %s", req.Status),
		"student": student,
	})
}

// ResubmitStudent moves a REJECTED application back to SUBMITTED after
// the applicant applied corrective edits. Rejection info is cleared and
// the record is re-queued for review.
func ResubmitStudent(c *gin.Context) {
	id := c.Param("id")

	var student models.StudentApplication
	if err := config.DB.Where("student_id = ? AND delete_at IS NULL", id).
		First(&student).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	if student.Status != models.StatusRejected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only rejected applications can be resubmitted"})
		return
	}

	userID, _ := c.Get("userID")
	now := time.Now()

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	fromStatus := student.Status
	student.Status = models.StatusSubmitted
	student.RejectionReason = ""
	student.RejectionMessage = ""
	student.SubmittedAt = &now
	student.UpdateAt = &now

	if err := tx.Where("student_id = ?", student.StudentID).
		Delete(&models.RejectionDetail{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear rejection details"})
		return
	}

	if err := tx.Save(&student).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resubmit application"})
		return
	}

	history := models.StudentStatusHistory{
		StudentID:  student.StudentID,
		FromStatus: fromStatus,
		ToStatus:   models.StatusSubmitted,
		Notes:      "Resubmitted after corrections",
		ChangedBy:  userID.(int),
		CreateAt:   &now,
	}
	if err := tx.Create(&history).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record status history"})
		return
	}

	tx.Commit()

	c.JSON(http.StatusOK, gin.H{
		"message": "Application resubmitted for review",
		"student": student,
	})
}

func notifyStatusChange(student models.StudentApplication, fromStatus string) {
	if student.ContactDetails.Email == "" {
		return
	}

	subject := fmt.Sprintf("Application %s: status update", student.ApplicationID)
	body := fmt.Sprintf(
		"<p>Dear %s,</p><p>Your application <b>%s</b> moved from %s to <b>%s</b>.</p>",
		student.PersonalDetails.FullName, student.ApplicationID, fromStatus, student.Status,
	)
	if student.Status == models.StatusRejected {
		body += fmt.Sprintf("<p>Reason: %s</p><p>%s</p>", student.RejectionReason, student.RejectionMessage)
	}

	if err := config.SendMail([]string{student.ContactDetails.Email}, subject, body); err != nil {
		log.Printf("Warning: failed to send status notification for %s: %v", student.ApplicationID, err)
	}
}
