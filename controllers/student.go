package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"admissions-api/config"
	"admissions-api/models"
	"admissions-api/utils"

	"github.com/gin-gonic/gin"
)

// StudentRequest is the write payload shared by create and update.
type StudentRequest struct {
	Session         string                 `json:"session" binding:"required"`
	PersonalDetails models.PersonalDetails `json:"personal_details" binding:"required"`
	ContactDetails  models.ContactDetails  `json:"contact_details" binding:"required"`
	CourseDetails   models.CourseDetails   `json:"course_details"`
	GuardianDetails models.GuardianDetails `json:"guardian_details"`
	ReferredBy      string                 `json:"referred_by"`
}

func validateStudentRequest(req *StudentRequest) []utils.FieldError {
	var errs []utils.FieldError

	if !utils.ValidSession(req.Session) {
		errs = append(errs, utils.FieldError{Field: "session", Message: "session must look like 2024-25"})
	}
	if !utils.ValidateName(req.PersonalDetails.FullName) {
		errs = append(errs, utils.FieldError{Field: "personal_details.full_name", Message: "name must be 2-100 characters, letters and spaces only"})
	}
	if !utils.ValidateEmail(req.ContactDetails.Email) {
		errs = append(errs, utils.FieldError{Field: "contact_details.email", Message: "invalid email address"})
	}
	if !utils.ValidatePhone(req.ContactDetails.Phone) {
		errs = append(errs, utils.FieldError{Field: "contact_details.phone", Message: "phone must be 10 digits starting with 6-9"})
	}
	if req.ContactDetails.AlternatePhone != "" && !utils.ValidatePhone(req.ContactDetails.AlternatePhone) {
		errs = append(errs, utils.FieldError{Field: "contact_details.alternate_phone", Message: "phone must be 10 digits starting with 6-9"})
	}
	if req.GuardianDetails.Phone != "" && !utils.ValidatePhone(req.GuardianDetails.Phone) {
		errs = append(errs, utils.FieldError{Field: "guardian_details.phone", Message: "phone must be 10 digits starting with 6-9"})
	}
	return errs
}

// CreateStudent registers a new application in DRAFT.
func CreateStudent(c *gin.Context) {
	var req StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := validateStudentRequest(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": errs})
		return
	}

	userID, _ := c.Get("userID")
	roleID, _ := c.Get("roleID")

	now := time.Now()
	student := models.StudentApplication{
		Session:         req.Session,
		Status:          models.StatusDraft,
		PersonalDetails: req.PersonalDetails,
		ContactDetails:  req.ContactDetails,
		CourseDetails:   req.CourseDetails,
		GuardianDetails: req.GuardianDetails,
		SubmitterRole:   roleID.(int),
		ReferredBy:      req.ReferredBy,
		CreatedBy:       userID.(int),
		CreateAt:        &now,
		UpdateAt:        &now,
	}

	// Concurrent creates can race on the daily sequence; the unique
	// application_id column catches the loser, which recounts and retries.
	created := false
	for attempt := 0; attempt < 3; attempt++ {
		student.ApplicationID = generateApplicationID(now)
		err := config.DB.Create(&student).Error
		if err == nil {
			created = true
			break
		}
		if !strings.Contains(err.Error(), "Duplicate entry") {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create application"})
			return
		}
	}
	if !created {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create application"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Application created successfully",
		"student": student,
	})
}

// GetStudent returns a single application with documents and rejection
// details.
func GetStudent(c *gin.Context) {
	id := c.Param("id")

	var student models.StudentApplication
	if err := config.DB.Preload("Documents", "delete_at IS NULL").
		Preload("RejectionDetails").
		Where("student_id = ? AND delete_at IS NULL", id).
		First(&student).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"student": student,
	})
}

// UpdateStudent edits an application. Only DRAFT and REJECTED records may
// be edited; REJECTED edits are the corrective step before resubmission.
func UpdateStudent(c *gin.Context) {
	id := c.Param("id")

	var req StudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if errs := validateStudentRequest(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": errs})
		return
	}

	var student models.StudentApplication
	if err := config.DB.Where("student_id = ? AND delete_at IS NULL", id).
		First(&student).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	if student.Status != models.StatusDraft && student.Status != models.StatusRejected {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Cannot edit a %s application", student.Status)})
		return
	}

	now := time.Now()
	student.Session = req.Session
	student.PersonalDetails = req.PersonalDetails
	student.ContactDetails = req.ContactDetails
	student.CourseDetails = req.CourseDetails
	student.GuardianDetails = req.GuardianDetails
	student.ReferredBy = req.ReferredBy
	student.UpdateAt = &now

	if err := config.DB.Save(&student).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Application updated successfully",
		"student": student,
	})
}

// DeleteStudent soft deletes a single application.
func DeleteStudent(c *gin.Context) {
	id := c.Param("id")

	var student models.StudentApplication
	if err := config.DB.Where("student_id = ? AND delete_at IS NULL", id).
		First(&student).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	now := time.Now()
	student.DeleteAt = &now

	if err := config.DB.Save(&student).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete application"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application deleted successfully"})
}

// GetStudentHistory returns the status transitions of one application.
func GetStudentHistory(c *gin.Context) {
	id := c.Param("id")

	var student models.StudentApplication
	if err := config.DB.Select("student_id").
		Where("student_id = ? AND delete_at IS NULL", id).
		First(&student).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	var history []models.StudentStatusHistory
	if err := config.DB.Where("student_id = ?", id).
		Order("create_at DESC").Find(&history).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch status history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"history": history,
		"total":   len(history),
	})
}

// GetAcademicSessions lists selectable sessions around the current one.
func GetAcademicSessions(c *gin.Context) {
	now := time.Now()
	c.JSON(http.StatusOK, gin.H{
		"current":  utils.CurrentSession(now),
		"sessions": utils.SessionOptions(now, 4, 1),
	})
}

// generateApplicationID builds the next application number for the day.
// The day is derived from the caller's clock on both sides of the query
// so the date in the id and the counted rows never disagree.
func generateApplicationID(now time.Time) string {
	var count int64
	config.DB.Model(&models.StudentApplication{}).
		Where("DATE(create_at) = ?", now.Format("2006-01-02")).
		Count(&count)

	return applicationIDFor(now, count+1)
}

// applicationIDFor renders a human-readable application number.
// Format: ADM-YYYYMMDD-XXXX
func applicationIDFor(day time.Time, seq int64) string {
	return fmt.Sprintf("ADM-%s-%04d", day.Format("20060102"), seq)
}
