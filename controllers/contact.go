// controllers/contact.go - Public contact form
package controllers

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"admissions-api/config"
	"admissions-api/models"
	"admissions-api/services"
	"admissions-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SubmitContact handles the public contact form: multipart body with
// name, email, phone, subject, message, optional attachments, an optional
// reCAPTCHA token and the hidden honeypot field.
func SubmitContact(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(64 << 20); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse form data"})
		return
	}

	name := utils.SanitizeInput(c.PostForm("name"))
	email := utils.SanitizeInput(c.PostForm("email"))
	phone := utils.SanitizeInput(c.PostForm("phone"))
	subject := utils.SanitizeInput(c.PostForm("subject"))
	message := strings.TrimSpace(c.PostForm("message"))
	honeypot := c.PostForm("website")
	recaptchaToken := c.PostForm("recaptcha_token")

	// A populated honeypot means a bot filled the hidden field. Answer
	// success and store nothing.
	if honeypot != "" {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message received"})
		return
	}

	var fieldErrors []utils.FieldError
	if !utils.ValidateName(name) {
		fieldErrors = append(fieldErrors, utils.FieldError{Field: "name", Message: "name must be 2-100 characters, letters and spaces only"})
	}
	if !utils.ValidateEmail(email) {
		fieldErrors = append(fieldErrors, utils.FieldError{Field: "email", Message: "invalid email address"})
	}
	if !utils.ValidatePhone(phone) {
		fieldErrors = append(fieldErrors, utils.FieldError{Field: "phone", Message: "phone must be 10 digits starting with 6-9"})
	}
	if !utils.ValidateSubject(subject) {
		fieldErrors = append(fieldErrors, utils.FieldError{Field: "subject", Message: "subject must be 3-200 characters"})
	}
	if !utils.ValidateMessage(message) {
		fieldErrors = append(fieldErrors, utils.FieldError{Field: "message", Message: "message must be 10-5000 characters"})
	}

	files := c.Request.MultipartForm.File["documents"]
	if len(files) > utils.MaxUploadFiles {
		fieldErrors = append(fieldErrors, utils.FieldError{Field: "documents", Message: fmt.Sprintf("at most %d files per submission", utils.MaxUploadFiles)})
	} else {
		for _, file := range files {
			if !utils.ValidateUploadFilename(file.Filename) {
				fieldErrors = append(fieldErrors, utils.FieldError{
					Field:   "documents",
					Message: fmt.Sprintf("%s: file type not allowed (allowed: %s)", file.Filename, utils.AllowedUploadExtensions()),
				})
				continue
			}
			if !utils.ValidateUploadSize(file.Size) {
				fieldErrors = append(fieldErrors, utils.FieldError{
					Field:   "documents",
					Message: fmt.Sprintf("%s: file exceeds 10 MB", file.Filename),
				})
			}
		}
	}

	if len(fieldErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "fields": fieldErrors})
		return
	}

	// Best-effort anti-bot check: verifier trouble degrades to "no
	// token", only an explicit rejection blocks the submission.
	score, ok, err := services.VerifyRecaptcha(recaptchaToken, c.ClientIP())
	if err != nil {
		log.Printf("Warning: recaptcha verification degraded: %v", err)
	}
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Anti-bot verification failed, please retry"})
		return
	}

	now := time.Now()
	contact := models.ContactMessage{
		Name:           name,
		Email:          email,
		Phone:          phone,
		Subject:        subject,
		Message:        message,
		RecaptchaScore: score,
		CreateAt:       &now,
	}
	if err := config.DB.Create(&contact).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
		return
	}

	uploadPath := os.Getenv("UPLOAD_PATH")
	if uploadPath == "" {
		uploadPath = "./uploads"
	}
	contactDir := filepath.Join(uploadPath, "contact")
	if err := os.MkdirAll(contactDir, os.ModePerm); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare upload directory"})
		return
	}

	for _, file := range files {
		storedName := fmt.Sprintf("%s%s", uuid.New().String(), strings.ToLower(filepath.Ext(file.Filename)))
		storedPath := filepath.Join(contactDir, storedName)
		if err := c.SaveUploadedFile(file, storedPath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to store %s", file.Filename)})
			return
		}
		attachment := models.ContactAttachment{
			MessageID:    contact.MessageID,
			OriginalName: file.Filename,
			StoredPath:   storedPath,
			FileSize:     file.Size,
			CreateAt:     &now,
		}
		if err := config.DB.Create(&attachment).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save attachment record"})
			return
		}
	}

	go notifyContactInbox(contact, len(files))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Message received, we will get back to you shortly",
	})
}

func notifyContactInbox(contact models.ContactMessage, attachments int) {
	inbox := os.Getenv("CONTACT_INBOX")
	if inbox == "" {
		return
	}

	body := fmt.Sprintf(
		"<p><b>%s</b> (%s, %s)</p><p>Subject: %s</p><p>%s</p><p>%d attachment(s)</p>",
		contact.Name, contact.Email, contact.Phone, contact.Subject, contact.Message, attachments,
	)
	if err := config.SendMail([]string{inbox}, "New contact message: "+contact.Subject, body); err != nil {
		log.Printf("Warning: failed to forward contact message %d: %v", contact.MessageID, err)
	}
}
