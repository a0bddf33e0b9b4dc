// controllers/document.go - Student document upload, download and review
package controllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"admissions-api/config"
	"admissions-api/models"
	"admissions-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UploadDocument attaches a file to a student application.
func UploadDocument(c *gin.Context) {
	id := c.Param("id")

	var student models.StudentApplication
	if err := config.DB.Where("student_id = ? AND delete_at IS NULL", id).
		First(&student).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	documentType := utils.SanitizeInput(c.PostForm("document_type"))
	if documentType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "document_type is required"})
		return
	}

	if !utils.ValidateUploadFilename(file.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("file type not allowed (allowed: %s)", utils.AllowedUploadExtensions()),
		})
		return
	}
	if !utils.ValidateUploadSize(file.Size) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file exceeds 10 MB"})
		return
	}

	uploadPath := os.Getenv("UPLOAD_PATH")
	if uploadPath == "" {
		uploadPath = "./uploads"
	}
	docDir := filepath.Join(uploadPath, "students", student.ApplicationID)
	if err := os.MkdirAll(docDir, os.ModePerm); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare upload directory"})
		return
	}

	storedName := fmt.Sprintf("%s%s", uuid.New().String(), strings.ToLower(filepath.Ext(file.Filename)))
	storedPath := filepath.Join(docDir, storedName)
	if err := c.SaveUploadedFile(file, storedPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	userID, _ := c.Get("userID")
	now := time.Now()
	document := models.StudentDocument{
		StudentID:    student.StudentID,
		DocumentType: documentType,
		FileName:     file.Filename,
		FilePath:     storedPath,
		MimeType:     file.Header.Get("Content-Type"),
		FileSize:     file.Size,
		Status:       models.DocPending,
		UploadedBy:   userID.(int),
		UploadedAt:   &now,
		CreateAt:     &now,
		UpdateAt:     &now,
	}

	if err := config.DB.Create(&document).Error; err != nil {
		os.Remove(storedPath)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save document record"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Document uploaded successfully",
		"document": document,
	})
}

// GetDocuments lists the documents of one application.
func GetDocuments(c *gin.Context) {
	id := c.Param("id")

	var documents []models.StudentDocument
	if err := config.DB.Where("student_id = ? AND delete_at IS NULL", id).
		Order("uploaded_at ASC").Find(&documents).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch documents"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"documents": documents,
		"total":     len(documents),
	})
}

// DownloadDocument streams a stored file back to the caller.
func DownloadDocument(c *gin.Context) {
	documentID := c.Param("document_id")

	var document models.StudentDocument
	if err := config.DB.Where("document_id = ? AND delete_at IS NULL", documentID).
		First(&document).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	if _, err := os.Stat(document.FilePath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Stored file is missing"})
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", document.FileName))
	c.Header("Content-Type", "application/octet-stream")
	c.File(document.FilePath)
}

// ReviewDocument approves or rejects one uploaded document.
func ReviewDocument(c *gin.Context) {
	documentID := c.Param("document_id")

	var req struct {
		Status     string `json:"status" binding:"required"`
		ReviewNote string `json:"review_note"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req.Status = strings.ToUpper(strings.TrimSpace(req.Status))
	if req.Status != models.DocApproved && req.Status != models.DocRejected {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be APPROVED or REJECTED"})
		return
	}

	var document models.StudentDocument
	if err := config.DB.Where("document_id = ? AND delete_at IS NULL", documentID).
		First(&document).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	now := time.Now()
	document.Status = req.Status
	document.ReviewNote = req.ReviewNote
	document.UpdateAt = &now

	if err := config.DB.Save(&document).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update document"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  fmt.Sprintf("Document %s", strings.ToLower(req.Status)),
		"document": document,
	})
}

// DeleteDocument soft deletes an uploaded document.
func DeleteDocument(c *gin.Context) {
	documentID := c.Param("document_id")

	var document models.StudentDocument
	if err := config.DB.Where("document_id = ? AND delete_at IS NULL", documentID).
		First(&document).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}

	now := time.Now()
	document.DeleteAt = &now

	if err := config.DB.Save(&document).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete document"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Document deleted successfully"})
}

// GetDocumentTypes lists the configured document classifications.
func GetDocumentTypes(c *gin.Context) {
	var types []models.DocumentType
	if err := config.DB.Where("delete_at IS NULL").
		Order("display_order ASC").Find(&types).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch document types"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"document_types": types,
	})
}
