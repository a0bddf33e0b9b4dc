// controllers/bundle.go - Combined PDF / ZIP generation from approved documents
package controllers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"admissions-api/config"
	"admissions-api/models"
	"admissions-api/services"

	"github.com/gin-gonic/gin"
)

type BundleRequest struct {
	SelectedDocuments []int `json:"selected_documents" binding:"required,min=1"`
}

// GenerateCombinedPDF merges the selected approved documents of one
// application into a single PDF.
func GenerateCombinedPDF(c *gin.Context) {
	generateBundle(c, "pdf")
}

// GenerateDocumentsZip packs the selected approved documents of one
// application into a ZIP archive.
func GenerateDocumentsZip(c *gin.Context) {
	generateBundle(c, "zip")
}

func generateBundle(c *gin.Context, kind string) {
	id := c.Param("id")

	var req BundleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var student models.StudentApplication
	if err := config.DB.Where("student_id = ? AND delete_at IS NULL", id).
		First(&student).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	selectedIDs := uniqueInts(req.SelectedDocuments)

	var documents []models.StudentDocument
	if err := config.DB.Where("document_id IN ? AND student_id = ? AND delete_at IS NULL",
		selectedIDs, student.StudentID).
		Find(&documents).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch documents"})
		return
	}
	if len(documents) != len(selectedIDs) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "One or more selected documents do not belong to this application"})
		return
	}

	// Every selected document must be approved. Non-approved documents are
	// refused outright, never silently filtered out.
	var notApproved []string
	for _, doc := range documents {
		if doc.Status != models.DocApproved {
			notApproved = append(notApproved, doc.FileName)
		}
	}
	if len(notApproved) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Only approved documents can be bundled; not approved: %s",
				strings.Join(notApproved, ", ")),
		})
		return
	}

	files := make([]services.BundleFile, 0, len(documents))
	for _, doc := range documents {
		files = append(files, services.BundleFile{Name: doc.FileName, Path: doc.FilePath})
	}

	// Bundle generation is slow server-side batch work; it runs under its
	// own extended timeout, detached from the request default.
	ctx, cancel := context.WithTimeout(context.Background(), services.BundleTimeout)
	defer cancel()

	var data []byte
	var contentType string
	var err error
	switch kind {
	case "pdf":
		data, err = services.MergePDFs(ctx, files)
		contentType = "application/pdf"
	case "zip":
		data, err = services.BuildDocumentsZip(files)
		contentType = "application/zip"
	}
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Bundle generation timed out"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate bundle", "details": err.Error()})
		return
	}

	fileName := fmt.Sprintf("application_%s_%s.%s", student.ApplicationID, kind, bundleExt(kind))

	// Hosted delivery when configured, inline bytes otherwise. The client
	// distinguishes the two shapes by content type.
	hosted, err := services.StoreBundle(data, fileName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store bundle", "details": err.Error()})
		return
	}
	if hosted != nil {
		c.JSON(http.StatusOK, hosted)
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", fileName))
	c.Data(http.StatusOK, contentType, data)
}

func bundleExt(kind string) string {
	if kind == "pdf" {
		return "pdf"
	}
	return "zip"
}

// uniqueInts keeps the first occurrence of each id, preserving order, so
// a selection listing the same document twice still bundles it once.
func uniqueInts(values []int) []int {
	seen := make(map[int]bool, len(values))
	out := make([]int, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
