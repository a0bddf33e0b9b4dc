// controllers/export.go - CSV export of student applications
package controllers

import (
	"fmt"
	"net/http"
	"time"

	"admissions-api/models"
	"admissions-api/services"

	"github.com/gin-gonic/gin"
)

type ExportRequest struct {
	Session       string `json:"session" binding:"required,session_token"`
	StudentIDs    []int  `json:"student_ids"`
	Search        string `json:"search"`
	Status        string `json:"status"`
	Course        string `json:"course"`
	Category      string `json:"category"`
	College       string `json:"college"`
	Gender        string `json:"gender"`
	District      string `json:"district"`
	City          string `json:"city"`
	State         string `json:"state"`
	Stream        string `json:"stream"`
	Campus        string `json:"campus"`
	SubmitterRole string `json:"submitter_role"`
}

// ExportStudentsCSV materializes the selected or filtered result set into
// a CSV attachment. With an explicit selection the export covers exactly
// those ids; otherwise every page of the filtered set is fetched before a
// single byte is written, so a mid-export failure never produces a
// partial file.
func ExportStudentsCSV(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	filters := services.StudentFilters{
		Session:       req.Session,
		Search:        req.Search,
		Status:        req.Status,
		Course:        req.Course,
		Category:      req.Category,
		College:       req.College,
		Gender:        req.Gender,
		District:      req.District,
		City:          req.City,
		State:         req.State,
		Stream:        req.Stream,
		Campus:        req.Campus,
		SubmitterRole: models.RoleIDByName(req.SubmitterRole),
	}

	students, err := services.FetchStudentsForExport(filters, req.StudentIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch students for export"})
		return
	}

	data := services.BuildStudentCSV(students)

	fileName := fmt.Sprintf("students_%s_%s.csv", req.Session, time.Now().Format("20060102_150405"))
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", fileName))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
