package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// Rejections missing their reason or message must be refused before any
// lookup or write happens; these tests run without a database behind the
// handler.

func putStatus(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PUT("/students/:id/status", UpdateStudentStatus)

	req := httptest.NewRequest(http.MethodPut, "/students/42/status", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestUpdateStatusRejectWithoutReason(t *testing.T) {
	recorder := putStatus(t, `{"status":"REJECTED","rejection_message":"documents unreadable"}`)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without rejection_reason, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "rejection_reason") {
		t.Errorf("error should name the missing fields, got %s", recorder.Body.String())
	}
}

func TestUpdateStatusRejectWithoutMessage(t *testing.T) {
	recorder := putStatus(t, `{"status":"REJECTED","rejection_reason":"INCOMPLETE_DOCUMENTS"}`)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without rejection_message, got %d", recorder.Code)
	}
}

func TestUpdateStatusRejectWithBlankFields(t *testing.T) {
	recorder := putStatus(t, `{"status":"REJECTED","rejection_reason":"  ","rejection_message":"\t"}`)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("whitespace-only rejection fields should be refused, got %d", recorder.Code)
	}
}

func TestUpdateStatusRejectsBadPriority(t *testing.T) {
	body := `{
		"status": "REJECTED",
		"rejection_reason": "INCOMPLETE_DOCUMENTS",
		"rejection_message": "The marksheet scan is unreadable",
		"rejection_details": [{"issue": "blurry scan", "priority": "Urgent"}]
	}`
	recorder := putStatus(t, body)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown priority, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "priority") {
		t.Errorf("error should mention the priority, got %s", recorder.Body.String())
	}
}

func TestUpdateStatusRequiresStatus(t *testing.T) {
	recorder := putStatus(t, `{"notes":"no status here"}`)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing status, got %d", recorder.Code)
	}
}

func TestGetStudentsWithoutSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/students", GetStudents)

	req := httptest.NewRequest(http.MethodGet, "/students?page=3&status=SUBMITTED", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("missing session should short-circuit to 200, got %d", recorder.Code)
	}

	var payload struct {
		Students   []json.RawMessage `json:"students"`
		Pagination struct {
			TotalItems int `json:"total_items"`
			TotalPages int `json:"total_pages"`
		} `json:"pagination"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(payload.Students) != 0 || payload.Pagination.TotalItems != 0 || payload.Pagination.TotalPages != 0 {
		t.Errorf("expected an empty result set, got %s", recorder.Body.String())
	}
}
