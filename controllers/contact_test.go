package controllers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// The tests below exercise the pre-flight validation path, which must
// answer before any storage is touched.

func contactForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("failed to write field %s: %v", key, err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close form: %v", err)
	}
	return &body, writer.FormDataContentType()
}

func postContact(t *testing.T, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/contact/submit", SubmitContact)

	body, contentType := contactForm(t, fields)
	req := httptest.NewRequest(http.MethodPost, "/contact/submit", body)
	req.Header.Set("Content-Type", contentType)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func validContactFields() map[string]string {
	return map[string]string{
		"name":    "Asha Verma",
		"email":   "asha@example.org",
		"phone":   "9876543210",
		"subject": "Admission query",
		"message": "I would like to know the fee structure.",
	}
}

func TestSubmitContactHoneypotShortCircuits(t *testing.T) {
	fields := validContactFields()
	fields["website"] = "http://spam.example"

	recorder := postContact(t, fields)
	if recorder.Code != http.StatusOK {
		t.Fatalf("honeypot submission should answer 200, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "\"success\":true") {
		t.Errorf("honeypot submission should look successful, got %s", recorder.Body.String())
	}
}

func TestSubmitContactRejectsBadPhone(t *testing.T) {
	fields := validContactFields()
	fields["phone"] = "5876543210"

	recorder := postContact(t, fields)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad phone, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "phone") {
		t.Errorf("response should name the phone field, got %s", recorder.Body.String())
	}
}

func TestSubmitContactRejectsShortMessage(t *testing.T) {
	fields := validContactFields()
	fields["message"] = "too short"

	recorder := postContact(t, fields)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for nine-character message, got %d", recorder.Code)
	}
}

func TestSubmitContactCollectsAllFieldErrors(t *testing.T) {
	fields := map[string]string{
		"name":    "X",
		"email":   "not-an-email",
		"phone":   "12345",
		"subject": "ab",
		"message": "short",
	}

	recorder := postContact(t, fields)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	body := recorder.Body.String()
	for _, field := range []string{"name", "email", "phone", "subject", "message"} {
		if !strings.Contains(body, "\""+field+"\"") {
			t.Errorf("response should itemize %s, got %s", field, body)
		}
	}
}
