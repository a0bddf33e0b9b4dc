// utils/validator.go - Input validation
package utils

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	nameRegex  = regexp.MustCompile(`^[a-zA-Z ]+$`)
	phoneRegex = regexp.MustCompile(`^[6-9][0-9]{9}$`)
)

// Contact-form field limits.
const (
	NameMinLen    = 2
	NameMaxLen    = 100
	SubjectMinLen = 3
	SubjectMaxLen = 200
	MessageMinLen = 10
	MessageMaxLen = 5000

	MaxUploadFiles    = 5
	MaxUploadFileSize = 10 << 20 // 10 MB per file
)

// allowedUploadExts is the extension whitelist for contact and student
// document uploads.
var allowedUploadExts = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".txt":  true,
}

// ValidateEmail checks if email is valid
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidatePhone accepts exactly 10 digits with the first digit in 6-9.
func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// ValidateName accepts 2-100 characters, letters and spaces only.
// Lengths count characters, not bytes, so multibyte input is measured
// the way the user sees it.
func ValidateName(name string) bool {
	trimmed := strings.TrimSpace(name)
	length := utf8.RuneCountInString(trimmed)
	if length < NameMinLen || length > NameMaxLen {
		return false
	}
	return nameRegex.MatchString(trimmed)
}

// ValidateSubject accepts 3-200 characters after trimming.
func ValidateSubject(subject string) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(subject))
	return length >= SubjectMinLen && length <= SubjectMaxLen
}

// ValidateMessage accepts 10-5000 characters after trimming.
func ValidateMessage(message string) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(message))
	return length >= MessageMinLen && length <= MessageMaxLen
}

// ValidateUploadFilename checks the file extension against the whitelist.
func ValidateUploadFilename(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return allowedUploadExts[ext]
}

// ValidateUploadSize checks a single file size against the per-file cap.
func ValidateUploadSize(size int64) bool {
	return size > 0 && size <= MaxUploadFileSize
}

// AllowedUploadExtensions returns the whitelist for error messages.
func AllowedUploadExtensions() string {
	exts := []string{".pdf", ".doc", ".docx", ".jpg", ".jpeg", ".png", ".txt"}
	return strings.Join(exts, ", ")
}

// ValidatePassword checks password strength
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Password must be at least 8 characters"
	}
	return true, ""
}

// SanitizeInput removes potentially harmful characters
func SanitizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ReplaceAll(input, "\x00", "")
	return input
}

// FieldError describes one failed field for itemized 400 responses.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
