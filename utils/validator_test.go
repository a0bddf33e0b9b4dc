package utils

import (
	"strings"
	"testing"
)

func TestValidatePhone(t *testing.T) {
	cases := []struct {
		phone string
		want  bool
	}{
		{"9876543210", true},
		{"6000000000", true},
		{"7123456789", true},
		{"8999999999", true},
		{"5876543210", false},  // first digit out of range
		{"98765432", false},    // too short
		{"98765432101", false}, // too long
		{"987654321a", false},
		{"", false},
		{" 9876543210", false},
	}
	for _, tc := range cases {
		if got := ValidatePhone(tc.phone); got != tc.want {
			t.Errorf("ValidatePhone(%q) = %v, want %v", tc.phone, got, tc.want)
		}
	}
}

func TestValidateMessageBoundaries(t *testing.T) {
	cases := []struct {
		name    string
		message string
		want    bool
	}{
		{"nine chars", strings.Repeat("a", 9), false},
		{"ten chars", strings.Repeat("a", 10), true},
		{"max length", strings.Repeat("a", 5000), true},
		{"over max", strings.Repeat("a", 5001), false},
		{"whitespace only", "         \t\n", false},
		{"trims before counting", "   " + strings.Repeat("a", 10) + "   ", true},
		// Multibyte input counts characters, not bytes.
		{"4000 devanagari chars", strings.Repeat("म", 4000), true},
		{"5001 devanagari chars", strings.Repeat("म", 5001), false},
		{"4 devanagari chars", strings.Repeat("म", 4), false},
		{"10 devanagari chars", strings.Repeat("म", 10), true},
	}
	for _, tc := range cases {
		if got := ValidateMessage(tc.message); got != tc.want {
			t.Errorf("%s: ValidateMessage = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestValidateName(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"Asha Verma", true},
		{"A", false},
		{strings.Repeat("a", 100), true},
		{strings.Repeat("a", 101), false},
		{"R2D2", false},
		{"O'Brien", false}, // letters and spaces only
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidateName(tc.name); got != tc.want {
			t.Errorf("ValidateName(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestValidateSubject(t *testing.T) {
	if ValidateSubject("ab") {
		t.Error("two-character subject should be rejected")
	}
	if !ValidateSubject("abc") {
		t.Error("three-character subject should be accepted")
	}
	if ValidateSubject(strings.Repeat("s", 201)) {
		t.Error("201-character subject should be rejected")
	}
	if !ValidateSubject(strings.Repeat("ß", 200)) {
		t.Error("200 multibyte characters should be accepted")
	}
	if ValidateSubject(strings.Repeat("ß", 201)) {
		t.Error("201 multibyte characters should be rejected")
	}
}

func TestValidateUploadFilename(t *testing.T) {
	allowed := []string{"notes.pdf", "photo.JPG", "scan.jpeg", "cv.docx", "plain.txt", "old.doc", "img.png"}
	for _, name := range allowed {
		if !ValidateUploadFilename(name) {
			t.Errorf("expected %q to be allowed", name)
		}
	}
	blocked := []string{"run.exe", "page.html", "archive.zip", "noext", "script.sh"}
	for _, name := range blocked {
		if ValidateUploadFilename(name) {
			t.Errorf("expected %q to be blocked", name)
		}
	}
}

func TestValidateUploadSize(t *testing.T) {
	if !ValidateUploadSize(MaxUploadFileSize) {
		t.Error("file exactly at the cap should be accepted")
	}
	if ValidateUploadSize(MaxUploadFileSize + 1) {
		t.Error("file over the cap should be rejected")
	}
	if ValidateUploadSize(0) {
		t.Error("empty file should be rejected")
	}
}
