package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const recaptchaVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// recaptchaTimeout bounds the verifier round trip so a flaky third party
// never holds up a contact submission.
const recaptchaTimeout = 5 * time.Second

type recaptchaResponse struct {
	Success bool     `json:"success"`
	Score   float64  `json:"score"`
	Errors  []string `json:"error-codes"`
}

// VerifyRecaptcha checks a reCAPTCHA token against Google. Verification
// is best-effort: a missing secret or an unreachable verifier lets the
// submission proceed without a score. Only an
// explicit "not a human" verdict returns ok=false.
func VerifyRecaptcha(token, remoteIP string) (score *float64, ok bool, err error) {
	secret := strings.TrimSpace(os.Getenv("RECAPTCHA_SECRET"))
	if secret == "" || token == "" {
		return nil, true, nil
	}

	client := &http.Client{Timeout: recaptchaTimeout}
	resp, err := client.PostForm(recaptchaVerifyURL, url.Values{
		"secret":   {secret},
		"response": {token},
		"remoteip": {remoteIP},
	})
	if err != nil {
		// Degrade to "no token" rather than blocking the user.
		return nil, true, fmt.Errorf("recaptcha verifier unreachable: %w", err)
	}
	defer resp.Body.Close()

	var result recaptchaResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, true, fmt.Errorf("recaptcha verifier returned malformed response: %w", err)
	}

	if !result.Success {
		return nil, false, fmt.Errorf("recaptcha rejected token: %s", strings.Join(result.Errors, ", "))
	}
	return &result.Score, true, nil
}
