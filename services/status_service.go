package services

import (
	"fmt"

	"admissions-api/models"
)

// allowedTransitions maps a current status to the statuses it may move to.
// REJECTED applications go back to SUBMITTED when the applicant resubmits
// after corrective edits; CANCELLED is reachable from everywhere and is
// handled separately below.
var allowedTransitions = map[string][]string{
	models.StatusDraft:       {models.StatusSubmitted},
	models.StatusSubmitted:   {models.StatusUnderReview, models.StatusApproved, models.StatusRejected},
	models.StatusUnderReview: {models.StatusApproved, models.StatusRejected},
	models.StatusRejected:    {models.StatusSubmitted},
	models.StatusApproved:    {models.StatusComplete},
}

// KnownStatus reports whether s is a modeled application status.
func KnownStatus(s string) bool {
	switch s {
	case models.StatusDraft, models.StatusSubmitted, models.StatusUnderReview,
		models.StatusApproved, models.StatusRejected, models.StatusComplete,
		models.StatusCancelled:
		return true
	}
	return false
}

// ValidateStatusTransition checks that moving from one status to another
// is allowed by the workflow.
func ValidateStatusTransition(from, to string) error {
	if !KnownStatus(to) {
		return fmt.Errorf("unknown status '%s'", to)
	}
	if to == models.StatusCancelled {
		if from == models.StatusCancelled {
			return fmt.Errorf("application is already cancelled")
		}
		return nil
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("cannot change status from %s to %s", from, to)
}

// RequiresRejectionInfo reports whether the target status needs a
// rejection reason and message.
func RequiresRejectionInfo(to string) bool {
	return to == models.StatusRejected
}

// ClearsRejectionInfo reports whether the transition wipes any rejection
// reason, message and detail rows carried by the record.
func ClearsRejectionInfo(to string) bool {
	return to == models.StatusApproved || to == models.StatusSubmitted
}
