package services

import (
	"testing"

	"admissions-api/models"
)

func TestValidateStatusTransitionAllowed(t *testing.T) {
	allowed := [][2]string{
		{models.StatusDraft, models.StatusSubmitted},
		{models.StatusSubmitted, models.StatusUnderReview},
		{models.StatusSubmitted, models.StatusApproved},
		{models.StatusSubmitted, models.StatusRejected},
		{models.StatusUnderReview, models.StatusApproved},
		{models.StatusUnderReview, models.StatusRejected},
		{models.StatusRejected, models.StatusSubmitted},
		{models.StatusApproved, models.StatusComplete},
		{models.StatusDraft, models.StatusCancelled},
		{models.StatusApproved, models.StatusCancelled},
		{models.StatusComplete, models.StatusCancelled},
	}
	for _, tc := range allowed {
		if err := ValidateStatusTransition(tc[0], tc[1]); err != nil {
			t.Errorf("%s -> %s should be allowed: %v", tc[0], tc[1], err)
		}
	}
}

func TestValidateStatusTransitionDenied(t *testing.T) {
	denied := [][2]string{
		{models.StatusDraft, models.StatusApproved},
		{models.StatusDraft, models.StatusRejected},
		{models.StatusApproved, models.StatusRejected},
		{models.StatusApproved, models.StatusSubmitted},
		{models.StatusRejected, models.StatusApproved},
		{models.StatusComplete, models.StatusSubmitted},
		{models.StatusCancelled, models.StatusCancelled},
		{models.StatusCancelled, models.StatusSubmitted},
		{models.StatusSubmitted, models.StatusDraft},
	}
	for _, tc := range denied {
		if err := ValidateStatusTransition(tc[0], tc[1]); err == nil {
			t.Errorf("%s -> %s should be denied", tc[0], tc[1])
		}
	}
}

func TestValidateStatusTransitionUnknownTarget(t *testing.T) {
	if err := ValidateStatusTransition(models.StatusDraft, "ARCHIVED"); err == nil {
		t.Error("unknown target status should be rejected")
	}
}

func TestRejectionInfoRules(t *testing.T) {
	if !RequiresRejectionInfo(models.StatusRejected) {
		t.Error("rejecting must require rejection info")
	}
	if RequiresRejectionInfo(models.StatusApproved) {
		t.Error("approving must not require rejection info")
	}
	if !ClearsRejectionInfo(models.StatusApproved) {
		t.Error("approval must clear prior rejection info")
	}
	if !ClearsRejectionInfo(models.StatusSubmitted) {
		t.Error("resubmission must clear prior rejection info")
	}
	if ClearsRejectionInfo(models.StatusRejected) {
		t.Error("rejecting must keep the new rejection info")
	}
}
