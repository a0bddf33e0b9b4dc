package models

import (
	"time"
)

// Application status values. Transitions between them are enforced in
// services.ValidateStatusTransition.
const (
	StatusDraft       = "DRAFT"
	StatusSubmitted   = "SUBMITTED"
	StatusUnderReview = "UNDER_REVIEW"
	StatusApproved    = "APPROVED"
	StatusRejected    = "REJECTED"
	StatusComplete    = "COMPLETE"
	StatusCancelled   = "CANCELLED"
)

// Submitter roles (provenance of the record, not ownership).
const (
	RoleStudent    = 1
	RoleAgent      = 2
	RoleStaff      = 3
	RoleSuperAdmin = 4
)

// PersonalDetails groups identity fields of a student application.
type PersonalDetails struct {
	FullName    string     `gorm:"column:full_name" json:"full_name"`
	FatherName  string     `gorm:"column:father_name" json:"father_name"`
	MotherName  string     `gorm:"column:mother_name" json:"mother_name"`
	DateOfBirth *time.Time `gorm:"column:date_of_birth" json:"date_of_birth,omitempty"`
	Gender      string     `gorm:"column:gender" json:"gender"`
	NationalID  string     `gorm:"column:national_id" json:"national_id"`
	Category    string     `gorm:"column:category" json:"category"`
}

// ContactDetails groups reachability and permanent-address fields.
type ContactDetails struct {
	Email          string `gorm:"column:email" json:"email"`
	Phone          string `gorm:"column:phone" json:"phone"`
	AlternatePhone string `gorm:"column:alternate_phone" json:"alternate_phone"`
	Street         string `gorm:"column:street" json:"street"`
	City           string `gorm:"column:city" json:"city"`
	District       string `gorm:"column:district" json:"district"`
	State          string `gorm:"column:state" json:"state"`
	Pincode        string `gorm:"column:pincode" json:"pincode"`
	Country        string `gorm:"column:country" json:"country"`
}

// CourseDetails groups the course selection of the applicant.
type CourseDetails struct {
	College      string `gorm:"column:college" json:"college"`
	Course       string `gorm:"column:course" json:"course"`
	Stream       string `gorm:"column:stream" json:"stream"`
	Campus       string `gorm:"column:campus" json:"campus"`
	CustomCourse string `gorm:"column:custom_course" json:"custom_course"`
}

// GuardianDetails groups the guardian contact of the applicant.
type GuardianDetails struct {
	Name         string `gorm:"column:guardian_name" json:"name"`
	Relationship string `gorm:"column:guardian_relationship" json:"relationship"`
	Phone        string `gorm:"column:guardian_phone" json:"phone"`
	Email        string `gorm:"column:guardian_email" json:"email"`
}

// StudentApplication represents the students table.
type StudentApplication struct {
	StudentID     int    `gorm:"primaryKey;column:student_id" json:"student_id"`
	ApplicationID string `gorm:"column:application_id;unique" json:"application_id"`
	Session       string `gorm:"column:session" json:"session"`
	Status        string `gorm:"column:status" json:"status"`

	PersonalDetails PersonalDetails `gorm:"embedded" json:"personal_details"`
	ContactDetails  ContactDetails  `gorm:"embedded" json:"contact_details"`
	CourseDetails   CourseDetails   `gorm:"embedded" json:"course_details"`
	GuardianDetails GuardianDetails `gorm:"embedded" json:"guardian_details"`

	// Rejection info, present only while status is REJECTED.
	RejectionReason  string `gorm:"column:rejection_reason" json:"rejection_reason,omitempty"`
	RejectionMessage string `gorm:"column:rejection_message" json:"rejection_message,omitempty"`

	SubmitterRole int    `gorm:"column:submitter_role" json:"submitter_role"`
	ReferredBy    string `gorm:"column:referred_by" json:"referred_by"`
	CreatedBy     int    `gorm:"column:created_by" json:"created_by"`

	SubmittedAt *time.Time `gorm:"column:submitted_at" json:"submitted_at,omitempty"`
	CreateAt    *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt    *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt    *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	Documents        []StudentDocument `gorm:"foreignKey:StudentID" json:"documents,omitempty"`
	RejectionDetails []RejectionDetail `gorm:"foreignKey:StudentID" json:"rejection_details,omitempty"`
}

// RejectionDetail is one itemized issue attached to a REJECTED application.
// Rows exist only while the application is REJECTED; resubmission and
// approval clear them.
type RejectionDetail struct {
	RejectionDetailID int        `gorm:"primaryKey;column:rejection_detail_id" json:"rejection_detail_id"`
	StudentID         int        `gorm:"column:student_id" json:"student_id"`
	Issue             string     `gorm:"column:issue" json:"issue"`
	DocumentType      string     `gorm:"column:document_type" json:"document_type"`
	ActionRequired    string     `gorm:"column:action_required" json:"action_required"`
	Priority          string     `gorm:"column:priority" json:"priority"`
	SpecificFeedback  string     `gorm:"column:specific_feedback" json:"specific_feedback"`
	CreateAt          *time.Time `gorm:"column:create_at" json:"create_at"`
}

// StudentStatusHistory records every status transition of an application.
type StudentStatusHistory struct {
	HistoryID  int        `gorm:"primaryKey;column:history_id" json:"history_id"`
	StudentID  int        `gorm:"column:student_id" json:"student_id"`
	FromStatus string     `gorm:"column:from_status" json:"from_status"`
	ToStatus   string     `gorm:"column:to_status" json:"to_status"`
	Notes      string     `gorm:"column:notes" json:"notes"`
	ChangedBy  int        `gorm:"column:changed_by" json:"changed_by"`
	CreateAt   *time.Time `gorm:"column:create_at" json:"create_at"`
}

// TableName overrides
func (StudentApplication) TableName() string {
	return "students"
}

func (RejectionDetail) TableName() string {
	return "rejection_details"
}

func (StudentStatusHistory) TableName() string {
	return "student_status_history"
}

// IsTerminal reports whether no further transitions are modeled from the
// given status.
func IsTerminal(status string) bool {
	return status == StatusComplete || status == StatusCancelled
}

// ValidPriority reports whether p is an accepted rejection-detail priority.
func ValidPriority(p string) bool {
	return p == "High" || p == "Medium" || p == "Low"
}
