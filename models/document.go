package models

import "time"

// Document review status values.
const (
	DocPending  = "PENDING"
	DocApproved = "APPROVED"
	DocRejected = "REJECTED"
)

// StudentDocument represents the student_documents table. A document is
// owned by exactly one student application and is never shared.
type StudentDocument struct {
	DocumentID   int        `gorm:"primaryKey;column:document_id" json:"document_id"`
	StudentID    int        `gorm:"column:student_id" json:"student_id"`
	DocumentType string     `gorm:"column:document_type" json:"document_type"`
	FileName     string     `gorm:"column:file_name" json:"file_name"`
	FilePath     string     `gorm:"column:file_path" json:"file_path"`
	MimeType     string     `gorm:"column:mime_type" json:"mime_type"`
	FileSize     int64      `gorm:"column:file_size" json:"file_size"`
	Status       string     `gorm:"column:status" json:"status"`
	ReviewNote   string     `gorm:"column:review_note" json:"review_note,omitempty"`
	UploadedBy   int        `gorm:"column:uploaded_by" json:"uploaded_by"`
	UploadedAt   *time.Time `gorm:"column:uploaded_at" json:"uploaded_at"`
	CreateAt     *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt     *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt     *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

// DocumentType represents the document_types reference table used to
// classify uploads (Photo, Marksheet, Transfer Certificate, ...).
type DocumentType struct {
	DocumentTypeID   int        `gorm:"primaryKey;column:document_type_id" json:"document_type_id"`
	DocumentTypeName string     `gorm:"column:document_type_name" json:"document_type_name"`
	Code             string     `gorm:"column:code" json:"code"`
	Required         bool       `gorm:"column:required" json:"required"`
	DisplayOrder     int        `gorm:"column:display_order" json:"display_order"`
	CreateAt         *time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt         *time.Time `gorm:"column:update_at" json:"update_at"`
	DeleteAt         *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

// TableName overrides
func (StudentDocument) TableName() string {
	return "student_documents"
}

func (DocumentType) TableName() string {
	return "document_types"
}
