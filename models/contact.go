package models

import "time"

// ContactMessage represents the contact_messages table (public contact
// form submissions).
type ContactMessage struct {
	MessageID      int        `gorm:"primaryKey;column:message_id" json:"message_id"`
	Name           string     `gorm:"column:name" json:"name"`
	Email          string     `gorm:"column:email" json:"email"`
	Phone          string     `gorm:"column:phone" json:"phone"`
	Subject        string     `gorm:"column:subject" json:"subject"`
	Message        string     `gorm:"column:message" json:"message"`
	RecaptchaScore *float64   `gorm:"column:recaptcha_score" json:"recaptcha_score,omitempty"`
	CreateAt       *time.Time `gorm:"column:create_at" json:"create_at"`
	DeleteAt       *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Relations
	Attachments []ContactAttachment `gorm:"foreignKey:MessageID" json:"attachments,omitempty"`
}

// ContactAttachment is a file uploaded alongside a contact message.
type ContactAttachment struct {
	AttachmentID int        `gorm:"primaryKey;column:attachment_id" json:"attachment_id"`
	MessageID    int        `gorm:"column:message_id" json:"message_id"`
	OriginalName string     `gorm:"column:original_name" json:"original_name"`
	StoredPath   string     `gorm:"column:stored_path" json:"stored_path"`
	FileSize     int64      `gorm:"column:file_size" json:"file_size"`
	CreateAt     *time.Time `gorm:"column:create_at" json:"create_at"`
}

// TableName overrides
func (ContactMessage) TableName() string {
	return "contact_messages"
}

func (ContactAttachment) TableName() string {
	return "contact_attachments"
}
