package models

import (
	"time"

	"gorm.io/gorm"
)

// ContactMessage is a message submitted through the public contact form.
// Reference is the public UUID handed back to the submitter; the numeric ID
// stays internal, and UserID is only set when the submitter was logged in.
// An admin reply fills Response, flips Responded and records
// when, after the reply email has actually been sent.
type ContactMessage struct {
	gorm.Model
	Reference   string `gorm:"size:36;uniqueIndex;not null"`
	UserID      *uint  `gorm:"index"`
	Name        string `gorm:"size:100"`
	Email       string `gorm:"size:255;not null;index"`
	Message     string `gorm:"type:text;not null"`
	Response    string `gorm:"type:text"`
	Responded   bool   `gorm:"not null;default:false;index"`
	RespondedAt *time.Time
}
