package models

import (
	"time"

	"gorm.io/gorm"
)

// Report represents one processed submission in the report history store.
// Transcript holds the free text that went into translation (the uploaded
// audio's transcription when one was supplied, the typed text otherwise).
type Report struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	ReportTypes     []string       `gorm:"serializer:json" json:"report_types"`
	ConfidenceLevel int            `json:"confidence_level"`
	Platform        string         `json:"platform"`
	Times           string         `json:"times"`
	Frequency       string         `json:"frequency"`
	Transcript      string         `gorm:"type:text" json:"transcript"`
	TranslatedText  string         `gorm:"type:text" json:"translated_text"`
	TargetLanguage  string         `json:"target_language"`
	Anonymous       bool           `json:"anonymous"`
	ContactDetails  string         `json:"contact_details,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for Report
func (Report) TableName() string {
	return "reports"
}
