package types

import "github.com/GroSafe/ReportV1/internal/models"

// Status constants for API responses
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`            // One of the Status constants above
	Message string `json:"message,omitempty"` // Human-readable message
}

// ErrorResponse is the standard error payload
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// ReportConfirmation echoes every submitted field verbatim plus the
// translated text. Returned in log mode.
type ReportConfirmation struct {
	BaseResponse
	ReportID        uint     `json:"reportId,omitempty"`
	ReportTypes     []string `json:"reportTypes"`
	ConfidenceLevel int      `json:"confidenceLevel"`
	Platform        string   `json:"platform"`
	Times           string   `json:"times"`
	Frequency       string   `json:"frequency"`
	Details         string   `json:"details"` // transcript or typed free text
	TranslatedText  string   `json:"translatedText"`
	TargetLanguage  string   `json:"targetLanguage"`
	Anonymous       bool     `json:"anonymous"`
	ContactDetails  string   `json:"contactDetails,omitempty"`
}

// ReportListResponse for report history lists
type ReportListResponse struct {
	BaseResponse
	Reports []models.Report `json:"reports"`
	Count   int             `json:"count"` // Number of results in this response
	Total   int64           `json:"total"` // Total stored reports
	Offset  int             `json:"offset,omitempty"`
}

// SingleReportResponse for a single stored report
type SingleReportResponse struct {
	BaseResponse
	Report *models.Report `json:"report"`
}

// ReportTypesResponse lists the incident categories offered by the form
type ReportTypesResponse struct {
	BaseResponse
	ReportTypes []string `json:"reportTypes"`
}

// LanguagesResponse lists the supported translation target languages
type LanguagesResponse struct {
	BaseResponse
	Languages []string `json:"languages"`
}
