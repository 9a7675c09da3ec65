package reports

import "fmt"

// Mode selects what the pipeline does after translation.
type Mode string

const (
	// ModeAudio synthesizes the translated report and returns it as a
	// downloadable recording.
	ModeAudio Mode = "audio"
	// ModeLog appends the report to the report log, stores it in the
	// history store and returns a confirmation.
	ModeLog Mode = "log"
)

// ParseMode converts a configuration string into a Mode
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeAudio:
		return ModeAudio, nil
	case ModeLog:
		return ModeLog, nil
	default:
		return "", fmt.Errorf("unknown reporting mode %q", s)
	}
}

// ReportTypeOptions are the incident categories offered by the form.
var ReportTypeOptions = []string{
	"Suspicious Behavior",
	"Illegal Content",
	"Request to Move to Private Channel",
}

// Submission is one incoming report. It lives for a single pipeline
// pass and is discarded once the outcome is produced; only the report
// log and the history store outlive it.
type Submission struct {
	ReportTypes     []string
	ConfidenceLevel int
	Platform        string
	Times           string
	Frequency       string
	FreeText        string
	Audio           []byte
	TargetLanguage  string
	Anonymous       bool
	ContactDetails  string
}

// HasAudio reports whether a non-empty audio payload was uploaded
func (s *Submission) HasAudio() bool {
	return len(s.Audio) > 0
}
