package reports

import (
	"context"
	"log"

	"github.com/GroSafe/ReportV1/internal/models"
	"github.com/GroSafe/ReportV1/internal/services/reportlog"
	"github.com/GroSafe/ReportV1/internal/services/speech"
	"github.com/GroSafe/ReportV1/internal/services/synthesis"
	"github.com/GroSafe/ReportV1/internal/services/translation"
	apperrors "github.com/GroSafe/ReportV1/pkg/errors"
)

// Outcome is the result of one completed pipeline pass
type Outcome struct {
	// Transcript is the text that went into translation: the audio
	// transcription when audio was uploaded, the typed free text
	// otherwise.
	Transcript     string
	TranslatedText string
	// Audio is the synthesized MP3, set in audio mode only
	Audio []byte
	// Report is the stored history row, set in log mode only
	Report *models.Report
}

// ServiceOptions holds the injected collaborators for the pipeline.
// Synthesizer is required in audio mode; LogWriter and Repository in
// log mode.
type ServiceOptions struct {
	Transcriber    speech.Transcriber
	Translator     translation.Translator
	Synthesizer    synthesis.Synthesizer
	LogWriter      reportlog.Writer
	Repository     Repository
	SpeechLanguage string
}

// Service implements the ReportService interface
type Service struct {
	mode           Mode
	transcriber    speech.Transcriber
	translator     translation.Translator
	synthesizer    synthesis.Synthesizer
	logWriter      reportlog.Writer
	repo           Repository
	speechLanguage string
}

// NewService creates a new report pipeline service
func NewService(mode Mode, opts ServiceOptions) *Service {
	speechLanguage := opts.SpeechLanguage
	if speechLanguage == "" {
		speechLanguage = "en-US"
	}

	return &Service{
		mode:           mode,
		transcriber:    opts.Transcriber,
		translator:     opts.Translator,
		synthesizer:    opts.Synthesizer,
		logWriter:      opts.LogWriter,
		repo:           opts.Repository,
		speechLanguage: speechLanguage,
	}
}

// Mode returns the configured pipeline mode
func (s *Service) Mode() Mode {
	return s.mode
}

// Process runs one submission through the pipeline.
//
// An uploaded recording always replaces typed free text: the transcript
// overwrites the field, the two are never merged. The structured fields
// (report types, confidence, platform, times, frequency, anonymity)
// never influence which steps run; they are carried through to the
// outcome untouched.
func (s *Service) Process(ctx context.Context, submission *Submission) (*Outcome, error) {
	freeText := submission.FreeText

	if submission.HasAudio() {
		transcript, err := s.transcriber.Transcribe(ctx, submission.Audio, s.speechLanguage)
		if err != nil {
			log.Printf("[ERROR] Transcription failed: %v", err)
			return nil, apperrors.ExternalServiceError("speech-to-text", err)
		}
		// An empty transcript means no speech was detected; it still
		// replaces the typed text.
		freeText = transcript
	}

	translated, err := s.translator.Translate(ctx, freeText, submission.TargetLanguage)
	if err != nil {
		log.Printf("[ERROR] Translation to %q failed: %v", submission.TargetLanguage, err)
		return nil, apperrors.ExternalServiceError("translation", err)
	}

	outcome := &Outcome{
		Transcript:     freeText,
		TranslatedText: translated,
	}

	switch s.mode {
	case ModeAudio:
		audio, err := s.synthesizer.Synthesize(ctx, translated, submission.TargetLanguage)
		if err != nil {
			log.Printf("[ERROR] Synthesis failed: %v", err)
			return nil, apperrors.ExternalServiceError("text-to-speech", err)
		}
		outcome.Audio = audio

	case ModeLog:
		if err := s.logWriter.Append(freeText, translated); err != nil {
			log.Printf("[ERROR] Report log append failed: %v", err)
			return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "failed to append to report log")
		}

		report := &models.Report{
			ReportTypes:     submission.ReportTypes,
			ConfidenceLevel: submission.ConfidenceLevel,
			Platform:        submission.Platform,
			Times:           submission.Times,
			Frequency:       submission.Frequency,
			Transcript:      freeText,
			TranslatedText:  translated,
			TargetLanguage:  submission.TargetLanguage,
			Anonymous:       submission.Anonymous,
		}
		if !submission.Anonymous {
			report.ContactDetails = submission.ContactDetails
		}

		if err := s.repo.Create(ctx, report); err != nil {
			log.Printf("[ERROR] Failed to store report: %v", err)
			return nil, apperrors.DatabaseError("create report", err)
		}
		outcome.Report = report
	}

	return outcome, nil
}
