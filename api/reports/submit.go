package reports

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/GroSafe/ReportV1/api/types"
	reportsvc "github.com/GroSafe/ReportV1/internal/services/reports"
	apperrors "github.com/GroSafe/ReportV1/pkg/errors"
	"github.com/gin-gonic/gin"
)

// Submit handles report submissions
// @Summary      Submit an incident report
// @Description  Accepts a multipart form with structured incident fields plus free text or an uploaded
// @Description  WAV recording (16 kHz linear PCM). An uploaded recording is transcribed and replaces the
// @Description  typed free text. The report is then translated into the selected target language. In
// @Description  audio mode the response is the translated report as a downloadable MP3; in log mode the
// @Description  report is appended to the report log and a confirmation echoing every field is returned.
// @Tags         reports
// @Accept       multipart/form-data
// @Produce      json
// @Produce      audio/mpeg
// @Param        report_types     formData []string false "Incident categories"
// @Param        confidence_level formData int      false "Confidence level (0-100)"
// @Param        platform         formData string   false "Platform (e.g. Website, App)"
// @Param        times            formData string   false "Times (e.g. specific hours)"
// @Param        frequency        formData string   false "Frequency (e.g. Daily, Weekly)"
// @Param        free_text        formData string   false "Report details"
// @Param        target_language  formData string   true  "Translation target language code"
// @Param        submit_anonymous formData bool     false "Submit anonymously"
// @Param        contact_details  formData string   false "Contact details (ignored for anonymous reports)"
// @Param        audio_file       formData file     false "WAV recording of the report"
// @Success      200 {object} types.ReportConfirmation "Report recorded (log mode)"
// @Failure      400 {object} types.ErrorResponse "Invalid or missing submission field"
// @Failure      502 {object} types.ErrorResponse "Transcription, translation or synthesis service failed"
// @Router       /api/v1/reports [post]
func Submit(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.ReportService == nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{Error: "Report service not available"})
			return
		}

		submission, appErr := parseSubmission(c, deps)
		if appErr != nil {
			c.JSON(appErr.GetHTTPCode(), types.ErrorResponse{Error: appErr.Message, Code: string(appErr.Code)})
			return
		}

		outcome, err := deps.ReportService.Process(c.Request.Context(), submission)
		if err != nil {
			log.Printf("[ERROR] Report submission failed: %v", err)
			c.JSON(apperrors.GetHTTPCode(err), types.ErrorResponse{
				Error: "Failed to process report, please resubmit",
				Code:  string(apperrors.GetCode(err)),
			})
			return
		}

		if deps.ReportService.Mode() == reportsvc.ModeAudio {
			c.Header("Content-Disposition", `attachment; filename="translated_report.mp3"`)
			c.Data(http.StatusOK, "audio/mpeg", outcome.Audio)
			return
		}

		confirmation := types.ReportConfirmation{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Thank you for your report!",
			},
			ReportTypes:     submission.ReportTypes,
			ConfidenceLevel: submission.ConfidenceLevel,
			Platform:        submission.Platform,
			Times:           submission.Times,
			Frequency:       submission.Frequency,
			Details:         outcome.Transcript,
			TranslatedText:  outcome.TranslatedText,
			TargetLanguage:  submission.TargetLanguage,
			Anonymous:       submission.Anonymous,
		}
		if outcome.Report != nil {
			confirmation.ReportID = outcome.Report.ID
		}
		if !submission.Anonymous {
			confirmation.ContactDetails = submission.ContactDetails
		}

		c.JSON(http.StatusOK, confirmation)
	}
}

// parseSubmission validates the form fields and assembles a Submission.
// Validation failures stop the pipeline before any adapter is called.
func parseSubmission(c *gin.Context, deps *types.Dependencies) (*reportsvc.Submission, *apperrors.AppError) {
	targetLanguage := strings.TrimSpace(c.PostForm("target_language"))
	if targetLanguage == "" {
		return nil, apperrors.MissingFieldError("target_language")
	}
	if len(deps.SupportedLanguages) > 0 && !containsLanguage(deps.SupportedLanguages, targetLanguage) {
		return nil, apperrors.ValidationError("target_language", "unsupported language code")
	}

	confidence := 0
	if raw := c.PostForm("confidence_level"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 || v > 100 {
			return nil, apperrors.ValidationError("confidence_level", "must be an integer between 0 and 100")
		}
		confidence = v
	}

	reportTypes := c.PostFormArray("report_types")
	if len(reportTypes) == 0 {
		reportTypes = c.PostFormArray("report_types[]")
	}

	audio, appErr := readAudioUpload(c)
	if appErr != nil {
		return nil, appErr
	}

	anonymous := parseCheckbox(c.PostForm("submit_anonymous"))

	return &reportsvc.Submission{
		ReportTypes:     reportTypes,
		ConfidenceLevel: confidence,
		Platform:        c.PostForm("platform"),
		Times:           c.PostForm("times"),
		Frequency:       c.PostForm("frequency"),
		FreeText:        c.PostForm("free_text"),
		Audio:           audio,
		TargetLanguage:  targetLanguage,
		Anonymous:       anonymous,
		ContactDetails:  c.PostForm("contact_details"),
	}, nil
}

// readAudioUpload returns the uploaded recording's bytes, or nil when
// no file was attached. An attached but unreadable file is an input
// error.
func readAudioUpload(c *gin.Context) ([]byte, *apperrors.AppError) {
	fileHeader, err := c.FormFile("audio_file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, apperrors.ValidationError("audio_file", "could not read uploaded file")
	}
	if fileHeader.Filename == "" || fileHeader.Size == 0 {
		return nil, nil
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, apperrors.ValidationError("audio_file", "could not open uploaded file")
	}
	defer f.Close()

	audio, err := io.ReadAll(f)
	if err != nil {
		return nil, apperrors.ValidationError("audio_file", "could not read uploaded file")
	}

	return audio, nil
}

// parseCheckbox interprets HTML checkbox and boolean form values
func parseCheckbox(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}

func containsLanguage(languages []string, target string) bool {
	for _, l := range languages {
		if l == target {
			return true
		}
	}
	return false
}
