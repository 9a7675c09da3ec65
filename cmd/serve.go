package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/GroSafe/ReportV1/api"
	"github.com/GroSafe/ReportV1/api/types"
	"github.com/GroSafe/ReportV1/internal/database"
	"github.com/GroSafe/ReportV1/internal/models"
	"github.com/GroSafe/ReportV1/internal/services/reportlog"
	"github.com/GroSafe/ReportV1/internal/services/reports"
	"github.com/GroSafe/ReportV1/internal/services/speech"
	"github.com/GroSafe/ReportV1/internal/services/synthesis"
	"github.com/GroSafe/ReportV1/internal/services/translation"
	"github.com/GroSafe/ReportV1/pkg/config"
	"github.com/spf13/cobra"
)

var (
	serverHost string
	serverPort int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the Incident Report API server with the configured settings.

The server accepts report submissions, transcribes uploaded audio,
translates report text and, depending on the configured reporting mode,
responds with synthesized speech or appends to the report log.

Example:
  report-api serve
  report-api serve --port 9090
  report-api serve --host 0.0.0.0 --port 8080`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Server flags
	serveCmd.Flags().StringVar(&serverHost, "host", "", "server host (overrides config)")
	serveCmd.Flags().IntVar(&serverPort, "port", 0, "server port (overrides config)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if serverHost == "" {
		serverHost = cfg.Server.Host
	}
	if serverPort == 0 {
		serverPort = cfg.Server.Port
	}

	deps, cleanup, err := buildDependencies(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	address := fmt.Sprintf("%s:%d", serverHost, serverPort)
	server := api.NewServer(address)
	server.SetDependencies(deps)

	if err := server.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	log.Printf("[INFO] Starting Incident Report API server on %s (mode: %s)", address, cfg.Reporting.Mode)

	// Channel to listen for interrupt signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Channel to receive server errors
	serverErr := make(chan error, 1)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
	}()

	// Wait for interrupt signal or server error
	select {
	case <-stop:
		log.Println("[INFO] Shutting down server...")
	case err := <-serverErr:
		log.Printf("[ERROR] %v", err)
		log.Println("[INFO] Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("[ERROR] Server forced to shutdown: %v", err)
		return err
	}

	log.Println("[INFO] Server gracefully stopped")
	return nil
}

// buildDependencies constructs the adapters and services the handlers need.
// The synthesizer is only created in audio mode; the report log and store
// only in log mode.
func buildDependencies(ctx context.Context, cfg *config.Config) (*types.Dependencies, func(), error) {
	if ctx == nil {
		ctx = context.Background()
	}

	deps := &types.Dependencies{}
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	transcriber, err := speech.NewGoogleTranscriber(ctx, cfg.Speech.CredentialsFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create transcription client: %w", err)
	}
	closers = append(closers, func() {
		if err := transcriber.Close(); err != nil {
			log.Printf("[WARN] Failed to close transcription client: %v", err)
		}
	})

	translator, err := translation.NewGoogleTranslator(ctx, cfg.Translation.CredentialsFile)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create translation client: %w", err)
	}
	closers = append(closers, func() {
		if err := translator.Close(); err != nil {
			log.Printf("[WARN] Failed to close translation client: %v", err)
		}
	})

	mode, err := reports.ParseMode(cfg.Reporting.Mode)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	var synthesizer synthesis.Synthesizer
	var logWriter reportlog.Writer
	var repo reports.Repository

	switch mode {
	case reports.ModeAudio:
		ttsClient, err := synthesis.NewGoogleSynthesizer(ctx, cfg.Synthesis.CredentialsFile)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to create synthesis client: %w", err)
		}
		closers = append(closers, func() {
			if err := ttsClient.Close(); err != nil {
				log.Printf("[WARN] Failed to close synthesis client: %v", err)
			}
		})
		synthesizer = ttsClient

	case reports.ModeLog:
		logWriter = reportlog.NewCSVWriter(cfg.Reporting.LogPath)

		db, err := database.Initialize(cfg.Database.Path, cfg.Database.LogQueries)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		closers = append(closers, func() {
			if err := db.Close(); err != nil {
				log.Printf("[WARN] Failed to close database: %v", err)
			}
		})
		if err := db.AutoMigrate(&models.Report{}); err != nil {
			cleanup()
			return nil, nil, err
		}
		deps.DB = db
		repo = reports.NewRepository(db.DB)
		deps.ReportStore = repo
	}

	deps.ReportService = reports.NewService(mode, reports.ServiceOptions{
		Transcriber:    transcriber,
		Translator:     translator,
		Synthesizer:    synthesizer,
		LogWriter:      logWriter,
		Repository:     repo,
		SpeechLanguage: cfg.Speech.Language,
	})
	deps.ReportLogPath = cfg.Reporting.LogPath
	deps.ReportMode = mode
	deps.SupportedLanguages = cfg.Translation.SupportedTargets

	return deps, cleanup, nil
}
