package cmd

import (
	"fmt"
	"os"

	"github.com/GroSafe/ReportV1/pkg/config"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "report-api",
	Short: "GroSafe Incident Report API server",
	Long: `GroSafe Incident Report API - an incident reporting service

This API accepts incident reports submitted as structured form fields with
free text or an uploaded audio recording, transcribes audio to text,
translates the report into a selected target language, and either returns
the translation as synthesized speech or records it in the report log.

Features:
  • Speech-to-text transcription of uploaded WAV recordings
  • Report translation with automatic source language detection
  • Translated report playback as downloadable MP3
  • Append-only CSV report log with full download
  • Searchable report history`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// NewRootCmd creates a new root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(loadConfig)
}

// loadConfig loads the configuration when a command needs it.
// Version and help never touch config, so they skip initialization.
func loadConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
