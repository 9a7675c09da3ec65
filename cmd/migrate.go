package cmd

import (
	"fmt"

	"github.com/GroSafe/ReportV1/internal/database"
	"github.com/GroSafe/ReportV1/internal/models"
	"github.com/GroSafe/ReportV1/pkg/config"
	"github.com/spf13/cobra"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Apply database schema migrations for the Incident Report API.

The report history store uses GORM auto-migration: running this command
creates or updates the reports table to match the current model. The
append-only CSV report log is not managed by migrations.`,
	RunE: runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.Flags().Bool("verbose", false, "log all executed SQL statements")
}

func runMigrate(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, err := config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := database.Initialize(cfg.Database.Path, verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.AutoMigrate(&models.Report{}); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Database migrated: %s\n", cfg.Database.Path)
	return nil
}
