package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/killallgit/catalog-api/internal/database"
	"github.com/killallgit/catalog-api/internal/models"
	"github.com/killallgit/catalog-api/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
	Long: `Manage the database schema for the Video Catalog API.

The schema is applied through GORM auto-migration: applying it is
additive and idempotent, so running it repeatedly is safe.

Available subcommands:
  up      - Apply the schema
  status  - Show which tables exist`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply the schema",
	Long: `Apply the database schema.

Creates or extends the videos, timestamps and timestamp_links tables to
match the current models. Existing data is left untouched.`,
	RunE: runMigrateUp,
}

// migrateStatusCmd shows which tables exist
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show schema status",
	Long:  `Display which of the expected tables exist in the configured database.`,
	RunE:  runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateUpCmd.Flags().Bool("dry-run", false, "list the tables that would be migrated without touching the database")
}

func schemaTables() []string {
	return []string{
		models.Video{}.TableName(),
		models.Timestamp{}.TableName(),
		models.TimestampLink{}.TableName(),
	}
}

func openDatabase() (*database.DB, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	db, err := database.Initialize(cfg.Database.Path, cfg.Database.LogQueries)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	return db, nil
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if dryRun {
		fmt.Println("Dry run mode - no changes will be made")
		fmt.Printf("Would migrate: %s\n", strings.Join(schemaTables(), ", "))
		return nil
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}

	fmt.Printf("Schema applied: %s\n", strings.Join(schemaTables(), ", "))
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	fmt.Println("Database Schema Status")
	fmt.Println(repeatString("=", 40))

	for _, table := range schemaTables() {
		state := "missing"
		if db.DB.Migrator().HasTable(table) {
			state = "present"
		}
		fmt.Printf("  %-20s %s\n", table, state)
	}

	return nil
}

// repeatString repeats a string n times
func repeatString(s string, n int) string {
	if n <= 0 {
		return ""
	}
	result := ""
	for i := 0; i < n; i++ {
		result += s
	}
	return result
}
