package cmd

import (
	"fmt"
	"os"

	"github.com/killallgit/catalog-api/pkg/config"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "catalog-api",
	Short: "Video Catalog API server",
	Long: `Video Catalog API - A cataloging and annotation service for YouTube videos

This API registers videos by URL, keeps user-curated metadata alongside
the source metadata, and manages timeline annotations: bookmarks on a
video's timeline and shareable timestamp links that resolve by token.

Features:
  • URL canonicalization for every YouTube link form
  • Source metadata lookup via the Data API or the oEmbed fallback
  • Paginated, filtered catalog listing with aggregate statistics
  • Timeline bookmarks with pluggable persistence
  • Shareable timestamp links with embed codes`,
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
	// Set up configuration loading with lazy initialization
	cobra.OnInitialize(loadConfig)
}

// loadConfig loads the configuration when a command needs it
// This is called lazily only when a command that needs config runs
func loadConfig() {
	// Skip config loading for commands that don't need it
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	// Initialize the configuration
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
