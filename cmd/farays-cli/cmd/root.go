package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/nfrund/farays/internal/content"
	"github.com/spf13/cobra"
)

var contentDir string

var rootCmd = &cobra.Command{
	Use:   "farays-cli",
	Short: "Fa-Rays CLI tool",
	Long: `farays-cli is the command-line companion to the Fa-Rays restaurant site.

Available commands:
  slots      Show reservation time slots, party sizes and open dates
  menu       List menu categories, a category's dishes, or search the menu
  content    Validate or export the site content
  topics     List the events published on the in-process bus
  reserve    Walk through the reservation wizard in the terminal

Use "farays-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&contentDir, "content-dir", os.Getenv("CONTENT_DIR"),
		"Directory of content YAML files (defaults to the embedded content)")
}

// loadCatalog reads the catalog from --content-dir, or the embedded content.
func loadCatalog(ctx context.Context) (*content.Catalog, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return content.NewLoader(content.NewStore(contentDir), logger).Load(ctx)
}
