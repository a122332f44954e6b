package cmd

import (
	"errors"
	"fmt"

	"github.com/nfrund/farays/internal/content"
	"github.com/nfrund/farays/internal/storage"
	"github.com/spf13/cobra"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Validate or export the site content",
	Long: `The site's text, menu and image lists live in YAML files. They are compiled
into the server, and can be overridden at run time with CONTENT_DIR.

Available subcommands:
  validate  Load and validate the content, reporting every problem
  export    Write the embedded content files to a directory for editing

Examples:
  farays-cli content export ./content
  farays-cli content validate --content-dir ./content`,
}

var contentValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load and validate the content",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog(cmd.Context())
		if err != nil {
			var verr *content.ValidationError
			if errors.As(err, &verr) {
				for _, p := range verr.Problems {
					fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", p)
				}
			}
			return err
		}
		source := "embedded content"
		if contentDir != "" {
			source = contentDir
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d menu categories, %d dishes, %d gallery images, %d testimonials\n",
			source, len(cat.Menu.Categories), cat.ItemCount(), len(cat.Gallery.Images), len(cat.Testimonials.Items))
		return nil
	},
}

var contentExportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Write the embedded content files to a directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		copied, err := storage.Copy(cmd.Context(), storage.NewDirStore(args[0]), content.Embedded(), "*.yaml")
		if err != nil {
			return fmt.Errorf("export content: %w", err)
		}
		for _, f := range copied {
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", f)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set CONTENT_DIR=%s to serve the exported files.\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(contentCmd)
	contentCmd.AddCommand(contentValidateCmd)
	contentCmd.AddCommand(contentExportCmd)
}
