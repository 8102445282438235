// Package cli implements the img2pdf command-line interface.
//
// The assemble command turns an ordered list of image files into a single
// multi-page PDF, one image per page, fitted to the page content box with a
// "Page i of N" footer. The serve command exposes the same assembly over
// HTTP for browser callers. Both support --verbose (-v) debug logging via
// charmbracelet/log; the logger travels on the command context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the img2pdf CLI and returns an error if any command fails.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "img2pdf",
		Short:        "img2pdf assembles ordered image batches into a single PDF",
		Long:         `img2pdf takes a set of images in a chosen order and produces one multi-page PDF: each image on its own page, scaled to fit with margins and a page-number footer.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newAssembleCmd())
	root.AddCommand(newServeCmd())

	return root.ExecuteContext(context.Background())
}
