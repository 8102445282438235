package cli

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"img2pdf/assembler"
	"img2pdf/files_manager"
	"img2pdf/pdf_writer"
)

func newAssembleCmd() *cobra.Command {
	var (
		inputDir   string
		outputDir  string
		name       string
		moves      []string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "assemble [images...]",
		Short: "Assemble images into a single paginated PDF",
		Long: `Assemble produces one PDF page per input image, in the order given.
Positional arguments are taken as image files in page order; --input adds
the supported images of a directory (name-sorted) before them. Use --move
to reorder pages before assembly.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			start := time.Now()

			geom, err := loadGeometry(configPath)
			if err != nil {
				return err
			}

			base, err := files_manager.NormalizeFilename(name)
			if err != nil {
				return err
			}

			paths := args
			if inputDir != "" {
				scanned, size, err := files_manager.GetImagePaths(inputDir)
				if err != nil {
					return fmt.Errorf("scanning %s: %w", inputDir, err)
				}
				logger.Debug("scanned input directory", "dir", inputDir, "files", len(scanned), "bytes", size)
				paths = append(scanned, args...)
			}

			batch, err := files_manager.LoadBatch(paths, base)
			if err != nil {
				return err
			}
			for _, mv := range moves {
				from, to, err := parseMove(mv)
				if err != nil {
					return err
				}
				batch.Items, err = files_manager.MoveItem(batch.Items, from, to)
				if err != nil {
					return err
				}
			}

			if err := files_manager.ValidateBatch(batch); err != nil {
				return err
			}

			dw := pdf_writer.NewDocumentWriter(geom)
			dw.SetTitle(base)
			report, err := assembler.New(geom, logger).Assemble(batch, dw)
			if err != nil {
				return err
			}

			outPath := filepath.Join(outputDir, base+".pdf")
			if err := dw.OutputFile(outPath); err != nil {
				return err
			}

			logger.Info("PDF written",
				"path", outPath,
				"pages", len(report.Pages),
				"failed", len(report.Failed()),
				"took", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().StringVarP(&inputDir, "input", "i", "", "directory of images to include, sorted by name")
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "directory the PDF is written to")
	cmd.Flags().StringVarP(&name, "name", "n", "", "output filename (without .pdf)")
	cmd.Flags().StringArrayVar(&moves, "move", nil, "reorder pages before assembly, as from:to (0-based, repeatable)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML page geometry config")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func parseMove(s string) (from, to int, err error) {
	fromStr, toStr, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid --move %q, expected from:to", s)
	}
	from, err = strconv.Atoi(fromStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --move %q: %w", s, err)
	}
	to, err = strconv.Atoi(toStr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --move %q: %w", s, err)
	}
	return from, to, nil
}
