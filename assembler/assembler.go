package assembler

import (
	"fmt"

	"github.com/charmbracelet/log"

	"img2pdf/contracts"
	"img2pdf/layout"
)

type Batch = contracts.Batch
type Report = contracts.Report

// Assembler turns an ordered batch of images into pages of a document.
// It is stateless per run and preserves batch order: page i is item i.
type Assembler struct {
	geom   contracts.Geometry
	logger *log.Logger
}

func New(geom contracts.Geometry, logger *log.Logger) *Assembler {
	if logger == nil {
		logger = log.Default()
	}
	return &Assembler{geom: geom, logger: logger}
}

// Assemble emits one page per batch item into sink, strictly in order. A
// decode failure degrades that page to an error line and the run continues;
// a sink failure aborts the whole run and no document should be saved.
// Callers validate the batch beforehand (non-empty items, non-blank name).
func (a *Assembler) Assemble(batch *Batch, sink contracts.DocumentSink) (*Report, error) {
	total := len(batch.Items)
	report := &Report{
		Filename: batch.Filename,
		Pages:    make([]contracts.PageReport, 0, total),
	}

	for i, item := range batch.Items {
		footer := fmt.Sprintf("Page %d of %d", i+1, total)
		page := contracts.PageReport{Index: i, Name: item.Name, Footer: footer}

		var content contracts.PageContent
		src, err := decodeSource(item)
		if err != nil {
			msg := fmt.Sprintf("Could not load image %q", item.Name)
			a.logger.Warn("image degraded to error page", "name", item.Name, "err", err)
			content = contracts.ErrorContent{Message: msg}
			page.Err = msg
		} else {
			placement := layout.ComputePlacement(src.Width, src.Height, a.geom)
			content = contracts.ImageContent{Source: src, Placement: placement}
			page.Placement = &placement
			a.logger.Debug("placed image",
				"name", item.Name,
				"px", fmt.Sprintf("%dx%d", src.Width, src.Height),
				"mm", fmt.Sprintf("%.1fx%.1f", placement.W, placement.H))
		}

		if err := sink.AddPage(content, footer); err != nil {
			return nil, fmt.Errorf("emitting page %d: %w", i+1, err)
		}
		report.Pages = append(report.Pages, page)
	}

	if failed := report.Failed(); len(failed) == total && total > 0 {
		a.logger.Warn("every image failed to decode; document contains only error pages", "pages", total)
	}
	return report, nil
}
