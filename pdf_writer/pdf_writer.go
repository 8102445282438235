package pdf_writer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"

	"img2pdf/contracts"
)

type Geometry = contracts.Geometry

const (
	footerFontFamily = "Helvetica"
	footerFontSize   = 10
)

// DocumentWriter appends image and error pages to a single PDF using the
// page geometry fixed at construction. Pages must be added in final order;
// the underlying document is stateful.
type DocumentWriter struct {
	pdf   *gofpdf.Fpdf
	tr    func(string) string
	geom  Geometry
	pages int
}

// NewDocumentWriter sets up an empty document in millimeter units. Margins
// and automatic page breaks are disabled so content and footer positions
// are controlled here.
func NewDocumentWriter(geom Geometry) *DocumentWriter {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{UnitStr: "mm"})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	return &DocumentWriter{
		pdf:  pdf,
		tr:   pdf.UnicodeTranslatorFromDescriptor(""),
		geom: geom,
	}
}

func (w *DocumentWriter) orientation() string {
	if w.geom.PageWidth > w.geom.PageHeight {
		return "L"
	}
	return "P"
}

// AddPage emits one page carrying content and a centered footer line.
func (w *DocumentWriter) AddPage(content contracts.PageContent, footer string) error {
	w.pdf.AddPageFormat(w.orientation(), gofpdf.SizeType{
		Wd: w.geom.PageWidth,
		Ht: w.geom.PageHeight,
	})
	w.pages++

	switch c := content.(type) {
	case contracts.ImageContent:
		w.drawImage(c)
	case contracts.ErrorContent:
		w.drawErrorLine(c.Message)
	default:
		return fmt.Errorf("unsupported page content %T", content)
	}
	w.drawFooter(footer)

	if w.pdf.Err() {
		return fmt.Errorf("adding page %d: %v", w.pages, w.pdf.Error())
	}
	return nil
}

func (w *DocumentWriter) drawImage(c contracts.ImageContent) {
	imgName := fmt.Sprintf("img_%d", w.pages-1)
	w.pdf.RegisterImageOptionsReader(
		imgName,
		gofpdf.ImageOptions{
			ImageType: c.Source.Format,
			ReadDpi:   false,
		},
		bytes.NewReader(c.Source.Data),
	)
	w.pdf.ImageOptions(
		imgName,
		c.Placement.X,
		c.Placement.Y,
		c.Placement.W,
		c.Placement.H,
		false,
		gofpdf.ImageOptions{
			ImageType: c.Source.Format,
			ReadDpi:   false,
		},
		0,
		"",
	)
}

func (w *DocumentWriter) drawErrorLine(msg string) {
	w.pdf.SetFont(footerFontFamily, "", footerFontSize)
	w.pdf.SetTextColor(255, 0, 0)
	w.pdf.SetXY(w.geom.Margin, w.geom.Margin)
	w.pdf.CellFormat(w.geom.PageWidth-2*w.geom.Margin, 8, w.tr(msg), "", 0, "L", false, 0, "")
}

func (w *DocumentWriter) drawFooter(footer string) {
	w.pdf.SetFont(footerFontFamily, "", footerFontSize)
	w.pdf.SetTextColor(128, 128, 128)
	text := w.tr(footer)
	x := (w.geom.PageWidth - w.pdf.GetStringWidth(text)) / 2
	w.pdf.Text(x, w.geom.PageHeight-w.geom.Margin, text)
}

// PageCount returns the number of pages added so far.
func (w *DocumentWriter) PageCount() int {
	return w.pages
}

// Output serializes the finished document. Nothing is written before this
// point, so a failed run leaves no partial artifact.
func (w *DocumentWriter) Output(dst io.Writer) error {
	if err := w.pdf.Output(dst); err != nil {
		return fmt.Errorf("error writing PDF: %v", err)
	}
	return nil
}

// OutputFile serializes the finished document to path.
func (w *DocumentWriter) OutputFile(path string) error {
	if err := w.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("error saving PDF file: %v", err)
	}
	return nil
}

// SetTitle records the document title in the PDF metadata.
func (w *DocumentWriter) SetTitle(title string) {
	w.pdf.SetTitle(title, true)
}
