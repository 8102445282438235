package contracts

// Item is one raw input unit of a run: the bytes the caller handed over,
// the name to report in error pages, and the declared MIME type.
type Item struct {
	Name string
	Data []byte
	MIME string
}

// Batch is the ordered input of a single run. Page order follows item order;
// any reordering has to happen before the batch reaches the assembler.
type Batch struct {
	Items    []Item
	Filename string
}

// SourceImage is a decoded and normalized image ready for embedding.
// Width and Height are pixel dimensions after EXIF orientation is applied.
// Format is the gofpdf image type ("JPEG", "PNG" or "GIF").
type SourceImage struct {
	Name   string
	Data   []byte
	Width  int
	Height int
	Format string
}

// Geometry describes the target page in millimeters. Constant across all
// pages of one run.
type Geometry struct {
	PageWidth     float64
	PageHeight    float64
	Margin        float64
	FooterReserve float64
}

// Placement is the computed position and size of an image on its page,
// in page units.
type Placement struct {
	X float64
	Y float64
	W float64
	H float64
}

// PageReport records the outcome of one emitted page.
type PageReport struct {
	Index     int
	Name      string
	Footer    string
	Placement *Placement
	Err       string
}

type Report struct {
	Filename string
	Pages    []PageReport
}

// Failed returns the reports of pages that degraded to an error line.
func (r *Report) Failed() []PageReport {
	var failed []PageReport
	for _, p := range r.Pages {
		if p.Err != "" {
			failed = append(failed, p)
		}
	}
	return failed
}
