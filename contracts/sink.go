package contracts

// PageContent is what a single page carries: either a placed image or an
// error line standing in for one. The emission loop dispatches on the
// variant; both share the same footer handling.
type PageContent interface {
	pageContent()
}

// ImageContent places a decoded image on the page.
type ImageContent struct {
	Source    *SourceImage
	Placement Placement
}

// ErrorContent replaces an image that could not be loaded.
type ErrorContent struct {
	Message string
}

func (ImageContent) pageContent() {}
func (ErrorContent) pageContent() {}

// DocumentSink appends pages in order to a document under construction.
// Implementations are stateful; pages must be added in final page order.
type DocumentSink interface {
	AddPage(content PageContent, footer string) error
	PageCount() int
}
