package pdf

// PageFlow tracks the vertical write cursor on the current page. The
// cursor advances downward from the top margin; EnsureSpace is the only
// pagination decision point and is called before every drawable block.
// One PageFlow is exclusively owned by one assembly run.
type PageFlow struct {
	doc *Document
	y   float64
}

// NewPageFlow creates a flow for doc. No page is allocated yet; every
// composed section starts with an explicit NewPage.
func NewPageFlow(doc *Document) *PageFlow {
	return &PageFlow{
		doc: doc,
		y:   doc.theme.Margin,
	}
}

// Y returns the current cursor position, measured from the page top
func (f *PageFlow) Y() float64 {
	return f.y
}

// SetY moves the cursor to an absolute position on the current page.
// Used by full-page title layouts that place content at the page center.
func (f *PageFlow) SetY(y float64) {
	f.y = y
}

// Limit returns the lowest position the cursor may reach on a page
func (f *PageFlow) Limit() float64 {
	return f.doc.theme.PageHeight - f.doc.theme.Margin
}

// EnsureSpace allocates a new page and resets the cursor when fewer than
// required points remain above the bottom margin. Otherwise it is a no-op.
func (f *PageFlow) EnsureSpace(required float64) {
	if f.y+required > f.Limit() {
		f.NewPage()
	}
}

// Advance moves the cursor down by consumed points
func (f *PageFlow) Advance(consumed float64) {
	f.y += consumed
}

// NewPage allocates a fresh page, draws the full-bleed background when
// the asset is available, and resets the cursor to the top margin. Each
// memory group and each conversation thread begins with a forced NewPage
// so no two sections share a partially filled page.
func (f *PageFlow) NewPage() {
	f.doc.pdf.AddPage()
	f.y = f.doc.theme.Margin

	if bg, ok := f.doc.Background(); ok {
		f.doc.DrawImage(bg, 0, 0, f.doc.theme.PageWidth, f.doc.theme.PageHeight)
	}
}
