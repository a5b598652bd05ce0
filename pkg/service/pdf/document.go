package pdf

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/yearbound/pkg/service/assets"
)

const (
	displayFontFamily = "display"
	fallbackFamily    = "Times"

	backgroundImageName = "page-background"
	bannerImageName     = "title-banner"
	frameImageName      = "torn-paper"
)

// Font describes the display font selected for the document: either the
// embedded custom font from the asset library, or a built-in standard
// font when the asset is missing or unparsable. The selection is a
// capability check, not exception-driven control flow, and never fails.
type Font struct {
	Family   string
	Embedded bool
}

// Document wraps the underlying PDF object model. It owns font selection
// and image registration; the composers draw through it.
type Document struct {
	pdf    *fpdf.Fpdf
	theme  *Theme
	assets *assets.Library
	font   Font

	imageSeq int

	background  *EmbeddedImage
	titleBanner *EmbeddedImage
	tornPaper   *EmbeddedImage
}

// NewDocument creates an empty document with the theme's page geometry
// and selects the display font.
func NewDocument(lib *assets.Library, theme *Theme) *Document {
	doc := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size: fpdf.SizeType{
			Wd: theme.PageWidth,
			Ht: theme.PageHeight,
		},
	})

	d := &Document{
		pdf:    doc,
		theme:  theme,
		assets: lib,
	}
	d.font = d.selectFont()

	return d
}

func (d *Document) selectFont() Font {
	fontBytes, ok := d.assets.DisplayFont()
	if ok {
		// Register the same face for regular and bold, matching the
		// single-face display font asset.
		d.pdf.AddUTF8FontFromBytes(displayFontFamily, "", fontBytes)
		d.pdf.AddUTF8FontFromBytes(displayFontFamily, "B", fontBytes)
		if !d.pdf.Err() {
			return Font{Family: displayFontFamily, Embedded: true}
		}
		d.pdf.ClearError()
	}

	return Font{Family: fallbackFamily, Embedded: false}
}

// Font returns the selected display font
func (d *Document) Font() Font {
	return d.font
}

// SetFont activates the display font at the given style and size
func (d *Document) SetFont(style string, size float64) {
	d.pdf.SetFont(d.font.Family, style, size)
}

// TextWidth measures s in the currently active font
func (d *Document) TextWidth(s string) float64 {
	return d.pdf.GetStringWidth(s)
}

// Text draws s with its baseline at (x, y)
func (d *Document) Text(x, y float64, s string) {
	d.pdf.Text(x, y, s)
}

// SetTextColor sets the text color
func (d *Document) SetTextColor(c RGB) {
	d.pdf.SetTextColor(c.R, c.G, c.B)
}

// FillRect draws a filled, bordered rectangle
func (d *Document) FillRect(x, y, w, h float64, fill, border RGB, borderWidth float64) {
	d.pdf.SetFillColor(fill.R, fill.G, fill.B)
	d.pdf.SetDrawColor(border.R, border.G, border.B)
	d.pdf.SetLineWidth(borderWidth)
	d.pdf.Rect(x, y, w, h, "FD")
}

// registerImage embeds raster bytes under name. imageType is the fpdf
// decoder hint, "JPG" or "PNG". Registration failure leaves the document
// error state untouched.
func (d *Document) registerImage(name, imageType string, data []byte) (*EmbeddedImage, error) {
	opts := fpdf.ImageOptions{ImageType: imageType}
	info := d.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if d.pdf.Err() {
		err := d.pdf.Error()
		d.pdf.ClearError()
		return nil, goerr.Wrap(err, "failed to decode image",
			goerr.V("name", name),
			goerr.V("type", imageType))
	}
	if info == nil {
		return nil, goerr.New("image registration returned no info", goerr.V("name", name))
	}

	return &EmbeddedImage{
		name:   name,
		opts:   opts,
		width:  info.Width(),
		height: info.Height(),
	}, nil
}

// Background returns the registered page background image, embedding it
// on first use. Missing or undecodable assets yield false: pages are then
// left plain.
func (d *Document) Background() (*EmbeddedImage, bool) {
	if d.background == nil {
		data, ok := d.assets.Background()
		if !ok {
			return nil, false
		}
		img, err := d.registerImage(backgroundImageName, "JPG", data)
		if err != nil {
			return nil, false
		}
		d.background = img
	}
	return d.background, true
}

// TitleBanner returns the registered memory title banner image
func (d *Document) TitleBanner() (*EmbeddedImage, bool) {
	if d.titleBanner == nil {
		data, ok := d.assets.TitleBanner()
		if !ok {
			return nil, false
		}
		img, err := d.registerImage(bannerImageName, "PNG", data)
		if err != nil {
			return nil, false
		}
		d.titleBanner = img
	}
	return d.titleBanner, true
}

// TornPaper returns the registered torn-paper frame image
func (d *Document) TornPaper() (*EmbeddedImage, bool) {
	if d.tornPaper == nil {
		data, ok := d.assets.TornPaper()
		if !ok {
			return nil, false
		}
		img, err := d.registerImage(frameImageName, "PNG", data)
		if err != nil {
			return nil, false
		}
		d.tornPaper = img
	}
	return d.tornPaper, true
}

func (d *Document) nextImageName() string {
	d.imageSeq++
	return fmt.Sprintf("memory-image-%d", d.imageSeq)
}

// DrawImage places a registered image at (x, y) with the given size
func (d *Document) DrawImage(img *EmbeddedImage, x, y, w, h float64) {
	d.pdf.ImageOptions(img.name, x, y, w, h, false, img.opts, 0, "")
}

// PageCount returns the number of pages added so far
func (d *Document) PageCount() int {
	return d.pdf.PageCount()
}

// Output renders the document to bytes
func (d *Document) Output() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, goerr.Wrap(err, "failed to render document")
	}
	return buf.Bytes(), nil
}
