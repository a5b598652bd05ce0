package pdf

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/go-pdf/fpdf"
	"github.com/secmon-lab/yearbound/pkg/domain/interfaces"
	"github.com/secmon-lab/yearbound/pkg/utils/logging"
)

// EmbeddedImage is a raster image registered with the document, ready to
// be drawn at any size
type EmbeddedImage struct {
	name   string
	opts   fpdf.ImageOptions
	width  float64
	height float64
}

// Width returns the intrinsic width in document units
func (e *EmbeddedImage) Width() float64 {
	return e.width
}

// Height returns the intrinsic height in document units
func (e *EmbeddedImage) Height() float64 {
	return e.height
}

// AspectRatio returns width over height
func (e *EmbeddedImage) AspectRatio() float64 {
	return e.width / e.height
}

// Resolver fetches remote images and embeds them into a document. A
// failure to fetch or decode one image never aborts composition; the
// caller draws a placeholder in the image's reserved slot instead.
type Resolver struct {
	doc     *Document
	fetcher interfaces.ImageFetcher
}

// NewResolver creates a resolver embedding into doc
func NewResolver(doc *Document, fetcher interfaces.ImageFetcher) *Resolver {
	return &Resolver{
		doc:     doc,
		fetcher: fetcher,
	}
}

// Resolve fetches sourceURL and embeds it as PNG or JPEG. The decoder is
// chosen by file-extension hint; without a hint, JPEG is tried first,
// then PNG.
func (r *Resolver) Resolve(ctx context.Context, sourceURL string) (*EmbeddedImage, error) {
	data, err := r.fetcher.Fetch(ctx, sourceURL)
	if err != nil {
		return nil, goerr.Wrap(err, "image fetch failed", goerr.V("url", sourceURL))
	}
	if len(data) == 0 {
		return nil, goerr.New("empty image data received", goerr.V("url", sourceURL))
	}

	name := r.doc.nextImageName()
	lower := strings.ToLower(sourceURL)

	switch {
	case strings.HasSuffix(lower, ".png"):
		return r.doc.registerImage(name, "PNG", data)
	case strings.HasSuffix(lower, ".jpg"), strings.HasSuffix(lower, ".jpeg"):
		return r.doc.registerImage(name, "JPG", data)
	}

	// No usable extension hint: try JPEG, then PNG.
	img, jpgErr := r.doc.registerImage(name+"-jpg", "JPG", data)
	if jpgErr == nil {
		return img, nil
	}

	img, pngErr := r.doc.registerImage(name+"-png", "PNG", data)
	if pngErr == nil {
		return img, nil
	}

	logging.From(ctx).Debug("image decode failed for both formats",
		"url", sourceURL,
		"jpegError", jpgErr.Error(),
		"pngError", pngErr.Error())

	return nil, goerr.Wrap(pngErr, "image is neither valid JPEG nor PNG", goerr.V("url", sourceURL))
}
