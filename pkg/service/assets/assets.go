package assets

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
)

// Well-known file names inside the assets directory.
const (
	backgroundFile  = "background.jpg"
	titleBannerFile = "title.png"
	tornPaperFile   = "torn-paper.png"
	displayFontFile = "display.ttf"
)

// Library serves the decorative assets drawn into generated documents and
// the static base yearbook that personalized pages are appended to.
// Decorative assets are optional: a missing file degrades the output
// (plain background, no banner) but never fails generation. The base
// document is required at merge time.
type Library struct {
	dir          string
	baseDocument string

	background  []byte
	titleBanner []byte
	tornPaper   []byte
	displayFont []byte
}

// New loads the optional decorative assets from dir. baseDocument is the
// file name of the static yearbook PDF within dir, read lazily by
// BaseDocument.
func New(dir, baseDocument string) *Library {
	lib := &Library{
		dir:          dir,
		baseDocument: baseDocument,
	}

	if dir != "" {
		lib.background = readOptional(filepath.Join(dir, backgroundFile))
		lib.titleBanner = readOptional(filepath.Join(dir, titleBannerFile))
		lib.tornPaper = readOptional(filepath.Join(dir, tornPaperFile))
		lib.displayFont = readOptional(filepath.Join(dir, displayFontFile))
	}

	return lib
}

func readOptional(path string) []byte {
	data, err := os.ReadFile(path) // #nosec G304 - path is derived from a CLI-provided assets dir
	if err != nil || len(data) == 0 {
		return nil
	}
	return data
}

// Background returns the full-bleed page background JPEG, if present
func (l *Library) Background() ([]byte, bool) {
	return l.background, l.background != nil
}

// TitleBanner returns the memory title banner PNG, if present
func (l *Library) TitleBanner() ([]byte, bool) {
	return l.titleBanner, l.titleBanner != nil
}

// TornPaper returns the torn-paper frame PNG, if present
func (l *Library) TornPaper() ([]byte, bool) {
	return l.tornPaper, l.tornPaper != nil
}

// DisplayFont returns the embeddable display font bytes, if present
func (l *Library) DisplayFont() ([]byte, bool) {
	return l.displayFont, l.displayFont != nil
}

// BaseDocument reads the static yearbook PDF that personalized pages are
// merged after.
func (l *Library) BaseDocument() ([]byte, error) {
	if l.baseDocument == "" {
		return nil, goerr.New("base document path is not configured")
	}

	path := filepath.Join(l.dir, l.baseDocument)
	data, err := os.ReadFile(path) // #nosec G304 - path is provided by CLI argument
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read base document", goerr.V("path", path))
	}
	if len(data) == 0 {
		return nil, goerr.New("base document is empty", goerr.V("path", path))
	}

	return data, nil
}
