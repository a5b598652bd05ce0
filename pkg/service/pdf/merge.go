package pdf

import (
	"bytes"
	"io"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/m-mizutani/goerr/v2"
)

// Merge appends the personalized document after the base document and
// returns the combined PDF.
func Merge(base, personalized []byte) ([]byte, error) {
	readers := []io.ReadSeeker{
		bytes.NewReader(base),
		bytes.NewReader(personalized),
	}

	var buf bytes.Buffer
	if err := pdfapi.MergeRaw(readers, &buf, false, pdfmodel.NewDefaultConfiguration()); err != nil {
		return nil, goerr.Wrap(err, "failed to merge base and personalized documents")
	}

	return buf.Bytes(), nil
}

// MergedPageCount parses a PDF and returns its page count
func MergedPageCount(data []byte) (int, error) {
	ctx, err := pdfapi.ReadValidateAndOptimize(bytes.NewReader(data), pdfmodel.NewDefaultConfiguration())
	if err != nil {
		return 0, goerr.Wrap(err, "failed to read merged document")
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return 0, goerr.Wrap(err, "failed to count pages of merged document")
	}

	return ctx.PageCount, nil
}
