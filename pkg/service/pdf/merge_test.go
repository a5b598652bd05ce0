package pdf_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/yearbound/pkg/domain/model"
	"github.com/secmon-lab/yearbound/pkg/service/pdf"
)

func buildDocument(t *testing.T, in pdf.Input) ([]byte, int) {
	t.Helper()
	g := newGenerator(t, &stubFetcher{})
	data, pages, err := g.Build(context.Background(), in)
	gt.NoError(t, err).Required()
	return data, pages
}

func TestMergeAppendsPages(t *testing.T) {
	base, basePages := buildDocument(t, pdf.Input{
		Threads: []*model.Thread{
			{CounterpartName: "Bob", Messages: []model.ThreadMessage{{Text: "hello"}}},
			{CounterpartName: "Carol", Messages: []model.ThreadMessage{{Text: "hi"}}},
		},
	})
	personal, personalPages := buildDocument(t, pdf.Input{ViewerName: "Alice"})

	merged, err := pdf.Merge(base, personal)
	gt.NoError(t, err).Required()

	total := mustPageCount(t, merged)
	gt.N(t, total).Equal(basePages + personalPages)
}

func TestMergeRejectsGarbage(t *testing.T) {
	valid, _ := buildDocument(t, pdf.Input{})

	_, err := pdf.Merge([]byte("this is not a pdf"), valid)
	gt.Error(t, err)
}

func TestMergedPageCount(t *testing.T) {
	doc, pages := buildDocument(t, pdf.Input{
		Threads: []*model.Thread{
			{CounterpartName: "Bob", Messages: []model.ThreadMessage{{Text: "one thread"}}},
		},
	})

	n, err := pdf.MergedPageCount(doc)
	gt.NoError(t, err).Required()
	gt.N(t, n).Equal(pages)
}
