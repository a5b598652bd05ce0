package pdf_test

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/yearbound/pkg/domain/model"
	"github.com/secmon-lab/yearbound/pkg/service/assets"
	"github.com/secmon-lab/yearbound/pkg/service/pdf"
)

type stubFetcher struct {
	images map[string][]byte
}

func (f *stubFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	data, ok := f.images[url]
	if !ok {
		return nil, goerr.New("image not found", goerr.V("url", url))
	}
	return data, nil
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 120, G: 90, B: 160, A: 255})
		}
	}
	var buf bytes.Buffer
	gt.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newGenerator(t *testing.T, fetcher *stubFetcher) *pdf.Generator {
	t.Helper()
	lib := assets.New(t.TempDir(), "base.pdf")
	return pdf.New(lib, fetcher)
}

func TestBuildEmptyInput(t *testing.T) {
	g := newGenerator(t, &stubFetcher{})

	data, pages, err := g.Build(context.Background(), pdf.Input{ViewerName: "Alice"})
	gt.NoError(t, err).Required()

	// Even an empty input yields a one-page valid document.
	gt.N(t, pages).Equal(1)
	gt.N(t, len(data)).Greater(0)
	gt.N(t, mustPageCount(t, data)).Equal(1)
}

func TestBuildMemoriesStartOnFreshPages(t *testing.T) {
	photo := pngBytes(t, 4, 3)
	fetcher := &stubFetcher{images: map[string][]byte{
		"https://cdn.example.com/a.png": photo,
		"https://cdn.example.com/b.png": photo,
	}}
	g := newGenerator(t, fetcher)

	in := pdf.Input{
		ViewerName: "Alice",
		Memories: []*model.Memory{
			{
				HeadTitle: "Sports Day",
				Images: []model.MemoryImage{
					{SourceURL: "https://cdn.example.com/a.png", Caption: "the relay"},
					{SourceURL: "https://cdn.example.com/b.png"},
				},
			},
			{
				HeadTitle: "Graduation",
				Images: []model.MemoryImage{
					{SourceURL: "https://cdn.example.com/a.png", Caption: "caps in the air"},
				},
			},
		},
	}

	data, pages, err := g.Build(context.Background(), in)
	gt.NoError(t, err).Required()

	// Title page plus one page per memory group.
	gt.N(t, pages).GreaterOrEqual(3)
	gt.N(t, mustPageCount(t, data)).Equal(pages)
}

func TestBuildSurvivesBrokenImage(t *testing.T) {
	photo := pngBytes(t, 4, 3)
	fetcher := &stubFetcher{images: map[string][]byte{
		"https://cdn.example.com/good.png": photo,
		"https://cdn.example.com/junk.bin": []byte("not an image at all"),
	}}
	g := newGenerator(t, fetcher)

	in := pdf.Input{
		ViewerName: "Alice",
		Memories: []*model.Memory{
			{
				HeadTitle: "Field Trip",
				Images: []model.MemoryImage{
					{SourceURL: "https://cdn.example.com/good.png", Caption: "on the bus"},
					{SourceURL: "https://cdn.example.com/junk.bin"},
					{SourceURL: "https://cdn.example.com/missing.png"},
				},
			},
		},
	}

	data, pages, err := g.Build(context.Background(), in)
	gt.NoError(t, err).Required()
	gt.N(t, pages).GreaterOrEqual(2)
	gt.N(t, mustPageCount(t, data)).Equal(pages)
}

func TestBuildThreads(t *testing.T) {
	g := newGenerator(t, &stubFetcher{})

	in := pdf.Input{
		ViewerName: "Alice",
		Threads: []*model.Thread{
			{
				CounterpartEmail: "bob@example.com",
				CounterpartName:  "Bob",
				Messages: []model.ThreadMessage{
					{Text: "Good luck out there!", Sent: false},
					{Text: "Thanks, you too. Keep in touch.", Sent: true},
				},
			},
			{
				CounterpartEmail: "carol@example.com",
				CounterpartName:  "Carol",
				Messages: []model.ThreadMessage{
					{Text: "Remember the chemistry lab?", Sent: false},
				},
			},
		},
	}

	data, pages, err := g.Build(context.Background(), in)
	gt.NoError(t, err).Required()

	// One page per thread, no memories title page.
	gt.N(t, pages).GreaterOrEqual(2)
	gt.N(t, mustPageCount(t, data)).Equal(pages)
}

func TestBuildLongThreadPaginates(t *testing.T) {
	g := newGenerator(t, &stubFetcher{})

	msgs := make([]model.ThreadMessage, 0, 60)
	for i := 0; i < 60; i++ {
		msgs = append(msgs, model.ThreadMessage{
			Text: "This message is long enough to wrap across several lines so the bubbles stack up quickly and force page breaks.",
			Sent: i%2 == 0,
		})
	}

	in := pdf.Input{
		ViewerName: "Alice",
		Threads: []*model.Thread{
			{CounterpartEmail: "bob@example.com", CounterpartName: "Bob", Messages: msgs},
		},
	}

	data, pages, err := g.Build(context.Background(), in)
	gt.NoError(t, err).Required()
	gt.N(t, pages).Greater(1)
	gt.N(t, mustPageCount(t, data)).Equal(pages)
}

func mustPageCount(t *testing.T, data []byte) int {
	t.Helper()
	n, err := pdf.MergedPageCount(data)
	gt.NoError(t, err).Required()
	return n
}
