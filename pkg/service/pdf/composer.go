package pdf

import (
	"context"

	"github.com/secmon-lab/yearbound/pkg/domain/interfaces"
	"github.com/secmon-lab/yearbound/pkg/domain/model"
	"github.com/secmon-lab/yearbound/pkg/service/assets"
)

// Input is everything needed to compose one personalized document
type Input struct {
	ViewerName string
	Memories   []*model.Memory
	Threads    []*model.Thread
}

// Generator builds personalized yearbook documents. One Generator may
// serve many Build calls; each call owns its own document, page flow and
// cursor, so independent invocations never share layout state.
type Generator struct {
	assets  *assets.Library
	fetcher interfaces.ImageFetcher
	theme   *Theme
}

type Option func(*Generator)

// WithTheme overrides the default layout theme
func WithTheme(theme *Theme) Option {
	return func(g *Generator) {
		g.theme = theme
	}
}

func New(lib *assets.Library, fetcher interfaces.ImageFetcher, opts ...Option) *Generator {
	g := &Generator{
		assets:  lib,
		fetcher: fetcher,
		theme:   DefaultTheme(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Composer draws sections into one document through a shared page flow
type Composer struct {
	doc      *Document
	flow     *PageFlow
	resolver *Resolver
	theme    *Theme
}

// Build composes the personalized document: a memories title page and one
// page-aligned section per memory group, followed by one section per
// conversation thread. Empty memories or threads are skipped entirely.
// Returns the rendered PDF bytes and the page count.
func (g *Generator) Build(ctx context.Context, in Input) ([]byte, int, error) {
	doc := NewDocument(g.assets, g.theme)
	c := &Composer{
		doc:      doc,
		flow:     NewPageFlow(doc),
		resolver: NewResolver(doc, g.fetcher),
		theme:    g.theme,
	}

	if len(in.Memories) > 0 {
		c.flow.NewPage()
		c.drawMemoriesTitlePage()

		for _, memory := range in.Memories {
			c.flow.NewPage()
			c.ComposeMemory(ctx, memory)
		}
	}

	for _, thread := range in.Threads {
		c.flow.NewPage()
		c.ComposeThread(ctx, thread, in.ViewerName)
	}

	// A user with no memories and no messages still gets a (blank)
	// personalized page so the merged document is always valid.
	if doc.PageCount() == 0 {
		c.flow.NewPage()
	}

	out, err := doc.Output()
	if err != nil {
		return nil, 0, err
	}

	return out, doc.PageCount(), nil
}

// drawMemoriesTitlePage centers the section title on a dedicated page
func (c *Composer) drawMemoriesTitlePage() {
	t := c.theme

	c.doc.SetFont("B", 48)
	c.doc.SetTextColor(t.Accent)

	title := "My Memories"
	titleW := c.doc.TextWidth(title)
	centerY := t.PageHeight / 2
	c.doc.Text((t.PageWidth-titleW)/2, centerY, title)

	c.flow.SetY(centerY + 100)
}
