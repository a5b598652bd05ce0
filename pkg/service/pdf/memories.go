package pdf

import (
	"context"

	"github.com/secmon-lab/yearbound/pkg/domain/model"
	"github.com/secmon-lab/yearbound/pkg/utils/logging"
)

// fallbackFrameHeight approximates the torn-paper aspect ratio when the
// frame asset is unavailable and a plain rectangle is drawn instead.
const fallbackFrameHeight = 165.0

// ComposeMemory draws one memory group: a title banner, a fixed-column
// grid of framed photos, and a single caption box showing the first
// image's caption. The caller starts the group on a fresh page.
func (c *Composer) ComposeMemory(ctx context.Context, memory *model.Memory) {
	logger := logging.From(ctx)
	logger.Debug("composing memory group",
		"headTitle", memory.HeadTitle,
		"images", len(memory.Images))

	c.drawMemoryTitle(memory.HeadTitle)

	if len(memory.Images) == 0 {
		return
	}

	c.drawImageGrid(ctx, memory.Images)
	c.drawCaptionBox(memory.Images[0].Caption)

	c.flow.Advance(60)
}

func (c *Composer) drawMemoryTitle(headTitle string) {
	t := c.theme

	banner, hasBanner := c.doc.TitleBanner()
	bannerW := t.TitleBannerWidth
	bannerH := 90.0
	if hasBanner {
		bannerH = bannerW / banner.AspectRatio()
	}

	c.flow.EnsureSpace(bannerH + 40)

	bannerX := (t.PageWidth - bannerW) / 2
	bannerY := c.flow.Y()
	if hasBanner {
		c.doc.DrawImage(banner, bannerX, bannerY, bannerW, bannerH)
	}

	c.doc.SetFont("B", 28)
	c.doc.SetTextColor(t.Accent)
	titleW := c.doc.TextWidth(headTitle)
	c.doc.Text((t.PageWidth-titleW)/2, bannerY+bannerH/2+10, headTitle)

	c.flow.Advance(bannerH + 40)
}

func (c *Composer) drawImageGrid(ctx context.Context, images []model.MemoryImage) {
	t := c.theme
	logger := logging.From(ctx)

	frame, hasFrame := c.doc.TornPaper()
	frameW := t.FrameWidth
	frameH := fallbackFrameHeight
	if hasFrame {
		frameH = frameW / frame.AspectRatio()
	}

	totalRowWidth := float64(t.GridColumns)*frameW + float64(t.GridColumns-1)*t.GridHSpacing
	startX := (t.PageWidth - totalRowWidth) / 2

	// Resolve all images up front so a slow or broken origin is paid for
	// before any drawing on the current page begins.
	resolved := make([]*EmbeddedImage, len(images))
	for i, img := range images {
		embedded, err := c.resolver.Resolve(ctx, img.SourceURL)
		if err != nil {
			logger.Warn("image resolution failed, drawing placeholder",
				"url", img.SourceURL,
				"error", err.Error())
			continue
		}
		resolved[i] = embedded
	}

	col := 0
	for i := range images {
		c.flow.EnsureSpace(frameH + t.GridVSpacing + 50)

		frameX := startX + float64(col)*(frameW+t.GridHSpacing)
		frameY := c.flow.Y()

		if hasFrame {
			c.doc.DrawImage(frame, frameX, frameY, frameW, frameH)
		} else {
			c.doc.FillRect(frameX, frameY, frameW, frameH,
				RGB{R: 250, G: 250, B: 245}, t.BubbleBorder, 1)
		}

		if resolved[i] != nil {
			c.drawFramedImage(resolved[i], frameX, frameY, frameW, frameH)
		} else {
			c.drawImagePlaceholder(frameX, frameY, frameH)
		}

		col++
		if col >= t.GridColumns {
			col = 0
			c.flow.Advance(frameH + t.GridVSpacing)
		}
	}

	// A trailing partial row still consumes a full row height.
	if col > 0 {
		c.flow.Advance(frameH + t.GridVSpacing)
	}
}

// drawFramedImage scales the image to fit the frame's inner area while
// preserving its aspect ratio (shrink by width first, then by height),
// and centers it within the frame.
func (c *Composer) drawFramedImage(img *EmbeddedImage, frameX, frameY, frameW, frameH float64) {
	inner := c.theme.FrameInnerMargin
	areaW := frameW - 2*inner
	areaH := frameH - 2*inner

	drawW := areaW
	drawH := drawW / img.AspectRatio()
	if drawH > areaH {
		drawH = areaH
		drawW = drawH * img.AspectRatio()
	}

	x := frameX + inner + (areaW-drawW)/2
	y := frameY + inner + (areaH-drawH)/2
	c.doc.DrawImage(img, x, y, drawW, drawH)
}

func (c *Composer) drawImagePlaceholder(frameX, frameY, frameH float64) {
	c.doc.SetFont("", 10)
	c.doc.SetTextColor(c.theme.PlaceholderText)
	c.doc.Text(frameX+20, frameY+frameH/2-5, "Image not")
	c.doc.Text(frameX+20, frameY+frameH/2+15, "available")
}

func (c *Composer) drawCaptionBox(caption string) {
	t := c.theme

	c.flow.Advance(30)
	c.flow.EnsureSpace(t.CaptionBoxHeight + 20)

	boxX := (t.PageWidth - t.CaptionBoxWidth) / 2
	boxY := c.flow.Y()

	c.doc.FillRect(boxX, boxY, t.CaptionBoxWidth, t.CaptionBoxHeight,
		RGB{R: 255, G: 255, B: 255}, RGB{R: 204, G: 204, B: 204}, 2)

	c.doc.SetFont("B", 16)
	c.doc.SetTextColor(t.Accent)
	c.doc.Text(boxX+20, boxY+25, "Caption")

	c.doc.SetFont("", 12)
	c.doc.SetTextColor(t.CaptionText)
	lineY := boxY + 50
	for _, line := range Wrap(caption, t.CaptionWrap) {
		c.doc.Text(boxX+20, lineY, line)
		lineY += 18
	}

	c.flow.Advance(t.CaptionBoxHeight + 20)
}
