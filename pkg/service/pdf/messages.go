package pdf

import (
	"context"

	"github.com/secmon-lab/yearbound/pkg/domain/model"
	"github.com/secmon-lab/yearbound/pkg/utils/logging"
)

// ComposeThread draws one conversation as a chat transcript: a section
// title naming the counterpart, then one bubble per message in
// chronological order, right-aligned for messages the viewer sent and
// left-aligned for received ones. The caller starts the thread on a
// fresh page.
func (c *Composer) ComposeThread(ctx context.Context, thread *model.Thread, viewerName string) {
	logging.From(ctx).Debug("composing conversation thread",
		"counterpart", thread.CounterpartEmail,
		"messages", len(thread.Messages))

	c.drawThreadTitle("Conversation with " + thread.CounterpartName)

	// Bubble heights vary with content, so space is checked per message
	// rather than per thread.
	for _, msg := range thread.Messages {
		c.drawBubble(msg, viewerName, thread.CounterpartName)
	}
}

// drawThreadTitle draws the section title, shrinking the font for long
// counterpart names and wrapping when the name still does not fit.
func (c *Composer) drawThreadTitle(title string) {
	t := c.theme

	fontSize := 24.0
	if len(title) > 30 {
		fontSize = 20
	}

	maxChars := int((t.PageWidth - 2*t.Margin) / (fontSize * 0.5))
	lines := Wrap(title, maxChars)

	c.flow.EnsureSpace(float64(len(lines))*(fontSize+8) + 10)

	c.doc.SetFont("B", fontSize)
	c.doc.SetTextColor(t.Accent)
	for _, line := range lines {
		c.doc.Text(t.Margin, c.flow.Y()+fontSize, line)
		c.flow.Advance(fontSize + 8)
	}
	c.flow.Advance(10)
}

func (c *Composer) drawBubble(msg model.ThreadMessage, viewerName, counterpartName string) {
	t := c.theme

	senderName := counterpartName
	bubbleColor := t.ReceivedBubble
	textColor := t.ReceivedText
	labelColor := t.ReceivedLabel
	if msg.Sent {
		senderName = viewerName
		bubbleColor = t.SentBubble
		textColor = t.SentText
		labelColor = t.SentLabel
	}

	lines := Wrap(msg.Text, t.MessageWrap)
	bubbleH := float64(len(lines))*t.BubbleLineHeight + 2*t.BubblePadding + 25

	c.flow.EnsureSpace(bubbleH + t.BubbleSpacing)

	// Approximate character-derived width, clamped to a fraction of the
	// page so a bubble never crosses the opposite margin.
	maxWidth := t.PageWidth - 2*t.Margin - 100
	bubbleW := 0.0
	for _, line := range lines {
		if w := float64(len(line)) * 7; w > bubbleW {
			bubbleW = w
		}
	}
	if w := float64(len(senderName)) * 8; w > bubbleW {
		bubbleW = w
	}
	bubbleW += 2 * t.BubblePadding
	if bubbleW > maxWidth {
		bubbleW = maxWidth
	}

	bubbleX := t.Margin
	if msg.Sent {
		bubbleX = t.PageWidth - t.Margin - bubbleW
	}
	bubbleY := c.flow.Y()

	c.doc.FillRect(bubbleX, bubbleY, bubbleW, bubbleH, bubbleColor, t.BubbleBorder, 1)

	c.doc.SetFont("B", 10)
	c.doc.SetTextColor(labelColor)
	c.doc.Text(bubbleX+t.BubblePadding, bubbleY+t.BubblePadding+10, senderName)

	c.doc.SetFont("", t.BubbleTextSize)
	c.doc.SetTextColor(textColor)
	lineY := bubbleY + t.BubblePadding + 28
	for _, line := range lines {
		c.doc.Text(bubbleX+t.BubblePadding, lineY, line)
		lineY += t.BubbleLineHeight
	}

	c.flow.Advance(bubbleH + t.BubbleSpacing)
}
