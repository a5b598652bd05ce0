package pdf

// RGB is an 8-bit color triple
type RGB struct {
	R int
	G int
	B int
}

// Theme holds the page geometry, layout constants and colors of the
// generated document. Dimensions are in points.
type Theme struct {
	PageWidth  float64
	PageHeight float64
	Margin     float64

	TitleBannerWidth float64
	FrameWidth       float64
	FrameInnerMargin float64
	GridColumns      int
	GridHSpacing     float64
	GridVSpacing     float64

	CaptionBoxWidth  float64
	CaptionBoxHeight float64
	CaptionWrap      int

	MessageWrap      int
	BubblePadding    float64
	BubbleTextSize   float64
	BubbleLineHeight float64
	BubbleSpacing    float64

	Accent          RGB
	SentBubble      RGB
	SentText        RGB
	SentLabel       RGB
	ReceivedBubble  RGB
	ReceivedText    RGB
	ReceivedLabel   RGB
	BubbleBorder    RGB
	CaptionText     RGB
	PlaceholderText RGB
}

// DefaultTheme returns the standard yearbook look: A4-like page, purple
// accent, two-column photo grid.
func DefaultTheme() *Theme {
	purple := RGB{R: 134, G: 114, B: 149}
	return &Theme{
		PageWidth:  595,
		PageHeight: 842,
		Margin:     50,

		TitleBannerWidth: 450,
		FrameWidth:       220,
		FrameInnerMargin: 20,
		GridColumns:      2,
		GridHSpacing:     30,
		GridVSpacing:     40,

		CaptionBoxWidth:  400,
		CaptionBoxHeight: 80,
		CaptionWrap:      45,

		MessageWrap:      50,
		BubblePadding:    12,
		BubbleTextSize:   12,
		BubbleLineHeight: 16,
		BubbleSpacing:    15,

		Accent:          purple,
		SentBubble:      purple,
		SentText:        RGB{R: 255, G: 255, B: 255},
		SentLabel:       RGB{R: 204, G: 204, B: 255},
		ReceivedBubble:  RGB{R: 230, G: 230, B: 230},
		ReceivedText:    RGB{R: 0, G: 0, B: 0},
		ReceivedLabel:   RGB{R: 77, G: 77, B: 77},
		BubbleBorder:    RGB{R: 153, G: 153, B: 153},
		CaptionText:     RGB{R: 77, G: 77, B: 77},
		PlaceholderText: RGB{R: 128, G: 128, B: 128},
	}
}
