package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/secmon-lab/yearbound/pkg/service/pdf"
	"github.com/urfave/cli/v3"
)

// Layout holds the CLI flag for the optional layout configuration file
type Layout struct {
	path string
}

// Flags returns CLI flags for layout configuration
func (l *Layout) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "layout",
			Usage:       "Path to a TOML layout configuration file",
			Sources:     cli.EnvVars("YEARBOUND_LAYOUT"),
			Destination: &l.path,
		},
	}
}

// Configure returns the document theme, loading overrides from the
// configured TOML file when one is given.
func (l *Layout) Configure() (*pdf.Theme, error) {
	if l.path == "" {
		return pdf.DefaultTheme(), nil
	}

	cfg, err := LoadLayoutConfiguration(l.path)
	if err != nil {
		return nil, err
	}
	return cfg.ToTheme(), nil
}

// LayoutConfig holds layout overrides from a TOML file. Zero values keep
// the default; colors are RGB triples.
type LayoutConfig struct {
	PageWidth  float64 `toml:"page_width"`
	PageHeight float64 `toml:"page_height"`
	Margin     float64 `toml:"margin"`

	GridColumns int     `toml:"grid_columns"`
	FrameWidth  float64 `toml:"frame_width"`

	CaptionWrap int `toml:"caption_wrap"`
	MessageWrap int `toml:"message_wrap"`

	Accent []int `toml:"accent"`
}

// Validate checks if the LayoutConfig is valid
func (c *LayoutConfig) Validate() error {
	if c.PageWidth < 0 || c.PageHeight < 0 || c.Margin < 0 || c.FrameWidth < 0 {
		return goerr.New("layout dimensions must not be negative")
	}
	if c.GridColumns < 0 {
		return goerr.New("grid_columns must not be negative")
	}
	if c.CaptionWrap < 0 || c.MessageWrap < 0 {
		return goerr.New("wrap budgets must not be negative")
	}
	if (c.CaptionWrap > 0 && c.CaptionWrap < 4) || (c.MessageWrap > 0 && c.MessageWrap < 4) {
		return goerr.New("wrap budgets must be at least 4 characters")
	}
	if c.Accent != nil {
		if len(c.Accent) != 3 {
			return goerr.New("accent must be an RGB triple", goerr.V("accent", c.Accent))
		}
		for _, v := range c.Accent {
			if v < 0 || v > 255 {
				return goerr.New("accent components must be within 0-255", goerr.V("accent", c.Accent))
			}
		}
	}

	theme := c.ToTheme()
	if theme.Margin*2 >= theme.PageHeight || theme.Margin*2 >= theme.PageWidth {
		return goerr.New("margins leave no drawable area",
			goerr.V("page_width", theme.PageWidth),
			goerr.V("page_height", theme.PageHeight),
			goerr.V("margin", theme.Margin))
	}

	return nil
}

// ToTheme applies the overrides on top of the default theme
func (c *LayoutConfig) ToTheme() *pdf.Theme {
	theme := pdf.DefaultTheme()

	if c.PageWidth > 0 {
		theme.PageWidth = c.PageWidth
	}
	if c.PageHeight > 0 {
		theme.PageHeight = c.PageHeight
	}
	if c.Margin > 0 {
		theme.Margin = c.Margin
	}
	if c.GridColumns > 0 {
		theme.GridColumns = c.GridColumns
	}
	if c.FrameWidth > 0 {
		theme.FrameWidth = c.FrameWidth
	}
	if c.CaptionWrap > 0 {
		theme.CaptionWrap = c.CaptionWrap
	}
	if c.MessageWrap > 0 {
		theme.MessageWrap = c.MessageWrap
	}
	if len(c.Accent) == 3 {
		theme.Accent = pdf.RGB{R: c.Accent[0], G: c.Accent[1], B: c.Accent[2]}
		theme.SentBubble = theme.Accent
	}

	return theme
}

// LoadLayoutConfiguration loads layout overrides from a TOML file
func LoadLayoutConfiguration(path string) (*LayoutConfig, error) {
	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read layout file", goerr.V("path", path))
	}

	var config LayoutConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML layout", goerr.V("path", path))
	}

	if err := config.Validate(); err != nil {
		return nil, goerr.Wrap(err, "layout validation failed", goerr.V("path", path))
	}

	return &config, nil
}
