package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/yearbound/pkg/cli/config"
	"github.com/secmon-lab/yearbound/pkg/service/pdf"
)

func writeLayout(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.toml")
	gt.NoError(t, os.WriteFile(path, []byte(body), 0600)).Required()
	return path
}

func TestLoadLayoutConfiguration(t *testing.T) {
	path := writeLayout(t, `
page_width = 612
page_height = 792
grid_columns = 3
message_wrap = 40
accent = [20, 40, 60]
`)

	cfg, err := config.LoadLayoutConfiguration(path)
	gt.NoError(t, err).Required()

	theme := cfg.ToTheme()
	gt.N(t, theme.PageWidth).Equal(612)
	gt.N(t, theme.PageHeight).Equal(792)
	gt.N(t, theme.GridColumns).Equal(3)
	gt.N(t, theme.MessageWrap).Equal(40)
	gt.V(t, theme.Accent).Equal(pdf.RGB{R: 20, G: 40, B: 60})

	// Unset fields keep their defaults.
	gt.N(t, theme.Margin).Equal(pdf.DefaultTheme().Margin)
	gt.N(t, theme.CaptionWrap).Equal(pdf.DefaultTheme().CaptionWrap)
}

func TestLoadLayoutConfigurationInvalid(t *testing.T) {
	cases := map[string]string{
		"bad accent arity":   `accent = [1, 2]`,
		"accent out of range": `accent = [0, 0, 300]`,
		"tiny wrap":          `message_wrap = 2`,
		"no drawable area":   "page_height = 80\npage_width = 80",
		"not toml":           `{"page_width": 100}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeLayout(t, body)
			_, err := config.LoadLayoutConfiguration(path)
			gt.Error(t, err)
		})
	}
}

func TestLoadLayoutConfigurationMissingFile(t *testing.T) {
	_, err := config.LoadLayoutConfiguration(filepath.Join(t.TempDir(), "nope.toml"))
	gt.Error(t, err)
}

func TestLayoutConfigureDefaults(t *testing.T) {
	var l config.Layout
	theme, err := l.Configure()
	gt.NoError(t, err).Required()
	gt.V(t, *theme).Equal(*pdf.DefaultTheme())
}
