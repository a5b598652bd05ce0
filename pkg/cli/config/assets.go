package config

import (
	"github.com/secmon-lab/yearbound/pkg/service/assets"
	"github.com/urfave/cli/v3"
)

// Assets holds CLI flags for the yearbook asset library
type Assets struct {
	dir          string
	baseDocument string
}

// Flags returns CLI flags for asset configuration
func (a *Assets) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "assets-dir",
			Usage:       "Directory holding yearbook assets (background, banner, frame, font, base document)",
			Value:       "assets",
			Sources:     cli.EnvVars("YEARBOUND_ASSETS_DIR"),
			Destination: &a.dir,
		},
		&cli.StringFlag{
			Name:        "base-document",
			Usage:       "File name of the static base PDF within the assets directory",
			Value:       "yearbook.pdf",
			Sources:     cli.EnvVars("YEARBOUND_BASE_DOCUMENT"),
			Destination: &a.baseDocument,
		},
	}
}

// Configure loads the asset library. Missing decorative assets degrade the
// output instead of failing; only the base document is required, and that
// is checked when it is first read.
func (a *Assets) Configure() *assets.Library {
	return assets.New(a.dir, a.baseDocument)
}
