package cli

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/secmon-lab/yearbound/pkg/cli/config"
	"github.com/secmon-lab/yearbound/pkg/domain/interfaces"
	"github.com/secmon-lab/yearbound/pkg/service/fetch"
	"github.com/secmon-lab/yearbound/pkg/service/pdf"
	"github.com/secmon-lab/yearbound/pkg/usecase"
	"github.com/secmon-lab/yearbound/pkg/utils/safe"
)

// appConfig bundles the flag groups shared by the generation commands
type appConfig struct {
	repo    config.Repository
	storage config.Storage
	assets  config.Assets
	layout  config.Layout

	fetchTimeout time.Duration
}

func (a *appConfig) Flags() []cli.Flag {
	var flags []cli.Flag
	flags = append(flags, a.repo.Flags()...)
	flags = append(flags, a.storage.Flags()...)
	flags = append(flags, a.assets.Flags()...)
	flags = append(flags, a.layout.Flags()...)
	flags = append(flags,
		&cli.DurationFlag{
			Name:        "fetch-timeout",
			Usage:       "Timeout for fetching a single remote image",
			Value:       30 * time.Second,
			Sources:     cli.EnvVars("YEARBOUND_FETCH_TIMEOUT"),
			Destination: &a.fetchTimeout,
		},
	)
	return flags
}

// Configure wires the repository, storage, asset library and document
// generator into the use cases. The returned repository must be closed by
// the caller.
func (a *appConfig) Configure(ctx context.Context) (*usecase.UseCases, interfaces.Repository, error) {
	repo, err := a.repo.Configure(ctx)
	if err != nil {
		return nil, nil, err
	}

	storage, err := a.storage.Configure(ctx)
	if err != nil {
		safe.Close(ctx, repo)
		return nil, nil, goerr.Wrap(err, "failed to configure storage")
	}

	theme, err := a.layout.Configure()
	if err != nil {
		safe.Close(ctx, repo)
		return nil, nil, goerr.Wrap(err, "failed to configure layout")
	}

	lib := a.assets.Configure()
	gen := pdf.New(lib, fetch.New(fetch.WithTimeout(a.fetchTimeout)), pdf.WithTheme(theme))

	uc := usecase.New(repo,
		usecase.WithStorage(storage),
		usecase.WithAssets(lib),
		usecase.WithGenerator(gen),
	)

	return uc, repo, nil
}
