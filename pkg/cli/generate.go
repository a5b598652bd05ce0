package cli

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/secmon-lab/yearbound/pkg/domain/types"
	"github.com/secmon-lab/yearbound/pkg/usecase"
	"github.com/secmon-lab/yearbound/pkg/utils/logging"
	"github.com/secmon-lab/yearbound/pkg/utils/safe"
)

func cmdGenerate() *cli.Command {
	var appCfg appConfig
	var email string

	flags := appCfg.Flags()
	flags = append(flags,
		&cli.StringFlag{
			Name:        "email",
			Usage:       "Email address of the user to generate for",
			Required:    true,
			Sources:     cli.EnvVars("YEARBOUND_EMAIL"),
			Destination: &email,
		},
	)

	return &cli.Command{
		Name:    "generate",
		Aliases: []string{"g"},
		Usage:   "Generate and publish the yearbook for one user",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			target := types.Email(email)
			if err := target.Validate(); err != nil {
				return err
			}

			uc, repo, err := appCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer safe.Close(ctx, repo)

			result, err := uc.Yearbook.Generate(ctx, target)
			if err != nil {
				if errors.Is(err, usecase.ErrUserNotEligible) {
					return goerr.Wrap(err, "nothing to generate", goerr.V("email", target))
				}
				return err
			}

			logging.Default().Info("Yearbook published",
				"email", result.Email,
				"location", result.Location,
				"pages", result.TotalPages)
			return nil
		},
	}
}
