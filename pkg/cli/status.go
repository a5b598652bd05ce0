package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/secmon-lab/yearbound/pkg/cli/config"
	"github.com/secmon-lab/yearbound/pkg/domain/model"
	"github.com/secmon-lab/yearbound/pkg/domain/types"
	"github.com/secmon-lab/yearbound/pkg/usecase"
	"github.com/secmon-lab/yearbound/pkg/utils/safe"
)

func cmdStatus() *cli.Command {
	var repoCfg config.Repository
	var email string

	flags := repoCfg.Flags()
	flags = append(flags,
		&cli.StringFlag{
			Name:        "email",
			Usage:       "Email address of the user to inspect",
			Required:    true,
			Sources:     cli.EnvVars("YEARBOUND_EMAIL"),
			Destination: &email,
		},
	)

	return &cli.Command{
		Name:    "status",
		Aliases: []string{"s"},
		Usage:   "Show the yearbook generation status for one user",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			target := types.Email(email)
			if err := target.Validate(); err != nil {
				return err
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer safe.Close(ctx, repo)

			uc := usecase.New(repo)
			record, err := uc.Yearbook.Status(ctx, target)
			if err != nil {
				if errors.Is(err, usecase.ErrYearbookNotFound) {
					fmt.Fprintf(os.Stdout, "%s: no generation attempted\n", target)
					return nil
				}
				return err
			}

			printStatus(record)
			return nil
		},
	}
}

func printStatus(record *model.GeneratedYearbook) {
	statusColor := color.New(color.FgYellow)
	switch record.Status {
	case types.GenerationStatusCompleted:
		statusColor = color.New(color.FgGreen)
	case types.GenerationStatusFailed:
		statusColor = color.New(color.FgRed)
	}

	fmt.Fprintf(os.Stdout, "%s: ", record.Email)
	statusColor.Fprintln(os.Stdout, record.Status)
	if record.Location != "" {
		fmt.Fprintf(os.Stdout, "  location:  %s\n", record.Location)
	}
	if record.ObjectKey != "" {
		fmt.Fprintf(os.Stdout, "  object:    %s\n", record.ObjectKey)
	}
	fmt.Fprintf(os.Stdout, "  generated: %s\n", record.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(os.Stdout, "  updated:   %s\n", record.UpdatedAt.Format("2006-01-02 15:04:05 MST"))
}
