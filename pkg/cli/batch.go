package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/secmon-lab/yearbound/pkg/usecase"
	"github.com/secmon-lab/yearbound/pkg/utils/safe"
)

func cmdBatch() *cli.Command {
	var appCfg appConfig
	var concurrency int

	flags := appCfg.Flags()
	flags = append(flags,
		&cli.IntFlag{
			Name:        "concurrency",
			Usage:       "Maximum number of yearbooks generated in parallel",
			Value:       4,
			Sources:     cli.EnvVars("YEARBOUND_CONCURRENCY"),
			Destination: &concurrency,
		},
	)

	return &cli.Command{
		Name:    "batch",
		Aliases: []string{"b"},
		Usage:   "Generate yearbooks for every eligible user",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, repo, err := appCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer safe.Close(ctx, repo)

			report, err := uc.Yearbook.GenerateAll(ctx, concurrency)
			if err != nil {
				return err
			}

			printBatchReport(report)

			if len(report.Failed) > 0 {
				return goerr.New("batch finished with failures",
					goerr.V("failed", len(report.Failed)),
					goerr.V("succeeded", len(report.Succeeded)))
			}
			return nil
		},
	}
}

func printBatchReport(report *usecase.BatchReport) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	for _, result := range report.Succeeded {
		green.Fprintf(os.Stdout, "OK   %s\n", result.Email)
		fmt.Fprintf(os.Stdout, "     %s (%d pages)\n", result.Location, result.TotalPages)
	}
	for _, failure := range report.Failed {
		red.Fprintf(os.Stdout, "FAIL %s\n", failure.Email)
		fmt.Fprintf(os.Stdout, "     %v\n", failure.Err)
	}

	fmt.Fprintf(os.Stdout, "\n%d succeeded, %d failed\n",
		len(report.Succeeded), len(report.Failed))
}
