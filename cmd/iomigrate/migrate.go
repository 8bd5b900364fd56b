package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/asecurityteam/iomigrate/pkg/migration"
	"github.com/asecurityteam/settings/v2"
	"github.com/spf13/cobra"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

type migrateOptions struct {
	From       string
	To         string
	BulkCount  int
	DryRun     bool
	NoProgress bool
}

func newMigrateCommand(global *globalOptions, env func() (settings.Source, error)) *cobra.Command {
	opts := &migrateOptions{}
	cmd := &cobra.Command{
		Use:   "migrate --from <metadata>,<binarydata> --to <metadata>,<binarydata>",
		Short: "Migrate every file from one pair of handlers to another",
		Example: `iomigrate migrate --from dfs,dfs --to default,default
  iomigrate migrate --from default --to redis,aws_s3 --bulk-count 500
  iomigrate migrate --from default --to dfs --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := migration.ParseHandlerPair(opts.From)
			if err != nil {
				return err
			}
			to, err := migration.ParseHandlerPair(opts.To)
			if err != nil {
				return err
			}
			ctx, svc, err := openService(cmd.Context(), global, env)
			if err != nil {
				return err
			}
			defer svc.Close()

			var bar *progressBar
			if !opts.NoProgress && !opts.DryRun {
				bar = newProgressBar(cmd)
				svc.Functions.Progress = bar.update
			}
			report, err := svc.Functions.MigrateFiles(ctx, migration.Request{
				From:      from,
				To:        to,
				BulkCount: opts.BulkCount,
				DryRun:    opts.DryRun,
			})
			if bar != nil {
				bar.wait()
			}
			if errors.Is(err, context.Canceled) {
				fmt.Fprint(cmd.OutOrStdout(), "Interrupted. ")
				printReport(cmd, report)
			}
			if err != nil {
				return err
			}
			printReport(cmd, report)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.From, "from", "", "Source handlers as <metadata>,<binarydata>")
	flags.StringVar(&opts.To, "to", "", "Destination handlers as <metadata>,<binarydata>")
	flags.IntVar(&opts.BulkCount, "bulk-count", migration.DefaultBulkCount, "Number of file IDs loaded per page")
	flags.BoolVar(&opts.DryRun, "dry-run", false, "Count the files without migrating them")
	flags.BoolVar(&opts.NoProgress, "no-progress", false, "Do not draw a progress bar")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func printReport(cmd *cobra.Command, report migration.Report) {
	out := cmd.OutOrStdout()
	if report.DryRun {
		fmt.Fprintf(out, "%d files would be migrated\n", report.Total)
		return
	}
	fmt.Fprintf(out, "Migrated %d of %d files (%d missing, %d failed) in %s\n",
		report.Migrated, report.Total, report.Missing, report.Failed, report.Elapsed.Round(time.Millisecond))
}

// progressBar draws one mpb bar sized on the first update.
type progressBar struct {
	p   *mpb.Progress
	bar *mpb.Bar
}

func newProgressBar(cmd *cobra.Command) *progressBar {
	return &progressBar{
		p: mpb.New(
			mpb.WithOutput(cmd.ErrOrStderr()),
			mpb.WithWidth(80),
			mpb.WithRefreshRate(180*time.Millisecond),
		),
	}
}

func (b *progressBar) update(done int, total int) {
	if b.bar == nil {
		b.bar = b.p.AddBar(int64(total),
			mpb.BarFillerClearOnComplete(),
			mpb.PrependDecorators(
				decor.OnComplete(decor.Name("Migrating files"), "Migrated files"),
			),
			mpb.AppendDecorators(
				decor.CountersNoUnit("%d / %d"),
			),
		)
	}
	b.bar.SetCurrent(int64(done))
}

func (b *progressBar) wait() {
	if b.bar != nil && !b.bar.Completed() {
		b.bar.Abort(false)
	}
	b.p.Wait()
}
