// Command iomigrate moves binary files and their metadata between the IO
// handlers configured in the environment, and serves the same operations
// over the Lambda Invoke API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	iomigrate "github.com/asecurityteam/iomigrate/pkg"
	"github.com/asecurityteam/iomigrate/pkg/domain"
	"github.com/asecurityteam/logevent/v2"
	"github.com/asecurityteam/settings/v2"
	"github.com/rs/xstats"
	"github.com/spf13/cobra"
)

type globalOptions struct {
	LogLevel string
}

func newRootCommand(environ []string) *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:           "iomigrate",
		Short:         "Migrate binary files between IO handlers",
		Long:          "Migrate binary files between IO handlers.\n\nConfiguration is read from the environment:\n\n" + iomigrate.HelpStatic(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "INFO", "Minimum level of the log events written to stderr")

	env := func() (settings.Source, error) {
		return settings.NewEnvSource(environ)
	}
	root.AddCommand(
		newMigrateCommand(opts, env),
		newCountCommand(opts, env),
		newListHandlersCommand(opts, env),
		newServeCommand(env),
		newLambdaCommand(env),
	)
	return root
}

// openService loads the backends and binds the functions to the CLI logger.
func openService(ctx context.Context, opts *globalOptions, env func() (settings.Source, error)) (context.Context, *iomigrate.Service, error) {
	source, err := env()
	if err != nil {
		return ctx, nil, err
	}
	logger := logevent.New(logevent.Config{Level: opts.LogLevel, Output: os.Stderr})
	ctx = logevent.NewContext(ctx, logger)
	svc, err := iomigrate.NewService(ctx, source)
	if err != nil {
		return ctx, nil, err
	}
	svc.Functions.LogFn = func(context.Context) domain.Logger { return logger }
	svc.Functions.StatFn = xstats.FromContext
	return ctx, svc, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCommand(os.Environ()).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
