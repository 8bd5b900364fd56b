package main

import (
	"fmt"

	iomigrate "github.com/asecurityteam/iomigrate/pkg"
	"github.com/asecurityteam/settings/v2"
	"github.com/spf13/cobra"
)

func newCountCommand(global *globalOptions, env func() (settings.Source, error)) *cobra.Command {
	var handler string
	cmd := &cobra.Command{
		Use:   "count --handler <metadata>",
		Short: "Count the files known to a metadata handler",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, svc, err := openService(cmd.Context(), global, env)
			if err != nil {
				return err
			}
			defer svc.Close()
			out, err := svc.Functions.CountFiles(ctx, iomigrate.CountFilesInput{Handler: handler})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Count)
			return nil
		},
	}
	cmd.Flags().StringVar(&handler, "handler", "default", "Metadata handler identifier")
	return cmd
}

func newListHandlersCommand(global *globalOptions, env func() (settings.Source, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "list-handlers",
		Short: "List the configured handler identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, svc, err := openService(cmd.Context(), global, env)
			if err != nil {
				return err
			}
			defer svc.Close()
			out, err := svc.Functions.ListHandlers(ctx)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, id := range out.Metadata {
				fmt.Fprintf(w, "metadata\t%s\n", id)
			}
			for _, id := range out.Binarydata {
				fmt.Fprintf(w, "binarydata\t%s\n", id)
			}
			return nil
		},
	}
}
