package main

import (
	iomigrate "github.com/asecurityteam/iomigrate/pkg"
	"github.com/asecurityteam/settings/v2"
	"github.com/spf13/cobra"
)

func newServeCommand(env func() (settings.Source, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the functions over the Lambda Invoke API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := env()
			if err != nil {
				return err
			}
			return iomigrate.StartMode(cmd.Context(), source, iomigrate.BuildModeHTTP, "")
		},
	}
}

func newLambdaCommand(env func() (settings.Source, error)) *cobra.Command {
	var function string
	cmd := &cobra.Command{
		Use:   "lambda --function <name>",
		Short: "Run one function in the native AWS Lambda runtime",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := env()
			if err != nil {
				return err
			}
			return iomigrate.StartMode(cmd.Context(), source, iomigrate.BuildModeLambda, function)
		},
	}
	cmd.Flags().StringVar(&function, "function", iomigrate.TargetFunction, "Name of the function to run")
	_ = cmd.MarkFlagRequired("function")
	return cmd
}
