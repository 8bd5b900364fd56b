package iomigrate

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/asecurityteam/iomigrate/pkg/domain"
	"github.com/asecurityteam/iomigrate/pkg/handlerfetcher"
	"github.com/asecurityteam/logevent/v2"
	"github.com/asecurityteam/settings/v2"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/xstats"
)

const (
	// BuildModeHTTP runs an HTTP server that implements the Lambda Invoke
	// API for every function.
	BuildModeHTTP = "http"
	// BuildModeLambda runs the official lambda runtime for the function
	// named by TargetFunction.
	BuildModeLambda = "lambda"
)

var (
	// BuildMode determines the behavior of Start. It may be set at build
	// time with `-ldflags "-X github.com/asecurityteam/iomigrate/pkg.BuildMode=lambda"`.
	BuildMode = BuildModeHTTP
	// TargetFunction selects the function served in lambda mode.
	TargetFunction = ""
)

// Start opens the backends and serves the functions according to BuildMode.
func Start(ctx context.Context, s settings.Source) error {
	return StartMode(ctx, s, BuildMode, TargetFunction)
}

// StartMode works like Start with an explicit build mode and target.
func StartMode(ctx context.Context, s settings.Source, mode string, target string) error {
	if !strings.EqualFold(mode, BuildModeHTTP) && !strings.EqualFold(mode, BuildModeLambda) {
		return fmt.Errorf("unknown build mode %s", mode)
	}
	svc, err := NewService(ctx, s)
	if err != nil {
		return err
	}
	defer svc.Close()
	if strings.EqualFold(mode, BuildModeLambda) {
		return StartLambda(ctx, svc.Fetcher, target)
	}
	return StartHTTP(ctx, s, svc.Fetcher)
}

// StartHTTP runs the HTTP API.
func StartHTTP(ctx context.Context, s settings.Source, f domain.HandlerFetcher) error {
	rt, err := NewStatic(ctx, s, f)
	if err != nil {
		return err
	}
	return rt.Run()
}

// StartLambda runs the native lambda runtime for one function. Every
// invocation carries a logger writing to stdout.
func StartLambda(ctx context.Context, f domain.HandlerFetcher, target string) error {
	if target == "" {
		return domain.InvalidArgumentError{Argument: "target", Reason: "lambda mode needs a function name"}
	}
	f = &handlerfetcher.Instrumented{
		Fetcher: f,
		Logger:  logevent.New(logevent.Config{Level: "INFO", Output: os.Stdout}),
		Stat:    xstats.FromContext(ctx),
	}
	h, err := f.FetchHandler(ctx, target)
	if err != nil {
		return err
	}
	lambda.StartWithOptions(h, lambda.WithContext(ctx))
	return nil
}
