package domain

import (
	"github.com/asecurityteam/runhttp"
	"github.com/aws/aws-lambda-go/lambda"
)

// Logger receives the migration events: per file failures, failed
// rollbacks and the start and end of a run. Backed by logevent.
type Logger = runhttp.Logger

// LogFn returns the Logger bound to a request or CLI run.
type LogFn = runhttp.LogFn

// Stat counts migrated, missing and failed files and times a run.
// Backed by xstats.
type Stat = runhttp.Stat

// StatFn returns the Stat bound to a request or CLI run.
type StatFn = runhttp.StatFn

// Handler is one of the migration functions (migrateFiles, migrateFile,
// countFiles, listHandlers) in the form the Lambda runtime and the invoke
// endpoint both call.
type Handler = lambda.Handler
