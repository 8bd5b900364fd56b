package iomigrate

import (
	"context"

	"github.com/asecurityteam/iomigrate/pkg/domain"
	"github.com/asecurityteam/iomigrate/pkg/handlerfactory"
	"github.com/asecurityteam/iomigrate/pkg/migration"
	"github.com/aws/aws-lambda-go/lambda"
)

// Names of the functions exposed by the service.
const (
	FunctionMigrateFiles = "migrateFiles"
	FunctionMigrateFile  = "migrateFile"
	FunctionCountFiles   = "countFiles"
	FunctionListHandlers = "listHandlers"
)

// MigrateFileInput selects one file and the handlers to move it between.
type MigrateFileInput struct {
	From migration.HandlerPair `json:"from"`
	To   migration.HandlerPair `json:"to"`
	ID   string                `json:"id"`
}

// MigrateFileOutput reports what happened to the file.
type MigrateFileOutput struct {
	ID      string            `json:"id"`
	Outcome migration.Outcome `json:"outcome"`
}

// CountFilesInput names a metadata handler.
type CountFilesInput struct {
	Handler string `json:"handler"`
}

// CountFilesOutput is the number of files known to the handler.
type CountFilesOutput struct {
	Handler string `json:"handler"`
	Count   int    `json:"count"`
}

// ListHandlersOutput lists the configured handler identifiers.
type ListHandlersOutput struct {
	Metadata   []string `json:"metadata"`
	Binarydata []string `json:"binarydata"`
}

// Functions binds the operations of the service to a handler registry.
type Functions struct {
	Registry *handlerfactory.Registry
	LogFn    domain.LogFn
	StatFn   domain.StatFn
	Progress migration.ProgressFn
}

func (f *Functions) runner() *migration.Runner {
	return &migration.Runner{
		Metadata:   f.Registry.Metadata,
		Binarydata: f.Registry.Binarydata,
		LogFn:      f.LogFn,
		StatFn:     f.StatFn,
		Progress:   f.Progress,
	}
}

// MigrateFiles migrates every file of the source handlers.
func (f *Functions) MigrateFiles(ctx context.Context, req migration.Request) (migration.Report, error) {
	return f.runner().Run(ctx, req)
}

// MigrateFile migrates a single file.
func (f *Functions) MigrateFile(ctx context.Context, in MigrateFileInput) (MigrateFileOutput, error) {
	if in.ID == "" {
		return MigrateFileOutput{}, domain.InvalidArgumentError{Argument: "id", Reason: "must not be empty"}
	}
	m, err := f.runner().Migrator(ctx, in.From, in.To)
	if err != nil {
		return MigrateFileOutput{}, err
	}
	outcome, err := m.MigrateFile(ctx, in.ID)
	if err != nil {
		return MigrateFileOutput{}, err
	}
	return MigrateFileOutput{ID: in.ID, Outcome: outcome}, nil
}

// CountFiles counts the files known to a metadata handler.
func (f *Functions) CountFiles(ctx context.Context, in CountFilesInput) (CountFilesOutput, error) {
	n, err := f.runner().Count(ctx, in.Handler)
	if err != nil {
		return CountFilesOutput{}, err
	}
	return CountFilesOutput{Handler: in.Handler, Count: n}, nil
}

// ListHandlers lists the configured handler identifiers.
func (f *Functions) ListHandlers(ctx context.Context) (ListHandlersOutput, error) {
	return ListHandlersOutput{
		Metadata:   f.Registry.Metadata.Identifiers(),
		Binarydata: f.Registry.Binarydata.Identifiers(),
	}, nil
}

// Handlers exposes every function as a lambda handler keyed by name.
func (f *Functions) Handlers() map[string]domain.Handler {
	return map[string]domain.Handler{
		FunctionMigrateFiles: lambda.NewHandler(f.MigrateFiles),
		FunctionMigrateFile:  lambda.NewHandler(f.MigrateFile),
		FunctionCountFiles:   lambda.NewHandler(f.CountFiles),
		FunctionListHandlers: lambda.NewHandler(f.ListHandlers),
	}
}
