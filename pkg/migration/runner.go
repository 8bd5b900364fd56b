package migration

import (
	"context"
	"time"

	"github.com/asecurityteam/iomigrate/pkg/domain"
	"github.com/asecurityteam/runhttp"
)

// DefaultBulkCount is the number of file IDs loaded per page.
const DefaultBulkCount = 100

const (
	statMigrated = "iomigrate.file.migrated"
	statMissing  = "iomigrate.file.missing"
	statFailed   = "iomigrate.file.failed"
	statRun      = "iomigrate.run.duration"
)

// Request describes one migration run.
type Request struct {
	From      HandlerPair `json:"from"`
	To        HandlerPair `json:"to"`
	BulkCount int         `json:"bulkCount"`
	DryRun    bool        `json:"dryRun"`
}

// Report summarizes a migration run.
type Report struct {
	Total    int           `json:"total"`
	Migrated int           `json:"migrated"`
	Missing  int           `json:"missing"`
	Failed   int           `json:"failed"`
	DryRun   bool          `json:"dryRun"`
	Elapsed  time.Duration `json:"elapsed"`
}

// ProgressFn is called after every file with the number of processed files
// and the total number of files.
type ProgressFn func(done int, total int)

// Runner migrates every file known to the source metadata handler.
type Runner struct {
	Metadata   domain.MetadataHandlerFactory
	Binarydata domain.BinarydataHandlerFactory
	// LogFn defaults to runhttp.LoggerFromContext.
	LogFn domain.LogFn
	// StatFn defaults to runhttp.StatFromContext.
	StatFn domain.StatFn
	// Progress is optional.
	Progress ProgressFn
}

// Count returns the number of files known to the metadata handler with the
// given identifier.
func (r *Runner) Count(ctx context.Context, metadataID string) (int, error) {
	h, err := r.Metadata.ConfiguredHandler(ctx, metadataID)
	if err != nil {
		return 0, err
	}
	lister, err := asLister(metadataID, h)
	if err != nil {
		return 0, err
	}
	return lister.CountFiles(ctx)
}

// Migrator returns a FileMigrator configured for the given pairs. Pairs that
// are incomplete, identical or cannot work together are rejected.
func (r *Runner) Migrator(ctx context.Context, from HandlerPair, to HandlerPair) (*FileMigrator, error) {
	if err := validatePairs(from, to); err != nil {
		return nil, err
	}
	m := NewFileMigrator(r.Metadata, r.Binarydata, r.logger(ctx))
	if _, err := m.Configure(ctx, from.Metadata, from.Binarydata, to.Metadata, to.Binarydata); err != nil {
		return nil, err
	}
	if err := checkPairing(to, m.ToMetadataHandler(), m.ToBinarydataHandler()); err != nil {
		return nil, err
	}
	return m, nil
}

// Run validates the request, resolves the handlers and migrates the files
// page by page. Files are processed sequentially.
func (r *Runner) Run(ctx context.Context, req Request) (Report, error) {
	start := time.Now()
	if err := validate(&req); err != nil {
		return Report{}, err
	}
	m, err := r.Migrator(ctx, req.From, req.To)
	if err != nil {
		return Report{}, err
	}
	lister, err := asLister(req.From.Metadata, m.FromMetadataHandler())
	if err != nil {
		return Report{}, err
	}
	total, err := lister.CountFiles(ctx)
	if err != nil {
		return Report{}, err
	}

	logger := r.logger(ctx)
	stater := r.stat(ctx)
	logger.Info(runStarted{
		From:      req.From.String(),
		To:        req.To.String(),
		Total:     total,
		BulkCount: req.BulkCount,
		DryRun:    req.DryRun,
	})
	report := Report{Total: total, DryRun: req.DryRun}
	if req.DryRun {
		report.Elapsed = time.Since(start)
		return report, nil
	}

	for offset := 0; offset < total; offset += req.BulkCount {
		ids, err := lister.LoadFileList(ctx, req.BulkCount, offset)
		if err != nil {
			report.Elapsed = time.Since(start)
			return report, err
		}
		for _, id := range ids {
			outcome, err := m.MigrateFile(ctx, id)
			if err != nil {
				report.Elapsed = time.Since(start)
				return report, err
			}
			switch outcome {
			case OutcomeMigrated:
				report.Migrated++
				stater.Count(statMigrated, 1)
			case OutcomeMissing:
				report.Missing++
				stater.Count(statMissing, 1)
			default:
				report.Failed++
				stater.Count(statFailed, 1)
			}
			if r.Progress != nil {
				r.Progress(report.Migrated+report.Missing+report.Failed, total)
			}
		}
		if len(ids) < req.BulkCount {
			break
		}
	}

	report.Elapsed = time.Since(start)
	stater.Timing(statRun, report.Elapsed)
	logger.Info(runFinished{
		Total:    report.Total,
		Migrated: report.Migrated,
		Missing:  report.Missing,
		Failed:   report.Failed,
		Elapsed:  report.Elapsed.String(),
	})
	return report, nil
}

func (r *Runner) logger(ctx context.Context) domain.Logger {
	if r.LogFn == nil {
		return runhttp.LoggerFromContext(ctx)
	}
	return r.LogFn(ctx)
}

func (r *Runner) stat(ctx context.Context) domain.Stat {
	if r.StatFn == nil {
		return runhttp.StatFromContext(ctx)
	}
	return r.StatFn(ctx)
}

func validate(req *Request) error {
	if req.BulkCount == 0 {
		req.BulkCount = DefaultBulkCount
	}
	if req.BulkCount < 0 {
		return domain.InvalidArgumentError{Argument: "bulkCount", Reason: "must be positive"}
	}
	return validatePairs(req.From, req.To)
}

func asLister(identifier string, h domain.MetadataHandler) (domain.FileLister, error) {
	lister, ok := h.(domain.FileLister)
	if !ok {
		return nil, domain.InvalidArgumentError{Argument: identifier, Reason: "metadata handler cannot list files"}
	}
	return lister, nil
}
