package migration

import (
	"context"
	"errors"
	"fmt"

	"github.com/asecurityteam/iomigrate/pkg/domain"
)

// Outcome is the result of migrating one file.
type Outcome string

const (
	// OutcomeMigrated means metadata and binary data were both written.
	OutcomeMigrated Outcome = "migrated"
	// OutcomeMissing means the source handlers do not hold the file.
	OutcomeMissing Outcome = "missing"
	// OutcomeFailed means reading or writing the file failed. Binary data
	// written by the failed attempt is removed again.
	OutcomeFailed Outcome = "failed"
)

// FileMigrator copies single files between the configured handlers.
type FileMigrator struct {
	*Handler
}

// NewFileMigrator creates a FileMigrator that still has to be configured.
func NewFileMigrator(metadataFactory domain.MetadataHandlerFactory, binarydataFactory domain.BinarydataHandlerFactory, logger domain.Logger) *FileMigrator {
	return &FileMigrator{Handler: NewHandler(metadataFactory, binarydataFactory, logger)}
}

// MigrateFile copies the metadata and binary data of the file with the given
// ID. Storage failures are logged and reported through the Outcome. Only a
// missing configuration or a canceled context produce an error.
func (m *FileMigrator) MigrateFile(ctx context.Context, id string) (Outcome, error) {
	if !m.Configured() {
		return OutcomeFailed, domain.NotConfiguredError{}
	}
	if err := ctx.Err(); err != nil {
		return OutcomeFailed, err
	}

	file, err := m.fromMetadata.Load(ctx, id)
	if err != nil {
		return m.readFailure(ctx, id, err)
	}
	resource, err := m.fromBinarydata.Resource(ctx, id)
	if err != nil {
		return m.readFailure(ctx, id, err)
	}
	defer resource.Close()

	mimeType := file.MimeType
	if mimeType == "" {
		// Not every metadata backend stores the type with the record.
		if mimeType, err = m.fromMetadata.MimeType(ctx, id); err != nil {
			mimeType = ""
		}
	}
	create := &domain.BinaryFileCreateStruct{
		ID:       id,
		Size:     file.Size,
		MTime:    file.MTime,
		MimeType: mimeType,
		Input:    resource,
	}

	// With shared binary storage only the metadata moves.
	created := false
	if !sameBinarydata(m.fromBinarydata, m.toBinarydata) {
		existed, err := m.destinationExists(ctx, id)
		if err != nil {
			m.LogError(fmt.Sprintf("Cannot check binary data of file with id %s: %s", id, err.Error()))
			return failure(ctx)
		}
		if err := m.toBinarydata.Create(ctx, create); err != nil {
			m.LogError(fmt.Sprintf("Cannot write binary data of file with id %s: %s", id, err.Error()))
			return failure(ctx)
		}
		created = !existed
	}
	if _, err := m.toMetadata.Create(ctx, create); err != nil {
		m.LogError(fmt.Sprintf("Cannot write metadata of file with id %s: %s", id, err.Error()))
		if !created {
			return failure(ctx)
		}
		if errDelete := m.toBinarydata.Delete(ctx, id); errDelete != nil {
			m.LogError(fmt.Sprintf("Cannot remove binary data of file with id %s after failed metadata write: %s", id, errDelete.Error()))
		}
		return failure(ctx)
	}
	return OutcomeMigrated, nil
}

// destinationExists reports whether the destination already holds content
// for the file. Only content written by this migration may be rolled back.
func (m *FileMigrator) destinationExists(ctx context.Context, id string) (bool, error) {
	r, err := m.toBinarydata.Resource(ctx, id)
	var notFound domain.BinaryFileNotFoundError
	switch {
	case err == nil:
		_ = r.Close()
		return true, nil
	case errors.As(err, &notFound):
		return false, nil
	default:
		return false, err
	}
}

func (m *FileMigrator) readFailure(ctx context.Context, id string, err error) (Outcome, error) {
	var notFound domain.BinaryFileNotFoundError
	if errors.As(err, &notFound) {
		m.LogMissingFile(id)
		return OutcomeMissing, nil
	}
	m.LogError(fmt.Sprintf("Cannot read file with id %s: %s", id, err.Error()))
	return failure(ctx)
}

// failure surfaces cancellation so that a run stops instead of failing every
// remaining file.
func failure(ctx context.Context) (Outcome, error) {
	return OutcomeFailed, ctx.Err()
}
