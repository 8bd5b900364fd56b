package migration

import (
	"context"
	"fmt"
	"io"

	"github.com/asecurityteam/iomigrate/pkg/domain"
	"github.com/asecurityteam/logevent/v2"
)

// Handler holds the resolved IO handlers of a migration and the logging
// helpers shared by the migrators built on top of it.
type Handler struct {
	metadataFactory   domain.MetadataHandlerFactory
	binarydataFactory domain.BinarydataHandlerFactory
	logger            domain.Logger

	fromMetadata   domain.MetadataHandler
	fromBinarydata domain.BinarydataHandler
	toMetadata     domain.MetadataHandler
	toBinarydata   domain.BinarydataHandler
}

// NewHandler creates a Handler that resolves identifiers through the given
// factories. A nil logger discards every log event.
func NewHandler(metadataFactory domain.MetadataHandlerFactory, binarydataFactory domain.BinarydataHandlerFactory, logger domain.Logger) *Handler {
	if logger == nil {
		logger = logevent.New(logevent.Config{Output: io.Discard})
	}
	return &Handler{
		metadataFactory:   metadataFactory,
		binarydataFactory: binarydataFactory,
		logger:            logger,
	}
}

// Configure resolves the four identifiers and returns the same Handler so
// that calls can be chained. Errors of the factories are returned unchanged
// and leave the previously configured handlers in place.
func (h *Handler) Configure(ctx context.Context, fromMetadataID string, fromBinarydataID string, toMetadataID string, toBinarydataID string) (*Handler, error) {
	fromMetadata, err := h.metadataFactory.ConfiguredHandler(ctx, fromMetadataID)
	if err != nil {
		return h, err
	}
	fromBinarydata, err := h.binarydataFactory.ConfiguredHandler(ctx, fromBinarydataID)
	if err != nil {
		return h, err
	}
	toMetadata, err := h.metadataFactory.ConfiguredHandler(ctx, toMetadataID)
	if err != nil {
		return h, err
	}
	toBinarydata, err := h.binarydataFactory.ConfiguredHandler(ctx, toBinarydataID)
	if err != nil {
		return h, err
	}
	h.fromMetadata = fromMetadata
	h.fromBinarydata = fromBinarydata
	h.toMetadata = toMetadata
	h.toBinarydata = toBinarydata
	return h, nil
}

// Configured reports whether Configure has succeeded at least once.
func (h *Handler) Configured() bool {
	return h.fromMetadata != nil && h.fromBinarydata != nil && h.toMetadata != nil && h.toBinarydata != nil
}

// FromMetadataHandler is the metadata handler files are read from.
func (h *Handler) FromMetadataHandler() domain.MetadataHandler { return h.fromMetadata }

// FromBinarydataHandler is the binarydata handler files are read from.
func (h *Handler) FromBinarydataHandler() domain.BinarydataHandler { return h.fromBinarydata }

// ToMetadataHandler is the metadata handler files are written to.
func (h *Handler) ToMetadataHandler() domain.MetadataHandler { return h.toMetadata }

// ToBinarydataHandler is the binarydata handler files are written to.
func (h *Handler) ToBinarydataHandler() domain.BinarydataHandler { return h.toBinarydata }

// LogError emits an error event.
func (h *Handler) LogError(message string) {
	h.logger.Error(errorEvent{Message: message})
}

// LogInfo emits an informational event.
func (h *Handler) LogInfo(message string) {
	h.logger.Info(infoEvent{Message: message})
}

// LogMissingFile emits an informational event naming a file that the source
// handlers do not hold.
func (h *Handler) LogMissingFile(id string) {
	h.LogInfo(fmt.Sprintf("File with id %s not found", id))
}
