package domain

import (
	"context"
)

// MetadataHandlerFactory resolves a configured identifier to a
// MetadataHandler. Unknown identifiers must emit a NotFoundError.
type MetadataHandlerFactory interface {
	ConfiguredHandler(ctx context.Context, identifier string) (MetadataHandler, error)
	Identifiers() []string
}

// BinarydataHandlerFactory resolves a configured identifier to a
// BinarydataHandler. Unknown identifiers must emit a NotFoundError.
type BinarydataHandlerFactory interface {
	ConfiguredHandler(ctx context.Context, identifier string) (BinarydataHandler, error)
	Identifiers() []string
}
