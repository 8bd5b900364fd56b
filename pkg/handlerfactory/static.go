package handlerfactory

import (
	"context"
	"sort"

	"github.com/asecurityteam/iomigrate/pkg/domain"
)

// Static is a factory that maintains a static mapping of identifiers to
// handler instances. All handlers are built once when the runtime starts and
// there is no "live update" feature. Adding or reconfiguring a handler
// requires a restart.
type Static[H any] struct {
	// Handlers is the underlying static map of identifiers to handlers.
	Handlers map[string]H
}

// ConfiguredHandler resolves the identifier using the internal mapping.
func (f *Static[H]) ConfiguredHandler(ctx context.Context, identifier string) (H, error) {
	h, ok := f.Handlers[identifier]
	if !ok {
		var zero H
		return zero, domain.NotFoundError{ID: identifier}
	}
	return h, nil
}

// Identifiers returns the configured identifiers in lexical order.
func (f *Static[H]) Identifiers() []string {
	ids := make([]string, 0, len(f.Handlers))
	for id := range f.Handlers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Metadata is the factory of metadata handlers.
type Metadata = Static[domain.MetadataHandler]

// Binarydata is the factory of binarydata handlers.
type Binarydata = Static[domain.BinarydataHandler]

var (
	_ domain.MetadataHandlerFactory   = &Metadata{}
	_ domain.BinarydataHandlerFactory = &Binarydata{}
)
