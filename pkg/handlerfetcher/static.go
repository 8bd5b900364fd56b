package handlerfetcher

import (
	"context"
	"sort"

	"github.com/asecurityteam/iomigrate/pkg/domain"
)

// Static is a HandlerFetcher over a fixed mapping of names to Handler
// instances. Every function runs inside the process and shares the resources
// of the runtime. Adding or removing a function requires a new build.
type Static struct {
	// Handlers maps function names to executable functions.
	Handlers map[string]domain.Handler
}

// FetchHandler resolves the name using the internal mapping.
func (f *Static) FetchHandler(ctx context.Context, name string) (domain.Handler, error) {
	h, ok := f.Handlers[name]
	if !ok {
		return nil, domain.NotFoundError{ID: name}
	}
	return h, nil
}

// Names lists the registered function names in sorted order.
func (f *Static) Names() []string {
	names := make([]string, 0, len(f.Handlers))
	for name := range f.Handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
