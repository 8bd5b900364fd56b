package handlerfactory

import (
	"io"

	"github.com/asecurityteam/iomigrate/pkg/domain"
	"github.com/hashicorp/go-multierror"
)

// Registry pairs the metadata and binarydata factories of a runtime and owns
// the backends that must be released on shutdown.
type Registry struct {
	Metadata   *Metadata
	Binarydata *Binarydata
	closers    []io.Closer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		Metadata:   &Metadata{Handlers: make(map[string]domain.MetadataHandler)},
		Binarydata: &Binarydata{Handlers: make(map[string]domain.BinarydataHandler)},
	}
}

// AddMetadata registers a metadata handler. Handlers that implement
// io.Closer are closed by Close.
func (r *Registry) AddMetadata(identifier string, h domain.MetadataHandler) {
	r.Metadata.Handlers[identifier] = h
	r.track(h)
}

// AddBinarydata registers a binarydata handler. Handlers that implement
// io.Closer are closed by Close.
func (r *Registry) AddBinarydata(identifier string, h domain.BinarydataHandler) {
	r.Binarydata.Handlers[identifier] = h
	r.track(h)
}

func (r *Registry) track(h interface{}) {
	c, ok := h.(io.Closer)
	if !ok {
		return
	}
	for _, existing := range r.closers {
		if existing == c {
			return
		}
	}
	r.closers = append(r.closers, c)
}

// Close releases every registered backend and reports all failures.
func (r *Registry) Close() error {
	var result *multierror.Error
	for _, c := range r.closers {
		if err := c.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	r.closers = nil
	return result.ErrorOrNil()
}
