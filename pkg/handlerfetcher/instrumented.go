package handlerfetcher

import (
	"context"

	"github.com/asecurityteam/iomigrate/pkg/domain"
	"github.com/asecurityteam/logevent/v2"
	"github.com/rs/xstats"
)

// Instrumented decorates every Handler of the wrapped fetcher so that each
// invocation finds a logger and a stat client in its context. It stands in
// for the request middleware of the HTTP runtime when functions run in the
// native lambda runtime.
type Instrumented struct {
	Fetcher domain.HandlerFetcher
	Logger  domain.Logger
	Stat    domain.Stat
}

// FetchHandler calls the underlying fetcher and adds the injection.
func (f *Instrumented) FetchHandler(ctx context.Context, name string) (domain.Handler, error) {
	h, err := f.Fetcher.FetchHandler(ctx, name)
	if err != nil {
		return nil, err
	}
	return &instrumentedHandler{Handler: h, logger: f.Logger, stat: f.Stat}, nil
}

type instrumentedHandler struct {
	domain.Handler
	logger domain.Logger
	stat   domain.Stat
}

func (h *instrumentedHandler) Invoke(ctx context.Context, b []byte) ([]byte, error) {
	if h.logger != nil {
		ctx = logevent.NewContext(ctx, h.logger.Copy())
	}
	if h.stat != nil {
		ctx = xstats.NewContext(ctx, h.stat)
	}
	return h.Handler.Invoke(ctx, b)
}
