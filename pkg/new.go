package iomigrate

import (
	"context"

	"github.com/asecurityteam/iomigrate/pkg/domain"
	"github.com/asecurityteam/iomigrate/pkg/handlerfactory"
	"github.com/asecurityteam/iomigrate/pkg/handlerfetcher"
	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/settings/v2"
)

// EnvPrefix is the prefix of every configuration variable.
const EnvPrefix = "IOMIGRATE"

func prefixed(s settings.Source) settings.Source {
	return &settings.PrefixSource{Source: s, Prefix: []string{EnvPrefix}}
}

// Service holds the configured backends and the functions bound to them.
type Service struct {
	Registry  *handlerfactory.Registry
	Functions *Functions
	Fetcher   *handlerfetcher.Static
}

// NewService opens the IO backends described by the source.
func NewService(ctx context.Context, s settings.Source) (*Service, error) {
	reg := new(handlerfactory.Registry)
	if err := settings.NewComponent(ctx, prefixed(s), &IOComponent{}, reg); err != nil {
		return nil, err
	}
	return NewServiceFromRegistry(reg), nil
}

// NewServiceFromRegistry binds the functions to an existing registry.
func NewServiceFromRegistry(reg *handlerfactory.Registry) *Service {
	fns := &Functions{Registry: reg}
	return &Service{
		Registry:  reg,
		Functions: fns,
		Fetcher:   &handlerfetcher.Static{Handlers: fns.Handlers()},
	}
}

// Close releases the backends.
func (s *Service) Close() error {
	return s.Registry.Close()
}

// NewStatic generates an HTTP runtime serving the functions of the fetcher.
func NewStatic(ctx context.Context, s settings.Source, fetcher domain.HandlerFetcher) (*runhttp.Runtime, error) {
	conf := &RouterConfig{
		HandlerFetcher: fetcher,
	}
	router := NewRouter(conf)
	rtC := &runhttp.Component{Handler: router}
	rt := new(runhttp.Runtime)
	err := settings.NewComponent(ctx, prefixed(s), rtC, rt)
	return rt, err
}
