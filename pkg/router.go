package iomigrate

import (
	"net/http"

	"github.com/asecurityteam/iomigrate/pkg/domain"
	v1 "github.com/asecurityteam/iomigrate/pkg/handlers/v1"
	"github.com/asecurityteam/runhttp"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// InvokePath is the route of the Lambda Invoke API.
const InvokePath = "/2015-03-31/functions/{functionName}/invocations"

// RouterConfig is used to alter the behavior of the default router
// and the HTTP endpoint handlers that it manages.
type RouterConfig struct {
	// HealthCheck is the route answered with automatic 200s for liveliness
	// probes. The default value is /healthcheck
	HealthCheck string

	// HandlerFetcher resolves function names. There is no default.
	HandlerFetcher domain.HandlerFetcher

	// LogFn extracts the request logger from the request context. The
	// default value is runhttp.LoggerFromContext.
	LogFn domain.LogFn
	// StatFn extracts the request stat client from the request context.
	// The default value is runhttp.StatFromContext.
	StatFn domain.StatFn
	// URLParamFn extracts URL parameters from the request. The default
	// value is chi.URLParamFromCtx to match the chi mux.
	URLParamFn domain.URLParamFn
}

func applyDefaults(conf *RouterConfig) *RouterConfig {
	if conf.HealthCheck == "" {
		conf.HealthCheck = "/healthcheck"
	}
	if conf.LogFn == nil {
		conf.LogFn = runhttp.LoggerFromContext
	}
	if conf.StatFn == nil {
		conf.StatFn = runhttp.StatFromContext
	}
	if conf.URLParamFn == nil {
		conf.URLParamFn = chi.URLParamFromCtx
	}
	return conf
}

// NewRouter generates a chi mux with the health check and the Lambda Invoke
// API bound. Additional routes and middleware may be added by the caller.
func NewRouter(conf *RouterConfig) *chi.Mux {
	conf = applyDefaults(conf)
	router := chi.NewMux()
	router.Use(middleware.Heartbeat(conf.HealthCheck))

	invokeHandler := &v1.Invoke{
		Fetcher:    conf.HandlerFetcher,
		LogFn:      conf.LogFn,
		StatFn:     conf.StatFn,
		URLParamFn: conf.URLParamFn,
	}

	router.Method(http.MethodPost, InvokePath, invokeHandler)
	return router
}
