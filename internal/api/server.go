// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the Hash Hush service.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"hashhush/internal/api/handler/v1handler"
	"hashhush/internal/config"
	"hashhush/pkg/controller"
	"hashhush/pkg/logger"
	"net/http"
	"time"

	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
type Options struct {
	// SecHandlerOptions configures bearer authentication for crack requests.
	SecHandlerOptions *v1handler.SecHandlerOptions
	// HandlerOptions limits request bodies and dictionaries.
	HandlerOptions v1handler.Options

	// Addr is the TCP address the server listens on, e.g. ":5000".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// EnablePprof mounts profiling handlers under /debug/pprof/.
	EnablePprof bool

	// AllowedOrigins lists origins allowed to make cross-origin requests.
	AllowedOrigins []string
	// RateLimitRequests per RateLimitWindow are allowed for each client on /api/; zero disables the limit.
	RateLimitRequests int
	RateLimitWindow   time.Duration
	// RateLimitTrustForwardedFor keys clients by forwarding headers instead of the peer address.
	RateLimitTrustForwardedFor bool
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),
		HandlerOptions:    v1handler.NewOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		EnablePprof:       cfg.HTTP.EnablePprof,

		AllowedOrigins:    cfg.CORS.AllowedOrigins,
		RateLimitRequests: cfg.RateLimit.Requests,
		RateLimitWindow:   cfg.RateLimit.Window,

		RateLimitTrustForwardedFor: cfg.RateLimit.TrustForwardedFor,
	}
}

type Deps struct {
	v1handler.Deps
}

// NewMeterProvider creates an OpenTelemetry meter provider whose
// instruments are exported through the default Prometheus registry, and
// therefore served on the metrics path.
func NewMeterProvider() (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// NewHandler builds the routing tree and middleware chain of the server:
// - Prometheus metrics endpoint (MetricsPath)
// - Embedded OpenAPI v1 spec and Swagger UI
// - /api routes, rate limited per client IP
// - pprof endpoints when enabled
// The result is wrapped with CORS, logging and gzip middlewares.
func NewHandler(deps Deps, opts Options) (http.Handler, error) {
	mux := http.NewServeMux()
	h := v1handler.New(deps.Deps, opts.HandlerOptions)

	// prometheus metrics server
	if opts.MetricsPath != "" {
		mux.Handle(opts.MetricsPath, promhttp.Handler())
	}

	// v1 specs file
	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"Hash Hush API",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// api
	secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
	if err != nil {
		return nil, fmt.Errorf("could not create sec handler: %w", err)
	}
	apiMux := http.NewServeMux()
	h.Register(apiMux, secHandler)
	apiMux.HandleFunc("/", h.NotFound)

	var limiter *controller.RateLimiter
	if opts.RateLimitRequests > 0 && opts.RateLimitWindow > 0 {
		limiter = controller.NewRateLimiter(opts.RateLimitRequests, opts.RateLimitWindow,
			opts.RateLimitTrustForwardedFor)
	}
	mux.Handle("/api/", controller.WithRateLimit(limiter)(apiMux))

	// pprof
	if opts.EnablePprof {
		mux.Handle(controller.PprofPrefix, controller.PprofMux())
	}

	mux.HandleFunc("/", h.NotFound)

	// compression
	handler := http.Handler(gzhttp.GzipHandler(mux))

	// cors
	handler = controller.WithCORS(opts.AllowedOrigins)(handler)

	// logger
	handler = controller.WithLogger(handler)

	return handler, nil
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(deps, opts)
	if err != nil {
		return nil, err
	}

	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout,
			`{"code":"TIMEOUT","message":"request timed out"}`)
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
		ErrorLog:          logger.StdLog(context.Background()),
	}, nil
}
