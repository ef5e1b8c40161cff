// Package v1handler implements the /api endpoints on top of the cracker
// service. Request and response bodies are JSON, encoded with jx.
package v1handler

import (
	"context"
	"errors"
	"hashhush/internal/config"
	"hashhush/internal/cracker"
	"hashhush/pkg/logger"
	"hashhush/pkg/serrors"
	"net/http"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Deps are the services handlers delegate to.
type Deps struct {
	Cracker cracker.Cracker
}

// Options limit what callers may send.
type Options struct {
	// MaxBodyBytes limits request bodies; zero means unlimited.
	MaxBodyBytes int64
	// MaxDictionarySize limits caller supplied dictionaries; zero means unlimited.
	MaxDictionarySize int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxBodyBytes:      cfg.HTTP.MaxBodyBytes,
		MaxDictionarySize: cfg.Cracker.MaxDictionarySize,
	}
}

type Handler struct {
	deps    Deps
	options Options
}

func New(deps Deps, options Options) *Handler {
	return &Handler{deps: deps, options: options}
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string
	Message string
}

// Encode writes the error as a JSON object.
func (r ErrorResponse) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("code")
	e.Str(r.Code)
	e.FieldStart("message")
	e.Str(r.Message)
	e.ObjEnd()
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

var defaultMessages = map[serrors.Kind]string{ //nolint: gochecknoglobals
	serrors.ErrMissingInput:          "required input is missing",
	serrors.ErrUnsupportedAlgorithm:  "unsupported hash algorithm",
	serrors.ErrAlgorithmUndetectable: "unable to detect hash algorithm",
	serrors.ErrBadRequest:            "bad request",
	serrors.ErrUnauthorized:          "unauthorized",
	serrors.ErrNotFound:              "resource not found",
	serrors.ErrRateLimited:           "too many requests",
}

// NewError maps err onto a status code and response. Errors without a
// semantic kind, and internal ones, are reported as a generic internal
// error so causes never leak to callers.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	kind := serrors.KindOf(err)

	var status int
	switch kind {
	case serrors.ErrMissingInput, serrors.ErrUnsupportedAlgorithm,
		serrors.ErrAlgorithmUndetectable, serrors.ErrBadRequest:
		status = http.StatusBadRequest
	case serrors.ErrUnauthorized:
		status = http.StatusUnauthorized
	case serrors.ErrNotFound:
		status = http.StatusNotFound
	case serrors.ErrRateLimited:
		status = http.StatusTooManyRequests
	default:
		logger.Error(ctx, "request failed", zap.Error(err))

		return &ErrorStatusCode{
			StatusCode: http.StatusInternalServerError,
			Response:   ErrorResponse{Code: serrors.ErrInternal.Error(), Message: "internal error"},
		}
	}

	msg := defaultMessages[kind]
	var se *serrors.Error
	if errors.As(err, &se) && se.Message() != "" {
		msg = se.Message()
	}
	logger.Debug(ctx, "request rejected", zap.String("code", kind.Error()), zap.Error(err))

	return &ErrorStatusCode{
		StatusCode: status,
		Response:   ErrorResponse{Code: kind.Error(), Message: msg},
	}
}

// encoder is implemented by every response body.
type encoder interface {
	Encode(e *jx.Encoder)
}

// endpoint handles one request and returns the body to send with 200 OK.
type endpoint func(w http.ResponseWriter, r *http.Request) (encoder, error)

func (h Handler) serve(fn endpoint) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := fn(w, r)
		if err != nil {
			h.WriteError(w, r, err)

			return
		}

		writeJSON(w, http.StatusOK, res)
	}
}

// WriteError writes err as an error response.
func (h Handler) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(w, res.StatusCode, res.Response)
}

func writeJSON(w http.ResponseWriter, status int, v encoder) {
	var e jx.Encoder
	v.Encode(&e)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

// Register mounts all endpoints on mux. Crack requests pass through sec,
// which may require a bearer token.
func (h Handler) Register(mux *http.ServeMux, sec *SecHandler) {
	if sec == nil {
		sec = &SecHandler{}
	}

	mux.HandleFunc("GET /api/health", h.serve(h.Health))
	mux.HandleFunc("GET /api/algorithms", h.serve(h.Algorithms))
	mux.HandleFunc("POST /api/detect", h.serve(h.Detect))
	mux.HandleFunc("POST /api/generate", h.serve(h.Generate))
	mux.Handle("POST /api/crack", sec.Middleware(h.serve(h.Crack), h.WriteError))
	mux.HandleFunc("GET /api/test-crack", h.serve(h.TestCrack))
}

// NotFound answers requests for unknown routes.
func (h Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.WriteError(w, r, serrors.With(serrors.ErrNotFound, "route not found"))
}
