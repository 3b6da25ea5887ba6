// Package b64server exposes a b64.Codec over HTTP.
//
// Every operation is a POST with a JSON body of the form {"input": ...}.
// The input may be any JSON value; anything other than a string is rejected
// with 400, the same way the codec rejects non-string values.
//
//	POST /encode     {"output": "SGVsbG8="}
//	POST /decode     {"output": "Hello"}
//	POST /normalize  {"output": "SGVsbG8="}
//	POST /classify   {"type": "base64"}
//	GET  /metrics    Prometheus exposition
package b64server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/epithet-ssh/b64/pkg/b64"
)

// DefaultBodySizeLimit is the maximum request body size when the codec
// has no input limit.
const DefaultBodySizeLimit = 64 * 1024 * 1024

var errBodyTooLarge = errors.New("request body too large")

// Request is the body of every POST endpoint.
type Request struct {
	Input any `json:"input"`
}

// Response is returned by encode, decode and normalize.
type Response struct {
	Output string `json:"output"`
}

// ClassifyResponse is returned by classify.
type ClassifyResponse struct {
	Type b64.StringType `json:"type"`
}

// ErrorResponse is returned with any non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}

type server struct {
	codec   *b64.Codec
	log     *slog.Logger
	metrics *metrics
}

// New returns an http.Handler serving codec. Metrics are registered on reg;
// pass nil for a private registry. A nil log discards output.
func New(codec *b64.Codec, log *slog.Logger, reg *prometheus.Registry) http.Handler {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &server{
		codec:   codec,
		log:     log,
		metrics: newMetrics(reg),
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Post("/encode", s.action("encode", codec.EncodeValue))
	r.Post("/decode", s.action("decode", codec.DecodeValue))
	r.Post("/normalize", s.action("normalize", func(v any) (string, error) {
		str, ok := v.(string)
		if !ok {
			return "", b64.ErrTypeMismatch
		}
		return codec.Normalize(str)
	}))
	r.Post("/classify", s.classify)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return r
}

func (s *server) action(op string, fn func(any) (string, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := s.readRequest(r)
		if err != nil {
			s.badRequest(w, op, err)
			return
		}

		out, err := fn(req.Input)
		if err != nil {
			status := statusFor(err)
			s.metrics.request(op, outcomeFor(err))
			s.log.Debug("request rejected", "op", op, "status", status, "request_id", middleware.GetReqID(r.Context()))
			s.writeJSON(w, status, ErrorResponse{Error: err.Error()})
			return
		}

		s.metrics.request(op, "ok")
		s.writeJSON(w, http.StatusOK, Response{Output: out})
	}
}

func (s *server) classify(w http.ResponseWriter, r *http.Request) {
	req, err := s.readRequest(r)
	if err != nil {
		s.badRequest(w, "classify", err)
		return
	}

	t := s.codec.ClassifyValue(req.Input)
	s.metrics.request("classify", "ok")
	s.metrics.classification(t)
	s.writeJSON(w, http.StatusOK, ClassifyResponse{Type: t})
}

func (s *server) badRequest(w http.ResponseWriter, op string, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, errBodyTooLarge) {
		status = http.StatusRequestEntityTooLarge
	}
	s.metrics.request(op, "bad_request")
	s.log.Debug("bad request", "op", op, "status", status, "error", err)
	s.writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

// readRequest reads at most one body-limit's worth of JSON.
func (s *server) readRequest(r *http.Request) (*Request, error) {
	limit := s.bodyLimit()
	body, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("unable to read body: %w", err)
	}
	if int64(len(body)) > limit {
		return nil, errBodyTooLarge
	}

	var req Request
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, errors.New("unable to parse body")
	}
	return &req, nil
}

// bodyLimit leaves room for JSON escaping around a maximum-size input.
// It stays below math.MaxInt64 so readRequest can read one byte past it.
func (s *server) bodyLimit() int64 {
	n := int64(s.codec.Security().MaxInputSize())
	if n == 0 {
		return DefaultBodySizeLimit
	}
	if n > (math.MaxInt64-1024)/6 {
		return math.MaxInt64 - 1
	}
	return n*6 + 1024
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, b64.ErrTypeMismatch):
		return http.StatusBadRequest
	case errors.Is(err, b64.ErrSizeLimitExceeded):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, b64.ErrInvalidFormat):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, b64.ErrTypeMismatch):
		return "type_mismatch"
	case errors.Is(err, b64.ErrSizeLimitExceeded):
		return "too_large"
	case errors.Is(err, b64.ErrInvalidFormat):
		return "invalid_format"
	default:
		return "error"
	}
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Debug("failed to write response", "status", status, "error", err)
	}
}
