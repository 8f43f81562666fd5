// Package server exposes the estimators and geometry calculators as a JSON
// HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prasdif/calculator/internal/fullhome"
	"github.com/prasdif/calculator/internal/pricing"
	"github.com/prasdif/calculator/pkg/constants"
	"github.com/prasdif/calculator/pkg/validation"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

type contextKey string

const requestIDKey contextKey = "requestID"

type handler struct {
	logger      *zap.Logger
	engine      *pricing.Engine
	composer    *fullhome.Composer
	maxBodySize int64
	version     string
}

// envelope is the body of every API response.
type envelope struct {
	Success bool        `json:"success"`
	Result  interface{} `json:"result,omitempty"`
	Display interface{} `json:"display,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// NewHandler constructs the HTTP handler serving the estimate, geometry and
// unit APIs. A nil engine prices against the built-in rate table.
func NewHandler(logger *zap.Logger, engine *pricing.Engine, maxBodySize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if engine == nil {
		engine = pricing.NewEngine(logger, nil)
	}
	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logger,
		engine:      engine,
		composer:    fullhome.NewComposer(logger, engine),
		maxBodySize: maxBodySize,
		version:     trimmedVersion,
	}

	r := chi.NewRouter()
	r.Use(h.requestID)
	r.Use(h.logRequests)
	r.Use(h.recoverer)
	r.Use(middleware.Timeout(constants.DefaultRequestTimeoutSeconds * time.Second))

	r.NotFound(h.handleNotFound)
	r.MethodNotAllowed(h.handleMethodNotAllowed)

	r.Route("/api", func(r chi.Router) {
		r.Route("/estimate", func(r chi.Router) {
			r.Get("/{category}", h.handleEstimateUsage)
			r.Post("/kitchen", h.handleKitchen)
			r.Post("/wardrobe", h.handleWardrobe)
			r.Post("/tv-unit", h.handleTVUnit)
			r.Post("/bed", h.handleBed)
			r.Post("/fullhome", h.handleFullHome)
		})
		r.Post("/geometry/diagonal", h.handleDiagonal)
		r.Post("/geometry/rectangle", h.handleRectangle)
		r.Post("/convert", h.handleConvert)
		r.Get("/units", h.handleUnits)
		r.Get("/version", h.handleVersion)
	})

	return r
}

func (h *handler) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(RequestIDHeader))
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		h.logger.Info("handled request",
			zap.String("op", "server.request"),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", requestIDFrom(r.Context())),
		)
	})
}

// recoverer turns a panic in a handler into a 500 envelope. Panics only come
// from programming errors such as a rate key missing from the catalog.
func (h *handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			h.logger.Error("recovered from panic",
				zap.String("op", "server.recoverer"),
				zap.Any("panic", rec),
				zap.String("request_id", requestIDFrom(r.Context())),
				zap.ByteString("stack", debug.Stack()),
			)
			h.writeJSON(w, http.StatusInternalServerError, envelope{Error: "internal error"})
		}()
		next.ServeHTTP(w, r)
	})
}

func (h *handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusNotFound, envelope{Error: "not found"})
}

func (h *handler) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusMethodNotAllowed, envelope{Error: "method not allowed"})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// decodeJSON reads a size-limited JSON body into dst. Malformed bodies are
// reported as validation errors; field-level validation errors raised while
// decoding are passed through unchanged.
func (h *handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(dst); err != nil {
		return h.bodyError(err)
	}
	// The body must hold exactly one JSON value.
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return errBodyTooLarge{limit: h.maxBodySize}
		}
		return validation.New("body", "invalid JSON payload")
	}
	return nil
}

func (h *handler) bodyError(err error) error {
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		return errBodyTooLarge{limit: h.maxBodySize}
	case validation.IsValidation(err):
		return err
	}
	return validation.New("body", "invalid JSON payload")
}

type errBodyTooLarge struct {
	limit int64
}

func (e errBodyTooLarge) Error() string {
	return fmt.Sprintf("request body exceeds limit of %d bytes", e.limit)
}

func (h *handler) respondResult(w http.ResponseWriter, result, display interface{}) {
	h.writeJSON(w, http.StatusOK, envelope{Success: true, Result: result, Display: display})
}

// respondError maps validation errors to 400 with their message and any
// other failure to a logged 500.
func (h *handler) respondError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var tooLarge errBodyTooLarge
	switch {
	case errors.As(err, &tooLarge):
		h.writeJSON(w, http.StatusRequestEntityTooLarge, envelope{Error: tooLarge.Error()})
	case validation.IsValidation(err):
		h.logger.Debug("rejected request",
			zap.String("op", op),
			zap.String("request_id", requestIDFrom(r.Context())),
			zap.Error(err),
		)
		h.writeJSON(w, http.StatusBadRequest, envelope{Error: err.Error()})
	default:
		h.logger.Error("request failed",
			zap.String("op", op),
			zap.String("request_id", requestIDFrom(r.Context())),
			zap.Error(err),
		)
		h.writeJSON(w, http.StatusInternalServerError, envelope{Error: "internal error"})
	}
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("failed to encode JSON response", zap.String("op", "server.writeJSON"), zap.Error(err))
		status = http.StatusInternalServerError
		body = internalErrorBody
	} else {
		body = append(body, '\n')
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		h.logger.Error("failed to write JSON response", zap.String("op", "server.writeJSON"), zap.Error(err))
	}
}

var internalErrorBody = []byte(`{"success":false,"error":"internal error"}` + "\n")
