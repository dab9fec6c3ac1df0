// Package server exposes the orchestration core over HTTP: JSON endpoints
// for service info and model catalogs, a Server-Sent Events chat stream and
// a websocket equivalent.
package server

import (
	"context"
	"errors"
	"iter"
	"log/slog"
	"net/http"
	"time"

	orchestration "github.com/polliant/megagent-core/core"
	"github.com/polliant/megagent-core/core/events"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Server timeouts. The write timeout stays above the provider request
// timeout so long streams are not cut off by the HTTP server itself.
const (
	readHeaderTimeout = 10 * time.Second
	writeTimeout      = 310 * time.Second
	idleTimeout       = 120 * time.Second
)

// Gateway is the orchestration surface the transport drives.
type Gateway interface {
	Process(ctx context.Context, sessionID, message string, opts ...orchestration.ProcessOption) iter.Seq[events.Event]
	ClearHistory(sessionID string)
}

type Config struct {
	Logger *slog.Logger
	// Gateway handles chat turns. Required.
	Gateway Gateway
}

type Server struct {
	handler http.Handler
}

func NewServer(cfg Config) (*Server, error) {
	if cfg.Gateway == nil {
		return nil, errors.New("gateway is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	h := &handlers{gateway: cfg.Gateway, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api", h.apiInfo)
	mux.HandleFunc("GET /models", h.models)
	mux.HandleFunc("POST /chat", h.chat)
	mux.HandleFunc("POST /clear", h.clear)
	mux.HandleFunc("GET /ws", h.websocket)

	var handler http.Handler = mux
	handler = corsMiddleware()(handler)
	handler = loggingMiddleware(logger)(handler)
	handler = recoveryMiddleware(logger)(handler)
	handler = otelhttp.NewHandler(handler, "gateway",
		otelhttp.WithSpanNameFormatter(func(operationName string, r *http.Request) string {
			return operationName + " " + r.Method + " " + r.URL.Path
		}),
	)

	return &Server{handler: handler}, nil
}

// Handler returns the server as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe serves on addr until ctx is canceled, then drains in-flight
// requests before returning.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
