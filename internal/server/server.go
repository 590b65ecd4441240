// Package server exposes the recommendation pipeline over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/karolswdev/nichefinder/docs" // registers the OpenAPI document
)

// ErrListen indicates the server could not bind its address.
var ErrListen = errors.New("failed to listen")

// ErrServe indicates the server stopped with an error other than a normal shutdown.
var ErrServe = errors.New("HTTP server failed")

// ErrShutdown indicates in-flight requests did not finish within the shutdown timeout.
var ErrShutdown = errors.New("HTTP server shutdown failed")

// Options tune the router.
type Options struct {
	// MaxBodyBytes caps request bodies; zero or less disables the cap.
	MaxBodyBytes int64
}

// NewRouter builds the HTTP handler serving the API, the health probe and the Swagger UI.
func NewRouter(svc Recommender, opts Options) http.Handler {
	h := &handler{svc: svc}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog)
	r.Use(recoverer)
	r.Use(maxBody(opts.MaxBodyBytes))

	r.Get("/health", health)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api", func(r chi.Router) {
		r.Post("/analyze-niche", h.analyzeNiche)
	})

	return r
}

// Run listens on addr and serves handler until ctx is cancelled, then shuts down gracefully,
// giving in-flight requests up to shutdownTimeout to finish.
func Run(ctx context.Context, addr string, shutdownTimeout time.Duration, handler http.Handler) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Error().Err(err).Str("address", addr).Msg("Failed to listen")
		return fmt.Errorf("%w: %w", ErrListen, err)
	}
	return Serve(ctx, ln, shutdownTimeout, handler)
}

// Serve is Run on an existing listener. The listener is closed when Serve returns.
func Serve(ctx context.Context, ln net.Listener, shutdownTimeout time.Duration, handler http.Handler) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("address", ln.Addr().String()).Msg("HTTP server listening")
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("HTTP server stopped unexpectedly")
			return fmt.Errorf("%w: %w", ErrServe, err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Dur("timeout", shutdownTimeout).Msg("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown did not complete cleanly")
		return fmt.Errorf("%w: %w", ErrShutdown, err)
	}
	log.Info().Msg("HTTP server stopped")
	return nil
}
