package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/emergent-company/showcase/internal/apperror"
	"github.com/emergent-company/showcase/internal/components"
	"github.com/emergent-company/showcase/internal/config"
	"github.com/emergent-company/showcase/internal/handlers"
	"github.com/emergent-company/showcase/internal/logger"
	"github.com/emergent-company/showcase/web"
)

var Module = fx.Module("server",
	fx.Provide(NewRouter),
	fx.Invoke(StartServer),
)

// RouterParams are the dependencies for creating the router
type RouterParams struct {
	fx.In

	Config  *config.Config
	Log     *slog.Logger
	Handler *handlers.Handler
}

// NewRouter creates and configures the chi router
func NewRouter(p RouterParams) (http.Handler, error) {
	cfg := p.Config
	log := p.Log.With(logger.Scope("http"))

	rs := apperror.NewResponder(log, components.ErrorPage(p.Handler.Brand()))

	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		RequestLogger(log),
	)
	// Metrics sits outside Recoverer so panics are counted as 500s.
	if cfg.MetricsEnabled {
		r.Use(Metrics)
	}
	r.Use(
		Recoverer(log, rs),
		middleware.StripSlashes,
		middleware.GetHead,
	)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		rs.Respond(w, req, apperror.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		rs.Respond(w, req, apperror.ErrMethodNotAllowed)
	})

	staticSub, err := web.Static()
	if err != nil {
		return nil, err
	}
	r.With(CacheControl(cfg.StaticMaxAge)).
		Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticSub))))

	if cfg.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	handlers.RegisterRoutes(r, p.Handler, rs)

	return r, nil
}

// StartServer starts the HTTP server with graceful shutdown
func StartServer(lc fx.Lifecycle, router http.Handler, cfg *config.Config, log *slog.Logger) {
	log = log.With(logger.Scope("server"))

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("starting HTTP server",
				slog.String("address", server.Addr),
				slog.String("environment", cfg.Environment),
			)

			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server error", logger.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down HTTP server")

			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()

			return server.Shutdown(shutdownCtx)
		},
	})
}
