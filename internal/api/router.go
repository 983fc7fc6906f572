package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"guardDuty/internal/api/handlers/http/admin"
	"guardDuty/internal/api/handlers/http/guard"
	"guardDuty/internal/api/handlers/http/supervisor"
	"guardDuty/internal/api/handlers/http/system"
	"guardDuty/internal/config"
	"guardDuty/internal/middleware"
)

type Handlers struct {
	Guard      *guard.Handler
	Supervisor *supervisor.Handler
	Admin      *admin.Handler
	System     *system.Handler
}

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, h Handlers) *Server {
	return &Server{
		logger: logger,
		router: InitRouter(ctx, cfg, h, logger),
		cfg:    *cfg,
	}
}

// InitRouter wires every endpoint. ctx bounds the rate limiter cleanup loops.
func InitRouter(ctx context.Context, cfg *config.Config, h Handlers, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	authenticate := middleware.Authenticate(cfg.Auth.JWTSecret, cfg.Auth.Issuer, logger)

	r.Route("/api/v1", func(api chi.Router) {
		// GUARD
		api.Group(func(gr chi.Router) {
			gr.Use(authenticate)
			gr.Use(middleware.RequireRole(middleware.RoleGuard))
			gr.Use(middleware.Limit(ctx, 5, 20, 10*time.Minute, logger))

			gr.Route("/duty", func(dr chi.Router) {
				dr.Post("/clock-in", h.Guard.ClockIn)
				dr.Post("/clock-out", h.Guard.ClockOut)
				dr.Get("/status", h.Guard.Status)
			})

			gr.Post("/position", middleware.Bind(h.Guard.ReportPosition))
			gr.Post("/position/error", middleware.Bind(h.Guard.ReportPositionError))

			gr.Route("/panic/hold", func(pr chi.Router) {
				pr.Get("/", h.Guard.HoldProgress)
				pr.Get("/stream", h.Guard.HoldStream)
				pr.Post("/start", h.Guard.HoldStart)
				pr.Post("/end", h.Guard.HoldEnd)
				pr.Post("/cancel", h.Guard.HoldCancel)
			})

			gr.Post("/alerts", middleware.Bind(h.Guard.TriggerAlert))
			gr.Post("/session/end", h.Guard.EndSession)
		})

		// SUPERVISOR
		api.Group(func(sr chi.Router) {
			sr.Use(authenticate)
			sr.Use(middleware.RequireRole(middleware.RoleSupervisor, middleware.RoleAdmin))

			sr.Get("/alerts", h.Supervisor.ListOpen)
			sr.Get("/alerts/stream", h.Supervisor.Stream)
			sr.Get("/alerts/{id}", h.Supervisor.Get)
			sr.Post("/alerts/{id}/resolve", middleware.Bind(h.Supervisor.Resolve))
		})

		// ADMIN
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(middleware.APIKeyMiddleware(cfg.APIKey))
			ar.Use(middleware.Limit(ctx, 2, 5, 10*time.Minute, logger))

			ar.Route("/zones", func(zr chi.Router) {
				zr.Post("/", middleware.Bind(h.Admin.ZoneCreate))
				zr.Get("/", h.Admin.ZoneList)
				zr.Get("/{id}", h.Admin.ZoneGet)
			})
			ar.Route("/guards", func(gr chi.Router) {
				gr.Post("/", middleware.Bind(h.Admin.GuardCreate))
				gr.Get("/", h.Admin.GuardList)
				gr.Put("/{id}/zone", middleware.Bind(h.Admin.GuardAssignZone))
			})
			ar.Route("/shifts", func(sr chi.Router) {
				sr.Post("/", middleware.Bind(h.Admin.ShiftCreate))
				sr.Get("/", h.Admin.ShiftList)
			})
			ar.Post("/assignments", middleware.Bind(h.Admin.AssignmentActivate))
		})

		// SYSTEM
		api.Get("/health", h.System.SystemHealth)
	})

	return r
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
