package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/franklin/internal/service"
)

const (
	DefaultRequestTimeout = time.Second * 10
	shutdownTimeout       = time.Second * 15
)

type Server struct {
	mx             *chi.Mux
	userService    service.UserServiceI
	recordsService service.RecordsServiceI
	statsService   service.StatsServiceI
	jwtService     JWTServiceI
	healthCheck    func(ctx context.Context) error
	requestTimeout time.Duration
}

type ServicesList struct {
	UserService    service.UserServiceI
	RecordsService service.RecordsServiceI
	StatsService   service.StatsServiceI
	JwtService     JWTServiceI
	// Optional storage ping used by the health endpoint
	HealthCheck    func(ctx context.Context) error
	RequestTimeout time.Duration
}

func New(servicesOptions *ServicesList) *Server {
	timeout := servicesOptions.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	s := &Server{
		mx:             chi.NewMux(),
		userService:    servicesOptions.UserService,
		recordsService: servicesOptions.RecordsService,
		statsService:   servicesOptions.StatsService,
		jwtService:     servicesOptions.JwtService,
		healthCheck:    servicesOptions.HealthCheck,
		requestTimeout: timeout,
	}
	s.MountHandlers()
	return s
}

func (s *Server) MountHandlers() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Use(s.AccessLogMiddleware)

	s.mx.Route("/api", func(r chi.Router) {
		r.Get("/health", s.Health)
		r.Get("/virtues/definitions", s.VirtueDefinitions)

		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)

			r.Get("/auth/me", s.Me)
			r.Post("/auth/verify", s.Verify)

			r.Get("/virtues/records/week/{year}/{week}", s.GetWeekRecords)
			r.Get("/virtues/records/{date}", s.GetDayRecord)
			r.Put("/virtues/records/{date}/virtue", s.ToggleVirtue)
			r.Put("/virtues/records/{date}/reflection", s.SaveReflection)
			r.Get("/virtues/stats", s.Stats)

			r.Route("/users/{userID}", func(r chi.Router) {
				r.Get("/", s.GetProfile)
				r.Get("/stats", s.UserStats)
				r.Put("/profile", s.UpdateProfile)
				r.Put("/settings", s.UpdateSettings)
				r.Delete("/", s.DeleteAccount)
			})
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on addr until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: time.Second * 5,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("api server started", slog.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down api server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
