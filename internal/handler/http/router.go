package http

import (
	"log/slog"
	"os"

	"github.com/andamio-hr/asistencia-backend-go/internal/config"
	"github.com/andamio-hr/asistencia-backend-go/internal/handler/http/middleware"
	"github.com/andamio-hr/asistencia-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	Fichaje    FichajeHandler
	Schedule   ScheduleHandler
	Adjustment AdjustmentHandler
	Leave      LeaveHandler
	Report     ReportHandler
}

func NewRouter(cfg config.AppConfig, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "asistencia-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired())

			r.Route("/fichajes", func(r chi.Router) {
				r.Post("/", h.Fichaje.Create)
				r.Get("/status", h.Fichaje.Status)
				r.Get("/my", h.Fichaje.My)
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Route("/{department}", func(r chi.Router) {
					r.Get("/", h.Schedule.Get)
					r.Get("/resolved", h.Schedule.ResolveDay)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireManager)
						r.Put("/", h.Schedule.Upsert)
					})
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", h.Schedule.ListShifts)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", h.Schedule.CreateShift)
					r.Delete("/{id}", h.Schedule.DeleteShift)
				})
			})

			r.Route("/adjustments", func(r chi.Router) {
				r.Post("/", h.Adjustment.Create)
				r.Get("/my", h.Adjustment.My)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/pending", h.Adjustment.Pending)
					r.Post("/{id}/approve", h.Adjustment.Approve)
					r.Post("/{id}/reject", h.Adjustment.Reject)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Create)
				r.Get("/my", h.Leave.My)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/{id}/approve", h.Leave.Approve)
					r.Post("/{id}/reject", h.Leave.Reject)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/monthly", h.Report.Monthly)
			})
		})
	})
	return r
}
