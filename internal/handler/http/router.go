package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/staffdeck/workforce-console/internal/handler/http/middleware"
	"github.com/staffdeck/workforce-console/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	dashboardHandler DashboardHandler,
	attendanceHandler AttendanceHandler,
	notificationHandler NotificationHandler,
	frontendURL string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-console"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))
			r.Use(middleware.WithSession)

			r.Get("/attendance", attendanceHandler.ListAttendance)
			r.Get("/notifications/stream", notificationHandler.Stream)
			r.Post("/auth/sign-out", dashboardHandler.SignOut)

			// Admin only
			r.Route("/dashboard", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", dashboardHandler.GetDashboard)
				r.Route("/leave-requests/{id}", func(r chi.Router) {
					r.Post("/approve", dashboardHandler.ApproveLeaveRequest)
					r.Post("/deny", dashboardHandler.DenyLeaveRequest)
				})
			})
		})
	})
	return r
}
