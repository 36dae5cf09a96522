package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// RouterOptions carries the deployment values the router needs.
type RouterOptions struct {
	FrontendURL string
	Env         string
	LogLevel    slog.Level
}

func NewRouter(
	opts RouterOptions,
	JWTService jwt.Service,
	userHandler UserHandler,
	timesheetHandler TimesheetHandler,
	attendanceHandler AttendanceHandler,
	settingsHandler SettingsHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(opts.Env == "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timesheet-cmlabs"),
		slog.String("version", "v1.0.0"),
		slog.String("env", opts.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{opts.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(middleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Get("/me/capabilities", userHandler.Capabilities)

			r.Route("/timesheets", func(r chi.Router) {
				r.Get("/", timesheetHandler.List)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", timesheetHandler.Get)
					r.Post("/{action}", timesheetHandler.Transition)
				})
			})

			r.Route("/settings/timesheet-approval", func(r chi.Router) {
				r.Get("/", settingsHandler.GetApprovalPolicy)

				// Super admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireSuperAdmin)
					r.Put("/", settingsHandler.UpdateApprovalPolicy)
					r.Post("/reload", settingsHandler.ReloadApprovalPolicy)
				})
			})

			// Manager and above
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireManager)

				r.Get("/dashboard", dashboardHandler.GetDashboard)

				r.Route("/users", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermissionUserViewAll)).Get("/", userHandler.List)
					r.With(middleware.RequirePermission(user.PermissionUserViewAll)).Get("/{id}", userHandler.Get)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePermission(user.PermissionUserManage))
						r.Post("/", userHandler.Create)
						r.Put("/{id}", userHandler.Update)
						r.Delete("/{id}", userHandler.Delete)
						r.Post("/{id}/toggle-active", userHandler.ToggleActive)
					})
				})

				r.Route("/attendance", func(r chi.Router) {
					r.Get("/", attendanceHandler.List)
					r.Post("/", attendanceHandler.Create)
					r.Put("/{id}", attendanceHandler.Update)
				})
			})
		})
	})
	return r
}
