package http

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/cmlabs-hris/manager-portal-go/internal/domain/access"
	"github.com/cmlabs-hris/manager-portal-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/manager-portal-go/internal/handler/http/response"
	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// RouterOptions carries the environment specific router settings.
type RouterOptions struct {
	Env            string
	AllowedOrigins []string
	LogLevel       slog.Level
}

// Handlers groups every HTTP handler mounted by NewRouter.
type Handlers struct {
	Auth       AuthHandler
	Account    AccountHandler
	Master     MasterHandler
	Roster     RosterHandler
	Sales      SalesHandler
	Attendance AttendanceHandler
	Ranking    RankingHandler
	Dashboard  DashboardHandler
}

func NewRouter(opts RouterOptions, JWTService jwt.Service, gate *access.Gate, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(opts.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "manager-portal"),
		slog.String("version", "v1.0.0"),
		slog.String("env", opts.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  opts.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(30 * time.Second))
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(jwtauth.Verify(JWTService.JWTAuth(), jwtauth.TokenFromCookie, jwtauth.TokenFromHeader))
		r.Use(middleware.Authenticate(gate, JWTService))

		r.Route("/auth", func(r chi.Router) {
			r.Get("/login/google", h.Auth.LoginWithGoogle)
			r.Get("/oauth/callback/google", h.Auth.OAuthCallbackGoogle)
			r.Post("/logout", h.Auth.Logout)
			// Pending accounts may still see their own state.
			r.With(middleware.RequireCaller).Get("/me", h.Auth.Me)
		})

		// Approved staff only
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(access.RoleUser))

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.RequireRole(access.RoleAdmin))
				r.Get("/", h.Account.List)
				r.Post("/approve", h.Account.Approve)
			})

			r.Route("/teams", func(r chi.Router) {
				r.Get("/", h.Master.ListTeams)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(access.RoleAdmin))
					r.Post("/", h.Master.CreateTeam)
					r.Patch("/{id}", h.Master.UpdateTeam)
					r.Delete("/{id}", h.Master.DeleteTeam)
				})
			})

			r.Route("/pages", func(r chi.Router) {
				r.Get("/", h.Master.ListPages)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(access.RoleAdmin))
					r.Post("/", h.Master.CreatePage)
					r.Patch("/{id}", h.Master.UpdatePage)
					r.Delete("/{id}", h.Master.DeletePage)
				})
			})

			r.Route("/roster", func(r chi.Router) {
				r.Get("/", h.Roster.List)
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(access.RoleManager))
					r.Post("/", h.Roster.Create)
					r.Patch("/{id}", h.Roster.Update)
					r.Delete("/{id}", h.Roster.Delete)
				})
			})

			r.Route("/sales", func(r chi.Router) {
				r.Get("/summary", h.Sales.Summary)
				r.Get("/teams", h.Sales.TeamTotals)
				r.Get("/shift", h.Sales.CurrentShift)
				r.Get("/export", h.Sales.Export)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/status", h.Attendance.Status)
				r.Get("/summary", h.Attendance.Summary)
			})

			r.Get("/rankings/chatters", h.Ranking.Chatters)
			r.Get("/dashboard", h.Dashboard.Overview)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "route not found")
	})

	return r
}
