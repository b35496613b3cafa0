package http

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"golang.org/x/time/rate"

	"github.com/worktime/timetrack-backend-go/internal/handler/http/middleware"
	"github.com/worktime/timetrack-backend-go/internal/pkg/jwt"
)

// RouterOptions carries the deployment settings the router needs.
type RouterOptions struct {
	AppName        string
	Version        string
	Env            string
	AllowedOrigins []string
	RequestTimeout time.Duration
	// AuthRateLimit bounds register and login calls per client IP per minute; zero disables it.
	AuthRateLimit int
	// TrustProxyHeaders takes the client IP from X-Forwarded-For and X-Real-IP. Enable it
	// only behind a proxy that overwrites those headers.
	TrustProxyHeaders bool
	// LogOutput receives access logs; defaults to stdout.
	LogOutput io.Writer
}

func NewRouter(
	opts RouterOptions,
	JWTService jwt.Service,
	accountHandler AccountHandler,
	userHandler UserHandler,
	workLogHandler WorkLogHandler,
	absenceHandler AbsenceHandler,
	adminHandler AdminHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logOutput := opts.LogOutput
	if logOutput == nil {
		logOutput = os.Stdout
	}
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(logOutput, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", opts.AppName),
		slog.String("version", opts.Version),
		slog.String("env", opts.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	if opts.TrustProxyHeaders {
		r.Use(chiMiddleware.RealIP)
	}

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	if opts.RequestTimeout > 0 {
		r.Use(chiMiddleware.Timeout(opts.RequestTimeout))
	}
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/account", func(r chi.Router) {
			if opts.AuthRateLimit > 0 {
				limit := rate.Every(time.Minute / time.Duration(opts.AuthRateLimit))
				r.Use(middleware.RateLimitByIP(middleware.NewIPRateLimiter(limit, opts.AuthRateLimit)))
			}

			r.Post("/register", accountHandler.Register)
			r.Route("/login", func(r chi.Router) {
				r.Post("/", accountHandler.Login)
				r.Get("/oauth/google", accountHandler.LoginWithGoogle)
			})
			r.Get("/oauth/callback/google", accountHandler.OAuthCallbackGoogle)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(JWTService))

			r.Route("/users", func(r chi.Router) {
				r.Get("/me", userHandler.GetMe)
				r.Put("/update", userHandler.UpdateAccount)
				r.Put("/change-password", userHandler.ChangePassword)
				r.Post("/link/google", accountHandler.LinkGoogle)
			})

			r.Route("/worklogs", func(r chi.Router) {
				r.Get("/my", workLogHandler.ListMine)
				r.Post("/", workLogHandler.Create)
				r.Put("/{id}", workLogHandler.Update)
				r.Delete("/{id}", workLogHandler.Delete)
			})

			r.Route("/absences", func(r chi.Router) {
				r.Post("/record-absence", absenceHandler.Record)
				r.Get("/get-absence-records", absenceHandler.ListMine)
				r.Put("/{id}", absenceHandler.Update)
				r.Delete("/{id}", absenceHandler.Delete)
				r.Put("/update-absence/{id}", absenceHandler.Update)
				r.Delete("/delete-absence/{id}", absenceHandler.Delete)
			})

			r.Route("/absence-types", func(r chi.Router) {
				r.Get("/", absenceHandler.ListTypes)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", absenceHandler.CreateType)
					r.Delete("/{id}", absenceHandler.DeleteType)
				})
			})

			// Admin only
			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/users", adminHandler.ListUsers)

				r.Route("/worklogs", func(r chi.Router) {
					r.Get("/{id}", adminHandler.ListWorkLogs) // id is the owner's user id
					r.Put("/{id}", adminHandler.UpdateWorkLog)
					r.Delete("/{id}", adminHandler.DeleteWorkLog)
				})

				r.Route("/absences", func(r chi.Router) {
					r.Get("/{id}", adminHandler.ListAbsences) // id is the owner's user id
					r.Put("/{id}", adminHandler.UpdateAbsence)
					r.Delete("/{id}", adminHandler.DeleteAbsence)
				})
			})
		})
	})

	return r
}
