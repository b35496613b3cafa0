package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/worktime/timetrack-backend-go/internal/config"
	"github.com/worktime/timetrack-backend-go/internal/domain/absence"
	"github.com/worktime/timetrack-backend-go/internal/domain/auth"
	"github.com/worktime/timetrack-backend-go/internal/domain/user"
	"github.com/worktime/timetrack-backend-go/internal/domain/worklog"
	appHTTP "github.com/worktime/timetrack-backend-go/internal/handler/http"
	"github.com/worktime/timetrack-backend-go/internal/pkg/database"
	"github.com/worktime/timetrack-backend-go/internal/pkg/jwt"
	"github.com/worktime/timetrack-backend-go/internal/pkg/oauth"
	"github.com/worktime/timetrack-backend-go/internal/repository/postgresql"
	"github.com/worktime/timetrack-backend-go/internal/repository/sqlite"
	absenceService "github.com/worktime/timetrack-backend-go/internal/service/absence"
	adminService "github.com/worktime/timetrack-backend-go/internal/service/admin"
	authService "github.com/worktime/timetrack-backend-go/internal/service/auth"
	userService "github.com/worktime/timetrack-backend-go/internal/service/user"
	workLogService "github.com/worktime/timetrack-backend-go/internal/service/worklog"
)

const (
	appName    = "timetrack"
	appVersion = "v1.0.0"
)

// stores is the repository set backing the services, whichever driver is configured.
type stores struct {
	transactor  database.Transactor
	users       user.UserRepository
	workLogs    worklog.WorkLogRepository
	absences    absence.AbsenceRecordRepository
	absenceType absence.AbsenceTypeRepository
	close       func()
}

func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.Database.SQLitePath)
		if err != nil {
			return nil, err
		}
		return &stores{
			transactor:  sqlite.NewTransactor(db),
			users:       sqlite.NewUserRepository(db),
			workLogs:    sqlite.NewWorkLogRepository(db),
			absences:    sqlite.NewAbsenceRecordRepository(db),
			absenceType: sqlite.NewAbsenceTypeRepository(db),
			close: func() {
				if sqlDB, err := db.DB(); err == nil {
					_ = sqlDB.Close()
				}
			},
		}, nil
	default:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			return nil, err
		}
		if err := postgresql.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		return &stores{
			transactor:  postgresql.NewTransactor(db),
			users:       postgresql.NewUserRepository(db),
			workLogs:    postgresql.NewWorkLogRepository(db),
			absences:    postgresql.NewAbsenceRecordRepository(db),
			absenceType: postgresql.NewAbsenceTypeRepository(db),
			close:       db.Close,
		}, nil
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})).With(slog.String("app", appName), slog.String("env", cfg.App.Env)))

	if err := run(cfg); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Database.Driver, err)
	}
	defer st.close()

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.ExpirationTime)
	if err != nil {
		return err
	}

	var googleService oauth.GoogleService
	if cfg.OAuth2Google.Enabled() {
		googleService = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	}

	authSvc := authService.NewAuthService(st.transactor, st.users, JWTService)
	userSvc := userService.NewUserService(st.transactor, st.users)
	workLogSvc := workLogService.NewWorkLogService(st.transactor, st.workLogs)
	absenceSvc := absenceService.NewAbsenceService(st.transactor, st.users, st.absences, st.absenceType)
	adminSvc := adminService.NewAdminService(st.transactor, st.users, st.workLogs, st.absences)

	if err := authSvc.EnsureAdmin(ctx, auth.BootstrapAdminRequest{
		Username: cfg.Admin.Username,
		Email:    cfg.Admin.Email,
		FullName: cfg.Admin.FullName,
		Password: cfg.Admin.Password,
	}); err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			AppName:           appName,
			Version:           appVersion,
			Env:               cfg.App.Env,
			AllowedOrigins:    cfg.App.AllowedOrigins,
			RequestTimeout:    cfg.App.RequestTimeout,
			AuthRateLimit:     cfg.App.AuthRateLimit,
			TrustProxyHeaders: cfg.App.TrustProxy,
		},
		JWTService,
		appHTTP.NewAccountHandler(authSvc, googleService, cfg.App.FrontendURL),
		appHTTP.NewUserHandler(userSvc),
		appHTTP.NewWorkLogHandler(workLogSvc),
		appHTTP.NewAbsenceHandler(absenceSvc),
		appHTTP.NewAdminHandler(adminSvc),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("server running", "addr", server.Addr, "driver", cfg.Database.Driver, "google_login", googleService != nil)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
