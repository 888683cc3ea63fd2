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

	"github.com/cmlabs-hris/manager-portal-go/internal/config"
	"github.com/cmlabs-hris/manager-portal-go/internal/domain/access"
	appHTTP "github.com/cmlabs-hris/manager-portal-go/internal/handler/http"
	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/cron"
	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/database"
	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/oauth"
	"github.com/cmlabs-hris/manager-portal-go/internal/repository/postgresql"
	accountService "github.com/cmlabs-hris/manager-portal-go/internal/service/account"
	attendanceService "github.com/cmlabs-hris/manager-portal-go/internal/service/attendance"
	dashboardService "github.com/cmlabs-hris/manager-portal-go/internal/service/dashboard"
	"github.com/cmlabs-hris/manager-portal-go/internal/service/master"
	rankingService "github.com/cmlabs-hris/manager-portal-go/internal/service/ranking"
	rosterService "github.com/cmlabs-hris/manager-portal-go/internal/service/roster"
	salesService "github.com/cmlabs-hris/manager-portal-go/internal/service/sales"
)

func main() {
	if err := run(); err != nil {
		slog.Error("manager portal stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	accountDB, err := database.NewPostgreSQLDB("account", cfg.Database.AccountURL)
	if err != nil {
		return err
	}
	defer accountDB.Close()

	salesDB, err := database.NewPostgreSQLDB("sales", cfg.Database.SalesURL)
	if err != nil {
		return err
	}
	defer salesDB.Close()

	attendanceDB, err := database.NewPostgreSQLDB("attendance", cfg.Database.AttendanceURL)
	if err != nil {
		return err
	}
	defer attendanceDB.Close()

	if cfg.Database.MigrationsEnabled {
		if err := accountDB.MigrateUp(); err != nil {
			return err
		}
		slog.Info("account store migrated")
	}

	accountRepo := postgresql.NewAccountRepository(accountDB)
	teamRepo := postgresql.NewTeamRepository(accountDB)
	pageRepo := postgresql.NewPageRepository(accountDB)
	rosterRepo := postgresql.NewRosterRepository(accountDB)
	salesRepo := postgresql.NewSalesRepository(salesDB)
	rankingRepo := postgresql.NewRankingRepository(salesDB)
	attendanceRepo := postgresql.NewAttendanceRepository(attendanceDB)

	admins := access.NewAllowList(cfg.Access.AdminEmails)
	inTx := func(ctx context.Context, fn func(txCtx context.Context) error) error {
		return postgresql.WithTransaction(ctx, accountDB, fn)
	}

	JWTService := jwt.NewJWTService(cfg.Session.Secret, cfg.Session.Expiration, cfg.App.IsProduction())
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	accountSvc := accountService.NewAccountService(accountRepo, admins, inTx)
	masterSvc := master.NewMasterService(teamRepo, pageRepo)
	rosterSvc := rosterService.NewRosterService(rosterRepo)
	salesSvc := salesService.NewSalesService(salesRepo, teamRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, pageRepo, rosterRepo)
	rankingSvc := rankingService.NewRankingService(rankingRepo)
	dashboardSvc := dashboardService.NewDashboardService(salesSvc, attendanceSvc, rankingSvc)

	gate := access.NewGate(admins, accountSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			Env:            cfg.App.Env,
			AllowedOrigins: cfg.App.CORSAllowedOrigins,
			LogLevel:       cfg.SlogLevel(),
		},
		JWTService,
		gate,
		appHTTP.Handlers{
			Auth:       appHTTP.NewAuthHandler(JWTService, accountSvc, GoogleService, cfg.App.FrontendURL, cfg.App.IsProduction()),
			Account:    appHTTP.NewAccountHandler(accountSvc),
			Master:     appHTTP.NewMasterHandler(masterSvc),
			Roster:     appHTTP.NewRosterHandler(rosterSvc),
			Sales:      appHTTP.NewSalesHandler(salesSvc),
			Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
			Ranking:    appHTTP.NewRankingHandler(rankingSvc),
			Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		},
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := cron.NewScheduler(ctx)
	scheduler.AddJob("purge-revoked-sessions", 10*time.Minute, func(ctx context.Context) error {
		if purged := JWTService.PurgeRevoked(time.Now()); purged > 0 {
			slog.Info("purged revoked sessions", "count", purged)
		}
		return nil
	})
	scheduler.Start()
	defer scheduler.Stop()

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("server running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
