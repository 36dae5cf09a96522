package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/timesheet-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/cron"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/repository"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/repository/document"
	attendanceService "github.com/cmlabs-hris/timesheet-backend-go/internal/service/attendance"
	dashboardService "github.com/cmlabs-hris/timesheet-backend-go/internal/service/dashboard"
	policyService "github.com/cmlabs-hris/timesheet-backend-go/internal/service/policy"
	timesheetService "github.com/cmlabs-hris/timesheet-backend-go/internal/service/timesheet"
	userService "github.com/cmlabs-hris/timesheet-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	level := parseLevel(cfg.App.LogLevel)
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := repository.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to initialize storage: ", err)
	}
	defer closeStore()

	seed, err := config.LoadApprovalPolicy(cfg.Policy.SeedFile)
	if err != nil {
		log.Fatal("Failed to load approval policy seed: ", err)
	}

	userRepo := document.NewUserRepository(store)
	attendanceRepo := document.NewAttendanceRepository(store)
	timesheetRepo := document.NewTimesheetRepository(store)
	policyRepo := document.NewPolicyRepository(store, seed)

	JWTService, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	if err != nil {
		log.Fatal("Failed to initialize JWT service: ", err)
	}

	loc := cfg.Location()
	policySvc := policyService.NewPolicyService(policyRepo)
	userSvc := userService.NewUserService(userRepo)
	timesheetSvc := timesheetService.NewTimesheetService(timesheetRepo, policySvc, time.Now)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, userRepo, loc, time.Now)
	dashboardSvc := dashboardService.NewDashboardService(userRepo, attendanceRepo, timesheetRepo, policySvc, loc, time.Now)

	// Fail fast when the stored policy cannot be read
	if _, err := policySvc.Current(ctx); err != nil {
		log.Fatal("Failed to load approval policy: ", err)
	}

	scheduler := cron.NewScheduler()
	cron.NewPolicyJobs(policySvc, cfg.Policy.ReloadInterval).RegisterJobs(scheduler)
	if scheduler.Len() > 0 {
		scheduler.Start(ctx)
		defer scheduler.Stop()
	}

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			FrontendURL: cfg.App.FrontendURL,
			Env:         cfg.App.Env,
			LogLevel:    level,
		},
		JWTService,
		appHTTP.NewUserHandler(userSvc),
		appHTTP.NewTimesheetHandler(timesheetSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewSettingsHandler(policySvc),
		appHTTP.NewDashboardHandler(dashboardSvc),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server running", "addr", server.Addr, "storage", cfg.Storage.Type, "timezone", loc.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
	slog.Info("server stopped")
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
