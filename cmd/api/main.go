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
	"syscall"
	"time"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/config"
	appHTTP "github.com/cmlabs-hris/hris-dashboard-go/internal/handler/http"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/cron"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/gateway"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/sse"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/pkg/storage"
	"github.com/cmlabs-hris/hris-dashboard-go/internal/repository/cache"
	attendanceService "github.com/cmlabs-hris/hris-dashboard-go/internal/service/attendance"
	dashboardService "github.com/cmlabs-hris/hris-dashboard-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/hris-dashboard-go/internal/service/employee"
	leaveService "github.com/cmlabs-hris/hris-dashboard-go/internal/service/leave"
	reportService "github.com/cmlabs-hris/hris-dashboard-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.SlogLevel(),
	})))

	hub := sse.NewHub()

	// Records service
	client := gateway.NewClient(cfg.Gateway)
	employeeRepo := cache.NewEmployeeStore(gateway.NewEmployeeResource(client), hub)
	attendanceRepo := cache.NewAttendanceStore(gateway.NewAttendanceResource(client), hub)
	leaveRepo := cache.NewLeaveStore(gateway.NewLeaveResource(client), hub)

	fileStorage, err := storage.NewLocalStorage(cfg.Export.BasePath, cfg.Export.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeSvc)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeSvc)
	requestWorkflow := leaveService.NewRequestWorkflow(leaveRepo, employeeSvc)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, attendanceRepo, leaveRepo)
	reportSvc := reportService.NewReportService(client, fileStorage, dashboardSvc, cfg.Export.AttendanceFile)

	router := appHTTP.NewRouter(
		cfg.App,
		appHTTP.NewDashboardHandler(dashboardSvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewLeaveHandler(leaveSvc, requestWorkflow),
		appHTTP.NewReportHandler(reportSvc),
		appHTTP.NewEventsHandler(hub),
		appHTTP.NewFilesHandler(fileStorage),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := cron.NewScheduler()
	scheduler.AddJob(cron.NewRefreshJob(dashboardSvc, cfg.Refresh.Interval))
	scheduler.Start(ctx)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{
		Addr:              port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}
