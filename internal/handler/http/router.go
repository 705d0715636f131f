package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/hris-dashboard-go/internal/config"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	appConfig config.AppConfig,
	dashboardHandler DashboardHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	reportHandler ReportHandler,
	eventsHandler EventsHandler,
	filesHandler FilesHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hris-dashboard"),
		slog.String("version", "v1.0.0"),
		slog.String("env", appConfig.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{appConfig.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  appConfig.SlogLevel(),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Saved reports and exports
	r.Get("/exports/*", filesHandler.Serve)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/events", eventsHandler.Stream)

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/weekly", dashboardHandler.GetWeeklyAttendance)
			r.Post("/refresh", dashboardHandler.Refresh)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Post("/", employeeHandler.Create)
			r.Get("/options", employeeHandler.ListOptions)
			r.Delete("/{id}", employeeHandler.Delete)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", attendanceHandler.List)
			r.Post("/", attendanceHandler.Create)
			r.Post("/download", reportHandler.DownloadAttendance)
			r.Post("/export-weekly", reportHandler.ExportWeeklyAttendance)

			r.Route("/edit", func(r chi.Router) {
				r.Get("/", attendanceHandler.GetEdit)
				r.Patch("/", attendanceHandler.ChangeEdit)
				r.Delete("/", attendanceHandler.CancelEdit)
				r.Post("/submit", attendanceHandler.SubmitEdit)
			})

			r.Route("/{id}", func(r chi.Router) {
				r.Delete("/", attendanceHandler.Delete)
				r.Post("/edit", attendanceHandler.StartEdit)
			})
		})

		r.Route("/leaves", func(r chi.Router) {
			r.Get("/", leaveHandler.ListRequests)

			r.Route("/edit", func(r chi.Router) {
				r.Get("/", leaveHandler.GetEdit)
				r.Patch("/", leaveHandler.ChangeEdit)
				r.Delete("/", leaveHandler.CancelEdit)
				r.Post("/submit", leaveHandler.SubmitEdit)
			})

			r.Route("/{id}", func(r chi.Router) {
				r.Delete("/", leaveHandler.DeleteRequest)
				r.Post("/edit", leaveHandler.StartEdit)
				r.Post("/approve", leaveHandler.ApproveRequest)
				r.Post("/decline", leaveHandler.DeclineRequest)
			})
		})

		r.Route("/leave-request", func(r chi.Router) {
			r.Get("/", leaveHandler.GetRequestForm)
			r.Patch("/", leaveHandler.ChangeRequestForm)
			r.Put("/employee", leaveHandler.SelectEmployee)
			r.Post("/submit", leaveHandler.SubmitRequest)
		})
	})
	return r
}
