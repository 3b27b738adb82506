package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

type Handlers struct {
	Employee   EmployeeHandler
	Shift      ShiftHandler
	WorkHours  WorkHoursHandler
	Discount   DiscountHandler
	Settlement SettlementHandler
	Payment    PaymentHandler
	Config     ConfigHandler
	Report     ReportHandler
}

func NewRouter(env string, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "surtimax-payroll"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
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

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Employee.ListEmployees)
			r.Get("/{id}", h.Employee.GetEmployee)
			r.Get("/{employeeId}/account", h.Discount.AccountBalance)
		})

		r.Route("/shifts", func(r chi.Router) {
			r.Post("/open", h.Shift.Open)
			r.Post("/manual", h.Shift.CreateManual)
			r.Get("/open", h.Shift.ListOpen)
			r.Get("/pending", h.Shift.ListClosedUnpaid)
			r.Post("/sync-hours", h.WorkHours.SyncRange)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Shift.Get)
				r.Post("/close", h.Shift.Close)
				r.Put("/", h.Shift.Update)
				r.Delete("/", h.Shift.Delete)
			})
		})

		r.Route("/discounts", func(r chi.Router) {
			r.Post("/", h.Discount.Add)
			r.Get("/pending", h.Discount.ListUnpaid)
			r.Route("/{id}", func(r chi.Router) {
				r.Delete("/", h.Discount.Delete)
				r.Post("/defer", h.Discount.DeferToAccount)
			})
		})

		r.Route("/settlements", func(r chi.Router) {
			r.Post("/preview", h.Settlement.BuildPreview)
			r.Post("/", h.Settlement.Commit)
			r.Get("/", h.Settlement.List)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Settlement.Get)
				r.Post("/pay", h.Settlement.MarkPaid)
				r.Post("/void", h.Settlement.Void)
				r.Delete("/", h.Settlement.Delete)
			})
			r.Put("/details/{detailId}", h.Settlement.EditDetail)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Get("/preview", h.Payment.Preview)
			r.Post("/", h.Payment.Pay)
			r.Get("/", h.Payment.ListByDate)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Payment.Get)
				r.Put("/", h.Payment.Edit)
				r.Delete("/", h.Payment.Delete)
			})
		})

		r.Route("/config", func(r chi.Router) {
			r.Get("/", h.Config.List)
			r.Get("/{name}", h.Config.Get)
			r.Put("/{name}", h.Config.Set)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/hours", h.Report.GetHoursSummary)
			r.Get("/discounts", h.Report.GetDiscountSummary)
			r.Get("/account-balances", h.Report.GetAccountBalances)
		})
	})

	return r
}
