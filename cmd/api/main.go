package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/surtimax/payroll-backend/internal/config"
	appHTTP "github.com/surtimax/payroll-backend/internal/handler/http"
	"github.com/surtimax/payroll-backend/internal/pkg/clock"
	"github.com/surtimax/payroll-backend/internal/pkg/database"
	"github.com/surtimax/payroll-backend/internal/repository/postgresql"
	discountService "github.com/surtimax/payroll-backend/internal/service/discount"
	employeeService "github.com/surtimax/payroll-backend/internal/service/employee"
	configService "github.com/surtimax/payroll-backend/internal/service/payconfig"
	paymentService "github.com/surtimax/payroll-backend/internal/service/payment"
	reportService "github.com/surtimax/payroll-backend/internal/service/report"
	settlementService "github.com/surtimax/payroll-backend/internal/service/settlement"
	shiftService "github.com/surtimax/payroll-backend/internal/service/shift"
	workHoursService "github.com/surtimax/payroll-backend/internal/service/workhours"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Invalid APP_TIMEZONE: ", err)
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	workHoursRepo := postgresql.NewWorkHoursRepository(db)
	discountRepo := postgresql.NewDiscountRepository(db)
	settlementRepo := postgresql.NewSettlementRepository(db)
	paymentRepo := postgresql.NewPaymentRepository(db)
	configRepo := postgresql.NewConfigRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	clk := clock.System()

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	configSvc := configService.NewConfigService(configRepo)
	workHoursSvc := workHoursService.NewWorkHoursService(db, workHoursRepo, shiftRepo)
	shiftSvc := shiftService.NewShiftService(db, shiftRepo, employeeRepo, workHoursSvc, clk)
	discountSvc := discountService.NewDiscountService(db, discountRepo, employeeRepo)
	settlementSvc := settlementService.NewSettlementService(
		db,
		settlementRepo,
		shiftRepo,
		workHoursRepo,
		discountRepo,
		employeeRepo,
		configSvc,
	)
	paymentSvc := paymentService.NewPaymentService(
		db,
		paymentRepo,
		shiftRepo,
		workHoursRepo,
		discountRepo,
		employeeRepo,
		configSvc,
		clk,
		loc,
	)
	reportSvc := reportService.NewReportService(reportRepo)

	router := appHTTP.NewRouter(cfg.App.Env, appHTTP.Handlers{
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Shift:      appHTTP.NewShiftHandler(shiftSvc),
		WorkHours:  appHTTP.NewWorkHoursHandler(workHoursSvc),
		Discount:   appHTTP.NewDiscountHandler(discountSvc),
		Settlement: appHTTP.NewSettlementHandler(settlementSvc),
		Payment:    appHTTP.NewPaymentHandler(paymentSvc),
		Config:     appHTTP.NewConfigHandler(configSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
