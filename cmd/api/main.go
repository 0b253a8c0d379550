package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"returns-report-service/internal/config"
	"returns-report-service/internal/platform/auth"
	"returns-report-service/internal/platform/postgres"

	reportsChart "returns-report-service/internal/reports/adapters/chart"
	reportsRepoCh "returns-report-service/internal/reports/adapters/clickhouse"
	reportsHttp "returns-report-service/internal/reports/adapters/http/fiber"
	reportsRepoPg "returns-report-service/internal/reports/adapters/postgres"
	reportsPorts "returns-report-service/internal/reports/core/ports"
	reportsUsecase "returns-report-service/internal/reports/core/usecase"

	returnsHttp "returns-report-service/internal/returns/adapters/http/fiber"
	returnsRepoPg "returns-report-service/internal/returns/adapters/postgres"
	returnsUsecase "returns-report-service/internal/returns/core/usecase"

	staffHttp "returns-report-service/internal/staff/adapters/http/fiber"
	staffRepoPg "returns-report-service/internal/staff/adapters/postgres"
	staffUsecase "returns-report-service/internal/staff/core/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "returns-report-service/docs"
)

// @title Returns Report Service API
// @version 1.0
// @description Registers retail returns and reports them by zone, aisle and person.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	configPath := flag.String("config", "config.yaml", "path to YAML config file")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("loading .env: %v", err)
	}

	// Config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// DB connection
	db, err := postgres.Open(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db); err != nil {
		log.Fatalf("failed to migrate postgres: %v", err)
	}

	pgDB := postgres.NewDB(db)
	pgReports := reportsRepoPg.NewReportRepository(pgDB)

	// Report store
	var reportReader reportsPorts.ReportReaderPort
	switch cfg.Reports.Store {
	case config.StoreClickHouse:
		chConn, err := reportsRepoCh.Open(ctx, reportsRepoCh.Options{
			Addr:     cfg.ClickHouse.Addr,
			Database: cfg.ClickHouse.Database,
			Username: cfg.ClickHouse.Username,
			Password: cfg.ClickHouse.Password,
		})
		if err != nil {
			log.Fatalf("failed to connect to clickhouse: %v", err)
		}
		defer chConn.Close()

		conn := reportsRepoCh.NewConn(chConn)
		if err := reportsRepoCh.EnsureSchema(ctx, conn); err != nil {
			log.Fatalf("failed to prepare clickhouse schema: %v", err)
		}
		chReports := reportsRepoCh.NewReportRepository(conn, pgReports)
		reportReader = chReports

		// return lines are copied from Postgres on a schedule
		mirrorUC := reportsUsecase.NewMirrorLinesUseCase(pgReports, chReports)
		go mirrorUC.Run(ctx, cfg.Reports.MirrorInterval, cfg.Reports.MirrorWindowDays)

		log.Printf("reports served from clickhouse at %s (mirror every %s, last %d days)",
			cfg.ClickHouse.Addr, cfg.Reports.MirrorInterval, cfg.Reports.MirrorWindowDays)
	default:
		reportReader = pgReports
	}

	// Repositories
	returnRepository := returnsRepoPg.NewReturnRepository(pgDB)
	staffRepository := staffRepoPg.NewStaffRepository(pgDB)

	// Usecases
	registerReturnUC := returnsUsecase.NewRegisterReturnUseCase(returnRepository)
	updateReturnUC := returnsUsecase.NewUpdateReturnUseCase(returnRepository)
	queryReturnsUC := returnsUsecase.NewQueryReturnsUseCase(returnRepository)
	peopleUC := staffUsecase.NewPeopleUseCase(staffRepository)
	assignmentsUC := staffUsecase.NewAssignmentsUseCase(staffRepository)
	generateReportUC := reportsUsecase.NewGenerateReportUseCase(reportReader, cfg.Reports.MaxBuckets)
	renderChartUC := reportsUsecase.NewRenderChartUseCase(generateReportUC, reportsChart.NewRenderer())
	alignSeriesUC := reportsUsecase.NewAlignSeriesUseCase(cfg.Reports.MaxBuckets)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{AppName: "returns-report-service"})
	app.Use(recover.New())
	app.Use(logger.New())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		if err := db.PingContext(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// returns endpoints
	if cfg.Auth.JWTSecret == "" {
		log.Println("auth.jwt_secret is empty: return and staff writes are not authenticated")
	}
	requireJWT := auth.RequireJWT(cfg.Auth.JWTSecret)

	returnsHandler := returnsHttp.NewReturnHandler(registerReturnUC, updateReturnUC, queryReturnsUC)
	returns := app.Group("/returns", requireJWT)
	returns.Get("/", returnsHandler.ListReturns)
	returns.Post("/", returnsHandler.CreateReturn)
	returns.Post("/bulk", returnsHandler.BulkCreateReturns)
	returns.Get("/:id", returnsHandler.GetReturn)
	returns.Put("/:id", returnsHandler.UpdateReturn)
	returns.Patch("/:id/status", returnsHandler.ChangeStatus)
	returns.Delete("/:id", returnsHandler.DeleteReturn)

	// staff endpoints: reads are public, writes need a token
	staffHandler := staffHttp.NewStaffHandler(peopleUC, assignmentsUC)
	app.Get("/people", staffHandler.ListPeople)
	app.Post("/people", requireJWT, staffHandler.CreatePerson)
	app.Delete("/people/:id", requireJWT, staffHandler.DeactivatePerson)
	app.Get("/assignments", staffHandler.ListAssignments)
	app.Post("/assignments", requireJWT, staffHandler.CreateAssignment)
	app.Put("/assignments/:id", requireJWT, staffHandler.UpdateAssignment)

	// reports endpoints
	reportsHandler := reportsHttp.NewReportHandler(generateReportUC, renderChartUC, alignSeriesUC)
	app.Post("/reports", reportsHandler.GenerateReport)
	app.Get("/reports/chart", reportsHandler.Chart)
	app.Post("/series/align", reportsHandler.AlignSeries)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.Server.Addr); err != nil {
			log.Printf("fiber stopped: %v", err)
		}
	}()

	log.Printf("server started on %s", cfg.Server.Addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("fiber shutdown error: %v", err)
	}

	log.Println("server exiting")
}
