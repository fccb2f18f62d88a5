package bootstrap

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/locvowork/employee_salary_api/internal/config"
	"github.com/locvowork/employee_salary_api/internal/domain"
	"github.com/locvowork/employee_salary_api/internal/handler"
	"github.com/locvowork/employee_salary_api/internal/logger"
	"github.com/locvowork/employee_salary_api/internal/repository"
	"github.com/locvowork/employee_salary_api/internal/seed"
	"github.com/locvowork/employee_salary_api/internal/service"
)

type App struct {
	Echo   *echo.Echo
	Config *config.EnvConfig

	EmployeeRepo      domain.EmployeeRepository
	BasicEmployeeRepo domain.BasicEmployeeRepository
}

func NewApp() *App {
	e := echo.New()
	e.HideBanner = true
	return &App{
		Echo: e,
	}
}

func (a *App) Initialize(ctx context.Context) error {
	// Load environment configuration
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}
	a.Config = config.DefaultEnvConfig

	// Initialize logging
	logger.InitLogging(a.Config.LOG_FILE_PATH, a.Config.LOG_LEVEL)
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	a.Echo.Debug = a.Config.APP_DEBUG

	// Initialize stores
	a.EmployeeRepo = repository.NewEmployeeRepository()
	a.BasicEmployeeRepo = repository.NewBasicEmployeeRepository()

	if a.Config.SEED_ENABLED {
		doc, err := seed.Load(a.Config.SEED_FILE)
		if err != nil {
			return fmt.Errorf("failed to load seed data: %w", err)
		}
		if err := seed.NewDataSeeder(a.EmployeeRepo, a.BasicEmployeeRepo).SeedData(ctx, doc); err != nil {
			return fmt.Errorf("failed to seed stores: %w", err)
		}
		logger.InfoLog(ctx, "Seeded %d employees", len(doc.Employees))
	}

	// Initialize dependencies
	empSvc := service.NewEmployeeService(a.EmployeeRepo)
	reportSvc, err := service.NewReportService(empSvc, a.Config.REPORT_CONFIG_PATH)
	if err != nil {
		return fmt.Errorf("failed to initialize report service: %w", err)
	}
	empHandler := handler.NewEmployeeHandler(empSvc, reportSvc)
	basicHandler := handler.NewBasicEmployeeHandler(service.NewBasicEmployeeService(a.BasicEmployeeRepo))

	// Register Middlewares
	a.RegisterMiddlewares()

	// Register Routes
	return a.RegisterRoutes(empHandler, basicHandler)
}

func (a *App) RegisterMiddlewares() {
	a.Echo.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	a.Echo.Use(logger.RequestLogger())
	a.Echo.Use(middleware.Recover())
	a.Echo.Use(middleware.CORS())
}

func (a *App) RegisterRoutes(empHandler *handler.EmployeeHandler, basicHandler *handler.BasicEmployeeHandler) error {
	a.Echo.GET("/healthz", handler.HealthHandler)

	registerV1 := func(g *echo.Group) {
		g.GET("/employees", basicHandler.ListHandler)
		g.GET("/employees/:id", basicHandler.GetHandler)
		g.POST("/employees", basicHandler.CreateHandler)
		g.PUT("/employees/:id", basicHandler.UpdateHandler)
		g.DELETE("/employees/:id", basicHandler.DeleteHandler)
	}
	registerV2 := func(g *echo.Group) {
		g.GET("/employees", empHandler.ListHandler)
		g.GET("/employees/export", empHandler.ExportHandler)
		g.GET("/employees/:id", empHandler.GetHandler)
		g.POST("/employees", empHandler.CreateHandler)
		g.PUT("/employees/:id", empHandler.UpdateHandler)
		g.DELETE("/employees/:id", empHandler.DeleteHandler)
	}

	registerV1(a.Echo.Group("/v1"))
	registerV2(a.Echo.Group("/v2"))

	// Unversioned paths serve the configured default revision
	switch a.Config.DEFAULT_API_VERSION {
	case "v1":
		registerV1(a.Echo.Group(""))
	case "v2":
		registerV2(a.Echo.Group(""))
	default:
		return fmt.Errorf("unknown DEFAULT_API_VERSION %q", a.Config.DEFAULT_API_VERSION)
	}
	return nil
}

func (a *App) Run() error {
	return a.Echo.Start(":" + a.Config.APP_PORT)
}

// Shutdown stops the HTTP server, waiting for in-flight requests until ctx is done.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}
