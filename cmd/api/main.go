package main

import (
	"context"
	"strings"

	"companydata/cmd/internal/config"
	"companydata/cmd/internal/domain/database"
	"companydata/cmd/internal/domain/database/repository"
	"companydata/cmd/internal/domain/entity"
	"companydata/cmd/internal/http/handler"
	appmiddleware "companydata/cmd/internal/http/middleware"
	"companydata/cmd/internal/importer"
	"companydata/cmd/internal/infrastructure/metrics"
	"companydata/cmd/internal/service"
	"companydata/cmd/internal/service/jobs"
	"companydata/cmd/internal/utils/validators"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

const metricsPath = "/metrics"

func main() {
	ctx := context.Background()

	// Loads env vars depending on environment
	if config.Load().IsProduction() {
		if err := config.LoadProdEnv(ctx); err != nil { // AWS SSM Parameter Store
			log.Fatal(err)
		}
	} else if err := config.LoadDotEnv(); err != nil {
		log.Fatal(err)
	}

	cfg := config.Load()
	log.SetLevel(cfg.LogLevel)

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer database.Close(db)

	m := metrics.New()

	if cfg.ImportOnStart {
		if err := importOnStart(ctx, cfg, db, m); err != nil {
			log.Fatalf("startup import failed: %v", err)
		}
	}

	validate := validators.New()

	// Getting repos
	companyRepo := repository.NewCompanyRepository(db)
	industryRepo := repository.NewIndustryRepository(db)
	operationRepo := repository.NewOperationRepository(db)
	personRepo := repository.NewPersonRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	// Getting services
	companyService := service.NewCompanyService(companyRepo, industryRepo, operationRepo, personRepo, validate)
	industryService := service.NewIndustryService(industryRepo)
	personService := service.NewPersonService(personRepo, validate)
	miscService := service.NewMiscService(statsRepo, service.PingerFunc(func(ctx context.Context) error {
		return database.Ping(ctx, db)
	}))
	statementRoute := func(kind entity.StatementKind) *handler.DefaultStatementRoute {
		statementRepo := repository.NewStatementRepository(db, kind)
		return handler.NewStatementDefault(service.NewStatementService(kind, statementRepo, companyRepo, validate))
	}

	// Getting handlers
	routes := &handler.Routes{
		Companies:        handler.NewCompanyDefault(companyService),
		BalanceSheets:    statementRoute(entity.KindBalanceSheet),
		CashFlows:        statementRoute(entity.KindCashFlow),
		IncomeStatements: statementRoute(entity.KindIncomeStatement),
		Industries:       handler.NewIndustryDefault(industryService),
		People:           handler.NewPersonDefault(personService),
		Misc:             handler.NewMiscDefault(miscService),
	}

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(cfg.LogLevel)
	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(appmiddleware.NewMetricsMiddleware(&appmiddleware.MetricsMiddlewareConfig{
		Observer: m,
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, metricsPath)
		},
	}))

	routes.Register(e)
	e.GET(metricsPath, m.Handler())

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func importOnStart(ctx context.Context, cfg *config.Config, db *gorm.DB, m *metrics.Metrics) error {
	source, err := importer.NewSource(ctx, cfg.DataSource, cfg.S3Region)
	if err != nil {
		return err
	}

	imp := importer.New(source, repository.NewImportRepository(db, cfg.ImportBatchSize), importer.Options{Recorder: m})
	_, err = jobs.NewStartupImport(repository.NewStatsRepository(db), imp).Run(ctx)
	return err
}
