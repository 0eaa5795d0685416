package bootstrap

import (
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/falconsdev/coursecatalog/internal/app/controllers"
	appRepos "github.com/falconsdev/coursecatalog/internal/app/repositories"
	appRoutes "github.com/falconsdev/coursecatalog/internal/app/routes"
	appServices "github.com/falconsdev/coursecatalog/internal/app/services"
	"github.com/falconsdev/coursecatalog/internal/config"
	appMiddleware "github.com/falconsdev/coursecatalog/internal/middleware"
	"github.com/falconsdev/coursecatalog/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CatalogRepo       *appRepos.CatalogRepository
	CatalogService    *appServices.CatalogService
	CatalogController *appControllers.CatalogController
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupCatalog loads the course catalog artifact into the in-memory
// repository. This is the single load of the dataset; nothing re-reads it at
// runtime.
func SetupCatalog(cfg *config.Config, lgr zerolog.Logger) (*appRepos.CatalogRepository, error) {
	lgr.Info().Str("path", cfg.Catalog.DataPath).Msg("Loading course catalog...")
	repo, err := appRepos.NewCatalogRepository(cfg.Catalog.DataPath, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to load course catalog")
		return nil, err
	}
	lgr.Info().
		Int("courses", repo.Count()).
		Int("departments", len(repo.Departments())).
		Msg("Course catalog loaded")
	return repo, nil
}

// BuildDependencies wires repositories, services, and controllers.
func BuildDependencies(catalogRepo *appRepos.CatalogRepository, lgr zerolog.Logger) *Dependencies {
	catalogService := appServices.NewCatalogService(catalogRepo, lgr)
	catalogController := appControllers.NewCatalogController(catalogService)

	return &Dependencies{
		CatalogRepo:       catalogRepo,
		CatalogService:    catalogService,
		CatalogController: catalogController,
		Logger:            lgr,
	}
}

// SetupRouter creates the gin engine with middleware and all routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	gin.SetMode(ginMode(cfg.Server.Mode))

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router, deps.CatalogController)
	appRoutes.SetupSwagger(router)

	return router
}

func ginMode(mode string) string {
	switch mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
