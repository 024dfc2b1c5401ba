package bootstrap

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/coursesvc/internal/app/controllers"
	"github.com/yigit/coursesvc/internal/app/repositories"
	"github.com/yigit/coursesvc/internal/app/routes"
	"github.com/yigit/coursesvc/internal/app/services"
	"github.com/yigit/coursesvc/internal/config"
	"github.com/yigit/coursesvc/internal/middleware"
	"github.com/yigit/coursesvc/internal/pkg/logger"
	"github.com/yigit/coursesvc/internal/pkg/metrics"
	"github.com/yigit/coursesvc/internal/pkg/validation"
	"github.com/yigit/coursesvc/internal/seed"
)

// Dependencies is the wired object graph behind the router
type Dependencies struct {
	Repositories     *repositories.Repositories
	Services         *services.Services
	CourseController *controllers.CourseController
	HomeController   *controllers.HomeController
	Metrics          *metrics.Metrics // nil when metrics are disabled
}

// LoadConfigAndSetupLogger loads the configuration file and environment, then configures the
// global logger from it.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, logger.Get(), err
	}

	lgr := logger.Configure(logger.NewConfig(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().
		Str("mode", cfg.Server.Mode).
		Str("idStrategy", cfg.Courses.IDStrategy).
		Str("logLevel", cfg.Logging.Level).
		Msg("Configuration loaded")

	return cfg, lgr, nil
}

// BuildDependencies creates repositories, seeds the course collection and wires services,
// controllers and metrics.
func BuildDependencies(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	repos, err := repositories.NewRepositories(cfg.Courses.IDStrategy)
	if err != nil {
		return nil, fmt.Errorf("failed to create repositories: %w", err)
	}

	if err := seed.CreateDefaultCourses(ctx, repos.CourseRepository, cfg.Courses.Seed, lgr); err != nil {
		return nil, fmt.Errorf("failed to seed courses: %w", err)
	}

	schema := validation.NewCourseSchema(cfg.Courses.NameMinLength)
	svcs := services.NewServices(repos, schema, lgr)

	deps := &Dependencies{
		Repositories:     repos,
		Services:         svcs,
		CourseController: controllers.NewCourseController(svcs.CourseService),
		HomeController:   controllers.NewHomeController(svcs.CourseService),
	}

	if cfg.Metrics.Enabled {
		deps.Metrics = metrics.New()
		deps.Metrics.ObserveCourses(repos.CourseRepository.Count)
	}

	return deps, nil
}

// ginMode maps the configured server mode onto gin's modes
func ginMode(cfg *config.Config) string {
	switch cfg.Server.Mode {
	case "release":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}

// SetupRouter builds the gin engine with middleware and all routes
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	gin.SetMode(ginMode(cfg))

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(lgr),
		middleware.Recovery(),
	)

	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware())
		routes.SetupMetrics(router, cfg.Metrics.Path, deps.Metrics.Handler())
		lgr.Info().Str("path", cfg.Metrics.Path).Msg("Prometheus metrics endpoint enabled")
	}

	routes.SetupRouter(router, deps.CourseController, deps.HomeController)

	if cfg.Swagger.Enabled {
		routes.SetupSwagger(router)
		lgr.Info().Msg("Swagger UI available at /swagger/index.html")
	}

	return router
}
