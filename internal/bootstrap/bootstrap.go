package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/almokadam/backoffice/internal/app/controllers"
	appMigrations "github.com/almokadam/backoffice/internal/app/migrations"
	appRepos "github.com/almokadam/backoffice/internal/app/repositories"
	appRoutes "github.com/almokadam/backoffice/internal/app/routes"
	appServices "github.com/almokadam/backoffice/internal/app/services"
	"github.com/almokadam/backoffice/internal/config"
	"github.com/almokadam/backoffice/internal/db"
	appMiddleware "github.com/almokadam/backoffice/internal/middleware"
	pkgAuth "github.com/almokadam/backoffice/internal/pkg/auth"
	"github.com/almokadam/backoffice/internal/pkg/filestorage"
	"github.com/almokadam/backoffice/internal/pkg/helpers"
	"github.com/almokadam/backoffice/internal/pkg/logger"
	"github.com/almokadam/backoffice/internal/pkg/rates"
	"github.com/almokadam/backoffice/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService        *appServices.AuthService
	CourseService      *appServices.CourseService
	FolderService      *appServices.FolderService
	UniversityService  *appServices.UniversityService
	EditorService      *appServices.EditorService
	TeamService        *appServices.TeamService
	TestimonialService *appServices.TestimonialService
	ServiceService     *appServices.ServiceService
	InquiryService     *appServices.InquiryService
	DashboardService   *appServices.DashboardService
	SettingsService    *appServices.SettingsService

	AuthController       *appControllers.AuthController
	CourseController     *appControllers.CourseController
	FolderController     *appControllers.FolderController
	UniversityController *appControllers.UniversityController
	EditorController     *appControllers.EditorController
	ContentController    *appControllers.ContentController
	InquiryController    *appControllers.InquiryController
	DashboardController  *appControllers.DashboardController
	SettingsController   *appControllers.SettingsController
	UploadController     *appControllers.UploadController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	RatesClient    *rates.Client
	FileStorage    *filestorage.LocalStorage
	Logger         zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool, lgr)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seed failures are logged but do not block startup.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// File storage serves uploaded images from the static /uploads route.
	var err error
	baseURL := "http://localhost:" + cfg.Server.Port
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL+"/uploads")
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.RatesClient = rates.NewClient(
		cfg.Rates.URL,
		"MYR",
		helpers.ParseDuration(cfg.Rates.CacheTTL, 1*time.Hour),
		lgr,
	)

	deps.AuthService = appServices.NewAuthService(deps.Repos.AdminRepository, deps.JWTService, cfg, lgr)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository, deps.Repos.FolderRepository)
	deps.FolderService = appServices.NewFolderService(deps.Repos.FolderRepository)
	deps.UniversityService = appServices.NewUniversityService(deps.Repos.UniversityRepository)
	deps.EditorService = appServices.NewEditorService(
		deps.Repos.CourseRepository,
		deps.Repos.FolderRepository,
		deps.Repos.UniversityRepository,
		helpers.ParseDuration(cfg.Editor.SessionTTL, 30*time.Minute),
		lgr,
	)
	deps.TeamService = appServices.NewTeamService(deps.Repos.TeamRepository)
	deps.TestimonialService = appServices.NewTestimonialService(deps.Repos.TestimonialRepository)
	deps.ServiceService = appServices.NewServiceService(deps.Repos.ServiceRepository)
	deps.InquiryService = appServices.NewInquiryService(deps.Repos.InquiryRepository)
	deps.DashboardService = appServices.NewDashboardService(
		deps.Repos.InquiryRepository,
		deps.Repos.CourseRepository,
		deps.Repos.UniversityRepository,
		deps.Repos.TeamRepository,
	)
	deps.SettingsService = appServices.NewSettingsService(deps.Repos.SettingsRepository, deps.RatesClient)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, cfg)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.FolderController = appControllers.NewFolderController(deps.FolderService)
	deps.UniversityController = appControllers.NewUniversityController(deps.UniversityService)
	deps.EditorController = appControllers.NewEditorController(deps.EditorService)
	deps.ContentController = appControllers.NewContentController(deps.TeamService, deps.TestimonialService, deps.ServiceService)
	deps.InquiryController = appControllers.NewInquiryController(deps.InquiryService)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService)
	deps.SettingsController = appControllers.NewSettingsController(deps.SettingsService)
	deps.UploadController = appControllers.NewUploadController(deps.FileStorage)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CourseController,
		deps.FolderController,
		deps.UniversityController,
		deps.EditorController,
		deps.ContentController,
		deps.InquiryController,
		deps.DashboardController,
		deps.SettingsController,
		deps.UploadController,
		deps.AuthMiddleware,
	)

	return router
}
