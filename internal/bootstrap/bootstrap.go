package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/takeuforward/portal/internal/app/controllers"
	appMigrations "github.com/takeuforward/portal/internal/app/migrations"
	appRepos "github.com/takeuforward/portal/internal/app/repositories"
	appRoutes "github.com/takeuforward/portal/internal/app/routes"
	appServices "github.com/takeuforward/portal/internal/app/services"
	"github.com/takeuforward/portal/internal/config"
	"github.com/takeuforward/portal/internal/db"
	appMiddleware "github.com/takeuforward/portal/internal/middleware"
	pkgAuth "github.com/takeuforward/portal/internal/pkg/auth"
	"github.com/takeuforward/portal/internal/pkg/filestorage"
	"github.com/takeuforward/portal/internal/pkg/helpers"
	"github.com/takeuforward/portal/internal/pkg/logger"
	"github.com/takeuforward/portal/internal/pkg/websocket"
	"github.com/takeuforward/portal/internal/seed"
)

// uploadsPath is where the local storage driver's files are served from
const uploadsPath = "/uploads"

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	FileStorage    filestorage.FileStorage
	ChangeHub      *websocket.Hub
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

	logCfg := logger.ConfigFromSettings(cfg.Logging.Level, cfg.Logging.Format)
	logger.Configure(logCfg)

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logCfg.Level)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and seeds defaults.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database.Pool).Up(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.Enabled {
		seeder := seed.NewSeeder(appRepos.NewRepositories(database.Pool), logger.Component("seed"))
		if err := seeder.CreateDefaultData(ctx); err != nil {
			// the portal still works with empty catalog tables
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// NewFileStorage builds the storage driver named in the configuration.
func NewFileStorage(ctx context.Context, cfg *config.Config) (filestorage.FileStorage, error) {
	switch strings.ToLower(cfg.Storage.Driver) {
	case "s3":
		return filestorage.NewS3Storage(ctx, filestorage.S3Config{
			Bucket:    cfg.Storage.S3Bucket,
			Region:    cfg.Storage.S3Region,
			Endpoint:  cfg.Storage.S3Endpoint,
			AccessKey: cfg.Storage.S3AccessKey,
			SecretKey: cfg.Storage.S3SecretKey,
			Prefix:    cfg.Storage.S3Prefix,
			PublicURL: cfg.Storage.PublicURL,
		})
	default:
		// both drivers file notes under the same key prefix
		return filestorage.NewLocalStorage(cfg.Storage.LocalPath, cfg.Storage.PublicURL, cfg.Storage.S3Prefix)
	}
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(ctx context.Context, cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	var err error
	deps.FileStorage, err = NewFileStorage(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Str("driver", cfg.Storage.Driver).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.Session.Secret,
		TokenTTL:    helpers.ParseDuration(cfg.Session.TTL, 168*time.Hour),
		TokenIssuer: cfg.Session.Issuer,
	})

	// A nil interface keeps /api/login answering 401 when OIDC is off.
	var provider appControllers.Authenticator
	if cfg.OIDC.Enabled {
		oidcAuth, err := pkgAuth.NewOIDCAuthenticator(ctx, pkgAuth.OIDCConfig{
			IssuerURL:    cfg.OIDC.IssuerURL,
			ClientID:     cfg.OIDC.ClientID,
			ClientSecret: cfg.OIDC.ClientSecret,
			RedirectURL:  cfg.OIDC.RedirectURL,
			Scopes:       strings.Fields(cfg.OIDC.Scopes),
		})
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to initialize OIDC provider")
			return nil, err
		}
		provider = oidcAuth
	} else {
		lgr.Warn().Msg("OIDC login disabled; only existing session tokens are accepted")
	}

	deps.ChangeHub = websocket.NewHub(logger.Component("changes"))

	deps.Services = appServices.NewServices(deps.Repos, deps.FileStorage, int64(cfg.Storage.MaxUploadMB)<<20)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, cfg.Session.CookieName)

	svc := deps.Services
	deps.Controllers = appRoutes.Controllers{
		Auth: appControllers.NewAuthController(svc.UserService, deps.JWTService, provider, appControllers.SessionSettings{
			CookieName:   cfg.Session.CookieName,
			Secure:       cfg.Session.Secure,
			PostLoginURL: cfg.OIDC.PostLoginURL,
		}),
		Profile:     appControllers.NewProfileController(svc.UserService),
		Mentor:      appControllers.NewMentorController(svc.MentorService),
		Note:        appControllers.NewNoteController(svc.NoteService),
		Event:       appControllers.NewEventController(svc.EventService),
		Club:        appControllers.NewClubController(svc.ClubService),
		Opportunity: appControllers.NewOpportunityController(svc.OpportunityService),
		ProjectIfp:  appControllers.NewProjectIfpController(svc.ProjectIfpService),
		Link:        appControllers.NewLinkController(svc.LinkService),
		Discussion:  appControllers.NewDiscussionController(svc.DiscussionService),
		File:        appControllers.NewFileController(svc.FileService),
		Health:      appControllers.NewHealthController(database),
		Changes:     websocket.NewHandler(deps.ChangeHub, logger.Component("changes")),
	}

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
	router.Use(appMiddleware.RequestID(), appMiddleware.RequestLogger(), appMiddleware.Recovery())

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, deps.ChangeHub)

	if strings.ToLower(cfg.Storage.Driver) != "s3" {
		appRoutes.SetupStatic(router, uploadsPath, cfg.Storage.LocalPath)
		lgr.Info().Str("path", cfg.Storage.LocalPath).Msg("Static file serving configured for uploads directory")
	}

	return router
}
