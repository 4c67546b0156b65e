package main

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jpp0ca/LinkBio-API/internal/adapters"
	handler "github.com/jpp0ca/LinkBio-API/internal/adapters/http"
	"github.com/jpp0ca/LinkBio-API/internal/app"
	"github.com/jpp0ca/LinkBio-API/internal/config"
	"github.com/jpp0ca/LinkBio-API/internal/logging"
	"github.com/jpp0ca/LinkBio-API/internal/metadata"
	"github.com/jpp0ca/LinkBio-API/internal/platform"
	"github.com/jpp0ca/LinkBio-API/internal/ports"
	"github.com/jpp0ca/LinkBio-API/internal/store"

	_ "github.com/jpp0ca/LinkBio-API/docs"
)

// @title			LinkBio API
// @version		1.0
// @description	API behind a link-in-bio page builder: music link canonicalization, metadata
// @description	resolution through per-platform provider chains, link ordering and scheduled publishing.

// @contact.name	LinkBio API Support
// @license.name	MIT

// @host		localhost:8080
// @BasePath	/

// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				Owner token issued by the identity service (e.g. "Bearer your_token_here")
func main() {
	fx.New(
		fx.WithLogger(func(l *zap.SugaredLogger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: l.Desugar()}
		}),
		fx.Provide(
			config.Load,
			newLogger,
			newDatabase,
			fx.Annotate(store.New, fx.As(new(ports.LinkRepository))),
			platform.Default,
			newMetadataResolver,
			fx.Annotate(newLinkService, fx.As(new(ports.LinkService))),
			newRouter,
		),
		fx.Invoke(runServer),
	).Run()
}

func newLogger(cfg *config.Config) (*zap.SugaredLogger, error) {
	return logging.New(cfg.LogLevel)
}

func newDatabase(lc fx.Lifecycle, cfg *config.Config, logger *zap.SugaredLogger) (*gorm.DB, error) {
	db, err := store.Open(cfg.DBDriver, cfg.DBDSN, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			logger.Info("Closing database.")
			return sqlDB.Close()
		},
	})
	return db, nil
}

func newMetadataResolver(cfg *config.Config, registry *platform.Registry, logger *zap.SugaredLogger) ports.MetadataResolver {
	client := adapters.NewHTTPClient(cfg.ProviderTimeout, cfg.UserAgent)
	chains := metadata.NewProviderRegistry(client, metadata.Endpoints{
		Spotify:     cfg.SpotifyBaseURL,
		Deezer:      cfg.DeezerAPIURL,
		ITunes:      cfg.ITunesAPIURL,
		YouTube:     cfg.YouTubeBaseURL,
		OEmbedProxy: cfg.OEmbedProxyURL,
	})
	logger.Infow("metadata providers registered", "platforms", chains.Available())
	return metadata.NewResolver(registry, chains, cfg.ProviderTimeout, logger)
}

func newLinkService(
	cfg *config.Config,
	repo ports.LinkRepository,
	registry *platform.Registry,
	resolver ports.MetadataResolver,
	logger *zap.SugaredLogger,
) *app.Service {
	return app.NewService(repo, registry, resolver, app.Options{
		Workers:       cfg.MetadataWorkers,
		ResolveOnSave: cfg.ResolveOnSave,
	}, logger)
}

func newRouter(cfg *config.Config, service ports.LinkService, registry *platform.Registry) *gin.Engine {
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	h := handler.NewHandler(service, registry)
	h.RegisterRoutes(r)

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return r
}

func runServer(lc fx.Lifecycle, cfg *config.Config, r *gin.Engine, logger *zap.SugaredLogger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Infow("Starting LinkBio API",
				"addr", srv.Addr,
				"workers", cfg.MetadataWorkers,
				"db", cfg.DBDriver,
				"swagger", "http://localhost"+srv.Addr+"/swagger/index.html",
			)
			go func() {
				if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
					logger.Errorw("server stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server.")
			return srv.Shutdown(ctx)
		},
	})
}
