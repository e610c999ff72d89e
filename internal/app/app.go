// Package app assembles the EcoTrack server from its components.
package app

import (
	"fmt"
	"net/http"

	"github.com/ecotrack-app/ecotrack/internal/config"
	"github.com/ecotrack-app/ecotrack/internal/db"
	"github.com/ecotrack-app/ecotrack/internal/http/api/admin"
	"github.com/ecotrack-app/ecotrack/internal/http/api/front"
	"github.com/ecotrack-app/ecotrack/internal/logging"
	"github.com/ecotrack-app/ecotrack/internal/metrics"
	"github.com/ecotrack-app/ecotrack/internal/storage"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// App is a fully wired server ready to listen.
type App struct {
	cfg    config.Config
	engine *gin.Engine
}

// New loads the configuration at cfgPath and wires the database, object
// store, metrics and all route groups.
func New(cfgPath string) (*App, error) {
	cfg, errLoad := config.Load(cfgPath)
	if errLoad != nil {
		return nil, errLoad
	}

	logging.Setup(cfg.Log)

	conn, errOpen := db.Open(cfg.Database.DSN)
	if errOpen != nil {
		return nil, fmt.Errorf("app: open database: %w", errOpen)
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		return nil, fmt.Errorf("app: migrate database: %w", errMigrate)
	}
	if errSeed := db.SeedCatalog(conn); errSeed != nil {
		return nil, fmt.Errorf("app: seed reward catalog: %w", errSeed)
	}

	store, errStore := newObjectStore(cfg.Upload)
	if errStore != nil {
		return nil, errStore
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(metrics.New().Middleware())

	engine.GET("/metrics", metrics.Handler())
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	front.RegisterFrontRoutes(engine, conn, cfg.JWT, store, cfg.Upload.MaxSize)
	admin.RegisterAdminRoutes(engine, conn, cfg.JWT, cfg.Admin)

	return &App{cfg: cfg, engine: engine}, nil
}

// newObjectStore picks S3 when a bucket is configured, local disk otherwise.
func newObjectStore(cfg config.UploadConfig) (storage.ObjectStore, error) {
	if cfg.S3.Bucket != "" {
		log.WithField("bucket", cfg.S3.Bucket).Info("using S3 object store for uploads")
		return storage.NewS3Store(cfg.S3), nil
	}
	store, errLocal := storage.NewLocalStore(cfg.Dir)
	if errLocal != nil {
		return nil, fmt.Errorf("app: init upload dir: %w", errLocal)
	}
	log.WithField("dir", cfg.Dir).Info("using local object store for uploads")
	return store, nil
}

// Run starts the HTTP listener and blocks until it fails.
func (a *App) Run() error {
	addr := fmt.Sprintf("%s:%d", a.cfg.Server.Host, a.cfg.Server.Port)
	log.WithField("addr", addr).Info("server listening")
	return a.engine.Run(addr)
}
