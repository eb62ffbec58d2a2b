package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"pogodata/core/config"
	"pogodata/core/loader"
	"pogodata/core/logger"
	"pogodata/core/middleware/apikey"
	"pogodata/core/middleware/rayid"
	"pogodata/core/remote"
	"pogodata/core/storage"
	"pogodata/feature/pokedex"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "pogodata/docs/swagger"
)

// @title Pogodata API
// @version 1.0
// @description Queryable catalog of Pokemon GO game entities.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the catalog server",
	Long:  `Starts the HTTP server, loads the catalog and serves the pokedex endpoints.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Source mirror (optional)
		var mirror *storage.Mirror
		if cfg.Storage.Enabled {
			store, err := storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Warn("Source mirror disabled, storage client failed", zap.Error(err))
			} else {
				mirror = storage.NewMirror(store, cfg.Storage.Bucket)
				logg.Info("Source mirror enabled", zap.String("bucket", cfg.Storage.Bucket))
			}
		}

		// 4. Upstream fetcher + features
		fetcher := remote.NewFetcher(cfg.Sources, mirror, logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		mgr := loader.NewManager()
		dex := pokedex.NewFeature(fetcher, logg, cfg.Sources.Language)
		mgr.Register(dex)

		// Middleware Registration
		// RayID must be first so everything downstream can trace.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth (Protect API)
		app.Use(apikey.New(apikey.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 5. Initial catalog load. A failure here is not fatal; the catalog
		// can be loaded later via POST /pokedex/reload.
		if err := dex.Service().Reload(context.Background(), ""); err != nil {
			logg.Warn("Initial catalog load failed", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
