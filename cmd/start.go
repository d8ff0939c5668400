package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"drone-config/core/broadcast"
	"drone-config/core/loader"
	"drone-config/core/logger"
	"drone-config/core/metrics"
	"drone-config/core/middleware/rayid"
	"drone-config/core/storage"

	"drone-config/feature/drone"
	"drone-config/feature/frontend"
	"drone-config/feature/health"
	"drone-config/feature/live"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "drone-config/docs/swagger"
)

// @title Drone Config API
// @version 1.0
// @description Visual profile configuration for drones with live WebSocket updates.
// @host localhost:8000
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the drone config server",
	Long:  `Prepares the config store, then serves the REST API, the live WebSocket endpoint and the frontend.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Configuration and logger
		cfg, logg, err := loadRuntime()
		if err != nil {
			log.Fatal(err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// 2. Config store
		db, store, err := openStore(ctx, cfg.Database, logg)
		if err != nil {
			logg.Fatal("Failed to prepare config store", zap.Error(err))
		}

		// 3. Live fan-out with metrics
		registry := metrics.NewRegistry()
		hub := broadcast.New(logg, registry)

		// 4. Frontend source
		var client storage.Client
		var source frontend.Source = frontend.NewDirSource(cfg.Server.StaticDir)
		if cfg.Storage.Enabled {
			client, err = storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
			source = frontend.NewBucketSource(client, cfg.Storage.Bucket, cfg.Storage.Prefix)
		}
		logg.Info("Serving frontend", zap.String("source", source.Describe()))

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// Middleware Registration
		// 1. RayID (Must be first to trace everything)
		app.Use(rayid.New())

		// 2. Request logging
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

		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", registry.Handler())

		// 5. Features
		mgr := loader.NewManager()
		drones := drone.NewFeature(store, hub, logg)
		mgr.Register(drones)
		mgr.Register(live.NewFeature(ctx, cfg.Server, hub, drones.Service(), logg))
		mgr.Register(health.NewFeature(health.NewService(db, client, cfg.Storage.Bucket, logg)))
		mgr.Register(frontend.NewFeature(source, cfg.Server.IndexFile, logg))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server",
				zap.String("port", cfg.Server.Port),
				zap.String("ws_path", cfg.Server.WebSocketPath()))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...", zap.Int("live_sessions", hub.Len()))
		// Hijacked WebSocket connections are not tracked by Shutdown.
		cancel()
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
