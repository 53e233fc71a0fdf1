package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"alumni/internal/alumni"
	"alumni/internal/db"
	mcpserver "alumni/internal/mcp"
	"alumni/internal/registration"
	"alumni/internal/server"
	"alumni/internal/site"
	"alumni/views/static"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the showcase and registration web server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(os.Stdout)
		if err != nil {
			return err
		}
		if servePort != 0 {
			cfg.Server.Port = servePort
		}

		// Wire dependencies
		alumniSvc := newAlumniService(cfg, logger)
		alumniHandler := alumni.NewHandler(alumniSvc, logger)

		var store registration.Store = registration.NewMemoryStore()
		if cfg.Mongo.URI != "" {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			logger.Info("connecting to MongoDB", "database", cfg.Mongo.Database)
			database, err := db.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
			if err != nil {
				return err
			}
			defer database.Close(context.Background())

			repo := registration.NewRepo(database.Database)
			if err := repo.EnsureIndexes(ctx); err != nil {
				logger.Warn("failed to ensure indexes", "error", err)
			}
			store = repo
		} else {
			logger.Info("registrations are kept in memory only")
		}
		regHandler := registration.NewHandler(registration.NewService(store), logger, registration.HandlerConfig{
			RatePerMinute: cfg.Registration.RatePerMinute,
			AdminUser:     cfg.Registration.AdminUser,
			AdminPassword: cfg.Registration.AdminPassword,
		})

		siteHandler, err := site.NewHandler(logger, cfg.Site.AboutPath)
		if err != nil {
			return err
		}

		srv := server.New(server.Config{
			Port:         cfg.Server.Port,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
			AllowAll:     cfg.Server.AllowAllOrigins,
			AssetsDir:    cfg.Assets.Dir,
		}, logger, static.FS, mcpserver.NewServer(alumniSvc), alumniHandler, regHandler, siteHandler)

		// Graceful shutdown
		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh

			logger.Info("shutting down server...")
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("server shutdown error", "error", err)
			}
		}()

		logger.Info("endpoints available",
			"web", "http://localhost:"+strconv.Itoa(cfg.Server.Port),
			"api", "http://localhost:"+strconv.Itoa(cfg.Server.Port)+"/api",
			"mcp", "http://localhost:"+strconv.Itoa(cfg.Server.Port)+"/mcp",
		)

		if err := srv.Start(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		logger.Info("server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}
