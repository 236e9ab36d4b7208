package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/edu2job/edu2job/pkg/api"
	"github.com/edu2job/edu2job/pkg/auth"
	"github.com/edu2job/edu2job/pkg/auth/oauth2"
	"github.com/edu2job/edu2job/pkg/cache"
	"github.com/edu2job/edu2job/pkg/config"
	"github.com/edu2job/edu2job/pkg/kvs"
	"github.com/edu2job/edu2job/pkg/session"
	"github.com/edu2job/edu2job/pkg/webui"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local web interface",
	Long: `Start the edu2job server with the specified configuration.

The server will:
- Load the configuration file
- Open the durable session store and restore a remembered session
- Connect to the remote backend API
- Serve the web interface on the configured address
- Handle graceful shutdown on SIGTERM/SIGINT`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	res, err := loadConfig()
	if err != nil {
		return err
	}
	cfg := res.Config

	// Command-line flags win over the config file
	if cmd.Flags().Changed("host") {
		cfg.Server.Host = host
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = port
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	logger.Info("Starting edu2job", "version", version)
	if !res.FromFile {
		logger.Warn("Config file not found, using default configuration", "path", res.Path)
	}

	durable, err := kvs.New(cfg.Storage.Durable)
	if err != nil {
		return fmt.Errorf("failed to open durable store: %w", err)
	}
	defer func() { _ = durable.Close() }()

	// The ephemeral area dies with the process, exactly what a
	// non-remembered session wants
	ephemeral := kvs.NewMemoryStore()
	defer func() { _ = ephemeral.Close() }()

	client := api.NewClient(cfg.API.BaseURL, logger)
	client.SetTimeout(cfg.APITimeout())

	store := session.NewStore(durable, ephemeral)
	flashes := webui.NewFlashQueue()
	manager := auth.NewManager(client, store, flashes, logger)

	sigCtx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Restore a remembered session before taking requests
	manager.Bootstrap(sigCtx)
	if user := manager.User(); user != nil {
		logger.Info("Restored session", "email", user.Email)
	}

	var google oauth2.Provider
	if cfg.GoogleEnabled() {
		google = oauth2.NewGoogleProvider(cfg.Google.ClientID, cfg.Google.ClientSecret, cfg.Google.RedirectURL)
		logger.Info("Google sign-in enabled")
	}

	featureCache := cache.New(durable, cfg.CacheTTL(), logger)

	srv, err := webui.New(cfg, manager, client, featureCache, google, flashes, logger)
	if err != nil {
		return err
	}

	// Hot reload applies what can change without a restart
	if res.FromFile {
		watcher, err := config.NewWatcher(config.WatcherConfig{
			Loader:     res.Loader,
			ConfigPath: res.Path,
			Current:    cfg,
			OnChange: func(newCfg *config.Config) {
				client.SetTimeout(newCfg.APITimeout())
				logger.Info("Applied updated API timeout; listener and storage changes need a restart")
			},
			Logger: logger,
		})
		if err != nil {
			logger.Error("Failed to create config watcher", "error", err)
		} else {
			go watcher.Watch(sigCtx)
		}
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		} else {
			errChan <- nil
		}
	}()

	logger.Info("Open the interface in your browser",
		"url", fmt.Sprintf("http://%s:%d/", cfg.Server.Host, cfg.Server.Port))

	select {
	case <-stop:
		logger.Info("Shutdown signal received, stopping server...")
		cancel()

		if err := srv.Shutdown(context.Background()); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		if err := <-errChan; err != nil {
			logger.Error("Server stopped with error", "error", err)
			return err
		}
	case err := <-errChan:
		if err != nil {
			logger.Error("Server stopped with error", "error", err)
			return err
		}
	}

	logger.Info("Server stopped successfully")
	return nil
}
