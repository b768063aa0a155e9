package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/hungpv1995/datagrid/cmd/internal/config"
	"github.com/hungpv1995/datagrid/cmd/internal/handlers"
	"github.com/hungpv1995/datagrid/cmd/internal/logging"
	"github.com/hungpv1995/datagrid/cmd/internal/repository"
	"github.com/hungpv1995/datagrid/cmd/internal/state"
	"github.com/hungpv1995/datagrid/cmd/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	configPath string
	verbose    bool
	baseURL    string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "datagrid",
	Short: "Browse users, posts and comments from a JSON API",
	Long: `datagrid fetches the users, posts and comments collections from a remote
JSON API once per session and lets you search, filter and page through them.

Use "serve" for the web view, "show" for a single table page on stdout and
"browse" for the interactive terminal viewer.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if baseURL != "" {
			cfg.API.BaseURL = baseURL
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		logger, err = logging.New(cfg.Logging, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "datagrid.yaml", "path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "override the API base URL")

	rootCmd.AddCommand(serveCmd, showCmd, browseCmd, configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRepository() *repository.Repository {
	client := &http.Client{Timeout: cfg.GetAPITimeout()}
	return repository.NewRepository(cfg.API.BaseURL, client, logger)
}

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web view",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo := newRepository()
	grid := state.NewGrid(cfg.View.PageSize, logger)

	// tables show "loading" until their fetch settles
	go grid.Load(ctx, repo)

	r := mux.NewRouter()
	handlers.NewGridHandler(grid, repo, logger).Register(r)

	addr := cfg.Server.Addr
	if serveAddr != "" {
		addr = serveAddr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", zap.String("addr", addr), zap.String("base_url", cfg.API.BaseURL))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the collections interactively in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
		defer stop()

		// stderr belongs to the terminal UI
		if cfg.Logging.File == "" {
			logger = zap.NewNop()
		}
		repo := newRepository()
		return tui.Run(ctx, state.NewGrid(cfg.View.PageSize, logger), repo)
	},
}
