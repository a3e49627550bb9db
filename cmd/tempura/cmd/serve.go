package cmd

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pigeonworks-llc/tempura/internal/api"
	"github.com/pigeonworks-llc/tempura/internal/config"
	"github.com/pigeonworks-llc/tempura/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the billing HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		// Structured JSON logging for the server process.
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}
		logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)

		cfg, err := config.Load(envFile)
		exitOnError(err, "failed to load configuration")

		catalog := store.NewCatalogStore(cfg.MenuPath())
		ledger := store.NewLedgerStore(cfg.BillsPath())

		// Create both files up front so staff can open them in a
		// spreadsheet before the first request.
		exitOnError(catalog.Ensure(), "failed to create menu file")
		exitOnError(ledger.Ensure(), "failed to create bills file")

		slog.Info("files ready", "menu", cfg.MenuPath(), "bills", cfg.BillsPath())

		r := api.NewRouter(cfg, catalog, ledger)

		slog.Info("starting billing server", "addr", cfg.Addr, "restaurant", cfg.Restaurant.Name)

		server := &http.Server{
			Addr:         cfg.Addr,
			Handler:      r,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		// Graceful shutdown.
		go func() {
			sigint := make(chan os.Signal, 1)
			signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
			<-sigint

			slog.Info("shutting down server")
			if err := server.Close(); err != nil {
				slog.Error("server shutdown error", "error", err)
			}
		}()

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}

		slog.Info("server stopped")
	},
}
