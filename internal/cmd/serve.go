package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"owlplanner/internal/catalog"
	"owlplanner/internal/logger"
	"owlplanner/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the planning API over HTTP",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	setupLogging(cfg)
	log := logger.New("server")

	store := catalog.NewStore(logger.New("catalog"))
	if _, err := store.LoadFile(cfg.Catalog.CSVPath); err != nil {
		// The API can still come up; /api/schedules will 404 until a
		// catalog is loaded
		log.Warnf("catalog not loaded, run the scrape command first: %v", err)
	}

	api := server.New(store, log, cfg.Server.MaxResults, cfg.Server.TimeLimitMs)
	httpServer := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: api.Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errs := make(chan error, 1)
	go func() {
		log.Infof("listening on %v", cfg.Server.Addr)
		errs <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Infof("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}
