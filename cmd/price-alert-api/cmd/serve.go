package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/price-alert-api/internal/api"
	"github.com/donaldgifford/price-alert-api/internal/config"
	"github.com/donaldgifford/price-alert-api/internal/engine"
	"github.com/donaldgifford/price-alert-api/internal/notify"
	"github.com/donaldgifford/price-alert-api/internal/pricesim"
	"github.com/donaldgifford/price-alert-api/internal/store"
	"github.com/donaldgifford/price-alert-api/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	prices := pricesim.NewRandom(cfg.Simulator.MinPrice, cfg.Simulator.MaxPrice)

	var notifier notify.Notifier = notify.NewLogNotifier(log)
	if cfg.Notifications.Webhook.Enabled {
		notifier = notify.NewWebhookNotifier(
			cfg.Notifications.Webhook.URL,
			notify.WithHeaders(cfg.Notifications.Webhook.Headers),
		)
	}

	st := store.NewMemory(prices, notifier, log)

	e := api.NewRouter(cfg, st, Version, log)

	var sched *engine.Scheduler
	if cfg.Schedule.SweepInterval > 0 {
		sched, err = engine.NewScheduler(st, cfg.Schedule.SweepInterval, log)
		if err != nil {
			return fmt.Errorf("creating scheduler: %w", err)
		}
		sched.Start()
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	if sched != nil {
		<-sched.Stop().Done()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	log.Info("server stopped")
	return nil
}
