package cli

import (
	"context"
	"errors"
	nethttp "net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	apihttp "ozzus/scicalc/internal/api/http"
	"ozzus/scicalc/internal/lib/logger/sl"
	"ozzus/scicalc/internal/repository"
	"ozzus/scicalc/internal/repository/kafka"
	"ozzus/scicalc/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const serviceID = "scicalc"

func newServeCmd(app *App) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator over HTTP and, if enabled, Kafka",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == "" {
				port = app.Config.Server.Port
			}
			return runServe(cmd.Context(), app, port)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "HTTP port (overrides server.port)")

	return cmd
}

func runServe(parent context.Context, app *App, port string) error {
	cfg := app.Config
	log := app.Log

	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	var (
		requestRepo repository.RequestRepository
		resultRepo  repository.ResultRepository
	)

	if cfg.Kafka.Enabled {
		log.Info("initializing Kafka components", "brokers", cfg.Kafka.Brokers)

		requestConsumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.Topics.Requests, cfg.Kafka.GroupID, log)
		defer requestConsumer.Close()

		resultsProducer := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topics.Results)
		defer resultsProducer.Close()

		if err := requestConsumer.CheckConnection(ctx); err != nil {
			log.Warn("kafka connection check failed", sl.Err(err))
		}

		requestRepo = repository.NewKafkaRequestRepository(requestConsumer, log)
		resultRepo = repository.NewKafkaResultRepository(resultsProducer, log)
	}

	calcService := service.NewCalculationService(
		app.Calculator,
		requestRepo,
		resultRepo,
		log,
		service.Config{
			ServiceID:    serviceID,
			PollInterval: cfg.GetPollInterval(),
		},
	)

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := apihttp.NewRouter(
		log,
		apihttp.NewHealthController(calcService, serviceID),
		apihttp.NewCalculatorController(calcService),
	)

	var wg sync.WaitGroup

	if calcService.WorkerConfigured() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := calcService.Start(ctx); err != nil {
				log.Error("calculation worker failed", sl.Err(err))
				cancel()
			}
		}()
	}

	httpServer := &nethttp.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("starting http server", "port", port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Error("HTTP server failed", sl.Err(err))
			cancel()
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	log.Info("calculator service started and ready", "port", port, "kafka", cfg.Kafka.Enabled)

	select {
	case <-quit:
	case <-ctx.Done():
	}

	log.Info("shutting down calculator service...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown failed", sl.Err(err))
	}

	wg.Wait()
	log.Info("calculator service stopped gracefully")

	return nil
}
