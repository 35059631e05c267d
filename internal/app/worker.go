package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/miguelF21/Facepay/internal/config"
	"github.com/miguelF21/Facepay/internal/messaging/kafka"
	"github.com/miguelF21/Facepay/internal/messaging/kafka/producer"
	"github.com/miguelF21/Facepay/internal/metrics"
	"github.com/miguelF21/Facepay/internal/shared/connection"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// RunWorker publishes outbox rows to Kafka until SIGINT or SIGTERM.
func RunWorker(cfg *config.Config, logger *zap.Logger) (err error) {
	log := logger.Named("app.worker")

	if err := cfg.Kafka.Validate(); err != nil {
		return err
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, closeDB(gormDB)) }()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, cfg.Kafka.MaxRetries)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, kafkaWriter.Close()) }()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var metricsServer *http.Server
	if cfg.Kafka.MetricsAddr != "" {
		metricsServer = &http.Server{
			Addr:              cfg.Kafka.MetricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server failed", zap.Error(err))
			}
		}()
	}

	producer.ProcessOutboxEvents(
		ctx,
		kafka.NewOutboxRepository(gormDB),
		kafkaWriter,
		logger,
		m,
		cfg.Kafka.PollInterval,
	)

	log.Info("worker shutting down")
	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		return metricsServer.Shutdown(shutdownCtx)
	}
	return nil
}
