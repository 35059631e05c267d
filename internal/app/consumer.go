package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/miguelF21/Facepay/internal/auditlog"
	"github.com/miguelF21/Facepay/internal/config"
	"github.com/miguelF21/Facepay/internal/events"
	"github.com/miguelF21/Facepay/internal/messaging/kafka/consumer"
	"github.com/miguelF21/Facepay/internal/shared/connection"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// RunConsumer appends an audit log row for every resource change event
// until SIGINT or SIGTERM.
func RunConsumer(cfg *config.Config, logger *zap.Logger) (err error) {
	log := logger.Named("app.consumer")

	if err := cfg.Kafka.Validate(); err != nil {
		return err
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, closeDB(gormDB)) }()

	auditLogService := auditlog.NewService(gormDB, auditlog.NewRepository(gormDB), logger)

	reader := connection.KafkaReader(cfg.Kafka.Broker, events.ResourceChangesTopic, cfg.Kafka.ConsumerGroup)
	defer func() { err = multierr.Append(err, reader.Close()) }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer.ConsumeResourceChanges(ctx, reader, auditLogService, logger)

	log.Info("consumer shutting down")
	return nil
}
