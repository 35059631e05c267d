package main

import (
	"log"

	"github.com/miguelF21/Facepay/internal/app"
	"github.com/miguelF21/Facepay/internal/bootstrap"
	"github.com/miguelF21/Facepay/internal/config"
	"github.com/miguelF21/Facepay/internal/shared/apperror"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := bootstrap.NewLogger(cfg.App)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	if err := app.RunConsumer(cfg, logger); err != nil {
		logger.Fatal("run consumer failed", zap.Error(err))
	}
}
