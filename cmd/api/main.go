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

	// build dependency + routes
	a, err := app.BuildApp(cfg, logger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Error("close app failed", zap.Error(err))
		}
	}()

	auditLogger := bootstrap.NewStdoutAuditLogger(logger)
	if err := bootstrap.StartHTTPServer(a.Router, cfg.HTTP, auditLogger); err != nil {
		logger.Error("http server stopped", zap.Error(err))
	}
}
