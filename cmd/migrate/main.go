package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/miguelF21/Facepay/internal/bootstrap"
	"github.com/miguelF21/Facepay/internal/config"
	"github.com/miguelF21/Facepay/internal/migrations"
	"github.com/miguelF21/Facepay/internal/shared/connection"

	"go.uber.org/zap"
)

const usage = `usage: migrate [flags] <up|down|status|version>

  up        apply all pending migrations
  down      roll back the latest migration
  status    print applied and pending migrations
  version   print the current version, or migrate to -to when set
`

func main() {
	target := flag.String("to", "", "target version (YYYYMMDDHHMMSS) for the version command")
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	command := flag.Arg(0)
	if command == "" {
		command = "up"
	}
	switch command {
	case "up", "down", "status", "version":
	default:
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if cfg.DB.Driver != config.DriverPostgres {
		log.Fatalf("migrations target postgres, got DB_DRIVER=%s (use DB_AUTO_MIGRATE instead)", cfg.DB.Driver)
	}

	logger, err := bootstrap.NewLogger(cfg.App)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)
	logger = logger.Named("migrate").With(zap.String("cmd", command))

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB)
	if err != nil {
		logger.Fatal("resource not working: database", zap.Error(err))
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("resource not working: sql database", zap.Error(err))
	}
	defer sqlDB.Close()

	ctx := context.Background()
	if command == "version" && *target != "" {
		err = migrations.MigrateTo(ctx, sqlDB, *target)
	} else {
		err = migrations.Run(ctx, sqlDB, command)
	}
	if err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}
	logger.Info("migration finished")
}
