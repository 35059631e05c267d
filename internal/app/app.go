package app

import (
	"net/http"

	"github.com/miguelF21/Facepay/internal/auth/jwks"
	"github.com/miguelF21/Facepay/internal/config"
	"github.com/miguelF21/Facepay/internal/metrics"
	"github.com/miguelF21/Facepay/internal/middleware"
	"github.com/miguelF21/Facepay/internal/shared/apperror"
	"github.com/miguelF21/Facepay/internal/shared/connection"
	"github.com/miguelF21/Facepay/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// App owns the connections behind the HTTP API.
type App struct {
	Router *gin.Engine

	db    *gorm.DB
	redis *redis.Client
}

// Dependencies is everything NewRouter needs. Redis may be nil, in which
// case POST requests are not deduplicated.
type Dependencies struct {
	Config        *config.Config
	DB            *gorm.DB
	Redis         redis.Cmdable
	Authenticator middleware.Authenticator
	Registry      *prometheus.Registry
	Logger        *zap.Logger
}

func BuildApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	log := logger.Named("app")

	db, err := connection.ConnectGORMWithRetry(cfg.DB)
	if err != nil {
		return nil, err
	}
	log.Info("database connection established")

	if cfg.DB.AutoMigrate {
		if err := AutoMigrate(db); err != nil {
			return nil, multierr.Append(err, closeDB(db))
		}
		log.Info("schema auto-migrated")
	}

	a := &App{db: db}

	deps := Dependencies{
		Config: cfg,
		DB:     db,
		Authenticator: jwks.NewVerifier(jwks.Config{
			Domain:   cfg.Auth.Domain,
			Audience: cfg.Auth.Audience,
			Issuer:   cfg.Auth.ResolvedIssuer(),
			Timeout:  cfg.Auth.JWKSTimeout,
		}, nil, logger),
		Registry: prometheus.NewRegistry(),
		Logger:   logger,
	}

	if cfg.Redis.Enabled() {
		rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Redis.MaxRetries)
		if err != nil {
			return nil, multierr.Append(err, a.Close())
		}
		a.redis = rdb
		deps.Redis = rdb
		log.Info("redis connection established")
	} else {
		log.Warn("REDIS_ADDR not set, idempotency keys are ignored")
	}

	if err := cfg.Auth.Validate(); err != nil {
		log.Warn("identity provider not configured, bearer tokens will be rejected", zap.Error(err))
	}

	a.Router = NewRouter(deps)
	return a, nil
}

// NewRouter wires middleware, health endpoints and every resource module.
func NewRouter(deps Dependencies) *gin.Engine {
	if deps.Config.App.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	reg := deps.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	reg.MustRegister(collectors.NewGoCollector())
	m := metrics.New(reg)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.ContextLogger(deps.Logger),
		middleware.Metrics(m),
	)

	router.GET("/health", healthHandler(deps.DB))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	api := router.Group("/api/v1")
	api.Use(
		middleware.RateLimitByIP(rate.Limit(deps.Config.RateLimit.RPS), deps.Config.RateLimit.Burst),
		middleware.Authenticate(deps.Authenticator, m),
	)
	if deps.Redis != nil {
		api.Use(middleware.Idempotency(deps.Redis))
	}

	registerModules(api, deps, m)

	return router
}

func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			response.Error(c, http.StatusServiceUnavailable, apperror.CodeServiceUnavailable, "database unreachable", nil)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok"}, nil)
	}
}

// Close releases the database and Redis connections.
func (a *App) Close() error {
	var err error
	if a.redis != nil {
		err = multierr.Append(err, a.redis.Close())
	}
	if a.db != nil {
		err = multierr.Append(err, closeDB(a.db))
	}
	return err
}

func closeDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
