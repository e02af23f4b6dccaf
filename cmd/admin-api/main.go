package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/voyago/travel-admin-api/api/swagger"
	"github.com/voyago/travel-admin-api/internal/fixture"
	"github.com/voyago/travel-admin-api/internal/handler"
	"github.com/voyago/travel-admin-api/internal/middleware"
	"github.com/voyago/travel-admin-api/internal/service"
	"github.com/voyago/travel-admin-api/internal/store"
	"github.com/voyago/travel-admin-api/pkg/cache"
	"github.com/voyago/travel-admin-api/pkg/config"
	"github.com/voyago/travel-admin-api/pkg/logger"
	corsmiddleware "github.com/voyago/travel-admin-api/pkg/middleware/cors"
	reqidmiddleware "github.com/voyago/travel-admin-api/pkg/middleware/requestid"
)

// @title Voyago Travel Admin API
// @version 0.1.0
// @description Back-office API serving generated dashboard, statistics and site-settings data
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, caching and rate limiting disabled", zap.Error(err))
			redisClient = nil
		}
	}

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	authSvc, err := service.NewAuthService(validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
		AdminEmail: cfg.Admin.Email,
		AdminPass:  cfg.Admin.Password,
	})
	if err != nil {
		logr.Fatal("failed to init auth service", zap.Error(err))
	}

	var dashboardCache *redis.Client
	if cfg.Dashboard.CacheEnabled {
		dashboardCache = redisClient
	}
	dashboardSvc := service.NewDashboardService(dashboardCache, cfg.Dashboard.CacheTTL, metricsSvc, logr)
	statisticsSvc := service.NewStatisticsService(logr)

	st := store.New(fixture.New(cfg.Mock.Seed))
	settingsSvc := service.NewSiteSettingsService(st, validate, logr)
	chatSvc := service.NewChatService(st, logr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.WithResponseMeta())
	r.Use(middleware.Metrics(metricsSvc))

	if cfg.RateLimit.Enabled && redisClient != nil {
		r.Use(middleware.RateLimit(&middleware.RedisCounter{Client: redisClient}, cfg.RateLimit.PerMinute, logr))
	}
	if cfg.Mock.LatencyEnabled {
		r.Use(middleware.SimulateLatency(cfg.Mock.LatencyMin, cfg.Mock.LatencyMax))
	}

	handler.RegisterRoutes(r, cfg.APIPrefix, handler.Handlers{
		Auth:            handler.NewAuthHandler(authSvc),
		Dashboard:       handler.NewDashboardHandler(dashboardSvc),
		Statistics:      handler.NewStatisticsHandler(statisticsSvc),
		PaymentAccounts: handler.NewPaymentAccountHandler(settingsSvc),
		Enums:           handler.NewEnumHandler(settingsSvc),
		Banners:         handler.NewBannerHandler(settingsSvc),
		Advertising:     handler.NewAdvertisingHandler(settingsSvc),
		SocialLinks:     handler.NewSocialLinkHandler(settingsSvc),
		ResetRequests:   handler.NewResetRequestHandler(settingsSvc),
		Chats:           handler.NewChatHandler(chatSvc),
	}, authSvc)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "seed", cfg.Mock.Seed)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
