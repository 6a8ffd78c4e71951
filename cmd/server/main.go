package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	billingapp "github.com/tradedesk/backend/internal/application/billing"
	catalogapp "github.com/tradedesk/backend/internal/application/catalog"
	contractapp "github.com/tradedesk/backend/internal/application/contract"
	partyapp "github.com/tradedesk/backend/internal/application/party"
	"github.com/tradedesk/backend/internal/infrastructure/config"
	"github.com/tradedesk/backend/internal/infrastructure/logger"
	"github.com/tradedesk/backend/internal/infrastructure/persistence"
	"github.com/tradedesk/backend/internal/interfaces/http/handler"
	"github.com/tradedesk/backend/internal/interfaces/http/middleware"
	"github.com/tradedesk/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database with a zap-backed gorm logger
	gormLogger := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLogger)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()
	log.Info("Database connected",
		zap.String("host", cfg.Database.Host),
		zap.String("dbname", cfg.Database.DBName),
	)

	// Initialize repositories
	partyRepo := persistence.NewGormPartyRepository(db.DB)
	commodityRepo := persistence.NewGormCommodityRepository(db.DB)
	paymentTermRepo := persistence.NewGormPaymentTermRepository(db.DB)
	bankDetailsRepo := persistence.NewGormBankDetailsRepository(db.DB)
	contractRepo := persistence.NewGormContractRepository(db.DB)

	// Initialize application services
	partyService := partyapp.NewPartyService(partyRepo, log)
	commodityService := catalogapp.NewCommodityService(commodityRepo, log)
	paymentTermService := billingapp.NewPaymentTermService(paymentTermRepo, log)
	bankDetailsService := billingapp.NewBankDetailsService(bankDetailsRepo, log)
	contractService := contractapp.NewContractService(
		contractRepo,
		partyRepo,
		commodityRepo,
		paymentTermRepo,
		bankDetailsRepo,
		cfg.PDF.ContractNumberPrefix,
		log,
	)

	// Initialize HTTP handlers
	partyHandler := handler.NewPartyHandler(partyService)
	commodityHandler := handler.NewCommodityHandler(commodityService)
	paymentTermHandler := handler.NewPaymentTermHandler(paymentTermService)
	bankDetailsHandler := handler.NewBankDetailsHandler(bankDetailsService)
	contractHandler := handler.NewContractHandler(contractService)
	exportHandler := handler.NewExportHandler(contractService)
	healthHandler := handler.NewHealthHandler(db)

	// Setup Gin
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Failed to set trusted proxies", zap.Error(err))
	}

	// Global middleware
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	engine.Use(middleware.CORSWithConfig(corsConfig))

	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if cfg.HTTP.RateLimitEnabled {
		var limiter middleware.Limiter
		if cfg.Redis.Enabled {
			rdb := redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.Addr(),
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			limiter = middleware.NewRedisRateLimiter(rdb, cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
			log.Info("Rate limiting enabled (redis)",
				zap.String("addr", cfg.Redis.Addr()),
				zap.Int("requests", cfg.HTTP.RateLimitRequests),
				zap.Duration("window", cfg.HTTP.RateLimitWindow),
			)
		} else {
			limiter = middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
			log.Info("Rate limiting enabled (in-memory)",
				zap.Int("requests", cfg.HTTP.RateLimitRequests),
				zap.Duration("window", cfg.HTTP.RateLimitWindow),
			)
		}
		engine.Use(middleware.RateLimit(limiter))
	}

	// API key guard on mutating requests across the whole API surface
	engine.Use(middleware.APIKeyAuth(cfg.Auth.APIKey))
	if !cfg.WriteAuthEnabled() {
		log.Warn("API key auth disabled; mutating endpoints are open")
	}

	// Health check outside the versioned API group
	engine.GET("/health", healthHandler.Check)

	// API routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	partiesGroup := router.NewDomainGroup("parties", "/parties")
	partiesGroup.
		POST("", partyHandler.Create).
		GET("", partyHandler.List).
		GET("/:id", partyHandler.Get).
		PUT("/:id", partyHandler.Update).
		DELETE("/:id", partyHandler.Delete)

	commoditiesGroup := router.NewDomainGroup("commodities", "/commodities")
	commoditiesGroup.
		POST("", commodityHandler.Create).
		GET("", commodityHandler.List).
		GET("/:id", commodityHandler.Get).
		PUT("/:id", commodityHandler.Update).
		DELETE("/:id", commodityHandler.Delete)

	paymentTermsGroup := router.NewDomainGroup("payment-terms", "/payment-terms")
	paymentTermsGroup.
		POST("", paymentTermHandler.Create).
		GET("", paymentTermHandler.List).
		GET("/:id", paymentTermHandler.Get).
		PUT("/:id", paymentTermHandler.Update).
		DELETE("/:id", paymentTermHandler.Delete)

	// /default is registered before /:id so the literal segment wins
	bankDetailsGroup := router.NewDomainGroup("bank-details", "/bank-details")
	bankDetailsGroup.
		POST("", bankDetailsHandler.Create).
		GET("", bankDetailsHandler.List).
		GET("/default", bankDetailsHandler.GetDefault).
		GET("/:id", bankDetailsHandler.Get).
		PUT("/:id", bankDetailsHandler.Update).
		DELETE("/:id", bankDetailsHandler.Delete)

	contractsGroup := router.NewDomainGroup("contracts", "/contracts")
	contractsGroup.
		POST("", contractHandler.Create).
		GET("", contractHandler.List).
		GET("/search", contractHandler.Search).
		POST("/calculate", contractHandler.Calculate).
		GET("/:id", contractHandler.Get).
		PUT("/:id", contractHandler.Update).
		DELETE("/:id", contractHandler.Delete)

	exportGroup := router.NewDomainGroup("export", "/export")
	exportGroup.
		GET("/pdf/:id", exportHandler.ExportContract).
		GET("/release-note/:id", exportHandler.ExportReleaseNote)

	r.Register(partiesGroup).
		Register(commoditiesGroup).
		Register(paymentTermsGroup).
		Register(bankDetailsGroup).
		Register(contractsGroup).
		Register(exportGroup)

	r.Setup()

	// HTTP server with timeouts
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited")
}
