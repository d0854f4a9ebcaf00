package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	appordering "github.com/ordertaking/backend/internal/application/ordering"
	"github.com/ordertaking/backend/internal/domain/ordering"
	"github.com/ordertaking/backend/internal/infrastructure/address"
	"github.com/ordertaking/backend/internal/infrastructure/catalog"
	"github.com/ordertaking/backend/internal/infrastructure/config"
	"github.com/ordertaking/backend/internal/infrastructure/letters"
	"github.com/ordertaking/backend/internal/infrastructure/logger"
	"github.com/ordertaking/backend/internal/infrastructure/pricing"
	"github.com/ordertaking/backend/internal/interfaces/http/handler"
	"github.com/ordertaking/backend/internal/interfaces/http/middleware"
	"github.com/ordertaking/backend/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting order taking backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	caps, err := buildCapabilities(cfg, log)
	if err != nil {
		log.Fatal("Failed to build workflow capabilities", zap.Error(err))
	}

	placeOrderService := appordering.NewPlaceOrderService(caps, log)
	orderHandler := handler.NewOrderHandler(placeOrderService, log)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))

	router.NewRouter(engine).
		Register(orderHandler).
		Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
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

	log.Info("Server exited gracefully")
}

// buildCapabilities assembles the workflow collaborators from configuration
func buildCapabilities(cfg *config.Config, log *zap.Logger) (ordering.Capabilities, error) {
	defaultPrice, err := decimal.NewFromString(cfg.Catalog.DefaultPrice)
	if err != nil {
		return ordering.Capabilities{}, err
	}
	products := make(map[string]decimal.Decimal, len(cfg.Catalog.Products))
	for code, raw := range cfg.Catalog.Products {
		price, err := decimal.NewFromString(raw)
		if err != nil {
			return ordering.Capabilities{}, err
		}
		// viper lowercases map keys; product codes are upper case
		products[strings.ToUpper(code)] = price
	}
	cat, err := catalog.New(products, defaultPrice)
	if err != nil {
		return ordering.Capabilities{}, err
	}

	priceLookup := ordering.GetProductPrice(cat.ProductPrice)
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		cached := pricing.NewCachedPriceLookup(client, priceLookup, cfg.Redis.PriceTTL, log)
		priceLookup = cached.ProductPrice
		log.Info("Price cache enabled", zap.String("redis_addr", cfg.Redis.Addr()))
	}

	checker := address.NewChecker(cfg.Address.UnknownZips)

	renderer, err := letters.NewRenderer(letters.DefaultTemplate)
	if err != nil {
		return ordering.Capabilities{}, err
	}

	var sender ordering.SendAcknowledgment
	switch cfg.Letters.Sender {
	case "drop":
		sender = letters.NewDropSender().Send
	default:
		sender = letters.NewZapSender(log).Send
	}

	return ordering.Capabilities{
		CheckProductExists:         cat.ProductExists,
		CheckAddressExists:         checker.CheckAddress,
		GetProductPrice:            priceLookup,
		CreateAcknowledgmentLetter: renderer.Letter,
		SendAcknowledgment:         sender,
	}, nil
}
