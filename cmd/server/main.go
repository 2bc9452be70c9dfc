package main

import (
	"fmt"
	"log"

	"github.com/phperfect/backend/config"
	httpDelivery "github.com/phperfect/backend/internal/delivery/http"
	"github.com/phperfect/backend/internal/domain"
	"github.com/phperfect/backend/internal/infrastructure/cache"
	"github.com/phperfect/backend/internal/infrastructure/openai"
	"github.com/phperfect/backend/internal/infrastructure/openbeauty"
	"github.com/phperfect/backend/internal/infrastructure/sephora"
	"github.com/phperfect/backend/internal/logging"
	"github.com/phperfect/backend/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// Load configuration. The OpenAI key is the one mandatory credential;
	// its absence fails startup here.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.Init(cfg.Server.LogLevel, cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	zap.L().Info("starting pHPerfect backend",
		zap.String("version", "1.0.0"),
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("cache_type", cfg.Cache.Type),
	)

	// Lookup cache: in-memory by default, redis when configured
	var lookupCache domain.CacheRepository
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := cache.NewRedisCache(cfg.Cache.RedisURL)
		if err != nil {
			zap.L().Fatal("failed to connect to redis", zap.Error(err))
		}
		lookupCache = redisCache
	default:
		lookupCache = cache.NewMemoryCache()
	}

	// Catalog sources
	beautyClient := openbeauty.NewClient(cfg.OpenBeauty.BaseURL)
	if cfg.Server.Environment == "development" {
		beautyClient.SetDebug(true)
	}

	sephoraClient := sephora.NewClient(cfg.Sephora.APIKey, cfg.Sephora.BaseURL, cfg.Sephora.Host)
	if cfg.Sephora.APIKey == "" {
		zap.L().Warn("Sephora API key not configured; that source will contribute no products")
	}

	// Advice provider (construction fails without a key, but config
	// validation has already enforced it)
	openaiClient, err := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.BaseURL, cfg.OpenAI.Model)
	if err != nil {
		zap.L().Fatal("failed to initialize advice provider", zap.Error(err))
	}

	// Usecase layer
	adviceService := usecase.NewAdviceService(openaiClient, cfg.OpenAI.MaxTokens)
	recommendationService := usecase.NewRecommendationService(
		lookupCache,
		beautyClient,
		sephoraClient,
		adviceService,
		usecase.RecommendationServiceConfig{
			CacheTTL: cfg.Cache.TTL,
			SavePath: cfg.Server.RecommendationsFile,
		},
	)

	// HTTP delivery
	handler := httpDelivery.NewHandler(recommendationService)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zap.L().Info("server listening", zap.String("addr", addr))

	if err := router.Run(addr); err != nil {
		zap.L().Fatal("failed to start server", zap.Error(err))
	}
}
