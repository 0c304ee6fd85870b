package main

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/shashankpendyala3549-commits/backend/internal/cache"
	"github.com/shashankpendyala3549-commits/backend/internal/config"
	"github.com/shashankpendyala3549-commits/backend/internal/gemini"
	"github.com/shashankpendyala3549-commits/backend/internal/handler"
	"github.com/shashankpendyala3549-commits/backend/internal/netprobe"
	"github.com/shashankpendyala3549-commits/backend/internal/notifier"
	"github.com/shashankpendyala3549-commits/backend/internal/repository"
	"github.com/shashankpendyala3549-commits/backend/internal/server"
	"github.com/shashankpendyala3549-commits/backend/internal/service"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("Starting OfferShield backend...")

	cfg, err := config.LoadConfig("configs/config.yml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Report store: Postgres when configured, in-memory otherwise.
	var reports repository.ReportStore
	if cfg.Database.URL != "" {
		db, err := repository.NewPostgresDB(cfg.Database.URL, logger)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		repository.MigrateDB(db, logger)
		reports = repository.NewReportStore(db, logger)
	} else {
		logger.Warn("No database configured - scam report counts will not survive restarts")
		reports = repository.NewMemoryReportStore()
	}

	// Summarizer is optional: without an API key the delegated checks
	// fall back to their neutral default score.
	var summarizer service.Summarizer
	if cfg.Gemini.APIKey != "" {
		client, err := gemini.NewClient(gemini.Config{
			APIKey:     cfg.Gemini.APIKey,
			ModelName:  cfg.Gemini.ModelName,
			MaxRetries: cfg.Gemini.MaxRetries,
		}, logger)
		if err != nil {
			logger.Warn("Failed to initialize Gemini client, continuing without summarizer", zap.Error(err))
		} else {
			summarizer = client
			defer client.Close()
		}
	} else {
		logger.Warn("No Gemini API key configured - document and role checks will use the default score")
	}

	// Verification cache (optional).
	var analysisCache *cache.AnalysisCache
	if cfg.Redis.URL != "" {
		ttl := time.Duration(cfg.Redis.CacheTTLSeconds) * time.Second
		analysisCache, err = cache.New(context.Background(), cfg.Redis.URL, ttl, logger)
		if err != nil {
			logger.Warn("Failed to connect to Redis, continuing without cache", zap.Error(err))
			analysisCache = nil
		} else {
			defer analysisCache.Close()
		}
	}

	// Telegram alerts (optional).
	var telegram *notifier.Telegram
	if cfg.Telegram.Enabled {
		telegram, err = notifier.NewTelegram(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Telegram.ReportThreshold, logger)
		if err != nil {
			logger.Warn("Failed to initialize Telegram notifier, continuing without it", zap.Error(err))
			telegram = nil
		}
	}

	prober := netprobe.New(time.Duration(cfg.Probe.TimeoutSeconds)*time.Second, logger)
	verifier := service.NewVerifier(prober, summarizer, logger)

	h := handler.NewHandler(verifier, reports, analysisCache, telegram, logger)
	srv := server.NewServer(h, logger)
	srv.Run(cfg.Server.Port)
}
