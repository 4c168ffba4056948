// Package main is the entry point for the impact investing API.
//
// Startup wires, in order: configuration, logger, the provider cache, the
// upstream clients (Alpha Vantage, NewsAPI, Gemini), the market and news
// services, the scoring service, recommendations, the maintenance scheduler
// and finally the HTTP server. Every upstream is optional: a missing API key
// switches that provider to deterministic fallback data.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aristath/impact/internal/clientdata"
	"github.com/aristath/impact/internal/clients/alphavantage"
	"github.com/aristath/impact/internal/clients/gemini"
	"github.com/aristath/impact/internal/clients/newsapi"
	"github.com/aristath/impact/internal/config"
	"github.com/aristath/impact/internal/modules/market"
	markethandlers "github.com/aristath/impact/internal/modules/market/handlers"
	"github.com/aristath/impact/internal/modules/news"
	"github.com/aristath/impact/internal/modules/recommendations"
	recommendationshandlers "github.com/aristath/impact/internal/modules/recommendations/handlers"
	"github.com/aristath/impact/internal/modules/scoring"
	"github.com/aristath/impact/internal/scheduler"
	"github.com/aristath/impact/internal/server"
	"github.com/aristath/impact/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Use fallback logger if config fails
		fallbackLog := logger.New(logger.Config{
			Level:  "info",
			Pretty: true,
		})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})

	log.Info().Str("env", cfg.Env).Msg("Starting impact API")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Provider response cache (process lifetime)
	clientData := clientdata.NewRepository()

	// Upstream clients
	stockClient := alphavantage.NewClient(cfg.StockAPIKey, log,
		alphavantage.WithBaseURL(cfg.StockAPIBaseURL),
		alphavantage.WithDailyLimit(cfg.StockDailyLimit),
	)
	newsClient := newsapi.NewClient(cfg.NewsAPIKey, log,
		newsapi.WithBaseURL(cfg.NewsAPIBaseURL),
		newsapi.WithDailyLimit(cfg.NewsDailyLimit),
	)
	geminiClient, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, log)
	if err != nil {
		log.Warn().Err(err).Msg("Gemini unavailable, AI scoring disabled")
	}

	log.Info().
		Bool("stock", stockClient.Enabled()).
		Bool("news", newsClient.Enabled()).
		Bool("ai", geminiClient.Enabled()).
		Msg("Upstream providers configured")

	// Services
	marketService := market.NewService(stockClient, clientData, log,
		market.WithTTLs(market.TTLs{
			Quote:       cfg.Cache.QuoteTTL,
			History:     cfg.Cache.HistoryTTL,
			CompanyInfo: cfg.Cache.InfoTTL,
		}),
	)
	newsGateway := news.NewGateway(newsClient, geminiClient, clientData, log,
		news.WithTTL(cfg.Cache.NewsTTL),
	)
	scoringService := scoring.NewService(
		newsGateway,
		scoring.NewScoreCache(cfg.Cache.ScoreTTL, time.Now),
		log,
		[]scoring.Scorer{
			scoring.NewAIScorer(geminiClient, log),
			scoring.NewHeuristicScorer(nil),
		},
	)
	recommendationService := recommendations.NewService(marketService, scoringService, log)

	// Background maintenance
	sched := scheduler.New(log)
	if err := sched.AddJob(cfg.PruneSchedule, clientdata.NewCleanupJob(clientData, log)); err != nil {
		log.Fatal().Err(err).Msg("Failed to register provider cache prune job")
	}
	sched.Start()

	srv := server.New(server.Config{
		Log:                    log,
		Config:                 cfg,
		ClientData:             clientData,
		ScoreCache:             scoringService,
		CompanyHandler:         markethandlers.NewHandler(marketService, scoringService, log),
		RecommendationsHandler: recommendationshandlers.NewHandler(recommendationService, log),
	})

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	cancel()

	sched.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
