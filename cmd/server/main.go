package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"dsatrack/internal/analytics"
	"dsatrack/internal/config"
	"dsatrack/internal/handlers"
	"dsatrack/internal/jobs"
	"dsatrack/internal/llm"
	_ "dsatrack/internal/llm/gemini"
	"dsatrack/internal/metrics"
	"dsatrack/internal/prompts"
	mongorepo "dsatrack/internal/repositories/mongo"
	"dsatrack/internal/routers"
	"dsatrack/internal/utils"
)

func main() {
	logger := utils.GetLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	// storage
	mongoClient, err := mongorepo.NewClient(context.Background(), cfg.MongoURI)
	if err != nil {
		logger.Fatal("failed to connect to mongo", zap.Error(err))
	}
	db, err := mongoClient.DB(cfg.MongoDB)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	userRepo := mongorepo.NewUserRepo(db)
	problemRepo := mongorepo.NewProblemRepo(db)

	// A/B exposure store
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	abStore := analytics.NewStore(rdb)

	// AI explanations are optional: without an API key the endpoint
	// reports unavailable rather than the service refusing to boot
	var provider llm.Provider
	if p, err := llm.NewProvider(cfg.AIProvider); err != nil {
		logger.Warn("AI explanations disabled", zap.Error(err))
	} else {
		provider = p
		logger.Info("AI provider ready", zap.String("provider", p.GetProviderName()))
	}

	promptManager, err := prompts.NewManager()
	if err != nil {
		logger.Fatal("failed to load prompt templates", zap.Error(err))
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer, middleware.Timeout(60*time.Second))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	router.Use(metrics.Middleware("dsatrack"))

	routers.Routes(router, cfg.JWTSecret, routers.Handlers{
		Auth:        handlers.NewAuthHandler(userRepo, cfg.JWTSecret),
		Problems:    handlers.NewProblemHandler(problemRepo),
		Dashboard:   handlers.NewDashboardHandler(problemRepo, cfg.WeeklyGoal),
		Suggestions: handlers.NewSuggestionHandler(),
		AI:          handlers.NewAIHandler(provider, promptManager, logger),
		Analytics:   handlers.NewAnalyticsHandler(abStore),
		Health:      handlers.NewHealthHandler(mongoClient),
	})

	summaryJob := jobs.NewABSummaryJob(abStore, logger, cfg.ABSummarySchedule)
	if cfg.ABSummarySchedule != "" {
		if err := summaryJob.Start(); err != nil {
			logger.Error("failed to start ab summary job", zap.Error(err))
		}
		defer summaryJob.Stop()
	}

	serverAddr := ":" + cfg.Port

	// HTTP server with timeouts
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("dsatrack starting", zap.String("addr", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// wait for interrupt signal to gracefully shutdown the server
	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	<-shutdownChan

	logger.Info("dsatrack shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	if err := mongoClient.Disconnect(ctx); err != nil {
		logger.Error("failed to disconnect mongo", zap.Error(err))
	}
	if err := rdb.Close(); err != nil {
		logger.Error("failed to close redis", zap.Error(err))
	}

	logger.Info("dsatrack exited")
}
