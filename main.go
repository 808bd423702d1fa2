package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/wrdo/hunt/config"
	_ "github.com/wrdo/hunt/docs"
	"github.com/wrdo/hunt/internal/cache"
	"github.com/wrdo/hunt/internal/database"
	"github.com/wrdo/hunt/internal/handlers"
	"github.com/wrdo/hunt/internal/jobs"
	"github.com/wrdo/hunt/internal/middleware"
	"github.com/wrdo/hunt/internal/mockdata"
	"github.com/wrdo/hunt/internal/newsfeed"
	"github.com/wrdo/hunt/internal/repository"
	"github.com/wrdo/hunt/internal/services"
	"github.com/wrdo/hunt/internal/ws"
	"golang.org/x/sync/errgroup"
)

// @title HUNT Market Dashboard API
// @version 1.0
// @description Market session, screener, watchlist and rotation-lab API for the HUNT dashboard
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize database connection
	db, err := database.New(ctx, cfg.PGURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize the market generator and caches
	gen := mockdata.New(cfg.MockSeed)
	memCache := cache.NewMemoryCache(5*time.Second, time.Minute)

	var newsClient *newsfeed.Client
	if cfg.NewsURL != "" {
		newsClient = newsfeed.NewClient(cfg.NewsKey, cfg.NewsURL)
	}

	// Initialize repositories
	watchlistRepo := repository.NewWatchlistRepository(db.Pool)
	journalRepo := repository.NewJournalRepository(db.Pool)
	chatRepo := repository.NewChatRepository(db.Pool)
	rotationRepo := repository.NewRotationRepository(db.Pool)
	settingsRepo := repository.NewSettingsRepository(db.Pool)

	// Initialize services
	marketSvc := services.NewMarketService(gen, memCache)
	screenerSvc := services.NewScreenerService(gen, memCache)
	newsSvc := services.NewNewsService(newsClient, gen)
	watchlistSvc := services.NewWatchlistService(watchlistRepo, marketSvc)
	journalSvc := services.NewJournalService(journalRepo)
	chatSvc := services.NewChatService(chatRepo, marketSvc)
	rotationSvc := services.NewRotationService(rotationRepo, gen)
	settingsSvc := services.NewSettingsService(settingsRepo)

	// Initialize handlers
	marketHandler := handlers.NewMarketHandler(marketSvc)
	screenerHandler := handlers.NewScreenerHandler(screenerSvc)
	newsHandler := handlers.NewNewsHandler(newsSvc)
	watchlistHandler := handlers.NewWatchlistHandler(watchlistSvc)
	journalHandler := handlers.NewJournalHandler(journalSvc)
	chatHandler := handlers.NewChatHandler(chatSvc)
	rotationHandler := handlers.NewRotationHandler(rotationSvc)
	settingsHandler := handlers.NewSettingsHandler(settingsSvc)

	// Initialize the WebSocket hub and its push feeds
	hub := ws.NewHub()
	streamer := ws.NewStreamer(hub, marketSvc)

	// Initialize scheduled jobs
	scheduler, err := jobs.NewScheduler(memCache, newsSvc, hub)
	if err != nil {
		log.Fatalf("Failed to initialize scheduler: %v", err)
	}

	// Setup Gin router
	router := gin.Default()
	router.Use(middleware.CORS())
	router.Use(middleware.ValidateUser())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")

	// Market routes
	api.GET("/market/session", marketHandler.GetSession)
	api.GET("/market/quotes", marketHandler.GetQuotes)
	api.GET("/market/aggregates/:symbol", marketHandler.GetAggregates)
	api.GET("/market/movers", marketHandler.GetMovers)
	api.GET("/etf/grid", screenerHandler.GetGrid)
	api.GET("/news", newsHandler.GetNews)
	api.GET("/earnings", newsHandler.GetEarnings)

	// WebSocket routes
	api.GET("/ws/quotes", hub.HandleQuotes)
	api.GET("/ws/notifications", hub.HandleNotifications)

	// Authenticated routes
	auth := api.Group("", middleware.RequireAuth())
	auth.POST("/watchlists", watchlistHandler.Create)
	auth.GET("/watchlists", watchlistHandler.List)
	auth.GET("/watchlists/:id", watchlistHandler.Get)
	auth.PUT("/watchlists/:id", watchlistHandler.Update)
	auth.DELETE("/watchlists/:id", watchlistHandler.Delete)
	auth.POST("/watchlists/:id/symbols", watchlistHandler.AddSymbol)
	auth.DELETE("/watchlists/:id/symbols/:symbol", watchlistHandler.RemoveSymbol)

	auth.POST("/journal", journalHandler.Create)
	auth.GET("/journal", journalHandler.List)
	auth.GET("/journal/:id", journalHandler.Get)
	auth.PUT("/journal/:id", journalHandler.Update)
	auth.DELETE("/journal/:id", journalHandler.Delete)

	auth.POST("/chat/sessions", chatHandler.CreateSession)
	auth.GET("/chat/sessions", chatHandler.ListSessions)
	auth.GET("/chat/sessions/:id", chatHandler.GetSession)
	auth.DELETE("/chat/sessions/:id", chatHandler.DeleteSession)
	auth.GET("/chat/sessions/:id/messages", chatHandler.GetMessages)
	auth.POST("/chat/sessions/:id/messages", chatHandler.PostMessage)

	auth.GET("/rotation/config", rotationHandler.GetConfig)
	auth.PUT("/rotation/config", rotationHandler.SaveConfig)
	auth.POST("/rotation/backtests", rotationHandler.RunBacktest)
	auth.GET("/rotation/backtests", rotationHandler.ListBacktests)
	auth.GET("/rotation/backtests/:id", rotationHandler.GetBacktest)

	auth.GET("/settings", settingsHandler.Get)
	auth.PUT("/settings", settingsHandler.Update)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	scheduler.Start()
	defer scheduler.Stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return hub.Run(gctx)
	})

	g.Go(func() error {
		return streamer.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")

		// Give outstanding requests 5 seconds to complete
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Server error: %v", err)
	}
	log.Info("Server exited")
}
