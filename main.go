package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trivia/config"
	"trivia/handlers"
	"trivia/models"
	"trivia/routes"
	"trivia/services"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}
	gin.SetMode(cfg.GinMode)

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := models.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}

	// Redis is optional; without it categories are read straight from the database
	redisClient := config.InitRedis(cfg)
	if redisClient == nil {
		log.Printf("REDIS_ADDR not set, category cache disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize services
	categoryService := services.NewCategoryService(db, redisClient, cfg.CategoryCacheTTL)
	questionService := services.NewQuestionService(db, categoryService)
	quizService := services.NewQuizService(db)

	if cfg.SeedData {
		if err := models.Seed(db); err != nil {
			log.Fatal("Failed to seed database:", err)
		}
		if err := categoryService.Invalidate(ctx); err != nil {
			log.Printf("Failed to invalidate category cache: %v", err)
		}
	}

	hub := services.NewHub()
	go hub.Run(ctx)

	// Initialize handlers
	categoryHandler := handlers.NewCategoryHandler(categoryService, questionService)
	questionHandler := handlers.NewQuestionHandler(questionService, categoryService, hub)
	quizHandler := handlers.NewQuizHandler(quizService)

	router := routes.NewRouter(cfg.AllowedOrigins())
	routes.SetupRoutes(router, categoryHandler, questionHandler, quizHandler, hub, db, redisClient)

	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: router,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	log.Printf("Server starting on %s", cfg.Addr())
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("Failed to start server:", err)
	}
	log.Printf("Server stopped")
}
