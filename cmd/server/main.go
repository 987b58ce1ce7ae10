package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"forkful/internal/config"
	"forkful/internal/fetch"
	"forkful/internal/handler"
	"forkful/internal/parser"
	"forkful/internal/repository/postgres"
	"forkful/internal/router"
	"forkful/internal/service"
	s3storage "forkful/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	recipeRepo := postgres.NewRecipeRepository(db)
	jobRepo := postgres.NewImportJobRepository(db)
	listRepo := postgres.NewShoppingListRepository(db)
	planRepo := postgres.NewMealPlanRepository(db)

	// Initialize storage and collaborators
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}
	fetcher := fetch.NewHTTPFetcher(&cfg.Fetch)
	orch := parser.New()

	// Initialize services
	recipeSvc := service.NewRecipeService(recipeRepo, planRepo)
	importSvc := service.NewImportService(jobRepo, recipeRepo, fetcher, s3Client, orch, &cfg.S3)
	listSvc := service.NewShoppingListService(listRepo, recipeRepo)
	planSvc := service.NewMealPlanService(planRepo, recipeRepo)

	// Initialize handlers
	recipeH := handler.NewRecipeHandler(recipeSvc)
	importH := handler.NewImportHandler(importSvc, &cfg.S3)
	listH := handler.NewShoppingListHandler(listSvc)
	planH := handler.NewMealPlanHandler(planSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(cfg, recipeH, importH, listH, planH, healthH)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start the import queue worker
	worker := service.NewImportQueueWorker(jobRepo, importSvc, service.ImportQueueConfig{
		PollInterval: time.Duration(cfg.Queue.PollIntervalSecs) * time.Second,
		MaxRetries:   cfg.Queue.MaxRetries,
		Concurrency:  cfg.Queue.Concurrency,
	})
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		worker.Start(ctx)
	}()

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Println("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	<-workerDone
	log.Println("shutdown complete")
	return nil
}
