//	@title			Contacts API
//	@version		1.0
//	@description	CRUD backend for contacts with profile pictures in S3-compatible object storage.
//
//	@host		localhost:8080
//	@BasePath	/api/v1

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"github.com/uxstudio/contacts/internal/config"
	"github.com/uxstudio/contacts/internal/contact"
	"github.com/uxstudio/contacts/internal/db"
	"github.com/uxstudio/contacts/internal/files"
	appMiddleware "github.com/uxstudio/contacts/internal/middleware"
	"github.com/uxstudio/contacts/internal/storage"

	_ "github.com/uxstudio/contacts/docs/swagger"
)

func main() {
	cfg := config.Load()

	logger := newLogger(cfg)
	defer func() { _ = logger.Sync() }()

	pool, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer pool.Close()

	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		logger.Fatal("database migration failed", zap.Error(err))
	}
	logger.Info("database ready")

	store, err := storage.NewMinioStorage(
		cfg.StorageEndpoint,
		cfg.StorageAccessKey,
		cfg.StorageSecretKey,
		cfg.StorageBucket,
		cfg.StoragePublicBase,
		cfg.StorageUseSSL,
		logger,
	)
	if err != nil {
		logger.Fatal("object storage init failed", zap.Error(err))
	}

	// Wire dependencies: repository → service → handler
	contactRepo := contact.NewRepository(pool)
	contactSvc := contact.NewService(contactRepo, store, logger)
	contactHandler := contact.NewHandler(contactSvc)
	fileHandler := files.NewHandler(store, logger)

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger(logger))
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Swagger UI — available at http://localhost:8080/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/contacts", func(r chi.Router) {
			r.Post("/", contactHandler.Create)
			r.Get("/", contactHandler.List)
			r.Get("/{id}", contactHandler.GetByID)
			r.Put("/{id}", contactHandler.Update)
			r.Delete("/{id}", contactHandler.Delete)
		})
		r.Get("/files/*", fileHandler.GetFile)
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("shutting down gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}

// newLogger builds a zap logger: human-readable in development, JSON in
// production.
func newLogger(cfg *config.Config) *zap.Logger {
	if cfg.IsProduction() {
		logger, err := zap.NewProduction()
		if err != nil {
			panic(err)
		}
		return logger
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return logger
}
