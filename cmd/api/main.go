//	@title			Product Catalog API
//	@version		1.0
//	@description	Demo REST API for managing a product catalog with images in S3-compatible object storage.
//
//	@host		localhost:8080
//	@BasePath	/api

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/catalog/service/internal/config"
	appMiddleware "github.com/catalog/service/internal/middleware"
	"github.com/catalog/service/internal/product"
	"github.com/catalog/service/internal/storage"

	_ "github.com/catalog/service/docs/swagger"
)

func main() {
	cfg := config.Load()

	store, err := storage.NewS3Storage(storage.Config{
		Bucket:    cfg.StorageBucket,
		Region:    cfg.StorageRegion,
		AccessKey: cfg.StorageAccessKey,
		SecretKey: cfg.StorageSecretKey,
		Endpoint:  cfg.StorageEndpoint,
	})
	if err != nil {
		log.Fatalf("object storage init failed: %v", err)
	}

	// Local MinIO/LocalStack bootstrap; AWS buckets are provisioned out of band.
	if cfg.StorageEndpoint != "" {
		if err := store.EnsureBucket(context.Background()); err != nil {
			log.Fatalf("object storage bucket setup failed: %v", err)
		}
	}

	// Wire dependencies: repository → service → handler
	productRepo := product.NewRepository()
	productSvc := product.NewService(productRepo, store)
	productHandler := product.NewHandler(productSvc)

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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

	// API
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", productHandler.List)
		r.Post("/", productHandler.Create)
		r.Get("/{id}", productHandler.Get)
		r.Put("/{id}", productHandler.Update)
		r.Delete("/{id}", productHandler.Delete)
		r.Post("/{id}/image", productHandler.UploadImage)
		r.Get("/{id}/image", productHandler.DownloadImage)
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
		log.Printf("server listening on :%s (env=%s)", cfg.Port, cfg.AppEnv)
		log.Printf("swagger UI at http://localhost:%s/swagger/", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Println("server stopped")
}
