package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wayfarer/auth"
	"wayfarer/cache"
	"wayfarer/config"
	"wayfarer/db"
	"wayfarer/events"
	"wayfarer/location"
	"wayfarer/middleware"
	"wayfarer/ratelim"
	"wayfarer/routes"
	"wayfarer/store"
	"wayfarer/tours"
	"wayfarer/usertours"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s from %s - %v", r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

func healthCheck(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

func setupRouter(database *db.Database, cfg *config.Config, redisCache *cache.Cache) *httprouter.Router {
	tokenService := middleware.NewTokenService(cfg.JWTSecret, middleware.TokenLifetime)
	emitter := events.NewEmitter(redisCache)
	rateLimiter := ratelim.NewRateLimiter()

	userStore := store.NewUserStore(database.Users)
	tourStore := store.NewTourStore(database.Tours)
	userTourStore := store.NewUserTourStore(database.UserTours)
	locationStore := store.NewLocationStore(database.LocationHistory)

	mw := middleware.NewAuth(tokenService, userStore)

	router := httprouter.New()
	router.GET("/health", healthCheck)

	routes.AddAuthRoutes(router, auth.NewHandler(userStore, tokenService, redisCache, emitter), mw, rateLimiter)
	routes.AddTourRoutes(router, tours.NewHandler(tourStore, emitter), mw)
	routes.AddUserTourRoutes(router, usertours.NewHandler(userTourStore, tourStore, emitter), mw)
	routes.AddLocationRoutes(router, location.NewHandler(locationStore), mw)

	return router
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	database, err := db.Connect(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("Database error: %v", err)
	}

	redisCache := cache.New(cfg.RedisAddr)
	if redisCache == nil {
		log.Println("REDIS_ADDR not set; cache and event publishing disabled")
	}

	router := setupRouter(database, cfg, redisCache)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              cfg.Port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	// wait for interrupt or SIGTERM
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received; shutting down gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}
	if err := redisCache.Close(); err != nil {
		log.Printf("Redis close error: %v", err)
	}
	if err := database.Close(shutdownCtx); err != nil {
		log.Printf("MongoDB disconnect error: %v", err)
	}

	log.Println("Server stopped cleanly")
}
