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

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/movewell-api/internal/adapters/cache"
	adapterHTTP "github.com/comitanigiacomo/movewell-api/internal/adapters/handler/http"
	"github.com/comitanigiacomo/movewell-api/internal/adapters/llm"
	"github.com/comitanigiacomo/movewell-api/internal/adapters/repository"
	"github.com/comitanigiacomo/movewell-api/internal/config"
	"github.com/comitanigiacomo/movewell-api/internal/core/domain"
	"github.com/comitanigiacomo/movewell-api/internal/core/services"
	"github.com/comitanigiacomo/movewell-api/internal/core/workers"
)

// @title                       MoveWell API
// @version                     1.0
// @BasePath                    /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Critical: Invalid configuration: %v", err)
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		rdb, err = cache.NewRedisClient(cache.Options{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			if cfg.StorageBackend == config.BackendRedis {
				log.Fatalf("Critical: %v", err)
			}
			log.Printf("Redis unavailable, continuing without cache and rate limiting: %v", err)
			rdb = nil
		} else {
			defer rdb.Close()
			log.Println("Redis connected successfully.")
		}
	}

	store, closeStore, err := openStore(cfg, rdb)
	if err != nil {
		log.Fatalf("Critical: Failed to open %s storage: %v", cfg.StorageBackend, err)
	}
	defer closeStore()

	if cfg.CacheEnabled && rdb != nil && cfg.StorageBackend != config.BackendRedis {
		store = repository.NewCachedStore(store, rdb, cfg.CacheTTL)
		log.Printf("Read-through cache enabled (ttl %s).", cfg.CacheTTL)
	}

	users := services.NewUserStore(store)
	tokenService := services.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.TTL, users)

	exerciseService := services.NewExerciseService(store, cfg.Location())

	workerCtx, stopWorker := context.WithCancel(context.Background())
	statsWorker := workers.NewStatsWorker(exerciseService)
	statsWorker.Start(workerCtx)

	chatService := services.NewChatService(newGenerator(cfg.LLM))
	sessionService := services.NewSessionService(users, tokenService, statsWorker, chatService)
	dashboardService := services.NewDashboardService(users, exerciseService)
	appointmentService := services.NewAppointmentService(store)
	postureService := services.NewPostureService()

	router := adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		AuthHandler:        adapterHTTP.NewAuthHandler(sessionService),
		ExerciseHandler:    adapterHTTP.NewExerciseHandler(exerciseService),
		DashboardHandler:   adapterHTTP.NewDashboardHandler(dashboardService, exerciseService),
		AppointmentHandler: adapterHTTP.NewAppointmentHandler(appointmentService),
		PostureHandler:     adapterHTTP.NewPostureHandler(postureService),
		ChatHandler:        adapterHTTP.NewChatHandler(chatService, cfg.LLM.Timeout),
		TokenService:       tokenService,
		Store:              store,
		StoreName:          cfg.StorageBackend,
		Redis:              rdb,
		RateLimit:          cfg.RateLimit,
		RateLimitWindow:    cfg.RateLimitWindow,
		StartTime:          startTime,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.LLM.Timeout + 10*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("MoveWell API running on http://localhost:%s (storage: %s)", cfg.Port, cfg.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Critical server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Stop signal received. Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown error: %v", err)
	}

	stopWorker()
	select {
	case <-statsWorker.Done():
	case <-ctx.Done():
		log.Println("Stats worker did not stop in time.")
	}

	log.Println("Server stopped gracefully.")
}

func openStore(cfg *config.Config, rdb *redis.Client) (domain.KeyValueStore, func(), error) {
	noop := func() {}

	switch cfg.StorageBackend {
	case config.BackendMemory:
		log.Println("Using in-memory storage; data is lost on restart.")
		return repository.NewInMemoryStore(), noop, nil

	case config.BackendSQLite:
		store, err := repository.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		if err := store.EnsureSchema(context.Background()); err != nil {
			_ = store.Close()
			return nil, noop, err
		}
		log.Printf("SQLite storage at %s.", cfg.SQLitePath)
		return store, func() { _ = store.Close() }, nil

	case config.BackendPostgres:
		log.Println("Connecting to database...")

		db, err := sqlx.Connect("pgx", cfg.DB.DSN())
		if err != nil {
			return nil, noop, err
		}

		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)

		store := repository.NewPostgresStore(db)
		if err := store.EnsureSchema(context.Background()); err != nil {
			_ = db.Close()
			return nil, noop, err
		}
		log.Println("Database connected successfully.")
		return store, func() { _ = db.Close() }, nil

	case config.BackendRedis:
		return repository.NewRedisStore(rdb), noop, nil
	}

	return nil, noop, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}

func newGenerator(cfg config.LLMConfig) services.ReplyGenerator {
	if cfg.Provider == config.ProviderCanned {
		log.Println("Chat assistant uses canned replies.")
		return llm.NewCannedGenerator()
	}

	if cfg.APIKey == "" {
		log.Println("Gemini API key is missing! Chat replies will report a configuration error.")
	}
	return llm.NewGeminiClient(llm.GeminiConfig{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
		Timeout: cfg.Timeout,
	})
}
