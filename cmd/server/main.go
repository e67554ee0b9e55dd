package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	managerh "user-management-api/internal/http/handlers/manager"
	userh "user-management-api/internal/http/handlers/user"
	"user-management-api/internal/http/router"
	"user-management-api/internal/lib/config"
	"user-management-api/internal/lib/sl"
	repo "user-management-api/internal/repository"
	"user-management-api/internal/service/manager"
	"user-management-api/internal/service/user"
	"user-management-api/internal/storage/postgres"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	trmanager "github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-redis/redis/v8"
)

const (
	envLocal = "local"
	envDev   = "dev"

	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)
	log.Info("Starting user management service", slog.String("env", cfg.Env))

	db, err := postgres.New(cfg.Storage)
	if err != nil {
		log.Error("failed to establish connection with database", sl.Err(err))
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.Migrate(db); err != nil {
		log.Error("failed to apply schema", sl.Err(err))
		os.Exit(1)
	}

	// initialization of go-transaction-manager
	trManager := trmanager.Must(trmsqlx.NewDefaultFactory(db))

	userRepo := repo.NewUserRepo(db, trmsqlx.DefaultCtxGetter)
	managerRepo := repo.NewManagerRepo(db, trmsqlx.DefaultCtxGetter)

	var managerLister manager.ManagerLister = managerRepo
	var managerCache *repo.CachedManagerLister
	if cfg.Redis.Address != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Warn("redis unavailable, managers cache disabled", sl.Err(err))
		} else {
			managerCache = repo.NewCachedManagerLister(log, managerRepo, repo.NewRedisKV(rdb), cfg.Redis.ManagersTTL)
			managerLister = managerCache
			log.Info("managers cache enabled", slog.String("address", cfg.Redis.Address))
		}
	}

	userService := user.NewUserService(trManager, userRepo, userRepo, userRepo, managerRepo)
	managerService := manager.NewManagerService(trManager, managerLister, managerRepo)

	if cfg.SeedManagers {
		n, err := managerService.SeedDefaults(context.Background())
		if err != nil {
			log.Error("failed to seed managers", sl.Err(err))
			os.Exit(1)
		}
		if n > 0 {
			log.Info("seeded managers", slog.Int("count", n))

			if managerCache != nil {
				if err := managerCache.Invalidate(context.Background()); err != nil {
					log.Warn("failed to drop stale managers cache", sl.Err(err))
				}
			}
		}
	}

	userHandler := userh.NewUserHandler(log, userService)
	managerHandler := managerh.NewManagerHandler(log, managerService)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router.New(log, db, userHandler, managerHandler),
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting http server", slog.String("address", cfg.HTTPServer.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start http server", sl.Err(err))
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to stop http server", sl.Err(err))
		return
	}

	log.Info("http server stopped")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger
	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	default: // prod
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}
	return log
}
