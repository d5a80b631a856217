package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/PauloHFS/pagelinks/internal/config"
	"github.com/PauloHFS/pagelinks/internal/db"
	"github.com/PauloHFS/pagelinks/internal/logging"
	"github.com/PauloHFS/pagelinks/internal/middleware"
	"github.com/PauloHFS/pagelinks/internal/routes"
	"github.com/PauloHFS/pagelinks/internal/view"
	"github.com/PauloHFS/pagelinks/internal/web"
)

func RunServer() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	logging.Init()
	logger := logging.Get()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 1. DB: pool de leitura para os handlers, escrita só para migrações
	pool, err := db.NewDualPool(ctx, "sqlite3", cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		panic(err)
	}
	defer pool.Close()

	if err := db.RunMigrations(ctx, pool.Write); err != nil {
		logger.Error("failed to run migrations", "error", err)
		panic(err)
	}

	linkCache, err := view.NewLinkCache(cfg.LinkCacheSize)
	if err != nil {
		logger.Error("failed to create link cache", "error", err)
		panic(err)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.Run(ctx)

	mux := http.NewServeMux()
	mux.Handle("GET "+routes.Metrics, promhttp.Handler())

	web.RegisterRoutes(mux, web.HandlerDeps{
		Pool:    pool,
		Queries: pool.Queries(),
		Links:   linkCache,
		Config:  cfg,
	})

	handler := middleware.Recovery(
		limiter.Middleware(
			middleware.SecurityHeaders(cfg.IsProd())(
				middleware.CORS(middleware.DefaultCORSConfig(cfg.CORSOrigins))(
					middleware.Logger(
						middleware.Locale(mux),
					),
				),
			),
		),
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           gzhttp.GzipHandler(handler),
		ReadHeaderTimeout: 5 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("server started", "port", cfg.Port, "env", cfg.Env, "max_links", cfg.MaxLinks)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-done
	logger.Info("server stopping")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server exited properly")
}
