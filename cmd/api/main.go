package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/vaultpass/passcheck-go/internal/config"
	"github.com/vaultpass/passcheck-go/internal/crypto"
	"github.com/vaultpass/passcheck-go/internal/handler"
	"github.com/vaultpass/passcheck-go/internal/leak"
	"github.com/vaultpass/passcheck-go/internal/middleware"
	"github.com/vaultpass/passcheck-go/internal/repository"
	"github.com/vaultpass/passcheck-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()
	setupLogger(cfg)

	var extra []leak.Source
	if cfg.DatabaseDSN != "" {
		db, err := repository.NewDB(context.Background(), cfg.DatabaseDSN)
		if err != nil {
			slog.Warn("database connection failed, breach table disabled", "error", err)
		} else {
			defer db.Close()
			extra = append(extra, breachSource(db))
		}
	}

	res := service.NewResources(cfg, extra...)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newRouter(cfg, res),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

func setupLogger(cfg config.Config) {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	var h slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if cfg.Env == "production" {
		h = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(h))
}

func breachSource(db *sql.DB) leak.Source {
	repo := repository.NewBreachRepository(db)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		slog.Warn("breach table schema check failed", "error", err)
	}
	return repo
}

func newRouter(cfg config.Config, res *service.Resources) http.Handler {
	strengthHandler := handler.NewStrengthHandler(service.NewStrengthService(res))
	genHandler := handler.NewGeneratorHandler(service.NewGeneratorService(res))
	adminHandler := handler.NewAdminHandler(res.Leaks)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

		r.Post("/strength", strengthHandler.HandleStrength)
		r.Post("/generate", genHandler.HandleGenerate)
		r.Post("/passphrase", genHandler.HandlePassphrase)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(cfg.JWTSecret, crypto.RoleAdmin))
			r.Post("/admin/leaks/reload", adminHandler.HandleReloadLeaks)
		})
	})

	return r
}
