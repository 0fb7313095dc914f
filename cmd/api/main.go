package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "modernc.org/sqlite"

	"github.com/RahilKothari9/difflab/internal/api"
	"github.com/RahilKothari9/difflab/internal/snippet"
	"github.com/RahilKothari9/difflab/internal/user"
	"github.com/RahilKothari9/difflab/pkg/config"
	"github.com/RahilKothari9/difflab/pkg/notify"
	"github.com/RahilKothari9/difflab/pkg/storage"
)

// serverConfig is loaded from difflab.yaml with env overrides.
type serverConfig struct {
	Port      string               `yaml:"port" env:"API_PORT"`
	JWTSecret string               `yaml:"jwt_secret" env:"JWT_SECRET"`
	Database  storage.Config       `yaml:"database"`
	Webhook   notify.WebhookConfig `yaml:"webhook"`
}

func main() {
	cfg := serverConfig{
		Port:     "8080",
		Database: storage.Config{Path: "data/difflab.db"},
	}
	if err := config.LoadOrDefault("difflab.yaml", &cfg); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET is not set")
		os.Exit(1)
	}

	db, err := storage.Open(cfg.Database)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.Migrate(ctx, user.Schema); err != nil {
		slog.Error("schema migration failed", "error", err)
		os.Exit(1)
	}
	if err := db.Migrate(ctx, snippet.Schema); err != nil {
		slog.Error("schema migration failed", "error", err)
		os.Exit(1)
	}

	var notifier notify.Notifier
	if cfg.Webhook.URL != "" {
		notifier = notify.NewWebhookNotifier(cfg.Webhook)
	}

	server := api.NewServer(user.NewStore(db), snippet.NewStore(db), notifier, cfg.JWTSecret)
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: corsMiddleware(server.Routes()),
	}

	go func() {
		slog.Info("starting difflab API server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}
}

// corsMiddleware allows the local web frontend during development.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "http://localhost:3000")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
