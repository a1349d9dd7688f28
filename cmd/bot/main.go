package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-telegram/bot"
	dicebotroot "github.com/set-night/dicebot"
	"github.com/set-night/dicebot/internal/config"
	"github.com/set-night/dicebot/internal/handler"
	"github.com/set-night/dicebot/internal/middleware"
	"github.com/set-night/dicebot/internal/repository"
	"github.com/set-night/dicebot/internal/service"
	"github.com/set-night/dicebot/internal/session"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup context with graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Run migrations
	migrationsFS, err := fs.Sub(dicebotroot.MigrationsFS, "migrations")
	if err != nil {
		slog.Error("failed to load embedded migrations", "error", err)
		os.Exit(1)
	}
	if err := repository.RunMigrations(cfg.DatabaseURL, migrationsFS); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Initialize services
	repo := repository.New(pool)
	userService := service.NewUserService(repo)
	statsService := service.NewStatsService(repo)
	sessions := session.New(cfg.StaleSessionAge)

	// Create bot
	opts := []bot.Option{
		bot.WithMiddlewares(
			middleware.Recover(),
			middleware.Logging(),
			middleware.UserLoader(userService, cfg),
		),
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		slog.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	// Get bot info
	me, err := b.GetMe(ctx)
	if err != nil {
		slog.Error("failed to get bot info", "error", err)
		os.Exit(1)
	}
	slog.Info("bot info retrieved", "id", me.ID, "username", me.Username)

	// Initialize and register handlers
	h := handler.New(handler.Deps{
		Bot:          b,
		Cfg:          cfg,
		Sessions:     sessions,
		UserService:  userService,
		StatsService: statsService,
	})
	h.Register()

	// Start stale session sweeper
	go func() {
		ticker := time.NewTicker(cfg.StaleSessionSweep)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := sessions.Sweep(); n > 0 {
					slog.Info("stale sessions evicted", "count", n, "active", sessions.Len())
				}
			}
		}
	}()

	// Health endpoint
	go func() {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
			if err := pool.Ping(r.Context()); err != nil {
				http.Error(w, "db unreachable", http.StatusServiceUnavailable)
				return
			}
			w.WriteHeader(http.StatusOK)
		})
		addr := fmt.Sprintf(":%d", cfg.Port)
		if err := http.ListenAndServe(addr, mux); err != nil {
			slog.Error("health server stopped", "error", err)
		}
	}()

	// Start bot
	slog.Info("starting bot", "username", me.Username, "id", me.ID)
	b.Start(ctx)

	slog.Info("bot stopped gracefully")
}
