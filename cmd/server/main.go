package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/estuda-ai/backend/internal/api"
	"github.com/estuda-ai/backend/internal/gate"
	"github.com/estuda-ai/backend/internal/generator"
	"github.com/estuda-ai/backend/internal/infrastructure/config"
	"github.com/estuda-ai/backend/internal/service"
	"github.com/estuda-ai/backend/internal/store"

	_ "github.com/estuda-ai/backend/docs" // generated swagger docs
)

// @title           EstudaAI API
// @version         1.0
// @description     AI-powered study companion — generate quizzes, track failed themes, and chat with a tutor.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx := context.Background()

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	gemini, err := generator.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, logger)
	if err != nil {
		logger.Error("failed to create gemini client", "error", err)
		os.Exit(1)
	}
	defer gemini.Close()

	accessGate := gate.New(cfg.AccessPassword, cfg.MaxLoginAttempts, cfg.LockoutDuration)
	quizSvc := service.NewQuizService(ctx, db, gemini, logger)
	chatSvc := service.NewChatService(gemini, logger)
	handler := api.NewHandler(quizSvc, chatSvc, accessGate, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
