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

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"vocabstream-api/handler"
	"vocabstream-api/internal/config"
	"vocabstream-api/internal/integrations/openai"
	"vocabstream-api/internal/logging"
	"vocabstream-api/internal/usecase"
)

// Local development entry point. Serves the same handler that runs on Lambda
// behind a chi router, reading the API key straight from the environment.
func main() {
	cfg := config.Load()
	logger := logging.Setup(cfg.LogLevel)

	if cfg.OpenAIAPIKey == "" {
		logger.Error("OPENAI_API_KEY is not set")
		os.Exit(1)
	}

	clientOpts := []openai.Option{}
	if cfg.OpenAIBaseURL != "" {
		clientOpts = append(clientOpts, openai.WithBaseURL(cfg.OpenAIBaseURL))
	}
	openaiClient, err := openai.NewClient(cfg.OpenAIAPIKey, clientOpts...)
	if err != nil {
		logger.Error("failed to create OpenAI client", "err", err)
		os.Exit(1)
	}

	chatService, err := usecase.NewChatService(openaiClient, cfg.OpenAIModel, cfg.GenerateTimeout, cfg.MaxMessageLen)
	if err != nil {
		logger.Error("failed to create chat service", "err", err)
		os.Exit(1)
	}

	h, err := handler.NewHandler(chatService, handler.WithAllowedOrigin(cfg.AllowedOrigin))
	if err != nil {
		logger.Error("failed to create handler", "err", err)
		os.Exit(1)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/", h.ServeHTTP)
	r.Post("/api/chat", h.ServeHTTP)
	r.Options("/*", h.ServeHTTP)
	// Unknown routes still flow through the handler so 404/405 bodies match
	// the Lambda deployment.
	r.NotFound(h.ServeHTTP)
	r.MethodNotAllowed(h.ServeHTTP)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("local server listening", "port", cfg.Port, "model", cfg.OpenAIModel)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	<-shutdownCh
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"elapsed_ms", time.Since(start).Milliseconds(),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
