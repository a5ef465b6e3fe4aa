package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tsawler/reelsense"
	"github.com/tsawler/reelsense/internal/config"
	"github.com/tsawler/reelsense/internal/dataset"
	"github.com/tsawler/reelsense/internal/httpapi"
	"github.com/tsawler/reelsense/internal/logging"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupProcessor(cfg *config.Config) *reelsense.Processor {
	lex, err := reelsense.LoadLexicon(cfg.LexiconPath)
	if err != nil {
		slog.Error("Failed to load lexicon", "error", err)
		os.Exit(1)
	}
	slog.Info("Lexicon loaded", "path", cfg.LexiconPath, "words", lex.Len())

	splitter, err := reelsense.NewPunktSplitter()
	if err != nil {
		slog.Error("Failed to initialize sentence splitter", "error", err)
		os.Exit(1)
	}

	return reelsense.NewProcessor(reelsense.NewScorer(lex, splitter))
}

func setupDataset(cfg *config.Config) *dataset.Dataset {
	data, err := dataset.Load(cfg.ReviewsPath, cfg.ReviewLimit)
	if err != nil {
		slog.Error("Failed to load reviews", "error", err)
		os.Exit(1)
	}
	slog.Info("Reviews loaded", "path", cfg.ReviewsPath, "reviews", data.Len(), "movies", len(data.Titles()))
	return data
}

func runGracefulShutdown(srv *httpapi.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	cfg := setupConfig()
	logger := logging.InitLogger(cfg.LogLevel, cfg.LogFormat)

	slog.Info("Application starting", "port", cfg.Port)

	processor := setupProcessor(cfg)
	data := setupDataset(cfg)
	resolver := reelsense.NewNameResolver(reelsense.WithThreshold(cfg.MatchThreshold))

	srv := httpapi.NewServer(httpapi.Options{
		Port:        cfg.Port,
		CORSOrigins: cfg.Origins(),
		WindowSize:  cfg.WindowSize,
		TopN:        cfg.TopN,
		Logger:      logger,
	}, processor, resolver, data)

	done := runGracefulShutdown(srv)

	slog.Info("Server starting", "port", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}
