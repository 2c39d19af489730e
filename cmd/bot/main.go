package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"mustard-bot/internal/bot"
	"mustard-bot/internal/config"
	"mustard-bot/internal/embedding"
	"mustard-bot/internal/greeting"
	"mustard-bot/internal/line"
	"mustard-bot/internal/reply"
	"mustard-bot/internal/router"
	"mustard-bot/internal/storage"
	"mustard-bot/internal/store"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	corpus, err := greeting.LoadCorpus(cfg.GreetingCorpusPath)
	if err != nil {
		log.Printf("failed to load greeting corpus, greetings disabled: %v", err)
	}
	embedder := embedding.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.EmbeddingModel)
	matcher := greeting.NewMatcher(embedder, corpus)
	go func() {
		if err := matcher.Prime(ctx); err != nil {
			log.Printf("corpus embedding warm-up failed, will retry on demand: %v", err)
		}
	}()

	scraper, err := store.NewScraper(cfg.StoreBaseURL)
	if err != nil {
		log.Fatalf("failed to init storefront scraper: %v", err)
	}
	retriever := store.NewCachedRetriever(scraper)
	if err := retriever.StartRefresh(ctx, cfg.CacheRefreshSpec); err != nil {
		log.Fatalf("failed to start catalog cache refresher: %v", err)
	}
	defer retriever.Stop()

	var rec storage.Recorder
	if r, err := newRecorder(cfg); err != nil {
		log.Printf("failed to init interaction recorder, history disabled: %v", err)
	} else {
		rec = r
	}

	b := bot.New(router.New(matcher), reply.New(retriever), rec)

	srv, err := line.New(cfg.LineChannelSecret, cfg.LineChannelToken, b)
	if err != nil {
		log.Fatalf("failed to init LINE client: %v", err)
	}

	go func() {
		if err := srv.Start(cfg.ListenAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("webhook server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}

func newRecorder(cfg *config.Config) (storage.Recorder, error) {
	switch cfg.LogBackend {
	case config.BackendSQLite:
		return storage.NewSQLiteRecorder(cfg.LogDBPath)
	default:
		return storage.NewFileRecorder(cfg.LogFilePath)
	}
}
