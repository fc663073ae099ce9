package main

import (
	"context"
	"econnews/internal/config"
	"econnews/internal/model"
	"econnews/internal/repository"
	"econnews/pkg/news"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

const apiSourceLimit = 15

func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sources := news.NewRSSSources(news.DefaultFeeds, cfg.FeedTimeout)

	if cfg.FinnhubAPIKey != "" {
		sources = append(sources, news.NewFinnHubSource(cfg.FinnhubAPIKey, apiSourceLimit))
	}
	if cfg.AlphaVantageAPIKey != "" {
		sources = append(sources, news.NewAlphaVantageSource(cfg.AlphaVantageAPIKey, apiSourceLimit, cfg.FeedTimeout))
	}
	if cfg.MassiveAPIKey != "" {
		sources = append(sources, news.NewMassiveSource(cfg.MassiveAPIKey, apiSourceLimit, cfg.FeedTimeout))
	}

	slog.Info("starting collection", "sources", len(sources), "threshold", cfg.CollectThreshold)

	collector := news.NewCollector(sources, cfg.CollectThreshold, cfg.FeedPause)
	articles, err := collector.Collect(ctx)
	if err != nil {
		log.Fatalf("collection stopped, %s left untouched: %v", cfg.CollectedPath, err)
	}

	if len(articles) == 0 {
		slog.Warn("no articles collected, nothing written")
		return
	}

	articles = news.AssignIDs(articles)

	repo := repository.NewDatasetRepository(cfg.CollectedPath)
	if err := repo.Write(articles, false); err != nil {
		log.Fatalf("error writing collected articles: %v", err)
	}

	slog.Info("collection finished", "total", len(articles), "path", repo.Path())

	for _, c := range model.CountBy(articles, model.BySource) {
		slog.Info("articles by source", "source", c.Value, "count", c.Count)
	}
}
