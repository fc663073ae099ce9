package main

import (
	"bufio"
	"context"
	"econnews/db"
	"econnews/internal/config"
	"econnews/internal/model"
	"econnews/internal/repository"
	"econnews/pkg/llm"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"golang.org/x/term"
)

func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	key, err := apiKey(cfg)
	if err != nil {
		log.Fatalf("error reading API key: %v", err)
	}
	if err := llm.ValidateAPIKey(cfg.LLMProvider, key); err != nil {
		log.Fatalf("error validating API key: %v", err)
	}

	classifier, err := llm.NewClassifier(cfg.LLMProvider, key)
	if err != nil {
		log.Fatalf("error creating classifier: %v", err)
	}

	articles, err := repository.NewDatasetRepository(cfg.CollectedPath).ReadAll()
	if errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("collected file %s not found, run the collector first", cfg.CollectedPath)
	}
	if err != nil {
		log.Fatalf("error reading collected articles: %v", err)
	}

	if len(articles) == 0 {
		slog.Warn("no articles to categorize", "path", cfg.CollectedPath)
		return
	}

	categorizer := llm.NewCategorizer(classifier, cfg.ClassifyDelay).OnProgress(printProgress)

	if cfg.RedisURL != "" {
		if err := db.ConnectRedis(ctx, cfg.RedisURL); err != nil {
			slog.Warn("redis unavailable, categorizing without cache", "error", err)
		} else {
			defer db.CloseRedis()
			categorizer.WithCache(db.NewCategoryCache(db.Redis))
		}
	}

	slog.Info("categorizing articles", "count", len(articles), "model", classifier.ModelName())

	categorized, err := categorizer.Categorize(ctx, articles)
	if err != nil {
		log.Fatalf("categorization stopped, %s left untouched: %v", cfg.CategorizedPath, err)
	}

	out := repository.NewDatasetRepository(cfg.CategorizedPath)
	if err := out.Write(categorized, true); err != nil {
		log.Fatalf("error writing categorized articles: %v", err)
	}

	slog.Info("categorization finished", "total", len(categorized), "path", out.Path())

	for _, c := range llm.Distribution(categorized) {
		slog.Info("articles by category", "category", c.Value, "count", c.Count)
	}

	if cfg.DatabaseURL != "" {
		mirror(cfg.DatabaseURL, categorized)
	}
}

// apiKey prefers the environment and otherwise asks on the terminal. The value is
// never echoed or logged.
func apiKey(cfg config.Config) (string, error) {
	key := cfg.OpenAIAPIKey
	if cfg.LLMProvider == llm.ProviderAnthropic {
		key = cfg.AnthropicAPIKey
	}
	if key != "" {
		return strings.TrimSpace(key), nil
	}

	fmt.Printf("Enter your %s API key: ", cfg.LLMProvider)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return strings.TrimSpace(string(raw)), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func printProgress(index, total int, a model.Article) {
	title := a.Title
	if utf8.RuneCountInString(title) > 50 {
		title = string([]rune(title)[:50])
	}
	fmt.Printf("[%d/%d] %s: %s... → %s\n", index, total, a.ID, title, a.Category)
}

func mirror(databaseURL string, articles []model.Article) {
	if err := db.Connect(databaseURL); err != nil {
		slog.Error("error connecting to DB, skipping mirror", "error", err)
		return
	}
	defer db.Close()

	repo := repository.NewArticleRepository(db.DB)

	if err := repo.EnsureSchema(); err != nil {
		slog.Error("error preparing schema", "error", err)
		return
	}

	if err := repo.SaveCategorized(articles); err != nil {
		slog.Error("error mirroring categorized articles", "error", err)
		return
	}

	total, err := repo.GetCategorizedTotal()
	if err != nil {
		slog.Warn("error counting mirrored articles", "error", err)
		return
	}

	slog.Info("categorized articles mirrored", "saved", len(articles), "table_total", total)
}
