package config

import (
	"econnews/pkg/llm"
	"fmt"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfighcl"
)

const DefaultFile = "./econnews.hcl"

type Config struct {
	CollectedPath    string        `hcl:"collected_path" env:"COLLECTED_PATH" default:"data/scraped_articles.csv"`
	CategorizedPath  string        `hcl:"categorized_path" env:"CATEGORIZED_PATH" default:"data/categorized_real_articles.csv"`
	CollectThreshold int           `hcl:"collect_threshold" env:"COLLECT_THRESHOLD" default:"30"`
	FeedTimeout      time.Duration `hcl:"feed_timeout" env:"FEED_TIMEOUT" default:"10s"`
	FeedPause        time.Duration `hcl:"feed_pause" env:"FEED_PAUSE" default:"2s"`

	FinnhubAPIKey      string `hcl:"finnhub_api_key" env:"FINNHUB_API_KEY"`
	AlphaVantageAPIKey string `hcl:"alpha_vantage_api_key" env:"ALPHA_VANTAGE_API_KEY"`
	MassiveAPIKey      string `hcl:"massive_api_key" env:"MASSIVE_API_KEY"`

	LLMProvider     string        `hcl:"llm_provider" env:"LLM_PROVIDER" default:"openai"`
	OpenAIAPIKey    string        `hcl:"openai_api_key" env:"OPENAI_API_KEY"`
	AnthropicAPIKey string        `hcl:"anthropic_api_key" env:"ANTHROPIC_API_KEY"`
	ClassifyDelay   time.Duration `hcl:"classify_delay" env:"CLASSIFY_DELAY" default:"500ms"`

	DatabaseURL string `hcl:"database_url" env:"DATABASE_URL"`
	RedisURL    string `hcl:"redis_url" env:"REDIS_URL"`

	ViewerAddr  string `hcl:"viewer_addr" env:"VIEWER_ADDR" default:":8080"`
	FrontendURL string `hcl:"frontend_url" env:"FRONTEND_URL"`
	ModelLabel  string `hcl:"model_label" env:"MODEL_LABEL" default:"GPT-3.5"`
}

// Load reads defaults, then the optional HCL files, then the environment.
// Missing files are skipped.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{DefaultFile}
	}

	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		SkipFlags: true,
		Files:     files,
		FileDecoders: map[string]aconfig.FileDecoder{
			".hcl": aconfighcl.New(),
		},
	})

	if err := loader.Load(); err != nil {
		return Config{}, fmt.Errorf("config load: %w", err)
	}

	if cfg.CollectThreshold < 1 {
		return Config{}, fmt.Errorf("config load: collect_threshold must be positive, got %d", cfg.CollectThreshold)
	}

	switch cfg.LLMProvider {
	case llm.ProviderOpenAI, llm.ProviderAnthropic:
	default:
		return Config{}, fmt.Errorf("config load: unknown llm_provider %q", cfg.LLMProvider)
	}

	return cfg, nil
}
