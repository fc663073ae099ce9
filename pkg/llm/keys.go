package llm

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidAPIKey = errors.New("invalid API key")

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

var keyPrefixes = map[string]string{
	ProviderOpenAI:    "sk-",
	ProviderAnthropic: "sk-ant-",
}

// ValidateAPIKey checks the key shape for provider. The key itself never appears in
// the returned error.
func ValidateAPIKey(provider, key string) error {
	prefix, ok := keyPrefixes[provider]
	if !ok {
		return fmt.Errorf("unknown provider %q", provider)
	}

	if !strings.HasPrefix(strings.TrimSpace(key), prefix) {
		return fmt.Errorf("%w: %s keys start with %q", ErrInvalidAPIKey, provider, prefix)
	}

	return nil
}

// NewClassifier builds the client for provider. The key must already be validated.
func NewClassifier(provider, key string) (Classifier, error) {
	switch provider {
	case ProviderOpenAI:
		return NewOpenAIClient(key), nil
	case ProviderAnthropic:
		return NewAnthropicClient(key), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", provider)
	}
}
