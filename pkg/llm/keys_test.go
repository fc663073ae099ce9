package llm

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestValidateAPIKey(t *testing.T) {
	tests := []struct {
		provider string
		key      string
		valid    bool
	}{
		{ProviderOpenAI, "sk-abc123", true},
		{ProviderOpenAI, "  sk-abc123\n", true},
		{ProviderOpenAI, "abc123", false},
		{ProviderOpenAI, "", false},
		{ProviderAnthropic, "sk-ant-abc123", true},
		{ProviderAnthropic, "sk-abc123", false},
	}

	for _, tt := range tests {
		err := ValidateAPIKey(tt.provider, tt.key)
		assert.Equal(t, tt.valid, err == nil)
		if !tt.valid {
			assert.Equal(t, true, errors.Is(err, ErrInvalidAPIKey))
		}
	}
}

func TestValidateAPIKey_DoesNotLeakKey(t *testing.T) {
	err := ValidateAPIKey(ProviderAnthropic, "sk-secret-value")

	assert.NotEqual(t, nil, err)
	assert.Equal(t, false, strings.Contains(err.Error(), "secret-value"))
}

func TestValidateAPIKey_UnknownProvider(t *testing.T) {
	err := ValidateAPIKey("mistral", "sk-abc")

	assert.NotEqual(t, nil, err)
	assert.Equal(t, false, errors.Is(err, ErrInvalidAPIKey))
}

func TestNewClassifier(t *testing.T) {
	c, err := NewClassifier(ProviderOpenAI, "sk-test")
	assert.Equal(t, nil, err)
	assert.Equal(t, "GPT-3.5", c.ModelName())

	c, err = NewClassifier(ProviderAnthropic, "sk-ant-test")
	assert.Equal(t, nil, err)
	assert.Equal(t, "Claude Haiku 4.5", c.ModelName())

	_, err = NewClassifier("mistral", "sk-test")
	assert.NotEqual(t, nil, err)
}
