package llm

import "context"

const (
	SystemPrompt = "You are an expert economic analyst."
	MaxTokens    = 20
)

type ClassifyRequest struct {
	Title       string
	Description string
}

// Classifier sends one categorization prompt and returns the model's raw answer.
type Classifier interface {
	Classify(ctx context.Context, req ClassifyRequest) (string, error)
	ModelName() string
}
