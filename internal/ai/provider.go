package ai

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
)

// Provider turns a directory-analysis prompt into suggested
// organization rules. It is consulted only by the insights command;
// the planning and execution pipeline never performs network I/O.
type Provider interface {
	SuggestRules(ctx context.Context, prompt string) (string, error)
}

// GenerativeModel is the slice of genai.GenerativeModel the Gemini
// provider uses, extracted so tests can stub it.
type GenerativeModel interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// NewProvider returns the provider registered under name.
func NewProvider(name string) (Provider, error) {
	switch name {
	case "gemini":
		return NewGeminiProvider(), nil
	case "ollama":
		return NewOllamaProvider(), nil
	default:
		return nil, fmt.Errorf("unknown AI provider: %s", name)
	}
}
