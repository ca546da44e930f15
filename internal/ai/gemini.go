package ai

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"github.com/spf13/viper"
	"google.golang.org/api/option"
)

// GeminiProvider implements Provider on the Gemini API.
type GeminiProvider struct{}

// NewGeminiProvider creates a new GeminiProvider.
func NewGeminiProvider() *GeminiProvider {
	return &GeminiProvider{}
}

// SuggestRules sends the prompt to Gemini and returns the raw
// suggestion text.
func (p *GeminiProvider) SuggestRules(ctx context.Context, prompt string) (string, error) {
	apiKey := viper.GetString("gemini.api_key")
	if apiKey == "" {
		return "", fmt.Errorf("gemini api_key is not set in the configuration")
	}
	modelName := viper.GetString("gemini.model")
	if modelName == "" {
		return "", fmt.Errorf("gemini model is not set in the configuration")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	return generate(ctx, client.GenerativeModel(modelName), prompt)
}

// generate runs one generation call against any GenerativeModel.
func generate(ctx context.Context, model GenerativeModel, prompt string) (string, error) {
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("received an empty response from gemini")
	}

	if txt, ok := resp.Candidates[0].Content.Parts[0].(genai.Text); ok {
		return string(txt), nil
	}
	return "", fmt.Errorf("unexpected response format from gemini")
}
