package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/viper"
)

// OllamaProvider implements Provider against a local Ollama server.
type OllamaProvider struct {
	client *http.Client
}

// NewOllamaProvider creates a new OllamaProvider.
func NewOllamaProvider() *OllamaProvider {
	return &OllamaProvider{client: &http.Client{}}
}

type ollamaRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaResponse struct {
	Response string `json:"response"`
}

// SuggestRules sends the prompt to the Ollama generate endpoint.
func (p *OllamaProvider) SuggestRules(ctx context.Context, prompt string) (string, error) {
	baseURL := viper.GetString("ollama.base_url")
	if baseURL == "" {
		return "", fmt.Errorf("ollama base_url is not set in the configuration")
	}
	model := viper.GetString("ollama.model")
	if model == "" {
		return "", fmt.Errorf("ollama model is not set in the configuration")
	}

	reqBody := ollamaRequest{Model: model, Prompt: prompt, Stream: false}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	apiURL := fmt.Sprintf("%s/api/generate", baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request to ollama: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("received non-OK response from ollama: %s", resp.Status)
	}

	var ollamaResp ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&ollamaResp); err != nil {
		return "", fmt.Errorf("failed to decode ollama response: %w", err)
	}

	return ollamaResp.Response, nil
}
