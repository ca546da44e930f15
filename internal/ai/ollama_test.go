package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestOllamaProvider_SuggestRules(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate", r.URL.Path)

		var req ollamaRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3", req.Model)
		assert.False(t, req.Stream)
		assert.Contains(t, req.Prompt, "suggest")

		json.NewEncoder(w).Encode(ollamaResponse{Response: "rules:\n  - name: test"})
	}))
	defer server.Close()

	viper.Set("ollama.base_url", server.URL)
	viper.Set("ollama.model", "llama3")
	defer viper.Reset()

	p := NewOllamaProvider()
	out, err := p.SuggestRules(context.Background(), "please suggest rules")

	assert.NoError(t, err)
	assert.Equal(t, "rules:\n  - name: test", out)
}

func TestOllamaProvider_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	viper.Set("ollama.base_url", server.URL)
	viper.Set("ollama.model", "llama3")
	defer viper.Reset()

	p := NewOllamaProvider()
	_, err := p.SuggestRules(context.Background(), "prompt")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "non-OK")
}

func TestOllamaProvider_MissingConfig(t *testing.T) {
	viper.Reset()

	p := NewOllamaProvider()
	_, err := p.SuggestRules(context.Background(), "prompt")
	assert.Error(t, err)

	viper.Set("ollama.base_url", "http://localhost:11434")
	defer viper.Reset()
	_, err = p.SuggestRules(context.Background(), "prompt")
	assert.Error(t, err, "a model is required too")
}

func TestNewProvider(t *testing.T) {
	gemini, err := NewProvider("gemini")
	assert.NoError(t, err)
	assert.IsType(t, &GeminiProvider{}, gemini)

	ollama, err := NewProvider("ollama")
	assert.NoError(t, err)
	assert.IsType(t, &OllamaProvider{}, ollama)

	_, err = NewProvider("skynet")
	assert.Error(t, err)
}
