package llm

import (
	"fmt"
	"strings"
	"sync"

	"github.com/promptlens/promptlens/pkg/pricing"
)

// geminiOpenAIBaseURL is Gemini's OpenAI-compatible endpoint.
const geminiOpenAIBaseURL = "https://generativelanguage.googleapis.com/v1beta/openai"

// FactoryConfig carries the provider credentials.
type FactoryConfig struct {
	OpenAIAPIKey    string
	AnthropicAPIKey string
	GeminiAPIKey    string
}

// Factory routes completion requests to a backend by model family. Clients
// are built lazily and reused.
type Factory struct {
	cfg FactoryConfig

	mu      sync.Mutex
	clients map[string]Client
}

func NewFactory(cfg FactoryConfig) *Factory {
	return &Factory{cfg: cfg, clients: make(map[string]Client)}
}

// ClientFor returns the backend serving the given model name.
func (f *Factory) ClientFor(model string) (Client, error) {
	normalized := pricing.NormalizeModel(model)
	var family string
	switch {
	case strings.HasPrefix(normalized, "claude"):
		family = "anthropic"
	case strings.HasPrefix(normalized, "gemini"):
		family = "gemini"
	default:
		family = "openai"
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.clients[family]; ok {
		return c, nil
	}

	var c Client
	switch family {
	case "anthropic":
		if f.cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("no Anthropic API key configured for model %s", model)
		}
		c = NewAnthropicClient(f.cfg.AnthropicAPIKey)
	case "gemini":
		if f.cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("no Gemini API key configured for model %s", model)
		}
		c = NewOpenAICompatibleClient(f.cfg.GeminiAPIKey, geminiOpenAIBaseURL)
	default:
		if f.cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("no OpenAI API key configured for model %s", model)
		}
		c = NewOpenAIClient(f.cfg.OpenAIAPIKey)
	}
	f.clients[family] = c
	return c, nil
}
