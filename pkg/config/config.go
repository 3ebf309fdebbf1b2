// Package config loads application settings from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/promptlens/promptlens/pkg/llm"
)

// Config holds the application-level settings. Database settings live in
// pkg/database.
type Config struct {
	// HTTPPort the API server listens on.
	HTTPPort string
	// WorkerCount sizes the background job pool (clustering, evaluations).
	WorkerCount int
	// ExecutionTimeout bounds a single LLM call.
	ExecutionTimeout time.Duration
	// OptimizerModel proposes implementation variants; empty selects the
	// built-in default.
	OptimizerModel string
	// LLM carries the provider API keys.
	LLM llm.FactoryConfig
}

// LoadFromEnv loads the application configuration from environment variables.
func LoadFromEnv() Config {
	workerCount, _ := strconv.Atoi(getEnvOrDefault("WORKER_COUNT", "2"))

	executionTimeout := 2 * time.Minute
	if v := os.Getenv("EXECUTION_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			executionTimeout = time.Duration(secs) * time.Second
		}
	}

	return Config{
		HTTPPort:         getEnvOrDefault("HTTP_PORT", "8080"),
		WorkerCount:      workerCount,
		ExecutionTimeout: executionTimeout,
		OptimizerModel:   os.Getenv("OPTIMIZER_MODEL"),
		LLM: llm.FactoryConfig{
			OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
			AnthropicAPIKey: os.Getenv("ANTHROPIC_API_KEY"),
			GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		},
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
