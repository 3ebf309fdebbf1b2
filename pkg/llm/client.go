// Package llm wraps the provider SDKs behind one completion interface and
// implements the prompt executor used by evaluations, grading and the
// optimizer.
package llm

import (
	"context"

	"github.com/promptlens/promptlens/pkg/models"
)

// Message is one conversation turn sent to a provider.
type Message struct {
	Role    string
	Content string
}

// Request is a provider-independent completion request.
type Request struct {
	Model           string
	SystemPrompt    string
	Messages        []Message
	Temperature     *float64
	MaxOutputTokens int
	Reasoning       map[string]interface{}
	Tools           []models.ToolDefinition
	ToolChoice      *string
	ResponseSchema  map[string]interface{}
}

// Usage carries the provider token counters, unified across SDKs.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	CachedTokens     int
	ReasoningTokens  int
	TotalTokens      int
}

// Response is a completed (non-streaming) provider answer.
type Response struct {
	Text              string
	ToolCalls         []models.ToolCall
	Usage             Usage
	FinishReason      *string
	SystemFingerprint *string
}

// Client is one provider backend.
type Client interface {
	Complete(ctx context.Context, req Request) (*Response, error)
}
