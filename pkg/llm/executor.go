package llm

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/promptlens/promptlens/pkg/models"
	"github.com/promptlens/promptlens/pkg/pricing"
	"github.com/promptlens/promptlens/pkg/template"
)

// CallSpec is the executable slice of an implementation: the prompt template
// and the provider configuration. Grading builds one synthetically from a
// grader's config.
type CallSpec struct {
	Prompt          string
	Model           string
	Temperature     *float64
	MaxOutputTokens int
	Reasoning       map[string]interface{}
	Tools           []models.ToolDefinition
	ToolChoice      *string
	ResponseSchema  map[string]interface{}
}

// Outcome is one finished execution, successful or not. Provider failures are
// recorded in Error; Execute never returns an error for them.
type Outcome struct {
	StartedAt         time.Time
	CompletedAt       time.Time
	PromptRendered    string
	Variables         map[string]string
	ResultText        *string
	ResultJSON        map[string]interface{}
	ToolCalls         []models.ToolCall
	Error             *string
	PromptTokens      int
	CompletionTokens  int
	CachedTokens      int
	ReasoningTokens   int
	TotalTokens       int
	SystemFingerprint *string
	Cost              *float64
}

// ClientResolver picks a backend for a model. *Factory implements it; tests
// substitute a stub.
type ClientResolver interface {
	ClientFor(model string) (Client, error)
}

// Executor renders prompts and runs them against a provider with a per-call
// timeout.
type Executor struct {
	resolver ClientResolver
	timeout  time.Duration
	logger   *slog.Logger
}

func NewExecutor(resolver ClientResolver, timeout time.Duration, logger *slog.Logger) *Executor {
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &Executor{resolver: resolver, timeout: timeout, logger: logger}
}

// Execute renders spec.Prompt with variables, sends it as the system prompt
// together with the optional input messages, and returns the outcome. A
// missing template variable short-circuits before any provider call.
func (e *Executor) Execute(ctx context.Context, spec CallSpec, variables map[string]string, input []Message) *Outcome {
	out := &Outcome{
		StartedAt: time.Now(),
		Variables: variables,
	}

	rendered, err := template.Render(spec.Prompt, variables)
	if err != nil {
		msg := err.Error()
		out.Error = &msg
		out.CompletedAt = time.Now()
		return out
	}
	out.PromptRendered = rendered

	client, err := e.resolver.ClientFor(spec.Model)
	if err != nil {
		msg := err.Error()
		out.Error = &msg
		out.CompletedAt = time.Now()
		return out
	}

	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := client.Complete(callCtx, Request{
		Model:           spec.Model,
		SystemPrompt:    rendered,
		Messages:        input,
		Temperature:     spec.Temperature,
		MaxOutputTokens: spec.MaxOutputTokens,
		Reasoning:       spec.Reasoning,
		Tools:           spec.Tools,
		ToolChoice:      spec.ToolChoice,
		ResponseSchema:  spec.ResponseSchema,
	})
	out.CompletedAt = time.Now()
	if err != nil {
		msg := err.Error()
		out.Error = &msg
		e.logger.Warn("provider call failed", "model", spec.Model, "error", err)
		return out
	}

	out.ResultText = &resp.Text
	out.ToolCalls = resp.ToolCalls
	out.PromptTokens = resp.Usage.PromptTokens
	out.CompletionTokens = resp.Usage.CompletionTokens
	out.CachedTokens = resp.Usage.CachedTokens
	out.ReasoningTokens = resp.Usage.ReasoningTokens
	out.TotalTokens = resp.Usage.TotalTokens
	out.SystemFingerprint = resp.SystemFingerprint
	out.Cost = pricing.CalculateCost(spec.Model, resp.Usage.PromptTokens, resp.Usage.CompletionTokens, resp.Usage.CachedTokens)

	if spec.ResponseSchema != nil && resp.Text != "" {
		var parsed map[string]interface{}
		if err := json.Unmarshal([]byte(resp.Text), &parsed); err == nil {
			out.ResultJSON = parsed
		}
	}
	return out
}
