package providers

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptlens/promptlens/pkg/models"
)

func parseInput(rawURL string, request, response string) ParseInput {
	started := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return ParseInput{
		URL:         rawURL,
		Method:      "POST",
		StartedAt:   started,
		CompletedAt: started.Add(800 * time.Millisecond),
		Request:     []byte(request),
		Response:    []byte(response),
	}
}

func TestOpenAIParserChatCompletion(t *testing.T) {
	in := parseInput("https://api.openai.com/v1/chat/completions",
		`{
			"model": "gpt-4",
			"messages": [
				{"role": "system", "content": "You are terse."},
				{"role": "user", "content": [{"type": "text", "text": "Hi"}]}
			],
			"temperature": 0.2,
			"max_tokens": 128,
			"tools": [{"type": "function", "function": {"name": "lookup", "description": "d", "parameters": {"type": "object"}}}]
		}`,
		`{
			"model": "gpt-4-0613",
			"choices": [{"message": {"role": "assistant", "content": "Hello."}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 20, "completion_tokens": 5, "total_tokens": 25, "prompt_tokens_details": {"cached_tokens": 4}},
			"system_fingerprint": "fp_abc"
		}`)

	parsed, err := (&OpenAIParser{}).Parse(in)
	require.NoError(t, err)

	assert.Equal(t, "gpt-4-0613", parsed.Model)
	require.NotNil(t, parsed.Temperature)
	assert.Equal(t, 0.2, *parsed.Temperature)
	require.NotNil(t, parsed.MaxTokens)
	assert.Equal(t, 128, *parsed.MaxTokens)

	require.Len(t, parsed.InputItems, 2)
	assert.Equal(t, models.ItemTypeMessage, parsed.InputItems[0].Type)
	assert.Equal(t, "system", parsed.InputItems[0].Role)
	assert.Equal(t, "You are terse.", parsed.InputItems[0].Text())
	assert.Equal(t, "Hi", parsed.InputItems[1].Text())
	assert.Equal(t, 1, parsed.InputItems[1].Position)

	require.Len(t, parsed.OutputItems, 1)
	assert.Equal(t, models.ItemTypeOutputMessage, parsed.OutputItems[0].Type)
	assert.Equal(t, "Hello.", parsed.OutputItems[0].Text())

	assert.Equal(t, 20, parsed.PromptTokens)
	assert.Equal(t, 5, parsed.CompletionTokens)
	assert.Equal(t, 25, parsed.TotalTokens)
	assert.Equal(t, 4, parsed.CachedTokens)
	assert.Equal(t, parsed.PromptTokens+parsed.CompletionTokens, parsed.TotalTokens)

	require.NotNil(t, parsed.FinishReason)
	assert.Equal(t, "stop", *parsed.FinishReason)
	require.NotNil(t, parsed.SystemFingerprint)
	assert.Equal(t, "fp_abc", *parsed.SystemFingerprint)

	require.Len(t, parsed.Tools, 1)
	assert.Equal(t, "lookup", parsed.Tools[0].Name)
}

func TestOpenAIParserToolConversation(t *testing.T) {
	in := parseInput("https://api.openai.com/v1/chat/completions",
		`{
			"model": "gpt-4o",
			"messages": [
				{"role": "user", "content": "weather?"},
				{"role": "assistant", "tool_calls": [{"id": "call_1", "type": "function", "function": {"name": "get_weather", "arguments": "{\"city\":\"Oslo\"}"}}]},
				{"role": "tool", "tool_call_id": "call_1", "content": "12C"}
			]
		}`,
		`{
			"choices": [{"message": {"role": "assistant", "content": null, "tool_calls": [{"id": "call_2", "type": "function", "function": {"name": "get_weather", "arguments": "{}"}}]}, "finish_reason": "tool_calls"}],
			"usage": {"prompt_tokens": 30, "completion_tokens": 10, "total_tokens": 40}
		}`)

	parsed, err := (&OpenAIParser{}).Parse(in)
	require.NoError(t, err)

	require.Len(t, parsed.InputItems, 3)
	assert.Equal(t, models.ItemTypeMessage, parsed.InputItems[0].Type)

	call := parsed.InputItems[1]
	assert.Equal(t, models.ItemTypeFunctionCall, call.Type)
	assert.Equal(t, "call_1", call.CallID)
	assert.Equal(t, "get_weather", call.ToolName)

	result := parsed.InputItems[2]
	assert.Equal(t, models.ItemTypeToolResult, result.Type)
	assert.Equal(t, "call_1", result.CallID)
	assert.Equal(t, "12C", result.Result)

	require.Len(t, parsed.OutputItems, 1)
	assert.Equal(t, models.ItemTypeFunctionToolCall, parsed.OutputItems[0].Type)
	assert.Equal(t, "call_2", parsed.OutputItems[0].CallID)
}

func TestOpenAIParserResponsesAPI(t *testing.T) {
	in := parseInput("https://api.openai.com/v1/responses",
		`{
			"model": "gpt-4o",
			"instructions": "Answer briefly.",
			"input": [{"role": "user", "content": [{"type": "input_text", "text": "Name a color."}]}],
			"max_output_tokens": 64
		}`,
		`{
			"model": "gpt-4o-2024-08-06",
			"status": "completed",
			"output": [{"type": "message", "role": "assistant", "content": [{"type": "output_text", "text": "Blue."}]}],
			"usage": {"input_tokens": 15, "output_tokens": 3, "total_tokens": 18, "input_tokens_details": {"cached_tokens": 2}, "output_tokens_details": {"reasoning_tokens": 1}}
		}`)

	parsed, err := (&OpenAIParser{}).Parse(in)
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o-2024-08-06", parsed.Model)
	require.Len(t, parsed.InputItems, 2)
	assert.Equal(t, "system", parsed.InputItems[0].Role)
	assert.Equal(t, "Answer briefly.", parsed.InputItems[0].Text())
	assert.Equal(t, "Name a color.", parsed.InputItems[1].Text())

	require.Len(t, parsed.OutputItems, 1)
	assert.Equal(t, "Blue.", parsed.OutputItems[0].Text())

	assert.Equal(t, 15, parsed.PromptTokens)
	assert.Equal(t, 3, parsed.CompletionTokens)
	assert.Equal(t, 18, parsed.TotalTokens)
	assert.Equal(t, 2, parsed.CachedTokens)
	assert.Equal(t, 1, parsed.ReasoningTokens)
}

func TestOpenAIParserRejectsUnknownShape(t *testing.T) {
	in := parseInput("https://api.openai.com/v1/embeddings", `{"model": "x", "input_ids": []}`, `{}`)
	_, err := (&OpenAIParser{}).Parse(in)
	assert.Error(t, err)
}

func TestOpenAIStreamingReconstruction(t *testing.T) {
	transcript := strings.Join([]string{
		`data: {"model":"gpt-4o","choices":[{"delta":{"role":"assistant","content":""},"finish_reason":null}]}`,
		``,
		`data: {"choices":[{"delta":{"content":"Hel"},"finish_reason":null}]}`,
		``,
		`data: {"choices":[{"delta":{"content":"lo."},"finish_reason":"stop"}]}`,
		``,
		`data: {"choices":[],"usage":{"prompt_tokens":9,"completion_tokens":2,"total_tokens":11}}`,
		``,
		`data: [DONE]`,
		``,
	}, "\n")

	in := parseInput("https://api.openai.com/v1/chat/completions",
		`{"model": "gpt-4o", "messages": [{"role": "user", "content": "hi"}]}`,
		transcript)
	in.IsStreaming = true

	parsed, err := (&OpenAIParser{}).Parse(in)
	require.NoError(t, err)
	require.Nil(t, parsed.Error)

	require.Len(t, parsed.OutputItems, 1)
	assert.Equal(t, "Hello.", parsed.OutputItems[0].Text())
	require.NotNil(t, parsed.FinishReason)
	assert.Equal(t, "stop", *parsed.FinishReason)
	assert.Equal(t, 9, parsed.PromptTokens)
	assert.Equal(t, 2, parsed.CompletionTokens)
	assert.Equal(t, 11, parsed.TotalTokens)
}

// A streamed response and its non-streaming equivalent decode to the same
// output text.
func TestStreamingEquivalence(t *testing.T) {
	request := `{"model": "gpt-4o", "messages": [{"role": "user", "content": "hi"}]}`

	direct := parseInput("https://api.openai.com/v1/chat/completions", request,
		`{"choices":[{"message":{"role":"assistant","content":"Hello there."},"finish_reason":"stop"}]}`)
	fromDirect, err := (&OpenAIParser{}).Parse(direct)
	require.NoError(t, err)

	streamed := parseInput("https://api.openai.com/v1/chat/completions", request, strings.Join([]string{
		`data: {"choices":[{"delta":{"content":"Hello "},"finish_reason":null}]}`,
		``,
		`data: {"choices":[{"delta":{"content":"there."},"finish_reason":"stop"}]}`,
		``,
		`data: [DONE]`,
		``,
	}, "\n"))
	streamed.IsStreaming = true
	fromStream, err := (&OpenAIParser{}).Parse(streamed)
	require.NoError(t, err)

	assert.Equal(t, fromDirect.OutputItems[0].Text(), fromStream.OutputItems[0].Text())
}

func TestOpenAIStreamingMalformedChunkSkipped(t *testing.T) {
	transcript := strings.Join([]string{
		`data: {"choices":[{"delta":{"content":"ok"},"finish_reason":"stop"}]}`,
		``,
		`data: {not json`,
		``,
	}, "\n")

	in := parseInput("https://api.openai.com/v1/chat/completions",
		`{"model": "gpt-4o", "messages": [{"role": "user", "content": "hi"}]}`, transcript)
	in.IsStreaming = true

	parsed, err := (&OpenAIParser{}).Parse(in)
	require.NoError(t, err)
	require.Len(t, parsed.OutputItems, 1)
	assert.Equal(t, "ok", parsed.OutputItems[0].Text())
}

func TestOpenAIStreamingEmptyStream(t *testing.T) {
	in := parseInput("https://api.openai.com/v1/chat/completions",
		`{"model": "gpt-4o", "messages": [{"role": "user", "content": "hi"}]}`, "")
	in.IsStreaming = true

	parsed, err := (&OpenAIParser{}).Parse(in)
	require.NoError(t, err)
	require.NotNil(t, parsed.Error)
	assert.Equal(t, "empty stream", *parsed.Error)
}

func TestResponsesStreamingPrefersCompletedEvent(t *testing.T) {
	transcript := strings.Join([]string{
		`event: response.output_text.done`,
		`data: {"type":"response.output_text.done","text":"partial"}`,
		``,
		`event: response.completed`,
		`data: {"type":"response.completed","response":{"model":"gpt-4o","status":"completed","output":[{"type":"message","content":[{"type":"output_text","text":"final answer"}]}],"usage":{"input_tokens":7,"output_tokens":2,"total_tokens":9}}}`,
		``,
	}, "\n")

	in := parseInput("https://api.openai.com/v1/responses",
		`{"model": "gpt-4o", "input": "question"}`, transcript)
	in.IsStreaming = true

	parsed, err := (&OpenAIParser{}).Parse(in)
	require.NoError(t, err)
	require.Len(t, parsed.OutputItems, 1)
	assert.Equal(t, "final answer", parsed.OutputItems[0].Text())
	assert.Equal(t, 9, parsed.TotalTokens)
}
