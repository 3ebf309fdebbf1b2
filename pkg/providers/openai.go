package providers

import (
	"encoding/json"
	"fmt"

	"github.com/promptlens/promptlens/pkg/models"
)

// OpenAIParser decodes Chat Completions and Responses API exchanges. The two
// flavors are discriminated on the request body: "messages" means Chat
// Completions, "input" without "messages" means Responses API.
type OpenAIParser struct{}

func (p *OpenAIParser) Claims(rawURL string) bool {
	return hostMatches(rawURL, "openai.com") || hostMatches(rawURL, "azure.com")
}

func (p *OpenAIParser) Parse(in ParseInput) (*ParsedTrace, error) {
	var probe struct {
		Messages json.RawMessage `json:"messages"`
		Input    json.RawMessage `json:"input"`
	}
	if err := json.Unmarshal(in.Request, &probe); err != nil {
		return nil, fmt.Errorf("decoding openai request: %w", err)
	}

	if len(probe.Messages) > 0 {
		return p.parseChatCompletion(in)
	}
	if len(probe.Input) > 0 {
		return p.parseResponses(in)
	}
	return nil, fmt.Errorf("openai request has neither messages nor input")
}

// openaiUsage accepts both token spellings and unifies them.
type openaiUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	InputTokens      int `json:"input_tokens"`
	OutputTokens     int `json:"output_tokens"`
	TotalTokens      int `json:"total_tokens"`

	PromptTokensDetails struct {
		CachedTokens int `json:"cached_tokens"`
	} `json:"prompt_tokens_details"`
	InputTokensDetails struct {
		CachedTokens int `json:"cached_tokens"`
	} `json:"input_tokens_details"`
	CompletionTokensDetails struct {
		ReasoningTokens int `json:"reasoning_tokens"`
	} `json:"completion_tokens_details"`
	OutputTokensDetails struct {
		ReasoningTokens int `json:"reasoning_tokens"`
	} `json:"output_tokens_details"`
}

func (u *openaiUsage) apply(t *ParsedTrace) {
	if u == nil {
		return
	}
	t.PromptTokens = u.PromptTokens
	if t.PromptTokens == 0 {
		t.PromptTokens = u.InputTokens
	}
	t.CompletionTokens = u.CompletionTokens
	if t.CompletionTokens == 0 {
		t.CompletionTokens = u.OutputTokens
	}
	t.TotalTokens = u.TotalTokens
	if t.TotalTokens == 0 {
		t.TotalTokens = t.PromptTokens + t.CompletionTokens
	}
	t.CachedTokens = u.PromptTokensDetails.CachedTokens
	if t.CachedTokens == 0 {
		t.CachedTokens = u.InputTokensDetails.CachedTokens
	}
	t.ReasoningTokens = u.CompletionTokensDetails.ReasoningTokens
	if t.ReasoningTokens == 0 {
		t.ReasoningTokens = u.OutputTokensDetails.ReasoningTokens
	}
}

// openaiContent is a message content that is either a bare string or a list
// of typed parts.
type openaiContent struct {
	text string
}

func (c *openaiContent) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		c.text = s
		return nil
	}
	var parts []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	for _, p := range parts {
		c.text += p.Text
	}
	return nil
}

// --- Chat Completions ---

type chatMessage struct {
	Role       string        `json:"role"`
	Content    openaiContent `json:"content"`
	Name       string        `json:"name"`
	ToolCallID string        `json:"tool_call_id"`
	ToolCalls  []struct {
		ID       string `json:"id"`
		Function struct {
			Name      string `json:"name"`
			Arguments string `json:"arguments"`
		} `json:"function"`
	} `json:"tool_calls"`
}

type chatCompletionRequest struct {
	Model               string        `json:"model"`
	Messages            []chatMessage `json:"messages"`
	Temperature         *float64      `json:"temperature"`
	MaxTokens           *int          `json:"max_tokens"`
	MaxCompletionTokens *int          `json:"max_completion_tokens"`
	Tools               []struct {
		Function struct {
			Name        string                 `json:"name"`
			Description string                 `json:"description"`
			Parameters  map[string]interface{} `json:"parameters"`
		} `json:"function"`
	} `json:"tools"`
	ResponseFormat *struct {
		JSONSchema *struct {
			Schema map[string]interface{} `json:"schema"`
		} `json:"json_schema"`
	} `json:"response_format"`
}

type chatCompletionResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message      chatMessage `json:"message"`
		FinishReason *string     `json:"finish_reason"`
	} `json:"choices"`
	Usage             *openaiUsage `json:"usage"`
	SystemFingerprint string       `json:"system_fingerprint"`
}

func (p *OpenAIParser) parseChatCompletion(in ParseInput) (*ParsedTrace, error) {
	var req chatCompletionRequest
	if err := json.Unmarshal(in.Request, &req); err != nil {
		return nil, fmt.Errorf("decoding chat completion request: %w", err)
	}

	t := &ParsedTrace{
		Model:       req.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Error:       in.Error,
	}
	if t.MaxTokens == nil {
		t.MaxTokens = req.MaxCompletionTokens
	}
	for _, tool := range req.Tools {
		t.Tools = append(t.Tools, models.ToolDefinition{
			Name:        tool.Function.Name,
			Description: tool.Function.Description,
			Parameters:  tool.Function.Parameters,
		})
	}
	if req.ResponseFormat != nil && req.ResponseFormat.JSONSchema != nil {
		t.ResponseSchema = req.ResponseFormat.JSONSchema.Schema
	}

	pos := 0
	for _, msg := range req.Messages {
		switch {
		case msg.Role == "tool":
			t.InputItems = append(t.InputItems, models.TraceItem{
				Type:     models.ItemTypeToolResult,
				Position: pos,
				CallID:   msg.ToolCallID,
				ToolName: msg.Name,
				Result:   msg.Content.text,
			})
			pos++
		case len(msg.ToolCalls) > 0:
			for _, tc := range msg.ToolCalls {
				t.InputItems = append(t.InputItems, models.TraceItem{
					Type:      models.ItemTypeFunctionCall,
					Position:  pos,
					CallID:    tc.ID,
					ToolName:  tc.Function.Name,
					Arguments: tc.Function.Arguments,
				})
				pos++
			}
		default:
			t.InputItems = append(t.InputItems, models.MessageItem(pos, msg.Role, msg.Content.text))
			pos++
		}
	}

	body := in.Response
	if in.IsStreaming {
		var err error
		body, err = reconstructChatCompletionStream(in.Response)
		if err == ErrEmptyStream {
			t.Error = strPtr("empty stream")
			return t, nil
		}
		if err != nil {
			return nil, err
		}
	}
	if len(body) == 0 {
		return t, nil
	}

	var resp chatCompletionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding chat completion response: %w", err)
	}
	if resp.Model != "" {
		t.Model = resp.Model
	}
	if resp.SystemFingerprint != "" {
		t.SystemFingerprint = strPtr(resp.SystemFingerprint)
	}
	resp.Usage.apply(t)

	if len(resp.Choices) > 0 {
		choice := resp.Choices[0]
		t.FinishReason = choice.FinishReason
		outPos := 0
		if text := choice.Message.Content.text; text != "" {
			t.OutputItems = append(t.OutputItems, models.OutputMessageItem(outPos, text))
			outPos++
		}
		for _, tc := range choice.Message.ToolCalls {
			t.OutputItems = append(t.OutputItems, models.TraceItem{
				Type:      models.ItemTypeFunctionToolCall,
				Position:  outPos,
				CallID:    tc.ID,
				ToolName:  tc.Function.Name,
				Arguments: tc.Function.Arguments,
			})
			outPos++
		}
	}
	return t, nil
}

// --- Responses API ---

type responsesItem struct {
	Type      string        `json:"type"`
	Role      string        `json:"role"`
	Content   openaiContent `json:"content"`
	CallID    string        `json:"call_id"`
	Name      string        `json:"name"`
	Arguments string        `json:"arguments"`
	Output    string        `json:"output"`
}

type responsesRequest struct {
	Model           string          `json:"model"`
	Input           json.RawMessage `json:"input"`
	Instructions    string          `json:"instructions"`
	Temperature     *float64        `json:"temperature"`
	MaxOutputTokens *int            `json:"max_output_tokens"`
	Tools           []struct {
		Type        string                 `json:"type"`
		Name        string                 `json:"name"`
		Description string                 `json:"description"`
		Parameters  map[string]interface{} `json:"parameters"`
	} `json:"tools"`
	Text *struct {
		Format *struct {
			Schema map[string]interface{} `json:"schema"`
		} `json:"format"`
	} `json:"text"`
}

type responsesResponse struct {
	Model             string          `json:"model"`
	Output            []responsesItem `json:"output"`
	Usage             *openaiUsage    `json:"usage"`
	Status            string          `json:"status"`
	IncompleteDetails *struct {
		Reason string `json:"reason"`
	} `json:"incomplete_details"`
}

func (p *OpenAIParser) parseResponses(in ParseInput) (*ParsedTrace, error) {
	var req responsesRequest
	if err := json.Unmarshal(in.Request, &req); err != nil {
		return nil, fmt.Errorf("decoding responses request: %w", err)
	}

	t := &ParsedTrace{
		Model:       req.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxOutputTokens,
		Error:       in.Error,
	}
	for _, tool := range req.Tools {
		if tool.Type != "" && tool.Type != "function" {
			continue
		}
		t.Tools = append(t.Tools, models.ToolDefinition{
			Name:        tool.Name,
			Description: tool.Description,
			Parameters:  tool.Parameters,
		})
	}
	if req.Text != nil && req.Text.Format != nil {
		t.ResponseSchema = req.Text.Format.Schema
	}

	pos := 0
	if req.Instructions != "" {
		t.InputItems = append(t.InputItems, models.MessageItem(pos, "system", req.Instructions))
		pos++
	}

	// Input is either a bare string or a list of items.
	var inputText string
	if err := json.Unmarshal(req.Input, &inputText); err == nil {
		t.InputItems = append(t.InputItems, models.MessageItem(pos, "user", inputText))
	} else {
		var items []responsesItem
		if err := json.Unmarshal(req.Input, &items); err != nil {
			return nil, fmt.Errorf("decoding responses input: %w", err)
		}
		for _, item := range items {
			switch item.Type {
			case "function_call":
				t.InputItems = append(t.InputItems, models.TraceItem{
					Type:      models.ItemTypeFunctionCall,
					Position:  pos,
					CallID:    item.CallID,
					ToolName:  item.Name,
					Arguments: item.Arguments,
				})
			case "function_call_output":
				t.InputItems = append(t.InputItems, models.TraceItem{
					Type:     models.ItemTypeToolResult,
					Position: pos,
					CallID:   item.CallID,
					Result:   item.Output,
				})
			default: // "message" or untyped role item
				role := item.Role
				if role == "" {
					role = "user"
				}
				t.InputItems = append(t.InputItems, models.MessageItem(pos, role, item.Content.text))
			}
			pos++
		}
	}

	body := in.Response
	if in.IsStreaming {
		var err error
		body, err = reconstructResponsesStream(in.Response)
		if err == ErrEmptyStream {
			t.Error = strPtr("empty stream")
			return t, nil
		}
		if err != nil {
			return nil, err
		}
	}
	if len(body) == 0 {
		return t, nil
	}

	var resp responsesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding responses response: %w", err)
	}
	if resp.Model != "" {
		t.Model = resp.Model
	}
	resp.Usage.apply(t)
	if resp.Status != "" {
		reason := resp.Status
		if resp.IncompleteDetails != nil && resp.IncompleteDetails.Reason != "" {
			reason = resp.IncompleteDetails.Reason
		}
		t.FinishReason = strPtr(reason)
	}

	outPos := 0
	for _, item := range resp.Output {
		switch item.Type {
		case "message":
			t.OutputItems = append(t.OutputItems, models.OutputMessageItem(outPos, item.Content.text))
		case "function_call":
			t.OutputItems = append(t.OutputItems, models.TraceItem{
				Type:      models.ItemTypeFunctionToolCall,
				Position:  outPos,
				CallID:    item.CallID,
				ToolName:  item.Name,
				Arguments: item.Arguments,
			})
		default:
			continue
		}
		outPos++
	}
	return t, nil
}
