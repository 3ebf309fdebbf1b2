package providers

import (
	"encoding/json"
	"fmt"

	"github.com/promptlens/promptlens/pkg/models"
)

// AnthropicParser decodes Messages API exchanges.
type AnthropicParser struct{}

func (p *AnthropicParser) Claims(rawURL string) bool {
	return hostMatches(rawURL, "anthropic.com")
}

// anthropicBlock is one content block: text, tool_use or tool_result.
type anthropicBlock struct {
	Type      string          `json:"type"`
	Text      string          `json:"text"`
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Input     json.RawMessage `json:"input"`
	ToolUseID string          `json:"tool_use_id"`
	Content   json.RawMessage `json:"content"`
}

// anthropicContent is a string or a list of blocks.
type anthropicContent struct {
	blocks []anthropicBlock
}

func (c *anthropicContent) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		c.blocks = []anthropicBlock{{Type: "text", Text: s}}
		return nil
	}
	return json.Unmarshal(data, &c.blocks)
}

type anthropicRequest struct {
	Model    string          `json:"model"`
	System   json.RawMessage `json:"system"`
	Messages []struct {
		Role    string           `json:"role"`
		Content anthropicContent `json:"content"`
	} `json:"messages"`
	MaxTokens   *int     `json:"max_tokens"`
	Temperature *float64 `json:"temperature"`
	Tools       []struct {
		Name        string                 `json:"name"`
		Description string                 `json:"description"`
		InputSchema map[string]interface{} `json:"input_schema"`
	} `json:"tools"`
}

type anthropicResponse struct {
	Model      string           `json:"model"`
	Content    []anthropicBlock `json:"content"`
	StopReason *string          `json:"stop_reason"`
	Usage      struct {
		InputTokens          int `json:"input_tokens"`
		OutputTokens         int `json:"output_tokens"`
		CacheReadInputTokens int `json:"cache_read_input_tokens"`
	} `json:"usage"`
}

func (p *AnthropicParser) Parse(in ParseInput) (*ParsedTrace, error) {
	var req anthropicRequest
	if err := json.Unmarshal(in.Request, &req); err != nil {
		return nil, fmt.Errorf("decoding anthropic request: %w", err)
	}

	t := &ParsedTrace{
		Model:       req.Model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Error:       in.Error,
	}
	for _, tool := range req.Tools {
		t.Tools = append(t.Tools, models.ToolDefinition{
			Name:        tool.Name,
			Description: tool.Description,
			Parameters:  tool.InputSchema,
		})
	}

	pos := 0
	if len(req.System) > 0 {
		var system anthropicContent
		if err := json.Unmarshal(req.System, &system); err == nil {
			t.InputItems = append(t.InputItems, models.MessageItem(pos, "system", blocksText(system.blocks)))
			pos++
		}
	}
	for _, msg := range req.Messages {
		for _, block := range msg.Content.blocks {
			switch block.Type {
			case "tool_use":
				t.InputItems = append(t.InputItems, models.TraceItem{
					Type:      models.ItemTypeFunctionCall,
					Position:  pos,
					CallID:    block.ID,
					ToolName:  block.Name,
					Arguments: string(block.Input),
				})
			case "tool_result":
				t.InputItems = append(t.InputItems, models.TraceItem{
					Type:     models.ItemTypeToolResult,
					Position: pos,
					CallID:   block.ToolUseID,
					Result:   rawContentText(block.Content),
				})
			default:
				t.InputItems = append(t.InputItems, models.MessageItem(pos, msg.Role, block.Text))
			}
			pos++
		}
	}

	body := in.Response
	if in.IsStreaming {
		var err error
		body, err = reconstructAnthropicStream(in.Response)
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

	var resp anthropicResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding anthropic response: %w", err)
	}
	if resp.Model != "" {
		t.Model = resp.Model
	}
	t.FinishReason = resp.StopReason
	t.PromptTokens = resp.Usage.InputTokens
	t.CompletionTokens = resp.Usage.OutputTokens
	t.CachedTokens = resp.Usage.CacheReadInputTokens
	t.TotalTokens = t.PromptTokens + t.CompletionTokens

	outPos := 0
	for _, block := range resp.Content {
		switch block.Type {
		case "text":
			t.OutputItems = append(t.OutputItems, models.OutputMessageItem(outPos, block.Text))
		case "tool_use":
			t.OutputItems = append(t.OutputItems, models.TraceItem{
				Type:      models.ItemTypeFunctionToolCall,
				Position:  outPos,
				CallID:    block.ID,
				ToolName:  block.Name,
				Arguments: string(block.Input),
			})
		default:
			continue
		}
		outPos++
	}
	return t, nil
}

func blocksText(blocks []anthropicBlock) string {
	var out string
	for _, b := range blocks {
		out += b.Text
	}
	return out
}

// rawContentText extracts text from a tool_result content, which is either a
// bare string or a block list.
func rawContentText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var blocks []anthropicBlock
	if err := json.Unmarshal(raw, &blocks); err == nil {
		return blocksText(blocks)
	}
	return string(raw)
}
