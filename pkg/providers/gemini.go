package providers

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/promptlens/promptlens/pkg/models"
)

// GeminiParser decodes generateContent exchanges. The model name lives in the
// URL path ("/v1beta/models/<model>:generateContent"), not the request body.
type GeminiParser struct{}

func (p *GeminiParser) Claims(rawURL string) bool {
	return hostMatches(rawURL, "googleapis.com")
}

type geminiContent struct {
	Role  string `json:"role"`
	Parts []struct {
		Text         string `json:"text"`
		FunctionCall *struct {
			Name string          `json:"name"`
			Args json.RawMessage `json:"args"`
		} `json:"functionCall"`
		FunctionResponse *struct {
			Name     string          `json:"name"`
			Response json.RawMessage `json:"response"`
		} `json:"functionResponse"`
	} `json:"parts"`
}

type geminiRequest struct {
	Contents          []geminiContent `json:"contents"`
	SystemInstruction *geminiContent  `json:"systemInstruction"`
	GenerationConfig  *struct {
		Temperature     *float64               `json:"temperature"`
		MaxOutputTokens *int                   `json:"maxOutputTokens"`
		ResponseSchema  map[string]interface{} `json:"responseSchema"`
	} `json:"generationConfig"`
	Tools []struct {
		FunctionDeclarations []struct {
			Name        string                 `json:"name"`
			Description string                 `json:"description"`
			Parameters  map[string]interface{} `json:"parameters"`
		} `json:"functionDeclarations"`
	} `json:"tools"`
}

type geminiResponse struct {
	ModelVersion string `json:"modelVersion"`
	Candidates   []struct {
		Content      geminiContent `json:"content"`
		FinishReason *string       `json:"finishReason"`
	} `json:"candidates"`
	UsageMetadata *struct {
		PromptTokenCount        int `json:"promptTokenCount"`
		CandidatesTokenCount    int `json:"candidatesTokenCount"`
		TotalTokenCount         int `json:"totalTokenCount"`
		CachedContentTokenCount int `json:"cachedContentTokenCount"`
		ThoughtsTokenCount      int `json:"thoughtsTokenCount"`
	} `json:"usageMetadata"`
}

func (p *GeminiParser) Parse(in ParseInput) (*ParsedTrace, error) {
	var req geminiRequest
	if err := json.Unmarshal(in.Request, &req); err != nil {
		return nil, fmt.Errorf("decoding gemini request: %w", err)
	}

	t := &ParsedTrace{
		Model: modelFromGeminiURL(in.URL),
		Error: in.Error,
	}
	if req.GenerationConfig != nil {
		t.Temperature = req.GenerationConfig.Temperature
		t.MaxTokens = req.GenerationConfig.MaxOutputTokens
		t.ResponseSchema = req.GenerationConfig.ResponseSchema
	}
	for _, tool := range req.Tools {
		for _, fn := range tool.FunctionDeclarations {
			t.Tools = append(t.Tools, models.ToolDefinition{
				Name:        fn.Name,
				Description: fn.Description,
				Parameters:  fn.Parameters,
			})
		}
	}

	pos := 0
	if req.SystemInstruction != nil {
		t.InputItems = append(t.InputItems, models.MessageItem(pos, "system", geminiText(*req.SystemInstruction)))
		pos++
	}
	for _, content := range req.Contents {
		role := content.Role
		if role == "model" {
			role = "assistant"
		}
		if role == "" {
			role = "user"
		}
		for _, part := range content.Parts {
			switch {
			case part.FunctionCall != nil:
				t.InputItems = append(t.InputItems, models.TraceItem{
					Type:      models.ItemTypeFunctionCall,
					Position:  pos,
					ToolName:  part.FunctionCall.Name,
					Arguments: string(part.FunctionCall.Args),
				})
			case part.FunctionResponse != nil:
				t.InputItems = append(t.InputItems, models.TraceItem{
					Type:     models.ItemTypeToolResult,
					Position: pos,
					ToolName: part.FunctionResponse.Name,
					Result:   string(part.FunctionResponse.Response),
				})
			default:
				t.InputItems = append(t.InputItems, models.MessageItem(pos, role, part.Text))
			}
			pos++
		}
	}

	if len(in.Response) == 0 {
		return t, nil
	}
	var resp geminiResponse
	if err := json.Unmarshal(in.Response, &resp); err != nil {
		return nil, fmt.Errorf("decoding gemini response: %w", err)
	}
	if resp.ModelVersion != "" {
		t.Model = resp.ModelVersion
	}
	if u := resp.UsageMetadata; u != nil {
		t.PromptTokens = u.PromptTokenCount
		t.CompletionTokens = u.CandidatesTokenCount
		t.TotalTokens = u.TotalTokenCount
		t.CachedTokens = u.CachedContentTokenCount
		t.ReasoningTokens = u.ThoughtsTokenCount
		if t.TotalTokens == 0 {
			t.TotalTokens = t.PromptTokens + t.CompletionTokens
		}
	}
	if len(resp.Candidates) > 0 {
		cand := resp.Candidates[0]
		t.FinishReason = cand.FinishReason
		outPos := 0
		for _, part := range cand.Content.Parts {
			if part.FunctionCall != nil {
				t.OutputItems = append(t.OutputItems, models.TraceItem{
					Type:      models.ItemTypeFunctionToolCall,
					Position:  outPos,
					ToolName:  part.FunctionCall.Name,
					Arguments: string(part.FunctionCall.Args),
				})
				outPos++
				continue
			}
			if part.Text != "" {
				t.OutputItems = append(t.OutputItems, models.OutputMessageItem(outPos, part.Text))
				outPos++
			}
		}
	}
	return t, nil
}

func geminiText(c geminiContent) string {
	var out string
	for _, p := range c.Parts {
		out += p.Text
	}
	return out
}

// modelFromGeminiURL extracts the model segment from
// ".../models/<model>:generateContent".
func modelFromGeminiURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	const marker = "/models/"
	i := strings.Index(u.Path, marker)
	if i < 0 {
		return ""
	}
	rest := u.Path[i+len(marker):]
	if j := strings.IndexByte(rest, ':'); j >= 0 {
		rest = rest[:j]
	}
	return rest
}
