// Package grading renders grader prompts against a target's flattened
// context and parses the scores out of grader model output.
package grading

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/promptlens/promptlens/pkg/models"
)

// Score type discriminators, mirrored by the grader entity's enum.
const (
	ScoreTypeFloat   = "float"
	ScoreTypeBoolean = "boolean"
)

const contextPlaceholder = "{{context}}"

// RenderPrompt substitutes {{context}} into a grader prompt. Outside the
// placeholder, doubled braces are escapes for literal single braces, so JSON
// examples survive rendering.
func RenderPrompt(prompt, context string) string {
	parts := strings.Split(prompt, contextPlaceholder)
	for i, p := range parts {
		p = strings.ReplaceAll(p, "{{", "{")
		parts[i] = strings.ReplaceAll(p, "}}", "}")
	}
	return strings.Join(parts, context)
}

// FlattenTrace builds the grading context for a trace target: its
// conversation, tools and error, as readable text.
func FlattenTrace(input, output []models.TraceItem, tools []models.ToolDefinition, errMsg *string) string {
	var b strings.Builder
	writeItems(&b, "Input", input)
	writeItems(&b, "Output", output)
	if len(tools) > 0 {
		b.WriteString("Tools:\n")
		for _, tool := range tools {
			fmt.Fprintf(&b, "- %s: %s\n", tool.Name, tool.Description)
		}
	}
	if errMsg != nil {
		fmt.Fprintf(&b, "Error: %s\n", *errMsg)
	}
	return b.String()
}

func writeItems(b *strings.Builder, label string, items []models.TraceItem) {
	if len(items) == 0 {
		return
	}
	b.WriteString(label + ":\n")
	for _, it := range items {
		switch it.Type {
		case models.ItemTypeMessage, models.ItemTypeOutputMessage:
			fmt.Fprintf(b, "[%s] %s\n", it.Role, it.Text())
		case models.ItemTypeFunctionCall, models.ItemTypeFunctionToolCall:
			fmt.Fprintf(b, "[tool call] %s(%s)\n", it.ToolName, it.Arguments)
		case models.ItemTypeToolResult:
			fmt.Fprintf(b, "[tool result] %s\n", it.Result)
		}
	}
}

// FlattenExecution builds the grading context for an execution-result
// target.
func FlattenExecution(promptRendered string, resultText *string, resultJSON map[string]interface{}, toolCalls []models.ToolCall, errMsg *string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Prompt:\n%s\n", promptRendered)
	if resultText != nil {
		fmt.Fprintf(&b, "Result:\n%s\n", *resultText)
	}
	if resultJSON != nil {
		if raw, err := json.Marshal(resultJSON); err == nil {
			fmt.Fprintf(&b, "Result JSON:\n%s\n", raw)
		}
	}
	for _, tc := range toolCalls {
		fmt.Fprintf(&b, "[tool call] %s(%s)\n", tc.Name, tc.Arguments)
	}
	if errMsg != nil {
		fmt.Fprintf(&b, "Error: %s\n", *errMsg)
	}
	return b.String()
}

// DefaultResponseSchema is the structured-output schema requested from
// graders that do not configure their own.
func DefaultResponseSchema(scoreType string) map[string]interface{} {
	scoreSchema := map[string]interface{}{"type": "number"}
	if scoreType == ScoreTypeBoolean {
		scoreSchema = map[string]interface{}{"type": "boolean"}
	}
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"score":      scoreSchema,
			"reasoning":  map[string]interface{}{"type": "string"},
			"confidence": map[string]interface{}{"type": "number"},
		},
		"required":             []interface{}{"score"},
		"additionalProperties": false,
	}
}

// ParsedScore is the decoded grader verdict.
type ParsedScore struct {
	Float      *float64
	Boolean    *bool
	Reasoning  *string
	Confidence *float64
}

var (
	truthyRe = regexp.MustCompile(`(?i)\b(true|pass|yes)\b`)
	falsyRe  = regexp.MustCompile(`(?i)\b(false|fail|no)\b`)
)

// ParseOutput decodes a grader's answer. Structured JSON wins; otherwise the
// text is tried as JSON; for boolean graders a whole-word keyword scan is the
// last resort.
func ParseOutput(scoreType string, resultText *string, resultJSON map[string]interface{}) (*ParsedScore, error) {
	if resultJSON != nil {
		return scoreFromObject(scoreType, resultJSON)
	}
	if resultText == nil {
		return nil, fmt.Errorf("grader produced no output")
	}
	text := strings.TrimSpace(*resultText)

	var decoded interface{}
	if err := json.Unmarshal([]byte(text), &decoded); err == nil {
		switch v := decoded.(type) {
		case map[string]interface{}:
			return scoreFromObject(scoreType, v)
		case float64:
			if scoreType == ScoreTypeFloat {
				return &ParsedScore{Float: &v}, nil
			}
		case bool:
			if scoreType == ScoreTypeBoolean {
				return &ParsedScore{Boolean: &v}, nil
			}
		}
	}

	if scoreType == ScoreTypeBoolean {
		truthy := truthyRe.MatchString(text)
		falsy := falsyRe.MatchString(text)
		if truthy != falsy {
			return &ParsedScore{Boolean: &truthy}, nil
		}
	}
	return nil, fmt.Errorf("could not parse %s score from grader output", scoreType)
}

func scoreFromObject(scoreType string, obj map[string]interface{}) (*ParsedScore, error) {
	raw, ok := obj["score"]
	if !ok {
		return nil, fmt.Errorf("grader output has no score field")
	}

	parsed := &ParsedScore{}
	if r, ok := obj["reasoning"].(string); ok {
		parsed.Reasoning = &r
	}
	if c, ok := obj["confidence"].(float64); ok {
		parsed.Confidence = &c
	}

	switch scoreType {
	case ScoreTypeFloat:
		switch v := raw.(type) {
		case float64:
			parsed.Float = &v
		case bool:
			f := 0.0
			if v {
				f = 1.0
			}
			parsed.Float = &f
		default:
			return nil, fmt.Errorf("score field is not numeric")
		}
	case ScoreTypeBoolean:
		switch v := raw.(type) {
		case bool:
			parsed.Boolean = &v
		case float64:
			b := v >= 0.5
			parsed.Boolean = &b
		default:
			return nil, fmt.Errorf("score field is not boolean")
		}
	default:
		return nil, fmt.Errorf("unknown score type %q", scoreType)
	}
	return parsed, nil
}
