// Package models holds the shared wire and persistence types: normalized
// trace items, tool definitions and the API request/response bodies.
package models

import "strings"

// Trace item discriminators. Every TraceItem carries exactly one of these in
// its Type field; consumers switch on it rather than sniffing populated fields.
const (
	ItemTypeMessage          = "message"
	ItemTypeFunctionCall     = "function_call"
	ItemTypeToolResult       = "tool_result"
	ItemTypeOutputMessage    = "output_message"
	ItemTypeFunctionToolCall = "function_tool_call"
)

// ContentPart is one piece of a multi-part message body.
type ContentPart struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// TraceItem is one element of a normalized conversation, input or output.
// Type selects the variant; Position is dense per direction starting at 0.
type TraceItem struct {
	Type     string        `json:"type"`
	Position int           `json:"position"`
	Role     string        `json:"role,omitempty"`
	Content  []ContentPart `json:"content,omitempty"`
	// Tool call / result fields
	CallID    string `json:"call_id,omitempty"`
	ToolName  string `json:"tool_name,omitempty"`
	Arguments string `json:"arguments,omitempty"`
	Result    string `json:"result,omitempty"`
}

// Text concatenates the text parts of a message item.
func (t TraceItem) Text() string {
	var b strings.Builder
	for _, p := range t.Content {
		b.WriteString(p.Text)
	}
	return b.String()
}

// MessageItem builds an input message item with a single text part.
func MessageItem(position int, role, text string) TraceItem {
	return TraceItem{
		Type:     ItemTypeMessage,
		Position: position,
		Role:     role,
		Content:  []ContentPart{{Type: "text", Text: text}},
	}
}

// OutputMessageItem builds an assistant output message with a single text part.
func OutputMessageItem(position int, text string) TraceItem {
	return TraceItem{
		Type:     ItemTypeOutputMessage,
		Position: position,
		Role:     "assistant",
		Content:  []ContentPart{{Type: "text", Text: text}},
	}
}

// ToolDefinition describes a tool exposed to the model.
type ToolDefinition struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`
	Parameters  map[string]interface{} `json:"parameters,omitempty"`
}

// ToolCall is one tool invocation emitted by the model.
type ToolCall struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// FirstMessageText returns the text of the first message-typed input item.
// The second return is false when no message item exists.
func FirstMessageText(items []TraceItem) (string, bool) {
	for _, it := range items {
		if it.Type == ItemTypeMessage {
			return it.Text(), true
		}
	}
	return "", false
}

// HasSystemPrompt reports whether the input carries a system or developer
// role message.
func HasSystemPrompt(items []TraceItem) bool {
	for _, it := range items {
		if it.Type == ItemTypeMessage && (it.Role == "system" || it.Role == "developer") {
			return true
		}
	}
	return false
}
