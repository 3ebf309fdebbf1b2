package providers

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/r3labs/sse/v2"
)

// ErrEmptyStream marks a transcript that yielded no content; the resulting
// trace is persisted with error = "empty stream".
var ErrEmptyStream = errors.New("empty stream")

// maxSSEEventSize bounds a single buffered event. Provider chunks are small;
// response.completed payloads can carry a whole response body.
const maxSSEEventSize = 4 << 20

// sseEvent is one decoded server-sent event from a buffered transcript.
type sseEvent struct {
	Event string
	Data  []byte
}

// parseSSETranscript splits a buffered SSE transcript into events. Lines
// starting with "event:" and "data:" are honored, the "[DONE]" sentinel and
// malformed fragments are skipped.
func parseSSETranscript(transcript []byte) []sseEvent {
	reader := sse.NewEventStreamReader(bytes.NewReader(transcript), maxSSEEventSize)

	var events []sseEvent
	for {
		raw, err := reader.ReadEvent()
		if len(raw) > 0 {
			ev := splitEventFields(raw)
			if len(ev.Data) > 0 && !bytes.Equal(bytes.TrimSpace(ev.Data), []byte("[DONE]")) {
				events = append(events, ev)
			}
		}
		if err != nil {
			return events
		}
	}
}

func splitEventFields(raw []byte) sseEvent {
	var ev sseEvent
	var data [][]byte
	for _, line := range bytes.Split(raw, []byte("\n")) {
		line = bytes.TrimSuffix(line, []byte("\r"))
		switch {
		case bytes.HasPrefix(line, []byte("event:")):
			ev.Event = string(bytes.TrimSpace(line[len("event:"):]))
		case bytes.HasPrefix(line, []byte("data:")):
			data = append(data, bytes.TrimSpace(line[len("data:"):]))
		}
	}
	ev.Data = bytes.Join(data, []byte("\n"))
	return ev
}

// chatChunk is the delta frame of a streamed Chat Completions response.
type chatChunk struct {
	Model             string            `json:"model"`
	SystemFingerprint string            `json:"system_fingerprint"`
	Choices           []chatChunkChoice `json:"choices"`
	Usage             json.RawMessage   `json:"usage"`
}

type chatChunkChoice struct {
	Delta struct {
		Content string `json:"content"`
	} `json:"delta"`
	FinishReason *string `json:"finish_reason"`
}

// reconstructChatCompletionStream reassembles a synthetic non-streaming Chat
// Completions body from an SSE transcript: concatenated deltas of choice 0,
// the latest finish_reason, and usage from the final chunk carrying it.
func reconstructChatCompletionStream(transcript []byte) ([]byte, error) {
	events := parseSSETranscript(transcript)

	var (
		content      bytes.Buffer
		model        string
		fingerprint  string
		finishReason *string
		usage        json.RawMessage
		sawChunk     bool
	)
	for _, ev := range events {
		var chunk chatChunk
		if err := json.Unmarshal(ev.Data, &chunk); err != nil {
			continue
		}
		sawChunk = true
		if chunk.Model != "" {
			model = chunk.Model
		}
		if chunk.SystemFingerprint != "" {
			fingerprint = chunk.SystemFingerprint
		}
		if len(chunk.Usage) > 0 && !bytes.Equal(chunk.Usage, []byte("null")) {
			usage = chunk.Usage
		}
		if len(chunk.Choices) > 0 {
			content.WriteString(chunk.Choices[0].Delta.Content)
			if chunk.Choices[0].FinishReason != nil {
				finishReason = chunk.Choices[0].FinishReason
			}
		}
	}
	if !sawChunk {
		return nil, ErrEmptyStream
	}

	synthetic := map[string]interface{}{
		"object": "chat.completion",
		"model":  model,
		"choices": []map[string]interface{}{{
			"message": map[string]interface{}{
				"role":    "assistant",
				"content": content.String(),
			},
			"finish_reason": finishReason,
		}},
	}
	if fingerprint != "" {
		synthetic["system_fingerprint"] = fingerprint
	}
	if usage != nil {
		synthetic["usage"] = usage
	}
	return json.Marshal(synthetic)
}

// reconstructResponsesStream reassembles a Responses API body: the
// response.completed payload when present, else a minimal body built from
// response.output_text.done.
func reconstructResponsesStream(transcript []byte) ([]byte, error) {
	events := parseSSETranscript(transcript)

	var completed json.RawMessage
	var doneText *string
	for _, ev := range events {
		var frame struct {
			Type     string          `json:"type"`
			Response json.RawMessage `json:"response"`
			Text     string          `json:"text"`
		}
		if err := json.Unmarshal(ev.Data, &frame); err != nil {
			continue
		}
		typ := frame.Type
		if typ == "" {
			typ = ev.Event
		}
		switch typ {
		case "response.completed":
			if len(frame.Response) > 0 {
				completed = frame.Response
			}
		case "response.output_text.done":
			t := frame.Text
			doneText = &t
		}
	}

	if completed != nil {
		return completed, nil
	}
	if doneText != nil {
		synthetic := map[string]interface{}{
			"output": []map[string]interface{}{{
				"type": "message",
				"role": "assistant",
				"content": []map[string]interface{}{{
					"type": "output_text",
					"text": *doneText,
				}},
			}},
		}
		return json.Marshal(synthetic)
	}
	return nil, ErrEmptyStream
}

// reconstructAnthropicStream reassembles a Messages API body from the
// message_start / content_block_delta / message_delta event sequence.
func reconstructAnthropicStream(transcript []byte) ([]byte, error) {
	events := parseSSETranscript(transcript)

	var (
		model      string
		text       bytes.Buffer
		stopReason *string
		usage      = map[string]interface{}{}
		sawEvent   bool
	)
	for _, ev := range events {
		var frame struct {
			Type    string `json:"type"`
			Message struct {
				Model string                 `json:"model"`
				Usage map[string]interface{} `json:"usage"`
			} `json:"message"`
			Delta struct {
				Type       string  `json:"type"`
				Text       string  `json:"text"`
				StopReason *string `json:"stop_reason"`
			} `json:"delta"`
			Usage map[string]interface{} `json:"usage"`
		}
		if err := json.Unmarshal(ev.Data, &frame); err != nil {
			continue
		}
		switch frame.Type {
		case "message_start":
			sawEvent = true
			model = frame.Message.Model
			for k, v := range frame.Message.Usage {
				usage[k] = v
			}
		case "content_block_delta":
			sawEvent = true
			if frame.Delta.Type == "text_delta" {
				text.WriteString(frame.Delta.Text)
			}
		case "message_delta":
			sawEvent = true
			if frame.Delta.StopReason != nil {
				stopReason = frame.Delta.StopReason
			}
			for k, v := range frame.Usage {
				usage[k] = v
			}
		}
	}
	if !sawEvent {
		return nil, ErrEmptyStream
	}

	synthetic := map[string]interface{}{
		"model": model,
		"content": []map[string]interface{}{{
			"type": "text",
			"text": text.String(),
		}},
		"stop_reason": stopReason,
		"usage":       usage,
	}
	return json.Marshal(synthetic)
}
