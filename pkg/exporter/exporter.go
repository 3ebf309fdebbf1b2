// Package exporter is the SDK side of trace capture: an http.RoundTripper
// that records provider calls and an Exporter that ships them to the
// collector in the background.
package exporter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/promptlens/promptlens/pkg/version"
)

// defaultFlushInterval paces the background drain loop.
const defaultFlushInterval = time.Second

// HTTPTracePayload is one captured provider call on the wire. Request and
// Response bodies travel base64-encoded.
type HTTPTracePayload struct {
	URL              string                 `json:"url"`
	Method           string                 `json:"method"`
	StartedAt        time.Time              `json:"started_at"`
	CompletedAt      time.Time              `json:"completed_at"`
	StatusCode       *int                   `json:"status_code,omitempty"`
	Error            *string                `json:"error,omitempty"`
	Request          []byte                 `json:"request,omitempty"`
	RequestHeaders   map[string]string      `json:"request_headers,omitempty"`
	Response         []byte                 `json:"response,omitempty"`
	ResponseHeaders  map[string]string      `json:"response_headers,omitempty"`
	Metadata         map[string]interface{} `json:"metadata,omitempty"`
	ImplementationID *string                `json:"implementation_id,omitempty"`
}

// Config configures an Exporter.
type Config struct {
	// BaseURL of the collector, e.g. "http://localhost:8080".
	BaseURL string
	// ProjectID scopes every exported trace.
	ProjectID string
	// FlushInterval paces the background sender; zero means one second.
	FlushInterval time.Duration
	// HTTPClient posts the payloads; nil means http.DefaultClient.
	HTTPClient *http.Client
}

// Exporter buffers captured calls and ships them in capture order. Shipping
// is best effort: a payload that fails to send is logged and dropped rather
// than blocking the application.
type Exporter struct {
	cfg    Config
	client *http.Client

	mu    sync.Mutex
	queue []HTTPTracePayload

	stopCh   chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewExporter creates and starts an Exporter.
func NewExporter(cfg Config) (*Exporter, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("exporter base URL is required")
	}
	if cfg.ProjectID == "" {
		return nil, fmt.Errorf("exporter project id is required")
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = defaultFlushInterval
	}
	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	e := &Exporter{
		cfg:    cfg,
		client: client,
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
	go e.run()
	return e, nil
}

// Enqueue adds a captured call to the send queue. Never blocks.
func (e *Exporter) Enqueue(p HTTPTracePayload) {
	e.mu.Lock()
	e.queue = append(e.queue, p)
	e.mu.Unlock()
}

// QueueDepth returns the number of payloads waiting to be sent.
func (e *Exporter) QueueDepth() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.queue)
}

// Close flushes the queue and stops the background sender.
func (e *Exporter) Close() {
	e.stopOnce.Do(func() { close(e.stopCh) })
	<-e.done
}

func (e *Exporter) run() {
	defer close(e.done)
	ticker := time.NewTicker(e.cfg.FlushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-e.stopCh:
			e.flush()
			return
		case <-ticker.C:
			e.flush()
		}
	}
}

// flush drains the queue in FIFO order.
func (e *Exporter) flush() {
	for {
		e.mu.Lock()
		if len(e.queue) == 0 {
			e.mu.Unlock()
			return
		}
		p := e.queue[0]
		e.queue = e.queue[1:]
		e.mu.Unlock()

		if err := e.send(p); err != nil {
			slog.Warn("Failed to export trace, dropping it", "url", p.URL, "error", err)
		}
	}
}

func (e *Exporter) send(p HTTPTracePayload) error {
	body, err := json.Marshal(struct {
		ProjectID string `json:"project_id"`
		HTTPTracePayload
	}{ProjectID: e.cfg.ProjectID, HTTPTracePayload: p})
	if err != nil {
		return fmt.Errorf("failed to encode payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.cfg.BaseURL+"/api/v1/http-traces", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", version.Full())

	resp, err := e.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("collector returned %d", resp.StatusCode)
	}
	return nil
}
