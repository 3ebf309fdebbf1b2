package exporter

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type receivedPayload struct {
	ProjectID string `json:"project_id"`
	HTTPTracePayload
}

func newCollector(t *testing.T) (*httptest.Server, func() []receivedPayload) {
	var mu sync.Mutex
	var received []receivedPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/http-traces", r.URL.Path)
		var p receivedPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		mu.Lock()
		received = append(received, p)
		mu.Unlock()
		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(srv.Close)

	return srv, func() []receivedPayload {
		mu.Lock()
		defer mu.Unlock()
		return append([]receivedPayload(nil), received...)
	}
}

func TestExporter_ShipsInOrder(t *testing.T) {
	srv, received := newCollector(t)

	exp, err := NewExporter(Config{
		BaseURL:       srv.URL,
		ProjectID:     "proj-1",
		FlushInterval: 10 * time.Millisecond,
	})
	require.NoError(t, err)

	for _, url := range []string{"https://a", "https://b", "https://c"} {
		exp.Enqueue(HTTPTracePayload{URL: url, Method: "POST", StartedAt: time.Now(), CompletedAt: time.Now()})
	}
	exp.Close()

	got := received()
	require.Len(t, got, 3)
	assert.Equal(t, "https://a", got[0].URL)
	assert.Equal(t, "https://b", got[1].URL)
	assert.Equal(t, "https://c", got[2].URL)
	assert.Equal(t, "proj-1", got[0].ProjectID)
}

func TestExporter_DropsOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	exp, err := NewExporter(Config{
		BaseURL:       srv.URL,
		ProjectID:     "proj-1",
		FlushInterval: 10 * time.Millisecond,
	})
	require.NoError(t, err)

	exp.Enqueue(HTTPTracePayload{URL: "https://a"})
	exp.Close()
	assert.Zero(t, exp.QueueDepth())
}

func TestExporter_RequiresConfig(t *testing.T) {
	_, err := NewExporter(Config{ProjectID: "p"})
	assert.Error(t, err)
	_, err = NewExporter(Config{BaseURL: "http://x"})
	assert.Error(t, err)
}

// stubRoundTripper returns a canned response without any network.
type stubRoundTripper struct {
	status int
	body   string
}

func (s stubRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: s.status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(s.body)),
	}, nil
}

func TestTransport_CapturesExchange(t *testing.T) {
	srv, received := newCollector(t)
	exp, err := NewExporter(Config{
		BaseURL:       srv.URL,
		ProjectID:     "proj-1",
		FlushInterval: 10 * time.Millisecond,
	})
	require.NoError(t, err)

	transport := NewTransport(
		stubRoundTripper{status: 200, body: `{"object":"chat.completion"}`},
		exp,
		map[string]interface{}{"path": "app/greet.py:10"},
	)
	client := &http.Client{Transport: transport}

	resp, err := client.Post("https://api.openai.com/v1/chat/completions", "application/json",
		bytes.NewReader([]byte(`{"model":"gpt-4o"}`)))
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	assert.JSONEq(t, `{"object":"chat.completion"}`, string(body))

	exp.Close()
	got := received()
	require.Len(t, got, 1)
	p := got[0]
	assert.Equal(t, "https://api.openai.com/v1/chat/completions", p.URL)
	assert.Equal(t, "POST", p.Method)
	require.NotNil(t, p.StatusCode)
	assert.Equal(t, 200, *p.StatusCode)
	assert.JSONEq(t, `{"model":"gpt-4o"}`, string(p.Request))
	assert.JSONEq(t, `{"object":"chat.completion"}`, string(p.Response))
	assert.Equal(t, "app/greet.py:10", p.Metadata["path"])
	assert.False(t, p.CompletedAt.Before(p.StartedAt))
}

func TestTransport_FinalizesOnceOnCloseWithoutRead(t *testing.T) {
	srv, received := newCollector(t)
	exp, err := NewExporter(Config{
		BaseURL:       srv.URL,
		ProjectID:     "proj-1",
		FlushInterval: 10 * time.Millisecond,
	})
	require.NoError(t, err)

	transport := NewTransport(stubRoundTripper{status: 200, body: "data: chunk\n\n"}, exp, nil)
	client := &http.Client{Transport: transport}

	resp, err := client.Get("https://api.openai.com/v1/chat/completions")
	require.NoError(t, err)
	// Read part of the stream, then close twice; the capture fires once.
	buf := make([]byte, 4)
	_, _ = resp.Body.Read(buf)
	require.NoError(t, resp.Body.Close())
	assert.NoError(t, resp.Body.Close())

	exp.Close()
	assert.Len(t, received(), 1)
}
