package exporter

import (
	"bytes"
	"io"
	"net/http"
	"sync"
	"time"
)

// maxCapturedBody caps how much of a body is kept per call.
const maxCapturedBody = 8 << 20

// Transport is an http.RoundTripper that captures provider calls and hands
// them to an Exporter. Wrap the HTTP client the provider SDK uses:
//
//	client := &http.Client{Transport: exporter.NewTransport(nil, exp, nil)}
//
// Streaming responses are buffered as they are read and finalized exactly
// once, at end of stream, close or read error.
type Transport struct {
	base     http.RoundTripper
	exporter *Exporter
	// metadata is attached to every captured call; the "path" key groups
	// traces by application call site.
	metadata map[string]interface{}
}

// NewTransport wraps base (nil means http.DefaultTransport).
func NewTransport(base http.RoundTripper, exporter *Exporter, metadata map[string]interface{}) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{base: base, exporter: exporter, metadata: metadata}
}

// WithMetadata returns a copy of the transport with additional metadata
// keys, for per-call-site clients.
func (t *Transport) WithMetadata(extra map[string]interface{}) *Transport {
	merged := make(map[string]interface{}, len(t.metadata)+len(extra))
	for k, v := range t.metadata {
		merged[k] = v
	}
	for k, v := range extra {
		merged[k] = v
	}
	return &Transport{base: t.base, exporter: t.exporter, metadata: merged}
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	var reqBody []byte
	if req.Body != nil {
		var err error
		reqBody, err = io.ReadAll(io.LimitReader(req.Body, maxCapturedBody))
		req.Body.Close()
		if err != nil {
			return nil, err
		}
		req.Body = io.NopCloser(bytes.NewReader(reqBody))
	}

	capture := &HTTPTracePayload{
		URL:            req.URL.String(),
		Method:         req.Method,
		StartedAt:      time.Now(),
		Request:        reqBody,
		RequestHeaders: flattenHeaders(req.Header),
		Metadata:       t.metadata,
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		capture.CompletedAt = time.Now()
		msg := err.Error()
		capture.Error = &msg
		t.exporter.Enqueue(*capture)
		return resp, err
	}

	status := resp.StatusCode
	capture.StatusCode = &status
	capture.ResponseHeaders = flattenHeaders(resp.Header)

	// The response is finalized when the caller finishes with the body, so
	// streamed responses capture the full transcript and true duration.
	resp.Body = &capturingBody{
		body:     resp.Body,
		capture:  capture,
		exporter: t.exporter,
	}
	return resp, nil
}

// capturingBody tees a response body into the capture buffer and enqueues
// the finished capture exactly once.
type capturingBody struct {
	body     io.ReadCloser
	capture  *HTTPTracePayload
	exporter *Exporter

	buf  bytes.Buffer
	once sync.Once
}

func (c *capturingBody) Read(p []byte) (int, error) {
	n, err := c.body.Read(p)
	if n > 0 && c.buf.Len() < maxCapturedBody {
		c.buf.Write(p[:n])
	}
	if err != nil {
		if err != io.EOF {
			msg := err.Error()
			c.capture.Error = &msg
		}
		c.finalize()
	}
	return n, err
}

func (c *capturingBody) Close() error {
	err := c.body.Close()
	c.finalize()
	return err
}

func (c *capturingBody) finalize() {
	c.once.Do(func() {
		c.capture.CompletedAt = time.Now()
		c.capture.Response = c.buf.Bytes()
		c.exporter.Enqueue(*c.capture)
	})
}

func flattenHeaders(h http.Header) map[string]string {
	if len(h) == 0 {
		return nil
	}
	out := make(map[string]string, len(h))
	for k, vs := range h {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out
}
