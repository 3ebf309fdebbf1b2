// Package providers decodes captured provider HTTP calls into normalized
// traces. Each parser claims URLs by host; the registry tries parsers in
// registration order and falls back to a generic parser that keeps only
// timing and raw bytes.
package providers

import (
	"net/url"
	"strings"
	"time"

	"github.com/promptlens/promptlens/pkg/models"
)

// ParseInput carries one captured HTTP exchange into a parser.
type ParseInput struct {
	URL         string
	Method      string
	StartedAt   time.Time
	CompletedAt time.Time
	StatusCode  *int
	Error       *string
	Request     []byte
	Response    []byte
	Metadata    map[string]interface{}
	Path        *string
	IsStreaming bool
}

// ParsedTrace is the provider-independent decode of one LLM call. Fields map
// one-to-one onto the persisted Trace entity.
type ParsedTrace struct {
	Model             string
	InputItems        []models.TraceItem
	OutputItems       []models.TraceItem
	Tools             []models.ToolDefinition
	ResponseSchema    map[string]interface{}
	Temperature       *float64
	MaxTokens         *int
	FinishReason      *string
	PromptTokens      int
	CompletionTokens  int
	CachedTokens      int
	ReasoningTokens   int
	TotalTokens       int
	SystemFingerprint *string
	Error             *string
}

// Parser decodes one provider's wire format.
type Parser interface {
	// Claims reports whether this parser handles the given URL.
	Claims(rawURL string) bool
	// Parse decodes the exchange. A decode failure is reported through the
	// returned error; callers persist the trace with the error recorded.
	Parse(in ParseInput) (*ParsedTrace, error)
}

// Registry holds parsers in registration order; the first parser claiming a
// URL wins, and the generic fallback handles everything else.
type Registry struct {
	parsers  []Parser
	fallback Parser
}

// NewRegistry returns a registry with the built-in parsers registered.
func NewRegistry() *Registry {
	r := &Registry{fallback: &GenericParser{}}
	r.Register(&OpenAIParser{})
	r.Register(&AnthropicParser{})
	r.Register(&GeminiParser{})
	return r
}

// Register appends a parser. Order matters.
func (r *Registry) Register(p Parser) {
	r.parsers = append(r.parsers, p)
}

// ParserFor returns the first parser claiming the URL, or the fallback.
func (r *Registry) ParserFor(rawURL string) Parser {
	for _, p := range r.parsers {
		if p.Claims(rawURL) {
			return p
		}
	}
	return r.fallback
}

// Parse routes the exchange to the claiming parser.
func (r *Registry) Parse(in ParseInput) (*ParsedTrace, error) {
	return r.ParserFor(in.URL).Parse(in)
}

// hostMatches reports whether the URL's host is the domain or a subdomain
// of it.
func hostMatches(rawURL, domain string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := u.Hostname()
	return host == domain || strings.HasSuffix(host, "."+domain)
}

func strPtr(s string) *string { return &s }
