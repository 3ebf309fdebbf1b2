package api

import (
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/promptlens/promptlens/pkg/models"
	"github.com/promptlens/promptlens/pkg/providers"
	"github.com/promptlens/promptlens/pkg/services"
)

// CreateHTTPTraceRequest is the body of POST /api/v1/http-traces. Request
// and Response carry the raw captured bodies, base64-encoded in JSON.
// SDKs may send a project name instead of an id; the project is then
// created on first sight.
type CreateHTTPTraceRequest struct {
	ProjectID        string                 `json:"project_id"`
	ProjectName      string                 `json:"project_name"`
	URL              string                 `json:"url"`
	Method           string                 `json:"method"`
	StartedAt        time.Time              `json:"started_at"`
	CompletedAt      time.Time              `json:"completed_at"`
	StatusCode       *int                   `json:"status_code"`
	Error            *string                `json:"error"`
	Request          []byte                 `json:"request"`
	RequestHeaders   map[string]string      `json:"request_headers"`
	Response         []byte                 `json:"response"`
	ResponseHeaders  map[string]string      `json:"response_headers"`
	Metadata         map[string]interface{} `json:"metadata"`
	ImplementationID *string                `json:"implementation_id"`
}

// createHTTPTraceHandler handles POST /api/v1/http-traces.
func (s *Server) createHTTPTraceHandler(c *echo.Context) error {
	var req CreateHTTPTraceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ProjectID == "" && req.ProjectName != "" {
		p, err := s.projects.GetOrCreateByName(c.Request().Context(), req.ProjectName)
		if err != nil {
			return mapServiceError(err)
		}
		req.ProjectID = p.ID
	}

	ht, tr, err := s.ingest.IngestHTTPTrace(c.Request().Context(), services.HTTPTraceInput{
		ProjectID:       req.ProjectID,
		URL:             req.URL,
		Method:          req.Method,
		StartedAt:       req.StartedAt,
		CompletedAt:     req.CompletedAt,
		StatusCode:      req.StatusCode,
		Error:           req.Error,
		Request:         req.Request,
		RequestHeaders:  req.RequestHeaders,
		Response:        req.Response,
		ResponseHeaders: req.ResponseHeaders,
		Metadata:        req.Metadata,
	}, req.ImplementationID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"http_trace": ht,
		"trace":      tr,
	})
}

// getHTTPTraceHandler handles GET /api/v1/http-traces/:id.
func (s *Server) getHTTPTraceHandler(c *echo.Context) error {
	ht, err := s.traces.GetHTTPTrace(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, ht)
}

// CreateTraceRequest is the body of POST /api/v1/traces: a trace already
// normalized on the SDK side.
type CreateTraceRequest struct {
	ProjectID         string                  `json:"project_id"`
	Model             string                  `json:"model"`
	InputItems        []models.TraceItem      `json:"input_items"`
	OutputItems       []models.TraceItem      `json:"output_items"`
	Tools             []models.ToolDefinition `json:"tools"`
	ResponseSchema    map[string]interface{}  `json:"response_schema"`
	Temperature       *float64                `json:"temperature"`
	MaxTokens         *int                    `json:"max_tokens"`
	FinishReason      *string                 `json:"finish_reason"`
	PromptTokens      int                     `json:"prompt_tokens"`
	CompletionTokens  int                     `json:"completion_tokens"`
	CachedTokens      int                     `json:"cached_tokens"`
	ReasoningTokens   int                     `json:"reasoning_tokens"`
	TotalTokens       int                     `json:"total_tokens"`
	SystemFingerprint *string                 `json:"system_fingerprint"`
	Error             *string                 `json:"error"`
	StartedAt         time.Time               `json:"started_at"`
	CompletedAt       time.Time               `json:"completed_at"`
	Path              *string                 `json:"path"`
	ImplementationID  *string                 `json:"implementation_id"`
}

// createTraceHandler handles POST /api/v1/traces.
func (s *Server) createTraceHandler(c *echo.Context) error {
	var req CreateTraceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Model == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "model is required")
	}

	parsed := &providers.ParsedTrace{
		Model:             req.Model,
		InputItems:        req.InputItems,
		OutputItems:       req.OutputItems,
		Tools:             req.Tools,
		ResponseSchema:    req.ResponseSchema,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
		FinishReason:      req.FinishReason,
		PromptTokens:      req.PromptTokens,
		CompletionTokens:  req.CompletionTokens,
		CachedTokens:      req.CachedTokens,
		ReasoningTokens:   req.ReasoningTokens,
		TotalTokens:       req.TotalTokens,
		SystemFingerprint: req.SystemFingerprint,
		Error:             req.Error,
	}
	tr, err := s.ingest.IngestParsedTrace(c.Request().Context(), req.ProjectID, parsed, req.Path, req.StartedAt, req.CompletedAt, req.ImplementationID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, tr)
}

// listTracesHandler handles GET /api/v1/traces.
func (s *Server) listTracesHandler(c *echo.Context) error {
	projectID := c.QueryParam("project_id")
	if projectID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "project_id is required")
	}
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = n
	}
	traces, err := s.traces.ListTraces(c.Request().Context(), projectID, limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, traces)
}

// getTraceHandler handles GET /api/v1/traces/:id.
func (s *Server) getTraceHandler(c *echo.Context) error {
	tr, err := s.traces.GetTrace(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, tr)
}
