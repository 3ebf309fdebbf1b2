// Package api exposes the HTTP surface: trace ingest, task and grader
// management, evaluations and the optimization loop.
package api

import (
	"context"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/promptlens/promptlens/pkg/database"
	"github.com/promptlens/promptlens/pkg/evaluation"
	"github.com/promptlens/promptlens/pkg/ingest"
	"github.com/promptlens/promptlens/pkg/optimizer"
	"github.com/promptlens/promptlens/pkg/queue"
	"github.com/promptlens/promptlens/pkg/services"
)

// Server is the HTTP API server.
type Server struct {
	echo *echo.Echo
	srv  *http.Server

	db          *database.Client
	projects    *services.ProjectService
	traces      *services.TraceService
	tasks       *services.TaskService
	testCases   *services.TestCaseService
	graders     *services.GraderService
	grades      *services.GradeService
	configs     *services.EvaluationConfigService
	executions  *services.ExecutionService
	ingest      *ingest.Service
	evaluations *evaluation.Service
	optimizer   *optimizer.Optimizer
	pool        *queue.Pool
}

// Deps bundles the server's collaborators.
type Deps struct {
	DB          *database.Client
	Projects    *services.ProjectService
	Traces      *services.TraceService
	Tasks       *services.TaskService
	TestCases   *services.TestCaseService
	Graders     *services.GraderService
	Grades      *services.GradeService
	Configs     *services.EvaluationConfigService
	Executions  *services.ExecutionService
	Ingest      *ingest.Service
	Evaluations *evaluation.Service
	Optimizer   *optimizer.Optimizer
	Pool        *queue.Pool
}

// NewServer creates a new API server
func NewServer(deps Deps) *Server {
	s := &Server{
		echo:        echo.New(),
		db:          deps.DB,
		projects:    deps.Projects,
		traces:      deps.Traces,
		tasks:       deps.Tasks,
		testCases:   deps.TestCases,
		graders:     deps.Graders,
		grades:      deps.Grades,
		configs:     deps.Configs,
		executions:  deps.Executions,
		ingest:      deps.Ingest,
		evaluations: deps.Evaluations,
		optimizer:   deps.Optimizer,
		pool:        deps.Pool,
	}
	s.echo.Use(securityHeaders())
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.healthHandler)

	api := s.echo.Group("/api/v1")

	api.POST("/projects", s.createProjectHandler)
	api.GET("/projects", s.listProjectsHandler)
	api.GET("/projects/:id", s.getProjectHandler)
	api.POST("/projects/:id/graders", s.createGraderHandler)
	api.GET("/projects/:id/graders", s.listGradersHandler)

	api.POST("/http-traces", s.createHTTPTraceHandler)
	api.GET("/http-traces/:id", s.getHTTPTraceHandler)
	api.POST("/traces", s.createTraceHandler)
	api.GET("/traces", s.listTracesHandler)
	api.GET("/traces/:id", s.getTraceHandler)

	api.POST("/tasks", s.createTaskHandler)
	api.GET("/tasks", s.listTasksHandler)
	api.GET("/tasks/:id", s.getTaskHandler)
	api.PUT("/tasks/:id/production-version", s.setProductionVersionHandler)
	api.POST("/tasks/:id/implementations", s.createImplementationHandler)
	api.GET("/tasks/:id/implementations", s.listImplementationsHandler)
	api.GET("/implementations/:id", s.getImplementationHandler)

	api.POST("/tasks/:id/test-cases", s.createTestCaseHandler)
	api.GET("/tasks/:id/test-cases", s.listTestCasesHandler)
	api.PATCH("/test-cases/:id", s.updateTestCaseHandler)
	api.DELETE("/test-cases/:id", s.deleteTestCaseHandler)

	api.GET("/graders/:id", s.getGraderHandler)
	api.PATCH("/graders/:id", s.updateGraderHandler)
	api.DELETE("/graders/:id", s.deleteGraderHandler)

	api.POST("/grades", s.createGradeHandler)
	api.GET("/grades", s.listGradesHandler)
	api.GET("/grades/:id", s.getGradeHandler)
	api.DELETE("/grades/:id", s.deleteGradeHandler)

	api.POST("/tasks/:id/evaluation-config", s.upsertEvaluationConfigHandler)
	api.PATCH("/tasks/:id/evaluation-config", s.upsertEvaluationConfigHandler)
	api.GET("/tasks/:id/evaluation-config", s.getEvaluationConfigHandler)
	api.POST("/evaluations", s.createEvaluationHandler)
	api.GET("/evaluations", s.listEvaluationsHandler)
	api.GET("/evaluations/:id", s.getEvaluationHandler)
	api.DELETE("/evaluations/:id", s.deleteEvaluationHandler)

	api.POST("/implementations/:id/execute", s.executeImplementationHandler)
	api.POST("/tasks/:id/execute", s.executeTaskHandler)
	api.GET("/execution-results/:id", s.getExecutionResultHandler)
	api.GET("/tasks/:id/execution-results", s.listExecutionResultsHandler)

	api.POST("/tasks/:id/optimize", s.optimizeTaskHandler)
}

// Start runs the server on addr, blocking until it stops.
func (s *Server) Start(addr string) error {
	s.srv = &http.Server{Addr: addr, Handler: s.echo}
	return s.srv.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

// Echo exposes the router for tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}
