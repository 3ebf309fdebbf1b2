package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/promptlens/promptlens/pkg/services"
)

// TestCaseRequest is the body of test-case create and update calls.
type TestCaseRequest struct {
	Description    *string                `json:"description"`
	Arguments      map[string]string      `json:"arguments"`
	ExpectedOutput map[string]interface{} `json:"expected_output"`
}

// createTestCaseHandler handles POST /api/v1/tasks/:id/test-cases.
func (s *Server) createTestCaseHandler(c *echo.Context) error {
	var req TestCaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	tc, err := s.testCases.CreateTestCase(c.Request().Context(), c.Param("id"), services.TestCaseInput{
		Description:    req.Description,
		Arguments:      req.Arguments,
		ExpectedOutput: req.ExpectedOutput,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, tc)
}

// listTestCasesHandler handles GET /api/v1/tasks/:id/test-cases.
func (s *Server) listTestCasesHandler(c *echo.Context) error {
	cases, err := s.testCases.ListTestCases(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, cases)
}

// updateTestCaseHandler handles PUT /api/v1/test-cases/:id.
func (s *Server) updateTestCaseHandler(c *echo.Context) error {
	var req TestCaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	tc, err := s.testCases.UpdateTestCase(c.Request().Context(), c.Param("id"), services.TestCaseInput{
		Description:    req.Description,
		Arguments:      req.Arguments,
		ExpectedOutput: req.ExpectedOutput,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, tc)
}

// deleteTestCaseHandler handles DELETE /api/v1/test-cases/:id.
func (s *Server) deleteTestCaseHandler(c *echo.Context) error {
	if err := s.testCases.DeleteTestCase(c.Request().Context(), c.Param("id")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
