package llm

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient returns a canned response or error and records the last request.
type stubClient struct {
	resp    *Response
	err     error
	lastReq Request
}

func (s *stubClient) Complete(_ context.Context, req Request) (*Response, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

type stubResolver struct{ client Client }

func (s *stubResolver) ClientFor(string) (Client, error) { return s.client, nil }

func newTestExecutor(client Client) *Executor {
	return NewExecutor(&stubResolver{client: client}, 0, slog.Default())
}

func TestExecuteRendersAndCalls(t *testing.T) {
	stub := &stubClient{resp: &Response{
		Text:  "hi there",
		Usage: Usage{PromptTokens: 100, CompletionTokens: 10, TotalTokens: 110},
	}}
	ex := newTestExecutor(stub)

	out := ex.Execute(context.Background(), CallSpec{
		Prompt:          "Greet {{name}}.",
		Model:           "gpt-4o",
		MaxOutputTokens: 64,
	}, map[string]string{"name": "Ada"}, nil)

	require.Nil(t, out.Error)
	assert.Equal(t, "Greet Ada.", out.PromptRendered)
	assert.Equal(t, "Greet Ada.", stub.lastReq.SystemPrompt)
	require.NotNil(t, out.ResultText)
	assert.Equal(t, "hi there", *out.ResultText)
	assert.Equal(t, 110, out.TotalTokens)
	require.NotNil(t, out.Cost, "known model gets a cost")
	assert.False(t, out.CompletedAt.Before(out.StartedAt))
}

func TestExecuteMissingVariableSkipsCall(t *testing.T) {
	stub := &stubClient{resp: &Response{}}
	ex := newTestExecutor(stub)

	out := ex.Execute(context.Background(), CallSpec{
		Prompt: "Greet {{name}}.",
		Model:  "gpt-4o",
	}, map[string]string{}, nil)

	require.NotNil(t, out.Error)
	assert.Contains(t, *out.Error, "missing variable name")
	assert.Empty(t, stub.lastReq.Model, "no provider call is made")
	assert.Nil(t, out.ResultText)
}

func TestExecuteProviderErrorRecorded(t *testing.T) {
	stub := &stubClient{err: fmt.Errorf("rate limited")}
	ex := newTestExecutor(stub)

	out := ex.Execute(context.Background(), CallSpec{Prompt: "p", Model: "gpt-4o"}, nil, nil)

	require.NotNil(t, out.Error)
	assert.Contains(t, *out.Error, "rate limited")
	assert.Nil(t, out.ResultText)
	assert.Nil(t, out.Cost)
}

func TestExecuteParsesJSONWithSchema(t *testing.T) {
	stub := &stubClient{resp: &Response{Text: `{"score": 0.9}`}}
	ex := newTestExecutor(stub)

	out := ex.Execute(context.Background(), CallSpec{
		Prompt:         "p",
		Model:          "gpt-4o",
		ResponseSchema: map[string]interface{}{"type": "object"},
	}, nil, nil)

	require.Nil(t, out.Error)
	require.NotNil(t, out.ResultJSON)
	assert.Equal(t, 0.9, out.ResultJSON["score"])
}

func TestExecuteUnknownModelCostNil(t *testing.T) {
	stub := &stubClient{resp: &Response{Text: "x", Usage: Usage{PromptTokens: 1, CompletionTokens: 1, TotalTokens: 2}}}
	ex := newTestExecutor(stub)

	out := ex.Execute(context.Background(), CallSpec{Prompt: "p", Model: "my-custom-model"}, nil, nil)

	require.Nil(t, out.Error)
	assert.Nil(t, out.Cost)
}
