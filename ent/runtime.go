// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/promptlens/promptlens/ent/evaluation"
	"github.com/promptlens/promptlens/ent/evaluationconfig"
	"github.com/promptlens/promptlens/ent/executionresult"
	"github.com/promptlens/promptlens/ent/grader"
	"github.com/promptlens/promptlens/ent/httptrace"
	"github.com/promptlens/promptlens/ent/implementation"
	"github.com/promptlens/promptlens/ent/project"
	"github.com/promptlens/promptlens/ent/schema"
	"github.com/promptlens/promptlens/ent/task"
	"github.com/promptlens/promptlens/ent/testcase"
	"github.com/promptlens/promptlens/ent/trace"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	evaluationFields := schema.Evaluation{}.Fields()
	_ = evaluationFields
	// evaluationDescTestCaseCount is the schema descriptor for test_case_count field.
	evaluationDescTestCaseCount := evaluationFields[8].Descriptor()
	// evaluation.DefaultTestCaseCount holds the default value on creation for the test_case_count field.
	evaluation.DefaultTestCaseCount = evaluationDescTestCaseCount.Default.(int)
	// evaluationDescStartedAt is the schema descriptor for started_at field.
	evaluationDescStartedAt := evaluationFields[10].Descriptor()
	// evaluation.DefaultStartedAt holds the default value on creation for the started_at field.
	evaluation.DefaultStartedAt = evaluationDescStartedAt.Default.(func() time.Time)
	evaluationconfigFields := schema.EvaluationConfig{}.Fields()
	_ = evaluationconfigFields
	// evaluationconfigDescCreatedAt is the schema descriptor for created_at field.
	evaluationconfigDescCreatedAt := evaluationconfigFields[6].Descriptor()
	// evaluationconfig.DefaultCreatedAt holds the default value on creation for the created_at field.
	evaluationconfig.DefaultCreatedAt = evaluationconfigDescCreatedAt.Default.(func() time.Time)
	// evaluationconfigDescUpdatedAt is the schema descriptor for updated_at field.
	evaluationconfigDescUpdatedAt := evaluationconfigFields[7].Descriptor()
	// evaluationconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	evaluationconfig.DefaultUpdatedAt = evaluationconfigDescUpdatedAt.Default.(func() time.Time)
	// evaluationconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	evaluationconfig.UpdateDefaultUpdatedAt = evaluationconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	executionresultFields := schema.ExecutionResult{}.Fields()
	_ = executionresultFields
	// executionresultDescPromptTokens is the schema descriptor for prompt_tokens field.
	executionresultDescPromptTokens := executionresultFields[13].Descriptor()
	// executionresult.DefaultPromptTokens holds the default value on creation for the prompt_tokens field.
	executionresult.DefaultPromptTokens = executionresultDescPromptTokens.Default.(int)
	// executionresultDescCompletionTokens is the schema descriptor for completion_tokens field.
	executionresultDescCompletionTokens := executionresultFields[14].Descriptor()
	// executionresult.DefaultCompletionTokens holds the default value on creation for the completion_tokens field.
	executionresult.DefaultCompletionTokens = executionresultDescCompletionTokens.Default.(int)
	// executionresultDescCachedTokens is the schema descriptor for cached_tokens field.
	executionresultDescCachedTokens := executionresultFields[15].Descriptor()
	// executionresult.DefaultCachedTokens holds the default value on creation for the cached_tokens field.
	executionresult.DefaultCachedTokens = executionresultDescCachedTokens.Default.(int)
	// executionresultDescReasoningTokens is the schema descriptor for reasoning_tokens field.
	executionresultDescReasoningTokens := executionresultFields[16].Descriptor()
	// executionresult.DefaultReasoningTokens holds the default value on creation for the reasoning_tokens field.
	executionresult.DefaultReasoningTokens = executionresultDescReasoningTokens.Default.(int)
	// executionresultDescTotalTokens is the schema descriptor for total_tokens field.
	executionresultDescTotalTokens := executionresultFields[17].Descriptor()
	// executionresult.DefaultTotalTokens holds the default value on creation for the total_tokens field.
	executionresult.DefaultTotalTokens = executionresultDescTotalTokens.Default.(int)
	// executionresultDescCreatedAt is the schema descriptor for created_at field.
	executionresultDescCreatedAt := executionresultFields[20].Descriptor()
	// executionresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	executionresult.DefaultCreatedAt = executionresultDescCreatedAt.Default.(func() time.Time)
	graderFields := schema.Grader{}.Fields()
	_ = graderFields
	// graderDescIsActive is the schema descriptor for is_active field.
	graderDescIsActive := graderFields[10].Descriptor()
	// grader.DefaultIsActive holds the default value on creation for the is_active field.
	grader.DefaultIsActive = graderDescIsActive.Default.(bool)
	// graderDescCreatedAt is the schema descriptor for created_at field.
	graderDescCreatedAt := graderFields[11].Descriptor()
	// grader.DefaultCreatedAt holds the default value on creation for the created_at field.
	grader.DefaultCreatedAt = graderDescCreatedAt.Default.(func() time.Time)
	httptraceFields := schema.HTTPTrace{}.Fields()
	_ = httptraceFields
	// httptraceDescCreatedAt is the schema descriptor for created_at field.
	httptraceDescCreatedAt := httptraceFields[14].Descriptor()
	// httptrace.DefaultCreatedAt holds the default value on creation for the created_at field.
	httptrace.DefaultCreatedAt = httptraceDescCreatedAt.Default.(func() time.Time)
	implementationFields := schema.Implementation{}.Fields()
	_ = implementationFields
	// implementationDescTemp is the schema descriptor for temp field.
	implementationDescTemp := implementationFields[11].Descriptor()
	// implementation.DefaultTemp holds the default value on creation for the temp field.
	implementation.DefaultTemp = implementationDescTemp.Default.(bool)
	// implementationDescCreatedAt is the schema descriptor for created_at field.
	implementationDescCreatedAt := implementationFields[12].Descriptor()
	// implementation.DefaultCreatedAt holds the default value on creation for the created_at field.
	implementation.DefaultCreatedAt = implementationDescCreatedAt.Default.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[2].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescDescription is the schema descriptor for description field.
	taskDescDescription := taskFields[3].Descriptor()
	// task.DefaultDescription holds the default value on creation for the description field.
	task.DefaultDescription = taskDescDescription.Default.(string)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[7].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	testcaseFields := schema.TestCase{}.Fields()
	_ = testcaseFields
	// testcaseDescCreatedAt is the schema descriptor for created_at field.
	testcaseDescCreatedAt := testcaseFields[5].Descriptor()
	// testcase.DefaultCreatedAt holds the default value on creation for the created_at field.
	testcase.DefaultCreatedAt = testcaseDescCreatedAt.Default.(func() time.Time)
	traceFields := schema.Trace{}.Fields()
	_ = traceFields
	// traceDescPromptTokens is the schema descriptor for prompt_tokens field.
	traceDescPromptTokens := traceFields[12].Descriptor()
	// trace.DefaultPromptTokens holds the default value on creation for the prompt_tokens field.
	trace.DefaultPromptTokens = traceDescPromptTokens.Default.(int)
	// traceDescCompletionTokens is the schema descriptor for completion_tokens field.
	traceDescCompletionTokens := traceFields[13].Descriptor()
	// trace.DefaultCompletionTokens holds the default value on creation for the completion_tokens field.
	trace.DefaultCompletionTokens = traceDescCompletionTokens.Default.(int)
	// traceDescCachedTokens is the schema descriptor for cached_tokens field.
	traceDescCachedTokens := traceFields[14].Descriptor()
	// trace.DefaultCachedTokens holds the default value on creation for the cached_tokens field.
	trace.DefaultCachedTokens = traceDescCachedTokens.Default.(int)
	// traceDescReasoningTokens is the schema descriptor for reasoning_tokens field.
	traceDescReasoningTokens := traceFields[15].Descriptor()
	// trace.DefaultReasoningTokens holds the default value on creation for the reasoning_tokens field.
	trace.DefaultReasoningTokens = traceDescReasoningTokens.Default.(int)
	// traceDescTotalTokens is the schema descriptor for total_tokens field.
	traceDescTotalTokens := traceFields[16].Descriptor()
	// trace.DefaultTotalTokens holds the default value on creation for the total_tokens field.
	trace.DefaultTotalTokens = traceDescTotalTokens.Default.(int)
	// traceDescCreatedAt is the schema descriptor for created_at field.
	traceDescCreatedAt := traceFields[23].Descriptor()
	// trace.DefaultCreatedAt holds the default value on creation for the created_at field.
	trace.DefaultCreatedAt = traceDescCreatedAt.Default.(func() time.Time)
}
