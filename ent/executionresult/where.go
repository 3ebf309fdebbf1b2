// Code generated by ent, DO NOT EDIT.

package executionresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/promptlens/promptlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldTaskID, v))
}

// ImplementationID applies equality check predicate on the "implementation_id" field. It's identical to ImplementationIDEQ.
func ImplementationID(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldImplementationID, v))
}

// EvaluationID applies equality check predicate on the "evaluation_id" field. It's identical to EvaluationIDEQ.
func EvaluationID(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldEvaluationID, v))
}

// TestCaseID applies equality check predicate on the "test_case_id" field. It's identical to TestCaseIDEQ.
func TestCaseID(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldTestCaseID, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldCompletedAt, v))
}

// PromptRendered applies equality check predicate on the "prompt_rendered" field. It's identical to PromptRenderedEQ.
func PromptRendered(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldPromptRendered, v))
}

// ResultText applies equality check predicate on the "result_text" field. It's identical to ResultTextEQ.
func ResultText(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldResultText, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldError, v))
}

// PromptTokens applies equality check predicate on the "prompt_tokens" field. It's identical to PromptTokensEQ.
func PromptTokens(v int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldPromptTokens, v))
}

// CompletionTokens applies equality check predicate on the "completion_tokens" field. It's identical to CompletionTokensEQ.
func CompletionTokens(v int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldCompletionTokens, v))
}

// CachedTokens applies equality check predicate on the "cached_tokens" field. It's identical to CachedTokensEQ.
func CachedTokens(v int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldCachedTokens, v))
}

// ReasoningTokens applies equality check predicate on the "reasoning_tokens" field. It's identical to ReasoningTokensEQ.
func ReasoningTokens(v int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldReasoningTokens, v))
}

// TotalTokens applies equality check predicate on the "total_tokens" field. It's identical to TotalTokensEQ.
func TotalTokens(v int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldTotalTokens, v))
}

// SystemFingerprint applies equality check predicate on the "system_fingerprint" field. It's identical to SystemFingerprintEQ.
func SystemFingerprint(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldSystemFingerprint, v))
}

// Cost applies equality check predicate on the "cost" field. It's identical to CostEQ.
func Cost(v float64) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldCost, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldContainsFold(FieldTaskID, v))
}

// ImplementationIDEQ applies the EQ predicate on the "implementation_id" field.
func ImplementationIDEQ(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldImplementationID, v))
}

// ImplementationIDNEQ applies the NEQ predicate on the "implementation_id" field.
func ImplementationIDNEQ(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNEQ(FieldImplementationID, v))
}

// ImplementationIDIn applies the In predicate on the "implementation_id" field.
func ImplementationIDIn(vs ...string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldIn(FieldImplementationID, vs...))
}

// ImplementationIDNotIn applies the NotIn predicate on the "implementation_id" field.
func ImplementationIDNotIn(vs ...string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNotIn(FieldImplementationID, vs...))
}

// ImplementationIDGT applies the GT predicate on the "implementation_id" field.
func ImplementationIDGT(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGT(FieldImplementationID, v))
}

// ImplementationIDGTE applies the GTE predicate on the "implementation_id" field.
func ImplementationIDGTE(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGTE(FieldImplementationID, v))
}

// ImplementationIDLT applies the LT predicate on the "implementation_id" field.
func ImplementationIDLT(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLT(FieldImplementationID, v))
}

// ImplementationIDLTE applies the LTE predicate on the "implementation_id" field.
func ImplementationIDLTE(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLTE(FieldImplementationID, v))
}

// ImplementationIDContains applies the Contains predicate on the "implementation_id" field.
func ImplementationIDContains(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldContains(FieldImplementationID, v))
}

// ImplementationIDHasPrefix applies the HasPrefix predicate on the "implementation_id" field.
func ImplementationIDHasPrefix(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldHasPrefix(FieldImplementationID, v))
}

// ImplementationIDHasSuffix applies the HasSuffix predicate on the "implementation_id" field.
func ImplementationIDHasSuffix(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldHasSuffix(FieldImplementationID, v))
}

// ImplementationIDEqualFold applies the EqualFold predicate on the "implementation_id" field.
func ImplementationIDEqualFold(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEqualFold(FieldImplementationID, v))
}

// ImplementationIDContainsFold applies the ContainsFold predicate on the "implementation_id" field.
func ImplementationIDContainsFold(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldContainsFold(FieldImplementationID, v))
}

// EvaluationIDEQ applies the EQ predicate on the "evaluation_id" field.
func EvaluationIDEQ(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldEvaluationID, v))
}

// EvaluationIDNEQ applies the NEQ predicate on the "evaluation_id" field.
func EvaluationIDNEQ(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNEQ(FieldEvaluationID, v))
}

// EvaluationIDIn applies the In predicate on the "evaluation_id" field.
func EvaluationIDIn(vs ...string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldIn(FieldEvaluationID, vs...))
}

// EvaluationIDNotIn applies the NotIn predicate on the "evaluation_id" field.
func EvaluationIDNotIn(vs ...string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNotIn(FieldEvaluationID, vs...))
}

// EvaluationIDGT applies the GT predicate on the "evaluation_id" field.
func EvaluationIDGT(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGT(FieldEvaluationID, v))
}

// EvaluationIDGTE applies the GTE predicate on the "evaluation_id" field.
func EvaluationIDGTE(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGTE(FieldEvaluationID, v))
}

// EvaluationIDLT applies the LT predicate on the "evaluation_id" field.
func EvaluationIDLT(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLT(FieldEvaluationID, v))
}

// EvaluationIDLTE applies the LTE predicate on the "evaluation_id" field.
func EvaluationIDLTE(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLTE(FieldEvaluationID, v))
}

// EvaluationIDContains applies the Contains predicate on the "evaluation_id" field.
func EvaluationIDContains(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldContains(FieldEvaluationID, v))
}

// EvaluationIDHasPrefix applies the HasPrefix predicate on the "evaluation_id" field.
func EvaluationIDHasPrefix(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldHasPrefix(FieldEvaluationID, v))
}

// EvaluationIDHasSuffix applies the HasSuffix predicate on the "evaluation_id" field.
func EvaluationIDHasSuffix(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldHasSuffix(FieldEvaluationID, v))
}

// EvaluationIDIsNil applies the IsNil predicate on the "evaluation_id" field.
func EvaluationIDIsNil() predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldIsNull(FieldEvaluationID))
}

// EvaluationIDNotNil applies the NotNil predicate on the "evaluation_id" field.
func EvaluationIDNotNil() predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNotNull(FieldEvaluationID))
}

// EvaluationIDEqualFold applies the EqualFold predicate on the "evaluation_id" field.
func EvaluationIDEqualFold(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEqualFold(FieldEvaluationID, v))
}

// EvaluationIDContainsFold applies the ContainsFold predicate on the "evaluation_id" field.
func EvaluationIDContainsFold(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldContainsFold(FieldEvaluationID, v))
}

// TestCaseIDEQ applies the EQ predicate on the "test_case_id" field.
func TestCaseIDEQ(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldTestCaseID, v))
}

// TestCaseIDNEQ applies the NEQ predicate on the "test_case_id" field.
func TestCaseIDNEQ(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNEQ(FieldTestCaseID, v))
}

// TestCaseIDIn applies the In predicate on the "test_case_id" field.
func TestCaseIDIn(vs ...string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldIn(FieldTestCaseID, vs...))
}

// TestCaseIDNotIn applies the NotIn predicate on the "test_case_id" field.
func TestCaseIDNotIn(vs ...string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNotIn(FieldTestCaseID, vs...))
}

// TestCaseIDGT applies the GT predicate on the "test_case_id" field.
func TestCaseIDGT(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGT(FieldTestCaseID, v))
}

// TestCaseIDGTE applies the GTE predicate on the "test_case_id" field.
func TestCaseIDGTE(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGTE(FieldTestCaseID, v))
}

// TestCaseIDLT applies the LT predicate on the "test_case_id" field.
func TestCaseIDLT(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLT(FieldTestCaseID, v))
}

// TestCaseIDLTE applies the LTE predicate on the "test_case_id" field.
func TestCaseIDLTE(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLTE(FieldTestCaseID, v))
}

// TestCaseIDContains applies the Contains predicate on the "test_case_id" field.
func TestCaseIDContains(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldContains(FieldTestCaseID, v))
}

// TestCaseIDHasPrefix applies the HasPrefix predicate on the "test_case_id" field.
func TestCaseIDHasPrefix(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldHasPrefix(FieldTestCaseID, v))
}

// TestCaseIDHasSuffix applies the HasSuffix predicate on the "test_case_id" field.
func TestCaseIDHasSuffix(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldHasSuffix(FieldTestCaseID, v))
}

// TestCaseIDIsNil applies the IsNil predicate on the "test_case_id" field.
func TestCaseIDIsNil() predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldIsNull(FieldTestCaseID))
}

// TestCaseIDNotNil applies the NotNil predicate on the "test_case_id" field.
func TestCaseIDNotNil() predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNotNull(FieldTestCaseID))
}

// TestCaseIDEqualFold applies the EqualFold predicate on the "test_case_id" field.
func TestCaseIDEqualFold(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEqualFold(FieldTestCaseID, v))
}

// TestCaseIDContainsFold applies the ContainsFold predicate on the "test_case_id" field.
func TestCaseIDContainsFold(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldContainsFold(FieldTestCaseID, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLTE(FieldCompletedAt, v))
}

// PromptRenderedEQ applies the EQ predicate on the "prompt_rendered" field.
func PromptRenderedEQ(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldPromptRendered, v))
}

// PromptRenderedNEQ applies the NEQ predicate on the "prompt_rendered" field.
func PromptRenderedNEQ(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNEQ(FieldPromptRendered, v))
}

// PromptRenderedIn applies the In predicate on the "prompt_rendered" field.
func PromptRenderedIn(vs ...string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldIn(FieldPromptRendered, vs...))
}

// PromptRenderedNotIn applies the NotIn predicate on the "prompt_rendered" field.
func PromptRenderedNotIn(vs ...string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNotIn(FieldPromptRendered, vs...))
}

// PromptRenderedGT applies the GT predicate on the "prompt_rendered" field.
func PromptRenderedGT(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGT(FieldPromptRendered, v))
}

// PromptRenderedGTE applies the GTE predicate on the "prompt_rendered" field.
func PromptRenderedGTE(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGTE(FieldPromptRendered, v))
}

// PromptRenderedLT applies the LT predicate on the "prompt_rendered" field.
func PromptRenderedLT(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLT(FieldPromptRendered, v))
}

// PromptRenderedLTE applies the LTE predicate on the "prompt_rendered" field.
func PromptRenderedLTE(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLTE(FieldPromptRendered, v))
}

// PromptRenderedContains applies the Contains predicate on the "prompt_rendered" field.
func PromptRenderedContains(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldContains(FieldPromptRendered, v))
}

// PromptRenderedHasPrefix applies the HasPrefix predicate on the "prompt_rendered" field.
func PromptRenderedHasPrefix(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldHasPrefix(FieldPromptRendered, v))
}

// PromptRenderedHasSuffix applies the HasSuffix predicate on the "prompt_rendered" field.
func PromptRenderedHasSuffix(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldHasSuffix(FieldPromptRendered, v))
}

// PromptRenderedEqualFold applies the EqualFold predicate on the "prompt_rendered" field.
func PromptRenderedEqualFold(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEqualFold(FieldPromptRendered, v))
}

// PromptRenderedContainsFold applies the ContainsFold predicate on the "prompt_rendered" field.
func PromptRenderedContainsFold(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldContainsFold(FieldPromptRendered, v))
}

// VariablesIsNil applies the IsNil predicate on the "variables" field.
func VariablesIsNil() predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldIsNull(FieldVariables))
}

// VariablesNotNil applies the NotNil predicate on the "variables" field.
func VariablesNotNil() predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNotNull(FieldVariables))
}

// ResultTextEQ applies the EQ predicate on the "result_text" field.
func ResultTextEQ(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldResultText, v))
}

// ResultTextNEQ applies the NEQ predicate on the "result_text" field.
func ResultTextNEQ(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNEQ(FieldResultText, v))
}

// ResultTextIn applies the In predicate on the "result_text" field.
func ResultTextIn(vs ...string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldIn(FieldResultText, vs...))
}

// ResultTextNotIn applies the NotIn predicate on the "result_text" field.
func ResultTextNotIn(vs ...string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNotIn(FieldResultText, vs...))
}

// ResultTextGT applies the GT predicate on the "result_text" field.
func ResultTextGT(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGT(FieldResultText, v))
}

// ResultTextGTE applies the GTE predicate on the "result_text" field.
func ResultTextGTE(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGTE(FieldResultText, v))
}

// ResultTextLT applies the LT predicate on the "result_text" field.
func ResultTextLT(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLT(FieldResultText, v))
}

// ResultTextLTE applies the LTE predicate on the "result_text" field.
func ResultTextLTE(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLTE(FieldResultText, v))
}

// ResultTextContains applies the Contains predicate on the "result_text" field.
func ResultTextContains(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldContains(FieldResultText, v))
}

// ResultTextHasPrefix applies the HasPrefix predicate on the "result_text" field.
func ResultTextHasPrefix(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldHasPrefix(FieldResultText, v))
}

// ResultTextHasSuffix applies the HasSuffix predicate on the "result_text" field.
func ResultTextHasSuffix(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldHasSuffix(FieldResultText, v))
}

// ResultTextIsNil applies the IsNil predicate on the "result_text" field.
func ResultTextIsNil() predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldIsNull(FieldResultText))
}

// ResultTextNotNil applies the NotNil predicate on the "result_text" field.
func ResultTextNotNil() predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNotNull(FieldResultText))
}

// ResultTextEqualFold applies the EqualFold predicate on the "result_text" field.
func ResultTextEqualFold(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEqualFold(FieldResultText, v))
}

// ResultTextContainsFold applies the ContainsFold predicate on the "result_text" field.
func ResultTextContainsFold(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldContainsFold(FieldResultText, v))
}

// ResultJSONIsNil applies the IsNil predicate on the "result_json" field.
func ResultJSONIsNil() predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldIsNull(FieldResultJSON))
}

// ResultJSONNotNil applies the NotNil predicate on the "result_json" field.
func ResultJSONNotNil() predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNotNull(FieldResultJSON))
}

// ToolCallsIsNil applies the IsNil predicate on the "tool_calls" field.
func ToolCallsIsNil() predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldIsNull(FieldToolCalls))
}

// ToolCallsNotNil applies the NotNil predicate on the "tool_calls" field.
func ToolCallsNotNil() predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNotNull(FieldToolCalls))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldContainsFold(FieldError, v))
}

// PromptTokensEQ applies the EQ predicate on the "prompt_tokens" field.
func PromptTokensEQ(v int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldPromptTokens, v))
}

// PromptTokensNEQ applies the NEQ predicate on the "prompt_tokens" field.
func PromptTokensNEQ(v int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNEQ(FieldPromptTokens, v))
}

// PromptTokensIn applies the In predicate on the "prompt_tokens" field.
func PromptTokensIn(vs ...int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldIn(FieldPromptTokens, vs...))
}

// PromptTokensNotIn applies the NotIn predicate on the "prompt_tokens" field.
func PromptTokensNotIn(vs ...int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNotIn(FieldPromptTokens, vs...))
}

// PromptTokensGT applies the GT predicate on the "prompt_tokens" field.
func PromptTokensGT(v int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGT(FieldPromptTokens, v))
}

// PromptTokensGTE applies the GTE predicate on the "prompt_tokens" field.
func PromptTokensGTE(v int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGTE(FieldPromptTokens, v))
}

// PromptTokensLT applies the LT predicate on the "prompt_tokens" field.
func PromptTokensLT(v int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLT(FieldPromptTokens, v))
}

// PromptTokensLTE applies the LTE predicate on the "prompt_tokens" field.
func PromptTokensLTE(v int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLTE(FieldPromptTokens, v))
}

// CompletionTokensEQ applies the EQ predicate on the "completion_tokens" field.
func CompletionTokensEQ(v int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldCompletionTokens, v))
}

// CompletionTokensNEQ applies the NEQ predicate on the "completion_tokens" field.
func CompletionTokensNEQ(v int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNEQ(FieldCompletionTokens, v))
}

// CompletionTokensIn applies the In predicate on the "completion_tokens" field.
func CompletionTokensIn(vs ...int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldIn(FieldCompletionTokens, vs...))
}

// CompletionTokensNotIn applies the NotIn predicate on the "completion_tokens" field.
func CompletionTokensNotIn(vs ...int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNotIn(FieldCompletionTokens, vs...))
}

// CompletionTokensGT applies the GT predicate on the "completion_tokens" field.
func CompletionTokensGT(v int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGT(FieldCompletionTokens, v))
}

// CompletionTokensGTE applies the GTE predicate on the "completion_tokens" field.
func CompletionTokensGTE(v int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGTE(FieldCompletionTokens, v))
}

// CompletionTokensLT applies the LT predicate on the "completion_tokens" field.
func CompletionTokensLT(v int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLT(FieldCompletionTokens, v))
}

// CompletionTokensLTE applies the LTE predicate on the "completion_tokens" field.
func CompletionTokensLTE(v int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLTE(FieldCompletionTokens, v))
}

// CachedTokensEQ applies the EQ predicate on the "cached_tokens" field.
func CachedTokensEQ(v int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldCachedTokens, v))
}

// CachedTokensNEQ applies the NEQ predicate on the "cached_tokens" field.
func CachedTokensNEQ(v int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNEQ(FieldCachedTokens, v))
}

// CachedTokensIn applies the In predicate on the "cached_tokens" field.
func CachedTokensIn(vs ...int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldIn(FieldCachedTokens, vs...))
}

// CachedTokensNotIn applies the NotIn predicate on the "cached_tokens" field.
func CachedTokensNotIn(vs ...int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNotIn(FieldCachedTokens, vs...))
}

// CachedTokensGT applies the GT predicate on the "cached_tokens" field.
func CachedTokensGT(v int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGT(FieldCachedTokens, v))
}

// CachedTokensGTE applies the GTE predicate on the "cached_tokens" field.
func CachedTokensGTE(v int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGTE(FieldCachedTokens, v))
}

// CachedTokensLT applies the LT predicate on the "cached_tokens" field.
func CachedTokensLT(v int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLT(FieldCachedTokens, v))
}

// CachedTokensLTE applies the LTE predicate on the "cached_tokens" field.
func CachedTokensLTE(v int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLTE(FieldCachedTokens, v))
}

// ReasoningTokensEQ applies the EQ predicate on the "reasoning_tokens" field.
func ReasoningTokensEQ(v int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldReasoningTokens, v))
}

// ReasoningTokensNEQ applies the NEQ predicate on the "reasoning_tokens" field.
func ReasoningTokensNEQ(v int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNEQ(FieldReasoningTokens, v))
}

// ReasoningTokensIn applies the In predicate on the "reasoning_tokens" field.
func ReasoningTokensIn(vs ...int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldIn(FieldReasoningTokens, vs...))
}

// ReasoningTokensNotIn applies the NotIn predicate on the "reasoning_tokens" field.
func ReasoningTokensNotIn(vs ...int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNotIn(FieldReasoningTokens, vs...))
}

// ReasoningTokensGT applies the GT predicate on the "reasoning_tokens" field.
func ReasoningTokensGT(v int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGT(FieldReasoningTokens, v))
}

// ReasoningTokensGTE applies the GTE predicate on the "reasoning_tokens" field.
func ReasoningTokensGTE(v int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGTE(FieldReasoningTokens, v))
}

// ReasoningTokensLT applies the LT predicate on the "reasoning_tokens" field.
func ReasoningTokensLT(v int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLT(FieldReasoningTokens, v))
}

// ReasoningTokensLTE applies the LTE predicate on the "reasoning_tokens" field.
func ReasoningTokensLTE(v int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLTE(FieldReasoningTokens, v))
}

// TotalTokensEQ applies the EQ predicate on the "total_tokens" field.
func TotalTokensEQ(v int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldTotalTokens, v))
}

// TotalTokensNEQ applies the NEQ predicate on the "total_tokens" field.
func TotalTokensNEQ(v int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNEQ(FieldTotalTokens, v))
}

// TotalTokensIn applies the In predicate on the "total_tokens" field.
func TotalTokensIn(vs ...int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldIn(FieldTotalTokens, vs...))
}

// TotalTokensNotIn applies the NotIn predicate on the "total_tokens" field.
func TotalTokensNotIn(vs ...int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNotIn(FieldTotalTokens, vs...))
}

// TotalTokensGT applies the GT predicate on the "total_tokens" field.
func TotalTokensGT(v int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGT(FieldTotalTokens, v))
}

// TotalTokensGTE applies the GTE predicate on the "total_tokens" field.
func TotalTokensGTE(v int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGTE(FieldTotalTokens, v))
}

// TotalTokensLT applies the LT predicate on the "total_tokens" field.
func TotalTokensLT(v int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLT(FieldTotalTokens, v))
}

// TotalTokensLTE applies the LTE predicate on the "total_tokens" field.
func TotalTokensLTE(v int) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLTE(FieldTotalTokens, v))
}

// SystemFingerprintEQ applies the EQ predicate on the "system_fingerprint" field.
func SystemFingerprintEQ(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldSystemFingerprint, v))
}

// SystemFingerprintNEQ applies the NEQ predicate on the "system_fingerprint" field.
func SystemFingerprintNEQ(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNEQ(FieldSystemFingerprint, v))
}

// SystemFingerprintIn applies the In predicate on the "system_fingerprint" field.
func SystemFingerprintIn(vs ...string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldIn(FieldSystemFingerprint, vs...))
}

// SystemFingerprintNotIn applies the NotIn predicate on the "system_fingerprint" field.
func SystemFingerprintNotIn(vs ...string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNotIn(FieldSystemFingerprint, vs...))
}

// SystemFingerprintGT applies the GT predicate on the "system_fingerprint" field.
func SystemFingerprintGT(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGT(FieldSystemFingerprint, v))
}

// SystemFingerprintGTE applies the GTE predicate on the "system_fingerprint" field.
func SystemFingerprintGTE(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGTE(FieldSystemFingerprint, v))
}

// SystemFingerprintLT applies the LT predicate on the "system_fingerprint" field.
func SystemFingerprintLT(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLT(FieldSystemFingerprint, v))
}

// SystemFingerprintLTE applies the LTE predicate on the "system_fingerprint" field.
func SystemFingerprintLTE(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLTE(FieldSystemFingerprint, v))
}

// SystemFingerprintContains applies the Contains predicate on the "system_fingerprint" field.
func SystemFingerprintContains(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldContains(FieldSystemFingerprint, v))
}

// SystemFingerprintHasPrefix applies the HasPrefix predicate on the "system_fingerprint" field.
func SystemFingerprintHasPrefix(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldHasPrefix(FieldSystemFingerprint, v))
}

// SystemFingerprintHasSuffix applies the HasSuffix predicate on the "system_fingerprint" field.
func SystemFingerprintHasSuffix(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldHasSuffix(FieldSystemFingerprint, v))
}

// SystemFingerprintIsNil applies the IsNil predicate on the "system_fingerprint" field.
func SystemFingerprintIsNil() predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldIsNull(FieldSystemFingerprint))
}

// SystemFingerprintNotNil applies the NotNil predicate on the "system_fingerprint" field.
func SystemFingerprintNotNil() predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNotNull(FieldSystemFingerprint))
}

// SystemFingerprintEqualFold applies the EqualFold predicate on the "system_fingerprint" field.
func SystemFingerprintEqualFold(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEqualFold(FieldSystemFingerprint, v))
}

// SystemFingerprintContainsFold applies the ContainsFold predicate on the "system_fingerprint" field.
func SystemFingerprintContainsFold(v string) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldContainsFold(FieldSystemFingerprint, v))
}

// CostEQ applies the EQ predicate on the "cost" field.
func CostEQ(v float64) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldCost, v))
}

// CostNEQ applies the NEQ predicate on the "cost" field.
func CostNEQ(v float64) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNEQ(FieldCost, v))
}

// CostIn applies the In predicate on the "cost" field.
func CostIn(vs ...float64) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldIn(FieldCost, vs...))
}

// CostNotIn applies the NotIn predicate on the "cost" field.
func CostNotIn(vs ...float64) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNotIn(FieldCost, vs...))
}

// CostGT applies the GT predicate on the "cost" field.
func CostGT(v float64) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGT(FieldCost, v))
}

// CostGTE applies the GTE predicate on the "cost" field.
func CostGTE(v float64) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGTE(FieldCost, v))
}

// CostLT applies the LT predicate on the "cost" field.
func CostLT(v float64) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLT(FieldCost, v))
}

// CostLTE applies the LTE predicate on the "cost" field.
func CostLTE(v float64) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLTE(FieldCost, v))
}

// CostIsNil applies the IsNil predicate on the "cost" field.
func CostIsNil() predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldIsNull(FieldCost))
}

// CostNotNil applies the NotNil predicate on the "cost" field.
func CostNotNil() predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNotNull(FieldCost))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.ExecutionResult {
	return predicate.ExecutionResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.ExecutionResult {
	return predicate.ExecutionResult(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasImplementation applies the HasEdge predicate on the "implementation" edge.
func HasImplementation() predicate.ExecutionResult {
	return predicate.ExecutionResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ImplementationTable, ImplementationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasImplementationWith applies the HasEdge predicate on the "implementation" edge with a given conditions (other predicates).
func HasImplementationWith(preds ...predicate.Implementation) predicate.ExecutionResult {
	return predicate.ExecutionResult(func(s *sql.Selector) {
		step := newImplementationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvaluation applies the HasEdge predicate on the "evaluation" edge.
func HasEvaluation() predicate.ExecutionResult {
	return predicate.ExecutionResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, EvaluationTable, EvaluationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEvaluationWith applies the HasEdge predicate on the "evaluation" edge with a given conditions (other predicates).
func HasEvaluationWith(preds ...predicate.Evaluation) predicate.ExecutionResult {
	return predicate.ExecutionResult(func(s *sql.Selector) {
		step := newEvaluationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTestCase applies the HasEdge predicate on the "test_case" edge.
func HasTestCase() predicate.ExecutionResult {
	return predicate.ExecutionResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TestCaseTable, TestCaseColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTestCaseWith applies the HasEdge predicate on the "test_case" edge with a given conditions (other predicates).
func HasTestCaseWith(preds ...predicate.TestCase) predicate.ExecutionResult {
	return predicate.ExecutionResult(func(s *sql.Selector) {
		step := newTestCaseStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasGrades applies the HasEdge predicate on the "grades" edge.
func HasGrades() predicate.ExecutionResult {
	return predicate.ExecutionResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, GradesTable, GradesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGradesWith applies the HasEdge predicate on the "grades" edge with a given conditions (other predicates).
func HasGradesWith(preds ...predicate.Grade) predicate.ExecutionResult {
	return predicate.ExecutionResult(func(s *sql.Selector) {
		step := newGradesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExecutionResult) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExecutionResult) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExecutionResult) predicate.ExecutionResult {
	return predicate.ExecutionResult(sql.NotPredicates(p))
}
