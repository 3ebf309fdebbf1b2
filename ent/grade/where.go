// Code generated by ent, DO NOT EDIT.

package grade

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/promptlens/promptlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Grade {
	return predicate.Grade(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Grade {
	return predicate.Grade(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Grade {
	return predicate.Grade(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Grade {
	return predicate.Grade(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Grade {
	return predicate.Grade(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Grade {
	return predicate.Grade(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Grade {
	return predicate.Grade(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Grade {
	return predicate.Grade(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Grade {
	return predicate.Grade(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Grade {
	return predicate.Grade(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Grade {
	return predicate.Grade(sql.FieldContainsFold(FieldID, id))
}

// GraderID applies equality check predicate on the "grader_id" field. It's identical to GraderIDEQ.
func GraderID(v string) predicate.Grade {
	return predicate.Grade(sql.FieldEQ(FieldGraderID, v))
}

// TraceID applies equality check predicate on the "trace_id" field. It's identical to TraceIDEQ.
func TraceID(v string) predicate.Grade {
	return predicate.Grade(sql.FieldEQ(FieldTraceID, v))
}

// ExecutionResultID applies equality check predicate on the "execution_result_id" field. It's identical to ExecutionResultIDEQ.
func ExecutionResultID(v string) predicate.Grade {
	return predicate.Grade(sql.FieldEQ(FieldExecutionResultID, v))
}

// ScoreFloat applies equality check predicate on the "score_float" field. It's identical to ScoreFloatEQ.
func ScoreFloat(v float64) predicate.Grade {
	return predicate.Grade(sql.FieldEQ(FieldScoreFloat, v))
}

// ScoreBoolean applies equality check predicate on the "score_boolean" field. It's identical to ScoreBooleanEQ.
func ScoreBoolean(v bool) predicate.Grade {
	return predicate.Grade(sql.FieldEQ(FieldScoreBoolean, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.Grade {
	return predicate.Grade(sql.FieldEQ(FieldReasoning, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Grade {
	return predicate.Grade(sql.FieldEQ(FieldConfidence, v))
}

// PromptTokens applies equality check predicate on the "prompt_tokens" field. It's identical to PromptTokensEQ.
func PromptTokens(v int) predicate.Grade {
	return predicate.Grade(sql.FieldEQ(FieldPromptTokens, v))
}

// CompletionTokens applies equality check predicate on the "completion_tokens" field. It's identical to CompletionTokensEQ.
func CompletionTokens(v int) predicate.Grade {
	return predicate.Grade(sql.FieldEQ(FieldCompletionTokens, v))
}

// TotalTokens applies equality check predicate on the "total_tokens" field. It's identical to TotalTokensEQ.
func TotalTokens(v int) predicate.Grade {
	return predicate.Grade(sql.FieldEQ(FieldTotalTokens, v))
}

// GradingStartedAt applies equality check predicate on the "grading_started_at" field. It's identical to GradingStartedAtEQ.
func GradingStartedAt(v time.Time) predicate.Grade {
	return predicate.Grade(sql.FieldEQ(FieldGradingStartedAt, v))
}

// GradingCompletedAt applies equality check predicate on the "grading_completed_at" field. It's identical to GradingCompletedAtEQ.
func GradingCompletedAt(v time.Time) predicate.Grade {
	return predicate.Grade(sql.FieldEQ(FieldGradingCompletedAt, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.Grade {
	return predicate.Grade(sql.FieldEQ(FieldError, v))
}

// GraderIDEQ applies the EQ predicate on the "grader_id" field.
func GraderIDEQ(v string) predicate.Grade {
	return predicate.Grade(sql.FieldEQ(FieldGraderID, v))
}

// GraderIDNEQ applies the NEQ predicate on the "grader_id" field.
func GraderIDNEQ(v string) predicate.Grade {
	return predicate.Grade(sql.FieldNEQ(FieldGraderID, v))
}

// GraderIDIn applies the In predicate on the "grader_id" field.
func GraderIDIn(vs ...string) predicate.Grade {
	return predicate.Grade(sql.FieldIn(FieldGraderID, vs...))
}

// GraderIDNotIn applies the NotIn predicate on the "grader_id" field.
func GraderIDNotIn(vs ...string) predicate.Grade {
	return predicate.Grade(sql.FieldNotIn(FieldGraderID, vs...))
}

// GraderIDGT applies the GT predicate on the "grader_id" field.
func GraderIDGT(v string) predicate.Grade {
	return predicate.Grade(sql.FieldGT(FieldGraderID, v))
}

// GraderIDGTE applies the GTE predicate on the "grader_id" field.
func GraderIDGTE(v string) predicate.Grade {
	return predicate.Grade(sql.FieldGTE(FieldGraderID, v))
}

// GraderIDLT applies the LT predicate on the "grader_id" field.
func GraderIDLT(v string) predicate.Grade {
	return predicate.Grade(sql.FieldLT(FieldGraderID, v))
}

// GraderIDLTE applies the LTE predicate on the "grader_id" field.
func GraderIDLTE(v string) predicate.Grade {
	return predicate.Grade(sql.FieldLTE(FieldGraderID, v))
}

// GraderIDContains applies the Contains predicate on the "grader_id" field.
func GraderIDContains(v string) predicate.Grade {
	return predicate.Grade(sql.FieldContains(FieldGraderID, v))
}

// GraderIDHasPrefix applies the HasPrefix predicate on the "grader_id" field.
func GraderIDHasPrefix(v string) predicate.Grade {
	return predicate.Grade(sql.FieldHasPrefix(FieldGraderID, v))
}

// GraderIDHasSuffix applies the HasSuffix predicate on the "grader_id" field.
func GraderIDHasSuffix(v string) predicate.Grade {
	return predicate.Grade(sql.FieldHasSuffix(FieldGraderID, v))
}

// GraderIDEqualFold applies the EqualFold predicate on the "grader_id" field.
func GraderIDEqualFold(v string) predicate.Grade {
	return predicate.Grade(sql.FieldEqualFold(FieldGraderID, v))
}

// GraderIDContainsFold applies the ContainsFold predicate on the "grader_id" field.
func GraderIDContainsFold(v string) predicate.Grade {
	return predicate.Grade(sql.FieldContainsFold(FieldGraderID, v))
}

// TraceIDEQ applies the EQ predicate on the "trace_id" field.
func TraceIDEQ(v string) predicate.Grade {
	return predicate.Grade(sql.FieldEQ(FieldTraceID, v))
}

// TraceIDNEQ applies the NEQ predicate on the "trace_id" field.
func TraceIDNEQ(v string) predicate.Grade {
	return predicate.Grade(sql.FieldNEQ(FieldTraceID, v))
}

// TraceIDIn applies the In predicate on the "trace_id" field.
func TraceIDIn(vs ...string) predicate.Grade {
	return predicate.Grade(sql.FieldIn(FieldTraceID, vs...))
}

// TraceIDNotIn applies the NotIn predicate on the "trace_id" field.
func TraceIDNotIn(vs ...string) predicate.Grade {
	return predicate.Grade(sql.FieldNotIn(FieldTraceID, vs...))
}

// TraceIDGT applies the GT predicate on the "trace_id" field.
func TraceIDGT(v string) predicate.Grade {
	return predicate.Grade(sql.FieldGT(FieldTraceID, v))
}

// TraceIDGTE applies the GTE predicate on the "trace_id" field.
func TraceIDGTE(v string) predicate.Grade {
	return predicate.Grade(sql.FieldGTE(FieldTraceID, v))
}

// TraceIDLT applies the LT predicate on the "trace_id" field.
func TraceIDLT(v string) predicate.Grade {
	return predicate.Grade(sql.FieldLT(FieldTraceID, v))
}

// TraceIDLTE applies the LTE predicate on the "trace_id" field.
func TraceIDLTE(v string) predicate.Grade {
	return predicate.Grade(sql.FieldLTE(FieldTraceID, v))
}

// TraceIDContains applies the Contains predicate on the "trace_id" field.
func TraceIDContains(v string) predicate.Grade {
	return predicate.Grade(sql.FieldContains(FieldTraceID, v))
}

// TraceIDHasPrefix applies the HasPrefix predicate on the "trace_id" field.
func TraceIDHasPrefix(v string) predicate.Grade {
	return predicate.Grade(sql.FieldHasPrefix(FieldTraceID, v))
}

// TraceIDHasSuffix applies the HasSuffix predicate on the "trace_id" field.
func TraceIDHasSuffix(v string) predicate.Grade {
	return predicate.Grade(sql.FieldHasSuffix(FieldTraceID, v))
}

// TraceIDIsNil applies the IsNil predicate on the "trace_id" field.
func TraceIDIsNil() predicate.Grade {
	return predicate.Grade(sql.FieldIsNull(FieldTraceID))
}

// TraceIDNotNil applies the NotNil predicate on the "trace_id" field.
func TraceIDNotNil() predicate.Grade {
	return predicate.Grade(sql.FieldNotNull(FieldTraceID))
}

// TraceIDEqualFold applies the EqualFold predicate on the "trace_id" field.
func TraceIDEqualFold(v string) predicate.Grade {
	return predicate.Grade(sql.FieldEqualFold(FieldTraceID, v))
}

// TraceIDContainsFold applies the ContainsFold predicate on the "trace_id" field.
func TraceIDContainsFold(v string) predicate.Grade {
	return predicate.Grade(sql.FieldContainsFold(FieldTraceID, v))
}

// ExecutionResultIDEQ applies the EQ predicate on the "execution_result_id" field.
func ExecutionResultIDEQ(v string) predicate.Grade {
	return predicate.Grade(sql.FieldEQ(FieldExecutionResultID, v))
}

// ExecutionResultIDNEQ applies the NEQ predicate on the "execution_result_id" field.
func ExecutionResultIDNEQ(v string) predicate.Grade {
	return predicate.Grade(sql.FieldNEQ(FieldExecutionResultID, v))
}

// ExecutionResultIDIn applies the In predicate on the "execution_result_id" field.
func ExecutionResultIDIn(vs ...string) predicate.Grade {
	return predicate.Grade(sql.FieldIn(FieldExecutionResultID, vs...))
}

// ExecutionResultIDNotIn applies the NotIn predicate on the "execution_result_id" field.
func ExecutionResultIDNotIn(vs ...string) predicate.Grade {
	return predicate.Grade(sql.FieldNotIn(FieldExecutionResultID, vs...))
}

// ExecutionResultIDGT applies the GT predicate on the "execution_result_id" field.
func ExecutionResultIDGT(v string) predicate.Grade {
	return predicate.Grade(sql.FieldGT(FieldExecutionResultID, v))
}

// ExecutionResultIDGTE applies the GTE predicate on the "execution_result_id" field.
func ExecutionResultIDGTE(v string) predicate.Grade {
	return predicate.Grade(sql.FieldGTE(FieldExecutionResultID, v))
}

// ExecutionResultIDLT applies the LT predicate on the "execution_result_id" field.
func ExecutionResultIDLT(v string) predicate.Grade {
	return predicate.Grade(sql.FieldLT(FieldExecutionResultID, v))
}

// ExecutionResultIDLTE applies the LTE predicate on the "execution_result_id" field.
func ExecutionResultIDLTE(v string) predicate.Grade {
	return predicate.Grade(sql.FieldLTE(FieldExecutionResultID, v))
}

// ExecutionResultIDContains applies the Contains predicate on the "execution_result_id" field.
func ExecutionResultIDContains(v string) predicate.Grade {
	return predicate.Grade(sql.FieldContains(FieldExecutionResultID, v))
}

// ExecutionResultIDHasPrefix applies the HasPrefix predicate on the "execution_result_id" field.
func ExecutionResultIDHasPrefix(v string) predicate.Grade {
	return predicate.Grade(sql.FieldHasPrefix(FieldExecutionResultID, v))
}

// ExecutionResultIDHasSuffix applies the HasSuffix predicate on the "execution_result_id" field.
func ExecutionResultIDHasSuffix(v string) predicate.Grade {
	return predicate.Grade(sql.FieldHasSuffix(FieldExecutionResultID, v))
}

// ExecutionResultIDIsNil applies the IsNil predicate on the "execution_result_id" field.
func ExecutionResultIDIsNil() predicate.Grade {
	return predicate.Grade(sql.FieldIsNull(FieldExecutionResultID))
}

// ExecutionResultIDNotNil applies the NotNil predicate on the "execution_result_id" field.
func ExecutionResultIDNotNil() predicate.Grade {
	return predicate.Grade(sql.FieldNotNull(FieldExecutionResultID))
}

// ExecutionResultIDEqualFold applies the EqualFold predicate on the "execution_result_id" field.
func ExecutionResultIDEqualFold(v string) predicate.Grade {
	return predicate.Grade(sql.FieldEqualFold(FieldExecutionResultID, v))
}

// ExecutionResultIDContainsFold applies the ContainsFold predicate on the "execution_result_id" field.
func ExecutionResultIDContainsFold(v string) predicate.Grade {
	return predicate.Grade(sql.FieldContainsFold(FieldExecutionResultID, v))
}

// ScoreFloatEQ applies the EQ predicate on the "score_float" field.
func ScoreFloatEQ(v float64) predicate.Grade {
	return predicate.Grade(sql.FieldEQ(FieldScoreFloat, v))
}

// ScoreFloatNEQ applies the NEQ predicate on the "score_float" field.
func ScoreFloatNEQ(v float64) predicate.Grade {
	return predicate.Grade(sql.FieldNEQ(FieldScoreFloat, v))
}

// ScoreFloatIn applies the In predicate on the "score_float" field.
func ScoreFloatIn(vs ...float64) predicate.Grade {
	return predicate.Grade(sql.FieldIn(FieldScoreFloat, vs...))
}

// ScoreFloatNotIn applies the NotIn predicate on the "score_float" field.
func ScoreFloatNotIn(vs ...float64) predicate.Grade {
	return predicate.Grade(sql.FieldNotIn(FieldScoreFloat, vs...))
}

// ScoreFloatGT applies the GT predicate on the "score_float" field.
func ScoreFloatGT(v float64) predicate.Grade {
	return predicate.Grade(sql.FieldGT(FieldScoreFloat, v))
}

// ScoreFloatGTE applies the GTE predicate on the "score_float" field.
func ScoreFloatGTE(v float64) predicate.Grade {
	return predicate.Grade(sql.FieldGTE(FieldScoreFloat, v))
}

// ScoreFloatLT applies the LT predicate on the "score_float" field.
func ScoreFloatLT(v float64) predicate.Grade {
	return predicate.Grade(sql.FieldLT(FieldScoreFloat, v))
}

// ScoreFloatLTE applies the LTE predicate on the "score_float" field.
func ScoreFloatLTE(v float64) predicate.Grade {
	return predicate.Grade(sql.FieldLTE(FieldScoreFloat, v))
}

// ScoreFloatIsNil applies the IsNil predicate on the "score_float" field.
func ScoreFloatIsNil() predicate.Grade {
	return predicate.Grade(sql.FieldIsNull(FieldScoreFloat))
}

// ScoreFloatNotNil applies the NotNil predicate on the "score_float" field.
func ScoreFloatNotNil() predicate.Grade {
	return predicate.Grade(sql.FieldNotNull(FieldScoreFloat))
}

// ScoreBooleanEQ applies the EQ predicate on the "score_boolean" field.
func ScoreBooleanEQ(v bool) predicate.Grade {
	return predicate.Grade(sql.FieldEQ(FieldScoreBoolean, v))
}

// ScoreBooleanNEQ applies the NEQ predicate on the "score_boolean" field.
func ScoreBooleanNEQ(v bool) predicate.Grade {
	return predicate.Grade(sql.FieldNEQ(FieldScoreBoolean, v))
}

// ScoreBooleanIsNil applies the IsNil predicate on the "score_boolean" field.
func ScoreBooleanIsNil() predicate.Grade {
	return predicate.Grade(sql.FieldIsNull(FieldScoreBoolean))
}

// ScoreBooleanNotNil applies the NotNil predicate on the "score_boolean" field.
func ScoreBooleanNotNil() predicate.Grade {
	return predicate.Grade(sql.FieldNotNull(FieldScoreBoolean))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.Grade {
	return predicate.Grade(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.Grade {
	return predicate.Grade(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.Grade {
	return predicate.Grade(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.Grade {
	return predicate.Grade(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.Grade {
	return predicate.Grade(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.Grade {
	return predicate.Grade(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.Grade {
	return predicate.Grade(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.Grade {
	return predicate.Grade(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.Grade {
	return predicate.Grade(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.Grade {
	return predicate.Grade(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.Grade {
	return predicate.Grade(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningIsNil applies the IsNil predicate on the "reasoning" field.
func ReasoningIsNil() predicate.Grade {
	return predicate.Grade(sql.FieldIsNull(FieldReasoning))
}

// ReasoningNotNil applies the NotNil predicate on the "reasoning" field.
func ReasoningNotNil() predicate.Grade {
	return predicate.Grade(sql.FieldNotNull(FieldReasoning))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.Grade {
	return predicate.Grade(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.Grade {
	return predicate.Grade(sql.FieldContainsFold(FieldReasoning, v))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Grade {
	return predicate.Grade(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Grade {
	return predicate.Grade(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Grade {
	return predicate.Grade(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Grade {
	return predicate.Grade(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Grade {
	return predicate.Grade(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Grade {
	return predicate.Grade(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Grade {
	return predicate.Grade(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Grade {
	return predicate.Grade(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.Grade {
	return predicate.Grade(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.Grade {
	return predicate.Grade(sql.FieldNotNull(FieldConfidence))
}

// PromptTokensEQ applies the EQ predicate on the "prompt_tokens" field.
func PromptTokensEQ(v int) predicate.Grade {
	return predicate.Grade(sql.FieldEQ(FieldPromptTokens, v))
}

// PromptTokensNEQ applies the NEQ predicate on the "prompt_tokens" field.
func PromptTokensNEQ(v int) predicate.Grade {
	return predicate.Grade(sql.FieldNEQ(FieldPromptTokens, v))
}

// PromptTokensIn applies the In predicate on the "prompt_tokens" field.
func PromptTokensIn(vs ...int) predicate.Grade {
	return predicate.Grade(sql.FieldIn(FieldPromptTokens, vs...))
}

// PromptTokensNotIn applies the NotIn predicate on the "prompt_tokens" field.
func PromptTokensNotIn(vs ...int) predicate.Grade {
	return predicate.Grade(sql.FieldNotIn(FieldPromptTokens, vs...))
}

// PromptTokensGT applies the GT predicate on the "prompt_tokens" field.
func PromptTokensGT(v int) predicate.Grade {
	return predicate.Grade(sql.FieldGT(FieldPromptTokens, v))
}

// PromptTokensGTE applies the GTE predicate on the "prompt_tokens" field.
func PromptTokensGTE(v int) predicate.Grade {
	return predicate.Grade(sql.FieldGTE(FieldPromptTokens, v))
}

// PromptTokensLT applies the LT predicate on the "prompt_tokens" field.
func PromptTokensLT(v int) predicate.Grade {
	return predicate.Grade(sql.FieldLT(FieldPromptTokens, v))
}

// PromptTokensLTE applies the LTE predicate on the "prompt_tokens" field.
func PromptTokensLTE(v int) predicate.Grade {
	return predicate.Grade(sql.FieldLTE(FieldPromptTokens, v))
}

// PromptTokensIsNil applies the IsNil predicate on the "prompt_tokens" field.
func PromptTokensIsNil() predicate.Grade {
	return predicate.Grade(sql.FieldIsNull(FieldPromptTokens))
}

// PromptTokensNotNil applies the NotNil predicate on the "prompt_tokens" field.
func PromptTokensNotNil() predicate.Grade {
	return predicate.Grade(sql.FieldNotNull(FieldPromptTokens))
}

// CompletionTokensEQ applies the EQ predicate on the "completion_tokens" field.
func CompletionTokensEQ(v int) predicate.Grade {
	return predicate.Grade(sql.FieldEQ(FieldCompletionTokens, v))
}

// CompletionTokensNEQ applies the NEQ predicate on the "completion_tokens" field.
func CompletionTokensNEQ(v int) predicate.Grade {
	return predicate.Grade(sql.FieldNEQ(FieldCompletionTokens, v))
}

// CompletionTokensIn applies the In predicate on the "completion_tokens" field.
func CompletionTokensIn(vs ...int) predicate.Grade {
	return predicate.Grade(sql.FieldIn(FieldCompletionTokens, vs...))
}

// CompletionTokensNotIn applies the NotIn predicate on the "completion_tokens" field.
func CompletionTokensNotIn(vs ...int) predicate.Grade {
	return predicate.Grade(sql.FieldNotIn(FieldCompletionTokens, vs...))
}

// CompletionTokensGT applies the GT predicate on the "completion_tokens" field.
func CompletionTokensGT(v int) predicate.Grade {
	return predicate.Grade(sql.FieldGT(FieldCompletionTokens, v))
}

// CompletionTokensGTE applies the GTE predicate on the "completion_tokens" field.
func CompletionTokensGTE(v int) predicate.Grade {
	return predicate.Grade(sql.FieldGTE(FieldCompletionTokens, v))
}

// CompletionTokensLT applies the LT predicate on the "completion_tokens" field.
func CompletionTokensLT(v int) predicate.Grade {
	return predicate.Grade(sql.FieldLT(FieldCompletionTokens, v))
}

// CompletionTokensLTE applies the LTE predicate on the "completion_tokens" field.
func CompletionTokensLTE(v int) predicate.Grade {
	return predicate.Grade(sql.FieldLTE(FieldCompletionTokens, v))
}

// CompletionTokensIsNil applies the IsNil predicate on the "completion_tokens" field.
func CompletionTokensIsNil() predicate.Grade {
	return predicate.Grade(sql.FieldIsNull(FieldCompletionTokens))
}

// CompletionTokensNotNil applies the NotNil predicate on the "completion_tokens" field.
func CompletionTokensNotNil() predicate.Grade {
	return predicate.Grade(sql.FieldNotNull(FieldCompletionTokens))
}

// TotalTokensEQ applies the EQ predicate on the "total_tokens" field.
func TotalTokensEQ(v int) predicate.Grade {
	return predicate.Grade(sql.FieldEQ(FieldTotalTokens, v))
}

// TotalTokensNEQ applies the NEQ predicate on the "total_tokens" field.
func TotalTokensNEQ(v int) predicate.Grade {
	return predicate.Grade(sql.FieldNEQ(FieldTotalTokens, v))
}

// TotalTokensIn applies the In predicate on the "total_tokens" field.
func TotalTokensIn(vs ...int) predicate.Grade {
	return predicate.Grade(sql.FieldIn(FieldTotalTokens, vs...))
}

// TotalTokensNotIn applies the NotIn predicate on the "total_tokens" field.
func TotalTokensNotIn(vs ...int) predicate.Grade {
	return predicate.Grade(sql.FieldNotIn(FieldTotalTokens, vs...))
}

// TotalTokensGT applies the GT predicate on the "total_tokens" field.
func TotalTokensGT(v int) predicate.Grade {
	return predicate.Grade(sql.FieldGT(FieldTotalTokens, v))
}

// TotalTokensGTE applies the GTE predicate on the "total_tokens" field.
func TotalTokensGTE(v int) predicate.Grade {
	return predicate.Grade(sql.FieldGTE(FieldTotalTokens, v))
}

// TotalTokensLT applies the LT predicate on the "total_tokens" field.
func TotalTokensLT(v int) predicate.Grade {
	return predicate.Grade(sql.FieldLT(FieldTotalTokens, v))
}

// TotalTokensLTE applies the LTE predicate on the "total_tokens" field.
func TotalTokensLTE(v int) predicate.Grade {
	return predicate.Grade(sql.FieldLTE(FieldTotalTokens, v))
}

// TotalTokensIsNil applies the IsNil predicate on the "total_tokens" field.
func TotalTokensIsNil() predicate.Grade {
	return predicate.Grade(sql.FieldIsNull(FieldTotalTokens))
}

// TotalTokensNotNil applies the NotNil predicate on the "total_tokens" field.
func TotalTokensNotNil() predicate.Grade {
	return predicate.Grade(sql.FieldNotNull(FieldTotalTokens))
}

// GradingStartedAtEQ applies the EQ predicate on the "grading_started_at" field.
func GradingStartedAtEQ(v time.Time) predicate.Grade {
	return predicate.Grade(sql.FieldEQ(FieldGradingStartedAt, v))
}

// GradingStartedAtNEQ applies the NEQ predicate on the "grading_started_at" field.
func GradingStartedAtNEQ(v time.Time) predicate.Grade {
	return predicate.Grade(sql.FieldNEQ(FieldGradingStartedAt, v))
}

// GradingStartedAtIn applies the In predicate on the "grading_started_at" field.
func GradingStartedAtIn(vs ...time.Time) predicate.Grade {
	return predicate.Grade(sql.FieldIn(FieldGradingStartedAt, vs...))
}

// GradingStartedAtNotIn applies the NotIn predicate on the "grading_started_at" field.
func GradingStartedAtNotIn(vs ...time.Time) predicate.Grade {
	return predicate.Grade(sql.FieldNotIn(FieldGradingStartedAt, vs...))
}

// GradingStartedAtGT applies the GT predicate on the "grading_started_at" field.
func GradingStartedAtGT(v time.Time) predicate.Grade {
	return predicate.Grade(sql.FieldGT(FieldGradingStartedAt, v))
}

// GradingStartedAtGTE applies the GTE predicate on the "grading_started_at" field.
func GradingStartedAtGTE(v time.Time) predicate.Grade {
	return predicate.Grade(sql.FieldGTE(FieldGradingStartedAt, v))
}

// GradingStartedAtLT applies the LT predicate on the "grading_started_at" field.
func GradingStartedAtLT(v time.Time) predicate.Grade {
	return predicate.Grade(sql.FieldLT(FieldGradingStartedAt, v))
}

// GradingStartedAtLTE applies the LTE predicate on the "grading_started_at" field.
func GradingStartedAtLTE(v time.Time) predicate.Grade {
	return predicate.Grade(sql.FieldLTE(FieldGradingStartedAt, v))
}

// GradingCompletedAtEQ applies the EQ predicate on the "grading_completed_at" field.
func GradingCompletedAtEQ(v time.Time) predicate.Grade {
	return predicate.Grade(sql.FieldEQ(FieldGradingCompletedAt, v))
}

// GradingCompletedAtNEQ applies the NEQ predicate on the "grading_completed_at" field.
func GradingCompletedAtNEQ(v time.Time) predicate.Grade {
	return predicate.Grade(sql.FieldNEQ(FieldGradingCompletedAt, v))
}

// GradingCompletedAtIn applies the In predicate on the "grading_completed_at" field.
func GradingCompletedAtIn(vs ...time.Time) predicate.Grade {
	return predicate.Grade(sql.FieldIn(FieldGradingCompletedAt, vs...))
}

// GradingCompletedAtNotIn applies the NotIn predicate on the "grading_completed_at" field.
func GradingCompletedAtNotIn(vs ...time.Time) predicate.Grade {
	return predicate.Grade(sql.FieldNotIn(FieldGradingCompletedAt, vs...))
}

// GradingCompletedAtGT applies the GT predicate on the "grading_completed_at" field.
func GradingCompletedAtGT(v time.Time) predicate.Grade {
	return predicate.Grade(sql.FieldGT(FieldGradingCompletedAt, v))
}

// GradingCompletedAtGTE applies the GTE predicate on the "grading_completed_at" field.
func GradingCompletedAtGTE(v time.Time) predicate.Grade {
	return predicate.Grade(sql.FieldGTE(FieldGradingCompletedAt, v))
}

// GradingCompletedAtLT applies the LT predicate on the "grading_completed_at" field.
func GradingCompletedAtLT(v time.Time) predicate.Grade {
	return predicate.Grade(sql.FieldLT(FieldGradingCompletedAt, v))
}

// GradingCompletedAtLTE applies the LTE predicate on the "grading_completed_at" field.
func GradingCompletedAtLTE(v time.Time) predicate.Grade {
	return predicate.Grade(sql.FieldLTE(FieldGradingCompletedAt, v))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.Grade {
	return predicate.Grade(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.Grade {
	return predicate.Grade(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.Grade {
	return predicate.Grade(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.Grade {
	return predicate.Grade(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.Grade {
	return predicate.Grade(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.Grade {
	return predicate.Grade(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.Grade {
	return predicate.Grade(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.Grade {
	return predicate.Grade(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.Grade {
	return predicate.Grade(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.Grade {
	return predicate.Grade(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.Grade {
	return predicate.Grade(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.Grade {
	return predicate.Grade(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.Grade {
	return predicate.Grade(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.Grade {
	return predicate.Grade(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.Grade {
	return predicate.Grade(sql.FieldContainsFold(FieldError, v))
}

// HasGrader applies the HasEdge predicate on the "grader" edge.
func HasGrader() predicate.Grade {
	return predicate.Grade(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, GraderTable, GraderColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGraderWith applies the HasEdge predicate on the "grader" edge with a given conditions (other predicates).
func HasGraderWith(preds ...predicate.Grader) predicate.Grade {
	return predicate.Grade(func(s *sql.Selector) {
		step := newGraderStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTrace applies the HasEdge predicate on the "trace" edge.
func HasTrace() predicate.Grade {
	return predicate.Grade(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TraceTable, TraceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTraceWith applies the HasEdge predicate on the "trace" edge with a given conditions (other predicates).
func HasTraceWith(preds ...predicate.Trace) predicate.Grade {
	return predicate.Grade(func(s *sql.Selector) {
		step := newTraceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasExecutionResult applies the HasEdge predicate on the "execution_result" edge.
func HasExecutionResult() predicate.Grade {
	return predicate.Grade(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ExecutionResultTable, ExecutionResultColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionResultWith applies the HasEdge predicate on the "execution_result" edge with a given conditions (other predicates).
func HasExecutionResultWith(preds ...predicate.ExecutionResult) predicate.Grade {
	return predicate.Grade(func(s *sql.Selector) {
		step := newExecutionResultStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Grade) predicate.Grade {
	return predicate.Grade(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Grade) predicate.Grade {
	return predicate.Grade(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Grade) predicate.Grade {
	return predicate.Grade(sql.NotPredicates(p))
}
