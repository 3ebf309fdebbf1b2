// Code generated by ent, DO NOT EDIT.

package trace

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/promptlens/promptlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Trace {
	return predicate.Trace(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Trace {
	return predicate.Trace(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Trace {
	return predicate.Trace(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Trace {
	return predicate.Trace(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Trace {
	return predicate.Trace(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Trace {
	return predicate.Trace(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Trace {
	return predicate.Trace(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Trace {
	return predicate.Trace(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Trace {
	return predicate.Trace(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldProjectID, v))
}

// HTTPTraceID applies equality check predicate on the "http_trace_id" field. It's identical to HTTPTraceIDEQ.
func HTTPTraceID(v string) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldHTTPTraceID, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldModel, v))
}

// Path applies equality check predicate on the "path" field. It's identical to PathEQ.
func Path(v string) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldPath, v))
}

// Temperature applies equality check predicate on the "temperature" field. It's identical to TemperatureEQ.
func Temperature(v float64) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldTemperature, v))
}

// MaxTokens applies equality check predicate on the "max_tokens" field. It's identical to MaxTokensEQ.
func MaxTokens(v int) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldMaxTokens, v))
}

// FinishReason applies equality check predicate on the "finish_reason" field. It's identical to FinishReasonEQ.
func FinishReason(v string) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldFinishReason, v))
}

// PromptTokens applies equality check predicate on the "prompt_tokens" field. It's identical to PromptTokensEQ.
func PromptTokens(v int) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldPromptTokens, v))
}

// CompletionTokens applies equality check predicate on the "completion_tokens" field. It's identical to CompletionTokensEQ.
func CompletionTokens(v int) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldCompletionTokens, v))
}

// CachedTokens applies equality check predicate on the "cached_tokens" field. It's identical to CachedTokensEQ.
func CachedTokens(v int) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldCachedTokens, v))
}

// ReasoningTokens applies equality check predicate on the "reasoning_tokens" field. It's identical to ReasoningTokensEQ.
func ReasoningTokens(v int) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldReasoningTokens, v))
}

// TotalTokens applies equality check predicate on the "total_tokens" field. It's identical to TotalTokensEQ.
func TotalTokens(v int) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldTotalTokens, v))
}

// SystemFingerprint applies equality check predicate on the "system_fingerprint" field. It's identical to SystemFingerprintEQ.
func SystemFingerprint(v string) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldSystemFingerprint, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldCompletedAt, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldError, v))
}

// ImplementationID applies equality check predicate on the "implementation_id" field. It's identical to ImplementationIDEQ.
func ImplementationID(v string) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldImplementationID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldCreatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Trace {
	return predicate.Trace(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Trace {
	return predicate.Trace(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Trace {
	return predicate.Trace(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Trace {
	return predicate.Trace(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Trace {
	return predicate.Trace(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Trace {
	return predicate.Trace(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Trace {
	return predicate.Trace(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Trace {
	return predicate.Trace(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Trace {
	return predicate.Trace(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Trace {
	return predicate.Trace(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Trace {
	return predicate.Trace(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Trace {
	return predicate.Trace(sql.FieldContainsFold(FieldProjectID, v))
}

// HTTPTraceIDEQ applies the EQ predicate on the "http_trace_id" field.
func HTTPTraceIDEQ(v string) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldHTTPTraceID, v))
}

// HTTPTraceIDNEQ applies the NEQ predicate on the "http_trace_id" field.
func HTTPTraceIDNEQ(v string) predicate.Trace {
	return predicate.Trace(sql.FieldNEQ(FieldHTTPTraceID, v))
}

// HTTPTraceIDIn applies the In predicate on the "http_trace_id" field.
func HTTPTraceIDIn(vs ...string) predicate.Trace {
	return predicate.Trace(sql.FieldIn(FieldHTTPTraceID, vs...))
}

// HTTPTraceIDNotIn applies the NotIn predicate on the "http_trace_id" field.
func HTTPTraceIDNotIn(vs ...string) predicate.Trace {
	return predicate.Trace(sql.FieldNotIn(FieldHTTPTraceID, vs...))
}

// HTTPTraceIDGT applies the GT predicate on the "http_trace_id" field.
func HTTPTraceIDGT(v string) predicate.Trace {
	return predicate.Trace(sql.FieldGT(FieldHTTPTraceID, v))
}

// HTTPTraceIDGTE applies the GTE predicate on the "http_trace_id" field.
func HTTPTraceIDGTE(v string) predicate.Trace {
	return predicate.Trace(sql.FieldGTE(FieldHTTPTraceID, v))
}

// HTTPTraceIDLT applies the LT predicate on the "http_trace_id" field.
func HTTPTraceIDLT(v string) predicate.Trace {
	return predicate.Trace(sql.FieldLT(FieldHTTPTraceID, v))
}

// HTTPTraceIDLTE applies the LTE predicate on the "http_trace_id" field.
func HTTPTraceIDLTE(v string) predicate.Trace {
	return predicate.Trace(sql.FieldLTE(FieldHTTPTraceID, v))
}

// HTTPTraceIDContains applies the Contains predicate on the "http_trace_id" field.
func HTTPTraceIDContains(v string) predicate.Trace {
	return predicate.Trace(sql.FieldContains(FieldHTTPTraceID, v))
}

// HTTPTraceIDHasPrefix applies the HasPrefix predicate on the "http_trace_id" field.
func HTTPTraceIDHasPrefix(v string) predicate.Trace {
	return predicate.Trace(sql.FieldHasPrefix(FieldHTTPTraceID, v))
}

// HTTPTraceIDHasSuffix applies the HasSuffix predicate on the "http_trace_id" field.
func HTTPTraceIDHasSuffix(v string) predicate.Trace {
	return predicate.Trace(sql.FieldHasSuffix(FieldHTTPTraceID, v))
}

// HTTPTraceIDIsNil applies the IsNil predicate on the "http_trace_id" field.
func HTTPTraceIDIsNil() predicate.Trace {
	return predicate.Trace(sql.FieldIsNull(FieldHTTPTraceID))
}

// HTTPTraceIDNotNil applies the NotNil predicate on the "http_trace_id" field.
func HTTPTraceIDNotNil() predicate.Trace {
	return predicate.Trace(sql.FieldNotNull(FieldHTTPTraceID))
}

// HTTPTraceIDEqualFold applies the EqualFold predicate on the "http_trace_id" field.
func HTTPTraceIDEqualFold(v string) predicate.Trace {
	return predicate.Trace(sql.FieldEqualFold(FieldHTTPTraceID, v))
}

// HTTPTraceIDContainsFold applies the ContainsFold predicate on the "http_trace_id" field.
func HTTPTraceIDContainsFold(v string) predicate.Trace {
	return predicate.Trace(sql.FieldContainsFold(FieldHTTPTraceID, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.Trace {
	return predicate.Trace(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.Trace {
	return predicate.Trace(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.Trace {
	return predicate.Trace(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.Trace {
	return predicate.Trace(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.Trace {
	return predicate.Trace(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.Trace {
	return predicate.Trace(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.Trace {
	return predicate.Trace(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.Trace {
	return predicate.Trace(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.Trace {
	return predicate.Trace(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.Trace {
	return predicate.Trace(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.Trace {
	return predicate.Trace(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.Trace {
	return predicate.Trace(sql.FieldContainsFold(FieldModel, v))
}

// PathEQ applies the EQ predicate on the "path" field.
func PathEQ(v string) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldPath, v))
}

// PathNEQ applies the NEQ predicate on the "path" field.
func PathNEQ(v string) predicate.Trace {
	return predicate.Trace(sql.FieldNEQ(FieldPath, v))
}

// PathIn applies the In predicate on the "path" field.
func PathIn(vs ...string) predicate.Trace {
	return predicate.Trace(sql.FieldIn(FieldPath, vs...))
}

// PathNotIn applies the NotIn predicate on the "path" field.
func PathNotIn(vs ...string) predicate.Trace {
	return predicate.Trace(sql.FieldNotIn(FieldPath, vs...))
}

// PathGT applies the GT predicate on the "path" field.
func PathGT(v string) predicate.Trace {
	return predicate.Trace(sql.FieldGT(FieldPath, v))
}

// PathGTE applies the GTE predicate on the "path" field.
func PathGTE(v string) predicate.Trace {
	return predicate.Trace(sql.FieldGTE(FieldPath, v))
}

// PathLT applies the LT predicate on the "path" field.
func PathLT(v string) predicate.Trace {
	return predicate.Trace(sql.FieldLT(FieldPath, v))
}

// PathLTE applies the LTE predicate on the "path" field.
func PathLTE(v string) predicate.Trace {
	return predicate.Trace(sql.FieldLTE(FieldPath, v))
}

// PathContains applies the Contains predicate on the "path" field.
func PathContains(v string) predicate.Trace {
	return predicate.Trace(sql.FieldContains(FieldPath, v))
}

// PathHasPrefix applies the HasPrefix predicate on the "path" field.
func PathHasPrefix(v string) predicate.Trace {
	return predicate.Trace(sql.FieldHasPrefix(FieldPath, v))
}

// PathHasSuffix applies the HasSuffix predicate on the "path" field.
func PathHasSuffix(v string) predicate.Trace {
	return predicate.Trace(sql.FieldHasSuffix(FieldPath, v))
}

// PathIsNil applies the IsNil predicate on the "path" field.
func PathIsNil() predicate.Trace {
	return predicate.Trace(sql.FieldIsNull(FieldPath))
}

// PathNotNil applies the NotNil predicate on the "path" field.
func PathNotNil() predicate.Trace {
	return predicate.Trace(sql.FieldNotNull(FieldPath))
}

// PathEqualFold applies the EqualFold predicate on the "path" field.
func PathEqualFold(v string) predicate.Trace {
	return predicate.Trace(sql.FieldEqualFold(FieldPath, v))
}

// PathContainsFold applies the ContainsFold predicate on the "path" field.
func PathContainsFold(v string) predicate.Trace {
	return predicate.Trace(sql.FieldContainsFold(FieldPath, v))
}

// OutputItemsIsNil applies the IsNil predicate on the "output_items" field.
func OutputItemsIsNil() predicate.Trace {
	return predicate.Trace(sql.FieldIsNull(FieldOutputItems))
}

// OutputItemsNotNil applies the NotNil predicate on the "output_items" field.
func OutputItemsNotNil() predicate.Trace {
	return predicate.Trace(sql.FieldNotNull(FieldOutputItems))
}

// ToolsIsNil applies the IsNil predicate on the "tools" field.
func ToolsIsNil() predicate.Trace {
	return predicate.Trace(sql.FieldIsNull(FieldTools))
}

// ToolsNotNil applies the NotNil predicate on the "tools" field.
func ToolsNotNil() predicate.Trace {
	return predicate.Trace(sql.FieldNotNull(FieldTools))
}

// ResponseSchemaIsNil applies the IsNil predicate on the "response_schema" field.
func ResponseSchemaIsNil() predicate.Trace {
	return predicate.Trace(sql.FieldIsNull(FieldResponseSchema))
}

// ResponseSchemaNotNil applies the NotNil predicate on the "response_schema" field.
func ResponseSchemaNotNil() predicate.Trace {
	return predicate.Trace(sql.FieldNotNull(FieldResponseSchema))
}

// TemperatureEQ applies the EQ predicate on the "temperature" field.
func TemperatureEQ(v float64) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldTemperature, v))
}

// TemperatureNEQ applies the NEQ predicate on the "temperature" field.
func TemperatureNEQ(v float64) predicate.Trace {
	return predicate.Trace(sql.FieldNEQ(FieldTemperature, v))
}

// TemperatureIn applies the In predicate on the "temperature" field.
func TemperatureIn(vs ...float64) predicate.Trace {
	return predicate.Trace(sql.FieldIn(FieldTemperature, vs...))
}

// TemperatureNotIn applies the NotIn predicate on the "temperature" field.
func TemperatureNotIn(vs ...float64) predicate.Trace {
	return predicate.Trace(sql.FieldNotIn(FieldTemperature, vs...))
}

// TemperatureGT applies the GT predicate on the "temperature" field.
func TemperatureGT(v float64) predicate.Trace {
	return predicate.Trace(sql.FieldGT(FieldTemperature, v))
}

// TemperatureGTE applies the GTE predicate on the "temperature" field.
func TemperatureGTE(v float64) predicate.Trace {
	return predicate.Trace(sql.FieldGTE(FieldTemperature, v))
}

// TemperatureLT applies the LT predicate on the "temperature" field.
func TemperatureLT(v float64) predicate.Trace {
	return predicate.Trace(sql.FieldLT(FieldTemperature, v))
}

// TemperatureLTE applies the LTE predicate on the "temperature" field.
func TemperatureLTE(v float64) predicate.Trace {
	return predicate.Trace(sql.FieldLTE(FieldTemperature, v))
}

// TemperatureIsNil applies the IsNil predicate on the "temperature" field.
func TemperatureIsNil() predicate.Trace {
	return predicate.Trace(sql.FieldIsNull(FieldTemperature))
}

// TemperatureNotNil applies the NotNil predicate on the "temperature" field.
func TemperatureNotNil() predicate.Trace {
	return predicate.Trace(sql.FieldNotNull(FieldTemperature))
}

// MaxTokensEQ applies the EQ predicate on the "max_tokens" field.
func MaxTokensEQ(v int) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldMaxTokens, v))
}

// MaxTokensNEQ applies the NEQ predicate on the "max_tokens" field.
func MaxTokensNEQ(v int) predicate.Trace {
	return predicate.Trace(sql.FieldNEQ(FieldMaxTokens, v))
}

// MaxTokensIn applies the In predicate on the "max_tokens" field.
func MaxTokensIn(vs ...int) predicate.Trace {
	return predicate.Trace(sql.FieldIn(FieldMaxTokens, vs...))
}

// MaxTokensNotIn applies the NotIn predicate on the "max_tokens" field.
func MaxTokensNotIn(vs ...int) predicate.Trace {
	return predicate.Trace(sql.FieldNotIn(FieldMaxTokens, vs...))
}

// MaxTokensGT applies the GT predicate on the "max_tokens" field.
func MaxTokensGT(v int) predicate.Trace {
	return predicate.Trace(sql.FieldGT(FieldMaxTokens, v))
}

// MaxTokensGTE applies the GTE predicate on the "max_tokens" field.
func MaxTokensGTE(v int) predicate.Trace {
	return predicate.Trace(sql.FieldGTE(FieldMaxTokens, v))
}

// MaxTokensLT applies the LT predicate on the "max_tokens" field.
func MaxTokensLT(v int) predicate.Trace {
	return predicate.Trace(sql.FieldLT(FieldMaxTokens, v))
}

// MaxTokensLTE applies the LTE predicate on the "max_tokens" field.
func MaxTokensLTE(v int) predicate.Trace {
	return predicate.Trace(sql.FieldLTE(FieldMaxTokens, v))
}

// MaxTokensIsNil applies the IsNil predicate on the "max_tokens" field.
func MaxTokensIsNil() predicate.Trace {
	return predicate.Trace(sql.FieldIsNull(FieldMaxTokens))
}

// MaxTokensNotNil applies the NotNil predicate on the "max_tokens" field.
func MaxTokensNotNil() predicate.Trace {
	return predicate.Trace(sql.FieldNotNull(FieldMaxTokens))
}

// FinishReasonEQ applies the EQ predicate on the "finish_reason" field.
func FinishReasonEQ(v string) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldFinishReason, v))
}

// FinishReasonNEQ applies the NEQ predicate on the "finish_reason" field.
func FinishReasonNEQ(v string) predicate.Trace {
	return predicate.Trace(sql.FieldNEQ(FieldFinishReason, v))
}

// FinishReasonIn applies the In predicate on the "finish_reason" field.
func FinishReasonIn(vs ...string) predicate.Trace {
	return predicate.Trace(sql.FieldIn(FieldFinishReason, vs...))
}

// FinishReasonNotIn applies the NotIn predicate on the "finish_reason" field.
func FinishReasonNotIn(vs ...string) predicate.Trace {
	return predicate.Trace(sql.FieldNotIn(FieldFinishReason, vs...))
}

// FinishReasonGT applies the GT predicate on the "finish_reason" field.
func FinishReasonGT(v string) predicate.Trace {
	return predicate.Trace(sql.FieldGT(FieldFinishReason, v))
}

// FinishReasonGTE applies the GTE predicate on the "finish_reason" field.
func FinishReasonGTE(v string) predicate.Trace {
	return predicate.Trace(sql.FieldGTE(FieldFinishReason, v))
}

// FinishReasonLT applies the LT predicate on the "finish_reason" field.
func FinishReasonLT(v string) predicate.Trace {
	return predicate.Trace(sql.FieldLT(FieldFinishReason, v))
}

// FinishReasonLTE applies the LTE predicate on the "finish_reason" field.
func FinishReasonLTE(v string) predicate.Trace {
	return predicate.Trace(sql.FieldLTE(FieldFinishReason, v))
}

// FinishReasonContains applies the Contains predicate on the "finish_reason" field.
func FinishReasonContains(v string) predicate.Trace {
	return predicate.Trace(sql.FieldContains(FieldFinishReason, v))
}

// FinishReasonHasPrefix applies the HasPrefix predicate on the "finish_reason" field.
func FinishReasonHasPrefix(v string) predicate.Trace {
	return predicate.Trace(sql.FieldHasPrefix(FieldFinishReason, v))
}

// FinishReasonHasSuffix applies the HasSuffix predicate on the "finish_reason" field.
func FinishReasonHasSuffix(v string) predicate.Trace {
	return predicate.Trace(sql.FieldHasSuffix(FieldFinishReason, v))
}

// FinishReasonIsNil applies the IsNil predicate on the "finish_reason" field.
func FinishReasonIsNil() predicate.Trace {
	return predicate.Trace(sql.FieldIsNull(FieldFinishReason))
}

// FinishReasonNotNil applies the NotNil predicate on the "finish_reason" field.
func FinishReasonNotNil() predicate.Trace {
	return predicate.Trace(sql.FieldNotNull(FieldFinishReason))
}

// FinishReasonEqualFold applies the EqualFold predicate on the "finish_reason" field.
func FinishReasonEqualFold(v string) predicate.Trace {
	return predicate.Trace(sql.FieldEqualFold(FieldFinishReason, v))
}

// FinishReasonContainsFold applies the ContainsFold predicate on the "finish_reason" field.
func FinishReasonContainsFold(v string) predicate.Trace {
	return predicate.Trace(sql.FieldContainsFold(FieldFinishReason, v))
}

// PromptTokensEQ applies the EQ predicate on the "prompt_tokens" field.
func PromptTokensEQ(v int) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldPromptTokens, v))
}

// PromptTokensNEQ applies the NEQ predicate on the "prompt_tokens" field.
func PromptTokensNEQ(v int) predicate.Trace {
	return predicate.Trace(sql.FieldNEQ(FieldPromptTokens, v))
}

// PromptTokensIn applies the In predicate on the "prompt_tokens" field.
func PromptTokensIn(vs ...int) predicate.Trace {
	return predicate.Trace(sql.FieldIn(FieldPromptTokens, vs...))
}

// PromptTokensNotIn applies the NotIn predicate on the "prompt_tokens" field.
func PromptTokensNotIn(vs ...int) predicate.Trace {
	return predicate.Trace(sql.FieldNotIn(FieldPromptTokens, vs...))
}

// PromptTokensGT applies the GT predicate on the "prompt_tokens" field.
func PromptTokensGT(v int) predicate.Trace {
	return predicate.Trace(sql.FieldGT(FieldPromptTokens, v))
}

// PromptTokensGTE applies the GTE predicate on the "prompt_tokens" field.
func PromptTokensGTE(v int) predicate.Trace {
	return predicate.Trace(sql.FieldGTE(FieldPromptTokens, v))
}

// PromptTokensLT applies the LT predicate on the "prompt_tokens" field.
func PromptTokensLT(v int) predicate.Trace {
	return predicate.Trace(sql.FieldLT(FieldPromptTokens, v))
}

// PromptTokensLTE applies the LTE predicate on the "prompt_tokens" field.
func PromptTokensLTE(v int) predicate.Trace {
	return predicate.Trace(sql.FieldLTE(FieldPromptTokens, v))
}

// CompletionTokensEQ applies the EQ predicate on the "completion_tokens" field.
func CompletionTokensEQ(v int) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldCompletionTokens, v))
}

// CompletionTokensNEQ applies the NEQ predicate on the "completion_tokens" field.
func CompletionTokensNEQ(v int) predicate.Trace {
	return predicate.Trace(sql.FieldNEQ(FieldCompletionTokens, v))
}

// CompletionTokensIn applies the In predicate on the "completion_tokens" field.
func CompletionTokensIn(vs ...int) predicate.Trace {
	return predicate.Trace(sql.FieldIn(FieldCompletionTokens, vs...))
}

// CompletionTokensNotIn applies the NotIn predicate on the "completion_tokens" field.
func CompletionTokensNotIn(vs ...int) predicate.Trace {
	return predicate.Trace(sql.FieldNotIn(FieldCompletionTokens, vs...))
}

// CompletionTokensGT applies the GT predicate on the "completion_tokens" field.
func CompletionTokensGT(v int) predicate.Trace {
	return predicate.Trace(sql.FieldGT(FieldCompletionTokens, v))
}

// CompletionTokensGTE applies the GTE predicate on the "completion_tokens" field.
func CompletionTokensGTE(v int) predicate.Trace {
	return predicate.Trace(sql.FieldGTE(FieldCompletionTokens, v))
}

// CompletionTokensLT applies the LT predicate on the "completion_tokens" field.
func CompletionTokensLT(v int) predicate.Trace {
	return predicate.Trace(sql.FieldLT(FieldCompletionTokens, v))
}

// CompletionTokensLTE applies the LTE predicate on the "completion_tokens" field.
func CompletionTokensLTE(v int) predicate.Trace {
	return predicate.Trace(sql.FieldLTE(FieldCompletionTokens, v))
}

// CachedTokensEQ applies the EQ predicate on the "cached_tokens" field.
func CachedTokensEQ(v int) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldCachedTokens, v))
}

// CachedTokensNEQ applies the NEQ predicate on the "cached_tokens" field.
func CachedTokensNEQ(v int) predicate.Trace {
	return predicate.Trace(sql.FieldNEQ(FieldCachedTokens, v))
}

// CachedTokensIn applies the In predicate on the "cached_tokens" field.
func CachedTokensIn(vs ...int) predicate.Trace {
	return predicate.Trace(sql.FieldIn(FieldCachedTokens, vs...))
}

// CachedTokensNotIn applies the NotIn predicate on the "cached_tokens" field.
func CachedTokensNotIn(vs ...int) predicate.Trace {
	return predicate.Trace(sql.FieldNotIn(FieldCachedTokens, vs...))
}

// CachedTokensGT applies the GT predicate on the "cached_tokens" field.
func CachedTokensGT(v int) predicate.Trace {
	return predicate.Trace(sql.FieldGT(FieldCachedTokens, v))
}

// CachedTokensGTE applies the GTE predicate on the "cached_tokens" field.
func CachedTokensGTE(v int) predicate.Trace {
	return predicate.Trace(sql.FieldGTE(FieldCachedTokens, v))
}

// CachedTokensLT applies the LT predicate on the "cached_tokens" field.
func CachedTokensLT(v int) predicate.Trace {
	return predicate.Trace(sql.FieldLT(FieldCachedTokens, v))
}

// CachedTokensLTE applies the LTE predicate on the "cached_tokens" field.
func CachedTokensLTE(v int) predicate.Trace {
	return predicate.Trace(sql.FieldLTE(FieldCachedTokens, v))
}

// ReasoningTokensEQ applies the EQ predicate on the "reasoning_tokens" field.
func ReasoningTokensEQ(v int) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldReasoningTokens, v))
}

// ReasoningTokensNEQ applies the NEQ predicate on the "reasoning_tokens" field.
func ReasoningTokensNEQ(v int) predicate.Trace {
	return predicate.Trace(sql.FieldNEQ(FieldReasoningTokens, v))
}

// ReasoningTokensIn applies the In predicate on the "reasoning_tokens" field.
func ReasoningTokensIn(vs ...int) predicate.Trace {
	return predicate.Trace(sql.FieldIn(FieldReasoningTokens, vs...))
}

// ReasoningTokensNotIn applies the NotIn predicate on the "reasoning_tokens" field.
func ReasoningTokensNotIn(vs ...int) predicate.Trace {
	return predicate.Trace(sql.FieldNotIn(FieldReasoningTokens, vs...))
}

// ReasoningTokensGT applies the GT predicate on the "reasoning_tokens" field.
func ReasoningTokensGT(v int) predicate.Trace {
	return predicate.Trace(sql.FieldGT(FieldReasoningTokens, v))
}

// ReasoningTokensGTE applies the GTE predicate on the "reasoning_tokens" field.
func ReasoningTokensGTE(v int) predicate.Trace {
	return predicate.Trace(sql.FieldGTE(FieldReasoningTokens, v))
}

// ReasoningTokensLT applies the LT predicate on the "reasoning_tokens" field.
func ReasoningTokensLT(v int) predicate.Trace {
	return predicate.Trace(sql.FieldLT(FieldReasoningTokens, v))
}

// ReasoningTokensLTE applies the LTE predicate on the "reasoning_tokens" field.
func ReasoningTokensLTE(v int) predicate.Trace {
	return predicate.Trace(sql.FieldLTE(FieldReasoningTokens, v))
}

// TotalTokensEQ applies the EQ predicate on the "total_tokens" field.
func TotalTokensEQ(v int) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldTotalTokens, v))
}

// TotalTokensNEQ applies the NEQ predicate on the "total_tokens" field.
func TotalTokensNEQ(v int) predicate.Trace {
	return predicate.Trace(sql.FieldNEQ(FieldTotalTokens, v))
}

// TotalTokensIn applies the In predicate on the "total_tokens" field.
func TotalTokensIn(vs ...int) predicate.Trace {
	return predicate.Trace(sql.FieldIn(FieldTotalTokens, vs...))
}

// TotalTokensNotIn applies the NotIn predicate on the "total_tokens" field.
func TotalTokensNotIn(vs ...int) predicate.Trace {
	return predicate.Trace(sql.FieldNotIn(FieldTotalTokens, vs...))
}

// TotalTokensGT applies the GT predicate on the "total_tokens" field.
func TotalTokensGT(v int) predicate.Trace {
	return predicate.Trace(sql.FieldGT(FieldTotalTokens, v))
}

// TotalTokensGTE applies the GTE predicate on the "total_tokens" field.
func TotalTokensGTE(v int) predicate.Trace {
	return predicate.Trace(sql.FieldGTE(FieldTotalTokens, v))
}

// TotalTokensLT applies the LT predicate on the "total_tokens" field.
func TotalTokensLT(v int) predicate.Trace {
	return predicate.Trace(sql.FieldLT(FieldTotalTokens, v))
}

// TotalTokensLTE applies the LTE predicate on the "total_tokens" field.
func TotalTokensLTE(v int) predicate.Trace {
	return predicate.Trace(sql.FieldLTE(FieldTotalTokens, v))
}

// SystemFingerprintEQ applies the EQ predicate on the "system_fingerprint" field.
func SystemFingerprintEQ(v string) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldSystemFingerprint, v))
}

// SystemFingerprintNEQ applies the NEQ predicate on the "system_fingerprint" field.
func SystemFingerprintNEQ(v string) predicate.Trace {
	return predicate.Trace(sql.FieldNEQ(FieldSystemFingerprint, v))
}

// SystemFingerprintIn applies the In predicate on the "system_fingerprint" field.
func SystemFingerprintIn(vs ...string) predicate.Trace {
	return predicate.Trace(sql.FieldIn(FieldSystemFingerprint, vs...))
}

// SystemFingerprintNotIn applies the NotIn predicate on the "system_fingerprint" field.
func SystemFingerprintNotIn(vs ...string) predicate.Trace {
	return predicate.Trace(sql.FieldNotIn(FieldSystemFingerprint, vs...))
}

// SystemFingerprintGT applies the GT predicate on the "system_fingerprint" field.
func SystemFingerprintGT(v string) predicate.Trace {
	return predicate.Trace(sql.FieldGT(FieldSystemFingerprint, v))
}

// SystemFingerprintGTE applies the GTE predicate on the "system_fingerprint" field.
func SystemFingerprintGTE(v string) predicate.Trace {
	return predicate.Trace(sql.FieldGTE(FieldSystemFingerprint, v))
}

// SystemFingerprintLT applies the LT predicate on the "system_fingerprint" field.
func SystemFingerprintLT(v string) predicate.Trace {
	return predicate.Trace(sql.FieldLT(FieldSystemFingerprint, v))
}

// SystemFingerprintLTE applies the LTE predicate on the "system_fingerprint" field.
func SystemFingerprintLTE(v string) predicate.Trace {
	return predicate.Trace(sql.FieldLTE(FieldSystemFingerprint, v))
}

// SystemFingerprintContains applies the Contains predicate on the "system_fingerprint" field.
func SystemFingerprintContains(v string) predicate.Trace {
	return predicate.Trace(sql.FieldContains(FieldSystemFingerprint, v))
}

// SystemFingerprintHasPrefix applies the HasPrefix predicate on the "system_fingerprint" field.
func SystemFingerprintHasPrefix(v string) predicate.Trace {
	return predicate.Trace(sql.FieldHasPrefix(FieldSystemFingerprint, v))
}

// SystemFingerprintHasSuffix applies the HasSuffix predicate on the "system_fingerprint" field.
func SystemFingerprintHasSuffix(v string) predicate.Trace {
	return predicate.Trace(sql.FieldHasSuffix(FieldSystemFingerprint, v))
}

// SystemFingerprintIsNil applies the IsNil predicate on the "system_fingerprint" field.
func SystemFingerprintIsNil() predicate.Trace {
	return predicate.Trace(sql.FieldIsNull(FieldSystemFingerprint))
}

// SystemFingerprintNotNil applies the NotNil predicate on the "system_fingerprint" field.
func SystemFingerprintNotNil() predicate.Trace {
	return predicate.Trace(sql.FieldNotNull(FieldSystemFingerprint))
}

// SystemFingerprintEqualFold applies the EqualFold predicate on the "system_fingerprint" field.
func SystemFingerprintEqualFold(v string) predicate.Trace {
	return predicate.Trace(sql.FieldEqualFold(FieldSystemFingerprint, v))
}

// SystemFingerprintContainsFold applies the ContainsFold predicate on the "system_fingerprint" field.
func SystemFingerprintContainsFold(v string) predicate.Trace {
	return predicate.Trace(sql.FieldContainsFold(FieldSystemFingerprint, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Trace {
	return predicate.Trace(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Trace {
	return predicate.Trace(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Trace {
	return predicate.Trace(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Trace {
	return predicate.Trace(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Trace {
	return predicate.Trace(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Trace {
	return predicate.Trace(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Trace {
	return predicate.Trace(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Trace {
	return predicate.Trace(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Trace {
	return predicate.Trace(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Trace {
	return predicate.Trace(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Trace {
	return predicate.Trace(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Trace {
	return predicate.Trace(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Trace {
	return predicate.Trace(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Trace {
	return predicate.Trace(sql.FieldLTE(FieldCompletedAt, v))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.Trace {
	return predicate.Trace(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.Trace {
	return predicate.Trace(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.Trace {
	return predicate.Trace(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.Trace {
	return predicate.Trace(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.Trace {
	return predicate.Trace(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.Trace {
	return predicate.Trace(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.Trace {
	return predicate.Trace(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.Trace {
	return predicate.Trace(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.Trace {
	return predicate.Trace(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.Trace {
	return predicate.Trace(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.Trace {
	return predicate.Trace(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.Trace {
	return predicate.Trace(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.Trace {
	return predicate.Trace(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.Trace {
	return predicate.Trace(sql.FieldContainsFold(FieldError, v))
}

// ImplementationIDEQ applies the EQ predicate on the "implementation_id" field.
func ImplementationIDEQ(v string) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldImplementationID, v))
}

// ImplementationIDNEQ applies the NEQ predicate on the "implementation_id" field.
func ImplementationIDNEQ(v string) predicate.Trace {
	return predicate.Trace(sql.FieldNEQ(FieldImplementationID, v))
}

// ImplementationIDIn applies the In predicate on the "implementation_id" field.
func ImplementationIDIn(vs ...string) predicate.Trace {
	return predicate.Trace(sql.FieldIn(FieldImplementationID, vs...))
}

// ImplementationIDNotIn applies the NotIn predicate on the "implementation_id" field.
func ImplementationIDNotIn(vs ...string) predicate.Trace {
	return predicate.Trace(sql.FieldNotIn(FieldImplementationID, vs...))
}

// ImplementationIDGT applies the GT predicate on the "implementation_id" field.
func ImplementationIDGT(v string) predicate.Trace {
	return predicate.Trace(sql.FieldGT(FieldImplementationID, v))
}

// ImplementationIDGTE applies the GTE predicate on the "implementation_id" field.
func ImplementationIDGTE(v string) predicate.Trace {
	return predicate.Trace(sql.FieldGTE(FieldImplementationID, v))
}

// ImplementationIDLT applies the LT predicate on the "implementation_id" field.
func ImplementationIDLT(v string) predicate.Trace {
	return predicate.Trace(sql.FieldLT(FieldImplementationID, v))
}

// ImplementationIDLTE applies the LTE predicate on the "implementation_id" field.
func ImplementationIDLTE(v string) predicate.Trace {
	return predicate.Trace(sql.FieldLTE(FieldImplementationID, v))
}

// ImplementationIDContains applies the Contains predicate on the "implementation_id" field.
func ImplementationIDContains(v string) predicate.Trace {
	return predicate.Trace(sql.FieldContains(FieldImplementationID, v))
}

// ImplementationIDHasPrefix applies the HasPrefix predicate on the "implementation_id" field.
func ImplementationIDHasPrefix(v string) predicate.Trace {
	return predicate.Trace(sql.FieldHasPrefix(FieldImplementationID, v))
}

// ImplementationIDHasSuffix applies the HasSuffix predicate on the "implementation_id" field.
func ImplementationIDHasSuffix(v string) predicate.Trace {
	return predicate.Trace(sql.FieldHasSuffix(FieldImplementationID, v))
}

// ImplementationIDIsNil applies the IsNil predicate on the "implementation_id" field.
func ImplementationIDIsNil() predicate.Trace {
	return predicate.Trace(sql.FieldIsNull(FieldImplementationID))
}

// ImplementationIDNotNil applies the NotNil predicate on the "implementation_id" field.
func ImplementationIDNotNil() predicate.Trace {
	return predicate.Trace(sql.FieldNotNull(FieldImplementationID))
}

// ImplementationIDEqualFold applies the EqualFold predicate on the "implementation_id" field.
func ImplementationIDEqualFold(v string) predicate.Trace {
	return predicate.Trace(sql.FieldEqualFold(FieldImplementationID, v))
}

// ImplementationIDContainsFold applies the ContainsFold predicate on the "implementation_id" field.
func ImplementationIDContainsFold(v string) predicate.Trace {
	return predicate.Trace(sql.FieldContainsFold(FieldImplementationID, v))
}

// PromptVariablesIsNil applies the IsNil predicate on the "prompt_variables" field.
func PromptVariablesIsNil() predicate.Trace {
	return predicate.Trace(sql.FieldIsNull(FieldPromptVariables))
}

// PromptVariablesNotNil applies the NotNil predicate on the "prompt_variables" field.
func PromptVariablesNotNil() predicate.Trace {
	return predicate.Trace(sql.FieldNotNull(FieldPromptVariables))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Trace {
	return predicate.Trace(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Trace {
	return predicate.Trace(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Trace {
	return predicate.Trace(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Trace {
	return predicate.Trace(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Trace {
	return predicate.Trace(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Trace {
	return predicate.Trace(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Trace {
	return predicate.Trace(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Trace {
	return predicate.Trace(sql.FieldLTE(FieldCreatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Trace {
	return predicate.Trace(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Trace {
	return predicate.Trace(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasHTTPTrace applies the HasEdge predicate on the "http_trace" edge.
func HasHTTPTrace() predicate.Trace {
	return predicate.Trace(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, HTTPTraceTable, HTTPTraceColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHTTPTraceWith applies the HasEdge predicate on the "http_trace" edge with a given conditions (other predicates).
func HasHTTPTraceWith(preds ...predicate.HTTPTrace) predicate.Trace {
	return predicate.Trace(func(s *sql.Selector) {
		step := newHTTPTraceStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasImplementation applies the HasEdge predicate on the "implementation" edge.
func HasImplementation() predicate.Trace {
	return predicate.Trace(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ImplementationTable, ImplementationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasImplementationWith applies the HasEdge predicate on the "implementation" edge with a given conditions (other predicates).
func HasImplementationWith(preds ...predicate.Implementation) predicate.Trace {
	return predicate.Trace(func(s *sql.Selector) {
		step := newImplementationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasGrades applies the HasEdge predicate on the "grades" edge.
func HasGrades() predicate.Trace {
	return predicate.Trace(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, GradesTable, GradesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGradesWith applies the HasEdge predicate on the "grades" edge with a given conditions (other predicates).
func HasGradesWith(preds ...predicate.Grade) predicate.Trace {
	return predicate.Trace(func(s *sql.Selector) {
		step := newGradesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Trace) predicate.Trace {
	return predicate.Trace(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Trace) predicate.Trace {
	return predicate.Trace(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Trace) predicate.Trace {
	return predicate.Trace(sql.NotPredicates(p))
}
