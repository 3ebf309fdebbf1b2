// Code generated by ent, DO NOT EDIT.

package implementation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/promptlens/promptlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Implementation {
	return predicate.Implementation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Implementation {
	return predicate.Implementation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Implementation {
	return predicate.Implementation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Implementation {
	return predicate.Implementation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Implementation {
	return predicate.Implementation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Implementation {
	return predicate.Implementation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Implementation {
	return predicate.Implementation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Implementation {
	return predicate.Implementation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Implementation {
	return predicate.Implementation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Implementation {
	return predicate.Implementation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Implementation {
	return predicate.Implementation(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldEQ(FieldTaskID, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldEQ(FieldVersion, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldEQ(FieldPrompt, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldEQ(FieldModel, v))
}

// Temperature applies equality check predicate on the "temperature" field. It's identical to TemperatureEQ.
func Temperature(v float64) predicate.Implementation {
	return predicate.Implementation(sql.FieldEQ(FieldTemperature, v))
}

// ToolChoice applies equality check predicate on the "tool_choice" field. It's identical to ToolChoiceEQ.
func ToolChoice(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldEQ(FieldToolChoice, v))
}

// MaxOutputTokens applies equality check predicate on the "max_output_tokens" field. It's identical to MaxOutputTokensEQ.
func MaxOutputTokens(v int) predicate.Implementation {
	return predicate.Implementation(sql.FieldEQ(FieldMaxOutputTokens, v))
}

// Temp applies equality check predicate on the "temp" field. It's identical to TempEQ.
func Temp(v bool) predicate.Implementation {
	return predicate.Implementation(sql.FieldEQ(FieldTemp, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Implementation {
	return predicate.Implementation(sql.FieldEQ(FieldCreatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.Implementation {
	return predicate.Implementation(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.Implementation {
	return predicate.Implementation(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldContainsFold(FieldTaskID, v))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...string) predicate.Implementation {
	return predicate.Implementation(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...string) predicate.Implementation {
	return predicate.Implementation(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldLTE(FieldVersion, v))
}

// VersionContains applies the Contains predicate on the "version" field.
func VersionContains(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldContains(FieldVersion, v))
}

// VersionHasPrefix applies the HasPrefix predicate on the "version" field.
func VersionHasPrefix(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldHasPrefix(FieldVersion, v))
}

// VersionHasSuffix applies the HasSuffix predicate on the "version" field.
func VersionHasSuffix(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldHasSuffix(FieldVersion, v))
}

// VersionEqualFold applies the EqualFold predicate on the "version" field.
func VersionEqualFold(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldEqualFold(FieldVersion, v))
}

// VersionContainsFold applies the ContainsFold predicate on the "version" field.
func VersionContainsFold(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldContainsFold(FieldVersion, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.Implementation {
	return predicate.Implementation(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.Implementation {
	return predicate.Implementation(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldContainsFold(FieldPrompt, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.Implementation {
	return predicate.Implementation(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.Implementation {
	return predicate.Implementation(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldContainsFold(FieldModel, v))
}

// TemperatureEQ applies the EQ predicate on the "temperature" field.
func TemperatureEQ(v float64) predicate.Implementation {
	return predicate.Implementation(sql.FieldEQ(FieldTemperature, v))
}

// TemperatureNEQ applies the NEQ predicate on the "temperature" field.
func TemperatureNEQ(v float64) predicate.Implementation {
	return predicate.Implementation(sql.FieldNEQ(FieldTemperature, v))
}

// TemperatureIn applies the In predicate on the "temperature" field.
func TemperatureIn(vs ...float64) predicate.Implementation {
	return predicate.Implementation(sql.FieldIn(FieldTemperature, vs...))
}

// TemperatureNotIn applies the NotIn predicate on the "temperature" field.
func TemperatureNotIn(vs ...float64) predicate.Implementation {
	return predicate.Implementation(sql.FieldNotIn(FieldTemperature, vs...))
}

// TemperatureGT applies the GT predicate on the "temperature" field.
func TemperatureGT(v float64) predicate.Implementation {
	return predicate.Implementation(sql.FieldGT(FieldTemperature, v))
}

// TemperatureGTE applies the GTE predicate on the "temperature" field.
func TemperatureGTE(v float64) predicate.Implementation {
	return predicate.Implementation(sql.FieldGTE(FieldTemperature, v))
}

// TemperatureLT applies the LT predicate on the "temperature" field.
func TemperatureLT(v float64) predicate.Implementation {
	return predicate.Implementation(sql.FieldLT(FieldTemperature, v))
}

// TemperatureLTE applies the LTE predicate on the "temperature" field.
func TemperatureLTE(v float64) predicate.Implementation {
	return predicate.Implementation(sql.FieldLTE(FieldTemperature, v))
}

// TemperatureIsNil applies the IsNil predicate on the "temperature" field.
func TemperatureIsNil() predicate.Implementation {
	return predicate.Implementation(sql.FieldIsNull(FieldTemperature))
}

// TemperatureNotNil applies the NotNil predicate on the "temperature" field.
func TemperatureNotNil() predicate.Implementation {
	return predicate.Implementation(sql.FieldNotNull(FieldTemperature))
}

// ReasoningIsNil applies the IsNil predicate on the "reasoning" field.
func ReasoningIsNil() predicate.Implementation {
	return predicate.Implementation(sql.FieldIsNull(FieldReasoning))
}

// ReasoningNotNil applies the NotNil predicate on the "reasoning" field.
func ReasoningNotNil() predicate.Implementation {
	return predicate.Implementation(sql.FieldNotNull(FieldReasoning))
}

// ToolsIsNil applies the IsNil predicate on the "tools" field.
func ToolsIsNil() predicate.Implementation {
	return predicate.Implementation(sql.FieldIsNull(FieldTools))
}

// ToolsNotNil applies the NotNil predicate on the "tools" field.
func ToolsNotNil() predicate.Implementation {
	return predicate.Implementation(sql.FieldNotNull(FieldTools))
}

// ToolChoiceEQ applies the EQ predicate on the "tool_choice" field.
func ToolChoiceEQ(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldEQ(FieldToolChoice, v))
}

// ToolChoiceNEQ applies the NEQ predicate on the "tool_choice" field.
func ToolChoiceNEQ(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldNEQ(FieldToolChoice, v))
}

// ToolChoiceIn applies the In predicate on the "tool_choice" field.
func ToolChoiceIn(vs ...string) predicate.Implementation {
	return predicate.Implementation(sql.FieldIn(FieldToolChoice, vs...))
}

// ToolChoiceNotIn applies the NotIn predicate on the "tool_choice" field.
func ToolChoiceNotIn(vs ...string) predicate.Implementation {
	return predicate.Implementation(sql.FieldNotIn(FieldToolChoice, vs...))
}

// ToolChoiceGT applies the GT predicate on the "tool_choice" field.
func ToolChoiceGT(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldGT(FieldToolChoice, v))
}

// ToolChoiceGTE applies the GTE predicate on the "tool_choice" field.
func ToolChoiceGTE(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldGTE(FieldToolChoice, v))
}

// ToolChoiceLT applies the LT predicate on the "tool_choice" field.
func ToolChoiceLT(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldLT(FieldToolChoice, v))
}

// ToolChoiceLTE applies the LTE predicate on the "tool_choice" field.
func ToolChoiceLTE(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldLTE(FieldToolChoice, v))
}

// ToolChoiceContains applies the Contains predicate on the "tool_choice" field.
func ToolChoiceContains(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldContains(FieldToolChoice, v))
}

// ToolChoiceHasPrefix applies the HasPrefix predicate on the "tool_choice" field.
func ToolChoiceHasPrefix(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldHasPrefix(FieldToolChoice, v))
}

// ToolChoiceHasSuffix applies the HasSuffix predicate on the "tool_choice" field.
func ToolChoiceHasSuffix(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldHasSuffix(FieldToolChoice, v))
}

// ToolChoiceIsNil applies the IsNil predicate on the "tool_choice" field.
func ToolChoiceIsNil() predicate.Implementation {
	return predicate.Implementation(sql.FieldIsNull(FieldToolChoice))
}

// ToolChoiceNotNil applies the NotNil predicate on the "tool_choice" field.
func ToolChoiceNotNil() predicate.Implementation {
	return predicate.Implementation(sql.FieldNotNull(FieldToolChoice))
}

// ToolChoiceEqualFold applies the EqualFold predicate on the "tool_choice" field.
func ToolChoiceEqualFold(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldEqualFold(FieldToolChoice, v))
}

// ToolChoiceContainsFold applies the ContainsFold predicate on the "tool_choice" field.
func ToolChoiceContainsFold(v string) predicate.Implementation {
	return predicate.Implementation(sql.FieldContainsFold(FieldToolChoice, v))
}

// MaxOutputTokensEQ applies the EQ predicate on the "max_output_tokens" field.
func MaxOutputTokensEQ(v int) predicate.Implementation {
	return predicate.Implementation(sql.FieldEQ(FieldMaxOutputTokens, v))
}

// MaxOutputTokensNEQ applies the NEQ predicate on the "max_output_tokens" field.
func MaxOutputTokensNEQ(v int) predicate.Implementation {
	return predicate.Implementation(sql.FieldNEQ(FieldMaxOutputTokens, v))
}

// MaxOutputTokensIn applies the In predicate on the "max_output_tokens" field.
func MaxOutputTokensIn(vs ...int) predicate.Implementation {
	return predicate.Implementation(sql.FieldIn(FieldMaxOutputTokens, vs...))
}

// MaxOutputTokensNotIn applies the NotIn predicate on the "max_output_tokens" field.
func MaxOutputTokensNotIn(vs ...int) predicate.Implementation {
	return predicate.Implementation(sql.FieldNotIn(FieldMaxOutputTokens, vs...))
}

// MaxOutputTokensGT applies the GT predicate on the "max_output_tokens" field.
func MaxOutputTokensGT(v int) predicate.Implementation {
	return predicate.Implementation(sql.FieldGT(FieldMaxOutputTokens, v))
}

// MaxOutputTokensGTE applies the GTE predicate on the "max_output_tokens" field.
func MaxOutputTokensGTE(v int) predicate.Implementation {
	return predicate.Implementation(sql.FieldGTE(FieldMaxOutputTokens, v))
}

// MaxOutputTokensLT applies the LT predicate on the "max_output_tokens" field.
func MaxOutputTokensLT(v int) predicate.Implementation {
	return predicate.Implementation(sql.FieldLT(FieldMaxOutputTokens, v))
}

// MaxOutputTokensLTE applies the LTE predicate on the "max_output_tokens" field.
func MaxOutputTokensLTE(v int) predicate.Implementation {
	return predicate.Implementation(sql.FieldLTE(FieldMaxOutputTokens, v))
}

// ResponseSchemaIsNil applies the IsNil predicate on the "response_schema" field.
func ResponseSchemaIsNil() predicate.Implementation {
	return predicate.Implementation(sql.FieldIsNull(FieldResponseSchema))
}

// ResponseSchemaNotNil applies the NotNil predicate on the "response_schema" field.
func ResponseSchemaNotNil() predicate.Implementation {
	return predicate.Implementation(sql.FieldNotNull(FieldResponseSchema))
}

// TempEQ applies the EQ predicate on the "temp" field.
func TempEQ(v bool) predicate.Implementation {
	return predicate.Implementation(sql.FieldEQ(FieldTemp, v))
}

// TempNEQ applies the NEQ predicate on the "temp" field.
func TempNEQ(v bool) predicate.Implementation {
	return predicate.Implementation(sql.FieldNEQ(FieldTemp, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Implementation {
	return predicate.Implementation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Implementation {
	return predicate.Implementation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Implementation {
	return predicate.Implementation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Implementation {
	return predicate.Implementation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Implementation {
	return predicate.Implementation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Implementation {
	return predicate.Implementation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Implementation {
	return predicate.Implementation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Implementation {
	return predicate.Implementation(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.Implementation {
	return predicate.Implementation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.Implementation {
	return predicate.Implementation(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTraces applies the HasEdge predicate on the "traces" edge.
func HasTraces() predicate.Implementation {
	return predicate.Implementation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TracesTable, TracesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTracesWith applies the HasEdge predicate on the "traces" edge with a given conditions (other predicates).
func HasTracesWith(preds ...predicate.Trace) predicate.Implementation {
	return predicate.Implementation(func(s *sql.Selector) {
		step := newTracesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasExecutionResults applies the HasEdge predicate on the "execution_results" edge.
func HasExecutionResults() predicate.Implementation {
	return predicate.Implementation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExecutionResultsTable, ExecutionResultsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionResultsWith applies the HasEdge predicate on the "execution_results" edge with a given conditions (other predicates).
func HasExecutionResultsWith(preds ...predicate.ExecutionResult) predicate.Implementation {
	return predicate.Implementation(func(s *sql.Selector) {
		step := newExecutionResultsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasEvaluations applies the HasEdge predicate on the "evaluations" edge.
func HasEvaluations() predicate.Implementation {
	return predicate.Implementation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, EvaluationsTable, EvaluationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEvaluationsWith applies the HasEdge predicate on the "evaluations" edge with a given conditions (other predicates).
func HasEvaluationsWith(preds ...predicate.Evaluation) predicate.Implementation {
	return predicate.Implementation(func(s *sql.Selector) {
		step := newEvaluationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Implementation) predicate.Implementation {
	return predicate.Implementation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Implementation) predicate.Implementation {
	return predicate.Implementation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Implementation) predicate.Implementation {
	return predicate.Implementation(sql.NotPredicates(p))
}
