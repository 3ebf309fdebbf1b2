// Code generated by ent, DO NOT EDIT.

package grader

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/promptlens/promptlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Grader {
	return predicate.Grader(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Grader {
	return predicate.Grader(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Grader {
	return predicate.Grader(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Grader {
	return predicate.Grader(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Grader {
	return predicate.Grader(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Grader {
	return predicate.Grader(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Grader {
	return predicate.Grader(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Grader {
	return predicate.Grader(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Grader {
	return predicate.Grader(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Grader {
	return predicate.Grader(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Grader {
	return predicate.Grader(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Grader {
	return predicate.Grader(sql.FieldEQ(FieldProjectID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Grader {
	return predicate.Grader(sql.FieldEQ(FieldName, v))
}

// Prompt applies equality check predicate on the "prompt" field. It's identical to PromptEQ.
func Prompt(v string) predicate.Grader {
	return predicate.Grader(sql.FieldEQ(FieldPrompt, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.Grader {
	return predicate.Grader(sql.FieldEQ(FieldModel, v))
}

// Temperature applies equality check predicate on the "temperature" field. It's identical to TemperatureEQ.
func Temperature(v float64) predicate.Grader {
	return predicate.Grader(sql.FieldEQ(FieldTemperature, v))
}

// MaxOutputTokens applies equality check predicate on the "max_output_tokens" field. It's identical to MaxOutputTokensEQ.
func MaxOutputTokens(v int) predicate.Grader {
	return predicate.Grader(sql.FieldEQ(FieldMaxOutputTokens, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.Grader {
	return predicate.Grader(sql.FieldEQ(FieldIsActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Grader {
	return predicate.Grader(sql.FieldEQ(FieldCreatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Grader {
	return predicate.Grader(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Grader {
	return predicate.Grader(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Grader {
	return predicate.Grader(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Grader {
	return predicate.Grader(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Grader {
	return predicate.Grader(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Grader {
	return predicate.Grader(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Grader {
	return predicate.Grader(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Grader {
	return predicate.Grader(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Grader {
	return predicate.Grader(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Grader {
	return predicate.Grader(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Grader {
	return predicate.Grader(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Grader {
	return predicate.Grader(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Grader {
	return predicate.Grader(sql.FieldContainsFold(FieldProjectID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Grader {
	return predicate.Grader(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Grader {
	return predicate.Grader(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Grader {
	return predicate.Grader(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Grader {
	return predicate.Grader(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Grader {
	return predicate.Grader(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Grader {
	return predicate.Grader(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Grader {
	return predicate.Grader(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Grader {
	return predicate.Grader(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Grader {
	return predicate.Grader(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Grader {
	return predicate.Grader(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Grader {
	return predicate.Grader(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Grader {
	return predicate.Grader(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Grader {
	return predicate.Grader(sql.FieldContainsFold(FieldName, v))
}

// PromptEQ applies the EQ predicate on the "prompt" field.
func PromptEQ(v string) predicate.Grader {
	return predicate.Grader(sql.FieldEQ(FieldPrompt, v))
}

// PromptNEQ applies the NEQ predicate on the "prompt" field.
func PromptNEQ(v string) predicate.Grader {
	return predicate.Grader(sql.FieldNEQ(FieldPrompt, v))
}

// PromptIn applies the In predicate on the "prompt" field.
func PromptIn(vs ...string) predicate.Grader {
	return predicate.Grader(sql.FieldIn(FieldPrompt, vs...))
}

// PromptNotIn applies the NotIn predicate on the "prompt" field.
func PromptNotIn(vs ...string) predicate.Grader {
	return predicate.Grader(sql.FieldNotIn(FieldPrompt, vs...))
}

// PromptGT applies the GT predicate on the "prompt" field.
func PromptGT(v string) predicate.Grader {
	return predicate.Grader(sql.FieldGT(FieldPrompt, v))
}

// PromptGTE applies the GTE predicate on the "prompt" field.
func PromptGTE(v string) predicate.Grader {
	return predicate.Grader(sql.FieldGTE(FieldPrompt, v))
}

// PromptLT applies the LT predicate on the "prompt" field.
func PromptLT(v string) predicate.Grader {
	return predicate.Grader(sql.FieldLT(FieldPrompt, v))
}

// PromptLTE applies the LTE predicate on the "prompt" field.
func PromptLTE(v string) predicate.Grader {
	return predicate.Grader(sql.FieldLTE(FieldPrompt, v))
}

// PromptContains applies the Contains predicate on the "prompt" field.
func PromptContains(v string) predicate.Grader {
	return predicate.Grader(sql.FieldContains(FieldPrompt, v))
}

// PromptHasPrefix applies the HasPrefix predicate on the "prompt" field.
func PromptHasPrefix(v string) predicate.Grader {
	return predicate.Grader(sql.FieldHasPrefix(FieldPrompt, v))
}

// PromptHasSuffix applies the HasSuffix predicate on the "prompt" field.
func PromptHasSuffix(v string) predicate.Grader {
	return predicate.Grader(sql.FieldHasSuffix(FieldPrompt, v))
}

// PromptEqualFold applies the EqualFold predicate on the "prompt" field.
func PromptEqualFold(v string) predicate.Grader {
	return predicate.Grader(sql.FieldEqualFold(FieldPrompt, v))
}

// PromptContainsFold applies the ContainsFold predicate on the "prompt" field.
func PromptContainsFold(v string) predicate.Grader {
	return predicate.Grader(sql.FieldContainsFold(FieldPrompt, v))
}

// ScoreTypeEQ applies the EQ predicate on the "score_type" field.
func ScoreTypeEQ(v ScoreType) predicate.Grader {
	return predicate.Grader(sql.FieldEQ(FieldScoreType, v))
}

// ScoreTypeNEQ applies the NEQ predicate on the "score_type" field.
func ScoreTypeNEQ(v ScoreType) predicate.Grader {
	return predicate.Grader(sql.FieldNEQ(FieldScoreType, v))
}

// ScoreTypeIn applies the In predicate on the "score_type" field.
func ScoreTypeIn(vs ...ScoreType) predicate.Grader {
	return predicate.Grader(sql.FieldIn(FieldScoreType, vs...))
}

// ScoreTypeNotIn applies the NotIn predicate on the "score_type" field.
func ScoreTypeNotIn(vs ...ScoreType) predicate.Grader {
	return predicate.Grader(sql.FieldNotIn(FieldScoreType, vs...))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.Grader {
	return predicate.Grader(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.Grader {
	return predicate.Grader(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.Grader {
	return predicate.Grader(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.Grader {
	return predicate.Grader(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.Grader {
	return predicate.Grader(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.Grader {
	return predicate.Grader(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.Grader {
	return predicate.Grader(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.Grader {
	return predicate.Grader(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.Grader {
	return predicate.Grader(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.Grader {
	return predicate.Grader(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.Grader {
	return predicate.Grader(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.Grader {
	return predicate.Grader(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.Grader {
	return predicate.Grader(sql.FieldContainsFold(FieldModel, v))
}

// TemperatureEQ applies the EQ predicate on the "temperature" field.
func TemperatureEQ(v float64) predicate.Grader {
	return predicate.Grader(sql.FieldEQ(FieldTemperature, v))
}

// TemperatureNEQ applies the NEQ predicate on the "temperature" field.
func TemperatureNEQ(v float64) predicate.Grader {
	return predicate.Grader(sql.FieldNEQ(FieldTemperature, v))
}

// TemperatureIn applies the In predicate on the "temperature" field.
func TemperatureIn(vs ...float64) predicate.Grader {
	return predicate.Grader(sql.FieldIn(FieldTemperature, vs...))
}

// TemperatureNotIn applies the NotIn predicate on the "temperature" field.
func TemperatureNotIn(vs ...float64) predicate.Grader {
	return predicate.Grader(sql.FieldNotIn(FieldTemperature, vs...))
}

// TemperatureGT applies the GT predicate on the "temperature" field.
func TemperatureGT(v float64) predicate.Grader {
	return predicate.Grader(sql.FieldGT(FieldTemperature, v))
}

// TemperatureGTE applies the GTE predicate on the "temperature" field.
func TemperatureGTE(v float64) predicate.Grader {
	return predicate.Grader(sql.FieldGTE(FieldTemperature, v))
}

// TemperatureLT applies the LT predicate on the "temperature" field.
func TemperatureLT(v float64) predicate.Grader {
	return predicate.Grader(sql.FieldLT(FieldTemperature, v))
}

// TemperatureLTE applies the LTE predicate on the "temperature" field.
func TemperatureLTE(v float64) predicate.Grader {
	return predicate.Grader(sql.FieldLTE(FieldTemperature, v))
}

// TemperatureIsNil applies the IsNil predicate on the "temperature" field.
func TemperatureIsNil() predicate.Grader {
	return predicate.Grader(sql.FieldIsNull(FieldTemperature))
}

// TemperatureNotNil applies the NotNil predicate on the "temperature" field.
func TemperatureNotNil() predicate.Grader {
	return predicate.Grader(sql.FieldNotNull(FieldTemperature))
}

// ReasoningIsNil applies the IsNil predicate on the "reasoning" field.
func ReasoningIsNil() predicate.Grader {
	return predicate.Grader(sql.FieldIsNull(FieldReasoning))
}

// ReasoningNotNil applies the NotNil predicate on the "reasoning" field.
func ReasoningNotNil() predicate.Grader {
	return predicate.Grader(sql.FieldNotNull(FieldReasoning))
}

// ResponseSchemaIsNil applies the IsNil predicate on the "response_schema" field.
func ResponseSchemaIsNil() predicate.Grader {
	return predicate.Grader(sql.FieldIsNull(FieldResponseSchema))
}

// ResponseSchemaNotNil applies the NotNil predicate on the "response_schema" field.
func ResponseSchemaNotNil() predicate.Grader {
	return predicate.Grader(sql.FieldNotNull(FieldResponseSchema))
}

// MaxOutputTokensEQ applies the EQ predicate on the "max_output_tokens" field.
func MaxOutputTokensEQ(v int) predicate.Grader {
	return predicate.Grader(sql.FieldEQ(FieldMaxOutputTokens, v))
}

// MaxOutputTokensNEQ applies the NEQ predicate on the "max_output_tokens" field.
func MaxOutputTokensNEQ(v int) predicate.Grader {
	return predicate.Grader(sql.FieldNEQ(FieldMaxOutputTokens, v))
}

// MaxOutputTokensIn applies the In predicate on the "max_output_tokens" field.
func MaxOutputTokensIn(vs ...int) predicate.Grader {
	return predicate.Grader(sql.FieldIn(FieldMaxOutputTokens, vs...))
}

// MaxOutputTokensNotIn applies the NotIn predicate on the "max_output_tokens" field.
func MaxOutputTokensNotIn(vs ...int) predicate.Grader {
	return predicate.Grader(sql.FieldNotIn(FieldMaxOutputTokens, vs...))
}

// MaxOutputTokensGT applies the GT predicate on the "max_output_tokens" field.
func MaxOutputTokensGT(v int) predicate.Grader {
	return predicate.Grader(sql.FieldGT(FieldMaxOutputTokens, v))
}

// MaxOutputTokensGTE applies the GTE predicate on the "max_output_tokens" field.
func MaxOutputTokensGTE(v int) predicate.Grader {
	return predicate.Grader(sql.FieldGTE(FieldMaxOutputTokens, v))
}

// MaxOutputTokensLT applies the LT predicate on the "max_output_tokens" field.
func MaxOutputTokensLT(v int) predicate.Grader {
	return predicate.Grader(sql.FieldLT(FieldMaxOutputTokens, v))
}

// MaxOutputTokensLTE applies the LTE predicate on the "max_output_tokens" field.
func MaxOutputTokensLTE(v int) predicate.Grader {
	return predicate.Grader(sql.FieldLTE(FieldMaxOutputTokens, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.Grader {
	return predicate.Grader(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.Grader {
	return predicate.Grader(sql.FieldNEQ(FieldIsActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Grader {
	return predicate.Grader(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Grader {
	return predicate.Grader(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Grader {
	return predicate.Grader(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Grader {
	return predicate.Grader(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Grader {
	return predicate.Grader(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Grader {
	return predicate.Grader(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Grader {
	return predicate.Grader(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Grader {
	return predicate.Grader(sql.FieldLTE(FieldCreatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Grader {
	return predicate.Grader(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Grader {
	return predicate.Grader(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasGrades applies the HasEdge predicate on the "grades" edge.
func HasGrades() predicate.Grader {
	return predicate.Grader(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, GradesTable, GradesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGradesWith applies the HasEdge predicate on the "grades" edge with a given conditions (other predicates).
func HasGradesWith(preds ...predicate.Grade) predicate.Grader {
	return predicate.Grader(func(s *sql.Selector) {
		step := newGradesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Grader) predicate.Grader {
	return predicate.Grader(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Grader) predicate.Grader {
	return predicate.Grader(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Grader) predicate.Grader {
	return predicate.Grader(sql.NotPredicates(p))
}
