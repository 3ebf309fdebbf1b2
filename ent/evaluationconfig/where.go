// Code generated by ent, DO NOT EDIT.

package evaluationconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/promptlens/promptlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldEQ(FieldTaskID, v))
}

// QualityWeight applies equality check predicate on the "quality_weight" field. It's identical to QualityWeightEQ.
func QualityWeight(v float64) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldEQ(FieldQualityWeight, v))
}

// CostWeight applies equality check predicate on the "cost_weight" field. It's identical to CostWeightEQ.
func CostWeight(v float64) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldEQ(FieldCostWeight, v))
}

// TimeWeight applies equality check predicate on the "time_weight" field. It's identical to TimeWeightEQ.
func TimeWeight(v float64) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldEQ(FieldTimeWeight, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldContainsFold(FieldTaskID, v))
}

// QualityWeightEQ applies the EQ predicate on the "quality_weight" field.
func QualityWeightEQ(v float64) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldEQ(FieldQualityWeight, v))
}

// QualityWeightNEQ applies the NEQ predicate on the "quality_weight" field.
func QualityWeightNEQ(v float64) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldNEQ(FieldQualityWeight, v))
}

// QualityWeightIn applies the In predicate on the "quality_weight" field.
func QualityWeightIn(vs ...float64) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldIn(FieldQualityWeight, vs...))
}

// QualityWeightNotIn applies the NotIn predicate on the "quality_weight" field.
func QualityWeightNotIn(vs ...float64) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldNotIn(FieldQualityWeight, vs...))
}

// QualityWeightGT applies the GT predicate on the "quality_weight" field.
func QualityWeightGT(v float64) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldGT(FieldQualityWeight, v))
}

// QualityWeightGTE applies the GTE predicate on the "quality_weight" field.
func QualityWeightGTE(v float64) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldGTE(FieldQualityWeight, v))
}

// QualityWeightLT applies the LT predicate on the "quality_weight" field.
func QualityWeightLT(v float64) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldLT(FieldQualityWeight, v))
}

// QualityWeightLTE applies the LTE predicate on the "quality_weight" field.
func QualityWeightLTE(v float64) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldLTE(FieldQualityWeight, v))
}

// CostWeightEQ applies the EQ predicate on the "cost_weight" field.
func CostWeightEQ(v float64) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldEQ(FieldCostWeight, v))
}

// CostWeightNEQ applies the NEQ predicate on the "cost_weight" field.
func CostWeightNEQ(v float64) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldNEQ(FieldCostWeight, v))
}

// CostWeightIn applies the In predicate on the "cost_weight" field.
func CostWeightIn(vs ...float64) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldIn(FieldCostWeight, vs...))
}

// CostWeightNotIn applies the NotIn predicate on the "cost_weight" field.
func CostWeightNotIn(vs ...float64) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldNotIn(FieldCostWeight, vs...))
}

// CostWeightGT applies the GT predicate on the "cost_weight" field.
func CostWeightGT(v float64) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldGT(FieldCostWeight, v))
}

// CostWeightGTE applies the GTE predicate on the "cost_weight" field.
func CostWeightGTE(v float64) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldGTE(FieldCostWeight, v))
}

// CostWeightLT applies the LT predicate on the "cost_weight" field.
func CostWeightLT(v float64) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldLT(FieldCostWeight, v))
}

// CostWeightLTE applies the LTE predicate on the "cost_weight" field.
func CostWeightLTE(v float64) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldLTE(FieldCostWeight, v))
}

// TimeWeightEQ applies the EQ predicate on the "time_weight" field.
func TimeWeightEQ(v float64) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldEQ(FieldTimeWeight, v))
}

// TimeWeightNEQ applies the NEQ predicate on the "time_weight" field.
func TimeWeightNEQ(v float64) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldNEQ(FieldTimeWeight, v))
}

// TimeWeightIn applies the In predicate on the "time_weight" field.
func TimeWeightIn(vs ...float64) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldIn(FieldTimeWeight, vs...))
}

// TimeWeightNotIn applies the NotIn predicate on the "time_weight" field.
func TimeWeightNotIn(vs ...float64) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldNotIn(FieldTimeWeight, vs...))
}

// TimeWeightGT applies the GT predicate on the "time_weight" field.
func TimeWeightGT(v float64) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldGT(FieldTimeWeight, v))
}

// TimeWeightGTE applies the GTE predicate on the "time_weight" field.
func TimeWeightGTE(v float64) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldGTE(FieldTimeWeight, v))
}

// TimeWeightLT applies the LT predicate on the "time_weight" field.
func TimeWeightLT(v float64) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldLT(FieldTimeWeight, v))
}

// TimeWeightLTE applies the LTE predicate on the "time_weight" field.
func TimeWeightLTE(v float64) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldLTE(FieldTimeWeight, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.EvaluationConfig {
	return predicate.EvaluationConfig(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.EvaluationConfig) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.EvaluationConfig) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.EvaluationConfig) predicate.EvaluationConfig {
	return predicate.EvaluationConfig(sql.NotPredicates(p))
}
