// Code generated by ent, DO NOT EDIT.

package targettaskmetrics

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/promptlens/promptlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldEQ(FieldTaskID, v))
}

// BestCost applies equality check predicate on the "best_cost" field. It's identical to BestCostEQ.
func BestCost(v float64) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldEQ(FieldBestCost, v))
}

// BestTimeMs applies equality check predicate on the "best_time_ms" field. It's identical to BestTimeMsEQ.
func BestTimeMs(v float64) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldEQ(FieldBestTimeMs, v))
}

// LastUpdatedAt applies equality check predicate on the "last_updated_at" field. It's identical to LastUpdatedAtEQ.
func LastUpdatedAt(v time.Time) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldEQ(FieldLastUpdatedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldContainsFold(FieldTaskID, v))
}

// BestCostEQ applies the EQ predicate on the "best_cost" field.
func BestCostEQ(v float64) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldEQ(FieldBestCost, v))
}

// BestCostNEQ applies the NEQ predicate on the "best_cost" field.
func BestCostNEQ(v float64) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldNEQ(FieldBestCost, v))
}

// BestCostIn applies the In predicate on the "best_cost" field.
func BestCostIn(vs ...float64) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldIn(FieldBestCost, vs...))
}

// BestCostNotIn applies the NotIn predicate on the "best_cost" field.
func BestCostNotIn(vs ...float64) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldNotIn(FieldBestCost, vs...))
}

// BestCostGT applies the GT predicate on the "best_cost" field.
func BestCostGT(v float64) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldGT(FieldBestCost, v))
}

// BestCostGTE applies the GTE predicate on the "best_cost" field.
func BestCostGTE(v float64) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldGTE(FieldBestCost, v))
}

// BestCostLT applies the LT predicate on the "best_cost" field.
func BestCostLT(v float64) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldLT(FieldBestCost, v))
}

// BestCostLTE applies the LTE predicate on the "best_cost" field.
func BestCostLTE(v float64) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldLTE(FieldBestCost, v))
}

// BestCostIsNil applies the IsNil predicate on the "best_cost" field.
func BestCostIsNil() predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldIsNull(FieldBestCost))
}

// BestCostNotNil applies the NotNil predicate on the "best_cost" field.
func BestCostNotNil() predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldNotNull(FieldBestCost))
}

// BestTimeMsEQ applies the EQ predicate on the "best_time_ms" field.
func BestTimeMsEQ(v float64) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldEQ(FieldBestTimeMs, v))
}

// BestTimeMsNEQ applies the NEQ predicate on the "best_time_ms" field.
func BestTimeMsNEQ(v float64) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldNEQ(FieldBestTimeMs, v))
}

// BestTimeMsIn applies the In predicate on the "best_time_ms" field.
func BestTimeMsIn(vs ...float64) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldIn(FieldBestTimeMs, vs...))
}

// BestTimeMsNotIn applies the NotIn predicate on the "best_time_ms" field.
func BestTimeMsNotIn(vs ...float64) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldNotIn(FieldBestTimeMs, vs...))
}

// BestTimeMsGT applies the GT predicate on the "best_time_ms" field.
func BestTimeMsGT(v float64) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldGT(FieldBestTimeMs, v))
}

// BestTimeMsGTE applies the GTE predicate on the "best_time_ms" field.
func BestTimeMsGTE(v float64) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldGTE(FieldBestTimeMs, v))
}

// BestTimeMsLT applies the LT predicate on the "best_time_ms" field.
func BestTimeMsLT(v float64) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldLT(FieldBestTimeMs, v))
}

// BestTimeMsLTE applies the LTE predicate on the "best_time_ms" field.
func BestTimeMsLTE(v float64) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldLTE(FieldBestTimeMs, v))
}

// BestTimeMsIsNil applies the IsNil predicate on the "best_time_ms" field.
func BestTimeMsIsNil() predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldIsNull(FieldBestTimeMs))
}

// BestTimeMsNotNil applies the NotNil predicate on the "best_time_ms" field.
func BestTimeMsNotNil() predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldNotNull(FieldBestTimeMs))
}

// LastUpdatedAtEQ applies the EQ predicate on the "last_updated_at" field.
func LastUpdatedAtEQ(v time.Time) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldEQ(FieldLastUpdatedAt, v))
}

// LastUpdatedAtNEQ applies the NEQ predicate on the "last_updated_at" field.
func LastUpdatedAtNEQ(v time.Time) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldNEQ(FieldLastUpdatedAt, v))
}

// LastUpdatedAtIn applies the In predicate on the "last_updated_at" field.
func LastUpdatedAtIn(vs ...time.Time) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldIn(FieldLastUpdatedAt, vs...))
}

// LastUpdatedAtNotIn applies the NotIn predicate on the "last_updated_at" field.
func LastUpdatedAtNotIn(vs ...time.Time) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldNotIn(FieldLastUpdatedAt, vs...))
}

// LastUpdatedAtGT applies the GT predicate on the "last_updated_at" field.
func LastUpdatedAtGT(v time.Time) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldGT(FieldLastUpdatedAt, v))
}

// LastUpdatedAtGTE applies the GTE predicate on the "last_updated_at" field.
func LastUpdatedAtGTE(v time.Time) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldGTE(FieldLastUpdatedAt, v))
}

// LastUpdatedAtLT applies the LT predicate on the "last_updated_at" field.
func LastUpdatedAtLT(v time.Time) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldLT(FieldLastUpdatedAt, v))
}

// LastUpdatedAtLTE applies the LTE predicate on the "last_updated_at" field.
func LastUpdatedAtLTE(v time.Time) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.FieldLTE(FieldLastUpdatedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TargetTaskMetrics) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TargetTaskMetrics) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TargetTaskMetrics) predicate.TargetTaskMetrics {
	return predicate.TargetTaskMetrics(sql.NotPredicates(p))
}
