// Code generated by ent, DO NOT EDIT.

package evaluation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/promptlens/promptlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContainsFold(FieldID, id))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldTaskID, v))
}

// ImplementationID applies equality check predicate on the "implementation_id" field. It's identical to ImplementationIDEQ.
func ImplementationID(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldImplementationID, v))
}

// QualityScore applies equality check predicate on the "quality_score" field. It's identical to QualityScoreEQ.
func QualityScore(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldQualityScore, v))
}

// AvgCost applies equality check predicate on the "avg_cost" field. It's identical to AvgCostEQ.
func AvgCost(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldAvgCost, v))
}

// AvgExecutionTimeMs applies equality check predicate on the "avg_execution_time_ms" field. It's identical to AvgExecutionTimeMsEQ.
func AvgExecutionTimeMs(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldAvgExecutionTimeMs, v))
}

// TestCaseCount applies equality check predicate on the "test_case_count" field. It's identical to TestCaseCountEQ.
func TestCaseCount(v int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldTestCaseCount, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldError, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldCompletedAt, v))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContainsFold(FieldTaskID, v))
}

// ImplementationIDEQ applies the EQ predicate on the "implementation_id" field.
func ImplementationIDEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldImplementationID, v))
}

// ImplementationIDNEQ applies the NEQ predicate on the "implementation_id" field.
func ImplementationIDNEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldImplementationID, v))
}

// ImplementationIDIn applies the In predicate on the "implementation_id" field.
func ImplementationIDIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldImplementationID, vs...))
}

// ImplementationIDNotIn applies the NotIn predicate on the "implementation_id" field.
func ImplementationIDNotIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldImplementationID, vs...))
}

// ImplementationIDGT applies the GT predicate on the "implementation_id" field.
func ImplementationIDGT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldImplementationID, v))
}

// ImplementationIDGTE applies the GTE predicate on the "implementation_id" field.
func ImplementationIDGTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldImplementationID, v))
}

// ImplementationIDLT applies the LT predicate on the "implementation_id" field.
func ImplementationIDLT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldImplementationID, v))
}

// ImplementationIDLTE applies the LTE predicate on the "implementation_id" field.
func ImplementationIDLTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldImplementationID, v))
}

// ImplementationIDContains applies the Contains predicate on the "implementation_id" field.
func ImplementationIDContains(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContains(FieldImplementationID, v))
}

// ImplementationIDHasPrefix applies the HasPrefix predicate on the "implementation_id" field.
func ImplementationIDHasPrefix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasPrefix(FieldImplementationID, v))
}

// ImplementationIDHasSuffix applies the HasSuffix predicate on the "implementation_id" field.
func ImplementationIDHasSuffix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasSuffix(FieldImplementationID, v))
}

// ImplementationIDEqualFold applies the EqualFold predicate on the "implementation_id" field.
func ImplementationIDEqualFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEqualFold(FieldImplementationID, v))
}

// ImplementationIDContainsFold applies the ContainsFold predicate on the "implementation_id" field.
func ImplementationIDContainsFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContainsFold(FieldImplementationID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldStatus, vs...))
}

// GraderScoresIsNil applies the IsNil predicate on the "grader_scores" field.
func GraderScoresIsNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIsNull(FieldGraderScores))
}

// GraderScoresNotNil applies the NotNil predicate on the "grader_scores" field.
func GraderScoresNotNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotNull(FieldGraderScores))
}

// QualityScoreEQ applies the EQ predicate on the "quality_score" field.
func QualityScoreEQ(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldQualityScore, v))
}

// QualityScoreNEQ applies the NEQ predicate on the "quality_score" field.
func QualityScoreNEQ(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldQualityScore, v))
}

// QualityScoreIn applies the In predicate on the "quality_score" field.
func QualityScoreIn(vs ...float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldQualityScore, vs...))
}

// QualityScoreNotIn applies the NotIn predicate on the "quality_score" field.
func QualityScoreNotIn(vs ...float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldQualityScore, vs...))
}

// QualityScoreGT applies the GT predicate on the "quality_score" field.
func QualityScoreGT(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldQualityScore, v))
}

// QualityScoreGTE applies the GTE predicate on the "quality_score" field.
func QualityScoreGTE(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldQualityScore, v))
}

// QualityScoreLT applies the LT predicate on the "quality_score" field.
func QualityScoreLT(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldQualityScore, v))
}

// QualityScoreLTE applies the LTE predicate on the "quality_score" field.
func QualityScoreLTE(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldQualityScore, v))
}

// QualityScoreIsNil applies the IsNil predicate on the "quality_score" field.
func QualityScoreIsNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIsNull(FieldQualityScore))
}

// QualityScoreNotNil applies the NotNil predicate on the "quality_score" field.
func QualityScoreNotNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotNull(FieldQualityScore))
}

// AvgCostEQ applies the EQ predicate on the "avg_cost" field.
func AvgCostEQ(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldAvgCost, v))
}

// AvgCostNEQ applies the NEQ predicate on the "avg_cost" field.
func AvgCostNEQ(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldAvgCost, v))
}

// AvgCostIn applies the In predicate on the "avg_cost" field.
func AvgCostIn(vs ...float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldAvgCost, vs...))
}

// AvgCostNotIn applies the NotIn predicate on the "avg_cost" field.
func AvgCostNotIn(vs ...float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldAvgCost, vs...))
}

// AvgCostGT applies the GT predicate on the "avg_cost" field.
func AvgCostGT(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldAvgCost, v))
}

// AvgCostGTE applies the GTE predicate on the "avg_cost" field.
func AvgCostGTE(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldAvgCost, v))
}

// AvgCostLT applies the LT predicate on the "avg_cost" field.
func AvgCostLT(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldAvgCost, v))
}

// AvgCostLTE applies the LTE predicate on the "avg_cost" field.
func AvgCostLTE(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldAvgCost, v))
}

// AvgCostIsNil applies the IsNil predicate on the "avg_cost" field.
func AvgCostIsNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIsNull(FieldAvgCost))
}

// AvgCostNotNil applies the NotNil predicate on the "avg_cost" field.
func AvgCostNotNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotNull(FieldAvgCost))
}

// AvgExecutionTimeMsEQ applies the EQ predicate on the "avg_execution_time_ms" field.
func AvgExecutionTimeMsEQ(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldAvgExecutionTimeMs, v))
}

// AvgExecutionTimeMsNEQ applies the NEQ predicate on the "avg_execution_time_ms" field.
func AvgExecutionTimeMsNEQ(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldAvgExecutionTimeMs, v))
}

// AvgExecutionTimeMsIn applies the In predicate on the "avg_execution_time_ms" field.
func AvgExecutionTimeMsIn(vs ...float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldAvgExecutionTimeMs, vs...))
}

// AvgExecutionTimeMsNotIn applies the NotIn predicate on the "avg_execution_time_ms" field.
func AvgExecutionTimeMsNotIn(vs ...float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldAvgExecutionTimeMs, vs...))
}

// AvgExecutionTimeMsGT applies the GT predicate on the "avg_execution_time_ms" field.
func AvgExecutionTimeMsGT(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldAvgExecutionTimeMs, v))
}

// AvgExecutionTimeMsGTE applies the GTE predicate on the "avg_execution_time_ms" field.
func AvgExecutionTimeMsGTE(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldAvgExecutionTimeMs, v))
}

// AvgExecutionTimeMsLT applies the LT predicate on the "avg_execution_time_ms" field.
func AvgExecutionTimeMsLT(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldAvgExecutionTimeMs, v))
}

// AvgExecutionTimeMsLTE applies the LTE predicate on the "avg_execution_time_ms" field.
func AvgExecutionTimeMsLTE(v float64) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldAvgExecutionTimeMs, v))
}

// AvgExecutionTimeMsIsNil applies the IsNil predicate on the "avg_execution_time_ms" field.
func AvgExecutionTimeMsIsNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIsNull(FieldAvgExecutionTimeMs))
}

// AvgExecutionTimeMsNotNil applies the NotNil predicate on the "avg_execution_time_ms" field.
func AvgExecutionTimeMsNotNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotNull(FieldAvgExecutionTimeMs))
}

// TestCaseCountEQ applies the EQ predicate on the "test_case_count" field.
func TestCaseCountEQ(v int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldTestCaseCount, v))
}

// TestCaseCountNEQ applies the NEQ predicate on the "test_case_count" field.
func TestCaseCountNEQ(v int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldTestCaseCount, v))
}

// TestCaseCountIn applies the In predicate on the "test_case_count" field.
func TestCaseCountIn(vs ...int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldTestCaseCount, vs...))
}

// TestCaseCountNotIn applies the NotIn predicate on the "test_case_count" field.
func TestCaseCountNotIn(vs ...int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldTestCaseCount, vs...))
}

// TestCaseCountGT applies the GT predicate on the "test_case_count" field.
func TestCaseCountGT(v int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldTestCaseCount, v))
}

// TestCaseCountGTE applies the GTE predicate on the "test_case_count" field.
func TestCaseCountGTE(v int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldTestCaseCount, v))
}

// TestCaseCountLT applies the LT predicate on the "test_case_count" field.
func TestCaseCountLT(v int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldTestCaseCount, v))
}

// TestCaseCountLTE applies the LTE predicate on the "test_case_count" field.
func TestCaseCountLTE(v int) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldTestCaseCount, v))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldContainsFold(FieldError, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Evaluation {
	return predicate.Evaluation(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Evaluation {
	return predicate.Evaluation(sql.FieldNotNull(FieldCompletedAt))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.Evaluation {
	return predicate.Evaluation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.Evaluation {
	return predicate.Evaluation(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasImplementation applies the HasEdge predicate on the "implementation" edge.
func HasImplementation() predicate.Evaluation {
	return predicate.Evaluation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ImplementationTable, ImplementationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasImplementationWith applies the HasEdge predicate on the "implementation" edge with a given conditions (other predicates).
func HasImplementationWith(preds ...predicate.Implementation) predicate.Evaluation {
	return predicate.Evaluation(func(s *sql.Selector) {
		step := newImplementationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasExecutionResults applies the HasEdge predicate on the "execution_results" edge.
func HasExecutionResults() predicate.Evaluation {
	return predicate.Evaluation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ExecutionResultsTable, ExecutionResultsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionResultsWith applies the HasEdge predicate on the "execution_results" edge with a given conditions (other predicates).
func HasExecutionResultsWith(preds ...predicate.ExecutionResult) predicate.Evaluation {
	return predicate.Evaluation(func(s *sql.Selector) {
		step := newExecutionResultsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Evaluation) predicate.Evaluation {
	return predicate.Evaluation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Evaluation) predicate.Evaluation {
	return predicate.Evaluation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Evaluation) predicate.Evaluation {
	return predicate.Evaluation(sql.NotPredicates(p))
}
