// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/promptlens/promptlens/ent/evaluation"
	"github.com/promptlens/promptlens/ent/evaluationconfig"
	"github.com/promptlens/promptlens/ent/executionresult"
	"github.com/promptlens/promptlens/ent/grade"
	"github.com/promptlens/promptlens/ent/grader"
	"github.com/promptlens/promptlens/ent/httptrace"
	"github.com/promptlens/promptlens/ent/implementation"
	"github.com/promptlens/promptlens/ent/predicate"
	"github.com/promptlens/promptlens/ent/project"
	"github.com/promptlens/promptlens/ent/targettaskmetrics"
	"github.com/promptlens/promptlens/ent/task"
	"github.com/promptlens/promptlens/ent/testcase"
	"github.com/promptlens/promptlens/ent/trace"
	"github.com/promptlens/promptlens/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeEvaluation        = "Evaluation"
	TypeEvaluationConfig  = "EvaluationConfig"
	TypeExecutionResult   = "ExecutionResult"
	TypeGrade             = "Grade"
	TypeGrader            = "Grader"
	TypeHTTPTrace         = "HTTPTrace"
	TypeImplementation    = "Implementation"
	TypeProject           = "Project"
	TypeTargetTaskMetrics = "TargetTaskMetrics"
	TypeTask              = "Task"
	TypeTestCase          = "TestCase"
	TypeTrace             = "Trace"
)

// EvaluationMutation represents an operation that mutates the Evaluation nodes in the graph.
type EvaluationMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	status                   *evaluation.Status
	grader_scores            *map[string]float64
	quality_score            *float64
	addquality_score         *float64
	avg_cost                 *float64
	addavg_cost              *float64
	avg_execution_time_ms    *float64
	addavg_execution_time_ms *float64
	test_case_count          *int
	addtest_case_count       *int
	error                    *string
	started_at               *time.Time
	completed_at             *time.Time
	clearedFields            map[string]struct{}
	task                     *string
	clearedtask              bool
	implementation           *string
	clearedimplementation    bool
	execution_results        map[string]struct{}
	removedexecution_results map[string]struct{}
	clearedexecution_results bool
	done                     bool
	oldValue                 func(context.Context) (*Evaluation, error)
	predicates               []predicate.Evaluation
}

var _ ent.Mutation = (*EvaluationMutation)(nil)

// evaluationOption allows management of the mutation configuration using functional options.
type evaluationOption func(*EvaluationMutation)

// newEvaluationMutation creates new mutation for the Evaluation entity.
func newEvaluationMutation(c config, op Op, opts ...evaluationOption) *EvaluationMutation {
	m := &EvaluationMutation{
		config:        c,
		op:            op,
		typ:           TypeEvaluation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvaluationID sets the ID field of the mutation.
func withEvaluationID(id string) evaluationOption {
	return func(m *EvaluationMutation) {
		var (
			err   error
			once  sync.Once
			value *Evaluation
		)
		m.oldValue = func(ctx context.Context) (*Evaluation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Evaluation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvaluation sets the old Evaluation of the mutation.
func withEvaluation(node *Evaluation) evaluationOption {
	return func(m *EvaluationMutation) {
		m.oldValue = func(context.Context) (*Evaluation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvaluationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvaluationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Evaluation entities.
func (m *EvaluationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvaluationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvaluationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Evaluation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *EvaluationMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *EvaluationMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *EvaluationMutation) ResetTaskID() {
	m.task = nil
}

// SetImplementationID sets the "implementation_id" field.
func (m *EvaluationMutation) SetImplementationID(s string) {
	m.implementation = &s
}

// ImplementationID returns the value of the "implementation_id" field in the mutation.
func (m *EvaluationMutation) ImplementationID() (r string, exists bool) {
	v := m.implementation
	if v == nil {
		return
	}
	return *v, true
}

// OldImplementationID returns the old "implementation_id" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldImplementationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImplementationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImplementationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImplementationID: %w", err)
	}
	return oldValue.ImplementationID, nil
}

// ResetImplementationID resets all changes to the "implementation_id" field.
func (m *EvaluationMutation) ResetImplementationID() {
	m.implementation = nil
}

// SetStatus sets the "status" field.
func (m *EvaluationMutation) SetStatus(e evaluation.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *EvaluationMutation) Status() (r evaluation.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldStatus(ctx context.Context) (v evaluation.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *EvaluationMutation) ResetStatus() {
	m.status = nil
}

// SetGraderScores sets the "grader_scores" field.
func (m *EvaluationMutation) SetGraderScores(value map[string]float64) {
	m.grader_scores = &value
}

// GraderScores returns the value of the "grader_scores" field in the mutation.
func (m *EvaluationMutation) GraderScores() (r map[string]float64, exists bool) {
	v := m.grader_scores
	if v == nil {
		return
	}
	return *v, true
}

// OldGraderScores returns the old "grader_scores" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldGraderScores(ctx context.Context) (v map[string]float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGraderScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGraderScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGraderScores: %w", err)
	}
	return oldValue.GraderScores, nil
}

// ClearGraderScores clears the value of the "grader_scores" field.
func (m *EvaluationMutation) ClearGraderScores() {
	m.grader_scores = nil
	m.clearedFields[evaluation.FieldGraderScores] = struct{}{}
}

// GraderScoresCleared returns if the "grader_scores" field was cleared in this mutation.
func (m *EvaluationMutation) GraderScoresCleared() bool {
	_, ok := m.clearedFields[evaluation.FieldGraderScores]
	return ok
}

// ResetGraderScores resets all changes to the "grader_scores" field.
func (m *EvaluationMutation) ResetGraderScores() {
	m.grader_scores = nil
	delete(m.clearedFields, evaluation.FieldGraderScores)
}

// SetQualityScore sets the "quality_score" field.
func (m *EvaluationMutation) SetQualityScore(f float64) {
	m.quality_score = &f
	m.addquality_score = nil
}

// QualityScore returns the value of the "quality_score" field in the mutation.
func (m *EvaluationMutation) QualityScore() (r float64, exists bool) {
	v := m.quality_score
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityScore returns the old "quality_score" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldQualityScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityScore: %w", err)
	}
	return oldValue.QualityScore, nil
}

// AddQualityScore adds f to the "quality_score" field.
func (m *EvaluationMutation) AddQualityScore(f float64) {
	if m.addquality_score != nil {
		*m.addquality_score += f
	} else {
		m.addquality_score = &f
	}
}

// AddedQualityScore returns the value that was added to the "quality_score" field in this mutation.
func (m *EvaluationMutation) AddedQualityScore() (r float64, exists bool) {
	v := m.addquality_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearQualityScore clears the value of the "quality_score" field.
func (m *EvaluationMutation) ClearQualityScore() {
	m.quality_score = nil
	m.addquality_score = nil
	m.clearedFields[evaluation.FieldQualityScore] = struct{}{}
}

// QualityScoreCleared returns if the "quality_score" field was cleared in this mutation.
func (m *EvaluationMutation) QualityScoreCleared() bool {
	_, ok := m.clearedFields[evaluation.FieldQualityScore]
	return ok
}

// ResetQualityScore resets all changes to the "quality_score" field.
func (m *EvaluationMutation) ResetQualityScore() {
	m.quality_score = nil
	m.addquality_score = nil
	delete(m.clearedFields, evaluation.FieldQualityScore)
}

// SetAvgCost sets the "avg_cost" field.
func (m *EvaluationMutation) SetAvgCost(f float64) {
	m.avg_cost = &f
	m.addavg_cost = nil
}

// AvgCost returns the value of the "avg_cost" field in the mutation.
func (m *EvaluationMutation) AvgCost() (r float64, exists bool) {
	v := m.avg_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgCost returns the old "avg_cost" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldAvgCost(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgCost: %w", err)
	}
	return oldValue.AvgCost, nil
}

// AddAvgCost adds f to the "avg_cost" field.
func (m *EvaluationMutation) AddAvgCost(f float64) {
	if m.addavg_cost != nil {
		*m.addavg_cost += f
	} else {
		m.addavg_cost = &f
	}
}

// AddedAvgCost returns the value that was added to the "avg_cost" field in this mutation.
func (m *EvaluationMutation) AddedAvgCost() (r float64, exists bool) {
	v := m.addavg_cost
	if v == nil {
		return
	}
	return *v, true
}

// ClearAvgCost clears the value of the "avg_cost" field.
func (m *EvaluationMutation) ClearAvgCost() {
	m.avg_cost = nil
	m.addavg_cost = nil
	m.clearedFields[evaluation.FieldAvgCost] = struct{}{}
}

// AvgCostCleared returns if the "avg_cost" field was cleared in this mutation.
func (m *EvaluationMutation) AvgCostCleared() bool {
	_, ok := m.clearedFields[evaluation.FieldAvgCost]
	return ok
}

// ResetAvgCost resets all changes to the "avg_cost" field.
func (m *EvaluationMutation) ResetAvgCost() {
	m.avg_cost = nil
	m.addavg_cost = nil
	delete(m.clearedFields, evaluation.FieldAvgCost)
}

// SetAvgExecutionTimeMs sets the "avg_execution_time_ms" field.
func (m *EvaluationMutation) SetAvgExecutionTimeMs(f float64) {
	m.avg_execution_time_ms = &f
	m.addavg_execution_time_ms = nil
}

// AvgExecutionTimeMs returns the value of the "avg_execution_time_ms" field in the mutation.
func (m *EvaluationMutation) AvgExecutionTimeMs() (r float64, exists bool) {
	v := m.avg_execution_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgExecutionTimeMs returns the old "avg_execution_time_ms" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldAvgExecutionTimeMs(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgExecutionTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgExecutionTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgExecutionTimeMs: %w", err)
	}
	return oldValue.AvgExecutionTimeMs, nil
}

// AddAvgExecutionTimeMs adds f to the "avg_execution_time_ms" field.
func (m *EvaluationMutation) AddAvgExecutionTimeMs(f float64) {
	if m.addavg_execution_time_ms != nil {
		*m.addavg_execution_time_ms += f
	} else {
		m.addavg_execution_time_ms = &f
	}
}

// AddedAvgExecutionTimeMs returns the value that was added to the "avg_execution_time_ms" field in this mutation.
func (m *EvaluationMutation) AddedAvgExecutionTimeMs() (r float64, exists bool) {
	v := m.addavg_execution_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearAvgExecutionTimeMs clears the value of the "avg_execution_time_ms" field.
func (m *EvaluationMutation) ClearAvgExecutionTimeMs() {
	m.avg_execution_time_ms = nil
	m.addavg_execution_time_ms = nil
	m.clearedFields[evaluation.FieldAvgExecutionTimeMs] = struct{}{}
}

// AvgExecutionTimeMsCleared returns if the "avg_execution_time_ms" field was cleared in this mutation.
func (m *EvaluationMutation) AvgExecutionTimeMsCleared() bool {
	_, ok := m.clearedFields[evaluation.FieldAvgExecutionTimeMs]
	return ok
}

// ResetAvgExecutionTimeMs resets all changes to the "avg_execution_time_ms" field.
func (m *EvaluationMutation) ResetAvgExecutionTimeMs() {
	m.avg_execution_time_ms = nil
	m.addavg_execution_time_ms = nil
	delete(m.clearedFields, evaluation.FieldAvgExecutionTimeMs)
}

// SetTestCaseCount sets the "test_case_count" field.
func (m *EvaluationMutation) SetTestCaseCount(i int) {
	m.test_case_count = &i
	m.addtest_case_count = nil
}

// TestCaseCount returns the value of the "test_case_count" field in the mutation.
func (m *EvaluationMutation) TestCaseCount() (r int, exists bool) {
	v := m.test_case_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTestCaseCount returns the old "test_case_count" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldTestCaseCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestCaseCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestCaseCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestCaseCount: %w", err)
	}
	return oldValue.TestCaseCount, nil
}

// AddTestCaseCount adds i to the "test_case_count" field.
func (m *EvaluationMutation) AddTestCaseCount(i int) {
	if m.addtest_case_count != nil {
		*m.addtest_case_count += i
	} else {
		m.addtest_case_count = &i
	}
}

// AddedTestCaseCount returns the value that was added to the "test_case_count" field in this mutation.
func (m *EvaluationMutation) AddedTestCaseCount() (r int, exists bool) {
	v := m.addtest_case_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTestCaseCount resets all changes to the "test_case_count" field.
func (m *EvaluationMutation) ResetTestCaseCount() {
	m.test_case_count = nil
	m.addtest_case_count = nil
}

// SetError sets the "error" field.
func (m *EvaluationMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *EvaluationMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *EvaluationMutation) ClearError() {
	m.error = nil
	m.clearedFields[evaluation.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *EvaluationMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[evaluation.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *EvaluationMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, evaluation.FieldError)
}

// SetStartedAt sets the "started_at" field.
func (m *EvaluationMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *EvaluationMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *EvaluationMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *EvaluationMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *EvaluationMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Evaluation entity.
// If the Evaluation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *EvaluationMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[evaluation.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *EvaluationMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[evaluation.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *EvaluationMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, evaluation.FieldCompletedAt)
}

// ClearTask clears the "task" edge to the Task entity.
func (m *EvaluationMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[evaluation.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *EvaluationMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *EvaluationMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *EvaluationMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// ClearImplementation clears the "implementation" edge to the Implementation entity.
func (m *EvaluationMutation) ClearImplementation() {
	m.clearedimplementation = true
	m.clearedFields[evaluation.FieldImplementationID] = struct{}{}
}

// ImplementationCleared reports if the "implementation" edge to the Implementation entity was cleared.
func (m *EvaluationMutation) ImplementationCleared() bool {
	return m.clearedimplementation
}

// ImplementationIDs returns the "implementation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ImplementationID instead. It exists only for internal usage by the builders.
func (m *EvaluationMutation) ImplementationIDs() (ids []string) {
	if id := m.implementation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetImplementation resets all changes to the "implementation" edge.
func (m *EvaluationMutation) ResetImplementation() {
	m.implementation = nil
	m.clearedimplementation = false
}

// AddExecutionResultIDs adds the "execution_results" edge to the ExecutionResult entity by ids.
func (m *EvaluationMutation) AddExecutionResultIDs(ids ...string) {
	if m.execution_results == nil {
		m.execution_results = make(map[string]struct{})
	}
	for i := range ids {
		m.execution_results[ids[i]] = struct{}{}
	}
}

// ClearExecutionResults clears the "execution_results" edge to the ExecutionResult entity.
func (m *EvaluationMutation) ClearExecutionResults() {
	m.clearedexecution_results = true
}

// ExecutionResultsCleared reports if the "execution_results" edge to the ExecutionResult entity was cleared.
func (m *EvaluationMutation) ExecutionResultsCleared() bool {
	return m.clearedexecution_results
}

// RemoveExecutionResultIDs removes the "execution_results" edge to the ExecutionResult entity by IDs.
func (m *EvaluationMutation) RemoveExecutionResultIDs(ids ...string) {
	if m.removedexecution_results == nil {
		m.removedexecution_results = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.execution_results, ids[i])
		m.removedexecution_results[ids[i]] = struct{}{}
	}
}

// RemovedExecutionResults returns the removed IDs of the "execution_results" edge to the ExecutionResult entity.
func (m *EvaluationMutation) RemovedExecutionResultsIDs() (ids []string) {
	for id := range m.removedexecution_results {
		ids = append(ids, id)
	}
	return
}

// ExecutionResultsIDs returns the "execution_results" edge IDs in the mutation.
func (m *EvaluationMutation) ExecutionResultsIDs() (ids []string) {
	for id := range m.execution_results {
		ids = append(ids, id)
	}
	return
}

// ResetExecutionResults resets all changes to the "execution_results" edge.
func (m *EvaluationMutation) ResetExecutionResults() {
	m.execution_results = nil
	m.clearedexecution_results = false
	m.removedexecution_results = nil
}

// Where appends a list predicates to the EvaluationMutation builder.
func (m *EvaluationMutation) Where(ps ...predicate.Evaluation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvaluationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvaluationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Evaluation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvaluationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvaluationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Evaluation).
func (m *EvaluationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvaluationMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.task != nil {
		fields = append(fields, evaluation.FieldTaskID)
	}
	if m.implementation != nil {
		fields = append(fields, evaluation.FieldImplementationID)
	}
	if m.status != nil {
		fields = append(fields, evaluation.FieldStatus)
	}
	if m.grader_scores != nil {
		fields = append(fields, evaluation.FieldGraderScores)
	}
	if m.quality_score != nil {
		fields = append(fields, evaluation.FieldQualityScore)
	}
	if m.avg_cost != nil {
		fields = append(fields, evaluation.FieldAvgCost)
	}
	if m.avg_execution_time_ms != nil {
		fields = append(fields, evaluation.FieldAvgExecutionTimeMs)
	}
	if m.test_case_count != nil {
		fields = append(fields, evaluation.FieldTestCaseCount)
	}
	if m.error != nil {
		fields = append(fields, evaluation.FieldError)
	}
	if m.started_at != nil {
		fields = append(fields, evaluation.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, evaluation.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvaluationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evaluation.FieldTaskID:
		return m.TaskID()
	case evaluation.FieldImplementationID:
		return m.ImplementationID()
	case evaluation.FieldStatus:
		return m.Status()
	case evaluation.FieldGraderScores:
		return m.GraderScores()
	case evaluation.FieldQualityScore:
		return m.QualityScore()
	case evaluation.FieldAvgCost:
		return m.AvgCost()
	case evaluation.FieldAvgExecutionTimeMs:
		return m.AvgExecutionTimeMs()
	case evaluation.FieldTestCaseCount:
		return m.TestCaseCount()
	case evaluation.FieldError:
		return m.Error()
	case evaluation.FieldStartedAt:
		return m.StartedAt()
	case evaluation.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvaluationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evaluation.FieldTaskID:
		return m.OldTaskID(ctx)
	case evaluation.FieldImplementationID:
		return m.OldImplementationID(ctx)
	case evaluation.FieldStatus:
		return m.OldStatus(ctx)
	case evaluation.FieldGraderScores:
		return m.OldGraderScores(ctx)
	case evaluation.FieldQualityScore:
		return m.OldQualityScore(ctx)
	case evaluation.FieldAvgCost:
		return m.OldAvgCost(ctx)
	case evaluation.FieldAvgExecutionTimeMs:
		return m.OldAvgExecutionTimeMs(ctx)
	case evaluation.FieldTestCaseCount:
		return m.OldTestCaseCount(ctx)
	case evaluation.FieldError:
		return m.OldError(ctx)
	case evaluation.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case evaluation.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Evaluation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evaluation.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case evaluation.FieldImplementationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImplementationID(v)
		return nil
	case evaluation.FieldStatus:
		v, ok := value.(evaluation.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case evaluation.FieldGraderScores:
		v, ok := value.(map[string]float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGraderScores(v)
		return nil
	case evaluation.FieldQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityScore(v)
		return nil
	case evaluation.FieldAvgCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgCost(v)
		return nil
	case evaluation.FieldAvgExecutionTimeMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgExecutionTimeMs(v)
		return nil
	case evaluation.FieldTestCaseCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestCaseCount(v)
		return nil
	case evaluation.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case evaluation.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case evaluation.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Evaluation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvaluationMutation) AddedFields() []string {
	var fields []string
	if m.addquality_score != nil {
		fields = append(fields, evaluation.FieldQualityScore)
	}
	if m.addavg_cost != nil {
		fields = append(fields, evaluation.FieldAvgCost)
	}
	if m.addavg_execution_time_ms != nil {
		fields = append(fields, evaluation.FieldAvgExecutionTimeMs)
	}
	if m.addtest_case_count != nil {
		fields = append(fields, evaluation.FieldTestCaseCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvaluationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evaluation.FieldQualityScore:
		return m.AddedQualityScore()
	case evaluation.FieldAvgCost:
		return m.AddedAvgCost()
	case evaluation.FieldAvgExecutionTimeMs:
		return m.AddedAvgExecutionTimeMs()
	case evaluation.FieldTestCaseCount:
		return m.AddedTestCaseCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evaluation.FieldQualityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQualityScore(v)
		return nil
	case evaluation.FieldAvgCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgCost(v)
		return nil
	case evaluation.FieldAvgExecutionTimeMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgExecutionTimeMs(v)
		return nil
	case evaluation.FieldTestCaseCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTestCaseCount(v)
		return nil
	}
	return fmt.Errorf("unknown Evaluation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvaluationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(evaluation.FieldGraderScores) {
		fields = append(fields, evaluation.FieldGraderScores)
	}
	if m.FieldCleared(evaluation.FieldQualityScore) {
		fields = append(fields, evaluation.FieldQualityScore)
	}
	if m.FieldCleared(evaluation.FieldAvgCost) {
		fields = append(fields, evaluation.FieldAvgCost)
	}
	if m.FieldCleared(evaluation.FieldAvgExecutionTimeMs) {
		fields = append(fields, evaluation.FieldAvgExecutionTimeMs)
	}
	if m.FieldCleared(evaluation.FieldError) {
		fields = append(fields, evaluation.FieldError)
	}
	if m.FieldCleared(evaluation.FieldCompletedAt) {
		fields = append(fields, evaluation.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvaluationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvaluationMutation) ClearField(name string) error {
	switch name {
	case evaluation.FieldGraderScores:
		m.ClearGraderScores()
		return nil
	case evaluation.FieldQualityScore:
		m.ClearQualityScore()
		return nil
	case evaluation.FieldAvgCost:
		m.ClearAvgCost()
		return nil
	case evaluation.FieldAvgExecutionTimeMs:
		m.ClearAvgExecutionTimeMs()
		return nil
	case evaluation.FieldError:
		m.ClearError()
		return nil
	case evaluation.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Evaluation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvaluationMutation) ResetField(name string) error {
	switch name {
	case evaluation.FieldTaskID:
		m.ResetTaskID()
		return nil
	case evaluation.FieldImplementationID:
		m.ResetImplementationID()
		return nil
	case evaluation.FieldStatus:
		m.ResetStatus()
		return nil
	case evaluation.FieldGraderScores:
		m.ResetGraderScores()
		return nil
	case evaluation.FieldQualityScore:
		m.ResetQualityScore()
		return nil
	case evaluation.FieldAvgCost:
		m.ResetAvgCost()
		return nil
	case evaluation.FieldAvgExecutionTimeMs:
		m.ResetAvgExecutionTimeMs()
		return nil
	case evaluation.FieldTestCaseCount:
		m.ResetTestCaseCount()
		return nil
	case evaluation.FieldError:
		m.ResetError()
		return nil
	case evaluation.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case evaluation.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Evaluation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvaluationMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.task != nil {
		edges = append(edges, evaluation.EdgeTask)
	}
	if m.implementation != nil {
		edges = append(edges, evaluation.EdgeImplementation)
	}
	if m.execution_results != nil {
		edges = append(edges, evaluation.EdgeExecutionResults)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvaluationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case evaluation.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	case evaluation.EdgeImplementation:
		if id := m.implementation; id != nil {
			return []ent.Value{*id}
		}
	case evaluation.EdgeExecutionResults:
		ids := make([]ent.Value, 0, len(m.execution_results))
		for id := range m.execution_results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvaluationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedexecution_results != nil {
		edges = append(edges, evaluation.EdgeExecutionResults)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvaluationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case evaluation.EdgeExecutionResults:
		ids := make([]ent.Value, 0, len(m.removedexecution_results))
		for id := range m.removedexecution_results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvaluationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedtask {
		edges = append(edges, evaluation.EdgeTask)
	}
	if m.clearedimplementation {
		edges = append(edges, evaluation.EdgeImplementation)
	}
	if m.clearedexecution_results {
		edges = append(edges, evaluation.EdgeExecutionResults)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvaluationMutation) EdgeCleared(name string) bool {
	switch name {
	case evaluation.EdgeTask:
		return m.clearedtask
	case evaluation.EdgeImplementation:
		return m.clearedimplementation
	case evaluation.EdgeExecutionResults:
		return m.clearedexecution_results
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvaluationMutation) ClearEdge(name string) error {
	switch name {
	case evaluation.EdgeTask:
		m.ClearTask()
		return nil
	case evaluation.EdgeImplementation:
		m.ClearImplementation()
		return nil
	}
	return fmt.Errorf("unknown Evaluation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvaluationMutation) ResetEdge(name string) error {
	switch name {
	case evaluation.EdgeTask:
		m.ResetTask()
		return nil
	case evaluation.EdgeImplementation:
		m.ResetImplementation()
		return nil
	case evaluation.EdgeExecutionResults:
		m.ResetExecutionResults()
		return nil
	}
	return fmt.Errorf("unknown Evaluation edge %s", name)
}

// EvaluationConfigMutation represents an operation that mutates the EvaluationConfig nodes in the graph.
type EvaluationConfigMutation struct {
	config
	op                Op
	typ               string
	id                *string
	quality_weight    *float64
	addquality_weight *float64
	cost_weight       *float64
	addcost_weight    *float64
	time_weight       *float64
	addtime_weight    *float64
	grader_ids        *[]string
	appendgrader_ids  []string
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	task              *string
	clearedtask       bool
	done              bool
	oldValue          func(context.Context) (*EvaluationConfig, error)
	predicates        []predicate.EvaluationConfig
}

var _ ent.Mutation = (*EvaluationConfigMutation)(nil)

// evaluationconfigOption allows management of the mutation configuration using functional options.
type evaluationconfigOption func(*EvaluationConfigMutation)

// newEvaluationConfigMutation creates new mutation for the EvaluationConfig entity.
func newEvaluationConfigMutation(c config, op Op, opts ...evaluationconfigOption) *EvaluationConfigMutation {
	m := &EvaluationConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeEvaluationConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEvaluationConfigID sets the ID field of the mutation.
func withEvaluationConfigID(id string) evaluationconfigOption {
	return func(m *EvaluationConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *EvaluationConfig
		)
		m.oldValue = func(ctx context.Context) (*EvaluationConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EvaluationConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvaluationConfig sets the old EvaluationConfig of the mutation.
func withEvaluationConfig(node *EvaluationConfig) evaluationconfigOption {
	return func(m *EvaluationConfigMutation) {
		m.oldValue = func(context.Context) (*EvaluationConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EvaluationConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EvaluationConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of EvaluationConfig entities.
func (m *EvaluationConfigMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EvaluationConfigMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EvaluationConfigMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EvaluationConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *EvaluationConfigMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *EvaluationConfigMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the EvaluationConfig entity.
// If the EvaluationConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationConfigMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *EvaluationConfigMutation) ResetTaskID() {
	m.task = nil
}

// SetQualityWeight sets the "quality_weight" field.
func (m *EvaluationConfigMutation) SetQualityWeight(f float64) {
	m.quality_weight = &f
	m.addquality_weight = nil
}

// QualityWeight returns the value of the "quality_weight" field in the mutation.
func (m *EvaluationConfigMutation) QualityWeight() (r float64, exists bool) {
	v := m.quality_weight
	if v == nil {
		return
	}
	return *v, true
}

// OldQualityWeight returns the old "quality_weight" field's value of the EvaluationConfig entity.
// If the EvaluationConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationConfigMutation) OldQualityWeight(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQualityWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQualityWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQualityWeight: %w", err)
	}
	return oldValue.QualityWeight, nil
}

// AddQualityWeight adds f to the "quality_weight" field.
func (m *EvaluationConfigMutation) AddQualityWeight(f float64) {
	if m.addquality_weight != nil {
		*m.addquality_weight += f
	} else {
		m.addquality_weight = &f
	}
}

// AddedQualityWeight returns the value that was added to the "quality_weight" field in this mutation.
func (m *EvaluationConfigMutation) AddedQualityWeight() (r float64, exists bool) {
	v := m.addquality_weight
	if v == nil {
		return
	}
	return *v, true
}

// ResetQualityWeight resets all changes to the "quality_weight" field.
func (m *EvaluationConfigMutation) ResetQualityWeight() {
	m.quality_weight = nil
	m.addquality_weight = nil
}

// SetCostWeight sets the "cost_weight" field.
func (m *EvaluationConfigMutation) SetCostWeight(f float64) {
	m.cost_weight = &f
	m.addcost_weight = nil
}

// CostWeight returns the value of the "cost_weight" field in the mutation.
func (m *EvaluationConfigMutation) CostWeight() (r float64, exists bool) {
	v := m.cost_weight
	if v == nil {
		return
	}
	return *v, true
}

// OldCostWeight returns the old "cost_weight" field's value of the EvaluationConfig entity.
// If the EvaluationConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationConfigMutation) OldCostWeight(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostWeight: %w", err)
	}
	return oldValue.CostWeight, nil
}

// AddCostWeight adds f to the "cost_weight" field.
func (m *EvaluationConfigMutation) AddCostWeight(f float64) {
	if m.addcost_weight != nil {
		*m.addcost_weight += f
	} else {
		m.addcost_weight = &f
	}
}

// AddedCostWeight returns the value that was added to the "cost_weight" field in this mutation.
func (m *EvaluationConfigMutation) AddedCostWeight() (r float64, exists bool) {
	v := m.addcost_weight
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostWeight resets all changes to the "cost_weight" field.
func (m *EvaluationConfigMutation) ResetCostWeight() {
	m.cost_weight = nil
	m.addcost_weight = nil
}

// SetTimeWeight sets the "time_weight" field.
func (m *EvaluationConfigMutation) SetTimeWeight(f float64) {
	m.time_weight = &f
	m.addtime_weight = nil
}

// TimeWeight returns the value of the "time_weight" field in the mutation.
func (m *EvaluationConfigMutation) TimeWeight() (r float64, exists bool) {
	v := m.time_weight
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeWeight returns the old "time_weight" field's value of the EvaluationConfig entity.
// If the EvaluationConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationConfigMutation) OldTimeWeight(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeWeight: %w", err)
	}
	return oldValue.TimeWeight, nil
}

// AddTimeWeight adds f to the "time_weight" field.
func (m *EvaluationConfigMutation) AddTimeWeight(f float64) {
	if m.addtime_weight != nil {
		*m.addtime_weight += f
	} else {
		m.addtime_weight = &f
	}
}

// AddedTimeWeight returns the value that was added to the "time_weight" field in this mutation.
func (m *EvaluationConfigMutation) AddedTimeWeight() (r float64, exists bool) {
	v := m.addtime_weight
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeWeight resets all changes to the "time_weight" field.
func (m *EvaluationConfigMutation) ResetTimeWeight() {
	m.time_weight = nil
	m.addtime_weight = nil
}

// SetGraderIds sets the "grader_ids" field.
func (m *EvaluationConfigMutation) SetGraderIds(s []string) {
	m.grader_ids = &s
	m.appendgrader_ids = nil
}

// GraderIds returns the value of the "grader_ids" field in the mutation.
func (m *EvaluationConfigMutation) GraderIds() (r []string, exists bool) {
	v := m.grader_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldGraderIds returns the old "grader_ids" field's value of the EvaluationConfig entity.
// If the EvaluationConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationConfigMutation) OldGraderIds(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGraderIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGraderIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGraderIds: %w", err)
	}
	return oldValue.GraderIds, nil
}

// AppendGraderIds adds s to the "grader_ids" field.
func (m *EvaluationConfigMutation) AppendGraderIds(s []string) {
	m.appendgrader_ids = append(m.appendgrader_ids, s...)
}

// AppendedGraderIds returns the list of values that were appended to the "grader_ids" field in this mutation.
func (m *EvaluationConfigMutation) AppendedGraderIds() ([]string, bool) {
	if len(m.appendgrader_ids) == 0 {
		return nil, false
	}
	return m.appendgrader_ids, true
}

// ResetGraderIds resets all changes to the "grader_ids" field.
func (m *EvaluationConfigMutation) ResetGraderIds() {
	m.grader_ids = nil
	m.appendgrader_ids = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EvaluationConfigMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EvaluationConfigMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EvaluationConfig entity.
// If the EvaluationConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationConfigMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EvaluationConfigMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *EvaluationConfigMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *EvaluationConfigMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the EvaluationConfig entity.
// If the EvaluationConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EvaluationConfigMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *EvaluationConfigMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *EvaluationConfigMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[evaluationconfig.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *EvaluationConfigMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *EvaluationConfigMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *EvaluationConfigMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the EvaluationConfigMutation builder.
func (m *EvaluationConfigMutation) Where(ps ...predicate.EvaluationConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EvaluationConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EvaluationConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EvaluationConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EvaluationConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EvaluationConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EvaluationConfig).
func (m *EvaluationConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EvaluationConfigMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.task != nil {
		fields = append(fields, evaluationconfig.FieldTaskID)
	}
	if m.quality_weight != nil {
		fields = append(fields, evaluationconfig.FieldQualityWeight)
	}
	if m.cost_weight != nil {
		fields = append(fields, evaluationconfig.FieldCostWeight)
	}
	if m.time_weight != nil {
		fields = append(fields, evaluationconfig.FieldTimeWeight)
	}
	if m.grader_ids != nil {
		fields = append(fields, evaluationconfig.FieldGraderIds)
	}
	if m.created_at != nil {
		fields = append(fields, evaluationconfig.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, evaluationconfig.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EvaluationConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case evaluationconfig.FieldTaskID:
		return m.TaskID()
	case evaluationconfig.FieldQualityWeight:
		return m.QualityWeight()
	case evaluationconfig.FieldCostWeight:
		return m.CostWeight()
	case evaluationconfig.FieldTimeWeight:
		return m.TimeWeight()
	case evaluationconfig.FieldGraderIds:
		return m.GraderIds()
	case evaluationconfig.FieldCreatedAt:
		return m.CreatedAt()
	case evaluationconfig.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EvaluationConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case evaluationconfig.FieldTaskID:
		return m.OldTaskID(ctx)
	case evaluationconfig.FieldQualityWeight:
		return m.OldQualityWeight(ctx)
	case evaluationconfig.FieldCostWeight:
		return m.OldCostWeight(ctx)
	case evaluationconfig.FieldTimeWeight:
		return m.OldTimeWeight(ctx)
	case evaluationconfig.FieldGraderIds:
		return m.OldGraderIds(ctx)
	case evaluationconfig.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case evaluationconfig.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EvaluationConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case evaluationconfig.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case evaluationconfig.FieldQualityWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQualityWeight(v)
		return nil
	case evaluationconfig.FieldCostWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostWeight(v)
		return nil
	case evaluationconfig.FieldTimeWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeWeight(v)
		return nil
	case evaluationconfig.FieldGraderIds:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGraderIds(v)
		return nil
	case evaluationconfig.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case evaluationconfig.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EvaluationConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EvaluationConfigMutation) AddedFields() []string {
	var fields []string
	if m.addquality_weight != nil {
		fields = append(fields, evaluationconfig.FieldQualityWeight)
	}
	if m.addcost_weight != nil {
		fields = append(fields, evaluationconfig.FieldCostWeight)
	}
	if m.addtime_weight != nil {
		fields = append(fields, evaluationconfig.FieldTimeWeight)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EvaluationConfigMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case evaluationconfig.FieldQualityWeight:
		return m.AddedQualityWeight()
	case evaluationconfig.FieldCostWeight:
		return m.AddedCostWeight()
	case evaluationconfig.FieldTimeWeight:
		return m.AddedTimeWeight()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EvaluationConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	case evaluationconfig.FieldQualityWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQualityWeight(v)
		return nil
	case evaluationconfig.FieldCostWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostWeight(v)
		return nil
	case evaluationconfig.FieldTimeWeight:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeWeight(v)
		return nil
	}
	return fmt.Errorf("unknown EvaluationConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EvaluationConfigMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EvaluationConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EvaluationConfigMutation) ClearField(name string) error {
	return fmt.Errorf("unknown EvaluationConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EvaluationConfigMutation) ResetField(name string) error {
	switch name {
	case evaluationconfig.FieldTaskID:
		m.ResetTaskID()
		return nil
	case evaluationconfig.FieldQualityWeight:
		m.ResetQualityWeight()
		return nil
	case evaluationconfig.FieldCostWeight:
		m.ResetCostWeight()
		return nil
	case evaluationconfig.FieldTimeWeight:
		m.ResetTimeWeight()
		return nil
	case evaluationconfig.FieldGraderIds:
		m.ResetGraderIds()
		return nil
	case evaluationconfig.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case evaluationconfig.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown EvaluationConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EvaluationConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, evaluationconfig.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EvaluationConfigMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case evaluationconfig.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EvaluationConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EvaluationConfigMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EvaluationConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, evaluationconfig.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EvaluationConfigMutation) EdgeCleared(name string) bool {
	switch name {
	case evaluationconfig.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EvaluationConfigMutation) ClearEdge(name string) error {
	switch name {
	case evaluationconfig.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown EvaluationConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EvaluationConfigMutation) ResetEdge(name string) error {
	switch name {
	case evaluationconfig.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown EvaluationConfig edge %s", name)
}

// ExecutionResultMutation represents an operation that mutates the ExecutionResult nodes in the graph.
type ExecutionResultMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	started_at            *time.Time
	completed_at          *time.Time
	prompt_rendered       *string
	variables             *map[string]string
	result_text           *string
	result_json           *map[string]interface{}
	tool_calls            *[]models.ToolCall
	appendtool_calls      []models.ToolCall
	error                 *string
	prompt_tokens         *int
	addprompt_tokens      *int
	completion_tokens     *int
	addcompletion_tokens  *int
	cached_tokens         *int
	addcached_tokens      *int
	reasoning_tokens      *int
	addreasoning_tokens   *int
	total_tokens          *int
	addtotal_tokens       *int
	system_fingerprint    *string
	cost                  *float64
	addcost               *float64
	created_at            *time.Time
	clearedFields         map[string]struct{}
	task                  *string
	clearedtask           bool
	implementation        *string
	clearedimplementation bool
	evaluation            *string
	clearedevaluation     bool
	test_case             *string
	clearedtest_case      bool
	grades                map[string]struct{}
	removedgrades         map[string]struct{}
	clearedgrades         bool
	done                  bool
	oldValue              func(context.Context) (*ExecutionResult, error)
	predicates            []predicate.ExecutionResult
}

var _ ent.Mutation = (*ExecutionResultMutation)(nil)

// executionresultOption allows management of the mutation configuration using functional options.
type executionresultOption func(*ExecutionResultMutation)

// newExecutionResultMutation creates new mutation for the ExecutionResult entity.
func newExecutionResultMutation(c config, op Op, opts ...executionresultOption) *ExecutionResultMutation {
	m := &ExecutionResultMutation{
		config:        c,
		op:            op,
		typ:           TypeExecutionResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExecutionResultID sets the ID field of the mutation.
func withExecutionResultID(id string) executionresultOption {
	return func(m *ExecutionResultMutation) {
		var (
			err   error
			once  sync.Once
			value *ExecutionResult
		)
		m.oldValue = func(ctx context.Context) (*ExecutionResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExecutionResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExecutionResult sets the old ExecutionResult of the mutation.
func withExecutionResult(node *ExecutionResult) executionresultOption {
	return func(m *ExecutionResultMutation) {
		m.oldValue = func(context.Context) (*ExecutionResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExecutionResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExecutionResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExecutionResult entities.
func (m *ExecutionResultMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExecutionResultMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExecutionResultMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExecutionResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *ExecutionResultMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *ExecutionResultMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the ExecutionResult entity.
// If the ExecutionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionResultMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *ExecutionResultMutation) ResetTaskID() {
	m.task = nil
}

// SetImplementationID sets the "implementation_id" field.
func (m *ExecutionResultMutation) SetImplementationID(s string) {
	m.implementation = &s
}

// ImplementationID returns the value of the "implementation_id" field in the mutation.
func (m *ExecutionResultMutation) ImplementationID() (r string, exists bool) {
	v := m.implementation
	if v == nil {
		return
	}
	return *v, true
}

// OldImplementationID returns the old "implementation_id" field's value of the ExecutionResult entity.
// If the ExecutionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionResultMutation) OldImplementationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImplementationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImplementationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImplementationID: %w", err)
	}
	return oldValue.ImplementationID, nil
}

// ResetImplementationID resets all changes to the "implementation_id" field.
func (m *ExecutionResultMutation) ResetImplementationID() {
	m.implementation = nil
}

// SetEvaluationID sets the "evaluation_id" field.
func (m *ExecutionResultMutation) SetEvaluationID(s string) {
	m.evaluation = &s
}

// EvaluationID returns the value of the "evaluation_id" field in the mutation.
func (m *ExecutionResultMutation) EvaluationID() (r string, exists bool) {
	v := m.evaluation
	if v == nil {
		return
	}
	return *v, true
}

// OldEvaluationID returns the old "evaluation_id" field's value of the ExecutionResult entity.
// If the ExecutionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionResultMutation) OldEvaluationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEvaluationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEvaluationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEvaluationID: %w", err)
	}
	return oldValue.EvaluationID, nil
}

// ClearEvaluationID clears the value of the "evaluation_id" field.
func (m *ExecutionResultMutation) ClearEvaluationID() {
	m.evaluation = nil
	m.clearedFields[executionresult.FieldEvaluationID] = struct{}{}
}

// EvaluationIDCleared returns if the "evaluation_id" field was cleared in this mutation.
func (m *ExecutionResultMutation) EvaluationIDCleared() bool {
	_, ok := m.clearedFields[executionresult.FieldEvaluationID]
	return ok
}

// ResetEvaluationID resets all changes to the "evaluation_id" field.
func (m *ExecutionResultMutation) ResetEvaluationID() {
	m.evaluation = nil
	delete(m.clearedFields, executionresult.FieldEvaluationID)
}

// SetTestCaseID sets the "test_case_id" field.
func (m *ExecutionResultMutation) SetTestCaseID(s string) {
	m.test_case = &s
}

// TestCaseID returns the value of the "test_case_id" field in the mutation.
func (m *ExecutionResultMutation) TestCaseID() (r string, exists bool) {
	v := m.test_case
	if v == nil {
		return
	}
	return *v, true
}

// OldTestCaseID returns the old "test_case_id" field's value of the ExecutionResult entity.
// If the ExecutionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionResultMutation) OldTestCaseID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTestCaseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTestCaseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTestCaseID: %w", err)
	}
	return oldValue.TestCaseID, nil
}

// ClearTestCaseID clears the value of the "test_case_id" field.
func (m *ExecutionResultMutation) ClearTestCaseID() {
	m.test_case = nil
	m.clearedFields[executionresult.FieldTestCaseID] = struct{}{}
}

// TestCaseIDCleared returns if the "test_case_id" field was cleared in this mutation.
func (m *ExecutionResultMutation) TestCaseIDCleared() bool {
	_, ok := m.clearedFields[executionresult.FieldTestCaseID]
	return ok
}

// ResetTestCaseID resets all changes to the "test_case_id" field.
func (m *ExecutionResultMutation) ResetTestCaseID() {
	m.test_case = nil
	delete(m.clearedFields, executionresult.FieldTestCaseID)
}

// SetStartedAt sets the "started_at" field.
func (m *ExecutionResultMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExecutionResultMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ExecutionResult entity.
// If the ExecutionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionResultMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExecutionResultMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ExecutionResultMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ExecutionResultMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ExecutionResult entity.
// If the ExecutionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionResultMutation) OldCompletedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ExecutionResultMutation) ResetCompletedAt() {
	m.completed_at = nil
}

// SetPromptRendered sets the "prompt_rendered" field.
func (m *ExecutionResultMutation) SetPromptRendered(s string) {
	m.prompt_rendered = &s
}

// PromptRendered returns the value of the "prompt_rendered" field in the mutation.
func (m *ExecutionResultMutation) PromptRendered() (r string, exists bool) {
	v := m.prompt_rendered
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptRendered returns the old "prompt_rendered" field's value of the ExecutionResult entity.
// If the ExecutionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionResultMutation) OldPromptRendered(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptRendered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptRendered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptRendered: %w", err)
	}
	return oldValue.PromptRendered, nil
}

// ResetPromptRendered resets all changes to the "prompt_rendered" field.
func (m *ExecutionResultMutation) ResetPromptRendered() {
	m.prompt_rendered = nil
}

// SetVariables sets the "variables" field.
func (m *ExecutionResultMutation) SetVariables(value map[string]string) {
	m.variables = &value
}

// Variables returns the value of the "variables" field in the mutation.
func (m *ExecutionResultMutation) Variables() (r map[string]string, exists bool) {
	v := m.variables
	if v == nil {
		return
	}
	return *v, true
}

// OldVariables returns the old "variables" field's value of the ExecutionResult entity.
// If the ExecutionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionResultMutation) OldVariables(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariables is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariables requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariables: %w", err)
	}
	return oldValue.Variables, nil
}

// ClearVariables clears the value of the "variables" field.
func (m *ExecutionResultMutation) ClearVariables() {
	m.variables = nil
	m.clearedFields[executionresult.FieldVariables] = struct{}{}
}

// VariablesCleared returns if the "variables" field was cleared in this mutation.
func (m *ExecutionResultMutation) VariablesCleared() bool {
	_, ok := m.clearedFields[executionresult.FieldVariables]
	return ok
}

// ResetVariables resets all changes to the "variables" field.
func (m *ExecutionResultMutation) ResetVariables() {
	m.variables = nil
	delete(m.clearedFields, executionresult.FieldVariables)
}

// SetResultText sets the "result_text" field.
func (m *ExecutionResultMutation) SetResultText(s string) {
	m.result_text = &s
}

// ResultText returns the value of the "result_text" field in the mutation.
func (m *ExecutionResultMutation) ResultText() (r string, exists bool) {
	v := m.result_text
	if v == nil {
		return
	}
	return *v, true
}

// OldResultText returns the old "result_text" field's value of the ExecutionResult entity.
// If the ExecutionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionResultMutation) OldResultText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultText: %w", err)
	}
	return oldValue.ResultText, nil
}

// ClearResultText clears the value of the "result_text" field.
func (m *ExecutionResultMutation) ClearResultText() {
	m.result_text = nil
	m.clearedFields[executionresult.FieldResultText] = struct{}{}
}

// ResultTextCleared returns if the "result_text" field was cleared in this mutation.
func (m *ExecutionResultMutation) ResultTextCleared() bool {
	_, ok := m.clearedFields[executionresult.FieldResultText]
	return ok
}

// ResetResultText resets all changes to the "result_text" field.
func (m *ExecutionResultMutation) ResetResultText() {
	m.result_text = nil
	delete(m.clearedFields, executionresult.FieldResultText)
}

// SetResultJSON sets the "result_json" field.
func (m *ExecutionResultMutation) SetResultJSON(value map[string]interface{}) {
	m.result_json = &value
}

// ResultJSON returns the value of the "result_json" field in the mutation.
func (m *ExecutionResultMutation) ResultJSON() (r map[string]interface{}, exists bool) {
	v := m.result_json
	if v == nil {
		return
	}
	return *v, true
}

// OldResultJSON returns the old "result_json" field's value of the ExecutionResult entity.
// If the ExecutionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionResultMutation) OldResultJSON(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResultJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResultJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResultJSON: %w", err)
	}
	return oldValue.ResultJSON, nil
}

// ClearResultJSON clears the value of the "result_json" field.
func (m *ExecutionResultMutation) ClearResultJSON() {
	m.result_json = nil
	m.clearedFields[executionresult.FieldResultJSON] = struct{}{}
}

// ResultJSONCleared returns if the "result_json" field was cleared in this mutation.
func (m *ExecutionResultMutation) ResultJSONCleared() bool {
	_, ok := m.clearedFields[executionresult.FieldResultJSON]
	return ok
}

// ResetResultJSON resets all changes to the "result_json" field.
func (m *ExecutionResultMutation) ResetResultJSON() {
	m.result_json = nil
	delete(m.clearedFields, executionresult.FieldResultJSON)
}

// SetToolCalls sets the "tool_calls" field.
func (m *ExecutionResultMutation) SetToolCalls(mc []models.ToolCall) {
	m.tool_calls = &mc
	m.appendtool_calls = nil
}

// ToolCalls returns the value of the "tool_calls" field in the mutation.
func (m *ExecutionResultMutation) ToolCalls() (r []models.ToolCall, exists bool) {
	v := m.tool_calls
	if v == nil {
		return
	}
	return *v, true
}

// OldToolCalls returns the old "tool_calls" field's value of the ExecutionResult entity.
// If the ExecutionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionResultMutation) OldToolCalls(ctx context.Context) (v []models.ToolCall, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolCalls is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolCalls requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolCalls: %w", err)
	}
	return oldValue.ToolCalls, nil
}

// AppendToolCalls adds mc to the "tool_calls" field.
func (m *ExecutionResultMutation) AppendToolCalls(mc []models.ToolCall) {
	m.appendtool_calls = append(m.appendtool_calls, mc...)
}

// AppendedToolCalls returns the list of values that were appended to the "tool_calls" field in this mutation.
func (m *ExecutionResultMutation) AppendedToolCalls() ([]models.ToolCall, bool) {
	if len(m.appendtool_calls) == 0 {
		return nil, false
	}
	return m.appendtool_calls, true
}

// ClearToolCalls clears the value of the "tool_calls" field.
func (m *ExecutionResultMutation) ClearToolCalls() {
	m.tool_calls = nil
	m.appendtool_calls = nil
	m.clearedFields[executionresult.FieldToolCalls] = struct{}{}
}

// ToolCallsCleared returns if the "tool_calls" field was cleared in this mutation.
func (m *ExecutionResultMutation) ToolCallsCleared() bool {
	_, ok := m.clearedFields[executionresult.FieldToolCalls]
	return ok
}

// ResetToolCalls resets all changes to the "tool_calls" field.
func (m *ExecutionResultMutation) ResetToolCalls() {
	m.tool_calls = nil
	m.appendtool_calls = nil
	delete(m.clearedFields, executionresult.FieldToolCalls)
}

// SetError sets the "error" field.
func (m *ExecutionResultMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *ExecutionResultMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the ExecutionResult entity.
// If the ExecutionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionResultMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *ExecutionResultMutation) ClearError() {
	m.error = nil
	m.clearedFields[executionresult.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *ExecutionResultMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[executionresult.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *ExecutionResultMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, executionresult.FieldError)
}

// SetPromptTokens sets the "prompt_tokens" field.
func (m *ExecutionResultMutation) SetPromptTokens(i int) {
	m.prompt_tokens = &i
	m.addprompt_tokens = nil
}

// PromptTokens returns the value of the "prompt_tokens" field in the mutation.
func (m *ExecutionResultMutation) PromptTokens() (r int, exists bool) {
	v := m.prompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptTokens returns the old "prompt_tokens" field's value of the ExecutionResult entity.
// If the ExecutionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionResultMutation) OldPromptTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptTokens: %w", err)
	}
	return oldValue.PromptTokens, nil
}

// AddPromptTokens adds i to the "prompt_tokens" field.
func (m *ExecutionResultMutation) AddPromptTokens(i int) {
	if m.addprompt_tokens != nil {
		*m.addprompt_tokens += i
	} else {
		m.addprompt_tokens = &i
	}
}

// AddedPromptTokens returns the value that was added to the "prompt_tokens" field in this mutation.
func (m *ExecutionResultMutation) AddedPromptTokens() (r int, exists bool) {
	v := m.addprompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetPromptTokens resets all changes to the "prompt_tokens" field.
func (m *ExecutionResultMutation) ResetPromptTokens() {
	m.prompt_tokens = nil
	m.addprompt_tokens = nil
}

// SetCompletionTokens sets the "completion_tokens" field.
func (m *ExecutionResultMutation) SetCompletionTokens(i int) {
	m.completion_tokens = &i
	m.addcompletion_tokens = nil
}

// CompletionTokens returns the value of the "completion_tokens" field in the mutation.
func (m *ExecutionResultMutation) CompletionTokens() (r int, exists bool) {
	v := m.completion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionTokens returns the old "completion_tokens" field's value of the ExecutionResult entity.
// If the ExecutionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionResultMutation) OldCompletionTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionTokens: %w", err)
	}
	return oldValue.CompletionTokens, nil
}

// AddCompletionTokens adds i to the "completion_tokens" field.
func (m *ExecutionResultMutation) AddCompletionTokens(i int) {
	if m.addcompletion_tokens != nil {
		*m.addcompletion_tokens += i
	} else {
		m.addcompletion_tokens = &i
	}
}

// AddedCompletionTokens returns the value that was added to the "completion_tokens" field in this mutation.
func (m *ExecutionResultMutation) AddedCompletionTokens() (r int, exists bool) {
	v := m.addcompletion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletionTokens resets all changes to the "completion_tokens" field.
func (m *ExecutionResultMutation) ResetCompletionTokens() {
	m.completion_tokens = nil
	m.addcompletion_tokens = nil
}

// SetCachedTokens sets the "cached_tokens" field.
func (m *ExecutionResultMutation) SetCachedTokens(i int) {
	m.cached_tokens = &i
	m.addcached_tokens = nil
}

// CachedTokens returns the value of the "cached_tokens" field in the mutation.
func (m *ExecutionResultMutation) CachedTokens() (r int, exists bool) {
	v := m.cached_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCachedTokens returns the old "cached_tokens" field's value of the ExecutionResult entity.
// If the ExecutionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionResultMutation) OldCachedTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCachedTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCachedTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCachedTokens: %w", err)
	}
	return oldValue.CachedTokens, nil
}

// AddCachedTokens adds i to the "cached_tokens" field.
func (m *ExecutionResultMutation) AddCachedTokens(i int) {
	if m.addcached_tokens != nil {
		*m.addcached_tokens += i
	} else {
		m.addcached_tokens = &i
	}
}

// AddedCachedTokens returns the value that was added to the "cached_tokens" field in this mutation.
func (m *ExecutionResultMutation) AddedCachedTokens() (r int, exists bool) {
	v := m.addcached_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetCachedTokens resets all changes to the "cached_tokens" field.
func (m *ExecutionResultMutation) ResetCachedTokens() {
	m.cached_tokens = nil
	m.addcached_tokens = nil
}

// SetReasoningTokens sets the "reasoning_tokens" field.
func (m *ExecutionResultMutation) SetReasoningTokens(i int) {
	m.reasoning_tokens = &i
	m.addreasoning_tokens = nil
}

// ReasoningTokens returns the value of the "reasoning_tokens" field in the mutation.
func (m *ExecutionResultMutation) ReasoningTokens() (r int, exists bool) {
	v := m.reasoning_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoningTokens returns the old "reasoning_tokens" field's value of the ExecutionResult entity.
// If the ExecutionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionResultMutation) OldReasoningTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoningTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoningTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoningTokens: %w", err)
	}
	return oldValue.ReasoningTokens, nil
}

// AddReasoningTokens adds i to the "reasoning_tokens" field.
func (m *ExecutionResultMutation) AddReasoningTokens(i int) {
	if m.addreasoning_tokens != nil {
		*m.addreasoning_tokens += i
	} else {
		m.addreasoning_tokens = &i
	}
}

// AddedReasoningTokens returns the value that was added to the "reasoning_tokens" field in this mutation.
func (m *ExecutionResultMutation) AddedReasoningTokens() (r int, exists bool) {
	v := m.addreasoning_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetReasoningTokens resets all changes to the "reasoning_tokens" field.
func (m *ExecutionResultMutation) ResetReasoningTokens() {
	m.reasoning_tokens = nil
	m.addreasoning_tokens = nil
}

// SetTotalTokens sets the "total_tokens" field.
func (m *ExecutionResultMutation) SetTotalTokens(i int) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *ExecutionResultMutation) TotalTokens() (r int, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the ExecutionResult entity.
// If the ExecutionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionResultMutation) OldTotalTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *ExecutionResultMutation) AddTotalTokens(i int) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *ExecutionResultMutation) AddedTotalTokens() (r int, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *ExecutionResultMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
}

// SetSystemFingerprint sets the "system_fingerprint" field.
func (m *ExecutionResultMutation) SetSystemFingerprint(s string) {
	m.system_fingerprint = &s
}

// SystemFingerprint returns the value of the "system_fingerprint" field in the mutation.
func (m *ExecutionResultMutation) SystemFingerprint() (r string, exists bool) {
	v := m.system_fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemFingerprint returns the old "system_fingerprint" field's value of the ExecutionResult entity.
// If the ExecutionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionResultMutation) OldSystemFingerprint(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemFingerprint: %w", err)
	}
	return oldValue.SystemFingerprint, nil
}

// ClearSystemFingerprint clears the value of the "system_fingerprint" field.
func (m *ExecutionResultMutation) ClearSystemFingerprint() {
	m.system_fingerprint = nil
	m.clearedFields[executionresult.FieldSystemFingerprint] = struct{}{}
}

// SystemFingerprintCleared returns if the "system_fingerprint" field was cleared in this mutation.
func (m *ExecutionResultMutation) SystemFingerprintCleared() bool {
	_, ok := m.clearedFields[executionresult.FieldSystemFingerprint]
	return ok
}

// ResetSystemFingerprint resets all changes to the "system_fingerprint" field.
func (m *ExecutionResultMutation) ResetSystemFingerprint() {
	m.system_fingerprint = nil
	delete(m.clearedFields, executionresult.FieldSystemFingerprint)
}

// SetCost sets the "cost" field.
func (m *ExecutionResultMutation) SetCost(f float64) {
	m.cost = &f
	m.addcost = nil
}

// Cost returns the value of the "cost" field in the mutation.
func (m *ExecutionResultMutation) Cost() (r float64, exists bool) {
	v := m.cost
	if v == nil {
		return
	}
	return *v, true
}

// OldCost returns the old "cost" field's value of the ExecutionResult entity.
// If the ExecutionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionResultMutation) OldCost(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCost: %w", err)
	}
	return oldValue.Cost, nil
}

// AddCost adds f to the "cost" field.
func (m *ExecutionResultMutation) AddCost(f float64) {
	if m.addcost != nil {
		*m.addcost += f
	} else {
		m.addcost = &f
	}
}

// AddedCost returns the value that was added to the "cost" field in this mutation.
func (m *ExecutionResultMutation) AddedCost() (r float64, exists bool) {
	v := m.addcost
	if v == nil {
		return
	}
	return *v, true
}

// ClearCost clears the value of the "cost" field.
func (m *ExecutionResultMutation) ClearCost() {
	m.cost = nil
	m.addcost = nil
	m.clearedFields[executionresult.FieldCost] = struct{}{}
}

// CostCleared returns if the "cost" field was cleared in this mutation.
func (m *ExecutionResultMutation) CostCleared() bool {
	_, ok := m.clearedFields[executionresult.FieldCost]
	return ok
}

// ResetCost resets all changes to the "cost" field.
func (m *ExecutionResultMutation) ResetCost() {
	m.cost = nil
	m.addcost = nil
	delete(m.clearedFields, executionresult.FieldCost)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExecutionResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExecutionResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExecutionResult entity.
// If the ExecutionResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExecutionResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExecutionResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *ExecutionResultMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[executionresult.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *ExecutionResultMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *ExecutionResultMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *ExecutionResultMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// ClearImplementation clears the "implementation" edge to the Implementation entity.
func (m *ExecutionResultMutation) ClearImplementation() {
	m.clearedimplementation = true
	m.clearedFields[executionresult.FieldImplementationID] = struct{}{}
}

// ImplementationCleared reports if the "implementation" edge to the Implementation entity was cleared.
func (m *ExecutionResultMutation) ImplementationCleared() bool {
	return m.clearedimplementation
}

// ImplementationIDs returns the "implementation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ImplementationID instead. It exists only for internal usage by the builders.
func (m *ExecutionResultMutation) ImplementationIDs() (ids []string) {
	if id := m.implementation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetImplementation resets all changes to the "implementation" edge.
func (m *ExecutionResultMutation) ResetImplementation() {
	m.implementation = nil
	m.clearedimplementation = false
}

// ClearEvaluation clears the "evaluation" edge to the Evaluation entity.
func (m *ExecutionResultMutation) ClearEvaluation() {
	m.clearedevaluation = true
	m.clearedFields[executionresult.FieldEvaluationID] = struct{}{}
}

// EvaluationCleared reports if the "evaluation" edge to the Evaluation entity was cleared.
func (m *ExecutionResultMutation) EvaluationCleared() bool {
	return m.EvaluationIDCleared() || m.clearedevaluation
}

// EvaluationIDs returns the "evaluation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EvaluationID instead. It exists only for internal usage by the builders.
func (m *ExecutionResultMutation) EvaluationIDs() (ids []string) {
	if id := m.evaluation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEvaluation resets all changes to the "evaluation" edge.
func (m *ExecutionResultMutation) ResetEvaluation() {
	m.evaluation = nil
	m.clearedevaluation = false
}

// ClearTestCase clears the "test_case" edge to the TestCase entity.
func (m *ExecutionResultMutation) ClearTestCase() {
	m.clearedtest_case = true
	m.clearedFields[executionresult.FieldTestCaseID] = struct{}{}
}

// TestCaseCleared reports if the "test_case" edge to the TestCase entity was cleared.
func (m *ExecutionResultMutation) TestCaseCleared() bool {
	return m.TestCaseIDCleared() || m.clearedtest_case
}

// TestCaseIDs returns the "test_case" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TestCaseID instead. It exists only for internal usage by the builders.
func (m *ExecutionResultMutation) TestCaseIDs() (ids []string) {
	if id := m.test_case; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTestCase resets all changes to the "test_case" edge.
func (m *ExecutionResultMutation) ResetTestCase() {
	m.test_case = nil
	m.clearedtest_case = false
}

// AddGradeIDs adds the "grades" edge to the Grade entity by ids.
func (m *ExecutionResultMutation) AddGradeIDs(ids ...string) {
	if m.grades == nil {
		m.grades = make(map[string]struct{})
	}
	for i := range ids {
		m.grades[ids[i]] = struct{}{}
	}
}

// ClearGrades clears the "grades" edge to the Grade entity.
func (m *ExecutionResultMutation) ClearGrades() {
	m.clearedgrades = true
}

// GradesCleared reports if the "grades" edge to the Grade entity was cleared.
func (m *ExecutionResultMutation) GradesCleared() bool {
	return m.clearedgrades
}

// RemoveGradeIDs removes the "grades" edge to the Grade entity by IDs.
func (m *ExecutionResultMutation) RemoveGradeIDs(ids ...string) {
	if m.removedgrades == nil {
		m.removedgrades = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.grades, ids[i])
		m.removedgrades[ids[i]] = struct{}{}
	}
}

// RemovedGrades returns the removed IDs of the "grades" edge to the Grade entity.
func (m *ExecutionResultMutation) RemovedGradesIDs() (ids []string) {
	for id := range m.removedgrades {
		ids = append(ids, id)
	}
	return
}

// GradesIDs returns the "grades" edge IDs in the mutation.
func (m *ExecutionResultMutation) GradesIDs() (ids []string) {
	for id := range m.grades {
		ids = append(ids, id)
	}
	return
}

// ResetGrades resets all changes to the "grades" edge.
func (m *ExecutionResultMutation) ResetGrades() {
	m.grades = nil
	m.clearedgrades = false
	m.removedgrades = nil
}

// Where appends a list predicates to the ExecutionResultMutation builder.
func (m *ExecutionResultMutation) Where(ps ...predicate.ExecutionResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExecutionResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExecutionResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExecutionResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExecutionResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExecutionResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExecutionResult).
func (m *ExecutionResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExecutionResultMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.task != nil {
		fields = append(fields, executionresult.FieldTaskID)
	}
	if m.implementation != nil {
		fields = append(fields, executionresult.FieldImplementationID)
	}
	if m.evaluation != nil {
		fields = append(fields, executionresult.FieldEvaluationID)
	}
	if m.test_case != nil {
		fields = append(fields, executionresult.FieldTestCaseID)
	}
	if m.started_at != nil {
		fields = append(fields, executionresult.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, executionresult.FieldCompletedAt)
	}
	if m.prompt_rendered != nil {
		fields = append(fields, executionresult.FieldPromptRendered)
	}
	if m.variables != nil {
		fields = append(fields, executionresult.FieldVariables)
	}
	if m.result_text != nil {
		fields = append(fields, executionresult.FieldResultText)
	}
	if m.result_json != nil {
		fields = append(fields, executionresult.FieldResultJSON)
	}
	if m.tool_calls != nil {
		fields = append(fields, executionresult.FieldToolCalls)
	}
	if m.error != nil {
		fields = append(fields, executionresult.FieldError)
	}
	if m.prompt_tokens != nil {
		fields = append(fields, executionresult.FieldPromptTokens)
	}
	if m.completion_tokens != nil {
		fields = append(fields, executionresult.FieldCompletionTokens)
	}
	if m.cached_tokens != nil {
		fields = append(fields, executionresult.FieldCachedTokens)
	}
	if m.reasoning_tokens != nil {
		fields = append(fields, executionresult.FieldReasoningTokens)
	}
	if m.total_tokens != nil {
		fields = append(fields, executionresult.FieldTotalTokens)
	}
	if m.system_fingerprint != nil {
		fields = append(fields, executionresult.FieldSystemFingerprint)
	}
	if m.cost != nil {
		fields = append(fields, executionresult.FieldCost)
	}
	if m.created_at != nil {
		fields = append(fields, executionresult.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExecutionResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case executionresult.FieldTaskID:
		return m.TaskID()
	case executionresult.FieldImplementationID:
		return m.ImplementationID()
	case executionresult.FieldEvaluationID:
		return m.EvaluationID()
	case executionresult.FieldTestCaseID:
		return m.TestCaseID()
	case executionresult.FieldStartedAt:
		return m.StartedAt()
	case executionresult.FieldCompletedAt:
		return m.CompletedAt()
	case executionresult.FieldPromptRendered:
		return m.PromptRendered()
	case executionresult.FieldVariables:
		return m.Variables()
	case executionresult.FieldResultText:
		return m.ResultText()
	case executionresult.FieldResultJSON:
		return m.ResultJSON()
	case executionresult.FieldToolCalls:
		return m.ToolCalls()
	case executionresult.FieldError:
		return m.Error()
	case executionresult.FieldPromptTokens:
		return m.PromptTokens()
	case executionresult.FieldCompletionTokens:
		return m.CompletionTokens()
	case executionresult.FieldCachedTokens:
		return m.CachedTokens()
	case executionresult.FieldReasoningTokens:
		return m.ReasoningTokens()
	case executionresult.FieldTotalTokens:
		return m.TotalTokens()
	case executionresult.FieldSystemFingerprint:
		return m.SystemFingerprint()
	case executionresult.FieldCost:
		return m.Cost()
	case executionresult.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExecutionResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case executionresult.FieldTaskID:
		return m.OldTaskID(ctx)
	case executionresult.FieldImplementationID:
		return m.OldImplementationID(ctx)
	case executionresult.FieldEvaluationID:
		return m.OldEvaluationID(ctx)
	case executionresult.FieldTestCaseID:
		return m.OldTestCaseID(ctx)
	case executionresult.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case executionresult.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case executionresult.FieldPromptRendered:
		return m.OldPromptRendered(ctx)
	case executionresult.FieldVariables:
		return m.OldVariables(ctx)
	case executionresult.FieldResultText:
		return m.OldResultText(ctx)
	case executionresult.FieldResultJSON:
		return m.OldResultJSON(ctx)
	case executionresult.FieldToolCalls:
		return m.OldToolCalls(ctx)
	case executionresult.FieldError:
		return m.OldError(ctx)
	case executionresult.FieldPromptTokens:
		return m.OldPromptTokens(ctx)
	case executionresult.FieldCompletionTokens:
		return m.OldCompletionTokens(ctx)
	case executionresult.FieldCachedTokens:
		return m.OldCachedTokens(ctx)
	case executionresult.FieldReasoningTokens:
		return m.OldReasoningTokens(ctx)
	case executionresult.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case executionresult.FieldSystemFingerprint:
		return m.OldSystemFingerprint(ctx)
	case executionresult.FieldCost:
		return m.OldCost(ctx)
	case executionresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExecutionResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case executionresult.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case executionresult.FieldImplementationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImplementationID(v)
		return nil
	case executionresult.FieldEvaluationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEvaluationID(v)
		return nil
	case executionresult.FieldTestCaseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTestCaseID(v)
		return nil
	case executionresult.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case executionresult.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case executionresult.FieldPromptRendered:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptRendered(v)
		return nil
	case executionresult.FieldVariables:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariables(v)
		return nil
	case executionresult.FieldResultText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultText(v)
		return nil
	case executionresult.FieldResultJSON:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResultJSON(v)
		return nil
	case executionresult.FieldToolCalls:
		v, ok := value.([]models.ToolCall)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolCalls(v)
		return nil
	case executionresult.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case executionresult.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptTokens(v)
		return nil
	case executionresult.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionTokens(v)
		return nil
	case executionresult.FieldCachedTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCachedTokens(v)
		return nil
	case executionresult.FieldReasoningTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoningTokens(v)
		return nil
	case executionresult.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case executionresult.FieldSystemFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemFingerprint(v)
		return nil
	case executionresult.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCost(v)
		return nil
	case executionresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutionResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExecutionResultMutation) AddedFields() []string {
	var fields []string
	if m.addprompt_tokens != nil {
		fields = append(fields, executionresult.FieldPromptTokens)
	}
	if m.addcompletion_tokens != nil {
		fields = append(fields, executionresult.FieldCompletionTokens)
	}
	if m.addcached_tokens != nil {
		fields = append(fields, executionresult.FieldCachedTokens)
	}
	if m.addreasoning_tokens != nil {
		fields = append(fields, executionresult.FieldReasoningTokens)
	}
	if m.addtotal_tokens != nil {
		fields = append(fields, executionresult.FieldTotalTokens)
	}
	if m.addcost != nil {
		fields = append(fields, executionresult.FieldCost)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExecutionResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case executionresult.FieldPromptTokens:
		return m.AddedPromptTokens()
	case executionresult.FieldCompletionTokens:
		return m.AddedCompletionTokens()
	case executionresult.FieldCachedTokens:
		return m.AddedCachedTokens()
	case executionresult.FieldReasoningTokens:
		return m.AddedReasoningTokens()
	case executionresult.FieldTotalTokens:
		return m.AddedTotalTokens()
	case executionresult.FieldCost:
		return m.AddedCost()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExecutionResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	case executionresult.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPromptTokens(v)
		return nil
	case executionresult.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionTokens(v)
		return nil
	case executionresult.FieldCachedTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCachedTokens(v)
		return nil
	case executionresult.FieldReasoningTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReasoningTokens(v)
		return nil
	case executionresult.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	case executionresult.FieldCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCost(v)
		return nil
	}
	return fmt.Errorf("unknown ExecutionResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExecutionResultMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(executionresult.FieldEvaluationID) {
		fields = append(fields, executionresult.FieldEvaluationID)
	}
	if m.FieldCleared(executionresult.FieldTestCaseID) {
		fields = append(fields, executionresult.FieldTestCaseID)
	}
	if m.FieldCleared(executionresult.FieldVariables) {
		fields = append(fields, executionresult.FieldVariables)
	}
	if m.FieldCleared(executionresult.FieldResultText) {
		fields = append(fields, executionresult.FieldResultText)
	}
	if m.FieldCleared(executionresult.FieldResultJSON) {
		fields = append(fields, executionresult.FieldResultJSON)
	}
	if m.FieldCleared(executionresult.FieldToolCalls) {
		fields = append(fields, executionresult.FieldToolCalls)
	}
	if m.FieldCleared(executionresult.FieldError) {
		fields = append(fields, executionresult.FieldError)
	}
	if m.FieldCleared(executionresult.FieldSystemFingerprint) {
		fields = append(fields, executionresult.FieldSystemFingerprint)
	}
	if m.FieldCleared(executionresult.FieldCost) {
		fields = append(fields, executionresult.FieldCost)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExecutionResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExecutionResultMutation) ClearField(name string) error {
	switch name {
	case executionresult.FieldEvaluationID:
		m.ClearEvaluationID()
		return nil
	case executionresult.FieldTestCaseID:
		m.ClearTestCaseID()
		return nil
	case executionresult.FieldVariables:
		m.ClearVariables()
		return nil
	case executionresult.FieldResultText:
		m.ClearResultText()
		return nil
	case executionresult.FieldResultJSON:
		m.ClearResultJSON()
		return nil
	case executionresult.FieldToolCalls:
		m.ClearToolCalls()
		return nil
	case executionresult.FieldError:
		m.ClearError()
		return nil
	case executionresult.FieldSystemFingerprint:
		m.ClearSystemFingerprint()
		return nil
	case executionresult.FieldCost:
		m.ClearCost()
		return nil
	}
	return fmt.Errorf("unknown ExecutionResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExecutionResultMutation) ResetField(name string) error {
	switch name {
	case executionresult.FieldTaskID:
		m.ResetTaskID()
		return nil
	case executionresult.FieldImplementationID:
		m.ResetImplementationID()
		return nil
	case executionresult.FieldEvaluationID:
		m.ResetEvaluationID()
		return nil
	case executionresult.FieldTestCaseID:
		m.ResetTestCaseID()
		return nil
	case executionresult.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case executionresult.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case executionresult.FieldPromptRendered:
		m.ResetPromptRendered()
		return nil
	case executionresult.FieldVariables:
		m.ResetVariables()
		return nil
	case executionresult.FieldResultText:
		m.ResetResultText()
		return nil
	case executionresult.FieldResultJSON:
		m.ResetResultJSON()
		return nil
	case executionresult.FieldToolCalls:
		m.ResetToolCalls()
		return nil
	case executionresult.FieldError:
		m.ResetError()
		return nil
	case executionresult.FieldPromptTokens:
		m.ResetPromptTokens()
		return nil
	case executionresult.FieldCompletionTokens:
		m.ResetCompletionTokens()
		return nil
	case executionresult.FieldCachedTokens:
		m.ResetCachedTokens()
		return nil
	case executionresult.FieldReasoningTokens:
		m.ResetReasoningTokens()
		return nil
	case executionresult.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case executionresult.FieldSystemFingerprint:
		m.ResetSystemFingerprint()
		return nil
	case executionresult.FieldCost:
		m.ResetCost()
		return nil
	case executionresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExecutionResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExecutionResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.task != nil {
		edges = append(edges, executionresult.EdgeTask)
	}
	if m.implementation != nil {
		edges = append(edges, executionresult.EdgeImplementation)
	}
	if m.evaluation != nil {
		edges = append(edges, executionresult.EdgeEvaluation)
	}
	if m.test_case != nil {
		edges = append(edges, executionresult.EdgeTestCase)
	}
	if m.grades != nil {
		edges = append(edges, executionresult.EdgeGrades)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExecutionResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case executionresult.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	case executionresult.EdgeImplementation:
		if id := m.implementation; id != nil {
			return []ent.Value{*id}
		}
	case executionresult.EdgeEvaluation:
		if id := m.evaluation; id != nil {
			return []ent.Value{*id}
		}
	case executionresult.EdgeTestCase:
		if id := m.test_case; id != nil {
			return []ent.Value{*id}
		}
	case executionresult.EdgeGrades:
		ids := make([]ent.Value, 0, len(m.grades))
		for id := range m.grades {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExecutionResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedgrades != nil {
		edges = append(edges, executionresult.EdgeGrades)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExecutionResultMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case executionresult.EdgeGrades:
		ids := make([]ent.Value, 0, len(m.removedgrades))
		for id := range m.removedgrades {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExecutionResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedtask {
		edges = append(edges, executionresult.EdgeTask)
	}
	if m.clearedimplementation {
		edges = append(edges, executionresult.EdgeImplementation)
	}
	if m.clearedevaluation {
		edges = append(edges, executionresult.EdgeEvaluation)
	}
	if m.clearedtest_case {
		edges = append(edges, executionresult.EdgeTestCase)
	}
	if m.clearedgrades {
		edges = append(edges, executionresult.EdgeGrades)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExecutionResultMutation) EdgeCleared(name string) bool {
	switch name {
	case executionresult.EdgeTask:
		return m.clearedtask
	case executionresult.EdgeImplementation:
		return m.clearedimplementation
	case executionresult.EdgeEvaluation:
		return m.clearedevaluation
	case executionresult.EdgeTestCase:
		return m.clearedtest_case
	case executionresult.EdgeGrades:
		return m.clearedgrades
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExecutionResultMutation) ClearEdge(name string) error {
	switch name {
	case executionresult.EdgeTask:
		m.ClearTask()
		return nil
	case executionresult.EdgeImplementation:
		m.ClearImplementation()
		return nil
	case executionresult.EdgeEvaluation:
		m.ClearEvaluation()
		return nil
	case executionresult.EdgeTestCase:
		m.ClearTestCase()
		return nil
	}
	return fmt.Errorf("unknown ExecutionResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExecutionResultMutation) ResetEdge(name string) error {
	switch name {
	case executionresult.EdgeTask:
		m.ResetTask()
		return nil
	case executionresult.EdgeImplementation:
		m.ResetImplementation()
		return nil
	case executionresult.EdgeEvaluation:
		m.ResetEvaluation()
		return nil
	case executionresult.EdgeTestCase:
		m.ResetTestCase()
		return nil
	case executionresult.EdgeGrades:
		m.ResetGrades()
		return nil
	}
	return fmt.Errorf("unknown ExecutionResult edge %s", name)
}

// GradeMutation represents an operation that mutates the Grade nodes in the graph.
type GradeMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	score_float             *float64
	addscore_float          *float64
	score_boolean           *bool
	reasoning               *string
	confidence              *float64
	addconfidence           *float64
	prompt_tokens           *int
	addprompt_tokens        *int
	completion_tokens       *int
	addcompletion_tokens    *int
	total_tokens            *int
	addtotal_tokens         *int
	grading_started_at      *time.Time
	grading_completed_at    *time.Time
	error                   *string
	clearedFields           map[string]struct{}
	grader                  *string
	clearedgrader           bool
	trace                   *string
	clearedtrace            bool
	execution_result        *string
	clearedexecution_result bool
	done                    bool
	oldValue                func(context.Context) (*Grade, error)
	predicates              []predicate.Grade
}

var _ ent.Mutation = (*GradeMutation)(nil)

// gradeOption allows management of the mutation configuration using functional options.
type gradeOption func(*GradeMutation)

// newGradeMutation creates new mutation for the Grade entity.
func newGradeMutation(c config, op Op, opts ...gradeOption) *GradeMutation {
	m := &GradeMutation{
		config:        c,
		op:            op,
		typ:           TypeGrade,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGradeID sets the ID field of the mutation.
func withGradeID(id string) gradeOption {
	return func(m *GradeMutation) {
		var (
			err   error
			once  sync.Once
			value *Grade
		)
		m.oldValue = func(ctx context.Context) (*Grade, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Grade.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGrade sets the old Grade of the mutation.
func withGrade(node *Grade) gradeOption {
	return func(m *GradeMutation) {
		m.oldValue = func(context.Context) (*Grade, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GradeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GradeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Grade entities.
func (m *GradeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GradeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GradeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Grade.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetGraderID sets the "grader_id" field.
func (m *GradeMutation) SetGraderID(s string) {
	m.grader = &s
}

// GraderID returns the value of the "grader_id" field in the mutation.
func (m *GradeMutation) GraderID() (r string, exists bool) {
	v := m.grader
	if v == nil {
		return
	}
	return *v, true
}

// OldGraderID returns the old "grader_id" field's value of the Grade entity.
// If the Grade object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeMutation) OldGraderID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGraderID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGraderID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGraderID: %w", err)
	}
	return oldValue.GraderID, nil
}

// ResetGraderID resets all changes to the "grader_id" field.
func (m *GradeMutation) ResetGraderID() {
	m.grader = nil
}

// SetTraceID sets the "trace_id" field.
func (m *GradeMutation) SetTraceID(s string) {
	m.trace = &s
}

// TraceID returns the value of the "trace_id" field in the mutation.
func (m *GradeMutation) TraceID() (r string, exists bool) {
	v := m.trace
	if v == nil {
		return
	}
	return *v, true
}

// OldTraceID returns the old "trace_id" field's value of the Grade entity.
// If the Grade object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeMutation) OldTraceID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTraceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTraceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTraceID: %w", err)
	}
	return oldValue.TraceID, nil
}

// ClearTraceID clears the value of the "trace_id" field.
func (m *GradeMutation) ClearTraceID() {
	m.trace = nil
	m.clearedFields[grade.FieldTraceID] = struct{}{}
}

// TraceIDCleared returns if the "trace_id" field was cleared in this mutation.
func (m *GradeMutation) TraceIDCleared() bool {
	_, ok := m.clearedFields[grade.FieldTraceID]
	return ok
}

// ResetTraceID resets all changes to the "trace_id" field.
func (m *GradeMutation) ResetTraceID() {
	m.trace = nil
	delete(m.clearedFields, grade.FieldTraceID)
}

// SetExecutionResultID sets the "execution_result_id" field.
func (m *GradeMutation) SetExecutionResultID(s string) {
	m.execution_result = &s
}

// ExecutionResultID returns the value of the "execution_result_id" field in the mutation.
func (m *GradeMutation) ExecutionResultID() (r string, exists bool) {
	v := m.execution_result
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionResultID returns the old "execution_result_id" field's value of the Grade entity.
// If the Grade object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeMutation) OldExecutionResultID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionResultID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionResultID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionResultID: %w", err)
	}
	return oldValue.ExecutionResultID, nil
}

// ClearExecutionResultID clears the value of the "execution_result_id" field.
func (m *GradeMutation) ClearExecutionResultID() {
	m.execution_result = nil
	m.clearedFields[grade.FieldExecutionResultID] = struct{}{}
}

// ExecutionResultIDCleared returns if the "execution_result_id" field was cleared in this mutation.
func (m *GradeMutation) ExecutionResultIDCleared() bool {
	_, ok := m.clearedFields[grade.FieldExecutionResultID]
	return ok
}

// ResetExecutionResultID resets all changes to the "execution_result_id" field.
func (m *GradeMutation) ResetExecutionResultID() {
	m.execution_result = nil
	delete(m.clearedFields, grade.FieldExecutionResultID)
}

// SetScoreFloat sets the "score_float" field.
func (m *GradeMutation) SetScoreFloat(f float64) {
	m.score_float = &f
	m.addscore_float = nil
}

// ScoreFloat returns the value of the "score_float" field in the mutation.
func (m *GradeMutation) ScoreFloat() (r float64, exists bool) {
	v := m.score_float
	if v == nil {
		return
	}
	return *v, true
}

// OldScoreFloat returns the old "score_float" field's value of the Grade entity.
// If the Grade object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeMutation) OldScoreFloat(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScoreFloat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScoreFloat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScoreFloat: %w", err)
	}
	return oldValue.ScoreFloat, nil
}

// AddScoreFloat adds f to the "score_float" field.
func (m *GradeMutation) AddScoreFloat(f float64) {
	if m.addscore_float != nil {
		*m.addscore_float += f
	} else {
		m.addscore_float = &f
	}
}

// AddedScoreFloat returns the value that was added to the "score_float" field in this mutation.
func (m *GradeMutation) AddedScoreFloat() (r float64, exists bool) {
	v := m.addscore_float
	if v == nil {
		return
	}
	return *v, true
}

// ClearScoreFloat clears the value of the "score_float" field.
func (m *GradeMutation) ClearScoreFloat() {
	m.score_float = nil
	m.addscore_float = nil
	m.clearedFields[grade.FieldScoreFloat] = struct{}{}
}

// ScoreFloatCleared returns if the "score_float" field was cleared in this mutation.
func (m *GradeMutation) ScoreFloatCleared() bool {
	_, ok := m.clearedFields[grade.FieldScoreFloat]
	return ok
}

// ResetScoreFloat resets all changes to the "score_float" field.
func (m *GradeMutation) ResetScoreFloat() {
	m.score_float = nil
	m.addscore_float = nil
	delete(m.clearedFields, grade.FieldScoreFloat)
}

// SetScoreBoolean sets the "score_boolean" field.
func (m *GradeMutation) SetScoreBoolean(b bool) {
	m.score_boolean = &b
}

// ScoreBoolean returns the value of the "score_boolean" field in the mutation.
func (m *GradeMutation) ScoreBoolean() (r bool, exists bool) {
	v := m.score_boolean
	if v == nil {
		return
	}
	return *v, true
}

// OldScoreBoolean returns the old "score_boolean" field's value of the Grade entity.
// If the Grade object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeMutation) OldScoreBoolean(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScoreBoolean is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScoreBoolean requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScoreBoolean: %w", err)
	}
	return oldValue.ScoreBoolean, nil
}

// ClearScoreBoolean clears the value of the "score_boolean" field.
func (m *GradeMutation) ClearScoreBoolean() {
	m.score_boolean = nil
	m.clearedFields[grade.FieldScoreBoolean] = struct{}{}
}

// ScoreBooleanCleared returns if the "score_boolean" field was cleared in this mutation.
func (m *GradeMutation) ScoreBooleanCleared() bool {
	_, ok := m.clearedFields[grade.FieldScoreBoolean]
	return ok
}

// ResetScoreBoolean resets all changes to the "score_boolean" field.
func (m *GradeMutation) ResetScoreBoolean() {
	m.score_boolean = nil
	delete(m.clearedFields, grade.FieldScoreBoolean)
}

// SetReasoning sets the "reasoning" field.
func (m *GradeMutation) SetReasoning(s string) {
	m.reasoning = &s
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *GradeMutation) Reasoning() (r string, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the Grade entity.
// If the Grade object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeMutation) OldReasoning(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ClearReasoning clears the value of the "reasoning" field.
func (m *GradeMutation) ClearReasoning() {
	m.reasoning = nil
	m.clearedFields[grade.FieldReasoning] = struct{}{}
}

// ReasoningCleared returns if the "reasoning" field was cleared in this mutation.
func (m *GradeMutation) ReasoningCleared() bool {
	_, ok := m.clearedFields[grade.FieldReasoning]
	return ok
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *GradeMutation) ResetReasoning() {
	m.reasoning = nil
	delete(m.clearedFields, grade.FieldReasoning)
}

// SetConfidence sets the "confidence" field.
func (m *GradeMutation) SetConfidence(f float64) {
	m.confidence = &f
	m.addconfidence = nil
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *GradeMutation) Confidence() (r float64, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Grade entity.
// If the Grade object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeMutation) OldConfidence(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// AddConfidence adds f to the "confidence" field.
func (m *GradeMutation) AddConfidence(f float64) {
	if m.addconfidence != nil {
		*m.addconfidence += f
	} else {
		m.addconfidence = &f
	}
}

// AddedConfidence returns the value that was added to the "confidence" field in this mutation.
func (m *GradeMutation) AddedConfidence() (r float64, exists bool) {
	v := m.addconfidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearConfidence clears the value of the "confidence" field.
func (m *GradeMutation) ClearConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	m.clearedFields[grade.FieldConfidence] = struct{}{}
}

// ConfidenceCleared returns if the "confidence" field was cleared in this mutation.
func (m *GradeMutation) ConfidenceCleared() bool {
	_, ok := m.clearedFields[grade.FieldConfidence]
	return ok
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *GradeMutation) ResetConfidence() {
	m.confidence = nil
	m.addconfidence = nil
	delete(m.clearedFields, grade.FieldConfidence)
}

// SetPromptTokens sets the "prompt_tokens" field.
func (m *GradeMutation) SetPromptTokens(i int) {
	m.prompt_tokens = &i
	m.addprompt_tokens = nil
}

// PromptTokens returns the value of the "prompt_tokens" field in the mutation.
func (m *GradeMutation) PromptTokens() (r int, exists bool) {
	v := m.prompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptTokens returns the old "prompt_tokens" field's value of the Grade entity.
// If the Grade object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeMutation) OldPromptTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptTokens: %w", err)
	}
	return oldValue.PromptTokens, nil
}

// AddPromptTokens adds i to the "prompt_tokens" field.
func (m *GradeMutation) AddPromptTokens(i int) {
	if m.addprompt_tokens != nil {
		*m.addprompt_tokens += i
	} else {
		m.addprompt_tokens = &i
	}
}

// AddedPromptTokens returns the value that was added to the "prompt_tokens" field in this mutation.
func (m *GradeMutation) AddedPromptTokens() (r int, exists bool) {
	v := m.addprompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearPromptTokens clears the value of the "prompt_tokens" field.
func (m *GradeMutation) ClearPromptTokens() {
	m.prompt_tokens = nil
	m.addprompt_tokens = nil
	m.clearedFields[grade.FieldPromptTokens] = struct{}{}
}

// PromptTokensCleared returns if the "prompt_tokens" field was cleared in this mutation.
func (m *GradeMutation) PromptTokensCleared() bool {
	_, ok := m.clearedFields[grade.FieldPromptTokens]
	return ok
}

// ResetPromptTokens resets all changes to the "prompt_tokens" field.
func (m *GradeMutation) ResetPromptTokens() {
	m.prompt_tokens = nil
	m.addprompt_tokens = nil
	delete(m.clearedFields, grade.FieldPromptTokens)
}

// SetCompletionTokens sets the "completion_tokens" field.
func (m *GradeMutation) SetCompletionTokens(i int) {
	m.completion_tokens = &i
	m.addcompletion_tokens = nil
}

// CompletionTokens returns the value of the "completion_tokens" field in the mutation.
func (m *GradeMutation) CompletionTokens() (r int, exists bool) {
	v := m.completion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionTokens returns the old "completion_tokens" field's value of the Grade entity.
// If the Grade object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeMutation) OldCompletionTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionTokens: %w", err)
	}
	return oldValue.CompletionTokens, nil
}

// AddCompletionTokens adds i to the "completion_tokens" field.
func (m *GradeMutation) AddCompletionTokens(i int) {
	if m.addcompletion_tokens != nil {
		*m.addcompletion_tokens += i
	} else {
		m.addcompletion_tokens = &i
	}
}

// AddedCompletionTokens returns the value that was added to the "completion_tokens" field in this mutation.
func (m *GradeMutation) AddedCompletionTokens() (r int, exists bool) {
	v := m.addcompletion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearCompletionTokens clears the value of the "completion_tokens" field.
func (m *GradeMutation) ClearCompletionTokens() {
	m.completion_tokens = nil
	m.addcompletion_tokens = nil
	m.clearedFields[grade.FieldCompletionTokens] = struct{}{}
}

// CompletionTokensCleared returns if the "completion_tokens" field was cleared in this mutation.
func (m *GradeMutation) CompletionTokensCleared() bool {
	_, ok := m.clearedFields[grade.FieldCompletionTokens]
	return ok
}

// ResetCompletionTokens resets all changes to the "completion_tokens" field.
func (m *GradeMutation) ResetCompletionTokens() {
	m.completion_tokens = nil
	m.addcompletion_tokens = nil
	delete(m.clearedFields, grade.FieldCompletionTokens)
}

// SetTotalTokens sets the "total_tokens" field.
func (m *GradeMutation) SetTotalTokens(i int) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *GradeMutation) TotalTokens() (r int, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the Grade entity.
// If the Grade object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeMutation) OldTotalTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *GradeMutation) AddTotalTokens(i int) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *GradeMutation) AddedTotalTokens() (r int, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearTotalTokens clears the value of the "total_tokens" field.
func (m *GradeMutation) ClearTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
	m.clearedFields[grade.FieldTotalTokens] = struct{}{}
}

// TotalTokensCleared returns if the "total_tokens" field was cleared in this mutation.
func (m *GradeMutation) TotalTokensCleared() bool {
	_, ok := m.clearedFields[grade.FieldTotalTokens]
	return ok
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *GradeMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
	delete(m.clearedFields, grade.FieldTotalTokens)
}

// SetGradingStartedAt sets the "grading_started_at" field.
func (m *GradeMutation) SetGradingStartedAt(t time.Time) {
	m.grading_started_at = &t
}

// GradingStartedAt returns the value of the "grading_started_at" field in the mutation.
func (m *GradeMutation) GradingStartedAt() (r time.Time, exists bool) {
	v := m.grading_started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldGradingStartedAt returns the old "grading_started_at" field's value of the Grade entity.
// If the Grade object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeMutation) OldGradingStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGradingStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGradingStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGradingStartedAt: %w", err)
	}
	return oldValue.GradingStartedAt, nil
}

// ResetGradingStartedAt resets all changes to the "grading_started_at" field.
func (m *GradeMutation) ResetGradingStartedAt() {
	m.grading_started_at = nil
}

// SetGradingCompletedAt sets the "grading_completed_at" field.
func (m *GradeMutation) SetGradingCompletedAt(t time.Time) {
	m.grading_completed_at = &t
}

// GradingCompletedAt returns the value of the "grading_completed_at" field in the mutation.
func (m *GradeMutation) GradingCompletedAt() (r time.Time, exists bool) {
	v := m.grading_completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldGradingCompletedAt returns the old "grading_completed_at" field's value of the Grade entity.
// If the Grade object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeMutation) OldGradingCompletedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGradingCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGradingCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGradingCompletedAt: %w", err)
	}
	return oldValue.GradingCompletedAt, nil
}

// ResetGradingCompletedAt resets all changes to the "grading_completed_at" field.
func (m *GradeMutation) ResetGradingCompletedAt() {
	m.grading_completed_at = nil
}

// SetError sets the "error" field.
func (m *GradeMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *GradeMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the Grade entity.
// If the Grade object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GradeMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *GradeMutation) ClearError() {
	m.error = nil
	m.clearedFields[grade.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *GradeMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[grade.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *GradeMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, grade.FieldError)
}

// ClearGrader clears the "grader" edge to the Grader entity.
func (m *GradeMutation) ClearGrader() {
	m.clearedgrader = true
	m.clearedFields[grade.FieldGraderID] = struct{}{}
}

// GraderCleared reports if the "grader" edge to the Grader entity was cleared.
func (m *GradeMutation) GraderCleared() bool {
	return m.clearedgrader
}

// GraderIDs returns the "grader" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GraderID instead. It exists only for internal usage by the builders.
func (m *GradeMutation) GraderIDs() (ids []string) {
	if id := m.grader; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGrader resets all changes to the "grader" edge.
func (m *GradeMutation) ResetGrader() {
	m.grader = nil
	m.clearedgrader = false
}

// ClearTrace clears the "trace" edge to the Trace entity.
func (m *GradeMutation) ClearTrace() {
	m.clearedtrace = true
	m.clearedFields[grade.FieldTraceID] = struct{}{}
}

// TraceCleared reports if the "trace" edge to the Trace entity was cleared.
func (m *GradeMutation) TraceCleared() bool {
	return m.TraceIDCleared() || m.clearedtrace
}

// TraceIDs returns the "trace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TraceID instead. It exists only for internal usage by the builders.
func (m *GradeMutation) TraceIDs() (ids []string) {
	if id := m.trace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTrace resets all changes to the "trace" edge.
func (m *GradeMutation) ResetTrace() {
	m.trace = nil
	m.clearedtrace = false
}

// ClearExecutionResult clears the "execution_result" edge to the ExecutionResult entity.
func (m *GradeMutation) ClearExecutionResult() {
	m.clearedexecution_result = true
	m.clearedFields[grade.FieldExecutionResultID] = struct{}{}
}

// ExecutionResultCleared reports if the "execution_result" edge to the ExecutionResult entity was cleared.
func (m *GradeMutation) ExecutionResultCleared() bool {
	return m.ExecutionResultIDCleared() || m.clearedexecution_result
}

// ExecutionResultIDs returns the "execution_result" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExecutionResultID instead. It exists only for internal usage by the builders.
func (m *GradeMutation) ExecutionResultIDs() (ids []string) {
	if id := m.execution_result; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExecutionResult resets all changes to the "execution_result" edge.
func (m *GradeMutation) ResetExecutionResult() {
	m.execution_result = nil
	m.clearedexecution_result = false
}

// Where appends a list predicates to the GradeMutation builder.
func (m *GradeMutation) Where(ps ...predicate.Grade) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GradeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GradeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Grade, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GradeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GradeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Grade).
func (m *GradeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GradeMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.grader != nil {
		fields = append(fields, grade.FieldGraderID)
	}
	if m.trace != nil {
		fields = append(fields, grade.FieldTraceID)
	}
	if m.execution_result != nil {
		fields = append(fields, grade.FieldExecutionResultID)
	}
	if m.score_float != nil {
		fields = append(fields, grade.FieldScoreFloat)
	}
	if m.score_boolean != nil {
		fields = append(fields, grade.FieldScoreBoolean)
	}
	if m.reasoning != nil {
		fields = append(fields, grade.FieldReasoning)
	}
	if m.confidence != nil {
		fields = append(fields, grade.FieldConfidence)
	}
	if m.prompt_tokens != nil {
		fields = append(fields, grade.FieldPromptTokens)
	}
	if m.completion_tokens != nil {
		fields = append(fields, grade.FieldCompletionTokens)
	}
	if m.total_tokens != nil {
		fields = append(fields, grade.FieldTotalTokens)
	}
	if m.grading_started_at != nil {
		fields = append(fields, grade.FieldGradingStartedAt)
	}
	if m.grading_completed_at != nil {
		fields = append(fields, grade.FieldGradingCompletedAt)
	}
	if m.error != nil {
		fields = append(fields, grade.FieldError)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GradeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case grade.FieldGraderID:
		return m.GraderID()
	case grade.FieldTraceID:
		return m.TraceID()
	case grade.FieldExecutionResultID:
		return m.ExecutionResultID()
	case grade.FieldScoreFloat:
		return m.ScoreFloat()
	case grade.FieldScoreBoolean:
		return m.ScoreBoolean()
	case grade.FieldReasoning:
		return m.Reasoning()
	case grade.FieldConfidence:
		return m.Confidence()
	case grade.FieldPromptTokens:
		return m.PromptTokens()
	case grade.FieldCompletionTokens:
		return m.CompletionTokens()
	case grade.FieldTotalTokens:
		return m.TotalTokens()
	case grade.FieldGradingStartedAt:
		return m.GradingStartedAt()
	case grade.FieldGradingCompletedAt:
		return m.GradingCompletedAt()
	case grade.FieldError:
		return m.Error()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GradeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case grade.FieldGraderID:
		return m.OldGraderID(ctx)
	case grade.FieldTraceID:
		return m.OldTraceID(ctx)
	case grade.FieldExecutionResultID:
		return m.OldExecutionResultID(ctx)
	case grade.FieldScoreFloat:
		return m.OldScoreFloat(ctx)
	case grade.FieldScoreBoolean:
		return m.OldScoreBoolean(ctx)
	case grade.FieldReasoning:
		return m.OldReasoning(ctx)
	case grade.FieldConfidence:
		return m.OldConfidence(ctx)
	case grade.FieldPromptTokens:
		return m.OldPromptTokens(ctx)
	case grade.FieldCompletionTokens:
		return m.OldCompletionTokens(ctx)
	case grade.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case grade.FieldGradingStartedAt:
		return m.OldGradingStartedAt(ctx)
	case grade.FieldGradingCompletedAt:
		return m.OldGradingCompletedAt(ctx)
	case grade.FieldError:
		return m.OldError(ctx)
	}
	return nil, fmt.Errorf("unknown Grade field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GradeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case grade.FieldGraderID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGraderID(v)
		return nil
	case grade.FieldTraceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTraceID(v)
		return nil
	case grade.FieldExecutionResultID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionResultID(v)
		return nil
	case grade.FieldScoreFloat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScoreFloat(v)
		return nil
	case grade.FieldScoreBoolean:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScoreBoolean(v)
		return nil
	case grade.FieldReasoning:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case grade.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case grade.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptTokens(v)
		return nil
	case grade.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionTokens(v)
		return nil
	case grade.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case grade.FieldGradingStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGradingStartedAt(v)
		return nil
	case grade.FieldGradingCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGradingCompletedAt(v)
		return nil
	case grade.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	}
	return fmt.Errorf("unknown Grade field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GradeMutation) AddedFields() []string {
	var fields []string
	if m.addscore_float != nil {
		fields = append(fields, grade.FieldScoreFloat)
	}
	if m.addconfidence != nil {
		fields = append(fields, grade.FieldConfidence)
	}
	if m.addprompt_tokens != nil {
		fields = append(fields, grade.FieldPromptTokens)
	}
	if m.addcompletion_tokens != nil {
		fields = append(fields, grade.FieldCompletionTokens)
	}
	if m.addtotal_tokens != nil {
		fields = append(fields, grade.FieldTotalTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GradeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case grade.FieldScoreFloat:
		return m.AddedScoreFloat()
	case grade.FieldConfidence:
		return m.AddedConfidence()
	case grade.FieldPromptTokens:
		return m.AddedPromptTokens()
	case grade.FieldCompletionTokens:
		return m.AddedCompletionTokens()
	case grade.FieldTotalTokens:
		return m.AddedTotalTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GradeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case grade.FieldScoreFloat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScoreFloat(v)
		return nil
	case grade.FieldConfidence:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddConfidence(v)
		return nil
	case grade.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPromptTokens(v)
		return nil
	case grade.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionTokens(v)
		return nil
	case grade.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	}
	return fmt.Errorf("unknown Grade numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GradeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(grade.FieldTraceID) {
		fields = append(fields, grade.FieldTraceID)
	}
	if m.FieldCleared(grade.FieldExecutionResultID) {
		fields = append(fields, grade.FieldExecutionResultID)
	}
	if m.FieldCleared(grade.FieldScoreFloat) {
		fields = append(fields, grade.FieldScoreFloat)
	}
	if m.FieldCleared(grade.FieldScoreBoolean) {
		fields = append(fields, grade.FieldScoreBoolean)
	}
	if m.FieldCleared(grade.FieldReasoning) {
		fields = append(fields, grade.FieldReasoning)
	}
	if m.FieldCleared(grade.FieldConfidence) {
		fields = append(fields, grade.FieldConfidence)
	}
	if m.FieldCleared(grade.FieldPromptTokens) {
		fields = append(fields, grade.FieldPromptTokens)
	}
	if m.FieldCleared(grade.FieldCompletionTokens) {
		fields = append(fields, grade.FieldCompletionTokens)
	}
	if m.FieldCleared(grade.FieldTotalTokens) {
		fields = append(fields, grade.FieldTotalTokens)
	}
	if m.FieldCleared(grade.FieldError) {
		fields = append(fields, grade.FieldError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GradeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GradeMutation) ClearField(name string) error {
	switch name {
	case grade.FieldTraceID:
		m.ClearTraceID()
		return nil
	case grade.FieldExecutionResultID:
		m.ClearExecutionResultID()
		return nil
	case grade.FieldScoreFloat:
		m.ClearScoreFloat()
		return nil
	case grade.FieldScoreBoolean:
		m.ClearScoreBoolean()
		return nil
	case grade.FieldReasoning:
		m.ClearReasoning()
		return nil
	case grade.FieldConfidence:
		m.ClearConfidence()
		return nil
	case grade.FieldPromptTokens:
		m.ClearPromptTokens()
		return nil
	case grade.FieldCompletionTokens:
		m.ClearCompletionTokens()
		return nil
	case grade.FieldTotalTokens:
		m.ClearTotalTokens()
		return nil
	case grade.FieldError:
		m.ClearError()
		return nil
	}
	return fmt.Errorf("unknown Grade nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GradeMutation) ResetField(name string) error {
	switch name {
	case grade.FieldGraderID:
		m.ResetGraderID()
		return nil
	case grade.FieldTraceID:
		m.ResetTraceID()
		return nil
	case grade.FieldExecutionResultID:
		m.ResetExecutionResultID()
		return nil
	case grade.FieldScoreFloat:
		m.ResetScoreFloat()
		return nil
	case grade.FieldScoreBoolean:
		m.ResetScoreBoolean()
		return nil
	case grade.FieldReasoning:
		m.ResetReasoning()
		return nil
	case grade.FieldConfidence:
		m.ResetConfidence()
		return nil
	case grade.FieldPromptTokens:
		m.ResetPromptTokens()
		return nil
	case grade.FieldCompletionTokens:
		m.ResetCompletionTokens()
		return nil
	case grade.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case grade.FieldGradingStartedAt:
		m.ResetGradingStartedAt()
		return nil
	case grade.FieldGradingCompletedAt:
		m.ResetGradingCompletedAt()
		return nil
	case grade.FieldError:
		m.ResetError()
		return nil
	}
	return fmt.Errorf("unknown Grade field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GradeMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.grader != nil {
		edges = append(edges, grade.EdgeGrader)
	}
	if m.trace != nil {
		edges = append(edges, grade.EdgeTrace)
	}
	if m.execution_result != nil {
		edges = append(edges, grade.EdgeExecutionResult)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GradeMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case grade.EdgeGrader:
		if id := m.grader; id != nil {
			return []ent.Value{*id}
		}
	case grade.EdgeTrace:
		if id := m.trace; id != nil {
			return []ent.Value{*id}
		}
	case grade.EdgeExecutionResult:
		if id := m.execution_result; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GradeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GradeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GradeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedgrader {
		edges = append(edges, grade.EdgeGrader)
	}
	if m.clearedtrace {
		edges = append(edges, grade.EdgeTrace)
	}
	if m.clearedexecution_result {
		edges = append(edges, grade.EdgeExecutionResult)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GradeMutation) EdgeCleared(name string) bool {
	switch name {
	case grade.EdgeGrader:
		return m.clearedgrader
	case grade.EdgeTrace:
		return m.clearedtrace
	case grade.EdgeExecutionResult:
		return m.clearedexecution_result
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GradeMutation) ClearEdge(name string) error {
	switch name {
	case grade.EdgeGrader:
		m.ClearGrader()
		return nil
	case grade.EdgeTrace:
		m.ClearTrace()
		return nil
	case grade.EdgeExecutionResult:
		m.ClearExecutionResult()
		return nil
	}
	return fmt.Errorf("unknown Grade unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GradeMutation) ResetEdge(name string) error {
	switch name {
	case grade.EdgeGrader:
		m.ResetGrader()
		return nil
	case grade.EdgeTrace:
		m.ResetTrace()
		return nil
	case grade.EdgeExecutionResult:
		m.ResetExecutionResult()
		return nil
	}
	return fmt.Errorf("unknown Grade edge %s", name)
}

// GraderMutation represents an operation that mutates the Grader nodes in the graph.
type GraderMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	name                 *string
	prompt               *string
	score_type           *grader.ScoreType
	model                *string
	temperature          *float64
	addtemperature       *float64
	reasoning            *map[string]interface{}
	response_schema      *map[string]interface{}
	max_output_tokens    *int
	addmax_output_tokens *int
	is_active            *bool
	created_at           *time.Time
	clearedFields        map[string]struct{}
	project              *string
	clearedproject       bool
	grades               map[string]struct{}
	removedgrades        map[string]struct{}
	clearedgrades        bool
	done                 bool
	oldValue             func(context.Context) (*Grader, error)
	predicates           []predicate.Grader
}

var _ ent.Mutation = (*GraderMutation)(nil)

// graderOption allows management of the mutation configuration using functional options.
type graderOption func(*GraderMutation)

// newGraderMutation creates new mutation for the Grader entity.
func newGraderMutation(c config, op Op, opts ...graderOption) *GraderMutation {
	m := &GraderMutation{
		config:        c,
		op:            op,
		typ:           TypeGrader,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGraderID sets the ID field of the mutation.
func withGraderID(id string) graderOption {
	return func(m *GraderMutation) {
		var (
			err   error
			once  sync.Once
			value *Grader
		)
		m.oldValue = func(ctx context.Context) (*Grader, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Grader.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGrader sets the old Grader of the mutation.
func withGrader(node *Grader) graderOption {
	return func(m *GraderMutation) {
		m.oldValue = func(context.Context) (*Grader, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GraderMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GraderMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Grader entities.
func (m *GraderMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GraderMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GraderMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Grader.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *GraderMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *GraderMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Grader entity.
// If the Grader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraderMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *GraderMutation) ResetProjectID() {
	m.project = nil
}

// SetName sets the "name" field.
func (m *GraderMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *GraderMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Grader entity.
// If the Grader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraderMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *GraderMutation) ResetName() {
	m.name = nil
}

// SetPrompt sets the "prompt" field.
func (m *GraderMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *GraderMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the Grader entity.
// If the Grader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraderMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *GraderMutation) ResetPrompt() {
	m.prompt = nil
}

// SetScoreType sets the "score_type" field.
func (m *GraderMutation) SetScoreType(gt grader.ScoreType) {
	m.score_type = &gt
}

// ScoreType returns the value of the "score_type" field in the mutation.
func (m *GraderMutation) ScoreType() (r grader.ScoreType, exists bool) {
	v := m.score_type
	if v == nil {
		return
	}
	return *v, true
}

// OldScoreType returns the old "score_type" field's value of the Grader entity.
// If the Grader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraderMutation) OldScoreType(ctx context.Context) (v grader.ScoreType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScoreType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScoreType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScoreType: %w", err)
	}
	return oldValue.ScoreType, nil
}

// ResetScoreType resets all changes to the "score_type" field.
func (m *GraderMutation) ResetScoreType() {
	m.score_type = nil
}

// SetModel sets the "model" field.
func (m *GraderMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *GraderMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Grader entity.
// If the Grader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraderMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *GraderMutation) ResetModel() {
	m.model = nil
}

// SetTemperature sets the "temperature" field.
func (m *GraderMutation) SetTemperature(f float64) {
	m.temperature = &f
	m.addtemperature = nil
}

// Temperature returns the value of the "temperature" field in the mutation.
func (m *GraderMutation) Temperature() (r float64, exists bool) {
	v := m.temperature
	if v == nil {
		return
	}
	return *v, true
}

// OldTemperature returns the old "temperature" field's value of the Grader entity.
// If the Grader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraderMutation) OldTemperature(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemperature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemperature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemperature: %w", err)
	}
	return oldValue.Temperature, nil
}

// AddTemperature adds f to the "temperature" field.
func (m *GraderMutation) AddTemperature(f float64) {
	if m.addtemperature != nil {
		*m.addtemperature += f
	} else {
		m.addtemperature = &f
	}
}

// AddedTemperature returns the value that was added to the "temperature" field in this mutation.
func (m *GraderMutation) AddedTemperature() (r float64, exists bool) {
	v := m.addtemperature
	if v == nil {
		return
	}
	return *v, true
}

// ClearTemperature clears the value of the "temperature" field.
func (m *GraderMutation) ClearTemperature() {
	m.temperature = nil
	m.addtemperature = nil
	m.clearedFields[grader.FieldTemperature] = struct{}{}
}

// TemperatureCleared returns if the "temperature" field was cleared in this mutation.
func (m *GraderMutation) TemperatureCleared() bool {
	_, ok := m.clearedFields[grader.FieldTemperature]
	return ok
}

// ResetTemperature resets all changes to the "temperature" field.
func (m *GraderMutation) ResetTemperature() {
	m.temperature = nil
	m.addtemperature = nil
	delete(m.clearedFields, grader.FieldTemperature)
}

// SetReasoning sets the "reasoning" field.
func (m *GraderMutation) SetReasoning(value map[string]interface{}) {
	m.reasoning = &value
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *GraderMutation) Reasoning() (r map[string]interface{}, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the Grader entity.
// If the Grader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraderMutation) OldReasoning(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ClearReasoning clears the value of the "reasoning" field.
func (m *GraderMutation) ClearReasoning() {
	m.reasoning = nil
	m.clearedFields[grader.FieldReasoning] = struct{}{}
}

// ReasoningCleared returns if the "reasoning" field was cleared in this mutation.
func (m *GraderMutation) ReasoningCleared() bool {
	_, ok := m.clearedFields[grader.FieldReasoning]
	return ok
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *GraderMutation) ResetReasoning() {
	m.reasoning = nil
	delete(m.clearedFields, grader.FieldReasoning)
}

// SetResponseSchema sets the "response_schema" field.
func (m *GraderMutation) SetResponseSchema(value map[string]interface{}) {
	m.response_schema = &value
}

// ResponseSchema returns the value of the "response_schema" field in the mutation.
func (m *GraderMutation) ResponseSchema() (r map[string]interface{}, exists bool) {
	v := m.response_schema
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseSchema returns the old "response_schema" field's value of the Grader entity.
// If the Grader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraderMutation) OldResponseSchema(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseSchema is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseSchema requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseSchema: %w", err)
	}
	return oldValue.ResponseSchema, nil
}

// ClearResponseSchema clears the value of the "response_schema" field.
func (m *GraderMutation) ClearResponseSchema() {
	m.response_schema = nil
	m.clearedFields[grader.FieldResponseSchema] = struct{}{}
}

// ResponseSchemaCleared returns if the "response_schema" field was cleared in this mutation.
func (m *GraderMutation) ResponseSchemaCleared() bool {
	_, ok := m.clearedFields[grader.FieldResponseSchema]
	return ok
}

// ResetResponseSchema resets all changes to the "response_schema" field.
func (m *GraderMutation) ResetResponseSchema() {
	m.response_schema = nil
	delete(m.clearedFields, grader.FieldResponseSchema)
}

// SetMaxOutputTokens sets the "max_output_tokens" field.
func (m *GraderMutation) SetMaxOutputTokens(i int) {
	m.max_output_tokens = &i
	m.addmax_output_tokens = nil
}

// MaxOutputTokens returns the value of the "max_output_tokens" field in the mutation.
func (m *GraderMutation) MaxOutputTokens() (r int, exists bool) {
	v := m.max_output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxOutputTokens returns the old "max_output_tokens" field's value of the Grader entity.
// If the Grader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraderMutation) OldMaxOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxOutputTokens: %w", err)
	}
	return oldValue.MaxOutputTokens, nil
}

// AddMaxOutputTokens adds i to the "max_output_tokens" field.
func (m *GraderMutation) AddMaxOutputTokens(i int) {
	if m.addmax_output_tokens != nil {
		*m.addmax_output_tokens += i
	} else {
		m.addmax_output_tokens = &i
	}
}

// AddedMaxOutputTokens returns the value that was added to the "max_output_tokens" field in this mutation.
func (m *GraderMutation) AddedMaxOutputTokens() (r int, exists bool) {
	v := m.addmax_output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxOutputTokens resets all changes to the "max_output_tokens" field.
func (m *GraderMutation) ResetMaxOutputTokens() {
	m.max_output_tokens = nil
	m.addmax_output_tokens = nil
}

// SetIsActive sets the "is_active" field.
func (m *GraderMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *GraderMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Grader entity.
// If the Grader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraderMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *GraderMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *GraderMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GraderMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Grader entity.
// If the Grader object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraderMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GraderMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *GraderMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[grader.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *GraderMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *GraderMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *GraderMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddGradeIDs adds the "grades" edge to the Grade entity by ids.
func (m *GraderMutation) AddGradeIDs(ids ...string) {
	if m.grades == nil {
		m.grades = make(map[string]struct{})
	}
	for i := range ids {
		m.grades[ids[i]] = struct{}{}
	}
}

// ClearGrades clears the "grades" edge to the Grade entity.
func (m *GraderMutation) ClearGrades() {
	m.clearedgrades = true
}

// GradesCleared reports if the "grades" edge to the Grade entity was cleared.
func (m *GraderMutation) GradesCleared() bool {
	return m.clearedgrades
}

// RemoveGradeIDs removes the "grades" edge to the Grade entity by IDs.
func (m *GraderMutation) RemoveGradeIDs(ids ...string) {
	if m.removedgrades == nil {
		m.removedgrades = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.grades, ids[i])
		m.removedgrades[ids[i]] = struct{}{}
	}
}

// RemovedGrades returns the removed IDs of the "grades" edge to the Grade entity.
func (m *GraderMutation) RemovedGradesIDs() (ids []string) {
	for id := range m.removedgrades {
		ids = append(ids, id)
	}
	return
}

// GradesIDs returns the "grades" edge IDs in the mutation.
func (m *GraderMutation) GradesIDs() (ids []string) {
	for id := range m.grades {
		ids = append(ids, id)
	}
	return
}

// ResetGrades resets all changes to the "grades" edge.
func (m *GraderMutation) ResetGrades() {
	m.grades = nil
	m.clearedgrades = false
	m.removedgrades = nil
}

// Where appends a list predicates to the GraderMutation builder.
func (m *GraderMutation) Where(ps ...predicate.Grader) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GraderMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GraderMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Grader, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GraderMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GraderMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Grader).
func (m *GraderMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GraderMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.project != nil {
		fields = append(fields, grader.FieldProjectID)
	}
	if m.name != nil {
		fields = append(fields, grader.FieldName)
	}
	if m.prompt != nil {
		fields = append(fields, grader.FieldPrompt)
	}
	if m.score_type != nil {
		fields = append(fields, grader.FieldScoreType)
	}
	if m.model != nil {
		fields = append(fields, grader.FieldModel)
	}
	if m.temperature != nil {
		fields = append(fields, grader.FieldTemperature)
	}
	if m.reasoning != nil {
		fields = append(fields, grader.FieldReasoning)
	}
	if m.response_schema != nil {
		fields = append(fields, grader.FieldResponseSchema)
	}
	if m.max_output_tokens != nil {
		fields = append(fields, grader.FieldMaxOutputTokens)
	}
	if m.is_active != nil {
		fields = append(fields, grader.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, grader.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GraderMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case grader.FieldProjectID:
		return m.ProjectID()
	case grader.FieldName:
		return m.Name()
	case grader.FieldPrompt:
		return m.Prompt()
	case grader.FieldScoreType:
		return m.ScoreType()
	case grader.FieldModel:
		return m.Model()
	case grader.FieldTemperature:
		return m.Temperature()
	case grader.FieldReasoning:
		return m.Reasoning()
	case grader.FieldResponseSchema:
		return m.ResponseSchema()
	case grader.FieldMaxOutputTokens:
		return m.MaxOutputTokens()
	case grader.FieldIsActive:
		return m.IsActive()
	case grader.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GraderMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case grader.FieldProjectID:
		return m.OldProjectID(ctx)
	case grader.FieldName:
		return m.OldName(ctx)
	case grader.FieldPrompt:
		return m.OldPrompt(ctx)
	case grader.FieldScoreType:
		return m.OldScoreType(ctx)
	case grader.FieldModel:
		return m.OldModel(ctx)
	case grader.FieldTemperature:
		return m.OldTemperature(ctx)
	case grader.FieldReasoning:
		return m.OldReasoning(ctx)
	case grader.FieldResponseSchema:
		return m.OldResponseSchema(ctx)
	case grader.FieldMaxOutputTokens:
		return m.OldMaxOutputTokens(ctx)
	case grader.FieldIsActive:
		return m.OldIsActive(ctx)
	case grader.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Grader field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GraderMutation) SetField(name string, value ent.Value) error {
	switch name {
	case grader.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case grader.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case grader.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case grader.FieldScoreType:
		v, ok := value.(grader.ScoreType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScoreType(v)
		return nil
	case grader.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case grader.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemperature(v)
		return nil
	case grader.FieldReasoning:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case grader.FieldResponseSchema:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseSchema(v)
		return nil
	case grader.FieldMaxOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxOutputTokens(v)
		return nil
	case grader.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case grader.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Grader field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GraderMutation) AddedFields() []string {
	var fields []string
	if m.addtemperature != nil {
		fields = append(fields, grader.FieldTemperature)
	}
	if m.addmax_output_tokens != nil {
		fields = append(fields, grader.FieldMaxOutputTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GraderMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case grader.FieldTemperature:
		return m.AddedTemperature()
	case grader.FieldMaxOutputTokens:
		return m.AddedMaxOutputTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GraderMutation) AddField(name string, value ent.Value) error {
	switch name {
	case grader.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemperature(v)
		return nil
	case grader.FieldMaxOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxOutputTokens(v)
		return nil
	}
	return fmt.Errorf("unknown Grader numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GraderMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(grader.FieldTemperature) {
		fields = append(fields, grader.FieldTemperature)
	}
	if m.FieldCleared(grader.FieldReasoning) {
		fields = append(fields, grader.FieldReasoning)
	}
	if m.FieldCleared(grader.FieldResponseSchema) {
		fields = append(fields, grader.FieldResponseSchema)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GraderMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GraderMutation) ClearField(name string) error {
	switch name {
	case grader.FieldTemperature:
		m.ClearTemperature()
		return nil
	case grader.FieldReasoning:
		m.ClearReasoning()
		return nil
	case grader.FieldResponseSchema:
		m.ClearResponseSchema()
		return nil
	}
	return fmt.Errorf("unknown Grader nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GraderMutation) ResetField(name string) error {
	switch name {
	case grader.FieldProjectID:
		m.ResetProjectID()
		return nil
	case grader.FieldName:
		m.ResetName()
		return nil
	case grader.FieldPrompt:
		m.ResetPrompt()
		return nil
	case grader.FieldScoreType:
		m.ResetScoreType()
		return nil
	case grader.FieldModel:
		m.ResetModel()
		return nil
	case grader.FieldTemperature:
		m.ResetTemperature()
		return nil
	case grader.FieldReasoning:
		m.ResetReasoning()
		return nil
	case grader.FieldResponseSchema:
		m.ResetResponseSchema()
		return nil
	case grader.FieldMaxOutputTokens:
		m.ResetMaxOutputTokens()
		return nil
	case grader.FieldIsActive:
		m.ResetIsActive()
		return nil
	case grader.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Grader field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GraderMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.project != nil {
		edges = append(edges, grader.EdgeProject)
	}
	if m.grades != nil {
		edges = append(edges, grader.EdgeGrades)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GraderMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case grader.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case grader.EdgeGrades:
		ids := make([]ent.Value, 0, len(m.grades))
		for id := range m.grades {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GraderMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedgrades != nil {
		edges = append(edges, grader.EdgeGrades)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GraderMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case grader.EdgeGrades:
		ids := make([]ent.Value, 0, len(m.removedgrades))
		for id := range m.removedgrades {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GraderMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedproject {
		edges = append(edges, grader.EdgeProject)
	}
	if m.clearedgrades {
		edges = append(edges, grader.EdgeGrades)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GraderMutation) EdgeCleared(name string) bool {
	switch name {
	case grader.EdgeProject:
		return m.clearedproject
	case grader.EdgeGrades:
		return m.clearedgrades
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GraderMutation) ClearEdge(name string) error {
	switch name {
	case grader.EdgeProject:
		m.ClearProject()
		return nil
	}
	return fmt.Errorf("unknown Grader unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GraderMutation) ResetEdge(name string) error {
	switch name {
	case grader.EdgeProject:
		m.ResetProject()
		return nil
	case grader.EdgeGrades:
		m.ResetGrades()
		return nil
	}
	return fmt.Errorf("unknown Grader edge %s", name)
}

// HTTPTraceMutation represents an operation that mutates the HTTPTrace nodes in the graph.
type HTTPTraceMutation struct {
	config
	op               Op
	typ              string
	id               *string
	url              *string
	method           *string
	started_at       *time.Time
	completed_at     *time.Time
	status_code      *int
	addstatus_code   *int
	error            *string
	request          *[]byte
	request_headers  *map[string]string
	response         *[]byte
	response_headers *map[string]string
	metadata         *map[string]interface{}
	dedup_hash       *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	project          *string
	clearedproject   bool
	trace            *string
	clearedtrace     bool
	done             bool
	oldValue         func(context.Context) (*HTTPTrace, error)
	predicates       []predicate.HTTPTrace
}

var _ ent.Mutation = (*HTTPTraceMutation)(nil)

// httptraceOption allows management of the mutation configuration using functional options.
type httptraceOption func(*HTTPTraceMutation)

// newHTTPTraceMutation creates new mutation for the HTTPTrace entity.
func newHTTPTraceMutation(c config, op Op, opts ...httptraceOption) *HTTPTraceMutation {
	m := &HTTPTraceMutation{
		config:        c,
		op:            op,
		typ:           TypeHTTPTrace,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withHTTPTraceID sets the ID field of the mutation.
func withHTTPTraceID(id string) httptraceOption {
	return func(m *HTTPTraceMutation) {
		var (
			err   error
			once  sync.Once
			value *HTTPTrace
		)
		m.oldValue = func(ctx context.Context) (*HTTPTrace, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().HTTPTrace.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withHTTPTrace sets the old HTTPTrace of the mutation.
func withHTTPTrace(node *HTTPTrace) httptraceOption {
	return func(m *HTTPTraceMutation) {
		m.oldValue = func(context.Context) (*HTTPTrace, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m HTTPTraceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m HTTPTraceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of HTTPTrace entities.
func (m *HTTPTraceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *HTTPTraceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *HTTPTraceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().HTTPTrace.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *HTTPTraceMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *HTTPTraceMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the HTTPTrace entity.
// If the HTTPTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HTTPTraceMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *HTTPTraceMutation) ResetProjectID() {
	m.project = nil
}

// SetURL sets the "url" field.
func (m *HTTPTraceMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *HTTPTraceMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the HTTPTrace entity.
// If the HTTPTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HTTPTraceMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *HTTPTraceMutation) ResetURL() {
	m.url = nil
}

// SetMethod sets the "method" field.
func (m *HTTPTraceMutation) SetMethod(s string) {
	m.method = &s
}

// Method returns the value of the "method" field in the mutation.
func (m *HTTPTraceMutation) Method() (r string, exists bool) {
	v := m.method
	if v == nil {
		return
	}
	return *v, true
}

// OldMethod returns the old "method" field's value of the HTTPTrace entity.
// If the HTTPTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HTTPTraceMutation) OldMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMethod: %w", err)
	}
	return oldValue.Method, nil
}

// ResetMethod resets all changes to the "method" field.
func (m *HTTPTraceMutation) ResetMethod() {
	m.method = nil
}

// SetStartedAt sets the "started_at" field.
func (m *HTTPTraceMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *HTTPTraceMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the HTTPTrace entity.
// If the HTTPTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HTTPTraceMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *HTTPTraceMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *HTTPTraceMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *HTTPTraceMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the HTTPTrace entity.
// If the HTTPTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HTTPTraceMutation) OldCompletedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *HTTPTraceMutation) ResetCompletedAt() {
	m.completed_at = nil
}

// SetStatusCode sets the "status_code" field.
func (m *HTTPTraceMutation) SetStatusCode(i int) {
	m.status_code = &i
	m.addstatus_code = nil
}

// StatusCode returns the value of the "status_code" field in the mutation.
func (m *HTTPTraceMutation) StatusCode() (r int, exists bool) {
	v := m.status_code
	if v == nil {
		return
	}
	return *v, true
}

// OldStatusCode returns the old "status_code" field's value of the HTTPTrace entity.
// If the HTTPTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HTTPTraceMutation) OldStatusCode(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatusCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatusCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatusCode: %w", err)
	}
	return oldValue.StatusCode, nil
}

// AddStatusCode adds i to the "status_code" field.
func (m *HTTPTraceMutation) AddStatusCode(i int) {
	if m.addstatus_code != nil {
		*m.addstatus_code += i
	} else {
		m.addstatus_code = &i
	}
}

// AddedStatusCode returns the value that was added to the "status_code" field in this mutation.
func (m *HTTPTraceMutation) AddedStatusCode() (r int, exists bool) {
	v := m.addstatus_code
	if v == nil {
		return
	}
	return *v, true
}

// ClearStatusCode clears the value of the "status_code" field.
func (m *HTTPTraceMutation) ClearStatusCode() {
	m.status_code = nil
	m.addstatus_code = nil
	m.clearedFields[httptrace.FieldStatusCode] = struct{}{}
}

// StatusCodeCleared returns if the "status_code" field was cleared in this mutation.
func (m *HTTPTraceMutation) StatusCodeCleared() bool {
	_, ok := m.clearedFields[httptrace.FieldStatusCode]
	return ok
}

// ResetStatusCode resets all changes to the "status_code" field.
func (m *HTTPTraceMutation) ResetStatusCode() {
	m.status_code = nil
	m.addstatus_code = nil
	delete(m.clearedFields, httptrace.FieldStatusCode)
}

// SetError sets the "error" field.
func (m *HTTPTraceMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *HTTPTraceMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the HTTPTrace entity.
// If the HTTPTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HTTPTraceMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *HTTPTraceMutation) ClearError() {
	m.error = nil
	m.clearedFields[httptrace.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *HTTPTraceMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[httptrace.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *HTTPTraceMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, httptrace.FieldError)
}

// SetRequest sets the "request" field.
func (m *HTTPTraceMutation) SetRequest(b []byte) {
	m.request = &b
}

// Request returns the value of the "request" field in the mutation.
func (m *HTTPTraceMutation) Request() (r []byte, exists bool) {
	v := m.request
	if v == nil {
		return
	}
	return *v, true
}

// OldRequest returns the old "request" field's value of the HTTPTrace entity.
// If the HTTPTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HTTPTraceMutation) OldRequest(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequest: %w", err)
	}
	return oldValue.Request, nil
}

// ClearRequest clears the value of the "request" field.
func (m *HTTPTraceMutation) ClearRequest() {
	m.request = nil
	m.clearedFields[httptrace.FieldRequest] = struct{}{}
}

// RequestCleared returns if the "request" field was cleared in this mutation.
func (m *HTTPTraceMutation) RequestCleared() bool {
	_, ok := m.clearedFields[httptrace.FieldRequest]
	return ok
}

// ResetRequest resets all changes to the "request" field.
func (m *HTTPTraceMutation) ResetRequest() {
	m.request = nil
	delete(m.clearedFields, httptrace.FieldRequest)
}

// SetRequestHeaders sets the "request_headers" field.
func (m *HTTPTraceMutation) SetRequestHeaders(value map[string]string) {
	m.request_headers = &value
}

// RequestHeaders returns the value of the "request_headers" field in the mutation.
func (m *HTTPTraceMutation) RequestHeaders() (r map[string]string, exists bool) {
	v := m.request_headers
	if v == nil {
		return
	}
	return *v, true
}

// OldRequestHeaders returns the old "request_headers" field's value of the HTTPTrace entity.
// If the HTTPTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HTTPTraceMutation) OldRequestHeaders(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequestHeaders is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequestHeaders requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequestHeaders: %w", err)
	}
	return oldValue.RequestHeaders, nil
}

// ClearRequestHeaders clears the value of the "request_headers" field.
func (m *HTTPTraceMutation) ClearRequestHeaders() {
	m.request_headers = nil
	m.clearedFields[httptrace.FieldRequestHeaders] = struct{}{}
}

// RequestHeadersCleared returns if the "request_headers" field was cleared in this mutation.
func (m *HTTPTraceMutation) RequestHeadersCleared() bool {
	_, ok := m.clearedFields[httptrace.FieldRequestHeaders]
	return ok
}

// ResetRequestHeaders resets all changes to the "request_headers" field.
func (m *HTTPTraceMutation) ResetRequestHeaders() {
	m.request_headers = nil
	delete(m.clearedFields, httptrace.FieldRequestHeaders)
}

// SetResponse sets the "response" field.
func (m *HTTPTraceMutation) SetResponse(b []byte) {
	m.response = &b
}

// Response returns the value of the "response" field in the mutation.
func (m *HTTPTraceMutation) Response() (r []byte, exists bool) {
	v := m.response
	if v == nil {
		return
	}
	return *v, true
}

// OldResponse returns the old "response" field's value of the HTTPTrace entity.
// If the HTTPTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HTTPTraceMutation) OldResponse(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponse is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponse requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponse: %w", err)
	}
	return oldValue.Response, nil
}

// ClearResponse clears the value of the "response" field.
func (m *HTTPTraceMutation) ClearResponse() {
	m.response = nil
	m.clearedFields[httptrace.FieldResponse] = struct{}{}
}

// ResponseCleared returns if the "response" field was cleared in this mutation.
func (m *HTTPTraceMutation) ResponseCleared() bool {
	_, ok := m.clearedFields[httptrace.FieldResponse]
	return ok
}

// ResetResponse resets all changes to the "response" field.
func (m *HTTPTraceMutation) ResetResponse() {
	m.response = nil
	delete(m.clearedFields, httptrace.FieldResponse)
}

// SetResponseHeaders sets the "response_headers" field.
func (m *HTTPTraceMutation) SetResponseHeaders(value map[string]string) {
	m.response_headers = &value
}

// ResponseHeaders returns the value of the "response_headers" field in the mutation.
func (m *HTTPTraceMutation) ResponseHeaders() (r map[string]string, exists bool) {
	v := m.response_headers
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseHeaders returns the old "response_headers" field's value of the HTTPTrace entity.
// If the HTTPTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HTTPTraceMutation) OldResponseHeaders(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseHeaders is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseHeaders requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseHeaders: %w", err)
	}
	return oldValue.ResponseHeaders, nil
}

// ClearResponseHeaders clears the value of the "response_headers" field.
func (m *HTTPTraceMutation) ClearResponseHeaders() {
	m.response_headers = nil
	m.clearedFields[httptrace.FieldResponseHeaders] = struct{}{}
}

// ResponseHeadersCleared returns if the "response_headers" field was cleared in this mutation.
func (m *HTTPTraceMutation) ResponseHeadersCleared() bool {
	_, ok := m.clearedFields[httptrace.FieldResponseHeaders]
	return ok
}

// ResetResponseHeaders resets all changes to the "response_headers" field.
func (m *HTTPTraceMutation) ResetResponseHeaders() {
	m.response_headers = nil
	delete(m.clearedFields, httptrace.FieldResponseHeaders)
}

// SetMetadata sets the "metadata" field.
func (m *HTTPTraceMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *HTTPTraceMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the HTTPTrace entity.
// If the HTTPTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HTTPTraceMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *HTTPTraceMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[httptrace.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *HTTPTraceMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[httptrace.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *HTTPTraceMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, httptrace.FieldMetadata)
}

// SetDedupHash sets the "dedup_hash" field.
func (m *HTTPTraceMutation) SetDedupHash(s string) {
	m.dedup_hash = &s
}

// DedupHash returns the value of the "dedup_hash" field in the mutation.
func (m *HTTPTraceMutation) DedupHash() (r string, exists bool) {
	v := m.dedup_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldDedupHash returns the old "dedup_hash" field's value of the HTTPTrace entity.
// If the HTTPTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HTTPTraceMutation) OldDedupHash(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDedupHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDedupHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDedupHash: %w", err)
	}
	return oldValue.DedupHash, nil
}

// ClearDedupHash clears the value of the "dedup_hash" field.
func (m *HTTPTraceMutation) ClearDedupHash() {
	m.dedup_hash = nil
	m.clearedFields[httptrace.FieldDedupHash] = struct{}{}
}

// DedupHashCleared returns if the "dedup_hash" field was cleared in this mutation.
func (m *HTTPTraceMutation) DedupHashCleared() bool {
	_, ok := m.clearedFields[httptrace.FieldDedupHash]
	return ok
}

// ResetDedupHash resets all changes to the "dedup_hash" field.
func (m *HTTPTraceMutation) ResetDedupHash() {
	m.dedup_hash = nil
	delete(m.clearedFields, httptrace.FieldDedupHash)
}

// SetCreatedAt sets the "created_at" field.
func (m *HTTPTraceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *HTTPTraceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the HTTPTrace entity.
// If the HTTPTrace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *HTTPTraceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *HTTPTraceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *HTTPTraceMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[httptrace.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *HTTPTraceMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *HTTPTraceMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *HTTPTraceMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// SetTraceID sets the "trace" edge to the Trace entity by id.
func (m *HTTPTraceMutation) SetTraceID(id string) {
	m.trace = &id
}

// ClearTrace clears the "trace" edge to the Trace entity.
func (m *HTTPTraceMutation) ClearTrace() {
	m.clearedtrace = true
}

// TraceCleared reports if the "trace" edge to the Trace entity was cleared.
func (m *HTTPTraceMutation) TraceCleared() bool {
	return m.clearedtrace
}

// TraceID returns the "trace" edge ID in the mutation.
func (m *HTTPTraceMutation) TraceID() (id string, exists bool) {
	if m.trace != nil {
		return *m.trace, true
	}
	return
}

// TraceIDs returns the "trace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TraceID instead. It exists only for internal usage by the builders.
func (m *HTTPTraceMutation) TraceIDs() (ids []string) {
	if id := m.trace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTrace resets all changes to the "trace" edge.
func (m *HTTPTraceMutation) ResetTrace() {
	m.trace = nil
	m.clearedtrace = false
}

// Where appends a list predicates to the HTTPTraceMutation builder.
func (m *HTTPTraceMutation) Where(ps ...predicate.HTTPTrace) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the HTTPTraceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *HTTPTraceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.HTTPTrace, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *HTTPTraceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *HTTPTraceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (HTTPTrace).
func (m *HTTPTraceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *HTTPTraceMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.project != nil {
		fields = append(fields, httptrace.FieldProjectID)
	}
	if m.url != nil {
		fields = append(fields, httptrace.FieldURL)
	}
	if m.method != nil {
		fields = append(fields, httptrace.FieldMethod)
	}
	if m.started_at != nil {
		fields = append(fields, httptrace.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, httptrace.FieldCompletedAt)
	}
	if m.status_code != nil {
		fields = append(fields, httptrace.FieldStatusCode)
	}
	if m.error != nil {
		fields = append(fields, httptrace.FieldError)
	}
	if m.request != nil {
		fields = append(fields, httptrace.FieldRequest)
	}
	if m.request_headers != nil {
		fields = append(fields, httptrace.FieldRequestHeaders)
	}
	if m.response != nil {
		fields = append(fields, httptrace.FieldResponse)
	}
	if m.response_headers != nil {
		fields = append(fields, httptrace.FieldResponseHeaders)
	}
	if m.metadata != nil {
		fields = append(fields, httptrace.FieldMetadata)
	}
	if m.dedup_hash != nil {
		fields = append(fields, httptrace.FieldDedupHash)
	}
	if m.created_at != nil {
		fields = append(fields, httptrace.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *HTTPTraceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case httptrace.FieldProjectID:
		return m.ProjectID()
	case httptrace.FieldURL:
		return m.URL()
	case httptrace.FieldMethod:
		return m.Method()
	case httptrace.FieldStartedAt:
		return m.StartedAt()
	case httptrace.FieldCompletedAt:
		return m.CompletedAt()
	case httptrace.FieldStatusCode:
		return m.StatusCode()
	case httptrace.FieldError:
		return m.Error()
	case httptrace.FieldRequest:
		return m.Request()
	case httptrace.FieldRequestHeaders:
		return m.RequestHeaders()
	case httptrace.FieldResponse:
		return m.Response()
	case httptrace.FieldResponseHeaders:
		return m.ResponseHeaders()
	case httptrace.FieldMetadata:
		return m.Metadata()
	case httptrace.FieldDedupHash:
		return m.DedupHash()
	case httptrace.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *HTTPTraceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case httptrace.FieldProjectID:
		return m.OldProjectID(ctx)
	case httptrace.FieldURL:
		return m.OldURL(ctx)
	case httptrace.FieldMethod:
		return m.OldMethod(ctx)
	case httptrace.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case httptrace.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case httptrace.FieldStatusCode:
		return m.OldStatusCode(ctx)
	case httptrace.FieldError:
		return m.OldError(ctx)
	case httptrace.FieldRequest:
		return m.OldRequest(ctx)
	case httptrace.FieldRequestHeaders:
		return m.OldRequestHeaders(ctx)
	case httptrace.FieldResponse:
		return m.OldResponse(ctx)
	case httptrace.FieldResponseHeaders:
		return m.OldResponseHeaders(ctx)
	case httptrace.FieldMetadata:
		return m.OldMetadata(ctx)
	case httptrace.FieldDedupHash:
		return m.OldDedupHash(ctx)
	case httptrace.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown HTTPTrace field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HTTPTraceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case httptrace.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case httptrace.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case httptrace.FieldMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMethod(v)
		return nil
	case httptrace.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case httptrace.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case httptrace.FieldStatusCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatusCode(v)
		return nil
	case httptrace.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case httptrace.FieldRequest:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequest(v)
		return nil
	case httptrace.FieldRequestHeaders:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequestHeaders(v)
		return nil
	case httptrace.FieldResponse:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponse(v)
		return nil
	case httptrace.FieldResponseHeaders:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseHeaders(v)
		return nil
	case httptrace.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case httptrace.FieldDedupHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDedupHash(v)
		return nil
	case httptrace.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown HTTPTrace field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *HTTPTraceMutation) AddedFields() []string {
	var fields []string
	if m.addstatus_code != nil {
		fields = append(fields, httptrace.FieldStatusCode)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *HTTPTraceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case httptrace.FieldStatusCode:
		return m.AddedStatusCode()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *HTTPTraceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case httptrace.FieldStatusCode:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStatusCode(v)
		return nil
	}
	return fmt.Errorf("unknown HTTPTrace numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *HTTPTraceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(httptrace.FieldStatusCode) {
		fields = append(fields, httptrace.FieldStatusCode)
	}
	if m.FieldCleared(httptrace.FieldError) {
		fields = append(fields, httptrace.FieldError)
	}
	if m.FieldCleared(httptrace.FieldRequest) {
		fields = append(fields, httptrace.FieldRequest)
	}
	if m.FieldCleared(httptrace.FieldRequestHeaders) {
		fields = append(fields, httptrace.FieldRequestHeaders)
	}
	if m.FieldCleared(httptrace.FieldResponse) {
		fields = append(fields, httptrace.FieldResponse)
	}
	if m.FieldCleared(httptrace.FieldResponseHeaders) {
		fields = append(fields, httptrace.FieldResponseHeaders)
	}
	if m.FieldCleared(httptrace.FieldMetadata) {
		fields = append(fields, httptrace.FieldMetadata)
	}
	if m.FieldCleared(httptrace.FieldDedupHash) {
		fields = append(fields, httptrace.FieldDedupHash)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *HTTPTraceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *HTTPTraceMutation) ClearField(name string) error {
	switch name {
	case httptrace.FieldStatusCode:
		m.ClearStatusCode()
		return nil
	case httptrace.FieldError:
		m.ClearError()
		return nil
	case httptrace.FieldRequest:
		m.ClearRequest()
		return nil
	case httptrace.FieldRequestHeaders:
		m.ClearRequestHeaders()
		return nil
	case httptrace.FieldResponse:
		m.ClearResponse()
		return nil
	case httptrace.FieldResponseHeaders:
		m.ClearResponseHeaders()
		return nil
	case httptrace.FieldMetadata:
		m.ClearMetadata()
		return nil
	case httptrace.FieldDedupHash:
		m.ClearDedupHash()
		return nil
	}
	return fmt.Errorf("unknown HTTPTrace nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *HTTPTraceMutation) ResetField(name string) error {
	switch name {
	case httptrace.FieldProjectID:
		m.ResetProjectID()
		return nil
	case httptrace.FieldURL:
		m.ResetURL()
		return nil
	case httptrace.FieldMethod:
		m.ResetMethod()
		return nil
	case httptrace.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case httptrace.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case httptrace.FieldStatusCode:
		m.ResetStatusCode()
		return nil
	case httptrace.FieldError:
		m.ResetError()
		return nil
	case httptrace.FieldRequest:
		m.ResetRequest()
		return nil
	case httptrace.FieldRequestHeaders:
		m.ResetRequestHeaders()
		return nil
	case httptrace.FieldResponse:
		m.ResetResponse()
		return nil
	case httptrace.FieldResponseHeaders:
		m.ResetResponseHeaders()
		return nil
	case httptrace.FieldMetadata:
		m.ResetMetadata()
		return nil
	case httptrace.FieldDedupHash:
		m.ResetDedupHash()
		return nil
	case httptrace.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown HTTPTrace field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *HTTPTraceMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.project != nil {
		edges = append(edges, httptrace.EdgeProject)
	}
	if m.trace != nil {
		edges = append(edges, httptrace.EdgeTrace)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *HTTPTraceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case httptrace.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case httptrace.EdgeTrace:
		if id := m.trace; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *HTTPTraceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *HTTPTraceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *HTTPTraceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedproject {
		edges = append(edges, httptrace.EdgeProject)
	}
	if m.clearedtrace {
		edges = append(edges, httptrace.EdgeTrace)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *HTTPTraceMutation) EdgeCleared(name string) bool {
	switch name {
	case httptrace.EdgeProject:
		return m.clearedproject
	case httptrace.EdgeTrace:
		return m.clearedtrace
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *HTTPTraceMutation) ClearEdge(name string) error {
	switch name {
	case httptrace.EdgeProject:
		m.ClearProject()
		return nil
	case httptrace.EdgeTrace:
		m.ClearTrace()
		return nil
	}
	return fmt.Errorf("unknown HTTPTrace unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *HTTPTraceMutation) ResetEdge(name string) error {
	switch name {
	case httptrace.EdgeProject:
		m.ResetProject()
		return nil
	case httptrace.EdgeTrace:
		m.ResetTrace()
		return nil
	}
	return fmt.Errorf("unknown HTTPTrace edge %s", name)
}

// ImplementationMutation represents an operation that mutates the Implementation nodes in the graph.
type ImplementationMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	version                  *string
	prompt                   *string
	model                    *string
	temperature              *float64
	addtemperature           *float64
	reasoning                *map[string]interface{}
	tools                    *[]models.ToolDefinition
	appendtools              []models.ToolDefinition
	tool_choice              *string
	max_output_tokens        *int
	addmax_output_tokens     *int
	response_schema          *map[string]interface{}
	temp                     *bool
	created_at               *time.Time
	clearedFields            map[string]struct{}
	task                     *string
	clearedtask              bool
	traces                   map[string]struct{}
	removedtraces            map[string]struct{}
	clearedtraces            bool
	execution_results        map[string]struct{}
	removedexecution_results map[string]struct{}
	clearedexecution_results bool
	evaluations              map[string]struct{}
	removedevaluations       map[string]struct{}
	clearedevaluations       bool
	done                     bool
	oldValue                 func(context.Context) (*Implementation, error)
	predicates               []predicate.Implementation
}

var _ ent.Mutation = (*ImplementationMutation)(nil)

// implementationOption allows management of the mutation configuration using functional options.
type implementationOption func(*ImplementationMutation)

// newImplementationMutation creates new mutation for the Implementation entity.
func newImplementationMutation(c config, op Op, opts ...implementationOption) *ImplementationMutation {
	m := &ImplementationMutation{
		config:        c,
		op:            op,
		typ:           TypeImplementation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withImplementationID sets the ID field of the mutation.
func withImplementationID(id string) implementationOption {
	return func(m *ImplementationMutation) {
		var (
			err   error
			once  sync.Once
			value *Implementation
		)
		m.oldValue = func(ctx context.Context) (*Implementation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Implementation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withImplementation sets the old Implementation of the mutation.
func withImplementation(node *Implementation) implementationOption {
	return func(m *ImplementationMutation) {
		m.oldValue = func(context.Context) (*Implementation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ImplementationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ImplementationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Implementation entities.
func (m *ImplementationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ImplementationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ImplementationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Implementation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *ImplementationMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *ImplementationMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Implementation entity.
// If the Implementation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImplementationMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *ImplementationMutation) ResetTaskID() {
	m.task = nil
}

// SetVersion sets the "version" field.
func (m *ImplementationMutation) SetVersion(s string) {
	m.version = &s
}

// Version returns the value of the "version" field in the mutation.
func (m *ImplementationMutation) Version() (r string, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Implementation entity.
// If the Implementation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImplementationMutation) OldVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// ResetVersion resets all changes to the "version" field.
func (m *ImplementationMutation) ResetVersion() {
	m.version = nil
}

// SetPrompt sets the "prompt" field.
func (m *ImplementationMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *ImplementationMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the Implementation entity.
// If the Implementation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImplementationMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *ImplementationMutation) ResetPrompt() {
	m.prompt = nil
}

// SetModel sets the "model" field.
func (m *ImplementationMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *ImplementationMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Implementation entity.
// If the Implementation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImplementationMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *ImplementationMutation) ResetModel() {
	m.model = nil
}

// SetTemperature sets the "temperature" field.
func (m *ImplementationMutation) SetTemperature(f float64) {
	m.temperature = &f
	m.addtemperature = nil
}

// Temperature returns the value of the "temperature" field in the mutation.
func (m *ImplementationMutation) Temperature() (r float64, exists bool) {
	v := m.temperature
	if v == nil {
		return
	}
	return *v, true
}

// OldTemperature returns the old "temperature" field's value of the Implementation entity.
// If the Implementation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImplementationMutation) OldTemperature(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemperature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemperature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemperature: %w", err)
	}
	return oldValue.Temperature, nil
}

// AddTemperature adds f to the "temperature" field.
func (m *ImplementationMutation) AddTemperature(f float64) {
	if m.addtemperature != nil {
		*m.addtemperature += f
	} else {
		m.addtemperature = &f
	}
}

// AddedTemperature returns the value that was added to the "temperature" field in this mutation.
func (m *ImplementationMutation) AddedTemperature() (r float64, exists bool) {
	v := m.addtemperature
	if v == nil {
		return
	}
	return *v, true
}

// ClearTemperature clears the value of the "temperature" field.
func (m *ImplementationMutation) ClearTemperature() {
	m.temperature = nil
	m.addtemperature = nil
	m.clearedFields[implementation.FieldTemperature] = struct{}{}
}

// TemperatureCleared returns if the "temperature" field was cleared in this mutation.
func (m *ImplementationMutation) TemperatureCleared() bool {
	_, ok := m.clearedFields[implementation.FieldTemperature]
	return ok
}

// ResetTemperature resets all changes to the "temperature" field.
func (m *ImplementationMutation) ResetTemperature() {
	m.temperature = nil
	m.addtemperature = nil
	delete(m.clearedFields, implementation.FieldTemperature)
}

// SetReasoning sets the "reasoning" field.
func (m *ImplementationMutation) SetReasoning(value map[string]interface{}) {
	m.reasoning = &value
}

// Reasoning returns the value of the "reasoning" field in the mutation.
func (m *ImplementationMutation) Reasoning() (r map[string]interface{}, exists bool) {
	v := m.reasoning
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoning returns the old "reasoning" field's value of the Implementation entity.
// If the Implementation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImplementationMutation) OldReasoning(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoning is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoning requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoning: %w", err)
	}
	return oldValue.Reasoning, nil
}

// ClearReasoning clears the value of the "reasoning" field.
func (m *ImplementationMutation) ClearReasoning() {
	m.reasoning = nil
	m.clearedFields[implementation.FieldReasoning] = struct{}{}
}

// ReasoningCleared returns if the "reasoning" field was cleared in this mutation.
func (m *ImplementationMutation) ReasoningCleared() bool {
	_, ok := m.clearedFields[implementation.FieldReasoning]
	return ok
}

// ResetReasoning resets all changes to the "reasoning" field.
func (m *ImplementationMutation) ResetReasoning() {
	m.reasoning = nil
	delete(m.clearedFields, implementation.FieldReasoning)
}

// SetTools sets the "tools" field.
func (m *ImplementationMutation) SetTools(md []models.ToolDefinition) {
	m.tools = &md
	m.appendtools = nil
}

// Tools returns the value of the "tools" field in the mutation.
func (m *ImplementationMutation) Tools() (r []models.ToolDefinition, exists bool) {
	v := m.tools
	if v == nil {
		return
	}
	return *v, true
}

// OldTools returns the old "tools" field's value of the Implementation entity.
// If the Implementation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImplementationMutation) OldTools(ctx context.Context) (v []models.ToolDefinition, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTools is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTools requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTools: %w", err)
	}
	return oldValue.Tools, nil
}

// AppendTools adds md to the "tools" field.
func (m *ImplementationMutation) AppendTools(md []models.ToolDefinition) {
	m.appendtools = append(m.appendtools, md...)
}

// AppendedTools returns the list of values that were appended to the "tools" field in this mutation.
func (m *ImplementationMutation) AppendedTools() ([]models.ToolDefinition, bool) {
	if len(m.appendtools) == 0 {
		return nil, false
	}
	return m.appendtools, true
}

// ClearTools clears the value of the "tools" field.
func (m *ImplementationMutation) ClearTools() {
	m.tools = nil
	m.appendtools = nil
	m.clearedFields[implementation.FieldTools] = struct{}{}
}

// ToolsCleared returns if the "tools" field was cleared in this mutation.
func (m *ImplementationMutation) ToolsCleared() bool {
	_, ok := m.clearedFields[implementation.FieldTools]
	return ok
}

// ResetTools resets all changes to the "tools" field.
func (m *ImplementationMutation) ResetTools() {
	m.tools = nil
	m.appendtools = nil
	delete(m.clearedFields, implementation.FieldTools)
}

// SetToolChoice sets the "tool_choice" field.
func (m *ImplementationMutation) SetToolChoice(s string) {
	m.tool_choice = &s
}

// ToolChoice returns the value of the "tool_choice" field in the mutation.
func (m *ImplementationMutation) ToolChoice() (r string, exists bool) {
	v := m.tool_choice
	if v == nil {
		return
	}
	return *v, true
}

// OldToolChoice returns the old "tool_choice" field's value of the Implementation entity.
// If the Implementation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImplementationMutation) OldToolChoice(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldToolChoice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldToolChoice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldToolChoice: %w", err)
	}
	return oldValue.ToolChoice, nil
}

// ClearToolChoice clears the value of the "tool_choice" field.
func (m *ImplementationMutation) ClearToolChoice() {
	m.tool_choice = nil
	m.clearedFields[implementation.FieldToolChoice] = struct{}{}
}

// ToolChoiceCleared returns if the "tool_choice" field was cleared in this mutation.
func (m *ImplementationMutation) ToolChoiceCleared() bool {
	_, ok := m.clearedFields[implementation.FieldToolChoice]
	return ok
}

// ResetToolChoice resets all changes to the "tool_choice" field.
func (m *ImplementationMutation) ResetToolChoice() {
	m.tool_choice = nil
	delete(m.clearedFields, implementation.FieldToolChoice)
}

// SetMaxOutputTokens sets the "max_output_tokens" field.
func (m *ImplementationMutation) SetMaxOutputTokens(i int) {
	m.max_output_tokens = &i
	m.addmax_output_tokens = nil
}

// MaxOutputTokens returns the value of the "max_output_tokens" field in the mutation.
func (m *ImplementationMutation) MaxOutputTokens() (r int, exists bool) {
	v := m.max_output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxOutputTokens returns the old "max_output_tokens" field's value of the Implementation entity.
// If the Implementation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImplementationMutation) OldMaxOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxOutputTokens: %w", err)
	}
	return oldValue.MaxOutputTokens, nil
}

// AddMaxOutputTokens adds i to the "max_output_tokens" field.
func (m *ImplementationMutation) AddMaxOutputTokens(i int) {
	if m.addmax_output_tokens != nil {
		*m.addmax_output_tokens += i
	} else {
		m.addmax_output_tokens = &i
	}
}

// AddedMaxOutputTokens returns the value that was added to the "max_output_tokens" field in this mutation.
func (m *ImplementationMutation) AddedMaxOutputTokens() (r int, exists bool) {
	v := m.addmax_output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxOutputTokens resets all changes to the "max_output_tokens" field.
func (m *ImplementationMutation) ResetMaxOutputTokens() {
	m.max_output_tokens = nil
	m.addmax_output_tokens = nil
}

// SetResponseSchema sets the "response_schema" field.
func (m *ImplementationMutation) SetResponseSchema(value map[string]interface{}) {
	m.response_schema = &value
}

// ResponseSchema returns the value of the "response_schema" field in the mutation.
func (m *ImplementationMutation) ResponseSchema() (r map[string]interface{}, exists bool) {
	v := m.response_schema
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseSchema returns the old "response_schema" field's value of the Implementation entity.
// If the Implementation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImplementationMutation) OldResponseSchema(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseSchema is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseSchema requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseSchema: %w", err)
	}
	return oldValue.ResponseSchema, nil
}

// ClearResponseSchema clears the value of the "response_schema" field.
func (m *ImplementationMutation) ClearResponseSchema() {
	m.response_schema = nil
	m.clearedFields[implementation.FieldResponseSchema] = struct{}{}
}

// ResponseSchemaCleared returns if the "response_schema" field was cleared in this mutation.
func (m *ImplementationMutation) ResponseSchemaCleared() bool {
	_, ok := m.clearedFields[implementation.FieldResponseSchema]
	return ok
}

// ResetResponseSchema resets all changes to the "response_schema" field.
func (m *ImplementationMutation) ResetResponseSchema() {
	m.response_schema = nil
	delete(m.clearedFields, implementation.FieldResponseSchema)
}

// SetTemp sets the "temp" field.
func (m *ImplementationMutation) SetTemp(b bool) {
	m.temp = &b
}

// Temp returns the value of the "temp" field in the mutation.
func (m *ImplementationMutation) Temp() (r bool, exists bool) {
	v := m.temp
	if v == nil {
		return
	}
	return *v, true
}

// OldTemp returns the old "temp" field's value of the Implementation entity.
// If the Implementation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImplementationMutation) OldTemp(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemp: %w", err)
	}
	return oldValue.Temp, nil
}

// ResetTemp resets all changes to the "temp" field.
func (m *ImplementationMutation) ResetTemp() {
	m.temp = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ImplementationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ImplementationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Implementation entity.
// If the Implementation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ImplementationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ImplementationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *ImplementationMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[implementation.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *ImplementationMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *ImplementationMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *ImplementationMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// AddTraceIDs adds the "traces" edge to the Trace entity by ids.
func (m *ImplementationMutation) AddTraceIDs(ids ...string) {
	if m.traces == nil {
		m.traces = make(map[string]struct{})
	}
	for i := range ids {
		m.traces[ids[i]] = struct{}{}
	}
}

// ClearTraces clears the "traces" edge to the Trace entity.
func (m *ImplementationMutation) ClearTraces() {
	m.clearedtraces = true
}

// TracesCleared reports if the "traces" edge to the Trace entity was cleared.
func (m *ImplementationMutation) TracesCleared() bool {
	return m.clearedtraces
}

// RemoveTraceIDs removes the "traces" edge to the Trace entity by IDs.
func (m *ImplementationMutation) RemoveTraceIDs(ids ...string) {
	if m.removedtraces == nil {
		m.removedtraces = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.traces, ids[i])
		m.removedtraces[ids[i]] = struct{}{}
	}
}

// RemovedTraces returns the removed IDs of the "traces" edge to the Trace entity.
func (m *ImplementationMutation) RemovedTracesIDs() (ids []string) {
	for id := range m.removedtraces {
		ids = append(ids, id)
	}
	return
}

// TracesIDs returns the "traces" edge IDs in the mutation.
func (m *ImplementationMutation) TracesIDs() (ids []string) {
	for id := range m.traces {
		ids = append(ids, id)
	}
	return
}

// ResetTraces resets all changes to the "traces" edge.
func (m *ImplementationMutation) ResetTraces() {
	m.traces = nil
	m.clearedtraces = false
	m.removedtraces = nil
}

// AddExecutionResultIDs adds the "execution_results" edge to the ExecutionResult entity by ids.
func (m *ImplementationMutation) AddExecutionResultIDs(ids ...string) {
	if m.execution_results == nil {
		m.execution_results = make(map[string]struct{})
	}
	for i := range ids {
		m.execution_results[ids[i]] = struct{}{}
	}
}

// ClearExecutionResults clears the "execution_results" edge to the ExecutionResult entity.
func (m *ImplementationMutation) ClearExecutionResults() {
	m.clearedexecution_results = true
}

// ExecutionResultsCleared reports if the "execution_results" edge to the ExecutionResult entity was cleared.
func (m *ImplementationMutation) ExecutionResultsCleared() bool {
	return m.clearedexecution_results
}

// RemoveExecutionResultIDs removes the "execution_results" edge to the ExecutionResult entity by IDs.
func (m *ImplementationMutation) RemoveExecutionResultIDs(ids ...string) {
	if m.removedexecution_results == nil {
		m.removedexecution_results = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.execution_results, ids[i])
		m.removedexecution_results[ids[i]] = struct{}{}
	}
}

// RemovedExecutionResults returns the removed IDs of the "execution_results" edge to the ExecutionResult entity.
func (m *ImplementationMutation) RemovedExecutionResultsIDs() (ids []string) {
	for id := range m.removedexecution_results {
		ids = append(ids, id)
	}
	return
}

// ExecutionResultsIDs returns the "execution_results" edge IDs in the mutation.
func (m *ImplementationMutation) ExecutionResultsIDs() (ids []string) {
	for id := range m.execution_results {
		ids = append(ids, id)
	}
	return
}

// ResetExecutionResults resets all changes to the "execution_results" edge.
func (m *ImplementationMutation) ResetExecutionResults() {
	m.execution_results = nil
	m.clearedexecution_results = false
	m.removedexecution_results = nil
}

// AddEvaluationIDs adds the "evaluations" edge to the Evaluation entity by ids.
func (m *ImplementationMutation) AddEvaluationIDs(ids ...string) {
	if m.evaluations == nil {
		m.evaluations = make(map[string]struct{})
	}
	for i := range ids {
		m.evaluations[ids[i]] = struct{}{}
	}
}

// ClearEvaluations clears the "evaluations" edge to the Evaluation entity.
func (m *ImplementationMutation) ClearEvaluations() {
	m.clearedevaluations = true
}

// EvaluationsCleared reports if the "evaluations" edge to the Evaluation entity was cleared.
func (m *ImplementationMutation) EvaluationsCleared() bool {
	return m.clearedevaluations
}

// RemoveEvaluationIDs removes the "evaluations" edge to the Evaluation entity by IDs.
func (m *ImplementationMutation) RemoveEvaluationIDs(ids ...string) {
	if m.removedevaluations == nil {
		m.removedevaluations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.evaluations, ids[i])
		m.removedevaluations[ids[i]] = struct{}{}
	}
}

// RemovedEvaluations returns the removed IDs of the "evaluations" edge to the Evaluation entity.
func (m *ImplementationMutation) RemovedEvaluationsIDs() (ids []string) {
	for id := range m.removedevaluations {
		ids = append(ids, id)
	}
	return
}

// EvaluationsIDs returns the "evaluations" edge IDs in the mutation.
func (m *ImplementationMutation) EvaluationsIDs() (ids []string) {
	for id := range m.evaluations {
		ids = append(ids, id)
	}
	return
}

// ResetEvaluations resets all changes to the "evaluations" edge.
func (m *ImplementationMutation) ResetEvaluations() {
	m.evaluations = nil
	m.clearedevaluations = false
	m.removedevaluations = nil
}

// Where appends a list predicates to the ImplementationMutation builder.
func (m *ImplementationMutation) Where(ps ...predicate.Implementation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ImplementationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ImplementationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Implementation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ImplementationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ImplementationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Implementation).
func (m *ImplementationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ImplementationMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.task != nil {
		fields = append(fields, implementation.FieldTaskID)
	}
	if m.version != nil {
		fields = append(fields, implementation.FieldVersion)
	}
	if m.prompt != nil {
		fields = append(fields, implementation.FieldPrompt)
	}
	if m.model != nil {
		fields = append(fields, implementation.FieldModel)
	}
	if m.temperature != nil {
		fields = append(fields, implementation.FieldTemperature)
	}
	if m.reasoning != nil {
		fields = append(fields, implementation.FieldReasoning)
	}
	if m.tools != nil {
		fields = append(fields, implementation.FieldTools)
	}
	if m.tool_choice != nil {
		fields = append(fields, implementation.FieldToolChoice)
	}
	if m.max_output_tokens != nil {
		fields = append(fields, implementation.FieldMaxOutputTokens)
	}
	if m.response_schema != nil {
		fields = append(fields, implementation.FieldResponseSchema)
	}
	if m.temp != nil {
		fields = append(fields, implementation.FieldTemp)
	}
	if m.created_at != nil {
		fields = append(fields, implementation.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ImplementationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case implementation.FieldTaskID:
		return m.TaskID()
	case implementation.FieldVersion:
		return m.Version()
	case implementation.FieldPrompt:
		return m.Prompt()
	case implementation.FieldModel:
		return m.Model()
	case implementation.FieldTemperature:
		return m.Temperature()
	case implementation.FieldReasoning:
		return m.Reasoning()
	case implementation.FieldTools:
		return m.Tools()
	case implementation.FieldToolChoice:
		return m.ToolChoice()
	case implementation.FieldMaxOutputTokens:
		return m.MaxOutputTokens()
	case implementation.FieldResponseSchema:
		return m.ResponseSchema()
	case implementation.FieldTemp:
		return m.Temp()
	case implementation.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ImplementationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case implementation.FieldTaskID:
		return m.OldTaskID(ctx)
	case implementation.FieldVersion:
		return m.OldVersion(ctx)
	case implementation.FieldPrompt:
		return m.OldPrompt(ctx)
	case implementation.FieldModel:
		return m.OldModel(ctx)
	case implementation.FieldTemperature:
		return m.OldTemperature(ctx)
	case implementation.FieldReasoning:
		return m.OldReasoning(ctx)
	case implementation.FieldTools:
		return m.OldTools(ctx)
	case implementation.FieldToolChoice:
		return m.OldToolChoice(ctx)
	case implementation.FieldMaxOutputTokens:
		return m.OldMaxOutputTokens(ctx)
	case implementation.FieldResponseSchema:
		return m.OldResponseSchema(ctx)
	case implementation.FieldTemp:
		return m.OldTemp(ctx)
	case implementation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Implementation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImplementationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case implementation.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case implementation.FieldVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case implementation.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case implementation.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case implementation.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemperature(v)
		return nil
	case implementation.FieldReasoning:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoning(v)
		return nil
	case implementation.FieldTools:
		v, ok := value.([]models.ToolDefinition)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTools(v)
		return nil
	case implementation.FieldToolChoice:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetToolChoice(v)
		return nil
	case implementation.FieldMaxOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxOutputTokens(v)
		return nil
	case implementation.FieldResponseSchema:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseSchema(v)
		return nil
	case implementation.FieldTemp:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemp(v)
		return nil
	case implementation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Implementation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ImplementationMutation) AddedFields() []string {
	var fields []string
	if m.addtemperature != nil {
		fields = append(fields, implementation.FieldTemperature)
	}
	if m.addmax_output_tokens != nil {
		fields = append(fields, implementation.FieldMaxOutputTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ImplementationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case implementation.FieldTemperature:
		return m.AddedTemperature()
	case implementation.FieldMaxOutputTokens:
		return m.AddedMaxOutputTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ImplementationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case implementation.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemperature(v)
		return nil
	case implementation.FieldMaxOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxOutputTokens(v)
		return nil
	}
	return fmt.Errorf("unknown Implementation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ImplementationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(implementation.FieldTemperature) {
		fields = append(fields, implementation.FieldTemperature)
	}
	if m.FieldCleared(implementation.FieldReasoning) {
		fields = append(fields, implementation.FieldReasoning)
	}
	if m.FieldCleared(implementation.FieldTools) {
		fields = append(fields, implementation.FieldTools)
	}
	if m.FieldCleared(implementation.FieldToolChoice) {
		fields = append(fields, implementation.FieldToolChoice)
	}
	if m.FieldCleared(implementation.FieldResponseSchema) {
		fields = append(fields, implementation.FieldResponseSchema)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ImplementationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ImplementationMutation) ClearField(name string) error {
	switch name {
	case implementation.FieldTemperature:
		m.ClearTemperature()
		return nil
	case implementation.FieldReasoning:
		m.ClearReasoning()
		return nil
	case implementation.FieldTools:
		m.ClearTools()
		return nil
	case implementation.FieldToolChoice:
		m.ClearToolChoice()
		return nil
	case implementation.FieldResponseSchema:
		m.ClearResponseSchema()
		return nil
	}
	return fmt.Errorf("unknown Implementation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ImplementationMutation) ResetField(name string) error {
	switch name {
	case implementation.FieldTaskID:
		m.ResetTaskID()
		return nil
	case implementation.FieldVersion:
		m.ResetVersion()
		return nil
	case implementation.FieldPrompt:
		m.ResetPrompt()
		return nil
	case implementation.FieldModel:
		m.ResetModel()
		return nil
	case implementation.FieldTemperature:
		m.ResetTemperature()
		return nil
	case implementation.FieldReasoning:
		m.ResetReasoning()
		return nil
	case implementation.FieldTools:
		m.ResetTools()
		return nil
	case implementation.FieldToolChoice:
		m.ResetToolChoice()
		return nil
	case implementation.FieldMaxOutputTokens:
		m.ResetMaxOutputTokens()
		return nil
	case implementation.FieldResponseSchema:
		m.ResetResponseSchema()
		return nil
	case implementation.FieldTemp:
		m.ResetTemp()
		return nil
	case implementation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Implementation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ImplementationMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.task != nil {
		edges = append(edges, implementation.EdgeTask)
	}
	if m.traces != nil {
		edges = append(edges, implementation.EdgeTraces)
	}
	if m.execution_results != nil {
		edges = append(edges, implementation.EdgeExecutionResults)
	}
	if m.evaluations != nil {
		edges = append(edges, implementation.EdgeEvaluations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ImplementationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case implementation.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	case implementation.EdgeTraces:
		ids := make([]ent.Value, 0, len(m.traces))
		for id := range m.traces {
			ids = append(ids, id)
		}
		return ids
	case implementation.EdgeExecutionResults:
		ids := make([]ent.Value, 0, len(m.execution_results))
		for id := range m.execution_results {
			ids = append(ids, id)
		}
		return ids
	case implementation.EdgeEvaluations:
		ids := make([]ent.Value, 0, len(m.evaluations))
		for id := range m.evaluations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ImplementationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedtraces != nil {
		edges = append(edges, implementation.EdgeTraces)
	}
	if m.removedexecution_results != nil {
		edges = append(edges, implementation.EdgeExecutionResults)
	}
	if m.removedevaluations != nil {
		edges = append(edges, implementation.EdgeEvaluations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ImplementationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case implementation.EdgeTraces:
		ids := make([]ent.Value, 0, len(m.removedtraces))
		for id := range m.removedtraces {
			ids = append(ids, id)
		}
		return ids
	case implementation.EdgeExecutionResults:
		ids := make([]ent.Value, 0, len(m.removedexecution_results))
		for id := range m.removedexecution_results {
			ids = append(ids, id)
		}
		return ids
	case implementation.EdgeEvaluations:
		ids := make([]ent.Value, 0, len(m.removedevaluations))
		for id := range m.removedevaluations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ImplementationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedtask {
		edges = append(edges, implementation.EdgeTask)
	}
	if m.clearedtraces {
		edges = append(edges, implementation.EdgeTraces)
	}
	if m.clearedexecution_results {
		edges = append(edges, implementation.EdgeExecutionResults)
	}
	if m.clearedevaluations {
		edges = append(edges, implementation.EdgeEvaluations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ImplementationMutation) EdgeCleared(name string) bool {
	switch name {
	case implementation.EdgeTask:
		return m.clearedtask
	case implementation.EdgeTraces:
		return m.clearedtraces
	case implementation.EdgeExecutionResults:
		return m.clearedexecution_results
	case implementation.EdgeEvaluations:
		return m.clearedevaluations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ImplementationMutation) ClearEdge(name string) error {
	switch name {
	case implementation.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown Implementation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ImplementationMutation) ResetEdge(name string) error {
	switch name {
	case implementation.EdgeTask:
		m.ResetTask()
		return nil
	case implementation.EdgeTraces:
		m.ResetTraces()
		return nil
	case implementation.EdgeExecutionResults:
		m.ResetExecutionResults()
		return nil
	case implementation.EdgeEvaluations:
		m.ResetEvaluations()
		return nil
	}
	return fmt.Errorf("unknown Implementation edge %s", name)
}

// ProjectMutation represents an operation that mutates the Project nodes in the graph.
type ProjectMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	name               *string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	tasks              map[string]struct{}
	removedtasks       map[string]struct{}
	clearedtasks       bool
	graders            map[string]struct{}
	removedgraders     map[string]struct{}
	clearedgraders     bool
	traces             map[string]struct{}
	removedtraces      map[string]struct{}
	clearedtraces      bool
	http_traces        map[string]struct{}
	removedhttp_traces map[string]struct{}
	clearedhttp_traces bool
	done               bool
	oldValue           func(context.Context) (*Project, error)
	predicates         []predicate.Project
}

var _ ent.Mutation = (*ProjectMutation)(nil)

// projectOption allows management of the mutation configuration using functional options.
type projectOption func(*ProjectMutation)

// newProjectMutation creates new mutation for the Project entity.
func newProjectMutation(c config, op Op, opts ...projectOption) *ProjectMutation {
	m := &ProjectMutation{
		config:        c,
		op:            op,
		typ:           TypeProject,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProjectID sets the ID field of the mutation.
func withProjectID(id string) projectOption {
	return func(m *ProjectMutation) {
		var (
			err   error
			once  sync.Once
			value *Project
		)
		m.oldValue = func(ctx context.Context) (*Project, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Project.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProject sets the old Project of the mutation.
func withProject(node *Project) projectOption {
	return func(m *ProjectMutation) {
		m.oldValue = func(context.Context) (*Project, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProjectMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProjectMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Project entities.
func (m *ProjectMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProjectMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProjectMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Project.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProjectMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProjectMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProjectMutation) ResetName() {
	m.name = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProjectMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProjectMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Project entity.
// If the Project object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProjectMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ProjectMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddTaskIDs adds the "tasks" edge to the Task entity by ids.
func (m *ProjectMutation) AddTaskIDs(ids ...string) {
	if m.tasks == nil {
		m.tasks = make(map[string]struct{})
	}
	for i := range ids {
		m.tasks[ids[i]] = struct{}{}
	}
}

// ClearTasks clears the "tasks" edge to the Task entity.
func (m *ProjectMutation) ClearTasks() {
	m.clearedtasks = true
}

// TasksCleared reports if the "tasks" edge to the Task entity was cleared.
func (m *ProjectMutation) TasksCleared() bool {
	return m.clearedtasks
}

// RemoveTaskIDs removes the "tasks" edge to the Task entity by IDs.
func (m *ProjectMutation) RemoveTaskIDs(ids ...string) {
	if m.removedtasks == nil {
		m.removedtasks = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.tasks, ids[i])
		m.removedtasks[ids[i]] = struct{}{}
	}
}

// RemovedTasks returns the removed IDs of the "tasks" edge to the Task entity.
func (m *ProjectMutation) RemovedTasksIDs() (ids []string) {
	for id := range m.removedtasks {
		ids = append(ids, id)
	}
	return
}

// TasksIDs returns the "tasks" edge IDs in the mutation.
func (m *ProjectMutation) TasksIDs() (ids []string) {
	for id := range m.tasks {
		ids = append(ids, id)
	}
	return
}

// ResetTasks resets all changes to the "tasks" edge.
func (m *ProjectMutation) ResetTasks() {
	m.tasks = nil
	m.clearedtasks = false
	m.removedtasks = nil
}

// AddGraderIDs adds the "graders" edge to the Grader entity by ids.
func (m *ProjectMutation) AddGraderIDs(ids ...string) {
	if m.graders == nil {
		m.graders = make(map[string]struct{})
	}
	for i := range ids {
		m.graders[ids[i]] = struct{}{}
	}
}

// ClearGraders clears the "graders" edge to the Grader entity.
func (m *ProjectMutation) ClearGraders() {
	m.clearedgraders = true
}

// GradersCleared reports if the "graders" edge to the Grader entity was cleared.
func (m *ProjectMutation) GradersCleared() bool {
	return m.clearedgraders
}

// RemoveGraderIDs removes the "graders" edge to the Grader entity by IDs.
func (m *ProjectMutation) RemoveGraderIDs(ids ...string) {
	if m.removedgraders == nil {
		m.removedgraders = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.graders, ids[i])
		m.removedgraders[ids[i]] = struct{}{}
	}
}

// RemovedGraders returns the removed IDs of the "graders" edge to the Grader entity.
func (m *ProjectMutation) RemovedGradersIDs() (ids []string) {
	for id := range m.removedgraders {
		ids = append(ids, id)
	}
	return
}

// GradersIDs returns the "graders" edge IDs in the mutation.
func (m *ProjectMutation) GradersIDs() (ids []string) {
	for id := range m.graders {
		ids = append(ids, id)
	}
	return
}

// ResetGraders resets all changes to the "graders" edge.
func (m *ProjectMutation) ResetGraders() {
	m.graders = nil
	m.clearedgraders = false
	m.removedgraders = nil
}

// AddTraceIDs adds the "traces" edge to the Trace entity by ids.
func (m *ProjectMutation) AddTraceIDs(ids ...string) {
	if m.traces == nil {
		m.traces = make(map[string]struct{})
	}
	for i := range ids {
		m.traces[ids[i]] = struct{}{}
	}
}

// ClearTraces clears the "traces" edge to the Trace entity.
func (m *ProjectMutation) ClearTraces() {
	m.clearedtraces = true
}

// TracesCleared reports if the "traces" edge to the Trace entity was cleared.
func (m *ProjectMutation) TracesCleared() bool {
	return m.clearedtraces
}

// RemoveTraceIDs removes the "traces" edge to the Trace entity by IDs.
func (m *ProjectMutation) RemoveTraceIDs(ids ...string) {
	if m.removedtraces == nil {
		m.removedtraces = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.traces, ids[i])
		m.removedtraces[ids[i]] = struct{}{}
	}
}

// RemovedTraces returns the removed IDs of the "traces" edge to the Trace entity.
func (m *ProjectMutation) RemovedTracesIDs() (ids []string) {
	for id := range m.removedtraces {
		ids = append(ids, id)
	}
	return
}

// TracesIDs returns the "traces" edge IDs in the mutation.
func (m *ProjectMutation) TracesIDs() (ids []string) {
	for id := range m.traces {
		ids = append(ids, id)
	}
	return
}

// ResetTraces resets all changes to the "traces" edge.
func (m *ProjectMutation) ResetTraces() {
	m.traces = nil
	m.clearedtraces = false
	m.removedtraces = nil
}

// AddHTTPTraceIDs adds the "http_traces" edge to the HTTPTrace entity by ids.
func (m *ProjectMutation) AddHTTPTraceIDs(ids ...string) {
	if m.http_traces == nil {
		m.http_traces = make(map[string]struct{})
	}
	for i := range ids {
		m.http_traces[ids[i]] = struct{}{}
	}
}

// ClearHTTPTraces clears the "http_traces" edge to the HTTPTrace entity.
func (m *ProjectMutation) ClearHTTPTraces() {
	m.clearedhttp_traces = true
}

// HTTPTracesCleared reports if the "http_traces" edge to the HTTPTrace entity was cleared.
func (m *ProjectMutation) HTTPTracesCleared() bool {
	return m.clearedhttp_traces
}

// RemoveHTTPTraceIDs removes the "http_traces" edge to the HTTPTrace entity by IDs.
func (m *ProjectMutation) RemoveHTTPTraceIDs(ids ...string) {
	if m.removedhttp_traces == nil {
		m.removedhttp_traces = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.http_traces, ids[i])
		m.removedhttp_traces[ids[i]] = struct{}{}
	}
}

// RemovedHTTPTraces returns the removed IDs of the "http_traces" edge to the HTTPTrace entity.
func (m *ProjectMutation) RemovedHTTPTracesIDs() (ids []string) {
	for id := range m.removedhttp_traces {
		ids = append(ids, id)
	}
	return
}

// HTTPTracesIDs returns the "http_traces" edge IDs in the mutation.
func (m *ProjectMutation) HTTPTracesIDs() (ids []string) {
	for id := range m.http_traces {
		ids = append(ids, id)
	}
	return
}

// ResetHTTPTraces resets all changes to the "http_traces" edge.
func (m *ProjectMutation) ResetHTTPTraces() {
	m.http_traces = nil
	m.clearedhttp_traces = false
	m.removedhttp_traces = nil
}

// Where appends a list predicates to the ProjectMutation builder.
func (m *ProjectMutation) Where(ps ...predicate.Project) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProjectMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProjectMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Project, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProjectMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProjectMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Project).
func (m *ProjectMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProjectMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.name != nil {
		fields = append(fields, project.FieldName)
	}
	if m.created_at != nil {
		fields = append(fields, project.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProjectMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case project.FieldName:
		return m.Name()
	case project.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProjectMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case project.FieldName:
		return m.OldName(ctx)
	case project.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Project field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) SetField(name string, value ent.Value) error {
	switch name {
	case project.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case project.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProjectMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProjectMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProjectMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Project numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProjectMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProjectMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProjectMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Project nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProjectMutation) ResetField(name string) error {
	switch name {
	case project.FieldName:
		m.ResetName()
		return nil
	case project.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Project field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProjectMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.tasks != nil {
		edges = append(edges, project.EdgeTasks)
	}
	if m.graders != nil {
		edges = append(edges, project.EdgeGraders)
	}
	if m.traces != nil {
		edges = append(edges, project.EdgeTraces)
	}
	if m.http_traces != nil {
		edges = append(edges, project.EdgeHTTPTraces)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProjectMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.tasks))
		for id := range m.tasks {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeGraders:
		ids := make([]ent.Value, 0, len(m.graders))
		for id := range m.graders {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeTraces:
		ids := make([]ent.Value, 0, len(m.traces))
		for id := range m.traces {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeHTTPTraces:
		ids := make([]ent.Value, 0, len(m.http_traces))
		for id := range m.http_traces {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProjectMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedtasks != nil {
		edges = append(edges, project.EdgeTasks)
	}
	if m.removedgraders != nil {
		edges = append(edges, project.EdgeGraders)
	}
	if m.removedtraces != nil {
		edges = append(edges, project.EdgeTraces)
	}
	if m.removedhttp_traces != nil {
		edges = append(edges, project.EdgeHTTPTraces)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProjectMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case project.EdgeTasks:
		ids := make([]ent.Value, 0, len(m.removedtasks))
		for id := range m.removedtasks {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeGraders:
		ids := make([]ent.Value, 0, len(m.removedgraders))
		for id := range m.removedgraders {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeTraces:
		ids := make([]ent.Value, 0, len(m.removedtraces))
		for id := range m.removedtraces {
			ids = append(ids, id)
		}
		return ids
	case project.EdgeHTTPTraces:
		ids := make([]ent.Value, 0, len(m.removedhttp_traces))
		for id := range m.removedhttp_traces {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProjectMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedtasks {
		edges = append(edges, project.EdgeTasks)
	}
	if m.clearedgraders {
		edges = append(edges, project.EdgeGraders)
	}
	if m.clearedtraces {
		edges = append(edges, project.EdgeTraces)
	}
	if m.clearedhttp_traces {
		edges = append(edges, project.EdgeHTTPTraces)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProjectMutation) EdgeCleared(name string) bool {
	switch name {
	case project.EdgeTasks:
		return m.clearedtasks
	case project.EdgeGraders:
		return m.clearedgraders
	case project.EdgeTraces:
		return m.clearedtraces
	case project.EdgeHTTPTraces:
		return m.clearedhttp_traces
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProjectMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Project unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProjectMutation) ResetEdge(name string) error {
	switch name {
	case project.EdgeTasks:
		m.ResetTasks()
		return nil
	case project.EdgeGraders:
		m.ResetGraders()
		return nil
	case project.EdgeTraces:
		m.ResetTraces()
		return nil
	case project.EdgeHTTPTraces:
		m.ResetHTTPTraces()
		return nil
	}
	return fmt.Errorf("unknown Project edge %s", name)
}

// TargetTaskMetricsMutation represents an operation that mutates the TargetTaskMetrics nodes in the graph.
type TargetTaskMetricsMutation struct {
	config
	op              Op
	typ             string
	id              *string
	best_cost       *float64
	addbest_cost    *float64
	best_time_ms    *float64
	addbest_time_ms *float64
	last_updated_at *time.Time
	clearedFields   map[string]struct{}
	task            *string
	clearedtask     bool
	done            bool
	oldValue        func(context.Context) (*TargetTaskMetrics, error)
	predicates      []predicate.TargetTaskMetrics
}

var _ ent.Mutation = (*TargetTaskMetricsMutation)(nil)

// targettaskmetricsOption allows management of the mutation configuration using functional options.
type targettaskmetricsOption func(*TargetTaskMetricsMutation)

// newTargetTaskMetricsMutation creates new mutation for the TargetTaskMetrics entity.
func newTargetTaskMetricsMutation(c config, op Op, opts ...targettaskmetricsOption) *TargetTaskMetricsMutation {
	m := &TargetTaskMetricsMutation{
		config:        c,
		op:            op,
		typ:           TypeTargetTaskMetrics,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTargetTaskMetricsID sets the ID field of the mutation.
func withTargetTaskMetricsID(id string) targettaskmetricsOption {
	return func(m *TargetTaskMetricsMutation) {
		var (
			err   error
			once  sync.Once
			value *TargetTaskMetrics
		)
		m.oldValue = func(ctx context.Context) (*TargetTaskMetrics, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TargetTaskMetrics.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTargetTaskMetrics sets the old TargetTaskMetrics of the mutation.
func withTargetTaskMetrics(node *TargetTaskMetrics) targettaskmetricsOption {
	return func(m *TargetTaskMetricsMutation) {
		m.oldValue = func(context.Context) (*TargetTaskMetrics, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TargetTaskMetricsMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TargetTaskMetricsMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TargetTaskMetrics entities.
func (m *TargetTaskMetricsMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TargetTaskMetricsMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TargetTaskMetricsMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TargetTaskMetrics.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *TargetTaskMetricsMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TargetTaskMetricsMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TargetTaskMetrics entity.
// If the TargetTaskMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TargetTaskMetricsMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TargetTaskMetricsMutation) ResetTaskID() {
	m.task = nil
}

// SetBestCost sets the "best_cost" field.
func (m *TargetTaskMetricsMutation) SetBestCost(f float64) {
	m.best_cost = &f
	m.addbest_cost = nil
}

// BestCost returns the value of the "best_cost" field in the mutation.
func (m *TargetTaskMetricsMutation) BestCost() (r float64, exists bool) {
	v := m.best_cost
	if v == nil {
		return
	}
	return *v, true
}

// OldBestCost returns the old "best_cost" field's value of the TargetTaskMetrics entity.
// If the TargetTaskMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TargetTaskMetricsMutation) OldBestCost(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBestCost is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBestCost requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBestCost: %w", err)
	}
	return oldValue.BestCost, nil
}

// AddBestCost adds f to the "best_cost" field.
func (m *TargetTaskMetricsMutation) AddBestCost(f float64) {
	if m.addbest_cost != nil {
		*m.addbest_cost += f
	} else {
		m.addbest_cost = &f
	}
}

// AddedBestCost returns the value that was added to the "best_cost" field in this mutation.
func (m *TargetTaskMetricsMutation) AddedBestCost() (r float64, exists bool) {
	v := m.addbest_cost
	if v == nil {
		return
	}
	return *v, true
}

// ClearBestCost clears the value of the "best_cost" field.
func (m *TargetTaskMetricsMutation) ClearBestCost() {
	m.best_cost = nil
	m.addbest_cost = nil
	m.clearedFields[targettaskmetrics.FieldBestCost] = struct{}{}
}

// BestCostCleared returns if the "best_cost" field was cleared in this mutation.
func (m *TargetTaskMetricsMutation) BestCostCleared() bool {
	_, ok := m.clearedFields[targettaskmetrics.FieldBestCost]
	return ok
}

// ResetBestCost resets all changes to the "best_cost" field.
func (m *TargetTaskMetricsMutation) ResetBestCost() {
	m.best_cost = nil
	m.addbest_cost = nil
	delete(m.clearedFields, targettaskmetrics.FieldBestCost)
}

// SetBestTimeMs sets the "best_time_ms" field.
func (m *TargetTaskMetricsMutation) SetBestTimeMs(f float64) {
	m.best_time_ms = &f
	m.addbest_time_ms = nil
}

// BestTimeMs returns the value of the "best_time_ms" field in the mutation.
func (m *TargetTaskMetricsMutation) BestTimeMs() (r float64, exists bool) {
	v := m.best_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldBestTimeMs returns the old "best_time_ms" field's value of the TargetTaskMetrics entity.
// If the TargetTaskMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TargetTaskMetricsMutation) OldBestTimeMs(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBestTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBestTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBestTimeMs: %w", err)
	}
	return oldValue.BestTimeMs, nil
}

// AddBestTimeMs adds f to the "best_time_ms" field.
func (m *TargetTaskMetricsMutation) AddBestTimeMs(f float64) {
	if m.addbest_time_ms != nil {
		*m.addbest_time_ms += f
	} else {
		m.addbest_time_ms = &f
	}
}

// AddedBestTimeMs returns the value that was added to the "best_time_ms" field in this mutation.
func (m *TargetTaskMetricsMutation) AddedBestTimeMs() (r float64, exists bool) {
	v := m.addbest_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearBestTimeMs clears the value of the "best_time_ms" field.
func (m *TargetTaskMetricsMutation) ClearBestTimeMs() {
	m.best_time_ms = nil
	m.addbest_time_ms = nil
	m.clearedFields[targettaskmetrics.FieldBestTimeMs] = struct{}{}
}

// BestTimeMsCleared returns if the "best_time_ms" field was cleared in this mutation.
func (m *TargetTaskMetricsMutation) BestTimeMsCleared() bool {
	_, ok := m.clearedFields[targettaskmetrics.FieldBestTimeMs]
	return ok
}

// ResetBestTimeMs resets all changes to the "best_time_ms" field.
func (m *TargetTaskMetricsMutation) ResetBestTimeMs() {
	m.best_time_ms = nil
	m.addbest_time_ms = nil
	delete(m.clearedFields, targettaskmetrics.FieldBestTimeMs)
}

// SetLastUpdatedAt sets the "last_updated_at" field.
func (m *TargetTaskMetricsMutation) SetLastUpdatedAt(t time.Time) {
	m.last_updated_at = &t
}

// LastUpdatedAt returns the value of the "last_updated_at" field in the mutation.
func (m *TargetTaskMetricsMutation) LastUpdatedAt() (r time.Time, exists bool) {
	v := m.last_updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUpdatedAt returns the old "last_updated_at" field's value of the TargetTaskMetrics entity.
// If the TargetTaskMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TargetTaskMetricsMutation) OldLastUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUpdatedAt: %w", err)
	}
	return oldValue.LastUpdatedAt, nil
}

// ResetLastUpdatedAt resets all changes to the "last_updated_at" field.
func (m *TargetTaskMetricsMutation) ResetLastUpdatedAt() {
	m.last_updated_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *TargetTaskMetricsMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[targettaskmetrics.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *TargetTaskMetricsMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *TargetTaskMetricsMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *TargetTaskMetricsMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the TargetTaskMetricsMutation builder.
func (m *TargetTaskMetricsMutation) Where(ps ...predicate.TargetTaskMetrics) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TargetTaskMetricsMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TargetTaskMetricsMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TargetTaskMetrics, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TargetTaskMetricsMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TargetTaskMetricsMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TargetTaskMetrics).
func (m *TargetTaskMetricsMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TargetTaskMetricsMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.task != nil {
		fields = append(fields, targettaskmetrics.FieldTaskID)
	}
	if m.best_cost != nil {
		fields = append(fields, targettaskmetrics.FieldBestCost)
	}
	if m.best_time_ms != nil {
		fields = append(fields, targettaskmetrics.FieldBestTimeMs)
	}
	if m.last_updated_at != nil {
		fields = append(fields, targettaskmetrics.FieldLastUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TargetTaskMetricsMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case targettaskmetrics.FieldTaskID:
		return m.TaskID()
	case targettaskmetrics.FieldBestCost:
		return m.BestCost()
	case targettaskmetrics.FieldBestTimeMs:
		return m.BestTimeMs()
	case targettaskmetrics.FieldLastUpdatedAt:
		return m.LastUpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TargetTaskMetricsMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case targettaskmetrics.FieldTaskID:
		return m.OldTaskID(ctx)
	case targettaskmetrics.FieldBestCost:
		return m.OldBestCost(ctx)
	case targettaskmetrics.FieldBestTimeMs:
		return m.OldBestTimeMs(ctx)
	case targettaskmetrics.FieldLastUpdatedAt:
		return m.OldLastUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TargetTaskMetrics field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TargetTaskMetricsMutation) SetField(name string, value ent.Value) error {
	switch name {
	case targettaskmetrics.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case targettaskmetrics.FieldBestCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBestCost(v)
		return nil
	case targettaskmetrics.FieldBestTimeMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBestTimeMs(v)
		return nil
	case targettaskmetrics.FieldLastUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TargetTaskMetrics field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TargetTaskMetricsMutation) AddedFields() []string {
	var fields []string
	if m.addbest_cost != nil {
		fields = append(fields, targettaskmetrics.FieldBestCost)
	}
	if m.addbest_time_ms != nil {
		fields = append(fields, targettaskmetrics.FieldBestTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TargetTaskMetricsMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case targettaskmetrics.FieldBestCost:
		return m.AddedBestCost()
	case targettaskmetrics.FieldBestTimeMs:
		return m.AddedBestTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TargetTaskMetricsMutation) AddField(name string, value ent.Value) error {
	switch name {
	case targettaskmetrics.FieldBestCost:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBestCost(v)
		return nil
	case targettaskmetrics.FieldBestTimeMs:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBestTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown TargetTaskMetrics numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TargetTaskMetricsMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(targettaskmetrics.FieldBestCost) {
		fields = append(fields, targettaskmetrics.FieldBestCost)
	}
	if m.FieldCleared(targettaskmetrics.FieldBestTimeMs) {
		fields = append(fields, targettaskmetrics.FieldBestTimeMs)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TargetTaskMetricsMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TargetTaskMetricsMutation) ClearField(name string) error {
	switch name {
	case targettaskmetrics.FieldBestCost:
		m.ClearBestCost()
		return nil
	case targettaskmetrics.FieldBestTimeMs:
		m.ClearBestTimeMs()
		return nil
	}
	return fmt.Errorf("unknown TargetTaskMetrics nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TargetTaskMetricsMutation) ResetField(name string) error {
	switch name {
	case targettaskmetrics.FieldTaskID:
		m.ResetTaskID()
		return nil
	case targettaskmetrics.FieldBestCost:
		m.ResetBestCost()
		return nil
	case targettaskmetrics.FieldBestTimeMs:
		m.ResetBestTimeMs()
		return nil
	case targettaskmetrics.FieldLastUpdatedAt:
		m.ResetLastUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TargetTaskMetrics field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TargetTaskMetricsMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, targettaskmetrics.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TargetTaskMetricsMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case targettaskmetrics.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TargetTaskMetricsMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TargetTaskMetricsMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TargetTaskMetricsMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, targettaskmetrics.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TargetTaskMetricsMutation) EdgeCleared(name string) bool {
	switch name {
	case targettaskmetrics.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TargetTaskMetricsMutation) ClearEdge(name string) error {
	switch name {
	case targettaskmetrics.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown TargetTaskMetrics unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TargetTaskMetricsMutation) ResetEdge(name string) error {
	switch name {
	case targettaskmetrics.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown TargetTaskMetrics edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	name                      *string
	description               *string
	_path                     *string
	response_schema           *map[string]interface{}
	created_at                *time.Time
	clearedFields             map[string]struct{}
	project                   *string
	clearedproject            bool
	implementations           map[string]struct{}
	removedimplementations    map[string]struct{}
	clearedimplementations    bool
	test_cases                map[string]struct{}
	removedtest_cases         map[string]struct{}
	clearedtest_cases         bool
	evaluations               map[string]struct{}
	removedevaluations        map[string]struct{}
	clearedevaluations        bool
	evaluation_config         *string
	clearedevaluation_config  bool
	target_metrics            *string
	clearedtarget_metrics     bool
	execution_results         map[string]struct{}
	removedexecution_results  map[string]struct{}
	clearedexecution_results  bool
	production_version        *string
	clearedproduction_version bool
	done                      bool
	oldValue                  func(context.Context) (*Task, error)
	predicates                []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *TaskMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *TaskMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *TaskMutation) ResetProjectID() {
	m.project = nil
}

// SetName sets the "name" field.
func (m *TaskMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *TaskMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *TaskMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *TaskMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TaskMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *TaskMutation) ResetDescription() {
	m.description = nil
}

// SetPath sets the "path" field.
func (m *TaskMutation) SetPath(s string) {
	m._path = &s
}

// Path returns the value of the "path" field in the mutation.
func (m *TaskMutation) Path() (r string, exists bool) {
	v := m._path
	if v == nil {
		return
	}
	return *v, true
}

// OldPath returns the old "path" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPath: %w", err)
	}
	return oldValue.Path, nil
}

// ClearPath clears the value of the "path" field.
func (m *TaskMutation) ClearPath() {
	m._path = nil
	m.clearedFields[task.FieldPath] = struct{}{}
}

// PathCleared returns if the "path" field was cleared in this mutation.
func (m *TaskMutation) PathCleared() bool {
	_, ok := m.clearedFields[task.FieldPath]
	return ok
}

// ResetPath resets all changes to the "path" field.
func (m *TaskMutation) ResetPath() {
	m._path = nil
	delete(m.clearedFields, task.FieldPath)
}

// SetProductionVersionID sets the "production_version_id" field.
func (m *TaskMutation) SetProductionVersionID(s string) {
	m.production_version = &s
}

// ProductionVersionID returns the value of the "production_version_id" field in the mutation.
func (m *TaskMutation) ProductionVersionID() (r string, exists bool) {
	v := m.production_version
	if v == nil {
		return
	}
	return *v, true
}

// OldProductionVersionID returns the old "production_version_id" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldProductionVersionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProductionVersionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProductionVersionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProductionVersionID: %w", err)
	}
	return oldValue.ProductionVersionID, nil
}

// ClearProductionVersionID clears the value of the "production_version_id" field.
func (m *TaskMutation) ClearProductionVersionID() {
	m.production_version = nil
	m.clearedFields[task.FieldProductionVersionID] = struct{}{}
}

// ProductionVersionIDCleared returns if the "production_version_id" field was cleared in this mutation.
func (m *TaskMutation) ProductionVersionIDCleared() bool {
	_, ok := m.clearedFields[task.FieldProductionVersionID]
	return ok
}

// ResetProductionVersionID resets all changes to the "production_version_id" field.
func (m *TaskMutation) ResetProductionVersionID() {
	m.production_version = nil
	delete(m.clearedFields, task.FieldProductionVersionID)
}

// SetResponseSchema sets the "response_schema" field.
func (m *TaskMutation) SetResponseSchema(value map[string]interface{}) {
	m.response_schema = &value
}

// ResponseSchema returns the value of the "response_schema" field in the mutation.
func (m *TaskMutation) ResponseSchema() (r map[string]interface{}, exists bool) {
	v := m.response_schema
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseSchema returns the old "response_schema" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldResponseSchema(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseSchema is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseSchema requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseSchema: %w", err)
	}
	return oldValue.ResponseSchema, nil
}

// ClearResponseSchema clears the value of the "response_schema" field.
func (m *TaskMutation) ClearResponseSchema() {
	m.response_schema = nil
	m.clearedFields[task.FieldResponseSchema] = struct{}{}
}

// ResponseSchemaCleared returns if the "response_schema" field was cleared in this mutation.
func (m *TaskMutation) ResponseSchemaCleared() bool {
	_, ok := m.clearedFields[task.FieldResponseSchema]
	return ok
}

// ResetResponseSchema resets all changes to the "response_schema" field.
func (m *TaskMutation) ResetResponseSchema() {
	m.response_schema = nil
	delete(m.clearedFields, task.FieldResponseSchema)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *TaskMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[task.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *TaskMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *TaskMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// AddImplementationIDs adds the "implementations" edge to the Implementation entity by ids.
func (m *TaskMutation) AddImplementationIDs(ids ...string) {
	if m.implementations == nil {
		m.implementations = make(map[string]struct{})
	}
	for i := range ids {
		m.implementations[ids[i]] = struct{}{}
	}
}

// ClearImplementations clears the "implementations" edge to the Implementation entity.
func (m *TaskMutation) ClearImplementations() {
	m.clearedimplementations = true
}

// ImplementationsCleared reports if the "implementations" edge to the Implementation entity was cleared.
func (m *TaskMutation) ImplementationsCleared() bool {
	return m.clearedimplementations
}

// RemoveImplementationIDs removes the "implementations" edge to the Implementation entity by IDs.
func (m *TaskMutation) RemoveImplementationIDs(ids ...string) {
	if m.removedimplementations == nil {
		m.removedimplementations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.implementations, ids[i])
		m.removedimplementations[ids[i]] = struct{}{}
	}
}

// RemovedImplementations returns the removed IDs of the "implementations" edge to the Implementation entity.
func (m *TaskMutation) RemovedImplementationsIDs() (ids []string) {
	for id := range m.removedimplementations {
		ids = append(ids, id)
	}
	return
}

// ImplementationsIDs returns the "implementations" edge IDs in the mutation.
func (m *TaskMutation) ImplementationsIDs() (ids []string) {
	for id := range m.implementations {
		ids = append(ids, id)
	}
	return
}

// ResetImplementations resets all changes to the "implementations" edge.
func (m *TaskMutation) ResetImplementations() {
	m.implementations = nil
	m.clearedimplementations = false
	m.removedimplementations = nil
}

// AddTestCaseIDs adds the "test_cases" edge to the TestCase entity by ids.
func (m *TaskMutation) AddTestCaseIDs(ids ...string) {
	if m.test_cases == nil {
		m.test_cases = make(map[string]struct{})
	}
	for i := range ids {
		m.test_cases[ids[i]] = struct{}{}
	}
}

// ClearTestCases clears the "test_cases" edge to the TestCase entity.
func (m *TaskMutation) ClearTestCases() {
	m.clearedtest_cases = true
}

// TestCasesCleared reports if the "test_cases" edge to the TestCase entity was cleared.
func (m *TaskMutation) TestCasesCleared() bool {
	return m.clearedtest_cases
}

// RemoveTestCaseIDs removes the "test_cases" edge to the TestCase entity by IDs.
func (m *TaskMutation) RemoveTestCaseIDs(ids ...string) {
	if m.removedtest_cases == nil {
		m.removedtest_cases = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.test_cases, ids[i])
		m.removedtest_cases[ids[i]] = struct{}{}
	}
}

// RemovedTestCases returns the removed IDs of the "test_cases" edge to the TestCase entity.
func (m *TaskMutation) RemovedTestCasesIDs() (ids []string) {
	for id := range m.removedtest_cases {
		ids = append(ids, id)
	}
	return
}

// TestCasesIDs returns the "test_cases" edge IDs in the mutation.
func (m *TaskMutation) TestCasesIDs() (ids []string) {
	for id := range m.test_cases {
		ids = append(ids, id)
	}
	return
}

// ResetTestCases resets all changes to the "test_cases" edge.
func (m *TaskMutation) ResetTestCases() {
	m.test_cases = nil
	m.clearedtest_cases = false
	m.removedtest_cases = nil
}

// AddEvaluationIDs adds the "evaluations" edge to the Evaluation entity by ids.
func (m *TaskMutation) AddEvaluationIDs(ids ...string) {
	if m.evaluations == nil {
		m.evaluations = make(map[string]struct{})
	}
	for i := range ids {
		m.evaluations[ids[i]] = struct{}{}
	}
}

// ClearEvaluations clears the "evaluations" edge to the Evaluation entity.
func (m *TaskMutation) ClearEvaluations() {
	m.clearedevaluations = true
}

// EvaluationsCleared reports if the "evaluations" edge to the Evaluation entity was cleared.
func (m *TaskMutation) EvaluationsCleared() bool {
	return m.clearedevaluations
}

// RemoveEvaluationIDs removes the "evaluations" edge to the Evaluation entity by IDs.
func (m *TaskMutation) RemoveEvaluationIDs(ids ...string) {
	if m.removedevaluations == nil {
		m.removedevaluations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.evaluations, ids[i])
		m.removedevaluations[ids[i]] = struct{}{}
	}
}

// RemovedEvaluations returns the removed IDs of the "evaluations" edge to the Evaluation entity.
func (m *TaskMutation) RemovedEvaluationsIDs() (ids []string) {
	for id := range m.removedevaluations {
		ids = append(ids, id)
	}
	return
}

// EvaluationsIDs returns the "evaluations" edge IDs in the mutation.
func (m *TaskMutation) EvaluationsIDs() (ids []string) {
	for id := range m.evaluations {
		ids = append(ids, id)
	}
	return
}

// ResetEvaluations resets all changes to the "evaluations" edge.
func (m *TaskMutation) ResetEvaluations() {
	m.evaluations = nil
	m.clearedevaluations = false
	m.removedevaluations = nil
}

// SetEvaluationConfigID sets the "evaluation_config" edge to the EvaluationConfig entity by id.
func (m *TaskMutation) SetEvaluationConfigID(id string) {
	m.evaluation_config = &id
}

// ClearEvaluationConfig clears the "evaluation_config" edge to the EvaluationConfig entity.
func (m *TaskMutation) ClearEvaluationConfig() {
	m.clearedevaluation_config = true
}

// EvaluationConfigCleared reports if the "evaluation_config" edge to the EvaluationConfig entity was cleared.
func (m *TaskMutation) EvaluationConfigCleared() bool {
	return m.clearedevaluation_config
}

// EvaluationConfigID returns the "evaluation_config" edge ID in the mutation.
func (m *TaskMutation) EvaluationConfigID() (id string, exists bool) {
	if m.evaluation_config != nil {
		return *m.evaluation_config, true
	}
	return
}

// EvaluationConfigIDs returns the "evaluation_config" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EvaluationConfigID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) EvaluationConfigIDs() (ids []string) {
	if id := m.evaluation_config; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEvaluationConfig resets all changes to the "evaluation_config" edge.
func (m *TaskMutation) ResetEvaluationConfig() {
	m.evaluation_config = nil
	m.clearedevaluation_config = false
}

// SetTargetMetricsID sets the "target_metrics" edge to the TargetTaskMetrics entity by id.
func (m *TaskMutation) SetTargetMetricsID(id string) {
	m.target_metrics = &id
}

// ClearTargetMetrics clears the "target_metrics" edge to the TargetTaskMetrics entity.
func (m *TaskMutation) ClearTargetMetrics() {
	m.clearedtarget_metrics = true
}

// TargetMetricsCleared reports if the "target_metrics" edge to the TargetTaskMetrics entity was cleared.
func (m *TaskMutation) TargetMetricsCleared() bool {
	return m.clearedtarget_metrics
}

// TargetMetricsID returns the "target_metrics" edge ID in the mutation.
func (m *TaskMutation) TargetMetricsID() (id string, exists bool) {
	if m.target_metrics != nil {
		return *m.target_metrics, true
	}
	return
}

// TargetMetricsIDs returns the "target_metrics" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TargetMetricsID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) TargetMetricsIDs() (ids []string) {
	if id := m.target_metrics; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTargetMetrics resets all changes to the "target_metrics" edge.
func (m *TaskMutation) ResetTargetMetrics() {
	m.target_metrics = nil
	m.clearedtarget_metrics = false
}

// AddExecutionResultIDs adds the "execution_results" edge to the ExecutionResult entity by ids.
func (m *TaskMutation) AddExecutionResultIDs(ids ...string) {
	if m.execution_results == nil {
		m.execution_results = make(map[string]struct{})
	}
	for i := range ids {
		m.execution_results[ids[i]] = struct{}{}
	}
}

// ClearExecutionResults clears the "execution_results" edge to the ExecutionResult entity.
func (m *TaskMutation) ClearExecutionResults() {
	m.clearedexecution_results = true
}

// ExecutionResultsCleared reports if the "execution_results" edge to the ExecutionResult entity was cleared.
func (m *TaskMutation) ExecutionResultsCleared() bool {
	return m.clearedexecution_results
}

// RemoveExecutionResultIDs removes the "execution_results" edge to the ExecutionResult entity by IDs.
func (m *TaskMutation) RemoveExecutionResultIDs(ids ...string) {
	if m.removedexecution_results == nil {
		m.removedexecution_results = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.execution_results, ids[i])
		m.removedexecution_results[ids[i]] = struct{}{}
	}
}

// RemovedExecutionResults returns the removed IDs of the "execution_results" edge to the ExecutionResult entity.
func (m *TaskMutation) RemovedExecutionResultsIDs() (ids []string) {
	for id := range m.removedexecution_results {
		ids = append(ids, id)
	}
	return
}

// ExecutionResultsIDs returns the "execution_results" edge IDs in the mutation.
func (m *TaskMutation) ExecutionResultsIDs() (ids []string) {
	for id := range m.execution_results {
		ids = append(ids, id)
	}
	return
}

// ResetExecutionResults resets all changes to the "execution_results" edge.
func (m *TaskMutation) ResetExecutionResults() {
	m.execution_results = nil
	m.clearedexecution_results = false
	m.removedexecution_results = nil
}

// ClearProductionVersion clears the "production_version" edge to the Implementation entity.
func (m *TaskMutation) ClearProductionVersion() {
	m.clearedproduction_version = true
	m.clearedFields[task.FieldProductionVersionID] = struct{}{}
}

// ProductionVersionCleared reports if the "production_version" edge to the Implementation entity was cleared.
func (m *TaskMutation) ProductionVersionCleared() bool {
	return m.ProductionVersionIDCleared() || m.clearedproduction_version
}

// ProductionVersionIDs returns the "production_version" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProductionVersionID instead. It exists only for internal usage by the builders.
func (m *TaskMutation) ProductionVersionIDs() (ids []string) {
	if id := m.production_version; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProductionVersion resets all changes to the "production_version" edge.
func (m *TaskMutation) ResetProductionVersion() {
	m.production_version = nil
	m.clearedproduction_version = false
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.project != nil {
		fields = append(fields, task.FieldProjectID)
	}
	if m.name != nil {
		fields = append(fields, task.FieldName)
	}
	if m.description != nil {
		fields = append(fields, task.FieldDescription)
	}
	if m._path != nil {
		fields = append(fields, task.FieldPath)
	}
	if m.production_version != nil {
		fields = append(fields, task.FieldProductionVersionID)
	}
	if m.response_schema != nil {
		fields = append(fields, task.FieldResponseSchema)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldProjectID:
		return m.ProjectID()
	case task.FieldName:
		return m.Name()
	case task.FieldDescription:
		return m.Description()
	case task.FieldPath:
		return m.Path()
	case task.FieldProductionVersionID:
		return m.ProductionVersionID()
	case task.FieldResponseSchema:
		return m.ResponseSchema()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldProjectID:
		return m.OldProjectID(ctx)
	case task.FieldName:
		return m.OldName(ctx)
	case task.FieldDescription:
		return m.OldDescription(ctx)
	case task.FieldPath:
		return m.OldPath(ctx)
	case task.FieldProductionVersionID:
		return m.OldProductionVersionID(ctx)
	case task.FieldResponseSchema:
		return m.OldResponseSchema(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case task.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case task.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case task.FieldPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPath(v)
		return nil
	case task.FieldProductionVersionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProductionVersionID(v)
		return nil
	case task.FieldResponseSchema:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseSchema(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldPath) {
		fields = append(fields, task.FieldPath)
	}
	if m.FieldCleared(task.FieldProductionVersionID) {
		fields = append(fields, task.FieldProductionVersionID)
	}
	if m.FieldCleared(task.FieldResponseSchema) {
		fields = append(fields, task.FieldResponseSchema)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldPath:
		m.ClearPath()
		return nil
	case task.FieldProductionVersionID:
		m.ClearProductionVersionID()
		return nil
	case task.FieldResponseSchema:
		m.ClearResponseSchema()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldProjectID:
		m.ResetProjectID()
		return nil
	case task.FieldName:
		m.ResetName()
		return nil
	case task.FieldDescription:
		m.ResetDescription()
		return nil
	case task.FieldPath:
		m.ResetPath()
		return nil
	case task.FieldProductionVersionID:
		m.ResetProductionVersionID()
		return nil
	case task.FieldResponseSchema:
		m.ResetResponseSchema()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 8)
	if m.project != nil {
		edges = append(edges, task.EdgeProject)
	}
	if m.implementations != nil {
		edges = append(edges, task.EdgeImplementations)
	}
	if m.test_cases != nil {
		edges = append(edges, task.EdgeTestCases)
	}
	if m.evaluations != nil {
		edges = append(edges, task.EdgeEvaluations)
	}
	if m.evaluation_config != nil {
		edges = append(edges, task.EdgeEvaluationConfig)
	}
	if m.target_metrics != nil {
		edges = append(edges, task.EdgeTargetMetrics)
	}
	if m.execution_results != nil {
		edges = append(edges, task.EdgeExecutionResults)
	}
	if m.production_version != nil {
		edges = append(edges, task.EdgeProductionVersion)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case task.EdgeImplementations:
		ids := make([]ent.Value, 0, len(m.implementations))
		for id := range m.implementations {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeTestCases:
		ids := make([]ent.Value, 0, len(m.test_cases))
		for id := range m.test_cases {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeEvaluations:
		ids := make([]ent.Value, 0, len(m.evaluations))
		for id := range m.evaluations {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeEvaluationConfig:
		if id := m.evaluation_config; id != nil {
			return []ent.Value{*id}
		}
	case task.EdgeTargetMetrics:
		if id := m.target_metrics; id != nil {
			return []ent.Value{*id}
		}
	case task.EdgeExecutionResults:
		ids := make([]ent.Value, 0, len(m.execution_results))
		for id := range m.execution_results {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeProductionVersion:
		if id := m.production_version; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 8)
	if m.removedimplementations != nil {
		edges = append(edges, task.EdgeImplementations)
	}
	if m.removedtest_cases != nil {
		edges = append(edges, task.EdgeTestCases)
	}
	if m.removedevaluations != nil {
		edges = append(edges, task.EdgeEvaluations)
	}
	if m.removedexecution_results != nil {
		edges = append(edges, task.EdgeExecutionResults)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeImplementations:
		ids := make([]ent.Value, 0, len(m.removedimplementations))
		for id := range m.removedimplementations {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeTestCases:
		ids := make([]ent.Value, 0, len(m.removedtest_cases))
		for id := range m.removedtest_cases {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeEvaluations:
		ids := make([]ent.Value, 0, len(m.removedevaluations))
		for id := range m.removedevaluations {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeExecutionResults:
		ids := make([]ent.Value, 0, len(m.removedexecution_results))
		for id := range m.removedexecution_results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 8)
	if m.clearedproject {
		edges = append(edges, task.EdgeProject)
	}
	if m.clearedimplementations {
		edges = append(edges, task.EdgeImplementations)
	}
	if m.clearedtest_cases {
		edges = append(edges, task.EdgeTestCases)
	}
	if m.clearedevaluations {
		edges = append(edges, task.EdgeEvaluations)
	}
	if m.clearedevaluation_config {
		edges = append(edges, task.EdgeEvaluationConfig)
	}
	if m.clearedtarget_metrics {
		edges = append(edges, task.EdgeTargetMetrics)
	}
	if m.clearedexecution_results {
		edges = append(edges, task.EdgeExecutionResults)
	}
	if m.clearedproduction_version {
		edges = append(edges, task.EdgeProductionVersion)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeProject:
		return m.clearedproject
	case task.EdgeImplementations:
		return m.clearedimplementations
	case task.EdgeTestCases:
		return m.clearedtest_cases
	case task.EdgeEvaluations:
		return m.clearedevaluations
	case task.EdgeEvaluationConfig:
		return m.clearedevaluation_config
	case task.EdgeTargetMetrics:
		return m.clearedtarget_metrics
	case task.EdgeExecutionResults:
		return m.clearedexecution_results
	case task.EdgeProductionVersion:
		return m.clearedproduction_version
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	case task.EdgeProject:
		m.ClearProject()
		return nil
	case task.EdgeEvaluationConfig:
		m.ClearEvaluationConfig()
		return nil
	case task.EdgeTargetMetrics:
		m.ClearTargetMetrics()
		return nil
	case task.EdgeProductionVersion:
		m.ClearProductionVersion()
		return nil
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeProject:
		m.ResetProject()
		return nil
	case task.EdgeImplementations:
		m.ResetImplementations()
		return nil
	case task.EdgeTestCases:
		m.ResetTestCases()
		return nil
	case task.EdgeEvaluations:
		m.ResetEvaluations()
		return nil
	case task.EdgeEvaluationConfig:
		m.ResetEvaluationConfig()
		return nil
	case task.EdgeTargetMetrics:
		m.ResetTargetMetrics()
		return nil
	case task.EdgeExecutionResults:
		m.ResetExecutionResults()
		return nil
	case task.EdgeProductionVersion:
		m.ResetProductionVersion()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}

// TestCaseMutation represents an operation that mutates the TestCase nodes in the graph.
type TestCaseMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	description              *string
	arguments                *map[string]string
	expected_output          *map[string]interface{}
	created_at               *time.Time
	clearedFields            map[string]struct{}
	task                     *string
	clearedtask              bool
	execution_results        map[string]struct{}
	removedexecution_results map[string]struct{}
	clearedexecution_results bool
	done                     bool
	oldValue                 func(context.Context) (*TestCase, error)
	predicates               []predicate.TestCase
}

var _ ent.Mutation = (*TestCaseMutation)(nil)

// testcaseOption allows management of the mutation configuration using functional options.
type testcaseOption func(*TestCaseMutation)

// newTestCaseMutation creates new mutation for the TestCase entity.
func newTestCaseMutation(c config, op Op, opts ...testcaseOption) *TestCaseMutation {
	m := &TestCaseMutation{
		config:        c,
		op:            op,
		typ:           TypeTestCase,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTestCaseID sets the ID field of the mutation.
func withTestCaseID(id string) testcaseOption {
	return func(m *TestCaseMutation) {
		var (
			err   error
			once  sync.Once
			value *TestCase
		)
		m.oldValue = func(ctx context.Context) (*TestCase, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TestCase.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTestCase sets the old TestCase of the mutation.
func withTestCase(node *TestCase) testcaseOption {
	return func(m *TestCaseMutation) {
		m.oldValue = func(context.Context) (*TestCase, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TestCaseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TestCaseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TestCase entities.
func (m *TestCaseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TestCaseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TestCaseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TestCase.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *TestCaseMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *TestCaseMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *TestCaseMutation) ResetTaskID() {
	m.task = nil
}

// SetDescription sets the "description" field.
func (m *TestCaseMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *TestCaseMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *TestCaseMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[testcase.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *TestCaseMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[testcase.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *TestCaseMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, testcase.FieldDescription)
}

// SetArguments sets the "arguments" field.
func (m *TestCaseMutation) SetArguments(value map[string]string) {
	m.arguments = &value
}

// Arguments returns the value of the "arguments" field in the mutation.
func (m *TestCaseMutation) Arguments() (r map[string]string, exists bool) {
	v := m.arguments
	if v == nil {
		return
	}
	return *v, true
}

// OldArguments returns the old "arguments" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldArguments(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArguments is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArguments requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArguments: %w", err)
	}
	return oldValue.Arguments, nil
}

// ResetArguments resets all changes to the "arguments" field.
func (m *TestCaseMutation) ResetArguments() {
	m.arguments = nil
}

// SetExpectedOutput sets the "expected_output" field.
func (m *TestCaseMutation) SetExpectedOutput(value map[string]interface{}) {
	m.expected_output = &value
}

// ExpectedOutput returns the value of the "expected_output" field in the mutation.
func (m *TestCaseMutation) ExpectedOutput() (r map[string]interface{}, exists bool) {
	v := m.expected_output
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedOutput returns the old "expected_output" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldExpectedOutput(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedOutput: %w", err)
	}
	return oldValue.ExpectedOutput, nil
}

// ClearExpectedOutput clears the value of the "expected_output" field.
func (m *TestCaseMutation) ClearExpectedOutput() {
	m.expected_output = nil
	m.clearedFields[testcase.FieldExpectedOutput] = struct{}{}
}

// ExpectedOutputCleared returns if the "expected_output" field was cleared in this mutation.
func (m *TestCaseMutation) ExpectedOutputCleared() bool {
	_, ok := m.clearedFields[testcase.FieldExpectedOutput]
	return ok
}

// ResetExpectedOutput resets all changes to the "expected_output" field.
func (m *TestCaseMutation) ResetExpectedOutput() {
	m.expected_output = nil
	delete(m.clearedFields, testcase.FieldExpectedOutput)
}

// SetCreatedAt sets the "created_at" field.
func (m *TestCaseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TestCaseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TestCase entity.
// If the TestCase object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestCaseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TestCaseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *TestCaseMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[testcase.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *TestCaseMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *TestCaseMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *TestCaseMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// AddExecutionResultIDs adds the "execution_results" edge to the ExecutionResult entity by ids.
func (m *TestCaseMutation) AddExecutionResultIDs(ids ...string) {
	if m.execution_results == nil {
		m.execution_results = make(map[string]struct{})
	}
	for i := range ids {
		m.execution_results[ids[i]] = struct{}{}
	}
}

// ClearExecutionResults clears the "execution_results" edge to the ExecutionResult entity.
func (m *TestCaseMutation) ClearExecutionResults() {
	m.clearedexecution_results = true
}

// ExecutionResultsCleared reports if the "execution_results" edge to the ExecutionResult entity was cleared.
func (m *TestCaseMutation) ExecutionResultsCleared() bool {
	return m.clearedexecution_results
}

// RemoveExecutionResultIDs removes the "execution_results" edge to the ExecutionResult entity by IDs.
func (m *TestCaseMutation) RemoveExecutionResultIDs(ids ...string) {
	if m.removedexecution_results == nil {
		m.removedexecution_results = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.execution_results, ids[i])
		m.removedexecution_results[ids[i]] = struct{}{}
	}
}

// RemovedExecutionResults returns the removed IDs of the "execution_results" edge to the ExecutionResult entity.
func (m *TestCaseMutation) RemovedExecutionResultsIDs() (ids []string) {
	for id := range m.removedexecution_results {
		ids = append(ids, id)
	}
	return
}

// ExecutionResultsIDs returns the "execution_results" edge IDs in the mutation.
func (m *TestCaseMutation) ExecutionResultsIDs() (ids []string) {
	for id := range m.execution_results {
		ids = append(ids, id)
	}
	return
}

// ResetExecutionResults resets all changes to the "execution_results" edge.
func (m *TestCaseMutation) ResetExecutionResults() {
	m.execution_results = nil
	m.clearedexecution_results = false
	m.removedexecution_results = nil
}

// Where appends a list predicates to the TestCaseMutation builder.
func (m *TestCaseMutation) Where(ps ...predicate.TestCase) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TestCaseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TestCaseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TestCase, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TestCaseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TestCaseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TestCase).
func (m *TestCaseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TestCaseMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.task != nil {
		fields = append(fields, testcase.FieldTaskID)
	}
	if m.description != nil {
		fields = append(fields, testcase.FieldDescription)
	}
	if m.arguments != nil {
		fields = append(fields, testcase.FieldArguments)
	}
	if m.expected_output != nil {
		fields = append(fields, testcase.FieldExpectedOutput)
	}
	if m.created_at != nil {
		fields = append(fields, testcase.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TestCaseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case testcase.FieldTaskID:
		return m.TaskID()
	case testcase.FieldDescription:
		return m.Description()
	case testcase.FieldArguments:
		return m.Arguments()
	case testcase.FieldExpectedOutput:
		return m.ExpectedOutput()
	case testcase.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TestCaseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case testcase.FieldTaskID:
		return m.OldTaskID(ctx)
	case testcase.FieldDescription:
		return m.OldDescription(ctx)
	case testcase.FieldArguments:
		return m.OldArguments(ctx)
	case testcase.FieldExpectedOutput:
		return m.OldExpectedOutput(ctx)
	case testcase.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TestCase field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestCaseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case testcase.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case testcase.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case testcase.FieldArguments:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArguments(v)
		return nil
	case testcase.FieldExpectedOutput:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedOutput(v)
		return nil
	case testcase.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TestCase field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TestCaseMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TestCaseMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestCaseMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TestCase numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TestCaseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(testcase.FieldDescription) {
		fields = append(fields, testcase.FieldDescription)
	}
	if m.FieldCleared(testcase.FieldExpectedOutput) {
		fields = append(fields, testcase.FieldExpectedOutput)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TestCaseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TestCaseMutation) ClearField(name string) error {
	switch name {
	case testcase.FieldDescription:
		m.ClearDescription()
		return nil
	case testcase.FieldExpectedOutput:
		m.ClearExpectedOutput()
		return nil
	}
	return fmt.Errorf("unknown TestCase nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TestCaseMutation) ResetField(name string) error {
	switch name {
	case testcase.FieldTaskID:
		m.ResetTaskID()
		return nil
	case testcase.FieldDescription:
		m.ResetDescription()
		return nil
	case testcase.FieldArguments:
		m.ResetArguments()
		return nil
	case testcase.FieldExpectedOutput:
		m.ResetExpectedOutput()
		return nil
	case testcase.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TestCase field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TestCaseMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.task != nil {
		edges = append(edges, testcase.EdgeTask)
	}
	if m.execution_results != nil {
		edges = append(edges, testcase.EdgeExecutionResults)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TestCaseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case testcase.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	case testcase.EdgeExecutionResults:
		ids := make([]ent.Value, 0, len(m.execution_results))
		for id := range m.execution_results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TestCaseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedexecution_results != nil {
		edges = append(edges, testcase.EdgeExecutionResults)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TestCaseMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case testcase.EdgeExecutionResults:
		ids := make([]ent.Value, 0, len(m.removedexecution_results))
		for id := range m.removedexecution_results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TestCaseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedtask {
		edges = append(edges, testcase.EdgeTask)
	}
	if m.clearedexecution_results {
		edges = append(edges, testcase.EdgeExecutionResults)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TestCaseMutation) EdgeCleared(name string) bool {
	switch name {
	case testcase.EdgeTask:
		return m.clearedtask
	case testcase.EdgeExecutionResults:
		return m.clearedexecution_results
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TestCaseMutation) ClearEdge(name string) error {
	switch name {
	case testcase.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown TestCase unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TestCaseMutation) ResetEdge(name string) error {
	switch name {
	case testcase.EdgeTask:
		m.ResetTask()
		return nil
	case testcase.EdgeExecutionResults:
		m.ResetExecutionResults()
		return nil
	}
	return fmt.Errorf("unknown TestCase edge %s", name)
}

// TraceMutation represents an operation that mutates the Trace nodes in the graph.
type TraceMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	model                 *string
	_path                 *string
	input_items           *[]models.TraceItem
	appendinput_items     []models.TraceItem
	output_items          *[]models.TraceItem
	appendoutput_items    []models.TraceItem
	tools                 *[]models.ToolDefinition
	appendtools           []models.ToolDefinition
	response_schema       *map[string]interface{}
	temperature           *float64
	addtemperature        *float64
	max_tokens            *int
	addmax_tokens         *int
	finish_reason         *string
	prompt_tokens         *int
	addprompt_tokens      *int
	completion_tokens     *int
	addcompletion_tokens  *int
	cached_tokens         *int
	addcached_tokens      *int
	reasoning_tokens      *int
	addreasoning_tokens   *int
	total_tokens          *int
	addtotal_tokens       *int
	system_fingerprint    *string
	started_at            *time.Time
	completed_at          *time.Time
	error                 *string
	prompt_variables      *map[string]string
	created_at            *time.Time
	clearedFields         map[string]struct{}
	project               *string
	clearedproject        bool
	http_trace            *string
	clearedhttp_trace     bool
	implementation        *string
	clearedimplementation bool
	grades                map[string]struct{}
	removedgrades         map[string]struct{}
	clearedgrades         bool
	done                  bool
	oldValue              func(context.Context) (*Trace, error)
	predicates            []predicate.Trace
}

var _ ent.Mutation = (*TraceMutation)(nil)

// traceOption allows management of the mutation configuration using functional options.
type traceOption func(*TraceMutation)

// newTraceMutation creates new mutation for the Trace entity.
func newTraceMutation(c config, op Op, opts ...traceOption) *TraceMutation {
	m := &TraceMutation{
		config:        c,
		op:            op,
		typ:           TypeTrace,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTraceID sets the ID field of the mutation.
func withTraceID(id string) traceOption {
	return func(m *TraceMutation) {
		var (
			err   error
			once  sync.Once
			value *Trace
		)
		m.oldValue = func(ctx context.Context) (*Trace, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Trace.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTrace sets the old Trace of the mutation.
func withTrace(node *Trace) traceOption {
	return func(m *TraceMutation) {
		m.oldValue = func(context.Context) (*Trace, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TraceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TraceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Trace entities.
func (m *TraceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TraceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TraceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Trace.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProjectID sets the "project_id" field.
func (m *TraceMutation) SetProjectID(s string) {
	m.project = &s
}

// ProjectID returns the value of the "project_id" field in the mutation.
func (m *TraceMutation) ProjectID() (r string, exists bool) {
	v := m.project
	if v == nil {
		return
	}
	return *v, true
}

// OldProjectID returns the old "project_id" field's value of the Trace entity.
// If the Trace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceMutation) OldProjectID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProjectID: %w", err)
	}
	return oldValue.ProjectID, nil
}

// ResetProjectID resets all changes to the "project_id" field.
func (m *TraceMutation) ResetProjectID() {
	m.project = nil
}

// SetHTTPTraceID sets the "http_trace_id" field.
func (m *TraceMutation) SetHTTPTraceID(s string) {
	m.http_trace = &s
}

// HTTPTraceID returns the value of the "http_trace_id" field in the mutation.
func (m *TraceMutation) HTTPTraceID() (r string, exists bool) {
	v := m.http_trace
	if v == nil {
		return
	}
	return *v, true
}

// OldHTTPTraceID returns the old "http_trace_id" field's value of the Trace entity.
// If the Trace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceMutation) OldHTTPTraceID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHTTPTraceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHTTPTraceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHTTPTraceID: %w", err)
	}
	return oldValue.HTTPTraceID, nil
}

// ClearHTTPTraceID clears the value of the "http_trace_id" field.
func (m *TraceMutation) ClearHTTPTraceID() {
	m.http_trace = nil
	m.clearedFields[trace.FieldHTTPTraceID] = struct{}{}
}

// HTTPTraceIDCleared returns if the "http_trace_id" field was cleared in this mutation.
func (m *TraceMutation) HTTPTraceIDCleared() bool {
	_, ok := m.clearedFields[trace.FieldHTTPTraceID]
	return ok
}

// ResetHTTPTraceID resets all changes to the "http_trace_id" field.
func (m *TraceMutation) ResetHTTPTraceID() {
	m.http_trace = nil
	delete(m.clearedFields, trace.FieldHTTPTraceID)
}

// SetModel sets the "model" field.
func (m *TraceMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *TraceMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Trace entity.
// If the Trace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *TraceMutation) ResetModel() {
	m.model = nil
}

// SetPath sets the "path" field.
func (m *TraceMutation) SetPath(s string) {
	m._path = &s
}

// Path returns the value of the "path" field in the mutation.
func (m *TraceMutation) Path() (r string, exists bool) {
	v := m._path
	if v == nil {
		return
	}
	return *v, true
}

// OldPath returns the old "path" field's value of the Trace entity.
// If the Trace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceMutation) OldPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPath: %w", err)
	}
	return oldValue.Path, nil
}

// ClearPath clears the value of the "path" field.
func (m *TraceMutation) ClearPath() {
	m._path = nil
	m.clearedFields[trace.FieldPath] = struct{}{}
}

// PathCleared returns if the "path" field was cleared in this mutation.
func (m *TraceMutation) PathCleared() bool {
	_, ok := m.clearedFields[trace.FieldPath]
	return ok
}

// ResetPath resets all changes to the "path" field.
func (m *TraceMutation) ResetPath() {
	m._path = nil
	delete(m.clearedFields, trace.FieldPath)
}

// SetInputItems sets the "input_items" field.
func (m *TraceMutation) SetInputItems(mi []models.TraceItem) {
	m.input_items = &mi
	m.appendinput_items = nil
}

// InputItems returns the value of the "input_items" field in the mutation.
func (m *TraceMutation) InputItems() (r []models.TraceItem, exists bool) {
	v := m.input_items
	if v == nil {
		return
	}
	return *v, true
}

// OldInputItems returns the old "input_items" field's value of the Trace entity.
// If the Trace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceMutation) OldInputItems(ctx context.Context) (v []models.TraceItem, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputItems: %w", err)
	}
	return oldValue.InputItems, nil
}

// AppendInputItems adds mi to the "input_items" field.
func (m *TraceMutation) AppendInputItems(mi []models.TraceItem) {
	m.appendinput_items = append(m.appendinput_items, mi...)
}

// AppendedInputItems returns the list of values that were appended to the "input_items" field in this mutation.
func (m *TraceMutation) AppendedInputItems() ([]models.TraceItem, bool) {
	if len(m.appendinput_items) == 0 {
		return nil, false
	}
	return m.appendinput_items, true
}

// ResetInputItems resets all changes to the "input_items" field.
func (m *TraceMutation) ResetInputItems() {
	m.input_items = nil
	m.appendinput_items = nil
}

// SetOutputItems sets the "output_items" field.
func (m *TraceMutation) SetOutputItems(mi []models.TraceItem) {
	m.output_items = &mi
	m.appendoutput_items = nil
}

// OutputItems returns the value of the "output_items" field in the mutation.
func (m *TraceMutation) OutputItems() (r []models.TraceItem, exists bool) {
	v := m.output_items
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputItems returns the old "output_items" field's value of the Trace entity.
// If the Trace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceMutation) OldOutputItems(ctx context.Context) (v []models.TraceItem, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputItems is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputItems requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputItems: %w", err)
	}
	return oldValue.OutputItems, nil
}

// AppendOutputItems adds mi to the "output_items" field.
func (m *TraceMutation) AppendOutputItems(mi []models.TraceItem) {
	m.appendoutput_items = append(m.appendoutput_items, mi...)
}

// AppendedOutputItems returns the list of values that were appended to the "output_items" field in this mutation.
func (m *TraceMutation) AppendedOutputItems() ([]models.TraceItem, bool) {
	if len(m.appendoutput_items) == 0 {
		return nil, false
	}
	return m.appendoutput_items, true
}

// ClearOutputItems clears the value of the "output_items" field.
func (m *TraceMutation) ClearOutputItems() {
	m.output_items = nil
	m.appendoutput_items = nil
	m.clearedFields[trace.FieldOutputItems] = struct{}{}
}

// OutputItemsCleared returns if the "output_items" field was cleared in this mutation.
func (m *TraceMutation) OutputItemsCleared() bool {
	_, ok := m.clearedFields[trace.FieldOutputItems]
	return ok
}

// ResetOutputItems resets all changes to the "output_items" field.
func (m *TraceMutation) ResetOutputItems() {
	m.output_items = nil
	m.appendoutput_items = nil
	delete(m.clearedFields, trace.FieldOutputItems)
}

// SetTools sets the "tools" field.
func (m *TraceMutation) SetTools(md []models.ToolDefinition) {
	m.tools = &md
	m.appendtools = nil
}

// Tools returns the value of the "tools" field in the mutation.
func (m *TraceMutation) Tools() (r []models.ToolDefinition, exists bool) {
	v := m.tools
	if v == nil {
		return
	}
	return *v, true
}

// OldTools returns the old "tools" field's value of the Trace entity.
// If the Trace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceMutation) OldTools(ctx context.Context) (v []models.ToolDefinition, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTools is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTools requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTools: %w", err)
	}
	return oldValue.Tools, nil
}

// AppendTools adds md to the "tools" field.
func (m *TraceMutation) AppendTools(md []models.ToolDefinition) {
	m.appendtools = append(m.appendtools, md...)
}

// AppendedTools returns the list of values that were appended to the "tools" field in this mutation.
func (m *TraceMutation) AppendedTools() ([]models.ToolDefinition, bool) {
	if len(m.appendtools) == 0 {
		return nil, false
	}
	return m.appendtools, true
}

// ClearTools clears the value of the "tools" field.
func (m *TraceMutation) ClearTools() {
	m.tools = nil
	m.appendtools = nil
	m.clearedFields[trace.FieldTools] = struct{}{}
}

// ToolsCleared returns if the "tools" field was cleared in this mutation.
func (m *TraceMutation) ToolsCleared() bool {
	_, ok := m.clearedFields[trace.FieldTools]
	return ok
}

// ResetTools resets all changes to the "tools" field.
func (m *TraceMutation) ResetTools() {
	m.tools = nil
	m.appendtools = nil
	delete(m.clearedFields, trace.FieldTools)
}

// SetResponseSchema sets the "response_schema" field.
func (m *TraceMutation) SetResponseSchema(value map[string]interface{}) {
	m.response_schema = &value
}

// ResponseSchema returns the value of the "response_schema" field in the mutation.
func (m *TraceMutation) ResponseSchema() (r map[string]interface{}, exists bool) {
	v := m.response_schema
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseSchema returns the old "response_schema" field's value of the Trace entity.
// If the Trace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceMutation) OldResponseSchema(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseSchema is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseSchema requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseSchema: %w", err)
	}
	return oldValue.ResponseSchema, nil
}

// ClearResponseSchema clears the value of the "response_schema" field.
func (m *TraceMutation) ClearResponseSchema() {
	m.response_schema = nil
	m.clearedFields[trace.FieldResponseSchema] = struct{}{}
}

// ResponseSchemaCleared returns if the "response_schema" field was cleared in this mutation.
func (m *TraceMutation) ResponseSchemaCleared() bool {
	_, ok := m.clearedFields[trace.FieldResponseSchema]
	return ok
}

// ResetResponseSchema resets all changes to the "response_schema" field.
func (m *TraceMutation) ResetResponseSchema() {
	m.response_schema = nil
	delete(m.clearedFields, trace.FieldResponseSchema)
}

// SetTemperature sets the "temperature" field.
func (m *TraceMutation) SetTemperature(f float64) {
	m.temperature = &f
	m.addtemperature = nil
}

// Temperature returns the value of the "temperature" field in the mutation.
func (m *TraceMutation) Temperature() (r float64, exists bool) {
	v := m.temperature
	if v == nil {
		return
	}
	return *v, true
}

// OldTemperature returns the old "temperature" field's value of the Trace entity.
// If the Trace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceMutation) OldTemperature(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemperature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemperature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemperature: %w", err)
	}
	return oldValue.Temperature, nil
}

// AddTemperature adds f to the "temperature" field.
func (m *TraceMutation) AddTemperature(f float64) {
	if m.addtemperature != nil {
		*m.addtemperature += f
	} else {
		m.addtemperature = &f
	}
}

// AddedTemperature returns the value that was added to the "temperature" field in this mutation.
func (m *TraceMutation) AddedTemperature() (r float64, exists bool) {
	v := m.addtemperature
	if v == nil {
		return
	}
	return *v, true
}

// ClearTemperature clears the value of the "temperature" field.
func (m *TraceMutation) ClearTemperature() {
	m.temperature = nil
	m.addtemperature = nil
	m.clearedFields[trace.FieldTemperature] = struct{}{}
}

// TemperatureCleared returns if the "temperature" field was cleared in this mutation.
func (m *TraceMutation) TemperatureCleared() bool {
	_, ok := m.clearedFields[trace.FieldTemperature]
	return ok
}

// ResetTemperature resets all changes to the "temperature" field.
func (m *TraceMutation) ResetTemperature() {
	m.temperature = nil
	m.addtemperature = nil
	delete(m.clearedFields, trace.FieldTemperature)
}

// SetMaxTokens sets the "max_tokens" field.
func (m *TraceMutation) SetMaxTokens(i int) {
	m.max_tokens = &i
	m.addmax_tokens = nil
}

// MaxTokens returns the value of the "max_tokens" field in the mutation.
func (m *TraceMutation) MaxTokens() (r int, exists bool) {
	v := m.max_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxTokens returns the old "max_tokens" field's value of the Trace entity.
// If the Trace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceMutation) OldMaxTokens(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxTokens: %w", err)
	}
	return oldValue.MaxTokens, nil
}

// AddMaxTokens adds i to the "max_tokens" field.
func (m *TraceMutation) AddMaxTokens(i int) {
	if m.addmax_tokens != nil {
		*m.addmax_tokens += i
	} else {
		m.addmax_tokens = &i
	}
}

// AddedMaxTokens returns the value that was added to the "max_tokens" field in this mutation.
func (m *TraceMutation) AddedMaxTokens() (r int, exists bool) {
	v := m.addmax_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ClearMaxTokens clears the value of the "max_tokens" field.
func (m *TraceMutation) ClearMaxTokens() {
	m.max_tokens = nil
	m.addmax_tokens = nil
	m.clearedFields[trace.FieldMaxTokens] = struct{}{}
}

// MaxTokensCleared returns if the "max_tokens" field was cleared in this mutation.
func (m *TraceMutation) MaxTokensCleared() bool {
	_, ok := m.clearedFields[trace.FieldMaxTokens]
	return ok
}

// ResetMaxTokens resets all changes to the "max_tokens" field.
func (m *TraceMutation) ResetMaxTokens() {
	m.max_tokens = nil
	m.addmax_tokens = nil
	delete(m.clearedFields, trace.FieldMaxTokens)
}

// SetFinishReason sets the "finish_reason" field.
func (m *TraceMutation) SetFinishReason(s string) {
	m.finish_reason = &s
}

// FinishReason returns the value of the "finish_reason" field in the mutation.
func (m *TraceMutation) FinishReason() (r string, exists bool) {
	v := m.finish_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishReason returns the old "finish_reason" field's value of the Trace entity.
// If the Trace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceMutation) OldFinishReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishReason: %w", err)
	}
	return oldValue.FinishReason, nil
}

// ClearFinishReason clears the value of the "finish_reason" field.
func (m *TraceMutation) ClearFinishReason() {
	m.finish_reason = nil
	m.clearedFields[trace.FieldFinishReason] = struct{}{}
}

// FinishReasonCleared returns if the "finish_reason" field was cleared in this mutation.
func (m *TraceMutation) FinishReasonCleared() bool {
	_, ok := m.clearedFields[trace.FieldFinishReason]
	return ok
}

// ResetFinishReason resets all changes to the "finish_reason" field.
func (m *TraceMutation) ResetFinishReason() {
	m.finish_reason = nil
	delete(m.clearedFields, trace.FieldFinishReason)
}

// SetPromptTokens sets the "prompt_tokens" field.
func (m *TraceMutation) SetPromptTokens(i int) {
	m.prompt_tokens = &i
	m.addprompt_tokens = nil
}

// PromptTokens returns the value of the "prompt_tokens" field in the mutation.
func (m *TraceMutation) PromptTokens() (r int, exists bool) {
	v := m.prompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptTokens returns the old "prompt_tokens" field's value of the Trace entity.
// If the Trace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceMutation) OldPromptTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptTokens: %w", err)
	}
	return oldValue.PromptTokens, nil
}

// AddPromptTokens adds i to the "prompt_tokens" field.
func (m *TraceMutation) AddPromptTokens(i int) {
	if m.addprompt_tokens != nil {
		*m.addprompt_tokens += i
	} else {
		m.addprompt_tokens = &i
	}
}

// AddedPromptTokens returns the value that was added to the "prompt_tokens" field in this mutation.
func (m *TraceMutation) AddedPromptTokens() (r int, exists bool) {
	v := m.addprompt_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetPromptTokens resets all changes to the "prompt_tokens" field.
func (m *TraceMutation) ResetPromptTokens() {
	m.prompt_tokens = nil
	m.addprompt_tokens = nil
}

// SetCompletionTokens sets the "completion_tokens" field.
func (m *TraceMutation) SetCompletionTokens(i int) {
	m.completion_tokens = &i
	m.addcompletion_tokens = nil
}

// CompletionTokens returns the value of the "completion_tokens" field in the mutation.
func (m *TraceMutation) CompletionTokens() (r int, exists bool) {
	v := m.completion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletionTokens returns the old "completion_tokens" field's value of the Trace entity.
// If the Trace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceMutation) OldCompletionTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletionTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletionTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletionTokens: %w", err)
	}
	return oldValue.CompletionTokens, nil
}

// AddCompletionTokens adds i to the "completion_tokens" field.
func (m *TraceMutation) AddCompletionTokens(i int) {
	if m.addcompletion_tokens != nil {
		*m.addcompletion_tokens += i
	} else {
		m.addcompletion_tokens = &i
	}
}

// AddedCompletionTokens returns the value that was added to the "completion_tokens" field in this mutation.
func (m *TraceMutation) AddedCompletionTokens() (r int, exists bool) {
	v := m.addcompletion_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompletionTokens resets all changes to the "completion_tokens" field.
func (m *TraceMutation) ResetCompletionTokens() {
	m.completion_tokens = nil
	m.addcompletion_tokens = nil
}

// SetCachedTokens sets the "cached_tokens" field.
func (m *TraceMutation) SetCachedTokens(i int) {
	m.cached_tokens = &i
	m.addcached_tokens = nil
}

// CachedTokens returns the value of the "cached_tokens" field in the mutation.
func (m *TraceMutation) CachedTokens() (r int, exists bool) {
	v := m.cached_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldCachedTokens returns the old "cached_tokens" field's value of the Trace entity.
// If the Trace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceMutation) OldCachedTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCachedTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCachedTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCachedTokens: %w", err)
	}
	return oldValue.CachedTokens, nil
}

// AddCachedTokens adds i to the "cached_tokens" field.
func (m *TraceMutation) AddCachedTokens(i int) {
	if m.addcached_tokens != nil {
		*m.addcached_tokens += i
	} else {
		m.addcached_tokens = &i
	}
}

// AddedCachedTokens returns the value that was added to the "cached_tokens" field in this mutation.
func (m *TraceMutation) AddedCachedTokens() (r int, exists bool) {
	v := m.addcached_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetCachedTokens resets all changes to the "cached_tokens" field.
func (m *TraceMutation) ResetCachedTokens() {
	m.cached_tokens = nil
	m.addcached_tokens = nil
}

// SetReasoningTokens sets the "reasoning_tokens" field.
func (m *TraceMutation) SetReasoningTokens(i int) {
	m.reasoning_tokens = &i
	m.addreasoning_tokens = nil
}

// ReasoningTokens returns the value of the "reasoning_tokens" field in the mutation.
func (m *TraceMutation) ReasoningTokens() (r int, exists bool) {
	v := m.reasoning_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldReasoningTokens returns the old "reasoning_tokens" field's value of the Trace entity.
// If the Trace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceMutation) OldReasoningTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReasoningTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReasoningTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReasoningTokens: %w", err)
	}
	return oldValue.ReasoningTokens, nil
}

// AddReasoningTokens adds i to the "reasoning_tokens" field.
func (m *TraceMutation) AddReasoningTokens(i int) {
	if m.addreasoning_tokens != nil {
		*m.addreasoning_tokens += i
	} else {
		m.addreasoning_tokens = &i
	}
}

// AddedReasoningTokens returns the value that was added to the "reasoning_tokens" field in this mutation.
func (m *TraceMutation) AddedReasoningTokens() (r int, exists bool) {
	v := m.addreasoning_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetReasoningTokens resets all changes to the "reasoning_tokens" field.
func (m *TraceMutation) ResetReasoningTokens() {
	m.reasoning_tokens = nil
	m.addreasoning_tokens = nil
}

// SetTotalTokens sets the "total_tokens" field.
func (m *TraceMutation) SetTotalTokens(i int) {
	m.total_tokens = &i
	m.addtotal_tokens = nil
}

// TotalTokens returns the value of the "total_tokens" field in the mutation.
func (m *TraceMutation) TotalTokens() (r int, exists bool) {
	v := m.total_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTokens returns the old "total_tokens" field's value of the Trace entity.
// If the Trace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceMutation) OldTotalTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTokens: %w", err)
	}
	return oldValue.TotalTokens, nil
}

// AddTotalTokens adds i to the "total_tokens" field.
func (m *TraceMutation) AddTotalTokens(i int) {
	if m.addtotal_tokens != nil {
		*m.addtotal_tokens += i
	} else {
		m.addtotal_tokens = &i
	}
}

// AddedTotalTokens returns the value that was added to the "total_tokens" field in this mutation.
func (m *TraceMutation) AddedTotalTokens() (r int, exists bool) {
	v := m.addtotal_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTokens resets all changes to the "total_tokens" field.
func (m *TraceMutation) ResetTotalTokens() {
	m.total_tokens = nil
	m.addtotal_tokens = nil
}

// SetSystemFingerprint sets the "system_fingerprint" field.
func (m *TraceMutation) SetSystemFingerprint(s string) {
	m.system_fingerprint = &s
}

// SystemFingerprint returns the value of the "system_fingerprint" field in the mutation.
func (m *TraceMutation) SystemFingerprint() (r string, exists bool) {
	v := m.system_fingerprint
	if v == nil {
		return
	}
	return *v, true
}

// OldSystemFingerprint returns the old "system_fingerprint" field's value of the Trace entity.
// If the Trace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceMutation) OldSystemFingerprint(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystemFingerprint is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystemFingerprint requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystemFingerprint: %w", err)
	}
	return oldValue.SystemFingerprint, nil
}

// ClearSystemFingerprint clears the value of the "system_fingerprint" field.
func (m *TraceMutation) ClearSystemFingerprint() {
	m.system_fingerprint = nil
	m.clearedFields[trace.FieldSystemFingerprint] = struct{}{}
}

// SystemFingerprintCleared returns if the "system_fingerprint" field was cleared in this mutation.
func (m *TraceMutation) SystemFingerprintCleared() bool {
	_, ok := m.clearedFields[trace.FieldSystemFingerprint]
	return ok
}

// ResetSystemFingerprint resets all changes to the "system_fingerprint" field.
func (m *TraceMutation) ResetSystemFingerprint() {
	m.system_fingerprint = nil
	delete(m.clearedFields, trace.FieldSystemFingerprint)
}

// SetStartedAt sets the "started_at" field.
func (m *TraceMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TraceMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Trace entity.
// If the Trace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TraceMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *TraceMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TraceMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Trace entity.
// If the Trace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceMutation) OldCompletedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TraceMutation) ResetCompletedAt() {
	m.completed_at = nil
}

// SetError sets the "error" field.
func (m *TraceMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *TraceMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the Trace entity.
// If the Trace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *TraceMutation) ClearError() {
	m.error = nil
	m.clearedFields[trace.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *TraceMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[trace.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *TraceMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, trace.FieldError)
}

// SetImplementationID sets the "implementation_id" field.
func (m *TraceMutation) SetImplementationID(s string) {
	m.implementation = &s
}

// ImplementationID returns the value of the "implementation_id" field in the mutation.
func (m *TraceMutation) ImplementationID() (r string, exists bool) {
	v := m.implementation
	if v == nil {
		return
	}
	return *v, true
}

// OldImplementationID returns the old "implementation_id" field's value of the Trace entity.
// If the Trace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceMutation) OldImplementationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImplementationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImplementationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImplementationID: %w", err)
	}
	return oldValue.ImplementationID, nil
}

// ClearImplementationID clears the value of the "implementation_id" field.
func (m *TraceMutation) ClearImplementationID() {
	m.implementation = nil
	m.clearedFields[trace.FieldImplementationID] = struct{}{}
}

// ImplementationIDCleared returns if the "implementation_id" field was cleared in this mutation.
func (m *TraceMutation) ImplementationIDCleared() bool {
	_, ok := m.clearedFields[trace.FieldImplementationID]
	return ok
}

// ResetImplementationID resets all changes to the "implementation_id" field.
func (m *TraceMutation) ResetImplementationID() {
	m.implementation = nil
	delete(m.clearedFields, trace.FieldImplementationID)
}

// SetPromptVariables sets the "prompt_variables" field.
func (m *TraceMutation) SetPromptVariables(value map[string]string) {
	m.prompt_variables = &value
}

// PromptVariables returns the value of the "prompt_variables" field in the mutation.
func (m *TraceMutation) PromptVariables() (r map[string]string, exists bool) {
	v := m.prompt_variables
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptVariables returns the old "prompt_variables" field's value of the Trace entity.
// If the Trace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceMutation) OldPromptVariables(ctx context.Context) (v map[string]string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptVariables is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptVariables requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptVariables: %w", err)
	}
	return oldValue.PromptVariables, nil
}

// ClearPromptVariables clears the value of the "prompt_variables" field.
func (m *TraceMutation) ClearPromptVariables() {
	m.prompt_variables = nil
	m.clearedFields[trace.FieldPromptVariables] = struct{}{}
}

// PromptVariablesCleared returns if the "prompt_variables" field was cleared in this mutation.
func (m *TraceMutation) PromptVariablesCleared() bool {
	_, ok := m.clearedFields[trace.FieldPromptVariables]
	return ok
}

// ResetPromptVariables resets all changes to the "prompt_variables" field.
func (m *TraceMutation) ResetPromptVariables() {
	m.prompt_variables = nil
	delete(m.clearedFields, trace.FieldPromptVariables)
}

// SetCreatedAt sets the "created_at" field.
func (m *TraceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TraceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Trace entity.
// If the Trace object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TraceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TraceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearProject clears the "project" edge to the Project entity.
func (m *TraceMutation) ClearProject() {
	m.clearedproject = true
	m.clearedFields[trace.FieldProjectID] = struct{}{}
}

// ProjectCleared reports if the "project" edge to the Project entity was cleared.
func (m *TraceMutation) ProjectCleared() bool {
	return m.clearedproject
}

// ProjectIDs returns the "project" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProjectID instead. It exists only for internal usage by the builders.
func (m *TraceMutation) ProjectIDs() (ids []string) {
	if id := m.project; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProject resets all changes to the "project" edge.
func (m *TraceMutation) ResetProject() {
	m.project = nil
	m.clearedproject = false
}

// ClearHTTPTrace clears the "http_trace" edge to the HTTPTrace entity.
func (m *TraceMutation) ClearHTTPTrace() {
	m.clearedhttp_trace = true
	m.clearedFields[trace.FieldHTTPTraceID] = struct{}{}
}

// HTTPTraceCleared reports if the "http_trace" edge to the HTTPTrace entity was cleared.
func (m *TraceMutation) HTTPTraceCleared() bool {
	return m.HTTPTraceIDCleared() || m.clearedhttp_trace
}

// HTTPTraceIDs returns the "http_trace" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// HTTPTraceID instead. It exists only for internal usage by the builders.
func (m *TraceMutation) HTTPTraceIDs() (ids []string) {
	if id := m.http_trace; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetHTTPTrace resets all changes to the "http_trace" edge.
func (m *TraceMutation) ResetHTTPTrace() {
	m.http_trace = nil
	m.clearedhttp_trace = false
}

// ClearImplementation clears the "implementation" edge to the Implementation entity.
func (m *TraceMutation) ClearImplementation() {
	m.clearedimplementation = true
	m.clearedFields[trace.FieldImplementationID] = struct{}{}
}

// ImplementationCleared reports if the "implementation" edge to the Implementation entity was cleared.
func (m *TraceMutation) ImplementationCleared() bool {
	return m.ImplementationIDCleared() || m.clearedimplementation
}

// ImplementationIDs returns the "implementation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ImplementationID instead. It exists only for internal usage by the builders.
func (m *TraceMutation) ImplementationIDs() (ids []string) {
	if id := m.implementation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetImplementation resets all changes to the "implementation" edge.
func (m *TraceMutation) ResetImplementation() {
	m.implementation = nil
	m.clearedimplementation = false
}

// AddGradeIDs adds the "grades" edge to the Grade entity by ids.
func (m *TraceMutation) AddGradeIDs(ids ...string) {
	if m.grades == nil {
		m.grades = make(map[string]struct{})
	}
	for i := range ids {
		m.grades[ids[i]] = struct{}{}
	}
}

// ClearGrades clears the "grades" edge to the Grade entity.
func (m *TraceMutation) ClearGrades() {
	m.clearedgrades = true
}

// GradesCleared reports if the "grades" edge to the Grade entity was cleared.
func (m *TraceMutation) GradesCleared() bool {
	return m.clearedgrades
}

// RemoveGradeIDs removes the "grades" edge to the Grade entity by IDs.
func (m *TraceMutation) RemoveGradeIDs(ids ...string) {
	if m.removedgrades == nil {
		m.removedgrades = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.grades, ids[i])
		m.removedgrades[ids[i]] = struct{}{}
	}
}

// RemovedGrades returns the removed IDs of the "grades" edge to the Grade entity.
func (m *TraceMutation) RemovedGradesIDs() (ids []string) {
	for id := range m.removedgrades {
		ids = append(ids, id)
	}
	return
}

// GradesIDs returns the "grades" edge IDs in the mutation.
func (m *TraceMutation) GradesIDs() (ids []string) {
	for id := range m.grades {
		ids = append(ids, id)
	}
	return
}

// ResetGrades resets all changes to the "grades" edge.
func (m *TraceMutation) ResetGrades() {
	m.grades = nil
	m.clearedgrades = false
	m.removedgrades = nil
}

// Where appends a list predicates to the TraceMutation builder.
func (m *TraceMutation) Where(ps ...predicate.Trace) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TraceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TraceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Trace, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TraceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TraceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Trace).
func (m *TraceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TraceMutation) Fields() []string {
	fields := make([]string, 0, 23)
	if m.project != nil {
		fields = append(fields, trace.FieldProjectID)
	}
	if m.http_trace != nil {
		fields = append(fields, trace.FieldHTTPTraceID)
	}
	if m.model != nil {
		fields = append(fields, trace.FieldModel)
	}
	if m._path != nil {
		fields = append(fields, trace.FieldPath)
	}
	if m.input_items != nil {
		fields = append(fields, trace.FieldInputItems)
	}
	if m.output_items != nil {
		fields = append(fields, trace.FieldOutputItems)
	}
	if m.tools != nil {
		fields = append(fields, trace.FieldTools)
	}
	if m.response_schema != nil {
		fields = append(fields, trace.FieldResponseSchema)
	}
	if m.temperature != nil {
		fields = append(fields, trace.FieldTemperature)
	}
	if m.max_tokens != nil {
		fields = append(fields, trace.FieldMaxTokens)
	}
	if m.finish_reason != nil {
		fields = append(fields, trace.FieldFinishReason)
	}
	if m.prompt_tokens != nil {
		fields = append(fields, trace.FieldPromptTokens)
	}
	if m.completion_tokens != nil {
		fields = append(fields, trace.FieldCompletionTokens)
	}
	if m.cached_tokens != nil {
		fields = append(fields, trace.FieldCachedTokens)
	}
	if m.reasoning_tokens != nil {
		fields = append(fields, trace.FieldReasoningTokens)
	}
	if m.total_tokens != nil {
		fields = append(fields, trace.FieldTotalTokens)
	}
	if m.system_fingerprint != nil {
		fields = append(fields, trace.FieldSystemFingerprint)
	}
	if m.started_at != nil {
		fields = append(fields, trace.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, trace.FieldCompletedAt)
	}
	if m.error != nil {
		fields = append(fields, trace.FieldError)
	}
	if m.implementation != nil {
		fields = append(fields, trace.FieldImplementationID)
	}
	if m.prompt_variables != nil {
		fields = append(fields, trace.FieldPromptVariables)
	}
	if m.created_at != nil {
		fields = append(fields, trace.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TraceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case trace.FieldProjectID:
		return m.ProjectID()
	case trace.FieldHTTPTraceID:
		return m.HTTPTraceID()
	case trace.FieldModel:
		return m.Model()
	case trace.FieldPath:
		return m.Path()
	case trace.FieldInputItems:
		return m.InputItems()
	case trace.FieldOutputItems:
		return m.OutputItems()
	case trace.FieldTools:
		return m.Tools()
	case trace.FieldResponseSchema:
		return m.ResponseSchema()
	case trace.FieldTemperature:
		return m.Temperature()
	case trace.FieldMaxTokens:
		return m.MaxTokens()
	case trace.FieldFinishReason:
		return m.FinishReason()
	case trace.FieldPromptTokens:
		return m.PromptTokens()
	case trace.FieldCompletionTokens:
		return m.CompletionTokens()
	case trace.FieldCachedTokens:
		return m.CachedTokens()
	case trace.FieldReasoningTokens:
		return m.ReasoningTokens()
	case trace.FieldTotalTokens:
		return m.TotalTokens()
	case trace.FieldSystemFingerprint:
		return m.SystemFingerprint()
	case trace.FieldStartedAt:
		return m.StartedAt()
	case trace.FieldCompletedAt:
		return m.CompletedAt()
	case trace.FieldError:
		return m.Error()
	case trace.FieldImplementationID:
		return m.ImplementationID()
	case trace.FieldPromptVariables:
		return m.PromptVariables()
	case trace.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TraceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case trace.FieldProjectID:
		return m.OldProjectID(ctx)
	case trace.FieldHTTPTraceID:
		return m.OldHTTPTraceID(ctx)
	case trace.FieldModel:
		return m.OldModel(ctx)
	case trace.FieldPath:
		return m.OldPath(ctx)
	case trace.FieldInputItems:
		return m.OldInputItems(ctx)
	case trace.FieldOutputItems:
		return m.OldOutputItems(ctx)
	case trace.FieldTools:
		return m.OldTools(ctx)
	case trace.FieldResponseSchema:
		return m.OldResponseSchema(ctx)
	case trace.FieldTemperature:
		return m.OldTemperature(ctx)
	case trace.FieldMaxTokens:
		return m.OldMaxTokens(ctx)
	case trace.FieldFinishReason:
		return m.OldFinishReason(ctx)
	case trace.FieldPromptTokens:
		return m.OldPromptTokens(ctx)
	case trace.FieldCompletionTokens:
		return m.OldCompletionTokens(ctx)
	case trace.FieldCachedTokens:
		return m.OldCachedTokens(ctx)
	case trace.FieldReasoningTokens:
		return m.OldReasoningTokens(ctx)
	case trace.FieldTotalTokens:
		return m.OldTotalTokens(ctx)
	case trace.FieldSystemFingerprint:
		return m.OldSystemFingerprint(ctx)
	case trace.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case trace.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case trace.FieldError:
		return m.OldError(ctx)
	case trace.FieldImplementationID:
		return m.OldImplementationID(ctx)
	case trace.FieldPromptVariables:
		return m.OldPromptVariables(ctx)
	case trace.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Trace field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TraceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case trace.FieldProjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProjectID(v)
		return nil
	case trace.FieldHTTPTraceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHTTPTraceID(v)
		return nil
	case trace.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case trace.FieldPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPath(v)
		return nil
	case trace.FieldInputItems:
		v, ok := value.([]models.TraceItem)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputItems(v)
		return nil
	case trace.FieldOutputItems:
		v, ok := value.([]models.TraceItem)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputItems(v)
		return nil
	case trace.FieldTools:
		v, ok := value.([]models.ToolDefinition)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTools(v)
		return nil
	case trace.FieldResponseSchema:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseSchema(v)
		return nil
	case trace.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemperature(v)
		return nil
	case trace.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxTokens(v)
		return nil
	case trace.FieldFinishReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishReason(v)
		return nil
	case trace.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptTokens(v)
		return nil
	case trace.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletionTokens(v)
		return nil
	case trace.FieldCachedTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCachedTokens(v)
		return nil
	case trace.FieldReasoningTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReasoningTokens(v)
		return nil
	case trace.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTokens(v)
		return nil
	case trace.FieldSystemFingerprint:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystemFingerprint(v)
		return nil
	case trace.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case trace.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case trace.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case trace.FieldImplementationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImplementationID(v)
		return nil
	case trace.FieldPromptVariables:
		v, ok := value.(map[string]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptVariables(v)
		return nil
	case trace.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Trace field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TraceMutation) AddedFields() []string {
	var fields []string
	if m.addtemperature != nil {
		fields = append(fields, trace.FieldTemperature)
	}
	if m.addmax_tokens != nil {
		fields = append(fields, trace.FieldMaxTokens)
	}
	if m.addprompt_tokens != nil {
		fields = append(fields, trace.FieldPromptTokens)
	}
	if m.addcompletion_tokens != nil {
		fields = append(fields, trace.FieldCompletionTokens)
	}
	if m.addcached_tokens != nil {
		fields = append(fields, trace.FieldCachedTokens)
	}
	if m.addreasoning_tokens != nil {
		fields = append(fields, trace.FieldReasoningTokens)
	}
	if m.addtotal_tokens != nil {
		fields = append(fields, trace.FieldTotalTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TraceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case trace.FieldTemperature:
		return m.AddedTemperature()
	case trace.FieldMaxTokens:
		return m.AddedMaxTokens()
	case trace.FieldPromptTokens:
		return m.AddedPromptTokens()
	case trace.FieldCompletionTokens:
		return m.AddedCompletionTokens()
	case trace.FieldCachedTokens:
		return m.AddedCachedTokens()
	case trace.FieldReasoningTokens:
		return m.AddedReasoningTokens()
	case trace.FieldTotalTokens:
		return m.AddedTotalTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TraceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case trace.FieldTemperature:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemperature(v)
		return nil
	case trace.FieldMaxTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxTokens(v)
		return nil
	case trace.FieldPromptTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPromptTokens(v)
		return nil
	case trace.FieldCompletionTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletionTokens(v)
		return nil
	case trace.FieldCachedTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCachedTokens(v)
		return nil
	case trace.FieldReasoningTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReasoningTokens(v)
		return nil
	case trace.FieldTotalTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTokens(v)
		return nil
	}
	return fmt.Errorf("unknown Trace numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TraceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(trace.FieldHTTPTraceID) {
		fields = append(fields, trace.FieldHTTPTraceID)
	}
	if m.FieldCleared(trace.FieldPath) {
		fields = append(fields, trace.FieldPath)
	}
	if m.FieldCleared(trace.FieldOutputItems) {
		fields = append(fields, trace.FieldOutputItems)
	}
	if m.FieldCleared(trace.FieldTools) {
		fields = append(fields, trace.FieldTools)
	}
	if m.FieldCleared(trace.FieldResponseSchema) {
		fields = append(fields, trace.FieldResponseSchema)
	}
	if m.FieldCleared(trace.FieldTemperature) {
		fields = append(fields, trace.FieldTemperature)
	}
	if m.FieldCleared(trace.FieldMaxTokens) {
		fields = append(fields, trace.FieldMaxTokens)
	}
	if m.FieldCleared(trace.FieldFinishReason) {
		fields = append(fields, trace.FieldFinishReason)
	}
	if m.FieldCleared(trace.FieldSystemFingerprint) {
		fields = append(fields, trace.FieldSystemFingerprint)
	}
	if m.FieldCleared(trace.FieldError) {
		fields = append(fields, trace.FieldError)
	}
	if m.FieldCleared(trace.FieldImplementationID) {
		fields = append(fields, trace.FieldImplementationID)
	}
	if m.FieldCleared(trace.FieldPromptVariables) {
		fields = append(fields, trace.FieldPromptVariables)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TraceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TraceMutation) ClearField(name string) error {
	switch name {
	case trace.FieldHTTPTraceID:
		m.ClearHTTPTraceID()
		return nil
	case trace.FieldPath:
		m.ClearPath()
		return nil
	case trace.FieldOutputItems:
		m.ClearOutputItems()
		return nil
	case trace.FieldTools:
		m.ClearTools()
		return nil
	case trace.FieldResponseSchema:
		m.ClearResponseSchema()
		return nil
	case trace.FieldTemperature:
		m.ClearTemperature()
		return nil
	case trace.FieldMaxTokens:
		m.ClearMaxTokens()
		return nil
	case trace.FieldFinishReason:
		m.ClearFinishReason()
		return nil
	case trace.FieldSystemFingerprint:
		m.ClearSystemFingerprint()
		return nil
	case trace.FieldError:
		m.ClearError()
		return nil
	case trace.FieldImplementationID:
		m.ClearImplementationID()
		return nil
	case trace.FieldPromptVariables:
		m.ClearPromptVariables()
		return nil
	}
	return fmt.Errorf("unknown Trace nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TraceMutation) ResetField(name string) error {
	switch name {
	case trace.FieldProjectID:
		m.ResetProjectID()
		return nil
	case trace.FieldHTTPTraceID:
		m.ResetHTTPTraceID()
		return nil
	case trace.FieldModel:
		m.ResetModel()
		return nil
	case trace.FieldPath:
		m.ResetPath()
		return nil
	case trace.FieldInputItems:
		m.ResetInputItems()
		return nil
	case trace.FieldOutputItems:
		m.ResetOutputItems()
		return nil
	case trace.FieldTools:
		m.ResetTools()
		return nil
	case trace.FieldResponseSchema:
		m.ResetResponseSchema()
		return nil
	case trace.FieldTemperature:
		m.ResetTemperature()
		return nil
	case trace.FieldMaxTokens:
		m.ResetMaxTokens()
		return nil
	case trace.FieldFinishReason:
		m.ResetFinishReason()
		return nil
	case trace.FieldPromptTokens:
		m.ResetPromptTokens()
		return nil
	case trace.FieldCompletionTokens:
		m.ResetCompletionTokens()
		return nil
	case trace.FieldCachedTokens:
		m.ResetCachedTokens()
		return nil
	case trace.FieldReasoningTokens:
		m.ResetReasoningTokens()
		return nil
	case trace.FieldTotalTokens:
		m.ResetTotalTokens()
		return nil
	case trace.FieldSystemFingerprint:
		m.ResetSystemFingerprint()
		return nil
	case trace.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case trace.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case trace.FieldError:
		m.ResetError()
		return nil
	case trace.FieldImplementationID:
		m.ResetImplementationID()
		return nil
	case trace.FieldPromptVariables:
		m.ResetPromptVariables()
		return nil
	case trace.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Trace field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TraceMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.project != nil {
		edges = append(edges, trace.EdgeProject)
	}
	if m.http_trace != nil {
		edges = append(edges, trace.EdgeHTTPTrace)
	}
	if m.implementation != nil {
		edges = append(edges, trace.EdgeImplementation)
	}
	if m.grades != nil {
		edges = append(edges, trace.EdgeGrades)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TraceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case trace.EdgeProject:
		if id := m.project; id != nil {
			return []ent.Value{*id}
		}
	case trace.EdgeHTTPTrace:
		if id := m.http_trace; id != nil {
			return []ent.Value{*id}
		}
	case trace.EdgeImplementation:
		if id := m.implementation; id != nil {
			return []ent.Value{*id}
		}
	case trace.EdgeGrades:
		ids := make([]ent.Value, 0, len(m.grades))
		for id := range m.grades {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TraceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedgrades != nil {
		edges = append(edges, trace.EdgeGrades)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TraceMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case trace.EdgeGrades:
		ids := make([]ent.Value, 0, len(m.removedgrades))
		for id := range m.removedgrades {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TraceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedproject {
		edges = append(edges, trace.EdgeProject)
	}
	if m.clearedhttp_trace {
		edges = append(edges, trace.EdgeHTTPTrace)
	}
	if m.clearedimplementation {
		edges = append(edges, trace.EdgeImplementation)
	}
	if m.clearedgrades {
		edges = append(edges, trace.EdgeGrades)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TraceMutation) EdgeCleared(name string) bool {
	switch name {
	case trace.EdgeProject:
		return m.clearedproject
	case trace.EdgeHTTPTrace:
		return m.clearedhttp_trace
	case trace.EdgeImplementation:
		return m.clearedimplementation
	case trace.EdgeGrades:
		return m.clearedgrades
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TraceMutation) ClearEdge(name string) error {
	switch name {
	case trace.EdgeProject:
		m.ClearProject()
		return nil
	case trace.EdgeHTTPTrace:
		m.ClearHTTPTrace()
		return nil
	case trace.EdgeImplementation:
		m.ClearImplementation()
		return nil
	}
	return fmt.Errorf("unknown Trace unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TraceMutation) ResetEdge(name string) error {
	switch name {
	case trace.EdgeProject:
		m.ResetProject()
		return nil
	case trace.EdgeHTTPTrace:
		m.ResetHTTPTrace()
		return nil
	case trace.EdgeImplementation:
		m.ResetImplementation()
		return nil
	case trace.EdgeGrades:
		m.ResetGrades()
		return nil
	}
	return fmt.Errorf("unknown Trace edge %s", name)
}
