// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Evaluation is the predicate function for evaluation builders.
type Evaluation func(*sql.Selector)

// EvaluationConfig is the predicate function for evaluationconfig builders.
type EvaluationConfig func(*sql.Selector)

// ExecutionResult is the predicate function for executionresult builders.
type ExecutionResult func(*sql.Selector)

// Grade is the predicate function for grade builders.
type Grade func(*sql.Selector)

// Grader is the predicate function for grader builders.
type Grader func(*sql.Selector)

// HTTPTrace is the predicate function for httptrace builders.
type HTTPTrace func(*sql.Selector)

// Implementation is the predicate function for implementation builders.
type Implementation func(*sql.Selector)

// Project is the predicate function for project builders.
type Project func(*sql.Selector)

// TargetTaskMetrics is the predicate function for targettaskmetrics builders.
type TargetTaskMetrics func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TestCase is the predicate function for testcase builders.
type TestCase func(*sql.Selector)

// Trace is the predicate function for trace builders.
type Trace func(*sql.Selector)
