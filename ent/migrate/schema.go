// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EvaluationsColumns holds the columns for the "evaluations" table.
	EvaluationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "failed"}, Default: "running"},
		{Name: "grader_scores", Type: field.TypeJSON, Nullable: true},
		{Name: "quality_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "avg_cost", Type: field.TypeFloat64, Nullable: true},
		{Name: "avg_execution_time_ms", Type: field.TypeFloat64, Nullable: true},
		{Name: "test_case_count", Type: field.TypeInt, Default: 0},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "implementation_id", Type: field.TypeString},
		{Name: "task_id", Type: field.TypeString},
	}
	// EvaluationsTable holds the schema information for the "evaluations" table.
	EvaluationsTable = &schema.Table{
		Name:       "evaluations",
		Columns:    EvaluationsColumns,
		PrimaryKey: []*schema.Column{EvaluationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "evaluations_implementations_evaluations",
				Columns:    []*schema.Column{EvaluationsColumns[10]},
				RefColumns: []*schema.Column{ImplementationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "evaluations_tasks_evaluations",
				Columns:    []*schema.Column{EvaluationsColumns[11]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "evaluation_task_id_started_at",
				Unique:  false,
				Columns: []*schema.Column{EvaluationsColumns[11], EvaluationsColumns[8]},
			},
			{
				Name:    "evaluation_implementation_id_status",
				Unique:  false,
				Columns: []*schema.Column{EvaluationsColumns[10], EvaluationsColumns[1]},
			},
		},
	}
	// EvaluationConfigsColumns holds the columns for the "evaluation_configs" table.
	EvaluationConfigsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "quality_weight", Type: field.TypeFloat64},
		{Name: "cost_weight", Type: field.TypeFloat64},
		{Name: "time_weight", Type: field.TypeFloat64},
		{Name: "grader_ids", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString, Unique: true},
	}
	// EvaluationConfigsTable holds the schema information for the "evaluation_configs" table.
	EvaluationConfigsTable = &schema.Table{
		Name:       "evaluation_configs",
		Columns:    EvaluationConfigsColumns,
		PrimaryKey: []*schema.Column{EvaluationConfigsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "evaluation_configs_tasks_evaluation_config",
				Columns:    []*schema.Column{EvaluationConfigsColumns[7]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// ExecutionResultsColumns holds the columns for the "execution_results" table.
	ExecutionResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime},
		{Name: "prompt_rendered", Type: field.TypeString, Size: 2147483647},
		{Name: "variables", Type: field.TypeJSON, Nullable: true},
		{Name: "result_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "result_json", Type: field.TypeJSON, Nullable: true},
		{Name: "tool_calls", Type: field.TypeJSON, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "prompt_tokens", Type: field.TypeInt, Default: 0},
		{Name: "completion_tokens", Type: field.TypeInt, Default: 0},
		{Name: "cached_tokens", Type: field.TypeInt, Default: 0},
		{Name: "reasoning_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_tokens", Type: field.TypeInt, Default: 0},
		{Name: "system_fingerprint", Type: field.TypeString, Nullable: true},
		{Name: "cost", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "evaluation_id", Type: field.TypeString, Nullable: true},
		{Name: "implementation_id", Type: field.TypeString},
		{Name: "task_id", Type: field.TypeString},
		{Name: "test_case_id", Type: field.TypeString, Nullable: true},
	}
	// ExecutionResultsTable holds the schema information for the "execution_results" table.
	ExecutionResultsTable = &schema.Table{
		Name:       "execution_results",
		Columns:    ExecutionResultsColumns,
		PrimaryKey: []*schema.Column{ExecutionResultsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "execution_results_evaluations_execution_results",
				Columns:    []*schema.Column{ExecutionResultsColumns[17]},
				RefColumns: []*schema.Column{EvaluationsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "execution_results_implementations_execution_results",
				Columns:    []*schema.Column{ExecutionResultsColumns[18]},
				RefColumns: []*schema.Column{ImplementationsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "execution_results_tasks_execution_results",
				Columns:    []*schema.Column{ExecutionResultsColumns[19]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "execution_results_test_cases_execution_results",
				Columns:    []*schema.Column{ExecutionResultsColumns[20]},
				RefColumns: []*schema.Column{TestCasesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "executionresult_task_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExecutionResultsColumns[19], ExecutionResultsColumns[16]},
			},
			{
				Name:    "executionresult_implementation_id",
				Unique:  false,
				Columns: []*schema.Column{ExecutionResultsColumns[18]},
			},
			{
				Name:    "executionresult_evaluation_id",
				Unique:  false,
				Columns: []*schema.Column{ExecutionResultsColumns[17]},
			},
		},
	}
	// GradesColumns holds the columns for the "grades" table.
	GradesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "score_float", Type: field.TypeFloat64, Nullable: true},
		{Name: "score_boolean", Type: field.TypeBool, Nullable: true},
		{Name: "reasoning", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "prompt_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "completion_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "total_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "grading_started_at", Type: field.TypeTime},
		{Name: "grading_completed_at", Type: field.TypeTime},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "execution_result_id", Type: field.TypeString, Nullable: true},
		{Name: "grader_id", Type: field.TypeString},
		{Name: "trace_id", Type: field.TypeString, Nullable: true},
	}
	// GradesTable holds the schema information for the "grades" table.
	GradesTable = &schema.Table{
		Name:       "grades",
		Columns:    GradesColumns,
		PrimaryKey: []*schema.Column{GradesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "grades_execution_results_grades",
				Columns:    []*schema.Column{GradesColumns[11]},
				RefColumns: []*schema.Column{ExecutionResultsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "grades_graders_grades",
				Columns:    []*schema.Column{GradesColumns[12]},
				RefColumns: []*schema.Column{GradersColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "grades_traces_grades",
				Columns:    []*schema.Column{GradesColumns[13]},
				RefColumns: []*schema.Column{TracesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "grade_grader_id_grading_started_at",
				Unique:  false,
				Columns: []*schema.Column{GradesColumns[12], GradesColumns[8]},
			},
			{
				Name:    "grade_trace_id",
				Unique:  false,
				Columns: []*schema.Column{GradesColumns[13]},
			},
			{
				Name:    "grade_execution_result_id",
				Unique:  false,
				Columns: []*schema.Column{GradesColumns[11]},
			},
		},
	}
	// GradersColumns holds the columns for the "graders" table.
	GradersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "score_type", Type: field.TypeEnum, Enums: []string{"float", "boolean"}},
		{Name: "model", Type: field.TypeString},
		{Name: "temperature", Type: field.TypeFloat64, Nullable: true},
		{Name: "reasoning", Type: field.TypeJSON, Nullable: true},
		{Name: "response_schema", Type: field.TypeJSON, Nullable: true},
		{Name: "max_output_tokens", Type: field.TypeInt},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// GradersTable holds the schema information for the "graders" table.
	GradersTable = &schema.Table{
		Name:       "graders",
		Columns:    GradersColumns,
		PrimaryKey: []*schema.Column{GradersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "graders_projects_graders",
				Columns:    []*schema.Column{GradersColumns[11]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "grader_project_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{GradersColumns[11], GradersColumns[9]},
			},
		},
	}
	// HTTPTracesColumns holds the columns for the "http_traces" table.
	HTTPTracesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "url", Type: field.TypeString},
		{Name: "method", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime},
		{Name: "status_code", Type: field.TypeInt, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "request", Type: field.TypeBytes, Nullable: true},
		{Name: "request_headers", Type: field.TypeJSON, Nullable: true},
		{Name: "response", Type: field.TypeBytes, Nullable: true},
		{Name: "response_headers", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "dedup_hash", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// HTTPTracesTable holds the schema information for the "http_traces" table.
	HTTPTracesTable = &schema.Table{
		Name:       "http_traces",
		Columns:    HTTPTracesColumns,
		PrimaryKey: []*schema.Column{HTTPTracesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "http_traces_projects_http_traces",
				Columns:    []*schema.Column{HTTPTracesColumns[14]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "httptrace_project_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{HTTPTracesColumns[14], HTTPTracesColumns[13]},
			},
			{
				Name:    "httptrace_dedup_hash",
				Unique:  false,
				Columns: []*schema.Column{HTTPTracesColumns[12]},
			},
		},
	}
	// ImplementationsColumns holds the columns for the "implementations" table.
	ImplementationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "version", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString, Size: 2147483647},
		{Name: "model", Type: field.TypeString},
		{Name: "temperature", Type: field.TypeFloat64, Nullable: true},
		{Name: "reasoning", Type: field.TypeJSON, Nullable: true},
		{Name: "tools", Type: field.TypeJSON, Nullable: true},
		{Name: "tool_choice", Type: field.TypeString, Nullable: true},
		{Name: "max_output_tokens", Type: field.TypeInt},
		{Name: "response_schema", Type: field.TypeJSON, Nullable: true},
		{Name: "temp", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// ImplementationsTable holds the schema information for the "implementations" table.
	ImplementationsTable = &schema.Table{
		Name:       "implementations",
		Columns:    ImplementationsColumns,
		PrimaryKey: []*schema.Column{ImplementationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "implementations_tasks_implementations",
				Columns:    []*schema.Column{ImplementationsColumns[12]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "implementation_task_id_version",
				Unique:  false,
				Columns: []*schema.Column{ImplementationsColumns[12], ImplementationsColumns[1]},
			},
			{
				Name:    "implementation_task_id_temp",
				Unique:  false,
				Columns: []*schema.Column{ImplementationsColumns[12], ImplementationsColumns[10]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "project_name",
				Unique:  false,
				Columns: []*schema.Column{ProjectsColumns[1]},
			},
		},
	}
	// TargetTaskMetricsColumns holds the columns for the "target_task_metrics" table.
	TargetTaskMetricsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "best_cost", Type: field.TypeFloat64, Nullable: true},
		{Name: "best_time_ms", Type: field.TypeFloat64, Nullable: true},
		{Name: "last_updated_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString, Unique: true},
	}
	// TargetTaskMetricsTable holds the schema information for the "target_task_metrics" table.
	TargetTaskMetricsTable = &schema.Table{
		Name:       "target_task_metrics",
		Columns:    TargetTaskMetricsColumns,
		PrimaryKey: []*schema.Column{TargetTaskMetricsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "target_task_metrics_tasks_target_metrics",
				Columns:    []*schema.Column{TargetTaskMetricsColumns[4]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// TasksColumns holds the columns for the "tasks" table.
	TasksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "path", Type: field.TypeString, Nullable: true},
		{Name: "response_schema", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
		{Name: "production_version_id", Type: field.TypeString, Nullable: true},
	}
	// TasksTable holds the schema information for the "tasks" table.
	TasksTable = &schema.Table{
		Name:       "tasks",
		Columns:    TasksColumns,
		PrimaryKey: []*schema.Column{TasksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "tasks_projects_tasks",
				Columns:    []*schema.Column{TasksColumns[6]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "tasks_implementations_production_version",
				Columns:    []*schema.Column{TasksColumns[7]},
				RefColumns: []*schema.Column{ImplementationsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "task_project_id_path",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[6], TasksColumns[3]},
			},
			{
				Name:    "task_project_id_name",
				Unique:  false,
				Columns: []*schema.Column{TasksColumns[6], TasksColumns[1]},
			},
		},
	}
	// TestCasesColumns holds the columns for the "test_cases" table.
	TestCasesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "arguments", Type: field.TypeJSON},
		{Name: "expected_output", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "task_id", Type: field.TypeString},
	}
	// TestCasesTable holds the schema information for the "test_cases" table.
	TestCasesTable = &schema.Table{
		Name:       "test_cases",
		Columns:    TestCasesColumns,
		PrimaryKey: []*schema.Column{TestCasesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "test_cases_tasks_test_cases",
				Columns:    []*schema.Column{TestCasesColumns[5]},
				RefColumns: []*schema.Column{TasksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "testcase_task_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TestCasesColumns[5], TestCasesColumns[4]},
			},
		},
	}
	// TracesColumns holds the columns for the "traces" table.
	TracesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "model", Type: field.TypeString},
		{Name: "path", Type: field.TypeString, Nullable: true},
		{Name: "input_items", Type: field.TypeJSON},
		{Name: "output_items", Type: field.TypeJSON, Nullable: true},
		{Name: "tools", Type: field.TypeJSON, Nullable: true},
		{Name: "response_schema", Type: field.TypeJSON, Nullable: true},
		{Name: "temperature", Type: field.TypeFloat64, Nullable: true},
		{Name: "max_tokens", Type: field.TypeInt, Nullable: true},
		{Name: "finish_reason", Type: field.TypeString, Nullable: true},
		{Name: "prompt_tokens", Type: field.TypeInt, Default: 0},
		{Name: "completion_tokens", Type: field.TypeInt, Default: 0},
		{Name: "cached_tokens", Type: field.TypeInt, Default: 0},
		{Name: "reasoning_tokens", Type: field.TypeInt, Default: 0},
		{Name: "total_tokens", Type: field.TypeInt, Default: 0},
		{Name: "system_fingerprint", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "prompt_variables", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "http_trace_id", Type: field.TypeString, Unique: true, Nullable: true},
		{Name: "implementation_id", Type: field.TypeString, Nullable: true},
		{Name: "project_id", Type: field.TypeString},
	}
	// TracesTable holds the schema information for the "traces" table.
	TracesTable = &schema.Table{
		Name:       "traces",
		Columns:    TracesColumns,
		PrimaryKey: []*schema.Column{TracesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "traces_http_traces_trace",
				Columns:    []*schema.Column{TracesColumns[21]},
				RefColumns: []*schema.Column{HTTPTracesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "traces_implementations_traces",
				Columns:    []*schema.Column{TracesColumns[22]},
				RefColumns: []*schema.Column{ImplementationsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "traces_projects_traces",
				Columns:    []*schema.Column{TracesColumns[23]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "trace_project_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TracesColumns[23], TracesColumns[20]},
			},
			{
				Name:    "trace_implementation_id",
				Unique:  false,
				Columns: []*schema.Column{TracesColumns[22]},
			},
			{
				Name:    "trace_project_id_model",
				Unique:  false,
				Columns: []*schema.Column{TracesColumns[23], TracesColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EvaluationsTable,
		EvaluationConfigsTable,
		ExecutionResultsTable,
		GradesTable,
		GradersTable,
		HTTPTracesTable,
		ImplementationsTable,
		ProjectsTable,
		TargetTaskMetricsTable,
		TasksTable,
		TestCasesTable,
		TracesTable,
	}
)

func init() {
	EvaluationsTable.ForeignKeys[0].RefTable = ImplementationsTable
	EvaluationsTable.ForeignKeys[1].RefTable = TasksTable
	EvaluationConfigsTable.ForeignKeys[0].RefTable = TasksTable
	ExecutionResultsTable.ForeignKeys[0].RefTable = EvaluationsTable
	ExecutionResultsTable.ForeignKeys[1].RefTable = ImplementationsTable
	ExecutionResultsTable.ForeignKeys[2].RefTable = TasksTable
	ExecutionResultsTable.ForeignKeys[3].RefTable = TestCasesTable
	GradesTable.ForeignKeys[0].RefTable = ExecutionResultsTable
	GradesTable.ForeignKeys[1].RefTable = GradersTable
	GradesTable.ForeignKeys[2].RefTable = TracesTable
	GradersTable.ForeignKeys[0].RefTable = ProjectsTable
	HTTPTracesTable.ForeignKeys[0].RefTable = ProjectsTable
	HTTPTracesTable.Annotation = &entsql.Annotation{
		Table: "http_traces",
	}
	ImplementationsTable.ForeignKeys[0].RefTable = TasksTable
	TargetTaskMetricsTable.ForeignKeys[0].RefTable = TasksTable
	TargetTaskMetricsTable.Annotation = &entsql.Annotation{
		Table: "target_task_metrics",
	}
	TasksTable.ForeignKeys[0].RefTable = ProjectsTable
	TasksTable.ForeignKeys[1].RefTable = ImplementationsTable
	TestCasesTable.ForeignKeys[0].RefTable = TasksTable
	TracesTable.ForeignKeys[0].RefTable = HTTPTracesTable
	TracesTable.ForeignKeys[1].RefTable = ImplementationsTable
	TracesTable.ForeignKeys[2].RefTable = ProjectsTable
}
