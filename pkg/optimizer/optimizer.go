// Package optimizer runs the iterative improvement loop: an LLM proposes
// implementation variants, each variant is evaluated, and the scores feed
// back into the next proposal.
package optimizer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/ent/executionresult"
	entgrade "github.com/promptlens/promptlens/ent/grade"
	"github.com/promptlens/promptlens/pkg/evaluation"
	"github.com/promptlens/promptlens/pkg/llm"
	"github.com/promptlens/promptlens/pkg/pricing"
	"github.com/promptlens/promptlens/pkg/services"
)

const (
	// DefaultModel proposes the variants.
	DefaultModel = "gpt-4o"

	// maxConsecutiveNoImprovements stops the loop once this many iterations
	// in a row fail to beat the incumbent.
	maxConsecutiveNoImprovements = 3

	// maxGenerationAttempts bounds the retries when the proposer returns
	// something unusable (unparseable, schema-invalid, unchanged or a
	// duplicate of an earlier variant).
	maxGenerationAttempts = 3

	// maxFeedbackReasonings caps the grader reasonings echoed back per
	// iteration.
	maxFeedbackReasonings = 5
)

// Changeable implementation fields the proposer may touch.
const (
	FieldPrompt          = "prompt"
	FieldModel           = "model"
	FieldTemperature     = "temperature"
	FieldMaxOutputTokens = "max_output_tokens"
)

// ErrAlreadyRunning is returned when an optimization run is already in
// flight for the task.
var ErrAlreadyRunning = errors.New("optimization already running for task")

// Optimizer drives the improvement loop for one task at a time.
type Optimizer struct {
	client      *ent.Client
	tasks       *services.TaskService
	evaluations *evaluation.Service
	resolver    llm.ClientResolver
	model       string

	mu      sync.Mutex
	running map[string]bool
}

// New creates a new Optimizer. model selects the proposer; empty means
// DefaultModel.
func New(client *ent.Client, tasks *services.TaskService, evaluations *evaluation.Service, resolver llm.ClientResolver, model string) *Optimizer {
	if model == "" {
		model = DefaultModel
	}
	return &Optimizer{
		client:      client,
		tasks:       tasks,
		evaluations: evaluations,
		resolver:    resolver,
		model:       model,
		running:     map[string]bool{},
	}
}

// Request configures one optimization run.
type Request struct {
	TaskID           string
	MaxIterations    int
	ChangeableFields []string
}

// Iteration records one loop turn.
type Iteration struct {
	ImplementationID *string  `json:"implementation_id"`
	EvaluationID     *string  `json:"evaluation_id"`
	Score            *float64 `json:"score"`
	Explanation      *string  `json:"explanation"`
	Improved         bool     `json:"improved"`
}

// Result is the outcome of a run.
type Result struct {
	BestImplementationID string      `json:"best_implementation_id"`
	BestScore            *float64    `json:"best_score"`
	IterationsRun        int         `json:"iterations_run"`
	Iterations           []Iteration `json:"iterations"`
}

// proposal is the JSON shape the proposer must return.
type proposal struct {
	Explanation     string   `json:"explanation"`
	Prompt          *string  `json:"prompt"`
	Model           *string  `json:"model"`
	Temperature     *float64 `json:"temperature"`
	MaxOutputTokens *int     `json:"max_output_tokens"`
}

// Run executes the loop and returns the best implementation found,
// baseline included.
func (o *Optimizer) Run(ctx context.Context, req Request) (*Result, error) {
	if req.MaxIterations <= 0 {
		return nil, services.NewValidationError("max_iterations", "must be positive")
	}
	fields, err := normalizeFields(req.ChangeableFields)
	if err != nil {
		return nil, err
	}

	// Single writer per task: concurrent runs would race on the version
	// line and on target metrics.
	o.mu.Lock()
	if o.running[req.TaskID] {
		o.mu.Unlock()
		return nil, ErrAlreadyRunning
	}
	o.running[req.TaskID] = true
	o.mu.Unlock()
	defer func() {
		o.mu.Lock()
		delete(o.running, req.TaskID)
		o.mu.Unlock()
	}()

	best, bestScore, err := o.loadBaseline(ctx, req.TaskID)
	if err != nil {
		return nil, err
	}
	if bestScore == nil {
		// No scored history yet; evaluate the baseline so improvements
		// have something to beat.
		ev, err := o.evaluations.Evaluate(ctx, best.ID)
		if err != nil {
			return nil, err
		}
		scores, err := o.evaluations.ComputeScores(ctx, ev)
		if err != nil {
			return nil, err
		}
		bestScore = scores.FinalScore
	}

	client, err := o.resolver.ClientFor(o.model)
	if err != nil {
		return nil, err
	}
	schema := proposalSchema(fields)

	// Conversation state is per run; nothing carries over between runs.
	conversation := []llm.Message{}
	seen := map[string]bool{variantSignature(best): true}

	result := &Result{BestImplementationID: best.ID, BestScore: bestScore}
	noImprovements := 0

	for i := 0; i < req.MaxIterations; i++ {
		result.IterationsRun = i + 1

		prop, raw, err := o.propose(ctx, client, schema, fields, best, bestScore, conversation, seen)
		if err != nil {
			slog.Warn("Variant generation failed", "task_id", req.TaskID, "iteration", i, "error", err)
			result.Iterations = append(result.Iterations, Iteration{})
			noImprovements++
			if noImprovements >= maxConsecutiveNoImprovements {
				break
			}
			continue
		}
		conversation = append(conversation, llm.Message{Role: "assistant", Content: raw})

		variant, err := o.persistVariant(ctx, best, prop, fields)
		if err != nil {
			return nil, err
		}
		seen[variantSignature(variant)] = true

		ev, err := o.evaluations.Evaluate(ctx, variant.ID)
		if err != nil {
			return nil, err
		}
		scores, err := o.evaluations.ComputeScores(ctx, ev)
		if err != nil {
			return nil, err
		}

		improved := scores.FinalScore != nil && (bestScore == nil || *scores.FinalScore > *bestScore)
		result.Iterations = append(result.Iterations, Iteration{
			ImplementationID: &variant.ID,
			EvaluationID:     &ev.ID,
			Score:            scores.FinalScore,
			Explanation:      &prop.Explanation,
			Improved:         improved,
		})

		chosenID := best.ID
		if improved {
			chosenID = variant.ID
		}
		feedback, err := o.feedbackMessage(ctx, variant, ev, scores, improved, chosenID)
		if err != nil {
			return nil, err
		}
		conversation = append(conversation, llm.Message{Role: "user", Content: feedback})

		if improved {
			best = variant
			bestScore = scores.FinalScore
			result.BestImplementationID = best.ID
			result.BestScore = bestScore
			noImprovements = 0
		} else {
			noImprovements++
			if noImprovements >= maxConsecutiveNoImprovements {
				break
			}
		}
	}
	return result, nil
}

// loadBaseline picks the implementation with the highest mean final score
// over its completed evaluations, lowest id on ties. Without any scored
// evaluation it falls back to the production version with a nil score.
func (o *Optimizer) loadBaseline(ctx context.Context, taskID string) (*ent.Implementation, *float64, error) {
	t, err := o.tasks.GetTask(ctx, taskID)
	if err != nil {
		return nil, nil, err
	}
	impls, err := o.tasks.ListImplementations(ctx, taskID)
	if err != nil {
		return nil, nil, err
	}

	var best *ent.Implementation
	var bestScore *float64
	for _, impl := range impls {
		evals, err := o.evaluations.ListEvaluations(ctx, evaluation.EvaluationFilter{ImplementationID: &impl.ID})
		if err != nil {
			return nil, nil, err
		}
		var finals []float64
		for _, ev := range evals {
			scores, err := o.evaluations.ComputeScores(ctx, ev)
			if err != nil {
				return nil, nil, err
			}
			if scores.FinalScore != nil {
				finals = append(finals, *scores.FinalScore)
			}
		}
		avg, ok := pricing.Mean(finals)
		if !ok {
			continue
		}
		if bestScore == nil || avg > *bestScore || (avg == *bestScore && impl.ID < best.ID) {
			best = impl
			score := avg
			bestScore = &score
		}
	}
	if best != nil {
		return best, bestScore, nil
	}

	if t.ProductionVersionID == nil {
		return nil, nil, services.NewBadRequestError("task %s has no production version to optimize", taskID)
	}
	impl, err := o.tasks.GetImplementation(ctx, *t.ProductionVersionID)
	if err != nil {
		return nil, nil, err
	}
	return impl, nil, nil
}

// propose asks the model for the next variant, retrying over unusable
// answers.
func (o *Optimizer) propose(ctx context.Context, client llm.Client, schema map[string]interface{}, fields []string, best *ent.Implementation, bestScore *float64, conversation []llm.Message, seen map[string]bool) (*proposal, string, error) {
	system := o.systemPrompt(fields, best, bestScore)
	validator := gojsonschema.NewGoLoader(schema)

	var lastErr error
	for attempt := 0; attempt < maxGenerationAttempts; attempt++ {
		resp, err := client.Complete(ctx, llm.Request{
			Model:          o.model,
			SystemPrompt:   system,
			Messages:       conversation,
			ResponseSchema: schema,
		})
		if err != nil {
			lastErr = err
			continue
		}

		res, err := gojsonschema.Validate(validator, gojsonschema.NewStringLoader(resp.Text))
		if err != nil {
			lastErr = fmt.Errorf("proposal is not valid JSON: %w", err)
			continue
		}
		if !res.Valid() {
			lastErr = fmt.Errorf("proposal violates schema: %v", res.Errors())
			continue
		}

		var prop proposal
		if err := json.Unmarshal([]byte(resp.Text), &prop); err != nil {
			lastErr = fmt.Errorf("failed to decode proposal: %w", err)
			continue
		}
		if !prop.changesAnything(best) {
			lastErr = fmt.Errorf("proposal changes no field")
			continue
		}
		if seen[prop.signature(best)] {
			lastErr = fmt.Errorf("proposal duplicates an earlier variant")
			continue
		}
		return &prop, resp.Text, nil
	}
	return nil, "", lastErr
}

func (o *Optimizer) systemPrompt(fields []string, best *ent.Implementation, bestScore *float64) string {
	var b strings.Builder
	b.WriteString("You are tuning an LLM task implementation. Propose exactly one variant per turn as a JSON object.\n\n")
	b.WriteString("You may change only these fields: " + strings.Join(fields, ", ") + ".\n")
	b.WriteString("Keep every {{variable}} placeholder of the prompt intact.\n\n")
	b.WriteString("Current best implementation:\n")
	fmt.Fprintf(&b, "prompt: %s\n", best.Prompt)
	fmt.Fprintf(&b, "model: %s\n", best.Model)
	if best.Temperature != nil {
		fmt.Fprintf(&b, "temperature: %g\n", *best.Temperature)
	}
	fmt.Fprintf(&b, "max_output_tokens: %d\n", best.MaxOutputTokens)
	if bestScore != nil {
		fmt.Fprintf(&b, "score: %.4f\n", *bestScore)
	} else {
		b.WriteString("score: not yet evaluated\n")
	}
	return b.String()
}

// feedbackMessage summarizes an evaluated variant for the proposer: its
// version, aggregates, per-grader scores with the most telling reasonings,
// and which implementation is the incumbent after this turn.
func (o *Optimizer) feedbackMessage(ctx context.Context, variant *ent.Implementation, ev *ent.Evaluation, scores evaluation.ComputedScores, improved bool, chosenID string) (string, error) {
	var b strings.Builder
	if scores.FinalScore != nil {
		fmt.Fprintf(&b, "Variant %s scored %.4f.", variant.Version, *scores.FinalScore)
	} else {
		fmt.Fprintf(&b, "Variant %s produced no score.", variant.Version)
	}
	if improved {
		b.WriteString(" This is the new best.")
	} else {
		b.WriteString(" This did not beat the current best.")
	}
	fmt.Fprintf(&b, "\nversion: %s", variant.Version)
	if scores.FinalScore != nil {
		fmt.Fprintf(&b, "\nfinal_score: %.4f", *scores.FinalScore)
	}
	if ev.QualityScore != nil {
		fmt.Fprintf(&b, "\nquality: %.4f", *ev.QualityScore)
	}
	if ev.AvgCost != nil {
		fmt.Fprintf(&b, "\navg_cost: %.6f", *ev.AvgCost)
	}
	if ev.AvgExecutionTimeMs != nil {
		fmt.Fprintf(&b, "\navg_execution_time_ms: %.1f", *ev.AvgExecutionTimeMs)
	}
	if scores.CostEfficiency != nil {
		fmt.Fprintf(&b, "\ncost efficiency: %.4f", *scores.CostEfficiency)
	}
	if scores.TimeEfficiency != nil {
		fmt.Fprintf(&b, "\ntime efficiency: %.4f", *scores.TimeEfficiency)
	}

	if len(ev.GraderScores) > 0 {
		ids := make([]string, 0, len(ev.GraderScores))
		for id := range ev.GraderScores {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		b.WriteString("\n\nGrader scores:")
		for _, id := range ids {
			fmt.Fprintf(&b, "\n- %s: %.4f", id, ev.GraderScores[id])
		}
	}

	reasonings, err := o.graderReasonings(ctx, ev.ID)
	if err != nil {
		return "", err
	}
	if len(reasonings) > 0 {
		b.WriteString("\n\nGrader feedback:")
		for _, r := range reasonings {
			b.WriteString("\n- " + r)
		}
	}
	fmt.Fprintf(&b, "\n\nchosen_implementation_id: %s", chosenID)
	b.WriteString("\nPropose the next variant.")
	return b.String(), nil
}

// graderReasonings returns up to maxFeedbackReasonings grade reasonings for
// an evaluation, highest score first, unscored last.
func (o *Optimizer) graderReasonings(ctx context.Context, evaluationID string) ([]string, error) {
	grades, err := o.client.Grade.Query().
		Where(entgrade.HasExecutionResultWith(executionresult.EvaluationID(evaluationID))).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query grades: %w", err)
	}

	type scored struct {
		score     *float64
		reasoning string
	}
	var items []scored
	for _, g := range grades {
		if g.Reasoning == nil || *g.Reasoning == "" {
			continue
		}
		item := scored{reasoning: *g.Reasoning}
		if g.ScoreFloat != nil {
			item.score = g.ScoreFloat
		} else if g.ScoreBoolean != nil {
			v := 0.0
			if *g.ScoreBoolean {
				v = 1.0
			}
			item.score = &v
		}
		items = append(items, item)
	}
	sort.SliceStable(items, func(i, j int) bool {
		si, sj := items[i].score, items[j].score
		if si == nil {
			return false
		}
		if sj == nil {
			return true
		}
		return *si > *sj
	})

	if len(items) > maxFeedbackReasonings {
		items = items[:maxFeedbackReasonings]
	}
	out := make([]string, len(items))
	for i, item := range items {
		if item.score != nil {
			out[i] = fmt.Sprintf("[%.2f] %s", *item.score, item.reasoning)
		} else {
			out[i] = item.reasoning
		}
	}
	return out, nil
}

// persistVariant stores the proposal as a new minor version of the current
// best's major line.
func (o *Optimizer) persistVariant(ctx context.Context, best *ent.Implementation, prop *proposal, fields []string) (*ent.Implementation, error) {
	in := services.ImplementationInput{
		Prompt:          best.Prompt,
		Model:           best.Model,
		Temperature:     best.Temperature,
		Reasoning:       best.Reasoning,
		Tools:           best.Tools,
		ToolChoice:      best.ToolChoice,
		MaxOutputTokens: best.MaxOutputTokens,
		ResponseSchema:  best.ResponseSchema,
	}
	allowed := map[string]bool{}
	for _, f := range fields {
		allowed[f] = true
	}
	if allowed[FieldPrompt] && prop.Prompt != nil {
		in.Prompt = *prop.Prompt
	}
	if allowed[FieldModel] && prop.Model != nil {
		in.Model = *prop.Model
	}
	if allowed[FieldTemperature] && prop.Temperature != nil {
		in.Temperature = prop.Temperature
	}
	if allowed[FieldMaxOutputTokens] && prop.MaxOutputTokens != nil {
		in.MaxOutputTokens = *prop.MaxOutputTokens
	}
	return o.tasks.CreateImplementation(ctx, best.TaskID, services.MajorOf(best.Version), in)
}

func (p *proposal) changesAnything(best *ent.Implementation) bool {
	if p.Prompt != nil && *p.Prompt != best.Prompt {
		return true
	}
	if p.Model != nil && *p.Model != best.Model {
		return true
	}
	if p.Temperature != nil && (best.Temperature == nil || *p.Temperature != *best.Temperature) {
		return true
	}
	if p.MaxOutputTokens != nil && *p.MaxOutputTokens != best.MaxOutputTokens {
		return true
	}
	return false
}

// signature mirrors variantSignature for a proposal applied on top of best.
func (p *proposal) signature(best *ent.Implementation) string {
	prompt, model, maxTokens := best.Prompt, best.Model, best.MaxOutputTokens
	temperature := best.Temperature
	if p.Prompt != nil {
		prompt = *p.Prompt
	}
	if p.Model != nil {
		model = *p.Model
	}
	if p.Temperature != nil {
		temperature = p.Temperature
	}
	if p.MaxOutputTokens != nil {
		maxTokens = *p.MaxOutputTokens
	}
	return signature(prompt, model, temperature, maxTokens)
}

func variantSignature(impl *ent.Implementation) string {
	return signature(impl.Prompt, impl.Model, impl.Temperature, impl.MaxOutputTokens)
}

func signature(prompt, model string, temperature *float64, maxTokens int) string {
	temp := "nil"
	if temperature != nil {
		temp = fmt.Sprintf("%g", *temperature)
	}
	return fmt.Sprintf("%s|%s|%s|%d", prompt, model, temp, maxTokens)
}

// proposalSchema builds the restricted response schema for the allowed
// fields. The model enum pins proposals to models with known pricing.
func proposalSchema(fields []string) map[string]interface{} {
	properties := map[string]interface{}{
		"explanation": map[string]interface{}{"type": "string"},
	}
	for _, f := range fields {
		switch f {
		case FieldPrompt:
			properties[FieldPrompt] = map[string]interface{}{
				"type":      "string",
				"minLength": 1,
			}
		case FieldModel:
			models := pricing.AvailableModels()
			enum := make([]interface{}, len(models))
			for i, m := range models {
				enum[i] = m
			}
			properties[FieldModel] = map[string]interface{}{
				"type": "string",
				"enum": enum,
			}
		case FieldTemperature:
			properties[FieldTemperature] = map[string]interface{}{
				"type":    "number",
				"minimum": 0,
				"maximum": 1,
			}
		case FieldMaxOutputTokens:
			properties[FieldMaxOutputTokens] = map[string]interface{}{
				"type":    "integer",
				"minimum": 1,
			}
		}
	}
	return map[string]interface{}{
		"type":                 "object",
		"properties":           properties,
		"required":             []interface{}{"explanation"},
		"additionalProperties": false,
	}
}

func normalizeFields(fields []string) ([]string, error) {
	if len(fields) == 0 {
		return []string{FieldPrompt, FieldModel, FieldTemperature, FieldMaxOutputTokens}, nil
	}
	for _, f := range fields {
		switch f {
		case FieldPrompt, FieldModel, FieldTemperature, FieldMaxOutputTokens:
		default:
			return nil, services.NewValidationError("changeable_fields", fmt.Sprintf("unknown field %q", f))
		}
	}
	return fields, nil
}
