package evaluation

import (
	"context"
	"math"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/ent/targettaskmetrics"
	"github.com/promptlens/promptlens/pkg/services"
)

// ComputedScores are derived at read time from an evaluation's stored
// aggregates, the task's target metrics and the evaluation config. Storing
// only the raw aggregates keeps historical evaluations comparable when the
// targets move.
type ComputedScores struct {
	CostEfficiency *float64 `json:"cost_efficiency"`
	TimeEfficiency *float64 `json:"time_efficiency"`
	FinalScore     *float64 `json:"final_score"`
}

// ComputeScores derives the efficiency ratios and the weighted final score
// for an evaluation.
func (s *Service) ComputeScores(ctx context.Context, ev *ent.Evaluation) (ComputedScores, error) {
	target, err := s.client.TargetTaskMetrics.Query().
		Where(targettaskmetrics.TaskID(ev.TaskID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return ComputedScores{}, err
	}

	cfg, cfgErr := s.configs.GetConfig(ctx, ev.TaskID)
	if cfgErr != nil && cfgErr != services.ErrNotFound {
		return ComputedScores{}, cfgErr
	}
	return DeriveScores(ev, target, cfg), nil
}

// DeriveScores is the pure computation behind ComputeScores. target and cfg
// may be nil.
func DeriveScores(ev *ent.Evaluation, target *ent.TargetTaskMetrics, cfg *ent.EvaluationConfig) ComputedScores {
	var out ComputedScores
	if target != nil {
		out.CostEfficiency = efficiency(target.BestCost, ev.AvgCost)
		out.TimeEfficiency = efficiency(target.BestTimeMs, ev.AvgExecutionTimeMs)
	}

	if ev.QualityScore == nil {
		return out
	}
	if cfg == nil {
		// Quality is all there is to weigh.
		out.FinalScore = ev.QualityScore
		return out
	}

	final := cfg.QualityWeight * *ev.QualityScore
	if out.CostEfficiency != nil {
		final += cfg.CostWeight * *out.CostEfficiency
	}
	if out.TimeEfficiency != nil {
		final += cfg.TimeWeight * *out.TimeEfficiency
	}
	out.FinalScore = &final
	return out
}

// efficiency is min(1, best/actual); a variant at or below the task's best
// scores a full 1.0.
func efficiency(best, actual *float64) *float64 {
	if best == nil || actual == nil || *actual <= 0 {
		return nil
	}
	e := math.Min(1.0, *best / *actual)
	return &e
}
