// Package calibration implements the offline, three-stage seed
// bucketing pipeline: stage 1 cheap heuristic bucketing, stage 2
// ordered-deck EV refinement for boundary seeds, and stage 3 an
// order-unknown trace gate, with batch-oriented, append-only JSONL
// result merging driven by a kong-based CLI over a staged run.
package calibration

import "github.com/lox/pokercore/internal/engine"

// SeedResult is the per-seed aggregate row written to
// calibration_results.jsonl.
type SeedResult struct {
	Seed              uint64  `json:"seed"`
	Mode              string  `json:"mode"`
	StageAScore       int     `json:"stage_a_score"`
	StageBEVMean      float64 `json:"stage_b_ev_mean,omitempty"`
	StageBEVStd       float64 `json:"stage_b_ev_std,omitempty"`
	StageBSuccessRate float64 `json:"stage_b_success_rate,omitempty"`
	RefinedByStageB   bool    `json:"refined_by_stage_b"`
	Tier              string  `json:"tier"`
	TargetScore       *int    `json:"target_score,omitempty"`
}

// TraceOutcome is one row of trace_pass.jsonl or trace_fail.jsonl.
type TraceOutcome struct {
	Seed          uint64 `json:"seed"`
	Tier          string `json:"tier"`
	InfoSet       string `json:"info_set"`
	StepsExecuted int    `json:"steps_executed"`
	RealizedScore int    `json:"realized_score,omitempty"`
	Passed        bool   `json:"passed"`
	FailureReason string `json:"failure_reason,omitempty"`
}

// ManifestEntry is one seed list with its target score for a (mode, tier) bucket.
type ManifestEntry struct {
	Tier        string   `json:"tier"`
	TargetScore *int     `json:"target_score,omitempty"`
	Seeds       []uint64 `json:"seeds"`
}

// SeedManifest is the full calibration output consumed by the HTTP
// adapter's session start path.
type SeedManifest struct {
	Practice []ManifestEntry `json:"practice"`
	Challenge []ManifestEntry `json:"challenge"`
}

// RunSummary is summary.json: run metadata recorded for reproducibility.
type RunSummary struct {
	RunID            string         `json:"run_id"`
	EngineVersion    string         `json:"engine_version"`
	PRNGIdentifier   string         `json:"prng_identifier"`
	K                int            `json:"k"`
	R                int            `json:"r"`
	SeedCount        int            `json:"seed_count"`
	QuantilePolicy   string         `json:"quantile_policy"`
	TierCutoffs      map[string]int `json:"tier_cutoffs"`
	CountsPerTier    map[string]int `json:"counts_per_tier"`
	TracePassRate    float64        `json:"trace_pass_rate"`
	TraceFailRate    float64        `json:"trace_fail_rate"`
}

// playHeuristicGame plays one full game to terminal from the given
// seed using the heuristic policy end-to-end, recording the model
// score of each PLAY. Used by stage 1 (ordered draws happen for real,
// policy stays blinded to them); stage 3 does not call it and drives
// the engine from policy.Trace instead.
func playHeuristicGame(seed uint64, mode engine.Mode, tier string, targetScore *int) (finalState *engine.GameState, modelScore int, history []engine.Action) {
	state, _ := engine.Start(seed, mode, tier, targetScore)
	return continueHeuristicGame(state)
}
