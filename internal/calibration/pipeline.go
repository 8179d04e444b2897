package calibration

import (
	"github.com/rs/zerolog"

	"github.com/lox/pokercore/internal/engine"
	"github.com/lox/pokercore/internal/infoset"
	"github.com/lox/pokercore/internal/rollout"
)

const (
	EngineVersion  = "pokercore-engine/1"
	PRNGIdentifier = "splitmix64+xoshiro256**"
)

// Pipeline drives the three calibration stages across a batch of seeds
// for a single mode and writes every artifact the run produces. It is
// constructed with an injected logger, runs in one call, and merges
// per-seed results append-only.
type Pipeline struct {
	logger         zerolog.Logger
	ctx            infoset.Context
	rolloutCfg     rollout.Config
	artifactsRoot  string
	runID          string
	quantilePolicy string
}

// NewPipeline constructs a Pipeline. ctx must carry calibration
// privilege — the pipeline is the one runtime-adjacent caller allowed
// to hold it, since stage 2 constructs a rollout.Evaluator.
func NewPipeline(logger zerolog.Logger, ctx infoset.Context, rolloutCfg rollout.Config, artifactsRoot, runID string) *Pipeline {
	infoset.RequireCalibration(ctx)
	return &Pipeline{
		logger:         logger.With().Str("component", "calibration_pipeline").Str("run_id", runID).Logger(),
		ctx:            ctx,
		rolloutCfg:     rolloutCfg,
		artifactsRoot:  artifactsRoot,
		runID:          runID,
		quantilePolicy: QuantilePolicyEqualFrequency,
	}
}

// Run executes stage 1 across every seed, derives tier cutoffs, refines
// boundary seeds with stage 2, gates every seed with stage 3, and
// writes the five output artifacts under RunDir(artifactsRoot, runID).
func (p *Pipeline) Run(seeds []uint64, mode engine.Mode) error {
	dir := RunDir(p.artifactsRoot, p.runID)
	p.logger.Info().Int("seed_count", len(seeds)).Str("mode", mode.String()).Msg("stage 1: baseline heuristic bucketing")

	stageAScores := make(map[uint64]int, len(seeds))
	allScores := make([]int, 0, len(seeds))
	for _, seed := range seeds {
		_, score := StageA(seed)
		stageAScores[seed] = score
		allScores = append(allScores, score)
	}

	loCut, hiCut := TierCutoffs(allScores)
	p.logger.Info().Int("lo_cutoff", loCut).Int("hi_cutoff", hiCut).Msg("stage 1: tier cutoffs computed")

	tierOf := make(map[uint64]string, len(seeds))
	var boundary []uint64
	for _, seed := range seeds {
		tier := AssignTier(stageAScores[seed], loCut, hiCut)
		tierOf[seed] = tier
		if InBoundaryBand(stageAScores[seed], loCut, hiCut) {
			boundary = append(boundary, seed)
		}
	}

	results := make([]SeedResult, 0, len(seeds))
	stageB := make(map[uint64]SeedResult)
	if len(boundary) > 0 {
		p.logger.Info().Int("boundary_seed_count", len(boundary)).Msg("stage 2: ordered-deck EV refinement")
		provisionalTarget := hiCut
		refined, err := RefineBoundarySeeds(p.ctx, p.rolloutCfg, boundary, provisionalTarget)
		if err != nil {
			return err
		}
		for _, r := range refined {
			stageB[r.Seed] = r
		}
	}

	for _, seed := range seeds {
		tier := tierOf[seed]
		target := targetScoreFor(tier, loCut, hiCut, stageB[seed])
		row := SeedResult{
			Seed:        seed,
			Mode:        mode.String(),
			StageAScore: stageAScores[seed],
			Tier:        tier,
			TargetScore: target,
		}
		if refined, ok := stageB[seed]; ok {
			row.StageBEVMean = refined.StageBEVMean
			row.StageBEVStd = refined.StageBEVStd
			row.StageBSuccessRate = refined.StageBSuccessRate
			row.RefinedByStageB = true
		}
		results = append(results, row)
	}

	p.logger.Info().Msg("stage 3: order-unknown trace gate")
	outcomes := make([]TraceOutcome, 0, len(seeds))
	counts := map[string]int{}
	passCount, failCount := 0, 0
	for _, seed := range seeds {
		tier := tierOf[seed]
		counts[tier]++
		var target *int
		for _, r := range results {
			if r.Seed == seed {
				target = r.TargetScore
				break
			}
		}
		outcome := RunTraceGate(seed, mode, tier, target)
		outcomes = append(outcomes, outcome)
		if outcome.Passed {
			passCount++
		} else {
			failCount++
			p.logger.Warn().Uint64("seed", seed).Str("reason", outcome.FailureReason).Msg("seed failed trace gate")
		}
	}

	if err := WriteCalibrationResults(dir, results); err != nil {
		return err
	}
	if err := WriteTraceOutcomes(dir, outcomes); err != nil {
		return err
	}
	if err := WriteSeedManifest(dir, buildManifest(mode, tierOf, results, outcomes)); err != nil {
		return err
	}

	total := passCount + failCount
	summary := RunSummary{
		RunID:          p.runID,
		EngineVersion:  EngineVersion,
		PRNGIdentifier: PRNGIdentifier,
		K:              p.rolloutCfg.K,
		R:              p.rolloutCfg.R,
		SeedCount:      len(seeds),
		QuantilePolicy: p.quantilePolicy,
		TierCutoffs:    map[string]int{"lo": loCut, "hi": hiCut},
		CountsPerTier:  counts,
		TracePassRate:  rate(passCount, total),
		TraceFailRate:  rate(failCount, total),
	}
	if err := WriteRunSummary(dir, summary); err != nil {
		return err
	}

	p.logger.Info().Int("pass", passCount).Int("fail", failCount).Msg("calibration run complete")
	return nil
}

// targetScoreFor derives the challenge target score for a tier: the
// stage-B refined mean when the seed was a boundary seed, otherwise a
// value from the tier cutoffs: loCut for easy, the loCut/hiCut midpoint
// for medium, hiCut for hard. Practice mode never consults this value, but the
// manifest still records it so a seed can move between modes without
// rerunning calibration.
func targetScoreFor(tier string, loCut, hiCut int, refined SeedResult) *int {
	if refined.RefinedByStageB {
		v := int(refined.StageBEVMean)
		return &v
	}
	switch tier {
	case TierEasy:
		v := loCut
		return &v
	case TierMedium:
		v := (loCut + hiCut) / 2
		return &v
	default:
		v := hiCut
		return &v
	}
}

func buildManifest(mode engine.Mode, tierOf map[uint64]string, results []SeedResult, outcomes []TraceOutcome) SeedManifest {
	passed := make(map[uint64]bool, len(outcomes))
	for _, o := range outcomes {
		passed[o.Seed] = o.Passed
	}

	byTier := map[string][]uint64{}
	targetByTier := map[string]*int{}
	for _, r := range results {
		if !passed[r.Seed] {
			continue
		}
		byTier[r.Tier] = append(byTier[r.Tier], r.Seed)
		targetByTier[r.Tier] = r.TargetScore
	}

	var entries []ManifestEntry
	for _, tier := range tierOrder {
		seeds := byTier[tier]
		if len(seeds) == 0 {
			continue
		}
		entry := ManifestEntry{Tier: tier, Seeds: seeds}
		if mode == engine.Challenge {
			entry.TargetScore = targetByTier[tier]
		}
		entries = append(entries, entry)
	}

	if mode == engine.Challenge {
		return SeedManifest{Challenge: entries}
	}
	return SeedManifest{Practice: entries}
}

func rate(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total)
}
