package calibration

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/lox/pokercore/internal/engine"
	"github.com/lox/pokercore/internal/infoset"
	"github.com/lox/pokercore/internal/rollout"
)

// stageB refines one boundary seed's score with an ordered-deck rollout
// evaluator, run from the initial decision point of a fresh challenge
// session at the provisional target score. ctx must carry calibration
// privilege; it is threaded through explicitly rather than captured so
// every ordered-deck call site stays visible at a glance.
func stageB(ctx infoset.Context, ev *rollout.Evaluator, seed uint64, provisionalTarget int) SeedResult {
	target := provisionalTarget
	state, _ := engine.Start(seed, engine.Challenge, "", &target)

	best := ev.Best(ctx, state, seed)

	hits := 0
	for _, score := range best.Scores {
		if score >= float64(target) {
			hits++
		}
	}
	successRate := 0.0
	if len(best.Scores) > 0 {
		successRate = float64(hits) / float64(len(best.Scores))
	}

	return SeedResult{
		Seed:              seed,
		StageBEVMean:      best.MeanEV,
		StageBEVStd:       best.StdDev,
		StageBSuccessRate: successRate,
		RefinedByStageB:   true,
	}
}

// RefineBoundarySeeds runs stage 2 across every boundary seed in
// parallel, bounded by the errgroup's default goroutine-per-task
// scheduling. One seed's rollout failure does not cancel the others;
// rollout.Evaluator.Best always returns a best-effort result rather
// than an error.
func RefineBoundarySeeds(ctx infoset.Context, cfg rollout.Config, seeds []uint64, provisionalTarget int) ([]SeedResult, error) {
	ev := rollout.NewEvaluator(ctx, cfg)

	results := make([]SeedResult, len(seeds))
	g, _ := errgroup.WithContext(context.Background())
	for i, seed := range seeds {
		i, seed := i, seed
		g.Go(func() error {
			results[i] = stageB(ctx, ev, seed, provisionalTarget)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
