// Package rollout implements the ordered-deck EV evaluator: a
// calibration-only Monte Carlo refinement that reshuffles the actual
// remaining deck many times per candidate action and plays each
// reshuffle out to terminal with the heuristic policy, recording the
// realized terminal score, seeded and repeated the way a simulator
// collects aggregate statistics, merging results in batch-oriented
// fashion.
//
// Construction requires a calibration infoset.Context; attempting to
// build an Evaluator from a runtime context panics.
package rollout

import (
	"math"
	"sort"

	"github.com/lox/pokercore/internal/cards"
	"github.com/lox/pokercore/internal/classify"
	"github.com/lox/pokercore/internal/engine"
	"github.com/lox/pokercore/internal/infoset"
	"github.com/lox/pokercore/internal/policy"
	"github.com/lox/pokercore/internal/rng"
	"github.com/lox/pokercore/internal/scoring"
)

// Config holds the rollout sizing knobs.
type Config struct {
	K int // top-K candidates considered per decision point
	R int // rollouts per candidate
}

// DefaultConfig picks conservative magnitudes (K~=10, R in the
// 64-256 range; 128 is its geometric midpoint).
var DefaultConfig = Config{K: 10, R: 128}

// Evaluator runs ordered-deck rollouts. It must never be constructed
// on a runtime code path.
type Evaluator struct {
	cfg Config
}

// NewEvaluator constructs a rollout evaluator. ctx must carry
// calibration privilege.
func NewEvaluator(ctx infoset.Context, cfg Config) *Evaluator {
	infoset.RequireCalibration(ctx)
	return &Evaluator{cfg: cfg}
}

// CandidateResult is one candidate action's rollout aggregate. Scores
// holds every individual rollout's realized terminal score, in rollout
// order, so a caller can compute a success rate against any target
// without re-running the rollouts.
type CandidateResult struct {
	Action   engine.Action
	MeanEV   float64
	StdDev   float64
	DiscardN int
	Scores   []float64
}

// Best selects the top-K policy-ranked candidates at state's current
// decision point, rolls each out R times using a fresh reshuffle of
// the actual remaining deck, and returns them ordered best-first:
// mean EV descending, then std dev ascending, then action shape via
// the same ladder policy.Rank already implements for candidates of
// equal EV.
func (e *Evaluator) Best(ctx infoset.Context, state *engine.GameState, rolloutSeedBase uint64) CandidateResult {
	infoset.RequireCalibration(ctx)

	pub := state.PublicView()
	ranked := policy.Rank(pub)
	k := e.cfg.K
	if k > len(ranked) {
		k = len(ranked)
	}

	results := make([]CandidateResult, 0, k)
	for i := 0; i < k; i++ {
		cand := ranked[i]
		scores := e.rolloutCandidate(ctx, state, cand.Action, rolloutSeedBase+uint64(i)*1_000_003)
		mean := average(scores)
		results = append(results, CandidateResult{
			Action:   cand.Action,
			MeanEV:   mean,
			StdDev:   stddev(scores, mean),
			DiscardN: len(cand.Action.Indices) * boolToInt(cand.Action.Type == engine.Discard),
			Scores:   scores,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].MeanEV != results[j].MeanEV {
			return results[i].MeanEV > results[j].MeanEV
		}
		if results[i].StdDev != results[j].StdDev {
			return results[i].StdDev < results[j].StdDev
		}
		return results[i].DiscardN < results[j].DiscardN
	})
	return results[0]
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// rolloutCandidate applies action once on a clone of state, then plays
// out R independently reshuffled continuations of the resulting
// remaining deck to terminal, recording the model-scoring terminal
// score each time: the candidate's own PLAY points plus those of every
// later PLAY. Points scored before state are not included, so the
// value equals the terminal score when state is a game's initial
// decision point. The returned slice has one entry per rollout, in
// rollout order, so callers can derive any aggregate they need
// (mean, std dev, or a success rate against a target) without
// rerunning the rollouts.
func (e *Evaluator) rolloutCandidate(ctx infoset.Context, state *engine.GameState, action engine.Action, seedBase uint64) []float64 {
	base, _, err := engine.Apply(state, action)
	if err != nil {
		return []float64{math.Inf(-1)}
	}

	actionPoints := 0
	if action.Type == engine.Play {
		hand := state.PublicView().Hand
		var selected [5]cards.Card
		for i, idx := range action.Indices {
			selected[i] = hand[idx]
		}
		actionPoints = scoring.ModelPoints(classify.Classify(selected))
	}

	scores := make([]float64, 0, e.cfg.R)
	for r := 0; r < e.cfg.R; r++ {
		scores = append(scores, float64(actionPoints)+e.playOutOnce(ctx, base, seedBase+uint64(r)))
	}
	return scores
}

// playOutOnce reshuffles base's remaining deck with a fresh seed and
// plays to terminal using the heuristic policy for every subsequent
// decision, returning the model score of the PLAYs made during this
// playout.
func (e *Evaluator) playOutOnce(ctx infoset.Context, base *engine.GameState, seed uint64) float64 {
	deck := rng.ShuffleCards(seed, base.PrivilegedView(ctx))
	current := engine.FromPrivileged(ctx, base.Mode(), base.Tier(), base.TargetScore(),
		base.PublicView().Hand, deck,
		base.PublicView().PRemaining, base.PublicView().DRemaining, base.PublicView().ScoreTotal,
		base.History())

	modelScore := 0
	for !current.IsTerminal() {
		pub := current.PublicView()
		rec := policy.Hint(pub)
		if rec.Action.Type == engine.Play {
			var selected [5]cards.Card
			for i, idx := range rec.Action.Indices {
				selected[i] = pub.Hand[idx]
			}
			modelScore += scoring.ModelPoints(classify.Classify(selected))
		}
		next, _, err := engine.Apply(current, rec.Action)
		if err != nil {
			break
		}
		current = next
	}
	return float64(modelScore)
}

func average(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func stddev(xs []float64, mean float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		d := x - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)))
}
