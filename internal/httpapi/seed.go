package httpapi

import (
	"errors"
	"math/rand"

	"github.com/lox/pokercore/internal/calibration"
	"github.com/lox/pokercore/internal/engine"
)

var errUnknownMode = errors.New("httpapi: unknown mode")

// resolveSeed returns the seed and (for challenge mode) the target
// score to start a session with. An explicit seed from the request is
// used as-is, but its target score in challenge mode still comes from
// the manifest entry for (mode, tier): target_score enforcement must
// not be bypassable by supplying a seed directly. Without an explicit
// seed the adapter samples uniformly from the loaded seed manifest.
func (s *Server) resolveSeed(mode engine.Mode, tier string, explicit *uint64) (uint64, *int, error) {
	pool := s.manifest.Practice
	if mode == engine.Challenge {
		pool = s.manifest.Challenge
	}

	var match *calibration.ManifestEntry
	for i := range pool {
		if pool[i].Tier == tier {
			match = &pool[i]
			break
		}
	}

	if explicit != nil {
		if mode == engine.Challenge && match != nil {
			return *explicit, match.TargetScore, nil
		}
		return *explicit, nil, nil
	}

	if match == nil || len(match.Seeds) == 0 {
		return 0, nil, errors.New("httpapi: no seeds for mode/tier")
	}

	chosen := match.Seeds[rand.Intn(len(match.Seeds))]
	return chosen, match.TargetScore, nil
}
