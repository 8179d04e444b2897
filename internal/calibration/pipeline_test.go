package calibration

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokercore/internal/engine"
	"github.com/lox/pokercore/internal/infoset"
	"github.com/lox/pokercore/internal/rollout"
)

func TestPipelineRunWritesAllArtifacts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	seeds := []uint64{1, 2, 3, 4, 5, 6, 7, 8, 9}

	p := NewPipeline(zerolog.Nop(), infoset.Calibration(), rollout.Config{K: 2, R: 4}, dir, "test-run")
	err := p.Run(seeds, engine.Practice)
	require.NoError(t, err)

	runDir := RunDir(dir, "test-run")
	for _, name := range []string{"calibration_results.jsonl", "seed_manifest.json", "summary.json"} {
		assert.FileExists(t, filepath.Join(runDir, name))
	}
}

func TestNewPipelinePanicsOutsideCalibrationContext(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewPipeline(zerolog.Nop(), infoset.Runtime(), rollout.DefaultConfig, t.TempDir(), "bad-run")
	})
}
