package calibration

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// RunDir returns the per-run artifact directory for persisted
// calibration output: artifacts/pipeline/<run_id>/.
func RunDir(artifactsRoot, runID string) string {
	return filepath.Join(artifactsRoot, "pipeline", runID)
}

// writeJSONL appends rows to path as one JSON object per line, creating
// the file and its parent directory if needed. Used for
// calibration_results.jsonl, trace_pass.jsonl, and trace_fail.jsonl,
// all of which the pipeline builds incrementally across seed batches.
func writeJSONL(path string, rows []any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("calibration: create artifact dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("calibration: open %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	enc := json.NewEncoder(w)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			return fmt.Errorf("calibration: encode row in %s: %w", path, err)
		}
	}
	return w.Flush()
}

// WriteCalibrationResults appends SeedResult rows to
// calibration_results.jsonl under dir.
func WriteCalibrationResults(dir string, rows []SeedResult) error {
	boxed := make([]any, len(rows))
	for i, r := range rows {
		boxed[i] = r
	}
	return writeJSONL(filepath.Join(dir, "calibration_results.jsonl"), boxed)
}

// WriteTraceOutcomes appends each outcome to trace_pass.jsonl or
// trace_fail.jsonl under dir, according to its Passed field.
func WriteTraceOutcomes(dir string, outcomes []TraceOutcome) error {
	var pass, fail []any
	for _, o := range outcomes {
		if o.Passed {
			pass = append(pass, o)
		} else {
			fail = append(fail, o)
		}
	}
	if len(pass) > 0 {
		if err := writeJSONL(filepath.Join(dir, "trace_pass.jsonl"), pass); err != nil {
			return err
		}
	}
	if len(fail) > 0 {
		if err := writeJSONL(filepath.Join(dir, "trace_fail.jsonl"), fail); err != nil {
			return err
		}
	}
	return nil
}

// WriteSeedManifest writes seed_manifest.json under dir, overwriting
// any previous manifest from the same run.
func WriteSeedManifest(dir string, manifest SeedManifest) error {
	return writeJSONFile(filepath.Join(dir, "seed_manifest.json"), manifest)
}

// LoadSeedManifest reads a seed_manifest.json previously written by
// WriteSeedManifest. cmd/apiserver calls this once at startup; the
// result is held read-only for the life of the process.
func LoadSeedManifest(path string) (SeedManifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return SeedManifest{}, fmt.Errorf("calibration: read %s: %w", path, err)
	}
	var manifest SeedManifest
	if err := json.Unmarshal(b, &manifest); err != nil {
		return SeedManifest{}, fmt.Errorf("calibration: decode %s: %w", path, err)
	}
	return manifest, nil
}

// WriteRunSummary writes summary.json under dir.
func WriteRunSummary(dir string, summary RunSummary) error {
	return writeJSONFile(filepath.Join(dir, "summary.json"), summary)
}

func writeJSONFile(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("calibration: create artifact dir: %w", err)
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("calibration: marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("calibration: write %s: %w", path, err)
	}
	return nil
}
