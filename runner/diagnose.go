package runner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gnoverse/fixpoint"
)

// Diagnose writes each trace step of a misbehaved result to dir, one file
// per step named <base>.<outcome>.<index>, and returns the written paths
// so users can inspect what the formatter produced on each application.
// Well-behaved results write nothing.
func Diagnose(dir string, result *fixpoint.Result) ([]string, error) {
	if result.WellBehaved() {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating diagnose dir: %w", err)
	}

	base := filepath.Base(result.Subject())
	steps := result.Steps()
	written := make([]string, 0, len(steps))
	for i, step := range steps {
		path := filepath.Join(dir, fmt.Sprintf("%s.%s.%d", base, result.Outcome(), i))
		if err := os.WriteFile(path, []byte(step), 0o644); err != nil {
			return nil, fmt.Errorf("writing step %d: %w", i, err)
		}
		written = append(written, path)
	}
	return written, nil
}
