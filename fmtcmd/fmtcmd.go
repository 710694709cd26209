// Package fmtcmd adapts an external formatter command into a fixpoint
// transformation and prepares file content for analysis.
package fmtcmd

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/gnoverse/fixpoint"
)

// Command wraps an external formatter invocation as a transformation. Each
// application feeds the current text on stdin and reads the formatted text
// from stdout. A non-zero exit aborts the analysis.
func Command(name string, args ...string) fixpoint.Func {
	return func(current string) (string, error) {
		cmd := exec.Command(name, args...)
		cmd.Stdin = strings.NewReader(current)

		var stdout, stderr bytes.Buffer
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr

		if err := cmd.Run(); err != nil {
			if msg := strings.TrimSpace(stderr.String()); msg != "" {
				return "", fmt.Errorf("running %s: %w: %s", name, err, msg)
			}
			return "", fmt.Errorf("running %s: %w", name, err)
		}
		return stdout.String(), nil
	}
}

// ToUnix normalizes Windows and legacy Mac line endings to \n. Analysis
// always runs on unix line endings so that a formatter's line ending
// policy does not register as a failure to converge.
func ToUnix(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
