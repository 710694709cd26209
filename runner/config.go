package runner

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where the CLI looks for a configuration file when
// none is given.
const DefaultConfigPath = ".fixpoint.yaml"

// Config drives a multi-file convergence check.
type Config struct {
	Name string `yaml:"name"`
	// Formatter is the external formatter command and its arguments. The
	// file content is fed on stdin and the formatted output read from
	// stdout.
	Formatter []string `yaml:"formatter"`
	// MaxIterations bounds the number of formatter applications per file.
	// Zero means the fixpoint default.
	MaxIterations int `yaml:"max_iterations"`
	// Extensions lists the file extensions to check, e.g. [".go"].
	Extensions []string `yaml:"extensions"`
	// DiagnoseDir is where Diagnose writes the trace steps of misbehaved
	// files.
	DiagnoseDir string `yaml:"diagnose_dir"`
}

// DefaultConfig returns the configuration written by `fixpoint init`.
func DefaultConfig() Config {
	return Config{
		Name:        "fixpoint",
		Formatter:   []string{"gofmt"},
		Extensions:  []string{".go"},
		DiagnoseDir: ".fixpoint-diagnose",
	}
}

// ParseConfigFile reads and decodes a yaml configuration file.
func ParseConfigFile(path string) (Config, error) {
	var config Config

	f, err := os.Open(path)
	if err != nil {
		return config, err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(&config); err != nil {
		return config, fmt.Errorf("parsing %s: %w", path, err)
	}
	return config, nil
}
