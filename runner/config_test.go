package runner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseConfigFile(t *testing.T) {
	t.Parallel()

	tempDir := createTempDir(t, "config_test")
	path := filepath.Join(tempDir, ".fixpoint.yaml")
	content := `name: fixpoint
formatter: ["clang-format", "--style=file"]
max_iterations: 5
extensions: [".c", ".h"]
diagnose_dir: diag
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	config, err := ParseConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "fixpoint", config.Name)
	assert.Equal(t, []string{"clang-format", "--style=file"}, config.Formatter)
	assert.Equal(t, 5, config.MaxIterations)
	assert.Equal(t, []string{".c", ".h"}, config.Extensions)
	assert.Equal(t, "diag", config.DiagnoseDir)
}

func TestParseConfigFileMissing(t *testing.T) {
	t.Parallel()

	_, err := ParseConfigFile(filepath.Join(createTempDir(t, "config_test"), "nope.yaml"))
	assert.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestDefaultConfigRoundTrip(t *testing.T) {
	t.Parallel()

	d, err := yaml.Marshal(DefaultConfig())
	require.NoError(t, err)

	tempDir := createTempDir(t, "config_test")
	path := filepath.Join(tempDir, ".fixpoint.yaml")
	require.NoError(t, os.WriteFile(path, d, 0o644))

	config, err := ParseConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}
