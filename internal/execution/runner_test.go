package execution

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kut/internal/config"
	"kut/internal/domain"
)

// fakePython stands in for the interpreter: it echoes the bootstrap
// configuration and fails the module named test_fail with a traceback on stderr.
const fakePython = `#!/bin/sh
[ "$1" = "-c" ] || { echo "missing -c"; exit 2; }
echo "$KUT_BOOTSTRAP"
echo "EXTRA=$KUT_EXTRA"
case "$KUT_BOOTSTRAP" in
  *'"module":"test_fail"'*)
    echo "Traceback (most recent call last):" >&2
    echo "AssertionError" >&2
    exit 1
    ;;
esac
echo "OK"
`

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake interpreter is a shell script")
	}

	dir := t.TempDir()
	python := filepath.Join(dir, "python")
	require.NoError(t, os.WriteFile(python, []byte(fakePython), 0755))

	cfg := config.New()
	cfg.Python = python
	cfg.Folders = []string{"suiteA"}
	cfg.PythonPath = []string{"/app"}
	cfg.EnvFile = ""
	return cfg
}

func TestRunner_Run_Success(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Verbose = 2

	runner, err := NewRunner(cfg)
	require.NoError(t, err)

	result := runner.Run(context.Background(), domain.Module{Name: "test_ok"})
	require.NoError(t, result.Err)
	assert.Equal(t, 0, result.ExitCode)
	require.NotEmpty(t, result.Lines)

	var got Bootstrap
	require.NoError(t, json.Unmarshal([]byte(result.Lines[0]), &got))
	assert.Equal(t, Bootstrap{Path: []string{"/app", "suiteA"}, LogLevel: "trace", Module: "test_ok"}, got)
	assert.Equal(t, "OK", result.Lines[len(result.Lines)-1])
}

func TestRunner_Run_FailureIsCaptured(t *testing.T) {
	cfg := newTestConfig(t)

	runner, err := NewRunner(cfg)
	require.NoError(t, err)

	result := runner.Run(context.Background(), domain.Module{Name: "test_fail"})
	require.NoError(t, result.Err)
	assert.True(t, result.Launched())
	assert.Equal(t, 1, result.ExitCode)
	assert.Contains(t, result.Lines, "Traceback (most recent call last):")
	assert.Contains(t, result.Lines, "AssertionError")
}

func TestRunner_Run_StartFailure(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.Python = filepath.Join(t.TempDir(), "no-such-python")

	runner, err := NewRunner(cfg)
	require.NoError(t, err)

	result := runner.Run(context.Background(), domain.Module{Name: "test_ok"})
	require.Error(t, result.Err)
	assert.False(t, result.Launched())
	assert.Equal(t, -1, result.ExitCode)
	require.Len(t, result.Lines, 1)
	assert.True(t, strings.HasPrefix(result.Lines[0], "kut: failed to start"))
}

func TestRunner_EnvFile(t *testing.T) {
	cfg := newTestConfig(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("KUT_EXTRA=hello\n"), 0644))
	cfg.EnvFile = envFile

	runner, err := NewRunner(cfg)
	require.NoError(t, err)

	result := runner.Run(context.Background(), domain.Module{Name: "test_ok"})
	assert.Contains(t, result.Lines, "EXTRA=hello")
}

func TestNewRunner_MissingEnvFileIsIgnored(t *testing.T) {
	cfg := newTestConfig(t)
	cfg.EnvFile = filepath.Join(t.TempDir(), "absent.env")

	_, err := NewRunner(cfg)
	assert.NoError(t, err)
}

func TestBootstrap(t *testing.T) {
	cfg := config.New()
	cfg.Folders = []string{"b"}
	cfg.PythonPath = []string{"a"}
	cfg.Verbose = 1

	env, err := NewBootstrap(cfg, `test_x"; import os`).EnvVar()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(env, config.BootstrapEnv+"="))

	var got Bootstrap
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(env, config.BootstrapEnv+"=")), &got))
	assert.Equal(t, []string{"a", "b"}, got.Path)
	assert.Equal(t, "debug", got.LogLevel)
	assert.Equal(t, `test_x"; import os`, got.Module)

	empty, err := Bootstrap{Module: "test_y"}.EnvVar()
	require.NoError(t, err)
	assert.Contains(t, empty, `"path":[]`)
}

func TestProgram(t *testing.T) {
	program := Program()
	assert.Contains(t, program, config.BootstrapEnv)
	assert.Contains(t, program, "loadTestsFromName")
	assert.Contains(t, program, "TextTestRunner(verbosity=0)")
	assert.Contains(t, program, `Config.set("kivy", "log_level"`)
}
