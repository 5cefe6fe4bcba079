package execution

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"
	"time"

	"github.com/alessio/shellescape"
	"github.com/joho/godotenv"

	"kut/internal/config"
	"kut/internal/domain"
	"kut/internal/logger"
	"kut/internal/parser"
)

var _ ModuleRunner = (*Runner)(nil)

// Runner executes one module in a fresh interpreter
type Runner struct {
	config *config.Config
	extra  []string
}

// NewRunner creates a new Runner. Variables from the configured env file, if
// the file exists, are added to every child environment.
func NewRunner(cfg *config.Config) (*Runner, error) {
	extra, err := loadEnvFile(cfg.EnvFile)
	if err != nil {
		return nil, err
	}
	return &Runner{config: cfg, extra: extra}, nil
}

func loadEnvFile(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}

	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(keys))
	for _, k := range keys {
		env = append(env, k+"="+vars[k])
	}
	logger.Debug("loaded child environment", "file", path, "vars", len(env))
	return env, nil
}

// Run launches the interpreter for module and waits for it to exit.
// A non-zero exit is a normal outcome: the output is captured all the same.
func (r *Runner) Run(ctx context.Context, module domain.Module) domain.ModuleResult {
	result := domain.ModuleResult{Module: module}
	start := time.Now()

	bootstrap, err := NewBootstrap(r.config, module.Name).EnvVar()
	if err != nil {
		return r.startFailure(result, err, start)
	}

	cmd := exec.CommandContext(ctx, r.config.Python, "-c", Program())

	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, r.extra...)
	cmd.Env = append(cmd.Env, bootstrap)

	logger.Debug("launching module",
		"module", module.Name,
		"cmd", commandLine(bootstrap, r.config.Python, "-c", "<bootstrap>"))

	output, err := cmd.CombinedOutput()
	result.Output = output
	result.Duration = time.Since(start)

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		result.ExitCode = 0
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	default:
		return r.startFailure(result, err, start)
	}

	result.Text = parser.Decode(output)
	result.Lines = parser.SplitLines(result.Text)

	logger.Debug("module finished", "module", module.Name, "exit", result.ExitCode, "duration", result.Duration)
	return result
}

func (r *Runner) startFailure(result domain.ModuleResult, err error, start time.Time) domain.ModuleResult {
	logger.Error("failed to start module", "module", result.Module.Name, "python", r.config.Python, "err", err)

	msg := fmt.Sprintf("kut: failed to start %s for %s: %v\n", r.config.Python, result.Module.Name, err)
	result.Output = append(result.Output, msg...)
	result.Err = err
	result.ExitCode = -1
	result.Duration = time.Since(start)
	result.Text = parser.Decode(result.Output)
	result.Lines = parser.SplitLines(result.Text)
	return result
}

func commandLine(args ...string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = shellescape.Quote(a)
	}
	return strings.Join(quoted, " ")
}
