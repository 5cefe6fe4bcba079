package execution

import (
	"context"
	"time"

	"kut/internal/domain"
	"kut/internal/parser"
)

var _ Executor = (*SequentialExecutor)(nil)

// SequentialExecutor runs modules one after another, each in its own process.
// Kivy cannot reinitialise its window and event loop inside one interpreter,
// so every module gets a fresh child and the next one starts only after the
// previous child has exited.
type SequentialExecutor struct {
	runner   ModuleRunner
	progress Progress
}

// NewSequentialExecutor creates a new SequentialExecutor
func NewSequentialExecutor(runner ModuleRunner) *SequentialExecutor {
	return &SequentialExecutor{runner: runner}
}

// SetProgress sets the progress reporter for the executor
func (e *SequentialExecutor) SetProgress(progress Progress) {
	e.progress = progress
}

// Execute runs every module exactly once, in order. The returned results are
// index aligned with modules.
func (e *SequentialExecutor) Execute(ctx context.Context, modules []domain.Module) ([]domain.ModuleResult, time.Duration, error) {
	startTime := time.Now()
	results := make([]domain.ModuleResult, 0, len(modules))

	var passed, failed int
	for _, module := range modules {
		result := e.runner.Run(ctx, module)
		results = append(results, result)

		if !result.Launched() || parser.HasTraceback(result.Lines) {
			failed++
		} else {
			passed++
		}
		if e.progress != nil {
			e.progress.Update(passed, failed)
		}
	}

	if e.progress != nil {
		e.progress.Finish()
	}
	return results, time.Since(startTime), nil
}
