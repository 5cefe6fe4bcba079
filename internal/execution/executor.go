package execution

import (
	"context"
	"time"

	"kut/internal/domain"
)

// Executor executes modules and returns their captured results
type Executor interface {
	Execute(ctx context.Context, modules []domain.Module) ([]domain.ModuleResult, time.Duration, error)
}

// ModuleRunner runs a single module in its own process
type ModuleRunner interface {
	Run(ctx context.Context, module domain.Module) domain.ModuleResult
}

// Progress receives pass/fail counts while modules run
type Progress interface {
	Update(passed, failed int)
	Finish()
}
