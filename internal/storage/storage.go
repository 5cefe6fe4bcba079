package storage

import "kut/internal/domain"

// Storage archives the captured output of a run (e.g. for the logs viewer).
// Only plain text is stored; pass/fail is always recomputed from the text.
type Storage interface {
	Save(results []domain.ModuleResult) error
	Load() ([]domain.ModuleLog, error)
}
