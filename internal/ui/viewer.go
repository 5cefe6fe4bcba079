package ui

import "kut/internal/domain"

// Viewer displays archived module logs in an interactive TUI
type Viewer interface {
	View(logs []domain.ModuleLog) error
}
