package parser

import "kut/internal/domain"

// Parser classifies captured module output into error records
type Parser interface {
	ParseErrors(moduleIndex int, result domain.ModuleResult) []domain.ErrorRecord
}
