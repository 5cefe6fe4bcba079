package discovery

import (
	"path/filepath"
	"strings"

	"kut/internal/domain"
)

// Filter filters test modules by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps the modules whose name or file name matches pattern.
// Supports patterns like "test_draw*" or "*text*"; a pattern without
// wildcards is a substring match.
func (f *Filter) FilterByName(modules []domain.Module, pattern string) []domain.Module {
	if pattern == "" {
		return modules
	}

	var filtered []domain.Module
	for _, m := range modules {
		if matchName(m.Name, pattern) || matchName(m.Name+ModuleSuffix, pattern) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

func matchName(name, pattern string) bool {
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if strings.Contains(pattern, "*") {
		hasPart := false
		for _, part := range strings.Split(pattern, "*") {
			if part == "" {
				continue
			}
			hasPart = true
			if !strings.Contains(name, part) {
				return false
			}
		}
		return hasPart
	}

	if !strings.Contains(pattern, "?") {
		return strings.Contains(name, pattern)
	}
	return false
}
