package discovery

import (
	"testing"

	"kut/internal/domain"
)

func modulesNamed(names ...string) []domain.Module {
	modules := make([]domain.Module, len(names))
	for i, n := range names {
		modules[i] = domain.Module{Name: n}
	}
	return modules
}

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()

	tests := []struct {
		name     string
		modules  []string
		pattern  string
		expected int // Expected number of matches
	}{
		{
			name:     "empty pattern returns all",
			modules:  []string{"test_draw", "test_text", "test_button"},
			pattern:  "",
			expected: 3,
		},
		{
			name:     "wildcard pattern matches prefix",
			modules:  []string{"test_draw", "test_text", "test_button"},
			pattern:  "test_d*",
			expected: 1,
		},
		{
			name:     "file name pattern",
			modules:  []string{"test_draw", "test_text"},
			pattern:  "*draw.py",
			expected: 1,
		},
		{
			name:     "wildcard pattern matches substring",
			modules:  []string{"test_text", "test_textinput", "test_draw"},
			pattern:  "*text*",
			expected: 2,
		},
		{
			name:     "simple contains match",
			modules:  []string{"test_draw", "test_text", "test_button"},
			pattern:  "butt",
			expected: 1,
		},
		{
			name:     "no matches",
			modules:  []string{"test_draw", "test_text"},
			pattern:  "*missing*",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(modulesNamed(tt.modules...), tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d", tt.expected, len(result))
			}
		})
	}
}

func TestFilter_FilterByName_EdgeCases(t *testing.T) {
	filter := NewFilter()

	t.Run("empty module list", func(t *testing.T) {
		result := filter.FilterByName(nil, "test_*")
		if len(result) != 0 {
			t.Errorf("expected empty result, got %d items", len(result))
		}
	})

	t.Run("keeps discovery order", func(t *testing.T) {
		result := filter.FilterByName(modulesNamed("test_b", "test_x", "test_a"), "test_?")
		if len(result) != 3 || result[0].Name != "test_b" || result[2].Name != "test_a" {
			t.Errorf("unexpected result: %v", domain.ModuleNames(result))
		}
	})

	t.Run("double wildcard matches everything", func(t *testing.T) {
		result := filter.FilterByName(modulesNamed("test_a"), "**")
		if len(result) != 1 {
			t.Errorf("expected 1 match, got %d items", len(result))
		}
	})
}
