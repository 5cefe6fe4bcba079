package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kut/internal/discovery"
	"kut/internal/domain"
)

func TestFormatter_PrintModuleList(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first")
	second := filepath.Join(dir, "second")
	require.NoError(t, os.MkdirAll(first, 0755))
	require.NoError(t, os.MkdirAll(second, 0755))

	src := "class T:\n    def test_one(self):\n        pass\n    def test_two(self):\n        pass\n"
	require.NoError(t, os.WriteFile(filepath.Join(first, "test_a.py"), []byte(src), 0644))

	modules := []domain.Module{
		{Name: "test_a", Dir: first, Path: filepath.Join(first, "test_a.py")},
		{Name: "test_a", Dir: second, Path: filepath.Join(second, "test_a.py")},
	}

	t.Run("plain list", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewFormatter(&buf, discovery.NewParser()).PrintModuleList(modules, false))

		out := buf.String()
		assert.Contains(t, out, "Found 2 test module(s):")
		assert.Contains(t, out, first+"\n└── test_a\n")
		assert.Contains(t, out, second+"\n└── test_a (shadowed)\n")
	})

	t.Run("with test cases", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewFormatter(&buf, discovery.NewParser()).PrintModuleList(modules[:1], true))

		assert.Contains(t, buf.String(), "└── test_a\n    ├── test_one\n    └── test_two\n")
	})

	t.Run("unreadable module", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewFormatter(&buf, discovery.NewParser()).PrintModuleList(modules[1:], true))

		assert.Contains(t, buf.String(), "error:")
	})
}
