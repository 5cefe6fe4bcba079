package execution

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kut/internal/domain"
	"kut/internal/parser"
)

type fakeRunner struct {
	outputs map[string]string
	calls   []string
}

func (f *fakeRunner) Run(_ context.Context, m domain.Module) domain.ModuleResult {
	f.calls = append(f.calls, m.Name)
	text, ok := f.outputs[m.Name]
	result := domain.ModuleResult{Module: m, Text: text, Lines: parser.SplitLines(text)}
	if !ok {
		result.Err = errors.New("not started")
		result.ExitCode = -1
	}
	return result
}

type recordingProgress struct {
	updates  [][2]int
	finished bool
}

func (p *recordingProgress) Update(passed, failed int) {
	p.updates = append(p.updates, [2]int{passed, failed})
}

func (p *recordingProgress) Finish() {
	p.finished = true
}

func TestSequentialExecutor_Execute(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"test_a": "OK\n",
		"test_b": "Traceback (most recent call last):\nAssertionError\n",
	}}
	progress := &recordingProgress{}

	executor := NewSequentialExecutor(runner)
	executor.SetProgress(progress)

	modules := []domain.Module{{Name: "test_a"}, {Name: "test_b"}, {Name: "test_missing"}, {Name: "test_a"}}
	results, _, err := executor.Execute(context.Background(), modules)
	require.NoError(t, err)

	// each module runs exactly once, duplicates included, in order
	assert.Equal(t, []string{"test_a", "test_b", "test_missing", "test_a"}, runner.calls)
	require.Len(t, results, 4)
	for i, r := range results {
		assert.Equal(t, modules[i].Name, r.Module.Name)
	}

	assert.Equal(t, [][2]int{{1, 0}, {1, 1}, {1, 2}, {2, 2}}, progress.updates)
	assert.True(t, progress.finished)
}

func TestSequentialExecutor_Empty(t *testing.T) {
	executor := NewSequentialExecutor(&fakeRunner{})

	results, duration, err := executor.Execute(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.GreaterOrEqual(t, int64(duration), int64(0))
}
