package domain

import "time"

// ModuleResult represents the captured outcome of running one module in its own interpreter
type ModuleResult struct {
	Module   Module
	Output   []byte        // Raw merged stdout/stderr
	Text     string        // Output decoded to text
	Lines    []string      // Text split into lines
	ExitCode int           // Child exit status, -1 if it never started
	Err      error         // Set only when the child could not be started
	Duration time.Duration // Time taken by the child
}

// Launched reports whether the child process actually ran
func (r ModuleResult) Launched() bool {
	return r.Err == nil
}

// RunSummary holds everything the report needs about one run
type RunSummary struct {
	Results  []ModuleResult
	Errors   []ErrorRecord
	Duration time.Duration
}
