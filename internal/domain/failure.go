package domain

// ErrorRecord marks one traceback found in a module's captured output.
// LineIndex is -1 when the module's child process could not be started.
type ErrorRecord struct {
	ModuleIndex int
	LineIndex   int
	Module      string
}
