package domain

// ModuleLog is the archived output of one module from a previous run
type ModuleLog struct {
	Index int    // Position of the module in that run
	Name  string // Module name
	Text  string // Captured output
}
