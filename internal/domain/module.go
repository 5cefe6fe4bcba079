package domain

// Module represents a discovered test module
type Module struct {
	Name string // Importable module name (file name without .py)
	Dir  string // Search directory the file was found in
	Path string // Full path to the test file
}

// ModuleNames returns the names of the given modules in order
func ModuleNames(modules []Module) []string {
	names := make([]string, len(modules))
	for i, m := range modules {
		names[i] = m.Name
	}
	return names
}
