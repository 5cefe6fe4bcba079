package config

import (
	"os"
	"path/filepath"
)

// Config holds all configuration for a run
type Config struct {
	// Discovery settings
	Folders    []string
	PythonPath []string
	NameFilter string

	// Child process settings
	Python  string
	Verbose int
	EnvFile string

	// Demo replaces Folders and PythonPath with the bundled demo project
	Demo bool

	// Output settings
	LogDir   string
	Progress bool
	LogLevel string
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		Folders:    []string{},
		PythonPath: DefaultPythonPath(),
		Python:     DefaultPython,
		EnvFile:    DefaultEnvFile,
		LogDir:     DefaultLogDir,
		Progress:   true,
		LogLevel:   DefaultLogLevel,
	}
}

// DefaultPythonPath returns the directory of the running executable, or the
// working directory when it cannot be resolved.
func DefaultPythonPath() []string {
	exe, err := os.Executable()
	if err != nil {
		return []string{"."}
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return []string{filepath.Dir(exe)}
}

// KivyLogLevel returns the Kivy log level selected by the verbose count.
// Counts above the table are clamped to its last entry.
func (c *Config) KivyLogLevel() string {
	v := c.Verbose
	if v < 0 {
		v = 0
	}
	if v >= len(LogLevels) {
		v = len(LogLevels) - 1
	}
	return LogLevels[v]
}

// ImportPath returns the path list handed to every child: import-path
// directories first, then the search directories.
func (c *Config) ImportPath() []string {
	path := make([]string, 0, len(c.PythonPath)+len(c.Folders))
	path = append(path, c.PythonPath...)
	path = append(path, c.Folders...)
	return path
}

// ApplyDemo points the config at a materialised demo project, ignoring any
// folders or import paths given explicitly.
func (c *Config) ApplyDemo(root string) {
	c.Folders = []string{filepath.Join(root, "examples")}
	c.PythonPath = []string{root}
}
