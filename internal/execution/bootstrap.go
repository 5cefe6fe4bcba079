package execution

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"kut/internal/config"
)

// bootstrapProgram is handed to the interpreter with -c. It never changes
// between modules; everything module specific travels in config.BootstrapEnv.
//
//go:embed bootstrap.py
var bootstrapProgram string

// Bootstrap is the configuration a child reads from its environment
type Bootstrap struct {
	Path     []string `json:"path"`
	LogLevel string   `json:"log_level"`
	Module   string   `json:"module"`
}

// NewBootstrap builds the child configuration for one module
func NewBootstrap(cfg *config.Config, module string) Bootstrap {
	return Bootstrap{
		Path:     cfg.ImportPath(),
		LogLevel: cfg.KivyLogLevel(),
		Module:   module,
	}
}

// EnvVar renders the bootstrap as a KEY=VALUE environment entry
func (b Bootstrap) EnvVar() (string, error) {
	if b.Path == nil {
		b.Path = []string{}
	}
	data, err := json.Marshal(b)
	if err != nil {
		return "", fmt.Errorf("marshal bootstrap for %s: %w", b.Module, err)
	}
	return config.BootstrapEnv + "=" + string(data), nil
}

// Program returns the fixed bootstrap source executed by every child
func Program() string {
	return bootstrapProgram
}
