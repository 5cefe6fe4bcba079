package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"kut/internal/domain"
	"kut/internal/logger"
)

const (
	// ModulePrefix is the required file name prefix of a test module
	ModulePrefix = "test_"
	// ModuleSuffix is the required file name suffix of a test module
	ModuleSuffix = ".py"
)

// Scanner finds test modules in search directories
type Scanner struct{}

// NewScanner creates a new Scanner
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan lists the test modules of every directory, in directory order.
// Only immediate entries are considered. Modules sharing a name are all kept;
// the interpreter will import the copy from the first directory for each of them.
func (s *Scanner) Scan(dirs []string) ([]domain.Module, error) {
	var modules []domain.Module
	seen := make(map[string]string)

	for _, dir := range dirs {
		found, err := s.scanDir(dir)
		if err != nil {
			return nil, err
		}
		for _, m := range found {
			if first, ok := seen[m.Name]; ok {
				logger.Warn("duplicate module name, only the first copy is importable",
					"module", m.Name, "shadowed", m.Dir, "by", first)
			} else {
				seen[m.Name] = m.Dir
			}
			modules = append(modules, m)
		}
	}

	return modules, nil
}

func (s *Scanner) scanDir(dir string) ([]domain.Module, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("test folder does not exist: %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("test folder is not a directory: %s", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list test folder %s: %w", dir, err)
	}

	var modules []domain.Module
	for _, entry := range entries {
		name := entry.Name()
		if !IsModuleFile(name) {
			continue
		}

		path := filepath.Join(dir, name)
		// follow symlinks, directories named test_x.py are not modules
		fi, err := os.Stat(path)
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}

		modules = append(modules, domain.Module{
			Name: strings.TrimSuffix(name, ModuleSuffix),
			Dir:  dir,
			Path: path,
		})
	}

	return modules, nil
}

// IsModuleFile reports whether a file name matches test_*.py
func IsModuleFile(name string) bool {
	return strings.HasPrefix(name, ModulePrefix) && strings.HasSuffix(name, ModuleSuffix)
}
