package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"kut/internal/domain"
)

const logExt = ".log"

// ErrNoLogs is returned by Load when no run has been archived yet
var ErrNoLogs = errors.New("no archived run found")

var _ Storage = (*LogDir)(nil)

// LogDir stores one <index>_<module>.log text file per module in a directory
type LogDir struct {
	dir string
}

// NewLogDir returns a Storage rooted at dir
func NewLogDir(dir string) *LogDir {
	return &LogDir{dir: dir}
}

// Dir returns the archive directory
func (s *LogDir) Dir() string {
	return s.dir
}

// Save replaces the previous archive with the outputs of results
func (s *LogDir) Save(results []domain.ModuleResult) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	if err := s.clear(); err != nil {
		return err
	}

	for i, r := range results {
		path := filepath.Join(s.dir, fileName(i, r.Module.Name))
		if err := os.WriteFile(path, []byte(r.Text), 0644); err != nil {
			return fmt.Errorf("write log for %s: %w", r.Module.Name, err)
		}
	}
	return nil
}

// Load reads the archived logs in run order
func (s *LogDir) Load() ([]domain.ModuleLog, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNoLogs
	}
	if err != nil {
		return nil, fmt.Errorf("read log dir: %w", err)
	}

	var logs []domain.ModuleLog
	for _, entry := range entries {
		index, name, ok := parseFileName(entry.Name())
		if !ok || entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read log for %s: %w", name, err)
		}
		logs = append(logs, domain.ModuleLog{Index: index, Name: name, Text: string(data)})
	}

	if len(logs) == 0 {
		return nil, ErrNoLogs
	}
	return logs, nil
}

func (s *LogDir) clear() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("read log dir: %w", err)
	}
	for _, entry := range entries {
		if _, _, ok := parseFileName(entry.Name()); !ok || entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			return fmt.Errorf("remove old log: %w", err)
		}
	}
	return nil
}

// zero padded so that directory listing order is run order
func fileName(index int, module string) string {
	return fmt.Sprintf("%04d_%s%s", index, module, logExt)
}

func parseFileName(name string) (int, string, bool) {
	if !strings.HasSuffix(name, logExt) {
		return 0, "", false
	}
	prefix, module, ok := strings.Cut(strings.TrimSuffix(name, logExt), "_")
	if !ok || module == "" {
		return 0, "", false
	}
	index, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, "", false
	}
	return index, module, true
}
