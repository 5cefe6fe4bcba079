// Package demo carries a tiny Kivy project used by --demo.
package demo

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed project
var project embed.FS

// Materialize writes the demo project into a new temporary directory and
// returns its root along with a function removing it. The root holds main.py;
// the test modules live in <root>/examples.
func Materialize() (string, func(), error) {
	root, err := os.MkdirTemp("", "kut-demo-*")
	if err != nil {
		return "", nil, fmt.Errorf("create demo dir: %w", err)
	}
	cleanup := func() { _ = os.RemoveAll(root) }

	if err := extract(root); err != nil {
		cleanup()
		return "", nil, err
	}
	return root, cleanup, nil
}

func extract(root string) error {
	sub, err := fs.Sub(project, "project")
	if err != nil {
		return err
	}

	return fs.WalkDir(sub, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(root, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		data, err := fs.ReadFile(sub, path)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, data, 0644); err != nil {
			return fmt.Errorf("write demo file %s: %w", path, err)
		}
		return nil
	})
}
