package ui

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"

	"kut/internal/discovery"
	"kut/internal/domain"
)

// Formatter formats and displays discovered modules
type Formatter struct {
	out    io.Writer
	parser *discovery.Parser
}

// NewFormatter creates a new Formatter
func NewFormatter(out io.Writer, parser *discovery.Parser) *Formatter {
	return &Formatter{
		out:    out,
		parser: parser,
	}
}

// PrintModuleList prints the discovered modules as a tree, optionally with
// their test methods. Modules are grouped under the folder they came from.
func (f *Formatter) PrintModuleList(modules []domain.Module, showTestCases bool) error {
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)

	color.New(color.FgGreen).Fprintf(f.out, "Found %d test module(s):\n\n", len(modules))

	for i, group := range groupByDir(modules) {
		if i > 0 {
			fmt.Fprintln(f.out)
		}
		cyan.Fprintln(f.out, group.dir)

		for j, m := range group.modules {
			isLastModule := j == len(group.modules)-1
			branch, indent := "├── ", "│   "
			if isLastModule {
				branch, indent = "└── ", "    "
			}

			label := m.Name
			if group.shadowed[j] {
				label += " " + red.Sprint("(shadowed)")
			}
			fmt.Fprintf(f.out, "%s%s\n", branch, label)

			if !showTestCases {
				continue
			}

			testCases, err := f.parser.FindTestCases(m.Path)
			if err != nil {
				fmt.Fprintf(f.out, "%s└── %s\n", indent, red.Sprintf("error: %v", err))
				continue
			}
			if len(testCases) == 0 {
				fmt.Fprintf(f.out, "%s└── %s\n", indent, red.Sprint("(no test cases found)"))
				continue
			}
			for k, tc := range testCases {
				prefix := "├── "
				if k == len(testCases)-1 {
					prefix = "└── "
				}
				fmt.Fprintf(f.out, "%s%s%s\n", indent, prefix, yellow.Sprint(tc))
			}
		}
	}

	return nil
}

type moduleGroup struct {
	dir      string
	modules  []domain.Module
	shadowed []bool
}

func groupByDir(modules []domain.Module) []moduleGroup {
	var groups []moduleGroup
	index := make(map[string]int)
	seen := make(map[string]bool)

	for _, m := range modules {
		dir := filepath.Clean(m.Dir)
		i, ok := index[dir]
		if !ok {
			i = len(groups)
			index[dir] = i
			groups = append(groups, moduleGroup{dir: dir})
		}
		groups[i].modules = append(groups[i].modules, m)
		groups[i].shadowed = append(groups[i].shadowed, seen[m.Name])
		seen[m.Name] = true
	}
	return groups
}
