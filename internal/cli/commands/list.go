package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"kut/internal/config"
	"kut/internal/discovery"
	"kut/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	scanner   *discovery.Scanner
	filter    *discovery.Filter
	formatter *ui.Formatter

	showTestCases bool
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		scanner:   scanner,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	cleanup, err := prepareDemo(lc.config)
	if err != nil {
		return err
	}
	defer cleanup()

	modules, err := lc.scanner.Scan(lc.config.Folders)
	if err != nil {
		return err
	}

	// Filter modules
	modules = lc.filter.FilterByName(modules, lc.config.NameFilter)

	if len(modules) == 0 {
		color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "No test modules found")
		return nil
	}

	return lc.formatter.PrintModuleList(modules, lc.showTestCases)
}
