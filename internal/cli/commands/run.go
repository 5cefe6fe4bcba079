package commands

import (
	"os"

	"github.com/spf13/cobra"

	"kut/internal/config"
	"kut/internal/demo"
	"kut/internal/discovery"
	"kut/internal/domain"
	"kut/internal/execution"
	"kut/internal/logger"
	"kut/internal/parser"
	"kut/internal/storage"
	"kut/internal/ui"
)

// RunCommand handles running the modules
type RunCommand struct {
	config   *config.Config
	scanner  *discovery.Scanner
	filter   *discovery.Filter
	parser   *parser.TracebackParser
	reporter *ui.Reporter
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	parser *parser.TracebackParser,
	reporter *ui.Reporter,
) *RunCommand {
	return &RunCommand{
		config:   cfg,
		scanner:  scanner,
		filter:   filter,
		parser:   parser,
		reporter: reporter,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	cleanup, err := prepareDemo(rc.config)
	if err != nil {
		return err
	}
	defer cleanup()

	// Discover modules
	modules, err := rc.scanner.Scan(rc.config.Folders)
	if err != nil {
		return err
	}
	modules = rc.filter.FilterByName(modules, rc.config.NameFilter)
	if len(modules) == 0 {
		logger.Warn("no test modules found", "folders", rc.config.Folders)
	}
	logger.Debug("discovered modules", "modules", domain.ModuleNames(modules))

	runner, err := execution.NewRunner(rc.config)
	if err != nil {
		return err
	}
	executor := execution.NewSequentialExecutor(runner)

	if rc.config.Progress && len(modules) > 0 && ui.Interactive(os.Stderr) {
		executor.SetProgress(ui.NewProgressBar(len(modules), os.Stderr))
	}

	// Execute modules, one child process each
	results, duration, err := executor.Execute(cmd.Context(), modules)
	if err != nil {
		return err
	}

	summary := domain.RunSummary{
		Results:  results,
		Errors:   rc.parser.Classify(results),
		Duration: duration,
	}

	if rc.config.LogDir != "" {
		store := storage.NewLogDir(rc.config.LogDir)
		if err := store.Save(results); err != nil {
			logger.Warn("could not archive module logs", "dir", store.Dir(), "err", err)
		}
	}

	if code := rc.reporter.Report(summary); code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}

// prepareDemo materialises the demo project when requested and points the
// config at it. The returned function removes it again.
func prepareDemo(cfg *config.Config) (func(), error) {
	if !cfg.Demo {
		return func() {}, nil
	}
	root, cleanup, err := demo.Materialize()
	if err != nil {
		return nil, err
	}
	cfg.ApplyDemo(root)
	logger.Info("running demo", "dir", root)
	return cleanup, nil
}
