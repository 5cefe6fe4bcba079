package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"kut/internal/cli"
	"kut/internal/config"
	"kut/internal/discovery"
	"kut/internal/parser"
	"kut/internal/ui"
)

// ExitError carries a non-zero exit status without an error message. It is
// returned when modules failed: the report has already been printed.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Commands holds all CLI commands
type Commands struct {
	Run  *RunCommand
	List *ListCommand
	Logs *LogsCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, out io.Writer) *Commands {
	scanner := discovery.NewScanner()
	filter := discovery.NewFilter()
	testCaseParser := discovery.NewParser()
	tracebackParser := parser.NewTracebackParser()
	reporter := ui.NewReporter(out)
	formatter := ui.NewFormatter(out, testCaseParser)
	viewer := ui.NewLogViewer()

	return &Commands{
		Run:  NewRunCommand(cfg, scanner, filter, tracebackParser, reporter),
		List: NewListCommand(cfg, scanner, filter, formatter),
		Logs: NewLogsCommand(cfg, viewer),
	}
}

// Register attaches the commands to rootCmd. The root command itself runs
// the modules; list and logs are subcommands.
func (c *Commands) Register(rootCmd *cobra.Command, cfg *config.Config) {
	applyConfig := func(cmd *cobra.Command, args []string) error {
		return cli.Apply(cfg, cmd, args)
	}

	cli.AddDiscoveryFlags(rootCmd.PersistentFlags())

	// Run (root) command
	rootCmd.Args = cobra.ArbitraryArgs
	rootCmd.PreRunE = applyConfig
	rootCmd.RunE = c.Run.Execute
	cli.AddRunFlags(rootCmd.Flags())

	// List command
	listCmd := &cobra.Command{
		Use:     "list [DIR...]",
		Short:   "List discovered test modules",
		Long:    "Scan the folders and list the test modules that would run, without running them",
		Args:    cobra.ArbitraryArgs,
		PreRunE: applyConfig,
		RunE:    c.List.Execute,
	}
	listCmd.Flags().BoolVarP(&c.List.showTestCases, cli.FlagTestCases, "c", false, "List test methods of every module")
	rootCmd.AddCommand(listCmd)

	// Logs command
	logsCmd := &cobra.Command{
		Use:     "logs",
		Short:   "Browse the captured logs of the last run",
		Long:    "Display the archived output of every module from the last run in an interactive viewer",
		Args:    cobra.NoArgs,
		PreRunE: applyConfig,
		RunE:    c.Logs.Execute,
	}
	rootCmd.AddCommand(logsCmd)
}
