package main

import (
	"errors"
	"fmt"
	"os"

	"kut/internal/cli/commands"
	"kut/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "kut [DIR...]",
		Short: "Unit test runner for Kivy applications",
		Long: `Run every test_*.py module of the given folders in its own Python process.
Kivy keeps window and event loop state that cannot be reset, so each module
gets a fresh interpreter. Any traceback in a module's output fails the run.

WARNING: if there are files with the same name, only the file in the first folder will be run!`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.Flags().BoolP("version", "V", false, "Print the version of kut")

	// Create initial config with defaults
	cfg := config.New()

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg, os.Stdout)

	// Register all commands
	cmds.Register(rootCmd, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		var exitErr *commands.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
