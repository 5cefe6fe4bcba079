package commands

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"kut/internal/config"
	"kut/internal/storage"
	"kut/internal/ui"
)

// LogsCommand handles the logs command
type LogsCommand struct {
	config *config.Config
	viewer ui.Viewer
}

// NewLogsCommand creates a new LogsCommand
func NewLogsCommand(cfg *config.Config, viewer ui.Viewer) *LogsCommand {
	return &LogsCommand{
		config: cfg,
		viewer: viewer,
	}
}

// Execute runs the command
func (lc *LogsCommand) Execute(cmd *cobra.Command, args []string) error {
	if lc.config.LogDir == "" {
		color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "Log archive is disabled (--log-dir is empty)")
		return nil
	}

	logs, err := storage.NewLogDir(lc.config.LogDir).Load()
	if errors.Is(err, storage.ErrNoLogs) {
		color.New(color.FgYellow).Fprintf(cmd.OutOrStdout(), "No archived run found in %s\n", lc.config.LogDir)
		return nil
	}
	if err != nil {
		return err
	}

	return lc.viewer.View(logs)
}
