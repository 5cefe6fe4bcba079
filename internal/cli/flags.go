package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"kut/internal/config"
	"kut/internal/logger"
)

// Flag names. Each one can also be set through KUT_<NAME> (dashes become
// underscores) or through the same key in .kut.yaml.
const (
	FlagFolder     = "folder"
	FlagPythonPath = "pythonpath"
	FlagDemo       = "demo"
	FlagFilter     = "filter"
	FlagLogDir     = "log-dir"
	FlagLogLevel   = "log-level"
	FlagVerbose    = "verbose"
	FlagPython     = "python"
	FlagEnvFile    = "env-file"
	FlagNoProgress = "no-progress"
	FlagTestCases  = "test-cases"
)

// AddDiscoveryFlags registers the flags shared by every command
func AddDiscoveryFlags(fs *pflag.FlagSet) {
	fs.StringSliceP(FlagFolder, "d", []string{}, "Folders with test files (repeatable or comma separated)")
	fs.StringSliceP(FlagPythonPath, "p", config.DefaultPythonPath(), "Non-standard paths to import modules from, searched before the folders")
	fs.Bool(FlagDemo, false, "Run the bundled demo, ignoring --folder and --pythonpath")
	fs.StringP(FlagFilter, "f", "", "Filter modules by name pattern (supports wildcards, e.g. 'test_draw*' or '*text*')")
	fs.String(FlagLogDir, config.DefaultLogDir, "Directory archiving the captured logs of the last run (empty disables)")
	fs.String(FlagLogLevel, config.DefaultLogLevel, "Level of kut's own diagnostics on stderr (debug, info, warn, error)")
}

// AddRunFlags registers the flags that only affect running modules
func AddRunFlags(fs *pflag.FlagSet) {
	fs.CountP(FlagVerbose, "v", "Increase verbosity of the Kivy output, can stack up to 2 times")
	fs.String(FlagPython, config.DefaultPython, "Python interpreter used for every module")
	fs.String(FlagEnvFile, config.DefaultEnvFile, "Dotenv file whose variables are added to every child environment")
	fs.Bool(FlagNoProgress, false, "Do not show the progress bar")
}

// Apply resolves flags, environment and config file into cfg. Positional
// arguments are appended to the folders.
func Apply(cfg *config.Config, cmd *cobra.Command, args []string) error {
	v, err := newViper(cmd.Flags())
	if err != nil {
		return err
	}

	cfg.Folders = append(v.GetStringSlice(FlagFolder), args...)
	cfg.PythonPath = v.GetStringSlice(FlagPythonPath)
	cfg.Demo = v.GetBool(FlagDemo)
	cfg.NameFilter = v.GetString(FlagFilter)
	cfg.LogDir = v.GetString(FlagLogDir)
	cfg.LogLevel = v.GetString(FlagLogLevel)

	if cmd.Flags().Lookup(FlagVerbose) != nil {
		cfg.Verbose = v.GetInt(FlagVerbose)
		cfg.Python = v.GetString(FlagPython)
		cfg.EnvFile = v.GetString(FlagEnvFile)
		cfg.Progress = !v.GetBool(FlagNoProgress)
	}

	logger.Configure(cmd.ErrOrStderr(), cfg.LogLevel)
	if cfg.Verbose >= len(config.LogLevels) {
		logger.Warn("verbosity capped", "requested", cfg.Verbose, "level", cfg.KivyLogLevel())
	}
	if cfg.Python == "" {
		return fmt.Errorf("--%s must not be empty", FlagPython)
	}
	logger.Debug("configuration resolved",
		"folders", cfg.Folders, "pythonpath", cfg.PythonPath, "demo", cfg.Demo, "kivy_log_level", cfg.KivyLogLevel())
	return nil
}

func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	v.SetConfigName(config.ConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	return v, nil
}
