package config

const (
	// DefaultPython is the interpreter used to launch child processes
	DefaultPython = "python"
	// DefaultEnvFile is the dotenv file merged into every child environment
	DefaultEnvFile = ".env"
	// DefaultLogDir is where the captured logs of the last run are archived
	DefaultLogDir = ".kut/last-run"
	// DefaultLogLevel is the level of the runner's own diagnostics
	DefaultLogLevel = "warn"
	// BootstrapEnv is the variable carrying the child configuration
	BootstrapEnv = "KUT_BOOTSTRAP"
	// EnvPrefix prefixes environment overrides of command-line flags
	EnvPrefix = "KUT"
	// ConfigName is the optional config file (without extension) read from the working directory
	ConfigName = ".kut"
)

// LogLevels maps the verbose count to a Kivy log level name
var LogLevels = []string{
	"info",
	"debug",
	"trace",
}
