package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/specialistvlad/pirago/internal/app"
)

// ConfigEnv names the environment variable consulted when no configuration
// path is given on the command line.
const ConfigEnv = "PIRAGO_CONFIG"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	return parse(args, output, os.LookupEnv)
}

func parse(args []string, output io.Writer, lookupEnv func(string) (string, bool)) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("pirago", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
Pirago - resolves functor script names and paths for build items.

Usage:
  pirago [options] [CONFIG_PATH]

Arguments:
  CONFIG_PATH
    Path to a .json configuration, a .hcl file or a directory of .hcl files.
    Defaults to $`+ConfigEnv+`.

Examples:
  pirago -build /home/something/top_dir -item item01 -flavor vanilla functors.json
  pirago -list -role run -output json functors.hcl

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to the configuration file or directory.")
	cFlag := flagSet.String("c", "", "Path to the configuration file or directory (shorthand).")
	formatFlag := flagSet.String("format", app.FormatAuto, "Configuration format. Options: 'auto', 'standard', 'simplified' or 'hcl'.")
	buildFlag := flagSet.String("build", "", "Build directory to resolve functors for.")
	itemFlag := flagSet.String("item", "", "Item name to resolve functors for.")
	flavorFlag := flagSet.String("flavor", "", "Flavor to resolve functors for.")
	roleFlag := flagSet.String("role", app.RoleAll, "Functor role. Options: 'build', 'clean', 'run', 'analyze' or 'all'.")
	listFlag := flagSet.Bool("list", false, "Resolve every build, item and flavor in the configuration.")
	strictFlag := flagSet.Bool("strict", false, "Reject configurations that fail the validity check.")
	outputFlag := flagSet.String("output", "text", "Result format. Options: 'text' or 'json'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	switch {
	case *configFlag != "":
		path = *configFlag
	case *cFlag != "":
		path = *cFlag
	case flagSet.NArg() > 0:
		path = flagSet.Arg(0)
	default:
		if env, ok := lookupEnv(ConfigEnv); ok {
			path = strings.TrimSpace(env)
		}
	}
	slog.Debug("Configuration path determined.", "path", path)

	if path == "" {
		slog.Debug("No configuration path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	// Only a positional CONFIG_PATH is allowed, and only when no flag set it.
	extra := flagSet.Args()
	if *configFlag == "" && *cFlag == "" && len(extra) > 0 {
		extra = extra[1:]
	}
	if len(extra) > 0 {
		return nil, false, usageError("unexpected arguments: %s", strings.Join(extra, " "))
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ConfigPath: path,
		Format:     strings.ToLower(*formatFlag),
		Build:      *buildFlag,
		Item:       *itemFlag,
		Flavor:     *flavorFlag,
		Role:       strings.ToLower(*roleFlag),
		List:       *listFlag,
		Strict:     *strictFlag,
		Output:     strings.ToLower(*outputFlag),
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
