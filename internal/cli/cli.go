// Package cli parses the command line of the offline simulator.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"os-simulator/internal/schedulers"
)

// AllAlgorithms runs every timing algorithm, plus Banker's when the workload
// carries a resource state.
const AllAlgorithms = "all"

// ExitError is returned for usage errors and carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Config holds the parsed command line. Algorithm is empty when the flag was
// not given, so the workload file can choose. TimeQuantum is 0 in that case too.
type Config struct {
	WorkloadPath string
	Algorithm    string
	TimeQuantum  int
	LogLevel     string
	LogFormat    string
}

// Parse processes command-line arguments. It returns the config, whether the
// program should exit cleanly (help or no workload), or an *ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("simulate", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
simulate - run CPU scheduling algorithms over a workload file.

Usage:
  simulate [options] WORKLOAD

Arguments:
  WORKLOAD
    Path to a .csv (id,burst,arrival[,priority]) or .hcl workload file.

Options:
`)
		flagSet.PrintDefaults()
	}

	algorithmFlag := flagSet.String("algorithm", "", "Algorithm to run: FCFS, SJF, SRTF, RR, Priority, Bankers or 'all'. Defaults to the workload's choice, then 'all'.")
	quantumFlag := flagSet.Int("quantum", 0, "Round-robin time quantum. 0 uses the workload's value or the default.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, true, nil
	}
	path := flagSet.Arg(0)
	slog.Debug("Workload path determined.", "path", path)

	algorithm := *algorithmFlag
	if algorithm != "" && !strings.EqualFold(algorithm, AllAlgorithms) {
		parsed, err := schedulers.ParseAlgorithm(algorithm)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		algorithm = string(parsed)
	}
	if strings.EqualFold(algorithm, AllAlgorithms) {
		algorithm = AllAlgorithms
	}

	if *quantumFlag < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid quantum: must be positive"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return &Config{
		WorkloadPath: path,
		Algorithm:    algorithm,
		TimeQuantum:  *quantumFlag,
		LogLevel:     logLevel,
		LogFormat:    logFormat,
	}, false, nil
}
