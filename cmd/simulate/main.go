package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"os-simulator/internal/cli"
	"os-simulator/internal/logging"
	"os-simulator/internal/report"
	"os-simulator/internal/schedulers"
	"os-simulator/internal/session"
	"os-simulator/internal/workload"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(outW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	slog.SetDefault(logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr))

	w, err := workload.Load(cfg.WorkloadPath)
	if err != nil {
		return err
	}

	algorithms, err := selectAlgorithms(cfg.Algorithm, w)
	if err != nil {
		return err
	}
	quantum := cfg.TimeQuantum
	if quantum == 0 {
		quantum = w.TimeQuantum
	}

	sess := session.New()
	for _, p := range w.Processes {
		sess.AddProcess(p)
	}
	if w.Resources != nil {
		sess.SetResourceState(*w.Resources)
		report.WriteResources(outW, *w.Resources)
		_, _ = fmt.Fprintln(outW)
	}

	slog.Info("Simulating workload.", "path", cfg.WorkloadPath, "processes", len(w.Processes), "algorithms", algorithms)
	for _, algorithm := range algorithms {
		if err := sess.Calculate(algorithm, quantum); err != nil {
			return fmt.Errorf("%s: %w", algorithm, err)
		}
		result := schedulers.Result{Algorithm: algorithm}
		if last := sess.LastResult(); last != nil {
			result = *last
		}
		slog.Debug("Algorithm finished.", "algorithm", algorithm, "run_id", sess.RunID())
		report.WriteResult(outW, result)
	}
	return nil
}

// selectAlgorithms resolves the flag, then the workload's own choice, then
// falls back to every algorithm the workload can feed.
func selectAlgorithms(flagValue string, w *workload.Workload) ([]schedulers.Algorithm, error) {
	name := flagValue
	if name == "" {
		name = w.Algorithm
	}
	if name == "" || strings.EqualFold(name, cli.AllAlgorithms) {
		algorithms := schedulers.TimingAlgorithms()
		if w.Resources != nil {
			algorithms = append(algorithms, schedulers.Bankers)
		}
		return algorithms, nil
	}

	algorithm, err := schedulers.ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return []schedulers.Algorithm{algorithm}, nil
}
