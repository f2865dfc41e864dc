package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/comalice/statestore"
	"github.com/comalice/statestore/enhancer"
	"github.com/comalice/statestore/internal/script"
)

var (
	scriptPath  string
	historyPath string
	traceSpans  bool
	keepGoing   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Dispatch every action of a script and print each resulting state",
	Long: `Loads a YAML script of actions, dispatches them in order against a store
combining "count", "flag" and "todos" slices, and prints the state after each
successful dispatch.`,
	Args: cobra.NoArgs,
	RunE: runScript,
}

func init() {
	runCmd.Flags().StringVarP(&scriptPath, "script", "s", "", "YAML action script (required)")
	runCmd.Flags().StringVar(&historyPath, "history", "", "write the dispatch history as YAML to this file")
	runCmd.Flags().BoolVar(&traceSpans, "trace", false, "log a tracing span for every dispatch")
	runCmd.Flags().BoolVar(&keepGoing, "keep-going", false, "continue after a failed dispatch")
	_ = runCmd.MarkFlagRequired("script")
}

func runScript(cmd *cobra.Command, args []string) error {
	sc, err := script.Load(scriptPath)
	if err != nil {
		return err
	}

	var provider trace.TracerProvider
	if traceSpans {
		tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(&spanLogger{logger: logger}))
		defer func() { _ = tp.Shutdown(cmd.Context()) }()
		provider = tp
	}

	rec := enhancer.NewRecorder(enhancer.WithLimit(0))
	s, err := statestore.New(
		statestore.Combine(demoReducers(), statestore.WithLogger(logger)),
		statestore.WithEnhancer(statestore.Compose(
			enhancer.Logging(logger),
			enhancer.Tracing(provider),
			rec.Enhancer(),
		)),
	)
	if err != nil {
		return fmt.Errorf("create store: %w", err)
	}

	out := cmd.OutOrStdout()
	if sc.Name != "" {
		fmt.Fprintf(out, "# %s\n", sc.Name)
	}
	if err := printState(out, "initial", s.GetState()); err != nil {
		return err
	}

	failed := 0
	for i, action := range sc.Actions {
		if _, err := s.Dispatch(action); err != nil {
			failed++
			logger.Warn("dispatch failed", zap.Int("index", i), zap.String("action_type", action.Type), zap.Error(err))
			if !keepGoing {
				return fmt.Errorf("action %d (%s): %w", i, action.Type, err)
			}
			fmt.Fprintf(out, "%s\tERROR %v\n", action.Type, err)
			continue
		}
		if err := printState(out, action.Type, s.GetState()); err != nil {
			return err
		}
	}

	if historyPath != "" {
		data, err := rec.ExportYAML()
		if err != nil {
			return err
		}
		if err := os.WriteFile(historyPath, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", historyPath, err)
		}
	}

	if failed > 0 {
		fmt.Fprintf(out, "%d of %d actions failed\n", failed, len(sc.Actions))
	}
	return nil
}

func printState(w io.Writer, label string, state statestore.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\t%s\n", label, data)
	return err
}
