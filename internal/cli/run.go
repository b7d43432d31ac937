package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/app/workspace"
	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/domain"
	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/infra/fsstream"
	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/infra/logger"
	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/infra/watcher"
)

func runCmd(opts *globalOpts) *cobra.Command {
	var wsFlag string
	var streams streamFlags
	var noSave bool
	var format string
	var watch bool

	c := &cobra.Command{
		Use:   "run",
		Short: "Process every line of the input file into the output file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != "pretty" && format != "json" && format != "" {
				return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
			}

			ws, err := loadWorkspace(wsFlag)
			if err != nil {
				return err
			}
			streams.apply(ws)

			cleanup := setupLogging(ws.Root, opts)
			defer cleanup()

			// Batch results go to stdout only when output is not itself stdout.
			report := cmd.OutOrStdout()
			if ws.Cfg.Paths.Output == fsstream.Stdio {
				report = cmd.ErrOrStderr()
			}
			ws.Streams = fsstream.NewProvider(ws.Root, fsstream.WithStdio(cmd.InOrStdin(), cmd.OutOrStdout()))

			once := func(ctx context.Context) error {
				run, savedID, err := ws.Batch(logger.L(), !noSave).Execute(ctx, ws.Request())
				if perr := printRun(report, ws, run, savedID, format); perr != nil && err == nil {
					err = perr
				}
				return err
			}

			if err := once(cmd.Context()); err != nil || !watch {
				return err
			}

			if ws.Cfg.Paths.Input == fsstream.Stdio {
				return fmt.Errorf("--watch needs an input file, not stdin")
			}
			fmt.Fprintf(report, "Watching %s (ctrl+c to stop)\n", ws.Rel(ws.Cfg.Paths.Input))
			w := watcher.New(watcher.WithLogger(logger.L()))
			return w.Watch(cmd.Context(), ws.Streams.Resolve(ws.Cfg.Paths.Input), once)
		},
	}

	c.Flags().StringVarP(&wsFlag, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&streams.input, "input", "i", "", "Input file, or - for stdin (default from romcalc.yaml)")
	c.Flags().StringVarP(&streams.output, "output", "o", "", "Output file, or - for stdout (default from romcalc.yaml)")
	c.Flags().StringVar(&streams.processLog, "process-log", "", "Process log file, or - for stdout (enables tracing)")
	c.Flags().BoolVar(&streams.noTrace, "no-trace", false, "Do not write the process log")
	c.Flags().BoolVar(&noSave, "no-save", false, "Do not save run artifact under runs/")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	c.Flags().BoolVar(&watch, "watch", false, "Re-run whenever the input file changes")

	return c
}

func printRun(w io.Writer, ws *workspace.Workspace, run domain.RunResult, savedID string, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"run_id":   run.RunID,
			"saved_id": savedID,
			"run":      run,
		}
		return enc.Encode(payload)
	case "pretty", "":
		printPrettyRun(w, ws, run, savedID)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyRun(w io.Writer, ws *workspace.Workspace, run domain.RunResult, savedID string) {
	total := run.EndedAt.Sub(run.StartedAt)
	if run.StartedAt.IsZero() || run.EndedAt.IsZero() {
		total = 0
	}

	processLog := "(disabled)"
	if run.ProcessLogPath != "" {
		processLog = ws.Rel(run.ProcessLogPath)
	}

	fmt.Fprintf(w, "Input:       %s\n", ws.Rel(run.InputPath))
	fmt.Fprintf(w, "Output:      %s\n", ws.Rel(run.OutputPath))
	fmt.Fprintf(w, "Process log: %s\n", processLog)
	fmt.Fprintf(w, "Started:     %s\n", run.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Duration:    %s\n", total)
	if run.RunID != "" {
		fmt.Fprintf(w, "Run ID:      %s\n", run.RunID)
	}
	if savedID != "" {
		fmt.Fprintf(w, "Saved as:    %s\n", savedID)
	}
	fmt.Fprintln(w)

	s := run.Summary
	fmt.Fprintf(w, "Lines: %d  ok: %d  invalid numeral: %d  invalid operation: %d  invalid format: %d\n",
		s.Lines, s.Succeeded, s.InvalidNumeral, s.InvalidOperation, s.InvalidFormat)

	for _, r := range run.Records {
		if r.Outcome == domain.OutcomeSuccess {
			continue
		}
		fmt.Fprintf(w, "  - line %d: %s (%s)\n", r.Number, r.OutputLine(), r.Reason)
	}
}
