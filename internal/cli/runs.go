package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/domain"
	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/ports"
	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/usecase/query"
)

// latestRun is accepted wherever a run id is expected.
const latestRun = "latest"

func runsCmd(opts *globalOpts) *cobra.Command {
	var wsFlag string

	c := &cobra.Command{
		Use:   "runs",
		Short: "Inspect saved run artifacts",
	}
	c.PersistentFlags().StringVarP(&wsFlag, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")

	c.AddCommand(runsListCmd(&wsFlag), runsQueryCmd(&wsFlag, opts))
	return c
}

func runsListCmd(wsFlag *string) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(*wsFlag)
			if err != nil {
				return err
			}

			refs, err := ws.Store.ListRuns()
			if err != nil {
				return err
			}
			return printRunRefs(cmd.OutOrStdout(), refs, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return cmd
}

func printRunRefs(w io.Writer, refs []domain.RunRef, format string) error {
	switch format {
	case "json":
		if refs == nil {
			refs = []domain.RunRef{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(refs)
	case "pretty", "":
		if len(refs) == 0 {
			fmt.Fprintln(w, "(no runs saved)")
			return nil
		}
		for _, r := range refs {
			started := "-"
			if !r.StartedAt.IsZero() {
				started = r.StartedAt.Format("2006-01-02 15:04:05Z")
			}
			fmt.Fprintf(w, "%s  %s\n", r.ID, started)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func runsQueryCmd(wsFlag *string, opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "query <run-id|latest> <jsonpath>",
		Short: "Evaluate a JSONPath expression against a saved run",
		Example: `  romcalc runs query latest '$.Summary'
  romcalc runs query latest '$.Records[?(@.Outcome == "invalid_numeral")].Line'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorkspace(*wsFlag)
			if err != nil {
				return err
			}

			cleanup := setupLogging(ws.Root, opts)
			defer cleanup()

			id, err := resolveRunID(ws.Store, args[0])
			if err != nil {
				return err
			}

			out, err := query.NewRuns(ws.Store).Execute(id, args[1])
			if err != nil {
				return err
			}
			for _, line := range out {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}

func resolveRunID(store ports.ArtifactStore, id string) (string, error) {
	if id != latestRun {
		return id, nil
	}
	refs, err := store.ListRuns()
	if err != nil {
		return "", err
	}
	if len(refs) == 0 {
		return "", &domain.OpError{Op: "runstore.latest", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
	}
	return refs[0].ID, nil
}
