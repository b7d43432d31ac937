package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/domain"
)

func evalCmd() *cobra.Command {
	var trace bool

	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: `Evaluate one line, e.g. romcalc eval "X + V"`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec := domain.ProcessLine(1, strings.Join(args, " "))

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, rec.OutputLine())
			if trace {
				for _, l := range rec.TraceLines() {
					fmt.Fprintln(cmd.ErrOrStderr(), l)
				}
			}
			if rec.Outcome != domain.OutcomeSuccess {
				return &domain.OpError{Op: "cli.eval", Kind: domain.KindInvalidInput, Err: errors.New(rec.Reason)}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&trace, "trace", false, "Print the process log entry on stderr")
	return cmd
}
