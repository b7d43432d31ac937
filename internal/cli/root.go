package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/infra/fsworkspace"
	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/infra/logger"
	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/infra/workspacefinder"
	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/ui/tui"
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", userError(err))
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOpts{}

	cmd := &cobra.Command{
		Use:           "romcalc",
		Short:         "romcalc - Roman numeral calculator that answers in English words",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace("")
			if err != nil {
				return err
			}

			cleanup := setupLogging(ws.Root, opts)
			defer cleanup()

			deps := tui.Deps{
				WorkspaceLocator:     workspacefinder.NewFinder(),
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Logger:               logger.L(),
				Debug:                opts.debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .romcalc/logs/romcalc.log")

	cmd.AddCommand(
		initCmd(opts),
		runCmd(opts),
		evalCmd(),
		runsCmd(opts),
		versionCmd(),
	)
	return cmd
}
