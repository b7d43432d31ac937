package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/infra/fsworkspace"
	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/infra/logger"
	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/usecase"
)

func initCmd(opts *globalOpts) *cobra.Command {
	var path string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a romcalc workspace (romcalc.yaml, sample input, runs/)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			root, err := uc.Execute(path, force)
			if err != nil {
				return err
			}

			cleanup := setupLogging(root, opts)
			defer cleanup()
			logger.L().Info("workspace.initialized", "root", root, "force", force)

			fmt.Fprintf(cmd.OutOrStdout(), "Workspace ready at %s\n", root)
			fmt.Fprintln(cmd.OutOrStdout(), "Next: edit Input.txt and run `romcalc run`")
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", ".", "Directory to initialize")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing romcalc.yaml and sample input")
	return cmd
}
