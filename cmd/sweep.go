package cmd

import (
	"github.com/spf13/cobra"

	"camelsnake.dev/pkg/camelsnake/internal/domain"
)

// sweepCmd represents the sweep command.
var sweepCmd = newSweepCmd()

func newSweepCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sweep [ROOT] [MODULE...]",
		Short: "Remove review markers left by an interrupted run",
		Long:  sweepLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			discover, project, err := discoverArgs(args)
			if err != nil {
				return err
			}

			_, err = workflow.Sweep(cmd.Context(), domain.SweepArgs{
				DiscoverArgs: discover,
				Marker:       marker(project),
			})

			return err
		},
	}
}

func init() {
	rootCmd.AddCommand(sweepCmd)
}
