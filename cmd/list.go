package cmd

import (
	"github.com/spf13/cobra"

	"camelsnake.dev/pkg/camelsnake/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [ROOT] [MODULE...]",
		Short: "List rename candidates without editing",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			discover, project, err := discoverArgs(args)
			if err != nil {
				return err
			}

			return workflow.List(cmd.Context(), domain.ListArgs{
				DiscoverArgs: discover,
				Marker:       marker(project),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
