package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"camelsnake.dev/pkg/camelsnake/internal/domain"
	m "camelsnake.dev/pkg/camelsnake/internal/model"
)

var yesToAllFlag bool
var yesNoDefaultFlag bool
var docsFlag bool
var reportFlag string
var backupFlag string
var noSweepOnAbortFlagValue bool
var metricsFileFlag string

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [ROOT] [MODULE...]",
		Short: "Rename identifiers to PEP 8 style",
		Long:  runLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			discover, project, err := discoverArgs(args)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			// A partial run is still a successful exit; the report says so.
			_, err = workflow.Run(ctx, domain.RunArgs{
				DiscoverArgs: discover,
				Mode:         runMode(),
				Docs:         viper.GetBool(docsConfigKey) || project.Docs,
				Marker:       marker(project),
				Report:       m.Path(viper.GetString(reportConfigKey)),
				Backup:       m.Path(backupFlag),
				SweepOnAbort: viper.GetBool(sweepOnAbortConfigKey) && !noSweepOnAbortFlagValue,
				MetricsFile:  m.Path(viper.GetString(metricsFileConfigKey)),
			})

			return err
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&yesToAllFlag, yesToAllFlagName, "y", false, "accept every proposal without asking")
	cmd.Flags().BoolVar(&yesNoDefaultFlag, yesNoDefaultFlagName, false, "accept clean proposals and keep those with warnings without asking")
	cmd.MarkFlagsMutuallyExclusive(yesToAllFlagName, yesNoDefaultFlagName)

	cmd.Flags().BoolVarP(&docsFlag, docsFlagName, "d", viper.GetBool(docsConfigKey), "also rename matches inside strings and comments")
	bindFlagToConfig(cmd.Flags().Lookup(docsFlagName), docsConfigKey)

	cmd.Flags().StringVarP(&reportFlag, reportFlagName, "r", viper.GetString(reportConfigKey), "write the run report as YAML to this file")
	bindFlagToConfig(cmd.Flags().Lookup(reportFlagName), reportConfigKey)

	cmd.Flags().StringVar(&metricsFileFlag, metricsFileFlagName, viper.GetString(metricsFileConfigKey), "write run counters in Prometheus textfile format to this file")
	bindFlagToConfig(cmd.Flags().Lookup(metricsFileFlagName), metricsFileConfigKey)

	cmd.Flags().StringVar(&backupFlag, backupFlagName, "", "copy the project to this directory before the first edit")
	cmd.Flags().BoolVar(&noSweepOnAbortFlagValue, noSweepOnAbortFlag, false, "leave review markers in place when the run is stopped")
}

func runMode() m.Mode {
	switch {
	case yesToAllFlag:
		return m.ModeAcceptAll
	case yesNoDefaultFlag:
		return m.ModeDefaultPolicy
	default:
		return m.ModeInteractive
	}
}
