// Package cmd provides the root command and CLI setup for camelsnake.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"camelsnake.dev/pkg/camelsnake/internal/adapter"
	"camelsnake.dev/pkg/camelsnake/internal/controller"
	"camelsnake.dev/pkg/camelsnake/internal/domain"
	m "camelsnake.dev/pkg/camelsnake/internal/model"
	"camelsnake.dev/pkg/camelsnake/internal/observability"
)

var sourceFSAdapter adapter.SourceFSAdapter
var resolver adapter.Resolver
var reportStore adapter.ReportStore
var projectConfigLoader adapter.ProjectConfigLoader
var discovery domain.Discovery
var metrics *observability.Metrics
var workflow domain.Workflow
var ui controller.UI

// excludePatterns is a root-level flag that filters modules for every command.
var excludePatterns []string

var markerFlag string
var logFileFlag string
var verboseFlag bool

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(rootCmd))
	sourceFSAdapter = adapter.NewLocalSourceFSAdapter()
	resolver = adapter.NewPythonResolver(sourceFSAdapter)
	reportStore = adapter.NewReportStore()
	projectConfigLoader = adapter.NewLocalProjectConfigLoader(sourceFSAdapter)
	discovery = domain.NewDiscovery(sourceFSAdapter)
	metrics = observability.NewMetrics()
	workflow = domain.NewWorkflow(
		sourceFSAdapter,
		resolver,
		reportStore,
		ui,
		discovery,
		metrics,
	)
}

const argumentsHelp = `Arguments:
  ROOT       project directory (default: current directory); when it holds
             __init__.py its sub-packages are processed too
  MODULE...  modules to process instead of every discovered one; shell
             globs such as "pkg/*.py" are expanded`

const rootLongDescription = `camelsnake renames Python identifiers between camelCase and snake_case
following PEP 8: functions, methods, parameters and variables become
snake_case, classes become CapWords.

Every rename is resolved by scope and propagated to the modules that import
the name. Each proposal is shown as a diff before it is applied, collisions
with existing names are flagged, and a final pass reports names that could
not be renamed everywhere.

` + argumentsHelp

const runLongDescription = `Review and apply renames module by module (default: interactive).

Replies: y rename, n keep, c choose another name, d toggle renaming inside
strings and comments, q stop. --yes-to-all accepts every proposal;
--yes-no-default accepts clean proposals and keeps those with warnings.

` + argumentsHelp

const listLongDescription = `List the rename candidates of each module without editing anything.

` + argumentsHelp

const sweepLongDescription = `Remove the review markers an interrupted run left in the sources.

` + argumentsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "camelsnake",
		Short: "PEP 8 identifier renaming for Python projects",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude modules and directories matching a glob (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().StringVar(&markerFlag, markerFlagName, viper.GetString(markerConfigKey), "review marker appended to renamed identifiers during a run")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(markerFlagName), markerConfigKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "log file (default: "+defaultLogFilename+")")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// parseArgs splits the positional arguments into the project root and the
// explicit modules.
func parseArgs(args []string) (m.Path, []string) {
	if len(args) == 0 {
		return ".", nil
	}

	return m.Path(args[0]), args[1:]
}

// discoverArgs merges the command line with the [tool.camelsnake] table of
// the project. Command line and camelsnake.yaml values win; project
// excludes are added to the configured ones.
func discoverArgs(args []string) (domain.DiscoverArgs, m.ProjectConfig, error) {
	root, modules := parseArgs(args)

	project, err := projectConfigLoader.LoadProjectConfig(root)
	if err != nil {
		return domain.DiscoverArgs{}, project, err
	}

	exclude := append([]string{}, viper.GetStringSlice(excludeConfigKey)...)
	exclude = append(exclude, project.Exclude...)

	return domain.DiscoverArgs{
		Root:    root,
		Modules: modules,
		Exclude: exclude,
	}, project, nil
}

// marker returns the configured review marker, falling back to the project
// table.
func marker(project m.ProjectConfig) string {
	if value := viper.GetString(markerConfigKey); value != "" {
		return value
	}

	return project.Marker
}
