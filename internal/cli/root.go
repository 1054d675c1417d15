package cli

import (
	"fmt"
	"os"

	listcmd "gb2gh/internal/cli/list"
	migratecmd "gb2gh/internal/cli/migrate"
	"gb2gh/internal/cli/utils"
	"gb2gh/internal/configutils"
	"gb2gh/internal/systemcodes"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "gb2gh",
	Short: "gb2gh migrates issues and pull requests from GitBucket to GitHub",
	Long: `Copies the issues, pull requests and comments of a GitBucket repository
into a GitHub repository, keeping their numbering order.`,
	Version:      fmt.Sprintf("%v, commit %v, built at %v", version, commit, date),
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		err := setup(cmd.Flags())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(systemcodes.ErrorCodeConfig)
		}
	},
}

// setup applies the log level and loads the global configuration.
func setup(flags *pflag.FlagSet) error {
	level, err := flags.GetString("log-level")
	if err != nil {
		return err
	}

	err = utils.ConfigureLogging(level, os.Stderr)
	if err != nil {
		return err
	}

	path, err := flags.GetString("config")
	if err != nil {
		return err
	}

	return configutils.LoadGlobal(path)
}

func Execute() {
	rootCmd.AddCommand(
		migratecmd.New(),
		listcmd.New(),
	)

	rootCmd.PersistentFlags().String("config", "", "config path")
	rootCmd.PersistentFlags().String("log-level", "info", "log level, values - (debug, info, warn, error)")

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(systemcodes.ErrorCodeGeneric)
	}
}
