package list

import (
	"fmt"
	"io"

	"gb2gh/internal/cli/paramutils"
	"gb2gh/internal/cli/utils"
	"gb2gh/internal/clientutils"
	"gb2gh/internal/config"
	"gb2gh/internal/domain/record"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var newSource = func(c *config.Config) record.Source { return clientutils.ClientFactory{}.Source(c) }

func runCmd(cmd *cobra.Command, args []string) error {
	params := &listCmdParams{}
	fillDefaultParams(params)
	fillFlagParams(paramutils.NewFlagSet(cmd.Flags()), params)
	err := validateParams(params)
	if err != nil {
		return err
	}

	return execute(newSource(params.Config), params, cmd.OutOrStdout())
}

func execute(source record.Source, params *listCmdParams, out io.Writer) error {
	records, err := source.FetchAll()
	if err != nil {
		return err
	}

	if params.State != stateAll {
		records = record.FilterByState(records, record.State(params.State))
	}
	log.Debug().Int("records", len(records)).Str("state", params.State).Msg("listing records")

	fmt.Fprintln(out, utils.RecordTable(records))
	if params.Comments {
		fmt.Fprintln(out, utils.CommentTable(records))
	}

	return nil
}

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List source issues and pull requests",
		Long:    `Lists the issues and pull requests of the source repository in the order they would be migrated`,
		Args:    cobra.NoArgs,
		Run:     utils.RunCommandWrapper(runCmd),
	}

	paramutils.AddSourceFlags(cmd.Flags())
	cmd.Flags().StringP("state", "s", "", "filter by state, values - (open, closed, all)")
	cmd.Flags().BoolP("comments", "c", false, "also list the comments of every record")

	return cmd
}
