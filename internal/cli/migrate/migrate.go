package migrate

import (
	"fmt"
	"io"

	"gb2gh/internal/cli/paramutils"
	"gb2gh/internal/cli/utils"
	"gb2gh/internal/clientutils"
	"gb2gh/internal/config"
	"gb2gh/internal/domain/record"
	"gb2gh/internal/errcodes"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	newSource = func(c *config.Config) record.Source { return clientutils.ClientFactory{}.Source(c) }
	newTarget = func(c *config.Config) record.Target { return clientutils.ClientFactory{}.Target(c) }
	confirm   = utils.PromptConfirm
)

func runCmd(cmd *cobra.Command, args []string) error {
	params := &cmdParams{}
	fillDefaultParams(params)
	fillFlagParams(paramutils.NewFlagSet(cmd.Flags()), params)
	err := validateParams(params)
	if err != nil {
		return err
	}

	return execute(
		newSource(params.Config),
		newTarget(params.Config),
		params,
		cmd.OutOrStdout(),
	)
}

func execute(source record.Source, target record.Target, params *cmdParams, out io.Writer) error {
	log.Info().Str("source", params.Config.Source.URL).Msg("reading source")
	records, err := source.FetchAll()
	if err != nil {
		return errors.Wrap(err, "could not read the source")
	}
	log.Info().Int("records", len(records)).Msg("source read")

	opts := params.Config.WriteOptions()
	if params.DryRun {
		actions, err := record.Plan(records, opts)
		if err != nil {
			return err
		}

		fmt.Fprintln(out, utils.PlanTable(actions))
		return nil
	}

	if !params.Yes {
		ok, err := confirm(fmt.Sprintf(
			"Create %d issues and pull requests in %s?",
			len(records),
			params.Config.Target.URL,
		))
		if err != nil {
			return err
		}
		if !ok {
			return errcodes.ErrMigrationNotConfirmed
		}
	}

	progress := utils.NewProgress(out)
	service := record.NewMigrateService(target, opts)
	service.OnWritten = func(p *record.Progress) {
		progress.Update(p)
		log.Debug().
			Str("kind", string(p.Record.Kind())).
			Int64("source", p.Record.Info().Number).
			Int64("target", p.Created.Number).
			Msg("record migrated")
	}

	progress.Start()
	summary, err := service.WriteAll(records)
	progress.Stop()

	fmt.Fprintln(out, utils.SummaryTable(summary))
	if err != nil {
		log.Error().
			Int("written", summary.Records).
			Int("total", len(records)).
			Msg("migration stopped, the target repository is partially migrated")
		return err
	}
	log.Info().Int("records", summary.Records).Msg("migration done")

	return nil
}

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrate issues and pull requests",
		Long: `Copies every issue and pull request of the source repository to the target
repository, in number order, with their comments. Open pull requests are
recreated, closed ones become closed placeholder issues. Running it twice
creates everything twice.`,
		Args: cobra.NoArgs,
		Run:  utils.RunCommandWrapper(runCmd),
	}

	paramutils.AddSourceFlags(cmd.Flags())
	paramutils.AddTargetFlags(cmd.Flags())
	cmd.Flags().Bool("dry-run", false, "print the planned actions without writing anything")
	cmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")

	return cmd
}
