package migrate

import (
	"gb2gh/internal/cli/paramutils"
	"gb2gh/internal/config"
)

type cmdParams struct {
	Config *config.Config
	DryRun bool
	Yes    bool
}

var loadConfig = config.Load

func fillDefaultParams(params *cmdParams) {
	params.Config = loadConfig()
}

func fillFlagParams(flags paramutils.FlagSet, params *cmdParams) {
	config.FillFlagParams(flags, params.Config)

	var (
		dryRun = flags.GetBoolOrDefault("dry-run", params.DryRun)
		yes    = flags.GetBoolOrDefault("yes", params.Yes)
	)

	params.DryRun = dryRun
	params.Yes = yes
}

// validateParams only asks for the source when nothing is written.
var validateParams = func(params *cmdParams) error {
	if params.DryRun {
		return params.Config.ValidateSource()
	}

	return params.Config.Validate()
}
