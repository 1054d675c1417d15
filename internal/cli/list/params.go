package list

import (
	"gb2gh/internal/cli/paramutils"
	"gb2gh/internal/config"
	"gb2gh/internal/errcodes"

	"golang.org/x/exp/slices"
)

const stateAll = "all"

var states = []string{"open", "closed", stateAll}

type listCmdParams struct {
	Config   *config.Config
	State    string
	Comments bool
}

var loadConfig = config.Load

func fillDefaultParams(params *listCmdParams) {
	params.Config = loadConfig()
	params.State = stateAll
}

func fillFlagParams(flags paramutils.FlagSet, params *listCmdParams) {
	config.FillFlagParams(flags, params.Config)
	params.State = flags.GetStringOrDefault("state", params.State)
	params.Comments = flags.GetBoolOrDefault("comments", params.Comments)
}

func validateParams(params *listCmdParams) error {
	if !slices.Contains(states, params.State) {
		return errcodes.ErrUnknownStateFilter
	}

	return params.Config.ValidateSource()
}
