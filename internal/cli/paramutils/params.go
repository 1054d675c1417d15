package paramutils

import (
	"github.com/spf13/pflag"
)

type FlagSet interface {
	GetStringOrDefault(flag, d string) string
	GetBoolOrDefault(flag string, d bool) bool
}

func NewFlagSet(flags *pflag.FlagSet) FlagSet {
	return &PFlagSetWrapper{Flags: flags}
}

type PFlagSetWrapper struct {
	Flags *pflag.FlagSet
}

func (fs *PFlagSetWrapper) GetStringOrDefault(flag, d string) string {
	s, err := fs.Flags.GetString(flag)
	if err != nil || s == "" {
		return d
	}

	return s
}

func (fs *PFlagSetWrapper) GetBoolOrDefault(flag string, d bool) bool {
	s, err := fs.Flags.GetBool(flag)
	if err != nil {
		return d
	}

	return s
}

// AddSourceFlags registers the flags overriding the source configuration.
func AddSourceFlags(flags *pflag.FlagSet) {
	flags.String("source-url", "", "source repository API url, e.g. http://gitbucket.example.com/api/v3/repos/owner/repo")
	flags.String("source-token", "", "source API token")
	flags.String("source-master", "", "master branch name on the source (default master)")
}

// AddTargetFlags registers the flags overriding the target configuration.
func AddTargetFlags(flags *pflag.FlagSet) {
	flags.String("target-url", "", "target repository API url, e.g. https://api.github.com/repos/owner/repo")
	flags.String("target-token", "", "target API token")
	flags.String("target-master", "", "master branch name on the target (default main)")
	flags.String("owner", "", "user assigned to every created issue")
}
