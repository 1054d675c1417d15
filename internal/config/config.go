package config

import (
	"gb2gh/internal/domain/record"
	"gb2gh/internal/errcodes"

	"github.com/spf13/viper"
)

type FlagSet interface {
	GetStringOrDefault(flag, d string) string
}

// Endpoint is one side of the migration: the repository API base URL, e.g.
// https://api.github.com/repos/owner/name, its token and master branch name.
type Endpoint struct {
	URL    string
	Token  string
	Master string
}

type Config struct {
	Source Endpoint
	Target Endpoint
	// Owner is assigned to every created issue.
	Owner string
}

func FromViper(v *viper.Viper) *Config {
	return &Config{
		Source: Endpoint{
			URL:    v.GetString("source.url"),
			Token:  v.GetString("source.token"),
			Master: v.GetString("source.master"),
		},
		Target: Endpoint{
			URL:    v.GetString("target.url"),
			Token:  v.GetString("target.token"),
			Master: v.GetString("target.master"),
		},
		Owner: v.GetString("target.owner"),
	}
}

func Load() *Config {
	return FromViper(viper.GetViper())
}

// FillFlagParams overrides configured values with the flags that are set.
func FillFlagParams(flags FlagSet, c *Config) {
	var (
		sourceURL    = flags.GetStringOrDefault("source-url", c.Source.URL)
		sourceToken  = flags.GetStringOrDefault("source-token", c.Source.Token)
		sourceMaster = flags.GetStringOrDefault("source-master", c.Source.Master)
		targetURL    = flags.GetStringOrDefault("target-url", c.Target.URL)
		targetToken  = flags.GetStringOrDefault("target-token", c.Target.Token)
		targetMaster = flags.GetStringOrDefault("target-master", c.Target.Master)
		owner        = flags.GetStringOrDefault("owner", c.Owner)
	)

	c.Source = Endpoint{URL: sourceURL, Token: sourceToken, Master: sourceMaster}
	c.Target = Endpoint{URL: targetURL, Token: targetToken, Master: targetMaster}
	c.Owner = owner
}

// ValidateSource checks what reading the source needs.
func (c *Config) ValidateSource() error {
	if c.Source.URL == "" {
		return errcodes.ErrMissingSourceURL
	}
	if c.Source.Token == "" {
		return errcodes.ErrMissingSourceToken
	}

	return nil
}

func (c *Config) Validate() error {
	err := c.ValidateSource()
	if err != nil {
		return err
	}

	if c.Target.URL == "" {
		return errcodes.ErrMissingTargetURL
	}
	if c.Target.Token == "" {
		return errcodes.ErrMissingTargetToken
	}
	if c.Source.Master == "" || c.Target.Master == "" {
		return errcodes.ErrMissingMasterBranch
	}
	if c.Owner == "" {
		return errcodes.ErrMissingOwner
	}

	return nil
}

func (c *Config) WriteOptions() *record.WriteOptions {
	return &record.WriteOptions{
		SourceMaster: c.Source.Master,
		TargetMaster: c.Target.Master,
		DefaultOwner: c.Owner,
	}
}
