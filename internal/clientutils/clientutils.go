package clientutils

import (
	"gb2gh/internal/config"
	"gb2gh/internal/domain/record"
	"gb2gh/internal/pkg/gitbucket"
	"gb2gh/internal/pkg/github"
)

type ClientFactory struct{}

func (cf ClientFactory) Source(c *config.Config) record.Source {
	return gitbucket.New(&gitbucket.ClientOptions{
		BaseURL: c.Source.URL,
		Token:   c.Source.Token,
	})
}

func (cf ClientFactory) Target(c *config.Config) record.Target {
	return github.New(&github.ClientOptions{
		BaseURL: c.Target.URL,
		Token:   c.Target.Token,
	})
}
