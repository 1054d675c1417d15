package config

import (
	"testing"

	"gb2gh/internal/domain/record"
	"gb2gh/internal/errcodes"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

type mockFlagSet struct {
	values map[string]string
}

func (m *mockFlagSet) GetStringOrDefault(flag, d string) string {
	if v, ok := m.values[flag]; ok && v != "" {
		return v
	}

	return d
}

func validConfig() *Config {
	return &Config{
		Source: Endpoint{URL: "http://gitbucket/api/v3/repos/o/r", Token: "s", Master: "master"},
		Target: Endpoint{URL: "https://api.github.com/repos/o/r", Token: "t", Master: "main"},
		Owner:  "octo",
	}
}

func TestFromViper(t *testing.T) {
	v := viper.New()
	v.Set("source.url", "http://gitbucket/api/v3/repos/o/r")
	v.Set("source.token", "s")
	v.Set("source.master", "master")
	v.Set("target.url", "https://api.github.com/repos/o/r")
	v.Set("target.token", "t")
	v.Set("target.master", "main")
	v.Set("target.owner", "octo")

	assert.Equal(t, validConfig(), FromViper(v))
}

func TestFillFlagParams(t *testing.T) {
	t.Run("flags override configured values", func(t *testing.T) {
		c := validConfig()
		FillFlagParams(&mockFlagSet{values: map[string]string{
			"target-master": "trunk",
			"owner":         "someone",
		}}, c)

		assert.Equal(t, "trunk", c.Target.Master)
		assert.Equal(t, "someone", c.Owner)
		assert.Equal(t, "master", c.Source.Master)
		assert.Equal(t, "t", c.Target.Token)
	})

	t.Run("unset flags keep configured values", func(t *testing.T) {
		c := validConfig()
		FillFlagParams(&mockFlagSet{}, c)
		assert.Equal(t, validConfig(), c)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		want   error
	}{
		{"valid config", func(c *Config) {}, nil},
		{"missing source url", func(c *Config) { c.Source.URL = "" }, errcodes.ErrMissingSourceURL},
		{"missing source token", func(c *Config) { c.Source.Token = "" }, errcodes.ErrMissingSourceToken},
		{"missing target url", func(c *Config) { c.Target.URL = "" }, errcodes.ErrMissingTargetURL},
		{"missing target token", func(c *Config) { c.Target.Token = "" }, errcodes.ErrMissingTargetToken},
		{"missing source master", func(c *Config) { c.Source.Master = "" }, errcodes.ErrMissingMasterBranch},
		{"missing owner", func(c *Config) { c.Owner = "" }, errcodes.ErrMissingOwner},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validConfig()
			tt.modify(c)
			assert.Equal(t, tt.want, c.Validate())
		})
	}

	t.Run("reading the source needs no target", func(t *testing.T) {
		c := validConfig()
		c.Target = Endpoint{}
		c.Owner = ""
		assert.NoError(t, c.ValidateSource())
	})
}

func TestConfig_WriteOptions(t *testing.T) {
	assert.Equal(t, &record.WriteOptions{
		SourceMaster: "master",
		TargetMaster: "main",
		DefaultOwner: "octo",
	}, validConfig().WriteOptions())
}
