package paramutils

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPFlagSetWrapper(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddSourceFlags(flags)
	AddTargetFlags(flags)
	flags.Bool("yes", false, "")
	require.NoError(t, flags.Parse([]string{"--source-url", "http://gitbucket", "--yes"}))
	fs := NewFlagSet(flags)

	t.Run("returns the flag value when set", func(t *testing.T) {
		assert.Equal(t, "http://gitbucket", fs.GetStringOrDefault("source-url", "default"))
		assert.True(t, fs.GetBoolOrDefault("yes", false))
	})

	t.Run("returns the default for an empty flag", func(t *testing.T) {
		assert.Equal(t, "default", fs.GetStringOrDefault("target-url", "default"))
	})

	t.Run("returns the default for an unknown flag", func(t *testing.T) {
		assert.Equal(t, "default", fs.GetStringOrDefault("unknown", "default"))
		assert.True(t, fs.GetBoolOrDefault("unknown", true))
	})
}
