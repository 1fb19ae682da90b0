package config_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gridmark/pkg/config"
)

func TestNewConfig(t *testing.T) {
	cfg := config.NewConfig()

	assert.Equal(t, config.FlavorCommonMark, cfg.Flavor)
	assert.Equal(t, config.DefaultDataAs, cfg.HTML.DataAs)
	assert.Equal(t, ".html", cfg.Output.Extension)
	assert.Equal(t, config.FormatText, cfg.Format)
	assert.Zero(t, cfg.Jobs)
}

func TestConfigClone(t *testing.T) {
	t.Run("nil config returns nil", func(t *testing.T) {
		var c *config.Config
		assert.Nil(t, c.Clone())
	})

	t.Run("deep copies Ignore", func(t *testing.T) {
		original := config.NewConfig()
		original.Ignore = []string{"drafts/**"}
		original.Jobs = 4
		original.Stdout = true

		clone := original.Clone()
		require.NotNil(t, clone)
		assert.NotSame(t, original, clone)

		clone.Ignore[0] = "changed"
		assert.Equal(t, "drafts/**", original.Ignore[0])

		// CLI-only fields survive the copy.
		assert.Equal(t, 4, clone.Jobs)
		assert.True(t, clone.Stdout)
	})
}

func TestYAMLRoundTrip(t *testing.T) {
	original := config.NewConfig()
	original.Flavor = config.FlavorGFM
	original.HTML.Unsafe = true
	original.Output.Dir = "site"
	original.Ignore = []string{"drafts/**"}
	original.Jobs = 8

	data, err := original.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "data_as: songbook-grid")
	assert.NotContains(t, string(data), "jobs")

	parsed, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, config.FlavorGFM, parsed.Flavor)
	assert.True(t, parsed.HTML.Unsafe)
	assert.Equal(t, "site", parsed.Output.Dir)
	assert.Equal(t, []string{"drafts/**"}, parsed.Ignore)
	assert.Zero(t, parsed.Jobs)
}

func TestToYAMLWithHeader(t *testing.T) {
	data, err := config.NewConfig().ToYAMLWithHeader("# generated")
	require.NoError(t, err)
	assert.Regexp(t, `^# generated\n\nflavor: commonmark`, string(data))
}

func TestFromYAMLInvalid(t *testing.T) {
	_, err := config.FromYAML([]byte("flavor: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse yaml")
}

func TestGenerateTemplate(t *testing.T) {
	t.Run("yaml parses as config", func(t *testing.T) {
		data, err := config.GenerateTemplate(config.TemplateOptions{})
		require.NoError(t, err)

		cfg, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, config.FlavorCommonMark, cfg.Flavor)
		assert.Equal(t, config.DefaultDataAs, cfg.HTML.DataAs)
		assert.Equal(t, []string{"node_modules/**", "vendor/**"}, cfg.Ignore)
	})

	t.Run("json", func(t *testing.T) {
		data, err := config.GenerateTemplate(config.TemplateOptions{Format: "json"})
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, "commonmark", decoded["flavor"])
	})
}

func TestFlavorAndFormatValidity(t *testing.T) {
	assert.True(t, config.FlavorGFM.IsValid())
	assert.False(t, config.Flavor("mdx").IsValid())
	assert.True(t, config.FormatJSON.IsValid())
	assert.False(t, config.OutputFormat("sarif").IsValid())
}

func TestHTMLConfig_Attribute(t *testing.T) {
	t.Parallel()

	assert.Equal(t, config.DefaultDataAs, config.NewConfig().HTML.Attribute())
	assert.Equal(t, "chords", config.HTMLConfig{DataAs: "chords"}.Attribute())
	assert.Empty(t, config.HTMLConfig{DataAs: config.DataAsNone}.Attribute())
}
