package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jshintmate/pkg/config"
)

func TestNewSettings(t *testing.T) {
	t.Parallel()

	settings := config.NewSettings()
	assert.Equal(t, "jshint", settings.Engine)
	assert.Equal(t, config.ReporterAuto, settings.Reporter)
	assert.Equal(t, config.FormatHTML, settings.Format)
	assert.Equal(t, 30, settings.MaxSearchDepth)
	assert.Equal(t, "jsonHintConfig", settings.PackageConfigKey)
	assert.Equal(t, ".jshintrc", settings.RCFileName)
	assert.NotEmpty(t, settings.MarkerRoot)
	assert.Contains(t, settings.ExtraPath, "/usr/local/bin")
}

func TestSettingsLineOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		startLine int
		want      int
	}{
		{"unset", 0, 0},
		{"first line", 1, 0},
		{"later line", 11, 10},
		{"negative clamps", -4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			settings := &config.Settings{InputStartLine: tt.startLine}
			assert.Equal(t, tt.want, settings.LineOffset())
		})
	}

	var nilSettings *config.Settings
	assert.Equal(t, 0, nilSettings.LineOffset())
}

func TestFromYAML(t *testing.T) {
	t.Parallel()

	t.Run("parses persistent fields", func(t *testing.T) {
		t.Parallel()

		data := []byte(`
engine: /opt/node/bin/jshint
reporter: jslint
format: text
max_search_depth: 12
extra_path:
  - /opt/node/bin
log_level: debug
`)
		settings, err := config.FromYAML(data)
		require.NoError(t, err)
		assert.Equal(t, "/opt/node/bin/jshint", settings.Engine)
		assert.Equal(t, config.ReporterJSLint, settings.Reporter)
		assert.Equal(t, config.FormatText, settings.Format)
		assert.Equal(t, 12, settings.MaxSearchDepth)
		assert.Equal(t, []string{"/opt/node/bin"}, settings.ExtraPath)
		assert.Equal(t, "debug", settings.LogLevel)
	})

	t.Run("invalid YAML", func(t *testing.T) {
		t.Parallel()

		_, err := config.FromYAML([]byte("engine: [unterminated"))
		require.Error(t, err)
	})
}

func TestToYAMLOmitsEditorFields(t *testing.T) {
	t.Parallel()

	settings := config.NewSettings()
	settings.FilePath = "/work/app.js"
	settings.Quiet = true

	data, err := settings.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "engine: jshint")
	assert.NotContains(t, string(data), "/work/app.js")

	var nilSettings *config.Settings
	data, err = nilSettings.ToYAML()
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestMerge(t *testing.T) {
	t.Parallel()

	base := config.NewSettings()
	base.FilePath = "/work/app.js"

	overlay := &config.Settings{
		Engine:   "eshint",
		FilePath: "/elsewhere.js",
	}

	merged := config.Merge(base, overlay)
	assert.Equal(t, "eshint", merged.Engine)
	assert.Equal(t, "/work/app.js", merged.FilePath)
	assert.Equal(t, base.RCFileName, merged.RCFileName)
	assert.Equal(t, "jshint", base.Engine, "base must not be mutated")

	assert.Same(t, base, config.Merge(base, nil))
	assert.NotNil(t, config.Merge(nil, overlay))
}

func TestOutputFormatIsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, config.FormatHTML.IsValid())
	assert.True(t, config.FormatText.IsValid())
	assert.True(t, config.FormatAuto.IsValid())
	assert.False(t, config.OutputFormat("sarif").IsValid())
}
