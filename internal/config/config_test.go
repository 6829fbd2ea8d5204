package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	require.NotNil(t, cfg)

	assert.Equal(t, "acme-app", cfg.Template.Base)
	assert.Empty(t, cfg.Template.Repo)
	assert.Equal(t, "git", cfg.Git.Binary)
	assert.Equal(t, 1, cfg.Git.Depth)
	assert.Equal(t, "Initial commit from template (liscaf)", cfg.Git.CommitMessage)
	assert.Equal(t, "sequential", cfg.Replace.Strategy)
	assert.True(t, cfg.Output.Color)
	assert.Equal(t, 30*time.Second, cfg.HTTP.TimeoutDuration())
	assert.NoError(t, Validate(cfg))
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("yaml file overrides defaults", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "config.yaml", `
template:
  base: widget-factory
  repo: acme/widget-template
git:
  depth: 0
replace:
  strategy: confluent
output:
  color: false
`)
		loader := &ViperLoader{Getenv: envMap(nil)}
		cfg, err := loader.Load(path)
		require.NoError(t, err)

		assert.Equal(t, "widget-factory", cfg.Template.Base)
		assert.Equal(t, "acme/widget-template", cfg.Template.Repo)
		assert.Equal(t, 0, cfg.Git.Depth)
		assert.Equal(t, "git", cfg.Git.Binary)
		assert.Equal(t, DefaultCommitMessage, cfg.Git.CommitMessage)
		assert.Equal(t, "confluent", cfg.Replace.Strategy)
		assert.False(t, cfg.Output.Color)
		assert.Equal(t, 30, cfg.HTTP.Timeout)
	})

	t.Run("json file", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "config.json", `{"git": {"commit_message": "chore: scaffold"}}`)
		cfg, err := (&ViperLoader{Getenv: envMap(nil)}).Load(path)
		require.NoError(t, err)
		assert.Equal(t, "chore: scaffold", cfg.Git.CommitMessage)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := NewLoader().Load(filepath.Join(t.TempDir(), "config.yaml"))
		require.Error(t, err)

		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, ConfigNotFound, cfgErr.Type)
		assert.True(t, IsNotFound(err))
	})

	t.Run("invalid syntax", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "config.yaml", "template: [unterminated\n")
		_, err := (&ViperLoader{Getenv: envMap(nil)}).Load(path)

		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, ConfigInvalid, cfgErr.Type)
	})

	t.Run("validation failure names the file", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "config.yaml", "replace:\n  strategy: random\n")
		_, err := (&ViperLoader{Getenv: envMap(nil)}).Load(path)

		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Equal(t, ConfigValidationFailed, cfgErr.Type)
		assert.Equal(t, "replace.strategy", cfgErr.Field)
		assert.Equal(t, path, cfgErr.File)
	})
}

func TestLoadOrDefault(t *testing.T) {
	t.Parallel()

	t.Run("defaults for missing file", func(t *testing.T) {
		t.Parallel()
		cfg, err := (&ViperLoader{Getenv: envMap(nil)}).LoadOrDefault(filepath.Join(t.TempDir(), "none.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()
		cfg, err := (&ViperLoader{Getenv: envMap(nil)}).LoadOrDefault("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Parallel()
		path := writeConfig(t, "config.yaml", "template:\n  base: from-file\n")
		loader := &ViperLoader{Getenv: envMap(map[string]string{
			"LISCAF_TEMPLATE_BASE":    "from-env",
			"LISCAF_GIT_DEPTH":        "5",
			"LISCAF_OUTPUT_COLOR":     "false",
			"LISCAF_REPLACE_STRATEGY": "confluent",
		})}

		cfg, err := loader.LoadOrDefault(path)
		require.NoError(t, err)
		assert.Equal(t, "from-env", cfg.Template.Base)
		assert.Equal(t, 5, cfg.Git.Depth)
		assert.False(t, cfg.Output.Color)
		assert.Equal(t, "confluent", cfg.Replace.Strategy)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{name: "empty base", mutate: func(c *Config) { c.Template.Base = "--" }, field: "template.base"},
		{name: "empty binary", mutate: func(c *Config) { c.Git.Binary = " " }, field: "git.binary"},
		{name: "negative depth", mutate: func(c *Config) { c.Git.Depth = -1 }, field: "git.depth"},
		{name: "empty commit message", mutate: func(c *Config) { c.Git.CommitMessage = "" }, field: "git.commit_message"},
		{name: "unknown strategy", mutate: func(c *Config) { c.Replace.Strategy = "greedy" }, field: "replace.strategy"},
		{name: "negative timeout", mutate: func(c *Config) { c.HTTP.Timeout = -1 }, field: "http.timeout"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, ConfigValidationFailed, cfgErr.Type)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestConfigErrorMessage(t *testing.T) {
	t.Parallel()

	err := NewConfigErrorWithField(ConfigValidationFailed, "/etc/liscaf.yaml", "git.depth", "clone depth cannot be negative")
	assert.Equal(t, "configuration error in /etc/liscaf.yaml [field: git.depth]: clone depth cannot be negative", err.Error())
	assert.Equal(t, "ConfigValidationFailed", err.Type.String())
}

func TestExpandPath(t *testing.T) {
	t.Parallel()

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandPath("~")
	require.NoError(t, err)
	assert.Equal(t, home, got)

	got, err = ExpandPath("~/projects")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "projects"), got)

	got, err = ExpandPath("relative/dir")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))

	got, err = ExpandPath("")
	require.NoError(t, err)
	assert.Empty(t, got)
}
