package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding config keys,
// e.g. LISCAF_TEMPLATE_BASE for template.base.
const EnvPrefix = "LISCAF"

// DefaultCommitMessage is the message of the commit created for a new repo.
const DefaultCommitMessage = "Initial commit from template (liscaf)"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Template: TemplateConfig{
			Base: "acme-app",
		},
		Git: GitConfig{
			Binary:        "git",
			Depth:         1,
			CommitMessage: DefaultCommitMessage,
		},
		Replace: ReplaceConfig{
			Strategy: "sequential",
		},
		Output: OutputConfig{
			Color: true,
		},
		HTTP: HTTPConfig{
			Timeout: 30,
		},
	}
}

// setDefaults registers every key with viper so that environment variables
// are honored during Unmarshal even when no file sets the key.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("template.base", cfg.Template.Base)
	v.SetDefault("template.repo", cfg.Template.Repo)
	v.SetDefault("template.manifest", cfg.Template.Manifest)
	v.SetDefault("git.binary", cfg.Git.Binary)
	v.SetDefault("git.depth", cfg.Git.Depth)
	v.SetDefault("git.commit_message", cfg.Git.CommitMessage)
	v.SetDefault("replace.strategy", cfg.Replace.Strategy)
	v.SetDefault("output.color", cfg.Output.Color)
	v.SetDefault("http.timeout", cfg.HTTP.Timeout)
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config", "liscaf", "config.yaml")
}
