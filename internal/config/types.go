package config

import "time"

// Config represents the global liscaf configuration.
type Config struct {
	// Template selects the template repository and its base name.
	Template TemplateConfig `mapstructure:"template" yaml:"template"`
	// Git configures the git binary used for clone and init.
	Git GitConfig `mapstructure:"git" yaml:"git"`
	// Replace configures name variant replacement.
	Replace ReplaceConfig `mapstructure:"replace" yaml:"replace"`
	// Output configures console rendering.
	Output OutputConfig `mapstructure:"output" yaml:"output"`
	// HTTP configures manifest requests.
	HTTP HTTPConfig `mapstructure:"http" yaml:"http"`
}

// TemplateConfig represents template selection settings.
type TemplateConfig struct {
	// Base is the project name the template uses for itself.
	Base string `mapstructure:"base" yaml:"base"`
	// Repo is the default template repository when none is given.
	Repo string `mapstructure:"repo" yaml:"repo,omitempty"`
	// Manifest is a URL listing selectable templates.
	Manifest string `mapstructure:"manifest" yaml:"manifest,omitempty"`
}

// GitConfig represents git settings.
type GitConfig struct {
	// Binary is the git executable name or path.
	Binary string `mapstructure:"binary" yaml:"binary"`
	// Depth is the clone depth; 0 clones full history.
	Depth int `mapstructure:"depth" yaml:"depth"`
	// CommitMessage is the message of the initial commit.
	CommitMessage string `mapstructure:"commit_message" yaml:"commit_message"`
}

// ReplaceConfig represents replacement settings.
type ReplaceConfig struct {
	// Strategy is "sequential" or "confluent".
	Strategy string `mapstructure:"strategy" yaml:"strategy"`
}

// OutputConfig represents output and display settings.
type OutputConfig struct {
	// Color enables colored terminal output.
	Color bool `mapstructure:"color" yaml:"color"`
}

// HTTPConfig represents HTTP client settings.
type HTTPConfig struct {
	// Timeout is the request timeout in seconds.
	Timeout int `mapstructure:"timeout" yaml:"timeout"`
}

// TimeoutDuration returns Timeout as a time.Duration.
func (h HTTPConfig) TimeoutDuration() time.Duration {
	return time.Duration(h.Timeout) * time.Second
}
