package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/spf13/viper"

	"github.com/tacogips/liscaf/internal/debug"
	"github.com/tacogips/liscaf/internal/naming"
)

// Loader defines the interface for loading configuration files.
type Loader interface {
	// Load loads configuration from the specified file path.
	Load(path string) (*Config, error)
	// LoadOrDefault loads configuration or falls back to defaults if the file
	// doesn't exist. Environment overrides apply in both cases.
	LoadOrDefault(path string) (*Config, error)
	// Validate validates the configuration.
	Validate(config *Config) error
}

// ViperLoader implements Loader on top of a private viper instance.
type ViperLoader struct {
	// Getenv looks up environment variables; nil means os.Getenv.
	Getenv func(string) string
}

// NewLoader creates a new ViperLoader instance.
func NewLoader() Loader {
	return &ViperLoader{}
}

// Load loads configuration from the specified file path.
func (l *ViperLoader) Load(path string) (*Config, error) {
	return l.load(path, true)
}

// LoadOrDefault loads configuration or returns defaults if file doesn't exist.
func (l *ViperLoader) LoadOrDefault(path string) (*Config, error) {
	return l.load(path, false)
}

func (l *ViperLoader) load(path string, required bool) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())
	l.bindEnv(v)

	found := false
	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			found = true
		case errors.Is(err, fs.ErrNotExist):
			if required {
				return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file not found", err)
			}
			debug.Debug("[config] No configuration file at %s, using defaults", path)
		default:
			return nil, NewConfigErrorWithCause(ConfigInvalid, path, "failed to read configuration file", err)
		}
	} else if required {
		return nil, NewConfigErrorWithCause(ConfigNotFound, path, "configuration file path is empty", nil)
	}

	if found {
		v.SetConfigFile(path)
		v.SetConfigType(configType(path))
		if err := v.ReadInConfig(); err != nil {
			return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid configuration syntax", err)
		}
		debug.Debug("[config] Loaded configuration file: %s", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, NewConfigErrorWithCause(ConfigInvalid, path, "invalid configuration structure", err)
	}

	if err := l.Validate(&cfg); err != nil {
		if cfgErr, ok := err.(*ConfigError); ok {
			cfgErr.File = path
		}
		return nil, err
	}
	return &cfg, nil
}

// bindEnv maps LISCAF_SECTION_KEY variables onto section.key.
func (l *ViperLoader) bindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if l.Getenv == nil {
		v.AutomaticEnv()
		return
	}
	// Explicit lookups keep tests independent of the process environment.
	for _, key := range v.AllKeys() {
		envKey := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if val := l.Getenv(envKey); val != "" {
			v.Set(key, val)
		}
	}
}

// Validate validates the configuration.
func (l *ViperLoader) Validate(config *Config) error {
	if !strings.ContainsFunc(config.Template.Base, isWordRune) {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "template.base", "template base name must contain letters or digits")
	}
	if strings.TrimSpace(config.Git.Binary) == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "git.binary", "git binary cannot be empty")
	}
	if config.Git.Depth < 0 {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "git.depth", "clone depth cannot be negative")
	}
	if strings.TrimSpace(config.Git.CommitMessage) == "" {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "git.commit_message", "commit message cannot be empty")
	}
	if _, err := naming.ParseStrategy(config.Replace.Strategy); err != nil {
		return &ConfigError{
			Type:    ConfigValidationFailed,
			Field:   "replace.strategy",
			Message: "unknown replacement strategy",
			Cause:   err,
		}
	}
	if config.HTTP.Timeout < 0 {
		return NewConfigErrorWithField(ConfigValidationFailed, "", "http.timeout", "timeout cannot be negative")
	}
	return nil
}

// Validate validates cfg with the default loader.
func Validate(cfg *Config) error {
	return NewLoader().Validate(cfg)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

func configType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json"
	case ".toml":
		return "toml"
	default:
		return "yaml"
	}
}

// ExpandPath expands ~ to home directory and evaluates relative paths.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		if len(path) == 1 {
			return homeDir, nil
		}
		if path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:]), nil
		}
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	return absPath, nil
}
