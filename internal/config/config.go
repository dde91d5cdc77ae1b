package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds settings resolved from defaults, the config file and
// VMC_* environment variables.
type Config struct {
	Model      string `mapstructure:"model" yaml:"model"`
	Tool       string `mapstructure:"tool" yaml:"tool"`
	Provider   string `mapstructure:"provider" yaml:"provider"`
	LLMCommand string `mapstructure:"llm_command" yaml:"llm_command"`
	APIKey     string `mapstructure:"api_key" yaml:"api_key"`
	APIBase    string `mapstructure:"api_base" yaml:"api_base"`
	Timeout    int    `mapstructure:"timeout" yaml:"timeout"`
}

const (
	DefaultModel      = "gpt-4o-mini"
	DefaultProvider   = "llm"
	DefaultLLMCommand = "llm"
	DefaultTimeout    = 60
	DefaultConfigName = "config"
	DefaultConfigDir  = "vmc"
	EnvPrefix         = "VMC"
)

var suggestedModels = []string{
	"gpt-4o-mini",
	"gpt-4o",
	"claude-3.5-sonnet",
	"gemini-2.0-flash",
}

func setDefaults() {
	viper.SetDefault("model", DefaultModel)
	viper.SetDefault("tool", "")
	viper.SetDefault("provider", DefaultProvider)
	viper.SetDefault("llm_command", DefaultLLMCommand)
	viper.SetDefault("api_key", "")
	viper.SetDefault("api_base", "")
	viper.SetDefault("timeout", DefaultTimeout)
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/vmc/config.yaml, falling back
// to ~/.config/vmc/config.yaml.
func DefaultConfigPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, DefaultConfigDir, DefaultConfigName+".yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}
	return filepath.Join(home, ".config", DefaultConfigDir, DefaultConfigName+".yaml"), nil
}

// InitConfig loads configuration. The file is optional and is never
// written; an explicitly named file must exist.
func InitConfig(cfgFile string) error {
	setDefaults()
	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read configuration file: %w", err)
		}
		return nil
	}

	path, err := DefaultConfigPath()
	if err != nil {
		// No home directory: run on defaults and environment only.
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read configuration file: %w", err)
	}
	return nil
}

// GetConfig returns the effective configuration.
func GetConfig() (*Config, error) {
	setDefaults()
	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	return cfg, nil
}

// ConfigFileUsed returns the loaded file path, or "" when none was read.
func ConfigFileUsed() string {
	return viper.ConfigFileUsed()
}

// GetSuggestedModels lists common model identifiers; any non-empty name works.
func GetSuggestedModels() []string {
	return suggestedModels
}

// Masked returns a copy safe for printing.
func (c Config) Masked() Config {
	if c.APIKey != "" {
		c.APIKey = "********"
	}
	return c
}
