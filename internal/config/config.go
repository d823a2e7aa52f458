// Package config loads fsdiff settings from a YAML file, the environment and
// built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	// EnvPrefix prefixes every environment override, e.g. FSDIFF_LOG_LEVEL.
	EnvPrefix = "FSDIFF"

	configName = "fsdiff"
	userDir    = ".fsdiff"
	userFile   = "config.yaml"
)

// Config is the complete fsdiff configuration.
type Config struct {
	Log         LogConfig           `mapstructure:"log" yaml:"log" json:"log"`
	Output      OutputConfig        `mapstructure:"output" yaml:"output" json:"output"`
	MetricsFile string              `mapstructure:"metrics_file" yaml:"metrics_file" json:"metrics_file"`
	Presets     map[string][]string `mapstructure:"presets" yaml:"presets" json:"presets"`

	path string
}

// LogConfig controls diagnostic logging. An empty level disables logging.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level" json:"level"`
	Format string `mapstructure:"format" yaml:"format" json:"format"`
}

// OutputConfig controls how scripts are written.
type OutputConfig struct {
	Pretty bool `mapstructure:"pretty" yaml:"pretty" json:"pretty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "",
			Format: "text",
		},
		Presets: map[string][]string{
			"smooth": {"normalize", "scale-sqrt", "normalize", "shorten", "5"},
			"double": {"normalize", "scale-linear", "2"},
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("output.pretty", d.Output.Pretty)
	v.SetDefault("metrics_file", d.MetricsFile)
}

// Load builds the configuration with cascade: environment > config file >
// defaults. With an empty cfgFile the file is looked up as ./fsdiff.yaml and
// then ~/.fsdiff/config.yaml; a missing file is not an error. An explicit
// cfgFile must exist.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := cfgFile
	if path == "" {
		path = discover()
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if cfgFile != "" || !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	// Presets from the file are merged over the built-in ones
	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if path == "" {
		path = DefaultPath()
	}
	cfg.path = path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// discover returns the first existing config file in the search path.
func discover() string {
	candidates := []string{configName + ".yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, userDir, userFile))
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

// DefaultPath is where Save writes when no file was loaded.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(userDir, userFile)
	}
	return filepath.Join(home, userDir, userFile)
}

// Validate checks values viper cannot type-check.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log format %q: must be text or json", c.Log.Format)
	}
	for name, tokens := range c.Presets {
		if len(tokens) == 0 {
			return fmt.Errorf("preset %q has no operations", name)
		}
	}
	return nil
}

// Path returns the file the configuration was loaded from or will be saved to.
func (c *Config) Path() string {
	return c.path
}

// SetPath changes where Save writes.
func (c *Config) SetPath(path string) {
	c.path = path
}

// Preset returns the tokens stored under name.
func (c *Config) Preset(name string) ([]string, error) {
	tokens, ok := c.Presets[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("preset '%s' not found", name)
	}
	return tokens, nil
}

// PresetNames returns the preset names in sorted order.
func (c *Config) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Save writes the configuration as YAML.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = DefaultPath()
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(c.path, data, 0600)
}
