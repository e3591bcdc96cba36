// Package config loads settings from defaults, an optional YAML file,
// SHORTCUTS_* environment variables and command-line flags, in rising priority.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"shortcuts/internal/shortcut"
)

const (
	// EnvPrefix prefixes every environment override, e.g. SHORTCUTS_LOOKUP_INCREMENT.
	EnvPrefix = "SHORTCUTS"
	// ConfigEnv names an explicit config file.
	ConfigEnv = "SHORTCUTS_CONFIG"
	// DefaultIncrement is how much a lookup raises a shortcut's count.
	DefaultIncrement = 5
)

// Config holds application configuration.
type Config struct {
	Store  StoreConfig  `mapstructure:"store" yaml:"store,omitempty"`
	Lookup LookupConfig `mapstructure:"lookup" yaml:"lookup"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	UI     UIConfig     `mapstructure:"ui" yaml:"ui"`
}

// StoreConfig locates the shortcuts file.
type StoreConfig struct {
	Path string `mapstructure:"path" yaml:"path,omitempty"`
}

// LookupConfig controls ranking updates.
type LookupConfig struct {
	Increment int `mapstructure:"increment" yaml:"increment"`
}

// LogConfig controls the log file.
type LogConfig struct {
	File  string `mapstructure:"file" yaml:"file"`
	Level string `mapstructure:"level" yaml:"level"`
}

// UIConfig holds terminal settings.
type UIConfig struct {
	AltScreen bool `mapstructure:"alt_screen" yaml:"alt_screen"`
}

// FlagBindings maps config keys to command-line flag names.
var FlagBindings = map[string]string{
	"store.path": "file",
	"log.file":   "log-file",
}

// New returns a viper instance with defaults, config file and env overrides set up.
// flags may be nil.
func New(configPath string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v, err := newViper(flags)
	if err != nil {
		return nil, err
	}

	v.SetConfigType("yaml")
	if configPath == "" {
		configPath = os.Getenv(ConfigEnv)
	}
	explicit := configPath != ""
	if !explicit {
		configPath = DefaultPath()
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		// A missing default file is fine; a missing explicit one is not.
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", configPath, err)
		}
	}
	return v, nil
}

// newViper sets up defaults, env overrides and flag bindings without a config file.
func newViper(flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()

	defaultStore, err := shortcut.DefaultPath()
	if err != nil {
		return nil, err
	}
	v.SetDefault("store.path", defaultStore)
	v.SetDefault("lookup.increment", DefaultIncrement)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.alt_screen", true)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("store.path", shortcut.FileEnv, "SHORTCUTS_STORE_PATH"); err != nil {
		return nil, fmt.Errorf("bind env: %w", err)
	}

	if flags != nil {
		for key, name := range FlagBindings {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}
	return v, nil
}

// Load builds the effective configuration.
func Load(configPath string, flags *pflag.FlagSet) (Config, *viper.Viper, error) {
	v, err := New(configPath, flags)
	if err != nil {
		return Config{}, nil, err
	}
	c, err := decode(v)
	if err != nil {
		return Config{}, nil, err
	}
	return c, v, nil
}

// LoadDefaults builds the configuration from defaults, env and flags only.
// Any config file is ignored, so a broken one can be replaced.
func LoadDefaults(flags *pflag.FlagSet) (Config, error) {
	v, err := newViper(flags)
	if err != nil {
		return Config{}, err
	}
	return decode(v)
}

func decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Portable drops settings that match a default resolved against the current
// directory, so the written file keeps resolving them at run time.
func (c Config) Portable() (Config, error) {
	defaultStore, err := shortcut.DefaultPath()
	if err != nil {
		return Config{}, err
	}
	if c.Store.Path == defaultStore {
		c.Store.Path = ""
	}
	return c, nil
}

// Validate rejects settings the application cannot run with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Store.Path) == "" {
		return errors.New("store.path must not be empty")
	}
	if c.Lookup.Increment == 0 {
		return errors.New("lookup.increment must not be zero")
	}
	return nil
}

// DefaultPath returns ~/.config/shortcuts/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "shortcuts", "config.yaml")
	}
	return filepath.Join(home, ".config", "shortcuts", "config.yaml")
}

// Marshal renders c as YAML with two-space indentation.
func (c Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("close yaml encoder: %w", err)
	}
	return buf.Bytes(), nil
}

// Write saves c as YAML at path, creating the directory if needed.
func (c Config) Write(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
