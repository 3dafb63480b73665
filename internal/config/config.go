package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvPrefix = "TODOLIST"

	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultFadeFrames     = 4
	DefaultFadeIntervalMS = 60
)

type Config struct {
	ThemeName      string `mapstructure:"theme_name"`
	LogLevel       string `mapstructure:"log_level"`
	LogFormat      string `mapstructure:"log_format"`
	LogFile        string `mapstructure:"log_file"`
	SeedFile       string `mapstructure:"seed_file"`
	FadeFrames     int    `mapstructure:"fade_frames"`
	FadeIntervalMS int    `mapstructure:"fade_interval_ms"`
}

// FadeInterval is the delay between fade-out frames of the side panel.
func (c *Config) FadeInterval() time.Duration {
	return time.Duration(c.FadeIntervalMS) * time.Millisecond
}

var (
	configDir  string
	configFile string
)

func init() {
	// get home dir
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(fmt.Sprintf("failed to get home directory: %v", err))
	}

	configDir = filepath.Join(homeDir, ".todolist")
	configFile = filepath.Join(configDir, "config.yaml")
}

func GetConfigDir() string {
	return configDir
}

func GetConfigFile() string {
	return configFile
}

func ConfigExists() bool {
	_, err := os.Stat(configFile)
	return err == nil
}

func EnsureConfigDir() error {
	return os.MkdirAll(configDir, 0755)
}

// newViper returns an instance with defaults and TODOLIST_* env overrides
// registered for every key.
func newViper() *viper.Viper {
	v := viper.New()
	def := GetDefaultConfig()

	v.SetDefault("theme_name", def.ThemeName)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_format", def.LogFormat)
	v.SetDefault("log_file", def.LogFile)
	v.SetDefault("seed_file", def.SeedFile)
	v.SetDefault("fade_frames", def.FadeFrames)
	v.SetDefault("fade_interval_ms", def.FadeIntervalMS)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// loads config from file, falling back to defaults when none exists
func LoadConfig() (*Config, error) {
	if err := EnsureConfigDir(); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	v := newViper()
	if ConfigExists() {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// saves config to file
func SaveConfig(cfg *Config) error {
	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	v.Set("theme_name", cfg.ThemeName)
	v.Set("log_level", cfg.LogLevel)
	v.Set("log_format", cfg.LogFormat)
	v.Set("log_file", cfg.LogFile)
	v.Set("seed_file", cfg.SeedFile)
	v.Set("fade_frames", cfg.FadeFrames)
	v.Set("fade_interval_ms", cfg.FadeIntervalMS)

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// returns default config
func GetDefaultConfig() *Config {
	return &Config{
		ThemeName:      "",
		LogLevel:       DefaultLogLevel,
		LogFormat:      DefaultLogFormat,
		LogFile:        filepath.Join(configDir, "todolist.log"),
		SeedFile:       "",
		FadeFrames:     DefaultFadeFrames,
		FadeIntervalMS: DefaultFadeIntervalMS,
	}
}

// updates theme in config file
func UpdateTheme(themeName string) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.ThemeName = themeName
	return SaveConfig(cfg)
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}
	if c.LogFile == "" {
		c.LogFile = filepath.Join(configDir, "todolist.log")
	}
	if c.FadeFrames <= 0 {
		c.FadeFrames = DefaultFadeFrames
	}
	if c.FadeIntervalMS <= 0 {
		c.FadeIntervalMS = DefaultFadeIntervalMS
	}
}
