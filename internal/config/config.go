// Package config provides configuration loading and validation for the propstxt CLI.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/skarndev/propstxt/profile"
)

// Sentinel validation errors.
var (
	ErrInvalidWorkers    = errors.New("scan workers must be positive")
	ErrInvalidFormat     = errors.New("invalid output format")
	ErrInvalidTextureExt = errors.New("texture extension must start with a dot")
	ErrUnknownProfile    = errors.New("unknown game profile")
)

// Default configuration values.
const (
	defaultWorkers    = 4
	defaultFormat     = "table"
	defaultTextureExt = ".png"
	defaultProfile    = "generic"
)

// Output formats accepted by the CLI.
var knownFormats = map[string]struct{}{
	"table": {},
	"json":  {},
	"none":  {},
}

// Config holds all configuration for the propstxt CLI.
type Config struct {
	Export   ExportConfig   `mapstructure:"export"`
	Scan     ScanConfig     `mapstructure:"scan"`
	Output   OutputConfig   `mapstructure:"output"`
	Validate ValidateConfig `mapstructure:"validate"`
}

// ExportConfig describes the UModel export directory layout.
type ExportConfig struct {
	// Root is the UModel output directory the descriptors were dumped into.
	Root string `mapstructure:"root"`
	// TextureExt is the texture format UModel was configured to export.
	TextureExt string `mapstructure:"texture_ext"`
	// Profile selects the game profile used to classify texture slots.
	Profile string `mapstructure:"profile"`
}

// ScanConfig holds directory scan configuration.
type ScanConfig struct {
	Workers        int  `mapstructure:"workers"`
	FollowSymlinks bool `mapstructure:"follow_symlinks"`
}

// OutputConfig holds output rendering configuration.
type OutputConfig struct {
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

// ValidateConfig holds validation rule configuration.
type ValidateConfig struct {
	ExcludePaths          []string `mapstructure:"exclude_paths"`
	DisableFileCheck      bool     `mapstructure:"disable_file_check"`
	DisableBlendModeCheck bool     `mapstructure:"disable_blend_mode_check"`
}

// LoadConfig loads configuration from file and environment variables.
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(".propstxt")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("$HOME")
	}

	viperCfg.SetEnvPrefix("PROPSTXT")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var config Config

	unmarshalErr := viperCfg.Unmarshal(&config)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&config)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &config, nil
}

// setDefaults sets default configuration values.
func setDefaults(viperCfg *viper.Viper) {
	// Export defaults.
	viperCfg.SetDefault("export.root", "")
	viperCfg.SetDefault("export.texture_ext", defaultTextureExt)
	viperCfg.SetDefault("export.profile", defaultProfile)

	// Scan defaults.
	viperCfg.SetDefault("scan.workers", defaultWorkers)
	viperCfg.SetDefault("scan.follow_symlinks", false)

	// Output defaults.
	viperCfg.SetDefault("output.format", defaultFormat)
	viperCfg.SetDefault("output.color", true)

	// Validate defaults.
	viperCfg.SetDefault("validate.exclude_paths", []string{})
	viperCfg.SetDefault("validate.disable_file_check", false)
	viperCfg.SetDefault("validate.disable_blend_mode_check", false)
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	if config.Scan.Workers <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, config.Scan.Workers)
	}

	if _, ok := knownFormats[config.Output.Format]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, config.Output.Format)
	}

	if !strings.HasPrefix(config.Export.TextureExt, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidTextureExt, config.Export.TextureExt)
	}

	if _, ok := profile.Lookup(config.Export.Profile); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownProfile, config.Export.Profile)
	}

	return nil
}
