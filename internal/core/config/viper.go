package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides: SURFACEGEN_OUTPUT_INDENT and so on.
const EnvPrefix = "SURFACEGEN"

// LoadConfig loads configuration from file using viper.
// CLI flags > environment > config file > defaults precedence.
// Flags are applied by the caller on the returned value.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults matching DefaultConfig
	def := DefaultConfig()
	v.SetDefault("output.indent", def.Output.Indent)
	v.SetDefault("output.format", def.Output.Format)
	v.SetDefault("database.url", def.Database.URL)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := validateNoPasswordInConfig(configPath); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		Output: OutputConfig{
			Indent: v.GetInt("output.indent"),
			Format: strings.ToLower(v.GetString("output.format")),
		},
		Database: DatabaseConfig{
			URL: v.GetString("database.url"),
		},
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("log.level")),
			Format: strings.ToLower(v.GetString("log.format")),
		},
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateConfig checks indent range and known format, level and log format.
func validateConfig(cfg *Config) error {
	if cfg.Output.Indent < 0 || cfg.Output.Indent > MaxIndent {
		return fmt.Errorf("output.indent must be between 0 and %d, got %d", MaxIndent, cfg.Output.Indent)
	}
	if !Formats.Has(cfg.Output.Format) {
		return fmt.Errorf("output.format must be one of %v, got %q", Formats.Labels(), cfg.Output.Format)
	}
	if !LogLevels.Has(cfg.Log.Level) {
		return fmt.Errorf("log.level must be one of %v, got %q", LogLevels.Labels(), cfg.Log.Level)
	}
	if !LogFormats.Has(cfg.Log.Format) {
		return fmt.Errorf("log.format must be one of %v, got %q", LogFormats.Labels(), cfg.Log.Format)
	}
	return nil
}

// validateNoPasswordInConfig keeps database credentials environment-only.
// Only the file is inspected; SURFACEGEN_DATABASE_URL may carry a password.
func validateNoPasswordInConfig(configPath string) error {
	fv := viper.New()
	fv.SetConfigFile(configPath)
	if err := fv.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	raw := fv.GetString("database.url")
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("database.url: %w", err)
	}
	if _, ok := u.User.Password(); ok {
		return fmt.Errorf("database passwords not allowed in config files (use %s_DATABASE_URL environment variable)", EnvPrefix)
	}
	return nil
}
