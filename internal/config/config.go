package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the tool settings. Precedence is flags, then CAPLINT_*
// environment variables, then the config file, then defaults.
type Config struct {
	// MaxNumberOfProblems caps the diagnostics reported per document. Zero
	// disables reporting entirely while parsing still runs.
	MaxNumberOfProblems int    `mapstructure:"maxNumberOfProblems"`
	Format              string `mapstructure:"format"`
	// PDFReport, when set, is the path of a printable report to write in
	// addition to the normal output.
	PDFReport string `mapstructure:"pdfReport"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{MaxNumberOfProblems: 1000, Format: "text"}
}

// Load reads the configuration from cfgFile, or from .caplint.yaml in the
// working directory or $HOME when cfgFile is empty. A missing default file
// is fine; an explicitly named file must exist.
func Load(cfgFile string) (Config, error) {
	v := viper.New()
	def := Default()
	v.SetDefault("maxNumberOfProblems", def.MaxNumberOfProblems)
	v.SetDefault("format", def.Format)
	v.SetDefault("pdfReport", def.PDFReport)

	v.SetEnvPrefix("CAPLINT")
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".caplint")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the settings for values the linter cannot honor.
func (c Config) Validate() error {
	if c.MaxNumberOfProblems < 0 {
		return fmt.Errorf("maxNumberOfProblems must be >= 0, got %d", c.MaxNumberOfProblems)
	}
	switch strings.ToLower(c.Format) {
	case "text", "json":
		return nil
	default:
		return fmt.Errorf("format must be text or json, got %q", c.Format)
	}
}
