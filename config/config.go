package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for a matcher run
type Config struct {
	Client   ClientConfig   `mapstructure:"client"`
	Delivery DeliveryConfig `mapstructure:"delivery"`
	Input    InputConfig    `mapstructure:"input"`
	Output   OutputConfig   `mapstructure:"output"`
	Matching MatchingConfig `mapstructure:"matching"`
	Log      LogConfig      `mapstructure:"log"`
}

// ClientConfig identifies the brand the hierarchy belongs to
type ClientConfig struct {
	Name string `mapstructure:"name" validate:"required"`
	// OwnChannel marks the client's own catalog rows, which are never matched against
	OwnChannel string `mapstructure:"own_channel"`
}

// DeliveryConfig identifies the delivery cycle
type DeliveryConfig struct {
	Date string `mapstructure:"date" validate:"required,datetime=2006-01-02"`
}

// InputConfig holds the input tables of a cycle
type InputConfig struct {
	Catalog    FileConfig       `mapstructure:"catalog"`
	Products   FileConfig       `mapstructure:"products"`
	Conditions ConditionsConfig `mapstructure:"conditions"`
}

// FileConfig points at a csv or xlsx table
type FileConfig struct {
	Path  string `mapstructure:"path"`
	Sheet string `mapstructure:"sheet"`
}

// ConditionsConfig points at the conditions table. An empty path disables conditions.
type ConditionsConfig struct {
	Path      string `mapstructure:"path"`
	Separator string `mapstructure:"separator"`
}

// OutputConfig holds output-related configuration
type OutputConfig struct {
	Dir     string `mapstructure:"dir" validate:"required"`
	Format  string `mapstructure:"format" validate:"oneof=csv xlsx"`
	Summary bool   `mapstructure:"summary"`
}

// MatchingConfig tunes the tokenizer and progress reporting
type MatchingConfig struct {
	Stemming      bool   `mapstructure:"stemming"`
	StemLanguage  string `mapstructure:"stem_language" validate:"oneof=spanish english french russian swedish norwegian hungarian"`
	ProgressEvery int    `mapstructure:"progress_every" validate:"gt=0"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

// Comma returns the conditions separator as a rune
func (c ConditionsConfig) Comma() rune {
	r, _ := utf8.DecodeRuneInString(c.Separator)
	return r
}

// Load loads configuration from defaults, an optional .env file, the config
// file and MATCHER_* environment variables, in increasing precedence.
// path selects the config file explicitly; overrides (viper keys such as
// "input.catalog.path") win over everything else.
func Load(path string, overrides map[string]any) (*Config, error) {
	if err := loadEnvFile(".env"); err != nil {
		return nil, err
	}

	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/hierarchy-matcher/")
	}

	v.SetEnvPrefix("MATCHER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// no config file; env vars and defaults only
	}

	for key, value := range overrides {
		v.Set(key, value)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values. Every key is registered so
// that AutomaticEnv can fill it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("client.name", "")
	v.SetDefault("client.own_channel", "Nike Mx")

	v.SetDefault("delivery.date", time.Now().Format("2006-01-02"))

	v.SetDefault("input.catalog.path", "")
	v.SetDefault("input.catalog.sheet", "")
	v.SetDefault("input.products.path", "")
	v.SetDefault("input.products.sheet", "")
	v.SetDefault("input.conditions.path", "")
	v.SetDefault("input.conditions.separator", ";")

	v.SetDefault("output.dir", "output")
	v.SetDefault("output.format", "csv")
	v.SetDefault("output.summary", true)

	v.SetDefault("matching.stemming", false)
	v.SetDefault("matching.stem_language", "spanish")
	v.SetDefault("matching.progress_every", 500)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

var structValidator = validator.New(validator.WithRequiredStructEnabled())

// validate validates the configuration
func validate(config *Config) error {
	if err := structValidator.Struct(config); err != nil {
		return err
	}

	if config.Input.Catalog.Path == "" {
		return fmt.Errorf("catalog path is required (set MATCHER_INPUT_CATALOG_PATH)")
	}

	if utf8.RuneCountInString(config.Input.Conditions.Separator) != 1 {
		return fmt.Errorf("conditions separator must be a single character, got: %q", config.Input.Conditions.Separator)
	}

	if config.Input.Catalog.Path == config.Input.Products.Path {
		return fmt.Errorf("catalog and products must be different files, got: %s", config.Input.Catalog.Path)
	}

	return nil
}

// loadEnvFile loads variables from path without overriding ones already set.
// A missing file is not an error.
func loadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading %s: %w", path, err)
	}
	return nil
}
