package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config is the decoded, typed view of the merged Viper settings.
type Config struct {
	Output  string `mapstructure:"output" validate:"oneof=plain json ndjson"`
	Verbose bool   `mapstructure:"verbose"`

	JSON struct {
		Indent bool `mapstructure:"indent"`
	} `mapstructure:"json"`

	Wrap struct {
		Width int `mapstructure:"width" validate:"gte=0"`
	} `mapstructure:"wrap"`

	Source struct {
		Width  int `mapstructure:"width" validate:"gte=0"`
		Column int `mapstructure:"column" validate:"gte=0"`
	} `mapstructure:"source"`

	Int struct {
		Width int `mapstructure:"width" validate:"gt=0"`
	} `mapstructure:"int"`

	Grid struct {
		LabelWidth  int  `mapstructure:"label_width" validate:"gt=0"`
		SourceWidth int  `mapstructure:"source_width" validate:"gt=0"`
		Headers     bool `mapstructure:"headers"`
	} `mapstructure:"grid"`
}

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their meanings.
// This is the single source of truth for defaults and the generated config file.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "output", Default: "plain", Comment: "Output format: plain, json or ndjson"},
		{Key: "verbose", Default: false, Comment: "Log progress to stderr"},

		{Key: "json.indent", Default: false, Comment: "Indent JSON output"},
		{Key: "wrap.width", Default: 0, Comment: "Line width for wrap; 0 fits the terminal (80 when not a terminal)"},
		{Key: "source.width", Default: 0, Comment: "Line width for source; 0 fits the terminal (80 when not a terminal)"},
		{Key: "source.column", Default: 1, Comment: "1-based column where source content starts on the first line"},
		{Key: "int.width", Default: 4, Comment: "Zero-padded width for int"},
		{Key: "grid.label_width", Default: 24, Comment: "Width of the label column in grid output"},
		{Key: "grid.source_width", Default: 32, Comment: "Width of each source excerpt column in grid output"},
		{Key: "grid.headers", Default: true, Comment: "Print a header row above grid output"},
	}
}

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// The provided Viper instance is mutated with defaults, file contents, and env.
func Load(ctx context.Context, v *viper.Viper) error {
	// SetConfigFile upstream takes precedence over the search paths.
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "smgrid"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "smgrid"))
		}
		v.AddConfigPath(".")
	}

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	// Environment variables: SMGRID_* (highest among these sources)
	v.SetEnvPrefix("smgrid")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if strings.TrimSpace(v.GetString("output")) == "" {
		v.Set("output", "plain")
	}
	return nil
}

// Decode unmarshals the merged settings into a Config.
func Decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

var (
	vldOnce sync.Once
	vld     *validator.Validate
)

func getValidator() *validator.Validate {
	vldOnce.Do(func() {
		vld = validator.New()
		// Report fields by their config key rather than the Go field name.
		vld.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("mapstructure"), ",", 2)[0]
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
	})
	return vld
}

// CheckConfigValidity decodes v and reports every invalid option in one error.
func CheckConfigValidity(v *viper.Viper) error {
	c, err := Decode(v)
	if err != nil {
		return err
	}
	err = getValidator().Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	problems := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, errors.New(describe(fe)))
	}
	return fmt.Errorf("invalid config: %w", errors.Join(problems...))
}

func describe(fe validator.FieldError) string {
	key := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", key, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", key, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", key, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s failed %s", key, fe.Tag())
	}
}

// DefaultConfigPath resolves the standard config.toml location.
func DefaultConfigPath() string {
	xdg := os.Getenv("XDG_CONFIG_HOME")
	if xdg == "" {
		home, _ := os.UserHomeDir()
		xdg = filepath.Join(home, ".config")
	}
	return filepath.Join(xdg, "smgrid", "config.toml")
}
