package oslg

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read by LoadConfig.
const EnvPrefix = "OSLG_"

// Config defines options for Init.
type Config struct {
	// Level is the reporting level, as a name ("warn") or rank ("3").
	// Default: "" (InfoLevel)
	Level string `koanf:"level" validate:"omitempty,oslg_level"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("oslg_level", validateLevelTag); err != nil {
		panic(err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("koanf"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateLevelTag(fl validator.FieldLevel) bool {
	_, err := ParseLevel(fl.Field().String())
	return err == nil
}

// LoadConfig reads configuration from YAML content (may be empty), then
// overrides it with OSLG_* environment variables:
//
//	OSLG_LEVEL=warn -> level
func LoadConfig(content []byte) (Config, error) {
	k := koanf.New(".")

	if len(content) > 0 {
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks config for errors.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "oslg_level" {
				return fmt.Errorf("%s: %w: %q", fe.Field(), ErrInvalidLevel, fe.Value())
			}
		}
	}
	return err
}

// ReportingLevel returns the configured level, or InfoLevel when it is
// unset or invalid.
func (c Config) ReportingLevel() Level {
	if c.Level == "" {
		return InfoLevel
	}
	l, err := ParseLevel(c.Level)
	if err != nil {
		return InfoLevel
	}
	return l
}
