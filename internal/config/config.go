// Package config loads the demo settings from defaults, an optional YAML
// file and DATEPICKER_ environment variables, in increasing priority.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"go.hasen.dev/datepicker/internal/errors"
	"go.hasen.dev/datepicker/logger"
)

const (
	EnvPrefix  = "DATEPICKER"
	EnvConfig  = EnvPrefix + "_CONFIG"
	configType = "yaml"
)

type Config struct {
	Window WindowConfig `mapstructure:"window"`
	Picker PickerConfig `mapstructure:"picker"`
	Log    LogConfig    `mapstructure:"log"`
}

type WindowConfig struct {
	Title  string `mapstructure:"title"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
}

type PickerConfig struct {
	SundayFirst bool   `mapstructure:"sunday_first"`
	Movable     bool   `mapstructure:"movable"`
	DateFormat  string `mapstructure:"date_format"`

	// language tag for the built-in tables, e.g. "fr"; ignored when
	// TranslationFile is set
	Language        string `mapstructure:"language"`
	TranslationFile string `mapstructure:"translation_file"`

	// IANA zone name; empty means local time
	Timezone string `mapstructure:"timezone"`

	HighlightWeekend bool `mapstructure:"highlight_weekend"`
}

type LogConfig struct {
	Env logger.Env `mapstructure:"env"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.title", "Date picker")
	v.SetDefault("window.width", 900)
	v.SetDefault("window.height", 640)

	v.SetDefault("picker.sunday_first", false)
	v.SetDefault("picker.movable", false)
	v.SetDefault("picker.date_format", "%Y-%m-%d")
	v.SetDefault("picker.language", "en")
	v.SetDefault("picker.translation_file", "")
	v.SetDefault("picker.timezone", "")
	v.SetDefault("picker.highlight_weekend", true)

	v.SetDefault("log.env", "dev")
}

// Load reads the configuration. An empty path falls back to the file named
// by DATEPICKER_CONFIG; without either only defaults and the environment
// apply. A named file that cannot be read is an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType(configType)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.WrapFailf(err, "read config %s", path)
		}
	}

	var c Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := v.Unmarshal(&c, hook); err != nil {
		return Config{}, errors.WrapFail(err, "decode config")
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if _, err := c.Picker.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves the configured timezone.
func (p PickerConfig) Location() (*time.Location, error) {
	if p.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return nil, errors.WrapFailf(err, "load timezone %q", p.Timezone)
	}
	return loc, nil
}
