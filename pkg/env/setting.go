// Package env holds the named settings of the migrator. A setting is read, in
// order of precedence, from a bound command line flag, its CDN_MIGRATOR_*
// environment variable, a config file, and finally its default.
package env

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "CDN_MIGRATOR"

var (
	mutex    sync.Mutex
	v        = viper.New()
	settings = map[string]*Setting{}
)

// Setting is a single string-valued configuration entry.
type Setting struct {
	key          string
	envVar       string
	defaultValue string
}

// SettingOption customizes a setting at registration time.
type SettingOption func(*Setting)

// WithDefault sets the value returned when nothing else provides one.
func WithDefault(value string) SettingOption {
	return func(s *Setting) {
		s.defaultValue = value
	}
}

// RegisterSetting registers a setting under key. The key doubles as the flag
// name and the config file key; the environment variable is derived from it,
// e.g. "batch-size" is read from CDN_MIGRATOR_BATCH_SIZE.
func RegisterSetting(key string, opts ...SettingOption) *Setting {
	s := &Setting{
		key:    key,
		envVar: envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, "-", "_")),
	}
	for _, opt := range opts {
		opt(s)
	}

	mutex.Lock()
	defer mutex.Unlock()
	if _, ok := settings[key]; ok {
		panic("setting " + key + " registered twice")
	}
	settings[key] = s
	_ = v.BindEnv(key, s.envVar)
	v.SetDefault(key, s.defaultValue)
	return s
}

// Key returns the flag and config file key of the setting.
func (s *Setting) Key() string {
	return s.key
}

// EnvVar returns the environment variable the setting is read from.
func (s *Setting) EnvVar() string {
	return s.envVar
}

// Default returns the registered default.
func (s *Setting) Default() string {
	return s.defaultValue
}

// Setting returns the effective value.
func (s *Setting) Setting() string {
	mutex.Lock()
	defer mutex.Unlock()
	return strings.TrimSpace(v.GetString(s.key))
}

// IntegerSetting is a setting parsed as an int.
type IntegerSetting struct {
	*Setting
	defaultInt int
}

// RegisterIntegerSetting registers an integer setting.
func RegisterIntegerSetting(key string, defaultValue int) *IntegerSetting {
	return &IntegerSetting{
		Setting:    RegisterSetting(key, WithDefault(strconv.Itoa(defaultValue))),
		defaultInt: defaultValue,
	}
}

// IntegerSetting returns the effective value, or the default if it does not parse.
func (s *IntegerSetting) IntegerSetting() int {
	n, err := strconv.Atoi(s.Setting.Setting())
	if err != nil {
		return s.defaultInt
	}
	return n
}

// DurationSetting is a setting parsed as a time.Duration.
type DurationSetting struct {
	*Setting
	defaultDuration time.Duration
}

// RegisterDurationSetting registers a duration setting.
func RegisterDurationSetting(key string, defaultDuration time.Duration) *DurationSetting {
	return &DurationSetting{
		Setting:         RegisterSetting(key, WithDefault(defaultDuration.String())),
		defaultDuration: defaultDuration,
	}
}

// DurationSetting returns the effective value, or the default if it does not parse.
func (s *DurationSetting) DurationSetting() time.Duration {
	d, err := time.ParseDuration(s.Setting.Setting())
	if err != nil {
		return s.defaultDuration
	}
	return d
}

// BindFlags binds every flag in fs whose name matches a registered setting.
func BindFlags(fs *pflag.FlagSet) error {
	mutex.Lock()
	defer mutex.Unlock()
	for key := range settings {
		f := fs.Lookup(key)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "binding flag --%s", key)
		}
	}
	return nil
}

// LoadConfigFile merges the given YAML, TOML or JSON file into the settings.
func LoadConfigFile(path string) error {
	mutex.Lock()
	defer mutex.Unlock()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "reading config file %s", path)
	}
	return nil
}

// Reset drops flag bindings and config values. Environment variables and
// defaults stay registered. Intended for tests.
func Reset() {
	mutex.Lock()
	defer mutex.Unlock()
	v = viper.New()
	for key, s := range settings {
		_ = v.BindEnv(key, s.envVar)
		v.SetDefault(key, s.defaultValue)
	}
}
