package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Launch config file lookup
const (
	LaunchConfigName = "storefront"
	LaunchEnvPrefix  = "STOREFRONT"
)

// Launch defaults
const (
	DefaultAppID         = "com.ytget.storefront"
	DefaultWindowWidth   = 390
	DefaultWindowHeight  = 844
	DefaultPageAnimation = 300 * time.Millisecond
)

// ErrInvalidLaunch is returned when a launch configuration fails validation
var ErrInvalidLaunch = errors.New("invalid launch configuration")

// Window holds the initial window size. On mobile the OS decides and these
// values are ignored.
type Window struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

// Launch is the per-process configuration read at startup. Unlike Settings it
// is never written back.
type Launch struct {
	AppID           string        `mapstructure:"app_id"`
	Window          Window        `mapstructure:"window"`
	Language        string        `mapstructure:"language"` // empty keeps the stored language
	Strict          bool          `mapstructure:"strict"`
	ResetOnboarding bool          `mapstructure:"reset_onboarding"`
	PrefsNamespace  string        `mapstructure:"prefs_namespace"`
	PageAnimation   time.Duration `mapstructure:"page_animation"`
}

// LoadLaunch reads the launch configuration. When path is empty a
// storefront.yaml in the working directory is used if present. Environment
// variables prefixed with STOREFRONT_ override file values, e.g.
// STOREFRONT_WINDOW_WIDTH.
func LoadLaunch(path string) (*Launch, error) {
	v := viper.New()
	setLaunchDefaults(v)

	v.SetEnvPrefix(LaunchEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read launch config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(LaunchConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read launch config: %w", err)
			}
		}
	}

	var l Launch
	if err := v.Unmarshal(&l); err != nil {
		return nil, fmt.Errorf("decode launch config: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// DefaultLaunch returns the configuration used when nothing overrides it.
func DefaultLaunch() *Launch {
	return &Launch{
		AppID:          DefaultAppID,
		Window:         Window{Width: DefaultWindowWidth, Height: DefaultWindowHeight},
		PrefsNamespace: DefaultNamespace,
		PageAnimation:  DefaultPageAnimation,
	}
}

func setLaunchDefaults(v *viper.Viper) {
	d := DefaultLaunch()
	v.SetDefault("app_id", d.AppID)
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("language", d.Language)
	v.SetDefault("strict", d.Strict)
	v.SetDefault("reset_onboarding", d.ResetOnboarding)
	v.SetDefault("prefs_namespace", d.PrefsNamespace)
	v.SetDefault("page_animation", d.PageAnimation)
}

// Validate checks the values LoadLaunch cannot fix on its own.
func (l *Launch) Validate() error {
	if strings.TrimSpace(l.AppID) == "" {
		return fmt.Errorf("%w: app_id is empty", ErrInvalidLaunch)
	}
	if l.Window.Width <= 0 || l.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidLaunch, l.Window.Width, l.Window.Height)
	}
	if strings.TrimSpace(l.PrefsNamespace) == "" {
		return fmt.Errorf("%w: prefs_namespace is empty", ErrInvalidLaunch)
	}
	if l.PageAnimation < 0 {
		return fmt.Errorf("%w: page_animation %s is negative", ErrInvalidLaunch, l.PageAnimation)
	}
	if l.Language != "" {
		if _, ok := (&Settings{}).GetLanguageOptions()[l.Language]; !ok {
			return fmt.Errorf("%w: unsupported language %q", ErrInvalidLaunch, l.Language)
		}
	}
	return nil
}
