package config

import (
	"github.com/ytget/storefront/internal/prefs"
)

// Settings keys, relative to the preferences namespace
const (
	KeyOnboardingShown = "onboarding_shown"
	KeyLanguage        = "app_language"
)

// Default values
const (
	DefaultNamespace       = "app_prefs"
	DefaultOnboardingShown = false
	DefaultLanguage        = "ru"
)

// Settings manages persisted application settings
type Settings struct {
	store prefs.Store
}

// NewSettings creates a settings manager on top of store. Keys are written
// under namespace; an empty namespace falls back to DefaultNamespace.
func NewSettings(store prefs.Store, namespace string) *Settings {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &Settings{store: prefs.NewNamespaced(store, namespace)}
}

// GetOnboardingShown returns whether the onboarding flow has been shown
func (s *Settings) GetOnboardingShown() bool {
	return s.store.BoolWithFallback(KeyOnboardingShown, DefaultOnboardingShown)
}

// SetOnboardingShown persists the onboarding flag. The write is not acknowledged.
func (s *Settings) SetOnboardingShown(shown bool) {
	s.store.SetBool(KeyOnboardingShown, shown)
}

// ResetOnboarding removes the onboarding flag so the next launch shows it again
func (s *Settings) ResetOnboarding() {
	s.store.RemoveValue(KeyOnboardingShown)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.store.StringWithFallback(KeyLanguage, "")
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	if lang == "" {
		lang = DefaultLanguage
	}
	s.store.SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"ru": "Русский",
		"en": "English",
	}
}
