package ui

import "github.com/ytget/storefront/internal/model"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization. Tab labels use the keys declared in model.
const (
	KeyAppTitle          = "app_title"
	KeySearchHint        = "search_hint"
	KeyVoiceSearch       = "voice_search"
	KeyAccount           = "account"
	KeyDownload          = "download"
	KeyInstallRequested  = "install_requested"
	KeyInstallQueued     = "install_queued"
	KeyNext              = "next"
	KeyStartBrowsing     = "start_browsing"
	KeySkip              = "skip"
	KeySettings          = "settings"
	KeyLanguage          = "language"
	KeyShowOnboarding    = "show_onboarding"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyNothingFound      = "nothing_found"
	KeyPlaceholderApps   = "placeholder_apps"
	KeyPlaceholderGames  = "placeholder_games"
	KeyPlaceholderKiosk  = "placeholder_kiosk"
	KeyPlaceholderProfil = "placeholder_profile"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "ru",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. Unknown languages are ignored.
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to Russian, the shipped language
	if texts, exists := l.texts["ru"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"ru": "Русский",
		"en": "English",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "RuStore",
		KeySearchHint:        "Приложения и игры",
		KeyVoiceSearch:       "Голосовой поиск",
		KeyAccount:           "Аккаунт",
		KeyDownload:          "Скачать",
		KeyInstallRequested:  "Установка скоро будет доступна",
		KeyInstallQueued:     "Уже в очереди",
		KeyNext:              "Далее",
		KeyStartBrowsing:     "Начать просмотр",
		KeySkip:              "Пропустить",
		KeySettings:          "Настройки",
		KeyLanguage:          "Язык",
		KeyShowOnboarding:    "Показать приветствие при следующем запуске",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки сохранены",
		KeyNothingFound:      "Ничего не найдено",
		KeyPlaceholderApps:   "Приложения",
		KeyPlaceholderGames:  "Игры",
		KeyPlaceholderKiosk:  "Киоск",
		KeyPlaceholderProfil: "Профиль",

		model.TabLabelFeed:    "Главная",
		model.TabLabelApps:    "Приложения",
		model.TabLabelGames:   "Игры",
		model.TabLabelKiosk:   "Киоск",
		model.TabLabelProfile: "Профиль",
	}

	l.texts["en"] = map[string]string{
		KeyAppTitle:          "RuStore",
		KeySearchHint:        "Apps and games",
		KeyVoiceSearch:       "Voice search",
		KeyAccount:           "Account",
		KeyDownload:          "Get",
		KeyInstallRequested:  "Installation is coming soon",
		KeyInstallQueued:     "Already queued",
		KeyNext:              "Next",
		KeyStartBrowsing:     "Start browsing",
		KeySkip:              "Skip",
		KeySettings:          "Settings",
		KeyLanguage:          "Language",
		KeyShowOnboarding:    "Show welcome screens on next launch",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved",
		KeyNothingFound:      "Nothing found",
		KeyPlaceholderApps:   "Apps",
		KeyPlaceholderGames:  "Games",
		KeyPlaceholderKiosk:  "Kiosk",
		KeyPlaceholderProfil: "Profile",

		model.TabLabelFeed:    "Home",
		model.TabLabelApps:    "Apps",
		model.TabLabelGames:   "Games",
		model.TabLabelKiosk:   "Kiosk",
		model.TabLabelProfile: "Profile",
	}
}
