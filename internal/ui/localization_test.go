package ui

import (
	"testing"

	"github.com/ytget/storefront/internal/model"
)

func TestLocalization_DefaultsToRussian(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Expected ru, got %s", l.GetCurrentLanguage())
	}
	if got := l.GetText(KeySkip); got != "Пропустить" {
		t.Errorf("Expected Пропустить, got %q", got)
	}
	if got := l.GetText(KeyStartBrowsing); got != "Начать просмотр" {
		t.Errorf("Expected Начать просмотр, got %q", got)
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("en")
	if got := l.GetText(KeyNext); got != "Next" {
		t.Errorf("Expected Next, got %q", got)
	}

	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Unknown language should be ignored, got %s", l.GetCurrentLanguage())
	}

	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("Expected key fallback, got %q", got)
	}
}

func TestLocalization_CoversTabsInEveryLanguage(t *testing.T) {
	l := NewLocalization()

	for lang := range l.GetAvailableLanguages() {
		l.SetLanguage(lang)
		for _, tab := range model.DefaultTabs() {
			if got := l.GetText(tab.Label); got == tab.Label {
				t.Errorf("%s: tab label %s is not translated", lang, tab.Label)
			}
		}
	}
}
