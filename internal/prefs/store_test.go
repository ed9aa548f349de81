package prefs

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestMemory_Fallbacks(t *testing.T) {
	m := NewMemory()

	assert.False(t, m.BoolWithFallback("missing", false))
	assert.True(t, m.BoolWithFallback("missing", true))
	assert.Equal(t, "ru", m.StringWithFallback("missing", "ru"))
	assert.False(t, m.Has("missing"))
}

func TestMemory_SetAndRemove(t *testing.T) {
	m := NewMemory()

	m.SetBool("flag", true)
	m.SetString("lang", "en")
	assert.True(t, m.BoolWithFallback("flag", false))
	assert.Equal(t, "en", m.StringWithFallback("lang", "ru"))

	// a value of the wrong type falls back
	assert.Equal(t, "x", m.StringWithFallback("flag", "x"))

	m.RemoveValue("flag")
	assert.False(t, m.Has("flag"))
	assert.Equal(t, 3, m.Writes())
}

func TestNamespaced_PrefixesKeys(t *testing.T) {
	m := NewMemory()
	ns := NewNamespaced(m, "app_prefs")

	ns.SetBool("onboarding_shown", true)

	assert.True(t, m.Has("app_prefs.onboarding_shown"))
	assert.False(t, m.Has("onboarding_shown"))
	assert.True(t, ns.BoolWithFallback("onboarding_shown", false))
	assert.Equal(t, "app_prefs.onboarding_shown", ns.Key("onboarding_shown"))
}

func TestNamespaced_EmptyNamespace(t *testing.T) {
	ns := NewNamespaced(NewMemory(), "")
	assert.Equal(t, "k", ns.Key("k"))
}

func TestFynePreferencesSatisfyStore(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var s Store = app.Preferences()
	ns := NewNamespaced(s, "app_prefs")
	ns.SetString("app_language", "en")

	assert.Equal(t, "en", app.Preferences().String("app_prefs.app_language"))
}
