package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextAllKeysHaveAllLanguages(t *testing.T) {
	langs := []Language{LangEN, LangRU, LangZH, LangID, LangFIL, LangVI}
	for key, byLang := range texts {
		for _, lang := range langs {
			assert.NotEmpty(t, byLang[lang], "key %s lang %s", key, lang)
		}
	}
}

func TestTextFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, Text(KeyWelcome, LangEN), Text(KeyWelcome, Language("xx")))
}

func TestTextUnknownKey(t *testing.T) {
	assert.Empty(t, Text(Key("no_such_key"), LangEN))
}

func TestLanguageByLabel(t *testing.T) {
	for _, label := range LanguageKeyboard() {
		lang, ok := LanguageByLabel(label)
		assert.True(t, ok, "label %q", label)
		assert.NotEmpty(t, lang)
	}

	_, ok := LanguageByLabel("Esperanto")
	assert.False(t, ok)
}
