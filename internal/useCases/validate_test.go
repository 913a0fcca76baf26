package useCases

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/larriantoniy/tg_invest_bot/internal/i18n"
)

func TestValidateName(t *testing.T) {
	cases := []struct {
		name string
		in   string
		lang i18n.Language
		want bool
	}{
		{"two parts", "John Smith", i18n.LangEN, true},
		{"comma separated", "Smith,John", i18n.LangEN, true},
		{"comma with space", "Smith, John", i18n.LangEN, true},
		{"single part", "John", i18n.LangEN, false},
		{"short part", "J Smith", i18n.LangEN, false},
		{"digits allowed", "John2 Smith", i18n.LangEN, true},
		{"apostrophe and hyphen", "Mary-Jane O'Brien", i18n.LangEN, true},
		{"cyrillic rejected", "Иван Иванов", i18n.LangEN, false},
		{"extra whitespace", "  John   Smith  ", i18n.LangEN, true},
		{"chinese two chars", "李明", i18n.LangZH, true},
		{"chinese single char", "李", i18n.LangZH, false},
		{"chinese with spaces", " 李 明 ", i18n.LangZH, true},
		{"empty", "", i18n.LangEN, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidateName(tc.in, tc.lang))
		})
	}
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("jane@x.com"))
	assert.True(t, ValidateEmail("user.name+tag@sub.domain.org"))
	assert.False(t, ValidateEmail("jane@x"))
	assert.False(t, ValidateEmail("jane.x.com"))
	assert.False(t, ValidateEmail("@x.com"))
	assert.False(t, ValidateEmail("jane@x.c"))
}

func TestValidateHash(t *testing.T) {
	assert.True(t, ValidateHash("0x"+strings.Repeat("a", 64)))
	assert.True(t, ValidateHash("0x"+strings.Repeat("A", 64)))
	assert.False(t, ValidateHash("0x"+strings.Repeat("a", 63)))
	assert.False(t, ValidateHash("0x"+strings.Repeat("a", 65)))
	assert.False(t, ValidateHash(strings.Repeat("a", 66)))
	assert.False(t, ValidateHash("0x"+strings.Repeat("g", 64)))
}

func TestValidateWallet(t *testing.T) {
	assert.True(t, ValidateWallet("0x1aD2B053b8c6b1592cB645DEfadf105F34d8C6e1"))
	assert.False(t, ValidateWallet("0x1aD2B053b8c6b1592cB645DEfadf105F34d8C6e"))
	assert.False(t, ValidateWallet("0x1aD2B053b8c6b1592cB645DEfadf105F34d8C6e12"))
}
