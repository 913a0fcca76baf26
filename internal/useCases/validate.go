package useCases

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/larriantoniy/tg_invest_bot/internal/i18n"
)

var (
	emailRe  = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	hashRe   = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
	walletRe = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
)

// ValidateName проверяет ФИО с учётом языка.
// Для китайского достаточно двух непробельных символов, для остальных —
// минимум две части по 2+ символа из латиницы, цифр, дефиса и апострофа.
func ValidateName(name string, lang i18n.Language) bool {
	if lang == i18n.LangZH {
		n := 0
		for _, r := range name {
			if !unicode.IsSpace(r) {
				n++
			}
		}
		return n >= 2
	}

	name = strings.Join(strings.Fields(name), " ")
	name = strings.ReplaceAll(name, " ,", ",")
	name = strings.ReplaceAll(name, ", ", ",")

	parts := strings.Fields(strings.ReplaceAll(name, ",", " "))
	if len(parts) < 2 {
		return false
	}
	for _, part := range parts {
		if len(part) < 2 {
			return false
		}
		for _, c := range part {
			if !isNameChar(c) {
				return false
			}
		}
	}
	return true
}

func isNameChar(c rune) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-', c == '\'':
		return true
	}
	return false
}

// ValidateEmail проверяет формат email
func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidateHash проверяет формат хэша транзакции (0x + 64 hex)
func ValidateHash(txHash string) bool {
	return hashRe.MatchString(txHash)
}

// ValidateWallet проверяет формат адреса EVM кошелька (0x + 40 hex)
func ValidateWallet(wallet string) bool {
	return walletRe.MatchString(wallet)
}
