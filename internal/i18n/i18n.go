package i18n

// Language — поддерживаемый язык анкеты.
type Language string

const (
	LangEN  Language = "en"
	LangRU  Language = "ru"
	LangZH  Language = "zh"
	LangID  Language = "id"
	LangFIL Language = "fil"
	LangVI  Language = "vi"
)

// Key — ключ локализованного сообщения.
type Key string

const (
	KeyWelcome              Key = "welcome"
	KeyPitchDeck            Key = "pitch_deck"
	KeyReviewedButton       Key = "reviewed_button"
	KeyEnterName            Key = "enter_name"
	KeyInvalidName          Key = "invalid_name"
	KeyEnterAmount          Key = "enter_amount"
	KeyInvalidAmount        Key = "invalid_amount"
	KeyMinimumAmount        Key = "minimum_amount"
	KeyEnterEmail           Key = "enter_email"
	KeyInvalidEmail         Key = "invalid_email"
	KeyDocumentSignedButton Key = "document_signed_button"
	KeyEnterHash            Key = "enter_hash"
	KeyInvalidHash          Key = "invalid_hash"
	KeyEnterWallet          Key = "enter_wallet"
	KeyInvalidWallet        Key = "invalid_wallet"
	KeySuccess              Key = "success"
	KeyRecordError          Key = "record_error"
	KeyWaitForConfirmation  Key = "wait_for_confirmation"
	KeyDocumentsSent        Key = "documents_sent"
)

// languageLabels — подписи кнопок выбора языка.
var languageLabels = map[string]Language{
	"English 🇬🇧":    LangEN,
	"Русский 🇷🇺":    LangRU,
	"中文 🇨🇳":         LangZH,
	"Indonesia 🇮🇩":  LangID,
	"Filipino 🇵🇭":   LangFIL,
	"Tiếng Việt 🇻🇳": LangVI,
}

// LanguageKeyboard возвращает подписи кнопок выбора языка в фиксированном порядке.
func LanguageKeyboard() []string {
	return []string{
		"English 🇬🇧",
		"Русский 🇷🇺",
		"中文 🇨🇳",
		"Indonesia 🇮🇩",
		"Filipino 🇵🇭",
		"Tiếng Việt 🇻🇳",
	}
}

// LanguageByLabel сопоставляет подпись кнопки с языком.
func LanguageByLabel(label string) (Language, bool) {
	lang, ok := languageLabels[label]
	return lang, ok
}

// Text возвращает локализованный текст по ключу.
// Для неизвестной пары (key, lang) возвращается английский вариант.
func Text(key Key, lang Language) string {
	byLang, ok := texts[key]
	if !ok {
		return ""
	}
	if s, ok := byLang[lang]; ok {
		return s
	}
	return byLang[LangEN]
}
