package domain

import "github.com/larriantoniy/tg_invest_bot/internal/i18n"

// State — этап анкеты, на котором находится заявитель.
// Переходы только вперёд, кроме повторного ввода при ошибке валидации.
type State string

const (
	StateSelectingLanguage State = "selecting_language"
	StateReviewingPitch    State = "reviewing_pitch"
	StateEnteringName      State = "entering_name"
	StateEnteringAmount    State = "entering_amount"
	StateEnteringEmail     State = "entering_email"
	StateWaitingForAdmin   State = "waiting_for_admin"
	StateDocumentSent      State = "document_sent"
	StateEnteringHash      State = "entering_hash"
	StateEnteringWallet    State = "entering_wallet"
)

// Session — полное состояние одной заявки (один чат = одна заявка).
// Поля анкеты заполняются по мере прохождения этапов и после этого не меняются.
type Session struct {
	ChatID        int64
	ApplicationID string
	State         State
	Language      i18n.Language

	FullName string
	Amount   float64
	Email    string
	TxHash   string
	Wallet   string
}
