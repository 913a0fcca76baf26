package domain

import "time"

// Record — одна строка во внешней таблице заявок.
// Порядок полей соответствует колонкам листа (A..H).
type Record struct {
	ApplicationID string
	Timestamp     time.Time
	ChatID        int64
	FullName      string
	Amount        float64
	Email         string
	TxHash        string
	Wallet        string
}
