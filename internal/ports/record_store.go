package ports

import (
	"context"
	"errors"

	"github.com/larriantoniy/tg_invest_bot/internal/domain"
)

// Колонки листа заявок (нумерация с 1).
const (
	ColApplicationID = 1
	ColTimestamp     = 2
	ColChatID        = 3
	ColFullName      = 4
	ColAmount        = 5
	ColEmail         = 6
	ColTxHash        = 7
	ColWallet        = 8
)

var ErrRowNotFound = errors.New("record store: row not found")

// RecordStore — внешняя таблица заявок, одна строка на заявку.
type RecordStore interface {
	// EnsureHeaders создаёт строку заголовков, если лист пустой
	EnsureHeaders(ctx context.Context) error
	// ListApplicationIDs возвращает все ID заявок из первой колонки (без заголовка)
	ListApplicationIDs(ctx context.Context) ([]string, error)
	// FindRow возвращает номер строки (с 1) по ID заявки или ErrRowNotFound
	FindRow(ctx context.Context, applicationID string) (int, error)
	// AppendRow добавляет новую строку заявки
	AppendRow(ctx context.Context, rec domain.Record) error
	// UpdateCell обновляет одну ячейку существующей строки
	UpdateCell(ctx context.Context, row, column int, value string) error
}
