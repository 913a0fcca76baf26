package ports

import "github.com/larriantoniy/tg_invest_bot/internal/domain"

// TelegramClient определяет интерфейс для работы с Telegram
// Реализуется конкретными адаптерами (TDLib, Bot API и т.д.).
type TelegramClient interface {
	// SendText отправляет текстовое сообщение в чат
	SendText(chatID int64, text string) error
	// SendKeyboard отправляет сообщение с reply-клавиатурой (кнопки в один столбец)
	SendKeyboard(chatID int64, text string, buttons []string) error
	// RemoveKeyboard отправляет сообщение и убирает reply-клавиатуру
	RemoveKeyboard(chatID int64, text string) error
	// Listen возвращает канал доменных сообщений
	Listen() (<-chan domain.Message, error)
	Close()
}
