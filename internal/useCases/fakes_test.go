package useCases

import (
	"context"
	"errors"
	"sync"

	"github.com/larriantoniy/tg_invest_bot/internal/domain"
	"github.com/larriantoniy/tg_invest_bot/internal/ports"
)

type sentMessage struct {
	chatID  int64
	text    string
	buttons []string
}

type fakeTelegram struct {
	mu      sync.Mutex
	sent    []sentMessage
	failFor map[int64]bool
}

func newFakeTelegram() *fakeTelegram {
	return &fakeTelegram{failFor: make(map[int64]bool)}
}

func (f *fakeTelegram) record(chatID int64, text string, buttons []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor[chatID] {
		return errors.New("delivery failed")
	}
	f.sent = append(f.sent, sentMessage{chatID: chatID, text: text, buttons: buttons})
	return nil
}

func (f *fakeTelegram) SendText(chatID int64, text string) error {
	return f.record(chatID, text, nil)
}

func (f *fakeTelegram) SendKeyboard(chatID int64, text string, buttons []string) error {
	return f.record(chatID, text, buttons)
}

func (f *fakeTelegram) RemoveKeyboard(chatID int64, text string) error {
	return f.record(chatID, text, nil)
}

func (f *fakeTelegram) Listen() (<-chan domain.Message, error) { return nil, nil }

func (f *fakeTelegram) Close() {}

// messagesTo возвращает тексты всех сообщений, отправленных в чат.
func (f *fakeTelegram) messagesTo(chatID int64) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, m := range f.sent {
		if m.chatID == chatID {
			out = append(out, m.text)
		}
	}
	return out
}

func (f *fakeTelegram) lastTo(chatID int64) string {
	msgs := f.messagesTo(chatID)
	if len(msgs) == 0 {
		return ""
	}
	return msgs[len(msgs)-1]
}

func (f *fakeTelegram) lastButtonsTo(chatID int64) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var buttons []string
	for _, m := range f.sent {
		if m.chatID == chatID {
			buttons = m.buttons
		}
	}
	return buttons
}

type fakeRecordStore struct {
	mu         sync.Mutex
	rows       []domain.Record
	failAppend bool
	failFind   bool
}

func (f *fakeRecordStore) EnsureHeaders(context.Context) error { return nil }

func (f *fakeRecordStore) ListApplicationIDs(context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]string, 0, len(f.rows))
	for _, r := range f.rows {
		ids = append(ids, r.ApplicationID)
	}
	return ids, nil
}

// FindRow нумерует строки как лист: строка 1 — заголовок, данные со строки 2.
func (f *fakeRecordStore) FindRow(_ context.Context, applicationID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFind {
		return 0, errors.New("find failed")
	}
	for i, r := range f.rows {
		if r.ApplicationID == applicationID {
			return i + 2, nil
		}
	}
	return 0, ports.ErrRowNotFound
}

func (f *fakeRecordStore) AppendRow(_ context.Context, rec domain.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAppend {
		return errors.New("append failed")
	}
	f.rows = append(f.rows, rec)
	return nil
}

func (f *fakeRecordStore) UpdateCell(_ context.Context, row, column int, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	idx := row - 2
	if idx < 0 || idx >= len(f.rows) {
		return errors.New("row out of range")
	}
	switch column {
	case ports.ColTxHash:
		f.rows[idx].TxHash = value
	case ports.ColWallet:
		f.rows[idx].Wallet = value
	default:
		return errors.New("unexpected column")
	}
	return nil
}

type fakeAdminRepo struct {
	mu      sync.Mutex
	ids     []int64
	missing bool
	saves   int
}

func (f *fakeAdminRepo) Load(context.Context) ([]int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.missing {
		return nil, ports.ErrAdminSetMissing
	}
	return append([]int64(nil), f.ids...), nil
}

func (f *fakeAdminRepo) Save(_ context.Context, ids []int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ids = append([]int64(nil), ids...)
	f.missing = false
	f.saves++
	return nil
}
