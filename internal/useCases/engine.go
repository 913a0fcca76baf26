package useCases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/larriantoniy/tg_invest_bot/internal/domain"
	"github.com/larriantoniy/tg_invest_bot/internal/i18n"
	"github.com/larriantoniy/tg_invest_bot/internal/ports"
)

const minInvestmentAmount = 10000

// Engine — машина состояний анкеты. Сообщения админов уходят в AdminFlow,
// остальные двигают сессию заявителя по этапам.
type Engine struct {
	log      *slog.Logger
	tg       ports.TelegramClient
	records  ports.RecordStore
	sessions *SessionStore
	alloc    *Allocator
	registry *AdminRegistry
	admins   *AdminFlow

	pitchDeckURL   string
	pitchDeckURLRu string

	now func() time.Time
}

func NewEngine(
	log *slog.Logger,
	tg ports.TelegramClient,
	records ports.RecordStore,
	sessions *SessionStore,
	alloc *Allocator,
	registry *AdminRegistry,
	admins *AdminFlow,
	pitchDeckURL, pitchDeckURLRu string,
) *Engine {
	return &Engine{
		log:            log,
		tg:             tg,
		records:        records,
		sessions:       sessions,
		alloc:          alloc,
		registry:       registry,
		admins:         admins,
		pitchDeckURL:   pitchDeckURL,
		pitchDeckURLRu: pitchDeckURLRu,
		now:            time.Now,
	}
}

// Run читает входящие сообщения и раскладывает их по воркерам чатов.
// Сообщения одного чата применяются строго в порядке прихода,
// разные чаты обрабатываются параллельно.
func (e *Engine) Run(ctx context.Context, msgs <-chan domain.Message) {
	const inboxSize = 32

	inboxes := make(map[int64]chan domain.Message)
	var wg sync.WaitGroup

	stop := func() {
		for _, inbox := range inboxes {
			close(inbox)
		}
		wg.Wait()
	}

	for {
		select {
		case <-ctx.Done():
			stop()
			return
		case msg, ok := <-msgs:
			if !ok {
				stop()
				return
			}

			inbox, ok := inboxes[msg.ChatID]
			if !ok {
				inbox = make(chan domain.Message, inboxSize)
				inboxes[msg.ChatID] = inbox
				wg.Add(1)
				go func() {
					defer wg.Done()
					for m := range inbox {
						e.Handle(ctx, m)
					}
				}()
			}

			select {
			case inbox <- msg:
			default:
				e.log.Warn("chat inbox overflow, message dropped", "chat_id", msg.ChatID)
			}
		}
	}
}

// Handle обрабатывает одно входящее сообщение.
func (e *Engine) Handle(ctx context.Context, msg domain.Message) {
	if e.registry.IsAdmin(msg.SenderID) {
		e.admins.Handle(ctx, msg)
		return
	}

	sess, ok := e.sessions.Get(msg.ChatID)
	// любое сообщение из неизвестного чата равнозначно /start
	if !ok || msg.Text == "/start" {
		e.startSession(msg.ChatID)
		return
	}

	e.log.Info("processing message",
		"chat_id", msg.ChatID,
		"state", sess.State,
		"lang", sess.Language,
	)

	switch sess.State {
	case domain.StateSelectingLanguage:
		e.handleLanguage(msg.ChatID, msg.Text)
	case domain.StateReviewingPitch:
		e.handleReviewingPitch(msg.ChatID, msg.Text, sess.Language)
	case domain.StateEnteringName:
		e.handleName(msg.ChatID, msg.Text, sess.Language)
	case domain.StateEnteringAmount:
		e.handleAmount(msg.ChatID, msg.Text, sess.Language)
	case domain.StateEnteringEmail:
		e.handleEmail(ctx, msg.ChatID, msg.Text, sess.Language)
	case domain.StateDocumentSent:
		e.handleDocumentSent(msg.ChatID, msg.Text, sess.Language)
	case domain.StateEnteringHash:
		e.handleHash(msg.ChatID, msg.Text, sess.Language)
	case domain.StateEnteringWallet:
		e.handleWallet(ctx, msg.ChatID, msg.Text, sess.Language)
	case domain.StateWaitingForAdmin:
		// заявка ждёт решения админа, вводу заявителя здесь делать нечего
	}
}

// startSession создаёт (или сбрасывает) сессию и предлагает выбрать язык.
func (e *Engine) startSession(chatID int64) {
	applicationID, err := e.alloc.Allocate()
	if err != nil {
		e.log.Error("allocate application id", "chat_id", chatID, "error", err)
		e.send(chatID, i18n.KeyRecordError, i18n.LangEN)
		return
	}

	e.sessions.Put(domain.Session{
		ChatID:        chatID,
		ApplicationID: applicationID,
		State:         domain.StateSelectingLanguage,
		Language:      i18n.LangEN,
	})

	e.log.Info("new session started", "chat_id", chatID, "application_id", applicationID)

	if err := e.tg.SendKeyboard(chatID, i18n.Text(i18n.KeyWelcome, i18n.LangEN), i18n.LanguageKeyboard()); err != nil {
		e.log.Error("send language keyboard", "chat_id", chatID, "error", err)
	}
}

func (e *Engine) handleLanguage(chatID int64, text string) {
	lang, ok := i18n.LanguageByLabel(text)
	if !ok {
		if err := e.tg.SendText(chatID, "Please select a language from the keyboard."); err != nil {
			e.log.Error("send language reprompt", "chat_id", chatID, "error", err)
		}
		return
	}

	e.sessions.Update(chatID, func(s *domain.Session) {
		s.Language = lang
		s.State = domain.StateReviewingPitch
	})

	button := i18n.Text(i18n.KeyReviewedButton, lang)
	if err := e.tg.SendKeyboard(chatID, i18n.Text(i18n.KeyPitchDeck, lang), []string{button}); err != nil {
		e.log.Error("send pitch deck message", "chat_id", chatID, "error", err)
	}

	url := e.pitchDeckURL
	if lang == i18n.LangRU {
		url = e.pitchDeckURLRu
	}
	if err := e.tg.SendText(chatID, fmt.Sprintf("Click here to view Pitch Deck: %s", url)); err != nil {
		e.log.Error("send pitch deck link", "chat_id", chatID, "error", err)
	}
}

func (e *Engine) handleReviewingPitch(chatID int64, text string, lang i18n.Language) {
	if text != i18n.Text(i18n.KeyReviewedButton, lang) {
		return
	}

	e.sessions.Update(chatID, func(s *domain.Session) {
		s.State = domain.StateEnteringName
	})
	if err := e.tg.RemoveKeyboard(chatID, i18n.Text(i18n.KeyEnterName, lang)); err != nil {
		e.log.Error("send enter name prompt", "chat_id", chatID, "error", err)
	}
}

func (e *Engine) handleName(chatID int64, text string, lang i18n.Language) {
	if !ValidateName(text, lang) {
		e.send(chatID, i18n.KeyInvalidName, lang)
		return
	}

	e.sessions.Update(chatID, func(s *domain.Session) {
		s.FullName = text
		s.State = domain.StateEnteringAmount
	})
	e.send(chatID, i18n.KeyEnterAmount, lang)
}

func (e *Engine) handleAmount(chatID int64, text string, lang i18n.Language) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		e.send(chatID, i18n.KeyInvalidAmount, lang)
		return
	}
	if amount < minInvestmentAmount {
		e.send(chatID, i18n.KeyMinimumAmount, lang)
		return
	}

	e.sessions.Update(chatID, func(s *domain.Session) {
		s.Amount = amount
		s.State = domain.StateEnteringEmail
	})
	e.send(chatID, i18n.KeyEnterEmail, lang)
}

// handleEmail завершает первую часть анкеты: уведомляет админов и пишет строку
// в таблицу. При ошибке записи состояние не откатывается, заявитель получает
// сообщение об ошибке и должен обратиться в поддержку.
func (e *Engine) handleEmail(ctx context.Context, chatID int64, text string, lang i18n.Language) {
	if !ValidateEmail(text) {
		e.send(chatID, i18n.KeyInvalidEmail, lang)
		return
	}

	e.sessions.Update(chatID, func(s *domain.Session) {
		s.Email = text
		s.State = domain.StateWaitingForAdmin
	})

	sess, ok := e.sessions.Get(chatID)
	if !ok {
		return
	}

	e.log.Info("application submitted",
		"chat_id", chatID,
		"application_id", sess.ApplicationID,
		"email", sess.Email,
	)

	e.admins.NotifyAll(fmt.Sprintf(
		"Новая заявка на инвестицию:\nID операции: %s\nTelegram ID: %d\nФИО: %s\nEmail: %s\nСумма: $%s\n",
		sess.ApplicationID,
		chatID,
		sess.FullName,
		sess.Email,
		strconv.FormatFloat(sess.Amount, 'f', -1, 64),
	))

	rec := domain.Record{
		ApplicationID: sess.ApplicationID,
		Timestamp:     e.now(),
		ChatID:        chatID,
		FullName:      sess.FullName,
		Amount:        sess.Amount,
		Email:         sess.Email,
	}
	if err := e.persistRecord(ctx, rec); err != nil {
		e.log.Error("persist application record", "application_id", sess.ApplicationID, "error", err)
		e.send(chatID, i18n.KeyRecordError, lang)
		return
	}
	e.send(chatID, i18n.KeyWaitForConfirmation, lang)
}

func (e *Engine) handleDocumentSent(chatID int64, text string, lang i18n.Language) {
	if text != i18n.Text(i18n.KeyDocumentSignedButton, lang) {
		if err := e.tg.SendText(chatID, "Please click the button when you have reviewed and signed the documents."); err != nil {
			e.log.Error("send sign reprompt", "chat_id", chatID, "error", err)
		}
		return
	}

	e.sessions.Update(chatID, func(s *domain.Session) {
		s.State = domain.StateEnteringHash
	})
	e.send(chatID, i18n.KeyEnterHash, lang)
}

func (e *Engine) handleHash(chatID int64, text string, lang i18n.Language) {
	if !ValidateHash(text) {
		e.send(chatID, i18n.KeyInvalidHash, lang)
		return
	}

	e.sessions.Update(chatID, func(s *domain.Session) {
		s.TxHash = text
		s.State = domain.StateEnteringWallet
	})
	e.send(chatID, i18n.KeyEnterWallet, lang)
}

// handleWallet — терминальный переход: дописывает хэш и кошелёк в таблицу
// и удаляет сессию.
func (e *Engine) handleWallet(ctx context.Context, chatID int64, text string, lang i18n.Language) {
	if !ValidateWallet(text) {
		e.send(chatID, i18n.KeyInvalidWallet, lang)
		return
	}

	e.sessions.Update(chatID, func(s *domain.Session) {
		s.Wallet = text
	})

	sess, ok := e.sessions.Get(chatID)
	if !ok {
		return
	}

	rec := domain.Record{
		ApplicationID: sess.ApplicationID,
		Timestamp:     e.now(),
		ChatID:        chatID,
		FullName:      sess.FullName,
		Amount:        sess.Amount,
		Email:         sess.Email,
		TxHash:        sess.TxHash,
		Wallet:        sess.Wallet,
	}
	if err := e.persistRecord(ctx, rec); err != nil {
		e.log.Error("persist final record", "application_id", sess.ApplicationID, "error", err)
		e.send(chatID, i18n.KeyRecordError, lang)
	} else {
		e.log.Info("application completed", "chat_id", chatID, "application_id", sess.ApplicationID)
		e.send(chatID, i18n.KeySuccess, lang)
	}

	e.sessions.Delete(chatID)
}

// persistRecord пишет заявку в таблицу: если строка уже есть и пришли хэш или
// кошелёк — обновляются только эти две ячейки, иначе добавляется новая строка.
func (e *Engine) persistRecord(ctx context.Context, rec domain.Record) error {
	row, err := e.records.FindRow(ctx, rec.ApplicationID)
	switch {
	case err == nil && (rec.TxHash != "" || rec.Wallet != ""):
		if rec.TxHash != "" {
			if err := e.records.UpdateCell(ctx, row, ports.ColTxHash, rec.TxHash); err != nil {
				return fmt.Errorf("update tx hash: %w", err)
			}
		}
		if rec.Wallet != "" {
			if err := e.records.UpdateCell(ctx, row, ports.ColWallet, rec.Wallet); err != nil {
				return fmt.Errorf("update wallet: %w", err)
			}
		}
		return nil
	case err != nil && !errors.Is(err, ports.ErrRowNotFound):
		return fmt.Errorf("find row: %w", err)
	default:
		if err := e.records.AppendRow(ctx, rec); err != nil {
			return fmt.Errorf("append row: %w", err)
		}
		return nil
	}
}

func (e *Engine) send(chatID int64, key i18n.Key, lang i18n.Language) {
	if err := e.tg.SendText(chatID, i18n.Text(key, lang)); err != nil {
		e.log.Error("send message", "chat_id", chatID, "key", string(key), "error", err)
	}
}
