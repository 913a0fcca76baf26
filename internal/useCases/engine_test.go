package useCases

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larriantoniy/tg_invest_bot/internal/domain"
	"github.com/larriantoniy/tg_invest_bot/internal/i18n"
)

const (
	adminChatID = int64(999)
	userChatID  = int64(42)
)

type testEnv struct {
	engine   *Engine
	tg       *fakeTelegram
	records  *fakeRecordStore
	sessions *SessionStore
	registry *AdminRegistry
	repo     *fakeAdminRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	tg := newFakeTelegram()
	records := &fakeRecordStore{}
	sessions := NewSessionStore()
	repo := &fakeAdminRepo{missing: true}

	registry, err := NewAdminRegistry(context.Background(), repo, adminChatID)
	require.NoError(t, err)

	flow := NewAdminFlow(log, tg, registry, sessions)
	engine := NewEngine(log, tg, records, sessions, NewAllocator(nil), registry, flow,
		"https://deck.example/en", "https://deck.example/ru")

	return &testEnv{
		engine:   engine,
		tg:       tg,
		records:  records,
		sessions: sessions,
		registry: registry,
		repo:     repo,
	}
}

func (env *testEnv) send(chatID int64, text string) {
	env.engine.Handle(context.Background(), domain.Message{ChatID: chatID, SenderID: chatID, Text: text})
}

// submitApplication доводит заявителя до waiting_for_admin и возвращает ID заявки.
func (env *testEnv) submitApplication(t *testing.T) string {
	t.Helper()

	env.send(userChatID, "/start")
	env.send(userChatID, "English 🇬🇧")
	env.send(userChatID, i18n.Text(i18n.KeyReviewedButton, i18n.LangEN))
	env.send(userChatID, "Jane Doe")
	env.send(userChatID, "15000")
	env.send(userChatID, "jane@x.com")

	sess, ok := env.sessions.Get(userChatID)
	require.True(t, ok)
	require.Equal(t, domain.StateWaitingForAdmin, sess.State)
	return sess.ApplicationID
}

func TestEngineFullApplicantFlow(t *testing.T) {
	env := newTestEnv(t)

	env.send(userChatID, "/start")
	assert.Equal(t, i18n.LanguageKeyboard(), env.tg.lastButtonsTo(userChatID))

	env.send(userChatID, "English 🇬🇧")
	sess, _ := env.sessions.Get(userChatID)
	assert.Equal(t, domain.StateReviewingPitch, sess.State)
	assert.Equal(t, i18n.LangEN, sess.Language)
	assert.Contains(t, env.tg.lastTo(userChatID), "https://deck.example/en")

	env.send(userChatID, i18n.Text(i18n.KeyReviewedButton, i18n.LangEN))
	assert.Equal(t, i18n.Text(i18n.KeyEnterName, i18n.LangEN), env.tg.lastTo(userChatID))

	env.send(userChatID, "Jane Doe")
	assert.Equal(t, i18n.Text(i18n.KeyEnterAmount, i18n.LangEN), env.tg.lastTo(userChatID))

	env.send(userChatID, "15000")
	assert.Equal(t, i18n.Text(i18n.KeyEnterEmail, i18n.LangEN), env.tg.lastTo(userChatID))

	env.send(userChatID, "jane@x.com")
	sess, _ = env.sessions.Get(userChatID)
	assert.Equal(t, domain.StateWaitingForAdmin, sess.State)
	assert.Equal(t, i18n.Text(i18n.KeyWaitForConfirmation, i18n.LangEN), env.tg.lastTo(userChatID))

	// строка заявки со всеми полями первой части анкеты
	require.Len(t, env.records.rows, 1)
	rec := env.records.rows[0]
	assert.Equal(t, sess.ApplicationID, rec.ApplicationID)
	assert.Equal(t, userChatID, rec.ChatID)
	assert.Equal(t, "Jane Doe", rec.FullName)
	assert.Equal(t, float64(15000), rec.Amount)
	assert.Equal(t, "jane@x.com", rec.Email)
	assert.Empty(t, rec.TxHash)
	assert.Empty(t, rec.Wallet)

	// каждый админ получил уведомление с ID заявки
	adminMsgs := env.tg.messagesTo(adminChatID)
	require.NotEmpty(t, adminMsgs)
	assert.Contains(t, adminMsgs[len(adminMsgs)-1], sess.ApplicationID)

	// подтверждение админом
	env.send(adminChatID, "✅ Подтвердить пользователя")
	env.send(adminChatID, sess.ApplicationID)
	sess, _ = env.sessions.Get(userChatID)
	assert.Equal(t, domain.StateDocumentSent, sess.State)
	assert.Equal(t, i18n.Text(i18n.KeyDocumentsSent, i18n.LangEN), env.tg.lastTo(userChatID))

	env.send(userChatID, i18n.Text(i18n.KeyDocumentSignedButton, i18n.LangEN))
	assert.Equal(t, i18n.Text(i18n.KeyEnterHash, i18n.LangEN), env.tg.lastTo(userChatID))

	hash := "0x" + strings.Repeat("a", 64)
	env.send(userChatID, hash)
	assert.Equal(t, i18n.Text(i18n.KeyEnterWallet, i18n.LangEN), env.tg.lastTo(userChatID))

	wallet := "0x1aD2B053b8c6b1592cB645DEfadf105F34d8C6e1"
	env.send(userChatID, wallet)
	assert.Equal(t, i18n.Text(i18n.KeySuccess, i18n.LangEN), env.tg.lastTo(userChatID))

	// хэш и кошелёк дописаны в ту же строку, сессия удалена
	require.Len(t, env.records.rows, 1)
	assert.Equal(t, hash, env.records.rows[0].TxHash)
	assert.Equal(t, wallet, env.records.rows[0].Wallet)
	_, ok := env.sessions.Get(userChatID)
	assert.False(t, ok)
}

func TestEngineUnknownChatTreatedAsStart(t *testing.T) {
	env := newTestEnv(t)

	env.send(userChatID, "hello there")

	sess, ok := env.sessions.Get(userChatID)
	require.True(t, ok)
	assert.Equal(t, domain.StateSelectingLanguage, sess.State)
	assert.NotEmpty(t, sess.ApplicationID)
}

func TestEngineStartResetsSession(t *testing.T) {
	env := newTestEnv(t)

	env.send(userChatID, "/start")
	first, _ := env.sessions.Get(userChatID)

	env.send(userChatID, "English 🇬🇧")
	env.send(userChatID, "/start")

	second, _ := env.sessions.Get(userChatID)
	assert.Equal(t, domain.StateSelectingLanguage, second.State)
	assert.NotEqual(t, first.ApplicationID, second.ApplicationID)
}

func TestEngineLanguageReprompt(t *testing.T) {
	env := newTestEnv(t)

	env.send(userChatID, "/start")
	env.send(userChatID, "Klingon")

	sess, _ := env.sessions.Get(userChatID)
	assert.Equal(t, domain.StateSelectingLanguage, sess.State)
	assert.Equal(t, "Please select a language from the keyboard.", env.tg.lastTo(userChatID))
}

func TestEngineNameValidationReprompt(t *testing.T) {
	env := newTestEnv(t)

	env.send(userChatID, "/start")
	env.send(userChatID, "English 🇬🇧")
	env.send(userChatID, i18n.Text(i18n.KeyReviewedButton, i18n.LangEN))

	env.send(userChatID, "John")
	sess, _ := env.sessions.Get(userChatID)
	assert.Equal(t, domain.StateEnteringName, sess.State)
	assert.Equal(t, i18n.Text(i18n.KeyInvalidName, i18n.LangEN), env.tg.lastTo(userChatID))

	env.send(userChatID, "John Smith")
	sess, _ = env.sessions.Get(userChatID)
	assert.Equal(t, domain.StateEnteringAmount, sess.State)
}

func TestEngineAmountValidation(t *testing.T) {
	env := newTestEnv(t)

	env.send(userChatID, "/start")
	env.send(userChatID, "English 🇬🇧")
	env.send(userChatID, i18n.Text(i18n.KeyReviewedButton, i18n.LangEN))
	env.send(userChatID, "Jane Doe")

	env.send(userChatID, "abc")
	assert.Equal(t, i18n.Text(i18n.KeyInvalidAmount, i18n.LangEN), env.tg.lastTo(userChatID))

	env.send(userChatID, "9999")
	assert.Equal(t, i18n.Text(i18n.KeyMinimumAmount, i18n.LangEN), env.tg.lastTo(userChatID))

	sess, _ := env.sessions.Get(userChatID)
	assert.Equal(t, domain.StateEnteringAmount, sess.State)

	env.send(userChatID, "10000")
	sess, _ = env.sessions.Get(userChatID)
	assert.Equal(t, domain.StateEnteringEmail, sess.State)
}

func TestEngineRecordFailureDoesNotRollBackState(t *testing.T) {
	env := newTestEnv(t)
	env.records.failAppend = true

	env.send(userChatID, "/start")
	env.send(userChatID, "English 🇬🇧")
	env.send(userChatID, i18n.Text(i18n.KeyReviewedButton, i18n.LangEN))
	env.send(userChatID, "Jane Doe")
	env.send(userChatID, "15000")
	env.send(userChatID, "jane@x.com")

	// заявитель получает сообщение об ошибке, но состояние уже переведено
	assert.Equal(t, i18n.Text(i18n.KeyRecordError, i18n.LangEN), env.tg.lastTo(userChatID))
	sess, _ := env.sessions.Get(userChatID)
	assert.Equal(t, domain.StateWaitingForAdmin, sess.State)
	assert.Empty(t, env.records.rows)
}

func TestEngineWaitingForAdminIgnoresInput(t *testing.T) {
	env := newTestEnv(t)
	env.submitApplication(t)

	before := len(env.tg.messagesTo(userChatID))
	env.send(userChatID, "any text")

	sess, _ := env.sessions.Get(userChatID)
	assert.Equal(t, domain.StateWaitingForAdmin, sess.State)
	assert.Len(t, env.tg.messagesTo(userChatID), before)
}

func TestEngineDocumentSentReprompt(t *testing.T) {
	env := newTestEnv(t)
	appID := env.submitApplication(t)

	env.send(adminChatID, "✅ Подтвердить пользователя")
	env.send(adminChatID, appID)

	env.send(userChatID, "not the button")
	sess, _ := env.sessions.Get(userChatID)
	assert.Equal(t, domain.StateDocumentSent, sess.State)
	assert.Contains(t, env.tg.lastTo(userChatID), "Please click the button")
}

func TestEngineFinalRecordFailure(t *testing.T) {
	env := newTestEnv(t)
	appID := env.submitApplication(t)

	env.send(adminChatID, "✅ Подтвердить пользователя")
	env.send(adminChatID, appID)
	env.send(userChatID, i18n.Text(i18n.KeyDocumentSignedButton, i18n.LangEN))
	env.send(userChatID, "0x"+strings.Repeat("a", 64))

	env.records.failFind = true
	env.send(userChatID, "0x1aD2B053b8c6b1592cB645DEfadf105F34d8C6e1")

	assert.Equal(t, i18n.Text(i18n.KeyRecordError, i18n.LangEN), env.tg.lastTo(userChatID))

	// сессия удаляется независимо от результата записи
	_, ok := env.sessions.Get(userChatID)
	assert.False(t, ok)
}

func TestEngineRussianPitchDeckURL(t *testing.T) {
	env := newTestEnv(t)

	env.send(userChatID, "/start")
	env.send(userChatID, "Русский 🇷🇺")

	assert.Contains(t, env.tg.lastTo(userChatID), "https://deck.example/ru")
	sess, _ := env.sessions.Get(userChatID)
	assert.Equal(t, i18n.LangRU, sess.Language)
}
