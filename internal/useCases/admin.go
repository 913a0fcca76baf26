package useCases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/larriantoniy/tg_invest_bot/internal/domain"
	"github.com/larriantoniy/tg_invest_bot/internal/i18n"
	"github.com/larriantoniy/tg_invest_bot/internal/ports"
)

// Кнопки админ-меню. Интерфейс администратора всегда на русском.
const (
	btnApproveUser = "✅ Подтвердить пользователя"
	btnAddAdmin    = "➕ Добавить админа"
	btnListAdmins  = "👥 Список админов"
)

// adminAction — одношаговое под-состояние админа: какой ввод ждём следующим.
type adminAction int

const (
	actionNone adminAction = iota
	actionAwaitApprovalID
	actionAwaitNewAdminID
)

// AdminRegistry — множество ID администраторов плюс их транзитные под-состояния.
// Набор переживает перезапуски через ports.AdminRepo.
type AdminRegistry struct {
	mu      sync.Mutex
	ids     map[int64]struct{}
	pending map[int64]adminAction
	repo    ports.AdminRepo
}

// NewAdminRegistry загружает сохранённый набор админов.
// Если набора нет, регистр засевается единственным bootstrap ID и сразу сохраняется.
func NewAdminRegistry(ctx context.Context, repo ports.AdminRepo, bootstrapID int64) (*AdminRegistry, error) {
	r := &AdminRegistry{
		ids:     make(map[int64]struct{}),
		pending: make(map[int64]adminAction),
		repo:    repo,
	}

	ids, err := repo.Load(ctx)
	switch {
	case errors.Is(err, ports.ErrAdminSetMissing):
		r.ids[bootstrapID] = struct{}{}
		if err := repo.Save(ctx, r.List()); err != nil {
			return nil, fmt.Errorf("seed admin set: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("load admin set: %w", err)
	default:
		for _, id := range ids {
			r.ids[id] = struct{}{}
		}
	}
	return r, nil
}

func (r *AdminRegistry) IsAdmin(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.ids[id]
	return ok
}

// Add добавляет нового администратора и сохраняет набор.
// Повторное добавление — no-op: возвращается added == false.
func (r *AdminRegistry) Add(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ids[id]; ok {
		return false, nil
	}
	r.ids[id] = struct{}{}

	ids := make([]int64, 0, len(r.ids))
	for v := range r.ids {
		ids = append(ids, v)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	if err := r.repo.Save(ctx, ids); err != nil {
		return true, fmt.Errorf("save admin set: %w", err)
	}
	return true, nil
}

// List возвращает ID администраторов по возрастанию.
func (r *AdminRegistry) List() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int64, 0, len(r.ids))
	for id := range r.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (r *AdminRegistry) arm(chatID int64, action adminAction) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending[chatID] = action
}

// take снимает и возвращает ожидаемое действие админа (одноразовое).
func (r *AdminRegistry) take(chatID int64) adminAction {
	r.mu.Lock()
	defer r.mu.Unlock()

	action := r.pending[chatID]
	delete(r.pending, chatID)
	return action
}

// AdminFlow обрабатывает сообщения администраторов: меню, подтверждение заявок,
// управление списком админов. Работает отдельно от машины состояний заявителя.
type AdminFlow struct {
	log      *slog.Logger
	tg       ports.TelegramClient
	registry *AdminRegistry
	sessions *SessionStore
}

func NewAdminFlow(log *slog.Logger, tg ports.TelegramClient, registry *AdminRegistry, sessions *SessionStore) *AdminFlow {
	return &AdminFlow{log: log, tg: tg, registry: registry, sessions: sessions}
}

// Handle обрабатывает одно сообщение от администратора.
func (f *AdminFlow) Handle(ctx context.Context, msg domain.Message) {
	switch msg.Text {
	case "/start":
		f.sendMenu(msg.ChatID)
		return
	case btnApproveUser:
		f.registry.arm(msg.ChatID, actionAwaitApprovalID)
		if err := f.tg.SendText(msg.ChatID, "Введите ID операции для подтверждения:"); err != nil {
			f.log.Error("send approve prompt", "chat_id", msg.ChatID, "error", err)
		}
		return
	case btnAddAdmin:
		f.registry.arm(msg.ChatID, actionAwaitNewAdminID)
		if err := f.tg.SendText(msg.ChatID, "Введите Telegram ID нового администратора:"); err != nil {
			f.log.Error("send add-admin prompt", "chat_id", msg.ChatID, "error", err)
		}
		return
	case btnListAdmins:
		f.showAdminList(msg.ChatID)
		return
	}

	switch f.registry.take(msg.ChatID) {
	case actionAwaitApprovalID:
		f.approve(msg.ChatID, strings.TrimSpace(msg.Text))
	case actionAwaitNewAdminID:
		f.addAdmin(ctx, msg.ChatID, strings.TrimSpace(msg.Text))
	}
}

func (f *AdminFlow) sendMenu(chatID int64) {
	buttons := []string{btnApproveUser, btnAddAdmin, btnListAdmins}
	if err := f.tg.SendKeyboard(chatID, "Вы вошли как администратор.", buttons); err != nil {
		f.log.Error("send admin menu", "chat_id", chatID, "error", err)
	}
}

// approve переводит ожидающую заявку в document_sent и уведомляет заявителя.
func (f *AdminFlow) approve(adminChatID int64, applicationID string) {
	sess, err := f.sessions.Approve(applicationID)
	if err != nil {
		f.log.Info("approval target not found", "application_id", applicationID, "admin_id", adminChatID)
		f.reply(adminChatID, "❌ Заявка не найдена или не ожидает подтверждения")
		return
	}

	button := i18n.Text(i18n.KeyDocumentSignedButton, sess.Language)
	text := i18n.Text(i18n.KeyDocumentsSent, sess.Language)
	if err := f.tg.SendKeyboard(sess.ChatID, text, []string{button}); err != nil {
		f.log.Error("notify applicant about documents", "chat_id", sess.ChatID, "error", err)
	}

	f.log.Info("application approved", "application_id", applicationID, "admin_id", adminChatID)
	f.reply(adminChatID, fmt.Sprintf("✅ Подтверждение отправлено\nID операции: %s", applicationID))
}

func (f *AdminFlow) addAdmin(ctx context.Context, adminChatID int64, text string) {
	newID, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		f.reply(adminChatID, "❌ Неверный формат ID. Пожалуйста, введите числовой ID.")
		return
	}

	added, err := f.registry.Add(ctx, newID)
	if err != nil {
		f.log.Error("persist admin set", "new_admin_id", newID, "error", err)
		f.reply(adminChatID, "Ошибка при сохранении списка администраторов.")
		return
	}
	if !added {
		f.reply(adminChatID, "Этот пользователь уже является администратором.")
		return
	}

	f.reply(adminChatID, fmt.Sprintf("✅ Новый администратор (ID: %d) успешно добавлен", newID))

	if err := f.tg.SendText(newID, "Вам были предоставлены права администратора. Используйте /start для начала работы."); err != nil {
		f.log.Error("notify new admin", "new_admin_id", newID, "error", err)
		f.reply(adminChatID,
			"Примечание: Не удалось отправить уведомление новому администратору. "+
				"Возможно, бот не был активирован пользователем.")
	}
}

func (f *AdminFlow) showAdminList(chatID int64) {
	lines := make([]string, 0)
	for _, id := range f.registry.List() {
		lines = append(lines, fmt.Sprintf("• ID: %d", id))
	}
	f.reply(chatID, "Список администраторов:\n\n"+strings.Join(lines, "\n"))
}

// NotifyAll рассылает текст всем администраторам.
// Ошибка доставки одному получателю не прерывает рассылку остальным.
func (f *AdminFlow) NotifyAll(text string) {
	for _, id := range f.registry.List() {
		if err := f.tg.SendText(id, text); err != nil {
			f.log.Error("notify admin", "admin_id", id, "error", err)
		}
	}
}

func (f *AdminFlow) reply(chatID int64, text string) {
	if err := f.tg.SendText(chatID, text); err != nil {
		f.log.Error("reply to admin", "chat_id", chatID, "error", err)
	}
}
