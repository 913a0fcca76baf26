package useCases

import (
	"errors"
	"sync"

	"github.com/larriantoniy/tg_invest_bot/internal/domain"
)

var ErrApplicationNotFound = errors.New("session store: no waiting application")

// SessionStore хранит сессии заявителей по ID чата.
// Все чтения и записи идут под общим мьютексом: скан подтверждения должен
// видеть согласованный снимок всех сессий.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[int64]*domain.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[int64]*domain.Session)}
}

// Get возвращает копию сессии чата.
func (s *SessionStore) Get(chatID int64) (domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[chatID]
	if !ok {
		return domain.Session{}, false
	}
	return *sess, true
}

// Put заменяет сессию чата целиком (создание и сброс через /start).
func (s *SessionStore) Put(sess domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.ChatID] = &sess
}

// Update применяет fn к сессии под блокировкой. Возвращает false, если сессии нет.
func (s *SessionStore) Update(chatID int64, fn func(*domain.Session)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[chatID]
	if !ok {
		return false
	}
	fn(sess)
	return true
}

// Delete удаляет сессию (терминальное состояние анкеты).
func (s *SessionStore) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}

// Approve находит единственную сессию с данным ID заявки в состоянии
// waiting_for_admin и переводит её в document_sent. Поиск и переход выполняются
// в одной критической секции: при гонке двух админов выигрывает первый,
// второй получает ErrApplicationNotFound.
// Линейный скан осознанный: подтверждений мало, индекс не нужен.
func (s *SessionStore) Approve(applicationID string) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sess := range s.sessions {
		if sess.ApplicationID == applicationID && sess.State == domain.StateWaitingForAdmin {
			sess.State = domain.StateDocumentSent
			return *sess, nil
		}
	}
	return domain.Session{}, ErrApplicationNotFound
}
