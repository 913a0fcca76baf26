package useCases

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// maxAllocAttempts ограничивает цикл подбора ID: минутная точность временной
// части даёт заметную вероятность коллизий при всплесках нагрузки.
const maxAllocAttempts = 1000

var ErrAllocatorExhausted = errors.New("allocator: attempts exhausted")

// Allocator выдаёт уникальные ID заявок вида HHMM + 4 символа случайного токена.
// Уникальность гарантирует не временная часть, а проверка по множеству выданных.
type Allocator struct {
	mu     sync.Mutex
	issued map[string]struct{}

	now       func() time.Time
	randToken func() string
}

// NewAllocator создаёт аллокатор, засеянный уже существующими ID
// (например, из первой колонки таблицы заявок).
func NewAllocator(seed []string) *Allocator {
	issued := make(map[string]struct{}, len(seed))
	for _, id := range seed {
		issued[id] = struct{}{}
	}
	return &Allocator{
		issued:    issued,
		now:       time.Now,
		randToken: func() string { return strings.ToUpper(uuid.NewString()[:4]) },
	}
}

// Allocate возвращает новый ID, не совпадающий ни с одним выданным или засеянным.
func (a *Allocator) Allocate() (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	prefix := a.now().Format("1504")
	for i := 0; i < maxAllocAttempts; i++ {
		id := prefix + a.randToken()
		if _, dup := a.issued[id]; dup {
			continue
		}
		a.issued[id] = struct{}{}
		return id, nil
	}
	return "", ErrAllocatorExhausted
}
