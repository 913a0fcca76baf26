package ports

import (
	"context"
	"errors"
)

var ErrAdminSetMissing = errors.New("admin repo: no persisted admin set")

// AdminRepo хранит множество ID администраторов между перезапусками.
type AdminRepo interface {
	// Load возвращает сохранённый набор ID или ErrAdminSetMissing
	Load(ctx context.Context) ([]int64, error)
	// Save полностью перезаписывает сохранённый набор
	Save(ctx context.Context, ids []int64) error
}
