package adminstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/larriantoniy/tg_invest_bot/internal/ports"
)

// JSONAdminRepo хранит набор ID администраторов в файле ("admins.json")
type JSONAdminRepo struct {
	path string
}

func NewJSONAdminRepo(path string) *JSONAdminRepo {
	return &JSONAdminRepo{path: path}
}

func (r *JSONAdminRepo) Load(_ context.Context) ([]int64, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ports.ErrAdminSetMissing
		}
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}

	var ids []int64
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", r.path, err)
	}
	return ids, nil
}

func (r *JSONAdminRepo) Save(_ context.Context, ids []int64) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal admin ids: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", r.path, err)
	}
	return nil
}
