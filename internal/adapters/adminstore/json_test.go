package adminstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larriantoniy/tg_invest_bot/internal/ports"
)

func TestJSONAdminRepoMissingFile(t *testing.T) {
	repo := NewJSONAdminRepo(filepath.Join(t.TempDir(), "admins.json"))

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ports.ErrAdminSetMissing)
}

func TestJSONAdminRepoRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admins.json")
	repo := NewJSONAdminRepo(path)

	require.NoError(t, repo.Save(context.Background(), []int64{1, 2, 3}))

	ids, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids)

	// перезапись набора
	require.NoError(t, repo.Save(context.Background(), []int64{7}))
	ids, err = repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, ids)
}
