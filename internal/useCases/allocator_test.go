package useCases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocatorUniqueness(t *testing.T) {
	a := NewAllocator(nil)

	seen := make(map[string]struct{})
	for i := 0; i < 500; i++ {
		id, err := a.Allocate()
		require.NoError(t, err)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestAllocatorSkipsSeededIDs(t *testing.T) {
	fixed := time.Date(2025, 1, 2, 15, 4, 0, 0, time.UTC)
	seeded := "1504AAAA"

	a := NewAllocator([]string{seeded})
	a.now = func() time.Time { return fixed }

	// первый кандидат всегда коллизия с засеянным ID, второй свободен
	tokens := []string{"AAAA", "BBBB"}
	calls := 0
	a.randToken = func() string {
		tok := tokens[calls%len(tokens)]
		calls++
		return tok
	}

	id, err := a.Allocate()
	require.NoError(t, err)
	assert.Equal(t, "1504BBBB", id)
}

func TestAllocatorExhaustion(t *testing.T) {
	fixed := time.Date(2025, 1, 2, 15, 4, 0, 0, time.UTC)

	a := NewAllocator([]string{"1504AAAA"})
	a.now = func() time.Time { return fixed }
	a.randToken = func() string { return "AAAA" }

	_, err := a.Allocate()
	assert.ErrorIs(t, err, ErrAllocatorExhausted)
}

func TestAllocatorIDFormat(t *testing.T) {
	fixed := time.Date(2025, 1, 2, 9, 7, 0, 0, time.UTC)

	a := NewAllocator(nil)
	a.now = func() time.Time { return fixed }

	id, err := a.Allocate()
	require.NoError(t, err)
	assert.Len(t, id, 8)
	assert.Equal(t, "0907", id[:4], "time prefix is HHMM")
	assert.Regexp(t, "^0907[0-9A-F]{4}$", id)
}
