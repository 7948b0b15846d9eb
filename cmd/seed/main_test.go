package main

import (
	"context"
	"testing"

	"bookduck/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_IsIdempotent(t *testing.T) {
	pool := testutil.NewPostgres(t)
	ctx := context.Background()

	g, s, err := seed(ctx, pool)
	require.NoError(t, err)
	assert.Equal(t, len(genres), g)
	assert.Equal(t, len(skins), s)

	g, s, err = seed(ctx, pool)
	require.NoError(t, err)
	assert.Zero(t, g)
	assert.Zero(t, s)

	var name string
	require.NoError(t, pool.QueryRow(ctx, `SELECT name FROM genres WHERE id = 1`).Scan(&name))
	assert.Equal(t, "Etc", name)
}

func TestSeedData_UniqueIDs(t *testing.T) {
	seen := map[int64]bool{}
	for _, g := range genres {
		assert.False(t, seen[g.id], "duplicate genre id %d", g.id)
		seen[g.id] = true
	}

	seen = map[int64]bool{}
	for _, s := range skins {
		assert.False(t, seen[s.id], "duplicate skin id %d", s.id)
		seen[s.id] = true
		assert.Contains(t, []string{"DUCK", "BACKGROUND"}, s.skinType)
	}
}
