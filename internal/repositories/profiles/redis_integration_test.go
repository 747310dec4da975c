//go:build integration
// +build integration

package profiles_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/entities"
	pkerr "github.com/KirkDiggler/pokemon-tabletop-bot/internal/errors"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/repositories/profiles"
	"github.com/KirkDiggler/pokemon-tabletop-bot/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	// This test requires Docker for the Redis container
	client := testutils.CreateTestRedisContainerOrSkip(t)

	repo := profiles.NewRedisRepository(&profiles.RedisRepoConfig{
		Client: client,
	})

	ctx := context.Background()

	t.Run("missing profile is not found", func(t *testing.T) {
		_, err := repo.Get(ctx, "nobody")
		assert.True(t, pkerr.IsNotFound(err))
	})

	t.Run("upsert then overwrite", func(t *testing.T) {
		profile := testutils.CreateTestProfile("user-123", "brock", "rock-throw", "tackle", "harden", "bind")
		require.NoError(t, repo.Upsert(ctx, profile))

		stored, err := repo.Get(ctx, "user-123")
		require.NoError(t, err)
		assert.Equal(t, profile, stored)

		replacement := testutils.CreateTestProfile("user-123", "brock2", "rock-slide", "earthquake", "sandstorm", "rock-tomb")
		require.NoError(t, repo.Upsert(ctx, replacement))

		stored, err = repo.Get(ctx, "user-123")
		require.NoError(t, err)
		assert.Equal(t, replacement, stored)
		assert.Len(t, stored.RegisteredMoves, entities.RegisteredMoveCount)
	})
}
