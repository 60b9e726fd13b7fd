package repository_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/aureliabotanicals/storefront-platform/internal/config"
	repository "github.com/aureliabotanicals/storefront-platform/internal/repositories"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRateLimitTest(t *testing.T) (repository.RateLimitRepository, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()

	cfg := &config.Config{
		RateLimit: config.RateConfig{
			LoginLimit:  5,
			LoginWindow: 15 * time.Minute,
		},
	}

	repo := repository.NewRateLimitRepo(client, cfg)

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
	})

	return repo, mock
}

// Member scores are stamped with the wall clock, so the sliding-window
// commands are matched on command name only.
func anyArgs(expected, actual []interface{}) error {
	return nil
}

func TestCheckLoginRateLimit(t *testing.T) {
	username := "admin@aureliabotanicals.com"
	key := fmt.Sprintf("login_attempts:%s", username)

	t.Run("Success - Attempts Below Limit", func(t *testing.T) {
		// Arrange
		repo, mock := setupRateLimitTest(t)

		mock.CustomMatch(anyArgs).ExpectZRemRangeByScore(key, "0", "0").SetVal(0)
		mock.CustomMatch(anyArgs).ExpectZAdd(key, redis.Z{}).SetVal(1)
		mock.ExpectZCard(key).SetVal(2)
		mock.ExpectExpire(key, 15*time.Minute).SetVal(true)

		// Act
		allowed, remaining, retryAfter, err := repo.CheckLoginRateLimit(t.Context(), username)

		// Assert
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, 3, remaining)
		assert.Zero(t, retryAfter)
	})

	t.Run("Failure - Limit Reached", func(t *testing.T) {
		// Arrange
		repo, mock := setupRateLimitTest(t)
		oldest := time.Now().Unix() - 100

		mock.CustomMatch(anyArgs).ExpectZRemRangeByScore(key, "0", "0").SetVal(0)
		mock.CustomMatch(anyArgs).ExpectZAdd(key, redis.Z{}).SetVal(1)
		mock.ExpectZCard(key).SetVal(5)
		mock.ExpectExpire(key, 15*time.Minute).SetVal(true)
		mock.ExpectZRangeArgsWithScores(redis.ZRangeArgs{
			Key: key, Start: 0, Stop: 0,
		}).SetVal([]redis.Z{{Score: float64(oldest), Member: oldest}})

		// Act
		allowed, remaining, retryAfter, err := repo.CheckLoginRateLimit(t.Context(), username)

		// Assert
		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Zero(t, remaining)
		// oldest attempt was 100s into the 900s window
		assert.InDelta(t, 800, retryAfter, 2)
	})

	t.Run("Failure - Redis Pipeline Error", func(t *testing.T) {
		// Arrange: no expectations registered, so the pipeline fails
		repo, _ := setupRateLimitTest(t)

		// Act
		allowed, _, _, err := repo.CheckLoginRateLimit(t.Context(), username)

		// Assert
		require.Error(t, err)
		assert.False(t, allowed)
		assert.ErrorContains(t, err, "redis pipeline error for rate limit check")
	})
}
