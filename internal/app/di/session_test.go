package di

import (
	"testing"

	"jobboard_backend/internal/platform/session"

	"github.com/alicebob/miniredis/v2"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TestNewSessionRepository_Redis はRedisクライアントがある場合にRedis実装が選ばれることを検証します。
func TestNewSessionRepository_Redis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redisv9.NewClient(&redisv9.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	repo := NewSessionRepository(rdb, nil)

	_, ok := repo.(*session.SessionRedis)
	assert.True(t, ok, "expected the Redis-backed session repository")
}

// TestNewSessionRepository_Fallback はRedisがない場合にSQL実装へフォールバックすることを検証します。
func TestNewSessionRepository_Fallback(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	repo := NewSessionRepository(nil, db)

	require.NotNil(t, repo)
	_, ok := repo.(*session.SessionRedis)
	assert.False(t, ok, "expected the SQL fallback, not the Redis implementation")
}
