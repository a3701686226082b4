package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/Manthan2549/panchveda-wellness-hub/domain"
)

// setupTestRedis creates an in-memory Redis instance for testing
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")
	t.Cleanup(mr.Close)

	return redis.NewClient(&redis.Options{Addr: mr.Addr()}), mr
}

func TestSessionRepositoryImpl_Create(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewSessionRepository(client)
	ctx := context.Background()

	session := &domain.Session{
		ID:        "sess_1_100",
		UserID:    1,
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, session))

	exists := client.Exists(ctx, "session:sess_1_100").Val()
	require.Equal(t, int64(1), exists, "expected session key in redis")

	ttl := client.TTL(ctx, "session:sess_1_100").Val()
	require.Greater(t, ttl, time.Duration(0), "expected TTL on session key")
}

func TestSessionRepositoryImpl_CreateRemembered(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewSessionRepository(client)
	ctx := context.Background()

	// A remembered session carries a longer expiry; the key TTL follows it.
	session := &domain.Session{
		ID:         "sess_2_200",
		UserID:     2,
		RememberMe: true,
		ExpiresAt:  time.Now().Add(30 * 24 * time.Hour),
		CreatedAt:  time.Now(),
	}
	require.NoError(t, repo.Create(ctx, session))

	ttl := client.TTL(ctx, "session:sess_2_200").Val()
	require.Greater(t, ttl, 29*24*time.Hour)
}

func TestSessionRepositoryImpl_CreateExpired(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewSessionRepository(client)

	session := &domain.Session{
		ID:        "sess_expired",
		UserID:    1,
		ExpiresAt: time.Now().Add(-time.Minute),
		CreatedAt: time.Now().Add(-time.Hour),
	}
	err := repo.Create(context.Background(), session)
	require.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestSessionRepositoryImpl_FindByID(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewSessionRepository(client)
	ctx := context.Background()

	session := &domain.Session{
		ID:        "sess_3_300",
		UserID:    3,
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, session))

	found, err := repo.FindByID(ctx, "sess_3_300")
	require.NoError(t, err)
	require.Equal(t, session.ID, found.ID)
	require.Equal(t, session.UserID, found.UserID)

	_, err = repo.FindByID(ctx, "sess_missing")
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionRepositoryImpl_Delete(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewSessionRepository(client)
	ctx := context.Background()

	session := &domain.Session{
		ID:        "sess_4_400",
		UserID:    4,
		ExpiresAt: time.Now().Add(time.Hour),
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, session))
	require.NoError(t, repo.Delete(ctx, "sess_4_400"))

	_, err := repo.FindByID(ctx, "sess_4_400")
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionRepositoryImpl_ExpiryByRedisTTL(t *testing.T) {
	client, mr := setupTestRedis(t)
	repo := NewSessionRepository(client)
	ctx := context.Background()

	session := &domain.Session{
		ID:        "sess_5_500",
		UserID:    5,
		ExpiresAt: time.Now().Add(time.Minute),
		CreatedAt: time.Now(),
	}
	require.NoError(t, repo.Create(ctx, session))

	mr.FastForward(2 * time.Minute)

	_, err := repo.FindByID(ctx, "sess_5_500")
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
}
