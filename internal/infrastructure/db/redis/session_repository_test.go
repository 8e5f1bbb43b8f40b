package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/datalab/sample-tracker/internal/core/domain"
)

func newTestRepo(t *testing.T) (*SessionRepository, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionRepository(client, zerolog.Nop()), mr
}

func TestSessionRepository_SetGetClear(t *testing.T) {
	ctx := context.Background()
	repo, mr := newTestRepo(t)

	_, err := repo.Get(ctx, "o1")
	require.ErrorIs(t, err, domain.ErrNoSession)

	handler := domain.Registry()[0]
	require.NoError(t, repo.Set(ctx, "o1", handler))
	require.True(t, mr.Exists("datalab:session:o1:currentUser"))

	got, err := repo.Get(ctx, "o1")
	require.NoError(t, err)
	require.Equal(t, handler, *got)

	require.NoError(t, repo.Clear(ctx, "o1"))
	_, err = repo.Get(ctx, "o1")
	require.ErrorIs(t, err, domain.ErrNoSession)
}

func TestSessionRepository_CorruptSlot(t *testing.T) {
	repo, mr := newTestRepo(t)
	require.NoError(t, mr.Set("datalab:session:o1:currentUser", "{garbage"))

	_, err := repo.Get(context.Background(), "o1")
	require.ErrorIs(t, err, domain.ErrCorruptSession)
}

func TestSessionRepository_ClearInOtherContextIsObserved(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	repo, _ := newTestRepo(t)

	require.NoError(t, repo.Set(ctx, "o1", domain.Registry()[1]))

	changes, err := repo.Subscribe(ctx, "o1")
	require.NoError(t, err)

	require.NoError(t, repo.Clear(ctx, "o1"))

	select {
	case c := <-changes:
		require.Equal(t, domain.SessionCleared, c.Kind)
		require.Equal(t, "o1", c.Origin)
	case <-time.After(2 * time.Second):
		t.Fatal("no change notification received")
	}
}
