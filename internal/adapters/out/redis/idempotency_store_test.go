package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyStore_FirstWriterWins(t *testing.T) {
	mr := miniredis.RunT(t)
	s := NewIdempotencyStore(mr.Addr())
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)

	stored, err := s.Put(ctx, "k", []byte("first"), time.Minute)
	require.NoError(t, err)
	require.True(t, stored)

	stored, err = s.Put(ctx, "k", []byte("second"), time.Minute)
	require.NoError(t, err)
	require.False(t, stored)

	b, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("first"), b)
	require.True(t, mr.Exists("idempotency:k"))
}

func TestIdempotencyStore_SetReplacesReservation(t *testing.T) {
	mr := miniredis.RunT(t)
	s := NewIdempotencyStore(mr.Addr())
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()

	stored, err := s.Put(ctx, "k", []byte("pending"), time.Minute)
	require.NoError(t, err)
	require.True(t, stored)

	require.NoError(t, s.Set(ctx, "k", []byte("done"), time.Minute))

	b, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("done"), b)
	require.Greater(t, mr.TTL("idempotency:k"), time.Duration(0))

	stored, err = s.Put(ctx, "k", []byte("again"), time.Minute)
	require.NoError(t, err)
	require.False(t, stored, "the final record still holds the key")
}

func TestIdempotencyStore_Expires(t *testing.T) {
	mr := miniredis.RunT(t)
	s := NewIdempotencyStore(mr.Addr())
	ctx := context.Background()

	_, err := s.Put(ctx, "k", []byte("v"), time.Second)
	require.NoError(t, err)
	mr.FastForward(2 * time.Second)

	_, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestIdempotencyStore_Unavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	s := NewIdempotencyStore(mr.Addr())
	require.NoError(t, s.Ping(context.Background()))
	mr.Close()

	_, _, err := s.Get(context.Background(), "k")
	require.Error(t, err)
	require.Contains(t, err.Error(), "redis get")
	require.ErrorContains(t, s.Set(context.Background(), "k", []byte("v"), time.Minute), "redis set")
	require.Error(t, s.Ping(context.Background()))
}
