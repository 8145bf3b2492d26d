package cache_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/paidform/pkg/cache"
)

func TestMemory_GetSet(t *testing.T) {
	t.Parallel()

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()
		c := cache.NewMemory[string]()
		defer c.Close()

		_, err := c.Get(context.Background(), "missing")
		require.ErrorIs(t, err, cache.ErrNotFound)
	})

	t.Run("stored value", func(t *testing.T) {
		t.Parallel()
		c := cache.NewMemory[int]()
		defer c.Close()

		ctx := context.Background()
		require.NoError(t, c.Set(ctx, "key", 42, time.Minute))
		v, err := c.Get(ctx, "key")
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("expired value", func(t *testing.T) {
		t.Parallel()
		c := cache.NewMemory[string](cache.WithCleanupInterval(0))
		defer c.Close()

		ctx := context.Background()
		require.NoError(t, c.Set(ctx, "key", "v", time.Millisecond))
		time.Sleep(5 * time.Millisecond)

		_, err := c.Get(ctx, "key")
		require.ErrorIs(t, err, cache.ErrNotFound)
	})

	t.Run("negative ttl never expires", func(t *testing.T) {
		t.Parallel()
		c := cache.NewMemory[string](cache.WithDefaultTTL(time.Millisecond), cache.WithCleanupInterval(0))
		defer c.Close()

		ctx := context.Background()
		require.NoError(t, c.Set(ctx, "forever", "v", -1))
		require.NoError(t, c.Set(ctx, "default", "v", 0))
		time.Sleep(5 * time.Millisecond)

		_, err := c.Get(ctx, "forever")
		require.NoError(t, err)
		_, err = c.Get(ctx, "default")
		require.ErrorIs(t, err, cache.ErrNotFound)
	})
}

func TestMemory_Delete(t *testing.T) {
	t.Parallel()

	c := cache.NewMemory[string]()
	defer c.Close()

	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "key", "v", 0))
	require.NoError(t, c.Delete(ctx, "key"))
	require.NoError(t, c.Delete(ctx, "never-set"))

	_, err := c.Get(ctx, "key")
	require.ErrorIs(t, err, cache.ErrNotFound)
}

func TestMemory_Update(t *testing.T) {
	t.Parallel()

	t.Run("creates and modifies", func(t *testing.T) {
		t.Parallel()
		c := cache.NewMemory[int]()
		defer c.Close()
		ctx := context.Background()

		v, err := c.Update(ctx, "n", 0, func(cur int, found bool) (int, error) {
			assert.False(t, found)
			return cur + 1, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, v)

		v, err = c.Update(ctx, "n", 0, func(cur int, found bool) (int, error) {
			assert.True(t, found)
			return cur * 10, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 10, v)
	})

	t.Run("error aborts", func(t *testing.T) {
		t.Parallel()
		c := cache.NewMemory[int]()
		defer c.Close()
		ctx := context.Background()
		require.NoError(t, c.Set(ctx, "n", 5, 0))

		errStop := errors.New("stop")
		v, err := c.Update(ctx, "n", 0, func(int, bool) (int, error) { return 99, errStop })
		require.ErrorIs(t, err, errStop)
		assert.Equal(t, 5, v)

		got, err := c.Get(ctx, "n")
		require.NoError(t, err)
		assert.Equal(t, 5, got)
	})

	t.Run("is atomic", func(t *testing.T) {
		t.Parallel()
		c := cache.NewMemory[int]()
		defer c.Close()
		ctx := context.Background()

		var wg sync.WaitGroup
		for range 100 {
			wg.Go(func() {
				_, err := c.Update(ctx, "n", 0, func(cur int, _ bool) (int, error) { return cur + 1, nil })
				assert.NoError(t, err)
			})
		}
		wg.Wait()

		v, err := c.Get(ctx, "n")
		require.NoError(t, err)
		assert.Equal(t, 100, v)
	})
}

func TestMemory_MaxEntries(t *testing.T) {
	t.Parallel()

	c := cache.NewMemory[int](cache.WithMaxEntries(2))
	defer c.Close()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "a", 1, 0))
	require.NoError(t, c.Set(ctx, "b", 2, 0))
	_, err := c.Get(ctx, "a") // a becomes most recent
	require.NoError(t, err)
	require.NoError(t, c.Set(ctx, "c", 3, 0))

	assert.Equal(t, 2, c.Len())
	_, err = c.Get(ctx, "b")
	require.ErrorIs(t, err, cache.ErrNotFound)
	_, err = c.Get(ctx, "a")
	require.NoError(t, err)
}

func TestMemory_Janitor(t *testing.T) {
	t.Parallel()

	c := cache.NewMemory[string](cache.WithCleanupInterval(5 * time.Millisecond))
	defer c.Close()

	require.NoError(t, c.Set(context.Background(), "key", "v", time.Millisecond))
	require.Eventually(t, func() bool { return c.Len() == 0 }, time.Second, 5*time.Millisecond)
}

func TestMemory_Close(t *testing.T) {
	t.Parallel()

	c := cache.NewMemory[string]()
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	ctx := context.Background()
	require.ErrorIs(t, c.Set(ctx, "k", "v", 0), cache.ErrClosed)
	require.ErrorIs(t, c.Delete(ctx, "k"), cache.ErrClosed)
	_, err := c.Update(ctx, "k", 0, func(string, bool) (string, error) { return "v", nil })
	require.ErrorIs(t, err, cache.ErrClosed)
}
