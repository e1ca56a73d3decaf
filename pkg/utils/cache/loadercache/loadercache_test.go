package loadercache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsaxena/tirepace/pkg/utils/cache"
)

func TestLoaderCache_Get(t *testing.T) {
	calls := 0
	c := New(
		WithLoader[string, int](func(ctx context.Context, key string) (*int, error) {
			calls++
			v := len(key)
			return &v, nil
		}),
		WithExpiration[string, int](0))

	ctx := context.Background()
	v, err := c.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, 3, *v)

	// second hit is served from the cache
	_, err = c.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	c.Invalidate(ctx, "abc")
	_, err = c.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestLoaderCache_LoaderError(t *testing.T) {
	wantErr := errors.New("boom")
	c := New(
		WithLoader[string, int](func(ctx context.Context, key string) (*int, error) {
			return nil, wantErr
		}))
	_, err := c.Get(context.Background(), "x")
	assert.ErrorIs(t, err, wantErr)
}

func TestLoaderCache_WithoutLoader(t *testing.T) {
	c := New[string, int](WithExpiration[string, int](time.Minute))
	_, err := c.Get(context.Background(), "x")
	assert.ErrorIs(t, err, cache.ErrCacheMiss)
}
