package dataset

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_LoadsOncePerTTLWindow(t *testing.T) {
	clock := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	c := NewCache(time.Hour, func() time.Time { return clock })

	loads := 0
	load := func() (any, error) {
		loads++
		return loads, nil
	}

	v, err := c.GetOrLoad("games", load)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	// Same window, no reload.
	clock = clock.Add(59 * time.Minute)
	v, err = c.GetOrLoad("games", load)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, loads)

	// Past expiry, reload.
	clock = clock.Add(2 * time.Minute)
	v, err = c.GetOrLoad("games", load)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, loads)
}

func TestCache_ErrorsAreNotCached(t *testing.T) {
	c := NewCache(time.Hour, nil)

	calls := 0
	_, err := c.GetOrLoad("k", func() (any, error) {
		calls++
		return nil, errors.New("boom")
	})
	require.Error(t, err)

	v, err := c.GetOrLoad("k", func() (any, error) {
		calls++
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Equal(t, 2, calls)
}

func TestCache_InvalidateDropsKeys(t *testing.T) {
	c := NewCache(time.Hour, nil)
	loads := map[string]int{}
	load := func(key string) func() (any, error) {
		return func() (any, error) {
			loads[key]++
			return loads[key], nil
		}
	}

	_, err := c.GetOrLoad("a", load("a"))
	require.NoError(t, err)
	_, err = c.GetOrLoad("b", load("b"))
	require.NoError(t, err)

	c.Invalidate("a")
	v, err := c.GetOrLoad("a", load("a"))
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	v, err = c.GetOrLoad("b", load("b"))
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	c.Invalidate()
	_, err = c.GetOrLoad("b", load("b"))
	require.NoError(t, err)
	assert.Equal(t, 2, loads["b"])
}

func TestCache_KeysAreIndependent(t *testing.T) {
	c := NewCache(time.Hour, nil)
	v1, err := c.GetOrLoad("x", func() (any, error) { return "one", nil })
	require.NoError(t, err)
	v2, err := c.GetOrLoad("y", func() (any, error) { return "two", nil })
	require.NoError(t, err)
	assert.Equal(t, "one", v1)
	assert.Equal(t, "two", v2)
}
