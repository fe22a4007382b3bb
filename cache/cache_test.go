package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSet(t *testing.T) {
	c := New(30 * time.Second)

	_, ok := c.Get("inception")
	assert.False(t, ok)

	c.Set("inception", "results")
	v, ok := c.Get("inception")
	require.True(t, ok)
	assert.Equal(t, "results", v)
}

func TestStaleEntriesTreatedAsAbsent(t *testing.T) {
	now := time.Now()
	c := New(30*time.Second, WithClock(func() time.Time { return now }))

	c.Set("inception", "results")

	now = now.Add(29 * time.Second)
	_, ok := c.Get("inception")
	assert.True(t, ok)

	now = now.Add(2 * time.Second)
	_, ok = c.Get("inception")
	assert.False(t, ok)

	// Stale entries are not evicted proactively.
	assert.Equal(t, 1, c.Len())
}

func TestSetOverwritesAndRefreshes(t *testing.T) {
	now := time.Now()
	c := New(30*time.Second, WithClock(func() time.Time { return now }))

	c.Set("inception", "old")
	now = now.Add(25 * time.Second)
	c.Set("inception", "new")
	now = now.Add(10 * time.Second)

	v, ok := c.Get("inception")
	require.True(t, ok)
	assert.Equal(t, "new", v)
}

func TestGetOrFetch(t *testing.T) {
	c := New(30 * time.Second)

	calls := 0
	fetch := func() (any, error) {
		calls++
		return "fetched", nil
	}

	v, err := c.GetOrFetch("inception", fetch)
	require.NoError(t, err)
	assert.Equal(t, "fetched", v)
	assert.Equal(t, 1, calls)

	// Second call is served from the cache.
	v, err = c.GetOrFetch("inception", fetch)
	require.NoError(t, err)
	assert.Equal(t, "fetched", v)
	assert.Equal(t, 1, calls)
}

func TestGetOrFetchDoesNotCacheFailures(t *testing.T) {
	c := New(30 * time.Second)

	calls := 0
	_, err := c.GetOrFetch("inception", func() (any, error) {
		calls++
		return nil, errors.New("upstream down")
	})
	require.Error(t, err)

	_, err = c.GetOrFetch("inception", func() (any, error) {
		calls++
		return "recovered", nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}
