package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func countingFetch(calls *int, value interface{}) FetchFunc {
	return func(ctx context.Context) (interface{}, error) {
		*calls++
		return value, nil
	}
}

func TestQueryCache_GetOrFetch_ReusesFreshEntry(t *testing.T) {
	c := New(time.Minute)
	calls := 0

	v, err := c.GetOrFetch(context.Background(), "patients:", countingFetch(&calls, "first"))
	assert.NoError(t, err)
	assert.Equal(t, "first", v)

	v, err = c.GetOrFetch(context.Background(), "patients:", countingFetch(&calls, "second"))
	assert.NoError(t, err)
	assert.Equal(t, "first", v)
	assert.Equal(t, 1, calls)
}

func TestQueryCache_GetOrFetch_ExpiredEntryRefetches(t *testing.T) {
	c := New(time.Nanosecond)
	calls := 0

	_, err := c.GetOrFetch(context.Background(), "patients:", countingFetch(&calls, "first"))
	assert.NoError(t, err)

	time.Sleep(time.Millisecond)

	v, err := c.GetOrFetch(context.Background(), "patients:", countingFetch(&calls, "second"))
	assert.NoError(t, err)
	assert.Equal(t, "second", v)
	assert.Equal(t, 2, calls)
}

func TestQueryCache_Invalidate_DropsPrefix(t *testing.T) {
	c := New(time.Minute)
	calls := 0

	_, err := c.GetOrFetch(context.Background(), "records:4:summaries", countingFetch(&calls, "a"))
	assert.NoError(t, err)
	_, err = c.GetOrFetch(context.Background(), "records:42:summaries", countingFetch(&calls, "b"))
	assert.NoError(t, err)
	assert.Equal(t, 2, calls)

	// Patient 4 is gone, patient 42 is untouched
	c.Invalidate("records:4:")
	assert.Equal(t, 1, c.Len())

	_, err = c.GetOrFetch(context.Background(), "records:4:summaries", countingFetch(&calls, "a2"))
	assert.NoError(t, err)
	assert.Equal(t, 3, calls)

	v, err := c.GetOrFetch(context.Background(), "records:42:summaries", countingFetch(&calls, "b2"))
	assert.NoError(t, err)
	assert.Equal(t, "b", v)
	assert.Equal(t, 3, calls)
}

func TestQueryCache_Invalidate_DistinctSearchKeysDoNotAccumulate(t *testing.T) {
	c := New(time.Minute)
	calls := 0

	for _, key := range []string{"patients:", "patients:ana", "patients:lopez", "patients:exp-001"} {
		_, err := c.GetOrFetch(context.Background(), key, countingFetch(&calls, key))
		assert.NoError(t, err)
	}
	assert.Equal(t, 4, c.Len())

	c.Invalidate("patients:")
	assert.Equal(t, 0, c.Len())
}

func TestQueryCache_GetOrFetch_ExpiredEntryIsEvictedOnMiss(t *testing.T) {
	c := New(time.Nanosecond)
	calls := 0

	_, err := c.GetOrFetch(context.Background(), "patients:", countingFetch(&calls, "first"))
	assert.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	time.Sleep(time.Millisecond)

	// Even a failed refetch leaves no expired entry behind
	_, err = c.GetOrFetch(context.Background(), "patients:", func(ctx context.Context) (interface{}, error) {
		return nil, errors.New("connection refused")
	})
	assert.Error(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestQueryCache_GetOrFetch_FailedFetchStoresNothing(t *testing.T) {
	c := New(time.Minute)
	boom := errors.New("connection refused")

	_, err := c.GetOrFetch(context.Background(), "patients:", func(ctx context.Context) (interface{}, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, c.Len())

	v, err := c.GetOrFetch(context.Background(), "patients:", func(ctx context.Context) (interface{}, error) {
		return "recovered", nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "recovered", v)
}
