package analytics

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestViewCache_MemoizesPerVersion(t *testing.T) {
	c := newViewCache(true)
	calls := 0
	compute := func(v string) func() (interface{}, error) {
		return func() (interface{}, error) {
			calls++
			return v, nil
		}
	}

	v, err := c.load(1, viewSummary, compute("v1"))
	require.NoError(t, err)
	require.Equal(t, "v1", v)

	v, err = c.load(1, viewSummary, compute("ignored"))
	require.NoError(t, err)
	require.Equal(t, "v1", v)
	require.Equal(t, 1, calls)

	v, err = c.load(2, viewSummary, compute("v2"))
	require.NoError(t, err)
	require.Equal(t, "v2", v)
	require.Equal(t, 2, calls)
}

func TestViewCache_NeverServesOlderVersion(t *testing.T) {
	c := newViewCache(true)

	_, err := c.load(5, viewProducts, func() (interface{}, error) { return "v5", nil })
	require.NoError(t, err)

	// A slow reader still holding version 4 computes its own result and
	// must not displace the newer entry.
	v, err := c.load(4, viewProducts, func() (interface{}, error) { return "v4", nil })
	require.NoError(t, err)
	require.Equal(t, "v4", v)

	v, err = c.load(5, viewProducts, func() (interface{}, error) { return "recomputed", nil })
	require.NoError(t, err)
	require.Equal(t, "v5", v)
}

func TestViewCache_ErrorsAreNotCached(t *testing.T) {
	c := newViewCache(true)

	_, err := c.load(1, viewSummary, func() (interface{}, error) { return nil, errors.New("boom") })
	require.Error(t, err)

	v, err := c.load(1, viewSummary, func() (interface{}, error) { return "ok", nil })
	require.NoError(t, err)
	require.Equal(t, "ok", v)
}

func TestViewCache_Disabled(t *testing.T) {
	c := newViewCache(false)
	calls := 0
	for i := 0; i < 3; i++ {
		_, err := c.load(1, viewSummary, func() (interface{}, error) {
			calls++
			return nil, nil
		})
		require.NoError(t, err)
	}
	require.Equal(t, 3, calls)
}

func TestViewCache_ConcurrentLoadsComputeOnce(t *testing.T) {
	c := newViewCache(true)
	var calls atomic.Int32
	release := make(chan struct{})

	var wg sync.WaitGroup
	results := make([]interface{}, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := c.load(7, viewCustomers, func() (interface{}, error) {
				calls.Add(1)
				<-release
				return "ranked", nil
			})
			require.NoError(t, err)
			results[i] = v
		}(i)
	}

	close(release)
	wg.Wait()

	require.Equal(t, int32(1), calls.Load())
	for _, v := range results {
		require.Equal(t, "ranked", v)
	}
}
