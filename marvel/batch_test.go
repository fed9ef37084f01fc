package marvel

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchManyPreservesOrder(t *testing.T) {
	get := func(_ context.Context, id int) (*Character, error) {
		return &Character{ID: id}, nil
	}

	ids := []int{5, 3, 9, 1}
	results, err := fetchMany(t.Context(), ids, get)
	require.NoError(t, err)
	require.Len(t, results, 4)

	for i, id := range ids {
		assert.Equal(t, id, results[i].ID)
	}
}

func TestFetchManyEmptyInput(t *testing.T) {
	called := false
	get := func(_ context.Context, id int) (*Character, error) {
		called = true
		return nil, nil
	}

	results, err := fetchMany(t.Context(), nil, get)
	require.NoError(t, err)
	assert.Nil(t, results)
	assert.False(t, called)
}

func TestFetchManyPropagatesError(t *testing.T) {
	get := func(_ context.Context, id int) (*Character, error) {
		if id == 3 {
			return nil, &APIError{Kind: KindNotFound, StatusCode: 404, Message: "Resource not found"}
		}
		return &Character{ID: id}, nil
	}

	_, err := fetchMany(t.Context(), []int{1, 2, 3, 4}, get)
	require.Error(t, err)
	assert.Equal(t, KindNotFound, ErrorKind(err))
}

func TestFetchManyBoundedConcurrency(t *testing.T) {
	var current, peak atomic.Int32
	get := func(ctx context.Context, id int) (*Character, error) {
		n := current.Add(1)
		defer current.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		return &Character{ID: id}, nil
	}

	ids := make([]int, 100)
	for i := range ids {
		ids[i] = i
	}

	_, err := fetchMany(t.Context(), ids, get)
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(defaultFetchConcurrency),
		fmt.Sprintf("expected at most %d concurrent fetches", defaultFetchConcurrency))
}
