package fanout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollect_KeepsIndexOrder(t *testing.T) {
	// Later indexes finish first.
	got, err := Collect(context.Background(), 5, func(ctx context.Context, i int) (int, error) {
		time.Sleep(time.Duration(5-i) * 2 * time.Millisecond)
		return i * 10, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int{0, 10, 20, 30, 40}, got)
}

func TestCollect_Empty(t *testing.T) {
	got, err := Collect(context.Background(), 0, func(ctx context.Context, i int) (string, error) {
		t.Fatal("fn must not be called")
		return "", nil
	})

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCollect_FirstErrorFailsJoin(t *testing.T) {
	boom := errors.New("boom")

	got, err := Collect(context.Background(), 4, func(ctx context.Context, i int) (int, error) {
		if i == 2 {
			return 0, boom
		}
		return i, nil
	})

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, got)
}

func TestCollect_ErrorCancelsSiblings(t *testing.T) {
	boom := errors.New("boom")

	_, err := Collect(context.Background(), 2, func(ctx context.Context, i int) (int, error) {
		if i == 0 {
			return 0, boom
		}
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(5 * time.Second):
			return 1, nil
		}
	})

	assert.ErrorIs(t, err, boom)
}

func TestMap(t *testing.T) {
	got, err := Map(context.Background(), []string{"a", "bb", "ccc"}, func(ctx context.Context, s string) (int, error) {
		return len(s), nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}
