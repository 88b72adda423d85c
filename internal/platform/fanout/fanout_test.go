package fanout_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/home-service/internal/platform/fanout"
)

func TestEach_Empty(t *testing.T) {
	t.Parallel()

	got := fanout.Each(context.Background(), 4, []int(nil), func(context.Context, int) (int, error) {
		t.Fatal("fn must not be called")
		return 0, nil
	})

	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestEach_KeepsInputOrder(t *testing.T) {
	t.Parallel()

	items := []int{5, 1, 4, 2, 3}
	got := fanout.Each(context.Background(), 2, items, func(_ context.Context, n int) (int, error) {
		time.Sleep(time.Duration(n) * time.Millisecond)
		return n * 10, nil
	})

	require.Len(t, got, len(items))
	for i, n := range items {
		assert.Equal(t, n*10, got[i].Value)
		assert.NoError(t, got[i].Err)
	}
}

func TestEach_ErrorsStayWithTheirItem(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	got := fanout.Each(context.Background(), 3, []string{"ok", "bad", "ok"}, func(_ context.Context, s string) (string, error) {
		if s == "bad" {
			return "", boom
		}
		return s, nil
	})

	assert.Equal(t, []error{nil, boom, nil}, fanout.Errors(got))
	assert.Equal(t, "ok", got[0].Value)
}

func TestEach_RespectsLimit(t *testing.T) {
	t.Parallel()

	var inFlight, peak atomic.Int32
	items := make([]int, 12)

	fanout.Each(context.Background(), 3, items, func(context.Context, int) (struct{}, error) {
		n := inFlight.Add(1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return struct{}{}, nil
	})

	assert.LessOrEqual(t, peak.Load(), int32(3))
	assert.Positive(t, peak.Load())
}

func TestEach_ZeroLimitStillRuns(t *testing.T) {
	t.Parallel()

	got := fanout.Each(context.Background(), 0, []int{1, 2}, func(_ context.Context, n int) (int, error) {
		return n, nil
	})

	assert.Equal(t, 1, got[0].Value)
	assert.Equal(t, 2, got[1].Value)
}

func TestEach_CanceledContextSkipsWaitingItems(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	got := fanout.Each(ctx, 1, []int{1, 2, 3, 4}, func(context.Context, int) (int, error) {
		calls.Add(1)
		return 0, nil
	})

	// select picks randomly between a free slot and a done context, so some
	// items may still run; every skipped one must report the cancellation.
	skipped := 0
	for _, o := range got {
		if o.Err != nil {
			require.ErrorIs(t, o.Err, context.Canceled)
			skipped++
		}
	}
	assert.Equal(t, int32(len(got)-skipped), calls.Load())
}
