package liststate

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type countingFetcher struct {
	calls atomic.Int32
	data  []string
	err   error
}

func (f *countingFetcher) fetch(ctx context.Context) ([]string, error) {
	f.calls.Add(1)
	return f.data, f.err
}

func TestStateUnion(t *testing.T) {
	s := Loading[[]int]()
	require.True(t, s.Loading())
	_, ok := s.Data()
	require.False(t, ok)
	_, ok = s.Message()
	require.False(t, ok)

	r := Ready([]int{1})
	data, ok := r.Data()
	require.True(t, ok)
	require.Equal(t, []int{1}, data)
	_, ok = r.Message()
	require.False(t, ok)

	e := Failed[[]int]("boom")
	msg, ok := e.Message()
	require.True(t, ok)
	require.Equal(t, "boom", msg)
	_, ok = e.Data()
	require.False(t, ok)
	require.Equal(t, "error", e.Phase().String())
}

func TestRefreshReady(t *testing.T) {
	f := &countingFetcher{data: []string{"a", "b"}}
	c := New(f.fetch)
	require.Equal(t, PhaseLoading, c.State().Phase())
	require.Zero(t, f.calls.Load())

	state := c.Refresh(context.Background())
	require.Equal(t, int32(1), f.calls.Load())
	data, ok := state.Data()
	require.True(t, ok)
	require.Equal(t, []string{"a", "b"}, data)
}

func TestLoadingUntilResolved(t *testing.T) {
	release := make(chan struct{})
	c := New(func(ctx context.Context) ([]string, error) {
		<-release
		return []string{"x"}, nil
	})
	done := make(chan State[[]string])
	go func() { done <- c.Refresh(context.Background()) }()

	require.Eventually(t, func() bool { return c.State().Loading() }, time.Second, time.Millisecond)
	close(release)
	state := <-done
	require.Equal(t, PhaseReady, state.Phase())
}

func TestRefreshError(t *testing.T) {
	f := &countingFetcher{err: errors.New("down")}
	c := New(f.fetch, WithErrorMessage[[]string]("No se pudieron cargar los productos."))
	state := c.Refresh(context.Background())
	msg, ok := state.Message()
	require.True(t, ok)
	require.Equal(t, "No se pudieron cargar los productos.", msg)
}

func TestRefreshFallback(t *testing.T) {
	f := &countingFetcher{err: errors.New("down")}
	c := New(f.fetch, WithFallback([]string{"sample"}))
	state := c.Refresh(context.Background())
	data, ok := state.Data()
	require.True(t, ok)
	require.Equal(t, []string{"sample"}, data)
	_, isErr := state.Message()
	require.False(t, isErr)
}

func TestErrorIsTerminalUntilRefresh(t *testing.T) {
	f := &countingFetcher{err: errors.New("down")}
	c := New(f.fetch)
	c.Refresh(context.Background())
	require.Equal(t, PhaseError, c.State().Phase())

	f.err = nil
	f.data = []string{"ok"}
	require.Equal(t, PhaseError, c.State().Phase())
	c.Reload(context.Background())
	require.Equal(t, PhaseReady, c.State().Phase())
	require.Equal(t, int32(2), f.calls.Load())
}

func TestFail(t *testing.T) {
	f := &countingFetcher{data: []string{"a"}}
	c := New(f.fetch)
	c.Refresh(context.Background())
	c.Fail("Error al crear usuario")
	msg, ok := c.State().Message()
	require.True(t, ok)
	require.Equal(t, "Error al crear usuario", msg)
}

func TestCloseCancelsInFlightFetch(t *testing.T) {
	started := make(chan struct{})
	c := New(func(ctx context.Context) ([]string, error) {
		close(started)
		<-ctx.Done()
		return nil, ctx.Err()
	}, WithErrorMessage[[]string]("boom"))

	done := make(chan State[[]string])
	go func() { done <- c.Refresh(context.Background()) }()
	<-started
	c.Close()

	state := <-done
	require.Equal(t, PhaseLoading, state.Phase())
	require.Equal(t, PhaseLoading, c.State().Phase())
	require.True(t, c.Closed())
}

func TestNoUpdateAfterClose(t *testing.T) {
	release := make(chan struct{})
	c := New(func(ctx context.Context) ([]string, error) {
		<-release
		return []string{"late"}, nil
	})
	done := make(chan struct{})
	go func() { c.Refresh(context.Background()); close(done) }()
	require.Eventually(t, func() bool { return c.State().Loading() }, time.Second, time.Millisecond)

	c.Close()
	close(release)
	<-done
	_, ok := c.State().Data()
	require.False(t, ok)

	c.Fail("ignored")
	_, ok = c.State().Message()
	require.False(t, ok)

	var calls int
	c2 := New(func(ctx context.Context) ([]string, error) { calls++; return nil, nil })
	c2.Close()
	c2.Refresh(context.Background())
	require.Zero(t, calls)
}

func TestSupersededRefreshIsDiscarded(t *testing.T) {
	first := make(chan struct{})
	var n atomic.Int32
	c := New(func(ctx context.Context) ([]string, error) {
		if n.Add(1) == 1 {
			<-first
			return []string{"stale"}, nil
		}
		return []string{"fresh"}, nil
	})

	done := make(chan struct{})
	go func() { c.Refresh(context.Background()); close(done) }()
	require.Eventually(t, func() bool { return n.Load() == 1 }, time.Second, time.Millisecond)

	c.Refresh(context.Background())
	close(first)
	<-done

	data, ok := c.State().Data()
	require.True(t, ok)
	require.Equal(t, []string{"fresh"}, data)
}

func TestFailDiscardsInFlightRefresh(t *testing.T) {
	release := make(chan struct{})
	c := New(func(ctx context.Context) ([]string, error) {
		<-release
		return []string{"late"}, nil
	})
	done := make(chan struct{})
	go func() { c.Refresh(context.Background()); close(done) }()
	require.Eventually(t, func() bool { return c.State().Loading() }, time.Second, time.Millisecond)

	c.Fail("Error al eliminar usuario")
	close(release)
	<-done

	msg, ok := c.State().Message()
	require.True(t, ok)
	require.Equal(t, "Error al eliminar usuario", msg)
}
