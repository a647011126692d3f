package mach

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSyscalls is an in-memory syscall boundary for tests: it hands out
// sequential names and counts deallocations per name.
type fakeSyscalls struct {
	mu          sync.Mutex
	next        Name
	deallocated map[Name]int
	deallocErr  error

	reply   []byte
	msgErr  error
	lastBuf []byte
	lastOpt uint32
	lastRcv Name
}

func newFakeSyscalls() *fakeSyscalls {
	return &fakeSyscalls{next: 100, deallocated: make(map[Name]int)}
}

func (f *fakeSyscalls) Msg(ctx context.Context, buf []byte, option uint32, rcvName Name, timeout time.Duration, notify Name) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastBuf = append([]byte(nil), buf...)
	f.lastOpt = option
	f.lastRcv = rcvName
	if f.msgErr != nil {
		return nil, f.msgErr
	}
	if f.reply != nil {
		return f.reply, nil
	}
	return buf, nil
}

func (f *fakeSyscalls) AllocatePort(ctx context.Context, task Name, right Right) (Name, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name := f.next
	f.next++
	return name, nil
}

func (f *fakeSyscalls) DeallocatePort(ctx context.Context, task Name, name Name) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deallocErr != nil {
		return f.deallocErr
	}
	f.deallocated[name]++
	return nil
}

func (f *fakeSyscalls) TaskSelf(ctx context.Context) (Name, error) { return 1, nil }

func (f *fakeSyscalls) ReplyPort(ctx context.Context) (Name, error) {
	return f.AllocatePort(ctx, 1, RightReceive)
}

func (f *fakeSyscalls) deallocCount(name Name) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.deallocated[name]
}

// audit registers a cleanup that fails the test if any port is still
// live at teardown.
func audit(t *testing.T, ports ...*Port) {
	t.Helper()
	t.Cleanup(func() {
		for _, p := range ports {
			assert.True(t, p.Dead(), "port leaked: %s", p)
		}
	})
}

func TestPortAcquireRelease(t *testing.T) {
	sys := newFakeSyscalls()
	p, err := AllocatePort(context.Background(), sys, RightReceive)
	require.NoError(t, err)
	audit(t, p)

	name := p.Acquire()
	assert.Equal(t, Name(100), name)
	assert.Equal(t, name, p.Acquire(), "borrows return the same name")
	p.Release()
	p.Release()

	assert.False(t, p.Dead())
	assert.Panics(t, func() { p.Release() }, "unbalanced release")

	p.Deallocate(context.Background())
}

func TestPortDeallocate(t *testing.T) {
	t.Run("immediate when idle", func(t *testing.T) {
		sys := newFakeSyscalls()
		p, err := AllocatePort(context.Background(), sys, RightReceive)
		require.NoError(t, err)

		p.Deallocate(context.Background())
		assert.True(t, p.Dead())
		assert.Equal(t, 1, sys.deallocCount(100))
	})

	t.Run("deferred until last release", func(t *testing.T) {
		sys := newFakeSyscalls()
		p, err := AllocatePort(context.Background(), sys, RightReceive)
		require.NoError(t, err)

		p.Acquire()
		p.Acquire()
		p.Deallocate(context.Background())
		assert.Equal(t, 0, sys.deallocCount(100), "deallocation waits for borrows")

		p.Release()
		assert.Equal(t, 0, sys.deallocCount(100))
		p.Release()
		assert.Equal(t, 1, sys.deallocCount(100))
		assert.True(t, p.Dead())
	})

	t.Run("dead port panics", func(t *testing.T) {
		sys := newFakeSyscalls()
		p, err := AllocatePort(context.Background(), sys, RightReceive)
		require.NoError(t, err)

		p.Deallocate(context.Background())
		assert.Panics(t, func() { p.Acquire() })
		assert.Panics(t, func() { p.Clear() })
		assert.Panics(t, func() { p.Deallocate(context.Background()) })
		assert.Equal(t, 1, sys.deallocCount(100), "name returned exactly once")
	})
}

func TestPortClear(t *testing.T) {
	t.Run("moves ownership", func(t *testing.T) {
		sys := newFakeSyscalls()
		p, err := AllocatePort(context.Background(), sys, RightReceive)
		require.NoError(t, err)

		name := p.Clear()
		assert.Equal(t, Name(100), name)
		assert.True(t, p.Dead())
		assert.Equal(t, 0, sys.deallocCount(100), "caller owns the name now")
	})

	t.Run("deallocation during the wait is a dead-port fault", func(t *testing.T) {
		sys := newFakeSyscalls()
		p, err := AllocatePort(context.Background(), sys, RightReceive)
		require.NoError(t, err)

		p.Acquire()
		recovered := make(chan interface{}, 1)
		go func() {
			defer func() { recovered <- recover() }()
			p.Clear()
		}()

		// Let Clear reach its drain wait, then retire the name out from
		// under it: the deferred deallocation runs on the last Release.
		time.Sleep(50 * time.Millisecond)
		p.Deallocate(context.Background())
		p.Release()

		select {
		case v := <-recovered:
			assert.NotNil(t, v, "Clear must not return a retired name")
		case <-time.After(time.Second):
			t.Fatal("Clear neither returned nor panicked")
		}
		assert.True(t, p.Dead())
		assert.Equal(t, 1, sys.deallocCount(100), "name returned to the kernel exactly once")
	})

	t.Run("bounded wait faults the same way", func(t *testing.T) {
		sys := newFakeSyscalls()
		p, err := AllocatePort(context.Background(), sys, RightReceive)
		require.NoError(t, err)

		p.Acquire()
		recovered := make(chan interface{}, 1)
		go func() {
			defer func() { recovered <- recover() }()
			p.ClearContext(context.Background())
		}()

		time.Sleep(50 * time.Millisecond)
		p.Deallocate(context.Background())
		p.Release()

		select {
		case v := <-recovered:
			assert.NotNil(t, v, "ClearContext must not return a retired name")
		case <-time.After(time.Second):
			t.Fatal("ClearContext neither returned nor panicked")
		}
		assert.Equal(t, 1, sys.deallocCount(100))
	})

	t.Run("blocks until borrows drain", func(t *testing.T) {
		sys := newFakeSyscalls()
		p, err := AllocatePort(context.Background(), sys, RightReceive)
		require.NoError(t, err)

		p.Acquire()
		got := make(chan Name)
		go func() { got <- p.Clear() }()

		select {
		case <-got:
			t.Fatal("Clear returned while a borrow was outstanding")
		case <-time.After(50 * time.Millisecond):
		}

		p.Release()
		select {
		case name := <-got:
			assert.Equal(t, Name(100), name)
		case <-time.After(time.Second):
			t.Fatal("Clear did not return after the borrow drained")
		}
		assert.True(t, p.Dead())
	})
}

func TestPortClearContext(t *testing.T) {
	t.Run("times out while borrowed", func(t *testing.T) {
		sys := newFakeSyscalls()
		p, err := AllocatePort(context.Background(), sys, RightReceive)
		require.NoError(t, err)

		p.Acquire()
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err = p.ClearContext(ctx)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.False(t, p.Dead(), "ownership stays put on timeout")

		p.Release()
		name, err := p.ClearContext(context.Background())
		require.NoError(t, err)
		assert.Equal(t, Name(100), name)
	})

	t.Run("succeeds when idle", func(t *testing.T) {
		sys := newFakeSyscalls()
		p, err := AllocatePort(context.Background(), sys, RightReceive)
		require.NoError(t, err)

		name, err := p.ClearContext(context.Background())
		require.NoError(t, err)
		assert.Equal(t, Name(100), name)
	})
}

func TestPortDestroy(t *testing.T) {
	t.Run("noop when retired", func(t *testing.T) {
		sys := newFakeSyscalls()
		p, err := AllocatePort(context.Background(), sys, RightReceive)
		require.NoError(t, err)

		p.Deallocate(context.Background())
		p.Destroy()
		assert.Equal(t, 1, sys.deallocCount(100))
	})

	t.Run("reclaims a live port", func(t *testing.T) {
		sys := newFakeSyscalls()
		p, err := AllocatePort(context.Background(), sys, RightReceive)
		require.NoError(t, err)

		p.Acquire()
		p.Destroy()
		assert.True(t, p.Dead())
		assert.Equal(t, 1, sys.deallocCount(100))
	})
}

func TestWrapPort(t *testing.T) {
	sys := newFakeSyscalls()
	p, err := WrapPort(context.Background(), sys, 42)
	require.NoError(t, err)

	assert.Equal(t, Name(42), p.Acquire())
	p.Release()
	p.Deallocate(context.Background())
	assert.Equal(t, 1, sys.deallocCount(42))
}

func TestPortString(t *testing.T) {
	sys := newFakeSyscalls()
	p, err := WrapPort(context.Background(), sys, 42)
	require.NoError(t, err)

	assert.Equal(t, "port(42)", p.String())
	p.Clear()
	assert.Equal(t, "port(dead)", p.String())
}
