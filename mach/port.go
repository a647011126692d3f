package mach

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/openmach/machipc/internal/infrastructure/monitoring"
)

var (
	setupOnce sync.Once
	logger    = zap.NewNop()
)

// Setup installs the package logger used for leak warnings and
// deallocation failures. Call it once at process startup; repeated
// calls are no-ops.
func Setup(log *zap.Logger) {
	setupOnce.Do(func() {
		if log != nil {
			logger = log
		}
	})
}

// Port owns one kernel port name. It is the sole sanctioned way to hold
// or relinquish a raw name: transports borrow the name for the duration
// of a call with Acquire/Release, and ownership physically moves only
// through Clear.
//
// A Port is LIVE from construction until Clear or Deallocate retires
// it, after which its name is PortDead forever. Using a dead Port with
// Acquire, Release, Clear or Deallocate is a programming error and
// panics.
type Port struct {
	mu      sync.Mutex
	drained sync.Cond // signalled when refs returns to zero
	sys     Syscalls
	task    Name
	name    Name
	refs    int
	pending bool // deallocation requested while refs were outstanding
}

func newPort(sys Syscalls, task, name Name) *Port {
	p := &Port{sys: sys, task: task, name: name}
	p.drained.L = &p.mu
	return p
}

// AllocatePort asks the kernel for a fresh name carrying the given
// right and returns a Port owning it.
func AllocatePort(ctx context.Context, sys Syscalls, right Right) (*Port, error) {
	task, err := sys.TaskSelf(ctx)
	if err != nil {
		return nil, fmt.Errorf("task self: %w", err)
	}
	name, err := sys.AllocatePort(ctx, task, right)
	if err != nil {
		return nil, fmt.Errorf("allocate port: %w", err)
	}
	monitoring.Default().PortsAllocated.Inc()
	return newPort(sys, task, name), nil
}

// ReplyPort creates a receive right for RPC replies and returns a Port
// owning it.
func ReplyPort(ctx context.Context, sys Syscalls) (*Port, error) {
	task, err := sys.TaskSelf(ctx)
	if err != nil {
		return nil, fmt.Errorf("task self: %w", err)
	}
	name, err := sys.ReplyPort(ctx)
	if err != nil {
		return nil, fmt.Errorf("reply port: %w", err)
	}
	monitoring.Default().PortsAllocated.Inc()
	return newPort(sys, task, name), nil
}

// WrapPort takes ownership of a raw name, typically one extracted from
// an incoming message. The reference is consumed in: the kernel-side
// right is released when the Port is deallocated.
func WrapPort(ctx context.Context, sys Syscalls, name Name) (*Port, error) {
	task, err := sys.TaskSelf(ctx)
	if err != nil {
		return nil, fmt.Errorf("task self: %w", err)
	}
	return newPort(sys, task, name), nil
}

// Acquire registers a borrow and returns the raw name for transient use
// as a system call argument. Every successful Acquire must be paired
// with exactly one Release. The borrow never transfers ownership; it
// only keeps the name valid until released.
func (p *Port) Acquire() Name {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.name == PortDead {
		panic("mach: Acquire on dead port")
	}
	p.refs++
	return p.name
}

// Release ends a borrow. When the last outstanding borrow ends, a
// deallocation deferred by Deallocate is performed now, and any Clear
// waiting for the name to drain is woken.
func (p *Port) Release() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.refs == 0 {
		panic("mach: unbalanced Release")
	}
	p.refs--
	if p.refs > 0 {
		return
	}
	p.drained.Broadcast()
	if p.pending {
		p.deallocLocked(context.Background())
	}
}

// Clear extracts ownership of the raw name, leaving the Port dead. If
// borrows are outstanding it blocks until they drain. The caller
// becomes responsible for the returned name; this is the single point
// where ownership physically moves. A deferred Deallocate that retires
// the name during the wait turns the Clear into a dead-port fault: the
// two relinquish paths can never both succeed.
func (p *Port) Clear() Name {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.name == PortDead {
		panic("mach: Clear on dead port")
	}
	for p.refs > 0 {
		p.drained.Wait()
	}
	// A deferred Deallocate may have retired the name while we slept.
	if p.name == PortDead {
		panic("mach: Clear on dead port")
	}
	name := p.name
	p.name = PortDead
	p.pending = false
	return name
}

// ClearContext is Clear with a bounded wait: if ctx expires before the
// outstanding borrows drain, ownership stays put and ctx.Err() is
// returned.
func (p *Port) ClearContext(ctx context.Context) (Name, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.name == PortDead {
		panic("mach: Clear on dead port")
	}
	stop := context.AfterFunc(ctx, func() {
		p.mu.Lock()
		p.drained.Broadcast()
		p.mu.Unlock()
	})
	defer stop()
	for p.refs > 0 {
		if err := ctx.Err(); err != nil {
			return PortNull, err
		}
		p.drained.Wait()
	}
	if p.name == PortDead {
		panic("mach: Clear on dead port")
	}
	name := p.name
	p.name = PortDead
	p.pending = false
	return name, nil
}

// Deallocate relinquishes the name. With no borrows outstanding the
// kernel deallocation happens immediately; otherwise the Port is marked
// and the last Release performs it. Either way the call returns without
// blocking.
//
// Kernel-side failures are logged, not retried: at that point the name
// must not be reused, so the Port is dead regardless.
func (p *Port) Deallocate(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.name == PortDead {
		panic("mach: Deallocate on dead port")
	}
	if p.refs > 0 {
		p.pending = true
		return
	}
	p.deallocLocked(ctx)
}

// Destroy is the scope-exit leak check: defer it wherever a Port is
// created. A Port that is already dead with no borrows is a no-op;
// anything else is a programming error that gets logged and
// best-effort remediated by force-deallocating the name.
func (p *Port) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.name == PortDead && p.refs == 0 {
		return
	}
	logger.Warn("port destroyed while live",
		zap.Uint32("name", uint32(p.name)),
		zap.Int("refs", p.refs))
	monitoring.Default().PortsLeaked.Inc()
	p.refs = 0
	if p.name != PortDead {
		p.deallocLocked(context.Background())
	}
}

// Dead reports whether the name has been deallocated or transferred
// away.
func (p *Port) Dead() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.name == PortDead
}

func (p *Port) String() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.name == PortDead {
		return "port(dead)"
	}
	return fmt.Sprintf("port(%d)", uint32(p.name))
}

// deallocLocked performs the kernel deallocation and retires the name.
// Caller holds p.mu.
func (p *Port) deallocLocked(ctx context.Context) {
	name := p.name
	p.name = PortDead
	p.pending = false
	if err := p.sys.DeallocatePort(ctx, p.task, name); err != nil {
		logger.Warn("port deallocation failed",
			zap.Uint32("name", uint32(name)),
			zap.Error(err))
		return
	}
	monitoring.Default().PortsDeallocated.Inc()
}
