package kernel

import (
	"context"
	"encoding/binary"
	"sync"
	"time"

	"github.com/openmach/machipc/mach"
)

// Message header layout shared with the mach package. Only the fields
// the router needs to inspect.
const (
	offSize    = 4
	offRemote  = 8
	offLocal   = 12
	headerSize = 24
)

const queueDepth = 16

// Handler services messages sent to a port. It receives a copy of the
// delivered message and returns a complete reply message, or nil for
// one-way traffic. The reply's remote field names its destination.
type Handler func(request []byte) []byte

// Loopback is an in-process kernel: a port name space with per-receive
// queues and synchronous message routing. It implements mach.Syscalls
// so the capability layer runs unmodified against it, and it backs the
// gRPC Server for wire-level testing.
type Loopback struct {
	mu       sync.Mutex
	next     mach.Name
	task     mach.Name
	rights   map[mach.Name]mach.Right
	queues   map[mach.Name]chan []byte
	handlers map[mach.Name]Handler
}

var _ mach.Syscalls = (*Loopback)(nil)

// NewLoopback creates an empty name space. Name 1 is the task port.
func NewLoopback() *Loopback {
	l := &Loopback{
		next:     1,
		rights:   make(map[mach.Name]mach.Right),
		queues:   make(map[mach.Name]chan []byte),
		handlers: make(map[mach.Name]Handler),
	}
	l.task = l.allocate(mach.RightSend)
	return l
}

func (l *Loopback) allocate(right mach.Right) mach.Name {
	name := l.next
	l.next++
	l.rights[name] = right
	if right == mach.RightReceive {
		l.queues[name] = make(chan []byte, queueDepth)
	}
	return name
}

// Handle registers a synchronous service on name. Messages sent to the
// port are passed to fn instead of being queued; a non-nil reply is
// routed to the port its remote field names.
func (l *Loopback) Handle(name mach.Name, fn Handler) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handlers[name] = fn
}

// Names reports whether name is currently allocated. Test hook.
func (l *Loopback) Names(name mach.Name) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.rights[name]
	return ok
}

// Msg routes one send and/or receive through the name space.
func (l *Loopback) Msg(ctx context.Context, buf []byte, option uint32, rcvName mach.Name, timeout time.Duration, notify mach.Name) ([]byte, error) {
	if option&mach.SendMsg != 0 {
		if err := l.send(buf); err != nil {
			return nil, err
		}
	}
	if option&mach.RcvMsg != 0 {
		return l.receive(ctx, rcvName, option, timeout, len(buf))
	}
	return nil, nil
}

// frame validates the fixed header and returns a private copy of the
// message, trimmed to its size field.
func frame(buf []byte) ([]byte, error) {
	if len(buf) < headerSize {
		return nil, &mach.KernError{Call: "mach_msg", Code: mach.KernInvalidArgument}
	}
	size := binary.LittleEndian.Uint32(buf[offSize:])
	if int(size) < headerSize || int(size) > len(buf) {
		return nil, &mach.KernError{Call: "mach_msg", Code: mach.KernInvalidArgument}
	}
	msg := make([]byte, size)
	copy(msg, buf[:size])
	return msg, nil
}

func (l *Loopback) send(buf []byte) error {
	msg, err := frame(buf)
	if err != nil {
		return err
	}
	dest := mach.Name(binary.LittleEndian.Uint32(msg[offRemote:]))

	l.mu.Lock()
	if _, ok := l.rights[dest]; !ok {
		l.mu.Unlock()
		return &mach.KernError{Call: "mach_msg", Code: mach.KernInvalidArgument}
	}
	fn := l.handlers[dest]
	l.mu.Unlock()

	if fn != nil {
		reply := fn(msg)
		if reply == nil {
			return nil
		}
		// Handler replies get the same framing scrutiny as caller
		// buffers before they are routed.
		rmsg, err := frame(reply)
		if err != nil {
			return err
		}
		return l.deliver(mach.Name(binary.LittleEndian.Uint32(rmsg[offRemote:])), rmsg)
	}
	return l.deliver(dest, msg)
}

func (l *Loopback) deliver(dest mach.Name, msg []byte) error {
	l.mu.Lock()
	q, ok := l.queues[dest]
	l.mu.Unlock()
	if !ok {
		return &mach.KernError{Call: "mach_msg", Code: mach.KernInvalidArgument}
	}
	select {
	case q <- msg:
		return nil
	default:
		return &mach.KernError{Call: "mach_msg", Code: mach.KernResourceShortage}
	}
}

func (l *Loopback) receive(ctx context.Context, rcvName mach.Name, option uint32, timeout time.Duration, max int) ([]byte, error) {
	l.mu.Lock()
	q, ok := l.queues[rcvName]
	l.mu.Unlock()
	if !ok {
		return nil, &mach.KernError{Call: "mach_msg", Code: mach.KernInvalidArgument}
	}

	var expired <-chan time.Time
	if option&mach.RcvTimeout != 0 && timeout > 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		expired = t.C
	}

	select {
	case msg := <-q:
		if len(msg) > max && option&mach.RcvLarge == 0 {
			return nil, &mach.KernError{Call: "mach_msg", Code: mach.KernNoSpace}
		}
		return msg, nil
	case <-expired:
		return nil, &mach.KernError{Call: "mach_msg", Code: mach.MsgRcvTimedOut}
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// AllocatePort creates a fresh name holding right. The task argument is
// checked but otherwise ignored: the loopback kernel hosts one task.
func (l *Loopback) AllocatePort(ctx context.Context, task mach.Name, right mach.Right) (mach.Name, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if task != l.task {
		return mach.PortNull, &mach.KernError{Call: "mach_port_allocate", Code: mach.KernInvalidArgument}
	}
	return l.allocate(right), nil
}

// DeallocatePort removes name from the name space.
func (l *Loopback) DeallocatePort(ctx context.Context, task mach.Name, name mach.Name) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if task != l.task {
		return &mach.KernError{Call: "mach_port_deallocate", Code: mach.KernInvalidArgument}
	}
	if _, ok := l.rights[name]; !ok {
		return &mach.KernError{Call: "mach_port_deallocate", Code: mach.KernInvalidArgument}
	}
	delete(l.rights, name)
	delete(l.queues, name)
	delete(l.handlers, name)
	return nil
}

// TaskSelf returns the single task's port name.
func (l *Loopback) TaskSelf(ctx context.Context) (mach.Name, error) {
	return l.task, nil
}

// ReplyPort creates a receive right for replies.
func (l *Loopback) ReplyPort(ctx context.Context) (mach.Name, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.allocate(mach.RightReceive), nil
}
