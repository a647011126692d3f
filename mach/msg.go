package mach

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/openmach/machipc/internal/infrastructure/monitoring"
)

// Header layout: a fixed 24-byte prefix, mach_msg_header_t.
const (
	headerSize = 24

	offBits   = 0
	offSize   = 4
	offRemote = 8
	offLocal  = 12
	offSeqno  = 16
	offID     = 20
)

// msghComplex marks a message whose body carries port rights (or
// out-of-line data, which this package does not produce).
const msghComplex uint32 = 0x80000000

// headerSlot tracks what one of the two header port fields currently
// holds, so replacing or clearing it never leaks a reference.
type headerSlot struct {
	t     *MsgType // descriptor used to set the slot (compose side)
	port  *Port    // borrowed source, or cached parse-side wrapper
	moved bool     // the name in the buffer is owned by the message
	name  Name     // cached raw name while moved
}

func (s *headerSlot) live() bool {
	return s.t != nil || s.port != nil || s.moved
}

// Msg composes and parses one Mach message: a fixed-capacity byte
// region plus structured accessors for the header and for a sequence of
// typed body items.
//
// Every accessor is atomic with respect to the cursor: a failed call
// leaves the position exactly where it was, and a failed port transfer
// never partially acquires or releases a capability.
//
// A Msg must not be shared between goroutines without external
// synchronization; its internal lock makes individual calls
// linearizable but composing a message is not one atomic transaction.
type Msg struct {
	mu   sync.Mutex
	sys  Syscalls
	task Name
	cur  cursor

	remote headerSlot
	local  headerSlot

	// Body port bookkeeping: references to release and moved-in names
	// to return to the kernel when the message is cleared.
	bodyRefs  []*Port
	bodyOwned []Name

	complex bool
	parsing bool // set by Flip, cleared by Clear
}

// NewMsg allocates a message buffer with the given capacity in bytes.
func NewMsg(ctx context.Context, sys Syscalls, capacity int) (*Msg, error) {
	if capacity < headerSize {
		return nil, fmt.Errorf("mach: message capacity %d below header size %d", capacity, headerSize)
	}
	task, err := sys.TaskSelf(ctx)
	if err != nil {
		return nil, fmt.Errorf("task self: %w", err)
	}
	m := &Msg{sys: sys, task: task}
	m.cur = cursor{b: make([]byte, capacity), pos: headerSize, lim: capacity}
	return m, nil
}

// fail restores the cursor and clears any latched error; every
// fallible operation returns through it on the error path.
func (m *Msg) fail(mark int, err error) error {
	m.cur.pos = mark
	m.cur.err = nil
	return err
}

func (m *Msg) headerU32(off int) uint32 {
	return wire.Uint32(m.cur.b[off:])
}

func (m *Msg) setHeaderU32(off int, v uint32) {
	wire.PutUint32(m.cur.b[off:], v)
}

// setBits rewrites the combined bits word: remote descriptor code in
// the low byte, local code in the next, complex flag in bit 31.
func (m *Msg) setBits(shift uint, code uint32) {
	b := m.headerU32(offBits)
	b = b&^(0xff<<shift) | code<<shift
	if m.complex {
		b |= msghComplex
	} else {
		b &^= msghComplex
	}
	m.setHeaderU32(offBits, b)
}

// SetID sets the message identifier field.
func (m *Msg) SetID(id int32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setHeaderU32(offID, uint32(id))
}

// ID returns the message identifier field.
func (m *Msg) ID() int32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int32(m.headerU32(offID))
}

// Seqno returns the kernel-assigned sequence number of a received
// message. Zero and unused on send.
func (m *Msg) Seqno() uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.headerU32(offSeqno)
}

// Size returns the header's total-length field.
func (m *Msg) Size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int(m.headerU32(offSize))
}

// Bytes finalizes the size field from the current cursor and returns
// the composed message. On a flipped buffer the kernel-reported size
// field is left untouched and the received bytes are returned as-is.
// The slice aliases the internal buffer.
func (m *Msg) Bytes() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.parsing {
		return m.cur.b[:m.cur.lim]
	}
	m.setHeaderU32(offSize, uint32(m.cur.pos))
	return m.cur.b[:m.cur.pos]
}

// SetRemotePort stores a port in the header's remote (destination)
// field. A consuming descriptor moves ownership out of p, leaving it
// dead; any other port kind borrows p, which stays live until the
// message is cleared or flipped. A port previously occupying the slot
// is released or returned to the kernel first, as its own descriptor
// requires.
func (m *Msg) SetRemotePort(p *Port, t *MsgType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.setHeaderPort(&m.remote, offRemote, 0, p, t)
}

// SetLocalPort stores a port in the header's local (reply) field, with
// the same move/borrow semantics as SetRemotePort.
func (m *Msg) SetLocalPort(p *Port, t *MsgType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.setHeaderPort(&m.local, offLocal, 8, p, t)
}

func (m *Msg) setHeaderPort(slot *headerSlot, off int, shift uint, p *Port, t *MsgType) error {
	if !t.IsPort() {
		return &TypeCheckError{Got: t.code, Msg: "data descriptor in header port field"}
	}
	var name Name
	moved := t.Consuming()
	if moved {
		name = p.Clear()
	} else {
		name = p.Acquire()
	}
	m.clearSlot(slot, true)
	slot.t = t
	slot.moved = moved
	slot.name = name
	if !moved {
		slot.port = p
	}
	m.setHeaderU32(off, uint32(name))
	m.setBits(shift, t.code)
	return nil
}

// RemotePort validates the remote half of the bits field against the
// expected descriptor and returns the header's remote port. The raw
// name is wrapped on first request and the wrapper cached, so repeated
// calls return the same instance; the message holds one reference on
// it until cleared or flipped.
func (m *Msg) RemotePort(t *MsgType) (*Port, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.headerPort(&m.remote, offRemote, 0, t)
}

// LocalPort is RemotePort for the local half.
func (m *Msg) LocalPort(t *MsgType) (*Port, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.headerPort(&m.local, offLocal, 8, t)
}

func (m *Msg) headerPort(slot *headerSlot, off int, shift uint, t *MsgType) (*Port, error) {
	if !t.IsPort() {
		return nil, &TypeCheckError{Got: t.code, Msg: "data descriptor in header port field"}
	}
	code := m.headerU32(offBits) >> shift & 0xff
	if code != t.code {
		return nil, &TypeCheckError{Got: code, Want: t.code, Msg: "header port type"}
	}
	if slot.port != nil {
		return slot.port, nil
	}
	w := newPort(m.sys, m.task, Name(m.headerU32(off)))
	w.Acquire()
	slot.port = w
	return w, nil
}

// PutDescriptor writes a bare descriptor for count elements. The
// generic codec surface; the typed Put* family is preferred.
func (m *Msg) PutDescriptor(t *MsgType, count int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	mark := m.cur.pos
	t.put(&m.cur, uint32(count), true, false)
	if m.cur.err != nil {
		return m.fail(mark, m.cur.takeErr(mark))
	}
	return nil
}

// GetDescriptor reads whatever descriptor sits at the cursor, returning
// its shape and element count without consuming the payload.
func (m *Msg) GetDescriptor() (*MsgType, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	mark := m.cur.pos
	t, count, err := readType(&m.cur)
	if err != nil {
		return nil, 0, m.fail(mark, err)
	}
	return t, int(count), nil
}

// PutByte appends a single element of an 8-bit type.
func (m *Msg) PutByte(t *MsgType, v byte) error {
	return m.putData(t, 1, func(c *cursor) { c.putBytes([]byte{v}) })
}

// PutBytes appends a sequence of elements of an 8-bit type, one per
// byte of data.
func (m *Msg) PutBytes(t *MsgType, data []byte) error {
	return m.putData(t, len(data), func(c *cursor) { c.putBytes(data) })
}

// PutInt16 appends a single 16-bit integer item.
func (m *Msg) PutInt16(t *MsgType, v int16) error {
	return m.putData(t, 1, func(c *cursor) { c.putU16(uint16(v)) })
}

// PutInt32 appends a single 32-bit integer item.
func (m *Msg) PutInt32(t *MsgType, v int32) error {
	return m.putData(t, 1, func(c *cursor) { c.putU32(uint32(v)) })
}

// PutInt64 appends a single 64-bit integer item.
func (m *Msg) PutInt64(t *MsgType, v int64) error {
	return m.putData(t, 1, func(c *cursor) { c.putU64(uint64(v)) })
}

// putData writes descriptor plus payload, verifying that the bytes
// written match the descriptor's declared element size and count.
// Port descriptors are rejected: ports go only through the header
// setters and PutPort.
func (m *Msg) putData(t *MsgType, count int, write func(*cursor)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.IsPort() {
		return &TypeCheckError{Got: t.code, Msg: "port descriptor in data item"}
	}
	mark := m.cur.pos
	t.put(&m.cur, uint32(count), true, false)
	start := m.cur.pos
	write(&m.cur)
	if m.cur.err != nil {
		return m.fail(mark, m.cur.takeErr(mark))
	}
	if got, want := m.cur.pos-start, t.Bytes(count); got != want {
		return m.fail(mark, &LengthError{Got: got, Want: want, Msg: "payload does not match descriptor"})
	}
	return nil
}

// GetByte reads a single element of an 8-bit type.
func (m *Msg) GetByte(t *MsgType) (byte, error) {
	var v byte
	err := m.getData(t, 1, func(c *cursor) {
		if b := c.getBytes(1); b != nil {
			v = b[0]
		}
	})
	return v, err
}

// GetBytes reads a sequence item of an 8-bit type with exactly count
// elements.
func (m *Msg) GetBytes(t *MsgType, count int) ([]byte, error) {
	var v []byte
	err := m.getData(t, count, func(c *cursor) { v = c.getBytes(count) })
	return v, err
}

// GetBytesAny reads a sequence item of an 8-bit type whose element
// count comes from the descriptor.
func (m *Msg) GetBytesAny(t *MsgType) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.IsPort() {
		return nil, &TypeCheckError{Got: t.code, Msg: "port descriptor in data item"}
	}
	mark := m.cur.pos
	count, err := t.check(&m.cur)
	if err != nil {
		return nil, m.fail(mark, err)
	}
	v := m.cur.getBytes(t.Bytes(int(count)))
	if m.cur.err != nil {
		return nil, m.fail(mark, m.cur.takeErr(mark))
	}
	return v, nil
}

// GetInt16 reads a single 16-bit integer item.
func (m *Msg) GetInt16(t *MsgType) (int16, error) {
	var v int16
	err := m.getData(t, 1, func(c *cursor) { v = int16(c.getU16()) })
	return v, err
}

// GetInt32 reads a single 32-bit integer item.
func (m *Msg) GetInt32(t *MsgType) (int32, error) {
	var v int32
	err := m.getData(t, 1, func(c *cursor) { v = int32(c.getU32()) })
	return v, err
}

// GetInt64 reads a single 64-bit integer item.
func (m *Msg) GetInt64(t *MsgType) (int64, error) {
	var v int64
	err := m.getData(t, 1, func(c *cursor) { v = int64(c.getU64()) })
	return v, err
}

// getData validates descriptor and count, reads the payload, and
// verifies the bytes consumed match the descriptor's declared size.
func (m *Msg) getData(t *MsgType, count int, read func(*cursor)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.IsPort() {
		return &TypeCheckError{Got: t.code, Msg: "port descriptor in data item"}
	}
	mark := m.cur.pos
	if err := t.checkCount(&m.cur, uint32(count)); err != nil {
		return m.fail(mark, err)
	}
	start := m.cur.pos
	read(&m.cur)
	if m.cur.err != nil {
		return m.fail(mark, m.cur.takeErr(mark))
	}
	if got, want := m.cur.pos-start, t.Bytes(count); got != want {
		return m.fail(mark, &LengthError{Got: got, Want: want, Msg: "payload does not match descriptor"})
	}
	return nil
}

// PutPort appends a body port item. Move and borrow semantics match
// SetRemotePort; the message records the reference for release when it
// is cleared or flipped, and the header's complex flag is raised.
func (m *Msg) PutPort(p *Port, t *MsgType) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !t.IsPort() {
		return &TypeCheckError{Got: t.code, Msg: "data descriptor in port item"}
	}
	mark := m.cur.pos
	t.put(&m.cur, 1, true, false)
	if m.cur.err == nil {
		m.cur.room(4)
	}
	if m.cur.err != nil {
		return m.fail(mark, m.cur.takeErr(mark))
	}
	// Nothing below can fail: take the reference only now.
	var name Name
	if t.Consuming() {
		name = p.Clear()
		m.bodyOwned = append(m.bodyOwned, name)
	} else {
		name = p.Acquire()
		m.bodyRefs = append(m.bodyRefs, p)
	}
	m.cur.putU32(uint32(name))
	m.complex = true
	m.setHeaderU32(offBits, m.headerU32(offBits)|msghComplex)
	return nil
}

// GetPort reads a body port item and wraps the received right in a new
// Port. The wrapper is constructed only after validation succeeds, and
// the message keeps one reference on it until cleared or flipped.
func (m *Msg) GetPort(t *MsgType) (*Port, error) {
	ports, err := m.getPorts(t, 1)
	if err != nil {
		return nil, err
	}
	return ports[0], nil
}

// GetPorts reads a body port-array item, with the element count taken
// from the descriptor. All names are read and validated before any
// wrapper is constructed, so a mid-read failure cannot leak kernel
// references.
func (m *Msg) GetPorts(t *MsgType) ([]*Port, error) {
	return m.getPorts(t, -1)
}

func (m *Msg) getPorts(t *MsgType, count int) ([]*Port, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !t.IsPort() {
		return nil, &TypeCheckError{Got: t.code, Msg: "data descriptor in port item"}
	}
	mark := m.cur.pos
	var n uint32
	var err error
	if count >= 0 {
		n = uint32(count)
		err = t.checkCount(&m.cur, n)
	} else {
		n, err = t.check(&m.cur)
	}
	if err != nil {
		return nil, m.fail(mark, err)
	}
	names := make([]Name, n)
	for i := range names {
		names[i] = Name(m.cur.getU32())
	}
	if m.cur.err != nil {
		return nil, m.fail(mark, m.cur.takeErr(mark))
	}
	ports := make([]*Port, n)
	for i, name := range names {
		w := newPort(m.sys, m.task, name)
		w.Acquire()
		m.bodyRefs = append(m.bodyRefs, w)
		ports[i] = w
	}
	return ports, nil
}

// Exchange hands the composed bytes to the kernel for a send and/or
// receive round trip, borrowing rcv's name for the duration of the
// call. The response overwrites the buffer; call Flip before parsing
// it.
func (m *Msg) Exchange(ctx context.Context, option uint32, rcv *Port, timeout time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setHeaderU32(offSize, uint32(m.cur.pos))
	rcvName := PortNull
	if rcv != nil {
		rcvName = rcv.Acquire()
		defer rcv.Release()
	}
	resp, err := m.sys.Msg(ctx, m.cur.b, option, rcvName, timeout, PortNull)
	if err != nil {
		return fmt.Errorf("mach_msg: %w", err)
	}
	if option&SendMsg != 0 {
		monitoring.Default().MessagesSent.Inc()
	}
	if len(resp) > len(m.cur.b) {
		return &LengthError{Got: len(resp), Want: len(m.cur.b), Msg: "response exceeds buffer"}
	}
	copy(m.cur.b, resp)
	if option&RcvMsg != 0 {
		monitoring.Default().MessagesReceived.Inc()
	}
	return nil
}

// Flip transitions the buffer from "just sent" to "ready to parse the
// response": the references held for the outbound message are released
// (moved-in rights were consumed by the kernel and are simply
// forgotten), cached header wrappers are dropped, and the cursor is
// repositioned after the header using the kernel-reported size.
func (m *Msg) Flip() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clearSlot(&m.remote, false)
	m.clearSlot(&m.local, false)
	m.releaseBody(false)
	m.complex = false
	m.parsing = true
	size := int(m.headerU32(offSize))
	if size < headerSize || size > len(m.cur.b) {
		size = headerSize
		m.cur.pos = headerSize
		m.cur.lim = size
		return &LengthError{Got: int(m.headerU32(offSize)), Want: len(m.cur.b), Msg: "response size field"}
	}
	m.cur.pos = headerSize
	m.cur.lim = size
	m.cur.err = nil
	return nil
}

// Clear releases the header ports and all recorded body references,
// returns moved-in rights to the kernel, zeroes the header and resets
// the cursor: the buffer is back in its just-constructed state.
func (m *Msg) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clearSlot(&m.remote, true)
	m.clearSlot(&m.local, true)
	m.releaseBody(true)
	m.complex = false
	m.parsing = false
	for i := 0; i < headerSize; i++ {
		m.cur.b[i] = 0
	}
	m.cur.pos = headerSize
	m.cur.lim = len(m.cur.b)
	m.cur.err = nil
}

// Destroy is the scope-exit leak check, mirroring Port.Destroy: a
// message still holding port references is logged and cleaned up.
func (m *Msg) Destroy() {
	m.mu.Lock()
	live := m.remote.live() || m.local.live() || len(m.bodyRefs) > 0 || len(m.bodyOwned) > 0
	m.mu.Unlock()
	if !live {
		return
	}
	logger.Warn("message destroyed with live port references",
		zap.Int("body_refs", len(m.bodyRefs)),
		zap.Int("body_owned", len(m.bodyOwned)))
	m.Clear()
}

// clearSlot empties a header slot. A borrowed or wrapped port loses the
// message's reference; a moved-in right is returned to the kernel when
// deallocMoved is set (clear) and forgotten otherwise (flip, where the
// kernel consumed it on send).
func (m *Msg) clearSlot(slot *headerSlot, deallocMoved bool) {
	if slot.port != nil {
		slot.port.Release()
	} else if slot.moved && deallocMoved {
		m.deallocName(slot.name)
	}
	*slot = headerSlot{}
}

func (m *Msg) releaseBody(deallocMoved bool) {
	for _, p := range m.bodyRefs {
		p.Release()
	}
	m.bodyRefs = nil
	if deallocMoved {
		for _, name := range m.bodyOwned {
			m.deallocName(name)
		}
	}
	m.bodyOwned = nil
}

func (m *Msg) deallocName(name Name) {
	if err := m.sys.DeallocatePort(context.Background(), m.task, name); err != nil {
		logger.Warn("deallocating message port failed",
			zap.Uint32("name", uint32(name)),
			zap.Error(err))
		return
	}
	monitoring.Default().PortsDeallocated.Inc()
}
