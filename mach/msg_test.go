package mach

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMsg(t *testing.T, sys *fakeSyscalls, capacity int) *Msg {
	t.Helper()
	m, err := NewMsg(context.Background(), sys, capacity)
	require.NoError(t, err)
	return m
}

// TestMsgComposeHello pins the exact wire image of a console write RPC:
// copy-send destination, make-send-once reply, a char string and a
// 64-bit integer.
func TestMsgComposeHello(t *testing.T) {
	sys := newFakeSyscalls()
	console, err := WrapPort(context.Background(), sys, 5)
	require.NoError(t, err)
	reply, err := WrapPort(context.Background(), sys, 7)
	require.NoError(t, err)
	audit(t, console, reply)

	m := newTestMsg(t, sys, 256)
	m.SetID(21000)
	require.NoError(t, m.SetRemotePort(console, TypeCopySend))
	require.NoError(t, m.SetLocalPort(reply, TypeMakeSendOnce))
	require.NoError(t, m.PutBytes(TypeChar, []byte("Hello in Java!\n")))
	require.NoError(t, m.PutInt64(TypeInt64, -1))

	b := m.Bytes()
	require.Len(t, b, 56)

	// Header: copy-send in the low bits byte, make-send-once in the
	// next, no complex flag for header-only rights.
	assert.Equal(t, uint32(19|21<<8), wire.Uint32(b[0:]))
	assert.Equal(t, uint32(56), wire.Uint32(b[4:]))
	assert.Equal(t, uint32(5), wire.Uint32(b[8:]))
	assert.Equal(t, uint32(7), wire.Uint32(b[12:]))
	assert.Equal(t, uint32(0), wire.Uint32(b[16:]))
	assert.Equal(t, uint32(21000), wire.Uint32(b[20:]))

	// Char item: short-form descriptor, count 15, then the raw bytes.
	assert.Equal(t, uint32(0x100f0808), wire.Uint32(b[24:]))
	assert.Equal(t, "Hello in Java!\n", string(b[28:43]))

	// One pad byte to the word boundary, then the int64 item.
	assert.Equal(t, byte(0), b[43])
	assert.Equal(t, uint32(0x1001400b), wire.Uint32(b[44:]))
	assert.Equal(t, uint64(0xffffffffffffffff), wire.Uint64(b[48:]))

	// Neither header right was consumed.
	assert.False(t, console.Dead())
	assert.False(t, reply.Dead())

	m.Clear()
	console.Deallocate(context.Background())
	reply.Deallocate(context.Background())
	assert.Equal(t, 1, sys.deallocCount(5))
	assert.Equal(t, 1, sys.deallocCount(7))
}

func TestMsgHeaderPortSemantics(t *testing.T) {
	t.Run("move consumes the source", func(t *testing.T) {
		sys := newFakeSyscalls()
		p, err := AllocatePort(context.Background(), sys, RightReceive)
		require.NoError(t, err)

		m := newTestMsg(t, sys, 64)
		require.NoError(t, m.SetRemotePort(p, TypeMoveSend))
		assert.True(t, p.Dead())
		assert.Panics(t, func() { p.Acquire() })

		// The message owns the right now; Clear returns it.
		m.Clear()
		assert.Equal(t, 1, sys.deallocCount(100))
	})

	t.Run("copy borrows the source", func(t *testing.T) {
		sys := newFakeSyscalls()
		p, err := AllocatePort(context.Background(), sys, RightReceive)
		require.NoError(t, err)

		m := newTestMsg(t, sys, 64)
		require.NoError(t, m.SetRemotePort(p, TypeCopySend))
		assert.False(t, p.Dead())

		p.Deallocate(context.Background())
		assert.Equal(t, 0, sys.deallocCount(100), "borrow defers deallocation")

		m.Clear()
		assert.Equal(t, 1, sys.deallocCount(100), "clearing the message drains the borrow")
	})

	t.Run("replacing a slot releases the old occupant", func(t *testing.T) {
		sys := newFakeSyscalls()
		a, err := AllocatePort(context.Background(), sys, RightReceive)
		require.NoError(t, err)
		b, err := AllocatePort(context.Background(), sys, RightReceive)
		require.NoError(t, err)

		m := newTestMsg(t, sys, 64)
		require.NoError(t, m.SetRemotePort(a, TypeCopySend))
		require.NoError(t, m.SetRemotePort(b, TypeCopySend))

		// a's borrow is gone, only b's remains.
		name := a.Clear()
		assert.Equal(t, Name(100), name)

		m.Clear()
	})

	t.Run("data descriptor rejected", func(t *testing.T) {
		sys := newFakeSyscalls()
		p, err := AllocatePort(context.Background(), sys, RightReceive)
		require.NoError(t, err)

		m := newTestMsg(t, sys, 64)
		err = m.SetRemotePort(p, TypeInt32)
		var terr *TypeCheckError
		assert.ErrorAs(t, err, &terr)
		assert.False(t, p.Dead())

		p.Deallocate(context.Background())
	})
}

func TestMsgHeaderPortParse(t *testing.T) {
	sys := newFakeSyscalls()
	console, err := WrapPort(context.Background(), sys, 5)
	require.NoError(t, err)

	m := newTestMsg(t, sys, 64)
	require.NoError(t, m.SetRemotePort(console, TypeCopySend))
	require.NoError(t, m.Exchange(context.Background(), SendMsg, nil, TimeoutNone))
	require.NoError(t, m.Flip())

	// Wrong expected right: error, state untouched.
	_, err = m.RemotePort(TypeMoveReceive)
	var terr *TypeCheckError
	require.ErrorAs(t, err, &terr)

	got, err := m.RemotePort(TypeCopySend)
	require.NoError(t, err)
	again, err := m.RemotePort(TypeCopySend)
	require.NoError(t, err)
	assert.Same(t, got, again, "parse-side wrapper is cached")

	m.Clear()
	got.Deallocate(context.Background())
	assert.Equal(t, 1, sys.deallocCount(5))

	console.Deallocate(context.Background())
}

func TestMsgBodyPorts(t *testing.T) {
	t.Run("copy round trip", func(t *testing.T) {
		sys := newFakeSyscalls()
		p, err := WrapPort(context.Background(), sys, 9)
		require.NoError(t, err)

		m := newTestMsg(t, sys, 64)
		require.NoError(t, m.PutPort(p, TypeCopySend))

		b := m.Bytes()
		assert.NotZero(t, wire.Uint32(b[0:])&msghComplex, "body rights raise the complex flag")
		assert.Equal(t, uint32(9), wire.Uint32(b[28:]))

		require.NoError(t, m.Exchange(context.Background(), SendMsg, nil, TimeoutNone))
		require.NoError(t, m.Flip())

		got, err := m.GetPort(TypeCopySend)
		require.NoError(t, err)
		assert.False(t, got.Dead())

		m.Clear()
		got.Deallocate(context.Background())
		assert.Equal(t, 1, sys.deallocCount(9))

		p.Deallocate(context.Background())
	})

	t.Run("move is returned to the kernel on clear", func(t *testing.T) {
		sys := newFakeSyscalls()
		p, err := AllocatePort(context.Background(), sys, RightReceive)
		require.NoError(t, err)

		m := newTestMsg(t, sys, 64)
		require.NoError(t, m.PutPort(p, TypeMoveSend))
		assert.True(t, p.Dead())

		m.Clear()
		assert.Equal(t, 1, sys.deallocCount(100))
	})

	t.Run("port array", func(t *testing.T) {
		sys := newFakeSyscalls()
		m := newTestMsg(t, sys, 64)

		for _, name := range []Name{11, 12, 13} {
			p, err := WrapPort(context.Background(), sys, name)
			require.NoError(t, err)
			require.NoError(t, m.PutPort(p, TypeCopySend))
			defer p.Deallocate(context.Background())
		}

		require.NoError(t, m.Exchange(context.Background(), SendMsg, nil, TimeoutNone))
		require.NoError(t, m.Flip())

		// Each item is its own single-element descriptor.
		for _, want := range []Name{11, 12, 13} {
			got, err := m.GetPort(TypeCopySend)
			require.NoError(t, err)
			assert.Equal(t, want, got.Acquire())
			got.Release()
		}
		m.Clear()
	})

	t.Run("data descriptor rejected", func(t *testing.T) {
		sys := newFakeSyscalls()
		p, err := WrapPort(context.Background(), sys, 9)
		require.NoError(t, err)

		m := newTestMsg(t, sys, 64)
		err = m.PutPort(p, TypeChar)
		var terr *TypeCheckError
		assert.ErrorAs(t, err, &terr)

		m.Clear()
		p.Deallocate(context.Background())
	})
}

func TestMsgDataRoundTrip(t *testing.T) {
	sys := newFakeSyscalls()
	m := newTestMsg(t, sys, 256)

	require.NoError(t, m.PutByte(TypeChar, 'x'))
	require.NoError(t, m.PutInt16(TypeInt16, -2))
	require.NoError(t, m.PutInt32(TypeInt32, 123456))
	require.NoError(t, m.PutInt64(TypeInt64, -9000000000))
	require.NoError(t, m.PutBytes(TypeChar, []byte("abc")))

	require.NoError(t, m.Exchange(context.Background(), SendMsg, nil, TimeoutNone))
	require.NoError(t, m.Flip())

	bv, err := m.GetByte(TypeChar)
	require.NoError(t, err)
	assert.Equal(t, byte('x'), bv)

	i16, err := m.GetInt16(TypeInt16)
	require.NoError(t, err)
	assert.Equal(t, int16(-2), i16)

	i32, err := m.GetInt32(TypeInt32)
	require.NoError(t, err)
	assert.Equal(t, int32(123456), i32)

	i64, err := m.GetInt64(TypeInt64)
	require.NoError(t, err)
	assert.Equal(t, int64(-9000000000), i64)

	s, err := m.GetBytesAny(TypeChar)
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), s)

	m.Clear()
}

func TestMsgCursorAtomicity(t *testing.T) {
	t.Run("failed get leaves the cursor in place", func(t *testing.T) {
		sys := newFakeSyscalls()
		m := newTestMsg(t, sys, 64)
		require.NoError(t, m.PutInt32(TypeInt32, 7))
		require.NoError(t, m.Exchange(context.Background(), SendMsg, nil, TimeoutNone))
		require.NoError(t, m.Flip())

		_, err := m.GetInt64(TypeInt64)
		var terr *TypeCheckError
		require.ErrorAs(t, err, &terr)

		v, err := m.GetInt32(TypeInt32)
		require.NoError(t, err)
		assert.Equal(t, int32(7), v)
		m.Clear()
	})

	t.Run("failed put leaves the buffer in place", func(t *testing.T) {
		sys := newFakeSyscalls()
		m := newTestMsg(t, sys, 32)

		var lerr *LengthError
		require.ErrorAs(t, m.PutInt64(TypeInt64, 1), &lerr, "item does not fit")

		require.NoError(t, m.PutInt32(TypeInt32, 42), "remaining room is intact")
		assert.Len(t, m.Bytes(), 32)
		m.Clear()
	})

	t.Run("count mismatch", func(t *testing.T) {
		sys := newFakeSyscalls()
		m := newTestMsg(t, sys, 64)
		require.NoError(t, m.PutBytes(TypeChar, []byte("abcdef")))
		require.NoError(t, m.Exchange(context.Background(), SendMsg, nil, TimeoutNone))
		require.NoError(t, m.Flip())

		_, err := m.GetBytes(TypeChar, 3)
		var terr *TypeCheckError
		require.ErrorAs(t, err, &terr)

		v, err := m.GetBytes(TypeChar, 6)
		require.NoError(t, err)
		assert.Equal(t, []byte("abcdef"), v)
		m.Clear()
	})
}

func TestMsgGenericDescriptors(t *testing.T) {
	sys := newFakeSyscalls()
	m := newTestMsg(t, sys, 64)

	custom := NewMsgType(32, 32, true)
	require.NoError(t, m.PutDescriptor(custom, 2))
	require.NoError(t, m.Exchange(context.Background(), SendMsg, nil, TimeoutNone))
	require.NoError(t, m.Flip())

	got, count, err := m.GetDescriptor()
	require.NoError(t, err)
	assert.True(t, got.Long())
	assert.Equal(t, 32, got.Code())
	assert.Equal(t, 2, count)
	m.Clear()
}

func TestMsgExchange(t *testing.T) {
	t.Run("patches the size field and borrows the receive name", func(t *testing.T) {
		sys := newFakeSyscalls()
		rcv, err := AllocatePort(context.Background(), sys, RightReceive)
		require.NoError(t, err)

		m := newTestMsg(t, sys, 64)
		require.NoError(t, m.PutInt32(TypeInt32, 1))
		require.NoError(t, m.Exchange(context.Background(), SendMsg|RcvMsg, rcv, TimeoutNone))

		assert.Equal(t, uint32(SendMsg|RcvMsg), sys.lastOpt)
		assert.Equal(t, Name(100), sys.lastRcv)
		assert.Equal(t, uint32(32), wire.Uint32(sys.lastBuf[4:]), "size field covers header plus one int32 item")

		rcv.Deallocate(context.Background())
		assert.Equal(t, 1, sys.deallocCount(100), "borrow was returned")
		m.Clear()
	})

	t.Run("kernel error surfaces", func(t *testing.T) {
		sys := newFakeSyscalls()
		sys.msgErr = &KernError{Call: "mach_msg", Code: MsgRcvTimedOut}

		m := newTestMsg(t, sys, 64)
		err := m.Exchange(context.Background(), SendMsg|RcvMsg|RcvTimeout, nil, TimeoutNone)
		var kerr *KernError
		require.ErrorAs(t, err, &kerr)
		assert.Equal(t, MsgRcvTimedOut, kerr.Code)
		m.Clear()
	})
}

func TestMsgFlip(t *testing.T) {
	t.Run("releases borrowed header rights", func(t *testing.T) {
		sys := newFakeSyscalls()
		reply, err := ReplyPort(context.Background(), sys)
		require.NoError(t, err)

		m := newTestMsg(t, sys, 64)
		require.NoError(t, m.SetLocalPort(reply, TypeMakeSendOnce))
		require.NoError(t, m.Exchange(context.Background(), SendMsg, nil, TimeoutNone))
		require.NoError(t, m.Flip())

		reply.Deallocate(context.Background())
		assert.Equal(t, 1, sys.deallocCount(100), "flip dropped the borrow")
		m.Clear()
	})

	t.Run("forgets moved rights the kernel consumed", func(t *testing.T) {
		sys := newFakeSyscalls()
		p, err := AllocatePort(context.Background(), sys, RightReceive)
		require.NoError(t, err)

		m := newTestMsg(t, sys, 64)
		require.NoError(t, m.SetRemotePort(p, TypeMoveSend))
		require.NoError(t, m.Exchange(context.Background(), SendMsg, nil, TimeoutNone))
		require.NoError(t, m.Flip())

		m.Clear()
		assert.Equal(t, 0, sys.deallocCount(100), "the kernel owns the moved right")
	})

	t.Run("bytes preserves the kernel-reported size", func(t *testing.T) {
		sys := newFakeSyscalls()
		m := newTestMsg(t, sys, 64)
		require.NoError(t, m.PutInt32(TypeInt32, 1))
		require.NoError(t, m.PutInt32(TypeInt32, 2))
		require.NoError(t, m.Exchange(context.Background(), SendMsg, nil, TimeoutNone))
		require.NoError(t, m.Flip())

		b := m.Bytes()
		assert.Len(t, b, 40, "header plus two int32 items")
		assert.Equal(t, uint32(40), wire.Uint32(b[4:]), "size field untouched while parsing")

		// The buffer is still parseable after the snapshot.
		v, err := m.GetInt32(TypeInt32)
		require.NoError(t, err)
		assert.Equal(t, int32(1), v)
		v, err = m.GetInt32(TypeInt32)
		require.NoError(t, err)
		assert.Equal(t, int32(2), v)
		m.Clear()
	})

	t.Run("rejects an insane size field", func(t *testing.T) {
		sys := newFakeSyscalls()
		reply := make([]byte, 24)
		wire.PutUint32(reply[4:], 5000)
		sys.reply = reply

		m := newTestMsg(t, sys, 64)
		require.NoError(t, m.Exchange(context.Background(), RcvMsg, nil, TimeoutNone))
		var lerr *LengthError
		assert.ErrorAs(t, m.Flip(), &lerr)
		m.Clear()
	})
}

func TestMsgClearResets(t *testing.T) {
	sys := newFakeSyscalls()
	m := newTestMsg(t, sys, 64)
	m.SetID(42)
	require.NoError(t, m.PutInt32(TypeInt32, 7))

	m.Clear()
	assert.Equal(t, int32(0), m.ID())
	assert.Len(t, m.Bytes(), headerSize)

	// The buffer is reusable after a clear.
	require.NoError(t, m.PutInt32(TypeInt32, 8))
	assert.Len(t, m.Bytes(), 32)
	m.Clear()
}

func TestMsgDestroy(t *testing.T) {
	sys := newFakeSyscalls()
	p, err := WrapPort(context.Background(), sys, 9)
	require.NoError(t, err)

	m := newTestMsg(t, sys, 64)
	require.NoError(t, m.PutPort(p, TypeCopySend))

	m.Destroy()
	p.Deallocate(context.Background())
	assert.Equal(t, 1, sys.deallocCount(9), "destroy drained the borrow")
}
