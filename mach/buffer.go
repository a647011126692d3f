package mach

import "encoding/binary"

// wire is the byte order of the kernel ABI this package models
// (i386/x86_64 Hurd, little endian).
var wire = binary.LittleEndian

// cursor is a bounded byte region with a position and a sticky error,
// shared by the descriptor codec and the message buffer. Primitive
// accessors never panic: the first out-of-bounds access latches err and
// every later access becomes a no-op, so compound operations check err
// once at the end and roll the position back to their mark.
type cursor struct {
	b   []byte
	pos int
	lim int
	err error
}

func (c *cursor) fail(got, want int, msg string) {
	if c.err == nil {
		c.err = &LengthError{Got: got, Want: want, Msg: msg}
	}
}

func (c *cursor) room(n int) bool {
	if c.err != nil {
		return false
	}
	if c.pos+n > c.lim {
		c.fail(c.lim-c.pos, n, "buffer exhausted")
		return false
	}
	return true
}

// alignPut pads with zero bytes up to the next word boundary.
func (c *cursor) alignPut() {
	for c.pos%4 != 0 && c.room(1) {
		c.b[c.pos] = 0
		c.pos++
	}
}

// alignGet skips padding up to the next word boundary.
func (c *cursor) alignGet() {
	for c.pos%4 != 0 && c.room(1) {
		c.pos++
	}
}

func (c *cursor) putU32(v uint32) {
	if c.room(4) {
		wire.PutUint32(c.b[c.pos:], v)
		c.pos += 4
	}
}

func (c *cursor) putU16(v uint16) {
	if c.room(2) {
		wire.PutUint16(c.b[c.pos:], v)
		c.pos += 2
	}
}

func (c *cursor) putU64(v uint64) {
	if c.room(8) {
		wire.PutUint64(c.b[c.pos:], v)
		c.pos += 8
	}
}

func (c *cursor) putBytes(p []byte) {
	if c.room(len(p)) {
		copy(c.b[c.pos:], p)
		c.pos += len(p)
	}
}

func (c *cursor) getU32() uint32 {
	if !c.room(4) {
		return 0
	}
	v := wire.Uint32(c.b[c.pos:])
	c.pos += 4
	return v
}

func (c *cursor) getU16() uint16 {
	if !c.room(2) {
		return 0
	}
	v := wire.Uint16(c.b[c.pos:])
	c.pos += 2
	return v
}

func (c *cursor) getU64() uint64 {
	if !c.room(8) {
		return 0
	}
	v := wire.Uint64(c.b[c.pos:])
	c.pos += 8
	return v
}

func (c *cursor) getBytes(n int) []byte {
	if !c.room(n) {
		return nil
	}
	v := make([]byte, n)
	copy(v, c.b[c.pos:])
	c.pos += n
	return v
}

// takeErr returns the latched error, if any, resets the cursor to mark
// and clears the latch. Every compound operation funnels through this
// to guarantee all-or-nothing position updates.
func (c *cursor) takeErr(mark int) error {
	err := c.err
	if err != nil {
		c.pos = mark
		c.err = nil
	}
	return err
}
