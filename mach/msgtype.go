package mach

// Flag bits of a mach_msg_type_t header word.
const (
	bitInline     uint32 = 0x10000000
	bitLongform   uint32 = 0x20000000
	bitDeallocate uint32 = 0x40000000

	// checkedBits masks the invariant part of a short-form header:
	// everything except the variable 12-bit element count.
	checkedBits uint32 = 0xf000ffff

	// maxShortCount is the largest element count a short-form
	// descriptor can carry.
	maxShortCount = 0x0fff
)

// Type codes fixed by the kernel ABI (MACH_MSG_TYPE_* constants).
const (
	typeCodeInt16        uint32 = 1
	typeCodeInt32        uint32 = 2
	typeCodeChar         uint32 = 8
	typeCodeInt64        uint32 = 11
	typeCodeMoveReceive  uint32 = 16
	typeCodeMoveSend     uint32 = 17
	typeCodeMoveSendOnce uint32 = 18
	typeCodeCopySend     uint32 = 19
	typeCodeMakeSend     uint32 = 20
	typeCodeMakeSendOnce uint32 = 21
)

// MsgType describes the wire type of one data item: a type code, the
// size in bits of one element, and whether the descriptor uses the
// expanded long-form encoding. Values are immutable; the package-level
// catalog below covers the types in common use, and NewMsgType builds
// descriptors for anything else the ABI defines.
type MsgType struct {
	code  uint32
	bits  uint32
	long  bool
	proto uint32 // pre-packed invariant header bits for checking
}

func newMsgType(code, bits uint32, long bool) *MsgType {
	t := &MsgType{code: code, bits: bits, long: long}
	if long {
		t.proto = bitInline | bitLongform
	} else {
		t.proto = code | bits<<8 | bitInline
	}
	return t
}

// NewMsgType returns a descriptor for an arbitrary type code. code must
// fit the ABI's field widths: 8 bits short form, 16 bits long form.
func NewMsgType(code, bits int, longform bool) *MsgType {
	max := 0xff
	if longform {
		max = 0xffff
	}
	if code < 0 || code > max || bits < 0 || bits > max {
		panic("mach: NewMsgType field out of range")
	}
	return newMsgType(uint32(code), uint32(bits), longform)
}

// The catalog of well-known descriptors.
var (
	TypeInt16        = newMsgType(typeCodeInt16, 16, false)
	TypeInt32        = newMsgType(typeCodeInt32, 32, false)
	TypeChar         = newMsgType(typeCodeChar, 8, false)
	TypeInt64        = newMsgType(typeCodeInt64, 64, false)
	TypeMoveReceive  = newMsgType(typeCodeMoveReceive, 32, false)
	TypeMoveSend     = newMsgType(typeCodeMoveSend, 32, false)
	TypeMoveSendOnce = newMsgType(typeCodeMoveSendOnce, 32, false)
	TypeCopySend     = newMsgType(typeCodeCopySend, 32, false)
	TypeMakeSend     = newMsgType(typeCodeMakeSend, 32, false)
	TypeMakeSendOnce = newMsgType(typeCodeMakeSendOnce, 32, false)

	// Aliases for the rights found in received messages.
	TypePortReceive  = TypeMoveReceive
	TypePortSend     = TypeMoveSend
	TypePortSendOnce = TypeMoveSendOnce
)

// Code returns the ABI type code.
func (t *MsgType) Code() int { return int(t.code) }

// Bits returns the size of one element in bits.
func (t *MsgType) Bits() int { return int(t.bits) }

// Long reports whether the descriptor uses the long-form encoding.
func (t *MsgType) Long() bool { return t.long }

// IsPort reports whether the type names a port right. Corresponds to
// the MACH_MSG_TYPE_PORT_ANY macro.
func (t *MsgType) IsPort() bool {
	return t.code >= typeCodeMoveReceive && t.code <= typeCodeMakeSendOnce
}

// Consuming reports whether attaching a value of this type to a message
// moves the right out of the source capability rather than borrowing
// it. Corresponds to MACH_MSG_TYPE_PORT_ANY_RIGHT.
func (t *MsgType) Consuming() bool {
	return t.code >= typeCodeMoveReceive && t.code <= typeCodeMoveSendOnce
}

// Bytes returns the payload length in bytes for count elements.
func (t *MsgType) Bytes(count int) int {
	return int(t.bits) * count / 8
}

func packShort(code, bits, count uint32, inl, dealloc bool) uint32 {
	h := code | bits<<8 | count<<16
	if inl {
		h |= bitInline
	}
	if dealloc {
		h |= bitDeallocate
	}
	return h
}

// put writes the descriptor for count elements, aligned to the next
// word boundary. Long-form types emit the flags word followed by the
// 16-bit code, 16-bit size and 32-bit count.
func (t *MsgType) put(c *cursor, count uint32, inl, dealloc bool) {
	c.alignPut()
	if t.long {
		h := bitLongform
		if inl {
			h |= bitInline
		}
		if dealloc {
			h |= bitDeallocate
		}
		c.putU32(h)
		c.putU16(uint16(t.code))
		c.putU16(uint16(t.bits))
		c.putU32(count)
		return
	}
	if count > maxShortCount {
		c.fail(int(count), maxShortCount, "count exceeds short-form descriptor")
		return
	}
	c.putU32(packShort(t.code, t.bits, count, inl, dealloc))
}

// check reads a descriptor and compares it against this type's
// invariant bit pattern, ignoring the variable count field. It returns
// the element count on success. On failure the cursor's latched error
// is set; the caller restores the position from its saved mark.
func (t *MsgType) check(c *cursor) (uint32, error) {
	c.alignGet()
	h := c.getU32()
	if c.err != nil {
		return 0, c.err
	}
	if h&checkedBits != t.proto {
		return 0, &TypeCheckError{Got: h, Want: t.proto}
	}
	if !t.long {
		return h >> 16 & maxShortCount, nil
	}
	code := uint32(c.getU16())
	bits := uint32(c.getU16())
	count := c.getU32()
	if c.err != nil {
		return 0, c.err
	}
	if code != t.code {
		return 0, &TypeCheckError{Got: code, Want: t.code, Msg: "long-form name"}
	}
	if bits != t.bits {
		return 0, &TypeCheckError{Got: bits, Want: t.bits, Msg: "long-form size"}
	}
	return count, nil
}

// checkCount is check plus an exact element count comparison.
func (t *MsgType) checkCount(c *cursor, want uint32) error {
	got, err := t.check(c)
	if err != nil {
		return err
	}
	if got != want {
		return &TypeCheckError{Got: got, Want: want, Msg: "element count"}
	}
	return nil
}

// readType parses whatever descriptor sits at the cursor, returning its
// shape and element count. The generic counterpart of check.
func readType(c *cursor) (*MsgType, uint32, error) {
	c.alignGet()
	h := c.getU32()
	if c.err != nil {
		return nil, 0, c.err
	}
	if h&bitLongform != 0 {
		code := uint32(c.getU16())
		bits := uint32(c.getU16())
		count := c.getU32()
		if c.err != nil {
			return nil, 0, c.err
		}
		return newMsgType(code, bits, true), count, nil
	}
	return newMsgType(h&0xff, h>>8&0xff, false), h >> 16 & maxShortCount, nil
}
