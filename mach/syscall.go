package mach

import (
	"context"
	"time"
)

// Name is a raw Mach port name: an unsigned integer handed out by the
// kernel. Outside this package and the kernel transports, names only
// travel wrapped in Port objects.
type Name uint32

const (
	// PortNull is the absent port name.
	PortNull Name = 0
	// PortDead is the sentinel a Port carries once its name has been
	// deallocated or transferred away. Terminal: it never changes back.
	PortDead Name = ^Name(0)
)

// Right selects the kind of right a freshly allocated port carries.
// Values match the mach_port_right_t constants.
type Right int32

const (
	RightSend     Right = 0
	RightReceive  Right = 1
	RightSendOnce Right = 2
	RightPortSet  Right = 3
	RightDeadName Right = 4
)

// Options for Msg calls, copied from <mach/message.h>.
const (
	MsgOptionNone uint32 = 0x00000000
	SendMsg       uint32 = 0x00000001
	RcvMsg        uint32 = 0x00000002
	SendTimeout   uint32 = 0x00000010
	SendNotify    uint32 = 0x00000020
	SendInterrupt uint32 = 0x00000040
	SendCancel    uint32 = 0x00000080
	RcvTimeout    uint32 = 0x00000100
	RcvNotify     uint32 = 0x00000200
	RcvInterrupt  uint32 = 0x00000400
	RcvLarge      uint32 = 0x00000800
)

// TimeoutNone selects blocking behaviour for a send/receive round trip.
const TimeoutNone time.Duration = 0

// kern_return_t codes surfaced by the syscall boundary.
const (
	KernSuccess          int32 = 0
	KernInvalidAddress   int32 = 1
	KernProtectionFail   int32 = 2
	KernNoSpace          int32 = 3
	KernInvalidArgument  int32 = 4
	KernFailure          int32 = 5
	KernResourceShortage int32 = 6
	MsgSendTimedOut      int32 = 0x10000004
	MsgRcvTimedOut       int32 = 0x10004003
)

// Syscalls is the raw system call boundary. Implementations perform the
// actual kernel interaction; everything above it goes through Port and
// Msg. Calls are synchronous and may block until the kernel answers,
// subject to ctx and, for Msg, the supplied timeout.
type Syscalls interface {
	// Msg performs the blocking send and/or receive round trip over
	// buf. The header's size field gives the outbound length; the full
	// slice is available for the response. The returned slice holds the
	// received bytes (it may alias buf). A zero timeout means none.
	Msg(ctx context.Context, buf []byte, option uint32, rcvName Name, timeout time.Duration, notify Name) ([]byte, error)

	// AllocatePort asks the kernel for a fresh name holding the given
	// right in the given task's name space.
	AllocatePort(ctx context.Context, task Name, right Right) (Name, error)

	// DeallocatePort releases one user reference to name in task.
	DeallocatePort(ctx context.Context, task Name, name Name) error

	// TaskSelf returns the caller's task port name.
	TaskSelf(ctx context.Context) (Name, error)

	// ReplyPort creates a receive right suitable for RPC replies.
	ReplyPort(ctx context.Context) (Name, error)
}
