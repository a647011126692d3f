// Package mach is a capability-safety layer over the Mach kernel's
// synchronous message-passing primitive.
//
// User code never touches raw port names. Instead it works with three
// cooperating objects:
//   - MsgType: the type descriptor codec, encoding and checking the
//     mach_msg_type_t / mach_msg_type_long_t tags that precede every
//     data item in a message.
//   - Port: a reference-counted, single-owner handle for one kernel
//     port name, with deferred deallocation and blocking ownership
//     transfer.
//   - Msg: a fixed-capacity message buffer with structured header and
//     body accessors that keep the cursor consistent and never leak a
//     port reference, even on failure.
//
// The actual kernel is reached through the Syscalls interface, which
// mirrors the raw mach_msg/mach_port calls. Implementations live under
// internal/kernel (a gRPC client for a kernel service, and an in-memory
// loopback kernel used by tests and the demo).
//
// All multi-byte fields use the native byte order of the i386/x86_64
// Hurd ABI this package models, which is little endian.
//
// Port and Msg instances are each guarded by their own lock; operations
// on a single instance are linearizable. The only call that can block
// on user-level state is Port.Clear, which waits for outstanding
// Acquire/Release pairs to drain before extracting the name.
package mach
