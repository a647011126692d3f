// Package kernel provides generated Protocol Buffer types and gRPC clients for kernel communication.
//
// Generated from: proto/kernel.proto
//
// This package contains:
//   - KernelServiceClient: gRPC client for the syscall boundary
//   - Message buffer request/response types
//   - Port allocation and deallocation types
//
// Services:
//   - Msg: Synchronous message send/receive round trip
//   - AllocatePort: Create a port name with a given right
//   - DeallocatePort: Release a user reference to a name
//   - TaskSelf: Resolve the caller's task port
//   - ReplyPort: Create a receive right for RPC replies
//
// Usage:
//
//	This package is typically wrapped by internal/kernel/client.go
//	for higher-level Go interfaces.
//
// Note: This is generated code. Do not edit manually.
// Regenerate with: make proto
package kernel
