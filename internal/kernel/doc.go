// Package kernel provides the concrete syscall boundary implementations.
//
// Two kernels are available:
//   - Client: gRPC transport to a remote kernel, with circuit breaking
//     and per-call metrics
//   - Loopback: an in-process port name space with synchronous routing,
//     used by tests and the demo binary
//
// Server bridges the two, serving a Loopback over the KernelService
// wire protocol.
package kernel
