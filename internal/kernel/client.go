package kernel

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"

	"github.com/openmach/machipc/internal/infrastructure/monitoring"
	"github.com/openmach/machipc/internal/infrastructure/resilience"
	"github.com/openmach/machipc/mach"
	pb "github.com/openmach/machipc/proto/kernel"
)

// Client speaks to a remote kernel over gRPC and adapts it to the
// mach.Syscalls interface. All calls flow through a circuit breaker so
// a dead kernel fails fast instead of piling up blocked goroutines.
type Client struct {
	conn    *grpc.ClientConn
	client  pb.KernelServiceClient
	breaker *resilience.Breaker
	addr    string
}

var _ mach.Syscalls = (*Client)(nil)

// Dial connects to the kernel at addr with proper connection management.
func Dial(addr string) (*Client, error) {
	// Configure connection options for production use
	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		// Configure keepalive to detect broken connections (reduced frequency to avoid "too_many_pings")
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                60 * time.Second, // Send pings every 60 seconds
			Timeout:             20 * time.Second, // Wait 20 seconds for ping ack
			PermitWithoutStream: false,            // Only send pings when streams are active
		}),
		// Set reasonable message size limits
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(10*1024*1024), // 10MB receive limit
			grpc.MaxCallSendMsgSize(10*1024*1024), // 10MB send limit
		),
	}

	conn, err := grpc.Dial(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to dial kernel: %w", err)
	}
	return newClient(conn, addr), nil
}

// NewClient wraps an existing connection, e.g. a bufconn pipe in tests.
func NewClient(conn *grpc.ClientConn) *Client {
	return newClient(conn, conn.Target())
}

func newClient(conn *grpc.ClientConn, addr string) *Client {
	breaker := resilience.New("kernel", resilience.Settings{
		MaxRequests: 1,
		Timeout:     5 * time.Second,
		ReadyToTrip: func(counts resilience.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.ConsecutiveFailures >= 5 ||
				(counts.Requests >= 10 && failureRatio >= 0.5)
		},
	})
	return &Client{
		conn:    conn,
		client:  pb.NewKernelServiceClient(conn),
		breaker: breaker,
		addr:    addr,
	}
}

// Close closes the connection.
func (c *Client) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// call wraps one RPC with breaker accounting and metrics.
func call[T any](c *Client, name string, rpc func() (T, error)) (T, error) {
	met := monitoring.Default()
	met.SyscallCalls.WithLabelValues(name).Inc()
	start := time.Now()
	out, err := resilience.Do(c.breaker, rpc)
	met.SyscallDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	if err != nil {
		met.SyscallErrors.WithLabelValues(name).Inc()
	}
	return out, err
}

// Msg performs one mach_msg round trip. The returned slice is the
// receive buffer on RcvMsg calls, nil otherwise.
func (c *Client) Msg(ctx context.Context, buf []byte, option uint32, rcvName mach.Name, timeout time.Duration, notify mach.Name) ([]byte, error) {
	resp, err := call(c, "msg", func() (*pb.MsgResponse, error) {
		return c.client.Msg(ctx, &pb.MsgRequest{
			Buffer:    buf,
			Option:    option,
			RcvName:   uint32(rcvName),
			TimeoutMs: uint64(timeout / time.Millisecond),
			Notify:    uint32(notify),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("msg rpc failed: %w", err)
	}
	if resp.Code != mach.KernSuccess {
		return nil, &mach.KernError{Call: "mach_msg", Code: resp.Code}
	}
	return resp.Buffer, nil
}

// AllocatePort asks the kernel for a fresh name holding right in task.
func (c *Client) AllocatePort(ctx context.Context, task mach.Name, right mach.Right) (mach.Name, error) {
	resp, err := call(c, "allocate_port", func() (*pb.NameResponse, error) {
		return c.client.AllocatePort(ctx, &pb.AllocateRequest{
			Task:  uint32(task),
			Right: int32(right),
		})
	})
	if err != nil {
		return mach.PortNull, fmt.Errorf("allocate port rpc failed: %w", err)
	}
	if resp.Code != mach.KernSuccess {
		return mach.PortNull, &mach.KernError{Call: "mach_port_allocate", Code: resp.Code}
	}
	return mach.Name(resp.Name), nil
}

// DeallocatePort releases one user reference to name in task.
func (c *Client) DeallocatePort(ctx context.Context, task mach.Name, name mach.Name) error {
	resp, err := call(c, "deallocate_port", func() (*pb.StatusResponse, error) {
		return c.client.DeallocatePort(ctx, &pb.DeallocateRequest{
			Task: uint32(task),
			Name: uint32(name),
		})
	})
	if err != nil {
		return fmt.Errorf("deallocate port rpc failed: %w", err)
	}
	if resp.Code != mach.KernSuccess {
		return &mach.KernError{Call: "mach_port_deallocate", Code: resp.Code}
	}
	return nil
}

// TaskSelf returns the caller's task port name.
func (c *Client) TaskSelf(ctx context.Context) (mach.Name, error) {
	resp, err := call(c, "task_self", func() (*pb.NameResponse, error) {
		return c.client.TaskSelf(ctx, &pb.Empty{})
	})
	if err != nil {
		return mach.PortNull, fmt.Errorf("task self rpc failed: %w", err)
	}
	if resp.Code != mach.KernSuccess {
		return mach.PortNull, &mach.KernError{Call: "mach_task_self", Code: resp.Code}
	}
	return mach.Name(resp.Name), nil
}

// ReplyPort creates a receive right for RPC replies.
func (c *Client) ReplyPort(ctx context.Context) (mach.Name, error) {
	resp, err := call(c, "reply_port", func() (*pb.NameResponse, error) {
		return c.client.ReplyPort(ctx, &pb.Empty{})
	})
	if err != nil {
		return mach.PortNull, fmt.Errorf("reply port rpc failed: %w", err)
	}
	if resp.Code != mach.KernSuccess {
		return mach.PortNull, &mach.KernError{Call: "mach_reply_port", Code: resp.Code}
	}
	return mach.Name(resp.Name), nil
}
