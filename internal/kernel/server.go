package kernel

import (
	"context"
	"errors"
	"time"

	"github.com/openmach/machipc/mach"
	pb "github.com/openmach/machipc/proto/kernel"
)

// Server exposes a Loopback over the KernelService wire protocol so
// the gRPC Client can be exercised against an in-process kernel.
type Server struct {
	pb.UnimplementedKernelServiceServer
	lb *Loopback
}

var _ pb.KernelServiceServer = (*Server)(nil)

// NewServer wraps lb.
func NewServer(lb *Loopback) *Server {
	return &Server{lb: lb}
}

// kernCode flattens an error into a kern_return_t for the wire.
func kernCode(err error) int32 {
	if err == nil {
		return mach.KernSuccess
	}
	var kerr *mach.KernError
	if errors.As(err, &kerr) {
		return kerr.Code
	}
	return mach.KernFailure
}

func (s *Server) Msg(ctx context.Context, req *pb.MsgRequest) (*pb.MsgResponse, error) {
	timeout := time.Duration(req.TimeoutMs) * time.Millisecond
	out, err := s.lb.Msg(ctx, req.Buffer, req.Option, mach.Name(req.RcvName), timeout, mach.Name(req.Notify))
	if err != nil && !isKern(err) {
		return nil, err
	}
	return &pb.MsgResponse{Code: kernCode(err), Buffer: out}, nil
}

func (s *Server) AllocatePort(ctx context.Context, req *pb.AllocateRequest) (*pb.NameResponse, error) {
	name, err := s.lb.AllocatePort(ctx, mach.Name(req.Task), mach.Right(req.Right))
	if err != nil && !isKern(err) {
		return nil, err
	}
	return &pb.NameResponse{Code: kernCode(err), Name: uint32(name)}, nil
}

func (s *Server) DeallocatePort(ctx context.Context, req *pb.DeallocateRequest) (*pb.StatusResponse, error) {
	err := s.lb.DeallocatePort(ctx, mach.Name(req.Task), mach.Name(req.Name))
	if err != nil && !isKern(err) {
		return nil, err
	}
	return &pb.StatusResponse{Code: kernCode(err)}, nil
}

func (s *Server) TaskSelf(ctx context.Context, req *pb.Empty) (*pb.NameResponse, error) {
	name, err := s.lb.TaskSelf(ctx)
	if err != nil && !isKern(err) {
		return nil, err
	}
	return &pb.NameResponse{Code: kernCode(err), Name: uint32(name)}, nil
}

func (s *Server) ReplyPort(ctx context.Context, req *pb.Empty) (*pb.NameResponse, error) {
	name, err := s.lb.ReplyPort(ctx)
	if err != nil && !isKern(err) {
		return nil, err
	}
	return &pb.NameResponse{Code: kernCode(err), Name: uint32(name)}, nil
}

// isKern reports whether err carries a kernel return code, as opposed
// to a transport-level failure that should surface as a gRPC error.
func isKern(err error) bool {
	var kerr *mach.KernError
	return errors.As(err, &kerr)
}
