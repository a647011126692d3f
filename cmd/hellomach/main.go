package main

import (
	"context"
	"encoding/binary"
	"flag"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/openmach/machipc/internal/infrastructure/config"
	"github.com/openmach/machipc/internal/infrastructure/logging"
	"github.com/openmach/machipc/internal/kernel"
	"github.com/openmach/machipc/mach"
)

const msgIDHello = 21000

func main() {
	// Parse flags
	kernelAddr := flag.String("kernel", "", "Kernel gRPC address (empty: in-process loopback)")
	text := flag.String("text", "Hello from user space!\n", "Payload to send")
	flag.Parse()

	cfg := config.LoadOrDefault()
	if *kernelAddr != "" {
		cfg.Kernel.Address = *kernelAddr
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Development = cfg.Logging.Development
	logger, err := logging.New(logCfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()
	mach.Setup(logger)

	ctx := context.Background()

	var sys mach.Syscalls
	var console *mach.Port
	if cfg.Kernel.Address != "" {
		client, err := kernel.Dial(cfg.Kernel.Address)
		if err != nil {
			logger.Fatal("Failed to dial kernel", zap.Error(err))
		}
		defer client.Close()
		sys = client
		// A remote kernel names its own console port; by convention it
		// is the first allocated receive right.
		console, err = mach.WrapPort(ctx, sys, mach.Name(2))
		if err != nil {
			logger.Fatal("Failed to wrap console port", zap.Error(err))
		}
	} else {
		lb := kernel.NewLoopback()
		sys = lb
		console = serveConsole(ctx, lb, logger)
	}

	reply, err := mach.ReplyPort(ctx, sys)
	if err != nil {
		logger.Fatal("Failed to allocate reply port", zap.Error(err))
	}

	msg, err := mach.NewMsg(ctx, sys, 256)
	if err != nil {
		logger.Fatal("Failed to allocate message", zap.Error(err))
	}

	msg.SetID(msgIDHello)
	if err := msg.SetRemotePort(console, mach.TypeCopySend); err != nil {
		logger.Fatal("Failed to set destination", zap.Error(err))
	}
	if err := msg.SetLocalPort(reply, mach.TypeMakeSendOnce); err != nil {
		logger.Fatal("Failed to set reply port", zap.Error(err))
	}
	if err := msg.PutBytes(mach.TypeChar, []byte(*text)); err != nil {
		logger.Fatal("Failed to append payload", zap.Error(err))
	}

	callCtx, cancel := context.WithTimeout(ctx, cfg.Kernel.Timeout)
	defer cancel()
	if err := msg.Exchange(callCtx, mach.SendMsg|mach.RcvMsg, reply, mach.TimeoutNone); err != nil {
		logger.Fatal("Round trip failed", zap.Error(err))
	}
	if err := msg.Flip(); err != nil {
		logger.Fatal("Failed to parse reply", zap.Error(err))
	}

	written, err := msg.GetInt32(mach.TypeInt32)
	if err != nil {
		logger.Fatal("Malformed reply", zap.Error(err))
	}
	status, err := msg.GetInt32(mach.TypeInt32)
	if err != nil {
		logger.Fatal("Malformed reply", zap.Error(err))
	}

	logger.Info("Console round trip complete",
		zap.Int32("id", msg.ID()),
		zap.Int32("written", written),
		zap.Int32("status", status),
	)

	msg.Destroy()
	reply.Destroy()
	console.Destroy()
}

// serveConsole registers a write service on a fresh receive right:
// char payloads go to stdout and the sender gets back the byte count.
func serveConsole(ctx context.Context, lb *kernel.Loopback, logger *zap.Logger) *mach.Port {
	port, err := mach.AllocatePort(ctx, lb, mach.RightReceive)
	if err != nil {
		logger.Fatal("Failed to allocate console port", zap.Error(err))
	}

	name := port.Acquire()
	defer port.Release()
	lb.Handle(name, func(request []byte) []byte {
		replyTo := mach.Name(binary.LittleEndian.Uint32(request[12:]))
		id := int32(binary.LittleEndian.Uint32(request[20:]))

		// Short-form char descriptor directly after the header. The
		// count field is untrusted input; bound it by the request.
		if len(request) < 28 {
			logger.Error("Console request missing payload descriptor",
				zap.Int("size", len(request)))
			return nil
		}
		desc := binary.LittleEndian.Uint32(request[24:])
		count := int(desc >> 16 & 0x0fff)
		if 28+count > len(request) {
			logger.Error("Console payload count exceeds request",
				zap.Int("count", count),
				zap.Int("size", len(request)))
			return nil
		}
		payload := request[28 : 28+count]
		n, _ := os.Stdout.Write(payload)

		dest, err := mach.WrapPort(ctx, lb, replyTo)
		if err != nil {
			logger.Error("Console reply port vanished", zap.Error(err))
			return nil
		}
		out, err := mach.NewMsg(ctx, lb, 64)
		if err != nil {
			logger.Error("Console reply allocation failed", zap.Error(err))
			return nil
		}
		out.SetID(id + 100)
		if err := out.SetRemotePort(dest, mach.TypeMoveSendOnce); err != nil {
			logger.Error("Console reply destination failed", zap.Error(err))
			return nil
		}
		out.PutInt32(mach.TypeInt32, int32(n))
		out.PutInt32(mach.TypeInt32, 0)
		return out.Bytes()
	})
	return port
}
