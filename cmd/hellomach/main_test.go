package main

import (
	"context"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/openmach/machipc/internal/kernel"
	"github.com/openmach/machipc/mach"
)

func TestConsoleHandlerMalformedRequests(t *testing.T) {
	lb := kernel.NewLoopback()
	ctx := context.Background()

	console := serveConsole(ctx, lb, zap.NewNop())
	defer console.Destroy()
	name := console.Acquire()
	defer console.Release()

	tests := []struct {
		name  string
		build func() []byte
	}{
		{"header only, no descriptor", func() []byte {
			b := make([]byte, 24)
			binary.LittleEndian.PutUint32(b[4:], 24)
			binary.LittleEndian.PutUint32(b[8:], uint32(name))
			return b
		}},
		{"count field beyond the request", func() []byte {
			b := make([]byte, 32)
			binary.LittleEndian.PutUint32(b[4:], 32)
			binary.LittleEndian.PutUint32(b[8:], uint32(name))
			// Char descriptor claiming the maximum element count with
			// only four payload bytes present.
			binary.LittleEndian.PutUint32(b[24:], 0x1fff0808)
			return b
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				_, err := lb.Msg(ctx, tt.build(), mach.SendMsg, mach.PortNull, 0, mach.PortNull)
				require.NoError(t, err, "a bad request is dropped, not a send failure")
			})
		})
	}

	console.Deallocate(ctx)
}
