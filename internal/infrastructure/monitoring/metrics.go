// Package monitoring exposes Prometheus metrics for the capability
// layer and the kernel transports.
package monitoring

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus collectors.
type Metrics struct {
	// Port lifecycle
	PortsAllocated   prometheus.Counter
	PortsDeallocated prometheus.Counter
	PortsLeaked      prometheus.Counter

	// Message traffic
	MessagesSent     prometheus.Counter
	MessagesReceived prometheus.Counter

	// Syscall boundary
	SyscallCalls    *prometheus.CounterVec
	SyscallErrors   *prometheus.CounterVec
	SyscallDuration *prometheus.HistogramVec
}

var (
	defaultOnce    sync.Once
	defaultMetrics *Metrics
)

// Default returns the process-wide metrics, registering the collectors
// on first use.
func Default() *Metrics {
	defaultOnce.Do(func() {
		defaultMetrics = newMetrics(prometheus.DefaultRegisterer)
	})
	return defaultMetrics
}

func newMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PortsAllocated: factory.NewCounter(prometheus.CounterOpts{
			Name: "mach_ports_allocated_total",
			Help: "Port names allocated from the kernel",
		}),
		PortsDeallocated: factory.NewCounter(prometheus.CounterOpts{
			Name: "mach_ports_deallocated_total",
			Help: "Port names returned to the kernel",
		}),
		PortsLeaked: factory.NewCounter(prometheus.CounterOpts{
			Name: "mach_ports_leaked_total",
			Help: "Ports destroyed while still live or borrowed",
		}),
		MessagesSent: factory.NewCounter(prometheus.CounterOpts{
			Name: "mach_messages_sent_total",
			Help: "Messages handed to the kernel for sending",
		}),
		MessagesReceived: factory.NewCounter(prometheus.CounterOpts{
			Name: "mach_messages_received_total",
			Help: "Messages received from the kernel",
		}),
		SyscallCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mach_syscalls_total",
			Help: "Raw system calls by name",
		}, []string{"call"}),
		SyscallErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mach_syscall_errors_total",
			Help: "Failed raw system calls by name",
		}, []string{"call"}),
		SyscallDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mach_syscall_duration_seconds",
			Help:    "Raw system call latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"call"}),
	}
}
