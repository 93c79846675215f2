package observability

import (
	"sync/atomic"
)

// Counters tracks datagram traffic of the endpoint.
// Updated from both the receiver and the session goroutines.
type Counters struct {
	Received      uint64
	ReceivedBytes uint64
	Sent          uint64
	SendFailures  uint64
}

// CountersSnapshot is a consistent-enough copy for display.
type CountersSnapshot struct {
	Received      uint64
	ReceivedBytes uint64
	Sent          uint64
	SendFailures  uint64
}

func NewCounters() *Counters {
	return &Counters{}
}

// IncrReceived counts one datagram of n bytes
func (c *Counters) IncrReceived(n int) {
	atomic.AddUint64(&c.Received, 1)
	atomic.AddUint64(&c.ReceivedBytes, uint64(n))
}

func (c *Counters) IncrSent() {
	atomic.AddUint64(&c.Sent, 1)
}

func (c *Counters) IncrSendFailures() {
	atomic.AddUint64(&c.SendFailures, 1)
}

func (c *Counters) Snapshot() CountersSnapshot {
	return CountersSnapshot{
		Received:      atomic.LoadUint64(&c.Received),
		ReceivedBytes: atomic.LoadUint64(&c.ReceivedBytes),
		Sent:          atomic.LoadUint64(&c.Sent),
		SendFailures:  atomic.LoadUint64(&c.SendFailures),
	}
}
