//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"net/netip"
	"reflect"
	"udp-chat/domain"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for logging during supervision.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// DatagramReceiver is the inbound half of the UDP endpoint.
// Receive blocks until a datagram arrives; Unblock makes a pending Receive return an error.
type DatagramReceiver interface {
	Receive() ([]byte, netip.AddrPort, error)
	Unblock() error
}

// DatagramSender sends one datagram, best effort.
type DatagramSender interface {
	SendTo(payload []byte, destination netip.AddrPort) error
}

// Broadcaster is the outbound half of the UDP endpoint used by the session.
// Broadcast returns how many sends failed.
type Broadcaster interface {
	Broadcast(payload []byte, destinations []netip.AddrPort) int
	LocalPort() uint16
}

type Renderer interface {
	Redraw(history []domain.Entry, status *domain.Status) error
	Prompt() error
}

type EntrySink interface {
	Consume(ctx context.Context, received domain.Received) error
}
