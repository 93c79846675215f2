package errors

import "fmt"

var (
	ErrWorkerPanic    = fmt.Errorf("worker panic")
	ErrUnrecoverable  = fmt.Errorf("unrecoverable")
	ErrBindFailed     = fmt.Errorf("bind failed")
	ErrInvalidAddress = fmt.Errorf("invalid address")
	ErrInvalidPort    = fmt.Errorf("invalid port")
	ErrEmptyWords     = fmt.Errorf("no words have been found")

	// ErrReceiverStopped ends the receiver for good, the session keeps sending.
	ErrReceiverStopped = fmt.Errorf("%w: receiver stopped", ErrUnrecoverable)
)
