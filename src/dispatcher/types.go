package dispatcher

import (
	"errors"
	"sync"

	"elevsim/src/elev"
)

var (
	ErrInvalidCar     = errors.New("invalid car id")
	ErrNoCarAvailable = errors.New("no car available")
	ErrMgrClosed      = errors.New("state manager closed")
)

// Dispatcher owns a fixed-size fleet of cars indexed by id.
type Dispatcher struct {
	cars []*elev.Car
}

// MgrCmd is executed by the state manager goroutine with exclusive access to the dispatcher.
type MgrCmd struct {
	Exec func(d *Dispatcher)
}

// Mgr owns a dispatcher and serializes its access.
type Mgr struct {
	cmds      chan MgrCmd
	closing   chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}
