package dispatcher

import (
	"elevsim/src/elev"
	"elevsim/src/types"
)

// StartMgr starts the state manager goroutine that serializes access to d.
// d must not be used directly afterwards.
func StartMgr(d *Dispatcher) *Mgr {
	mgr := &Mgr{
		cmds:    make(chan MgrCmd),
		closing: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go func() {
		defer close(mgr.done)
		for {
			select {
			case cmd := <-mgr.cmds:
				cmd.Exec(d)
			case <-mgr.closing:
				return
			}
		}
	}()
	return mgr
}

// Execute runs fn on the manager goroutine and waits for it to finish.
// After Close, fn is not run and ErrMgrClosed is returned.
func (mgr *Mgr) Execute(fn func(d *Dispatcher)) error {
	reply := make(chan struct{})
	cmd := MgrCmd{
		Exec: func(d *Dispatcher) {
			fn(d)
			close(reply)
		},
	}
	select {
	case mgr.cmds <- cmd:
	case <-mgr.closing:
		return ErrMgrClosed
	}
	<-reply
	return nil
}

func (mgr *Mgr) RequestElevator(order types.HallOrder) (carID int, err error) {
	if execErr := mgr.Execute(func(d *Dispatcher) {
		carID, err = d.RequestElevator(order)
	}); execErr != nil {
		return -1, execErr
	}
	return carID, err
}

func (mgr *Mgr) RequestFloor(order types.CabOrder) (err error) {
	if execErr := mgr.Execute(func(d *Dispatcher) {
		err = d.RequestFloor(order)
	}); execErr != nil {
		return execErr
	}
	return err
}

// Tick steps the fleet and returns the resulting status within the same command.
// It returns nil once the manager is closed.
func (mgr *Mgr) Tick() (statuses []types.CarStatus) {
	mgr.Execute(func(d *Dispatcher) {
		d.Tick()
		statuses = d.Status()
	})
	return statuses
}

func (mgr *Mgr) Status() (statuses []types.CarStatus) {
	mgr.Execute(func(d *Dispatcher) {
		statuses = d.Status()
	})
	return statuses
}

func (mgr *Mgr) Snapshot() (cars []*elev.Car) {
	mgr.Execute(func(d *Dispatcher) {
		cars = d.Snapshot()
	})
	return cars
}

// Close stops the manager goroutine after the command in progress, if any, has finished.
// It is safe to call concurrently with other methods and more than once.
func (mgr *Mgr) Close() {
	mgr.closeOnce.Do(func() { close(mgr.closing) })
	<-mgr.done
}
