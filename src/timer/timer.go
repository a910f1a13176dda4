package timer

import (
	"log/slog"
	"time"
)

type TimerAction int

const (
	Start TimerAction = iota
	Stop
)

// Timer sends on timeoutCh every period while started. It starts stopped and
// returns when actionCh is closed, also while a timeout is waiting for a receiver.
// A timeout that is still undelivered when an action arrives is dropped.
func Timer(period time.Duration, timeoutCh chan<- bool, actionCh <-chan TimerAction) {
	t := time.NewTimer(period)
	t.Stop()
	running := false

	// Since Go 1.23, Stop and Reset discard a pending expiry, so t.C needs no draining.
	handle := func(a TimerAction) {
		running = a == Start
		if running {
			t.Reset(period)
		} else {
			t.Stop()
		}
	}

	for {
		select {
		case a, ok := <-actionCh:
			if !ok {
				t.Stop()
				return
			}
			handle(a)
		case <-t.C:
			if !running {
				continue
			}
			slog.Debug("Timer timed out", "period", period)
			select {
			case timeoutCh <- true:
				t.Reset(period)
			case a, ok := <-actionCh:
				if !ok {
					return
				}
				handle(a)
			}
		}
	}
}
