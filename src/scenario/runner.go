package scenario

import (
	"cmp"
	"io"
	"log/slog"
	"slices"

	"elevsim/src/dispatcher"
	"elevsim/src/elev"
	"elevsim/src/types"
	"elevsim/src/utils"
)

// Run builds a fleet for s and prints a status report after every tick.
// Requests due after a tick are applied once that tick's report is written.
// Rejected requests are logged and skipped.
func Run(s *Scenario, straddle elev.StraddlePolicy, w io.Writer) (*dispatcher.Dispatcher, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	d := dispatcher.New(deref(s.Cars), straddle)

	requests := slices.Clone(s.Requests)
	slices.SortStableFunc(requests, func(a, b Request) int { return cmp.Compare(a.After, b.After) })

	next := apply(d, requests, 0)
	for step := 0; step < deref(s.Ticks); step++ {
		if err := utils.PrintTimeStep(w, step); err != nil {
			return d, err
		}
		d.Tick()
		if err := utils.PrintStatus(w, d.Status()); err != nil {
			return d, err
		}
		next += apply(d, requests[next:], step+1)
	}
	return d, nil
}

// apply issues the leading requests due after the given number of ticks and returns how many it used.
func apply(d *dispatcher.Dispatcher, requests []Request, completed int) int {
	n := 0
	for _, req := range requests {
		if req.After > completed {
			break
		}
		n++

		var err error
		if req.Hall != nil {
			button, _ := types.ParseHallType(req.Hall.Dir)
			_, err = d.RequestElevator(types.HallOrder{Floor: req.Hall.Floor, Button: button})
		} else {
			err = d.RequestFloor(types.CabOrder{CarID: req.Cab.Car, Floor: req.Cab.Floor})
		}
		if err != nil {
			slog.Warn("Scenario request skipped", "after", req.After, "err", err)
		}
	}
	return n
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
