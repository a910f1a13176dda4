package elev

import (
	"maps"
	"math"
	"slices"

	"elevsim/src/types"
)

func (car *Car) HasDestination(floor int) bool {
	_, ok := car.Dests[floor]
	return ok
}

// Destinations returns the destination set in ascending order.
func (car *Car) Destinations() []int {
	return slices.Sorted(maps.Keys(car.Dests))
}

// DistanceFrom returns the number of floors between the car and floor,
// saturated at math.MaxInt when the gap does not fit in an int.
func (car *Car) DistanceFrom(floor int) int {
	return distance(car.Floor, floor)
}

func (car *Car) IsIdle() bool {
	return car.Dir == types.MD_Stop
}

func (car *Car) Status() types.CarStatus {
	return types.CarStatus{CarID: car.ID, Floor: car.Floor, Dir: car.Dir}
}

// bounds returns the lowest and highest destination, ok is false when there are none.
func (car *Car) bounds() (lowest, highest int, ok bool) {
	for floor := range car.Dests {
		if !ok {
			lowest, highest, ok = floor, floor, true
			continue
		}
		lowest = min(lowest, floor)
		highest = max(highest, floor)
	}
	return lowest, highest, ok
}

func distance(a, b int) int {
	if a < b {
		a, b = b, a
	}
	// a >= b, so a wrapped difference shows up as negative.
	if d := a - b; d >= 0 {
		return d
	}
	return math.MaxInt
}
