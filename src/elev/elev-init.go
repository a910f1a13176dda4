package elev

import (
	"log/slog"

	"elevsim/src/types"

	"github.com/tiendc/go-deepcopy"
)

// NewCar creates an idle car resting at floor 0.
func NewCar(id int, straddle StraddlePolicy) *Car {
	car := &Car{
		ID:       id,
		Floor:    0,
		Dir:      types.MD_Stop,
		Dests:    make(map[int]struct{}),
		Straddle: straddle,
	}
	slog.Debug("Car initialized", "car", id, "straddle", straddle)
	return car
}

// Clone returns a deep copy of the car, destination set included.
func (car *Car) Clone() *Car {
	clone := new(Car)
	if err := deepcopy.Copy(clone, car); err != nil {
		panic(err)
	}
	return clone
}
