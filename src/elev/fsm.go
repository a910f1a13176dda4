// Contains the per-car state machine: destination insertion, stepping and direction choice.
package elev

import (
	"log/slog"

	"elevsim/src/types"
)

// AddDestination inserts floor into the destination set and recomputes the direction.
// Inserting a floor that is already present only recomputes.
func (car *Car) AddDestination(floor int) {
	if _, ok := car.Dests[floor]; !ok {
		car.Dests[floor] = struct{}{}
		slog.Debug("Destination added", "car", car.ID, "floor", floor)
	}
	car.updateDirection()
}

// Step advances the car one floor in its current direction.
//   - an empty destination set makes the car idle without moving
//   - reaching a destination removes it from the set
func (car *Car) Step() {
	if len(car.Dests) == 0 {
		car.Dir = types.MD_Stop
		return
	}

	car.Floor += int(car.Dir)

	if car.HasDestination(car.Floor) {
		delete(car.Dests, car.Floor)
		slog.Debug("Arrived at destination", "car", car.ID, "floor", car.Floor)
	}
	car.updateDirection()
}

func (car *Car) updateDirection() {
	prev := car.Dir
	car.Dir = car.chooseDirection()
	if car.Dir != prev {
		slog.Debug("Direction changed", "car", car.ID, "floor", car.Floor, "from", prev, "to", car.Dir)
	}
}

// Algorithm for choosing direction of the car.
//  1. No destinations: stop.
//  2. Every destination above: up. Every destination below: down.
//  3. Lowest destination is the current floor: consume it and choose again.
//  4. Otherwise the car straddles its destinations and the straddle policy decides.
func (car *Car) chooseDirection() types.MotorDirection {
	for {
		lowest, highest, ok := car.bounds()
		switch {
		case !ok:
			return types.MD_Stop
		case lowest > car.Floor:
			return types.MD_Up
		case highest < car.Floor:
			return types.MD_Down
		case lowest == car.Floor:
			delete(car.Dests, lowest)
			slog.Debug("Destination consumed at current floor", "car", car.ID, "floor", lowest)
		default:
			if car.Straddle == NearestDestination && car.HasDestination(car.Floor) {
				delete(car.Dests, car.Floor)
				slog.Debug("Destination consumed at current floor", "car", car.ID, "floor", car.Floor)
				continue
			}
			return car.straddleDirection(lowest, highest)
		}
	}
}

func (car *Car) straddleDirection(lowest, highest int) types.MotorDirection {
	if car.Straddle != NearestDestination {
		return car.Dir
	}
	if highest-car.Floor <= car.Floor-lowest {
		return types.MD_Up
	}
	return types.MD_Down
}
