package dispatcher

import (
	"fmt"
	"log/slog"

	"elevsim/src/elev"
	"elevsim/src/types"
)

// New creates a fleet of numCars idle cars with ids 0..numCars-1.
func New(numCars int, straddle elev.StraddlePolicy) *Dispatcher {
	d := &Dispatcher{cars: make([]*elev.Car, 0, max(numCars, 0))}
	for id := 0; id < numCars; id++ {
		d.cars = append(d.cars, elev.NewCar(id, straddle))
	}
	slog.Debug("Dispatcher initialized", "cars", len(d.cars))
	return d
}

func (d *Dispatcher) NumCars() int {
	return len(d.cars)
}

// RequestElevator assigns a hall order to the closest car and returns its id.
// The requested direction is logged but does not affect the choice.
func (d *Dispatcher) RequestElevator(order types.HallOrder) (int, error) {
	assignee := findAssignee(d.cars, order.Floor)
	if assignee == -1 {
		slog.Warn("Hall order dropped", "floor", order.Floor, "button", order.Button, "cars", len(d.cars))
		return -1, fmt.Errorf("hall order at floor %d: %w", order.Floor, ErrNoCarAvailable)
	}

	d.cars[assignee].AddDestination(order.Floor)
	slog.Info("Assigned elevator", "car", assignee, "floor", order.Floor, "button", order.Button)
	return assignee, nil
}

// RequestFloor forwards a cab order to the named car. Unknown cars leave the fleet untouched.
func (d *Dispatcher) RequestFloor(order types.CabOrder) error {
	if order.CarID < 0 || order.CarID >= len(d.cars) {
		slog.Warn("Cab order dropped", "car", order.CarID, "floor", order.Floor, "cars", len(d.cars))
		return fmt.Errorf("cab order for car %d of %d: %w", order.CarID, len(d.cars), ErrInvalidCar)
	}

	d.cars[order.CarID].AddDestination(order.Floor)
	slog.Debug("Cab order accepted", "car", order.CarID, "floor", order.Floor)
	return nil
}

// Tick steps every car once, in ascending id order.
func (d *Dispatcher) Tick() {
	for _, car := range d.cars {
		car.Step()
	}
}

// Status returns the status of every car in ascending id order.
func (d *Dispatcher) Status() []types.CarStatus {
	statuses := make([]types.CarStatus, 0, len(d.cars))
	for _, car := range d.cars {
		statuses = append(statuses, car.Status())
	}
	return statuses
}

func (d *Dispatcher) CarStatus(carID int) (types.CarStatus, error) {
	if carID < 0 || carID >= len(d.cars) {
		return types.CarStatus{}, fmt.Errorf("status of car %d of %d: %w", carID, len(d.cars), ErrInvalidCar)
	}
	return d.cars[carID].Status(), nil
}

// Snapshot returns deep copies of all cars. Mutating them does not affect the fleet.
func (d *Dispatcher) Snapshot() []*elev.Car {
	snapshot := make([]*elev.Car, 0, len(d.cars))
	for _, car := range d.cars {
		snapshot = append(snapshot, car.Clone())
	}
	return snapshot
}
