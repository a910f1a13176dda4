package dispatcher

import (
	"elevsim/src/elev"
)

// findAssignee picks the car closest to floor.
//   - idle cars are preferred, busy cars are only considered when none is idle
//   - equal distances go to the lowest car id
//   - returns -1 for an empty fleet
func findAssignee(cars []*elev.Car, floor int) int {
	if assignee := closestCar(cars, floor, (*elev.Car).IsIdle); assignee != -1 {
		return assignee
	}
	return closestCar(cars, floor, func(*elev.Car) bool { return true })
}

func closestCar(cars []*elev.Car, floor int, eligible func(*elev.Car) bool) int {
	lowestCost := 0
	assignee := -1

	for _, car := range cars {
		if !eligible(car) {
			continue
		}
		if cost := car.DistanceFrom(floor); assignee == -1 || cost < lowestCost {
			lowestCost = cost
			assignee = car.ID
		}
	}
	return assignee
}
