// State types are defined in elev package to make method receivers possible in fsm.go.
package elev

import (
	"fmt"
	"strings"

	"elevsim/src/types"
)

// Car represents the state of one elevator car.
type Car struct {
	ID       int
	Floor    int
	Dir      types.MotorDirection
	Dests    map[int]struct{} // Floors the car still has to visit
	Straddle StraddlePolicy
}

// StraddlePolicy decides the direction when the car sits strictly between its
// lowest and highest destination without standing on the lowest one.
type StraddlePolicy int

const (
	// KeepDirection leaves the previous direction untouched.
	KeepDirection StraddlePolicy = iota
	// NearestDestination heads for the closer of the lowest and highest destination, UP on ties.
	// A destination on the current floor is consumed first.
	NearestDestination
)

func (p StraddlePolicy) String() string {
	if p == NearestDestination {
		return "nearest"
	}
	return "keep"
}

func ParseStraddlePolicy(s string) (StraddlePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "keep":
		return KeepDirection, nil
	case "nearest":
		return NearestDestination, nil
	}
	return KeepDirection, fmt.Errorf("unknown straddle policy %q", s)
}
