package types

import (
	"fmt"
	"strings"
)

type MotorDirection int

const (
	MD_Up   MotorDirection = 1
	MD_Down MotorDirection = -1
	MD_Stop MotorDirection = 0
)

func (d MotorDirection) String() string {
	switch d {
	case MD_Up:
		return "UP"
	case MD_Down:
		return "DOWN"
	default:
		return "IDLE"
	}
}

type HallType int

const (
	HallUp HallType = iota
	HallDown
)

func (h HallType) String() string {
	if h == HallDown {
		return "DOWN"
	}
	return "UP"
}

// ParseHallType accepts "up"/"down" or "u"/"d" in any case.
func ParseHallType(s string) (HallType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return HallUp, nil
	case "down", "d":
		return HallDown, nil
	}
	return HallUp, fmt.Errorf("unknown hall direction %q", s)
}

// HallOrder is a call made from a floor. Button is the requested travel direction.
type HallOrder struct {
	Floor  int
	Button HallType
}

// CabOrder is a call made from inside a car.
type CabOrder struct {
	CarID int
	Floor int
}

type CarStatus struct {
	CarID int
	Floor int
	Dir   MotorDirection
}
