// Package scenario drives a dispatcher from a scripted list of requests and prints the trace.
package scenario

import (
	"errors"
	"fmt"
	"os"

	"elevsim/src/types"

	"gopkg.in/yaml.v3"
)

// Scenario is a request script. Cars and Ticks are optional and fall back to the configuration.
type Scenario struct {
	Cars     *int      `yaml:"cars,omitempty"`
	Ticks    *int      `yaml:"ticks,omitempty"`
	Requests []Request `yaml:"requests"`
}

// Request is applied once After ticks have completed. Exactly one of Hall and Cab is set.
type Request struct {
	After int       `yaml:"after"`
	Hall  *HallCall `yaml:"hall,omitempty"`
	Cab   *CabCall  `yaml:"cab,omitempty"`
}

type HallCall struct {
	Floor int    `yaml:"floor"`
	Dir   string `yaml:"dir"`
}

type CabCall struct {
	Car   int `yaml:"car"`
	Floor int `yaml:"floor"`
}

// Default reproduces the classic demonstration: three hall calls, then a cab call
// to car 0 after three ticks. Usually run with two cars and ten ticks.
func Default() *Scenario {
	return &Scenario{
		Requests: []Request{
			{Hall: &HallCall{Floor: 3, Dir: "up"}},
			{Hall: &HallCall{Floor: 5, Dir: "down"}},
			{Hall: &HallCall{Floor: 0, Dir: "up"}},
			{After: 3, Cab: &CabCall{Car: 0, Floor: 7}},
		},
	}
}

func Load(path string) (*Scenario, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scenario: %w", err)
	}
	defer file.Close()

	s := new(Scenario)
	if err := yaml.NewDecoder(file).Decode(s); err != nil {
		return nil, fmt.Errorf("decode scenario %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// WithDefaults fills Cars and Ticks when the script leaves them out.
func (s *Scenario) WithDefaults(cars, ticks int) *Scenario {
	filled := *s
	if filled.Cars == nil {
		filled.Cars = &cars
	}
	if filled.Ticks == nil {
		filled.Ticks = &ticks
	}
	return &filled
}

func (s *Scenario) Validate() error {
	if s.Cars != nil && *s.Cars < 0 {
		return fmt.Errorf("cars must not be negative, got %d", *s.Cars)
	}
	if s.Ticks != nil && *s.Ticks < 0 {
		return fmt.Errorf("ticks must not be negative, got %d", *s.Ticks)
	}

	var errs []error
	for i, req := range s.Requests {
		switch {
		case (req.Hall == nil) == (req.Cab == nil):
			errs = append(errs, fmt.Errorf("request %d: exactly one of hall and cab must be set", i))
		case req.After < 0:
			errs = append(errs, fmt.Errorf("request %d: after must not be negative", i))
		case s.Ticks != nil && req.After > *s.Ticks:
			errs = append(errs, fmt.Errorf("request %d: after %d exceeds %d ticks", i, req.After, *s.Ticks))
		case req.Hall != nil:
			if _, err := types.ParseHallType(req.Hall.Dir); err != nil {
				errs = append(errs, fmt.Errorf("request %d: %w", i, err))
			}
		}
	}
	return errors.Join(errs...)
}
