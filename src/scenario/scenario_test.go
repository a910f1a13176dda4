package scenario

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"elevsim/src/elev"
	"elevsim/src/types"
)

func report(lines ...string) string {
	return "=== Elevator System Status ===\n" + strings.Join(lines, "\n") + "\n\n"
}

func TestRunDefaultScenario(t *testing.T) {
	var out strings.Builder
	d, err := Run(Default().WithDefaults(2, 10), elev.KeepDirection, &out)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	steps := [][2]string{
		{"Elevator 0 at floor 1 direction: UP", "Elevator 1 at floor 1 direction: UP"},
		{"Elevator 0 at floor 2 direction: UP", "Elevator 1 at floor 2 direction: UP"},
		{"Elevator 0 at floor 3 direction: IDLE", "Elevator 1 at floor 3 direction: UP"},
		{"Elevator 0 at floor 4 direction: UP", "Elevator 1 at floor 4 direction: UP"},
		{"Elevator 0 at floor 5 direction: UP", "Elevator 1 at floor 5 direction: IDLE"},
		{"Elevator 0 at floor 6 direction: UP", "Elevator 1 at floor 5 direction: IDLE"},
		{"Elevator 0 at floor 7 direction: IDLE", "Elevator 1 at floor 5 direction: IDLE"},
		{"Elevator 0 at floor 7 direction: IDLE", "Elevator 1 at floor 5 direction: IDLE"},
		{"Elevator 0 at floor 7 direction: IDLE", "Elevator 1 at floor 5 direction: IDLE"},
		{"Elevator 0 at floor 7 direction: IDLE", "Elevator 1 at floor 5 direction: IDLE"},
	}
	var want strings.Builder
	for i, lines := range steps {
		fmt.Fprintf(&want, "Time step %d\n", i)
		want.WriteString(report(lines[0], lines[1]))
	}
	if out.String() != want.String() {
		t.Errorf("trace mismatch\ngot:\n%s\nwant:\n%s", out.String(), want.String())
	}

	for _, status := range d.Status() {
		if status.Dir != types.MD_Stop {
			t.Errorf("car %d still moving at end of scenario", status.CarID)
		}
	}
}

func TestRunSkipsRejectedRequests(t *testing.T) {
	cars, ticks := 1, 2
	s := &Scenario{
		Cars:  &cars,
		Ticks: &ticks,
		Requests: []Request{
			{After: 1, Cab: &CabCall{Car: 5, Floor: 2}},
			{Cab: &CabCall{Car: 0, Floor: -1}},
		},
	}

	d, err := Run(s, elev.KeepDirection, new(strings.Builder))
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	status, err := d.CarStatus(0)
	if err != nil {
		t.Fatal(err)
	}
	if status.Floor != -1 || status.Dir != types.MD_Stop {
		t.Errorf("status = %+v, want idle at -1", status)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	content := `cars: 3
requests:
  - hall: {floor: 4, dir: down}
  - after: 2
    cab: {car: 2, floor: -1}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	s = s.WithDefaults(2, 5)
	if *s.Cars != 3 || *s.Ticks != 5 {
		t.Errorf("cars/ticks = %d/%d, want 3/5", *s.Cars, *s.Ticks)
	}
	if len(s.Requests) != 2 {
		t.Fatalf("requests = %+v", s.Requests)
	}
	if h := s.Requests[0].Hall; h == nil || h.Floor != 4 || h.Dir != "down" {
		t.Errorf("hall request = %+v", h)
	}
	if c := s.Requests[1].Cab; c == nil || s.Requests[1].After != 2 || c.Car != 2 || c.Floor != -1 {
		t.Errorf("cab request = %+v", s.Requests[1])
	}
}

func TestValidate(t *testing.T) {
	neg, two := -1, 2
	tests := []struct {
		name string
		s    Scenario
	}{
		{"negative cars", Scenario{Cars: &neg}},
		{"negative ticks", Scenario{Ticks: &neg}},
		{"no call", Scenario{Requests: []Request{{After: 0}}}},
		{"both calls", Scenario{Requests: []Request{{Hall: &HallCall{Dir: "up"}, Cab: &CabCall{}}}}},
		{"negative after", Scenario{Requests: []Request{{After: -1, Cab: &CabCall{}}}}},
		{"after beyond ticks", Scenario{Ticks: &two, Requests: []Request{{After: 3, Cab: &CabCall{}}}}},
		{"bad direction", Scenario{Requests: []Request{{Hall: &HallCall{Dir: "left"}}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.s.Validate(); err == nil {
				t.Errorf("Validate succeeded, want error")
			}
		})
	}

	if err := Default().Validate(); err != nil {
		t.Errorf("default scenario invalid: %v", err)
	}
}
