package elev

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"elevsim/src/types"
)

func TestSourcePath(t *testing.T) {
	tests := []struct {
		file string
		want string
	}{
		{"/home/dev/elevsim/src/dispatcher/dispatcher.go", "dispatcher/dispatcher.go"},
		{"/home/dev/elevsim/src/main.go", "main.go"},
		{"elevsim/src/timer/timer.go", "timer/timer.go"},
		{`C:\dev\elevsim\src\elev\fsm.go`, "elev/fsm.go"},
		{"/usr/lib/go/log/slog/logger.go", "slog/logger.go"},
		{"main.go", "main.go"},
	}
	for _, tt := range tests {
		if got := sourcePath(tt.file); got != tt.want {
			t.Errorf("sourcePath(%q) = %q, want %q", tt.file, got, tt.want)
		}
	}
}

func TestLogHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	slog.New(newLogHandler(&buf, slog.LevelInfo)).Info("Assigned elevator", "car", 1)
	slog.New(newLogHandler(&buf, slog.LevelInfo)).Debug("hidden")

	out := buf.String()
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("expected a single record, got %q", out)
	}
	if !strings.Contains(out, "source=elev/misc_test.go:") {
		t.Errorf("source not shortened: %q", out)
	}
	if !strings.Contains(out, `msg="Assigned elevator" car=1`) {
		t.Errorf("unexpected record: %q", out)
	}
}

func TestFormatCarStatus(t *testing.T) {
	got := FormatStatus(types.CarStatus{CarID: 2, Floor: -1, Dir: types.MD_Down})
	if want := "Elevator 2 at floor -1 direction: DOWN"; got != want {
		t.Errorf("FormatStatus = %q, want %q", got, want)
	}
}
