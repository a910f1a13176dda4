package utils

import (
	"fmt"
	"io"
	"strings"

	"elevsim/src/elev"
	"elevsim/src/types"
)

// FormatStatus renders a status report: a header, one line per car and a trailing blank line.
func FormatStatus(statuses []types.CarStatus) string {
	var b strings.Builder
	b.WriteString("=== Elevator System Status ===\n")
	for _, status := range statuses {
		b.WriteString(elev.FormatStatus(status))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	return b.String()
}

// PrintStatus writes the report in a single call so concurrent reports do not interleave.
func PrintStatus(w io.Writer, statuses []types.CarStatus) error {
	_, err := io.WriteString(w, FormatStatus(statuses))
	return err
}

func PrintTimeStep(w io.Writer, step int) error {
	_, err := fmt.Fprintf(w, "Time step %d\n", step)
	return err
}
