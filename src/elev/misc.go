package elev

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"elevsim/src/types"
)

// InitLogger sets up global logging with compact time format and package/file:line sources.
// Records go to console, and additionally to logFile when it is not empty.
func InitLogger(console io.Writer, level slog.Level, logFile string) error {
	w := console
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		w = io.MultiWriter(console, file)
	}

	slog.SetDefault(slog.New(newLogHandler(w, level)))
	return nil
}

func newLogHandler(w io.Writer, level slog.Level) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			switch a.Key {
			case slog.TimeKey:
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format("15:04:05.000"))
				}
			case slog.SourceKey:
				if source, ok := a.Value.Any().(*slog.Source); ok {
					a.Value = slog.StringValue(fmt.Sprintf("%s:%d", sourcePath(source.File), source.Line))
				}
			}
			return a
		},
	})
}

// sourcePath shortens file to its path below the module's src directory, e.g.
// "dispatcher/dispatcher.go". Files outside src keep their parent directory.
func sourcePath(file string) string {
	file = path.Clean(strings.ReplaceAll(file, `\`, "/"))
	if i := strings.LastIndex(file, "/src/"); i >= 0 {
		return file[i+len("/src/"):]
	}
	dir, name := path.Split(file)
	if parent := path.Base(dir); parent != "." && parent != "/" && dir != "" {
		return parent + "/" + name
	}
	return name
}

func FormatStatus(status types.CarStatus) string {
	return fmt.Sprintf("Elevator %d at floor %d direction: %s", status.CarID, status.Floor, status.Dir)
}
