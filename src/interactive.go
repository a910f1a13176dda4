package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"elevsim/src/dispatcher"
	"elevsim/src/timer"
	"elevsim/src/types"
	"elevsim/src/utils"

	"github.com/eiannone/keyboard"
)

const interactiveHelp = `Keys: t/space tick | u/d hall direction | 0-9 hall call | c<car><floor> cab call | p auto tick on/off | s status | q quit
`

// runInteractive reads single key presses until q, Esc or Ctrl-C.
// The keyboard and the auto tick timer both drive the fleet through mgr.
// The auto tick goroutines have exited when it returns, so mgr can be closed afterwards.
func runInteractive(mgr *dispatcher.Mgr, period time.Duration) error {
	if err := keyboard.Open(); err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	defer keyboard.Close()

	s := newSession(mgr, rawWriter{w: os.Stdout}, period)
	defer s.ticker.Stop()

	io.WriteString(s.console, interactiveHelp)
	for {
		char, key, err := keyboard.GetKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		if quit := s.handleKey(char, key); quit {
			return nil
		}
	}
}

type session struct {
	mgr       *dispatcher.Mgr
	console   io.Writer
	ticker    *autoTicker
	period    time.Duration
	step      int
	hallDir   types.HallType
	cabDigits []int
}

func newSession(mgr *dispatcher.Mgr, console io.Writer, period time.Duration) *session {
	s := &session{mgr: mgr, console: console, period: period, hallDir: types.HallUp}
	s.ticker = startAutoTick(period, s.tick)
	return s
}

// tick steps the fleet and prints the status. It runs on the key loop and on the auto tick goroutine.
func (s *session) tick() {
	var out string
	if err := s.mgr.Execute(func(d *dispatcher.Dispatcher) {
		d.Tick()
		out = fmt.Sprintf("Time step %d\n", s.step) + utils.FormatStatus(d.Status())
		s.step++
	}); err != nil {
		return
	}
	io.WriteString(s.console, out)
}

// handleKey applies one key press and reports whether the session should end.
func (s *session) handleKey(char rune, key keyboard.Key) (quit bool) {
	switch {
	case key == keyboard.KeyCtrlC || key == keyboard.KeyEsc || char == 'q':
		return true
	case s.cabDigits != nil:
		if char < '0' || char > '9' {
			io.WriteString(s.console, "cab call cancelled\n")
			s.cabDigits = nil
			return false
		}
		s.cabDigits = append(s.cabDigits, int(char-'0'))
		if len(s.cabDigits) == 2 {
			// Dropped requests are logged by the dispatcher.
			_ = s.mgr.RequestFloor(types.CabOrder{CarID: s.cabDigits[0], Floor: s.cabDigits[1]})
			s.cabDigits = nil
		}
	case key == keyboard.KeySpace || char == 't':
		s.tick()
	case char == 'u' || char == 'd':
		s.hallDir, _ = types.ParseHallType(string(char))
		fmt.Fprintf(s.console, "hall calls go %s\n", s.hallDir)
	case char >= '0' && char <= '9':
		_, _ = s.mgr.RequestElevator(types.HallOrder{Floor: int(char - '0'), Button: s.hallDir})
	case char == 'c':
		s.cabDigits = []int{}
	case char == 'p':
		s.ticker.Set(!s.ticker.Enabled())
		slog.Info("Auto tick toggled", "enabled", s.ticker.Enabled(), "period", s.period)
	case char == 's':
		io.WriteString(s.console, utils.FormatStatus(s.mgr.Status()))
	default:
		io.WriteString(s.console, interactiveHelp)
	}
	return false
}

// autoTicker calls tick every period while enabled.
type autoTicker struct {
	actionCh chan timer.TimerAction
	done     chan struct{}
	wg       sync.WaitGroup
	enabled  bool
	stopOnce sync.Once
}

func startAutoTick(period time.Duration, tick func()) *autoTicker {
	a := &autoTicker{
		actionCh: make(chan timer.TimerAction, 1),
		done:     make(chan struct{}),
	}
	timeoutCh := make(chan bool)

	a.wg.Add(2)
	go func() {
		defer a.wg.Done()
		timer.Timer(period, timeoutCh, a.actionCh)
	}()
	go func() {
		defer a.wg.Done()
		for {
			select {
			case <-timeoutCh:
				tick()
			case <-a.done:
				return
			}
		}
	}()
	return a
}

func (a *autoTicker) Enabled() bool {
	return a.enabled
}

// Set starts or stops the timer. It must not be called after Stop.
func (a *autoTicker) Set(enabled bool) {
	a.enabled = enabled
	if enabled {
		a.actionCh <- timer.Start
	} else {
		a.actionCh <- timer.Stop
	}
}

// Stop halts the timer and waits until neither goroutine can call tick again.
// A tick that is already running is finished first.
func (a *autoTicker) Stop() {
	a.stopOnce.Do(func() {
		a.actionCh <- timer.Stop
		close(a.done)
		close(a.actionCh)
		a.wg.Wait()
	})
}

// rawWriter turns "\n" into "\r\n" for a terminal in raw mode.
type rawWriter struct {
	w io.Writer
}

func (r rawWriter) Write(p []byte) (int, error) {
	if _, err := r.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}
