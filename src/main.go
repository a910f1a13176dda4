package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"elevsim/src/config"
	"elevsim/src/dispatcher"
	"elevsim/src/elev"
	"elevsim/src/scenario"
)

func main() {
	envFile := flag.String("env", config.DefaultEnvFile, "Path to .env configuration file")
	cars := flag.Int("cars", config.DefaultNumCars, "Number of elevator cars")
	ticks := flag.Int("ticks", config.DefaultTicks, "Number of ticks to simulate")
	period := flag.Duration("period", config.DefaultTickPeriod, "Auto tick period in interactive mode")
	straddle := flag.String("straddle", "keep", "Direction policy between destinations: keep or nearest")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error")
	logFile := flag.String("log-file", "", "Also write logs to this file")
	scenarioFile := flag.String("scenario", "", "YAML request script, defaults to the built-in demonstration")
	interactive := flag.Bool("interactive", false, "Drive the fleet from the keyboard")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Flags given on the command line take precedence over the env file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "cars":
			cfg.NumCars = *cars
		case "ticks":
			cfg.Ticks = *ticks
		case "period":
			cfg.TickPeriod = *period
		case "log-file":
			cfg.LogFile = *logFile
		case "straddle":
			if cfg.Straddle, err = elev.ParseStraddlePolicy(*straddle); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
		case "log-level":
			if cfg.LogLevel, err = config.ParseLogLevel(*logLevel); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(2)
			}
		}
	})

	// Log records share the terminal with the status output, which is in raw mode when interactive.
	var console io.Writer = os.Stderr
	if *interactive {
		console = rawWriter{w: os.Stderr}
	}
	if err := elev.InitLogger(console, cfg.LogLevel, cfg.LogFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	slog.Debug("Configuration loaded", "config", cfg)

	if *interactive {
		mgr := dispatcher.StartMgr(dispatcher.New(cfg.NumCars, cfg.Straddle))
		err := runInteractive(mgr, cfg.TickPeriod)
		mgr.Close()
		if err != nil {
			slog.Error("Interactive mode failed", "err", err)
			os.Exit(1)
		}
		return
	}

	s := scenario.Default()
	if *scenarioFile != "" {
		if s, err = scenario.Load(*scenarioFile); err != nil {
			slog.Error("Loading scenario failed", "err", err)
			os.Exit(1)
		}
	}
	if _, err := scenario.Run(s.WithDefaults(cfg.NumCars, cfg.Ticks), cfg.Straddle, os.Stdout); err != nil {
		slog.Error("Scenario failed", "err", err)
		os.Exit(1)
	}
}
