//go:build !tinygo

// Command levelsim runs the bubble level on the host against simulated hardware: scripted and headless, in a
// terminal, or in a window.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/ajanata/tiltlevel"
	"github.com/ajanata/tiltlevel/internal/config"
	"github.com/ajanata/tiltlevel/internal/matrix"
	"github.com/ajanata/tiltlevel/internal/sim"
	"github.com/ajanata/tiltlevel/internal/window"
)

func main() {
	var (
		cfgPath  string
		frontend string
		holdMS   int
		mode     string
		ticks    uint64
		snapshot string
		verbose  bool
		noSplash bool
	)
	flag.StringVar(&cfgPath, "config", "", "YAML config file.")
	flag.StringVar(&frontend, "frontend", "", "headless, terminal or window.")
	flag.IntVar(&holdMS, "hold", 0, "Frame hold time in milliseconds.")
	flag.StringVar(&mode, "mode", "", "Initial precision mode: coarse or fine.")
	flag.Uint64Var(&ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run the script once).")
	flag.StringVar(&snapshot, "snapshot", "", "Write the final headless frame to this BMP file.")
	flag.BoolVar(&verbose, "v", false, "Log every sample.")
	flag.BoolVar(&noSplash, "no-splash", false, "Skip the boot animation.")
	flag.Parse()

	cfg := config.Default()
	if cfgPath != "" {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	// flags override the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "frontend":
			cfg.Frontend = config.Frontend(frontend)
		case "hold":
			cfg.HoldMS = holdMS
		case "mode":
			cfg.InitialMode = mode
		case "ticks":
			cfg.Ticks = ticks
		case "snapshot":
			cfg.Snapshot = snapshot
		case "v":
			cfg.Verbose = verbose
		case "no-splash":
			cfg.Splash = !noSplash
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil && !interrupted(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// interrupted reports whether err only says the run was stopped with ^C.
func interrupted(err error) bool {
	return errors.Is(err, context.Canceled)
}

func run(ctx context.Context, cfg *config.Config) error {
	opts := tiltlevel.Options{
		Hold:   cfg.Hold(),
		Splash: cfg.Splash,
	}
	if cfg.InitialMode == "fine" {
		opts.InitialMode = tiltlevel.ModeFine
	}

	switch cfg.Frontend {
	case config.FrontendHeadless:
		return runHeadless(ctx, cfg, opts)
	case config.FrontendTerminal:
		return runTerminal(ctx, cfg, opts)
	case config.FrontendWindow:
		return runWindow(ctx, cfg, opts)
	default:
		return fmt.Errorf("unknown frontend %q", cfg.Frontend)
	}
}

func runHeadless(ctx context.Context, cfg *config.Config, opts tiltlevel.Options) error {
	log := sim.NewLogger(os.Stderr, cfg.Verbose)
	opts.Logger = log
	// scripted runs don't need to wait out the hold time
	rec := sim.NewRecorder(false)
	script := sim.NewScript(cfg.Script)

	l, err := tiltlevel.New(sim.NewDriver(script, rec), opts)
	if err != nil {
		return err
	}
	if err := l.Init(); err != nil {
		return err
	}

	ticks, err := sim.RunHeadless(ctx, l, script, cfg.Ticks, log)
	if err != nil {
		return err
	}
	last := rec.Last()
	log.Infof("ran %d ticks, %s mode, final frame:\n%s", len(ticks), l.Mode(), last.String())

	if cfg.Snapshot != "" {
		return sim.WriteSnapshot(cfg.Snapshot, last)
	}
	return nil
}

func runTerminal(ctx context.Context, cfg *config.Config, opts tiltlevel.Options) error {
	board := sim.NewBoard()
	term, err := sim.NewTerminal(board)
	if err != nil {
		return err
	}
	defer term.Close()

	disp, err := matrix.New(term, matrix.Config{})
	if err != nil {
		return err
	}
	opts.Logger = sim.NewLogger(term, cfg.Verbose)

	l, err := tiltlevel.New(sim.NewDriver(board, disp), opts)
	if err != nil {
		return err
	}
	return term.Run(ctx, func(ctx context.Context) error {
		if err := l.Init(); err != nil {
			return err
		}
		return l.Run(ctx)
	})
}

func runWindow(ctx context.Context, cfg *config.Config, opts tiltlevel.Options) error {
	board := sim.NewBoard()
	win := window.New(board)

	disp, err := matrix.New(win.Matrix(), matrix.Config{Scale: window.WindowCell})
	if err != nil {
		return err
	}
	opts.Logger = sim.NewLogger(os.Stderr, cfg.Verbose)
	opts.Status = win.Status()

	l, err := tiltlevel.New(sim.NewDriver(board, disp), opts)
	if err != nil {
		return err
	}
	return win.Run(ctx, func(ctx context.Context) error {
		if err := l.Init(); err != nil {
			return err
		}
		return l.Run(ctx)
	})
}
