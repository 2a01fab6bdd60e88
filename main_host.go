//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"vkpad/app"
	"vkpad/hal"
	"vkpad/internal/config"
)

func main() {
	var (
		configPath string
		run        hal.HeadlessConfig
		res        string
		logLevel   string
	)
	flag.StringVar(&configPath, "config", "", "Settings file (TOML).")
	flag.BoolVar(&run.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&run.Hz, "hz", 0, "Tick rate (0 = from settings).")
	flag.Uint64Var(&run.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&res, "res", "", "Panel resolution: 320x240 or 480x320.")
	flag.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error.")
	flag.Parse()

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	if res != "" {
		cfg.Resolution = res
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if run.Hz > 0 {
		cfg.Hz = run.Hz
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	run.Hz = cfg.Hz
	run.Script = cfg.Script()

	newApp := func(h hal.HAL) func() error { return app.New(h, cfg) }

	if run.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, cfg.HALOptions(), newApp, run); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(cfg.HALOptions(), newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
