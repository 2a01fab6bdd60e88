//go:build !tinygo

// Command vkshot renders every keypad into a PNG file and checks the keypad tables.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"vkpad/hal"
	"vkpad/internal/config"
	"vkpad/sdr/gfx"
	"vkpad/sdr/keypad"
	"vkpad/sdr/radio"
	"vkpad/sdr/spectrum"
)

var families = []keypad.Family{
	keypad.FamilyDSP,
	keypad.FamilyBandSelect,
	keypad.FamilyFreqEntry,
}

var resolutions = []keypad.Resolution{
	keypad.Res320x240,
	keypad.Res480x320,
}

func main() {
	var (
		outDir string
		res    string
		check  bool
	)
	flag.StringVar(&outDir, "out", ".", "Output directory.")
	flag.StringVar(&res, "res", "", "Only this resolution (320x240 or 480x320).")
	flag.BoolVar(&check, "check", false, "Validate the keypad tables and exit.")
	flag.Parse()

	if check {
		if err := checkTables(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	list := resolutions
	if res != "" {
		r, err := config.ParseResolution(res)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		list = []keypad.Resolution{r}
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	for _, r := range list {
		for _, f := range families {
			path, err := shoot(outDir, f, r)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			if path != "" {
				fmt.Println(path)
			}
		}
	}
}

// checkTables validates every table and that its background fits the full-screen area.
func checkTables() error {
	var errs []error
	for _, r := range resolutions {
		full := spectrum.NewLayout(r).FullArea()
		for _, f := range families {
			d := keypad.Lookup(f, r)
			if d == nil {
				errs = append(errs, fmt.Errorf("%s %s: missing", f, r))
				continue
			}
			if err := keypad.Validate(d); err != nil {
				errs = append(errs, err)
			}
			bg := keypad.BackgroundRegion(d, full)
			if bg.X < full.X || bg.Y < full.Y || bg.X+bg.W > full.X+full.W || bg.Y+bg.H > full.Y+full.H {
				errs = append(errs, fmt.Errorf("keypad %s: background %+v leaves %+v", d.Name, bg, full))
			}
		}
	}
	return errors.Join(errs...)
}

func shoot(dir string, f keypad.Family, r keypad.Resolution) (string, error) {
	d := keypad.Lookup(f, r)
	if d == nil {
		return "", nil
	}

	layout := spectrum.NewLayout(r)
	screen := layout.Screen()
	fb := hal.NewFramebuffer(int(screen.W), int(screen.H))
	disp := gfx.New(fb)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	rd := radio.New(radio.Config{StartBand: radio.Band40m, DSPModeMask: 0x3E}, log)
	view := spectrum.New(disp, layout, rd)
	status := spectrum.NewStatus(disp, layout, rd)
	ctrl := keypad.New(keypad.Env{
		Painter:  disp,
		Layout:   layout,
		Spectrum: view,
		Radio:    rd,
		Log:      log,
	}, r)

	view.Init()
	status.Update()
	ctrl.Toggle(f)

	path := filepath.Join(dir, d.Name+".png")
	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := png.Encode(out, fb.Image(nil)); err != nil {
		_ = out.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	return path, out.Close()
}
