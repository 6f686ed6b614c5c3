// Command casteljau-replay replays a recorded editing session without a
// display and writes the final canvas to a PNG file.
//
// Usage:
//
//	casteljau-replay [-config casteljau.yaml] [-o out.png] [-v] session.yaml
//
// The configuration file is optional; when it doesn't exist, the defaults
// are used. See package honnef.co/go/casteljau/script for the session format.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"honnef.co/go/casteljau"
	"honnef.co/go/casteljau/config"
	"honnef.co/go/casteljau/raster"
	"honnef.co/go/casteljau/script"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "casteljau-replay:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("casteljau-replay", flag.ContinueOnError)
	cfgPath := fs.String("config", "casteljau.yaml", "configuration `file`")
	out := fs.String("o", "out.png", "output PNG `file`")
	verbose := fs.Bool("v", false, "log every step")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: casteljau-replay [flags] session.yaml")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("exactly one session file is required")
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	casteljau.SetLogger(log)

	cfg, err := config.LoadOptional(*cfgPath)
	if err != nil {
		return err
	}
	session, err := script.Load(fs.Arg(0))
	if err != nil {
		return err
	}

	canvas := raster.New(cfg.Canvas.Width, cfg.Canvas.Height, &raster.Options{
		Background: cfg.Background(),
		Axes:       cfg.Axes(),
		Radius:     cfg.ControlPointRadius,
	})
	model := new(casteljau.Model)
	view := casteljau.NewCoordinator(model, canvas)
	view.Palette = cfg.CurvePalette()
	view.Sampling = cfg.SampleRange()
	ctrl := casteljau.NewController(model, view)
	ctrl.Radius = cfg.ControlPointRadius

	// The canvas starts out decorated, like a freshly opened editor.
	view.Redraw()
	session.Replay(ctrl)
	for _, n := range canvas.Notices() {
		log.Warn("notice", slog.Any("err", n))
	}

	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := canvas.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", *out, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	log.Info("wrote canvas",
		slog.String("file", *out),
		slog.Int("steps", len(session.Steps)),
		slog.Int("control_points", model.Len()),
		slog.String("mode", ctrl.Mode().String()))
	return nil
}
