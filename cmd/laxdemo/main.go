// Command laxdemo draws a demonstration scene with the displayer
// package.
//
// The raster backend writes a PNG and the recording backend a listing of
// the drawing commands. The x11 backend draws into a new window.
//
// Settings come from LAXDEMO_* environment variables and can be
// overridden by flags:
//
//	LAXDEMO_WIDTH=400 laxdemo -rotate 30 -output scene.png
//	laxdemo -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jezek/xgb/xproto"

	"github.com/laxkit/displayer"
	"github.com/laxkit/displayer/backend"
	"github.com/laxkit/displayer/backend/raster"
	"github.com/laxkit/displayer/backend/x11"
	"github.com/laxkit/displayer/pan"
	"github.com/laxkit/displayer/recording"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "laxdemo:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := Load(args, stderr)
	if err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	displayer.SetLogger(log)

	if cfg.List {
		_, err := fmt.Fprintln(stdout, strings.Join(backend.Available(), "\n"))
		return err
	}

	pc := pan.New()
	d, err := backend.Open(cfg.Backend,
		displayer.WithScreen(cfg.Width, cfg.Height),
		displayer.WithSpace(-space, space, -space, space),
		displayer.WithNoShear(),
		displayer.WithPanController(pc, "laxdemo"),
	)
	if err != nil {
		return err
	}
	defer d.Release()

	setupView(d, cfg)
	if err := drawScene(d, cfg); err != nil {
		return err
	}
	if err := d.Flush(); err != nil {
		return err
	}
	if err := d.Err(); err != nil {
		return fmt.Errorf("drawing: %w", err)
	}

	if err := save(d.Backend(), cfg.Output); err != nil {
		return err
	}
	st := pc.State()
	log.Info("scene drawn", "backend", cfg.Backend, "width", cfg.Width, "height", cfg.Height, "output", cfg.Output)
	log.Debug("pan state", "whole_x", st.Whole[0], "whole_y", st.Whole[1], "current_x", st.Current[0], "current_y", st.Current[1])

	if xb, ok := d.Backend().(*x11.Backend); ok && xb.Window() != nil {
		return serveWindow(d, cfg, xb.Window())
	}
	return nil
}

// serveWindow redraws the scene whenever the window is exposed, until
// the window or the connection goes away.
func serveWindow(d *displayer.Displayer, cfg *Config, w *x11.Window) error {
	for {
		ev, xerr := w.Conn.WaitForEvent()
		switch {
		case ev == nil && xerr == nil:
			return nil
		case xerr != nil:
			return fmt.Errorf("x11: %v", xerr)
		}
		switch ev := ev.(type) {
		case xproto.ExposeEvent:
			if ev.Count > 0 {
				continue
			}
			if err := drawScene(d, cfg); err != nil {
				return err
			}
			if err := d.Flush(); err != nil {
				return err
			}
		case xproto.DestroyNotifyEvent:
			return nil
		}
	}
}

// save writes what backends that produce files have drawn.
func save(b displayer.Backend, name string) (err error) {
	var write func(io.Writer) error
	switch b := b.(type) {
	case *raster.Backend:
		write = b.WritePNG
	case *recording.Recorder:
		write = b.Dump
	default:
		return nil
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}
