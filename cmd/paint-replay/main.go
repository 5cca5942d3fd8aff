// Command paint-replay drives a canvas without a window: it loads a puzzle,
// replays recorded or random touches, prints every cellPainted notification
// as a JSON line and writes the final frame as a PNG.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"time"

	"paint-canvas/internal/app"
	"paint-canvas/internal/canvas"
	"paint-canvas/internal/core"
	"paint-canvas/internal/render"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	var opts replayOptions
	flag.StringVar(&opts.script, "script", "", "YAML touch script to replay")
	flag.IntVar(&opts.gestures, "scribble", 0, "number of random gestures to generate instead of a script")
	flag.IntVar(&opts.samples, "samples", 12, "move samples per random gesture")
	flag.Int64Var(&opts.seed, "seed", 42, "seed for random gestures")
	flag.StringVar(&opts.out, "out", "", "write the final frame to this PNG file")
	flag.DurationVar(&opts.wait, "wait", 10*time.Second, "how long to wait for the background image")
	flag.Parse()

	if err := run(cfg, opts); err != nil {
		log.Fatal(err)
	}
}

type replayOptions struct {
	script   string
	gestures int
	samples  int
	seed     int64
	out      string
	wait     time.Duration
}

// run owns the session so it is closed on every return path.
func run(cfg *app.Config, opts replayOptions) error {
	logger := cfg.Logger()
	enc := json.NewEncoder(os.Stdout)
	session, err := app.NewSession(cfg, logger, func(ev core.CellPainted) {
		if err := enc.Encode(ev); err != nil {
			logger.WithError(err).Error("write event")
		}
	})
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	defer session.Close()

	ctx, cancel := context.WithTimeout(context.Background(), opts.wait)
	err = session.Canvas.AwaitImage(ctx)
	cancel()
	if err != nil {
		logger.WithError(err).WithField("uri", session.Canvas.ImageURI()).Warn("continuing without background")
	}

	events, err := loadEvents(opts.script, opts.gestures, opts.samples, opts.seed, session.Canvas.Viewport())
	if err != nil {
		return fmt.Errorf("touches: %w", err)
	}
	session.Canvas.Replay(events)

	filled, total := session.Canvas.Progress()
	logger.WithFields(logrus.Fields{
		"filled":  filled,
		"total":   total,
		"hits":    session.Score.Correct,
		"misses":  session.Score.Wrong,
		"samples": len(events),
	}).Info("replay finished")

	if opts.out == "" {
		return nil
	}
	frame := render.NewFrame(session.Canvas.Viewport())
	if err := session.Renderer.Render(frame, session.Canvas.Scene()); err != nil {
		logger.WithError(err).Warn("partial frame")
	}
	if err := writePNG(opts.out, frame); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

func loadEvents(script string, gestures, samples int, seed int64, size core.Size) ([]canvas.TouchEvent, error) {
	if script != "" {
		data, err := os.ReadFile(script)
		if err != nil {
			return nil, err
		}
		return canvas.DecodeScript(data)
	}
	if gestures > 0 {
		return canvas.Scribble(core.NewRNG(seed), size, gestures, samples), nil
	}
	return nil, errors.New("need -script or -scribble")
}

func writePNG(path string, frame *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, frame); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
