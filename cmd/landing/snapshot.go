// cmd/landing/snapshot.go
package main

import (
	"fmt"
	"time"

	"freedom-layer/internal/event"
	"freedom-layer/internal/frame"
	"freedom-layer/internal/input"
	"freedom-layer/internal/particle"
	"freedom-layer/internal/utils"
	"freedom-layer/internal/view"
	"freedom-layer/pkg/render"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	snapshotFrames    int
	snapshotWidth     int
	snapshotHeight    int
	snapshotPointer   string
	snapshotOut       string
	snapshotButtonOut string
)

const snapshotInterval = time.Millisecond

func runSnapshot(cmd *cobra.Command, args []string) error {
	width, height := snapshotWidth, snapshotHeight
	if width == 0 {
		width = cfg.Window.Width
	}
	if height == 0 {
		height = cfg.Window.Height
	}

	fieldCanvas, err := render.NewGGCanvas(width, height)
	if err != nil {
		return err
	}
	defer fieldCanvas.Close()
	buttonCanvas, err := render.NewGGCanvas(cfg.Button.CanvasSize, cfg.Button.CanvasSize)
	if err != nil {
		return err
	}
	defer buttonCanvas.Close()

	// Каждая анимация в своём цикле со своим генератором
	bus := event.NewDispatcher()
	pointer := &input.PointerCell{}
	caps := &input.Capabilities{}
	fieldQueue := frame.NewQueue()
	field := particle.NewField(cfg.Field, utils.NewPRNGService(seed), caps, logger)
	fieldView := view.NewFieldView(field, fieldCanvas, fieldQueue, bus, pointer, caps, logger)
	if !fieldView.Mount() {
		return fmt.Errorf("field did not mount at %dx%d", width, height)
	}
	defer fieldView.Teardown()

	if snapshotPointer != "" {
		p, err := input.ParsePoint(snapshotPointer)
		if err != nil {
			return err
		}
		bus.Dispatch(event.Event{Type: event.PointerMove, Data: p})
	}

	buttonSeed := seed
	if buttonSeed != 0 {
		buttonSeed++
	}
	buttonQueue := frame.NewQueue()
	emitter := particle.NewEmitter(cfg.Button, utils.NewPRNGService(buttonSeed))
	buttonView := view.NewButtonView(emitter, buttonCanvas, buttonQueue, logger)
	if !buttonView.Mount() {
		return fmt.Errorf("button did not mount")
	}
	defer buttonView.Teardown()

	start := time.Now()
	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		return frame.DriveFrames(ctx, fieldQueue, snapshotFrames, snapshotInterval)
	})
	g.Go(func() error {
		return frame.DriveFrames(ctx, buttonQueue, snapshotFrames, snapshotInterval)
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("snapshot interrupted: %w", err)
	}

	if err := fieldCanvas.SavePNG(snapshotOut); err != nil {
		return err
	}
	if err := buttonCanvas.SavePNG(snapshotButtonOut); err != nil {
		return err
	}
	logger.Info("snapshot written",
		zap.Int("frames", snapshotFrames),
		zap.Int("particles", field.Len()),
		zap.Int("sparks", emitter.Len()),
		zap.String("field", snapshotOut),
		zap.String("button", snapshotButtonOut),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}
