// cmd/landing/term.go
package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freedom-layer/internal/event"
	"freedom-layer/internal/frame"
	"freedom-layer/internal/input"
	"freedom-layer/internal/particle"
	"freedom-layer/internal/utils"
	"freedom-layer/internal/view"
	"freedom-layer/pkg/render"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var termFPS int

func runTerm(cmd *cobra.Command, args []string) error {
	if termFPS <= 0 {
		return fmt.Errorf("invalid --fps %d", termFPS)
	}
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()

	cols, rows := screen.Size()
	canvas, err := render.NewTermCanvas(cols, rows)
	if err != nil {
		screen.Fini()
		return err
	}

	bus := event.NewDispatcher()
	queue := frame.NewQueue()
	pointer := &input.PointerCell{}
	caps := &input.Capabilities{}
	field := particle.NewField(cfg.Field, utils.NewPRNGService(seed), caps, logger)
	fieldView := view.NewFieldView(field, canvas, queue, bus, pointer, caps, logger)
	if !fieldView.Mount() {
		screen.Fini()
		return fmt.Errorf("terminal %dx%d is too small", cols, rows)
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	var present frame.Callback
	present = func() {
		canvas.Present(screen, style)
		screen.Show()
		queue.Request(present)
	}
	queue.Request(present)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	inbox := make(chan func(), 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		pollTerm(ctx, screen, bus, cancel, inbox)
	}()

	logger.Debug("terminal field running", zap.Int("cols", cols), zap.Int("rows", rows))
	err = frame.Drive(ctx, queue, time.Second/time.Duration(termFPS), inbox)

	fieldView.Teardown()
	screen.Fini() // PollEvent вернёт nil, и горутина завершится
	<-done

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// pollTerm forwards terminal events to the loop goroutine through inbox.
// Positions are converted from cells to braille dots.
func pollTerm(ctx context.Context, screen tcell.Screen, bus *event.Dispatcher, quit context.CancelFunc, inbox chan<- func()) {
	dispatch := func(e event.Event) {
		select {
		case inbox <- func() { bus.Dispatch(e) }:
		case <-ctx.Done():
		}
	}

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEsc || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				quit()
			}
		case *tcell.EventMouse:
			x, y := ev.Position()
			dispatch(event.Event{Type: event.PointerMove, Data: input.Point{
				X: float64(x*render.DotsPerCellX) + render.DotsPerCellX/2,
				Y: float64(y*render.DotsPerCellY) + render.DotsPerCellY/2,
			}})
		case *tcell.EventResize:
			cols, rows := ev.Size()
			screen.Sync()
			dispatch(event.Event{Type: event.Resize, Data: input.Viewport{
				Width:  cols * render.DotsPerCellX,
				Height: rows * render.DotsPerCellY,
			}})
		case *tcell.EventFocus:
			if !ev.Focused {
				dispatch(event.Event{Type: event.PointerLeave})
			}
		}
	}
}
