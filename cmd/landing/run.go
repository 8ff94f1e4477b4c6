// cmd/landing/run.go
package main

import (
	"context"
	"fmt"
	"time"

	"freedom-layer/internal/app"
	"freedom-layer/internal/config"
	"freedom-layer/internal/site"
	"freedom-layer/internal/state"
	"freedom-layer/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// AppGame adapts the state machine to ebiten.Game.
type AppGame struct {
	stateMachine   *state.StateMachine
	page           *app.Landing
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

// Layout follows the window: the page is as large as the viewport.
func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.page.SetViewport(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func runWindow(cmd *cobra.Command, args []string) error {
	content, err := site.Default()
	if err != nil {
		return err
	}

	page, err := app.NewLanding(cfg, content, utils.NewPRNGService(seed), logger)
	if err != nil {
		return fmt.Errorf("failed to build landing page: %w", err)
	}

	if watch {
		if configPath == "" {
			return fmt.Errorf("--watch needs --config")
		}
		w, err := config.NewWatcher(configPath, logger)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		if err := w.Start(ctx); err != nil {
			return err
		}
		defer w.Stop()
		page.WatchConfig(w.Updates())
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewLandingState(sm, page))
	defer sm.Shutdown()

	game := &AppGame{
		stateMachine:   sm,
		page:           page,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(page.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TicksPerSec)

	logger.Info("opening window",
		zap.String("title", page.Title()),
		zap.String("description", page.Description()),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height))
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}
	return nil
}
