// internal/app/landing.go
package app

import (
	"math"

	"freedom-layer/internal/config"
	"freedom-layer/internal/event"
	"freedom-layer/internal/frame"
	"freedom-layer/internal/input"
	"freedom-layer/internal/particle"
	"freedom-layer/internal/site"
	"freedom-layer/internal/ui"
	"freedom-layer/internal/utils"
	"freedom-layer/internal/view"
	"freedom-layer/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Landing is the whole page: the hero field, the call-to-action button
// and the info panel below the fold. All of it runs on the Ebitengine
// update goroutine; the frame queue is ticked once per Update.
type Landing struct {
	cfg     *config.Config
	content *site.Content
	log     *zap.Logger

	bus     *event.Dispatcher
	queue   *frame.Queue
	pointer *input.PointerCell
	caps    *input.Capabilities
	poller  *input.Poller

	hero       *render.EbitenCanvas
	buttonSurf *render.EbitenCanvas
	fieldView  *view.FieldView
	buttonView *view.ButtonView

	scroll *view.Scroll
	fade   *view.Fade
	panel  *ui.InfoPanel
	cta    *view.CTA
	button *ui.CTAButton

	updates <-chan *config.Config
}

// NewLanding builds the page for the configured window size.
func NewLanding(cfg *config.Config, content *site.Content, rng *utils.PRNGService, log *zap.Logger) (*Landing, error) {
	faces, err := ui.LoadFaces()
	if err != nil {
		return nil, err
	}

	l := &Landing{
		cfg:     cfg,
		content: content,
		log:     log,
		bus:     event.NewDispatcher(),
		queue:   frame.NewQueue(),
		pointer: &input.PointerCell{},
		caps:    &input.Capabilities{},
		scroll:  view.NewScroll(cfg.Page.RevealThreshold, cfg.Page.ScrollEase),
		fade:    view.NewFade(cfg.Page.FadeSpeed),
		panel:   ui.NewInfoPanel(content, faces),
	}
	l.poller = input.NewPoller(&ebitenSource{}, l.bus, l.caps, cfg.Page.WheelStep)
	l.button = &ui.CTAButton{}
	l.cta = view.NewCTA(config.ButtonDisplaySize, config.ButtonBottomOffset, l.scroll, l.poller.Viewport, l.button.HandleClick)
	l.button.Area = l.cta
	l.poller.SetViewport(input.Viewport{Width: cfg.Window.Width, Height: cfg.Window.Height})

	// Холсты декоративные: без них страница работает, просто без анимации
	var fieldSurface view.Surface
	if hero, err := render.NewEbitenCanvas(cfg.Window.Width, cfg.Window.Height); err != nil {
		log.Debug("hero canvas unavailable", zap.Error(err))
	} else {
		l.hero = hero
		fieldSurface = hero
	}
	var buttonSurface particle.Canvas
	if surf, err := render.NewEbitenCanvas(cfg.Button.CanvasSize, cfg.Button.CanvasSize); err != nil {
		log.Debug("button canvas unavailable", zap.Error(err))
	} else {
		l.buttonSurf = surf
		buttonSurface = surf
	}

	field := particle.NewField(cfg.Field, rng, l.caps, log)
	l.fieldView = view.NewFieldView(field, fieldSurface, l.queue, l.bus, l.pointer, l.caps, log)
	l.buttonView = view.NewButtonView(particle.NewEmitter(cfg.Button, rng), buttonSurface, l.queue, log)
	return l, nil
}

// Mount starts both animations and the page listeners.
func (l *Landing) Mount() {
	l.fieldView.Mount()
	l.buttonView.Mount()
	l.bus.Subscribe(event.Scroll, l.scroll)
	l.bus.Subscribe(event.Click, l.cta)
	l.log.Debug("landing mounted", zap.Int("listeners", l.bus.ListenerCount()))
}

// Teardown stops both animations and detaches the page listeners.
func (l *Landing) Teardown() {
	l.fieldView.Teardown()
	l.buttonView.Teardown()
	l.bus.Unsubscribe(event.Scroll, l.scroll)
	l.bus.Unsubscribe(event.Click, l.cta)
}

// WatchConfig makes Update apply configurations received on ch.
func (l *Landing) WatchConfig(ch <-chan *config.Config) {
	l.updates = ch
}

// SetViewport is called from Layout with the window size.
func (l *Landing) SetViewport(width, height int) {
	l.poller.SetViewport(input.Viewport{Width: width, Height: height})
}

func (l *Landing) Update(deltaTime float64) {
	l.applyUpdates()

	vp := l.poller.Viewport()
	// Панель занимает минимум один экран
	l.scroll.SetMax(math.Max(float64(vp.Height), l.panel.Height(vp.Width)))

	l.poller.SetScroll(l.scroll.Offset())
	l.poller.Poll()
	l.scroll.Update()
	l.fade.Update(deltaTime, l.scroll.Revealed())
	l.queue.Tick()
}

func (l *Landing) applyUpdates() {
	if l.updates == nil {
		return
	}
	for {
		select {
		case cfg := <-l.updates:
			l.log.Info("applying reloaded config")
			l.cfg = cfg
			l.fieldView.Reconfigure(cfg.Field)
			l.buttonView.Reconfigure(cfg.Button)
		default:
			return
		}
	}
}

func (l *Landing) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	vp := l.poller.Viewport()
	offset := l.scroll.Offset()

	if l.hero != nil && offset < float64(vp.Height) {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(0, -offset)
		screen.DrawImage(l.hero.Image(), op)
	}
	if l.buttonSurf != nil {
		l.button.Draw(screen, l.buttonSurf.Image(), vp, offset)
	}
	l.panel.Draw(screen, float64(vp.Height)-offset, l.fade.Value())
}

func (l *Landing) Title() string       { return l.content.Title }
func (l *Landing) Description() string { return l.content.Description }
