package app

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/loopcarousel/internal/config"
	"github.com/depeter/loopcarousel/internal/ui"
)

// Game implements ebiten.Game and manages the overall application.
type Game struct {
	Config   *config.Config
	Screens  *ui.ScreenManager
	Carousel *ui.CarouselScreen
	Keys     Keys

	Width, Height int

	logger *slog.Logger
}

// NewGame resolves the keybinds and creates the carousel screen.
func NewGame(cfg *config.Config, logger *slog.Logger) (*Game, error) {
	if logger == nil {
		logger = slog.Default()
	}
	keys, err := ResolveKeys(cfg.Keybinds)
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewCarouselScreen(cfg.Params(), cfg.ReferenceSize(), ui.CarouselKeys{
		StepLeft:  keys.StepLeft,
		StepRight: keys.StepRight,
		Reset:     keys.Reset,
		Help:      keys.Help,
	}, logger)
	if err != nil {
		return nil, err
	}
	screen.Help = keys.HelpLines()

	g := &Game{
		Config:   cfg,
		Screens:  ui.NewScreenManager(),
		Carousel: screen,
		Keys:     keys,
		Width:    cfg.UI.Width,
		Height:   cfg.UI.Height,
		logger:   logger,
	}
	g.Screens.Resize(g.Width, g.Height)
	g.Screens.Push(screen)
	return g, nil
}

func (g *Game) Update() error {
	// Alt+Enter toggles fullscreen
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if keyJustPressed(g.Keys.Fullscreen) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// F12 toggles debug overlay
	ui.ToggleDebugOverlay()

	if keyJustPressed(g.Keys.Quit) || (g.Screens.StackSize() == 1 && ui.BackPressed()) {
		g.logger.Info("quit requested", "offset", g.Carousel.Carousel.Offset())
		return ebiten.Termination
	}

	if err := g.Screens.Update(); err != nil {
		return err
	}

	ui.UpdateInputState()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Screens.Draw(screen)
	ui.DrawDebugOverlay(screen, g.Carousel)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.Width || outsideHeight != g.Height {
		g.Width, g.Height = outsideWidth, outsideHeight
		g.Screens.Resize(outsideWidth, outsideHeight)
	}
	return g.Width, g.Height
}
