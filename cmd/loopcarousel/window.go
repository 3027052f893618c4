package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/loopcarousel/assets/icon"
	"github.com/depeter/loopcarousel/internal/app"
	"github.com/depeter/loopcarousel/internal/ui"
)

func runWindow() error {
	if err := ui.InitFonts(nil); err != nil {
		return err
	}

	game, err := app.NewGame(cfg, logger)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("loopcarousel")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	p := cfg.Params()
	logger.Info("opening window",
		"cells", p.CellCount, "pitch", p.Pitch, "center", p.InitialCenter, "sensitivity", p.Sensitivity)

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}
