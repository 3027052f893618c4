package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// HelpScreen is an overlay listing the keybinds. It is drawn over the carousel.
type HelpScreen struct {
	lines  []string
	toggle ebiten.Key
	width  float64
	height float64
}

func NewHelpScreen(lines []string, toggle ebiten.Key) *HelpScreen {
	return &HelpScreen{lines: lines, toggle: toggle}
}

func (h *HelpScreen) Name() string { return "Help" }
func (h *HelpScreen) OnEnter()     {}
func (h *HelpScreen) OnExit()      {}

func (h *HelpScreen) Resize(width, height int) {
	h.width, h.height = float64(width), float64(height)
}

func (h *HelpScreen) Update() (*ScreenTransition, error) {
	if BackPressed() || inpututil.IsKeyJustPressed(h.toggle) || inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		return &ScreenTransition{Type: TransitionPop}, nil
	}
	return nil, nil
}

func (h *HelpScreen) Draw(dst *ebiten.Image) {
	const (
		pad   = 24.0
		lineH = 26.0
	)
	panelH := pad*2 + lineH*float64(len(h.lines)+1)
	x := (h.width - HelpPanelWidth) / 2
	y := (h.height - panelH) / 2

	vector.DrawFilledRect(dst, float32(x), float32(y), HelpPanelWidth, float32(panelH), ColorOverlay, false)
	DrawText(dst, "Keys", x+pad, y+pad, FontSizeHeading, ColorPrimary)
	ly := y + pad + lineH
	for _, line := range h.lines {
		DrawText(dst, line, x+pad, ly, FontSizeBody, ColorText)
		ly += lineH
	}
}
