package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/loopcarousel/internal/carousel"
)

// SideMarker is the auxiliary band that follows the sign of the scroll offset.
// It implements carousel.MarkerSink.
type SideMarker struct {
	Side carousel.Side
	Pos  carousel.Vec2 // local
}

func (m *SideMarker) SetMarker(side carousel.Side, pos carousel.Vec2) {
	m.Side = side
	m.Pos = pos
}

// Draw paints the band on the window edge facing the marker. The marker
// itself sits a full reference width away and is never on screen.
func (m *SideMarker) Draw(dst *ebiten.Image) {
	b := dst.Bounds()
	x := float32(b.Max.X - MarkerWidth)
	if m.Side == carousel.SideLeft {
		x = float32(b.Min.X)
	}
	vector.DrawFilledRect(dst, x, float32(b.Min.Y), MarkerWidth, float32(b.Dy()), ColorMarker, false)
}
