package ui

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/depeter/loopcarousel/internal/carousel"
	"github.com/depeter/loopcarousel/internal/viewport"
)

// CellView is the visual for one slot. Its position is set by the carousel.
type CellView struct {
	Slot    int
	Logical int
	Label   string
	Pos     carousel.Vec2 // local, center of the cell
}

// CellViews implements carousel.CellSink over a fixed set of slots.
type CellViews []CellView

// NewCellViews creates one view per slot, labelled with its logical index.
func NewCellViews(n int) CellViews {
	cells := make(CellViews, n)
	for i := range cells {
		cells[i] = CellView{Slot: i, Logical: i, Label: strconv.Itoa(i)}
	}
	return cells
}

func (cv CellViews) PlaceCell(slot, logical int, pos carousel.Vec2) {
	c := &cv[slot]
	if c.Logical != logical {
		c.Logical = logical
		c.Label = strconv.Itoa(logical)
	}
	c.Pos = pos
}

// Draw renders every visible cell. The cell showing the center logical index is highlighted.
func (cv CellViews) Draw(dst *ebiten.Image, proj viewport.Projection, pitch float64, center int) {
	bounds := dst.Bounds()
	w := (pitch - CellMargin*2) * proj.Scale
	h := CellHeight * proj.Scale

	for i := range cv {
		c := &cv[i]
		p := proj.LocalToScreen(c.Pos)
		x, y := p.X-w/2, p.Y-h/2

		// Skip offscreen cells
		if x+w < float64(bounds.Min.X) || x > float64(bounds.Max.X) {
			continue
		}

		fill := ColorSurface
		if c.Logical == center {
			fill = ColorSurfaceCenter
			vector.StrokeRect(dst, float32(x-2), float32(y-2), float32(w+4), float32(h+4), 3, ColorPrimary, false)
		}
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), fill, false)
		DrawTextCentered(dst, c.Label, p.X, p.Y, FontSizeLabel, proj.Scale, ColorText)
	}
}
