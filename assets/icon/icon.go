package icon

import (
	"image"
	"image/color"
	"math"

	"github.com/depeter/loopcarousel/internal/carousel"
)

var (
	background = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	cellColor  = color.RGBA{R: 0x28, G: 0x28, B: 0x34, A: 0xFF}
	centerCell = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	loopColor  = color.RGBA{R: 0xAA, G: 0x5C, B: 0xC3, A: 0xCC}
)

// iconOffset shifts the carousel a little so the icon shows cells cut by the edges.
const iconOffset = -96.0

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	return []image.Image{
		generate(64),
		generate(32),
	}
}

// generate draws the default carousel, laid out by the real layout code,
// scaled so that one pitch is 40% of the icon width.
func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)
	fillRoundedRect(img, 0, 0, s, s, s*0.18, background)

	p := carousel.DefaultParams()
	layout := carousel.RecomputeLayout(p, carousel.IdentityBinding(p.CellCount), iconOffset)

	scale := s * 0.4 / p.Pitch
	cellW := (p.Pitch - 16) * scale
	cellH := s * 0.44
	top := s*0.5 - cellH/2
	for _, pl := range layout.Slots {
		cx := s/2 + pl.X*scale
		c := cellColor
		if pl.Logical == layout.Center {
			c = centerCell
		}
		fillRoundedRect(img, cx-cellW/2, top, cellW, cellH, s*0.05, c)
	}

	drawLoopArc(img, s)
	return img
}

// drawLoopArc draws a dotted arc under the cells hinting at the wrap-around.
func drawLoopArc(img *image.RGBA, s float64) {
	cx, cy := s/2, s*0.62
	rx, ry := s*0.38, s*0.24
	r := math.Max(1, s*0.025)
	for a := 0.15; a < math.Pi-0.15; a += 0.22 {
		fillCircle(img, cx+math.Cos(a)*rx, cy+math.Sin(a)*ry, r, loopColor)
	}
}

func fillRoundedRect(img *image.RGBA, x, y, w, h, r float64, c color.Color) {
	b := img.Bounds()
	x0, y0 := max(int(x), b.Min.X), max(int(y), b.Min.Y)
	x1, y1 := min(int(math.Ceil(x+w)), b.Max.X), min(int(math.Ceil(y+h)), b.Max.Y)

	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			fx, fy := float64(px)+0.5, float64(py)+0.5
			// Distance from the inner rectangle shrunk by r
			dx := math.Max(math.Max(x+r-fx, fx-(x+w-r)), 0)
			dy := math.Max(math.Max(y+r-fy, fy-(y+h-r)), 0)
			if dx*dx+dy*dy <= r*r {
				blendPixel(img, px, py, c)
			}
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	b := img.Bounds()
	for py := max(int(cy-r), b.Min.Y); py <= int(cy+r) && py < b.Max.Y; py++ {
		for px := max(int(cx-r), b.Min.X); px <= int(cx+r) && px < b.Max.X; px++ {
			dx, dy := float64(px)-cx, float64(py)-cy
			if dx*dx+dy*dy <= r*r {
				blendPixel(img, px, py, c)
			}
		}
	}
}

// blendPixel alpha-blends color c onto the existing pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r, g, b, a := c.RGBA()
	switch a {
	case 0:
		return
	case 0xFFFF:
		img.Set(x, y, c)
		return
	}

	dst := img.RGBAAt(x, y)
	inv := 0xFFFF - a
	mix := func(src uint32, d uint8) uint8 {
		return uint8(((src*a + uint32(d)*257*inv) / 0xFFFF) >> 8)
	}
	img.SetRGBA(x, y, color.RGBA{R: mix(r, dst.R), G: mix(g, dst.G), B: mix(b, dst.B), A: 0xFF})
}
