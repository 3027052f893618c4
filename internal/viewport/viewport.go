// Package viewport converts between screen pixels and the carousel's local
// coordinate space, and derives the side marker offsets from the window shape.
package viewport

import "github.com/depeter/loopcarousel/internal/carousel"

// Reference is the design resolution the carousel is laid out against.
type Reference struct {
	Width, Height float64
}

// DefaultReference is a 1920x1080 landscape layout.
var DefaultReference = Reference{Width: 1920, Height: 1080}

func (r Reference) Aspect() float64 {
	return r.Width / r.Height
}

// Projection places the carousel origin on screen. Local units are scaled by
// Scale screen pixels each.
type Projection struct {
	Origin carousel.Vec2
	Scale  float64
}

// Fit centers the carousel in a viewport and scales local units so the
// reference height fills the viewport height.
func Fit(ref Reference, width, height float64) Projection {
	scale := 1.0
	if ref.Height > 0 && height > 0 {
		scale = height / ref.Height
	}
	return Projection{
		Origin: carousel.Vec2{X: width / 2, Y: height / 2},
		Scale:  scale,
	}
}

func (p Projection) ScreenToLocal(screen carousel.Vec2) carousel.Vec2 {
	s := p.Scale
	if s == 0 {
		s = 1
	}
	d := screen.Sub(p.Origin)
	return carousel.Vec2{X: d.X / s, Y: d.Y / s}
}

func (p Projection) LocalToScreen(local carousel.Vec2) carousel.Vec2 {
	return carousel.Vec2{X: p.Origin.X + local.X*p.Scale, Y: p.Origin.Y + local.Y*p.Scale}
}

// Markers returns the left and right side marker positions in local units.
// They sit one reference width away from the origin, stretched by how much
// wider the actual viewport is than the reference.
func Markers(ref Reference, width, height float64) (left, right carousel.Vec2) {
	scale := 1.0
	if height > 0 && ref.Height > 0 {
		scale = (width / height) / ref.Aspect()
	}
	return carousel.Vec2{X: -ref.Width * scale}, carousel.Vec2{X: ref.Width * scale}
}
