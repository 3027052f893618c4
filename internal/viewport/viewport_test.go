package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/depeter/loopcarousel/internal/carousel"
)

func TestFitCentersAndScales(t *testing.T) {
	p := Fit(DefaultReference, 1280, 720)

	assert.Equal(t, carousel.Vec2{X: 640, Y: 360}, p.Origin)
	assert.InDelta(t, 720.0/1080.0, p.Scale, 1e-12)
}

func TestScreenToLocalRoundTrip(t *testing.T) {
	p := Projection{Origin: carousel.Vec2{X: 960, Y: 540}, Scale: 0.5}

	local := p.ScreenToLocal(carousel.Vec2{X: 1010, Y: 540})
	assert.Equal(t, carousel.Vec2{X: 100, Y: 0}, local)
	assert.Equal(t, carousel.Vec2{X: 1010, Y: 540}, p.LocalToScreen(local))
}

func TestScreenToLocalZeroScale(t *testing.T) {
	p := Projection{Origin: carousel.Vec2{X: 10}}
	assert.Equal(t, carousel.Vec2{X: 5}, p.ScreenToLocal(carousel.Vec2{X: 15}))
}

func TestMarkers(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		wantRight     float64
	}{
		{"reference aspect", 1920, 1080, 1920},
		{"same aspect smaller window", 1280, 720, 1920},
		{"ultrawide", 2560, 1080, 2560},
		{"square", 1080, 1080, 1080},
		{"zero height", 100, 0, 1920},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := Markers(DefaultReference, tt.width, tt.height)
			assert.InDelta(t, tt.wantRight, right.X, 1e-9)
			assert.InDelta(t, -tt.wantRight, left.X, 1e-9)
			assert.Equal(t, 0.0, right.Y)
		})
	}
}

func TestProjectionDrivesDrag(t *testing.T) {
	c, err := carousel.New(carousel.DefaultParams())
	assert.NoError(t, err)

	p := Fit(DefaultReference, 960, 540)
	c.BeginDrag(carousel.PointerEvent{Screen: carousel.Vec2{X: 480, Y: 270}, Projection: p})
	c.DragMove(carousel.PointerEvent{Screen: carousel.Vec2{X: 490, Y: 270}, Projection: p})

	assert.InDelta(t, 20.0, c.Offset(), 1e-9, "10px at half scale is 20 local units")
}
