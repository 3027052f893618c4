package pointer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depeter/loopcarousel/internal/carousel"
)

func mouse(pressed bool, x float64) Sample {
	return Sample{Source: SourceMouse, Pressed: pressed, Pos: carousel.Vec2{X: x}}
}

func TestTrackerPhases(t *testing.T) {
	var tr Tracker

	tests := []struct {
		sample Sample
		want   Phase
	}{
		{mouse(false, 0), None},
		{mouse(true, 10), Begin},
		{mouse(true, 10), None},
		{mouse(true, 20), Move},
		{mouse(true, 25), Move},
		{mouse(false, 25), End},
		{mouse(false, 30), None},
	}
	for i, tt := range tests {
		got, _ := tr.Sample(tt.sample)
		assert.Equal(t, tt.want, got, "sample %d", i)
	}
	assert.False(t, tr.Active())
}

func TestTrackerIgnoresOtherSources(t *testing.T) {
	var tr Tracker

	phase, _ := tr.Sample(Sample{Source: SourceTouch, ID: 3, Pressed: true})
	require.Equal(t, Begin, phase)

	phase, _ = tr.Sample(Sample{Source: SourceTouch, ID: 4, Pressed: true, Pos: carousel.Vec2{X: 50}})
	assert.Equal(t, None, phase, "second finger is ignored")

	phase, _ = tr.Sample(mouse(false, 0))
	assert.Equal(t, None, phase, "mouse release does not end a touch drag")

	phase, pos := tr.Sample(Sample{Source: SourceTouch, ID: 3, Pressed: true, Pos: carousel.Vec2{X: 7}})
	assert.Equal(t, Move, phase)
	assert.Equal(t, 7.0, pos.X)

	phase, pos = tr.Sample(Sample{Source: SourceTouch, ID: 3})
	assert.Equal(t, End, phase)
	assert.Equal(t, 7.0, pos.X, "end reports the last known position")
}

func TestTrackerCancel(t *testing.T) {
	var tr Tracker
	assert.Equal(t, None, tr.Cancel())

	tr.Sample(mouse(true, 0))
	assert.Equal(t, End, tr.Cancel())
	assert.False(t, tr.Active())
}

func TestApplyDrivesCarousel(t *testing.T) {
	c, err := carousel.New(carousel.DefaultParams())
	require.NoError(t, err)

	var tr Tracker
	for _, s := range []Sample{mouse(true, 100), mouse(true, 130), mouse(false, 130)} {
		phase, pos := tr.Sample(s)
		Apply(c, phase, carousel.PointerEvent{Screen: pos})
	}
	assert.Equal(t, 30.0, c.Offset())
	assert.Equal(t, carousel.DragIdle, c.DragState())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "begin", Begin.String())
	assert.Equal(t, "none", None.String())
}
