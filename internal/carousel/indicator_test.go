package carousel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type markerCall struct {
	side Side
	pos  Vec2
}

type recordingMarker struct {
	calls []markerCall
}

func (r *recordingMarker) SetMarker(side Side, pos Vec2) {
	r.calls = append(r.calls, markerCall{side, pos})
}

func TestSideFor(t *testing.T) {
	assert.Equal(t, SideLeft, SideFor(-0.001))
	assert.Equal(t, SideRight, SideFor(0))
	assert.Equal(t, SideRight, SideFor(1))
}

func TestSideIndicatorOnlyEmitsOnChange(t *testing.T) {
	rec := &recordingMarker{}
	left, right := Vec2{X: -1920}, Vec2{X: 1920}
	si := NewSideIndicator(left, right, rec)

	assert.True(t, si.Update(0))
	assert.False(t, si.Update(10))
	assert.False(t, si.Update(0))
	assert.True(t, si.Update(-1))
	assert.False(t, si.Update(-500))
	assert.True(t, si.Update(3))

	assert.Equal(t, []markerCall{
		{SideRight, right},
		{SideLeft, left},
		{SideRight, right},
	}, rec.calls)
	assert.Equal(t, right, si.Marker())
}

func TestSideIndicatorSetPositions(t *testing.T) {
	rec := &recordingMarker{}
	si := NewSideIndicator(Vec2{X: -1}, Vec2{X: 1}, rec)
	si.Update(-5)

	si.SetPositions(Vec2{X: -2}, Vec2{X: 2})
	assert.Equal(t, markerCall{SideLeft, Vec2{X: -2}}, rec.calls[len(rec.calls)-1])
	assert.Len(t, rec.calls, 2)

	si.SetPositions(Vec2{X: -2}, Vec2{X: 3})
	assert.Len(t, rec.calls, 2, "unchanged active marker is not re-emitted")
}
