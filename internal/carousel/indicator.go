package carousel

// Side selects one of the two fixed marker positions.
type Side int

const (
	SideRight Side = iota
	SideLeft
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// SideFor returns SideLeft for negative offsets and SideRight otherwise, zero included.
func SideFor(offset float64) Side {
	if offset < 0 {
		return SideLeft
	}
	return SideRight
}

// MarkerSink receives the marker position whenever the side changes.
type MarkerSink interface {
	SetMarker(side Side, pos Vec2)
}

// SideIndicator moves an auxiliary marker between a left and a right position
// depending on the sign of the offset.
type SideIndicator struct {
	left, right Vec2
	side        Side
	set         bool
	sink        MarkerSink
}

func NewSideIndicator(left, right Vec2, sink MarkerSink) *SideIndicator {
	return &SideIndicator{left: left, right: right, sink: sink}
}

// Side returns the current side. Before the first Update it is SideRight.
func (si *SideIndicator) Side() Side { return si.side }

// Marker returns the position for the current side.
func (si *SideIndicator) Marker() Vec2 {
	return si.positionFor(si.side)
}

func (si *SideIndicator) positionFor(s Side) Vec2 {
	if s == SideLeft {
		return si.left
	}
	return si.right
}

// SetPositions replaces the marker positions, e.g. after a viewport resize,
// and re-emits the current marker if it moved.
func (si *SideIndicator) SetPositions(left, right Vec2) {
	old := si.Marker()
	si.left, si.right = left, right
	if si.set && si.Marker() != old && si.sink != nil {
		si.sink.SetMarker(si.side, si.Marker())
	}
}

// Update selects the side for offset and notifies the sink only when it
// changes. It reports whether the sink was notified.
func (si *SideIndicator) Update(offset float64) bool {
	side := SideFor(offset)
	if si.set && side == si.side {
		return false
	}
	si.side = side
	si.set = true
	if si.sink != nil {
		si.sink.SetMarker(side, si.positionFor(side))
	}
	return true
}
