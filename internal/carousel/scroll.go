package carousel

// Binding maps a logical index to the slot that displays it. It is fixed at
// setup; only positions change afterwards.
type Binding []int

// IdentityBinding binds slot i to logical index i.
func IdentityBinding(n int) Binding {
	b := make(Binding, n)
	for i := range b {
		b[i] = i
	}
	return b
}

// Placement is where one slot sits for the current offset.
type Placement struct {
	Slot    int
	Logical int
	X       float64
}

// Layout is the per-slot result of RecomputeLayout. Slots is indexed by slot identity.
type Layout struct {
	Center  int     // logical index of the center cell
	CenterX float64 // x of the center cell, in [0, pitch)
	Slots   []Placement
	slotOf  Binding
}

// SlotOf returns the slot displaying the given logical index.
func (l Layout) SlotOf(logical int) int {
	return l.slotOf[logical]
}

// XOf returns the x position of the slot displaying the given logical index.
func (l Layout) XOf(logical int) float64 {
	return l.Slots[l.slotOf[logical]].X
}

// Position returns the local position of a slot. Cells only move horizontally.
func (l Layout) Position(slot int) Vec2 {
	return Vec2{X: l.Slots[slot].X}
}

// RecomputeLayout converts a scroll offset into positions for every slot.
// It has no state: the same offset always yields the same layout.
func RecomputeLayout(p Params, b Binding, offset float64) Layout {
	n := p.CellCount
	steps, centerX := floorDivMod(offset, p.Pitch)
	center := wrapFloat(float64(p.InitialCenter)-steps, n)

	l := Layout{
		Center:  center,
		CenterX: centerX,
		Slots:   make([]Placement, n),
		slotOf:  b,
	}
	place := func(logical int, x float64) {
		slot := b[logical]
		l.Slots[slot] = Placement{Slot: slot, Logical: logical, X: x}
	}

	place(center, centerX)
	for k := 1; k <= p.HalfSpan(); k++ {
		d := float64(k) * p.Pitch
		place(Wrap(center-k, n), centerX-d)
		place(Wrap(center+k, n), centerX+d)
	}
	return l
}

// ScrollState owns the scroll offset and the layout derived from it.
type ScrollState struct {
	params  Params
	binding Binding
	offset  float64
	layout  Layout
}

// NewScrollState validates p, binds slot i to logical index i and computes
// the layout for offset 0.
func NewScrollState(p Params) (*ScrollState, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	s := &ScrollState{
		params:  p,
		binding: IdentityBinding(p.CellCount),
	}
	s.layout = RecomputeLayout(p, s.binding, 0)
	return s, nil
}

func (s *ScrollState) Params() Params { return s.params }

func (s *ScrollState) Offset() float64 { return s.offset }

func (s *ScrollState) Layout() Layout { return s.layout }

// SetOffset stores the offset and recomputes the layout.
func (s *ScrollState) SetOffset(offset float64) Layout {
	s.offset = offset
	s.layout = RecomputeLayout(s.params, s.binding, offset)
	return s.layout
}
