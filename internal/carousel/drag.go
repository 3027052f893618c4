package carousel

// DragState is the state of a DragController.
type DragState int

const (
	DragIdle DragState = iota
	DragDragging
)

func (s DragState) String() string {
	switch s {
	case DragIdle:
		return "idle"
	case DragDragging:
		return "dragging"
	}
	return "unknown"
}

// Projector converts a screen-space pointer position into the carousel's local space.
type Projector interface {
	ScreenToLocal(screen Vec2) Vec2
}

// ProjectorFunc adapts a function to Projector.
type ProjectorFunc func(screen Vec2) Vec2

func (f ProjectorFunc) ScreenToLocal(screen Vec2) Vec2 { return f(screen) }

// PointerEvent carries a screen position and the projection needed to interpret it.
// A nil Projection means the position is already local.
type PointerEvent struct {
	Screen     Vec2
	Projection Projector
}

func (e PointerEvent) local() Vec2 {
	if e.Projection == nil {
		return e.Screen
	}
	return e.Projection.ScreenToLocal(e.Screen)
}

// DragController turns begin/move/end pointer events into scroll offsets.
//
// Every move recomputes the offset from the drag anchor and the offset
// captured at begin, so sensitivity scales the total delta since begin
// rather than the per-event delta.
type DragController struct {
	scroll     *ScrollState
	state      DragState
	anchor     Vec2
	baseOffset float64
}

func NewDragController(scroll *ScrollState) *DragController {
	return &DragController{scroll: scroll}
}

func (d *DragController) State() DragState { return d.state }

// Anchor returns the local position recorded by the last BeginDrag.
func (d *DragController) Anchor() Vec2 { return d.anchor }

// BaseOffset returns the offset captured by the last BeginDrag.
func (d *DragController) BaseOffset() float64 { return d.baseOffset }

// BeginDrag records the anchor and base offset. The offset itself is not changed.
// Beginning again while dragging re-anchors at the new position.
func (d *DragController) BeginDrag(ev PointerEvent) {
	d.anchor = ev.local()
	d.baseOffset = d.scroll.Offset()
	d.state = DragDragging
}

// DragMove sets the offset from the delta since BeginDrag and recomputes the
// layout. It reports false and does nothing when no drag is in progress.
func (d *DragController) DragMove(ev PointerEvent) (Layout, bool) {
	if d.state != DragDragging {
		return d.scroll.Layout(), false
	}
	delta := ev.local().Sub(d.anchor)
	offset := (delta.X + d.baseOffset) * d.scroll.Params().Sensitivity
	return d.scroll.SetOffset(offset), true
}

// EndDrag returns to idle. The offset stays where the last move left it.
func (d *DragController) EndDrag() {
	d.state = DragIdle
}
