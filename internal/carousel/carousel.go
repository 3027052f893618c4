package carousel

import (
	"io"
	"log/slog"
)

// CellSink is the rendering collaborator that receives slot positions.
type CellSink interface {
	PlaceCell(slot, logical int, pos Vec2)
}

// CellSinkFunc adapts a function to CellSink.
type CellSinkFunc func(slot, logical int, pos Vec2)

func (f CellSinkFunc) PlaceCell(slot, logical int, pos Vec2) { f(slot, logical, pos) }

// Option configures a Carousel.
type Option func(*Carousel)

func WithCellSink(s CellSink) Option {
	return func(c *Carousel) { c.cells = s }
}

func WithMarkerSink(s MarkerSink) Option {
	return func(c *Carousel) { c.markerSink = s }
}

// WithMarkers sets the left and right side marker positions.
func WithMarkers(left, right Vec2) Option {
	return func(c *Carousel) { c.left, c.right = left, right }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Carousel) { c.logger = l }
}

// Carousel wires a ScrollState, a DragController and a SideIndicator together
// and pushes every recomputed layout to its sinks. It is not safe for
// concurrent use; all events must come from one serialized input stream.
type Carousel struct {
	scroll    *ScrollState
	drag      *DragController
	indicator *SideIndicator

	cells       CellSink
	markerSink  MarkerSink
	left, right Vec2
	logger      *slog.Logger

	lastCenter int
}

// New validates p, creates the slots and pushes the initial layout.
func New(p Params, opts ...Option) (*Carousel, error) {
	scroll, err := NewScrollState(p)
	if err != nil {
		return nil, err
	}
	c := &Carousel{
		scroll: scroll,
		drag:   NewDragController(scroll),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	c.indicator = NewSideIndicator(c.left, c.right, c.markerSink)

	layout := scroll.Layout()
	c.lastCenter = layout.Center
	c.publish(layout)
	c.logger.Debug("carousel ready",
		"cells", p.CellCount, "pitch", p.Pitch, "center", layout.Center)
	return c, nil
}

func (c *Carousel) Params() Params { return c.scroll.Params() }

func (c *Carousel) Offset() float64 { return c.scroll.Offset() }

func (c *Carousel) Layout() Layout { return c.scroll.Layout() }

func (c *Carousel) DragState() DragState { return c.drag.State() }

func (c *Carousel) Side() Side { return c.indicator.Side() }

// Marker returns the side marker position for the current side.
func (c *Carousel) Marker() Vec2 { return c.indicator.Marker() }

// SetMarkers updates the side marker positions after a viewport change.
func (c *Carousel) SetMarkers(left, right Vec2) {
	c.left, c.right = left, right
	c.indicator.SetPositions(left, right)
}

func (c *Carousel) BeginDrag(ev PointerEvent) {
	c.drag.BeginDrag(ev)
}

// DragMove applies a pointer move. It reports false when no drag is active.
func (c *Carousel) DragMove(ev PointerEvent) bool {
	layout, ok := c.drag.DragMove(ev)
	if ok {
		c.publish(layout)
	}
	return ok
}

func (c *Carousel) EndDrag() {
	c.drag.EndDrag()
}

// Reset moves the offset back to 0. Ignored while a drag is in progress.
func (c *Carousel) Reset() bool {
	if c.drag.State() != DragIdle {
		return false
	}
	c.publish(c.scroll.SetOffset(0))
	return true
}

// Step moves the offset by whole pitches. Positive steps move cells to the
// right. Ignored while a drag is in progress.
func (c *Carousel) Step(cells int) bool {
	if c.drag.State() != DragIdle || cells == 0 {
		return false
	}
	offset := c.scroll.Offset() + float64(cells)*c.scroll.Params().Pitch
	c.publish(c.scroll.SetOffset(offset))
	return true
}

func (c *Carousel) publish(layout Layout) {
	if c.cells != nil {
		for _, pl := range layout.Slots {
			c.cells.PlaceCell(pl.Slot, pl.Logical, layout.Position(pl.Slot))
		}
	}
	c.indicator.Update(c.scroll.Offset())

	if layout.Center != c.lastCenter {
		c.logger.Debug("center cell changed",
			"from", c.lastCenter, "to", layout.Center, "offset", c.scroll.Offset())
		c.lastCenter = layout.Center
	}
}
