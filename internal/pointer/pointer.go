// Package pointer turns polled "button held at (x, y)" samples into
// begin/move/end drag phases. Frontends poll their input device once per
// frame or event and feed the result to a Tracker; the Tracker decides
// which carousel call, if any, that sample maps to.
package pointer

import "github.com/depeter/loopcarousel/internal/carousel"

// Phase is the drag transition produced by a sample.
type Phase int

const (
	None Phase = iota
	Begin
	Move
	End
)

func (p Phase) String() string {
	switch p {
	case Begin:
		return "begin"
	case Move:
		return "move"
	case End:
		return "end"
	}
	return "none"
}

// Source identifies which device owns the current drag.
type Source int

const (
	SourceNone Source = iota
	SourceMouse
	SourceTouch
)

// Sample is one poll of a pointer device.
type Sample struct {
	Source  Source
	ID      int // touch ID; ignored for the mouse
	Pressed bool
	Pos     carousel.Vec2
}

// Tracker follows a single pointer. While one source is dragging, samples
// from other sources or other touch IDs are ignored.
type Tracker struct {
	active bool
	source Source
	id     int
	last   carousel.Vec2
}

func (t *Tracker) Active() bool { return t.active }

// Sample feeds one poll and returns the resulting phase and position.
// Moves are only reported when the position actually changed.
func (t *Tracker) Sample(s Sample) (Phase, carousel.Vec2) {
	if !t.active {
		if !s.Pressed {
			return None, s.Pos
		}
		t.active = true
		t.source = s.Source
		t.id = s.ID
		t.last = s.Pos
		return Begin, s.Pos
	}

	if s.Source != t.source || (s.Source == SourceTouch && s.ID != t.id) {
		return None, t.last
	}
	if !s.Pressed {
		t.active = false
		return End, t.last
	}
	if s.Pos == t.last {
		return None, s.Pos
	}
	t.last = s.Pos
	return Move, s.Pos
}

// Cancel ends the current drag, reporting End if one was active.
func (t *Tracker) Cancel() Phase {
	if !t.active {
		return None
	}
	t.active = false
	return End
}

// Apply forwards a phase to c. It reports whether the layout changed.
func Apply(c *carousel.Carousel, phase Phase, ev carousel.PointerEvent) bool {
	switch phase {
	case Begin:
		c.BeginDrag(ev)
	case Move:
		return c.DragMove(ev)
	case End:
		c.EndDrag()
	}
	return false
}
