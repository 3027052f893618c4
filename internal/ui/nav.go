package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/loopcarousel/internal/carousel"
	"github.com/depeter/loopcarousel/internal/pointer"
)

// Direction represents a horizontal step direction.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
)

// IsModifierPressed reports whether any modifier key (Alt, Ctrl, Shift, Meta) is held.
func IsModifierPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyAlt) ||
		ebiten.IsKeyPressed(ebiten.KeyControl) ||
		ebiten.IsKeyPressed(ebiten.KeyShift) ||
		ebiten.IsKeyPressed(ebiten.KeyMeta)
}

// StepInput returns the step direction for this frame, honoring key repeat.
func StepInput(left, right ebiten.Key) Direction {
	if inputRepeating(left) {
		return DirLeft
	}
	if inputRepeating(right) {
		return DirRight
	}
	return DirNone
}

// BackPressed reports whether Escape, Backspace or the mouse back button was just pressed.
func BackPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsKeyJustPressed(ebiten.KeyBackspace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButton3)
}

// UpdateInputState must be called at the end of each Update() to track key state.
func UpdateInputState() {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if ebiten.IsKeyPressed(k) {
			keyHoldFrames[k]++
		} else {
			delete(keyHoldFrames, k)
		}
	}
}

var keyHoldFrames = make(map[ebiten.Key]int)

const (
	repeatDelay    = 18 // frames before repeat starts (~300ms at 60fps)
	repeatInterval = 4  // frames between repeats (~67ms at 60fps)
)

func inputRepeating(key ebiten.Key) bool {
	if !ebiten.IsKeyPressed(key) {
		return false
	}
	frames, held := keyHoldFrames[key]
	if !held || frames == 0 {
		return true // just pressed this frame
	}
	if frames >= repeatDelay && (frames-repeatDelay)%repeatInterval == 0 {
		return true
	}
	return false
}

// PointerInput polls the left mouse button and touches once per frame and
// turns them into drag phases. The first touch wins over the mouse while it
// is held; further touches are ignored.
type PointerInput struct {
	tracker  pointer.Tracker
	touching bool
	touchID  ebiten.TouchID
	touches []ebiten.TouchID
}

// Poll samples the devices for this frame.
func (pi *PointerInput) Poll() (pointer.Phase, carousel.Vec2) {
	return pi.tracker.Sample(pi.sample())
}

// Cancel ends any drag in progress, e.g. when the screen loses focus.
func (pi *PointerInput) Cancel() pointer.Phase {
	pi.touching = false
	return pi.tracker.Cancel()
}

func (pi *PointerInput) sample() pointer.Sample {
	if pi.tracker.Active() && pi.touching {
		id := pi.touchID
		if inpututil.IsTouchJustReleased(id) {
			pi.touching = false
			return pointer.Sample{Source: pointer.SourceTouch, ID: int(id)}
		}
		x, y := ebiten.TouchPosition(id)
		return pointer.Sample{
			Source:  pointer.SourceTouch,
			ID:      int(id),
			Pressed: true,
			Pos:     carousel.Vec2{X: float64(x), Y: float64(y)},
		}
	}

	if !pi.tracker.Active() {
		pi.touches = inpututil.AppendJustPressedTouchIDs(pi.touches[:0])
		if len(pi.touches) > 0 {
			id := pi.touches[0]
			pi.touching = true
			pi.touchID = id
			x, y := ebiten.TouchPosition(id)
			return pointer.Sample{
				Source:  pointer.SourceTouch,
				ID:      int(id),
				Pressed: true,
				Pos:     carousel.Vec2{X: float64(x), Y: float64(y)},
			}
		}
	}

	x, y := ebiten.CursorPosition()
	return pointer.Sample{
		Source:  pointer.SourceMouse,
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Pos:     carousel.Vec2{X: float64(x), Y: float64(y)},
	}
}
