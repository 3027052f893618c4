package term

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depeter/loopcarousel/internal/carousel"
)

func newTestFrontend(t *testing.T) (*Frontend, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(120, 20)

	f, err := New(screen, carousel.DefaultParams(), 24, nil)
	require.NoError(t, err)
	return f, screen
}

func runeAt(screen tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func mouseAt(x, y int, buttons tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, buttons, tcell.ModNone)
}

func TestDrawInitialLayout(t *testing.T) {
	f, screen := newTestFrontend(t)
	f.Draw()

	// Origin at column 60; one pitch is 24 columns.
	assert.Equal(t, '2', runeAt(screen, 60, 10))
	assert.Equal(t, '1', runeAt(screen, 36, 10))
	assert.Equal(t, '0', runeAt(screen, 12, 10))
	assert.Equal(t, '3', runeAt(screen, 84, 10))
	assert.Equal(t, '4', runeAt(screen, 108, 10))
	assert.Equal(t, '▌', runeAt(screen, 119, 0), "marker starts on the right")
}

func TestMouseDragScrolls(t *testing.T) {
	f, screen := newTestFrontend(t)

	f.HandleEvent(mouseAt(60, 10, tcell.Button1))
	assert.Equal(t, carousel.DragDragging, f.Carousel().DragState())

	f.HandleEvent(mouseAt(61, 10, tcell.Button1))
	assert.Equal(t, 16.0, f.Carousel().Offset(), "one column is pitch/24 local units")

	f.HandleEvent(mouseAt(61, 10, tcell.ButtonNone))
	assert.Equal(t, carousel.DragIdle, f.Carousel().DragState())
	assert.Equal(t, 16.0, f.Carousel().Offset())

	f.Draw()
	assert.Equal(t, '2', runeAt(screen, 61, 10))
}

func TestDragLeftFlipsMarkerAndWraps(t *testing.T) {
	f, screen := newTestFrontend(t)

	f.HandleEvent(mouseAt(60, 10, tcell.Button1))
	f.HandleEvent(mouseAt(59, 10, tcell.Button1))
	f.HandleEvent(mouseAt(59, 10, tcell.ButtonNone))

	assert.Equal(t, -16.0, f.Carousel().Offset())
	assert.Equal(t, 3, f.Carousel().Layout().Center)
	assert.Equal(t, carousel.SideLeft, f.Carousel().Side())

	f.Draw()
	assert.Equal(t, '▌', runeAt(screen, 0, 0))
	assert.Equal(t, '2', runeAt(screen, 59, 10))
	assert.Equal(t, '3', runeAt(screen, 83, 10))
	assert.Equal(t, '1', runeAt(screen, 35, 10))
	assert.Equal(t, '4', runeAt(screen, 107, 10))
}

func TestKeys(t *testing.T) {
	f, _ := newTestFrontend(t)

	assert.False(t, f.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone)))
	assert.Equal(t, -384.0, f.Carousel().Offset())
	assert.Equal(t, 3, f.Carousel().Layout().Center)

	f.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	f.HandleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	assert.Equal(t, 384.0, f.Carousel().Offset())

	f.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	assert.Equal(t, 0.0, f.Carousel().Offset())

	assert.True(t, f.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.True(t, f.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.True(t, f.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
}

func TestResizeMovesOrigin(t *testing.T) {
	f, screen := newTestFrontend(t)
	screen.SetSize(80, 20)
	f.HandleEvent(tcell.NewEventResize(80, 20))

	f.Draw()
	assert.Equal(t, '2', runeAt(screen, 40, 10))
}

func TestNewRejectsNarrowCells(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()

	_, err := New(screen, carousel.DefaultParams(), 2, nil)
	assert.Error(t, err)

	p := carousel.DefaultParams()
	p.CellCount = 2
	_, err = New(screen, p, 24, nil)
	assert.ErrorIs(t, err, carousel.ErrInvalidParams)
}

func TestRunStopsOnQuitKey(t *testing.T) {
	f, screen := newTestFrontend(t)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	done := make(chan error, 1)
	go func() { done <- f.Run(context.Background()) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after quit key")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	f, _ := newTestFrontend(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- f.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
