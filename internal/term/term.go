// Package term renders the carousel in a terminal and drives it with mouse
// drags, using tcell.
package term

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/depeter/loopcarousel/internal/carousel"
	"github.com/depeter/loopcarousel/internal/pointer"
	"github.com/depeter/loopcarousel/internal/viewport"
)

const maxBoxHeight = 7

var (
	styleDefault = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	styleCell    = styleDefault.Foreground(tcell.ColorSilver)
	styleCenter  = styleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleMarker  = styleDefault.Foreground(tcell.ColorPurple)
	styleStatus  = styleDefault.Foreground(tcell.ColorGray)
)

type cellBox struct {
	logical int
	label   string
	pos     carousel.Vec2
}

// Frontend owns a tcell screen and a carousel, and is the rendering
// collaborator for both cells and the side marker.
type Frontend struct {
	screen   tcell.Screen
	carousel *carousel.Carousel
	cells    []cellBox
	side     carousel.Side

	proj     viewport.Projection
	tracker  pointer.Tracker
	colsCell int

	logger *slog.Logger
}

// New creates a frontend on an initialized screen. One pitch spans
// columnsPerCell terminal columns.
func New(screen tcell.Screen, p carousel.Params, columnsPerCell int, logger *slog.Logger) (*Frontend, error) {
	if columnsPerCell < 3 {
		return nil, fmt.Errorf("columns per cell %d must be at least 3", columnsPerCell)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	f := &Frontend{
		screen:   screen,
		cells:    make([]cellBox, p.CellCount),
		colsCell: columnsPerCell,
		logger:   logger,
	}
	c, err := carousel.New(p,
		carousel.WithCellSink(carousel.CellSinkFunc(f.placeCell)),
		carousel.WithMarkerSink(f),
		carousel.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	f.carousel = c
	f.Resize()
	return f, nil
}

func (f *Frontend) Carousel() *carousel.Carousel { return f.carousel }

func (f *Frontend) placeCell(slot, logical int, pos carousel.Vec2) {
	c := &f.cells[slot]
	if c.label == "" || c.logical != logical {
		c.logical = logical
		c.label = strconv.Itoa(logical)
	}
	c.pos = pos
}

func (f *Frontend) SetMarker(side carousel.Side, _ carousel.Vec2) {
	f.side = side
}

// Resize recomputes the projection from the current screen size. The side
// markers are placed one column past each screen edge.
func (f *Frontend) Resize() {
	w, h := f.screen.Size()
	f.proj = viewport.Projection{
		Origin: carousel.Vec2{X: float64(w / 2), Y: float64(h / 2)},
		Scale:  float64(f.colsCell) / f.carousel.Params().Pitch,
	}
	edge := (float64(w)/2 + 1) / f.proj.Scale
	f.carousel.SetMarkers(carousel.Vec2{X: -edge}, carousel.Vec2{X: edge})
}

// HandleEvent applies one tcell event. It reports true when the user asked to quit.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		f.screen.Sync()
		f.Resize()

	case *tcell.EventKey:
		return f.handleKey(ev)

	case *tcell.EventMouse:
		x, y := ev.Position()
		phase, pos := f.tracker.Sample(pointer.Sample{
			Source:  pointer.SourceMouse,
			Pressed: ev.Buttons()&tcell.Button1 != 0,
			Pos:     carousel.Vec2{X: float64(x), Y: float64(y)},
		})
		pointer.Apply(f.carousel, phase, carousel.PointerEvent{Screen: pos, Projection: f.proj})
	}
	return false
}

func (f *Frontend) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		f.carousel.Step(1)
	case tcell.KeyRight:
		f.carousel.Step(-1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'r', 'R':
			f.carousel.Reset()
		}
	}
	return false
}

// Draw renders the cells, the side marker and a status line.
func (f *Frontend) Draw() {
	f.screen.Clear()
	w, h := f.screen.Size()
	center := f.carousel.Layout().Center

	boxW := f.colsCell - 2
	boxH := min(maxBoxHeight, h-2)
	top := h/2 - boxH/2

	for _, c := range f.cells {
		style := styleCell
		if c.logical == center {
			style = styleCenter
		}
		mid := int(math.Round(f.proj.LocalToScreen(c.pos).X))
		left := mid - boxW/2
		f.drawBox(left, top, boxW, boxH, style)
		f.drawString(mid-runewidth.StringWidth(c.label)/2, h/2, c.label, style)
	}

	markerX := w - 1
	if f.side == carousel.SideLeft {
		markerX = 0
	}
	for y := 0; y < h-1; y++ {
		f.screen.SetContent(markerX, y, '▌', nil, styleMarker)
	}

	l := f.carousel.Layout()
	status := fmt.Sprintf(" offset %.1f  center %d  %s  side %s  [drag] scroll  [←/→] step  [r] reset  [q] quit",
		f.carousel.Offset(), l.Center, f.carousel.DragState(), f.carousel.Side())
	f.drawString(0, h-1, status, styleStatus)
}

func (f *Frontend) drawBox(x, y, w, h int, style tcell.Style) {
	if w < 2 || h < 2 {
		return
	}
	for col := x + 1; col < x+w-1; col++ {
		f.screen.SetContent(col, y, tcell.RuneHLine, nil, style)
		f.screen.SetContent(col, y+h-1, tcell.RuneHLine, nil, style)
	}
	for row := y + 1; row < y+h-1; row++ {
		f.screen.SetContent(x, row, tcell.RuneVLine, nil, style)
		f.screen.SetContent(x+w-1, row, tcell.RuneVLine, nil, style)
	}
	f.screen.SetContent(x, y, tcell.RuneULCorner, nil, style)
	f.screen.SetContent(x+w-1, y, tcell.RuneURCorner, nil, style)
	f.screen.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, style)
	f.screen.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, style)
}

func (f *Frontend) drawString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		f.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}

// Run draws and handles events until the user quits or ctx is cancelled.
func (f *Frontend) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		f.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	for {
		f.Draw()
		f.screen.Show()

		ev := f.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if _, ok := ev.(*tcell.EventInterrupt); ok && ctx.Err() != nil {
			return ctx.Err()
		}
		if f.HandleEvent(ev) {
			f.logger.Info("quit requested", "offset", f.carousel.Offset())
			return nil
		}
	}
}
