package ui

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/loopcarousel/internal/carousel"
	"github.com/depeter/loopcarousel/internal/pointer"
	"github.com/depeter/loopcarousel/internal/viewport"
)

// CarouselKeys are the keys the carousel screen reacts to.
type CarouselKeys struct {
	StepLeft  ebiten.Key
	StepRight ebiten.Key
	Reset     ebiten.Key
	Help      ebiten.Key
}

// CarouselScreen shows the looping carousel and drives it from pointer drags.
type CarouselScreen struct {
	Carousel *carousel.Carousel
	Cells    CellViews
	Marker   *SideMarker
	Help     []string // keybind lines shown by the help overlay

	keys   CarouselKeys
	ref    viewport.Reference
	proj   viewport.Projection
	input  PointerInput
	logger *slog.Logger
}

func NewCarouselScreen(p carousel.Params, ref viewport.Reference, keys CarouselKeys, logger *slog.Logger) (*CarouselScreen, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &CarouselScreen{
		Cells:  NewCellViews(p.CellCount),
		Marker: &SideMarker{},
		keys:   keys,
		ref:    ref,
		proj:   viewport.Fit(ref, ref.Width, ref.Height),
		logger: logger,
	}
	left, right := viewport.Markers(ref, ref.Width, ref.Height)
	c, err := carousel.New(p,
		carousel.WithCellSink(s.Cells),
		carousel.WithMarkerSink(s.Marker),
		carousel.WithMarkers(left, right),
		carousel.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	s.Carousel = c
	return s, nil
}

func (s *CarouselScreen) Name() string { return "Carousel" }

func (s *CarouselScreen) OnEnter() {}

// OnExit ends a drag that was in progress when another screen took over.
func (s *CarouselScreen) OnExit() {
	if phase := s.input.Cancel(); phase == pointer.End {
		s.Carousel.EndDrag()
	}
}

func (s *CarouselScreen) Resize(width, height int) {
	w, h := float64(width), float64(height)
	s.proj = viewport.Fit(s.ref, w, h)
	s.Carousel.SetMarkers(viewport.Markers(s.ref, w, h))
	s.logger.Debug("viewport resized", "width", width, "height", height, "scale", s.proj.Scale)
}

func (s *CarouselScreen) Update() (*ScreenTransition, error) {
	phase, pos := s.input.Poll()
	pointer.Apply(s.Carousel, phase, carousel.PointerEvent{Screen: pos, Projection: s.proj})

	if s.Carousel.DragState() != carousel.DragIdle {
		return nil, nil
	}

	switch StepInput(s.keys.StepLeft, s.keys.StepRight) {
	case DirLeft:
		s.Carousel.Step(1)
	case DirRight:
		s.Carousel.Step(-1)
	}
	if inpututil.IsKeyJustPressed(s.keys.Reset) && !IsModifierPressed() {
		s.Carousel.Reset()
	}
	if inpututil.IsKeyJustPressed(s.keys.Help) || inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		return &ScreenTransition{Type: TransitionPush, Screen: NewHelpScreen(s.Help, s.keys.Help)}, nil
	}
	return nil, nil
}

func (s *CarouselScreen) Draw(dst *ebiten.Image) {
	dst.Fill(ColorBackground)
	s.Marker.Draw(dst)
	s.Cells.Draw(dst, s.proj, s.Carousel.Params().Pitch, s.Carousel.Layout().Center)
}

// DebugLines describes the carousel state for the debug overlay.
func (s *CarouselScreen) DebugLines() []string {
	l := s.Carousel.Layout()
	return []string{
		fmt.Sprintf("offset   %.2f", s.Carousel.Offset()),
		fmt.Sprintf("center   %d at x=%.2f", l.Center, l.CenterX),
		fmt.Sprintf("drag     %s", s.Carousel.DragState()),
		fmt.Sprintf("side     %s (marker x=%.0f)", s.Marker.Side, s.Marker.Pos.X),
		fmt.Sprintf("scale    %.3f", s.proj.Scale),
	}
}
