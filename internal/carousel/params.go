package carousel

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams is wrapped by every error returned from Params.Validate.
var ErrInvalidParams = errors.New("invalid carousel params")

// Defaults matching a 1920-wide reference layout of five 376px cells with 4px margins.
const (
	DefaultCellCount     = 5
	DefaultPitch         = 384.0
	DefaultInitialCenter = 2
	DefaultSensitivity   = 1.0
)

// Params is the fixed setup of a carousel.
type Params struct {
	CellCount     int     // number of slots, odd and >= 3
	Pitch         float64 // cell width plus margins; one full index step
	InitialCenter int     // logical index at x=0 when offset is 0
	Sensitivity   float64 // multiplier applied to the drag delta
}

func DefaultParams() Params {
	return Params{
		CellCount:     DefaultCellCount,
		Pitch:         DefaultPitch,
		InitialCenter: DefaultInitialCenter,
		Sensitivity:   DefaultSensitivity,
	}
}

// Validate rejects configurations that cannot produce a symmetric single-center layout.
func (p Params) Validate() error {
	switch {
	case p.CellCount < 3:
		return fmt.Errorf("%w: cell count %d, need at least 3", ErrInvalidParams, p.CellCount)
	case p.CellCount%2 == 0:
		return fmt.Errorf("%w: cell count %d must be odd", ErrInvalidParams, p.CellCount)
	case math.IsNaN(p.Pitch) || math.IsInf(p.Pitch, 0) || p.Pitch <= 0:
		return fmt.Errorf("%w: pitch %v must be a positive finite number", ErrInvalidParams, p.Pitch)
	case p.InitialCenter < 0 || p.InitialCenter >= p.CellCount:
		return fmt.Errorf("%w: initial center %d outside [0, %d)", ErrInvalidParams, p.InitialCenter, p.CellCount)
	case math.IsNaN(p.Sensitivity) || math.IsInf(p.Sensitivity, 0) || p.Sensitivity == 0:
		return fmt.Errorf("%w: sensitivity %v must be finite and non-zero", ErrInvalidParams, p.Sensitivity)
	}
	return nil
}

// HalfSpan is the number of slots on each side of the center slot.
func (p Params) HalfSpan() int {
	return p.CellCount / 2
}
