package carousel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsValidate(t *testing.T) {
	valid := DefaultParams()
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Params)
	}{
		{"too few cells", func(p *Params) { p.CellCount = 1 }},
		{"even cells", func(p *Params) { p.CellCount = 6 }},
		{"zero pitch", func(p *Params) { p.Pitch = 0 }},
		{"negative pitch", func(p *Params) { p.Pitch = -384 }},
		{"nan pitch", func(p *Params) { p.Pitch = math.NaN() }},
		{"infinite pitch", func(p *Params) { p.Pitch = math.Inf(1) }},
		{"center below range", func(p *Params) { p.InitialCenter = -1 }},
		{"center above range", func(p *Params) { p.InitialCenter = 5 }},
		{"zero sensitivity", func(p *Params) { p.Sensitivity = 0 }},
		{"nan sensitivity", func(p *Params) { p.Sensitivity = math.NaN() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidParams)
		})
	}
}

func TestParamsNegativeSensitivityAllowed(t *testing.T) {
	p := DefaultParams()
	p.Sensitivity = -1
	assert.NoError(t, p.Validate())
}

func TestHalfSpan(t *testing.T) {
	assert.Equal(t, 2, DefaultParams().HalfSpan())
	assert.Equal(t, 1, Params{CellCount: 3}.HalfSpan())
}
