package monres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemble_BaselineScaling(t *testing.T) {
	baseline := ScalingBaseline{
		ReferenceWidth:  1920,
		ReferenceHeight: 1080,
		TileSize:        20.0,
		Margin:          8.0,
	}
	require.Equal(t, 2_073_600, baseline.ReferencePixels())

	tests := []struct {
		name      string
		res       Resolution
		wantScale float64
		wantTile  float64
	}{
		{
			name:      "native baseline",
			res:       Resolution{Width: 1920, Height: 1080},
			wantScale: 1.0,
			wantTile:  20.0,
		},
		{
			name:      "small display",
			res:       Resolution{Width: 800, Height: 600},
			wantScale: 0.2315,
			wantTile:  4.63,
		},
		{
			name:      "4k display",
			res:       Resolution{Width: 3840, Height: 2160},
			wantScale: 4.0,
			wantTile:  80.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, scale := Assemble(tt.res, baseline)

			assert.InDelta(t, tt.wantScale, scale, 0.0001)
			assert.Equal(t, scale, cfg.ScaleFactor)
			assert.InDelta(t, tt.wantTile, cfg.TileSize, 0.01)
			assert.Equal(t, tt.res.Width, cfg.Width)
			assert.Equal(t, tt.res.Height, cfg.Height)
			assert.InDelta(t, tt.wantTile, cfg.Scaled(baseline.TileSize), 0.01)
		})
	}
}

func TestAssemble_Deterministic(t *testing.T) {
	res := Resolution{Width: 2560, Height: 1440}
	baseline := DefaultBaseline()

	first, firstScale := Assemble(res, baseline)
	second, secondScale := Assemble(res, baseline)

	assert.Equal(t, first, second)
	assert.Equal(t, firstScale, secondScale)
}

func TestAssemble_PanicsOnInvariantViolation(t *testing.T) {
	tests := []struct {
		name     string
		res      Resolution
		baseline ScalingBaseline
	}{
		{
			name:     "zero resolution",
			res:      Resolution{},
			baseline: DefaultBaseline(),
		},
		{
			name:     "negative width",
			res:      Resolution{Width: -1920, Height: 1080},
			baseline: DefaultBaseline(),
		},
		{
			name: "zero baseline",
			res:  Resolution{Width: 1920, Height: 1080},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Panics(t, func() {
				Assemble(tt.res, tt.baseline)
			})
		})
	}
}
