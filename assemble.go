package monres

import "fmt"

// WindowConfig is the assembled startup configuration handed to the
// window-creation collaborator. It is constructed exactly once per
// process start, before the windowing library initializes its own
// global state, and is read-only thereafter. Width and Height are
// always explicit; the collaborator must not fall back to its built-in
// placeholder dimensions.
type WindowConfig struct {
	Title      string
	Fullscreen bool
	Width      int
	Height     int

	// TileSize and Margin are the baseline quantities scaled to the
	// resolved resolution.
	TileSize float64
	Margin   float64

	// ScaleFactor is resolved pixels divided by baseline reference
	// pixels. All later size derivations must use this value instead
	// of re-querying the platform.
	ScaleFactor float64
}

// Scaled derives a size from a baseline constant using the frozen scale
// factor.
func (c WindowConfig) Scaled(base float64) float64 {
	return base * c.ScaleFactor
}

// Assemble combines a resolved Resolution with baseline scaling
// constants into a WindowConfig and the scale factor. It is pure:
// identical inputs always yield identical outputs.
//
// Assemble panics on non-positive resolution or baseline dimensions.
// That indicates a programming error in the calling configuration, not
// a runtime or platform condition; probe failures never reach here
// because the fallback policy substitutes a valid default first.
func Assemble(res Resolution, baseline ScalingBaseline) (WindowConfig, float64) {
	if res.Width <= 0 || res.Height <= 0 {
		panic(fmt.Sprintf("monres: non-positive resolution %s", res))
	}
	if baseline.ReferenceWidth <= 0 || baseline.ReferenceHeight <= 0 {
		panic(fmt.Sprintf("monres: non-positive baseline reference %dx%d",
			baseline.ReferenceWidth, baseline.ReferenceHeight))
	}

	scale := float64(res.Pixels()) / float64(baseline.ReferencePixels())
	cfg := WindowConfig{
		Fullscreen:  true,
		Width:       res.Width,
		Height:      res.Height,
		TileSize:    baseline.TileSize * scale,
		Margin:      baseline.Margin * scale,
		ScaleFactor: scale,
	}
	return cfg, scale
}
