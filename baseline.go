package monres

// ScalingBaseline is a fixed reference resolution plus the base sizes
// defined relative to it. Baseline values are config-time constants and
// must never be derived from runtime display state.
type ScalingBaseline struct {
	ReferenceWidth  int
	ReferenceHeight int

	// TileSize and Margin are base quantities at the reference
	// resolution, in pixels. Layout code consumes them multiplied by
	// the scale factor returned from Assemble.
	TileSize float64
	Margin   float64
}

// ReferencePixels returns the baseline's reference pixel count.
func (b ScalingBaseline) ReferencePixels() int {
	return b.ReferenceWidth * b.ReferenceHeight
}

// DefaultBaseline scales against full HD (1920x1080) with a 20px base
// tile and an 8px base margin.
func DefaultBaseline() ScalingBaseline {
	return ScalingBaseline{
		ReferenceWidth:  1920,
		ReferenceHeight: 1080,
		TileSize:        20.0,
		Margin:          8.0,
	}
}
