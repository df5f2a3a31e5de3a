package mcp

// GetResolutionInput is the input for the get_resolution tool.
type GetResolutionInput struct {
	Fullscreen *bool `json:"fullscreen,omitempty" jsonschema:"Override the configured fullscreen flag in the assembled window config"`
}

// GetResolutionOutput is the output for the get_resolution tool.
type GetResolutionOutput struct {
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Status      string  `json:"status"`
	ScaleFactor float64 `json:"scale_factor"`
	TileSize    float64 `json:"tile_size"`
	Margin      float64 `json:"margin"`
	Title       string  `json:"title"`
	Fullscreen  bool    `json:"fullscreen"`
	Monitor     string  `json:"monitor,omitempty"`
}

// ProbeMonitorInput is the input for the probe_monitor tool.
type ProbeMonitorInput struct{}

// ProbeMonitorOutput is the output for the probe_monitor tool.
type ProbeMonitorOutput struct {
	Probe   string `json:"probe"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Monitor string `json:"monitor,omitempty"`
	Primary bool   `json:"primary"`
}

// AssembleConfigInput is the input for the assemble_config tool.
type AssembleConfigInput struct {
	Width           int     `json:"width" jsonschema:"required,Resolved monitor width in pixels"`
	Height          int     `json:"height" jsonschema:"required,Resolved monitor height in pixels"`
	ReferenceWidth  int     `json:"reference_width,omitempty" jsonschema:"Baseline reference width (default: configured baseline)"`
	ReferenceHeight int     `json:"reference_height,omitempty" jsonschema:"Baseline reference height (default: configured baseline)"`
	TileSize        float64 `json:"tile_size,omitempty" jsonschema:"Base tile size at the reference resolution (default: configured baseline)"`
	Margin          float64 `json:"margin,omitempty" jsonschema:"Base margin at the reference resolution (default: configured baseline)"`
}

// AssembleConfigOutput is the output for the assemble_config tool.
type AssembleConfigOutput struct {
	ScaleFactor float64 `json:"scale_factor"`
	TileSize    float64 `json:"tile_size"`
	Margin      float64 `json:"margin"`
}
