package monres

import "fmt"

// Resolution is an immutable pair of physical pixel dimensions. Both
// fields are positive once successfully resolved and are never mutated
// afterwards.
type Resolution struct {
	Width  int
	Height int
}

// Pixels returns the total pixel count of the resolution.
func (r Resolution) Pixels() int {
	return r.Width * r.Height
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// MonitorDescriptor carries optional metadata about the monitor a
// Resolution was read from. It is used for diagnostics only and is not
// required for scaling correctness.
type MonitorDescriptor struct {
	Name    string
	Primary bool
}

// Status reports how the startup resolution was obtained.
type Status string

const (
	// StatusResolved means the platform probe succeeded.
	StatusResolved Status = "resolved"
	// StatusDegraded means the probe failed and the documented default
	// resolution was substituted.
	StatusDegraded Status = "degraded"
	// StatusOverridden means the FORCE_RESOLUTION environment override
	// short-circuited the probe.
	StatusOverridden Status = "overridden"
)
