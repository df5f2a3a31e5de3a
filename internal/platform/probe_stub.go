//go:build !linux && !windows && !darwin

package platform

import "runtime"

// Detect has no probe variant for this target.
func Detect() Probe {
	return unsupportedProbe{reason: "no probe variant for " + runtime.GOOS}
}
