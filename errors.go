package monres

import (
	"errors"

	"github.com/greyfell/monres/internal/platform"
)

// Probe failures. All of them are recovered locally by the fallback
// policy and never propagate as fatal.
var (
	// ErrUnsupported reports that no probe variant exists for the
	// current platform or display-server protocol.
	ErrUnsupported = platform.ErrUnsupported
	// ErrQueryFailed reports that the display-server handshake failed
	// or returned non-positive dimensions.
	ErrQueryFailed = platform.ErrQueryFailed
	// ErrNoMonitor reports that no monitor could be enumerated.
	ErrNoMonitor = platform.ErrNoMonitor
)

// ErrInvalidOverride reports a malformed FORCE_RESOLUTION value. The
// override is ignored with a warning and the platform probe runs as
// usual.
var ErrInvalidOverride = errors.New("invalid resolution override")
