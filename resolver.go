// Package monres resolves the primary monitor's physical resolution
// before any window or rendering surface exists, then freezes it.
//
// Window managers and compositors may asynchronously resize or stretch
// a surface shortly after creation, so dimensions read after surface
// creation can be transiently wrong. The resolver avoids the race by
// querying the display server over its own short-lived connection,
// strictly before the windowing library initializes, and by never
// re-reading platform state afterwards.
package monres

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// EnvForceResolution short-circuits the platform probe when set to a
// well-formed "WxH" value such as "1920x1080". Intended for testing and
// headless environments.
const EnvForceResolution = "FORCE_RESOLUTION"

// DefaultFallbackResolution is the documented default substituted when
// no probe succeeds. Full HD is the most common native panel resolution
// and keeps derived sizes at their baseline values.
func DefaultFallbackResolution() Resolution {
	return Resolution{Width: 1920, Height: 1080}
}

// state is the resolver's one-shot lifecycle. There is no transition
// back to stateResolving; stateFrozen is terminal for the lifetime of
// the process.
type state int

const (
	stateUninitialized state = iota
	stateResolving
	stateResolved
	stateDegraded
	stateOverridden
	stateFrozen
)

// Result is the frozen outcome of a startup resolution.
type Result struct {
	Config      WindowConfig
	ScaleFactor float64
	Resolution  Resolution
	Monitor     MonitorDescriptor
	Status      Status
}

// Resolver performs the one-shot startup resolution. Construct with
// NewResolver; the zero value has no probe. A Resolver is not safe for
// concurrent use and does not need to be: the contract is a single
// synchronous call before any other startup work.
type Resolver struct {
	probe      Probe
	fallback   Resolution
	title      string
	fullscreen bool
	log        logrus.FieldLogger

	state  state
	result *Result
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithProbe replaces the detected platform probe. Used by tests and by
// hosts that supply their own query primitive.
func WithProbe(p Probe) Option {
	return func(r *Resolver) { r.probe = p }
}

// WithTitle sets the window title placed into the assembled config.
func WithTitle(title string) Option {
	return func(r *Resolver) { r.title = title }
}

// WithFullscreen sets the fullscreen flag placed into the assembled
// config. Defaults to true.
func WithFullscreen(fullscreen bool) Option {
	return func(r *Resolver) { r.fullscreen = fullscreen }
}

// WithFallback replaces the default fallback resolution applied when
// the probe fails.
func WithFallback(res Resolution) Option {
	return func(r *Resolver) { r.fallback = res }
}

// WithLogger replaces the logger used for the diagnostic line.
func WithLogger(log logrus.FieldLogger) Option {
	return func(r *Resolver) { r.log = log }
}

// NewResolver builds a resolver with the detected platform probe and
// the documented fallback.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		probe:      DetectProbe(),
		fallback:   DefaultFallbackResolution(),
		fullscreen: true,
		log:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolveStartupResolution resolves the primary monitor's resolution
// and assembles the startup window configuration. It is the sole entry
// point for normal use and must be called once, synchronously, before
// the windowing library performs any of its own initialization. The
// returned WindowConfig is frozen: later compositor resize events must
// not feed back into it.
//
// A fresh resolver is built per call, so repeated calls under an
// identical environment yield identical results; no process-wide
// mutable state is kept.
func ResolveStartupResolution(baseline ScalingBaseline, opts ...Option) (WindowConfig, Status) {
	result := NewResolver(opts...).Resolve(baseline)
	return result.Config, result.Status
}

// Resolve runs the one-shot state machine. The first call performs the
// override check, the single probe attempt and the assembly, then
// freezes. Subsequent calls return the frozen result unchanged.
func (r *Resolver) Resolve(baseline ScalingBaseline) Result {
	if r.state == stateFrozen {
		return *r.result
	}
	r.state = stateResolving

	res, mon, status, probeErr := r.resolveResolution()
	switch status {
	case StatusDegraded:
		r.state = stateDegraded
	case StatusOverridden:
		r.state = stateOverridden
	default:
		r.state = stateResolved
	}

	cfg, scale := Assemble(res, baseline)
	cfg.Title = r.title
	cfg.Fullscreen = r.fullscreen

	result := Result{
		Config:      cfg,
		ScaleFactor: scale,
		Resolution:  res,
		Monitor:     mon,
		Status:      status,
	}
	r.result = &result
	r.state = stateFrozen

	r.logOutcome(result, probeErr)
	return result
}

// Frozen reports whether the resolver has produced its final result.
func (r *Resolver) Frozen() bool {
	return r.state == stateFrozen
}

// NotifyDisplayChange reports a display geometry change observed after
// startup, such as a compositor-driven resize firing on the windowing
// library's event thread. The frozen result is never revised: it is
// valid for the process's initial window only. The return value is
// whether the notification was applied, which is never the case once
// Resolve has run; before Resolve there is nothing to revise either,
// since the probe reads current platform state itself.
func (r *Resolver) NotifyDisplayChange(width, height int) bool {
	return false
}

func (r *Resolver) resolveResolution() (Resolution, MonitorDescriptor, Status, error) {
	if res, ok, err := overrideFromEnv(); err != nil {
		r.log.WithError(err).Warnf("ignoring malformed %s override", EnvForceResolution)
	} else if ok {
		return res, MonitorDescriptor{Name: "override"}, StatusOverridden, nil
	}

	res, mon, err := r.probe.Probe()
	if err != nil {
		return r.fallback, MonitorDescriptor{}, StatusDegraded, err
	}
	return res, mon, StatusResolved, nil
}

// logOutcome emits the single diagnostic line. Consumed by logging, not
// by control flow.
func (r *Resolver) logOutcome(result Result, probeErr error) {
	fields := logrus.Fields{
		"width":  result.Resolution.Width,
		"height": result.Resolution.Height,
		"status": result.Status,
		"scale":  result.ScaleFactor,
		"probe":  r.probe.Name(),
	}
	if result.Monitor.Name != "" {
		fields["monitor"] = result.Monitor.Name
	}
	if result.Status == StatusDegraded {
		fields["cause"] = probeErr.Error()
		r.log.WithFields(fields).Warn("display probe failed, using fallback resolution")
		return
	}
	r.log.WithFields(fields).Info("startup resolution frozen")
}

func overrideFromEnv() (Resolution, bool, error) {
	raw, ok := os.LookupEnv(EnvForceResolution)
	if !ok || strings.TrimSpace(raw) == "" {
		return Resolution{}, false, nil
	}
	res, err := ParseResolution(raw)
	if err != nil {
		return Resolution{}, false, err
	}
	return res, true, nil
}

// ParseResolution parses a "WxH" string such as "1920x1080". Both
// dimensions must be positive integers.
func ParseResolution(s string) (Resolution, error) {
	parts := strings.SplitN(strings.ToLower(strings.TrimSpace(s)), "x", 2)
	if len(parts) != 2 {
		return Resolution{}, fmt.Errorf("%w: %q is not in WxH form", ErrInvalidOverride, s)
	}
	width, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Resolution{}, fmt.Errorf("%w: bad width in %q", ErrInvalidOverride, s)
	}
	height, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Resolution{}, fmt.Errorf("%w: bad height in %q", ErrInvalidOverride, s)
	}
	if width <= 0 || height <= 0 {
		return Resolution{}, fmt.Errorf("%w: dimensions must be positive in %q", ErrInvalidOverride, s)
	}
	return Resolution{Width: width, Height: height}, nil
}
