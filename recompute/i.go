package recompute

import "time"

// Observer receives pipeline outcomes. Callbacks run on the
// controller's worker routine; implementations must not block for long
// and must do their own locking before handing data to a render loop.
type Observer interface {
	// OnFrame delivers a fresh result. Frames arrive in strictly
	// increasing Seq order; a stale computation is discarded before it
	// gets here.
	OnFrame(frame *Frame)

	// OnAdvisory reports a recoverable domain/numeric rejection or a
	// slow-computation notice. The previously delivered frame stays
	// valid.
	OnAdvisory(requestID string, err error)
}

// Pipeline turns parameters into a plottable sequence. Implementations
// must be pure: no retained state besides internal caches, safe to call
// from the worker routine.
type Pipeline interface {
	Compute(p Params) (xs []float64, ys []float64, err error)
}

type Controller interface {
	// Update records new parameters and schedules a recompute. Partial
	// updates compose: unspecified parameters keep their current value.
	// The newest update always wins; there is no backlog.
	Update(options ...ParamOption)

	CurrentParams() Params
	LastFrame() *Frame

	// State reports where the controller is right now. A parameter
	// change recorded while a computation is in flight reads as
	// StatePending: the newest request is what the controller is
	// converging on.
	State() State

	// StateUsage reports time spent per controller state between the two
	// instants, for interactivity diagnostics.
	StateUsage(tsB, tsE time.Time) map[State]time.Duration

	TriggerStop()
	Wait()
}
