package recompute

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libeasygo/routineman"
	"github.com/sgostarter/libfraccalc/fracdiff"
)

type Config struct {
	InitialParams Params

	// ComputeDeadline > 0 enables slow-computation advisories.
	ComputeDeadline time.Duration
}

// NewController mediates between a stream of parameter changes and the
// O(n*n) pipeline. At most one computation is in flight; every new
// update overwrites the pending parameters, so the controller converges
// on the newest request and never accumulates a backlog.
func NewController(cfg Config, pipeline Pipeline, observer Observer, logger l.Wrapper) Controller {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "controllerImpl"))

	if observer == nil {
		logger.Fatal("no observer")
	}

	if pipeline == nil {
		pipeline = NewPipeline(logger)
	}

	impl := &controllerImpl{
		cfg:        cfg,
		logger:     logger,
		pipeline:   pipeline,
		observer:   observer,
		routineMan: routineman.NewRoutineMan(context.Background(), logger),
		params:     cfg.InitialParams,
		chUpdate:   make(chan struct{}, 1),
		states:     &stateTimeline{},
	}

	impl.init()

	return impl
}

type controllerImpl struct {
	cfg      Config
	logger   l.Wrapper
	pipeline Pipeline
	observer Observer

	routineMan routineman.RoutineMan

	chUpdate chan struct{}

	lock         sync.Mutex
	params       Params
	nextSeq      uint64
	pendingSeq   uint64 // 0: nothing pending
	computing    bool
	committedSeq uint64
	lastFrame    *Frame

	states *stateTimeline
	guard  *computeGuard
}

func (impl *controllerImpl) init() {
	impl.states.Update(StateIdle)

	if impl.cfg.ComputeDeadline > 0 {
		impl.guard = newComputeGuard(impl.cfg.ComputeDeadline, func(requestID string) {
			impl.observer.OnAdvisory(requestID, fmt.Errorf("%w: over %v", ErrSlowCompute, impl.cfg.ComputeDeadline))
		})

		impl.routineMan.StartRoutine(impl.guard.mainRoutine, "computeGuardRoutine")
	}

	impl.routineMan.StartRoutine(impl.computeRoutine, "computeRoutine")
}

func (impl *controllerImpl) TriggerStop() {
	impl.routineMan.TriggerStop()
}

func (impl *controllerImpl) Wait() {
	impl.routineMan.Wait()
}

func (impl *controllerImpl) Update(options ...ParamOption) {
	impl.lock.Lock()

	for _, option := range options {
		option(&impl.params)
	}

	impl.nextSeq++
	impl.pendingSeq = impl.nextSeq

	impl.lock.Unlock()

	impl.states.Update(StatePending)

	select {
	case impl.chUpdate <- struct{}{}:
	default:
	}
}

func (impl *controllerImpl) CurrentParams() Params {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	return impl.params
}

func (impl *controllerImpl) LastFrame() *Frame {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	return impl.lastFrame
}

func (impl *controllerImpl) State() State {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	if impl.pendingSeq != 0 {
		return StatePending
	}

	if impl.computing {
		return StateComputing
	}

	return StateIdle
}

func (impl *controllerImpl) StateUsage(tsB, tsE time.Time) map[State]time.Duration {
	return impl.states.DoStatistics(tsB, tsE, false)
}

func (impl *controllerImpl) computeRoutine(ctx context.Context, _ func() bool) {
	loop := true

	for loop {
		select {
		case <-ctx.Done():
			loop = false

			continue
		case <-impl.chUpdate:
		}

		for ctx.Err() == nil {
			impl.lock.Lock()

			if impl.pendingSeq == 0 {
				impl.lock.Unlock()

				break
			}

			seq := impl.pendingSeq
			p := impl.params
			impl.pendingSeq = 0
			impl.computing = true

			impl.lock.Unlock()

			impl.states.Update(StateComputing)

			requestID := genRequestID()

			if impl.guard != nil {
				impl.guard.Begin(requestID)
			}

			xs, ys, err := impl.pipeline.Compute(p)

			if impl.guard != nil {
				impl.guard.End()
			}

			var frame *Frame

			impl.lock.Lock()

			impl.computing = false

			if err == nil && seq > impl.committedSeq {
				frame = &Frame{
					Seq:       seq,
					RequestID: requestID,
					Params:    p,
					Xs:        xs,
					Ys:        ys,
				}

				impl.committedSeq = seq
				impl.lastFrame = frame
			}

			if impl.pendingSeq != 0 {
				impl.states.Update(StatePending)
			} else {
				impl.states.Update(StateIdle)
			}

			impl.lock.Unlock()

			if err != nil {
				if !errors.Is(err, fracdiff.ErrDomain) && !errors.Is(err, fracdiff.ErrNumeric) {
					impl.logger.WithFields(l.ErrorField(err), l.StringField("requestID", requestID)).
						Fatal("compute failed")
				}

				impl.logger.WithFields(l.ErrorField(err), l.StringField("requestID", requestID)).
					Debug("configuration rejected")

				impl.observer.OnAdvisory(requestID, err)

				continue
			}

			if frame != nil {
				impl.observer.OnFrame(frame)
			}
		}
	}
}
