package recompute

import (
	"context"
	"sync"
	"time"
)

type guardNotify func(requestID string)

// computeGuard raises one notice per computation that outlives the
// deadline. It never interrupts the computation itself: the convolution
// has no safe interruption point, stale results are simply not
// committed.
func newComputeGuard(deadline time.Duration, notify guardNotify) *computeGuard {
	checkInterval := deadline / 4
	if checkInterval < time.Millisecond*10 {
		checkInterval = time.Millisecond * 10
	}

	return &computeGuard{
		deadline:      deadline,
		checkInterval: checkInterval,
		notify:        notify,
	}
}

type computeGuard struct {
	deadline      time.Duration
	checkInterval time.Duration
	notify        guardNotify

	lock      sync.Mutex
	requestID string
	beganAt   time.Time
	notified  bool
}

func (impl *computeGuard) Begin(requestID string) {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	impl.requestID = requestID
	impl.beganAt = time.Now()
	impl.notified = false
}

func (impl *computeGuard) End() {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	impl.requestID = ""
}

func (impl *computeGuard) check() (requestID string, timedOut bool) {
	impl.lock.Lock()
	defer impl.lock.Unlock()

	if impl.requestID == "" || impl.notified {
		return
	}

	if time.Since(impl.beganAt) < impl.deadline {
		return
	}

	impl.notified = true

	return impl.requestID, true
}

func (impl *computeGuard) mainRoutine(ctx context.Context, _ func() bool) {
	loop := true

	for loop {
		select {
		case <-ctx.Done():
			loop = false

			continue
		case <-time.After(impl.checkInterval):
			if requestID, timedOut := impl.check(); timedOut {
				impl.notify(requestID)
			}
		}
	}
}
