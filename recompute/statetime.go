package recompute

import (
	"sync"
	"time"
)

type State int

const (
	StateIdle State = iota
	StatePending
	StateComputing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePending:
		return "pending"
	case StateComputing:
		return "computing"
	}

	return "unknown"
}

type stateWithTime struct {
	state State
	at    time.Time
}

// stateTimeline records controller state changes and accounts the time
// spent in each state over a window.
type stateTimeline struct {
	sync.Mutex

	ds []stateWithTime
}

func (tl *stateTimeline) Update(state State) {
	tl.Lock()
	defer tl.Unlock()

	tl.ds = append(tl.ds, stateWithTime{
		state: state,
		at:    time.Now(),
	})
}

func (tl *stateTimeline) DoStatistics(tsB, tsE time.Time, clearData bool) (ds map[State]time.Duration) {
	tl.Lock()
	defer tl.Unlock()

	ds = make(map[State]time.Duration)

	last := tsB
	lastIdx := 0

	var startState State

	for idx, f := range tl.ds {
		if f.at.Sub(last) < 0 {
			startState = f.state

			continue
		}

		if tsE.Sub(f.at) <= 0 {
			break
		}

		ds[startState] += f.at.Sub(last)
		last = f.at
		startState = f.state
		lastIdx = idx
	}

	ds[startState] += tsE.Sub(last)

	if clearData && len(tl.ds) > 0 {
		tl.ds = tl.ds[lastIdx:]
	}

	return
}
