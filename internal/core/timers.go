package core

// TimerID identifies a scheduled callback.
type TimerID int

type timer struct {
	id       TimerID
	due      int
	interval int // 0 for one-shot timers
	fn       func()
	dead     bool
}

// Timers is a tick-driven replacement for wall-clock timers. A game owns
// one instance and calls Advance once per Step, so callbacks run inside the
// simulation tick and stay deterministic. Callbacks fire in registration
// order.
type Timers struct {
	now     int
	nextID  TimerID
	active  []*timer
	stopped bool
}

// NewTimers creates an empty timer set.
func NewTimers() *Timers {
	return &Timers{}
}

// Now returns the number of ticks advanced so far.
func (t *Timers) Now() int {
	return t.now
}

// Every runs fn every n ticks, first firing n ticks from now.
func (t *Timers) Every(n int, fn func()) TimerID {
	return t.schedule(n, n, fn)
}

// After runs fn once, n ticks from now.
func (t *Timers) After(n int, fn func()) TimerID {
	return t.schedule(n, 0, fn)
}

func (t *Timers) schedule(delay, interval int, fn func()) TimerID {
	if t.stopped || fn == nil {
		return 0
	}
	if delay < 1 {
		delay = 1
	}
	t.nextID++
	t.active = append(t.active, &timer{
		id:       t.nextID,
		due:      t.now + delay,
		interval: interval,
		fn:       fn,
	})
	return t.nextID
}

// Cancel removes a scheduled callback. Unknown IDs are ignored.
func (t *Timers) Cancel(id TimerID) {
	for _, tm := range t.active {
		if tm.id == id {
			tm.dead = true
		}
	}
}

// Pending returns the number of live timers.
func (t *Timers) Pending() int {
	n := 0
	for _, tm := range t.active {
		if !tm.dead {
			n++
		}
	}
	return n
}

// Advance moves time forward by one tick and fires due callbacks.
func (t *Timers) Advance() {
	if t.stopped {
		return
	}
	t.now++

	// Timers added by callbacks wait for the next tick.
	due := t.active
	for _, tm := range due {
		if t.stopped {
			return
		}
		if tm.dead || tm.due > t.now {
			continue
		}
		tm.fn()
		if tm.interval > 0 {
			tm.due = t.now + tm.interval
		} else {
			tm.dead = true
		}
	}

	live := t.active[:0]
	for _, tm := range t.active {
		if !tm.dead {
			live = append(live, tm)
		}
	}
	for i := len(live); i < len(t.active); i++ {
		t.active[i] = nil
	}
	t.active = live
}

// Stop cancels every timer and refuses new ones. It reports whether this
// call did the stopping, so teardown work runs once.
func (t *Timers) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	t.active = nil
	return true
}

// Stopped reports whether Stop has been called.
func (t *Timers) Stopped() bool {
	return t.stopped
}
