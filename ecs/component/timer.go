package component

import "math"

type TimerMode int

const (
	TimerOnce TimerMode = iota
	TimerRepeating
)

// Timer counts elapsed seconds toward Duration. A repeating timer wraps and
// reports every completion; a once timer stops at Duration.
type Timer struct {
	Duration float64
	Elapsed  float64
	Mode     TimerMode

	finished int
	done     bool
}

func NewTimer(seconds float64, mode TimerMode) Timer {
	return Timer{Duration: seconds, Mode: mode}
}

func (t *Timer) Tick(dt float64) {
	if t == nil {
		return
	}
	t.finished = 0
	if t.Duration <= 0 {
		return
	}
	if t.Mode == TimerOnce {
		if t.done {
			return
		}
		t.Elapsed += dt
		if t.Elapsed >= t.Duration {
			t.Elapsed = t.Duration
			t.done = true
			t.finished = 1
		}
		return
	}

	t.Elapsed += dt
	if t.Elapsed >= t.Duration {
		n := math.Floor(t.Elapsed / t.Duration)
		t.finished = int(n)
		t.Elapsed -= n * t.Duration
	}
}

// JustFinished reports whether the last Tick completed the timer.
func (t *Timer) JustFinished() bool {
	return t != nil && t.finished > 0
}

// TimesFinished is how many cycles completed during the last Tick.
func (t *Timer) TimesFinished() int {
	if t == nil {
		return 0
	}
	return t.finished
}

// Finished reports whether a once timer has run out.
func (t *Timer) Finished() bool {
	return t != nil && t.done
}

// Percent is the completed fraction of the current cycle in [0, 1].
func (t *Timer) Percent() float64 {
	if t == nil || t.Duration <= 0 {
		return 0
	}
	return math.Min(t.Elapsed/t.Duration, 1)
}

func (t *Timer) SetElapsed(seconds float64) {
	if t == nil {
		return
	}
	t.Elapsed = seconds
	t.done = t.Mode == TimerOnce && t.Duration > 0 && seconds >= t.Duration
}

func (t *Timer) Reset() {
	if t == nil {
		return
	}
	t.Elapsed = 0
	t.finished = 0
	t.done = false
}
