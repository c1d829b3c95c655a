package shank

import (
	"time"

	"github.com/vovakirdan/tui-shank/internal/core"
)

// Clock supplies frame timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Loop drives a session from a per-frame callback. The host delivers one
// frame at a time and keeps delivering only while OnFrame returns true;
// mode requests that re-enter PLAYING must go through the loop so the next
// frame starts a new timing baseline.
type Loop struct {
	session *Session
	clock   Clock
	epoch   time.Time

	last        time.Duration
	hasBaseline bool
}

// NewLoop binds a session to a clock.
func NewLoop(s *Session, clock Clock) *Loop {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Loop{
		session: s,
		clock:   clock,
		epoch:   clock.Now(),
	}
}

// Session returns the driven session.
func (l *Loop) Session() *Session {
	return l.session
}

// Running reports whether the host should be delivering frames.
func (l *Loop) Running() bool {
	return l.session.Mode() == ModePlaying
}

// Frame runs OnFrame with the clock's current time.
func (l *Loop) Frame() (Event, bool) {
	return l.OnFrame(l.clock.Now().Sub(l.epoch))
}

// OnFrame handles one frame at timestamp ts. The first frame after (re)arming
// only records the baseline. Afterwards at most one tick runs per frame, once
// ts-last reaches the session's interval, however late the frame is.
// The boolean result asks the host to schedule another frame.
func (l *Loop) OnFrame(ts time.Duration) (Event, bool) {
	if !l.Running() {
		l.hasBaseline = false
		return EventNone, false
	}
	if !l.hasBaseline {
		l.last = ts
		l.hasBaseline = true
		return EventNone, true
	}

	ev := EventNone
	if ts-l.last >= l.session.TickInterval() {
		ev = l.session.Tick()
		l.last = ts
	}
	if !l.Running() {
		l.hasBaseline = false
		return ev, false
	}
	return ev, true
}

// Start forwards to Session.Start.
func (l *Loop) Start() bool { return l.rearm(l.session.Start) }

// Restart forwards to Session.Restart.
func (l *Loop) Restart() bool { return l.rearm(l.session.Restart) }

// Resume forwards to Session.Resume.
func (l *Loop) Resume() bool { return l.rearm(l.session.Resume) }

// Advance forwards to Session.Advance.
func (l *Loop) Advance() bool { return l.rearm(l.session.Advance) }

// Pause forwards to Session.Pause.
func (l *Loop) Pause() bool { return l.session.Pause() }

// Dispatch applies an input action to the session. It reports whether the
// action changed anything.
func (l *Loop) Dispatch(a core.Action) bool {
	if d, ok := DirectionFor(a); ok {
		return l.session.RequestDirection(d)
	}
	switch a {
	case core.ActionConfirm:
		return l.rearm(l.session.Confirm)
	case core.ActionPause:
		return l.rearm(l.session.TogglePause)
	}
	return false
}

// rearm runs a mode request and drops the timing baseline when it moves the
// session into PLAYING.
func (l *Loop) rearm(request func() bool) bool {
	wasPlaying := l.Running()
	ok := request()
	if ok && !wasPlaying && l.Running() {
		l.hasBaseline = false
	}
	return ok
}
